package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/cuide-me/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds Postgres statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const patientHasAlertColumn = "EXISTS (SELECT 1 FROM messages m WHERE m.patient_id = patients.id AND m.has_alert) AS has_alert"

var (
	professionalColumns = []string{"id", "email", "hashed_password"}
	patientColumns      = []string{"id", "phone_number", "name", "status", "altura_cm", "peso_inicial", "peso_meta", patientHasAlertColumn}
	messageColumns      = []string{"id", "patient_id", "text", "sender", "has_alert", "timestamp", "ai_suggestion"}
	metricColumns       = []string{"id", "patient_id", "metric_type", "value", "timestamp"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildQuery(builder sq.Sqlizer) (string, []any, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── professionals ─────────────────────────────────────────────────────────────

func buildCreateProfessionalQuery(professional models.Professional) (string, []any, error) {
	return buildQuery(psql.Insert("professionals").
		Columns("email", "hashed_password").
		Values(professional.Email, professional.HashedPassword).
		Suffix(returning(professionalColumns)))
}

func buildFindProfessionalByEmailQuery(email string) (string, []any, error) {
	return buildQuery(psql.Select(professionalColumns...).
		From("professionals").
		Where("email = ?", email))
}

// ── patients ──────────────────────────────────────────────────────────────────

func buildListPatientsQuery(status *models.PatientStatus) (string, []any, error) {
	builder := psql.Select(patientColumns...).From("patients")
	if status != nil {
		builder = builder.Where("status = ?", string(*status))
	}
	return buildQuery(builder.OrderBy("id ASC"))
}

func buildGetPatientQuery(patientID int64) (string, []any, error) {
	return buildQuery(psql.Select(patientColumns...).
		From("patients").
		Where("id = ?", patientID))
}

func buildGetPatientByPhoneQuery(phone string) (string, []any, error) {
	return buildQuery(psql.Select(patientColumns...).
		From("patients").
		Where("phone_number = ?", phone))
}

// buildInsertPatientQuery inserts a patient unless the phone number exists.
// The statement returns no row when the patient was already there.
func buildInsertPatientQuery(phone string) (string, []any, error) {
	return buildQuery(psql.Insert("patients").
		Columns("phone_number", "status").
		Values(phone, string(models.StatusAutomatic)).
		Suffix("ON CONFLICT (phone_number) DO NOTHING " + returning(patientColumns)))
}

// buildUpdatePatientQuery sets only the non-nil fields of update.
func buildUpdatePatientQuery(patientID int64, update models.PatientUpdate) (string, []any, error) {
	set := make(map[string]any, 4)
	if update.Name != nil {
		set["name"] = strings.TrimSpace(*update.Name)
	}
	if update.HeightCM != nil {
		set["altura_cm"] = *update.HeightCM
	}
	if update.InitialWeight != nil {
		set["peso_inicial"] = *update.InitialWeight
	}
	if update.TargetWeight != nil {
		set["peso_meta"] = *update.TargetWeight
	}

	return buildQuery(psql.Update("patients").
		SetMap(set).
		Where("id = ?", patientID).
		Suffix(returning(patientColumns)))
}

func buildSetPatientStatusQuery(patientID int64, status models.PatientStatus) (string, []any, error) {
	return buildQuery(psql.Update("patients").
		Set("status", string(status)).
		Where("id = ?", patientID).
		Suffix(returning(patientColumns)))
}

// ── messages ──────────────────────────────────────────────────────────────────

func buildCreateMessageQuery(message models.Message) (string, []any, error) {
	return buildQuery(psql.Insert("messages").
		Columns("patient_id", "text", "sender", "has_alert", "ai_suggestion").
		Values(message.PatientID, message.Text, string(message.Sender), message.HasAlert, message.AISuggestion).
		Suffix(returning(messageColumns)))
}

func buildListMessagesQuery(patientID int64) (string, []any, error) {
	return buildQuery(psql.Select(messageColumns...).
		From("messages").
		Where("patient_id = ?", patientID).
		OrderBy("timestamp ASC", "id ASC"))
}

func buildClearAlertsQuery(patientID int64) (string, []any, error) {
	return buildQuery(psql.Update("messages").
		Set("has_alert", false).
		Where("patient_id = ?", patientID).
		Where("has_alert"))
}

// ── metrics ───────────────────────────────────────────────────────────────────

func buildSaveMetricsQuery(patientID int64, metrics []models.ExtractedMetric) (string, []any, error) {
	builder := psql.Insert("metrics").Columns("patient_id", "metric_type", "value")
	for _, m := range metrics {
		builder = builder.Values(patientID, m.Type, m.Value)
	}
	return buildQuery(builder)
}

func buildListMetricsQuery(patientID int64) (string, []any, error) {
	return buildQuery(psql.Select(metricColumns...).
		From("metrics").
		Where("patient_id = ?", patientID).
		OrderBy("timestamp ASC", "id ASC"))
}
