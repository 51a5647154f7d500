package store

import (
	"database/sql"

	"github.com/MKhiriev/cuide-me/models"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfessional(row rowScanner) (models.Professional, error) {
	var p models.Professional
	err := row.Scan(&p.ID, &p.Email, &p.HashedPassword)
	return p, err
}

func scanPatient(row rowScanner) (models.Patient, error) {
	var (
		p                           models.Patient
		name                        sql.NullString
		status                      string
		height, initialWeight, goal sql.NullFloat64
	)

	if err := row.Scan(&p.ID, &p.PhoneNumber, &name, &status, &height, &initialWeight, &goal, &p.HasAlert); err != nil {
		return models.Patient{}, err
	}

	p.Status = models.PatientStatus(status)
	p.Name = nullString(name)
	p.HeightCM = nullFloat(height)
	p.InitialWeight = nullFloat(initialWeight)
	p.TargetWeight = nullFloat(goal)

	return p, nil
}

func scanMessage(row rowScanner) (models.Message, error) {
	var (
		m          models.Message
		sender     string
		suggestion sql.NullString
	)

	if err := row.Scan(&m.ID, &m.PatientID, &m.Text, &sender, &m.HasAlert, &m.Timestamp, &suggestion); err != nil {
		return models.Message{}, err
	}

	m.Sender = models.Sender(sender)
	m.AISuggestion = nullString(suggestion)

	return m, nil
}

func scanMetric(row rowScanner) (models.Metric, error) {
	var m models.Metric
	err := row.Scan(&m.ID, &m.PatientID, &m.Type, &m.Value, &m.Timestamp)
	return m, err
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
