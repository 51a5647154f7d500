package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/models"
)

// patientRepository is the PostgreSQL-backed implementation of
// [PatientRepository]. The has_alert flag is derived from the patient's
// messages on every read.
type patientRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPatientRepository(db *DB, logger *logger.Logger) PatientRepository {
	logger.Debug().Msg("creating patient repository")
	return &patientRepository{
		db:     db,
		logger: logger,
	}
}

func (r *patientRepository) ListPatients(ctx context.Context) ([]models.Patient, error) {
	query, args, err := buildListPatientsQuery(nil)
	if err != nil {
		return nil, err
	}
	return r.queryPatients(ctx, "*patientRepository.ListPatients", query, args)
}

func (r *patientRepository) ListPatientsByStatus(ctx context.Context, status models.PatientStatus) ([]models.Patient, error) {
	query, args, err := buildListPatientsQuery(&status)
	if err != nil {
		return nil, err
	}
	return r.queryPatients(ctx, "*patientRepository.ListPatientsByStatus", query, args)
}

func (r *patientRepository) GetPatient(ctx context.Context, patientID int64) (models.Patient, error) {
	query, args, err := buildGetPatientQuery(patientID)
	if err != nil {
		return models.Patient{}, err
	}
	return r.queryPatient(ctx, "*patientRepository.GetPatient", query, args)
}

// GetOrCreatePatientByPhone inserts the patient with ON CONFLICT DO NOTHING.
// When the insert returns no row the phone number already exists and the
// patient is selected instead.
func (r *patientRepository) GetOrCreatePatientByPhone(ctx context.Context, phone string) (models.Patient, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPatientQuery(phone)
	if err != nil {
		return models.Patient{}, false, err
	}

	patient, err := scanPatient(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		log.Info().Str("func", "*patientRepository.GetOrCreatePatientByPhone").Int64("patient_id", patient.ID).Msg("new patient created")
		return patient, true, nil
	case !errors.Is(err, sql.ErrNoRows):
		log.Err(err).Str("func", "*patientRepository.GetOrCreatePatientByPhone").Msg("error inserting patient")
		return models.Patient{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err = buildGetPatientByPhoneQuery(phone)
	if err != nil {
		return models.Patient{}, false, err
	}

	patient, err = r.queryPatient(ctx, "*patientRepository.GetOrCreatePatientByPhone", query, args)
	return patient, false, err
}

// UpdatePatient applies the non-nil fields of update. An empty update
// returns the current patient unchanged.
func (r *patientRepository) UpdatePatient(ctx context.Context, patientID int64, update models.PatientUpdate) (models.Patient, error) {
	if update.IsEmpty() {
		return r.GetPatient(ctx, patientID)
	}

	query, args, err := buildUpdatePatientQuery(patientID, update)
	if err != nil {
		return models.Patient{}, err
	}
	return r.queryPatient(ctx, "*patientRepository.UpdatePatient", query, args)
}

func (r *patientRepository) SetPatientStatus(ctx context.Context, patientID int64, status models.PatientStatus) (models.Patient, error) {
	query, args, err := buildSetPatientStatusQuery(patientID, status)
	if err != nil {
		return models.Patient{}, err
	}
	return r.queryPatient(ctx, "*patientRepository.SetPatientStatus", query, args)
}

func (r *patientRepository) queryPatient(ctx context.Context, funcName, query string, args []any) (models.Patient, error) {
	patient, err := scanPatient(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Patient{}, ErrPatientNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error querying patient")
		return models.Patient{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return patient, nil
}

func (r *patientRepository) queryPatients(ctx context.Context, funcName, query string, args []any) ([]models.Patient, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for patients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	patients := make([]models.Patient, 0)
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan patient row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		patients = append(patients, patient)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating patient rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return patients, nil
}
