package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/store"
	"github.com/MKhiriev/cuide-me/internal/validators"
	"github.com/MKhiriev/cuide-me/models"
)

type patientService struct {
	patientRepository store.PatientRepository
	metricRepository  store.MetricRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewPatientService(patientRepository store.PatientRepository, metricRepository store.MetricRepository, validator validators.Validator, logger *logger.Logger) PatientService {
	return &patientService{
		patientRepository: patientRepository,
		metricRepository:  metricRepository,
		validator:         validator,
		logger:            logger,
	}
}

func (s *patientService) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return s.patientRepository.ListPatients(ctx)
}

// UpdatePatient validates the set fields and applies them. An update with no
// fields returns the patient unchanged.
func (s *patientService) UpdatePatient(ctx context.Context, patientID int64, update models.PatientUpdate) (models.Patient, error) {
	if err := s.validator.Validate(ctx, update, validators.FieldName, validators.FieldBody); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("patient_id", patientID).Msg("invalid patient update")
		return models.Patient{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.patientRepository.UpdatePatient(ctx, patientID, update)
}

func (s *patientService) AssumeControl(ctx context.Context, patientID int64) (models.Patient, error) {
	return s.setStatus(ctx, patientID, models.StatusManual)
}

func (s *patientService) ReleaseControl(ctx context.Context, patientID int64) (models.Patient, error) {
	return s.setStatus(ctx, patientID, models.StatusAutomatic)
}

func (s *patientService) setStatus(ctx context.Context, patientID int64, status models.PatientStatus) (models.Patient, error) {
	patient, err := s.patientRepository.SetPatientStatus(ctx, patientID, status)
	if err != nil {
		return models.Patient{}, err
	}

	logger.FromContext(ctx).Info().Int64("patient_id", patientID).Str("status", string(status)).Msg("patient mode changed")
	return patient, nil
}

func (s *patientService) ListMetrics(ctx context.Context, patientID int64) ([]models.Metric, error) {
	return s.metricRepository.ListMetrics(ctx, patientID)
}
