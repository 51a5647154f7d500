package service

import (
	"context"

	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/models"
)

type clientPatientService struct {
	session ClientSession
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientPatientService(session ClientSession, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientPatientService {
	return &clientPatientService{session: session, adapter: serverAdapter, logger: logger}
}

func (s *clientPatientService) List(ctx context.Context) ([]models.Patient, error) {
	patients, err := s.adapter.ListPatients(ctx)
	if err != nil {
		return nil, mapAdapterError(ctx, s.session, err)
	}
	return patients, nil
}

func (s *clientPatientService) Rename(ctx context.Context, patientID int64, name string) (models.Patient, error) {
	if patientID <= 0 {
		return models.Patient{}, ErrNoPatientSelected
	}

	patient, err := s.adapter.UpdatePatient(ctx, patientID, models.PatientUpdate{Name: &name})
	if err != nil {
		return models.Patient{}, mapAdapterError(ctx, s.session, err)
	}
	return patient, nil
}

// ToggleControl trusts the cached status; it does not re-read the patient.
func (s *clientPatientService) ToggleControl(ctx context.Context, patient models.Patient) (models.PatientStatus, error) {
	if patient.ID <= 0 {
		return patient.Status, ErrNoPatientSelected
	}

	call := s.adapter.ReleaseControl
	if patient.Status == models.StatusAutomatic {
		call = s.adapter.AssumeControl
	}

	if err := call(ctx, patient.ID); err != nil {
		return patient.Status, mapAdapterError(ctx, s.session, err)
	}

	next := patient.Status.Toggled()
	s.logger.Info().Int64("patient_id", patient.ID).Str("status", string(next)).Msg("control toggled")
	return next, nil
}

func (s *clientPatientService) ListMetrics(ctx context.Context, patientID int64) ([]models.Metric, error) {
	metrics, err := s.adapter.ListMetrics(ctx, patientID)
	if err != nil {
		return nil, mapAdapterError(ctx, s.session, err)
	}
	return metrics, nil
}
