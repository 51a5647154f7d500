package store

import (
	"context"

	"github.com/MKhiriev/cuide-me/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ProfessionalRepository stores dashboard accounts.
type ProfessionalRepository interface {
	CreateProfessional(ctx context.Context, professional models.Professional) (models.Professional, error)
	FindProfessionalByEmail(ctx context.Context, email string) (models.Professional, error)
}

// PatientRepository stores patients followed through WhatsApp.
type PatientRepository interface {
	ListPatients(ctx context.Context) ([]models.Patient, error)
	ListPatientsByStatus(ctx context.Context, status models.PatientStatus) ([]models.Patient, error)
	GetPatient(ctx context.Context, patientID int64) (models.Patient, error)
	// GetOrCreatePatientByPhone returns the patient with the given phone
	// number, creating it in automatic mode when absent. created reports
	// whether a new row was inserted.
	GetOrCreatePatientByPhone(ctx context.Context, phone string) (patient models.Patient, created bool, err error)
	UpdatePatient(ctx context.Context, patientID int64, update models.PatientUpdate) (models.Patient, error)
	SetPatientStatus(ctx context.Context, patientID int64, status models.PatientStatus) (models.Patient, error)
}

// MessageRepository stores the conversation with each patient.
type MessageRepository interface {
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)
	// ListMessages returns the conversation ordered by timestamp ascending.
	ListMessages(ctx context.Context, patientID int64) ([]models.Message, error)
	ClearAlerts(ctx context.Context, patientID int64) error
}

// MetricRepository stores health measurements extracted from messages.
type MetricRepository interface {
	SaveMetrics(ctx context.Context, patientID int64, metrics ...models.ExtractedMetric) error
	// ListMetrics returns the measurements ordered by timestamp ascending.
	ListMetrics(ctx context.Context, patientID int64) ([]models.Metric, error)
}
