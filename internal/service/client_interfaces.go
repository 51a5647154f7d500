package service

import (
	"context"

	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSession holds the dashboard's access token. It is the
// [adapter.TokenSource] of the server adapters, so saving or clearing it
// changes what the next request sends.
type ClientSession interface {
	adapter.TokenSource

	// Load reads the persisted token into memory. A missing token is not an
	// error.
	Load(ctx context.Context) error

	// Save persists token and makes it current.
	Save(ctx context.Context, token string) error

	// Clear forgets the token in memory and on disk.
	Clear(ctx context.Context) error

	// ClearIf is Clear guarded by a comparison: it only runs while token is
	// the current one and reports whether it did.
	ClearIf(ctx context.Context, token string) (bool, error)

	IsAuthenticated() bool
}

// ClientAuthService drives login, registration and logout from the dashboard.
type ClientAuthService interface {
	Register(ctx context.Context, credentials models.Credentials) error

	// Login stores the returned token in the session on success.
	Login(ctx context.Context, credentials models.Credentials) error

	Logout(ctx context.Context) error

	// Restore loads a persisted session and reports whether the dashboard can
	// be opened without logging in.
	Restore(ctx context.Context) (bool, error)
}

// ClientPatientService reads and changes patients on the dashboard's behalf.
type ClientPatientService interface {
	List(ctx context.Context) ([]models.Patient, error)

	// Rename sets the patient's name and returns the record the server stored.
	Rename(ctx context.Context, patientID int64, name string) (models.Patient, error)

	// ToggleControl picks assume or release from the cached status and
	// returns the status the patient has after the server confirmed it.
	ToggleControl(ctx context.Context, patient models.Patient) (models.PatientStatus, error)

	ListMetrics(ctx context.Context, patientID int64) ([]models.Metric, error)
}

// ClientConversationService reads and writes the conversation of the
// selected patient.
type ClientConversationService interface {
	History(ctx context.Context, patientID int64) ([]models.Message, error)

	// Send rejects blank text and a missing patient without a request.
	Send(ctx context.Context, patientID int64, text string) (models.Message, error)

	Summarize(ctx context.Context, patientID int64) (string, error)

	// Subscribe streams live records for patientID until ctx is cancelled.
	Subscribe(ctx context.Context, patientID int64) (<-chan models.Message, error)
}
