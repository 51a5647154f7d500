package service

import (
	"context"

	"github.com/MKhiriev/cuide-me/models"
)

// AuthService registers professionals and issues and checks their tokens.
type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.Professional, error)

	// Login returns the professional whose email and password match, or
	// ErrWrongCredentials.
	Login(ctx context.Context, credentials models.Credentials) (models.Professional, error)

	CreateToken(ctx context.Context, professional models.Professional) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate parses tokenString and resolves it to an existing
	// professional. Every failure is ErrTokenIsExpiredOrInvalid.
	Authenticate(ctx context.Context, tokenString string) (models.Professional, error)
}

type PatientService interface {
	ListPatients(ctx context.Context) ([]models.Patient, error)
	UpdatePatient(ctx context.Context, patientID int64, update models.PatientUpdate) (models.Patient, error)

	// AssumeControl and ReleaseControl set the patient's mode. Both are
	// idempotent.
	AssumeControl(ctx context.Context, patientID int64) (models.Patient, error)
	ReleaseControl(ctx context.Context, patientID int64) (models.Patient, error)

	ListMetrics(ctx context.Context, patientID int64) ([]models.Metric, error)
}

type MessageService interface {
	// ListMessages returns the conversation in ascending order and marks
	// the patient's alerts as seen.
	ListMessages(ctx context.Context, patientID int64) ([]models.Message, error)

	// SendMessage delivers text over WhatsApp and stores it as a
	// professional message. Delivery failures are not stored.
	SendMessage(ctx context.Context, patientID int64, text string) (models.Message, error)

	Summarize(ctx context.Context, patientID int64) (string, error)
}

// LiveService fans message records out to the dashboards watching a patient.
type LiveService interface {
	Subscribe(patientID int64) *Subscription
	Unsubscribe(sub *Subscription)
	Broadcast(patientID int64, message models.Message)
}

// WebhookService processes WhatsApp Cloud API notifications.
type WebhookService interface {
	// Verify answers the subscription handshake and returns the challenge.
	Verify(ctx context.Context, verification models.WebhookVerification) (string, error)

	// HandleInbound runs the inbound pipeline for one patient message.
	HandleInbound(ctx context.Context, inbound models.InboundMessage) error
}

// CheckInService sends the scheduled check-in message.
type CheckInService interface {
	SendCheckIns(ctx context.Context) (models.CheckInReport, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
