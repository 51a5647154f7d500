// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transports of Cuide.me.
//
// The dashboard talks to the backend through [ServerAdapter] (REST over
// resty) and [LiveAdapter] (a websocket per selected patient). The backend
// itself reaches the outside world through [MessagingAdapter] (WhatsApp
// Cloud API) and [AIAdapter] (an OpenAI-compatible chat completion API).
//
// HTTP failures are mapped by mapHTTPError to a [*ResponseError] that wraps
// one of the sentinels in errors.go, so callers can use [errors.Is] for the
// status class and [Detail] for the server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/cuide-me/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TokenSource yields the bearer token attached to authenticated requests.
// An empty token sends the request without an Authorization header.
type TokenSource interface {
	Token() string
}

// ServerAdapter defines the dashboard's calls to the Cuide.me backend.
type ServerAdapter interface {
	// Register creates a professional account. It does not log in.
	Register(ctx context.Context, credentials models.Credentials) (models.Professional, error)

	// Login exchanges credentials for an access token. The token is returned,
	// not stored: persisting it is the caller's job.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error)

	ListPatients(ctx context.Context) ([]models.Patient, error)

	// UpdatePatient sends a partial update and returns the stored record.
	UpdatePatient(ctx context.Context, patientID int64, update models.PatientUpdate) (models.Patient, error)

	AssumeControl(ctx context.Context, patientID int64) error
	ReleaseControl(ctx context.Context, patientID int64) error

	ListMetrics(ctx context.Context, patientID int64) ([]models.Metric, error)

	// ListMessages returns the conversation in ascending time order.
	ListMessages(ctx context.Context, patientID int64) ([]models.Message, error)

	// SendMessage delivers text to the patient and returns the stored record.
	SendMessage(ctx context.Context, patientID int64, text string) (models.Message, error)

	Summarize(ctx context.Context, patientID int64) (string, error)
}

// LiveAdapter subscribes to a patient's live message feed.
type LiveAdapter interface {
	// Subscribe dials the live channel of patientID. Messages are delivered on
	// the returned channel until ctx is cancelled or the connection drops,
	// after which the channel is closed.
	Subscribe(ctx context.Context, patientID int64) (<-chan models.Message, error)
}

// MessagingAdapter sends outbound text messages to a patient's phone.
type MessagingAdapter interface {
	SendText(ctx context.Context, to, text string) error
}

// AIAdapter analyses patient messages and summarises conversations.
type AIAdapter interface {
	// Analyze classifies a patient message and proposes a reply.
	Analyze(ctx context.Context, text string) (models.Analysis, error)

	// Summarize returns a summary of the conversation in Portuguese.
	Summarize(ctx context.Context, messages []models.Message) (string, error)
}
