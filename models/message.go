package models

import "time"

// Sender identifies who wrote a message.
type Sender string

const (
	SenderPatient      Sender = "patient"
	SenderProfessional Sender = "professional"
)

// Message is a single chat message exchanged with a patient.
type Message struct {
	ID        int64     `json:"id"`
	PatientID int64     `json:"-"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`

	// HasAlert marks inbound messages that need a professional's attention.
	// It is cleared once the conversation is opened and is not part of the wire record.
	HasAlert bool `json:"-"`

	// AISuggestion is a candidate reply produced by the assistant for inbound
	// messages of patients in manual mode.
	AISuggestion *string `json:"ai_suggestion"`
}

// Suggestion returns the attached AI suggestion or an empty string.
func (m Message) Suggestion() string {
	if m.AISuggestion == nil {
		return ""
	}
	return *m.AISuggestion
}

// SendMessageRequest is the body of POST /api/messages/send/{patientId}.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// SummaryResponse is the body returned by POST /api/messages/{patientId}/summarize.
type SummaryResponse struct {
	Summary string `json:"summary"`
}
