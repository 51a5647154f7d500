package service

import (
	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/internal/logger"
)

type ClientServices struct {
	Session             ClientSession
	AuthService         ClientAuthService
	PatientService      ClientPatientService
	ConversationService ClientConversationService
}

// NewClientServices wires the dashboard services. session must be the same
// TokenSource the adapters were built with.
func NewClientServices(session ClientSession, serverAdapter adapter.ServerAdapter, liveAdapter adapter.LiveAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Session:             session,
		AuthService:         NewClientAuthService(session, serverAdapter, logger),
		PatientService:      NewClientPatientService(session, serverAdapter, logger),
		ConversationService: NewClientConversationService(session, serverAdapter, liveAdapter, logger),
	}
}
