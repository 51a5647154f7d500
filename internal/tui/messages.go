package tui

import (
	"github.com/MKhiriev/cuide-me/models"
)

// Page names known to RootModel.
const (
	pageLogin     = "login"
	pageRegister  = "register"
	pageDashboard = "dashboard"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login form. On success RootModel opens the
// dashboard.
type LoginResult struct {
	Err error
}

type RegisterResult struct {
	Err error
}

// RegisterSuccessNotice is delivered to the login page after a registration.
type RegisterSuccessNotice struct {
	Email string
}

// SessionExpiredNotice is delivered to the login page after a 401.
type SessionExpiredNotice struct{}

type patientsLoadedMsg struct {
	patients []models.Patient
	err      error
}

// The messages below carry the patient they were issued for. Results for a
// patient that is no longer selected are dropped.

type historyLoadedMsg struct {
	patientID int64
	messages  []models.Message
	err       error
}

// liveOpenedMsg carries the generation of the subscription that produced it.
type liveOpenedMsg struct {
	patientID int64
	gen       uint64
	ch        <-chan models.Message
	err       error
}

type liveMessageMsg struct {
	patientID int64
	message   models.Message
	ch        <-chan models.Message
}

type liveClosedMsg struct {
	patientID int64
	ch        <-chan models.Message
}

type messageSentMsg struct {
	patientID int64
	message   models.Message
	// fromCompose is false for a suggestion sent as is; the input is left alone.
	fromCompose bool
	err         error
}

type toggledMsg struct {
	patientID int64
	status    models.PatientStatus
	err       error
}

type renamedMsg struct {
	patient models.Patient
	err     error
}

type summaryMsg struct {
	patientID int64
	summary   string
	err       error
}

type metricsLoadedMsg struct {
	patientID int64
	metrics   []models.Metric
	err       error
}

type copiedMsg struct {
	err error
}

type logoutDoneMsg struct{}

type clearStatusMsg struct{}
