package models

// PatientStatus is the handling mode of a patient conversation.
type PatientStatus string

const (
	// StatusAutomatic means replies are generated and sent by the assistant.
	StatusAutomatic PatientStatus = "automatico"

	// StatusManual means a professional has taken over the conversation.
	StatusManual PatientStatus = "manual"
)

// Toggled returns the mode the patient switches to when the control toggle is used.
// Anything other than automatic is treated as manual.
func (s PatientStatus) Toggled() PatientStatus {
	if s == StatusAutomatic {
		return StatusManual
	}
	return StatusAutomatic
}

// Patient is a person followed through the WhatsApp channel.
type Patient struct {
	ID          int64         `json:"id"`
	PhoneNumber string        `json:"phone_number"`
	Name        *string       `json:"name"`
	HasAlert    bool          `json:"has_alert"`
	Status      PatientStatus `json:"status"`

	// HeightCM, InitialWeight and TargetWeight are optional body data
	// used by the follow-up program.
	HeightCM      *float64 `json:"altura_cm"`
	InitialWeight *float64 `json:"peso_inicial"`
	TargetWeight  *float64 `json:"peso_meta"`
}

// DisplayName returns the patient's name or falls back to the phone number.
func (p Patient) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return p.PhoneNumber
}

// PatientUpdate is a partial update of a patient.
// Only non-nil fields are applied.
type PatientUpdate struct {
	Name          *string  `json:"name,omitempty"`
	HeightCM      *float64 `json:"altura_cm,omitempty"`
	InitialWeight *float64 `json:"peso_inicial,omitempty"`
	TargetWeight  *float64 `json:"peso_meta,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u PatientUpdate) IsEmpty() bool {
	return u.Name == nil && u.HeightCM == nil && u.InitialWeight == nil && u.TargetWeight == nil
}
