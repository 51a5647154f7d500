package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/cuide-me/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldBody     = "body_measurements"
	FieldNotEmpty = "not_empty"
	FieldText     = "text"
)

// Limits of user-supplied values.
const (
	// bcrypt ignores input past 72 bytes.
	maxPasswordBytes = 72
	maxNameRunes     = 120
	// WhatsApp text messages are capped at 4096 characters.
	maxTextRunes = 4096

	maxHeightCM = 300
	maxWeightKG = 700
)

// RequestValidator validates the request models accepted by the API.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.PatientUpdate:
		return v.validatePatientUpdate(value, fields...)
	case *models.PatientUpdate:
		return v.validatePatientUpdate(*value, fields...)

	case models.SendMessageRequest:
		return v.validateSendMessage(value, fields...)
	case *models.SendMessageRequest:
		return v.validateSendMessage(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(creds.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
			if len(creds.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validatePatientUpdate(update models.PatientUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldName, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldNotEmpty:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if update.Name == nil {
				continue
			}
			name := strings.TrimSpace(*update.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > maxNameRunes {
				return ErrNameTooLong
			}
		case FieldBody:
			if !inRange(update.HeightCM, maxHeightCM) ||
				!inRange(update.InitialWeight, maxWeightKG) ||
				!inRange(update.TargetWeight, maxWeightKG) {
				return ErrInvalidMeasurement
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSendMessage(req models.SendMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if strings.TrimSpace(req.Text) == "" {
				return ErrEmptyText
			}
			if utf8.RuneCountInString(req.Text) > maxTextRunes {
				return ErrTextTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func inRange(value *float64, upper float64) bool {
	return value == nil || (*value > 0 && *value <= upper)
}
