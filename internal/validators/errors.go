package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmptyPassword      = errors.New("password is required")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrNameTooLong        = errors.New("name is too long")
	ErrInvalidMeasurement = errors.New("invalid body measurement")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrEmptyText          = errors.New("message text cannot be empty")
	ErrTextTooLong        = errors.New("message text is too long")
)
