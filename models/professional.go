package models

// Professional is a healthcare professional account allowed to use the dashboard.
type Professional struct {
	// ID is the internal unique identifier.
	ID int64 `json:"id"`

	// Email is the unique login of the professional.
	Email string `json:"email"`

	// HashedPassword stores the bcrypt hash of the password.
	// It is never serialized.
	HashedPassword string `json:"-"`
}

// Credentials is the login/registration pair entered by a professional.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
