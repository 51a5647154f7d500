package service

import "errors"

// Dashboard errors.
var (
	// ErrSessionExpired wraps every 401 outside login. The session is already
	// cleared when it is returned.
	ErrSessionExpired = errors.New("session expired")
	// ErrSupersededSession is a 401 for a token that a newer login already
	// replaced. The current session is left alone.
	ErrSupersededSession = errors.New("request sent with a replaced session")

	ErrNetwork = errors.New("server unreachable")

	ErrEmptyMessage      = errors.New("message is empty")
	ErrNoPatientSelected = errors.New("no patient selected")
)
