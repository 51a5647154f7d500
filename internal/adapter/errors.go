package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport marks failures where no response was received.
	ErrTransport = errors.New("transport error")

	ErrMessageNotDelivered = errors.New("message not delivered")
	ErrEmptyAIResponse     = errors.New("empty AI response")
	ErrInvalidAIResponse   = errors.New("invalid AI response")
)

// ResponseError is a non-2xx answer from an HTTP peer.
type ResponseError struct {
	StatusCode int
	// Detail is the string "detail" field of a JSON body, "" otherwise.
	Detail string

	kind error
	// token is the bearer token the request carried. It is never printed.
	token string
}

func (e *ResponseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s (http %d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%s (http %d): %s", e.kind, e.StatusCode, e.Detail)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

// RequestToken returns the bearer token sent with the request that failed
// with err, or "" when err is not a [ResponseError] or no token was sent.
func RequestToken(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.token
	}
	return ""
}

// Detail returns the server-provided detail carried by err, or "".
func Detail(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Detail
	}
	return ""
}
