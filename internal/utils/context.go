// Package utils provides general-purpose helpers shared by the server and the
// client: context keys, JSON response writing, the HTTP client wrapper,
// JWT handling, webhook signatures and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// ProfessionalIDCtxKey is the key used to store the authenticated
// professional's identifier in the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ProfessionalIDCtxKey, int64(42))
var ProfessionalIDCtxKey = contextKey("professionalID")

// GetProfessionalIDFromContext retrieves the professional identifier from the context.
//
// Returns the id and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetProfessionalIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ProfessionalIDCtxKey).(int64)
	return id, ok
}
