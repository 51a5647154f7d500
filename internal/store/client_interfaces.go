package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository is the dashboard's small key/value store. It keeps the
// access token between runs.
type SessionRepository interface {
	SaveValue(ctx context.Context, key, value string) error
	GetValue(ctx context.Context, key string) (string, error)
	DeleteValue(ctx context.Context, key string) error
}
