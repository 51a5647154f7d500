package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/cuide-me/internal/logger"
)

type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveValue inserts or replaces the value stored under key.
func (r *sessionRepository) SaveValue(ctx context.Context, key, value string) error {
	query, args, err := buildSaveValueQuery(key, value)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveValue").Str("key", key).Msg("error saving session value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetValue returns the value under key or [ErrSessionValueNotFound].
func (r *sessionRepository) GetValue(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return "", err
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSessionValueNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.GetValue").Str("key", key).Msg("error reading session value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// DeleteValue removes key. Deleting a missing key is not an error.
func (r *sessionRepository) DeleteValue(ctx context.Context, key string) error {
	query, args, err := buildDeleteValueQuery(key)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.DeleteValue").Str("key", key).Msg("error deleting session value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
