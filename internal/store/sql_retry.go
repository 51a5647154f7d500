package store

import (
	"context"
	"time"
)

const (
	retryAttempts  = 3
	retryBaseDelay = 50 * time.Millisecond
)

// withRetry runs op until it succeeds, fails with a non-retryable error or
// the attempts are exhausted. The delay doubles after every attempt.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	delay := retryBaseDelay

	var err error
	for attempt := 1; ; attempt++ {
		if err = op(); err == nil {
			return nil
		}

		if attempt == retryAttempts || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
		delay *= 2
	}
}
