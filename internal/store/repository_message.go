package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/jackc/pgerrcode"
)

// messageRepository is the PostgreSQL-backed implementation of [MessageRepository].
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage stores a message and returns it with the id and timestamp
// assigned by the database. Transient failures are retried.
func (r *messageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateMessageQuery(message)
	if err != nil {
		return models.Message{}, err
	}

	var created models.Message
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		created, scanErr = scanMessage(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Int64("patient_id", message.PatientID).Msg("error inserting message")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Message{}, ErrPatientNotFound
		}
		return models.Message{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *messageRepository) ListMessages(ctx context.Context, patientID int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMessagesQuery(patientID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Int64("patient_id", patientID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("failed to scan message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

// ClearAlerts marks every alerting message of the patient as seen.
func (r *messageRepository) ClearAlerts(ctx context.Context, patientID int64) error {
	query, args, err := buildClearAlertsQuery(patientID)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageRepository.ClearAlerts").Int64("patient_id", patientID).Msg("failed to clear alerts")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		logger.FromContext(ctx).Debug().Int64("patient_id", patientID).Int64("cleared", n).Msg("alerts cleared")
	}

	return nil
}
