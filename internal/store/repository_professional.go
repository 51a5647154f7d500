package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/jackc/pgerrcode"
)

// professionalRepository is the PostgreSQL-backed implementation of
// [ProfessionalRepository] over the "professionals" table.
type professionalRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfessionalRepository constructs a [ProfessionalRepository] backed by
// the provided database connection and logger.
func NewProfessionalRepository(db *DB, logger *logger.Logger) ProfessionalRepository {
	logger.Debug().Msg("creating professional repository")
	return &professionalRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfessional persists a new account and returns it with its id.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *professionalRepository) CreateProfessional(ctx context.Context, professional models.Professional) (models.Professional, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateProfessionalQuery(professional)
	if err != nil {
		return models.Professional{}, err
	}

	created, err := scanProfessional(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*professionalRepository.CreateProfessional").Msg("error inserting professional")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Professional{}, ErrEmailAlreadyExists
		}
		return models.Professional{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindProfessionalByEmail returns the account with the given email or
// [ErrProfessionalNotFound].
func (r *professionalRepository) FindProfessionalByEmail(ctx context.Context, email string) (models.Professional, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindProfessionalByEmailQuery(email)
	if err != nil {
		return models.Professional{}, err
	}

	found, err := scanProfessional(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Professional{}, ErrProfessionalNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*professionalRepository.FindProfessionalByEmail").Msg("error selecting professional")
		return models.Professional{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
