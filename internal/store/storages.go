package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
)

// Storages groups the server repositories so they can be handed to the
// service layer as one value.
type Storages struct {
	ProfessionalRepository ProfessionalRepository
	PatientRepository      PatientRepository
	MessageRepository      MessageRepository
	MetricRepository       MetricRepository

	db *DB
}

// NewStorages connects to Postgres, applies pending migrations and builds
// the repositories on top of the connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		ProfessionalRepository: NewProfessionalRepository(db, log),
		PatientRepository:      NewPatientRepository(db, log),
		MessageRepository:      NewMessageRepository(db, log),
		MetricRepository:       NewMetricRepository(db, log),
		db:                     db,
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
