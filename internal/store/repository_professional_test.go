package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateProfessional(t *testing.T) {
	professional := models.Professional{Email: "ana@clinic.com", HashedPassword: "hash"}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO professionals").
					WithArgs("ana@clinic.com", "hash").
					WillReturnRows(sqlmock.NewRows(professionalColumns).AddRow(1, "ana@clinic.com", "hash"))
			},
			wantID: 1,
		},
		{
			name: "duplicate email",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO professionals").
					WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrEmailAlreadyExists,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO professionals").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)
			repo := NewProfessionalRepository(db, logger.Nop())

			created, err := repo.CreateProfessional(context.Background(), professional)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, created.ID)
				assert.Equal(t, professional.Email, created.Email)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindProfessionalByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery("SELECT id, email, hashed_password FROM professionals WHERE email = \\$1").
			WithArgs("ana@clinic.com").
			WillReturnRows(sqlmock.NewRows(professionalColumns).AddRow(7, "ana@clinic.com", "hash"))

		found, err := NewProfessionalRepository(db, logger.Nop()).FindProfessionalByEmail(context.Background(), "ana@clinic.com")
		require.NoError(t, err)
		assert.Equal(t, int64(7), found.ID)
		assert.Equal(t, "hash", found.HashedPassword)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery("SELECT id, email").WillReturnError(sql.ErrNoRows)

		_, err := NewProfessionalRepository(db, logger.Nop()).FindProfessionalByEmail(context.Background(), "nobody@clinic.com")
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery("SELECT id, email").WillReturnError(errors.New("boom"))

		_, err := NewProfessionalRepository(db, logger.Nop()).FindProfessionalByEmail(context.Background(), "ana@clinic.com")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}
