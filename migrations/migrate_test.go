// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	for name, run := range map[string]func(*sql.DB) error{"postgres": Migrate, "sqlite": MigrateLocal} {
		t.Run(name, func(t *testing.T) {
			db, _, err := sqlmock.New()
			if err != nil {
				t.Fatalf("failed to create sqlmock: %v", err)
			}
			defer db.Close()

			// no expectations: the first goose query fails
			err = run(db)
			if err == nil {
				t.Fatal("expected error from migration, got nil")
			}
			if !strings.Contains(err.Error(), "migration error") {
				t.Errorf("expected wrapped migration error, got: %v", err)
			}
		})
	}
}

func TestMigrate_NilDB(t *testing.T) {
	if err := Migrate(nil); err == nil || !strings.Contains(err.Error(), "db is nil") {
		t.Fatalf("expected 'db is nil' error, got: %v", err)
	}
	if err := MigrateLocal(nil); err == nil || !strings.Contains(err.Error(), "db is nil") {
		t.Fatalf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	pg, err := fs.Glob(embedMigrations, "postgres/*.sql")
	if err != nil || len(pg) != 4 {
		t.Fatalf("expected 4 postgres migrations, got %v (%v)", pg, err)
	}

	lite, err := fs.Glob(embedMigrations, "sqlite/*.sql")
	if err != nil || len(lite) != 1 {
		t.Fatalf("expected 1 sqlite migration, got %v (%v)", lite, err)
	}

	for _, name := range append(pg, lite...) {
		data, _ := fs.ReadFile(embedMigrations, name)
		if !strings.Contains(string(data), "-- +goose Up") || !strings.Contains(string(data), "-- +goose Down") {
			t.Errorf("%s: missing goose annotations", name)
		}
	}
}
