// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const sessionTable = "session"

func buildSaveValueQuery(key, value string) (string, []any, error) {
	return buildQuery(sqlite.
		Insert(sessionTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"))
}

func buildGetValueQuery(key string) (string, []any, error) {
	return buildQuery(sqlite.
		Select("value").
		From(sessionTable).
		Where(sq.Eq{"key": key}))
}

func buildDeleteValueQuery(key string) (string, []any, error) {
	return buildQuery(sqlite.
		Delete(sessionTable).
		Where(sq.Eq{"key": key}))
}
