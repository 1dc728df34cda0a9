// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
)

const (
	kvTable       = "kv_entries"
	kvKeyColumn   = "entry_key"
	kvValueColumn = "entry_value"
	kvUpdatedAt   = "updated_at"
)

// sqlKeyValueStore is the durable tier backed by the kv_entries table.
// The same queries serve SQLite and PostgreSQL; only the placeholder style
// differs.
type sqlKeyValueStore struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
	now     func() time.Time
}

// NewSQLKeyValueStore returns a KeyValueStore over db. db must be migrated.
func NewSQLKeyValueStore(db *DB, log *logger.Logger) KeyValueStore {
	return &sqlKeyValueStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(db.placeholder),
		logger:  log,
		now:     time.Now,
	}
}

func (s *sqlKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := s.builder.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlKeyValueStore.Get").
			Str("key", key).
			Msg("failed to read key")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, classifyError(err))
	}

	return value, nil
}

func (s *sqlKeyValueStore) Set(ctx context.Context, key, value string) error {
	query, args, err := s.builder.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAt).
		Values(key, value, s.now().UTC()).
		Suffix("ON CONFLICT (" + kvKeyColumn + ") DO UPDATE SET " +
			kvValueColumn + " = excluded." + kvValueColumn + ", " +
			kvUpdatedAt + " = excluded." + kvUpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlKeyValueStore.Set").
			Str("key", key).
			Int("value_len", len(value)).
			Msg("failed to upsert key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, classifyError(err))
	}

	return nil
}

func (s *sqlKeyValueStore) Remove(ctx context.Context, key string) error {
	query, args, err := s.builder.
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlKeyValueStore.Remove").
			Str("key", key).
			Msg("failed to delete key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, classifyError(err))
	}

	return nil
}
