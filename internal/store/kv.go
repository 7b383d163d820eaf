// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kovalyov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/akovalyov/daybook/internal/logger"
)

// Reserved keys in the kv table. One key holds the full serialized
// snapshot; the rest hold the credential set and the account label.
const (
	KeyAppState     = "app_state"
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyTokenExpiry  = "token_expires_at"
	KeyAccountEmail = "account_email"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
}

// NewKVRepository returns the SQLite-backed [KV] implementation used by
// the state and token repositories.
func NewKVRepository(db *DB, logger *logger.Logger) KV {
	return &kvRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := sq.Select("value").
		From("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value []byte
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		r.logger.Err(err).
			Str("func", "kvRepository.Get").
			Str("key", key).
			Msg("failed to scan kv row")
		return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return value, nil
}

func (r *kvRepository) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := sq.Insert("kv").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "kvRepository.Set").
			Str("key", key).
			Msg("failed to execute kv upsert")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "kvRepository.Delete").
			Str("key", key).
			Msg("failed to execute kv delete")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}
