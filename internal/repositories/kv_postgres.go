package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-currency-display/internal/logger"
)

// PostgresStore keeps key-value pairs in the kv_store table.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a store backed by db.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the kv_store table if it does not exist.
func (r *PostgresStore) EnsureSchema(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`
	_, err := r.db.ExecContext(ctx, query)

	logger.Log.Infow("ensure schema",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	return err
}

// Get returns the value for key; no row means absent.
func (r *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `
		SELECT value
		FROM kv_store
		WHERE key = $1
	`

	var value string
	err := r.db.GetContext(ctx, &value, query, key)

	logger.Log.Debugw("kv get",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{key},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set performs an UPSERT of key.
func (r *PostgresStore) Set(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	res, err := r.db.ExecContext(ctx, query, key, value)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("kv set",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{key},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
