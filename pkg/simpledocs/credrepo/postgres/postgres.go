package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tendant/simple-docs/pkg/simpledocs"
)

// DBTX is an interface that allows us to use either a connection pool
// or a transaction.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements simpledocs.CredentialRepository using
// PostgreSQL. The mapping still follows whole-set load/save semantics:
// Save replaces the table contents inside a transaction.
type Repository struct {
	pool *pgxpool.Pool
}

// NewWithPool creates a PostgreSQL credential repository and ensures
// the backing table exists.
func NewWithPool(ctx context.Context, pool *pgxpool.Pool) (*Repository, error) {
	r := &Repository{pool: pool}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) ensureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS document_users (
			username      TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL
		)`
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create document_users table: %w", err)
	}
	return nil
}

// Load returns the full username-to-password-hash mapping
func (r *Repository) Load(ctx context.Context) (map[string]string, error) {
	return loadCredentials(ctx, r.pool)
}

// Save replaces the full mapping inside a transaction
func (r *Repository) Save(ctx context.Context, credentials map[string]string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := replaceCredentials(ctx, tx, credentials); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit credentials: %w", err)
	}
	return nil
}

func loadCredentials(ctx context.Context, db DBTX) (map[string]string, error) {
	rows, err := db.Query(ctx, `SELECT username, password_hash FROM document_users`)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	defer rows.Close()

	credentials := map[string]string{}
	for rows.Next() {
		var username, hash string
		if err := rows.Scan(&username, &hash); err != nil {
			return nil, fmt.Errorf("failed to scan credential row: %w", err)
		}
		credentials[username] = hash
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read credential rows: %w", err)
	}

	return credentials, nil
}

func replaceCredentials(ctx context.Context, db DBTX, credentials map[string]string) error {
	if _, err := db.Exec(ctx, `DELETE FROM document_users`); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	for username, hash := range credentials {
		_, err := db.Exec(ctx,
			`INSERT INTO document_users (username, password_hash) VALUES ($1, $2)`,
			username, hash,
		)
		if err != nil {
			return fmt.Errorf("failed to insert credential for %s: %w", username, err)
		}
	}
	return nil
}

var _ simpledocs.CredentialRepository = (*Repository)(nil)
