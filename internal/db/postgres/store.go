// Package postgres implements db.RelationalStore on PostgreSQL via the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/kailas-cloud/healthdir/internal/db"
)

// Compile-time check: Store implements db.RelationalStore.
var _ db.RelationalStore = (*Store)(nil)

//go:embed schema.sql
var schema string

const listEntitiesSQL = `
	SELECT id,
	       coalesce(name, ''),
	       coalesce(title, ''),
	       coalesce(description, ''),
	       coalesce(category, ''),
	       coalesce(slug, ''),
	       metadata,
	       content
	  FROM entities
	 WHERE kind = $1
	 ORDER BY id`

// Store reads directory records from the entities table.
type Store struct {
	db *sql.DB
}

// Open creates a pooled PostgreSQL handle. It does not connect;
// WaitForReady or Ping checks reachability.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("dsn is required")
	}

	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetConnMaxIdleTime(5 * time.Minute)
	conn.SetConnMaxLifetime(30 * time.Minute)
	conn.SetMaxIdleConns(10)
	conn.SetMaxOpenConns(20)

	return &Store{db: conn}, nil
}

// EnsureSchema creates the entities table if it is missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	_ = s.db.Close()
}

// WaitForReady polls Ping until the database responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.Ping(ctx); err == nil {
		return nil
	}

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// ListEntities returns every row of the given kind ordered by id.
func (s *Store) ListEntities(ctx context.Context, kind string) ([]db.EntityRow, error) {
	rows, err := s.db.QueryContext(ctx, listEntitiesSQL, kind)
	if err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}
	defer rows.Close()

	var out []db.EntityRow
	for rows.Next() {
		var row db.EntityRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Title, &row.Description,
			&row.Category, &row.Slug, &row.Metadata, &row.Content,
		); err != nil {
			return nil, &db.Error{Op: db.OpSelect, Err: fmt.Errorf("scan %s: %w", kind, err)}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}
	return out, nil
}
