package db

import (
	"context"
	"time"
)

// Store is the lifecycle contract shared by every backend.
type Store interface {
	Pinger
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DocumentStore is a key-value backend holding one JSON document per record (Redis, Valkey).
type DocumentStore interface {
	Store
	KeyScanner
	JSONReader
}

// KeyScanner iterates keys.
type KeyScanner interface {
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// JSONReader reads JSON documents.
type JSONReader interface {
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
}

// EntityRow is a raw row of the relational entities table.
// Metadata and Content hold undecoded JSON, nil when the column is NULL.
type EntityRow struct {
	ID          string
	Name        string
	Title       string
	Description string
	Category    string
	Slug        string
	Metadata    []byte
	Content     []byte
}

// RelationalStore is a SQL backend with an entities table (Postgres).
type RelationalStore interface {
	Store
	EntityLister
}

// EntityLister lists entity rows of one kind.
type EntityLister interface {
	ListEntities(ctx context.Context, kind string) ([]EntityRow, error)
}
