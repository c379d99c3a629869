package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
//
// Consumers should depend on the narrow sub-interfaces instead.
type Store interface {
	Pinger
	JSONStore
	IndexManager
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// JSONStore provides JSON document operations.
type JSONStore interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// IndexManager provides FT index and alias lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
	ListIndexes(ctx context.Context) ([]string, error)
	AliasAdd(ctx context.Context, alias, index string) error
	AliasUpdate(ctx context.Context, alias, index string) error
	AliasTarget(ctx context.Context, alias string) (string, error)
}

// Searcher provides read operations over FT indexes.
type Searcher interface {
	Search(ctx context.Context, index string, q *Query) (*SearchResult, error)
	Count(ctx context.Context, index string) (int, error)
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
