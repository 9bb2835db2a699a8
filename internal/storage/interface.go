package storage

import (
	"context"
	"time"
)

// DocumentStore defines the interface for chart document storage
type DocumentStore interface {
	// Close closes the store
	Close() error

	// Store writes data under a timestamped chart folder and returns the
	// stored path relative to the store root
	Store(ctx context.Context, name string, data []byte, timestamp time.Time) (string, error)

	// Get retrieves a stored file by its path relative to the store root
	Get(ctx context.Context, path string) ([]byte, error)

	// List returns paths of recent chart documents, newest first
	List(ctx context.Context, limit int) ([]string, error)
}
