package storage

import (
	"context"
	"fmt"

	"github.com/a009/litecharts/internal/config"
)

// NewDocumentStore creates a store based on configuration: a GCS-backed
// store when a bucket is configured, a local directory store otherwise
func NewDocumentStore(ctx context.Context, cfg *config.Config) (DocumentStore, error) {
	if cfg.GCSBucket != "" {
		store, err := NewGCSStore(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS store: %w", err)
		}
		return store, nil
	}

	// Determine charts directory for local storage
	chartsDir := cfg.LocalChartsDir
	if chartsDir == "" {
		chartsDir = "charts" // Default fallback
	}

	store, err := NewLocalStore(chartsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local store: %w", err)
	}
	return store, nil
}
