package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LocalStore keeps chart documents on the local file system
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates a new local store rooted at baseDir
func NewLocalStore(baseDir string) (*LocalStore, error) {
	// Ensure base directory exists
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}

	return &LocalStore{
		baseDir: baseDir,
	}, nil
}

// Close is a no-op for local storage (implements same interface as GCSStore)
func (l *LocalStore) Close() error {
	return nil
}

// Store writes a file into the timestamped chart folder and returns its
// path relative to the store root
func (l *LocalStore) Store(ctx context.Context, name string, data []byte, timestamp time.Time) (string, error) {
	relPath := filepath.Join(ChartFolderPath(timestamp), name)
	fullPath := filepath.Join(l.baseDir, relPath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", filepath.Dir(fullPath), err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", fullPath, err)
	}

	return relPath, nil
}

// Get retrieves any file from local storage
func (l *LocalStore) Get(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.baseDir, path))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// List lists recent chart documents, sorted by creation time (newest first)
func (l *LocalStore) List(ctx context.Context, limit int) ([]string, error) {
	chartsPath := filepath.Join(l.baseDir, "charts")

	var docPaths []string

	err := filepath.Walk(chartsPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors and continue
		}

		if !info.IsDir() && strings.HasSuffix(info.Name(), ".html") {
			// Get relative path from baseDir
			relPath, _ := filepath.Rel(l.baseDir, path)
			docPaths = append(docPaths, relPath)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk charts directory: %w", err)
	}

	// Sort alphabetically, then reverse for newest first
	sort.Strings(docPaths)
	for i, j := 0, len(docPaths)-1; i < j; i, j = i+1, j-1 {
		docPaths[i], docPaths[j] = docPaths[j], docPaths[i]
	}

	// Apply limit
	if limit > 0 && limit < len(docPaths) {
		docPaths = docPaths[:limit]
	}

	return docPaths, nil
}
