package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/a009/litecharts/internal/logger"
)

// GCSStore keeps chart documents in a Google Cloud Storage bucket
type GCSStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore creates a new GCS-backed store
func NewGCSStore(ctx context.Context, bucketName string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStore{
		client: client,
		bucket: bucketName,
	}, nil
}

// Close closes the GCS client
func (g *GCSStore) Close() error {
	return g.client.Close()
}

// Store writes a file into the timestamped chart folder in GCS and returns
// its object path
func (g *GCSStore) Store(ctx context.Context, name string, data []byte, timestamp time.Time) (string, error) {
	objectPath := ChartFolderPath(timestamp) + "/" + name

	logger.Debugf("Storing file to GCS: gs://%s/%s", g.bucket, objectPath)

	obj := g.client.Bucket(g.bucket).Object(objectPath)

	writer := obj.NewWriter(ctx)

	// Set content type based on file extension
	writer.ContentType = ContentType(name)

	writer.CacheControl = "public, max-age=3600" // Cache for 1 hour

	writer.Metadata = map[string]string{
		"generated-at": timestamp.Format(time.RFC3339),
		"filename":     name,
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to write file to GCS: %w", err)
	}

	// Close writer to finalize upload
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize GCS file upload: %w", err)
	}

	return objectPath, nil
}

// Get retrieves any file from GCS
func (g *GCSStore) Get(ctx context.Context, path string) ([]byte, error) {
	obj := g.client.Bucket(g.bucket).Object(path)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for file %s: %w", path, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return data, nil
}

// List lists recent chart documents from GCS, sorted by creation time
// (newest first)
func (g *GCSStore) List(ctx context.Context, limit int) ([]string, error) {
	query := &storage.Query{
		Prefix: "charts/",
	}

	it := g.client.Bucket(g.bucket).Objects(ctx, query)

	var docPaths []string

	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		if strings.HasSuffix(attrs.Name, ".html") {
			docPaths = append(docPaths, attrs.Name)
		}
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
