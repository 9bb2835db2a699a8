package render

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/a009/litecharts/internal/chart"
	"github.com/a009/litecharts/internal/logger"
	"github.com/a009/litecharts/internal/storage"
)

// Save renders a chart and writes the HTML document to a local file path.
func Save(c *chart.Chart, path string) error {
	html, err := Document(c)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write chart document %s: %w", path, err)
	}

	logger.Infof("Chart document saved to %s", path)
	return nil
}

// Publish renders a chart and stores the HTML document under a timestamped
// folder in the given store. Returns the stored path.
func Publish(ctx context.Context, store storage.DocumentStore, c *chart.Chart, name string) (string, error) {
	html, err := Document(c)
	if err != nil {
		return "", err
	}

	path, err := store.Store(ctx, name, []byte(html), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to store chart document %s: %w", name, err)
	}

	logger.Infof("Chart document published to %s", path)
	return path, nil
}
