package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the chart service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8980"`

	// GCP configuration (optional, enables GCS-backed chart storage)
	GCPProjectID string `env:"GCP_PROJECT_ID"`
	GCSBucket    string `env:"GCS_BUCKET"`

	// Local storage configuration
	LocalChartsDir string `env:"LOCAL_CHARTS_DIR,default=./charts"`

	// Candle data source (optional, the demo endpoint falls back to
	// generated sample data when unset)
	CandleSourceURL string `env:"CANDLE_SOURCE_URL"`

	// Default chart dimensions in pixels
	ChartWidth  int `env:"CHART_WIDTH,default=800"`
	ChartHeight int `env:"CHART_HEIGHT,default=600"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
