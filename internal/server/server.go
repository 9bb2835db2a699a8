package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/a009/litecharts/internal/config"
	"github.com/a009/litecharts/internal/datasource"
	"github.com/a009/litecharts/internal/logger"
	"github.com/a009/litecharts/internal/storage"
)

// Server represents the chart service
type Server struct {
	Config  *config.Config
	Store   storage.DocumentStore
	Fetcher *datasource.Fetcher

	generateMutex sync.Mutex
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	store, err := storage.NewDocumentStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize document store: %w", err)
	}

	if cfg.GCSBucket != "" {
		logger.Infof("Charts will be stored in GCS bucket: %s", cfg.GCSBucket)
	} else {
		logger.Infof("Charts will be stored locally in: %s", cfg.LocalChartsDir)
	}

	return &Server{
		Config:  cfg,
		Store:   store,
		Fetcher: datasource.NewFetcher(),
	}, nil
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/generate", s.HandleGenerate)
	mux.HandleFunc("/charts", s.HandleListCharts)
	mux.HandleFunc("/files/", s.HandleFileProxy)

	// Root path last (catch-all)
	mux.HandleFunc("/", s.HandleRoot)

	return mux
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Store != nil {
		return s.Store.Close()
	}
	return nil
}
