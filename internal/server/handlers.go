package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/a009/litecharts/internal/config"
	"github.com/a009/litecharts/internal/logger"
	"github.com/a009/litecharts/internal/render"
	"github.com/a009/litecharts/internal/storage"
)

// HandleRoot redirects to the latest chart document
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	latestURL, err := s.findLatestChartURL(r.Context())
	if err != nil {
		logger.Debugf("No charts available: %v", err)
		s.serveInitialPage(w)
		return
	}

	logger.Debugf("Redirecting to latest chart: %s", latestURL)
	w.Header().Set("Location", latestURL)
	w.WriteHeader(http.StatusFound)
}

// serveInitialPage shows a landing page when no charts exist yet
func (s *Server) serveInitialPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, `<html><body>
<h1>litecharts %s</h1>
<p>No charts generated yet. POST to /generate to create one.</p>
</body></html>`, config.GetVersion())
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"version":   config.GetVersion(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// HandleGenerate builds and stores a new chart document
func (s *Server) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Only one generation at a time
	if !s.generateMutex.TryLock() {
		logger.Warn("Chart generation already in progress, rejecting new request")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":  "Chart generation already in progress",
			"status": "conflict",
		})
		return
	}
	defer s.generateMutex.Unlock()

	ctx := r.Context()

	logger.Info("Starting chart generation...")

	c, err := s.buildChart(ctx)
	if err != nil {
		logger.Error("Chart generation failed", err)
		http.Error(w, "Chart generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	path, err := render.Publish(ctx, s.Store, c, "chart.html")
	if err != nil {
		logger.Error("Chart publishing failed", err)
		http.Error(w, "Chart publishing failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	logger.Info("Chart generation completed successfully")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"path":      path,
		"url":       "/files/" + path,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleFileProxy serves stored files from local storage or GCS
func (s *Server) HandleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/files/")
	if filePath == "" {
		http.Error(w, "File path required", http.StatusBadRequest)
		return
	}

	// Security check: prevent directory traversal
	if strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	fileData, err := s.Store.Get(r.Context(), filePath)
	if err != nil {
		logger.Debugf("Failed to get file from storage: %v", err)
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.ContentType(filePath))
	w.Write(fileData)
}

// HandleListCharts lists recent chart documents
func (s *Server) HandleListCharts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Get limit from query parameter (default 10, capped at 100)
	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := fmt.Sscanf(limitStr, "%d", &limit); err != nil || n != 1 {
			limit = 10
		}
		if limit > 100 {
			limit = 100
		}
	}

	charts, err := s.Store.List(r.Context(), limit)
	if err != nil {
		logger.Error("Failed to list charts", err)
		http.Error(w, "Failed to list charts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"charts":    charts,
		"count":     len(charts),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// findLatestChartURL finds the URL of the most recent chart document
func (s *Server) findLatestChartURL(ctx context.Context) (string, error) {
	charts, err := s.Store.List(ctx, 1)
	if err != nil || len(charts) == 0 {
		return "", fmt.Errorf("no charts available")
	}
	return "/files/" + charts[0], nil
}
