package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/a009/litecharts/internal/assets"
	"github.com/a009/litecharts/internal/config"
	"github.com/a009/litecharts/internal/datasource"
	"github.com/a009/litecharts/internal/storage"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	assets.SetScript("// test library")
	t.Cleanup(assets.Reset)

	store, err := storage.NewLocalStore(filepath.Join(t.TempDir(), "charts"))
	if err != nil {
		t.Fatalf("Failed to create local store: %v", err)
	}

	return &Server{
		Config: &config.Config{
			ChartWidth:  800,
			ChartHeight: 600,
		},
		Store:   store,
		Fetcher: datasource.NewFetcher(),
	}
}

func TestHandleHealth(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.HandleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var health map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("Failed to parse health response: %v", err)
	}
	if health["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", health["status"])
	}
}

func TestHandleHealthMethodNotAllowed(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	s.HandleHealth(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}

func TestHandleGenerateAndFetchChart(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	rec := httptest.NewRecorder()
	s.HandleGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse generate response: %v", err)
	}

	path, _ := result["path"].(string)
	if path == "" {
		t.Fatal("Expected a stored chart path in the response")
	}

	// The stored document is a full chart page
	data, err := s.Store.Get(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to read stored chart: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "addCandlestickSeries(") {
		t.Error("Expected candlestick series in the generated document")
	}
	if !strings.Contains(html, "addHistogramSeries(") {
		t.Error("Expected volume histogram in the generated document")
	}
	if !strings.Contains(html, "subscribeVisibleLogicalRangeChange") {
		t.Error("Expected time sync between the price and volume panes")
	}
}

func TestHandleGenerateMethodNotAllowed(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/generate", nil)
	rec := httptest.NewRecorder()
	s.HandleGenerate(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}

func TestHandleListCharts(t *testing.T) {
	s := testServer(t)

	// Store two documents directly
	ctx := context.Background()
	s.Store.Store(ctx, "chart.html", []byte("a"), time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))
	s.Store.Store(ctx, "chart.html", []byte("b"), time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/charts", nil)
	rec := httptest.NewRecorder()
	s.HandleListCharts(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse list response: %v", err)
	}
	if response["count"] != float64(2) {
		t.Errorf("Expected count 2, got %v", response["count"])
	}
}

func TestHandleFileProxy(t *testing.T) {
	s := testServer(t)

	ctx := context.Background()
	path, err := s.Store.Store(ctx, "chart.html", []byte("<html>doc</html>"),
		time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/files/"+path, nil)
	rec := httptest.NewRecorder()
	s.HandleFileProxy(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Type") != "text/html" {
		t.Errorf("Expected text/html content type, got %s", rec.Header().Get("Content-Type"))
	}
	if rec.Body.String() != "<html>doc</html>" {
		t.Errorf("Unexpected body: %s", rec.Body.String())
	}
}

func TestHandleFileProxyTraversal(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/files/../secrets", nil)
	rec := httptest.NewRecorder()
	s.HandleFileProxy(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for traversal attempt, got %d", rec.Code)
	}
}

func TestHandleFileProxyMissing(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/files/charts/nope.html", nil)
	rec := httptest.NewRecorder()
	s.HandleFileProxy(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestHandleRootNoCharts(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.HandleRoot(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 landing page, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/generate") {
		t.Error("Expected landing page to mention /generate")
	}
}

func TestHandleRootRedirectsToLatest(t *testing.T) {
	s := testServer(t)

	ctx := context.Background()
	path, _ := s.Store.Store(ctx, "chart.html", []byte("doc"),
		time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.HandleRoot(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", rec.Code)
	}
	if rec.Header().Get("Location") != "/files/"+path {
		t.Errorf("Expected redirect to latest chart, got %s", rec.Header().Get("Location"))
	}
}
