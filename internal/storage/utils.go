package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ChartFolderPath generates a consistent folder path for one rendered chart
// Format: charts/YYYY/MM/DD/Chart-YYYY-MM-DD-HH-MM-SS
func ChartFolderPath(timestamp time.Time) string {
	return fmt.Sprintf("charts/%04d/%02d/%02d/Chart-%04d-%02d-%02d-%02d-%02d-%02d",
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Hour(), timestamp.Minute(), timestamp.Second())
}

// ContentType determines the MIME content type based on file extension
func ContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return "text/html"
	case ".json":
		return "application/json"
	case ".js":
		return "application/javascript"
	case ".css":
		return "text/css"
	case ".csv":
		return "text/csv"
	case ".txt":
		return "text/plain"
	case ".md":
		return "text/markdown"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
