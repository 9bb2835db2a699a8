package config

import (
	"os"
	"path/filepath"
	"strings"
)

// GetVersion returns version from environment variable or the VERSION file
func GetVersion() string {
	// First try to get version from environment variable (set by CI/CD)
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}

	// Try to read from VERSION file in project root
	for _, versionPath := range []string{"VERSION", filepath.Join("..", "VERSION")} {
		if content, err := os.ReadFile(versionPath); err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	// Final fallback
	return "0.1.0"
}
