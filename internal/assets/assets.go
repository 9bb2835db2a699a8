// Package assets owns the embedded Lightweight Charts bundle. The bundle
// text is process-wide state: loaded once, cached read-only for the life
// of the process, and shared by concurrent renders without coordination.
package assets

import (
	"embed"
	"fmt"
	"os"
	"sync"
)

//go:embed js
var bundleFS embed.FS

// BundleName is the file name the loader expects inside the embedded js
// directory (see js/README.md for how to vendor it).
const BundleName = "lightweight-charts.standalone.production.js"

// EnvPath names the environment variable that can point at an external
// copy of the bundle when it is not vendored into the binary.
const EnvPath = "LWC_JS_PATH"

var (
	mu     sync.Mutex
	loaded bool
	script string
)

// LightweightChartsJS returns the Lightweight Charts source text, loading
// it on first use. The embedded copy wins; otherwise the path in LWC_JS_PATH
// is read. A missing bundle is a configuration error, reported with
// remediation guidance and kept distinct from data errors; the load is
// retried on the next call so a fixed environment takes effect.
func LightweightChartsJS() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if loaded {
		return script, nil
	}

	src, err := load()
	if err != nil {
		return "", err
	}

	script = src
	loaded = true
	return script, nil
}

func load() (string, error) {
	if data, err := bundleFS.ReadFile("js/" + BundleName); err == nil {
		return string(data), nil
	}

	if path := os.Getenv(EnvPath); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read Lightweight Charts bundle from %s=%s: %w", EnvPath, path, err)
		}
		return string(data), nil
	}

	return "", fmt.Errorf(
		"Lightweight Charts bundle not found: vendor it to internal/assets/js/%s (run scripts/vendor-lwc.sh) or set %s to a local copy",
		BundleName, EnvPath)
}

// SetScript replaces the cached bundle text. Intended for tests and for
// embedders that ship the bundle through other means.
func SetScript(src string) {
	mu.Lock()
	defer mu.Unlock()
	script = src
	loaded = true
}

// Reset clears the cached bundle so the next call loads again. Test hook.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	script = ""
	loaded = false
}
