package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMissingBundleIsConfigurationError(t *testing.T) {
	if _, err := bundleFS.ReadFile("js/" + BundleName); err == nil {
		t.Skip("bundle is vendored; nothing to test")
	}

	Reset()
	t.Cleanup(Reset)
	t.Setenv(EnvPath, "")

	_, err := LightweightChartsJS()
	if err == nil {
		t.Fatal("expected an error without a vendored bundle")
	}
	if !strings.Contains(err.Error(), EnvPath) || !strings.Contains(err.Error(), BundleName) {
		t.Errorf("error lacks remediation guidance: %v", err)
	}
}

func TestLoadFromEnvPath(t *testing.T) {
	if _, err := bundleFS.ReadFile("js/" + BundleName); err == nil {
		t.Skip("bundle is vendored; embedded copy wins")
	}

	path := filepath.Join(t.TempDir(), "lwc.js")
	if err := os.WriteFile(path, []byte("// lwc test bundle"), 0644); err != nil {
		t.Fatal(err)
	}

	Reset()
	t.Cleanup(Reset)
	t.Setenv(EnvPath, path)

	src, err := LightweightChartsJS()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src != "// lwc test bundle" {
		t.Errorf("unexpected bundle text: %q", src)
	}

	// Second call serves the cache even if the file disappears.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	cached, err := LightweightChartsJS()
	if err != nil || cached != src {
		t.Errorf("cache miss on second call: %q, %v", cached, err)
	}
}

func TestSetScriptOverride(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	SetScript("// override")
	src, err := LightweightChartsJS()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src != "// override" {
		t.Errorf("got %q, want override", src)
	}
}
