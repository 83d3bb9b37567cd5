package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tortuecookie/jardins/internal/config"
)

// TestLoadFromEnv_Defaults verifies defaults hold when nothing is set.
func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"GARDENS_CSV", "DEPARTMENTS_GEOJSON", "PORT", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "DASHBOARD_CONFIG"} {
		t.Setenv(k, "")
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	if cfg.GardensCSV != "liste-des-jardins-remarquables.csv" {
		t.Errorf("unexpected default CSV path %q", cfg.GardensCSV)
	}
	if cfg.Port != "5050" {
		t.Errorf("unexpected default port %q", cfg.Port)
	}
	if cfg.Dashboard.Title != "Gardens of France" {
		t.Errorf("unexpected default title %q", cfg.Dashboard.Title)
	}
	if cfg.Dashboard.Map.Zoom != 5 {
		t.Errorf("unexpected default zoom %d", cfg.Dashboard.Map.Zoom)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected the default config to validate, got: %v", err)
	}
}

// TestLoadFromEnv_Overrides verifies env vars take precedence and the
// origin list splits on commas.
func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("GARDENS_CSV", "/data/gardens.csv")
	t.Setenv("DEPARTMENTS_GEOJSON", "/data/depts.geojson")
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://gardens.example ")
	t.Setenv("RATE_LIMIT_RPS", "25")
	t.Setenv("DASHBOARD_CONFIG", "")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	if cfg.GardensCSV != "/data/gardens.csv" || cfg.Port != "8080" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://gardens.example" {
		t.Errorf("unexpected origin list %v", cfg.AllowedOrigins)
	}
	if cfg.RateLimitRPS != 25 {
		t.Errorf("unexpected rate limit %d", cfg.RateLimitRPS)
	}
}

// TestLoadFromEnv_BadRateLimit verifies a malformed rate limit is rejected
// rather than silently defaulted.
func TestLoadFromEnv_BadRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "lots")

	if _, err := config.LoadFromEnv(); err == nil {
		t.Fatal("expected an error for a malformed RATE_LIMIT_RPS")
	}
}

// TestLoadFromEnv_YAMLOverlay verifies the dashboard YAML overrides only
// the keys it sets, leaving the rest of the defaults intact.
func TestLoadFromEnv_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	content := "title: Jardins de France\nlabels:\n  department: Département\nmap:\n  zoom: 6\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	t.Setenv("DASHBOARD_CONFIG", path)

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	if cfg.Dashboard.Title != "Jardins de France" {
		t.Errorf("expected the overridden title, got %q", cfg.Dashboard.Title)
	}
	if cfg.Dashboard.Labels.Department != "Département" {
		t.Errorf("expected the overridden label, got %q", cfg.Dashboard.Labels.Department)
	}
	if cfg.Dashboard.Map.Zoom != 6 {
		t.Errorf("expected the overridden zoom, got %d", cfg.Dashboard.Map.Zoom)
	}
	// Untouched keys keep their defaults.
	if cfg.Dashboard.Labels.Name != "Garden's name" {
		t.Errorf("expected the default name label, got %q", cfg.Dashboard.Labels.Name)
	}
}

// TestLoadFromEnv_MissingYAML verifies a dangling DASHBOARD_CONFIG path
// fails loudly with the file name.
func TestLoadFromEnv_MissingYAML(t *testing.T) {
	t.Setenv("DASHBOARD_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := config.LoadFromEnv(); err == nil {
		t.Fatal("expected an error for a missing dashboard config file")
	}
}
