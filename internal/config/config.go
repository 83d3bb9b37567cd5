package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config holds the runtime configuration for the dashboard service.
type Config struct {
	// Path to the semicolon-delimited gardens CSV.
	GardensCSV string

	// Path to the department boundaries GeoJSON.
	DepartmentsGeoJSON string

	// HTTP listen port.
	Port string

	// Origins allowed by the CORS middleware. Empty means same-origin only.
	AllowedOrigins []string

	// Requests per second allowed by the rate limiter. Zero disables it.
	RateLimitRPS int

	// Dashboard presentation settings (page text, labels, map defaults).
	Dashboard Dashboard
}

// Dashboard collects the presentation-level settings. Every field can be
// overridden from a YAML file pointed at by DASHBOARD_CONFIG; defaults match
// the original Gardens of France page.
type Dashboard struct {
	Title            string `yaml:"title"`
	Intro            string `yaml:"intro"`
	Purpose          string `yaml:"purpose"`
	DataDescription  string `yaml:"data_description"`
	GardensSourceURL string `yaml:"gardens_source_url"`
	GeoJSONSourceURL string `yaml:"geojson_source_url"`
	TableCaption     string `yaml:"table_caption"`

	Labels Labels      `yaml:"labels"`
	Map    MapDefaults `yaml:"map"`
}

// Labels are the display names for the raw CSV columns shown in the table
// and popups.
type Labels struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Department  string `yaml:"department"`
}

// MapDefaults control initial map framing. The fallback center is used when
// a filter combination matches no gardens and a mean position cannot be
// computed.
type MapDefaults struct {
	Zoom        int     `yaml:"zoom"`
	FallbackLat float64 `yaml:"fallback_lat"`
	FallbackLng float64 `yaml:"fallback_lng"`
}

// DefaultDashboard returns the built-in presentation settings.
func DefaultDashboard() Dashboard {
	return Dashboard{
		Title: "Gardens of France",
		Intro: "Using the maps below, discover the most remarkable gardens of France!",
		Purpose: "This app visualizes geospatial open data on the most remarkable gardens of France: " +
			"filter them by type and department, explore them on the maps, and browse the full list below.",
		DataDescription: "The data on the gardens comes from the French government open data platform; " +
			"the GeoJSON boundaries of the French departments come from france-geojson.",
		GardensSourceURL: "https://www.data.gouv.fr/fr/datasets/liste-des-jardins-remarquables/",
		GeoJSONSourceURL: "https://france-geojson.gregoiredavid.fr/",
		TableCaption:     "Please click here to see the full list of the gardens, with detailed descriptions",
		Labels: Labels{
			Name:        "Garden's name",
			Description: "Description",
			Department:  "Department",
		},
		Map: MapDefaults{
			Zoom: 5,
			// Geographic center of metropolitan France.
			FallbackLat: 46.603354,
			FallbackLng: 1.888334,
		},
	}
}

// LoadFromEnv loads configuration from environment variables.
//
// Environment variables:
//   - GARDENS_CSV: path to the gardens CSV (default: liste-des-jardins-remarquables.csv)
//   - DEPARTMENTS_GEOJSON: path to the boundaries GeoJSON (default: departements.geojson)
//   - PORT: HTTP listen port (default: 5050)
//   - CORS_ALLOWED_ORIGINS: comma-separated origin allow-list
//   - RATE_LIMIT_RPS: requests per second, 0 disables rate limiting
//   - DASHBOARD_CONFIG: optional YAML file overriding Dashboard settings
func LoadFromEnv() (Config, error) {
	cfg := Config{
		GardensCSV:         envOr("GARDENS_CSV", "liste-des-jardins-remarquables.csv"),
		DepartmentsGeoJSON: envOr("DEPARTMENTS_GEOJSON", "departements.geojson"),
		Port:               envOr("PORT", "5050"),
		Dashboard:          DefaultDashboard(),
	}

	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if raw := os.Getenv("RATE_LIMIT_RPS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS %q", raw)
		}
		cfg.RateLimitRPS = n
	}

	if path := os.Getenv("DASHBOARD_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read dashboard config %s: %w", path, err)
		}
		// Unmarshal over the defaults so absent keys keep their values.
		if err := yaml.Unmarshal(data, &cfg.Dashboard); err != nil {
			return Config{}, fmt.Errorf("parse dashboard config %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Validate checks that the configuration can start the service.
func (c Config) Validate() error {
	if c.GardensCSV == "" {
		return fmt.Errorf("gardens CSV path is empty")
	}
	if c.DepartmentsGeoJSON == "" {
		return fmt.Errorf("departments GeoJSON path is empty")
	}
	if c.Dashboard.Map.Zoom <= 0 {
		return fmt.Errorf("map zoom must be positive (got %d)", c.Dashboard.Map.Zoom)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
