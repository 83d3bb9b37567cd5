package geo

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Boundary is one named department polygon from the boundaries GeoJSON.
// Only the name and the geometry are kept; every other feature property is
// discarded at load time.
type Boundary struct {
	Name     string
	Geometry geom.T
}

// LoadBoundaries reads a GeoJSON FeatureCollection of department boundaries.
// Each feature must carry a "nom" string property and a Polygon or
// MultiPolygon geometry. Any malformed feature fails the whole load: the
// service has no partial-load semantics.
func LoadBoundaries(path string) ([]Boundary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read boundaries file %s: %w", path, err)
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse boundaries file %s: %w", path, err)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("boundaries file %s contains no features", path)
	}

	boundaries := make([]Boundary, 0, len(fc.Features))
	seen := make(map[string]bool, len(fc.Features))
	for i, f := range fc.Features {
		name, ok := f.Properties["nom"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("boundaries file %s: feature %d has no \"nom\" property", path, i)
		}
		switch f.Geometry.(type) {
		case *geom.Polygon, *geom.MultiPolygon:
		default:
			return nil, fmt.Errorf("boundaries file %s: feature %q has unsupported geometry type %T", path, name, f.Geometry)
		}
		if seen[name] {
			return nil, fmt.Errorf("boundaries file %s: duplicate department %q", path, name)
		}
		seen[name] = true
		boundaries = append(boundaries, Boundary{Name: name, Geometry: f.Geometry})
	}

	return boundaries, nil
}
