package geo_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/twpayne/go-geom"

	"github.com/tortuecookie/jardins/internal/geo"
)

func writeGeoJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "departements.geojson")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const validFeatureCollection = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"code": "69", "nom": "Rhône"},
      "geometry": {"type": "Polygon", "coordinates": [[[4.0,45.0],[5.0,45.0],[5.0,46.0],[4.0,46.0],[4.0,45.0]]]}
    },
    {
      "type": "Feature",
      "properties": {"code": "75", "nom": "Paris"},
      "geometry": {"type": "MultiPolygon", "coordinates": [[[[2.2,48.8],[2.5,48.8],[2.5,48.9],[2.2,48.9],[2.2,48.8]]]]}
    }
  ]
}`

// TestLoadBoundaries_Valid verifies names and geometries survive the load
// and extra properties are discarded.
func TestLoadBoundaries_Valid(t *testing.T) {
	path := writeGeoJSON(t, validFeatureCollection)

	bs, err := geo.LoadBoundaries(path)
	if err != nil {
		t.Fatalf("LoadBoundaries error: %v", err)
	}

	if len(bs) != 2 {
		t.Fatalf("expected 2 boundaries, got %d", len(bs))
	}
	if bs[0].Name != "Rhône" || bs[1].Name != "Paris" {
		t.Errorf("unexpected names: %q, %q", bs[0].Name, bs[1].Name)
	}
	if _, ok := bs[0].Geometry.(*geom.Polygon); !ok {
		t.Errorf("expected Rhône to be a Polygon, got %T", bs[0].Geometry)
	}
	if _, ok := bs[1].Geometry.(*geom.MultiPolygon); !ok {
		t.Errorf("expected Paris to be a MultiPolygon, got %T", bs[1].Geometry)
	}
}

// TestLoadBoundaries_MissingName verifies a feature without a "nom"
// property fails the whole load.
func TestLoadBoundaries_MissingName(t *testing.T) {
	path := writeGeoJSON(t, `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"code": "69"},
      "geometry": {"type": "Polygon", "coordinates": [[[4.0,45.0],[5.0,45.0],[5.0,46.0],[4.0,45.0]]]}
    }
  ]
}`)

	_, err := geo.LoadBoundaries(path)
	if err == nil {
		t.Fatal("expected an error for a feature without a nom property")
	}
	if !strings.Contains(err.Error(), "nom") {
		t.Errorf("expected the error to mention the nom property, got: %v", err)
	}
}

// TestLoadBoundaries_DuplicateName verifies duplicate department names are
// rejected, since the join key must be unique.
func TestLoadBoundaries_DuplicateName(t *testing.T) {
	path := writeGeoJSON(t, `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"nom": "Rhône"},
      "geometry": {"type": "Polygon", "coordinates": [[[4.0,45.0],[5.0,45.0],[5.0,46.0],[4.0,45.0]]]}
    },
    {
      "type": "Feature",
      "properties": {"nom": "Rhône"},
      "geometry": {"type": "Polygon", "coordinates": [[[4.0,45.0],[5.0,45.0],[5.0,46.0],[4.0,45.0]]]}
    }
  ]
}`)

	if _, err := geo.LoadBoundaries(path); err == nil {
		t.Fatal("expected an error for duplicate department names")
	}
}

// TestLoadBoundaries_MissingFile verifies a missing file surfaces an error
// naming the path.
func TestLoadBoundaries_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.geojson")

	_, err := geo.LoadBoundaries(path)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("expected the error to name the file, got: %v", err)
	}
}

// TestLoadBoundaries_Malformed verifies invalid JSON fails with a parse
// error naming the file.
func TestLoadBoundaries_Malformed(t *testing.T) {
	path := writeGeoJSON(t, "{not geojson")

	if _, err := geo.LoadBoundaries(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
