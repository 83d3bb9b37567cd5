package gardens

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/tortuecookie/jardins/internal/mapview"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// selections reads the two dropdown values from the query string. An absent
// parameter means "no filter".
func selections(r *http.Request) (typeSel, deptSel string) {
	typeSel = r.URL.Query().Get("type")
	if typeSel == "" {
		typeSel = All
	}
	deptSel = r.URL.Query().Get("department")
	if deptSel == "" {
		deptSel = All
	}
	return typeSel, deptSel
}

// MarkersOut is the payload behind the marker-cluster map: the computed
// framing plus one marker per filtered garden.
type MarkersOut struct {
	View    mapview.View     `json:"view"`
	Markers []mapview.Marker `json:"markers"`
}

// ChoroplethOut is the payload behind the count-by-department map.
type ChoroplethOut struct {
	Legend  string                     `json:"legend"`
	Bins    []mapview.Bin              `json:"bins"`
	GeoJSON *geojson.FeatureCollection `json:"geojson"`
}

// GetGardens returns the filtered garden records.
func (s *Service) GetGardens(w http.ResponseWriter, r *http.Request) {
	typeSel, deptSel := selections(r)
	filtered := Filter(s.gardens, typeSel, deptSel)
	writeJSON(w, filtered)
}

// GetTypes returns the distinct type tags, All first.
func (s *Service) GetTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, DistinctTypes(s.gardens))
}

// GetDepartments returns the distinct department names, All first.
func (s *Service) GetDepartments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, DistinctDepartments(s.gardens))
}

// GetMarkers returns the marker-cluster payload for the current filters.
func (s *Service) GetMarkers(w http.ResponseWriter, r *http.Request) {
	typeSel, deptSel := selections(r)
	filtered := Filter(s.gardens, typeSel, deptSel)
	writeJSON(w, s.markers(filtered))
}

// GetChoropleth returns the per-department counts joined to boundary
// geometries as a GeoJSON FeatureCollection, plus the color scale.
func (s *Service) GetChoropleth(w http.ResponseWriter, r *http.Request) {
	typeSel, deptSel := selections(r)
	filtered := Filter(s.gardens, typeSel, deptSel)
	writeJSON(w, s.choropleth(filtered))
}

// Health is a plain liveness probe.
func (s *Service) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"status": "ok", "gardens": len(s.gardens)})
}

// DashboardHandler renders the full dashboard page: text sections, the two
// dropdowns, both maps, and the table of filtered gardens.
func (s *Service) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	typeSel, deptSel := selections(r)
	filtered := Filter(s.gardens, typeSel, deptSel)

	markers := s.markers(filtered)
	choro := s.choropleth(filtered)

	table := make([]mapview.TableRow, 0, len(filtered))
	for _, g := range filtered {
		table = append(table, mapview.TableRow{Name: g.Name, Description: g.Description})
	}

	data := mapview.PageData{
		Dashboard:          s.cfg.Dashboard,
		Types:              DistinctTypes(s.gardens),
		Departments:        DistinctDepartments(s.gardens),
		SelectedType:       typeSel,
		SelectedDepartment: deptSel,
		Table:              table,
		GardenCount:        len(filtered),
		ViewJSON:           mustJS(markers.View),
		MarkersJSON:        mustJS(markers.Markers),
		ChoroplethJSON:     mustJS(choro.GeoJSON),
		BinsJSON:           mustJS(choro.Bins),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := mapview.RenderDashboard(w, data); err != nil {
		log.Printf("[gardens] dashboard render error: %v", err)
	}
}

// markers builds the cluster-map payload for a filtered collection. The map
// centers on the mean position of the filtered gardens, falling back to the
// configured center when nothing matched.
func (s *Service) markers(filtered []Garden) MarkersOut {
	points := make([]mapview.LatLng, 0, len(filtered))
	ms := make([]mapview.Marker, 0, len(filtered))
	for _, g := range filtered {
		points = append(points, mapview.LatLng{Lat: g.Latitude, Lng: g.Longitude})
		ms = append(ms, mapview.Marker{
			Lat:   g.Latitude,
			Lng:   g.Longitude,
			Popup: mapview.PopupHTML(g.Name, g.Region, g.Link),
		})
	}
	fallback := mapview.LatLng{Lat: s.cfg.Dashboard.Map.FallbackLat, Lng: s.cfg.Dashboard.Map.FallbackLng}
	return MarkersOut{
		View:    mapview.ComputeView(points, fallback, s.cfg.Dashboard.Map.Zoom),
		Markers: ms,
	}
}

// choropleth aggregates a filtered collection per department and joins the
// counts to the boundary geometries. Departments with no boundary match are
// dropped (inner-join policy).
func (s *Service) choropleth(filtered []Garden) ChoroplethOut {
	joined := JoinBoundaries(CountByDepartment(filtered), s.boundaries)

	maxCount := 0
	for _, dc := range joined {
		if dc.Count > maxCount {
			maxCount = dc.Count
		}
	}
	bins := mapview.Bins(maxCount)

	features := make([]*geojson.Feature, 0, len(joined))
	for _, dc := range joined {
		features = append(features, &geojson.Feature{
			Geometry: dc.Geometry,
			Properties: map[string]any{
				"nom":   dc.Department,
				"count": dc.Count,
				"fill":  mapview.ColorFor(dc.Count, bins),
			},
		})
	}

	return ChoroplethOut{
		Legend:  "Number of gardens by department",
		Bins:    bins,
		GeoJSON: &geojson.FeatureCollection{Features: features},
	}
}

func mustJS(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		// Marshaling our own view models cannot fail at runtime; an error
		// here is a programming bug.
		log.Printf("[gardens] marshal page payload: %v", err)
		return template.JS("null")
	}
	return template.JS(b)
}
