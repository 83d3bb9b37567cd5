package gardens

import (
	"log"
	"strings"

	"github.com/tortuecookie/jardins/internal/config"
	"github.com/tortuecookie/jardins/internal/geo"
)

// Service owns the immutable dataset snapshot loaded at startup. Every
// request re-runs filter → aggregate → view over this snapshot; nothing in
// it is ever written after NewService returns, so handlers need no locking.
type Service struct {
	cfg        config.Config
	gardens    []Garden
	boundaries []geo.Boundary
}

// NewService loads both datasets and builds the service. A missing or
// malformed file fails the whole startup; there are no partial-load or
// retry semantics.
func NewService(cfg config.Config) (*Service, error) {
	gs, err := ParseCSV(cfg.GardensCSV)
	if err != nil {
		return nil, err
	}
	bs, err := geo.LoadBoundaries(cfg.DepartmentsGeoJSON)
	if err != nil {
		return nil, err
	}

	// Departments without a boundary match are silently dropped from the
	// choropleth by policy; surface the drop set once at startup.
	if missing := UnmatchedDepartments(CountByDepartment(gs), bs); len(missing) > 0 {
		log.Printf("[gardens] %d department(s) have no boundary match and will be absent from the choropleth: %s",
			len(missing), strings.Join(missing, ", "))
	}
	log.Printf("[gardens] loaded %d gardens and %d department boundaries", len(gs), len(bs))

	return &Service{cfg: cfg, gardens: gs, boundaries: bs}, nil
}
