package gardens

import (
	"github.com/google/uuid"
	"github.com/twpayne/go-geom"
)

// Garden is one row of the gardens dataset. Records are created once at load
// time and never mutated; filtering derives subsets, not copies.
type Garden struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Department  string    `json:"department"`
	Region      string    `json:"region"`
	// TypesRaw is the original pipe-delimited types field. The type filter
	// matches against this raw value, not against the parsed tag set.
	TypesRaw  string   `json:"types_raw"`
	Types     []string `json:"types"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Link      string   `json:"link,omitempty"`
}

// DepartmentCount is the aggregation result for one department: the number
// of gardens after filtering, joined to the department's boundary geometry.
// Departments with zero gardens, or without a boundary match, never appear.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
	Geometry   geom.T `json:"-"`
}
