package gardens

import (
	"github.com/tortuecookie/jardins/internal/geo"
)

// CountByDepartment groups a (typically filtered) garden collection by
// department name. Departments with no gardens are absent from the result,
// not present with a zero count.
func CountByDepartment(gs []Garden) map[string]int {
	counts := make(map[string]int)
	for _, g := range gs {
		counts[g.Department]++
	}
	return counts
}

// JoinBoundaries inner-joins per-department counts to boundary geometries by
// department name. Counts whose department has no boundary are silently
// dropped; boundaries with no count are likewise absent. The result follows
// boundary file order, so it is deterministic and its keys are unique by
// construction.
func JoinBoundaries(counts map[string]int, boundaries []geo.Boundary) []DepartmentCount {
	out := make([]DepartmentCount, 0, len(counts))
	for _, b := range boundaries {
		n, ok := counts[b.Name]
		if !ok {
			continue
		}
		out = append(out, DepartmentCount{
			Department: b.Name,
			Count:      n,
			Geometry:   b.Geometry,
		})
	}
	return out
}

// UnmatchedDepartments reports the department names present in the counts
// but absent from the boundary set: the rows the choropleth silently drops.
// Used for startup diagnostics and the check-join tool.
func UnmatchedDepartments(counts map[string]int, boundaries []geo.Boundary) []string {
	known := make(map[string]bool, len(boundaries))
	for _, b := range boundaries {
		known[b.Name] = true
	}
	var missing []string
	for dept := range counts {
		if !known[dept] {
			missing = append(missing, dept)
		}
	}
	frenchCollator.SortStrings(missing)
	return missing
}
