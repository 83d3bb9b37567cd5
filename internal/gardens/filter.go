package gardens

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// All is the sentinel dropdown value meaning "no filter".
const All = "All"

// frenchCollator orders the dropdown values the way a French reader expects
// (accent-aware, so "Évry" sorts next to "Evry" rather than after "Z").
var frenchCollator = collate.New(language.French)

// DistinctTypes returns every distinct type tag across the collection,
// French-sorted, with the All sentinel prepended.
func DistinctTypes(gs []Garden) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, g := range gs {
		for _, t := range g.Types {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	frenchCollator.SortStrings(tags)
	return append([]string{All}, tags...)
}

// DistinctDepartments returns every distinct department name, French-sorted,
// with the All sentinel prepended.
func DistinctDepartments(gs []Garden) []string {
	seen := make(map[string]bool)
	var depts []string
	for _, g := range gs {
		if !seen[g.Department] {
			seen[g.Department] = true
			depts = append(depts, g.Department)
		}
	}
	frenchCollator.SortStrings(depts)
	return append([]string{All}, depts...)
}

// Filter applies the two dropdown selections with AND semantics and returns
// the matching subset. With both selectors set to All the input slice is
// returned unchanged.
//
// The type selector matches as a substring of the raw pipe-delimited types
// field, not as exact membership in the tag set: a selector that is a
// substring of another tag over-matches. This mirrors the upstream behavior
// on purpose; do not switch to exact tag equality.
func Filter(gs []Garden, typeSel, deptSel string) []Garden {
	if typeSel == All && deptSel == All {
		return gs
	}
	out := make([]Garden, 0, len(gs))
	for _, g := range gs {
		if typeSel != All && !strings.Contains(g.TypesRaw, typeSel) {
			continue
		}
		if deptSel != All && g.Department != deptSel {
			continue
		}
		out = append(out, g)
	}
	return out
}
