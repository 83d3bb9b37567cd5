package mapview

import "math"

// buPu is the 6-class ColorBrewer BuPu sequential ramp, light to dark.
var buPu = []string{"#edf8fb", "#bfd3e6", "#9ebcda", "#8c96c6", "#8856a7", "#810f7c"}

// Bin is one step of the choropleth legend: counts up to and including UpTo
// are filled with Color.
type Bin struct {
	UpTo  int    `json:"up_to"`
	Color string `json:"color"`
}

// Bins quantizes the count range [1, maxCount] into equal steps over the
// BuPu ramp. A max below one still yields a usable single-step scale so an
// empty choropleth renders a valid (if pointless) legend.
func Bins(maxCount int) []Bin {
	if maxCount < 1 {
		maxCount = 1
	}
	step := float64(maxCount) / float64(len(buPu))
	bins := make([]Bin, len(buPu))
	for i, c := range buPu {
		bins[i] = Bin{UpTo: int(math.Ceil(step * float64(i+1))), Color: c}
	}
	// Rounding can leave neighbouring steps with the same bound on tiny
	// ranges; force strictly increasing bounds so lookup stays well-defined.
	for i := 1; i < len(bins); i++ {
		if bins[i].UpTo <= bins[i-1].UpTo {
			bins[i].UpTo = bins[i-1].UpTo + 1
		}
	}
	return bins
}

// ColorFor returns the fill color for a count under the given scale.
// Counts past the last bound clamp to the darkest color.
func ColorFor(count int, bins []Bin) string {
	for _, b := range bins {
		if count <= b.UpTo {
			return b.Color
		}
	}
	return bins[len(bins)-1].Color
}
