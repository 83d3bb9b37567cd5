// Package mapview builds the view models behind the two dashboard maps: the
// map framing (center and zoom), the clustered marker payload, and the
// choropleth color scale. It knows nothing about gardens; callers feed it
// plain coordinates and counts.
package mapview

import (
	"fmt"
	"html"
)

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// View is the initial framing of a map.
type View struct {
	Center LatLng `json:"center"`
	Zoom   int    `json:"zoom"`
	// Fallback is true when the point set was empty and the center is the
	// configured fallback rather than a computed mean.
	Fallback bool `json:"fallback"`
}

// ComputeView centers a map on the mean position of the given points.
// An empty point set resolves to the fallback center instead of a
// divide-by-zero: the maps still render, with empty layers.
func ComputeView(points []LatLng, fallback LatLng, zoom int) View {
	if len(points) == 0 {
		return View{Center: fallback, Zoom: zoom, Fallback: true}
	}
	var sumLat, sumLng float64
	for _, p := range points {
		sumLat += p.Lat
		sumLng += p.Lng
	}
	n := float64(len(points))
	return View{
		Center: LatLng{Lat: sumLat / n, Lng: sumLng / n},
		Zoom:   zoom,
	}
}

// Marker is one clustered point on the gardens map.
type Marker struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Popup string  `json:"popup"`
}

// PopupHTML renders the marker popup: an Information header with the
// garden's name, its region, and an external link when one exists.
// Values are escaped; the link doubles as the anchor text.
func PopupHTML(name, region, link string) string {
	s := fmt.Sprintf("<h6><b>Information</b></h6><i>Name</i>: %s<br><i>Location</i>: %s",
		html.EscapeString(name), html.EscapeString(region))
	if link != "" {
		s += fmt.Sprintf("<br><i>To know more</i>: <a href=%q target=\"_blank\" rel=\"noopener\">%s</a>",
			link, html.EscapeString(link))
	}
	return s
}
