package mapview

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/tortuecookie/jardins/internal/config"
)

//go:embed templates/dashboard.html.tmpl
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html.tmpl"))

// TableRow is one line of the "full list of gardens" table.
type TableRow struct {
	Name        string
	Description string
}

// PageData is everything the dashboard template needs for one render: the
// page text, the dropdown contents and selections, the table, and the map
// payloads pre-marshaled to JSON.
type PageData struct {
	Dashboard config.Dashboard

	Types              []string
	Departments        []string
	SelectedType       string
	SelectedDepartment string

	Table       []TableRow
	GardenCount int

	// JSON blobs injected into the page script. Marshaled server-side so the
	// template stays logic-free.
	ViewJSON       template.JS
	MarkersJSON    template.JS
	ChoroplethJSON template.JS
	BinsJSON       template.JS
}

// RenderDashboard writes the full dashboard page.
func RenderDashboard(w io.Writer, data PageData) error {
	if err := dashboardTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}
