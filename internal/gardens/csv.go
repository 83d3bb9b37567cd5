package gardens

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Raw column names as published on data.gouv.fr. Display labels live in the
// dashboard config, not here.
var requiredColumns = []string{
	"nom_du_jardin",
	"description",
	"departement",
	"region",
	"types",
	"latitude",
	"longitude",
	"site_internet_et_autres_liens",
}

// ParseCSV loads the gardens dataset from a semicolon-delimited CSV.
// The loader is strict: a missing required column or an unparseable row
// fails the whole load with a message naming the file and the row, since
// the service has no partial-load or retry semantics.
func ParseCSV(path string) ([]Garden, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gardens file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse gardens file %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("gardens file %s: %w", path, errors.New("csv has no data rows"))
	}

	header := records[0]
	// Handle BOM on first header cell
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}

	for _, k := range requiredColumns {
		if _, ok := col[k]; !ok {
			return nil, fmt.Errorf("gardens file %s: missing required column: %s", path, k)
		}
	}

	out := make([]Garden, 0, len(records)-1)
	for rowIdx := 1; rowIdx < len(records); rowIdx++ {
		rec := records[rowIdx]
		get := func(name string) string {
			i := col[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		name := get("nom_du_jardin")
		if name == "" {
			return nil, fmt.Errorf("gardens file %s: row %d: nom_du_jardin is required", path, rowIdx+1)
		}
		dept := get("departement")
		if dept == "" {
			return nil, fmt.Errorf("gardens file %s: row %d: departement is required", path, rowIdx+1)
		}

		lat, err := strconv.ParseFloat(get("latitude"), 64)
		if err != nil {
			return nil, fmt.Errorf("gardens file %s: row %d: invalid latitude %q", path, rowIdx+1, get("latitude"))
		}
		lng, err := strconv.ParseFloat(get("longitude"), 64)
		if err != nil {
			return nil, fmt.Errorf("gardens file %s: row %d: invalid longitude %q", path, rowIdx+1, get("longitude"))
		}

		typesRaw := get("types")
		var tags []string
		for _, t := range strings.Split(typesRaw, "|") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}

		out = append(out, Garden{
			ID:          uuid.New(),
			Name:        name,
			Description: get("description"),
			Department:  dept,
			Region:      get("region"),
			TypesRaw:    typesRaw,
			Types:       tags,
			Latitude:    lat,
			Longitude:   lng,
			Link:        get("site_internet_et_autres_liens"),
		})
	}

	return out, nil
}
