// check-join reports the departments present in the gardens CSV that have no
// boundary match in the GeoJSON — the rows the choropleth silently drops.
package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/tortuecookie/jardins/internal/config"
	"github.com/tortuecookie/jardins/internal/gardens"
	"github.com/tortuecookie/jardins/internal/geo"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	gs, err := gardens.ParseCSV(cfg.GardensCSV)
	if err != nil {
		log.Fatalf("CSV error: %v", err)
	}
	bs, err := geo.LoadBoundaries(cfg.DepartmentsGeoJSON)
	if err != nil {
		log.Fatalf("GeoJSON error: %v", err)
	}

	counts := gardens.CountByDepartment(gs)
	fmt.Printf("Gardens: %d, departments in CSV: %d, boundaries: %d\n\n", len(gs), len(counts), len(bs))

	missing := gardens.UnmatchedDepartments(counts, bs)
	if len(missing) == 0 {
		fmt.Println("Every department in the CSV has a boundary match.")
		return
	}

	fmt.Printf("%d department(s) without a boundary match (dropped from the choropleth):\n", len(missing))
	dropped := 0
	for _, dept := range missing {
		fmt.Printf("  %-30s %d garden(s)\n", dept, counts[dept])
		dropped += counts[dept]
	}
	fmt.Printf("\nTotal gardens dropped from the choropleth: %d\n", dropped)
}
