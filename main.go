package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/tortuecookie/jardins/internal/config"
	"github.com/tortuecookie/jardins/internal/gardens"
	"github.com/tortuecookie/jardins/internal/middleware"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config: ", err)
	}

	svc, err := gardens.NewService(cfg)
	if err != nil {
		log.Fatal("Failed to load datasets: ", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPS))
	r.Get("/", svc.DashboardHandler)
	r.Mount("/api", svc.SetupRoutes())

	fmt.Printf("Server listening on port :%s...\n", cfg.Port)

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
