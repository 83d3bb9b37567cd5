package gardens

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Service) SetupRoutes() http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Get("/gardens", s.GetGardens)
	r.Get("/gardens/types", s.GetTypes)
	r.Get("/gardens/departments", s.GetDepartments)
	r.Get("/gardens/markers", s.GetMarkers)
	r.Get("/gardens/choropleth", s.GetChoropleth)
	r.Get("/health", s.Health)

	return r
}
