package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/", s.ServerIsWorking)
	r.Get("/health", s.HealthHandler)

	r.Route("/api", func(r chi.Router) {
		s.loadLanguageRoutes(r)
		s.loadLessonRoutes(r)
	})

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to the Sabbath lesson api"
	response.Success(w, resp, "Success")
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	stats := s.db.Health()
	if stats["status"] != "up" {
		s.log.Error("database health check failed", "error", stats["error"])
		response.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": stats["status"]})
		return
	}
	response.OK(w, stats)
}

func (s *Server) loadLanguageRoutes(router chi.Router) {
	h := s.languageHandler

	router.Route("/languages", func(r chi.Router) {
		r.Get("/", h.ListActiveHandler)
		r.Post("/", h.CreateHandler)
		r.Get("/code/{code}", h.GetByCodeHandler)
		r.Get("/{id}", h.GetByIDHandler)
		r.Put("/{id}", h.UpdateHandler)
		r.Delete("/{id}", h.DeleteHandler)
	})
}

func (s *Server) loadLessonRoutes(router chi.Router) {
	h := s.lessonHandler

	router.Route("/lessons", func(r chi.Router) {
		r.Get("/", h.ListHandler)
		r.Post("/", h.CreateHandler)
		r.Get("/by-quarter", h.ListByQuarterHandler)
		r.Get("/years", h.ListYearsHandler)
		r.Get("/search", h.SearchHandler)
		r.Get("/{id}", h.GetByIDHandler)
		r.Put("/{id}", h.UpdateHandler)
		r.Delete("/{id}", h.DeleteHandler)
		r.Get("/{id}/sections", h.ListSectionsHandler)
		r.Post("/{id}/sections", h.AddSectionHandler)
	})
}
