package handlers

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"akellar.dev/internal/catalog"
	"akellar.dev/internal/config"
	"akellar.dev/internal/middleware"
	"akellar.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router.
// site holds the page skeletons and static assets.
func SetupRoutes(cfg *config.Config, site fs.FS, store *catalog.Store, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if cfg.CORSAllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Initialize services
	projectService := services.NewProjectService(store)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	pageHandler := NewPageHandler(cfg, site, projectService, logger)
	carouselHandler := NewCarouselHandler(cfg, projectService, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.Timeout(30 * time.Second))

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Carousel fragment for query-driven navigation
		r.Get("/carousel/{id}", carouselHandler.GetFragment)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Live carousel sessions
	r.Get("/ws/carousel/{id}", carouselHandler.Live)

	// Raw catalog, as the pages' own scripts would fetch it
	r.Get("/projects-data.json", projectHandler.GetCatalog)

	// Static files
	fileServer := http.FileServer(http.FS(site))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Pages and everything else in the site directory
	r.Get("/", pageHandler.ServePage)
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if isPage(r.URL.Path) {
			pageHandler.ServePage(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
