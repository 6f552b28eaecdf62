package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"akellar.dev/internal/carousel"
	"akellar.dev/internal/config"
	"akellar.dev/internal/filter"
	"akellar.dev/internal/render"
	"akellar.dev/internal/services"
)

// PageHandler serves site pages populated from the catalog
type PageHandler struct {
	cfg            *config.Config
	site           fs.FS
	projectService *services.ProjectService
	logger         *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(cfg *config.Config, site fs.FS, ps *services.ProjectService, logger *zap.Logger) *PageHandler {
	return &PageHandler{cfg: cfg, site: site, projectService: ps, logger: logger}
}

// isPage reports whether a request path names an HTML page
func isPage(urlPath string) bool {
	return strings.HasSuffix(urlPath, ".html") || strings.HasSuffix(urlPath, "/")
}

// ServePage handles GET / and GET /{page}.html
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	// A failed load leaves the page unpopulated; cat is nil then
	cat, err := h.projectService.Catalog(r.Context())
	if err != nil {
		h.logger.Error("Error loading projects data", zap.Error(err))
	}

	doc, err := render.BuildPage(h.site, cat, r.URL.Path, RenderOptions(h.cfg, r))
	if errors.Is(err, fs.ErrNotExist) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("Error building page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := doc.Render(w); err != nil {
		h.logger.Warn("Error writing page", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

// RenderOptions builds populator options from config and the query
// string (filter, carousel, vw, cw)
func RenderOptions(cfg *config.Config, r *http.Request) render.Options {
	opts := DefaultRenderOptions(cfg)
	opts.Layout.ContainerWidth = queryInt(r, "cw", opts.Layout.ContainerWidth, 1)
	opts.Layout.ViewportWidth = queryInt(r, "vw", opts.Layout.ViewportWidth, 1)
	opts.CarouselIndex = queryInt(r, "carousel", 0, 0)
	opts.Filter = r.URL.Query().Get("filter")
	return opts
}

// DefaultRenderOptions are the options for a page with no query string
func DefaultRenderOptions(cfg *config.Config) render.Options {
	mode, err := filter.ParseMode(cfg.FilterMode)
	if err != nil {
		zap.L().Warn("Falling back to default filter mode", zap.Error(err))
	}
	return render.Options{
		Owner:      cfg.Owner,
		FilterMode: mode,
		Layout: carousel.Layout{
			ContainerWidth: cfg.Carousel.ContainerWidth,
			ViewportWidth:  cfg.Carousel.ViewportWidth,
			Breakpoint:     cfg.Carousel.Breakpoint,
			Gap:            cfg.Carousel.Gap,
		},
	}
}

// queryInt parses an integer query parameter with a default value,
// falling back to the default below min
func queryInt(r *http.Request, name string, defaultVal, min int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil || intVal < min {
		return defaultVal
	}
	return intVal
}
