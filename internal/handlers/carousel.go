package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"akellar.dev/internal/carousel"
	"akellar.dev/internal/config"
	"akellar.dev/internal/dom"
	"akellar.dev/internal/render"
	"akellar.dev/internal/services"
)

// CarouselHandler serves the "other projects" carousel outside a full page
type CarouselHandler struct {
	cfg            *config.Config
	projectService *services.ProjectService
	logger         *zap.Logger
	upgrader       websocket.Upgrader
}

// NewCarouselHandler creates a new CarouselHandler
func NewCarouselHandler(cfg *config.Config, ps *services.ProjectService, logger *zap.Logger) *CarouselHandler {
	return &CarouselHandler{
		cfg:            cfg,
		projectService: ps,
		logger:         logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// GetFragment handles GET /api/carousel/{id} - returns the carousel
// section HTML at the requested position
func (h *CarouselHandler) GetFragment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cat, err := h.projectService.Catalog(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "Catalog unavailable")
		return
	}
	if !cat.Has(id) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	doc, err := dom.ParseString("")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build carousel")
		return
	}

	section := render.BuildCarousel(doc, cat, id, RenderOptions(h.cfg, r))
	if section == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(section.OuterHTML()))
}

// carouselMessage is a client event on a live carousel session
type carouselMessage struct {
	Type           string `json:"type"` // ready, left, right, resize
	ContainerWidth int    `json:"containerWidth"`
	ViewportWidth  int    `json:"viewportWidth"`
}

// Live handles GET /ws/carousel/{id} - a WebSocket session that applies
// arrow and resize events and answers with carousel frames
func (h *CarouselHandler) Live(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	others, err := h.projectService.Others(r.Context(), id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "Catalog unavailable")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	layout := DefaultRenderOptions(h.cfg).Layout
	delay := time.Duration(h.cfg.Carousel.DebounceMs) * time.Millisecond

	// Frames are written only from the controller loop
	ctrl := carousel.NewController(len(others), layout, delay, func(f carousel.Frame) {
		if err := conn.WriteJSON(f); err != nil {
			h.logger.Debug("Carousel frame write failed", zap.Error(err))
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	go ctrl.Run(ctx)
	defer func() {
		cancel()
		<-ctrl.Done()
	}()

	h.logger.Debug("Carousel session started", zap.String("project", id), zap.Int("items", len(others)))

	for {
		var msg carouselMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("Carousel session ended", zap.Error(err))
			}
			return
		}

		switch msg.Type {
		case "ready":
			err = ctrl.Ready(msg.ContainerWidth, msg.ViewportWidth)
		case "left":
			err = ctrl.Left()
		case "right":
			err = ctrl.Right()
		case "resize":
			err = ctrl.Resize(msg.ContainerWidth, msg.ViewportWidth)
		default:
			h.logger.Debug("Unknown carousel event", zap.String("type", msg.Type))
			continue
		}
		if err != nil {
			return
		}
	}
}
