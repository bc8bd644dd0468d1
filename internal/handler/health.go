package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/printshop-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const (
	serviceName     = "printshop-order-service"
	pingTimeout     = 2 * time.Second
	healthHealthy   = "healthy"
	healthUnhealthy = "unhealthy"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	logger *slog.Logger
	db     Pinger
	now    func() time.Time
}

func NewHealthHandler(logger *slog.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{
		logger: logger.With(slog.String("handler", "health")),
		db:     db,
		now:    time.Now,
	}
}

func (h *HealthHandler) Init(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/ping", h.Ping)
}

// Health reports service and database status.
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	res := HealthResponse{
		Status:    healthHealthy,
		Database:  "up",
		Service:   serviceName,
		Timestamp: h.now().UTC(),
	}
	code := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.ErrorContext(ctx, "database ping failed", slog.Any("error", err))
		res.Status = healthUnhealthy
		res.Database = "down"
		code = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, res, code)
}

// Ping answers without touching dependencies.
// @Summary      Ping
// @Tags         health
// @Produce      json
// @Success      200  {object}  PingResponse
// @Router       /ping [get]
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, PingResponse{Message: "pong"}, http.StatusOK)
}
