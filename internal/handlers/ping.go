package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const storeProbeTimeout = 2 * time.Second

// PingHandler serves liveness on /ping and store readiness on HEAD /health.
type PingHandler struct {
	logger *slog.Logger
	conn   *sql.DB
}

func NewPingHandler(log *slog.Logger, conn *sql.DB) *PingHandler {
	return &PingHandler{
		logger: log.With(slog.String("handler", "ping")),
		conn:   conn,
	}
}

func (h *PingHandler) Register(e *echo.Echo) {
	e.GET("/ping", h.Ping)
	e.HEAD("/health", h.Health)
}

// Ping answers {"status":"ok"} whenever the process is serving.
func (h *PingHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Health is 200 while the store answers a ping and 503 otherwise.
func (h *PingHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeProbeTimeout)
	defer cancel()
	if err := h.conn.PingContext(ctx); err != nil {
		h.logger.WarnContext(ctx, "store unreachable", slog.Any("error", err))
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
