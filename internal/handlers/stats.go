package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memohai/crm/internal/stats"
)

type StatsHandler struct {
	service *stats.Service
	logger  *slog.Logger
}

func NewStatsHandler(log *slog.Logger, service *stats.Service) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  log.With(slog.String("handler", "stats")),
	}
}

func (h *StatsHandler) Register(e *echo.Echo) {
	e.GET("/api/stats", h.Get)
}

// Get godoc
// @Summary Dashboard statistics
// @Description Counts plus the five latest activities and five soonest pending tasks
// @Tags stats
// @Success 200 {object} stats.Stats
// @Failure 500 {object} ErrorResponse
// @Router /api/stats [get]
func (h *StatsHandler) Get(c echo.Context) error {
	out, err := h.service.Get(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
