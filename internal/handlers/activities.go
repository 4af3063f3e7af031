package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memohai/crm/internal/activities"
)

type ActivitiesHandler struct {
	service *activities.Service
	logger  *slog.Logger
}

func NewActivitiesHandler(log *slog.Logger, service *activities.Service) *ActivitiesHandler {
	return &ActivitiesHandler{
		service: service,
		logger:  log.With(slog.String("handler", "activities")),
	}
}

func (h *ActivitiesHandler) Register(e *echo.Echo) {
	group := e.Group("/api/activities")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary List activities
// @Description Newest first by activity date
// @Tags activities
// @Param client_id query int false "Only activities of this client"
// @Success 200 {array} activities.Activity
// @Failure 500 {object} ErrorResponse
// @Router /api/activities [get]
func (h *ActivitiesHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), optionalIDQuery(c, "client_id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get activity
// @Tags activities
// @Param id path int true "Activity ID"
// @Success 200 {object} activities.Activity
// @Failure 404 {object} ErrorResponse
// @Router /api/activities/{id} [get]
func (h *ActivitiesHandler) Get(c echo.Context) error {
	id, err := parseID(c, "activity")
	if err != nil {
		return err
	}
	item, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Create godoc
// @Summary Log activity
// @Description A missing or unreadable date is replaced by the current time
// @Tags activities
// @Param payload body activities.CreateRequest true "Activity"
// @Success 201 {object} activities.Activity
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/activities [post]
func (h *ActivitiesHandler) Create(c echo.Context) error {
	var req activities.CreateRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	item, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary Update activity
// @Tags activities
// @Param id path int true "Activity ID"
// @Param payload body activities.UpdateRequest true "Fields to change"
// @Success 200 {object} activities.Activity
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/activities/{id} [put]
func (h *ActivitiesHandler) Update(c echo.Context) error {
	id, err := parseID(c, "activity")
	if err != nil {
		return err
	}
	var req activities.UpdateRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	item, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary Delete activity
// @Tags activities
// @Param id path int true "Activity ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /api/activities/{id} [delete]
func (h *ActivitiesHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "activity")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
