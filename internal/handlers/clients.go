package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memohai/crm/internal/clients"
)

type ClientsHandler struct {
	service *clients.Service
	logger  *slog.Logger
}

func NewClientsHandler(log *slog.Logger, service *clients.Service) *ClientsHandler {
	return &ClientsHandler{
		service: service,
		logger:  log.With(slog.String("handler", "clients")),
	}
}

func (h *ClientsHandler) Register(e *echo.Echo) {
	group := e.Group("/api/clients")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary List clients
// @Description Search matches name, email or company case-insensitively; status must match exactly
// @Tags clients
// @Param search query string false "Substring to search for"
// @Param status query string false "Exact status"
// @Success 200 {array} clients.Client
// @Failure 500 {object} ErrorResponse
// @Router /api/clients [get]
func (h *ClientsHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), clients.ListFilter{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get client
// @Tags clients
// @Param id path int true "Client ID"
// @Success 200 {object} clients.Client
// @Failure 404 {object} ErrorResponse
// @Router /api/clients/{id} [get]
func (h *ClientsHandler) Get(c echo.Context) error {
	id, err := parseID(c, "client")
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
// @Summary Create client
// @Tags clients
// @Param payload body clients.CreateRequest true "Client"
// @Success 201 {object} clients.Client
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/clients [post]
func (h *ClientsHandler) Create(c echo.Context) error {
	var req clients.CreateRequest
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
// @Summary Update client
// @Description Only the fields present in the payload change
// @Tags clients
// @Param id path int true "Client ID"
// @Param payload body clients.UpdateRequest true "Fields to change"
// @Success 200 {object} clients.Client
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/clients/{id} [put]
func (h *ClientsHandler) Update(c echo.Context) error {
	id, err := parseID(c, "client")
	if err != nil {
		return err
	}
	var req clients.UpdateRequest
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
// @Summary Delete client
// @Description Also deletes the client's contacts and activities
// @Tags clients
// @Param id path int true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /api/clients/{id} [delete]
func (h *ClientsHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "client")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
