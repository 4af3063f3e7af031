package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memohai/crm/internal/contacts"
)

type ContactsHandler struct {
	service *contacts.Service
	logger  *slog.Logger
}

func NewContactsHandler(log *slog.Logger, service *contacts.Service) *ContactsHandler {
	return &ContactsHandler{
		service: service,
		logger:  log.With(slog.String("handler", "contacts")),
	}
}

func (h *ContactsHandler) Register(e *echo.Echo) {
	group := e.Group("/api/contacts")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary List contacts
// @Tags contacts
// @Param client_id query int false "Only contacts of this client"
// @Success 200 {array} contacts.Contact
// @Failure 500 {object} ErrorResponse
// @Router /api/contacts [get]
func (h *ContactsHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), optionalIDQuery(c, "client_id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get contact
// @Tags contacts
// @Param id path int true "Contact ID"
// @Success 200 {object} contacts.Contact
// @Failure 404 {object} ErrorResponse
// @Router /api/contacts/{id} [get]
func (h *ContactsHandler) Get(c echo.Context) error {
	id, err := parseID(c, "contact")
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
// @Summary Create contact
// @Tags contacts
// @Param payload body contacts.CreateRequest true "Contact"
// @Success 201 {object} contacts.Contact
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/contacts [post]
func (h *ContactsHandler) Create(c echo.Context) error {
	var req contacts.CreateRequest
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
// @Summary Update contact
// @Tags contacts
// @Param id path int true "Contact ID"
// @Param payload body contacts.UpdateRequest true "Fields to change"
// @Success 200 {object} contacts.Contact
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/contacts/{id} [put]
func (h *ContactsHandler) Update(c echo.Context) error {
	id, err := parseID(c, "contact")
	if err != nil {
		return err
	}
	var req contacts.UpdateRequest
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
// @Summary Delete contact
// @Tags contacts
// @Param id path int true "Contact ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /api/contacts/{id} [delete]
func (h *ContactsHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "contact")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
