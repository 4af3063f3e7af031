package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memohai/crm/internal/tasks"
)

type TasksHandler struct {
	service *tasks.Service
	logger  *slog.Logger
}

func NewTasksHandler(log *slog.Logger, service *tasks.Service) *TasksHandler {
	return &TasksHandler{
		service: service,
		logger:  log.With(slog.String("handler", "tasks")),
	}
}

func (h *TasksHandler) Register(e *echo.Echo) {
	group := e.Group("/api/tasks")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary List tasks
// @Description Soonest due first, tasks without a due date last
// @Tags tasks
// @Param status query string false "Exact status"
// @Success 200 {array} tasks.Task
// @Failure 500 {object} ErrorResponse
// @Router /api/tasks [get]
func (h *TasksHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get task
// @Tags tasks
// @Param id path int true "Task ID"
// @Success 200 {object} tasks.Task
// @Failure 404 {object} ErrorResponse
// @Router /api/tasks/{id} [get]
func (h *TasksHandler) Get(c echo.Context) error {
	id, err := parseID(c, "task")
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
// @Summary Create task
// @Tags tasks
// @Param payload body tasks.CreateRequest true "Task"
// @Success 201 {object} tasks.Task
// @Failure 400 {object} ErrorResponse
// @Router /api/tasks [post]
func (h *TasksHandler) Create(c echo.Context) error {
	var req tasks.CreateRequest
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
// @Summary Update task
// @Description due_date null or "" clears it; an unreadable due_date is ignored
// @Tags tasks
// @Param id path int true "Task ID"
// @Param payload body tasks.UpdateRequest true "Fields to change"
// @Success 200 {object} tasks.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/tasks/{id} [put]
func (h *TasksHandler) Update(c echo.Context) error {
	id, err := parseID(c, "task")
	if err != nil {
		return err
	}
	var req tasks.UpdateRequest
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
// @Summary Delete task
// @Tags tasks
// @Param id path int true "Task ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /api/tasks/{id} [delete]
func (h *TasksHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "task")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
