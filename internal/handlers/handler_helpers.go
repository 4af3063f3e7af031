package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/memohai/crm/internal/crm"
	"github.com/memohai/crm/internal/logger"
)

// parseID reads the :id path parameter. Anything that is not a positive
// integer cannot name a record, so it is reported as not found.
func parseID(c echo.Context, entity string) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, entity+" not found")
	}
	return id, nil
}

// optionalIDQuery reads an integer query filter; a missing or non-integer value means no filter.
func optionalIDQuery(c echo.Context, name string) int64 {
	id, err := strconv.ParseInt(c.QueryParam(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// bindRequest decodes the JSON body into dst.
func bindRequest(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// serviceError translates a service error into an HTTP error. Unclassified
// errors are logged and hidden behind a generic 500.
func serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, crm.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, crm.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, crm.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	logger.FromContext(c.Request().Context()).Error("request failed",
		slog.String("method", c.Request().Method),
		slog.String("path", c.Path()),
		slog.Any("error", err),
	)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
}
