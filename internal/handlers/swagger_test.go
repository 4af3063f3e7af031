package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memohai/crm/internal/db/dbtest"
)

func serveSwagger(t *testing.T, h *SwaggerHandler, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h.Register(e)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestSwaggerSpecNotGenerated(t *testing.T) {
	h := NewSwaggerHandler(dbtest.Logger())
	h.path = filepath.Join(t.TempDir(), "swagger.json")

	rec := serveSwagger(t, h, "/api/swagger.json")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSwaggerSpecServed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swagger.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"swagger":"2.0"}`), 0o600))
	h := NewSwaggerHandler(dbtest.Logger())
	h.path = path

	rec := serveSwagger(t, h, "/api/swagger.json")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"swagger":"2.0"}`, rec.Body.String())

	rec = serveSwagger(t, h, "/api/docs")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")
}
