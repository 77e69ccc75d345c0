package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getPath(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	e := echo.New()
	e.GET("/healthz", Health)

	rec := getPath(e, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRoot(t *testing.T) {
	e := echo.New()
	e.GET("/", Root)

	rec := getPath(e, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Certification Consulting Backend Running"}`, rec.Body.String())
}

func TestHello(t *testing.T) {
	e := echo.New()
	e.GET("/api/hello", Hello)

	rec := getPath(e, "/api/hello")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Hello from the backend API!"}`, rec.Body.String())
}
