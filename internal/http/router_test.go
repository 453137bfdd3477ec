package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/loggers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	logger, err := loggers.New("info")
	require.NoError(t, err)
	router := NewRouter(logger)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok\n", rr.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	logger, err := loggers.New("info")
	require.NoError(t, err)
	router := NewRouter(logger)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Body.String())
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	t.Parallel()

	logger, err := loggers.New("info")
	require.NoError(t, err)
	router := NewRouter(logger)

	req := httptest.NewRequest(http.MethodGet, "/logs", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
