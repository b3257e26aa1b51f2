//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"procure-chef/internal/handler/middleware"
	"procure-chef/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddlewareUsesInjectedLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware(logger, config.LogConfig{Level: "info"}))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	out := buf.String()
	assert.Contains(t, out, "request started")
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "request_id=")
	assert.Contains(t, out, "path=/ping")
}
