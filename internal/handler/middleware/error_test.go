//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"procure-chef/internal/handler/middleware"
	"procure-chef/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	requestLogger := slog.New(slog.NewTextHandler(&buf, nil))

	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.LoggingMiddleware(requestLogger, config.LogConfig{Level: "info"}))
	engine.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")

	out := buf.String()
	assert.Contains(t, out, "recovered from panic")
	assert.Contains(t, out, "kaboom")

	// The panic log carries the id assigned by the logging middleware.
	matches := regexp.MustCompile(`request_id=(\S+)`).FindAllStringSubmatch(out, -1)
	require.NotEmpty(t, matches)
	panicLine := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "recovered from panic") {
			panicLine = line
		}
	}
	require.NotEmpty(t, panicLine)
	assert.Contains(t, panicLine, "request_id="+matches[0][1])
}
