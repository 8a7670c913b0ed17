package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qastore/pkg/domains/simulator"
)

func newSimulatedRouter(cfg simulator.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	app := gin.New()
	app.Use(Simulate(simulator.New(cfg)))
	app.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return app
}

func TestSimulateDisabledPassesThrough(t *testing.T) {
	app := newSimulatedRouter(simulator.Config{Enabled: false})

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSimulateMapsSyntheticNotFound(t *testing.T) {
	app := newSimulatedRouter(simulator.Config{Enabled: true, FailureRate: 1, NotFoundRate: 1})

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Resource not found"}`, w.Body.String())
}

func TestSimulateMapsSyntheticServerError(t *testing.T) {
	app := newSimulatedRouter(simulator.Config{Enabled: true, FailureRate: 1, ServerErrorRate: 1})

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestSimulateCanceledRequestGets499(t *testing.T) {
	app := newSimulatedRouter(simulator.Config{Enabled: true, DelayMs: 5000})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil).WithContext(ctx)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	require.Equal(t, 499, w.Code)
	assert.Empty(t, w.Body.String())
}
