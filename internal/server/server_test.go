package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/loci-travelkit/internal/app/middleware"
	"github.com/FACorreiaa/loci-travelkit/internal/pkg/cache"
	"github.com/FACorreiaa/loci-travelkit/internal/pkg/config"
)

func TestNewWithoutPostgres(t *testing.T) {
	cfg := &config.Config{ServerPort: "0"}

	s, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.GetDBPool())
	assert.Same(t, cfg, s.GetConfig())

	s.SetRouter(http.NotFoundHandler())
	httpServer := s.HTTPServer()
	assert.Equal(t, ":0", httpServer.Addr)
	assert.NotNil(t, httpServer.Handler)
}

func TestSetupRouter(t *testing.T) {
	r := SetupRouter(RouterOptions{
		ServiceName: "test",
		Caches:      cache.NewCacheManager(time.Minute, zap.NewNop()),
	}, zap.NewNop())

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("packing list", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/packing-list", bytes.NewBufferString(`{"activities":[],"durationDays":7}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Laundry bag")
	})

	t.Run("negative duration", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/packing-list", bytes.NewBufferString(`{"durationDays":-1}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestShutdownServers(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0"}
	ShutdownServers(zap.NewNop(), time.Second, srv, nil)

	assert.ErrorIs(t, srv.ListenAndServe(), http.ErrServerClosed)
}
