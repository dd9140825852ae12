package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/loci-travelkit/internal/app/models"
	"github.com/FACorreiaa/loci-travelkit/internal/pkg/cache"
)

func newTestEngine(t *testing.T) (*gin.Engine, *cache.CacheManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	caches := cache.NewCacheManager(time.Minute, zap.NewNop())
	monday10 := time.Date(2026, 10, 12, 10, 0, 0, 0, time.UTC)
	Setup(r, Dependencies{
		Caches: caches,
		Clock:  clockwork.NewFakeClockAt(monday10),
	}, zap.NewNop())
	return r, caches
}

func TestHealth(t *testing.T) {
	r, _ := newTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestPackingListRoute(t *testing.T) {
	r, caches := newTestEngine(t)
	body := `{"weather":{"avg_temp":28,"min_temp":22,"max_temp":32,"humidity":40},"activities":[{"type":"beach","count":1}],"durationDays":3}`

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/packing-list", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.PackingListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Items)
		assert.Len(t, resp.Groups, len(resp.ActiveCategories))
		assert.Contains(t, resp.ActiveCategories, models.CategoryAccessories)
	}

	stats := caches.GetAllMetrics()["packing_lists"]
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Sets)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/cache", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"packing_lists"`)
}

func TestVenueRoutes(t *testing.T) {
	r, _ := newTestEngine(t)

	t.Run("inline record", func(t *testing.T) {
		body := `{"weekday_text":["Monday: 9:00 AM – 5:00 PM","Tuesday: Closed","Wednesday: Closed","Thursday: Closed","Friday: Closed","Saturday: Closed","Sunday: Closed"],"time_zone_id":"UTC"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/venues/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var status models.OpenStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.True(t, status.IsOpen)
		assert.Equal(t, "Monday", status.CurrentDay)
	})

	t.Run("stored venue without postgres", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/venues/"+uuid.NewString()+"/status", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
