package packing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/loci-travelkit/internal/app/models"
)

// MockService is a mock implementation of Service
type MockService struct {
	mock.Mock
}

func (m *MockService) GeneratePackingList(ctx context.Context, req models.PackingListRequest) (*models.PackingListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PackingListResponse), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc, zap.NewNop())
	r.POST("/api/v1/packing-list", h.GeneratePackingList)
	return r
}

func TestHandlerGeneratePackingList(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *MockService)
		wantStatus int
	}{
		{
			name:       "malformed body",
			body:       `{"durationDays": "ten"}`,
			setupMock:  func(m *MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: `{"durationDays": -1}`,
			setupMock: func(m *MockService) {
				m.On("GeneratePackingList", mock.Anything, models.PackingListRequest{DurationDays: -1}).
					Return(nil, fmt.Errorf("%w: negative", models.ErrValidation))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unexpected error",
			body: `{"durationDays": 2}`,
			setupMock: func(m *MockService) {
				m.On("GeneratePackingList", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "success",
			body: `{"activities":[{"type":"beach","count":2}],"durationDays":10}`,
			setupMock: func(m *MockService) {
				m.On("GeneratePackingList", mock.Anything, models.PackingListRequest{
					Activities:   []models.ActivitySignal{{Type: "beach", Count: 2}},
					DurationDays: 10,
				}).Return(&models.PackingListResponse{
					Items: []models.PackingItem{{Name: "Swimwear", Category: models.CategoryClothing}},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/packing-list", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			setupRouter(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandlerWithRealService(t *testing.T) {
	r := setupRouter(NewServiceImpl(nil, nil, nil))

	body := `{"weather":{"min_temp":5,"max_temp":12,"has_rain":true,"humidity":50},"activities":[],"durationDays":3}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/packing-list", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PackingListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, names(resp.Items), "Rain jacket")
	assert.Equal(t, models.CategoryClothing, resp.ActiveCategories[0])
}
