package venuehours

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/loci-travelkit/internal/app/models"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

// EvaluateRecord handles POST /api/v1/venues/status
func (h *Handler) EvaluateRecord(c *gin.Context) {
	var rec models.OpeningHoursRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		h.logger.Warn("Invalid opening hours payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.service.StatusForRecord(c.Request.Context(), rec))
}

// VenueStatus handles GET /api/v1/venues/:id/status
func (h *Handler) VenueStatus(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue id"})
		return
	}

	status, err := h.service.StatusForVenue(c.Request.Context(), venueID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, status)
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
	case errors.Is(err, models.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "venue store unavailable"})
	default:
		h.logger.Error("Failed to evaluate venue status", zap.String("venue_id", venueID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to evaluate venue status"})
	}
}
