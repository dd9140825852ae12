package packing

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
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

// GeneratePackingList handles POST /api/v1/packing-list
func (h *Handler) GeneratePackingList(c *gin.Context) {
	var req models.PackingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid packing list request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.service.GeneratePackingList(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to generate packing list", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate packing list"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
