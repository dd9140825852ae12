package cache

import (
	"time"

	"go.uber.org/zap"

	"github.com/FACorreiaa/loci-travelkit/internal/app/models"
)

// DefaultPackingTTL is used when no TTL is configured.
const DefaultPackingTTL = 30 * time.Minute

// CacheManager holds all application caches
type CacheManager struct {
	// Computed packing lists keyed by a hash of the request
	PackingLists *UnifiedCache[models.PackingListResponse]
}

// NewCacheManager creates a new cache manager
func NewCacheManager(packingTTL time.Duration, logger *zap.Logger) *CacheManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if packingTTL <= 0 {
		packingTTL = DefaultPackingTTL
	}
	return &CacheManager{
		PackingLists: NewUnifiedCache[models.PackingListResponse](packingTTL, "packing_lists", logger),
	}
}

// GetAllMetrics returns metrics for all caches
func (cm *CacheManager) GetAllMetrics() map[string]CacheMetrics {
	return map[string]CacheMetrics{
		"packing_lists": cm.PackingLists.GetMetrics(),
	}
}

// ClearAll clears all caches
func (cm *CacheManager) ClearAll() {
	cm.PackingLists.Clear()
}
