package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/FACorreiaa/loci-travelkit/internal/app/domain/packing"
	"github.com/FACorreiaa/loci-travelkit/internal/app/domain/venuehours"
	"github.com/FACorreiaa/loci-travelkit/internal/app/observability/metrics"
	"github.com/FACorreiaa/loci-travelkit/internal/pkg/cache"
)

type AppHandlers struct {
	Packing    *packing.Handler
	VenueHours *venuehours.Handler
}

// Dependencies are the shared resources the handlers are built from. DBPool may be nil
// when Postgres is disabled.
type Dependencies struct {
	DBPool  *pgxpool.Pool
	Caches  *cache.CacheManager
	Metrics *metrics.AppMetrics
	Clock   clockwork.Clock
}

func Setup(r *gin.Engine, deps Dependencies, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	if deps.Caches == nil {
		deps.Caches = cache.NewCacheManager(cache.DefaultPackingTTL, log)
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewNoop()
	}
	handlers := setupDependencies(deps, log)
	setupRouter(r, handlers, deps.Caches)
}

func setupDependencies(deps Dependencies, log *zap.Logger) *AppHandlers {

	packingService := packing.NewServiceImpl(deps.Caches.PackingLists, deps.Metrics, log)

	var venueRepo venuehours.Repository
	if deps.DBPool != nil {
		venueRepo = venuehours.NewRepository(deps.DBPool, log)
	} else {
		log.Info("Postgres disabled, stored venue lookups will report unavailable")
	}
	evaluator := venuehours.NewEvaluator(venuehours.NewResolver(deps.Clock))
	venueService := venuehours.NewServiceImpl(venueRepo, evaluator, deps.Metrics, log)

	return &AppHandlers{
		Packing:    packing.NewHandler(packingService, log),
		VenueHours: venuehours.NewHandler(venueService, log),
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers, caches *cache.CacheManager) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	debugGroup := r.Group("/debug")
	{
		debugGroup.GET("/cache", func(c *gin.Context) {
			c.JSON(http.StatusOK, caches.GetAllMetrics())
		})
	}

	apiGroup := r.Group("/api/v1")
	{
		apiGroup.POST("/packing-list", h.Packing.GeneratePackingList)

		venuesGroup := apiGroup.Group("/venues")
		{
			venuesGroup.POST("/status", h.VenueHours.EvaluateRecord)
			venuesGroup.GET("/:id/status", h.VenueHours.VenueStatus)
		}
	}
}
