package server

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/FACorreiaa/loci-travelkit/internal/app/middleware"
	"github.com/FACorreiaa/loci-travelkit/internal/app/observability/metrics"
	"github.com/FACorreiaa/loci-travelkit/internal/pkg/cache"
	"github.com/FACorreiaa/loci-travelkit/internal/routes"
)

// RouterOptions carries what SetupRouter wires into the handlers.
type RouterOptions struct {
	ServiceName string
	DBPool      *pgxpool.Pool
	Caches      *cache.CacheManager
	Metrics     *metrics.AppMetrics
}

// SetupRouter configures and returns the Gin router with all middleware and routes
func SetupRouter(opts RouterOptions, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.OTELGinMiddleware(opts.ServiceName))
	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
		SkipPaths:  []string{"/health"},
		Context:    zapContextFunc(),
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.HTTPMetricsMiddleware(opts.Metrics))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityMiddleware())

	routes.Setup(r, routes.Dependencies{
		DBPool:  opts.DBPool,
		Caches:  opts.Caches,
		Metrics: opts.Metrics,
	}, logger)

	return r
}

// zapContextFunc adds request and trace identifiers to each access log line
func zapContextFunc() ginzap.Fn {
	return func(c *gin.Context) []zapcore.Field {
		fields := []zapcore.Field{}

		if requestID := c.Writer.Header().Get(middleware.RequestIDHeader); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}

		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().IsValid() {
			fields = append(fields,
				zap.String("trace_id", span.SpanContext().TraceID().String()),
				zap.String("span_id", span.SpanContext().SpanID().String()),
			)
		}

		return fields
	}
}
