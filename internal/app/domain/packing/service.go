package packing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/FACorreiaa/loci-travelkit/internal/app/domain/weather"
	"github.com/FACorreiaa/loci-travelkit/internal/app/models"
	"github.com/FACorreiaa/loci-travelkit/internal/app/observability/metrics"
	"github.com/FACorreiaa/loci-travelkit/internal/pkg/cache"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	GeneratePackingList(ctx context.Context, req models.PackingListRequest) (*models.PackingListResponse, error)
}

type ServiceImpl struct {
	logger  *zap.Logger
	cache   *cache.UnifiedCache[models.PackingListResponse]
	metrics *metrics.AppMetrics
	flight  singleflight.Group
}

// NewServiceImpl wires the packing service. A nil cache disables memoization.
func NewServiceImpl(memo *cache.UnifiedCache[models.PackingListResponse], m *metrics.AppMetrics, logger *zap.Logger) *ServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewNoop()
	}
	return &ServiceImpl{
		logger:  logger,
		cache:   memo,
		metrics: m,
	}
}

// GeneratePackingList validates the request, resolves the weather summary and computes the
// grouped list. Identical requests within the cache TTL share one computation.
func (s *ServiceImpl) GeneratePackingList(ctx context.Context, req models.PackingListRequest) (*models.PackingListResponse, error) {
	ctx, span := otel.Tracer("PackingService").Start(ctx, "GeneratePackingList", trace.WithAttributes(
		attribute.Int("packing.duration_days", req.DurationDays),
		attribute.Int("packing.activities", len(req.Activities)),
		attribute.Bool("packing.has_weather", req.Weather != nil || len(req.Forecast) > 0),
	))
	defer span.End()

	if err := validate(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		return nil, err
	}

	key := cache.NewCacheKeyBuilder(s.logger).
		Add("weather", req.Weather).
		Add("forecast", req.Forecast).
		Add("activities", req.Activities).
		Add("duration", req.DurationDays).
		BuildOrDefault()

	if s.cache != nil && key != "" {
		if cached, found := s.cache.Get(key); found {
			s.metrics.PackingCacheHitsTotal.Add(ctx, 1)
			span.SetAttributes(attribute.Bool("packing.cache_hit", true))
			span.SetStatus(codes.Ok, "served from cache")
			return &cached, nil
		}
	}

	var resp models.PackingListResponse
	if key == "" {
		resp = s.compute(ctx, req)
	} else {
		v, _, _ := s.flight.Do(key, func() (interface{}, error) {
			return s.compute(ctx, req), nil
		})
		resp = v.(models.PackingListResponse)
		if s.cache != nil {
			s.cache.Set(key, resp)
		}
	}

	s.metrics.PackingListsTotal.Add(ctx, 1)
	s.metrics.PackingListItems.Record(ctx, int64(len(resp.Items)),
		metric.WithAttributes(attribute.Bool("has_weather", resp.Weather != nil)))

	s.logger.Debug("Packing list generated",
		zap.Int("items", len(resp.Items)),
		zap.Int("active_categories", len(resp.ActiveCategories)),
		zap.Int("duration_days", req.DurationDays))

	span.SetAttributes(attribute.Int("packing.items", len(resp.Items)))
	span.SetStatus(codes.Ok, "packing list generated")
	return &resp, nil
}

func (s *ServiceImpl) compute(ctx context.Context, req models.PackingListRequest) models.PackingListResponse {
	_, span := otel.Tracer("PackingService").Start(ctx, "ComputePackingList")
	defer span.End()

	summary := req.Weather
	if summary == nil {
		summary = weather.Summarize(req.Forecast)
	}

	items := Generate(summary, req.Activities, req.DurationDays)
	grouped := Group(items)

	return models.PackingListResponse{
		Items:            items,
		Groups:           grouped.Groups(),
		ActiveCategories: grouped.ActiveCategories(),
		Weather:          summary,
	}
}

func validate(req models.PackingListRequest) error {
	if req.DurationDays < 0 {
		return fmt.Errorf("%w: durationDays must not be negative", models.ErrValidation)
	}
	for i, a := range req.Activities {
		if a.Count < 0 {
			return fmt.Errorf("%w: activities[%d].count must not be negative", models.ErrValidation, i)
		}
	}
	return nil
}
