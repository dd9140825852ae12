package venuehours

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/loci-travelkit/internal/app/models"
	"github.com/FACorreiaa/loci-travelkit/internal/app/observability/metrics"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	StatusForRecord(ctx context.Context, rec models.OpeningHoursRecord) models.OpenStatus
	StatusForVenue(ctx context.Context, venueID uuid.UUID) (models.OpenStatus, error)
}

type ServiceImpl struct {
	repo      Repository
	evaluator *Evaluator
	metrics   *metrics.AppMetrics
	logger    *zap.Logger
}

// NewServiceImpl wires the venue hours service. repo may be nil when no venue store is
// configured; StatusForVenue then reports models.ErrUnavailable.
func NewServiceImpl(repo Repository, evaluator *Evaluator, m *metrics.AppMetrics, logger *zap.Logger) *ServiceImpl {
	if evaluator == nil {
		evaluator = NewEvaluator(nil)
	}
	if m == nil {
		m = metrics.NewNoop()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceImpl{
		repo:      repo,
		evaluator: evaluator,
		metrics:   m,
		logger:    logger,
	}
}

// StatusForRecord evaluates a record supplied by the caller. Unparseable hours are logged
// and reported as closed.
func (s *ServiceImpl) StatusForRecord(ctx context.Context, rec models.OpeningHoursRecord) models.OpenStatus {
	ctx, span := otel.Tracer("VenueHoursService").Start(ctx, "StatusForRecord")
	defer span.End()

	return s.evaluate(ctx, span, rec)
}

// StatusForVenue loads the stored hours of a venue and evaluates them.
func (s *ServiceImpl) StatusForVenue(ctx context.Context, venueID uuid.UUID) (models.OpenStatus, error) {
	ctx, span := otel.Tracer("VenueHoursService").Start(ctx, "StatusForVenue", trace.WithAttributes(
		attribute.String("venue.id", venueID.String()),
	))
	defer span.End()

	if s.repo == nil {
		span.SetStatus(codes.Error, "no venue store")
		return models.OpenStatus{}, fmt.Errorf("venue store not configured: %w", models.ErrUnavailable)
	}

	rec, err := s.repo.GetOpeningHours(ctx, venueID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("Failed to load opening hours", zap.String("venue_id", venueID.String()), zap.Error(err))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return models.OpenStatus{}, err
	}

	return s.evaluate(ctx, span, *rec), nil
}

func (s *ServiceImpl) evaluate(ctx context.Context, span trace.Span, rec models.OpeningHoursRecord) models.OpenStatus {
	status, err := s.evaluator.Evaluate(rec)
	if err != nil {
		s.metrics.HoursParseFailuresTotal.Add(ctx, 1)
		s.logger.Warn("Opening hours could not be evaluated",
			zap.Strings("weekday_text", rec.WeekdayText),
			zap.Error(err))
		span.RecordError(err)
	}
	status = Degrade(status, err)

	s.metrics.VenueStatusChecksTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("open", status.IsOpen),
		attribute.String("tz_source", status.TimeZoneSource),
	))
	span.SetAttributes(
		attribute.Bool("venue.open", status.IsOpen),
		attribute.String("venue.tz_source", status.TimeZoneSource),
	)
	span.SetStatus(codes.Ok, "status evaluated")
	return status
}
