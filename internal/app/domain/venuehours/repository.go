package venuehours

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/loci-travelkit/internal/app/models"
)

var _ Repository = (*RepositoryImpl)(nil)

type Repository interface {
	GetOpeningHours(ctx context.Context, venueID uuid.UUID) (*models.OpeningHoursRecord, error)
}

// Querier is the subset of pgxpool.Pool the repository needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type RepositoryImpl struct {
	pgpool Querier
	logger *zap.Logger
}

func NewRepository(pgxpool Querier, logger *zap.Logger) *RepositoryImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RepositoryImpl{
		pgpool: pgxpool,
		logger: logger,
	}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// GetOpeningHours loads the stored weekly hours of a venue.
func (r *RepositoryImpl) GetOpeningHours(ctx context.Context, venueID uuid.UUID) (*models.OpeningHoursRecord, error) {
	ctx, span := otel.Tracer("VenueHoursRepository").Start(ctx, "GetOpeningHours", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation.name", "SELECT"),
		attribute.String("venue.id", venueID.String()),
	))
	defer span.End()

	query, args, err := psql.
		Select(
			"weekday_text",
			"COALESCE(time_zone_id, '')",
			"utc_offset_minutes IS NOT NULL",
			"COALESCE(utc_offset_minutes, 0)",
			"COALESCE(city, '')",
		).
		From("venue_opening_hours").
		Where(sq.Eq{"venue_id": venueID}).
		ToSql()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build query")
		return nil, fmt.Errorf("failed to build opening hours query: %w", err)
	}

	var (
		rec       models.OpeningHoursRecord
		hasOffset bool
		offset    int32
	)
	err = r.pgpool.QueryRow(ctx, query, args...).Scan(&rec.WeekdayText, &rec.TimeZoneID, &hasOffset, &offset, &rec.City)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "not found")
			return nil, fmt.Errorf("opening hours for venue %s: %w", venueID, models.ErrNotFound)
		}
		r.logger.Error("Failed to query opening hours", zap.String("venue_id", venueID.String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to query opening hours: %w", err)
	}

	if hasOffset {
		minutes := int(offset)
		rec.UTCOffsetMinutes = &minutes
	}

	span.SetStatus(codes.Ok, "opening hours loaded")
	return &rec, nil
}
