package metrics

import (
	"fmt"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal       metric.Int64Counter
	HTTPRequestDuration     metric.Float64Histogram
	PackingListsTotal       metric.Int64Counter
	PackingListItems        metric.Int64Histogram
	PackingCacheHitsTotal   metric.Int64Counter
	VenueStatusChecksTotal  metric.Int64Counter
	HoursParseFailuresTotal metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// New creates the instruments on the given meter.
func New(meter metric.Meter) (*AppMetrics, error) {
	var err error
	m := &AppMetrics{}

	m.HTTPRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests completed"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("http_requests_total: %w", err)
	}

	m.HTTPRequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("Duration of HTTP requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("http_request_duration_seconds: %w", err)
	}

	m.PackingListsTotal, err = meter.Int64Counter(
		"packing_lists_generated_total",
		metric.WithDescription("Total number of packing lists computed"),
		metric.WithUnit("{list}"),
	)
	if err != nil {
		return nil, fmt.Errorf("packing_lists_generated_total: %w", err)
	}

	m.PackingListItems, err = meter.Int64Histogram(
		"packing_list_items",
		metric.WithDescription("Number of items in each computed packing list"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, fmt.Errorf("packing_list_items: %w", err)
	}

	m.PackingCacheHitsTotal, err = meter.Int64Counter(
		"packing_cache_hits_total",
		metric.WithDescription("Packing list requests served from the memo cache"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("packing_cache_hits_total: %w", err)
	}

	m.VenueStatusChecksTotal, err = meter.Int64Counter(
		"venue_status_checks_total",
		metric.WithDescription("Total number of venue open/closed evaluations"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, fmt.Errorf("venue_status_checks_total: %w", err)
	}

	m.HoursParseFailuresTotal, err = meter.Int64Counter(
		"hours_parse_failures_total",
		metric.WithDescription("Opening hours entries that could not be parsed"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, fmt.Errorf("hours_parse_failures_total: %w", err)
	}

	return m, nil
}

// NewNoop returns instruments that record nothing. Useful for tests and optional wiring.
func NewNoop() *AppMetrics {
	m, err := New(noop.NewMeterProvider().Meter("noop"))
	if err != nil {
		panic(err)
	}
	return m
}

// InitAppMetrics initializes the global metrics instruments ONLY ONCE
// from the globally configured MeterProvider.
func InitAppMetrics(serviceName string) {
	once.Do(func() {
		m, err := New(otel.GetMeterProvider().Meter(serviceName))
		if err != nil {
			log.Fatalf("Metrics: %v", err)
		}
		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
