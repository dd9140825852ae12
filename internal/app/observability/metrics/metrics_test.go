package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNewRecordsOnMeter(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := New(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.PackingListsTotal.Add(ctx, 2)
	m.HoursParseFailuresTotal.Add(ctx, 1)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	names := map[string]bool{}
	for _, md := range rm.ScopeMetrics[0].Metrics {
		names[md.Name] = true
	}
	assert.True(t, names["packing_lists_generated_total"])
	assert.True(t, names["hours_parse_failures_total"])
}

func TestNewNoop(t *testing.T) {
	m := NewNoop()
	require.NotNil(t, m)
	assert.NotPanics(t, func() {
		m.VenueStatusChecksTotal.Add(context.Background(), 1)
	})
}
