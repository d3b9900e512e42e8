package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *metric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func TestObservability_Records(t *testing.T) {
	reader := metric.NewManualReader()
	obs := newWithReader("loan-catalog-test", reader)
	defer obs.Shutdown()
	ctx := context.Background()

	obs.RecordOffersGenerated(ctx, "list-offers", 120)
	obs.RecordOffersGenerated(ctx, "home-page", 80)
	obs.RecordReviewsGenerated(ctx, "offer", 3)
	obs.RecordPage(ctx, "list-offers", 3*time.Millisecond, "success")

	data := collect(t, reader)

	offers, ok := data["catalog.offers.generated"].(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range offers.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(200), total)

	pages, ok := data["pages.built"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, pages.DataPoints, 1)
	assert.Equal(t, int64(1), pages.DataPoints[0].Value)

	_, ok = data["pages.duration"].(metricdata.Histogram[float64])
	assert.True(t, ok)
}

func TestObservability_NilSafe(t *testing.T) {
	var obs *Observability
	ctx := context.Background()

	obs.RecordOffersGenerated(ctx, "home-page", 1)
	obs.RecordReviewsGenerated(ctx, "offer", 1)
	obs.RecordPage(ctx, "home-page", time.Millisecond, "success")
	obs.Shutdown()

	(&Observability{}).RecordPage(ctx, "home-page", time.Millisecond, "success")
}
