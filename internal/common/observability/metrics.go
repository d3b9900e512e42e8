// internal/common/observability/metrics.go
package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability records catalog level measurements through OpenTelemetry.
// The zero value and a nil pointer are valid and record nothing.
type Observability struct {
	meterProvider   *metric.MeterProvider
	meter           otelmetric.Meter
	offersGenerated otelmetric.Int64Counter
	reviews         otelmetric.Int64Counter
	pageRenders     otelmetric.Int64Counter
	renderDuration  otelmetric.Float64Histogram
}

// New wires an OpenTelemetry meter provider to the default Prometheus
// registry, so the measurements show up on /metrics.
func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	return newWithReader(serviceName, exporter)
}

func newWithReader(serviceName string, reader metric.Reader) *Observability {
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	offersGenerated, _ := meter.Int64Counter(
		"catalog.offers.generated",
		otelmetric.WithDescription("Number of loan offers generated for requests"),
	)

	reviews, _ := meter.Int64Counter(
		"catalog.reviews.generated",
		otelmetric.WithDescription("Number of reviews generated for pages"),
	)

	pageRenders, _ := meter.Int64Counter(
		"pages.built",
		otelmetric.WithDescription("Number of page view models built"),
	)

	renderDuration, _ := meter.Float64Histogram(
		"pages.duration",
		otelmetric.WithDescription("Page view model build duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:   provider,
		meter:           meter,
		offersGenerated: offersGenerated,
		reviews:         reviews,
		pageRenders:     pageRenders,
		renderDuration:  renderDuration,
	}
}

func (o *Observability) RecordOffersGenerated(ctx context.Context, page string, count int) {
	if o == nil || o.offersGenerated == nil {
		return
	}
	o.offersGenerated.Add(ctx, int64(count), otelmetric.WithAttributes(
		attribute.String("page", page),
	))
}

func (o *Observability) RecordReviewsGenerated(ctx context.Context, subject string, count int) {
	if o == nil || o.reviews == nil {
		return
	}
	o.reviews.Add(ctx, int64(count), otelmetric.WithAttributes(
		attribute.String("subject", subject),
	))
}

// RecordPage counts a built page and its build time by outcome.
func (o *Observability) RecordPage(ctx context.Context, page string, duration time.Duration, status string) {
	if o == nil {
		return
	}
	attrs := otelmetric.WithAttributes(
		attribute.String("page", page),
		attribute.String("status", status),
	)
	if o.pageRenders != nil {
		o.pageRenders.Add(ctx, 1, attrs)
	}
	if o.renderDuration != nil {
		o.renderDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	}
}

func (o *Observability) Shutdown() {
	if o != nil && o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = o.meterProvider.Shutdown(ctx)
	}
}
