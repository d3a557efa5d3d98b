package callsite

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// metrics holds the metric instruments for annotation.
type metrics struct {
	// Annotation decision counter, partitioned by status.
	annotations metric.Int64Counter
}

// newMetrics creates and registers metric instruments.
func newMetrics(meter metric.Meter) (*metrics, error) {
	m := &metrics{}
	var err error

	m.annotations, err = meter.Int64Counter(
		"db.client.annotation.count",
		metric.WithDescription("Number of queries considered for call-site annotation"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// recordAnnotation counts one annotation decision. status is
// "annotated" when a marker was spliced and "skipped" when resolution
// found no application frame.
func (m *metrics) recordAnnotation(ctx context.Context, annotated bool) {
	if m == nil || m.annotations == nil {
		return
	}

	status := "annotated"
	if !annotated {
		status = "skipped"
	}

	m.annotations.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}
