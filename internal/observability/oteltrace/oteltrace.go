// Package oteltrace backs the TraceCtx port with the global OpenTelemetry
// tracer provider. Without an SDK installed spans are no-ops that still
// propagate context.
package oteltrace

import (
	"context"

	"github.com/catalog-inventory/services/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type tracer struct{ t trace.Tracer }

func New(name string) observability.TraceCtx {
	return &tracer{t: otel.Tracer(name)}
}

func (t *tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.t.Start(ctx, name, trace.WithAttributes(attrs...))
}
