package obslog

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps an otel trace.Tracer with the two spans the engine emits:
// one per pulse, one per cell visited within that pulse. Grounded on the
// teacher's context-threaded Execute(ctx, ...) signatures
// (internal/application/executor/engine.go); the teacher's otel
// dependency is declared but only exercised by its nested-module
// telemetry package, so this is new wiring rather than a copy.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer wraps the given otel tracer. A nil tracer falls back to
// otel.Tracer("reactive"), which is a safe no-op implementation until a
// real TracerProvider is registered via otel.SetTracerProvider.
func NewTracer(tracer trace.Tracer) Tracer {
	if tracer == nil {
		tracer = otel.Tracer("reactive")
	}
	return Tracer{tracer: tracer}
}

// StartPulse opens a span covering one full propagation pulse, named
// after the written cell.
func (t Tracer) StartPulse(ctx context.Context, rootName string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "reactive.pulse "+rootName, trace.WithAttributes())
}

// StartVisit opens a child span covering one cell's visit within a
// pulse.
func (t Tracer) StartVisit(ctx context.Context, cellName string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "reactive.visit")
}
