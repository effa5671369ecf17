package reactive

import (
	"context"

	"github.com/smilemakc/reactive/internal/domain"
	"github.com/smilemakc/reactive/internal/field"
	"github.com/smilemakc/reactive/internal/graph"
	"github.com/smilemakc/reactive/internal/obslog"
)

// Engine is one dependency-graph singleton plus its field index and
// tracer (§5: "one engine per thread is permitted, cross-thread handle
// sharing is not supported"). Every cell constructor in this package
// takes an *Engine explicitly — Go methods cannot introduce their own
// type parameters, so the generic constructors are free functions rather
// than methods on Engine.
type Engine struct {
	g      *graph.Graph
	fx     *field.Index
	tracer obslog.Tracer
	ctx    context.Context
}

// NewEngine builds a fresh engine from cfg. Use this when an embedder
// wants an isolated graph (a second logical thread, a test case that
// must not see another test's cells); most programs use Default().
func NewEngine(cfg domain.EngineConfig) *Engine {
	log := obslog.Setup(cfg.LogLevel)
	return &Engine{
		g:      graph.New(log),
		fx:     field.NewIndex(),
		tracer: obslog.NewTracer(nil),
		ctx:    context.Background(),
	}
}

var defaultEngine = NewEngine(domain.DefaultEngineConfig())

// Default returns the package-level default engine that the examples and
// the simplest embedders use directly.
func Default() *Engine {
	return defaultEngine
}

// WithTracer returns a copy of e that emits spans through tracer instead
// of the no-op default (§9 ambient stack: optional OpenTelemetry tracing,
// disabled unless explicitly wired).
func (e *Engine) WithTracer(tracer obslog.Tracer) *Engine {
	return &Engine{g: e.g, fx: e.fx, tracer: tracer, ctx: e.ctx}
}

// WithContext returns a copy of e whose pulses carry ctx as the root
// tracing context.
func (e *Engine) WithContext(ctx context.Context) *Engine {
	return &Engine{g: e.g, fx: e.fx, tracer: e.tracer, ctx: ctx}
}

// Stats reports the engine's current node/edge counts and pulse count.
func (e *Engine) Stats() graph.Stats {
	return e.g.Stats()
}

// DebugDump renders the engine's current cell and edge set.
func (e *Engine) DebugDump() string {
	return e.g.DebugDump()
}
