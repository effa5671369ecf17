package pulse

import (
	"context"

	"github.com/smilemakc/reactive/internal/domain"
	"github.com/smilemakc/reactive/internal/field"
	"github.com/smilemakc/reactive/internal/graph"
	"github.com/smilemakc/reactive/internal/obslog"
)

// run carries the per-pulse state: the global at-most-once guard (I6), the
// graph being propagated over, the field index used to chase a written
// sub-cell's enclosing container (§4.8), and the tracer used to emit one
// span per pulse plus one child span per cell visited.
type run struct {
	g       *graph.Graph
	fx      *field.Index
	tracer  obslog.Tracer
	ctx     context.Context
	visited map[domain.NodeID]bool
}

// Fire drives one full pulse from a written cell (§4.3): written has
// already had its new value stored by the caller (step 1 of the
// procedure). Fire asks written's own trigger policy whether to proceed
// at all, then notifies written's observers. fx may be nil for a graph
// with no field sub-cells; tracer may be the zero value, which falls
// back to otel's no-op tracer.
func Fire(ctx context.Context, g *graph.Graph, fx *field.Index, tracer obslog.Tracer, written domain.NodeID, changed bool) error {
	g.BeginPulse()
	defer g.EndPulse()

	if tracer == (obslog.Tracer{}) {
		tracer = obslog.NewTracer(nil)
	}

	view, ok := g.View(written)
	if !ok {
		return nil
	}

	ctx, span := tracer.StartPulse(ctx, view.Name())
	defer span.End()

	r := &run{g: g, fx: fx, tracer: tracer, ctx: ctx, visited: map[domain.NodeID]bool{written: true}}

	if trig := g.Trigger(written); trig != nil && !trig.ShouldFire(changed, view) {
		return nil
	}
	if err := r.notify(written, changed); err != nil {
		return err
	}
	return r.notifyContainer(view, written, changed)
}

// notify visits node's observers, respecting observer-insertion order and
// the repeat-dependency deferral rule (§4.3 rules 1 and 2): an observer
// that repeat-depends on node is held back until the rest of node's
// observers have been visited, then visited at the tail. The pulse-global
// visited set makes a deferred re-visit a no-op if the observer was
// already reached via its non-deferred path in the meantime, preserving
// at-most-once (I6) and glitch-freedom.
func (r *run) notify(node domain.NodeID, changed bool) error {
	observers := r.g.Observers(node)
	var deferred []domain.NodeID

	for _, obs := range observers {
		if r.g.IsRepeatDependent(obs, node) {
			deferred = append(deferred, obs)
			continue
		}
		if err := r.visit(obs, changed); err != nil {
			return err
		}
	}
	for _, obs := range deferred {
		if err := r.visit(obs, changed); err != nil {
			return err
		}
	}
	return nil
}

// visit is "Visiting a non-source cell C with a changed hint" (§4.3): ask
// C's trigger, recompute C's closure if allowed, and propagate the result.
func (r *run) visit(node domain.NodeID, changedHint bool) error {
	if r.visited[node] {
		return nil
	}
	r.visited[node] = true

	view, ok := r.g.View(node)
	if !ok {
		return nil // closed between scheduling and visiting; nothing to do
	}

	_, span := r.tracer.StartVisit(r.ctx, view.Name())
	defer span.End()

	if trig := r.g.Trigger(node); trig != nil && !trig.ShouldFire(changedHint, view) {
		return nil
	}

	changed := changedHint
	if eval := r.g.Evaluator(node); eval != nil {
		var err error
		changed, err = eval.Evaluate()
		if err != nil {
			return err
		}
	}

	if view.Kind() == domain.KindAction {
		return nil // terminal: nothing reads an Action cell
	}
	if err := r.notify(node, changed); err != nil {
		return err
	}
	return r.notifyContainer(view, node, changed)
}

// notifyContainer implements §4.8's ordering rule: when node is a Field
// sub-cell registered with an enclosing Source, that Source's own
// observers fire immediately after node's own observers have fully
// settled (including node's deferred tail). A no-op for any node that
// isn't a field sub-cell, or whose container is outside this pulse's
// fx (nil fx, or never bound).
func (r *run) notifyContainer(view domain.NodeView, node domain.NodeID, changed bool) error {
	if r.fx == nil || view.Kind() != domain.KindField {
		return nil
	}
	container, ok := r.fx.Container(node)
	if !ok {
		return nil
	}
	return r.visit(container, changed)
}
