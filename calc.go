package reactive

import (
	"fmt"

	"github.com/smilemakc/reactive/internal/cellstore"
	"github.com/smilemakc/reactive/internal/domain"
	"github.com/smilemakc/reactive/internal/pulse"
)

// computedEval is the generic domain.Evaluator installed on every Calc
// cell: it owns the cell's storage and its currently-bound closure, and
// never re-discovers dependencies on its own — those are fixed once at
// bind time (I3: "never a superset, never a subset").
type computedEval[T any] struct {
	store   *cellstore.Slot[T]
	closure func() (T, error)
}

// Evaluate runs the bound closure and reports whether the stored value
// changed (§4.3 step 3).
func (c *computedEval[T]) Evaluate() (bool, error) {
	v, err := c.closure()
	if err != nil {
		return false, err
	}
	old, had := c.store.Get()
	changed := !had || cellstore.ValuesDiffer(old, v)
	c.store.Set(v)
	return changed, nil
}

// Freeze implements FreezeLastValue (§4.7): replace the closure with a
// constant-returning closure over the current value.
func (c *computedEval[T]) Freeze() error {
	v, ok := c.store.Get()
	if !ok {
		return fmt.Errorf("reactive: cannot freeze a computed cell with no evaluated value yet")
	}
	c.closure = func() (T, error) { return v, nil }
	return nil
}

// Calc creates a Computed cell bound capture-style (§4.4, §6 `calc(f)`):
// f is a nullary closure that discovers its own dependencies by reading
// reactive handles. The first evaluation runs inside a capture sink;
// every handle read during it becomes a real graph edge, and the result
// becomes the cell's initial value. Subsequent evaluations do not
// re-capture — the dependency set is fixed at construction.
func Calc[T any](e *Engine, name string, f func() (T, error)) (Handle[T], error) {
	store := &cellstore.Slot[T]{}
	ce := &computedEval[T]{store: store, closure: f}
	id := e.g.Register(domain.KindComputed, name, ce, Always, CloseOnInvalid)
	h := Handle[T]{id: id, e: e, store: store}

	pulse.BeginCapture()
	v, err := f()
	deps := pulse.EndCapture().IDs()
	if err != nil {
		e.g.Close(id)
		return Handle[T]{}, err
	}
	if bindErr := e.g.Bind(id, deps); bindErr != nil {
		e.g.Close(id)
		return Handle[T]{}, bindErr
	}
	store.Set(v)
	return h, nil
}

// CalcArgs creates a Computed cell bound arguments-style (§4.4, §6
// `calc(f, args...)`): deps lists the cell's dependents explicitly,
// rather than discovering them by capture. f reads whatever it needs
// from the handles the caller closed over; deps must name exactly the
// handles f reads (I3).
func CalcArgs[T any](e *Engine, name string, deps []Dep, f func() (T, error)) (Handle[T], error) {
	store := &cellstore.Slot[T]{}
	ce := &computedEval[T]{store: store, closure: f}
	id := e.g.Register(domain.KindComputed, name, ce, Always, CloseOnInvalid)
	h := Handle[T]{id: id, e: e, store: store}

	ids := make([]domain.NodeID, len(deps))
	for i, d := range deps {
		ids[i] = d.nodeID()
	}
	if err := e.g.Bind(id, ids); err != nil {
		e.g.Close(id)
		return Handle[T]{}, err
	}
	v, err := f()
	if err != nil {
		e.g.Close(id)
		return Handle[T]{}, err
	}
	store.Set(v)
	return h, nil
}

// Rebind replaces h's closure and re-runs the capture-style bind (§4.4:
// "first reset, then re-bound"; the §4.2 pre-checks run again against
// the new edges). Go's type system enforces the ReturnTypeMismatch
// policy of Open Question Decision 2 at compile time for this path — f
// must already return T — so Rebind itself never returns a
// ReturnTypeMismatchError; it can still return a CycleDependencyError
// if the new dependency set would close a cycle, in which case h keeps
// its prior binding. RebindFromString (expr.go) is the one rebind path
// whose result type isn't compiler-checked, and is where
// ReturnTypeMismatchError is actually raised.
func (h Handle[T]) Rebind(f func() (T, error)) error {
	ce, ok := h.e.g.Evaluator(h.id).(*computedEval[T])
	if !ok {
		return fmt.Errorf("reactive: %s is not a rebindable computed cell", h.id)
	}

	pulse.BeginCapture()
	v, err := f()
	deps := pulse.EndCapture().IDs()
	if err != nil {
		return err
	}

	prior := append([]domain.NodeID{}, h.e.g.Dependents(h.id)...)
	h.e.g.Reset(h.id)
	if bindErr := h.e.g.Bind(h.id, deps); bindErr != nil {
		// Restore the prior binding exactly as §4.4 requires: rejection
		// must leave the cell in its previously bound state.
		_ = h.e.g.Bind(h.id, prior)
		return bindErr
	}
	ce.closure = f
	h.store.Set(v)
	return nil
}
