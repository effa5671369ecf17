// Package reactive implements an in-process, single-threaded reactive
// dataflow engine: a DAG of cells whose values recompute automatically
// when their inputs change, and whose side effects (actions) run on
// every relevant change.
//
// The package is not safe for concurrent use from multiple goroutines
// against the same Engine — §5's concurrency model is single-threaded
// cooperative, by design. Build one Engine per logical thread if you
// need more than one.
package reactive

import (
	"fmt"

	"github.com/smilemakc/reactive/internal/cellstore"
	"github.com/smilemakc/reactive/internal/domain"
	"github.com/smilemakc/reactive/internal/field"
	"github.com/smilemakc/reactive/internal/pulse"
	"github.com/smilemakc/reactive/internal/trigger"
)

// Handle is the caller-facing weak reference to a cell (§3 Lifecycle).
// Copying a Handle does not by itself change the underlying cell's
// weak-reference count — Go has no destructors to decrement it
// automatically on scope exit, so that bookkeeping is explicit via
// Clone and Drop rather than implicit via copy/destroy, the idiomatic
// adaptation of §9's "weak handles with a counter inside the strong
// cell" note to a language without RAII.
type Handle[T any] struct {
	id    domain.NodeID
	e     *Engine
	store *slot[T]
}

// nodeID implements Dep, letting a []Handle[T] of mixed T be passed
// wherever only dependency identity matters (CalcArgs, ActionArgs).
func (h Handle[T]) nodeID() domain.NodeID { return h.id }

// Dep is the type-erased view of a Handle used to build explicit
// dependency lists across different value types (§4.4 arguments-style
// bind). Only this package's Handle[T] implements it.
type Dep interface {
	nodeID() domain.NodeID
}

// Valid reports whether the handle's referent is still live — the
// boolean-context truthiness check of §3 Lifecycle ("a closed cell...
// its handle converts to false"). Valid never panics.
func (h Handle[T]) Valid() bool {
	if h.e == nil {
		return false
	}
	return h.e.g.Exists(h.id)
}

// Get reads the cell's current value, recording the read with the
// active capture sink if one is open (§4.4 capture-style binding). A
// closed or unknown handle panics with a *domain.NullHandleAccessError
// — §7: "reading raises a runtime error", distinct from Valid's
// truthiness check, which never panics.
func (h Handle[T]) Get() T {
	pulse.RecordRead(h.id)
	if !h.e.g.Exists(h.id) {
		panic(&domain.NullHandleAccessError{Node: h.id, Op: "read"})
	}
	v, _ := h.store.Get()
	return v
}

// Ref borrows a pointer to the stored value instead of copying it,
// failing when the slot has never been populated (the transient window
// between construction and first evaluation described in §4.1).
func (h Handle[T]) Ref() (*T, bool) {
	if !h.e.g.Exists(h.id) {
		return nil, false
	}
	return h.store.Borrow()
}

// GetUpdate re-evaluates the cell's closure without propagating to
// observers — §6's "trigger update (getUpdate = re-evaluate closure
// without propagation)". For a Source, Const or Field cell, which has
// no closure, it is equivalent to Get.
func (h Handle[T]) GetUpdate() T {
	if eval := h.e.g.Evaluator(h.id); eval != nil {
		_, _ = eval.Evaluate()
	}
	return h.Get()
}

// Name returns the cell's debug name.
func (h Handle[T]) Name() string {
	return h.e.g.Name(h.id)
}

// Rename sets the cell's debug name.
func (h Handle[T]) Rename(name string) {
	h.e.g.SetName(h.id, name)
}

// SetThreshold installs a Threshold trigger policy (§4.6) evaluating
// predicate on every visit; notification proceeds only when predicate
// returns true. predicate is run once now inside a capture sink, the
// same mechanism Calc's capture-style binding uses, so every handle it
// reads becomes a real dependency of h (Open Question Decision 1: "the
// predicate is just another reactive read site") — a cell the
// predicate alone reads, that the owning closure never reads itself,
// still re-triggers a check when it changes. Returns a
// *CycleDependencyError if any of those reads would close a cycle, in
// which case the trigger is not installed and h's prior policy and
// bindings are unchanged.
func (h Handle[T]) SetThreshold(predicate func() bool) error {
	pulse.BeginCapture()
	predicate()
	deps := pulse.EndCapture().IDs()
	if err := h.e.g.Bind(h.id, deps); err != nil {
		return err
	}
	h.e.g.SetTrigger(h.id, trigger.NewThreshold(predicate))
	return nil
}

// SetTrigger installs any structurally conforming TriggerPolicy.
func (h Handle[T]) SetTrigger(policy TriggerPolicy) {
	h.e.g.SetTrigger(h.id, policy)
}

// SetInvalidation installs any structurally conforming InvalidationStrategy
// (§4.7), replacing the one chosen at construction (CloseOnInvalid for
// every built-in constructor except Field, which uses FieldCloseOnInvalid).
func (h Handle[T]) SetInvalidation(strategy InvalidationStrategy) {
	h.e.g.SetInvalidation(h.id, strategy)
}

// Close cascade-closes this cell and every cell transitively observing
// it (§4.2 close, I5), regardless of weak-reference count.
func (h Handle[T]) Close() {
	h.e.g.Close(h.id)
}

// Clone increments the underlying cell's weak-reference count and
// returns a copy of this handle — the explicit analogue of copying a
// weak reference in a language with destructors (§3 Lifecycle).
func (h Handle[T]) Clone() Handle[T] {
	h.e.g.Retain(h.id)
	return h
}

// Drop decrements the underlying cell's weak-reference count, running
// its invalidation strategy if the count reaches zero (§4.7, I4). After
// Drop the handle should not be used again, the same discipline as a
// moved-from value.
func (h Handle[T]) Drop() {
	h.e.g.Release(h.id)
}

// slot is an alias so the cellstore package doesn't leak into every
// signature in this file.
type slot[T any] = cellstore.Slot[T]

// String renders the handle for debug output.
func (h Handle[T]) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Handle(%s, closed)", h.id)
	}
	return fmt.Sprintf("Handle(%s, %q)", h.id, h.Name())
}

// field.Aggregate re-exported under the name the public API uses.
type Aggregate = field.Aggregate
