package reactive

import (
	"fmt"

	"github.com/smilemakc/reactive/internal/cellstore"
	"github.com/smilemakc/reactive/internal/domain"
	"github.com/smilemakc/reactive/internal/field"
	"github.com/smilemakc/reactive/internal/pulse"
)

// Var creates a Source cell holding initial, writable by the caller via
// Set/Add/etc. (§6 `var(v)`). Its default trigger policy is Always
// ("trivially yes" in §4.3's pulse procedure); its default invalidation
// strategy is Close.
func Var[T any](e *Engine, name string, initial T) Handle[T] {
	store := &cellstore.Slot[T]{}
	store.Set(initial)
	id := e.g.Register(domain.KindSource, name, nil, Always, CloseOnInvalid)
	h := Handle[T]{id: id, e: e, store: store}
	bindAggregateContainer(e, id, initial)
	return h
}

// ConstVar creates an immutable Const cell holding initial forever
// (§6 `constVar(v)`). It has no trigger policy to speak of — it is
// never written, hence never the root of a pulse — and its invalidation
// strategy is Close.
func ConstVar[T any](e *Engine, name string, initial T) Handle[T] {
	store := &cellstore.Slot[T]{}
	store.Set(initial)
	id := e.g.Register(domain.KindConst, name, nil, nil, CloseOnInvalid)
	return Handle[T]{id: id, e: e, store: store}
}

// Set writes v to a Source or Field cell and fires exactly one pulse
// (§4.3, §6: "on value-change the pulse fires"). Writing a Const or
// Computed/Action cell returns an error — those kinds are never
// user-writable (§3's Data Model table).
func (h Handle[T]) Set(v T) error {
	view, ok := h.e.g.View(h.id)
	if !ok {
		return &domain.NullHandleAccessError{Node: h.id, Op: "write"}
	}
	if view.Kind() != domain.KindSource && view.Kind() != domain.KindField {
		return fmt.Errorf("reactive: cannot write a %s cell", view.Kind())
	}

	old, hadOld := h.store.Get()
	changed := !hadOld || cellstore.ValuesDiffer(old, v)
	h.store.Set(v)
	bindAggregateContainer(h.e, h.id, v)

	return pulse.Fire(h.e.ctx, h.e.g, h.e.fx, h.e.tracer, h.id, changed)
}

// Value is an alias for Set, matching §6's `value(v)` handle operation
// name.
func (h Handle[T]) Value(v T) error {
	return h.Set(v)
}

// bindAggregateContainer implements I7 and §4.8: if v implements
// Aggregate, re-point every Field sub-cell registered under v's
// aggregate identity to container before any observer of container
// fires. A no-op for any T that isn't an Aggregate.
func bindAggregateContainer[T any](e *Engine, container domain.NodeID, v T) {
	if agg, ok := any(v).(field.Aggregate); ok {
		e.fx.BindContainer(agg.AggregateID(), container)
	}
}
