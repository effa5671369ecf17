package reactive

import (
	"github.com/smilemakc/reactive/internal/cellstore"
	"github.com/smilemakc/reactive/internal/domain"
)

// Field creates a Field sub-cell of owner, registering it under owner's
// aggregate identity (§4.8, §6 `field(owner, v)`). owner is typically
// `this` from inside the aggregate's own constructor — the sub-cell
// registers itself before the aggregate is ever wrapped in a Source; the
// back-pointer to whichever Source eventually wraps it is set later, by
// Var or Set, when bindAggregateContainer sees the aggregate value.
//
// Its default invalidation strategy is FieldClose: when the sub-cell's
// last weak handle drops, it detaches from the field index and closes,
// rather than leaving a dangling index entry.
func Field[T any](e *Engine, owner Aggregate, name string, initial T) Handle[T] {
	store := &cellstore.Slot[T]{}
	store.Set(initial)
	id := e.g.Register(domain.KindField, name, nil, Always, FieldCloseOnInvalid)

	aggID := owner.AggregateID()
	e.fx.Register(aggID, id)
	e.g.SetDetach(id, func() { e.fx.Unregister(aggID, id) })

	return Handle[T]{id: id, e: e, store: store}
}
