// Package invalidation implements the invalidation strategies of §4.7:
// pluggable decisions of what happens when a cell's last weak handle
// drops. Any type with an OnInvalid method (domain.InvalidationStrategy)
// is structurally admissible — these four are the built-ins.
package invalidation

import "github.com/smilemakc/reactive/internal/domain"

// Close cascade-closes the cell (the default for var, calc, action, expr,
// constVar).
type Close struct{}

// OnInvalid closes node, which cascades to every transitive observer (I5).
func (Close) OnInvalid(node domain.Invalidatable) { node.Close() }

// Name reports the strategy's debug name.
func (Close) Name() string { return "close" }

// KeepComputing does nothing: the cell continues to exist, continues to
// recompute on upstream changes, and its observers keep working even
// though no caller holds a handle to it anymore.
type KeepComputing struct{}

// OnInvalid is a deliberate no-op.
func (KeepComputing) OnInvalid(domain.Invalidatable) {}

// Name reports the strategy's debug name.
func (KeepComputing) Name() string { return "keep_computing" }

// FreezeLastValue replaces the cell's closure with a constant-returning
// closure of its current value; downstream observers continue and see a
// frozen input forever after.
type FreezeLastValue struct{}

// OnInvalid asks the node to freeze itself; a node kind with no closure
// slot (Source, Const) returns an error from Freeze, which this strategy
// silently accepts — there is nothing to freeze on a value that was never
// going to change on its own.
func (FreezeLastValue) OnInvalid(node domain.Invalidatable) {
	_ = node.Freeze()
}

// Name reports the strategy's debug name.
func (FreezeLastValue) Name() string { return "freeze_last_value" }

// FieldClose detaches a Field sub-cell from its aggregate's index and
// closes it. Used only by field sub-cells (§4.7); wiring it onto any
// other kind behaves like Close since Detach is a no-op for a node that
// never registered with a field index.
type FieldClose struct{}

// OnInvalid detaches the node from its field index, then closes it.
func (FieldClose) OnInvalid(node domain.Invalidatable) {
	node.Detach()
	node.Close()
}

// Name reports the strategy's debug name.
func (FieldClose) Name() string { return "field_close" }
