package domain

// NodeView is the read-only view of a cell that trigger policies and
// invalidation strategies are handed — enough to log or branch on kind and
// name, never enough to mutate the graph directly (§4.6, §4.7: both
// families are "pluggable decisions", not graph surgeons).
type NodeView interface {
	ID() NodeID
	Kind() Kind
	Name() string
}

// Invalidatable is the capability a node hands to its InvalidationStrategy
// when its last weak handle drops (§4.7, I4). It is the node's own
// mechanics, not the graph's — a strategy never reaches into the graph
// singleton directly.
type Invalidatable interface {
	NodeView
	// Close cascade-closes this node (§4.2's close semantics, I5).
	Close()
	// Freeze replaces this node's recomputation closure with a constant
	// closure over its current value. Returns an error if the node has no
	// closure to freeze (Source, Const).
	Freeze() error
	// Detach removes this node from its owning Field index without
	// closing it outright (FieldClose).
	Detach()
}

// Evaluator is what a concrete, generically-typed cell exposes to the
// untyped graph bookkeeping so the graph can drive recomputation without
// knowing T (§9's "template-instantiated cell types" note: the graph is a
// single runtime representation, dispatching through this interface
// instead of being parameterized per cell).
type Evaluator interface {
	// Evaluate re-runs the node's bound closure (or, for a Source/Const/
	// Field cell being visited as part of a pulse, simply reports the
	// change already applied by the write that started the pulse) and
	// reports whether the stored value changed relative to the prior
	// evaluation. For an Action cell, Evaluate runs the side effect and
	// always reports changed=false (an action has no value to compare).
	Evaluate() (changed bool, err error)
	// Freeze implements the mechanics behind InvalidationStrategy
	// FreezeLastValue: install a closure that returns the current value
	// forever after. Returns an error when the cell kind has no closure
	// slot to replace (Source, Const).
	Freeze() error
}

// TriggerPolicy decides, after a cell has been (re)evaluated, whether its
// observers should be notified (§4.6). Any type providing ShouldFire is
// structurally admissible — the engine never type-switches on a concrete
// policy type.
type TriggerPolicy interface {
	ShouldFire(changed bool, node NodeView) bool
}

// InvalidationStrategy decides what happens when a cell's last weak handle
// drops (§4.7). Any type providing OnInvalid is structurally admissible.
type InvalidationStrategy interface {
	OnInvalid(node Invalidatable)
}
