package graph

import "github.com/smilemakc/reactive/internal/domain"

// node is the graph's strong, internally-owned bookkeeping record for one
// cell (§3's "stable identity" plus dependents/observers/weak-count). The
// graph is the sole strong owner; callers only ever hold a weak reference
// (reactive.Handle) that points back at the node by ID.
type node struct {
	id   domain.NodeID
	kind domain.Kind
	name string

	eval         domain.Evaluator
	trigger      domain.TriggerPolicy
	invalidation domain.InvalidationStrategy

	// dependents are the cells this node reads (its inputs). Order is the
	// order the closure captured or was given them in (I3).
	dependents []domain.NodeID
	depSet     map[domain.NodeID]struct{}

	// observers are the cells that read this node. Order is
	// observer-insertion order (§4.3 rule 1).
	observers []domain.NodeID
	obsSet    map[domain.NodeID]struct{}

	// repeatDeps marks, among this node's own dependents, those reached
	// via more than one path from this node (§4.2c). A dependent in this
	// set forces this node to be deferred when visited transitively
	// through any *other* path before that dependent has itself settled.
	repeatDeps map[domain.NodeID]struct{}

	weakCount int
	closed    bool

	// detach is set by the field subsystem when this node is a Field
	// sub-cell; FieldClose invalidation calls it instead of Close.
	detach func()

	// pendingClose marks a node queued for cascade-close because Close
	// was requested while a pulse was in flight (Open Question 3).
	pendingClose bool
}

// ID implements domain.NodeView.
func (n *node) ID() domain.NodeID { return n.id }

// Kind implements domain.NodeView.
func (n *node) Kind() domain.Kind { return n.kind }

// Name implements domain.NodeView.
func (n *node) Name() string { return n.name }
