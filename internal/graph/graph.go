// Package graph implements the dependency graph of §4.2: a registry of
// nodes, the bind/unbind/close mechanics, and the three pre-checks that
// must all pass before any edge is committed (self-dependency, cycle
// detection, repeat-dependency detection).
package graph

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/smilemakc/reactive/internal/domain"
)

// Graph is the dependency graph. The core propagation protocol (§5)
// assumes a single logical thread drives every public method; Graph
// performs no internal locking. The public API keeps one package-level
// default Graph per process (see reactive.defaultEngine) but nothing here
// prevents a caller from constructing an independent Graph per goroutine,
// which is exactly the "one engine per thread" allowance of §5.
type Graph struct {
	nodes map[domain.NodeID]*node
	log   zerolog.Logger

	// pulseDepth tracks nested pulse activity so Close() can defer its
	// cascade until the outermost pulse completes (Open Question 3).
	pulseDepth int
	pending    []domain.NodeID

	// pulseCount counts completed outermost pulses, for Stats().
	pulseCount uint64
}

// New creates an empty dependency graph.
func New(log zerolog.Logger) *Graph {
	return &Graph{
		nodes: make(map[domain.NodeID]*node),
		log:   log,
	}
}

// Register adds a node with empty dependent/observer sets and returns its
// identity. kind, name and the policies are fixed at registration; eval is
// the callback the graph uses to drive recomputation (nil is valid for
// Source/Const cells, which are never recomputed).
func (g *Graph) Register(kind domain.Kind, name string, eval domain.Evaluator, trig domain.TriggerPolicy, inv domain.InvalidationStrategy) domain.NodeID {
	id := domain.NewNodeID()
	g.nodes[id] = &node{
		id:           id,
		kind:         kind,
		name:         name,
		eval:         eval,
		trigger:      trig,
		invalidation: inv,
		depSet:       make(map[domain.NodeID]struct{}),
		obsSet:       make(map[domain.NodeID]struct{}),
		repeatDeps:   make(map[domain.NodeID]struct{}),
		weakCount:    1,
	}
	return id
}

// alive returns the node record for id, or (nil, false) when unknown or
// closed. Exists and View build on it, so callers (the reactive.Handle
// wrapper) can check liveness without triggering a NullHandleAccessError.
func (g *Graph) alive(id domain.NodeID) (*node, bool) {
	n, ok := g.nodes[id]
	if !ok || n.closed {
		return nil, false
	}
	return n, true
}

// Exists reports whether id names a live node.
func (g *Graph) Exists(id domain.NodeID) bool {
	_, ok := g.alive(id)
	return ok
}

// View returns a read-only NodeView for id.
func (g *Graph) View(id domain.NodeID) (domain.NodeView, bool) {
	n, ok := g.alive(id)
	if !ok {
		return nil, false
	}
	return n, true
}

// Name returns a node's debug name, or "" if unknown.
func (g *Graph) Name(id domain.NodeID) string {
	if n, ok := g.nodes[id]; ok {
		return n.name
	}
	return ""
}

// SetName renames a node for debug output.
func (g *Graph) SetName(id domain.NodeID, name string) {
	if n, ok := g.nodes[id]; ok {
		n.name = name
	}
}

// Trigger returns a node's current trigger policy.
func (g *Graph) Trigger(id domain.NodeID) domain.TriggerPolicy {
	if n, ok := g.nodes[id]; ok {
		return n.trigger
	}
	return nil
}

// SetTrigger replaces a node's trigger policy.
func (g *Graph) SetTrigger(id domain.NodeID, trig domain.TriggerPolicy) {
	if n, ok := g.nodes[id]; ok {
		n.trigger = trig
	}
}

// SetInvalidation replaces a node's invalidation strategy (§4.7), the one
// the weak-count runs when the last handle to the node is dropped (I4).
func (g *Graph) SetInvalidation(id domain.NodeID, inv domain.InvalidationStrategy) {
	if n, ok := g.nodes[id]; ok {
		n.invalidation = inv
	}
}

// Evaluator returns a node's recomputation callback.
func (g *Graph) Evaluator(id domain.NodeID) domain.Evaluator {
	if n, ok := g.nodes[id]; ok {
		return n.eval
	}
	return nil
}

// Observers returns the current observer list of id, in insertion order.
// The returned slice is owned by the graph; callers must not mutate it.
func (g *Graph) Observers(id domain.NodeID) []domain.NodeID {
	if n, ok := g.nodes[id]; ok {
		return n.observers
	}
	return nil
}

// Dependents returns the current dependent list of id, in the order the
// edges were bound.
func (g *Graph) Dependents(id domain.NodeID) []domain.NodeID {
	if n, ok := g.nodes[id]; ok {
		return n.dependents
	}
	return nil
}

// IsRepeatDependent reports whether source has a repeat dependency on
// target (§4.2c): target is reachable from source via more than one path.
func (g *Graph) IsRepeatDependent(source, target domain.NodeID) bool {
	n, ok := g.nodes[source]
	if !ok {
		return false
	}
	_, repeat := n.repeatDeps[target]
	return repeat
}

// SetDetach registers the callback a Field sub-cell's FieldClose
// invalidation strategy invokes instead of Close.
func (g *Graph) SetDetach(id domain.NodeID, detach func()) {
	if n, ok := g.nodes[id]; ok {
		n.detach = detach
	}
}

// Retain increments id's weak-reference count (handle copy, §3 Lifecycle).
func (g *Graph) Retain(id domain.NodeID) {
	if n, ok := g.nodes[id]; ok {
		n.weakCount++
	}
}

// Release decrements id's weak-reference count; at zero it runs the
// node's invalidation strategy exactly once (§4.7, I4).
func (g *Graph) Release(id domain.NodeID) {
	n, ok := g.nodes[id]
	if !ok || n.closed || n.weakCount <= 0 {
		return
	}
	n.weakCount--
	if n.weakCount > 0 {
		return
	}
	strategy := n.invalidation
	if strategy == nil {
		return
	}
	g.log.Info().Str("node", id.String()).Str("kind", n.kind.String()).Msg("last weak handle dropped, running invalidation strategy")
	strategy.OnInvalid(&handle{g: g, id: id})
}

// handle adapts a node to domain.Invalidatable so invalidation strategies
// can act on it without reaching into the graph themselves.
type handle struct {
	g  *Graph
	id domain.NodeID
}

func (h *handle) ID() domain.NodeID   { return h.id }
func (h *handle) Kind() domain.Kind   { n, _ := h.g.alive(h.id); return kindOrZero(n) }
func (h *handle) Name() string        { return h.g.Name(h.id) }
func (h *handle) Close()              { h.g.Close(h.id) }
func (h *handle) Detach() {
	if n, ok := h.g.nodes[h.id]; ok && n.detach != nil {
		n.detach()
	}
}
func (h *handle) Freeze() error {
	n, ok := h.g.nodes[h.id]
	if !ok {
		return fmt.Errorf("reactive: freeze of unknown node %s", h.id)
	}
	if n.eval == nil {
		return fmt.Errorf("reactive: %s cell %s has no closure to freeze", n.kind, h.id)
	}
	return n.eval.Freeze()
}

func kindOrZero(n *node) domain.Kind {
	if n == nil {
		return domain.KindSource
	}
	return n.kind
}

// BeginPulse and EndPulse bracket a propagation pulse so Close() can defer
// its cascade until the outermost pulse has fully returned (Open Question
// 3: "the safe choice is to defer the cascade until the pulse completes").
func (g *Graph) BeginPulse() {
	if g.pulseDepth == 0 {
		g.pulseCount++
	}
	g.pulseDepth++
}

// EndPulse closes the pulse bracket and, once the outermost pulse has
// finished, drains any cascades that were requested mid-pulse.
func (g *Graph) EndPulse() {
	g.pulseDepth--
	if g.pulseDepth > 0 {
		return
	}
	pending := g.pending
	g.pending = nil
	for _, id := range pending {
		g.closeNow(id)
	}
}
