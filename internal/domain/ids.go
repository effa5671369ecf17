// Package domain holds the plain types shared across the reactive engine:
// node identity, cell kinds, and the typed errors the engine returns.
package domain

import "github.com/google/uuid"

// NodeID identifies a cell within the dependency graph. It is a uuid.UUID
// newtype so that cell identity is stable and comparable regardless of the
// cell's kind or where it lives in memory.
type NodeID uuid.UUID

// NewNodeID mints a fresh, random node identity.
func NewNodeID() NodeID {
	return NodeID(uuid.New())
}

// String renders the node ID in its canonical uuid form.
func (id NodeID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether id is the zero NodeID (never assigned by NewNodeID).
func (id NodeID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

// AggregateID identifies a user aggregate that owns one or more Field
// sub-cells (§4.8). It is a plain counter, not a uuid: aggregates are
// typically created far more often than cells and a monotonic counter
// avoids the entropy cost of a random identity for a purely in-process key.
type AggregateID uint64

var nextAggregateID AggregateID

// NewAggregateID mints the next aggregate identity. Single-threaded use
// only, per the engine's concurrency model (§5) — no atomic increment.
func NewAggregateID() AggregateID {
	nextAggregateID++
	return nextAggregateID
}
