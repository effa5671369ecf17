// Package field implements the reactive field subsystem of §4.8: a
// secondary index from a user aggregate's stable identity to the Field
// sub-cells registered under it, re-pointed to the aggregate's current
// container whenever that container is reassigned (I7).
package field

import "github.com/smilemakc/reactive/internal/domain"

// Aggregate is implemented by a user struct that embeds one or more Field
// sub-cells. AggregateID returns the stable identity those sub-cells
// registered under at construction time (§9's "Aggregate field index"
// note: "a stable integer").
type Aggregate interface {
	AggregateID() domain.AggregateID
}

// Index is the aggregate-identity -> sub-cells map plus the sub-cell ->
// enclosing-container back-pointer. One Index is shared by every Field
// cell and every Source cell that wraps an Aggregate.
type Index struct {
	subCells  map[domain.AggregateID][]domain.NodeID
	container map[domain.NodeID]domain.NodeID
}

// NewIndex creates an empty field index.
func NewIndex() *Index {
	return &Index{
		subCells:  make(map[domain.AggregateID][]domain.NodeID),
		container: make(map[domain.NodeID]domain.NodeID),
	}
}

// Register records subCell as belonging to the aggregate aggID, at the
// aggregate's construction time.
func (ix *Index) Register(aggID domain.AggregateID, subCell domain.NodeID) {
	ix.subCells[aggID] = append(ix.subCells[aggID], subCell)
}

// SubCells returns the sub-cells registered under aggID.
func (ix *Index) SubCells(aggID domain.AggregateID) []domain.NodeID {
	return ix.subCells[aggID]
}

// BindContainer re-points every sub-cell registered under aggID to
// container, the Source node that now wraps that aggregate value. Called
// both when an aggregate is first wrapped in a Source, and again whenever
// that Source is reassigned to a new aggregate value (I7: rebound
// atomically before any observers fire).
func (ix *Index) BindContainer(aggID domain.AggregateID, container domain.NodeID) {
	for _, sub := range ix.subCells[aggID] {
		ix.container[sub] = container
	}
}

// Container returns the Source node currently wrapping the aggregate that
// subCell belongs to, if any.
func (ix *Index) Container(subCell domain.NodeID) (domain.NodeID, bool) {
	c, ok := ix.container[subCell]
	return c, ok
}

// Unregister drops subCell from its aggregate's entry and its container
// back-pointer, used by the FieldClose invalidation strategy.
func (ix *Index) Unregister(aggID domain.AggregateID, subCell domain.NodeID) {
	list := ix.subCells[aggID]
	for i, id := range list {
		if id == subCell {
			ix.subCells[aggID] = append(list[:i], list[i+1:]...)
			break
		}
	}
	delete(ix.container, subCell)
}
