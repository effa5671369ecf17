// Package cellstore implements the cell storage layer of §4.1: a
// polymorphic value slot with exclusive ownership of its contained T, or
// none at all for an Action cell or a Computed cell that has not yet been
// evaluated.
package cellstore

// Slot holds at most one T, stored by value. Only the slot's own methods
// write it; Borrow hands out a pointer to the stored value. A cell's
// handles share one *Slot, and a Computed cell's evaluator holds the same
// *Slot; the graph's node record does not hold it.
type Slot[T any] struct {
	value T
	set   bool
}

// Get returns the stored value by value, and whether one is present.
func (s *Slot[T]) Get() (T, bool) {
	return s.value, s.set
}

// Borrow returns a reference to the stored value, or (nil, false) when the
// slot is empty — the transient window between construction and first
// evaluation of a Computed cell.
func (s *Slot[T]) Borrow() (*T, bool) {
	if !s.set {
		return nil, false
	}
	return &s.value, true
}

// Set replaces the stored value in place when one is already present,
// otherwise it allocates by simple assignment (Go's zero-allocation-for-
// value-types assignment already does the right thing here; the "otherwise
// allocates" language in §4.1 describes the conceptual transition from
// empty to occupied, not a distinct code path).
func (s *Slot[T]) Set(v T) {
	s.value = v
	s.set = true
}

// Clear empties the slot, returning it to the state of a Computed cell
// that has not yet been evaluated. Rebind does not call it: a rebound
// cell keeps its prior value until the new closure's result replaces it.
func (s *Slot[T]) Clear() {
	var zero T
	s.value = zero
	s.set = false
}

// IsSet reports whether the slot currently holds a value.
func (s *Slot[T]) IsSet() bool {
	return s.set
}
