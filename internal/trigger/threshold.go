package trigger

import "github.com/smilemakc/reactive/internal/domain"

// Threshold notifies downstream only when a user-supplied predicate
// evaluates true (§4.6). The predicate is a small reactive closure that
// may read any subset of cells via their handles; reactive.Handle.SetThreshold
// runs the predicate once inside a capture sink when installing this
// policy, so those reads become real graph dependencies of the owning
// cell the same way a Calc closure's reads do — the predicate must not
// create a cycle, same as any other bound closure.
//
// Per the Open Question in §9 ("exact semantics when a threshold
// predicate itself reads a cell with a repeat dependency are unclear"),
// this module resolves it as: the predicate is just another reactive read
// site. If the cells it reads are repeat-dependencies of the owning cell,
// the owning cell is deferred in the pulse exactly as any other repeat
// dependent, and the predicate is re-evaluated fresh (never cached) each
// time ShouldFire is asked, so it always sees settled values once the
// owning cell is actually visited.
type Threshold struct {
	name      string
	predicate func() bool
}

// NewThreshold builds a Threshold trigger from a predicate closure.
func NewThreshold(predicate func() bool) *Threshold {
	return &Threshold{name: "threshold", predicate: predicate}
}

// ShouldFire runs the predicate fresh; the changed hint and node identity
// are available to richer custom policies but Threshold itself ignores
// them in favor of the predicate's own judgment.
func (t *Threshold) ShouldFire(_ bool, _ domain.NodeView) bool {
	return t.predicate()
}

// Name reports the policy's debug name.
func (t *Threshold) Name() string { return t.name }

// Named returns a copy of t carrying a custom debug name, useful when a
// graph has several thresholds and diagnostics need to tell them apart.
func (t *Threshold) Named(name string) *Threshold {
	return &Threshold{name: name, predicate: t.predicate}
}
