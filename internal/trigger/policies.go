// Package trigger implements the trigger policies of §4.6: pluggable
// decisions of whether a cell should re-notify its observers after a
// visit. Any type with a ShouldFire method (domain.TriggerPolicy) is
// structurally admissible — these three are the built-ins.
package trigger

import "github.com/smilemakc/reactive/internal/domain"

// Always notifies downstream on every visit, regardless of whether the
// cell's value actually changed.
type Always struct{}

// ShouldFire always returns true.
func (Always) ShouldFire(changed bool, _ domain.NodeView) bool { return true }

// OnChange notifies downstream only when the visit's changed hint was
// true. Nothing checks the cell's value type: the hint comes from
// cellstore.ValuesDiffer, which compares comparable values with == and
// reports every write of a non-comparable value (slice, map, func) as a
// change.
type OnChange struct{}

// ShouldFire returns changed as-is.
func (OnChange) ShouldFire(changed bool, _ domain.NodeView) bool { return changed }

// Name reports the policy's debug name, matching the teacher's
// strategy-Name() convention (ErrorStrategy.Name() in the pack).
func (Always) Name() string    { return "always" }
func (OnChange) Name() string  { return "on_change" }
