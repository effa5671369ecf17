package reactive

import (
	"github.com/smilemakc/reactive/internal/domain"
	"github.com/smilemakc/reactive/internal/invalidation"
	"github.com/smilemakc/reactive/internal/trigger"
)

// TriggerPolicy and InvalidationStrategy are re-exported so an embedder
// can write a custom structurally-conforming policy against this
// package alone, without importing internal/domain directly (§4.6,
// §4.7: "admissible by structural conformance").
type (
	TriggerPolicy        = domain.TriggerPolicy
	InvalidationStrategy = domain.InvalidationStrategy
)

// Built-in trigger policies (§4.6).
var (
	// Always notifies downstream on every visit.
	Always = trigger.Always{}
	// OnChange notifies downstream only when the changed hint was true.
	OnChange = trigger.OnChange{}
)

// Built-in invalidation strategies (§4.7).
var (
	// CloseOnInvalid cascade-closes the cell — the default for Var,
	// ConstVar, Calc, Action and Expr cells.
	CloseOnInvalid = invalidation.Close{}
	// KeepComputing leaves the cell running with no special handling.
	KeepComputing = invalidation.KeepComputing{}
	// FreezeLastValue replaces the cell's closure with a constant
	// closure over its current value.
	FreezeLastValue = invalidation.FreezeLastValue{}
	// FieldCloseOnInvalid detaches a Field sub-cell from its aggregate's
	// index, then closes it. Used only by Field cells.
	FieldCloseOnInvalid = invalidation.FieldClose{}
)

// NewThreshold builds a Threshold trigger policy (§4.6) from a
// predicate closure. The predicate may read any subset of cells via
// their handles. Installing the result with SetTrigger does not bind
// those reads as dependencies; Handle.SetThreshold does, the same way a
// Calc closure's reads are bound (Open Question Decision 1 in
// SPEC_FULL.md).
func NewThreshold(predicate func() bool) *trigger.Threshold {
	return trigger.NewThreshold(predicate)
}

// NewExpressionTrigger builds a Threshold-shaped trigger policy from an
// expr-lang expression string evaluated against env() on every check
// (§9's expr-lang wiring for trigger predicates).
func NewExpressionTrigger(source string, env func() map[string]interface{}) (*trigger.Expression, error) {
	return trigger.NewExpression(source, env)
}

// Typed errors re-exported for callers that want to errors.As against
// them without importing internal/domain (§7).
type (
	CycleDependencyError    = domain.CycleDependencyError
	ReturnTypeMismatchError = domain.ReturnTypeMismatchError
	NullHandleAccessError   = domain.NullHandleAccessError
)
