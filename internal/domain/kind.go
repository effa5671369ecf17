package domain

// Kind identifies which of the five cell kinds (§3) a node is. The engine
// uses a single runtime cell representation for all kinds (§9's
// "template-instantiated cell types" re-architecture note) and dispatches
// on Kind rather than on a Go type per kind.
type Kind uint8

const (
	// KindSource is a user-writable cell (var). Participates in cycle
	// checks as a target; has no closure.
	KindSource Kind = iota
	// KindConst is an immutable cell (constVar). Never rewritten, never
	// recomputed.
	KindConst
	// KindComputed is a cell recomputed from a bound closure (calc, expr).
	KindComputed
	// KindAction holds no value; its closure is a side effect run on
	// every relevant change.
	KindAction
	// KindField is a reactive sub-cell of a user aggregate (§4.8).
	KindField
)

// String renders the kind for debug output and log lines.
func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindConst:
		return "const"
	case KindComputed:
		return "computed"
	case KindAction:
		return "action"
	case KindField:
		return "field"
	default:
		return "unknown"
	}
}

// ParticipatesInCycleCheck reports whether a node of this kind can be the
// target of a dependency edge, per the table in §3 (Action cells never
// participate as a cycle-check target — nothing can depend on an Action).
func (k Kind) ParticipatesInCycleCheck() bool {
	return k != KindAction
}

// HasClosure reports whether a node of this kind is bound to a
// recomputation closure.
func (k Kind) HasClosure() bool {
	return k == KindComputed || k == KindAction
}
