package trigger

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/smilemakc/reactive/internal/domain"
)

// Expression is a Threshold predicate written as an expr-lang string
// instead of a Go closure — a data-driven alternative for embedders that
// store trigger conditions outside compiled code (form validators, rule
// engines). It reuses exactly the compile/run shape the teacher's
// WorkflowGraph.evaluateCondition uses for conditional edges: compile once
// against a map[string]interface{} environment, run against fresh values
// on every check, and force a bool result with expr.AsBool().
type Expression struct {
	name    string
	source  string
	program *vm.Program
	env     func() map[string]interface{}
}

// NewExpression compiles source once and returns an Expression trigger
// that evaluates it against env() on every ShouldFire call. env is called
// fresh each time, the same way the owning cell's capture-style closure
// would re-read its handles fresh on every evaluation.
func NewExpression(source string, env func() map[string]interface{}) (*Expression, error) {
	program, err := expr.Compile(source, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("reactive: compiling threshold expression %q: %w", source, err)
	}
	return &Expression{name: "expression", source: source, program: program, env: env}, nil
}

// ShouldFire runs the compiled expression against the current environment.
// A run-time error (e.g. a referenced variable missing from env()) is
// treated as "do not fire" — an expression-based threshold degrades to
// silence rather than panicking the pulse, consistent with §7's policy
// that write operations on a cell should never panic the pulse.
func (e *Expression) ShouldFire(_ bool, _ domain.NodeView) bool {
	result, err := expr.Run(e.program, e.env())
	if err != nil {
		return false
	}
	fired, _ := result.(bool)
	return fired
}

// Name reports the policy's debug name.
func (e *Expression) Name() string { return e.name }

// Source returns the original expression text, for diagnostics.
func (e *Expression) Source() string { return e.source }
