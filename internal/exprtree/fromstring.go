package exprtree

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// FromString is the supplemental textual alternative to building a tree
// out of Go operator calls: it compiles a plain arithmetic expression
// once (same expr.Compile shape the teacher's WorkflowGraph.evaluateCondition
// uses for conditional edges) and folds it against a fresh named
// environment on every Eval, giving embedders a data-driven way to store
// field formulas outside compiled code.
type FromString struct {
	source  string
	program *vm.Program
	env     func() map[string]interface{}
}

// NewFromString compiles source as a float64-valued arithmetic
// expression over the variable names env() will supply.
func NewFromString(source string, env func() map[string]interface{}) (*FromString, error) {
	program, err := expr.Compile(source, expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("reactive: compiling expression tree %q: %w", source, err)
	}
	return &FromString{source: source, program: program, env: env}, nil
}

// Eval runs the compiled program against a fresh environment. A run-time
// error folds to zero — a textual expression tree degrades the same way
// an Expression trigger does (§7: write-path operations never panic the
// pulse).
func (f *FromString) Eval() float64 {
	result, err := expr.Run(f.program, f.env())
	if err != nil {
		return 0
	}
	v, _ := result.(float64)
	return v
}

// Source returns the original expression text, for diagnostics.
func (f *FromString) Source() string { return f.source }
