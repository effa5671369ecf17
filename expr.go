package reactive

import (
	"reflect"

	"github.com/smilemakc/reactive/internal/exprtree"
)

// Leaf wraps a handle as an exprtree.Tree leaf: reading it calls
// h.Get(), so folding the tree inside Expr's capture-style construction
// registers the handle as a real dependency the same way any other
// Calc closure read does (§4.5).
func Leaf[T exprtree.Numeric](h Handle[T]) exprtree.Tree[T] {
	return exprtree.Read[T](h.Get)
}

// Const wraps a fixed value as an exprtree leaf.
func Const[T exprtree.Numeric](v T) exprtree.Tree[T] {
	return exprtree.Const[T]{Value: v}
}

// Expr creates a Computed cell from an arithmetic operator tree (§4.5,
// §6 `expr(tree)`). It is sugar over Calc: folding the tree inside
// Calc's capture-style first evaluation is what discovers the tree's
// leaf handles as dependencies, so Expr itself needs no separate
// binding logic.
func Expr[T exprtree.Numeric](e *Engine, name string, tree exprtree.Tree[T]) (Handle[T], error) {
	return Calc(e, name, func() (T, error) { return tree.Eval(), nil })
}

// RebindFromString rebinds h's closure to the result of a textual
// arithmetic expression compiled via exprtree.FromString (§4.5's
// data-driven alternative to an exprtree.Tree built from Go calls). It
// is the one rebind path where the new closure's result type isn't
// pinned by the Go compiler — FromString always folds to float64 — so
// this is where Open Question Decision 2's runtime ValueType guard
// actually runs: if h's declared ValueType isn't float64 the rebind is
// rejected with a *ReturnTypeMismatchError and h keeps its prior
// binding, instead of silently truncating or panicking on the
// eventual T(...) conversion.
func RebindFromString[T exprtree.Numeric](h Handle[T], source string, env func() map[string]interface{}) error {
	ft, err := exprtree.NewFromString(source, env)
	if err != nil {
		return err
	}

	var zero T
	declared := reflect.TypeOf(zero).String()
	if declared != "float64" {
		return &ReturnTypeMismatchError{Node: h.id, Declared: declared, Got: "float64"}
	}

	return h.Rebind(func() (T, error) { return T(ft.Eval()), nil })
}
