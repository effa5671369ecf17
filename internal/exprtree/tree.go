// Package exprtree implements the declarative expression trees of §4.5:
// arithmetic over handles builds a symbolic binary-op tree whose leaves
// are other trees, reactive handles, or constants. Go's generics give the
// "common arithmetic type of its leaves" requirement for free: a Tree[T]
// is monomorphic in T, so mixing incompatible leaf types is a compile
// error rather than a runtime check.
package exprtree

// Numeric is the set of value types an expression tree may fold over.
type Numeric interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Tree is a node in an arithmetic operator tree: it folds to a value of T
// by reading its leaves fresh on every call, the same way a Computed
// cell's closure reads its handles fresh on every recomputation.
type Tree[T Numeric] interface {
	Eval() T
}

// Const wraps a fixed value as a leaf.
type Const[T Numeric] struct{ Value T }

// Eval returns the constant value.
func (c Const[T]) Eval() T { return c.Value }

// Read wraps an arbitrary read function as a leaf — the bridge to a
// reactive handle: reactive.Handle[T].Get is a Read[T] the moment a
// Computed cell's capture mechanism (§4.4) has recorded the read as a
// dependency.
type Read[T Numeric] func() T

// Eval invokes the wrapped function.
func (r Read[T]) Eval() T { return r() }

// op is the shared shape of the four binary operators.
type op[T Numeric] struct {
	left, right Tree[T]
	fold        func(a, b T) T
}

func (o op[T]) Eval() T { return o.fold(o.left.Eval(), o.right.Eval()) }

// Add builds a tree node that folds to left.Eval() + right.Eval().
func Add[T Numeric](left, right Tree[T]) Tree[T] {
	return op[T]{left, right, func(a, b T) T { return a + b }}
}

// Sub builds a tree node that folds to left.Eval() - right.Eval().
func Sub[T Numeric](left, right Tree[T]) Tree[T] {
	return op[T]{left, right, func(a, b T) T { return a - b }}
}

// Mul builds a tree node that folds to left.Eval() * right.Eval().
func Mul[T Numeric](left, right Tree[T]) Tree[T] {
	return op[T]{left, right, func(a, b T) T { return a * b }}
}

// Div builds a tree node that folds to left.Eval() / right.Eval(). A
// zero right-hand side is the caller's problem, same as the language's
// own division — the tree does not mask it.
func Div[T Numeric](left, right Tree[T]) Tree[T] {
	return op[T]{left, right, func(a, b T) T { return a / b }}
}
