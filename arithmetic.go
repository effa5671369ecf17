package reactive

import "github.com/smilemakc/reactive/internal/exprtree"

// Go has no operator overloading, so §6's `+=`, `-=`, `*=`, `/=` and
// prefix `++`/`--` handle operations are free functions constrained to
// exprtree.Numeric rather than Handle methods — a method cannot
// introduce a narrower type constraint than its receiver's.

// Add writes h.Get() + delta to h.
func Add[T exprtree.Numeric](h Handle[T], delta T) error {
	return h.Set(h.Get() + delta)
}

// Sub writes h.Get() - delta to h.
func Sub[T exprtree.Numeric](h Handle[T], delta T) error {
	return h.Set(h.Get() - delta)
}

// Mul writes h.Get() * factor to h.
func Mul[T exprtree.Numeric](h Handle[T], factor T) error {
	return h.Set(h.Get() * factor)
}

// Div writes h.Get() / divisor to h.
func Div[T exprtree.Numeric](h Handle[T], divisor T) error {
	return h.Set(h.Get() / divisor)
}

// Inc writes h.Get() + 1 to h (prefix ++).
func Inc[T exprtree.Numeric](h Handle[T]) error {
	return Add(h, T(1))
}

// Dec writes h.Get() - 1 to h (prefix --).
func Dec[T exprtree.Numeric](h Handle[T]) error {
	return Sub(h, T(1))
}
