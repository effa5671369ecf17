package cellstore

import "reflect"

// ValuesDiffer reports whether old and updated differ, per §4.3 step 3:
// "changed' := (new_value != old_value) when T is equality-comparable;
// otherwise true." Go generics have no "comparable-if-possible"
// constraint, so this checks comparability at runtime via reflect and
// falls back to "always changed" for slice/map/func-shaped values rather
// than panicking on a bare `==`.
func ValuesDiffer[T any](old, updated T) bool {
	t := reflect.TypeOf(old)
	if t == nil || !t.Comparable() {
		return true
	}
	return any(old) != any(updated)
}
