package domain

import "fmt"

// CycleDependencyError is returned when a proposed bind would create a
// cycle in the dependency graph, including a self-edge (§4.2 pre-check a
// and b, §7). The bind is rejected before any graph mutation is committed;
// the cell keeps its prior bindings.
type CycleDependencyError struct {
	// Source is the cell whose bind was rejected.
	Source NodeID
	// Target is the dependency that would have closed the cycle.
	Target NodeID
	// Path is the cycle found by the DFS, source-to-source.
	Path []NodeID
}

func (e *CycleDependencyError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("reactive: bind %s -> %s would self-depend", e.Source, e.Target)
	}
	return fmt.Sprintf("reactive: bind %s -> %s would create a cycle: %v", e.Source, e.Target, e.Path)
}

// ReturnTypeMismatchError is returned when a rebind closure's result type is
// not identical to the cell's declared ValueType (§4.4, Open Question 2 —
// this module codifies the policy as strict equality, not convertibility).
type ReturnTypeMismatchError struct {
	Node     NodeID
	Declared string
	Got      string
}

func (e *ReturnTypeMismatchError) Error() string {
	return fmt.Sprintf("reactive: rebind of %s declared type %s, got %s", e.Node, e.Declared, e.Got)
}

// NullHandleAccessError is raised when a weak handle whose referent was
// closed or destroyed is read or written (§7). Truthiness checks never
// raise this error; only read/write operations do.
type NullHandleAccessError struct {
	Node NodeID
	Op   string
}

func (e *NullHandleAccessError) Error() string {
	return fmt.Sprintf("reactive: %s on closed or unknown handle %s", e.Op, e.Node)
}

// RepeatDependencyNotice is not an error in the Go sense — it is never
// returned from bind — but the informational RepeatDependency outcome of
// §4.2(c) and §7 is modeled as a value so callers that want to observe it
// (tests, loggers) can do so without scraping log lines.
type RepeatDependencyNotice struct {
	Source NodeID
	Target NodeID
}

func (n RepeatDependencyNotice) String() string {
	return fmt.Sprintf("reactive: %s has a repeat dependency on %s, deferring notification", n.Source, n.Target)
}
