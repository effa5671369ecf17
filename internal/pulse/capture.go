// Package pulse implements the propagation protocol of §4.3: the
// write-triggered visit/notify recursion, observer-insertion ordering,
// repeat-dependency deferral, and the at-most-once-per-pulse guarantee
// (I6). It also hosts the capture sink used by capture-style binding
// (§4.4, §9's "capture sink for dependency discovery" note).
package pulse

import "github.com/smilemakc/reactive/internal/domain"

// captureSet accumulates the distinct handles read during one capture-style
// evaluation, in first-read order — that order becomes the cell's
// dependent list (I3).
type captureSet struct {
	seen  map[domain.NodeID]struct{}
	order []domain.NodeID
}

// captureStack is task-local state per §5 ("kept in thread-local storage
// to allow independent engines per thread"); the engine assumes a single
// logical thread drives every public call, so a package-level stack is
// sufficient without an actual per-goroutine key.
var captureStack []*captureSet

// BeginCapture pushes a new capture frame and returns it. Pair with
// EndCapture once the nullary closure being captured has run.
func BeginCapture() *captureSet {
	cs := &captureSet{seen: make(map[domain.NodeID]struct{})}
	captureStack = append(captureStack, cs)
	return cs
}

// EndCapture pops the current capture frame.
func EndCapture() *captureSet {
	n := len(captureStack)
	cs := captureStack[n-1]
	captureStack = captureStack[:n-1]
	return cs
}

// RecordRead registers id as read by the closure running under the
// innermost active capture frame. It is a no-op outside any capture —
// ordinary reads (not inside a capture-style bind) never touch this state.
func RecordRead(id domain.NodeID) {
	if len(captureStack) == 0 {
		return
	}
	cs := captureStack[len(captureStack)-1]
	if _, ok := cs.seen[id]; ok {
		return
	}
	cs.seen[id] = struct{}{}
	cs.order = append(cs.order, id)
}

// IDs returns the distinct handles read during this capture frame, in
// first-read order.
func (cs *captureSet) IDs() []domain.NodeID {
	return cs.order
}
