package reactive

import (
	"github.com/smilemakc/reactive/internal/cellstore"
	"github.com/smilemakc/reactive/internal/domain"
	"github.com/smilemakc/reactive/internal/pulse"
)

// actionEval is the domain.Evaluator for an Action cell: it holds no
// value, only a side-effecting closure, and always reports changed=false
// (§4.3 step 2: "for Action, invoke side effect and stop"; domain.
// Evaluator's doc: "an action has no value to compare").
type actionEval struct {
	closure func() error
}

func (a *actionEval) Evaluate() (bool, error) {
	return false, a.closure()
}

// Freeze replaces the side effect with a no-op, the Action analogue of
// FreezeLastValue: the last thing an Action ever does is nothing.
func (a *actionEval) Freeze() error {
	a.closure = func() error { return nil }
	return nil
}

// Action creates an Action cell bound capture-style (§3, §6
// `action(f)`): f is a nullary closure whose handle reads during
// construction's first run become its dependents. Action cells hold no
// value — the returned Handle[struct{}] exists only so Close/Clone/Drop
// and the other handle operations are available.
func Action(e *Engine, name string, f func() error) (Handle[struct{}], error) {
	store := &cellstore.Slot[struct{}]{}
	ae := &actionEval{closure: f}
	id := e.g.Register(domain.KindAction, name, ae, Always, CloseOnInvalid)
	h := Handle[struct{}]{id: id, e: e, store: store}

	pulse.BeginCapture()
	err := f()
	deps := pulse.EndCapture().IDs()
	if err != nil {
		e.g.Close(id)
		return Handle[struct{}]{}, err
	}
	if bindErr := e.g.Bind(id, deps); bindErr != nil {
		e.g.Close(id)
		return Handle[struct{}]{}, bindErr
	}
	store.Set(struct{}{})
	return h, nil
}

// ActionArgs creates an Action cell bound arguments-style (§6
// `action(f, args...)`): deps lists the cell's dependents explicitly.
// Unlike Action, the side effect is not run at construction — there is
// no dependency discovery to perform, so it first runs on the next
// pulse that reaches it.
func ActionArgs(e *Engine, name string, deps []Dep, f func() error) (Handle[struct{}], error) {
	store := &cellstore.Slot[struct{}]{}
	store.Set(struct{}{})
	ae := &actionEval{closure: f}
	id := e.g.Register(domain.KindAction, name, ae, Always, CloseOnInvalid)
	h := Handle[struct{}]{id: id, e: e, store: store}

	ids := make([]domain.NodeID, len(deps))
	for i, d := range deps {
		ids[i] = d.nodeID()
	}
	if err := e.g.Bind(id, ids); err != nil {
		e.g.Close(id)
		return Handle[struct{}]{}, err
	}
	return h, nil
}
