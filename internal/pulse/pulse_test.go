package pulse_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/smilemakc/reactive/internal/domain"
	"github.com/smilemakc/reactive/internal/field"
	"github.com/smilemakc/reactive/internal/graph"
	"github.com/smilemakc/reactive/internal/obslog"
	"github.com/smilemakc/reactive/internal/pulse"
	"github.com/smilemakc/reactive/internal/trigger"
)

// countingEval recomputes by calling f and counts how many times Evaluate
// ran, so tests can assert at-most-once-per-pulse (I6).
type countingEval struct {
	evals int
	f     func() bool
}

func (c *countingEval) Evaluate() (bool, error) {
	c.evals++
	return c.f(), nil
}

func (c *countingEval) Freeze() error { return nil }

func newGraph() *graph.Graph {
	return graph.New(zerolog.Nop())
}

func TestFire_LinearChainEvaluatesObserver(t *testing.T) {
	g := newGraph()
	a := g.Register(domain.KindSource, "a", nil, trigger.Always{}, nil)

	eb := &countingEval{f: func() bool { return true }}
	b := g.Register(domain.KindComputed, "b", eb, trigger.Always{}, nil)
	require.NoError(t, g.Bind(b, []domain.NodeID{a}))

	err := pulse.Fire(context.Background(), g, nil, obslog.NewTracer(nil), a, true)
	require.NoError(t, err)
	require.Equal(t, 1, eb.evals)
}

func TestFire_NoObserversIsNoop(t *testing.T) {
	g := newGraph()
	a := g.Register(domain.KindSource, "a", nil, trigger.Always{}, nil)
	require.NoError(t, pulse.Fire(context.Background(), g, nil, obslog.NewTracer(nil), a, true))
}

func TestFire_RepeatDependencyDeferral(t *testing.T) {
	g := newGraph()
	a := g.Register(domain.KindSource, "a", nil, trigger.Always{}, nil)

	bigAEvals := 0
	eA := &countingEval{f: func() bool { bigAEvals++; return true }}
	bigA := g.Register(domain.KindComputed, "A", eA, trigger.Always{}, nil)
	require.NoError(t, g.Bind(bigA, []domain.NodeID{a}))

	tEvals := 0
	var tSeenBigAEvals int
	eT := &countingEval{f: func() bool {
		tEvals++
		tSeenBigAEvals = bigAEvals
		return true
	}}
	tNode := g.Register(domain.KindComputed, "T", eT, trigger.Always{}, nil)

	// T depends on both A and a: by the time the edge T->a is added, a is
	// already reachable from T via A, so this is the repeat-dependency
	// shape, and T must be deferred until A has itself been revisited.
	require.NoError(t, g.Bind(tNode, []domain.NodeID{bigA, a}))
	require.True(t, g.IsRepeatDependent(tNode, a))

	require.NoError(t, pulse.Fire(context.Background(), g, nil, obslog.NewTracer(nil), a, true))

	require.Equal(t, 1, eA.evals, "A must be evaluated exactly once per pulse")
	require.Equal(t, 1, tEvals, "T must be evaluated exactly once per pulse")
	require.Equal(t, 1, tSeenBigAEvals, "T must observe A already settled when it runs (glitch-freedom)")
}

func TestFire_ActionCellIsTerminal(t *testing.T) {
	g := newGraph()
	a := g.Register(domain.KindSource, "a", nil, trigger.Always{}, nil)

	actionRuns := 0
	eAction := &countingEval{f: func() bool { actionRuns++; return false }}
	act := g.Register(domain.KindAction, "act", eAction, trigger.Always{}, nil)
	require.NoError(t, g.Bind(act, []domain.NodeID{a}))

	require.NoError(t, pulse.Fire(context.Background(), g, nil, obslog.NewTracer(nil), a, true))
	require.Equal(t, 1, actionRuns)
}

func TestFire_OnChangeSuppressesDownstream(t *testing.T) {
	g := newGraph()
	a := g.Register(domain.KindSource, "a", nil, trigger.Always{}, nil)

	bEvals := 0
	eb := &countingEval{f: func() bool { bEvals++; return true }}
	b := g.Register(domain.KindComputed, "b", eb, trigger.OnChange{}, nil)
	require.NoError(t, g.Bind(b, []domain.NodeID{a}))

	require.NoError(t, pulse.Fire(context.Background(), g, nil, obslog.NewTracer(nil), a, false))
	require.Zero(t, bEvals, "OnChange must skip recomputation when the hint reports no change")
}

func TestFire_FieldContainerNotifiedAfterSubCellObservers(t *testing.T) {
	g := newGraph()
	fx := field.NewIndex()

	sub := g.Register(domain.KindField, "balance", nil, trigger.Always{}, nil)
	container := g.Register(domain.KindSource, "account", nil, trigger.Always{}, nil)

	agg := domain.NewAggregateID()
	fx.Register(agg, sub)
	fx.BindContainer(agg, container)

	var order []string
	subObsEvals := &countingEval{f: func() bool { order = append(order, "subObserver"); return true }}
	subObs := g.Register(domain.KindComputed, "subObserver", subObsEvals, trigger.Always{}, nil)
	require.NoError(t, g.Bind(subObs, []domain.NodeID{sub}))

	containerObsEvals := &countingEval{f: func() bool { order = append(order, "containerObserver"); return true }}
	containerObs := g.Register(domain.KindComputed, "containerObserver", containerObsEvals, trigger.Always{}, nil)
	require.NoError(t, g.Bind(containerObs, []domain.NodeID{container}))

	require.NoError(t, pulse.Fire(context.Background(), g, fx, obslog.NewTracer(nil), sub, true))

	require.Equal(t, []string{"subObserver", "containerObserver"}, order,
		"a field sub-cell's own observers settle before its enclosing container's observers fire")
}
