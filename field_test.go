package reactive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smilemakc/reactive"
	"github.com/smilemakc/reactive/internal/domain"
)

type account struct {
	aggID domain.AggregateID
}

func (a *account) AggregateID() domain.AggregateID { return a.aggID }

func TestField_ObserverFiresOnFieldWrite(t *testing.T) {
	e := newTestEngine()
	acc := &account{aggID: domain.NewAggregateID()}

	balance := reactive.Field(e, acc, "balance", 100)

	seen := 0
	_, err := reactive.ActionArgs(e, "watch", []reactive.Dep{balance}, func() error {
		seen = balance.Get()
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, balance.Set(150))
	require.Equal(t, 150, seen)
}

func TestField_ContainerRepointOnAggregateMove(t *testing.T) {
	e := newTestEngine()
	acc := &account{aggID: domain.NewAggregateID()}
	balance := reactive.Field(e, acc, "balance", 100)

	c1 := reactive.Var(e, "wallet1", acc)
	c2 := reactive.Var(e, "wallet2", acc)

	order := []string{}
	_, err := reactive.ActionArgs(e, "watch-c1", []reactive.Dep{c1}, func() error {
		order = append(order, "c1")
		return nil
	})
	require.NoError(t, err)
	_, err = reactive.ActionArgs(e, "watch-c2", []reactive.Dep{c2}, func() error {
		order = append(order, "c2")
		return nil
	})
	require.NoError(t, err)

	order = nil
	require.NoError(t, balance.Set(200))

	// Only the most recently bound container (c2, since it called Var last
	// and re-pointed the aggregate's sub-cells) observes the field write.
	require.Equal(t, []string{"c2"}, order)
}

func TestCascadeClose(t *testing.T) {
	e := newTestEngine()

	a := reactive.Var(e, "a", 1)
	dsA, err := reactive.CalcArgs(e, "dsA", []reactive.Dep{a}, func() (int, error) { return a.Get() + 1, nil })
	require.NoError(t, err)
	dsB, err := reactive.CalcArgs(e, "dsB", []reactive.Dep{dsA}, func() (int, error) { return dsA.Get() + 1, nil })
	require.NoError(t, err)
	dsC, err := reactive.CalcArgs(e, "dsC", []reactive.Dep{dsB}, func() (int, error) { return dsB.Get() + 1, nil })
	require.NoError(t, err)
	dsD, err := reactive.CalcArgs(e, "dsD", []reactive.Dep{dsC}, func() (int, error) { return dsC.Get() + 1, nil })
	require.NoError(t, err)

	b := reactive.Var(e, "b", 1)
	dsF, err := reactive.CalcArgs(e, "dsF", []reactive.Dep{b}, func() (int, error) { return b.Get() + 1, nil })
	require.NoError(t, err)
	dsG, err := reactive.CalcArgs(e, "dsG", []reactive.Dep{dsA, dsF}, func() (int, error) { return dsA.Get() + dsF.Get(), nil })
	require.NoError(t, err)

	dsA.Close()

	require.False(t, dsA.Valid())
	require.False(t, dsB.Valid())
	require.False(t, dsC.Valid())
	require.False(t, dsD.Valid())
	require.False(t, dsG.Valid())
	require.True(t, dsF.Valid())
}

func TestThresholdTrigger(t *testing.T) {
	e := newTestEngine()
	p := reactive.Var(e, "p", 100.0)

	tCell, err := reactive.Calc(e, "t", func() (string, error) {
		if p.Get() > 105.0 {
			return "sell", nil
		}
		return "hold", nil
	})
	require.NoError(t, err)
	require.NoError(t, tCell.SetThreshold(func() bool {
		return p.Get() > 105.0 || p.Get() < 95.0
	}))

	require.Equal(t, "hold", tCell.Get())

	require.NoError(t, p.Set(101))
	require.Equal(t, "hold", tCell.Get())

	require.NoError(t, p.Set(106))
	require.Equal(t, "sell", tCell.Get())
}

func TestThresholdTrigger_PredicateOnlyReadIsARealDependency(t *testing.T) {
	e := newTestEngine()
	p := reactive.Var(e, "p", 100.0)
	guard := reactive.Var(e, "guard", false)

	// t's own closure never reads guard; only the threshold predicate
	// does. SetThreshold must still bind that read as a real dependency
	// so writing guard alone revisits t and re-checks the predicate.
	tCell, err := reactive.Calc(e, "t", func() (string, error) {
		if p.Get() > 105.0 {
			return "sell", nil
		}
		return "hold", nil
	})
	require.NoError(t, err)
	require.NoError(t, tCell.SetThreshold(func() bool {
		return guard.Get()
	}))

	require.Equal(t, "hold", tCell.Get())

	// p alone changing must not fire, since the predicate ignores p now.
	require.NoError(t, p.Set(200))
	require.Equal(t, "hold", tCell.Get())

	// guard alone changing must revisit t and fire, proving guard is a
	// real graph dependency of t, not just a value read ad hoc.
	require.NoError(t, guard.Set(true))
	require.Equal(t, "sell", tCell.Get())
}

func TestFreezeLastValueOnDeath(t *testing.T) {
	e := newTestEngine()
	a := reactive.Var(e, "a", 1)

	temp, err := reactive.CalcArgs(e, "temp", []reactive.Dep{a}, func() (int, error) { return a.Get(), nil })
	require.NoError(t, err)
	temp.SetInvalidation(reactive.FreezeLastValue)

	b, err := reactive.CalcArgs(e, "b", []reactive.Dep{temp}, func() (int, error) { return temp.Get(), nil })
	require.NoError(t, err)
	require.Equal(t, 1, b.Get())

	temp.Drop()
	require.True(t, temp.Valid(), "FreezeLastValue must not close the cell")
	require.True(t, b.Valid())

	require.NoError(t, a.Set(2))
	require.Equal(t, 1, b.Get(), "b must remain at the frozen value forever")
}
