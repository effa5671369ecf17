package reactive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smilemakc/reactive"
)

func newTestEngine() *reactive.Engine {
	return reactive.NewEngine(reactive.DefaultConfig())
}

func TestVar_GetSet(t *testing.T) {
	e := newTestEngine()
	a := reactive.Var(e, "a", 1)
	require.Equal(t, 1, a.Get())

	require.NoError(t, a.Set(2))
	require.Equal(t, 2, a.Get())
}

func TestConstVar_IsNeverWritable(t *testing.T) {
	e := newTestEngine()
	c := reactive.ConstVar(e, "c", 42)
	require.Equal(t, 42, c.Get())
	require.Error(t, c.Set(43))
}

func TestHandle_Valid(t *testing.T) {
	e := newTestEngine()
	a := reactive.Var(e, "a", 1)
	require.True(t, a.Valid())
	a.Close()
	require.False(t, a.Valid())
}

func TestHandle_GetOnClosedPanics(t *testing.T) {
	e := newTestEngine()
	a := reactive.Var(e, "a", 1)
	a.Close()
	require.Panics(t, func() { a.Get() })
}

func TestHandle_CloneAndDrop(t *testing.T) {
	e := newTestEngine()
	a := reactive.Var(e, "a", 1)
	clone := a.Clone()
	a.Drop()
	require.True(t, clone.Valid(), "one outstanding clone must keep the cell alive")
	clone.Drop()
	require.False(t, clone.Valid())
}

func TestHandle_SetOnComputedIsRejected(t *testing.T) {
	e := newTestEngine()
	a := reactive.Var(e, "a", 1)
	s, err := reactive.Calc(e, "s", func() (int, error) { return a.Get() + 1, nil })
	require.NoError(t, err)
	require.Error(t, s.Set(99))
}

func TestHandle_NameAndRename(t *testing.T) {
	e := newTestEngine()
	a := reactive.Var(e, "a", 1)
	require.Equal(t, "a", a.Name())
	a.Rename("renamed")
	require.Equal(t, "renamed", a.Name())
}
