package field_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smilemakc/reactive/internal/domain"
	"github.com/smilemakc/reactive/internal/field"
)

func TestIndex_RegisterAndSubCells(t *testing.T) {
	ix := field.NewIndex()
	agg := domain.NewAggregateID()
	s1, s2 := domain.NewNodeID(), domain.NewNodeID()

	ix.Register(agg, s1)
	ix.Register(agg, s2)

	require.Equal(t, []domain.NodeID{s1, s2}, ix.SubCells(agg))
}

func TestIndex_BindContainer(t *testing.T) {
	ix := field.NewIndex()
	agg := domain.NewAggregateID()
	s1, s2 := domain.NewNodeID(), domain.NewNodeID()
	ix.Register(agg, s1)
	ix.Register(agg, s2)

	c1 := domain.NewNodeID()
	ix.BindContainer(agg, c1)

	got1, ok := ix.Container(s1)
	require.True(t, ok)
	require.Equal(t, c1, got1)
	got2, ok := ix.Container(s2)
	require.True(t, ok)
	require.Equal(t, c1, got2)
}

func TestIndex_BindContainer_Repoint(t *testing.T) {
	ix := field.NewIndex()
	agg := domain.NewAggregateID()
	sub := domain.NewNodeID()
	ix.Register(agg, sub)

	c1, c2 := domain.NewNodeID(), domain.NewNodeID()
	ix.BindContainer(agg, c1)
	ix.BindContainer(agg, c2)

	got, ok := ix.Container(sub)
	require.True(t, ok)
	require.Equal(t, c2, got, "moving the aggregate must re-point its sub-cells to the new container")
}

func TestIndex_Unregister(t *testing.T) {
	ix := field.NewIndex()
	agg := domain.NewAggregateID()
	sub := domain.NewNodeID()
	ix.Register(agg, sub)
	ix.BindContainer(agg, domain.NewNodeID())

	ix.Unregister(agg, sub)

	require.Empty(t, ix.SubCells(agg))
	_, ok := ix.Container(sub)
	require.False(t, ok)
}

func TestIndex_ContainerUnknown(t *testing.T) {
	ix := field.NewIndex()
	_, ok := ix.Container(domain.NewNodeID())
	require.False(t, ok)
}
