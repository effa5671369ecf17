package exprtree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smilemakc/reactive/internal/exprtree"
)

func TestTree_ConstAndOps(t *testing.T) {
	tree := exprtree.Add(exprtree.Const[int]{Value: 2}, exprtree.Mul(exprtree.Const[int]{Value: 3}, exprtree.Const[int]{Value: 4}))
	require.Equal(t, 14, tree.Eval())
}

func TestTree_ReadLeafIsLive(t *testing.T) {
	x := 10
	read := exprtree.Read[int](func() int { return x })
	tree := exprtree.Sub(read, exprtree.Const[int]{Value: 3})
	require.Equal(t, 7, tree.Eval())

	x = 20
	require.Equal(t, 17, tree.Eval(), "a Read leaf must re-read fresh on every Eval")
}

func TestTree_Div(t *testing.T) {
	tree := exprtree.Div(exprtree.Const[float64]{Value: 9}, exprtree.Const[float64]{Value: 2})
	require.InDelta(t, 4.5, tree.Eval(), 1e-9)
}
