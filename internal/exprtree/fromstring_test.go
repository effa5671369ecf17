package exprtree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smilemakc/reactive/internal/exprtree"
)

func TestFromString_EvalAgainstEnv(t *testing.T) {
	x := 10.0
	tree, err := exprtree.NewFromString("x * 2 + 1", func() map[string]interface{} {
		return map[string]interface{}{"x": x}
	})
	require.NoError(t, err)
	require.Equal(t, 21.0, tree.Eval())

	x = 5
	require.Equal(t, 11.0, tree.Eval(), "env is re-read fresh on every Eval")
}

func TestFromString_CompileError(t *testing.T) {
	_, err := exprtree.NewFromString("x +* 1", func() map[string]interface{} { return nil })
	require.Error(t, err)
}

func TestFromString_RuntimeErrorFoldsToZero(t *testing.T) {
	tree, err := exprtree.NewFromString("missing * 2", func() map[string]interface{} {
		return map[string]interface{}{}
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, tree.Eval())
}

func TestFromString_Source(t *testing.T) {
	tree, err := exprtree.NewFromString("1 + 1", func() map[string]interface{} { return nil })
	require.NoError(t, err)
	require.Equal(t, "1 + 1", tree.Source())
}
