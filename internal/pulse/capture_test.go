package pulse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smilemakc/reactive/internal/domain"
	"github.com/smilemakc/reactive/internal/pulse"
)

func TestCapture_RecordsDistinctReadsInOrder(t *testing.T) {
	a, b := domain.NewNodeID(), domain.NewNodeID()

	pulse.BeginCapture()
	pulse.RecordRead(a)
	pulse.RecordRead(b)
	pulse.RecordRead(a) // re-read of the same handle must not duplicate
	ids := pulse.EndCapture().IDs()

	require.Equal(t, []domain.NodeID{a, b}, ids)
}

func TestCapture_NestedFramesAreIndependent(t *testing.T) {
	outer, inner := domain.NewNodeID(), domain.NewNodeID()

	pulse.BeginCapture()
	pulse.RecordRead(outer)

	pulse.BeginCapture()
	pulse.RecordRead(inner)
	innerIDs := pulse.EndCapture().IDs()

	outerIDs := pulse.EndCapture().IDs()

	require.Equal(t, []domain.NodeID{inner}, innerIDs)
	require.Equal(t, []domain.NodeID{outer}, outerIDs)
}

func TestRecordRead_NoopOutsideCapture(t *testing.T) {
	require.NotPanics(t, func() {
		pulse.RecordRead(domain.NewNodeID())
	})
}
