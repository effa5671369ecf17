package obslog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smilemakc/reactive/internal/obslog"
)

func TestNewTracer_NilFallsBackToNoop(t *testing.T) {
	tracer := obslog.NewTracer(nil)
	ctx, span := tracer.StartPulse(context.Background(), "root")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	span.End()
}

func TestTracer_StartVisit(t *testing.T) {
	tracer := obslog.NewTracer(nil)
	ctx, span := tracer.StartVisit(context.Background(), "cell")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	span.End()
}
