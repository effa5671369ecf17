package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smilemakc/reactive/internal/domain"
)

func TestKind_ParticipatesInCycleCheck(t *testing.T) {
	require.True(t, domain.KindSource.ParticipatesInCycleCheck())
	require.True(t, domain.KindComputed.ParticipatesInCycleCheck())
	require.True(t, domain.KindField.ParticipatesInCycleCheck())
	require.False(t, domain.KindAction.ParticipatesInCycleCheck())
}

func TestKind_HasClosure(t *testing.T) {
	require.False(t, domain.KindSource.HasClosure())
	require.False(t, domain.KindConst.HasClosure())
	require.True(t, domain.KindComputed.HasClosure())
	require.True(t, domain.KindAction.HasClosure())
	require.False(t, domain.KindField.HasClosure())
}

func TestKind_String(t *testing.T) {
	cases := map[domain.Kind]string{
		domain.KindSource:   "source",
		domain.KindConst:    "const",
		domain.KindComputed: "computed",
		domain.KindAction:   "action",
		domain.KindField:    "field",
	}
	for k, want := range cases {
		require.Equal(t, want, k.String())
	}
}
