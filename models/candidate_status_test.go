package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidateStatus(t *testing.T) {
	t.Run(`терминальные статусы`, func(t *testing.T) {
		terminal := []CandidateStatus{
			StatusJoined, StatusDeclinedOffer, StatusRejected, StatusWithdrawn, StatusNoShow,
		}
		for _, status := range terminal {
			require.True(t, status.IsTerminal(), string(status))
		}
		for _, status := range CandidateStatuses {
			if status.IsTerminal() {
				continue
			}
			require.False(t, status.IsRejectedKind(), string(status))
		}
	})

	t.Run(`Joined не попадает в отказы`, func(t *testing.T) {
		require.True(t, StatusJoined.IsTerminal())
		require.False(t, StatusJoined.IsRejectedKind())
	})

	t.Run(`Hold и Buffer нетерминальные`, func(t *testing.T) {
		require.False(t, StatusHold.IsTerminal())
		require.False(t, StatusBuffer.IsTerminal())
	})

	t.Run(`все известные статусы валидны`, func(t *testing.T) {
		for _, status := range CandidateStatuses {
			require.True(t, status.IsValid(), string(status))
		}
		require.False(t, CandidateStatus("Unknown").IsValid())
	})
}
