package dupcheck

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hrms-backend/models"
)

func TestResolveState(t *testing.T) {
	t.Run(`отказ приоритетнее остальных списков`, func(t *testing.T) {
		require.Equal(t, models.DupStateInRejected, ResolveState(true, true, true))
		require.Equal(t, models.DupStateInRejected, ResolveState(true, false, true))
		require.Equal(t, models.DupStateInRejected, ResolveState(true, false, false))
	})

	t.Run(`вышедший приоритетнее активного списка`, func(t *testing.T) {
		require.Equal(t, models.DupStateJoined, ResolveState(false, true, true))
		require.Equal(t, models.DupStateJoined, ResolveState(false, true, false))
	})

	t.Run(`только активный список`, func(t *testing.T) {
		require.Equal(t, models.DupStateInActiveList, ResolveState(false, false, true))
	})

	t.Run(`нигде не найден`, func(t *testing.T) {
		require.Equal(t, models.DupStateNotFound, ResolveState(false, false, false))
	})
}

func TestDupStateMessages(t *testing.T) {
	// фронт завязан на точный текст сообщений
	require.Equal(t, "Candidate is in Rejected list", models.DupStateInRejected.Message())
	require.Equal(t, "Candidate is already joined", models.DupStateJoined.Message())
	require.Equal(t, "Candidate is already in Active List", models.DupStateInActiveList.Message())
	require.Equal(t, "Candidate not found, you can proceed", models.DupStateNotFound.Message())
}
