package candidate

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hrms-backend/models"
)

func TestPlanTransition(t *testing.T) {
	t.Run(`продвижение по воронке держит зеркало активного списка`, func(t *testing.T) {
		plan := PlanTransition(models.StatusApplicationReceived, models.StatusPhoneScreening)
		require.True(t, plan.StatusChanged)
		require.True(t, plan.TouchStatusDate)
		require.False(t, plan.SnapshotReject)
		require.False(t, plan.RemoveMirror)
		require.True(t, plan.UpsertMirror)
	})

	t.Run(`отказ дает снимок и убирает из активного списка`, func(t *testing.T) {
		plan := PlanTransition(models.StatusL1Interview, models.StatusRejected)
		require.True(t, plan.StatusChanged)
		require.True(t, plan.SnapshotReject)
		require.True(t, plan.RemoveMirror)
		require.False(t, plan.UpsertMirror)
	})

	t.Run(`каждый терминальный статус с отказом фиксируется снимком`, func(t *testing.T) {
		for _, status := range []models.CandidateStatus{
			models.StatusDeclinedOffer,
			models.StatusRejected,
			models.StatusWithdrawn,
			models.StatusNoShow,
		} {
			plan := PlanTransition(models.StatusOfferReleased, status)
			require.True(t, plan.SnapshotReject, string(status))
			require.True(t, plan.RemoveMirror, string(status))
		}
	})

	t.Run(`Joined терминальный но без снимка отказа`, func(t *testing.T) {
		plan := PlanTransition(models.StatusOfferReleased, models.StatusJoined)
		require.True(t, plan.StatusChanged)
		require.False(t, plan.SnapshotReject)
		require.True(t, plan.RemoveMirror)
		require.False(t, plan.UpsertMirror)
	})

	t.Run(`повторный тот же статус не трогает дату статуса`, func(t *testing.T) {
		plan := PlanTransition(models.StatusHold, models.StatusHold)
		require.False(t, plan.StatusChanged)
		require.False(t, plan.TouchStatusDate)
		require.False(t, plan.SnapshotReject)
	})

	t.Run(`пустой статус в запросе оставляет текущее состояние`, func(t *testing.T) {
		plan := PlanTransition(models.StatusPhoneScreening, "")
		require.False(t, plan.StatusChanged)
		require.False(t, plan.TouchStatusDate)
		require.True(t, plan.UpsertMirror)

		plan = PlanTransition(models.StatusRejected, "")
		require.False(t, plan.StatusChanged)
		require.False(t, plan.SnapshotReject)
		require.True(t, plan.RemoveMirror)
	})

	t.Run(`переход между терминальными не дублирует снимок`, func(t *testing.T) {
		plan := PlanTransition(models.StatusRejected, models.StatusWithdrawn)
		require.True(t, plan.StatusChanged)
		require.False(t, plan.SnapshotReject)
		require.True(t, plan.RemoveMirror)
	})

	t.Run(`возврат из терминального статуса восстанавливает зеркало`, func(t *testing.T) {
		plan := PlanTransition(models.StatusRejected, models.StatusBuffer)
		require.True(t, plan.StatusChanged)
		require.False(t, plan.SnapshotReject)
		require.False(t, plan.RemoveMirror)
		require.True(t, plan.UpsertMirror)
	})
}
