package candidate

import (
	"hrms-backend/models"
)

// TransitionPlan - что нужно сделать с зеркальными таблицами при
// смене статуса кандидата. План считается чистой функцией, сами
// записи выполняются только внутри транзакции в applyTransition
type TransitionPlan struct {
	StatusChanged   bool // статус реально меняется
	TouchStatusDate bool // обновить status_date (только при фактической смене)
	SnapshotReject  bool // зафиксировать снимок в списке отказов
	RemoveMirror    bool // убрать запись из активного списка
	UpsertMirror    bool // привести зеркало активного списка в соответствие
}

// PlanTransition - правила синхронизации:
//   - зеркало в активном списке существует тогда и только тогда,
//     когда текущий статус нетерминальный;
//   - переход в Rejected/Declined Offer/Withdrawn/No Show из
//     нетерминального статуса дает ровно один снимок отказа;
//   - Joined терминальный, но в отказы не попадает;
//   - повторное выставление того же статуса не трогает status_date
func PlanTransition(oldStatus, newStatus models.CandidateStatus) TransitionPlan {
	effective := newStatus
	if effective == "" {
		effective = oldStatus
	}
	plan := TransitionPlan{
		StatusChanged: newStatus != "" && newStatus != oldStatus,
	}
	plan.TouchStatusDate = plan.StatusChanged
	plan.SnapshotReject = plan.StatusChanged && effective.IsRejectedKind() && !oldStatus.IsTerminal()
	if effective.IsTerminal() {
		plan.RemoveMirror = true
	} else {
		plan.UpsertMirror = true
	}
	return plan
}
