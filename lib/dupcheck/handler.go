package dupcheck

import (
	activeliststore "hrms-backend/lib/activelist/store"
	candidatestore "hrms-backend/lib/candidate/store"
	rejectedstore "hrms-backend/lib/rejected/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/db"
	"hrms-backend/models"
)

// Provider - сервис проверки на дубликат. Кандидат может существовать
// сразу в нескольких исторических таблицах, поэтому порядок проверки
// фиксированный: отказы -> вышедшие -> активный список
type Provider interface {
	CheckEmail(email string) (state models.DupState, err error)
	CheckContact(contact string) (state models.DupState, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		rejectedStore:   rejectedstore.NewInstance(db.DB),
		candidateStore:  candidatestore.NewInstance(db.DB),
		activeListStore: activeliststore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"rejectedStore", instance.rejectedStore,
		"candidateStore", instance.candidateStore,
		"activeListStore", instance.activeListStore,
	)
	Instance = instance
}

type impl struct {
	rejectedStore   rejectedstore.Provider
	candidateStore  candidatestore.Provider
	activeListStore activeliststore.Provider
}

func (i impl) CheckEmail(email string) (models.DupState, error) {
	return i.check(email, "")
}

func (i impl) CheckContact(contact string) (models.DupState, error) {
	return i.check("", contact)
}

func (i impl) check(email, contact string) (models.DupState, error) {
	inRejected, err := i.rejectedStore.IsExist(email, contact)
	if err != nil {
		return "", err
	}
	joined, err := i.candidateStore.IsJoinedExist(email, contact)
	if err != nil {
		return "", err
	}
	inActive, err := i.activeListStore.IsExist(email, contact)
	if err != nil {
		return "", err
	}
	return ResolveState(inRejected, joined, inActive), nil
}

// ResolveState - свертка результатов сканирования списков в одно состояние.
// Отказ самый приоритетный сигнал для оператора
func ResolveState(inRejected, joined, inActive bool) models.DupState {
	switch {
	case inRejected:
		return models.DupStateInRejected
	case joined:
		return models.DupStateJoined
	case inActive:
		return models.DupStateInActiveList
	}
	return models.DupStateNotFound
}
