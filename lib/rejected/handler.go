package rejectedhandler

import (
	"hrms-backend/db"
	rejectedstore "hrms-backend/lib/rejected/store"
	initchecker "hrms-backend/lib/utils/init-checker"
)

type Provider interface {
	List() (list []RejectedView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: rejectedstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store rejectedstore.Provider
}

type RejectedView struct {
	ID               string `json:"id"`                 // Идентификатор снимка
	CandidateID      string `json:"candidate_id"`       // Идентификатор кандидата
	CandidateName    string `json:"candidate_name"`     // ФИО кандидата
	CandidateEmailID string `json:"candidate_email_id"` // Почта кандидата
	ContactNumber    string `json:"contact_number"`     // Телефон
	Position         string `json:"position"`           // Позиция
	ProgressStatus   string `json:"progress_status"`    // Терминальный статус
	RejectionReason  string `json:"rejection_reason"`   // Причина отказа
	StatusDate       string `json:"status_date"`        // Дата статуса ГГГГ-ММ-ДД
	HrName           string `json:"HR_name"`            // Имя рекрутера
}

func (i impl) List() ([]RejectedView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]RejectedView, 0, len(list))
	for _, rec := range list {
		view := RejectedView{
			ID:               rec.ID,
			CandidateID:      rec.CandidateID,
			CandidateName:    rec.CandidateName,
			CandidateEmailID: rec.CandidateEmailID,
			ContactNumber:    rec.ContactNumber,
			Position:         rec.Position,
			ProgressStatus:   string(rec.ProgressStatus),
			RejectionReason:  rec.RejectionReason,
			HrName:           rec.HrName,
		}
		if !rec.StatusDate.IsZero() {
			view.StatusDate = rec.StatusDate.Format("2006-01-02")
		}
		result = append(result, view)
	}
	return result, nil
}
