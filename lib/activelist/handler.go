package activelisthandler

import (
	activeliststore "hrms-backend/lib/activelist/store"
	"hrms-backend/db"
	"hrms-backend/lib/candidate"
	initchecker "hrms-backend/lib/utils/init-checker"
	candidateapimodels "hrms-backend/models/api/candidate"
	dbmodels "hrms-backend/models/db"
)

// Provider - чтение активного списка. Запись зеркала идет только через
// движок жизненного цикла, поэтому Update делегируется кандидату
type Provider interface {
	List() (list []ActiveView, err error)
	ListByHr(hrMail string) (list []ActiveView, err error)
	UpdateByEmail(email string, data candidateapimodels.CandidateData) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:             activeliststore.NewInstance(db.DB),
		candidateProvider: candidate.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidateProvider", instance.candidateProvider,
	)
	Instance = instance
}

type impl struct {
	store             activeliststore.Provider
	candidateProvider candidate.Provider
}

type ActiveView struct {
	ID               string `json:"id"`                 // Идентификатор записи
	CandidateID      string `json:"candidate_id"`       // Идентификатор кандидата
	CandidateName    string `json:"candidate_name"`     // ФИО кандидата
	CandidateEmailID string `json:"candidate_email_id"` // Почта кандидата
	ContactNumber    string `json:"contact_number"`     // Телефон
	Position         string `json:"position"`           // Позиция
	ProgressStatus   string `json:"progress_status"`    // Статус
	EntryDate        string `json:"entry_date"`         // Дата добавления ГГГГ-ММ-ДД
	StatusDate       string `json:"status_date"`        // Дата статуса ГГГГ-ММ-ДД
	HrName           string `json:"HR_name"`            // Имя рекрутера
	HrMail           string `json:"HR_mail"`            // Почта рекрутера
}

func (i impl) List() ([]ActiveView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListByHr(hrMail string) ([]ActiveView, error) {
	list, err := i.store.ListByHrMail(hrMail)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) UpdateByEmail(email string, data candidateapimodels.CandidateData) error {
	return i.candidateProvider.UpdateByEmail(email, data)
}

func convertList(list []dbmodels.ActiveListEntry) []ActiveView {
	result := make([]ActiveView, 0, len(list))
	for _, rec := range list {
		view := ActiveView{
			ID:               rec.ID,
			CandidateID:      rec.CandidateID,
			CandidateName:    rec.CandidateName,
			CandidateEmailID: rec.CandidateEmailID,
			ContactNumber:    rec.ContactNumber,
			Position:         rec.Position,
			ProgressStatus:   string(rec.ProgressStatus),
			HrName:           rec.HrName,
			HrMail:           rec.HrMail,
		}
		if !rec.EntryDate.IsZero() {
			view.EntryDate = rec.EntryDate.Format("2006-01-02")
		}
		if !rec.StatusDate.IsZero() {
			view.StatusDate = rec.StatusDate.Format("2006-01-02")
		}
		result = append(result, view)
	}
	return result
}
