package candidateapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"hrms-backend/lib/utils/helpers"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type CandidateData struct {
	CandidateName    string                 `json:"candidate_name"`     // ФИО кандидата
	CandidateEmailID string                 `json:"candidate_email_id"` // Почта кандидата (ключ дедупликации)
	ContactNumber    string                 `json:"contact_number"`     // Контактный телефон
	Position         string                 `json:"position"`           // Позиция
	Experience       string                 `json:"experience"`         // Опыт
	EntryDate        string                 `json:"entry_date"`         // Дата добавления ГГГГ-ММ-ДД
	StatusDate       string                 `json:"status_date"`        // Дата статуса ГГГГ-ММ-ДД
	ProgressStatus   models.CandidateStatus `json:"progress_status"`    // Статус в воронке
	Attachments      string                 `json:"attachments"`        // Ссылка на резюме
	Comments         string                 `json:"comments"`           // Комментарий
	HrName           string                 `json:"HR_name"`            // Имя рекрутера
	HrMail           string                 `json:"HR_mail"`            // Почта рекрутера
	RejectionReason  string                 `json:"rejection_reason"`   // Причина отказа (для терминальных статусов)
}

func (c CandidateData) Validate() error {
	if strings.TrimSpace(c.CandidateName) == "" {
		return errors.New("не указано имя кандидата")
	}
	if !helpers.IsEmailFormat(c.CandidateEmailID) {
		return errors.New("некорректная почта кандидата")
	}
	if strings.TrimSpace(c.Position) == "" {
		return errors.New("не указана позиция")
	}
	if c.ProgressStatus != "" && !c.ProgressStatus.IsValid() {
		return errors.New("неизвестный статус кандидата")
	}
	if _, err := c.GetEntryDate(); err != nil {
		return errors.New("некорректный формат даты добавления")
	}
	if _, err := c.GetStatusDate(); err != nil {
		return errors.New("некорректный формат даты статуса")
	}
	return nil
}

func (c CandidateData) GetEntryDate() (time.Time, error) {
	return parseDate(c.EntryDate)
}

func (c CandidateData) GetStatusDate() (time.Time, error) {
	return parseDate(c.StatusDate)
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", value)
}

type CandidateView struct {
	CandidateData
	ID string `json:"id"` // Идентификатор кандидата
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		ID: rec.ID,
		CandidateData: CandidateData{
			CandidateName:    rec.CandidateName,
			CandidateEmailID: rec.CandidateEmailID,
			ContactNumber:    rec.ContactNumber,
			Position:         rec.Position,
			Experience:       rec.Experience,
			EntryDate:        formatDate(rec.EntryDate),
			StatusDate:       formatDate(rec.StatusDate),
			ProgressStatus:   rec.ProgressStatus,
			Attachments:      rec.Attachments,
			Comments:         rec.Comments,
			HrName:           rec.HrName,
			HrMail:           rec.HrMail,
		},
	}
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format("2006-01-02")
}

type SearchResponse struct {
	State   models.DupState `json:"state"`   // Категория найденной записи
	Message string          `json:"message"` // Текст для оператора
}
