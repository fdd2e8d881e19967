package assignmentapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"hrms-backend/lib/utils/helpers"
	dbmodels "hrms-backend/models/db"
)

type AssignmentData struct {
	HrMail           string `json:"HR_mail"`            // Почта рекрутера
	HrName           string `json:"HR_name"`            // Имя рекрутера
	CandidateName    string `json:"candidate_name"`     // ФИО кандидата
	CandidateEmailID string `json:"candidate_email_id"` // Почта кандидата
	Position         string `json:"position"`           // Позиция
	ContactNumber    string `json:"contact_number"`     // Телефон
	Comments         string `json:"comments"`           // Комментарий
	Attachments      string `json:"attachments"`        // Ссылка на резюме (не более одного файла)
}

func (a AssignmentData) Validate() error {
	if !helpers.IsEmailFormat(a.HrMail) {
		return errors.New("некорректная почта рекрутера")
	}
	if strings.TrimSpace(a.HrName) == "" {
		return errors.New("не указано имя рекрутера")
	}
	if strings.TrimSpace(a.CandidateName) == "" {
		return errors.New("не указано имя кандидата")
	}
	if !helpers.IsEmailFormat(a.CandidateEmailID) {
		return errors.New("некорректная почта кандидата")
	}
	if strings.TrimSpace(a.Position) == "" {
		return errors.New("не указана позиция")
	}
	return nil
}

type SearchFilter struct {
	CandidateEmail string `json:"candidate_email" query:"candidate_email"` // Поиск по почте кандидата
	ContactNumber  string `json:"contact_number" query:"contact_number"`   // Поиск по телефону
}

func (f SearchFilter) Validate() error {
	if f.CandidateEmail == "" && f.ContactNumber == "" {
		return errors.New("не указан критерий поиска")
	}
	return nil
}

type AssignmentView struct {
	AssignmentData
	ID string `json:"id"` // Идентификатор передачи
}

func AssignmentConvert(rec dbmodels.Assignment) AssignmentView {
	return AssignmentView{
		ID: rec.ID,
		AssignmentData: AssignmentData{
			HrMail:           rec.HrMail,
			HrName:           rec.HrName,
			CandidateName:    rec.CandidateName,
			CandidateEmailID: rec.CandidateEmailID,
			Position:         rec.Position,
			ContactNumber:    rec.ContactNumber,
			Comments:         rec.Comments,
			Attachments:      rec.Attachments,
		},
	}
}
