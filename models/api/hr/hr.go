package hrapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"hrms-backend/lib/utils/helpers"
	dbmodels "hrms-backend/models/db"
)

type HrData struct {
	Name          string `json:"name"`           // Имя рекрутера
	Email         string `json:"email"`          // Почта
	ContactNumber string `json:"contact_number"` // Телефон
	Role          string `json:"role"`           // Должность
}

func (h HrData) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return errors.New("не указано имя рекрутера")
	}
	if !helpers.IsEmailFormat(h.Email) {
		return errors.New("некорректная почта рекрутера")
	}
	return nil
}

type HrView struct {
	HrData
	ID string `json:"id"` // Идентификатор записи
}

func HrConvert(rec dbmodels.Hr) HrView {
	return HrView{
		ID: rec.ID,
		HrData: HrData{
			Name:          rec.Name,
			Email:         rec.Email,
			ContactNumber: rec.ContactNumber,
			Role:          rec.Role,
		},
	}
}
