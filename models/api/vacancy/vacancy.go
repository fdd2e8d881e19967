package vacancyapimodels

import (
	"strings"

	"github.com/pkg/errors"
	dbmodels "hrms-backend/models/db"
)

type VacancyData struct {
	JobID          string   `json:"job_id"`          // Внешний идентификатор вакансии
	Position       string   `json:"position"`        // Позиция
	Department     string   `json:"department"`      // Подразделение
	VacancyCount   int      `json:"vacancy_count"`   // Кол-во открытых мест
	ExperienceFrom int      `json:"experience_from"` // Опыт от, лет
	ExperienceTo   int      `json:"experience_to"`   // Опыт до, лет
	Skills         []string `json:"skills"`          // Требуемые навыки
	JobDescription string   `json:"job_description"` // Описание
	Hrs            []string `json:"hrs"`             // Почты назначенных рекрутеров
}

func (v VacancyData) Validate() error {
	if strings.TrimSpace(v.JobID) == "" {
		return errors.New("не указан идентификатор вакансии")
	}
	if strings.TrimSpace(v.Position) == "" {
		return errors.New("не указана позиция")
	}
	if v.VacancyCount < 0 {
		return errors.New("некорректное кол-во мест")
	}
	if v.ExperienceTo != 0 && v.ExperienceTo < v.ExperienceFrom {
		return errors.New("некорректный диапазон опыта")
	}
	return nil
}

type VacancyView struct {
	VacancyData
	ID string `json:"id"` // Идентификатор записи
}

func VacancyConvert(rec dbmodels.Vacancy) VacancyView {
	return VacancyView{
		ID: rec.ID,
		VacancyData: VacancyData{
			JobID:          rec.JobID,
			Position:       rec.Position,
			Department:     rec.Department,
			VacancyCount:   rec.VacancyCount,
			ExperienceFrom: rec.ExperienceFrom,
			ExperienceTo:   rec.ExperienceTo,
			Skills:         rec.Skills,
			JobDescription: rec.JobDescription,
			Hrs:            rec.Hrs,
		},
	}
}
