package dbmodels

import (
	"github.com/lib/pq"
)

type Vacancy struct {
	BaseModel
	JobID          string         `gorm:"type:varchar(100);uniqueIndex"`
	Position       string         `gorm:"type:varchar(255)"`
	Department     string         `gorm:"type:varchar(255)"`
	VacancyCount   int
	ExperienceFrom int
	ExperienceTo   int
	Skills         pq.StringArray `gorm:"type:text[]"`
	JobDescription string
	Hrs            pq.StringArray `gorm:"type:text[]"` // почты назначенных рекрутеров
}
