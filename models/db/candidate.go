package dbmodels

import (
	"hrms-backend/models"
	"time"
)

// Candidate - основная запись кандидата в воронке.
// CandidateEmailID - логический ключ дедупликации
type Candidate struct {
	BaseModel
	CandidateName    string `gorm:"type:varchar(255)"`
	CandidateEmailID string `gorm:"type:varchar(255);uniqueIndex"`
	ContactNumber    string `gorm:"type:varchar(50);index"`
	Position         string `gorm:"type:varchar(255)"`
	Experience       string `gorm:"type:varchar(100)"`
	EntryDate        time.Time
	StatusDate       time.Time              `gorm:"index"`
	ProgressStatus   models.CandidateStatus `gorm:"type:varchar(50);index"`
	Attachments      string                 `gorm:"type:varchar(512)"` // ссылка на резюме в хранилище
	Comments         string
	HrName           string `gorm:"type:varchar(150);index"`
	HrMail           string `gorm:"type:varchar(255);index"`
}
