package dbmodels

import (
	"hrms-backend/models"
	"time"
)

// ActiveListEntry - зеркало кандидата пока статус нетерминальный.
// Пишется только функцией перехода в lib/candidate
type ActiveListEntry struct {
	BaseModel
	CandidateID      string `gorm:"type:varchar(36);index"`
	CandidateName    string `gorm:"type:varchar(255)"`
	CandidateEmailID string `gorm:"type:varchar(255);uniqueIndex"`
	ContactNumber    string `gorm:"type:varchar(50);index"`
	Position         string `gorm:"type:varchar(255)"`
	EntryDate        time.Time
	StatusDate       time.Time              `gorm:"index"`
	ProgressStatus   models.CandidateStatus `gorm:"type:varchar(50);index"`
	HrName           string                 `gorm:"type:varchar(150);index"`
	HrMail           string                 `gorm:"type:varchar(255);index"`
}
