package dbmodels

import (
	"hrms-backend/models"
	"time"
)

// RejectedEntry - неизменяемый снимок кандидата на момент
// перехода в Rejected/Declined Offer/Withdrawn/No Show
type RejectedEntry struct {
	BaseModel
	CandidateID      string `gorm:"type:varchar(36);index"`
	CandidateName    string `gorm:"type:varchar(255)"`
	CandidateEmailID string `gorm:"type:varchar(255);index"`
	ContactNumber    string `gorm:"type:varchar(50);index"`
	Position         string `gorm:"type:varchar(255)"`
	EntryDate        time.Time
	StatusDate       time.Time
	ProgressStatus   models.CandidateStatus `gorm:"type:varchar(50)"`
	RejectionReason  string
	HrName           string `gorm:"type:varchar(150)"`
	HrMail           string `gorm:"type:varchar(255)"`
}
