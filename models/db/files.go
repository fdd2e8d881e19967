package dbmodels

type FileStorage struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	OwnerEmail  string `gorm:"type:varchar(255);index"` // почта кандидата, чьё это резюме
	Type        FileType
	ContentType string `gorm:"type:varchar(100)"`
}

type FileType string

const (
	CandidateResume FileType = "candidate_resume"
)
