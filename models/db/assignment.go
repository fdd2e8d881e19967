package dbmodels

// Assignment - передача кандидата от админа рекрутеру до создания
// полноценной записи Candidate (двухфазная схема: админ предлагает,
// рекрутер фиксирует)
type Assignment struct {
	BaseModel
	HrMail           string `gorm:"type:varchar(255);index"`
	HrName           string `gorm:"type:varchar(150)"`
	CandidateName    string `gorm:"type:varchar(255)"`
	CandidateEmailID string `gorm:"type:varchar(255);uniqueIndex"`
	Position         string `gorm:"type:varchar(255)"`
	ContactNumber    string `gorm:"type:varchar(50);index"`
	Comments         string
	Attachments      string `gorm:"type:varchar(512)"`
}
