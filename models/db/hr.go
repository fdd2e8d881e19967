package dbmodels

// Hr - реестр рекрутеров, ведется админом, используется как
// список целей для передачи кандидатов
type Hr struct {
	BaseModel
	Name          string `gorm:"type:varchar(150)"`
	Email         string `gorm:"type:varchar(255);uniqueIndex"`
	ContactNumber string `gorm:"type:varchar(50)"`
	Role          string `gorm:"type:varchar(100)"`
}
