package dbmodels

import (
	"hrms-backend/models"
	"time"
)

type User struct {
	BaseModel
	Name      string          `gorm:"type:varchar(150)"`
	Email     string          `gorm:"type:varchar(255);uniqueIndex"`
	Password  string          `gorm:"type:varchar(128)"` // md5 hex
	Role      models.UserRole `gorm:"type:varchar(50)"`
	LastLogin time.Time
}
