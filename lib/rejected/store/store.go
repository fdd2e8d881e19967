package rejectedstore

import (
	"gorm.io/gorm"
	dbmodels "hrms-backend/models/db"
)

// Снимки отказов неизменяемы, store намеренно без Update/Delete
type Provider interface {
	Create(rec dbmodels.RejectedEntry) (id string, err error)
	List() (list []dbmodels.RejectedEntry, err error)
	IsExist(email, contact string) (found bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RejectedEntry) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List() (list []dbmodels.RejectedEntry, err error) {
	list = []dbmodels.RejectedEntry{}
	err = i.db.
		Model(dbmodels.RejectedEntry{}).
		Order("status_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) IsExist(email, contact string) (found bool, err error) {
	var exists bool
	tx := i.db.Model(&dbmodels.RejectedEntry{}).
		Select("count(*) > 0")
	switch {
	case email != "" && contact != "":
		tx.Where("candidate_email_id = ? or contact_number = ?", email, contact)
	case email != "":
		tx.Where("candidate_email_id = ?", email)
	case contact != "":
		tx.Where("contact_number = ?", contact)
	default:
		return false, nil
	}
	err = tx.
		Find(&exists).
		Error
	return exists, err
}
