package assignmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Assignment) (id string, err error)
	Delete(id string) error
	List() (list []dbmodels.Assignment, err error)
	ListByHrMail(hrMail string) (list []dbmodels.Assignment, err error)
	Search(email, contact string) (list []dbmodels.Assignment, err error)
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

func (i impl) Create(rec dbmodels.Assignment) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Assignment{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NewNotFoundError("назначение")
	}
	return nil
}

func (i impl) List() (list []dbmodels.Assignment, err error) {
	list = []dbmodels.Assignment{}
	err = i.db.
		Model(dbmodels.Assignment{}).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByHrMail(hrMail string) (list []dbmodels.Assignment, err error) {
	list = []dbmodels.Assignment{}
	err = i.db.
		Model(dbmodels.Assignment{}).
		Where("hr_mail = ?", hrMail).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Search(email, contact string) (list []dbmodels.Assignment, err error) {
	list = []dbmodels.Assignment{}
	tx := i.db.Model(dbmodels.Assignment{})
	addIdentifierFilter(tx, email, contact)
	err = tx.
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) IsExist(email, contact string) (found bool, err error) {
	var exists bool
	tx := i.db.Model(&dbmodels.Assignment{}).
		Select("count(*) > 0")
	addIdentifierFilter(tx, email, contact)
	err = tx.
		Find(&exists).
		Error
	return exists, err
}

func addIdentifierFilter(tx *gorm.DB, email, contact string) {
	switch {
	case email != "" && contact != "":
		tx.Where("candidate_email_id = ? or contact_number = ?", email, contact)
	case email != "":
		tx.Where("candidate_email_id = ?", email)
	case contact != "":
		tx.Where("contact_number = ?", contact)
	default:
		tx.Where("1 = 0")
	}
}
