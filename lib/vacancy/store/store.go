package vacancystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Vacancy) (id string, err error)
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.Vacancy, err error)
	List() (list []dbmodels.Vacancy, err error)
	ListByHrMail(hrMail string) (list []dbmodels.Vacancy, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vacancy) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Vacancy{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NewNotFoundError("вакансия")
	}
	return nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Vacancy, err error) {
	err = i.db.Model(dbmodels.Vacancy{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) List() (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	err = i.db.
		Model(dbmodels.Vacancy{}).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByHrMail(hrMail string) (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	err = i.db.
		Model(dbmodels.Vacancy{}).
		Where("? = any(hrs)", hrMail).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
