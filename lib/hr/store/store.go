package hrstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Hr) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.Hr, err error)
	List() (list []dbmodels.Hr, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Hr) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Hr{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NewNotFoundError("рекрутер")
	}
	return nil
}

func (i impl) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Hr{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NewNotFoundError("рекрутер")
	}
	return nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Hr, err error) {
	err = i.db.Model(dbmodels.Hr{}).
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

func (i impl) List() (list []dbmodels.Hr, err error) {
	list = []dbmodels.Hr{}
	err = i.db.
		Model(dbmodels.Hr{}).
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
