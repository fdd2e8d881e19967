package candidatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
	"time"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Candidate, err error)
	GetByEmail(email string) (rec *dbmodels.Candidate, err error)
	Delete(id string) error
	ListByHrMail(hrMail string) (list []dbmodels.Candidate, err error)
	List() (list []dbmodels.Candidate, err error)
	IsJoinedExist(email, contact string) (found bool, err error)
	ListForTracker(status models.CandidateStatus, hrName string, from, to time.Time) (list []dbmodels.Candidate, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
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
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NewNotFoundError("кандидат")
	}
	return nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Candidate, err error) {
	err = i.db.Model(dbmodels.Candidate{}).
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

func (i impl) GetByEmail(email string) (rec *dbmodels.Candidate, err error) {
	err = i.db.Model(dbmodels.Candidate{}).
		Where("candidate_email_id = ?", email).
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

func (i impl) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Candidate{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NewNotFoundError("кандидат")
	}
	return nil
}

func (i impl) ListByHrMail(hrMail string) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Model(dbmodels.Candidate{}).
		Where("hr_mail = ?", hrMail).
		Order("status_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List() (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Model(dbmodels.Candidate{}).
		Order("status_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) IsJoinedExist(email, contact string) (found bool, err error) {
	var exists bool
	tx := i.db.Model(&dbmodels.Candidate{}).
		Select("count(*) > 0").
		Where("progress_status = ?", models.StatusJoined)
	addIdentifierFilter(tx, "candidate_email_id", email, contact)
	err = tx.
		Find(&exists).
		Error
	return exists, err
}

func (i impl) ListForTracker(status models.CandidateStatus, hrName string, from, to time.Time) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.Model(dbmodels.Candidate{})
	if status != "" {
		tx.Where("progress_status = ?", status)
	}
	if hrName != "" {
		tx.Where("hr_name = ?", hrName)
	}
	if !from.IsZero() {
		tx.Where("status_date >= ?", from)
	}
	if !to.IsZero() {
		tx.Where("status_date <= ?", to)
	}
	err = tx.
		Order("status_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// addIdentifierFilter - поиск по почте или телефону, пустой критерий игнорируется
func addIdentifierFilter(tx *gorm.DB, emailColumn, email, contact string) {
	switch {
	case email != "" && contact != "":
		tx.Where(emailColumn+" = ? or contact_number = ?", email, contact)
	case email != "":
		tx.Where(emailColumn+" = ?", email)
	case contact != "":
		tx.Where("contact_number = ?", contact)
	default:
		tx.Where("1 = 0")
	}
}
