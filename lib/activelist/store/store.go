package activeliststore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.ActiveListEntry) error
	DeleteByEmail(email string) error
	List() (list []dbmodels.ActiveListEntry, err error)
	ListByHrMail(hrMail string) (list []dbmodels.ActiveListEntry, err error)
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

// Upsert - зеркало кандидата в активном списке, не более одной записи на почту
func (i impl) Upsert(rec dbmodels.ActiveListEntry) error {
	return i.db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "candidate_email_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"candidate_id", "candidate_name", "contact_number", "position",
				"entry_date", "status_date", "progress_status", "hr_name", "hr_mail", "updated_at",
			}),
		}).
		Create(&rec).
		Error
}

func (i impl) DeleteByEmail(email string) error {
	return i.db.
		Where("candidate_email_id = ?", email).
		Delete(&dbmodels.ActiveListEntry{}).
		Error
}

func (i impl) List() (list []dbmodels.ActiveListEntry, err error) {
	list = []dbmodels.ActiveListEntry{}
	err = i.db.
		Model(dbmodels.ActiveListEntry{}).
		Order("status_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByHrMail(hrMail string) (list []dbmodels.ActiveListEntry, err error) {
	list = []dbmodels.ActiveListEntry{}
	err = i.db.
		Model(dbmodels.ActiveListEntry{}).
		Where("hr_mail = ?", hrMail).
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
	tx := i.db.Model(&dbmodels.ActiveListEntry{}).
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
