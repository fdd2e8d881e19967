package hrhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hrms-backend/db"
	hrstore "hrms-backend/lib/hr/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	hrapimodels "hrms-backend/models/api/hr"
	dbmodels "hrms-backend/models/db"
	"hrms-backend/models"
)

type Provider interface {
	Create(request hrapimodels.HrData) (id string, err error)
	Update(id string, request hrapimodels.HrData) error
	Delete(id string) error
	Get(id string) (item hrapimodels.HrView, err error)
	List() (list []hrapimodels.HrView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: hrstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store hrstore.Provider
}

func (i impl) Create(request hrapimodels.HrData) (id string, err error) {
	logger := log.WithField("hr_email", request.Email)
	rec := dbmodels.Hr{
		Name:          request.Name,
		Email:         request.Email,
		ContactNumber: request.ContactNumber,
		Role:          request.Role,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", errors.New("рекрутер с такой почтой уже есть в реестре")
		}
		logger.WithError(err).Error("ошибка создания рекрутера")
		return "", err
	}
	logger.WithField("rec_id", id).Info("создан рекрутер")
	return id, nil
}

func (i impl) Update(id string, request hrapimodels.HrData) error {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"name":           request.Name,
		"email":          request.Email,
		"contact_number": request.ContactNumber,
		"role":           request.Role,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		if !errors.As(err, &models.NotFoundError{}) {
			logger.WithError(err).Error("ошибка обновления рекрутера")
		}
		return err
	}
	logger.Info("обновлен рекрутер")
	return nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		if !errors.As(err, &models.NotFoundError{}) {
			logger.WithError(err).Error("ошибка удаления рекрутера")
		}
		return err
	}
	logger.Info("удален рекрутер")
	return nil
}

func (i impl) Get(id string) (hrapimodels.HrView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return hrapimodels.HrView{}, err
	}
	if rec == nil {
		return hrapimodels.HrView{}, models.NewNotFoundError("рекрутер")
	}
	return hrapimodels.HrConvert(*rec), nil
}

func (i impl) List() ([]hrapimodels.HrView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]hrapimodels.HrView, 0, len(list))
	for _, rec := range list {
		result = append(result, hrapimodels.HrConvert(rec))
	}
	return result, nil
}
