package vacancyhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hrms-backend/db"
	initchecker "hrms-backend/lib/utils/init-checker"
	vacancystore "hrms-backend/lib/vacancy/store"
	vacancyapimodels "hrms-backend/models/api/vacancy"
	dbmodels "hrms-backend/models/db"
	"hrms-backend/models"
)

type Provider interface {
	Create(request vacancyapimodels.VacancyData) (id string, err error)
	Delete(id string) error
	Get(id string) (item vacancyapimodels.VacancyView, err error)
	List() (list []vacancyapimodels.VacancyView, err error)
	ListByHr(hrMail string) (list []vacancyapimodels.VacancyView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: vacancystore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store vacancystore.Provider
}

func (i impl) Create(request vacancyapimodels.VacancyData) (id string, err error) {
	logger := log.WithField("job_id", request.JobID)
	rec := dbmodels.Vacancy{
		JobID:          request.JobID,
		Position:       request.Position,
		Department:     request.Department,
		VacancyCount:   request.VacancyCount,
		ExperienceFrom: request.ExperienceFrom,
		ExperienceTo:   request.ExperienceTo,
		Skills:         request.Skills,
		JobDescription: request.JobDescription,
		Hrs:            request.Hrs,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", errors.New("вакансия с таким идентификатором уже есть")
		}
		logger.WithError(err).Error("ошибка создания вакансии")
		return "", err
	}
	logger.WithField("rec_id", id).Info("создана вакансия")
	return id, nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		if !errors.As(err, &models.NotFoundError{}) {
			logger.WithError(err).Error("ошибка удаления вакансии")
		}
		return err
	}
	logger.Info("удалена вакансия")
	return nil
}

func (i impl) Get(id string) (vacancyapimodels.VacancyView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	if rec == nil {
		return vacancyapimodels.VacancyView{}, models.NewNotFoundError("вакансия")
	}
	return vacancyapimodels.VacancyConvert(*rec), nil
}

func (i impl) List() ([]vacancyapimodels.VacancyView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListByHr(hrMail string) ([]vacancyapimodels.VacancyView, error) {
	list, err := i.store.ListByHrMail(hrMail)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func convertList(list []dbmodels.Vacancy) []vacancyapimodels.VacancyView {
	result := make([]vacancyapimodels.VacancyView, 0, len(list))
	for _, rec := range list {
		result = append(result, vacancyapimodels.VacancyConvert(rec))
	}
	return result
}
