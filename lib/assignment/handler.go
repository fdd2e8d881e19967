package assignment

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	assignmentstore "hrms-backend/lib/assignment/store"
	"hrms-backend/config"
	"hrms-backend/db"
	"hrms-backend/lib/dupcheck"
	"hrms-backend/lib/smtp"
	initchecker "hrms-backend/lib/utils/init-checker"
	assignmentapimodels "hrms-backend/models/api/assignment"
	dbmodels "hrms-backend/models/db"
	"hrms-backend/models"
)

// Provider - передача кандидата рекрутеру. Передача это отдельная
// запись до создания Candidate: админ предлагает, рекрутер фиксирует.
// Таблицы назначений и кандидатов намеренно не сверяются автоматически
type Provider interface {
	Assign(payload assignmentapimodels.AssignmentData) (id string, err error)
	Search(filter assignmentapimodels.SearchFilter) (list []assignmentapimodels.AssignmentView, err error)
	ListByHr(hrMail string) (list []assignmentapimodels.AssignmentView, err error)
	ListAll() (list []assignmentapimodels.AssignmentView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		db:          db.DB,
		store:       assignmentstore.NewInstance(db.DB),
		dupCheck:    dupcheck.Instance,
		blockJoined: *config.Conf.Policy.AssignBlockJoined,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"dupCheck", instance.dupCheck,
	)
	Instance = instance
}

type impl struct {
	db          *gorm.DB
	store       assignmentstore.Provider
	dupCheck    dupcheck.Provider
	blockJoined bool
}

func (i impl) Assign(payload assignmentapimodels.AssignmentData) (id string, err error) {
	logger := log.WithField("candidate_email", payload.CandidateEmailID).
		WithField("hr_mail", payload.HrMail)
	state, err := i.dupCheck.CheckEmail(payload.CandidateEmailID)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки кандидата на дубликат")
		return "", err
	}
	if state != models.DupStateNotFound {
		if state != models.DupStateJoined || i.blockJoined {
			return "", models.NewDuplicateAssignmentError(state)
		}
	}
	exist, err := i.store.IsExist(payload.CandidateEmailID, "")
	if err != nil {
		logger.WithError(err).Error("ошибка проверки назначений")
		return "", err
	}
	if exist {
		return "", models.NewDuplicateAssignmentError("")
	}

	rec := dbmodels.Assignment{
		HrMail:           payload.HrMail,
		HrName:           payload.HrName,
		CandidateName:    payload.CandidateName,
		CandidateEmailID: payload.CandidateEmailID,
		Position:         payload.Position,
		ContactNumber:    payload.ContactNumber,
		Comments:         payload.Comments,
		Attachments:      payload.Attachments,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		// повторное назначение проскочившее мимо проверки гасится
		// уникальным индексом по почте кандидата
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", models.NewDuplicateAssignmentError("")
		}
		logger.WithError(err).Error("ошибка создания назначения")
		return "", err
	}
	logger.WithField("rec_id", id).Info("кандидат передан рекрутеру")
	i.notifyHr(rec)
	return id, nil
}

func (i impl) Search(filter assignmentapimodels.SearchFilter) ([]assignmentapimodels.AssignmentView, error) {
	list, err := i.store.Search(filter.CandidateEmail, filter.ContactNumber)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListByHr(hrMail string) ([]assignmentapimodels.AssignmentView, error) {
	list, err := i.store.ListByHrMail(hrMail)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListAll() ([]assignmentapimodels.AssignmentView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		if !errors.As(err, &models.NotFoundError{}) {
			logger.WithError(err).Error("ошибка удаления назначения")
		}
		return err
	}
	logger.Info("удалено назначение")
	return nil
}

// уведомление рекрутеру, сбой отправки назначение не откатывает
func (i impl) notifyHr(rec dbmodels.Assignment) {
	subject := "Вам передан кандидат"
	message := fmt.Sprintf("Кандидат: %s (%s)\r\nПозиция: %s\r\nКомментарий: %s",
		rec.CandidateName, rec.CandidateEmailID, rec.Position, rec.Comments)
	if err := smtp.Instance.SendEMail(config.Conf.Smtp.User, rec.HrMail, message, subject); err != nil {
		log.WithError(err).
			WithField("hr_mail", rec.HrMail).
			Error("ошибка отправки уведомления рекрутеру")
	}
}

func convertList(list []dbmodels.Assignment) []assignmentapimodels.AssignmentView {
	result := make([]assignmentapimodels.AssignmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, assignmentapimodels.AssignmentConvert(rec))
	}
	return result
}
