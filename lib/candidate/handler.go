package candidate

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	activeliststore "hrms-backend/lib/activelist/store"
	candidatestore "hrms-backend/lib/candidate/store"
	"hrms-backend/db"
	"hrms-backend/lib/dupcheck"
	rejectedstore "hrms-backend/lib/rejected/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	candidateapimodels "hrms-backend/models/api/candidate"
	dbmodels "hrms-backend/models/db"
	"hrms-backend/models"
)

// Provider - движок жизненного цикла кандидата. Единственный писатель
// таблиц candidates/active_lists/rejecteds: вся синхронизация зеркал
// проходит через applyTransition внутри одной транзакции
type Provider interface {
	Create(data candidateapimodels.CandidateData) (id string, err error)
	Update(id string, data candidateapimodels.CandidateData) error
	UpdateByEmail(email string, data candidateapimodels.CandidateData) error
	Delete(id string) error
	GetByID(id string) (candidateapimodels.CandidateView, error)
	ListByHrMail(hrMail string) (list []candidateapimodels.CandidateView, err error)
	List() (list []candidateapimodels.CandidateView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		db:       db.DB,
		dupCheck: dupcheck.Instance,
		store:    candidatestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"dupCheck", instance.dupCheck,
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	db       *gorm.DB
	dupCheck dupcheck.Provider
	store    candidatestore.Provider
}

func (i impl) Create(data candidateapimodels.CandidateData) (id string, err error) {
	logger := log.WithField("candidate_email", data.CandidateEmailID)
	status := data.ProgressStatus
	if status == "" {
		status = models.StatusApplicationReceived
	}
	state, err := i.dupCheck.CheckEmail(data.CandidateEmailID)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки кандидата на дубликат")
		return "", err
	}
	if state != models.DupStateNotFound {
		return "", models.NewDuplicateCandidateError(state)
	}

	entryDate, _ := data.GetEntryDate()
	if entryDate.IsZero() {
		entryDate = time.Now()
	}
	statusDate, _ := data.GetStatusDate()
	if statusDate.IsZero() {
		statusDate = time.Now()
	}
	rec := dbmodels.Candidate{
		CandidateName:    data.CandidateName,
		CandidateEmailID: data.CandidateEmailID,
		ContactNumber:    data.ContactNumber,
		Position:         data.Position,
		Experience:       data.Experience,
		EntryDate:        entryDate,
		StatusDate:       statusDate,
		ProgressStatus:   status,
		Attachments:      data.Attachments,
		Comments:         data.Comments,
		HrName:           data.HrName,
		HrMail:           data.HrMail,
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		id, err = candidatestore.NewInstance(tx).Create(rec)
		if err != nil {
			return err
		}
		rec.ID = id
		if !status.IsTerminal() {
			return activeliststore.NewInstance(tx).Upsert(mirrorFromCandidate(rec))
		}
		return nil
	})
	if err != nil {
		// гонка двух параллельных вставок: проверка пройдена обеими,
		// вторую вставку останавливает уникальный индекс
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			state, checkErr := i.dupCheck.CheckEmail(data.CandidateEmailID)
			if checkErr != nil {
				state = models.DupStateInActiveList
			}
			return "", models.NewDuplicateCandidateError(state)
		}
		logger.WithError(err).Error("ошибка создания кандидата")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		WithField("progress_status", status).
		Info("создан кандидат")
	return id, nil
}

func (i impl) Update(id string, data candidateapimodels.CandidateData) error {
	logger := log.WithField("rec_id", id)
	err := i.db.Transaction(func(tx *gorm.DB) error {
		rec, err := candidatestore.NewInstance(tx).GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return models.NewNotFoundError("кандидат")
		}
		return applyTransition(tx, *rec, data)
	})
	if err != nil {
		if !errors.As(err, &models.NotFoundError{}) {
			logger.WithError(err).Error("ошибка обновления кандидата")
		}
		return err
	}
	logger.Info("обновлен кандидат")
	return nil
}

func (i impl) UpdateByEmail(email string, data candidateapimodels.CandidateData) error {
	rec, err := i.store.GetByEmail(email)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("кандидат")
	}
	return i.Update(rec.ID, data)
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.db.Transaction(func(tx *gorm.DB) error {
		rec, err := candidatestore.NewInstance(tx).GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return models.NewNotFoundError("кандидат")
		}
		if err = candidatestore.NewInstance(tx).Delete(id); err != nil {
			return err
		}
		// снимки отказов при удалении не трогаем, это аудит
		return activeliststore.NewInstance(tx).DeleteByEmail(rec.CandidateEmailID)
	})
	if err != nil {
		if !errors.As(err, &models.NotFoundError{}) {
			logger.WithError(err).Error("ошибка удаления кандидата")
		}
		return err
	}
	logger.Info("удален кандидат")
	return nil
}

func (i impl) GetByID(id string) (candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, models.NewNotFoundError("кандидат")
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) ListByHrMail(hrMail string) ([]candidateapimodels.CandidateView, error) {
	list, err := i.store.ListByHrMail(hrMail)
	if err != nil {
		return nil, err
	}
	result := make([]candidateapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.CandidateConvert(rec))
	}
	return result, nil
}

func (i impl) List() ([]candidateapimodels.CandidateView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]candidateapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.CandidateConvert(rec))
	}
	return result, nil
}

// applyTransition - единственная точка записи всех трех таблиц
func applyTransition(tx *gorm.DB, rec dbmodels.Candidate, data candidateapimodels.CandidateData) error {
	plan := PlanTransition(rec.ProgressStatus, data.ProgressStatus)

	updMap := map[string]interface{}{}
	merged := mergePatch(&rec, data, updMap)
	if plan.TouchStatusDate {
		now := time.Now()
		merged.ProgressStatus = data.ProgressStatus
		merged.StatusDate = now
		updMap["progress_status"] = data.ProgressStatus
		updMap["status_date"] = now
	}
	if err := candidatestore.NewInstance(tx).Update(rec.ID, updMap); err != nil {
		return err
	}
	if plan.SnapshotReject {
		snapshot := dbmodels.RejectedEntry{
			CandidateID:      merged.ID,
			CandidateName:    merged.CandidateName,
			CandidateEmailID: merged.CandidateEmailID,
			ContactNumber:    merged.ContactNumber,
			Position:         merged.Position,
			EntryDate:        merged.EntryDate,
			StatusDate:       merged.StatusDate,
			ProgressStatus:   merged.ProgressStatus,
			RejectionReason:  data.RejectionReason,
			HrName:           merged.HrName,
			HrMail:           merged.HrMail,
		}
		if _, err := rejectedstore.NewInstance(tx).Create(snapshot); err != nil {
			return err
		}
	}
	if plan.RemoveMirror {
		return activeliststore.NewInstance(tx).DeleteByEmail(merged.CandidateEmailID)
	}
	if plan.UpsertMirror {
		return activeliststore.NewInstance(tx).Upsert(mirrorFromCandidate(merged))
	}
	return nil
}

// mergePatch - непустые поля запроса поверх текущей записи,
// попутно наполняет updMap для store
func mergePatch(rec *dbmodels.Candidate, data candidateapimodels.CandidateData, updMap map[string]interface{}) dbmodels.Candidate {
	merged := *rec
	if data.CandidateName != "" {
		merged.CandidateName = data.CandidateName
		updMap["candidate_name"] = data.CandidateName
	}
	if data.ContactNumber != "" {
		merged.ContactNumber = data.ContactNumber
		updMap["contact_number"] = data.ContactNumber
	}
	if data.Position != "" {
		merged.Position = data.Position
		updMap["position"] = data.Position
	}
	if data.Experience != "" {
		merged.Experience = data.Experience
		updMap["experience"] = data.Experience
	}
	if data.Comments != "" {
		merged.Comments = data.Comments
		updMap["comments"] = data.Comments
	}
	if data.Attachments != "" {
		merged.Attachments = data.Attachments
		updMap["attachments"] = data.Attachments
	}
	if data.HrName != "" {
		merged.HrName = data.HrName
		updMap["hr_name"] = data.HrName
	}
	if data.HrMail != "" {
		merged.HrMail = data.HrMail
		updMap["hr_mail"] = data.HrMail
	}
	if entryDate, err := data.GetEntryDate(); err == nil && !entryDate.IsZero() {
		merged.EntryDate = entryDate
		updMap["entry_date"] = entryDate
	}
	return merged
}

func mirrorFromCandidate(rec dbmodels.Candidate) dbmodels.ActiveListEntry {
	return dbmodels.ActiveListEntry{
		CandidateID:      rec.ID,
		CandidateName:    rec.CandidateName,
		CandidateEmailID: rec.CandidateEmailID,
		ContactNumber:    rec.ContactNumber,
		Position:         rec.Position,
		EntryDate:        rec.EntryDate,
		StatusDate:       rec.StatusDate,
		ProgressStatus:   rec.ProgressStatus,
		HrName:           rec.HrName,
		HrMail:           rec.HrMail,
	}
}
