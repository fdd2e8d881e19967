package tracker

import (
	"bytes"

	candidatestore "hrms-backend/lib/candidate/store"
	"hrms-backend/db"
	pdfexport "hrms-backend/lib/export/pdf"
	xlsexport "hrms-backend/lib/export/xls"
	initchecker "hrms-backend/lib/utils/init-checker"
	trackerapimodels "hrms-backend/models/api/tracker"
	"hrms-backend/models"
)

// Provider - сводный трекер по кандидатам. Фильтры объединяются по И,
// отсутствующий фильтр не ограничивает выборку, период по status_date
// включительный с обеих сторон
type Provider interface {
	FilteredTracker(filter trackerapimodels.TrackerFilter) (rows []trackerapimodels.TrackerRow, err error)
	ExportXls(filter trackerapimodels.TrackerFilter) (*bytes.Buffer, error)
	ExportPdf(filter trackerapimodels.TrackerFilter) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		candidateStore: candidatestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"candidateStore", instance.candidateStore,
	)
	Instance = instance
}

type impl struct {
	candidateStore candidatestore.Provider
}

func (i impl) FilteredTracker(filter trackerapimodels.TrackerFilter) ([]trackerapimodels.TrackerRow, error) {
	from, to, err := filter.GetPeriod()
	if err != nil {
		return nil, err
	}
	list, err := i.candidateStore.ListForTracker(filter.Status, filter.HrName, from, to)
	if err != nil {
		return nil, err
	}
	rows := make([]trackerapimodels.TrackerRow, 0, len(list))
	for _, rec := range list {
		rows = append(rows, trackerapimodels.TrackerRowConvert(rec))
	}
	return rows, nil
}

func (i impl) ExportXls(filter trackerapimodels.TrackerFilter) (*bytes.Buffer, error) {
	rows, err := i.FilteredTracker(filter)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportTrackerReport(ExportRows(rows))
}

func (i impl) ExportPdf(filter trackerapimodels.TrackerFilter) ([]byte, error) {
	rows, err := i.FilteredTracker(filter)
	if err != nil {
		return nil, err
	}
	return pdfexport.GenerateTrackerReport(ExportRows(rows), SummaryCounts(rows))
}

// SummaryCounts - количество кандидатов по статусам. Чистая функция от
// своего входа: используется и для карточек сводки, и для диаграммы
func SummaryCounts(rows []trackerapimodels.TrackerRow) map[models.CandidateStatus]int {
	counts := map[models.CandidateStatus]int{}
	for _, row := range rows {
		counts[row.ProgressStatus]++
	}
	return counts
}

// ExportRows - плоские записи для выгрузки, чистая функция
func ExportRows(rows []trackerapimodels.TrackerRow) []trackerapimodels.ExportRow {
	result := make([]trackerapimodels.ExportRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, trackerapimodels.ExportRowConvert(row))
	}
	return result
}
