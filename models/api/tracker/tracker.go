package trackerapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hrms-backend/lib/utils/helpers"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type TrackerFilter struct {
	Status    models.CandidateStatus `json:"status" query:"status"`        // Фильтр по статусу
	HrName    string                 `json:"hr_name" query:"hr_name"`      // Фильтр по рекрутеру
	StartDate string                 `json:"startDate" query:"start_date"` // Начало периода ГГГГ-ММ-ДД (по дате статуса)
	EndDate   string                 `json:"endDate" query:"end_date"`     // Конец периода ГГГГ-ММ-ДД, включительно
}

func (f TrackerFilter) Validate() error {
	if f.Status != "" && !f.Status.IsValid() {
		return errors.New("неизвестный статус")
	}
	if _, _, err := f.GetPeriod(); err != nil {
		return errors.New("некорректный формат периода")
	}
	return nil
}

// GetPeriod - границы периода по status_date. Обе границы включительные,
// конец расширяется до конца суток
func (f TrackerFilter) GetPeriod() (from, to time.Time, err error) {
	if f.StartDate != "" {
		from, err = time.Parse("2006-01-02", f.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if f.EndDate != "" {
		to, err = time.Parse("2006-01-02", f.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

type TrackerRow struct {
	HrName         string                 `json:"HR_name"`         // Имя рекрутера
	CandidateName  string                 `json:"candidate_name"`  // ФИО кандидата
	Position       string                 `json:"position"`        // Позиция
	ProgressStatus models.CandidateStatus `json:"progress_status"` // Статус
	StatusDate     time.Time              `json:"status_date"`     // Дата статуса
	EntryDate      time.Time              `json:"entry_date"`      // Дата добавления
}

func TrackerRowConvert(rec dbmodels.Candidate) TrackerRow {
	return TrackerRow{
		HrName:         rec.HrName,
		CandidateName:  rec.CandidateName,
		Position:       rec.Position,
		ProgressStatus: rec.ProgressStatus,
		StatusDate:     rec.StatusDate,
		EntryDate:      rec.EntryDate,
	}
}

// ExportRow - плоская запись для выгрузки отчета.
// Пустая дата выгружается пустой строкой
type ExportRow struct {
	HrName        string `json:"HR Name"`
	CandidateName string `json:"Candidate Name"`
	Position      string `json:"Position"`
	Status        string `json:"Status"`
	StatusDate    string `json:"Status Date"`
	EntryDate     string `json:"Entry Date"`
}

func ExportRowConvert(row TrackerRow) ExportRow {
	return ExportRow{
		HrName:        row.HrName,
		CandidateName: row.CandidateName,
		Position:      row.Position,
		Status:        string(row.ProgressStatus),
		StatusDate:    helpers.FormatReportDate(row.StatusDate),
		EntryDate:     helpers.FormatReportDate(row.EntryDate),
	}
}
