package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	trackerapimodels "hrms-backend/models/api/tracker"
	"hrms-backend/models"
)

var trackerColumns = []struct {
	title string
	width float64
}{
	{"HR Name", 40},
	{"Candidate Name", 50},
	{"Position", 45},
	{"Status", 40},
	{"Status Date", 25},
	{"Entry Date", 25},
}

// GenerateTrackerReport - pdf версия отчета трекера: таблица строк
// плюс сводка по статусам
func GenerateTrackerReport(rows []trackerapimodels.ExportRow, counts map[models.CandidateStatus]int) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateTrackerReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "HR Data Tracker Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 10)
	for _, c := range trackerColumns {
		pdf.CellFormat(c.width, 8, c.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		values := []string{row.HrName, row.CandidateName, row.Position, row.Status, row.StatusDate, row.EntryDate}
		for idx, value := range values {
			pdf.CellFormat(trackerColumns[idx].width, 7, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, status := range models.CandidateStatuses {
		count, exist := counts[status]
		if !exist {
			continue
		}
		pdf.CellFormat(0, 6, fmt.Sprintf("%s: %d", status, count), "", 1, "L", false, 0, "")
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return buf.Bytes(), nil
}
