package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	trackerapimodels "hrms-backend/models/api/tracker"
)

type Provider interface {
	ExportTrackerReport(rows []trackerapimodels.ExportRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// колонки контракта выгрузки, порядок фиксированный
var trackerHeaders = []string{"HR Name", "Candidate Name", "Position", "Status", "Status Date", "Entry Date"}

func (i impl) ExportTrackerReport(rows []trackerapimodels.ExportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, trackerHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(rows) != 0 {
		row, err = writeTrackerData(f, sheet, rows, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Tracker Report")
	return f.WriteToBuffer()
}

func writeTrackerData(f *excelize.File, sheet string, rows []trackerapimodels.ExportRow, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(trackerHeaders), len(rows)+1); err != nil {
		return row, err
	}
	for _, item := range rows {
		row++
		// "HR Name"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.HrName); err != nil {
			return row, err
		}

		// "Candidate Name"
		col++
		if err := writeColumn(f, sheet, col, row, item.CandidateName); err != nil {
			return row, err
		}

		// "Position"
		col++
		if err := writeColumn(f, sheet, col, row, item.Position); err != nil {
			return row, err
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status); err != nil {
			return row, err
		}

		// "Status Date"
		col++
		if err := writeColumn(f, sheet, col, row, item.StatusDate); err != nil {
			return row, err
		}

		// "Entry Date"
		col++
		if err := writeColumn(f, sheet, col, row, item.EntryDate); err != nil {
			return row, err
		}
	}
	return row, nil
}
