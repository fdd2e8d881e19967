package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	trackerapimodels "hrms-backend/models/api/tracker"
	"hrms-backend/models"
)

func TestSummaryCounts(t *testing.T) {
	t.Run(`количества по статусам и полнота сводки`, func(t *testing.T) {
		rows := []trackerapimodels.TrackerRow{
			{ProgressStatus: models.StatusJoined},
			{ProgressStatus: models.StatusJoined},
			{ProgressStatus: models.StatusRejected},
			{ProgressStatus: models.StatusL1Interview},
		}
		counts := SummaryCounts(rows)
		require.Equal(t, 2, counts[models.StatusJoined])
		require.Equal(t, 1, counts[models.StatusRejected])
		require.Equal(t, 1, counts[models.StatusL1Interview])

		total := 0
		for _, count := range counts {
			total += count
		}
		require.Equal(t, len(rows), total)
	})

	t.Run(`пустой отчет дает пустую сводку`, func(t *testing.T) {
		counts := SummaryCounts(nil)
		require.Empty(t, counts)
	})
}

func TestExportRows(t *testing.T) {
	t.Run(`даты выгружаются в формате ДД/ММ/ГГГГ`, func(t *testing.T) {
		statusDate := time.Date(2024, 3, 7, 15, 30, 0, 0, time.UTC)
		entryDate := time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)
		rows := ExportRows([]trackerapimodels.TrackerRow{
			{
				HrName:         "Анна",
				CandidateName:  "Иван Петров",
				Position:       "Go Developer",
				ProgressStatus: models.StatusOfferReleased,
				StatusDate:     statusDate,
				EntryDate:      entryDate,
			},
		})
		require.Len(t, rows, 1)
		require.Equal(t, "Анна", rows[0].HrName)
		require.Equal(t, "Offer Released", rows[0].Status)
		require.Equal(t, "07/03/2024", rows[0].StatusDate)
		require.Equal(t, "21/01/2024", rows[0].EntryDate)
	})

	t.Run(`нулевая дата выгружается пустой строкой`, func(t *testing.T) {
		rows := ExportRows([]trackerapimodels.TrackerRow{
			{ProgressStatus: models.StatusBuffer},
		})
		require.Len(t, rows, 1)
		require.Equal(t, "", rows[0].StatusDate)
		require.Equal(t, "", rows[0].EntryDate)
	})
}
