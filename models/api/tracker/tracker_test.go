package trackerapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTrackerFilterGetPeriod(t *testing.T) {
	t.Run(`конец периода включает весь день`, func(t *testing.T) {
		filter := TrackerFilter{StartDate: "2024-03-01", EndDate: "2024-03-10"}
		from, to, err := filter.GetPeriod()
		require.Nil(t, err)
		require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), from)

		endOfDay := time.Date(2024, 3, 10, 15, 45, 0, 0, time.UTC)
		require.True(t, endOfDay.Before(to) || endOfDay.Equal(to))
		require.True(t, to.Before(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)))
	})

	t.Run(`пустые границы не ограничивают выборку`, func(t *testing.T) {
		from, to, err := TrackerFilter{}.GetPeriod()
		require.Nil(t, err)
		require.True(t, from.IsZero())
		require.True(t, to.IsZero())
	})

	t.Run(`некорректная дата это ошибка валидации`, func(t *testing.T) {
		_, _, err := TrackerFilter{StartDate: "01-03-2024"}.GetPeriod()
		require.NotNil(t, err)
		require.NotNil(t, TrackerFilter{EndDate: "вчера"}.Validate())
	})
}
