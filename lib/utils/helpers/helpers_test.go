package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsEmailFormat(t *testing.T) {
	t.Run(`корректные адреса`, func(t *testing.T) {
		require.True(t, IsEmailFormat("user@example.com"))
		require.True(t, IsEmailFormat("ivan.petrov+hr@mail.co"))
	})

	t.Run(`некорректные адреса`, func(t *testing.T) {
		require.False(t, IsEmailFormat(""))
		require.False(t, IsEmailFormat("user"))
		require.False(t, IsEmailFormat("user@"))
		require.False(t, IsEmailFormat("user@domain"))
		require.False(t, IsEmailFormat("user example@mail.com"))
	})
}

func TestFormatReportDate(t *testing.T) {
	require.Equal(t, "05/02/2024", FormatReportDate(time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)))
	require.Equal(t, "", FormatReportDate(time.Time{}))
}
