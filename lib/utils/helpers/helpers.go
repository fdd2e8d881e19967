package helpers

import (
	"regexp"
	"time"
)

// тот же шаблон, что использует форма поиска: наличие "@" и доменной части
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func IsEmailFormat(value string) bool {
	return emailPattern.MatchString(value)
}

// FormatReportDate - дата для выгрузки отчета, ДД/ММ/ГГГГ.
// Нулевая дата выгружается пустой строкой, не "Invalid Date"
func FormatReportDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format("02/01/2006")
}
