package utils

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const dateLayout = "02/01/2006"

var frenchPrinter = message.NewPrinter(language.French)

// FormatAmount formats an amount the way the portal displays money:
// French digit grouping and at most three fraction digits.
func FormatAmount(v float64) string {
	return frenchPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatDate formats t as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a dd/mm/yyyy date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}
