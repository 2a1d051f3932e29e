package view

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	longDateLayout  = "January 2, 2006 03:04 PM"
	inputDateLayout = "2006-01-02T15:04"
)

// FormatDate renders a wire timestamp in the long en-US form used across
// the pages. Unparseable or empty values come back verbatim so a bad
// backend date never blanks a row.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format(longDateLayout)
}

// FormatInputDate renders a wire timestamp as a datetime-local value for
// pre-filling edit forms.
func FormatInputDate(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return ""
	}
	return t.Local().Format(inputDateLayout)
}

// FormatPrice normalizes a string-encoded decimal to two fraction digits.
// Values decimal can't parse render as-is.
func FormatPrice(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.StringFixed(2)
}
