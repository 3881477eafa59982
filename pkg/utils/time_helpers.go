package utils

import (
	"strings"
	"time"
)

const (
	// DateLayout is the ISO calendar date used by every date-only field.
	DateLayout = "2006-01-02"
	// DisplayDateLayout is the pt-BR date shown in reports.
	DisplayDateLayout = "02/01/2006"
)

// ParseDate accepts YYYY-MM-DD or a full RFC3339 timestamp and returns
// the calendar day at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FormatDisplayDate renders an ISO date or timestamp as dd/mm/yyyy.
// Unparseable input is returned unchanged.
func FormatDisplayDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(DisplayDateLayout)
}

// SameMonth reports whether a and b fall in the same calendar month (UTC).
func SameMonth(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month()
}
