// Package query filters and sorts store snapshots. Every filter is ANDed with
// the caller's unit scope.
package query

import (
	"strings"
	"time"

	"gym-maintenance/pkg/utils"
)

// matchesSearch reports whether needle occurs, case-insensitively, in any field.
// An empty needle matches everything.
func matchesSearch(needle string, fields ...string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// matchesExact is true when want is empty or one of its comma separated values equals got.
func matchesExact(want, got string) bool {
	if want == "" {
		return true
	}
	for _, v := range strings.Split(want, ",") {
		if strings.TrimSpace(v) == got {
			return true
		}
	}
	return false
}

// DateRange is an inclusive range of calendar days. A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange parses optional YYYY-MM-DD (or RFC3339) bounds.
func NewDateRange(from, to string) (DateRange, error) {
	var r DateRange
	if strings.TrimSpace(from) != "" {
		t, err := utils.ParseDate(from)
		if err != nil {
			return DateRange{}, err
		}
		r.From = t
	}
	if strings.TrimSpace(to) != "" {
		t, err := utils.ParseDate(to)
		if err != nil {
			return DateRange{}, err
		}
		r.To = t
	}
	return r, nil
}

// LastDays is the range covering the n days up to and including now.
func LastDays(now time.Time, n int) DateRange {
	today := utils.Day(now)
	return DateRange{From: today.AddDate(0, 0, -n), To: today}
}

func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Contains compares on the UTC calendar day of t, so both bounds are inclusive.
func (r DateRange) Contains(t time.Time) bool {
	day := utils.Day(t)
	if !r.From.IsZero() && day.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && day.After(r.To) {
		return false
	}
	return true
}
