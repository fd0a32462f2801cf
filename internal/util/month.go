package util

import (
	"fmt"
	"time"
)

// MonthRef identifies a calendar month in a trailing window
type MonthRef struct {
	Year   int
	Month  int
	Label  string // "Jan", "Feb", ...
	Prefix string // "2026-01", matches the date prefix of YYYY-MM-DD strings
}

// PreviousMonth returns the year and month for the previous month
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// MonthStart returns the first day of the month at midnight UTC
func MonthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of the month at midnight UTC.
// Day 0 of the following month normalizes to the last real day, so February
// and 30-day months need no special casing.
func MonthEnd(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}

// ClampDay returns the date for a target day in a given month,
// handling months with fewer days (e.g., day 31 in February returns Feb 28/29)
func ClampDay(year int, month time.Month, targetDay int) time.Time {
	lastDay := MonthEnd(year, month).Day()

	actualDay := targetDay
	if actualDay > lastDay {
		actualDay = lastDay
	}

	return time.Date(year, month, actualDay, 0, 0, 0, 0, time.UTC)
}

// TrailingMonths returns n months ending with the month of now, oldest first
func TrailingMonths(now time.Time, n int) []MonthRef {
	if n <= 0 {
		return nil
	}

	months := make([]MonthRef, n)
	year, month := now.Year(), int(now.Month())
	for i := n - 1; i >= 0; i-- {
		months[i] = MonthRef{
			Year:   year,
			Month:  month,
			Label:  time.Month(month).String()[:3],
			Prefix: fmt.Sprintf("%04d-%02d", year, month),
		}
		year, month = PreviousMonth(year, month)
	}
	return months
}

// DistinctYears returns the years touched by the given months, in first-seen order
func DistinctYears(months []MonthRef) []int {
	seen := make(map[int]bool, 2)
	years := make([]int, 0, 2)
	for _, m := range months {
		if !seen[m.Year] {
			seen[m.Year] = true
			years = append(years, m.Year)
		}
	}
	return years
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
