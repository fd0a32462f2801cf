package util

import (
	"testing"
	"time"
)

func TestPreviousMonth_SameYear(t *testing.T) {
	tests := []struct {
		year      int
		month     int
		wantYear  int
		wantMonth int
	}{
		{2026, 6, 2026, 5},   // June -> May
		{2026, 12, 2026, 11}, // Dec -> Nov
		{2026, 2, 2026, 1},   // Feb -> Jan
	}

	for _, tt := range tests {
		gotYear, gotMonth := PreviousMonth(tt.year, tt.month)
		if gotYear != tt.wantYear || gotMonth != tt.wantMonth {
			t.Errorf("PreviousMonth(%d, %d) = (%d, %d), want (%d, %d)",
				tt.year, tt.month, gotYear, gotMonth, tt.wantYear, tt.wantMonth)
		}
	}
}

func TestPreviousMonth_YearBoundary(t *testing.T) {
	gotYear, gotMonth := PreviousMonth(2026, 1)
	if gotYear != 2025 || gotMonth != 12 {
		t.Errorf("PreviousMonth(2026, 1) = (%d, %d), want (2025, 12)", gotYear, gotMonth)
	}
}

func TestMonthEnd(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  string
	}{
		{"leap february", 2024, time.February, "2024-02-29"},
		{"common february", 2023, time.February, "2023-02-28"},
		{"thirty day month", 2026, time.April, "2026-04-30"},
		{"december", 2026, time.December, "2026-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthEnd(tt.year, tt.month).Format("2006-01-02")
			if got != tt.want {
				t.Errorf("MonthEnd(%d, %d) = %s, want %s", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestClampDay(t *testing.T) {
	tests := []struct {
		year      int
		month     time.Month
		targetDay int
		want      string
	}{
		{2026, time.January, 31, "2026-01-31"},
		{2026, time.February, 31, "2026-02-28"},
		{2024, time.February, 30, "2024-02-29"},
		{2026, time.April, 31, "2026-04-30"},
		{2026, time.March, 15, "2026-03-15"},
	}

	for _, tt := range tests {
		got := ClampDay(tt.year, tt.month, tt.targetDay).Format("2006-01-02")
		if got != tt.want {
			t.Errorf("ClampDay(%d, %d, %d) = %s, want %s", tt.year, tt.month, tt.targetDay, got, tt.want)
		}
	}
}

func TestTrailingMonths_CrossesYear(t *testing.T) {
	now := time.Date(2026, time.February, 14, 10, 0, 0, 0, time.UTC)

	months := TrailingMonths(now, 6)
	if len(months) != 6 {
		t.Fatalf("Expected 6 months, got %d", len(months))
	}

	wantPrefixes := []string{"2025-09", "2025-10", "2025-11", "2025-12", "2026-01", "2026-02"}
	wantLabels := []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}
	for i, m := range months {
		if m.Prefix != wantPrefixes[i] {
			t.Errorf("months[%d].Prefix = %s, want %s", i, m.Prefix, wantPrefixes[i])
		}
		if m.Label != wantLabels[i] {
			t.Errorf("months[%d].Label = %s, want %s", i, m.Label, wantLabels[i])
		}
	}

	years := DistinctYears(months)
	if len(years) != 2 || years[0] != 2025 || years[1] != 2026 {
		t.Errorf("DistinctYears = %v, want [2025 2026]", years)
	}
}

func TestTrailingMonths_SingleYear(t *testing.T) {
	now := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

	months := TrailingMonths(now, 6)
	if months[0].Month != 5 || months[5].Month != 10 {
		t.Errorf("Expected May..Oct, got %d..%d", months[0].Month, months[5].Month)
	}
	if years := DistinctYears(months); len(years) != 1 {
		t.Errorf("Expected a single year, got %v", years)
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2026, time.March, 3, 23, 59, 59, 0, loc)

	got := StartOfDay(in)
	if got.Hour() != 0 || got.Day() != 3 || got.Location() != loc {
		t.Errorf("StartOfDay(%v) = %v", in, got)
	}
}
