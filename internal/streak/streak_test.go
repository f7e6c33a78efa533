package streak

import (
	"testing"
	"time"

	"github.com/balkashynov/roadlog/internal/models"
)

func drivesOn(dates ...string) []models.Drive {
	drives := make([]models.Drive, 0, len(dates))
	for i, d := range dates {
		drives = append(drives, models.Drive{
			ID:              string(rune('a' + i)),
			Date:            d,
			StartTime:       "10:00",
			EndTime:         "11:00",
			DurationMinutes: 60,
		})
	}
	return drives
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		today string
		want  int
	}{
		{"empty log", nil, "2024-01-03", 0},
		{"three days ending today", []string{"2024-01-01", "2024-01-02", "2024-01-03"}, "2024-01-03", 3},
		{"three days ending yesterday", []string{"2024-01-01", "2024-01-02", "2024-01-03"}, "2024-01-04", 3},
		{"gap from most recent drive", []string{"2024-01-01", "2024-01-02", "2024-01-03"}, "2024-01-05", 0},
		{"single drive today", []string{"2024-01-03"}, "2024-01-03", 1},
		{"duplicate same-day drives count once", []string{"2024-01-02", "2024-01-02", "2024-01-03"}, "2024-01-03", 2},
		{"unordered input", []string{"2024-01-03", "2024-01-01", "2024-01-02"}, "2024-01-03", 3},
		{"gap in the middle stops the walk", []string{"2024-01-01", "2024-01-03", "2024-01-04"}, "2024-01-04", 2},
		{"every other day never chains", []string{"2024-01-01", "2024-01-03", "2024-01-05"}, "2024-01-05", 1},
		{"crosses a month boundary", []string{"2024-01-31", "2024-02-01", "2024-02-02"}, "2024-02-02", 3},
		{"crosses a leap day", []string{"2024-02-28", "2024-02-29", "2024-03-01"}, "2024-03-01", 3},
		{"future-dated drive breaks at the head", []string{"2024-01-10"}, "2024-01-03", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreak(drivesOn(tt.dates...), day(tt.today))
			if got != tt.want {
				t.Errorf("CurrentStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreakIsPure(t *testing.T) {
	drives := drivesOn("2024-01-01", "2024-01-02", "2024-01-03")
	today := day("2024-01-03")
	first := CurrentStreak(drives, today)
	second := CurrentStreak(drives, today)
	if first != second {
		t.Errorf("repeated calls disagree: %d then %d", first, second)
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty log", nil, 0},
		{"single date", []string{"2024-01-05"}, 1},
		{"two runs, second longer", []string{"2024-01-01", "2024-01-02", "2024-01-10", "2024-01-11", "2024-01-12"}, 3},
		{"two runs, first longer", []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-02-10", "2024-02-11"}, 3},
		{"duplicates do not inflate", []string{"2024-01-01", "2024-01-01", "2024-01-02"}, 2},
		{"no consecutive days", []string{"2024-01-01", "2024-01-03", "2024-01-05"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LongestStreak(drivesOn(tt.dates...))
			if got != tt.want {
				t.Errorf("LongestStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCanUseFreezeDay(t *testing.T) {
	if !CanUseFreezeDay(0) {
		t.Error("fresh month should allow a freeze day")
	}
	if !CanUseFreezeDay(FreezeDayMonthlyCap - 1) {
		t.Error("one below the cap should allow a freeze day")
	}
	if CanUseFreezeDay(FreezeDayMonthlyCap) {
		t.Error("at the cap no freeze day should be available")
	}
}

func TestShouldResetMonthlyFreezeCounter(t *testing.T) {
	now := day("2024-03-15")

	if !ShouldResetMonthlyFreezeCounter("", now) {
		t.Error("missing reset date should trigger a reset")
	}
	if !ShouldResetMonthlyFreezeCounter("2024-02-28", now) {
		t.Error("previous month should trigger a reset")
	}
	if !ShouldResetMonthlyFreezeCounter("2023-03-15", now) {
		t.Error("same month of a previous year should trigger a reset")
	}
	if ShouldResetMonthlyFreezeCounter("2024-03-01", now) {
		t.Error("same month and year should not trigger a reset")
	}
	if !ShouldResetMonthlyFreezeCounter("not-a-date", now) {
		t.Error("unparseable reset date should trigger a reset")
	}
}

func TestShouldSuggestFreezeDay(t *testing.T) {
	now := day("2024-03-10")

	if ShouldSuggestFreezeDay("", 0, now) {
		t.Error("no drives yet, nothing to preserve")
	}
	if ShouldSuggestFreezeDay("2024-03-09", 0, now) {
		t.Error("one-day gap is still a live streak")
	}
	if !ShouldSuggestFreezeDay("2024-03-08", 0, now) {
		t.Error("two-day gap with available freeze days should suggest")
	}
	if ShouldSuggestFreezeDay("2024-03-01", FreezeDayMonthlyCap, now) {
		t.Error("exhausted monthly cap should suppress the suggestion")
	}
}
