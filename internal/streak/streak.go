// Package streak computes consecutive-day streaks and freeze-day
// eligibility from the drive log. Everything here is a pure function over
// the full list: recomputation rather than incremental maintenance, so
// edits and deletes can never leave a counter out of sync.
package streak

import (
	"sort"
	"time"

	"github.com/balkashynov/roadlog/internal/models"
	"github.com/balkashynov/roadlog/internal/parser"
)

// FreezeDayMonthlyCap is the number of freeze days available per calendar
// month.
const FreezeDayMonthlyCap = 10

// uniqueDates collects the distinct, parseable calendar dates across the
// drive log. Duplicate same-day drives count once.
func uniqueDates(drives []models.Drive) []time.Time {
	seen := make(map[string]struct{}, len(drives))
	dates := make([]time.Time, 0, len(drives))
	for _, d := range drives {
		if _, ok := seen[d.Date]; ok {
			continue
		}
		day, err := parser.ParseDate(d.Date)
		if err != nil {
			continue
		}
		seen[d.Date] = struct{}{}
		dates = append(dates, day)
	}
	return dates
}

// midnight truncates t to its calendar day in UTC, matching the
// representation ParseDate produces.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CurrentStreak returns the consecutive-day streak ending today or
// yesterday. The walk starts at today and follows unique drive dates in
// descending order; the head accepts today or yesterday, and every date
// after it must be exactly the day before the last matched one. Anything
// else breaks the walk. If the most recent drive is older than yesterday
// the result is 0.
//
// Future-dated drives (clock skew, bad device date) are undefined input:
// they simply break the walk at the head rather than being special-cased.
func CurrentStreak(drives []models.Drive, today time.Time) int {
	dates := uniqueDates(drives)
	if len(dates) == 0 {
		return 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	streak := 0
	check := midnight(today)
	for _, day := range dates {
		// Dates are unique, so after the first match only check-1 can hit.
		if day.Equal(check) || day.Equal(check.AddDate(0, 0, -1)) {
			streak++
			check = day
			continue
		}
		break
	}
	return streak
}

// LongestStreak returns the longest consecutive-day run ever present in the
// drive log: 0 for an empty log, 1 for a single date.
func LongestStreak(drives []models.Drive) int {
	dates := uniqueDates(drives)
	if len(dates) == 0 {
		return 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest := 1
	run := 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Equal(dates[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// CanUseFreezeDay reports whether another freeze day is available this
// month.
func CanUseFreezeDay(freezeDaysThisMonth int) bool {
	return freezeDaysThisMonth < FreezeDayMonthlyCap
}

// ShouldResetMonthlyFreezeCounter reports whether the monthly freeze
// counter is stale: no reset recorded yet, or the recorded reset happened
// in a different calendar month or year than now.
func ShouldResetMonthlyFreezeCounter(lastReset string, now time.Time) bool {
	if lastReset == "" {
		return true
	}
	day, err := parser.ParseDate(lastReset)
	if err != nil {
		return true
	}
	return day.Month() != now.Month() || day.Year() != now.Year()
}

// ShouldSuggestFreezeDay reports whether the UI should offer a freeze day:
// at least two whole calendar days since the last drive, and a freeze day
// still available this month. The gap is measured at midnight boundaries,
// not in wall-clock hours.
func ShouldSuggestFreezeDay(lastDriveDate string, freezeDaysThisMonth int, now time.Time) bool {
	if lastDriveDate == "" {
		return false
	}
	last, err := parser.ParseDate(lastDriveDate)
	if err != nil {
		return false
	}
	gapDays := int(midnight(now).Sub(last).Hours() / 24)
	return gapDays >= 2 && CanUseFreezeDay(freezeDaysThisMonth)
}
