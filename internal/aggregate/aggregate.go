// Package aggregate re-derives every computed field of the document from
// the drive log. All mutating transitions funnel through Recompute so there
// is exactly one place where totals and streaks are calculated.
package aggregate

import (
	"time"

	"github.com/balkashynov/roadlog/internal/models"
	"github.com/balkashynov/roadlog/internal/parser"
	"github.com/balkashynov/roadlog/internal/streak"
)

// Recompute replaces the derived fields of doc with values computed from
// the full drive log: completed day/night hours, current streak, longest
// streak and last drive date. Longest is retained as a high-water mark and
// never decreases, even when the freshly computed value is smaller because
// drives were deleted.
func Recompute(doc *models.Document, now time.Time) {
	var dayMinutes, nightMinutes int
	for _, d := range doc.Drives {
		if d.IsNightDrive {
			nightMinutes += d.DurationMinutes
		} else {
			dayMinutes += d.DurationMinutes
		}
	}
	doc.User.CompletedDayHours = float64(dayMinutes) / 60
	doc.User.CompletedNightHours = float64(nightMinutes) / 60

	doc.Streaks.Current = streak.CurrentStreak(doc.Drives, now)
	if fresh := streak.LongestStreak(doc.Drives); fresh > doc.Streaks.Longest {
		doc.Streaks.Longest = fresh
	}
	doc.Streaks.LastDriveDate = lastDriveDate(doc.Drives)
}

// lastDriveDate returns the most recent parseable drive date, or "" for an
// empty log.
func lastDriveDate(drives []models.Drive) string {
	var last time.Time
	var found bool
	for _, d := range drives {
		day, err := parser.ParseDate(d.Date)
		if err != nil {
			continue
		}
		if !found || day.After(last) {
			last = day
			found = true
		}
	}
	if !found {
		return ""
	}
	return parser.FormatDate(last)
}
