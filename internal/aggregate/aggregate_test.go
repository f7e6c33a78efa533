package aggregate

import (
	"testing"
	"time"

	"github.com/balkashynov/roadlog/internal/models"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRecomputeHourTotals(t *testing.T) {
	doc := models.DefaultDocument()
	doc.Drives = []models.Drive{
		{ID: "1", Date: "2024-01-01", StartTime: "10:00", EndTime: "11:30", DurationMinutes: 90},
		{ID: "2", Date: "2024-01-02", StartTime: "21:00", EndTime: "22:00", DurationMinutes: 60, IsNightDrive: true},
		{ID: "3", Date: "2024-01-02", StartTime: "12:00", EndTime: "12:45", DurationMinutes: 45},
	}

	Recompute(&doc, day("2024-01-02"))

	if doc.User.CompletedDayHours != 2.25 {
		t.Errorf("CompletedDayHours = %v, want 2.25", doc.User.CompletedDayHours)
	}
	if doc.User.CompletedNightHours != 1.0 {
		t.Errorf("CompletedNightHours = %v, want 1.0", doc.User.CompletedNightHours)
	}
	if doc.Streaks.Current != 2 {
		t.Errorf("Current = %d, want 2", doc.Streaks.Current)
	}
	if doc.Streaks.LastDriveDate != "2024-01-02" {
		t.Errorf("LastDriveDate = %q, want 2024-01-02", doc.Streaks.LastDriveDate)
	}
}

func TestRecomputeAddThenDeleteRestoresTotals(t *testing.T) {
	doc := models.DefaultDocument()
	doc.Drives = []models.Drive{
		{ID: "1", Date: "2024-01-01", StartTime: "10:00", EndTime: "11:00", DurationMinutes: 60},
	}
	now := day("2024-01-01")
	Recompute(&doc, now)
	before := doc.User.CompletedDayHours

	doc.Drives = append(doc.Drives, models.Drive{
		ID: "2", Date: "2024-01-01", StartTime: "14:00", EndTime: "15:30", DurationMinutes: 90,
	})
	Recompute(&doc, now)
	if got := doc.User.CompletedDayHours; got != before+1.5 {
		t.Errorf("after add CompletedDayHours = %v, want %v", got, before+1.5)
	}

	doc.Drives = doc.Drives[:1]
	Recompute(&doc, now)
	if got := doc.User.CompletedDayHours; got != before {
		t.Errorf("after delete CompletedDayHours = %v, want %v", got, before)
	}
}

func TestRecomputeLongestIsHighWaterMark(t *testing.T) {
	doc := models.DefaultDocument()
	doc.Drives = []models.Drive{
		{ID: "1", Date: "2024-01-01", DurationMinutes: 30},
		{ID: "2", Date: "2024-01-02", DurationMinutes: 30},
		{ID: "3", Date: "2024-01-03", DurationMinutes: 30},
	}
	Recompute(&doc, day("2024-01-03"))
	if doc.Streaks.Longest != 3 {
		t.Fatalf("Longest = %d, want 3", doc.Streaks.Longest)
	}

	// Deleting drives must not shrink the high-water mark.
	doc.Drives = doc.Drives[:1]
	Recompute(&doc, day("2024-01-03"))
	if doc.Streaks.Longest != 3 {
		t.Errorf("Longest after delete = %d, want 3", doc.Streaks.Longest)
	}
	if doc.Streaks.Current != 0 {
		t.Errorf("Current after delete = %d, want 0", doc.Streaks.Current)
	}
}

func TestRecomputeEmptyLog(t *testing.T) {
	doc := models.DefaultDocument()
	Recompute(&doc, day("2024-01-01"))

	if doc.User.CompletedDayHours != 0 || doc.User.CompletedNightHours != 0 {
		t.Errorf("empty log should give zero totals, got %v day %v night",
			doc.User.CompletedDayHours, doc.User.CompletedNightHours)
	}
	if doc.Streaks.Current != 0 || doc.Streaks.Longest != 0 {
		t.Errorf("empty log should give zero streaks, got current=%d longest=%d",
			doc.Streaks.Current, doc.Streaks.Longest)
	}
	if doc.Streaks.LastDriveDate != "" {
		t.Errorf("empty log LastDriveDate = %q, want empty", doc.Streaks.LastDriveDate)
	}
}
