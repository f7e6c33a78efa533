package app

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/balkashynov/roadlog/internal/aggregate"
	"github.com/balkashynov/roadlog/internal/models"
	"github.com/balkashynov/roadlog/internal/parser"
	"github.com/balkashynov/roadlog/internal/streak"
)

// StateError rejects a transition payload before any state is mutated.
type StateError struct {
	Op     string
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// DriveRequest carries the payload for AddDrive and UpdateDrive. Night
// classification is not part of the request: the coordinator decides it
// from the night-window settings in effect when the transition runs.
type DriveRequest struct {
	Date            string
	StartTime       string
	EndTime         string
	DurationMinutes int

	Weather        string
	Skills         string
	SupervisorName string
	SupervisorAge  int
	Destination    string
	PausedMinutes  int
}

func validateDriveRequest(op string, req DriveRequest) error {
	if !parser.IsValidDate(req.Date) {
		return &StateError{Op: op, Reason: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", req.Date)}
	}
	if !parser.IsValidTime(req.StartTime) {
		return &StateError{Op: op, Reason: fmt.Sprintf("invalid start time %q, expected HH:MM", req.StartTime)}
	}
	if !parser.IsValidTime(req.EndTime) {
		return &StateError{Op: op, Reason: fmt.Sprintf("invalid end time %q, expected HH:MM", req.EndTime)}
	}
	if req.DurationMinutes < 1 {
		return &StateError{Op: op, Reason: "duration must be at least 1 minute"}
	}
	return nil
}

// newDriveID derives an ID from the creation instant, with a uuid suffix
// when two drives land in the same millisecond.
func (c *Coordinator) newDriveID() string {
	id := strconv.FormatInt(c.clock().UnixMilli(), 10)
	if c.doc.FindDrive(id) >= 0 {
		id = id + "-" + uuid.NewString()[:8]
	}
	return id
}

func (c *Coordinator) buildDrive(id string, req DriveRequest) models.Drive {
	// Validation already guaranteed well-formed times, so the window check
	// cannot fail here.
	night, _ := parser.IsNightTime(req.StartTime, c.doc.Settings.NightTimeStart, c.doc.Settings.NightTimeEnd)
	return models.Drive{
		ID:              id,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
		IsNightDrive:    night,
		Weather:         req.Weather,
		Skills:          req.Skills,
		SupervisorName:  req.SupervisorName,
		SupervisorAge:   req.SupervisorAge,
		Destination:     req.Destination,
		PausedMinutes:   req.PausedMinutes,
	}
}

// AddDrive appends a drive to the log and re-derives totals and streaks in
// the same transition.
func (c *Coordinator) AddDrive(req DriveRequest) (models.Drive, error) {
	if err := validateDriveRequest("add drive", req); err != nil {
		return models.Drive{}, err
	}

	drive := c.buildDrive(c.newDriveID(), req)
	c.doc.Drives = append(c.doc.Drives, drive)
	aggregate.Recompute(&c.doc, c.clock())
	c.scheduleSave()
	return drive, nil
}

// UpdateDrive replaces the identified drive wholesale. The night flag is
// re-decided from the current settings, as if the drive were logged now.
func (c *Coordinator) UpdateDrive(id string, req DriveRequest) (models.Drive, error) {
	if err := validateDriveRequest("update drive", req); err != nil {
		return models.Drive{}, err
	}
	i := c.doc.FindDrive(id)
	if i < 0 {
		return models.Drive{}, &StateError{Op: "update drive", Reason: fmt.Sprintf("no drive with id %s", id)}
	}

	drive := c.buildDrive(id, req)
	c.doc.Drives[i] = drive
	aggregate.Recompute(&c.doc, c.clock())
	c.scheduleSave()
	return drive, nil
}

// DeleteDrive removes a drive by ID. Totals and streaks are recomputed from
// the remaining set, never patched incrementally.
func (c *Coordinator) DeleteDrive(id string) error {
	i := c.doc.FindDrive(id)
	if i < 0 {
		return &StateError{Op: "delete drive", Reason: fmt.Sprintf("no drive with id %s", id)}
	}

	c.doc.Drives = append(c.doc.Drives[:i], c.doc.Drives[i+1:]...)
	aggregate.Recompute(&c.doc, c.clock())
	c.scheduleSave()
	return nil
}

// SetUserInfo records the onboarding profile: license type, license date
// and hour goals.
func (c *Coordinator) SetUserInfo(licenseType, licenseDate string, goalDayHours, goalNightHours float64) error {
	switch licenseType {
	case models.LicenseLearner, models.LicenseRestricted, models.LicenseUnrestricted:
	default:
		return &StateError{Op: "set user info", Reason: fmt.Sprintf("unknown license type %q", licenseType)}
	}
	if licenseDate != "" && !parser.IsValidDate(licenseDate) {
		return &StateError{Op: "set user info", Reason: fmt.Sprintf("invalid license date %q", licenseDate)}
	}
	if goalDayHours < 0 || goalNightHours < 0 {
		return &StateError{Op: "set user info", Reason: "goal hours cannot be negative"}
	}
	if goalDayHours == 0 && goalNightHours == 0 {
		return &StateError{Op: "set user info", Reason: "at least one goal must be above zero"}
	}

	c.doc.User.LicenseType = licenseType
	c.doc.User.LicenseDate = licenseDate
	c.doc.User.GoalDayHours = goalDayHours
	c.doc.User.GoalNightHours = goalNightHours
	c.scheduleSave()
	return nil
}

// UseFreezeDay consumes one freeze day. The 10-per-month cap is enforced
// here, not left to the UI: an exhausted month rejects the transition.
func (c *Coordinator) UseFreezeDay() error {
	now := c.clock()
	c.applyFreezeReset(now)

	if !streak.CanUseFreezeDay(c.doc.Streaks.FreezeDaysThisMonth) {
		return &StateError{Op: "use freeze day", Reason: fmt.Sprintf("monthly cap of %d reached", streak.FreezeDayMonthlyCap)}
	}

	c.doc.Streaks.FreezeDaysUsed++
	c.doc.Streaks.FreezeDaysThisMonth++
	c.scheduleSave()
	return nil
}

// SuggestFreezeDay reports whether the UI should offer a freeze day right
// now: the last drive is at least two days old and the monthly cap has room.
func (c *Coordinator) SuggestFreezeDay() bool {
	return streak.ShouldSuggestFreezeDay(c.doc.Streaks.LastDriveDate, c.doc.Streaks.FreezeDaysThisMonth, c.clock())
}

// UpdateSettings replaces the settings. Past drives keep the night
// classification they were created with.
func (c *Coordinator) UpdateSettings(settings models.Settings) error {
	if !parser.IsValidTime(settings.NightTimeStart) {
		return &StateError{Op: "update settings", Reason: fmt.Sprintf("invalid night start %q", settings.NightTimeStart)}
	}
	if !parser.IsValidTime(settings.NightTimeEnd) {
		return &StateError{Op: "update settings", Reason: fmt.Sprintf("invalid night end %q", settings.NightTimeEnd)}
	}
	if settings.TemperatureUnit != models.UnitMetric && settings.TemperatureUnit != models.UnitImperial {
		return &StateError{Op: "update settings", Reason: fmt.Sprintf("unknown temperature unit %q", settings.TemperatureUnit)}
	}

	c.doc.Settings = settings
	c.scheduleSave()
	return nil
}

// CompleteOnboarding marks the wizard as finished.
func (c *Coordinator) CompleteOnboarding() {
	c.doc.User.OnboardingComplete = true
	c.scheduleSave()
}

// Reset wipes both persisted copies and returns the in-memory state to the
// first-run document. Only the explicit, user-confirmed path calls this.
func (c *Coordinator) Reset() error {
	// Pending saves would resurrect the files right after Clear.
	c.flush()
	if err := c.store.Clear(); err != nil {
		return err
	}
	c.doc = models.DefaultDocument()
	return nil
}
