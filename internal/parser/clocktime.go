package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const minutesPerDay = 24 * 60

var (
	timeRegex = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ParseError reports a malformed time or date string. Malformed input is
// always surfaced to the caller, never coerced to a zero value.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// IsValidTime reports whether input is a well-formed HH:MM 24-hour time.
func IsValidTime(input string) bool {
	return timeRegex.MatchString(input)
}

// IsValidDate reports whether input is a well-formed YYYY-MM-DD calendar
// date, including month/day range checks (leap years handled).
func IsValidDate(input string) bool {
	if !dateRegex.MatchString(input) {
		return false
	}
	_, err := time.Parse("2006-01-02", input)
	return err == nil
}

// TimeToMinutes converts an HH:MM string to minutes since midnight.
func TimeToMinutes(input string) (int, error) {
	matches := timeRegex.FindStringSubmatch(input)
	if matches == nil {
		return 0, &ParseError{Input: input, Reason: "expected HH:MM, 24-hour"}
	}
	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	return hours*60 + minutes, nil
}

// ParseDate parses a YYYY-MM-DD string into a midnight-normalised UTC time,
// suitable for calendar-day arithmetic.
func ParseDate(input string) (time.Time, error) {
	if !dateRegex.MatchString(input) {
		return time.Time{}, &ParseError{Input: input, Reason: "expected YYYY-MM-DD"}
	}
	t, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, &ParseError{Input: input, Reason: "not a real calendar date"}
	}
	return t, nil
}

// FormatDate renders a time as the YYYY-MM-DD form used throughout the
// document.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// IsNightTime reports whether t falls inside the configured night window.
// Both boundaries are inclusive. When the window crosses midnight
// (nightStart > nightEnd), membership is t >= nightStart OR t <= nightEnd.
func IsNightTime(t, nightStart, nightEnd string) (bool, error) {
	tm, err := TimeToMinutes(t)
	if err != nil {
		return false, err
	}
	startM, err := TimeToMinutes(nightStart)
	if err != nil {
		return false, err
	}
	endM, err := TimeToMinutes(nightEnd)
	if err != nil {
		return false, err
	}

	if startM > endM {
		return tm >= startM || tm <= endM, nil
	}
	return tm >= startM && tm <= endM, nil
}

// CalculateDuration returns the minutes between two clock times, treating
// end < start as a window that crosses midnight. Callers that track pauses
// must prefer their explicitly recorded duration over this value.
func CalculateDuration(start, end string) (int, error) {
	startM, err := TimeToMinutes(start)
	if err != nil {
		return 0, err
	}
	endM, err := TimeToMinutes(end)
	if err != nil {
		return 0, err
	}

	if endM < startM {
		return minutesPerDay - startM + endM, nil
	}
	return endM - startM, nil
}
