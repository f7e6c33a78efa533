package models

// Drive represents one logged driving session. Records are immutable after
// creation: edits replace the whole record, deletes remove it by ID.
type Drive struct {
	ID        string `json:"id"`
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM, 24-hour
	EndTime   string `json:"endTime"`   // HH:MM, 24-hour

	// DurationMinutes is authoritative and is NOT re-derived from the start
	// and end times, because paused time makes them diverge.
	DurationMinutes int `json:"duration"`

	// IsNightDrive is decided once at creation from the night-window
	// settings in effect at that moment. Later settings changes never
	// reclassify existing drives.
	IsNightDrive bool `json:"isNightDrive"`

	// Optional free-form metadata, no invariants attached.
	Weather        string `json:"weather,omitempty"`
	Skills         string `json:"skills,omitempty"`
	SupervisorName string `json:"supervisorName,omitempty"`
	SupervisorAge  int    `json:"supervisorAge,omitempty"`
	Destination    string `json:"destination,omitempty"`
	PausedMinutes  int    `json:"pausedMinutes,omitempty"`
}
