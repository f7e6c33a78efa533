package models

// DocumentVersion is stamped into freshly initialised documents.
const DocumentVersion = "1.0"

// License types a user can select during onboarding.
const (
	LicenseLearner      = "learner"
	LicenseRestricted   = "restricted"
	LicenseUnrestricted = "unrestricted"
)

// Temperature units accepted in settings.
const (
	UnitMetric   = "metric"
	UnitImperial = "imperial"
)

// UserProfile holds the onboarding profile and goal progress. The completed
// hour fields are derived: always the sum of drive durations partitioned by
// night classification, never written directly.
type UserProfile struct {
	LicenseType         string  `json:"licenseType,omitempty"`
	LicenseDate         string  `json:"licenseDate,omitempty"`
	GoalDayHours        float64 `json:"goalDayHours"`
	GoalNightHours      float64 `json:"goalNightHours"`
	CompletedDayHours   float64 `json:"completedDayHours"`
	CompletedNightHours float64 `json:"completedNightHours"`
	OnboardingComplete  bool    `json:"onboardingComplete"`
}

// StreakState is fully derived from the drive log plus freeze-day usage.
// Longest is a high-water mark: it never decreases, even when drives are
// deleted afterwards.
type StreakState struct {
	Current             int    `json:"current"`
	Longest             int    `json:"longest"`
	LastDriveDate       string `json:"lastDriveDate,omitempty"`
	FreezeDaysUsed      int    `json:"freezeDaysUsed"`
	FreezeDaysThisMonth int    `json:"freezeDaysThisMonth"`
	LastFreezeReset     string `json:"lastFreezeReset,omitempty"`
}

// Settings affect how future drives are classified; they are never applied
// retroactively.
type Settings struct {
	NightTimeStart  string `json:"nightTimeStart"`
	NightTimeEnd    string `json:"nightTimeEnd"`
	BackupReminder  bool   `json:"backupReminder"`
	TemperatureUnit string `json:"temperatureUnit"`
}

// Document is the single persisted aggregate: both the unit of persistence
// and the whole in-memory application state.
type Document struct {
	User     UserProfile `json:"user"`
	Drives   []Drive     `json:"drives"`
	Streaks  StreakState `json:"streaks"`
	Settings Settings    `json:"settings"`
	Version  string      `json:"version"`
}

// DefaultDocument returns the hard-coded first-run state.
func DefaultDocument() Document {
	return Document{
		User:   UserProfile{},
		Drives: []Drive{},
		Settings: Settings{
			NightTimeStart:  "20:00",
			NightTimeEnd:    "06:00",
			BackupReminder:  true,
			TemperatureUnit: UnitMetric,
		},
		Version: DocumentVersion,
	}
}

// Clone returns a deep copy of the document so callers can hand state out
// without exposing the coordinator's backing slice.
func (d Document) Clone() Document {
	out := d
	out.Drives = make([]Drive, len(d.Drives))
	copy(out.Drives, d.Drives)
	return out
}

// FindDrive returns the index of the drive with the given ID, or -1.
func (d Document) FindDrive(id string) int {
	for i := range d.Drives {
		if d.Drives[i].ID == id {
			return i
		}
	}
	return -1
}
