package store

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/balkashynov/roadlog/internal/models"
	"github.com/balkashynov/roadlog/internal/testfixtures"
)

// failWrites wraps a Storage and fails every write.
type failWrites struct {
	*testfixtures.MemStorage
}

func (f failWrites) WriteFile(path string, data []byte) error {
	return errors.New("disk full")
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestStore(fs Storage) *Store {
	return New(fs, "/data", quietLogger())
}

func sampleDocument() models.Document {
	doc := models.DefaultDocument()
	doc.User.LicenseType = models.LicenseLearner
	doc.User.GoalDayHours = 100
	doc.User.GoalNightHours = 20
	doc.User.OnboardingComplete = true
	doc.Drives = []models.Drive{
		{ID: "1700000000000", Date: "2024-01-01", StartTime: "10:00", EndTime: "11:00", DurationMinutes: 60},
		{ID: "1700000000001", Date: "2024-01-02", StartTime: "21:00", EndTime: "22:30", DurationMinutes: 90, IsNightDrive: true},
	}
	doc.Streaks = models.StreakState{Current: 2, Longest: 2, LastDriveDate: "2024-01-02"}
	return doc
}

func TestLoadFirstRunWritesDefault(t *testing.T) {
	fs := testfixtures.NewMemStorage()
	s := newTestStore(fs)

	doc := s.Load()

	if !reflect.DeepEqual(doc, models.DefaultDocument()) {
		t.Errorf("first-run document differs from default: %+v", doc)
	}
	if !fs.Exists(s.PrimaryPath()) {
		t.Error("first run should persist the default document")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := testfixtures.NewMemStorage()
	s := newTestStore(fs)
	doc := sampleDocument()

	if !s.Save(doc) {
		t.Fatal("Save returned false")
	}
	loaded := s.Load()
	if !reflect.DeepEqual(loaded, doc) {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", doc, loaded)
	}
}

func TestSaveKeepsPreviousGenerationAsBackup(t *testing.T) {
	fs := testfixtures.NewMemStorage()
	s := newTestStore(fs)

	first := sampleDocument()
	s.Save(first)
	if fs.Exists(s.BackupPath()) {
		t.Fatal("no backup expected before a second save")
	}

	second := first
	second.User.GoalDayHours = 120
	s.Save(second)

	backup, err := fs.ReadFile(s.BackupPath())
	if err != nil {
		t.Fatalf("backup missing after second save: %v", err)
	}
	var backupDoc models.Document
	if err := json.Unmarshal(backup, &backupDoc); err != nil {
		t.Fatalf("backup not parseable: %v", err)
	}
	if backupDoc.User.GoalDayHours != first.User.GoalDayHours {
		t.Errorf("backup holds GoalDayHours=%v, want previous generation %v",
			backupDoc.User.GoalDayHours, first.User.GoalDayHours)
	}
}

func TestLoadRecoversFromCorruptPrimary(t *testing.T) {
	fs := testfixtures.NewMemStorage()
	s := newTestStore(fs)
	doc := sampleDocument()

	s.Save(doc)
	s.Save(doc) // establishes a valid backup
	fs.Put(s.PrimaryPath(), []byte("{not json"))

	loaded := s.Load()
	if !reflect.DeepEqual(loaded, doc) {
		t.Fatalf("expected backup content, got %+v", loaded)
	}

	// The backup must have been promoted: primary is valid again.
	primary, err := fs.ReadFile(s.PrimaryPath())
	if err != nil {
		t.Fatalf("primary missing after promotion: %v", err)
	}
	var promoted models.Document
	if err := json.Unmarshal(primary, &promoted); err != nil {
		t.Fatalf("promoted primary not parseable: %v", err)
	}
	if !reflect.DeepEqual(promoted, doc) {
		t.Error("promoted primary differs from recovered document")
	}
}

func TestLoadRejectsDocumentMissingSections(t *testing.T) {
	fs := testfixtures.NewMemStorage()
	s := newTestStore(fs)

	// Valid JSON, but no streaks/settings sections.
	fs.Put(s.PrimaryPath(), []byte(`{"user":{},"drives":[]}`))

	loaded := s.Load()
	if !reflect.DeepEqual(loaded, models.DefaultDocument()) {
		t.Errorf("structurally invalid primary without backup should yield default, got %+v", loaded)
	}
}

func TestLoadFallsBackToDefaultWhenBothCorrupt(t *testing.T) {
	fs := testfixtures.NewMemStorage()
	s := newTestStore(fs)

	fs.Put(s.PrimaryPath(), []byte("garbage"))
	fs.Put(s.BackupPath(), []byte("also garbage"))

	loaded := s.Load()
	if !reflect.DeepEqual(loaded, models.DefaultDocument()) {
		t.Errorf("expected default document, got %+v", loaded)
	}

	// The default must have been persisted so the next start is clean.
	data, err := fs.ReadFile(s.PrimaryPath())
	if err != nil {
		t.Fatalf("default not persisted: %v", err)
	}
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("persisted default not parseable: %v", err)
	}
}

func TestSaveReturnsFalseOnWriteFailure(t *testing.T) {
	fs := failWrites{testfixtures.NewMemStorage()}
	s := newTestStore(fs)

	if s.Save(sampleDocument()) {
		t.Error("Save should report failure when writes fail")
	}
}

func TestClearDeletesBothFiles(t *testing.T) {
	fs := testfixtures.NewMemStorage()
	s := newTestStore(fs)

	s.Save(sampleDocument())
	s.Save(sampleDocument())
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if fs.Exists(s.PrimaryPath()) || fs.Exists(s.BackupPath()) {
		t.Error("Clear should remove both primary and backup")
	}
}
