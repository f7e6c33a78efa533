// Package store owns durable storage of the single roadlog document. The
// scheme is deliberately simple: one primary JSON file plus a backup that
// always holds the previous save (one generation behind), refreshed by
// copying the primary aside immediately before every overwrite. Load never
// fails: corruption falls back to the backup, and failing that to a default
// document, because the app must always be able to start.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/balkashynov/roadlog/internal/models"
)

const (
	primaryFileName = "roadlog.json"
	backupFileName  = "roadlog.backup.json"
)

// ErrInvalidDocument marks a file that parsed as JSON but is missing one of
// the required top-level sections.
var ErrInvalidDocument = errors.New("document is missing required sections")

// Store persists one Document to a data directory.
type Store struct {
	fs  Storage
	dir string
	log *logrus.Logger
}

// New creates a store rooted at dir. A nil logger falls back to the logrus
// standard logger.
func New(fs Storage, dir string, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{fs: fs, dir: dir, log: log}
}

// PrimaryPath returns the location of the primary document file.
func (s *Store) PrimaryPath() string {
	return filepath.Join(s.dir, primaryFileName)
}

// BackupPath returns the location of the generation-behind backup file.
func (s *Store) BackupPath() string {
	return filepath.Join(s.dir, backupFileName)
}

// Load returns the persisted document. First run (no primary file) writes
// and returns the default document. A corrupt or structurally invalid
// primary falls back to the backup, which on success is promoted back to
// primary; if both copies are unusable the default document is persisted
// and returned. Load never returns an error by design: data loss is
// preferred over a crash loop at startup.
func (s *Store) Load() models.Document {
	primary := s.PrimaryPath()

	if !s.fs.Exists(primary) {
		doc := models.DefaultDocument()
		s.Save(doc)
		return doc
	}

	if doc, err := s.readDocument(primary); err == nil {
		return doc
	} else {
		s.log.WithError(err).Warn("primary document unreadable, trying backup")
	}

	if doc, err := s.readDocument(s.BackupPath()); err == nil {
		// Promote: re-saving writes the recovered state as primary and
		// establishes a fresh backup generation behind it.
		s.log.Info("recovered document from backup, promoting to primary")
		s.Save(doc)
		return doc
	} else {
		s.log.WithError(err).Warn("backup document unreadable as well")
	}

	s.log.Warn("both copies unusable, starting from default document")
	doc := models.DefaultDocument()
	s.Save(doc)
	return doc
}

// Save persists doc. The existing primary is copied to the backup location
// before the overwrite — strictly in that order, so the backup always holds
// the previous generation. Returns false on any I/O failure; the caller
// keeps running on in-memory state and the next successful save
// resynchronises.
func (s *Store) Save(doc models.Document) bool {
	primary := s.PrimaryPath()

	if s.fs.Exists(primary) {
		if err := s.fs.CopyFile(primary, s.BackupPath()); err != nil {
			s.log.WithError(err).Error("failed to refresh backup before save")
			return false
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.log.WithError(err).Error("failed to serialize document")
		return false
	}
	if err := s.fs.WriteFile(primary, data); err != nil {
		s.log.WithError(err).Error("failed to write document")
		return false
	}
	return true
}

// Clear deletes both the primary and the backup file. Only the explicit,
// user-confirmed full reset calls this.
func (s *Store) Clear() error {
	if err := s.fs.DeleteFile(s.PrimaryPath()); err != nil {
		return fmt.Errorf("delete primary: %w", err)
	}
	if err := s.fs.DeleteFile(s.BackupPath()); err != nil {
		return fmt.Errorf("delete backup: %w", err)
	}
	return nil
}

// documentEnvelope mirrors Document with pointer sections so a structural
// check can distinguish "absent" from "zero value". The typed parse fails
// closed: any missing section rejects the whole file.
type documentEnvelope struct {
	User     *models.UserProfile `json:"user"`
	Drives   *[]models.Drive     `json:"drives"`
	Streaks  *models.StreakState `json:"streaks"`
	Settings *models.Settings    `json:"settings"`
	Version  string              `json:"version"`
}

func (s *Store) readDocument(path string) (models.Document, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	var env documentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return models.Document{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if env.User == nil || env.Drives == nil || env.Streaks == nil || env.Settings == nil {
		return models.Document{}, fmt.Errorf("validate %s: %w", path, ErrInvalidDocument)
	}

	return models.Document{
		User:     *env.User,
		Drives:   *env.Drives,
		Streaks:  *env.Streaks,
		Settings: *env.Settings,
		Version:  env.Version,
	}, nil
}
