// Package db writes the SQLite export mirror: a flattened, queryable copy
// of the drive log for people who want to run their own SQL over it. The
// mirror is write-only from roadlog's point of view; the JSON document
// store remains the single source of truth.
package db

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/roadlog/internal/models"
)

// DriveRow is the relational shape of one drive.
type DriveRow struct {
	ID              string `gorm:"primarykey" json:"id"`
	Date            string `gorm:"index;not null" json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	IsNightDrive    bool   `gorm:"index" json:"is_night_drive"`
	Weather         string `json:"weather"`
	Skills          string `json:"skills"`
	SupervisorName  string `json:"supervisor_name"`
	SupervisorAge   int    `json:"supervisor_age"`
	Destination     string `json:"destination"`
	PausedMinutes   int    `json:"paused_minutes"`
}

// ExportRun records when a mirror was written and from which document
// version, one row per export.
type ExportRun struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ExportedAt time.Time `json:"exported_at"`
	Version    string    `json:"version"`
	DriveCount int       `json:"drive_count"`
}

// ExportSQLite replaces the drive rows at path with the document's current
// log and appends an export-run record.
func ExportSQLite(path string, doc models.Document, now time.Time) error {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open export database: %w", err)
	}
	defer func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := gdb.AutoMigrate(&DriveRow{}, &ExportRun{}); err != nil {
		return fmt.Errorf("migrate export schema: %w", err)
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		// Full replace: the mirror always reflects exactly the current log.
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&DriveRow{}).Error; err != nil {
			return err
		}

		rows := make([]DriveRow, 0, len(doc.Drives))
		for _, d := range doc.Drives {
			rows = append(rows, DriveRow{
				ID:              d.ID,
				Date:            d.Date,
				StartTime:       d.StartTime,
				EndTime:         d.EndTime,
				DurationMinutes: d.DurationMinutes,
				IsNightDrive:    d.IsNightDrive,
				Weather:         d.Weather,
				Skills:          d.Skills,
				SupervisorName:  d.SupervisorName,
				SupervisorAge:   d.SupervisorAge,
				Destination:     d.Destination,
				PausedMinutes:   d.PausedMinutes,
			})
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, 100).Error; err != nil {
				return err
			}
		}

		return tx.Create(&ExportRun{
			ExportedAt: now,
			Version:    doc.Version,
			DriveCount: len(rows),
		}).Error
	})
}
