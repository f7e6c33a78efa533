package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/roadlog/internal/models"
)

func exportDoc() models.Document {
	doc := models.DefaultDocument()
	doc.Drives = []models.Drive{
		{ID: "1700000000000", Date: "2024-01-01", StartTime: "10:00", EndTime: "11:00", DurationMinutes: 60, SupervisorName: "Dana"},
		{ID: "1700000000001", Date: "2024-01-02", StartTime: "21:00", EndTime: "22:30", DurationMinutes: 90, IsNightDrive: true},
	}
	return doc
}

func openMirror(t *testing.T, path string) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open mirror: %v", err)
	}
	return gdb
}

func TestExportSQLiteWritesDriveRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drives.db")
	doc := exportDoc()

	if err := ExportSQLite(path, doc, time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("ExportSQLite: %v", err)
	}

	gdb := openMirror(t, path)
	var rows []DriveRow
	if err := gdb.Order("date").Find(&rows).Error; err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].SupervisorName != "Dana" || rows[1].IsNightDrive != true {
		t.Errorf("unexpected rows: %+v", rows)
	}

	var run ExportRun
	if err := gdb.First(&run).Error; err != nil {
		t.Fatalf("read export run: %v", err)
	}
	if run.DriveCount != 2 || run.Version != models.DocumentVersion {
		t.Errorf("unexpected export run: %+v", run)
	}
}

func TestExportSQLiteReplacesPreviousMirror(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drives.db")
	doc := exportDoc()
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	if err := ExportSQLite(path, doc, now); err != nil {
		t.Fatalf("first export: %v", err)
	}

	doc.Drives = doc.Drives[:1]
	if err := ExportSQLite(path, doc, now.Add(time.Hour)); err != nil {
		t.Fatalf("second export: %v", err)
	}

	gdb := openMirror(t, path)
	var count int64
	if err := gdb.Model(&DriveRow{}).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("mirror holds %d rows after re-export, want 1", count)
	}

	var runs int64
	if err := gdb.Model(&ExportRun{}).Count(&runs).Error; err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if runs != 2 {
		t.Errorf("expected one run row per export, got %d", runs)
	}
}
