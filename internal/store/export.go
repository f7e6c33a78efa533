package store

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"github.com/balkashynov/roadlog/internal/models"
)

// ExportJSON returns the full document as indented JSON. Read-only: the
// store itself is untouched.
func ExportJSON(doc models.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// ExportCSV returns a flattened tabular view of the drive log, one row per
// drive, header first.
func ExportCSV(doc models.Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"id", "date", "start_time", "end_time", "duration_minutes",
		"is_night_drive", "weather", "skills", "supervisor_name",
		"supervisor_age", "destination", "paused_minutes",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, d := range doc.Drives {
		age := ""
		if d.SupervisorAge > 0 {
			age = strconv.Itoa(d.SupervisorAge)
		}
		row := []string{
			d.ID,
			d.Date,
			d.StartTime,
			d.EndTime,
			strconv.Itoa(d.DurationMinutes),
			strconv.FormatBool(d.IsNightDrive),
			d.Weather,
			d.Skills,
			d.SupervisorName,
			age,
			d.Destination,
			strconv.Itoa(d.PausedMinutes),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
