package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/roadlog/internal/db"
	"github.com/balkashynov/roadlog/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the logbook",
	Long: `Export the logbook without touching the stored document.

Formats:
  json    - full document dump
  csv     - flattened table of drives
  sqlite  - queryable mirror of the drive log

Examples:
  roadlog export --format csv --out drives.csv
  roadlog export --format json          (prints to stdout)
  roadlog export --format sqlite --out drives.db`,
	Run: func(cmd *cobra.Command, args []string) {
		coordinator, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer coordinator.Close()

		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		doc := coordinator.Document()

		switch format {
		case "json":
			data, err := store.ExportJSON(doc)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			writeExport(out, data)
		case "csv":
			data, err := store.ExportCSV(doc)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			writeExport(out, data)
		case "sqlite":
			if out == "" {
				fmt.Println("Error: --out is required for sqlite export")
				return
			}
			if err := db.ExportSQLite(out, doc, time.Now()); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("Exported %d drives to %s\n", len(doc.Drives), out)
		default:
			fmt.Printf("Error: unknown format %q (json, csv, sqlite)\n", format)
		}
	},
}

func writeExport(out string, data []byte) {
	if out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Exported to %s\n", out)
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "Export format: json, csv or sqlite")
	exportCmd.Flags().StringP("out", "o", "", "Output file (stdout for json/csv when omitted)")
}
