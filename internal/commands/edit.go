package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <drive-id>",
	Short: "Replace a logged drive",
	Long: `Replace a logged drive wholesale.

All core fields must be supplied again (--date, --start, --end); edits are
whole-record replacements, not patches. The night flag is re-decided from
the current night-window settings.

Example:
  roadlog edit 1709985600000 --date 2024-03-09 --start 18:00 --end 19:00`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		coordinator, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer coordinator.Close()

		if !requireOnboarding(coordinator) {
			return
		}

		req, err := driveRequestFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		drive, err := coordinator.UpdateDrive(args[0], req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✏️  Updated drive %s: %s %s-%s, %d min\n",
			drive.ID, drive.Date, drive.StartTime, drive.EndTime, drive.DurationMinutes)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <drive-id>",
	Short: "Delete a logged drive",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		coordinator, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer coordinator.Close()

		if !requireOnboarding(coordinator) {
			return
		}

		if err := coordinator.DeleteDrive(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		doc := coordinator.Document()
		fmt.Printf("🗑️  Deleted drive %s\n", args[0])
		fmt.Printf("Totals: %.1fh day / %.1fh night — streak %d (longest %d)\n",
			doc.User.CompletedDayHours, doc.User.CompletedNightHours,
			doc.Streaks.Current, doc.Streaks.Longest)
	},
}

func init() {
	addDriveFlags(editCmd)
}
