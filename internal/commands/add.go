package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/roadlog/internal/app"
	"github.com/balkashynov/roadlog/internal/parser"
	"github.com/balkashynov/roadlog/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a driving session",
	Long: `Log a driving session.

Modes:
  Interactive: roadlog add (no flags, opens the logging wizard)
  Quick: roadlog add --date 2024-03-10 --start 14:00 --end 15:30 --duration 90

Duration is recorded independently of the start/end times so paused time
can be excluded. Night classification follows your configured night
window automatically.`,
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

		if !cmd.Flags().Changed("date") && !cmd.Flags().Changed("start") {
			if err := tui.RunAddDriveTUI(coordinator); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		req, err := driveRequestFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		drive, err := coordinator.AddDrive(req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		kind := "day"
		if drive.IsNightDrive {
			kind = "night"
		}
		fmt.Printf("🚗 Logged %s drive on %s: %s-%s, %d min (id %s)\n",
			kind, drive.Date, drive.StartTime, drive.EndTime, drive.DurationMinutes, drive.ID)

		doc := coordinator.Document()
		fmt.Printf("Totals: %.1fh day / %.1fh night — streak %d\n",
			doc.User.CompletedDayHours, doc.User.CompletedNightHours, doc.Streaks.Current)
	},
}

// driveRequestFromFlags assembles a DriveRequest from the shared add/edit
// flag set. Duration defaults to the start-end span when not given
// explicitly.
func driveRequestFromFlags(cmd *cobra.Command) (app.DriveRequest, error) {
	req := app.DriveRequest{}
	req.Date, _ = cmd.Flags().GetString("date")
	req.StartTime, _ = cmd.Flags().GetString("start")
	req.EndTime, _ = cmd.Flags().GetString("end")
	req.DurationMinutes, _ = cmd.Flags().GetInt("duration")
	req.Weather, _ = cmd.Flags().GetString("weather")
	req.Skills, _ = cmd.Flags().GetString("skills")
	req.SupervisorName, _ = cmd.Flags().GetString("supervisor")
	req.SupervisorAge, _ = cmd.Flags().GetInt("supervisor-age")
	req.Destination, _ = cmd.Flags().GetString("destination")
	req.PausedMinutes, _ = cmd.Flags().GetInt("paused")

	if !cmd.Flags().Changed("duration") {
		minutes, err := parser.CalculateDuration(req.StartTime, req.EndTime)
		if err != nil {
			return app.DriveRequest{}, err
		}
		req.DurationMinutes = minutes - req.PausedMinutes
	}
	return req, nil
}

func addDriveFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("date", "d", "", "Drive date (YYYY-MM-DD)")
	cmd.Flags().StringP("start", "s", "", "Start time (HH:MM, 24-hour)")
	cmd.Flags().StringP("end", "e", "", "End time (HH:MM, 24-hour)")
	cmd.Flags().Int("duration", 0, "Driving minutes (defaults to start-end span minus paused time)")
	cmd.Flags().String("weather", "", "Weather snapshot")
	cmd.Flags().String("skills", "", "Skills practised")
	cmd.Flags().String("supervisor", "", "Supervisor name")
	cmd.Flags().Int("supervisor-age", 0, "Supervisor age")
	cmd.Flags().String("destination", "", "Destination")
	cmd.Flags().Int("paused", 0, "Paused minutes excluded from the duration")
}

func init() {
	addDriveFlags(addCmd)
}
