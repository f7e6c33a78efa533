package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Show or change settings.

Without flags the current settings are printed. Changing the night window
only affects how future drives are classified; logged drives keep the
classification they were created with.

Examples:
  roadlog settings
  roadlog settings --night-start 21:00 --night-end 05:30
  roadlog settings --unit imperial`,
	Run: func(cmd *cobra.Command, args []string) {
		coordinator, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer coordinator.Close()

		settings := coordinator.Document().Settings
		changed := false

		if v, _ := cmd.Flags().GetString("night-start"); cmd.Flags().Changed("night-start") {
			settings.NightTimeStart = v
			changed = true
		}
		if v, _ := cmd.Flags().GetString("night-end"); cmd.Flags().Changed("night-end") {
			settings.NightTimeEnd = v
			changed = true
		}
		if v, _ := cmd.Flags().GetString("unit"); cmd.Flags().Changed("unit") {
			settings.TemperatureUnit = v
			changed = true
		}
		if v, _ := cmd.Flags().GetBool("backup-reminder"); cmd.Flags().Changed("backup-reminder") {
			settings.BackupReminder = v
			changed = true
		}

		if changed {
			if err := coordinator.UpdateSettings(settings); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Println("Settings updated.")
		}

		current := coordinator.Document().Settings
		fmt.Printf("Night window:    %s - %s\n", current.NightTimeStart, current.NightTimeEnd)
		fmt.Printf("Temperature:     %s\n", current.TemperatureUnit)
		fmt.Printf("Backup reminder: %v\n", current.BackupReminder)
	},
}

func init() {
	settingsCmd.Flags().String("night-start", "", "Night window start (HH:MM)")
	settingsCmd.Flags().String("night-end", "", "Night window end (HH:MM)")
	settingsCmd.Flags().String("unit", "", "Temperature unit: metric or imperial")
	settingsCmd.Flags().Bool("backup-reminder", false, "Enable or disable the backup reminder")
}
