package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/roadlog/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the onboarding wizard",
	Long: `Run the onboarding wizard: pick a license type, set your day and
night hour goals and the night window. Opens an interactive wizard by
default; flags skip it.

Example:
  roadlog setup --license learner --goal-day 100 --goal-night 20`,
	Run: func(cmd *cobra.Command, args []string) {
		coordinator, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer coordinator.Close()

		if !cmd.Flags().Changed("license") {
			if err := tui.RunSetupTUI(coordinator); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		license, _ := cmd.Flags().GetString("license")
		licenseDate, _ := cmd.Flags().GetString("license-date")
		goalDay, _ := cmd.Flags().GetFloat64("goal-day")
		goalNight, _ := cmd.Flags().GetFloat64("goal-night")

		if err := coordinator.SetUserInfo(license, licenseDate, goalDay, goalNight); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		coordinator.CompleteOnboarding()

		fmt.Printf("✅ Set up as %s: %.0fh day / %.0fh night goal. Log your first drive with 'roadlog add'.\n",
			license, goalDay, goalNight)
	},
}

func init() {
	setupCmd.Flags().String("license", "", "License type: learner, restricted or unrestricted")
	setupCmd.Flags().String("license-date", "", "License issue date (YYYY-MM-DD)")
	setupCmd.Flags().Float64("goal-day", 0, "Day hours goal")
	setupCmd.Flags().Float64("goal-night", 0, "Night hours goal")
}
