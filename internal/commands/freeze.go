package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/roadlog/internal/streak"
)

var freezeCmd = &cobra.Command{
	Use:   "freeze",
	Short: "Use a freeze day to protect your streak",
	Long: `Use a freeze day to keep your streak alive despite a missed day.

Freeze days are capped at ten per calendar month; the counter resets
automatically when a new month starts.`,
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

		if err := coordinator.UseFreezeDay(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		streaks := coordinator.Document().Streaks
		fmt.Printf("❄️  Freeze day used — %d of %d left this month.\n",
			streak.FreezeDayMonthlyCap-streaks.FreezeDaysThisMonth, streak.FreezeDayMonthlyCap)
	},
}
