package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/balkashynov/roadlog/internal/streak"
	"github.com/balkashynov/roadlog/internal/tui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress toward your hour goals and streaks",
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

		doc := coordinator.Document()
		title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(tui.ColorAccentBright))
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorSecondaryText))

		fmt.Println(title.Render("Driving progress"))
		fmt.Printf("%s %s\n", label.Render("License:"), doc.User.LicenseType)
		fmt.Println(progressLine("Day hours  ", doc.User.CompletedDayHours, doc.User.GoalDayHours))
		fmt.Println(progressLine("Night hours", doc.User.CompletedNightHours, doc.User.GoalNightHours))

		fmt.Println()
		fmt.Println(title.Render("Streak"))
		fmt.Printf("%s %d day(s), longest %d\n", label.Render("Current:"), doc.Streaks.Current, doc.Streaks.Longest)
		if doc.Streaks.LastDriveDate != "" {
			fmt.Printf("%s %s\n", label.Render("Last drive:"), doc.Streaks.LastDriveDate)
		}
		fmt.Printf("%s %d/%d this month (%d lifetime)\n", label.Render("Freeze days:"),
			doc.Streaks.FreezeDaysThisMonth, streak.FreezeDayMonthlyCap, doc.Streaks.FreezeDaysUsed)

		if coordinator.SuggestFreezeDay() {
			warn := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorWarning))
			fmt.Println(warn.Render("❄️  You haven't driven in a couple of days — use 'roadlog freeze' to protect your streak."))
		}
	},
}

// progressLine renders a fixed-width bar like the goal rings in the app.
func progressLine(name string, completed, goal float64) string {
	const width = 30

	ratio := 0.0
	if goal > 0 {
		ratio = completed / goal
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * width)

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorSuccess)).
		Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorDisabledText)).
		Render(strings.Repeat("░", width-filled))

	return fmt.Sprintf("%s [%s%s] %.1f / %.0fh", name, bar, rest, completed, goal)
}
