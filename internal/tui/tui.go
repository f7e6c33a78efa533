package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/roadlog/internal/app"
)

// RunAddDriveTUI starts the interactive drive-logging wizard.
func RunAddDriveTUI(coordinator *app.Coordinator) error {
	model := NewAddDriveModel(coordinator)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddDriveModel); ok {
		if m.cancelled {
			fmt.Println("❌ Drive not logged.")
		} else if m.completed {
			kind := "day"
			if m.created.IsNightDrive {
				kind = "night"
			}
			fmt.Printf("🚗 Logged %s drive on %s: %d min (id %s)\n",
				kind, m.created.Date, m.created.DurationMinutes, m.created.ID)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}

// RunSetupTUI starts the onboarding wizard.
func RunSetupTUI(coordinator *app.Coordinator) error {
	model := NewSetupModel(coordinator)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(SetupModel); ok {
		if m.cancelled {
			fmt.Println("❌ Setup cancelled.")
		} else if m.completed {
			fmt.Println("✅ Setup complete. Log your first drive with 'roadlog add'.")
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
