package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/roadlog/internal/app"
	"github.com/balkashynov/roadlog/internal/models"
	"github.com/balkashynov/roadlog/internal/parser"
)

// DriveStep represents the current step in the drive-logging wizard.
type DriveStep int

const (
	StepDate DriveStep = iota
	StepStart
	StepEnd
	StepDuration
	StepSupervisor
	StepDestination
	StepWeather
	StepDriveSave
)

var driveStepLabels = []string{
	"Date", "Start", "End", "Duration", "Supervisor", "Destination", "Weather", "Save",
}

// AddDriveModel is the TUI model for logging a drive.
type AddDriveModel struct {
	coordinator *app.Coordinator

	currentStep DriveStep
	inputs      []textinput.Model
	width       int
	height      int

	// State
	err           error
	completed     bool
	cancelled     bool
	validationErr string
	created       models.Drive
}

// NewAddDriveModel creates the drive-logging wizard model.
func NewAddDriveModel(coordinator *app.Coordinator) AddDriveModel {
	inputs := make([]textinput.Model, StepDriveSave)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[StepDate].Placeholder = "YYYY-MM-DD (required)"
	inputs[StepDate].Focus()
	inputs[StepDate].CharLimit = 10

	inputs[StepStart].Placeholder = "HH:MM, 24-hour (required)"
	inputs[StepStart].CharLimit = 5

	inputs[StepEnd].Placeholder = "HH:MM, 24-hour (required)"
	inputs[StepEnd].CharLimit = 5

	inputs[StepDuration].Placeholder = "Minutes (Enter to use start-end span)"
	inputs[StepDuration].CharLimit = 4

	inputs[StepSupervisor].Placeholder = "Supervisor name (Enter to skip)"
	inputs[StepSupervisor].CharLimit = 50

	inputs[StepDestination].Placeholder = "Destination (Enter to skip)"
	inputs[StepDestination].CharLimit = 80

	inputs[StepWeather].Placeholder = "Weather (Enter to skip)"
	inputs[StepWeather].CharLimit = 40

	return AddDriveModel{
		coordinator: coordinator,
		inputs:      inputs,
	}
}

func (m AddDriveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m AddDriveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "tab", "down":
			return m.nextStep()

		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	var cmd tea.Cmd
	if m.currentStep < StepDriveSave {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	}
	return m, cmd
}

// handleEnter advances past a valid step, or saves on the final one.
func (m AddDriveModel) handleEnter() (tea.Model, tea.Cmd) {
	if m.currentStep == StepDriveSave {
		return m.save()
	}
	if msg := m.validateStep(m.currentStep); msg != "" {
		m.validationErr = msg
		return m, nil
	}
	return m.nextStep()
}

func (m AddDriveModel) nextStep() (tea.Model, tea.Cmd) {
	if msg := m.validateStep(m.currentStep); msg != "" {
		m.validationErr = msg
		return m, nil
	}
	m.validationErr = ""
	if m.currentStep < StepDriveSave {
		m.inputs[m.currentStep].Blur()
		m.currentStep++
		if m.currentStep < StepDriveSave {
			m.inputs[m.currentStep].Focus()
		}
	}
	return m, nil
}

func (m AddDriveModel) prevStep() (tea.Model, tea.Cmd) {
	m.validationErr = ""
	if m.currentStep > StepDate {
		if m.currentStep < StepDriveSave {
			m.inputs[m.currentStep].Blur()
		}
		m.currentStep--
		m.inputs[m.currentStep].Focus()
	}
	return m, nil
}

// validateStep checks the value of a single step before advancing.
func (m AddDriveModel) validateStep(step DriveStep) string {
	if step >= StepDriveSave {
		return ""
	}
	value := strings.TrimSpace(m.inputs[step].Value())
	switch step {
	case StepDate:
		if !parser.IsValidDate(value) {
			return "Date must be YYYY-MM-DD"
		}
	case StepStart, StepEnd:
		if !parser.IsValidTime(value) {
			return "Time must be HH:MM, 24-hour"
		}
	case StepDuration:
		if value == "" {
			return ""
		}
		minutes, err := strconv.Atoi(value)
		if err != nil || minutes < 1 {
			return "Duration must be a positive number of minutes"
		}
	}
	return ""
}

func (m AddDriveModel) save() (tea.Model, tea.Cmd) {
	req := app.DriveRequest{
		Date:           strings.TrimSpace(m.inputs[StepDate].Value()),
		StartTime:      strings.TrimSpace(m.inputs[StepStart].Value()),
		EndTime:        strings.TrimSpace(m.inputs[StepEnd].Value()),
		SupervisorName: strings.TrimSpace(m.inputs[StepSupervisor].Value()),
		Destination:    strings.TrimSpace(m.inputs[StepDestination].Value()),
		Weather:        strings.TrimSpace(m.inputs[StepWeather].Value()),
	}

	if value := strings.TrimSpace(m.inputs[StepDuration].Value()); value != "" {
		req.DurationMinutes, _ = strconv.Atoi(value)
	} else {
		minutes, err := parser.CalculateDuration(req.StartTime, req.EndTime)
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		req.DurationMinutes = minutes
	}

	drive, err := m.coordinator.AddDrive(req)
	if err != nil {
		m.validationErr = err.Error()
		return m, nil
	}
	m.created = drive
	m.completed = true
	return m, tea.Quit
}

func (m AddDriveModel) View() string {
	if m.cancelled || m.completed {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("🚗 Log a Drive"))
	b.WriteString("\n\n")

	currentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	todoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	for i, label := range driveStepLabels {
		switch {
		case DriveStep(i) == m.currentStep:
			b.WriteString(currentStyle.Render("▶ " + label))
		case DriveStep(i) < m.currentStep:
			b.WriteString(doneStyle.Render("✓ " + label))
		default:
			b.WriteString(todoStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.currentStep < StepDriveSave {
		b.WriteString(m.inputs[m.currentStep].View())
		b.WriteString("\n")
	} else {
		saveStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorSuccess))
		b.WriteString(saveStyle.Render("Press Enter to save the drive"))
		b.WriteString("\n")
	}

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString(errStyle.Render("⚠ " + m.validationErr))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: next • tab/↑↓: navigate • esc: cancel"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)
	return card.Render(b.String())
}
