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

// SetupStep represents the current step in the onboarding wizard.
type SetupStep int

const (
	StepLicense SetupStep = iota
	StepLicenseDate
	StepGoalDay
	StepGoalNight
	StepNightStart
	StepNightEnd
	StepSetupSave
)

var setupStepLabels = []string{
	"License", "License date", "Day goal", "Night goal", "Night from", "Night until", "Save",
}

var licenseChoices = []string{
	models.LicenseLearner,
	models.LicenseRestricted,
	models.LicenseUnrestricted,
}

// SetupModel is the TUI model for the onboarding wizard.
type SetupModel struct {
	coordinator *app.Coordinator

	currentStep  SetupStep
	licenseIndex int
	inputs       []textinput.Model
	width        int
	height       int

	err           error
	completed     bool
	cancelled     bool
	validationErr string
}

// NewSetupModel creates the onboarding wizard model, pre-filled with the
// current night window.
func NewSetupModel(coordinator *app.Coordinator) SetupModel {
	settings := coordinator.Document().Settings

	inputs := make([]textinput.Model, StepSetupSave)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[StepLicenseDate].Placeholder = "YYYY-MM-DD (Enter to skip)"
	inputs[StepLicenseDate].CharLimit = 10

	inputs[StepGoalDay].Placeholder = "Day hours goal, e.g. 100"
	inputs[StepGoalDay].CharLimit = 6

	inputs[StepGoalNight].Placeholder = "Night hours goal, e.g. 20"
	inputs[StepGoalNight].CharLimit = 6

	inputs[StepNightStart].SetValue(settings.NightTimeStart)
	inputs[StepNightStart].CharLimit = 5

	inputs[StepNightEnd].SetValue(settings.NightTimeEnd)
	inputs[StepNightEnd].CharLimit = 5

	return SetupModel{
		coordinator: coordinator,
		inputs:      inputs,
	}
}

func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case "left", "right":
			// License type is a choice, not free text.
			if m.currentStep == StepLicense {
				if msg.String() == "left" {
					m.licenseIndex = (m.licenseIndex + len(licenseChoices) - 1) % len(licenseChoices)
				} else {
					m.licenseIndex = (m.licenseIndex + 1) % len(licenseChoices)
				}
				return m, nil
			}

		case "enter":
			if m.currentStep == StepSetupSave {
				return m.save()
			}
			return m.nextStep()

		case "tab", "down":
			return m.nextStep()

		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	var cmd tea.Cmd
	if m.currentStep > StepLicense && m.currentStep < StepSetupSave {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	}
	return m, cmd
}

func (m SetupModel) nextStep() (tea.Model, tea.Cmd) {
	if msg := m.validateStep(m.currentStep); msg != "" {
		m.validationErr = msg
		return m, nil
	}
	m.validationErr = ""
	if m.currentStep < StepSetupSave {
		if m.currentStep > StepLicense {
			m.inputs[m.currentStep].Blur()
		}
		m.currentStep++
		if m.currentStep > StepLicense && m.currentStep < StepSetupSave {
			m.inputs[m.currentStep].Focus()
		}
	}
	return m, nil
}

func (m SetupModel) prevStep() (tea.Model, tea.Cmd) {
	m.validationErr = ""
	if m.currentStep > StepLicense {
		if m.currentStep < StepSetupSave {
			m.inputs[m.currentStep].Blur()
		}
		m.currentStep--
		if m.currentStep > StepLicense {
			m.inputs[m.currentStep].Focus()
		}
	}
	return m, nil
}

func (m SetupModel) validateStep(step SetupStep) string {
	if step >= StepSetupSave {
		return ""
	}
	value := strings.TrimSpace(m.inputs[step].Value())
	switch step {
	case StepLicenseDate:
		if value != "" && !parser.IsValidDate(value) {
			return "License date must be YYYY-MM-DD"
		}
	case StepGoalDay, StepGoalNight:
		if value == "" {
			return ""
		}
		hours, err := strconv.ParseFloat(value, 64)
		if err != nil || hours < 0 {
			return "Goal must be a non-negative number of hours"
		}
	case StepNightStart, StepNightEnd:
		if !parser.IsValidTime(value) {
			return "Time must be HH:MM, 24-hour"
		}
	}
	return ""
}

func (m SetupModel) save() (tea.Model, tea.Cmd) {
	goalDay, _ := strconv.ParseFloat(strings.TrimSpace(m.inputs[StepGoalDay].Value()), 64)
	goalNight, _ := strconv.ParseFloat(strings.TrimSpace(m.inputs[StepGoalNight].Value()), 64)
	licenseDate := strings.TrimSpace(m.inputs[StepLicenseDate].Value())

	err := m.coordinator.SetUserInfo(licenseChoices[m.licenseIndex], licenseDate, goalDay, goalNight)
	if err != nil {
		m.validationErr = err.Error()
		return m, nil
	}

	settings := m.coordinator.Document().Settings
	settings.NightTimeStart = strings.TrimSpace(m.inputs[StepNightStart].Value())
	settings.NightTimeEnd = strings.TrimSpace(m.inputs[StepNightEnd].Value())
	if err := m.coordinator.UpdateSettings(settings); err != nil {
		m.validationErr = err.Error()
		return m, nil
	}

	m.coordinator.CompleteOnboarding()
	m.completed = true
	return m, tea.Quit
}

func (m SetupModel) View() string {
	if m.cancelled || m.completed {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("🛣  Welcome to roadlog"))
	b.WriteString("\n\n")

	currentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	todoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	for i, label := range setupStepLabels {
		switch {
		case SetupStep(i) == m.currentStep:
			b.WriteString(currentStyle.Render("▶ " + label))
		case SetupStep(i) < m.currentStep:
			b.WriteString(doneStyle.Render("✓ " + label))
		default:
			b.WriteString(todoStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.currentStep == StepLicense:
		var choices []string
		for i, choice := range licenseChoices {
			if i == m.licenseIndex {
				choices = append(choices, currentStyle.Render("[ "+choice+" ]"))
			} else {
				choices = append(choices, todoStyle.Render(choice))
			}
		}
		b.WriteString(strings.Join(choices, "  "))
		b.WriteString("\n")
	case m.currentStep < StepSetupSave:
		b.WriteString(m.inputs[m.currentStep].View())
		b.WriteString("\n")
	default:
		saveStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorSuccess))
		b.WriteString(saveStyle.Render("Press Enter to finish setup"))
		b.WriteString("\n")
	}

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString(errStyle.Render("⚠ " + m.validationErr))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: next • ←/→: choose license • tab/↑↓: navigate • esc: cancel"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)
	return card.Render(b.String())
}
