// Package calibrate provides the terminal wizard that records screen positions.
package calibrate

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jordanella.com/coc-farm-go/internal/config"
	"jordanella.com/coc-farm-go/internal/input"
)

// Choice is a wizard menu entry
type Choice int

const (
	ChoiceResourceRegions Choice = iota + 1
	ChoiceResultRegions
	ChoiceActionButtons
	ChoiceDeploymentZones
	ChoiceEverything
	ChoiceCancel
)

type menuItem struct {
	choice Choice
	label  string
	detail string
}

var menu = []menuItem{
	{ChoiceResourceRegions, "Resource Regions (Base Search Screen)", "Gold, Elixir, Dark Elixir regions: 6 selections"},
	{ChoiceResultRegions, "Result Screen Regions (Loot Earned)", "Gold, Elixir, Dark Elixir earned: 6 selections"},
	{ChoiceActionButtons, "Action Buttons", "7 buttons: 7 selections"},
	{ChoiceDeploymentZones, "Attack Deployment Zones", "4 drag lines: 8 selections"},
	{ChoiceEverything, "Everything", "27 selections"},
	{ChoiceCancel, "Cancel", ""},
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	savedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea calibration wizard
type Model struct {
	cal     *config.Calibration
	locator input.Locator

	cursor int
	choice Choice
	steps  []step
	index  int
	saved  []string

	completed bool
	cancelled bool
}

// NewModel starts the wizard from a copy of cal
func NewModel(cal *config.Calibration, locator input.Locator) *Model {
	working := *cal
	return &Model{
		cal:     &working,
		locator: locator,
	}
}

// Calibration returns the edited calibration
func (m *Model) Calibration() *config.Calibration {
	return m.cal
}

// Completed reports whether every step of the chosen group was recorded
func (m *Model) Completed() bool {
	return m.completed
}

// Cancelled reports whether the user left without saving
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	}

	if m.choice == 0 {
		return m.updateMenu(key)
	}
	return m.updateSteps(key)
}

func (m *Model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(menu)-1 {
			m.cursor++
		}
	case tea.KeyEnter:
		return m.choose(menu[m.cursor].choice)
	case tea.KeyRunes:
		switch r := key.Runes[0]; {
		case r >= '1' && r <= '6':
			return m.choose(Choice(r - '0'))
		case r == 'k':
			if m.cursor > 0 {
				m.cursor--
			}
		case r == 'j':
			if m.cursor < len(menu)-1 {
				m.cursor++
			}
		case r == 'q':
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) choose(c Choice) (tea.Model, tea.Cmd) {
	if c == ChoiceCancel {
		m.cancelled = true
		return m, tea.Quit
	}

	m.choice = c
	switch c {
	case ChoiceResourceRegions:
		m.steps = resourceRegionSteps(m.cal)
	case ChoiceResultRegions:
		m.steps = resultRegionSteps(m.cal)
	case ChoiceActionButtons:
		m.steps = actionButtonSteps(m.cal)
	case ChoiceDeploymentZones:
		m.steps = deploymentSteps(m.cal)
	case ChoiceEverything:
		m.steps = append(m.steps, resourceRegionSteps(m.cal)...)
		m.steps = append(m.steps, resultRegionSteps(m.cal)...)
		m.steps = append(m.steps, actionButtonSteps(m.cal)...)
		m.steps = append(m.steps, deploymentSteps(m.cal)...)
	}
	return m, nil
}

func (m *Model) updateSteps(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type != tea.KeyEnter {
		return m, nil
	}

	current := m.steps[m.index]
	if current.captures() {
		m.saved = append(m.saved, current.apply(m.locator.Position()))
	}

	m.index++
	if m.index >= len(m.steps) {
		m.completed = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.completed || m.cancelled {
		return ""
	}

	var b strings.Builder
	if m.choice == 0 {
		b.WriteString(titleStyle.Render("COORDINATE SETUP"))
		b.WriteString("\n\nWhat do you want to configure?\n\n")
		for i, item := range menu {
			line := fmt.Sprintf("[%d] %s", item.choice, item.label)
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString(itemStyle.Render("  " + line))
			}
			b.WriteString("\n")
			if item.detail != "" {
				b.WriteString(itemStyle.Render("      " + item.detail))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("1-6 or arrows + Enter to choose, q to quit"))
		return b.String()
	}

	current := m.steps[m.index]
	b.WriteString(titleStyle.Render(current.title))
	b.WriteString(footerStyle.Render(fmt.Sprintf("  step %d/%d", m.index+1, len(m.steps))))
	b.WriteString("\n\n")
	b.WriteString(current.prompt)
	b.WriteString("\n\n")

	start := max(len(m.saved)-5, 0)
	for _, line := range m.saved[start:] {
		b.WriteString(savedStyle.Render("  ✓ " + line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("Enter to record, Esc to cancel without saving"))
	return b.String()
}

// Run shows the wizard and returns the edited calibration. saved is false
// when the user cancelled; nothing should be written in that case.
func Run(cal *config.Calibration, locator input.Locator) (*config.Calibration, bool, error) {
	model := NewModel(cal, locator)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return cal, false, fmt.Errorf("calibration wizard failed: %w", err)
	}

	m, ok := final.(*Model)
	if !ok || !m.Completed() {
		return cal, false, nil
	}
	return m.Calibration(), true, nil
}
