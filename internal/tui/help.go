package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	rows := []string{
		cardTitleStyle.Render("Keys"),
		metricLabelStyle.Render("↑/k ↓/j") + "move cursor",
		metricLabelStyle.Render("enter") + "open detail",
		metricLabelStyle.Render("esc") + "go back",
		metricLabelStyle.Render("r") + "refresh / recompute",
		metricLabelStyle.Render("s") + "weekly stats",
		metricLabelStyle.Render("?") + "this help",
		metricLabelStyle.Render("q") + "quit",
		"",
		accentStyle.Render("Ride details and segment lists are fetched once per ride"),
		accentStyle.Render("and reused; the ride list itself is always re-fetched."),
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
