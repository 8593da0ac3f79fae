package tui

import (
	"context"
	"fmt"

	"stravaride/internal/strava"

	tea "github.com/charmbracelet/bubbletea"
)

// RidesModel is the ride list screen model
type RidesModel struct {
	athlete *strava.Athlete
	units   Units
	rides   []*strava.Ride
	cursor  int
	loading bool
	err     error
}

// NewRidesModel creates a new rides model
func NewRidesModel(athlete *strava.Athlete, units Units) RidesModel {
	return RidesModel{
		athlete: athlete,
		units:   units,
		loading: true,
	}
}

// Init initializes the ride list screen
func (m RidesModel) Init() tea.Cmd {
	return m.loadRides
}

type ridesLoadedMsg struct {
	rides []*strava.Ride
	err   error
}

func (m RidesModel) loadRides() tea.Msg {
	rides, err := m.athlete.Rides(context.Background())
	return ridesLoadedMsg{rides: rides, err: err}
}

// Update handles messages
func (m RidesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ridesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.rides = msg.rides
		if m.cursor >= len(m.rides) {
			m.cursor = 0
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rides)-1 {
				m.cursor++
			}
		case "r":
			// The listing is never cached; refresh is a plain re-fetch.
			m.loading = true
			return m, m.loadRides
		case "enter":
			if len(m.rides) > 0 && m.cursor < len(m.rides) {
				ride := m.rides[m.cursor]
				return m, func() tea.Msg {
					return OpenRideDetailMsg{Ride: ride}
				}
			}
		}
	}
	return m, nil
}

// View renders the ride list
func (m RidesModel) View() string {
	if m.loading {
		return "\n  Loading rides..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.rides) == 0 {
		return "\n  No rides found."
	}

	out := cardTitleStyle.Render(fmt.Sprintf("Rides (%d)", len(m.rides))) + "\n"
	out += tableHeaderStyle.Render(fmt.Sprintf("   %-10s  %s", "ID", "Name")) + "\n"

	for i, ride := range m.rides {
		line := fmt.Sprintf("%-10d  %s", ride.ID(), ride.Name())
		if i == m.cursor {
			out += selectedStyle.Render(" ❯ "+line) + "\n"
		} else {
			out += "   " + line + "\n"
		}
	}

	out += footerStyle.Render("enter detail • r refresh")
	return out
}
