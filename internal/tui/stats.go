package tui

import (
	"context"
	"fmt"
	"time"

	"stravaride/internal/strava"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// StatsModel is the weekly stats screen model
type StatsModel struct {
	athlete *strava.Athlete
	units   Units

	stats     strava.RideStats
	distances []float64 // per ride, newest last, in display units
	loading   bool
	err       error
}

// NewStatsModel creates a new stats model
func NewStatsModel(athlete *strava.Athlete, units Units) StatsModel {
	return StatsModel{
		athlete: athlete,
		units:   units,
		loading: true,
	}
}

// Init initializes the stats screen
func (m StatsModel) Init() tea.Cmd {
	return m.loadStats
}

type statsLoadedMsg struct {
	stats     strava.RideStats
	distances []float64
	err       error
}

// loadStats walks the last week of rides, fetching one detail per ride.
// That is the documented cost of the stats operation: a listing request
// plus one request per ride, strictly sequential.
func (m StatsModel) loadStats() tea.Msg {
	ctx := context.Background()
	start := time.Now().AddDate(0, 0, -7)

	rides, err := m.athlete.RidesSince(ctx, start)
	if err != nil {
		return statsLoadedMsg{err: err}
	}

	var stats strava.RideStats
	var distances []float64
	for _, ride := range rides {
		detail, err := ride.Detail(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		stats.Rides++
		stats.MovingTime += detail.MovingTime()
		stats.Distance += detail.Distance()
		distances = append(distances, m.units.DistanceValue(detail.Distance()))
	}
	return statsLoadedMsg{stats: stats, distances: distances}
}

// Update handles messages
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.stats = msg.stats
		m.distances = msg.distances

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, m.loadStats
		}
	}
	return m, nil
}

// View renders the stats screen
func (m StatsModel) View() string {
	if m.loading {
		return "\n  Computing weekly stats..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	title := titleStyle.Render("Last 7 days")

	var rows []string
	row := func(label, value string) {
		rows = append(rows, metricLabelStyle.Render(label)+metricValueStyle.Render(value))
	}
	row("Rides", fmt.Sprintf("%.0f", m.stats.Rides))
	row("Moving time", m.units.FormatDuration(m.stats.MovingTime))
	row("Distance", m.units.FormatDistance(m.stats.Distance))
	card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	sections := []string{title, card}

	if len(m.distances) > 1 {
		graphTitle := cardTitleStyle.Render(fmt.Sprintf("Distance per ride (%s)", m.units.DistanceLabel()))
		graph := asciigraph.Plot(m.distances,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Precision(1),
		)
		sections = append(sections, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, graphTitle, graph)))
	}

	sections = append(sections, footerStyle.Render("r recompute"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
