package tui

import (
	"context"
	"fmt"
	"strings"

	"stravaride/internal/strava"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RideDetailModel is the ride detail screen model. It shows the ride's
// metric record plus its segment efforts; selecting an effort opens the
// segment detail screen.
type RideDetailModel struct {
	ride     *strava.Ride
	units    Units
	detail   *strava.RideDetail
	segments []*strava.Segment
	cursor   int
	loading  bool
	err      error
	width    int
	height   int
}

// NewRideDetailModel creates a new ride detail model
func NewRideDetailModel(ride *strava.Ride, units Units, width, height int) RideDetailModel {
	return RideDetailModel{
		ride:    ride,
		units:   units,
		loading: true,
		width:   width,
		height:  height,
	}
}

// Init initializes the ride detail screen
func (m RideDetailModel) Init() tea.Cmd {
	return m.loadDetail
}

type rideDetailLoadedMsg struct {
	detail   *strava.RideDetail
	segments []*strava.Segment
	err      error
}

func (m RideDetailModel) loadDetail() tea.Msg {
	ctx := context.Background()

	// Both fetches are lazy on the Ride; revisiting this screen for the
	// same Ride instance reuses its caches and issues no requests.
	detail, err := m.ride.Detail(ctx)
	if err != nil {
		return rideDetailLoadedMsg{err: err}
	}
	segments, err := m.ride.Segments(ctx)
	if err != nil {
		return rideDetailLoadedMsg{err: err}
	}
	return rideDetailLoadedMsg{detail: detail, segments: segments}
}

// Update handles messages
func (m RideDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rideDetailLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.detail = msg.detail
		m.segments = msg.segments

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.segments)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.segments) > 0 && m.cursor < len(m.segments) {
				segment := m.segments[m.cursor]
				return m, func() tea.Msg {
					return OpenSegmentDetailMsg{Segment: segment}
				}
			}
		}
	}
	return m, nil
}

// View renders the ride detail
func (m RideDetailModel) View() string {
	if m.loading {
		return fmt.Sprintf("\n  Loading %q...", m.ride.Name())
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	title := cardTitleStyle.Render(m.ride.Name())

	var metrics []string
	row := func(label, value string) {
		metrics = append(metrics, metricLabelStyle.Render(label)+metricValueStyle.Render(value))
	}
	row("Athlete", fmt.Sprintf("%s (#%d)", m.detail.Athlete(), m.detail.AthleteID()))
	row("Bike", m.detail.Bike())
	row("Location", m.detail.Location())
	row("Distance", m.units.FormatDistance(m.detail.Distance()))
	row("Moving time", m.units.FormatDuration(m.detail.MovingTime()))

	card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, metrics...))

	var segs strings.Builder
	segs.WriteString(cardTitleStyle.Render(fmt.Sprintf("Segments (%d)", len(m.segments))) + "\n")
	if len(m.segments) == 0 {
		segs.WriteString("  No segment efforts on this ride.\n")
	}
	for i, seg := range m.segments {
		line := fmt.Sprintf("%-30s  %8s", seg.Name(), m.units.FormatDuration(seg.Time()))
		if i == m.cursor {
			segs.WriteString(selectedStyle.Render(" ❯ "+line) + "\n")
		} else {
			segs.WriteString("   " + line + "\n")
		}
	}
	segs.WriteString(footerStyle.Render("enter segment detail"))

	return lipgloss.JoinVertical(lipgloss.Left, title, card, segs.String())
}
