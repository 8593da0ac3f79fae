package tui

import (
	"stravaride/internal/config"
	"stravaride/internal/strava"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenRides Screen = iota
	ScreenRideDetail
	ScreenSegmentDetail
	ScreenStats
	ScreenHelp
)

// OpenRideDetailMsg asks the app to show one ride's detail screen
type OpenRideDetailMsg struct {
	Ride *strava.Ride
}

// OpenSegmentDetailMsg asks the app to show one segment's detail screen
type OpenSegmentDetailMsg struct {
	Segment *strava.Segment
}

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	rides         RidesModel
	rideDetail    RideDetailModel
	segmentDetail SegmentDetailModel
	stats         StatsModel
	help          HelpModel

	athlete *strava.Athlete
	units   Units

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App rooted at the given athlete
func NewApp(athlete *strava.Athlete, display config.DisplayConfig) *App {
	units := NewUnits(display)
	return &App{
		screen:  ScreenRides,
		athlete: athlete,
		units:   units,
		rides:   NewRidesModel(athlete, units),
		stats:   NewStatsModel(athlete, units),
		help:    NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.rides.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "s":
			if a.screen != ScreenStats {
				a.screen = ScreenStats
				a.stats = NewStatsModel(a.athlete, a.units)
				return a, a.stats.Init()
			}
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			}
		case "esc":
			switch a.screen {
			case ScreenHelp:
				a.screen = a.prevScreen
			case ScreenSegmentDetail:
				a.screen = ScreenRideDetail
			case ScreenRideDetail, ScreenStats:
				a.screen = ScreenRides
			}
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case OpenRideDetailMsg:
		a.screen = ScreenRideDetail
		a.rideDetail = NewRideDetailModel(msg.Ride, a.units, a.width, a.height)
		return a, a.rideDetail.Init()

	case OpenSegmentDetailMsg:
		a.screen = ScreenSegmentDetail
		a.segmentDetail = NewSegmentDetailModel(msg.Segment, a.units)
		return a, a.segmentDetail.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenRides:
		var m tea.Model
		m, cmd = a.rides.Update(msg)
		a.rides = m.(RidesModel)
	case ScreenRideDetail:
		var m tea.Model
		m, cmd = a.rideDetail.Update(msg)
		a.rideDetail = m.(RideDetailModel)
	case ScreenSegmentDetail:
		var m tea.Model
		m, cmd = a.segmentDetail.Update(msg)
		a.segmentDetail = m.(SegmentDetailModel)
	case ScreenStats:
		var m tea.Model
		m, cmd = a.stats.Update(msg)
		a.stats = m.(StatsModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}
	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := headerStyle.Render("stravaride")

	var body string
	switch a.screen {
	case ScreenRides:
		body = a.rides.View()
	case ScreenRideDetail:
		body = a.rideDetail.View()
	case ScreenSegmentDetail:
		body = a.segmentDetail.View()
	case ScreenStats:
		body = a.stats.View()
	case ScreenHelp:
		body = a.help.View()
	}

	footer := footerStyle.Render("s stats • ? help • esc back • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
