package tui

import (
	"context"
	"fmt"

	"stravaride/internal/strava"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SegmentDetailModel is the segment detail screen model
type SegmentDetailModel struct {
	segment  *strava.Segment
	units    Units
	detail   *strava.SegmentDetail
	viewport viewport.Model
	loading  bool
	ready    bool
	err      error
}

// NewSegmentDetailModel creates a new segment detail model
func NewSegmentDetailModel(segment *strava.Segment, units Units) SegmentDetailModel {
	return SegmentDetailModel{
		segment: segment,
		units:   units,
		loading: true,
	}
}

// Init initializes the segment detail screen
func (m SegmentDetailModel) Init() tea.Cmd {
	return m.loadDetail
}

type segmentDetailLoadedMsg struct {
	detail *strava.SegmentDetail
	err    error
}

func (m SegmentDetailModel) loadDetail() tea.Msg {
	// Lazy on the Segment: reopening the same effort reuses the cache.
	detail, err := m.segment.Detail(context.Background())
	return segmentDetailLoadedMsg{detail: detail, err: err}
}

// Update handles messages
func (m SegmentDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case segmentDetailLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.detail = msg.detail
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.detail != nil {
			m.viewport.SetContent(m.renderContent())
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the segment detail
func (m SegmentDetailModel) View() string {
	if m.loading {
		return fmt.Sprintf("\n  Loading %q...", m.segment.Name())
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.ready {
		return m.viewport.View()
	}
	return m.renderContent()
}

func (m SegmentDetailModel) renderContent() string {
	if m.detail == nil {
		return ""
	}

	title := cardTitleStyle.Render(m.segment.Name())

	var effort []string
	row := func(dst *[]string, label, value string) {
		*dst = append(*dst, metricLabelStyle.Render(label)+metricValueStyle.Render(value))
	}
	row(&effort, "Elapsed time", m.units.FormatDuration(m.detail.ElapsedTime()))
	row(&effort, "Moving time", m.units.FormatDuration(m.detail.MovingTime()))
	row(&effort, "Avg speed", m.units.FormatSpeed(m.detail.AverageSpeed()))
	row(&effort, "Max speed", m.units.FormatSpeed(m.detail.MaximumSpeed()))
	row(&effort, "Avg watts", fmt.Sprintf("%.0f W", m.detail.AverageWatts()))
	effortCard := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		append([]string{cardTitleStyle.Render("This effort")}, effort...)...))

	low, high, gain := m.detail.Elevations()
	var seg []string
	row(&seg, "Distance", m.units.FormatDistance(m.detail.Distance()))
	row(&seg, "Avg grade", fmt.Sprintf("%.1f%%", m.detail.AverageGrade()))
	row(&seg, "Climb cat", m.detail.ClimbCategory())
	row(&seg, "Elevation", fmt.Sprintf("%s → %s (+%s)",
		m.units.FormatElevation(low), m.units.FormatElevation(high), m.units.FormatElevation(gain)))
	segCard := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		append([]string{cardTitleStyle.Render("Segment")}, seg...)...))

	return lipgloss.JoinVertical(lipgloss.Left, title, effortCard, segCard)
}
