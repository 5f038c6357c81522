package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"mapty/internal/session"
	"mapty/internal/workout"
)

// listPanel shows one entry per workout, newest directly under the form.
// It implements session.List.
type listPanel struct {
	entries []session.Entry
	cursor  int
	units   Units
	height  int
}

func newListPanel(units Units) *listPanel {
	return &listPanel{units: units, height: 4}
}

// Add inserts an entry at the top of the list
func (l *listPanel) Add(e session.Entry) {
	l.entries = append([]session.Entry{e}, l.entries...)
	l.cursor = 0
}

func (l *listPanel) up() {
	if l.cursor > 0 {
		l.cursor--
	}
}

func (l *listPanel) down() {
	if l.cursor < len(l.entries)-1 {
		l.cursor++
	}
}

// selected returns the id of the entry under the cursor
func (l *listPanel) selected() (string, bool) {
	if len(l.entries) == 0 {
		return "", false
	}
	return l.entries[l.cursor].ID, true
}

func (l *listPanel) View(focused bool) string {
	if len(l.entries) == 0 {
		return helpDescStyle.Render("No workouts yet. Pick a spot on the map and press enter.")
	}

	// Keep the cursor inside the visible window
	start := 0
	if l.cursor >= l.height {
		start = l.cursor - l.height + 1
	}
	end := min(len(l.entries), start+l.height)

	var cards []string
	for i := start; i < end; i++ {
		cards = append(cards, l.renderEntry(l.entries[i], focused && i == l.cursor))
	}
	if end < len(l.entries) {
		cards = append(cards, helpDescStyle.Render(fmt.Sprintf("… %d more", len(l.entries)-end)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (l *listPanel) renderEntry(e session.Entry, selected bool) string {
	title := entryTitleStyle
	if selected {
		title = entrySelectedTitleStyle
	}

	detail := func(icon, value, unit string) string {
		return icon + " " + entryValueStyle.Render(value) + " " + entryUnitStyle.Render(unit)
	}

	metric := detail("⚡️", l.units.FormatPaceValue(e.Metric), l.units.PaceLabel())
	if e.Kind == workout.Cycling {
		metric = detail("⚡️", l.units.FormatSpeedValue(e.Metric), l.units.SpeedLabel())
	}

	details := lipgloss.JoinHorizontal(lipgloss.Top,
		detail(e.Glyph, l.units.FormatDistanceValue(e.DistanceKm), l.units.DistanceLabel()), "  ",
		detail("⏱", trimFloat(e.DurationMin), "min"), "  ",
		metric, "  ",
		detail(e.ExtraIcon, trimFloat(e.Extra), e.ExtraUnit),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		title.Render(e.Description)+" "+entryUnitStyle.Render(humanize.Time(e.CreatedAt)),
		details,
	)

	style, ok := entryStyles[e.Kind.String()]
	if !ok {
		style = lipgloss.NewStyle()
	}
	return style.Render(body)
}
