package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"mapty/internal/analysis"
	"mapty/internal/workout"
)

// renderStats charts pace of running and speed of cycling workouts in the
// order they were logged
func renderStats(workouts []workout.Workout, units Units) string {
	var paces, speeds []float64
	for _, w := range workouts {
		switch w.Kind {
		case workout.Running:
			paces = append(paces, units.Pace(w.Metric()))
		case workout.Cycling:
			speeds = append(speeds, units.Speed(w.Metric()))
		}
	}

	var lines []string
	lines = append(lines, renderSummary(analysis.Summarize(workouts), units))
	if records := analysis.PersonalRecords(workouts); len(records) > 0 {
		lines = append(lines, renderRecords(records, units))
	}
	lines = append(lines, renderSeries("Running pace ("+units.PaceLabel()+")", runningColor, paces))
	lines = append(lines, renderSeries("Cycling speed ("+units.SpeedLabel()+")", cyclingColor, speeds))
	return strings.Join(lines, "\n\n")
}

func renderSeries(title string, color lipgloss.Color, data []float64) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(color).Render(title)

	if len(data) < 2 {
		return heading + "\n" + helpDescStyle.Render("  Log at least two workouts to see a trend.")
	}

	chart := asciigraph.Plot(data,
		asciigraph.Height(6),
		asciigraph.Width(40),
		asciigraph.Precision(1),
	)
	return heading + "\n" + chart
}

func renderSummary(s analysis.Summary, units Units) string {
	row := func(glyph string, t analysis.Totals, metric string) string {
		return fmt.Sprintf("%s %s × %s %s  %s min  %s",
			glyph,
			entryValueStyle.Render(humanize.Comma(int64(t.Count))),
			entryValueStyle.Render(units.FormatDistanceValue(t.DistanceKm)),
			entryUnitStyle.Render(units.DistanceLabel()),
			entryValueStyle.Render(humanize.Ftoa(t.DurationMin)),
			metric,
		)
	}

	lines := []string{
		row("🏃‍♂️", s.Running, units.FormatPaceValue(s.Running.Pace())+" "+entryUnitStyle.Render(units.PaceLabel())),
		row("🚴‍♀️", s.Cycling, units.FormatSpeedValue(s.Cycling.Speed())+" "+entryUnitStyle.Render(units.SpeedLabel())),
	}
	if s.ClimbM > 0 {
		lines = append(lines, "⛰ "+entryValueStyle.Render(humanize.Ftoa(s.ClimbM))+" "+entryUnitStyle.Render("m climbed"))
	}
	return strings.Join(lines, "\n")
}

func renderRecords(records []analysis.Record, units Units) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(runningColor).Render("Personal records")}
	for _, r := range records {
		lines = append(lines, fmt.Sprintf("  %-14s %s %s  %s",
			r.Race.Label,
			entryValueStyle.Render(units.FormatPaceValue(r.Workout.Metric())),
			entryUnitStyle.Render(units.PaceLabel()),
			helpDescStyle.Render(r.Workout.Description),
		))
	}
	return strings.Join(lines, "\n")
}
