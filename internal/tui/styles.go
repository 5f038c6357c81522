package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	runningColor = lipgloss.Color("#00C46A") // Green
	cyclingColor = lipgloss.Color("#FFB545") // Amber
	errorColor   = lipgloss.Color("#EF4444") // Red
	mutedColor   = lipgloss.Color("#6B7280") // Gray
	panelColor   = lipgloss.Color("#2D3439") // Slate
	textColor    = lipgloss.Color("#ECECEC") // Light gray
)

// Styles
var (
	// App chrome
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(runningColor).
			Padding(0, 1).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	panelFocusedStyle = panelStyle.
				BorderForeground(runningColor)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			MarginBottom(1)

	// Map
	mapBackgroundStyle = lipgloss.NewStyle().
				Foreground(panelColor)

	crosshairStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	popupStyles = map[string]lipgloss.Style{
		"running-popup": lipgloss.NewStyle().
			Foreground(textColor).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(runningColor).
			PaddingLeft(1),
		"cycling-popup": lipgloss.NewStyle().
			Foreground(textColor).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(cyclingColor).
			PaddingLeft(1),
	}

	markerStyles = map[string]lipgloss.Style{
		"running-popup": lipgloss.NewStyle().Bold(true).Foreground(runningColor),
		"cycling-popup": lipgloss.NewStyle().Bold(true).Foreground(cyclingColor),
	}

	// Form
	formLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(10)

	formActiveLabelStyle = formLabelStyle.
				Bold(true).
				Foreground(textColor)

	// Workout list
	entryStyles = map[string]lipgloss.Style{
		"running": lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(runningColor).
			PaddingLeft(1).
			MarginBottom(1),
		"cycling": lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(cyclingColor).
			PaddingLeft(1).
			MarginBottom(1),
	}

	entryTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	entrySelectedTitleStyle = entryTitleStyle.
				Underline(true)

	entryValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	entryUnitStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Shown in the form's place between an instant hide and re-arming
	formSavedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(runningColor)

	// Alert
	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(errorColor).
			Foreground(textColor).
			Padding(1, 3)

	// Help
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(runningColor).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// RenderKeyHelp renders a key binding help item
func RenderKeyHelp(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + helpDescStyle.Render(desc)
}
