package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mapty/internal/session"
	"mapty/internal/workout"
)

// Form rows, in tab order
const (
	rowType = iota
	rowDistance
	rowDuration
	rowVariant
	rowCount
)

// formPanel is the workout entry form. It implements session.Form.
type formPanel struct {
	kind      workout.Kind
	distance  textinput.Model
	duration  textinput.Model
	cadence   textinput.Model
	elevation textinput.Model

	visible  bool
	animated bool
	focus    int
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 12
	ti.Width = 14
	return ti
}

func newFormPanel() *formPanel {
	return &formPanel{
		kind:      workout.Running,
		distance:  newInput("km"),
		duration:  newInput("min"),
		cadence:   newInput("step/min"),
		elevation: newInput("meters"),
		animated:  true,
		focus:     rowDistance,
	}
}

// Values returns the raw field contents
func (f *formPanel) Values() session.FormValues {
	return session.FormValues{
		Kind:      f.kind,
		Distance:  f.distance.Value(),
		Duration:  f.duration.Value(),
		Cadence:   f.cadence.Value(),
		Elevation: f.elevation.Value(),
	}
}

// Show reveals the form with the distance field focused
func (f *formPanel) Show() {
	f.visible = true
	f.setFocus(rowDistance)
}

// Hide hides the form
func (f *formPanel) Hide(animate bool) {
	f.visible = false
	f.animated = animate
	f.blurAll()
}

// SetAnimated re-enables or disables the show/hide transition
func (f *formPanel) SetAnimated(on bool) {
	f.animated = on
}

// Clear empties every input field
func (f *formPanel) Clear() {
	f.distance.SetValue("")
	f.duration.SetValue("")
	f.cadence.SetValue("")
	f.elevation.SetValue("")
}

// ShowVariantField shows cadence for running and elevation for cycling
func (f *formPanel) ShowVariantField(kind workout.Kind) {
	f.kind = kind
	if f.focus == rowVariant {
		f.setFocus(rowVariant)
	}
}

func (f *formPanel) variantInput() *textinput.Model {
	if f.kind == workout.Cycling {
		return &f.elevation
	}
	return &f.cadence
}

func (f *formPanel) input(row int) *textinput.Model {
	switch row {
	case rowDistance:
		return &f.distance
	case rowDuration:
		return &f.duration
	case rowVariant:
		return f.variantInput()
	}
	return nil
}

func (f *formPanel) blurAll() {
	f.distance.Blur()
	f.duration.Blur()
	f.cadence.Blur()
	f.elevation.Blur()
}

func (f *formPanel) setFocus(row int) tea.Cmd {
	f.blurAll()
	f.focus = (row + rowCount) % rowCount
	if in := f.input(f.focus); in != nil {
		return in.Focus()
	}
	return nil
}

// nextKind returns the workout type the type row would switch to
func (f *formPanel) nextKind() workout.Kind {
	if f.kind == workout.Running {
		return workout.Cycling
	}
	return workout.Running
}

// updateInput forwards a message to the focused text input
func (f *formPanel) updateInput(msg tea.Msg) tea.Cmd {
	in := f.input(f.focus)
	if in == nil {
		return nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

func (f *formPanel) View() string {
	if !f.visible {
		// An instant hide holds the form's slot until transitions are back on
		if !f.animated {
			return formSavedStyle.Render("✓ Workout saved")
		}
		return ""
	}

	label := func(row int, text string) string {
		if row == f.focus {
			return formActiveLabelStyle.Render(text)
		}
		return formLabelStyle.Render(text)
	}

	kindText := "◂ " + f.kind.String() + " ▸"
	if f.focus == rowType {
		kindText = crosshairStyle.Render(kindText)
	}

	variantLabel := "Cadence"
	if f.kind == workout.Cycling {
		variantLabel = "Elev Gain"
	}

	rows := []string{
		label(rowType, "Type") + kindText,
		label(rowDistance, "Distance") + f.distance.View(),
		label(rowDuration, "Duration") + f.duration.View(),
		label(rowVariant, variantLabel) + f.variantInput().View(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(rows, "\n"),
		helpDescStyle.Render("enter: save  ctrl+t: type  tab: next field  esc: map"))
}
