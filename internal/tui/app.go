package tui

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mapty/internal/config"
	"mapty/internal/session"
	"mapty/internal/workout"
)

// Focus identifies which panel receives keys
type Focus int

const (
	FocusMap Focus = iota
	FocusForm
	FocusList
)

const sidebarWidth = 58

// Deps are the collaborators the app is built from
type Deps struct {
	Sensor  session.Sensor
	Storage workout.KV
	Config  config.Config
}

// App is the root Bubble Tea model. It hosts the session controller and
// provides the map, form, list, alert and scheduler surfaces it drives.
type App struct {
	deps  Deps
	ctx   context.Context
	units Units

	ctrl    *session.Controller
	mapView *mapPanel
	form    *formPanel
	list    *listPanel
	alert   *alertBox
	sched   *loopScheduler

	focus     Focus
	showHelp  bool
	showStats bool

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App with all dependencies
func NewApp(deps Deps) *App {
	a := &App{
		deps:  deps,
		ctx:   context.Background(),
		units: NewUnits(deps.Config.Display),
	}
	a.boot()
	return a
}

// boot builds a fresh controller and fresh surfaces, as on a cold start
func (a *App) boot() {
	a.mapView = newMapPanel()
	a.form = newFormPanel()
	a.list = newListPanel(a.units)
	a.alert = &alertBox{}
	a.sched = newLoopScheduler()
	a.focus = FocusMap
	a.showStats = false
	a.resize()

	a.ctrl = session.New(session.Capabilities{
		Sensor:    a.deps.Sensor,
		Map:       a.mapView,
		Form:      a.form,
		List:      a.list,
		Alerter:   a.alert,
		Scheduler: a.sched,
		Storage:   a.deps.Storage,
	}, session.Options{
		ZoomLevel:      a.deps.Config.Map.ZoomLevel,
		FormRearmDelay: a.deps.Config.Map.FormRearmDelay(),
	})
}

// locatedMsg carries the sensor result back to the controller that asked
type locatedMsg struct {
	ctrl  *session.Controller
	coord workout.Coordinate
	err   error
}

func (a *App) locate() tea.Cmd {
	ctrl, sensor, ctx := a.ctrl, a.deps.Sensor, a.ctx
	return func() tea.Msg {
		coord, err := sensor.CurrentPosition(ctx)
		return locatedMsg{ctrl: ctrl, coord: coord, err: err}
	}
}

// Init requests the current location
func (a *App) Init() tea.Cmd {
	return a.locate()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()

	case locatedMsg:
		// Ignore answers meant for a controller discarded by a reset
		if msg.ctrl != a.ctrl {
			break
		}
		if msg.err != nil {
			_ = a.ctrl.LocateFailed(msg.err)
			break
		}
		if err := a.ctrl.Located(a.ctx, msg.coord); err != nil {
			log.Printf("applying location: %v", err)
		}

	case timerFiredMsg:
		msg.sched.fire(msg.id)

	case tea.KeyMsg:
		cmds = append(cmds, a.handleKey(msg))

	default:
		if a.focus == FocusForm {
			cmds = append(cmds, a.form.updateInput(msg))
		}
	}

	cmds = append(cmds, a.sched.drain()...)
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	// Alerts block everything until dismissed
	if a.alert.open {
		a.alert.dismiss()
		return nil
	}

	if key == "ctrl+c" {
		return tea.Quit
	}

	if a.showHelp {
		switch key {
		case "?", "esc", "q":
			a.showHelp = false
		}
		return nil
	}

	if a.focus == FocusForm {
		return a.handleFormKey(msg)
	}

	switch key {
	case "q":
		return tea.Quit
	case "?":
		a.showHelp = true
		return nil
	case "g":
		a.showStats = !a.showStats
		return nil
	case "R":
		return a.reset()
	case "tab":
		if a.focus == FocusMap {
			a.focus = FocusList
		} else {
			a.focus = FocusMap
		}
		return nil
	}

	if a.focus == FocusList {
		a.handleListKey(key)
		return nil
	}
	return a.handleMapKey(key)
}

func (a *App) handleMapKey(key string) tea.Cmd {
	if a.ctrl.State() != session.MapReady {
		return nil
	}

	switch key {
	case "up", "k":
		a.mapView.moveCrosshair(0, -1)
	case "down", "j":
		a.mapView.moveCrosshair(0, 1)
	case "left", "h":
		a.mapView.moveCrosshair(-1, 0)
	case "right", "l":
		a.mapView.moveCrosshair(1, 0)
	case "+", "=":
		a.mapView.zoomBy(1)
	case "-":
		a.mapView.zoomBy(-1)
	case "enter", " ":
		if err := a.ctrl.MapClicked(a.mapView.crosshair()); err != nil {
			return nil
		}
		a.focus = FocusForm
		a.status = ""
	}
	return nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.form.blurAll()
		a.focus = FocusMap
		return nil
	case "enter":
		w, err := a.ctrl.Submit(a.ctx)
		if err != nil {
			return nil
		}
		a.focus = FocusMap
		a.status = "Logged " + w.Description
		return nil
	case "tab", "down":
		return a.form.setFocus(a.form.focus + 1)
	case "shift+tab", "up":
		return a.form.setFocus(a.form.focus - 1)
	case "ctrl+t":
		_ = a.ctrl.TypeChanged(a.form.nextKind())
		return nil
	case "left", "right", " ":
		if a.form.focus == rowType {
			_ = a.ctrl.TypeChanged(a.form.nextKind())
			return nil
		}
	}
	return a.form.updateInput(msg)
}

func (a *App) handleListKey(key string) {
	switch key {
	case "up", "k":
		a.list.up()
	case "down", "j":
		a.list.down()
	case "enter", " ":
		id, ok := a.list.selected()
		if !ok {
			return
		}
		if a.ctrl.Activate(id) {
			if w, found := a.findWorkout(id); found {
				a.status = "Showing " + w.Description
			}
		}
	}
}

func (a *App) findWorkout(id string) (workout.Workout, bool) {
	for _, w := range a.ctrl.Workouts() {
		if w.ID == id {
			return w, true
		}
	}
	return workout.Workout{}, false
}

// reset wipes stored workouts and cold-starts the session
func (a *App) reset() tea.Cmd {
	if err := a.ctrl.Reset(a.ctx); err != nil {
		log.Printf("resetting: %v", err)
		a.alert.Alert(fmt.Sprintf("Could not reset: %v", err))
		return nil
	}
	a.boot()
	a.status = "All workouts deleted"
	return a.locate()
}

func (a *App) resize() {
	if a.width == 0 || a.height == 0 {
		return
	}
	a.mapView.setSize(a.width-sidebarWidth-6, a.height-14)
	a.list.height = max(1, (a.height-18)/3)
}

// View renders the app
func (a *App) View() string {
	if a.alert.open {
		return a.alert.View(a.width, a.height)
	}

	header := headerStyle.Render("mapty") + "  " + helpDescStyle.Render("?: help  q: quit")

	if a.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, header, renderHelp())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(), " ", a.renderMap())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, a.renderFooter())
}

func (a *App) renderSidebar() string {
	var parts []string

	if form := a.form.View(); form != "" {
		style := panelStyle
		if a.focus == FocusForm {
			style = panelFocusedStyle
		}
		parts = append(parts, style.Width(sidebarWidth).Render(form))
	}

	style := panelStyle
	if a.focus == FocusList {
		style = panelFocusedStyle
	}
	if a.showStats {
		parts = append(parts, style.Width(sidebarWidth).Render(
			panelTitleStyle.Render("Stats")+"\n"+renderStats(a.ctrl.Workouts(), a.units)))
	} else {
		parts = append(parts, style.Width(sidebarWidth).Render(
			panelTitleStyle.Render("Workouts")+"\n"+a.list.View(a.focus == FocusList)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) renderMap() string {
	style := panelStyle
	if a.focus == FocusMap {
		style = panelFocusedStyle
	}
	return style.Render(a.mapView.View())
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}

// Controller exposes the session controller, mainly for tests
func (a *App) Controller() *session.Controller {
	return a.ctrl
}
