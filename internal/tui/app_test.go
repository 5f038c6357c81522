package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapty/internal/config"
	"mapty/internal/locate"
	"mapty/internal/session"
	"mapty/internal/store"
	"mapty/internal/workout"
)

var home = workout.Coordinate{Lat: 51.5074, Lng: -0.1278}

func newTestApp(t *testing.T, sensor session.Sensor, kv workout.KV) *App {
	t.Helper()
	if kv == nil {
		kv = store.NewMemory()
	}
	a := NewApp(Deps{Sensor: sensor, Storage: kv, Config: config.DefaultConfig()})
	a.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return a
}

// readyApp returns an app that has already received its location
func readyApp(t *testing.T, kv workout.KV) *App {
	t.Helper()
	a := newTestApp(t, locate.NewStatic(home), kv)
	a.Update(a.Init()())
	require.Equal(t, session.MapReady, a.Controller().State())
	return a
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(a *App, msgs ...tea.Msg) {
	for _, m := range msgs {
		a.Update(m)
	}
}

func TestAppLocatesAndDrawsMap(t *testing.T) {
	a := readyApp(t, nil)

	assert.True(t, a.mapView.ready)
	assert.Equal(t, home, a.mapView.center)
	assert.Equal(t, 13, a.mapView.zoom)
	assert.Contains(t, a.View(), "zoom 13")
}

func TestAppLocationFailureAlerts(t *testing.T) {
	a := newTestApp(t, locate.Unavailable(), nil)
	a.Update(a.Init()())

	assert.Equal(t, session.AwaitingLocation, a.Controller().State())
	require.True(t, a.alert.open)
	assert.Contains(t, a.View(), session.MsgLocationUnavailable)

	press(a, runes("x"))
	assert.False(t, a.alert.open)
	assert.Contains(t, a.View(), "Waiting for your location")
}

func TestAppLogsRunningWorkout(t *testing.T) {
	a := readyApp(t, nil)

	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, FocusForm, a.focus)
	require.True(t, a.form.visible)

	press(a,
		runes("5"), tea.KeyMsg{Type: tea.KeyTab},
		runes("30"), tea.KeyMsg{Type: tea.KeyTab},
		runes("170"), tea.KeyMsg{Type: tea.KeyEnter},
	)

	require.Equal(t, 1, a.Controller().Len())
	w := a.Controller().Workouts()[0]
	assert.Equal(t, workout.Running, w.Kind)
	assert.Equal(t, home, w.Coordinate)
	assert.InDelta(t, 6.0, w.Metric(), 1e-9)

	assert.Equal(t, FocusMap, a.focus)
	assert.False(t, a.form.visible)
	assert.Empty(t, a.form.distance.Value())
	assert.Len(t, a.list.entries, 1)
	assert.Len(t, a.mapView.markers, 1)
	assert.Contains(t, a.status, "Running on")

	// The form's slot holds a confirmation until the scheduled callback fires
	assert.Contains(t, a.View(), "Workout saved")
	press(a, timerFiredMsg{sched: a.sched, id: 1})
	assert.NotContains(t, a.View(), "Workout saved")
}

func TestAppLogsCyclingWorkout(t *testing.T) {
	a := readyApp(t, nil)

	press(a,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyCtrlT},
		runes("27"), tea.KeyMsg{Type: tea.KeyTab},
		runes("95"), tea.KeyMsg{Type: tea.KeyTab},
		runes("-50"), tea.KeyMsg{Type: tea.KeyEnter},
	)

	require.Equal(t, 1, a.Controller().Len())
	w := a.Controller().Workouts()[0]
	assert.Equal(t, workout.Cycling, w.Kind)
	assert.InDelta(t, -50.0, w.Cycling.ElevationGainM, 1e-9)
	assert.InDelta(t, 27/(95/60.0), w.Metric(), 1e-9)
}

func TestAppRejectsInvalidInput(t *testing.T) {
	a := readyApp(t, nil)

	press(a, tea.KeyMsg{Type: tea.KeyEnter}, runes("-5"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Zero(t, a.Controller().Len())
	require.True(t, a.alert.open)
	assert.Contains(t, a.View(), session.MsgInvalidInput)

	// Dismissing the alert leaves the form as it was
	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, a.form.visible)
	assert.Equal(t, FocusForm, a.focus)
	assert.Equal(t, "-5", a.form.distance.Value())
}

func TestAppTypeToggleOnTypeRow(t *testing.T) {
	a := readyApp(t, nil)

	press(a, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, rowType, a.form.focus)

	press(a, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, workout.Cycling, a.Controller().Kind())
	assert.Equal(t, workout.Cycling, a.form.kind)

	press(a, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, workout.Running, a.Controller().Kind())
}

func TestAppRehydratesStoredWorkouts(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	s := workout.NewStore()
	require.NoError(t, s.Append(workout.NewRunning(workout.Coordinate{Lat: 51.51, Lng: -0.12}, 5, 30, 170)))
	require.NoError(t, s.Append(workout.NewCycling(workout.Coordinate{Lat: 51.50, Lng: -0.13}, 27, 95, 523)))
	require.NoError(t, s.Save(ctx, kv))

	a := readyApp(t, kv)

	assert.Equal(t, 2, a.Controller().Len())
	assert.Len(t, a.mapView.markers, 2)
	require.Len(t, a.list.entries, 2)
	// Newest first
	assert.Equal(t, workout.Cycling, a.list.entries[0].Kind)
}

func TestAppActivateCentresMap(t *testing.T) {
	a := readyApp(t, nil)
	target := workout.Coordinate{Lat: 51.52, Lng: -0.10}

	a.mapView.cx, a.mapView.cy = 0, 0
	a.mapView.center = target
	press(a, tea.KeyMsg{Type: tea.KeyEnter},
		runes("5"), tea.KeyMsg{Type: tea.KeyTab},
		runes("30"), tea.KeyMsg{Type: tea.KeyTab},
		runes("170"), tea.KeyMsg{Type: tea.KeyEnter},
	)
	require.Equal(t, 1, a.Controller().Len())

	// Wander away, then jump back from the list
	a.mapView.CenterView(home, 5, false)
	press(a, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FocusList, a.focus)
	press(a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, target, a.mapView.center)
	assert.Equal(t, 13, a.mapView.zoom)
	assert.Contains(t, a.View(), "moved to workout")
	assert.Contains(t, a.status, "Showing")
}

func TestAppReset(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	a := readyApp(t, kv)

	press(a, tea.KeyMsg{Type: tea.KeyEnter},
		runes("5"), tea.KeyMsg{Type: tea.KeyTab},
		runes("30"), tea.KeyMsg{Type: tea.KeyTab},
		runes("170"), tea.KeyMsg{Type: tea.KeyEnter},
	)
	require.Equal(t, 1, a.Controller().Len())
	_, ok, err := kv.Get(ctx, workout.StorageKey)
	require.NoError(t, err)
	require.True(t, ok)

	old := a.Controller()
	cmd := a.reset()
	require.NotNil(t, cmd)

	_, ok, err = kv.Get(ctx, workout.StorageKey)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NotSame(t, old, a.Controller())
	assert.Equal(t, session.AwaitingLocation, a.Controller().State())
	assert.Empty(t, a.list.entries)
	assert.Empty(t, a.mapView.markers)

	// A location answer addressed to the discarded controller is dropped
	press(a, locatedMsg{ctrl: old, coord: home})
	assert.Equal(t, session.AwaitingLocation, a.Controller().State())

	press(a, cmd())
	assert.Equal(t, session.MapReady, a.Controller().State())
	assert.Zero(t, a.Controller().Len())
}

func TestAppGlobalKeys(t *testing.T) {
	a := readyApp(t, nil)

	press(a, runes("?"))
	assert.True(t, a.showHelp)
	assert.Contains(t, a.View(), "Keyboard Shortcuts")
	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, a.showHelp)

	press(a, runes("g"))
	assert.True(t, a.showStats)
	assert.Contains(t, a.View(), "Running pace")

	cmd := a.handleKey(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppTypingQInFormDoesNotQuit(t *testing.T) {
	a := readyApp(t, nil)

	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	cmd := a.handleKey(runes("q"))
	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		assert.False(t, quit)
	}
	assert.Equal(t, "q", a.form.distance.Value())
}
