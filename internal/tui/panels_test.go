package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapty/internal/config"
	"mapty/internal/session"
	"mapty/internal/workout"
)

func TestFormVariantField(t *testing.T) {
	f := newFormPanel()
	f.Show()
	require.Equal(t, rowDistance, f.focus)

	f.setFocus(rowVariant)
	assert.Same(t, &f.cadence, f.input(rowVariant))
	assert.True(t, f.cadence.Focused())

	f.ShowVariantField(workout.Cycling)
	assert.Same(t, &f.elevation, f.input(rowVariant))
	assert.True(t, f.elevation.Focused())
	assert.False(t, f.cadence.Focused())
	assert.Contains(t, f.View(), "Elev Gain")
}

func TestFormValuesAndClear(t *testing.T) {
	f := newFormPanel()
	f.distance.SetValue("5")
	f.duration.SetValue("30")
	f.cadence.SetValue("170")
	f.elevation.SetValue("12")

	assert.Equal(t, session.FormValues{
		Kind:      workout.Running,
		Distance:  "5",
		Duration:  "30",
		Cadence:   "170",
		Elevation: "12",
	}, f.Values())

	f.Clear()
	assert.Equal(t, session.FormValues{Kind: workout.Running}, f.Values())
}

func TestFormHideWithoutAnimation(t *testing.T) {
	f := newFormPanel()
	f.Show()

	f.Hide(false)
	assert.False(t, f.visible)
	assert.Contains(t, f.View(), "Workout saved")

	f.SetAnimated(true)
	assert.Empty(t, f.View())
}

func TestFormHideWithAnimation(t *testing.T) {
	f := newFormPanel()
	f.Show()

	f.Hide(true)
	assert.Empty(t, f.View())
}

func TestListNewestFirst(t *testing.T) {
	l := newListPanel(NewUnits(config.DefaultConfig().Display))
	first := session.EntryFor(workout.NewRunning(home, 5, 30, 170))
	second := session.EntryFor(workout.NewCycling(home, 27, 95, 523))

	l.Add(first)
	l.Add(second)

	id, ok := l.selected()
	require.True(t, ok)
	assert.Equal(t, second.ID, id)

	l.down()
	id, _ = l.selected()
	assert.Equal(t, first.ID, id)

	l.down()
	id, _ = l.selected()
	assert.Equal(t, first.ID, id)

	view := l.View(true)
	assert.Contains(t, view, first.Description)
	assert.Contains(t, view, second.Description)
}

func TestListEmpty(t *testing.T) {
	l := newListPanel(NewUnits(config.DefaultConfig().Display))
	_, ok := l.selected()
	assert.False(t, ok)
	assert.Contains(t, l.View(false), "No workouts yet")
}

func TestLoopScheduler(t *testing.T) {
	s := newLoopScheduler()
	calls := 0

	s.After(time.Second, func() { calls++ })
	cmds := s.drain()
	require.Len(t, cmds, 1)
	assert.Empty(t, s.drain())

	s.fire(1)
	s.fire(1)
	assert.Equal(t, 1, calls)
}

func TestUnits(t *testing.T) {
	km := NewUnits(config.DisplayConfig{DistanceUnit: "km", PaceUnit: "min/km"})
	assert.Equal(t, "km", km.DistanceLabel())
	assert.Equal(t, "6.0", km.FormatPaceValue(6))
	assert.Equal(t, "17.1", km.FormatSpeedValue(17.1))

	mi := NewUnits(config.DisplayConfig{DistanceUnit: "mi", PaceUnit: "min/mi"})
	assert.True(t, mi.IsMiles())
	assert.InDelta(t, 6*kmPerMile, mi.Pace(6), 1e-9)
	assert.InDelta(t, 16.09344/kmPerMile, mi.Speed(16.09344), 1e-9)
}

func TestRenderStats(t *testing.T) {
	units := NewUnits(config.DefaultConfig().Display)

	out := renderStats(nil, units)
	assert.Contains(t, out, "Log at least two workouts")

	ws := []workout.Workout{
		workout.NewRunning(home, 5, 30, 170),
		workout.NewRunning(home, 10, 55, 172),
	}
	out = renderStats(ws, units)
	assert.Contains(t, out, "Running pace (min/km)")
	assert.Contains(t, out, "┤")
	assert.Contains(t, out, "Personal records")
	assert.Contains(t, out, "10K")
}
