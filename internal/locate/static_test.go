package locate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapty/internal/config"
	"mapty/internal/workout"
)

func TestFromConfig(t *testing.T) {
	lat, lng := 51.5, -0.1

	t.Run("configured", func(t *testing.T) {
		s := FromConfig(config.LocationConfig{Latitude: &lat, Longitude: &lng})
		got, err := s.CurrentPosition(context.Background())
		require.NoError(t, err)
		assert.Equal(t, workout.Coordinate{Lat: 51.5, Lng: -0.1}, got)
	})

	t.Run("missing longitude", func(t *testing.T) {
		s := FromConfig(config.LocationConfig{Latitude: &lat})
		_, err := s.CurrentPosition(context.Background())
		assert.ErrorIs(t, err, ErrNoFix)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := FromConfig(config.LocationConfig{}).CurrentPosition(context.Background())
		assert.ErrorIs(t, err, ErrNoFix)
	})
}

func TestCurrentPositionCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStatic(workout.Coordinate{Lat: 1, Lng: 2}).CurrentPosition(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
