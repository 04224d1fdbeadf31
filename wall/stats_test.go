package wall

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFrameTimesSmoothing(t *testing.T) {
	var times FrameTimes

	for i := 0; i < 64; i++ {
		times.observe(16 * time.Millisecond)
		times.FrameCount++
	}

	require.Equal(t, 16*time.Millisecond, times.Delta)
	require.Equal(t, 16*time.Millisecond, times.MaxDuration)
	require.InDelta(t, 62.5, times.FPS(), 1.0)
}

func TestFrameTimesTracksMax(t *testing.T) {
	var times FrameTimes

	times.observe(16 * time.Millisecond)
	times.observe(40 * time.Millisecond)
	times.observe(16 * time.Millisecond)

	require.Equal(t, 40*time.Millisecond, times.MaxDuration)
	require.Equal(t, 16*time.Millisecond, times.Delta)
}

func TestFrameTimesTickCadence(t *testing.T) {
	var times FrameTimes

	ticks := 0
	for i := 0; i < 120; i++ {
		if times.Tick() {
			ticks++
		}
	}

	require.Equal(t, 2, ticks)
	require.EqualValues(t, 120, times.FrameCount)
}

func TestFrameTimesEmptyFPS(t *testing.T) {
	var times FrameTimes

	require.Equal(t, 0.0, times.FPS())
}
