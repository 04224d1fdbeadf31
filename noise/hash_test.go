package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swarmwall/swarm/glm"
)

func TestHashIsDeterministic(t *testing.T) {
	points := []glm.Vec2f{
		{0, 0},
		{1, 1},
		{10, 10},
		{400, 300},
		{799.5, 599.5},
	}

	for _, p := range points {
		for _, seed := range []float32{0, 1, 60, 123456} {
			first := Hash(p, seed)
			second := Hash(p, seed)
			require.Equal(t, first, second, "p=%v seed=%v", p, seed)
		}
	}
}

func TestHashStaysInUnitRange(t *testing.T) {
	for seed := float32(0); seed < 6; seed++ {
		for y := float32(0.5); y < 800; y += 37 {
			for x := float32(0.5); x < 800; x += 37 {
				v := Hash(glm.Vec2f{x, y}, seed)

				require.False(t, math.IsNaN(float64(v)), "NaN at (%v, %v) seed=%v", x, y, seed)
				require.GreaterOrEqual(t, v, float32(0))
				require.Less(t, v, float32(1))
			}
		}
	}
}

func TestHashChangesWithSeed(t *testing.T) {
	p := glm.Vec2f{10, 10}

	require.NotEqual(t, Hash(p, 0), Hash(p, 1))
}

func TestHashChangesBetweenPixels(t *testing.T) {
	seed := float32(3)

	require.NotEqual(t,
		Hash(glm.Vec2f{100.5, 100.5}, seed),
		Hash(glm.Vec2f{101.5, 100.5}, seed),
	)
}

// The kernel only promises "cheap and visually plausible", so this checks
// the distribution very coarsely: the mean over a pixel grid must not
// collapse towards either end of the range.
func TestHashCoarselyCoversUnitRange(t *testing.T) {
	const n = 64

	var sum float64
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			sum += float64(Hash(glm.Vec2f{float32(x) + 0.5, float32(y) + 0.5}, 7))
		}
	}

	require.InDelta(t, 0.5, sum/(n*n), 0.2)
}
