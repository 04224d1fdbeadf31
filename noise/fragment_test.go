package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swarmwall/swarm/glm"
)

func TestShadeCenterPixelScenario(t *testing.T) {
	params := Params{Size: glm.Vec2f{800, 600}, Frame: 0}
	uv := glm.Vec2f{0.5, 0.5}

	// the center UV must scale back to the center pixel coordinate
	require.Equal(t, glm.Vec2f{400, 300}, uv.Mul(params.Size))

	got, _, _, _ := Shade(uv, params).XYZW()
	require.Equal(t, Hash(glm.Vec2f{400, 300}, 0), got)
}

func TestShadeIsOpaqueGrey(t *testing.T) {
	params := Params{Size: glm.Vec2f{640, 480}, Frame: 42}

	r, g, b, a := Shade(glm.Vec2f{0.25, 0.75}, params).XYZW()
	require.Equal(t, r, g)
	require.Equal(t, g, b)
	require.Equal(t, float32(1), a)
}

func TestShadeSinglePixelSurface(t *testing.T) {
	params := Params{Size: glm.Vec2f{1, 1}, Frame: 0}

	v, _, _, _ := Shade(glm.Vec2f{0.5, 0.5}, params).XYZW()
	require.False(t, math.IsNaN(float64(v)))
	require.False(t, math.IsInf(float64(v), 0))
	require.GreaterOrEqual(t, v, float32(0))
	require.Less(t, v, float32(1))
}

func TestShadeChangesBetweenFrames(t *testing.T) {
	size := glm.Vec2f{800, 600}
	uv := glm.Vec2f{0.5, 0.5}

	first, _, _, _ := Shade(uv, Params{Size: size, Frame: 0}).XYZW()
	second, _, _, _ := Shade(uv, Params{Size: size, Frame: 1}).XYZW()
	require.NotEqual(t, first, second)
}
