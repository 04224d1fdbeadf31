package noise

import "github.com/swarmwall/swarm/glm"

// Shade is the CPU reference of the fragment stage: scale the interpolated
// UV back to pixel coordinates, hash with the frame counter as seed and
// broadcast the scalar into an opaque grey.
func Shade(uv glm.Vec2f, params Params) glm.Vec4f {
	p := uv.Mul(params.Size)
	n := Hash(p, float32(params.Frame))

	return glm.Vec4f{n, n, n, 1}
}
