package noise

import "github.com/swarmwall/swarm/glm"

// The hash constants are arbitrary but load-bearing: changing any of them
// changes every rendered frame. They must match noise.wgsl.
var (
	hashK1   = glm.Vec2f{127.1, 311.7}
	hashK2   = glm.Vec2f{269.5, 183.3}
	hashFold = glm.Vec2f{1.0, 7.0}
)

const hashScale = 43758.5453

// Hash maps a 2D coordinate and a seed to a pseudo-random scalar in [0, 1).
// It mirrors the hash function in noise.wgsl: two dot products against
// fixed vectors, a seeded sine blow-up, and a final sine folded into the
// unit range. Cheap, deterministic, and of intentionally low statistical
// quality.
func Hash(p glm.Vec2f, seed float32) float32 {
	q := glm.Vec2f{p.Dot(hashK1), p.Dot(hashK2)}.AddScalar(seed)

	s := glm.Vec2f{
		glm.Sin(q[0]) * hashScale,
		glm.Sin(q[1]) * hashScale,
	}

	return glm.Fract(glm.Sin(s.Dot(hashFold))*0.5 + 0.5)
}
