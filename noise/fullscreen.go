package noise

import "github.com/swarmwall/swarm/glm"

// VertexCount is the vertex count of the draw call the kernel expects:
// three vertices, no index buffer, no instancing.
const VertexCount = 3

// fullscreenTriangle is the clip-space corner table of the oversized
// triangle. It is a superset of the [-1,1] square, so a single bufferless
// draw covers every pixel of the viewport; the apex past the viewport edge
// is never rasterized.
var fullscreenTriangle = [VertexCount]glm.Vec2f{
	{-1.0, -3.0},
	{-1.0, 1.0},
	{3.0, 1.0},
}

// VertexOutput mirrors the shader's per-vertex output: a homogeneous
// clip-space position and the UV coordinate the rasterizer interpolates.
type VertexOutput struct {
	Position glm.Vec4f
	UV       glm.Vec2f
}

// Vertex is the CPU reference of the vertex stage. The pipeline guarantees
// index is in [0, VertexCount).
func Vertex(index uint32) VertexOutput {
	corner := fullscreenTriangle[index]

	return VertexOutput{
		Position: glm.Vec4f{corner[0], corner[1], 0, 1},
		UV:       corner.MulScalar(0.5).AddScalar(0.5),
	}
}

// Covers reports whether the clip-space point lies inside the fullscreen
// triangle. Every point of the [-1,1] square is covered.
func Covers(p glm.Vec2f) bool {
	a := fullscreenTriangle[0]
	b := fullscreenTriangle[1]
	c := fullscreenTriangle[2]

	e0 := edge(a, b, p)
	e1 := edge(b, c, p)
	e2 := edge(c, a, p)

	return (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0)
}

func edge(a, b, p glm.Vec2f) float32 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}
