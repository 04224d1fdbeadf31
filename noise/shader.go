// Package noise contains the animated noise rendering kernel: the WGSL
// shader pair that fills the screen with per-pixel hash noise, the uniform
// parameter block both stages share, and a CPU reference of the same math
// that backs the software preview and the tests.
package noise

import _ "embed"

// ShaderSource is the WGSL module holding both pipeline stages.
//
//go:embed noise.wgsl
var ShaderSource string

const (
	// VertexEntryPoint emits the fullscreen triangle.
	VertexEntryPoint = "vs_main"

	// FragmentEntryPoint shades each covered pixel with hash noise.
	FragmentEntryPoint = "fs_main"
)

// ParamsGroup and ParamsBinding locate the uniform parameter block in the
// shader's bind group layout.
const (
	ParamsGroup   = 0
	ParamsBinding = 0
)
