package noise

import (
	"fmt"
	"math"

	"github.com/swarmwall/swarm/glm"
)

// ParamsSize is the byte size of the uniform buffer backing Params. The
// uniform buffer layout rules require a multiple of 16 bytes.
const ParamsSize = 16

// Params is the uniform parameter block at group 0, binding 0. The host
// writes it once per frame before the draw call; the shaders only read it.
// Field order and padding must stay in sync with the Params struct in
// noise.wgsl.
type Params struct {
	// Size is the render target size in pixels. Both components must be
	// positive and finite, see Validate.
	Size glm.Vec2f

	// Frame is the host's frame counter, used as the noise seed. Wrapping
	// is fine, the hash only needs the value to change between frames.
	Frame uint32

	_ uint32 // trailing padding up to ParamsSize
}

// Bytes returns a view of the params memory, ready for a buffer write.
// The slice aliases p and must not outlive it.
func (p *Params) Bytes() []byte {
	return AsByteSlice(p)
}

// Validate rejects parameter blocks outside the kernel's precondition:
// size components must be positive and finite. The shaders have no error
// path of their own, a degenerate size would propagate NaNs into the
// output instead of failing, so the host checks here before uploading.
func (p *Params) Validate() error {
	w, h := p.Size.XY()

	if !(w > 0) || !(h > 0) {
		return fmt.Errorf("surface size must be positive, got %gx%g", w, h)
	}

	if math.IsInf(float64(w), 0) || math.IsInf(float64(h), 0) {
		return fmt.Errorf("surface size must be finite, got %gx%g", w, h)
	}

	return nil
}
