package noise

import (
	"fmt"
	"image"
	"image/color"

	"github.com/swarmwall/swarm/glm"
)

// Render evaluates the fragment reference at every pixel center and
// returns the frame as an image. It is the software twin of the GPU pass,
// for headless previews and tests.
func Render(width, height int, frame uint32) (*image.RGBA, error) {
	params := Params{
		Size:  glm.Vec2f{float32(width), float32(height)},
		Frame: frame,
	}

	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("render %dx%d: %w", width, height, err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// image rows grow downwards while clip space y points up, so
			// the top row samples uv.y near 1
			uv := glm.Vec2f{
				(float32(x) + 0.5) / params.Size[0],
				(float32(height-y) - 0.5) / params.Size[1],
			}

			n, _, _, _ := Shade(uv, params).XYZW()
			g := uint8(n * 255)

			img.SetRGBA(x, y, color.RGBA{R: g, G: g, B: g, A: 0xff})
		}
	}

	return img, nil
}
