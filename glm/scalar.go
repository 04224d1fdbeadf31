package glm

import (
	"math"

	"golang.org/x/mobile/exp/f32"
)

// Sin is a float32 sine, the same width the GPU evaluates sin at.
func Sin(x float32) float32 {
	return f32.Sin(x)
}

func Floor(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

// Fract returns x - floor(x), matching the WGSL fract builtin.
func Fract(x float32) float32 {
	return x - Floor(x)
}
