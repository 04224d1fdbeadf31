package wall

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/require"
)

func TestPreferredSurfaceFormatPicksSrgb(t *testing.T) {
	require.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb,
		preferredSurfaceFormat([]wgpu.TextureFormat{
			wgpu.TextureFormatBGRA8Unorm,
			wgpu.TextureFormatBGRA8UnormSrgb,
		}))

	require.Equal(t, wgpu.TextureFormatRGBA8UnormSrgb,
		preferredSurfaceFormat([]wgpu.TextureFormat{
			wgpu.TextureFormatRGBA8UnormSrgb,
			wgpu.TextureFormatBGRA8Unorm,
		}))
}

func TestPreferredSurfaceFormatFallsBack(t *testing.T) {
	require.Equal(t, wgpu.TextureFormatRGBA16Float,
		preferredSurfaceFormat([]wgpu.TextureFormat{wgpu.TextureFormatRGBA16Float}))

	require.Equal(t, wgpu.TextureFormatBGRA8Unorm, preferredSurfaceFormat(nil))
}
