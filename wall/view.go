package wall

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// View owns the surface configuration of the window being rendered to.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration
}

func NewView(ctx *Context) *View {
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)

	format := preferredSurfaceFormat(caps.Formats)
	slog.Info("Surface format",
		slog.Any("format", format),
		slog.Any("available", caps.Formats),
	)

	return &View{
		Context: ctx,
		surfaceConfig: &wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      format,
			PresentMode: wgpu.PresentModeFifo,
			AlphaMode:   caps.AlphaModes[0],
		},
	}
}

// Format returns the texture format the surface is configured with.
func (v *View) Format() wgpu.TextureFormat {
	return v.surfaceConfig.Format
}

// Size returns the currently configured surface size.
func (v *View) Size() (uint32, uint32) {
	return v.surfaceConfig.Width, v.surfaceConfig.Height
}

// Configure (re)configures the surface. Zero sizes are ignored, a window
// reports those while minimized.
func (v *View) Configure(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}

	v.surfaceConfig.Width = width
	v.surfaceConfig.Height = height
	v.Surface.Configure(v.Adapter, v.Device, v.surfaceConfig)
}

// preferredSurfaceFormat picks an sRGB format when the surface offers one,
// otherwise the first supported format.
func preferredSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, format := range formats {
		if format == wgpu.TextureFormatBGRA8UnormSrgb || format == wgpu.TextureFormatRGBA8UnormSrgb {
			return format
		}
	}

	if len(formats) == 0 {
		return wgpu.TextureFormatBGRA8Unorm
	}

	return formats[0]
}
