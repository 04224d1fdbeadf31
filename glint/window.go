// Package glint opens the window (or canvas) the wallpaper renders into.
package glint

import "github.com/cogentcore/webgpu/wgpu"

type Window interface {
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	SetTitle(title string)
	Run(render func() error) error
	Terminate()
}
