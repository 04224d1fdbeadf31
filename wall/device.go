// Package wall is the host runtime of the wallpaper: it owns the webgpu
// device and surface, uploads the noise parameter block once per frame and
// issues the single fullscreen draw the kernel expects.
package wall

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

var logLevels = map[string]wgpu.LogLevel{
	"OFF":   wgpu.LogLevelOff,
	"ERROR": wgpu.LogLevelError,
	"WARN":  wgpu.LogLevelWarn,
	"INFO":  wgpu.LogLevelInfo,
	"DEBUG": wgpu.LogLevelDebug,
	"TRACE": wgpu.LogLevelTrace,
}

func init() {
	// surface creation and presentation must stay on the main thread
	runtime.LockOSThread()

	if level, ok := logLevels[strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL"))]; ok {
		wgpu.SetLogLevel(level)
	}
}

// Context bundles the device-side handles the wallpaper needs: the surface
// of the window, the adapter it was requested from, and the device with its
// queue. Parameter uploads and the per-frame draw both go through here.
type Context struct {
	Device  *wgpu.Device
	Queue   *wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

// New creates the webgpu context for the given window surface. The adapter
// is required to be compatible with that surface; WGPU_FORCE_FALLBACK_ADAPTER=1
// requests the software rasterizer instead.
func New(sd *wgpu.SurfaceDescriptor) (*Context, error) {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	surface := instance.CreateSurface(sd)

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    surface,
	})
	if err != nil {
		surface.Release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		surface.Release()
		return nil, fmt.Errorf("request device: %w", err)
	}

	return &Context{
		Device:  device,
		Queue:   device.GetQueue(),
		Surface: surface,
		Adapter: adapter,
	}, nil
}

// Release tears the context down in reverse creation order. Calling it on
// an already released or zero value context is a no-op.
func (c *Context) Release() {
	if c.Queue != nil {
		c.Queue.Release()
		c.Queue = nil
	}

	if c.Device != nil {
		c.Device.Release()
		c.Device = nil
	}

	if c.Adapter != nil {
		c.Adapter.Release()
		c.Adapter = nil
	}

	if c.Surface != nil {
		c.Surface.Release()
		c.Surface = nil
	}
}
