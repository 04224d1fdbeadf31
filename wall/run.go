package wall

import (
	"fmt"
	"log/slog"

	"github.com/swarmwall/swarm/glint"
)

// RunOptions configure the wallpaper window.
type RunOptions struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string
}

func (o RunOptions) withDefaults() RunOptions {
	if o.WindowWidth == 0 {
		o.WindowWidth = 800
	}

	if o.WindowHeight == 0 {
		o.WindowHeight = 600
	}

	if o.WindowTitle == "" {
		o.WindowTitle = "Swarm Wallpaper"
	}

	return o
}

// Run opens a window and renders animated noise into it until the window
// is closed.
func Run(opts RunOptions) error {
	opts = opts.withDefaults()

	win, err := glint.NewWindow(opts.WindowWidth, opts.WindowHeight, opts.WindowTitle)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	ctx, err := New(win.SurfaceDescriptor())
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	view := NewView(ctx)

	renderer, err := NewRenderer(ctx, view)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	defer renderer.Release()

	var times FrameTimes
	var surfaceWidth, surfaceHeight uint32

	return win.Run(func() error {
		width, height := win.GetSize()
		if width == 0 || height == 0 {
			// minimized, nothing to draw
			return nil
		}

		if width != surfaceWidth || height != surfaceHeight {
			slog.Debug("Resize surface",
				slog.Int("width", int(width)),
				slog.Int("height", int(height)),
			)

			view.Configure(width, height)

			if err := renderer.Resize(width, height); err != nil {
				return fmt.Errorf("resize renderer: %w", err)
			}

			surfaceWidth, surfaceHeight = width, height
		}

		if err := renderer.RenderFrame(); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}

		if times.Tick() {
			win.SetTitle(fmt.Sprintf("%s  |  %.1f FPS", opts.WindowTitle, times.FPS()))
		}

		return nil
	})
}
