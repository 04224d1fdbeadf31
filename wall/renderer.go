package wall

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/swarmwall/swarm/glm"
	"github.com/swarmwall/swarm/noise"
)

// maxAcquireFailures bounds how often acquiring the surface texture may
// fail in a row before the failure is treated as fatal.
const maxAcquireFailures = 8

// Renderer owns the uniform parameter block and draws one noise frame per
// call. The parameter buffer is written fully before each draw; the device
// only ever reads it.
type Renderer struct {
	ctx   *Context
	view  *View
	cache *PipelineCache

	paramsBuf *wgpu.Buffer
	bindGroup *wgpu.BindGroup
	boundTo   wgpu.TextureFormat

	params          noise.Params
	acquireFailures int
}

func NewRenderer(ctx *Context, view *View) (*Renderer, error) {
	params := noise.Params{Size: glm.Vec2f{1, 1}}

	paramsBuf, err := ctx.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "params",
		Contents: params.Bytes(),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create params buffer: %w", err)
	}

	return &Renderer{
		ctx:       ctx,
		view:      view,
		cache:     NewPipelineCache(ctx),
		paramsBuf: paramsBuf,
		params:    params,
	}, nil
}

// Resize updates the surface size fed into the kernel. Sizes the kernel's
// precondition excludes are rejected before anything reaches the device.
func (r *Renderer) Resize(width, height uint32) error {
	params := r.params
	params.Size = glm.Vec2f{float32(width), float32(height)}

	if err := params.Validate(); err != nil {
		return err
	}

	r.params = params
	return nil
}

// RenderFrame advances the frame counter, uploads the parameter block and
// renders one frame to the surface.
func (r *Renderer) RenderFrame() error {
	r.params.Frame++

	if err := r.ctx.Queue.WriteBuffer(r.paramsBuf, 0, r.params.Bytes()); err != nil {
		return fmt.Errorf("write params: %w", err)
	}

	cached, err := r.cache.Get(r.view.Format())
	if err != nil {
		return err
	}

	if err := r.bindParams(cached); err != nil {
		return err
	}

	screen, err := r.ctx.Surface.GetCurrentTexture()
	if err != nil {
		if err := r.noteAcquireFailure(err); err != nil {
			return err
		}

		// a lost or outdated swapchain recovers after reconfiguration,
		// skip this frame and draw into the fresh one
		width, height := r.view.Size()
		r.view.Configure(width, height)
		return nil
	}

	r.acquireFailures = 0

	var cleanup frameCleanup
	defer cleanup.Release()

	cleanup.Add(screen)

	screenView, err := screen.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create surface view: %w", err)
	}
	cleanup.Add(screenView)

	encoder, err := r.ctx.Device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	cleanup.Add(encoder)

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "noise",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       screenView,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{A: 1},
			},
		},
	})
	cleanup.Add(pass)

	pass.SetPipeline(cached.Pipeline)
	pass.SetBindGroup(noise.ParamsGroup, r.bindGroup, nil)
	pass.Draw(noise.VertexCount, 1, 0, 0)

	if err := pass.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish encoder: %w", err)
	}
	cleanup.Add(cmd)

	r.ctx.Queue.Submit(cmd)
	r.ctx.Surface.Present()

	return nil
}

// noteAcquireFailure counts consecutive surface acquisition failures. A
// lost or outdated swapchain recovers after reconfiguration, but a surface
// that keeps failing (an exhausted device, for instance) must not be
// reconfigured forever.
func (r *Renderer) noteAcquireFailure(cause error) error {
	r.acquireFailures++
	if r.acquireFailures >= maxAcquireFailures {
		return fmt.Errorf("acquire surface texture (%d consecutive failures): %w",
			r.acquireFailures, cause)
	}

	slog.Warn("Could not acquire surface texture, reconfiguring",
		slog.Any("error", cause),
		slog.Int("attempt", r.acquireFailures),
	)

	return nil
}

// bindParams (re)creates the parameter bind group. The layout belongs to
// the format-specialized pipeline, so the group follows format changes.
func (r *Renderer) bindParams(cached CachedPipeline) error {
	if r.bindGroup != nil && r.boundTo == r.view.Format() {
		return nil
	}

	if r.bindGroup != nil {
		r.bindGroup.Release()
		r.bindGroup = nil
	}

	bindGroup, err := r.ctx.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "params",
		Layout: cached.ParamsLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: noise.ParamsBinding,
				Buffer:  r.paramsBuf,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create params bind group: %w", err)
	}

	r.bindGroup = bindGroup
	r.boundTo = r.view.Format()

	return nil
}

func (r *Renderer) Release() {
	if r.bindGroup != nil {
		r.bindGroup.Release()
		r.bindGroup = nil
	}

	if r.paramsBuf != nil {
		r.paramsBuf.Release()
		r.paramsBuf = nil
	}
}
