package wall

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/swarmwall/swarm/noise"
)

// CachedPipeline is the noise pipeline specialized for one surface format,
// together with the parameter bind group layout derived from it.
type CachedPipeline struct {
	Pipeline     *wgpu.RenderPipeline
	ParamsLayout *wgpu.BindGroupLayout
}

// PipelineCache caches specialized noise pipelines per surface format. The
// swapchain format differs between platforms and can change when the
// surface is recreated; stale formats age out of the LRU and release their
// pipeline.
type PipelineCache struct {
	device *wgpu.Device
	cache  *lru.Cache[wgpu.TextureFormat, CachedPipeline]
}

func NewPipelineCache(ctx *Context) *PipelineCache {
	cache, _ := lru.NewWithEvict[wgpu.TextureFormat, CachedPipeline](8, releasePipelineOnEviction)

	return &PipelineCache{
		device: ctx.Device,
		cache:  cache,
	}
}

// Get returns the pipeline for the given surface format, specializing a
// new one on a cache miss.
func (p *PipelineCache) Get(format wgpu.TextureFormat) (CachedPipeline, error) {
	cached, ok := p.cache.Get(format)
	if ok {
		return cached, nil
	}

	pipeline, err := specializeNoisePipeline(p.device, format)
	if err != nil {
		return CachedPipeline{}, fmt.Errorf("build pipeline: %w", err)
	}

	pc := CachedPipeline{
		Pipeline:     pipeline,
		ParamsLayout: pipeline.GetBindGroupLayout(noise.ParamsGroup),
	}

	p.cache.Add(format, pc)

	return pc, nil
}

func releasePipelineOnEviction(_ wgpu.TextureFormat, pipe CachedPipeline) {
	pipe.ParamsLayout.Release()
	pipe.Pipeline.Release()
}

func specializeNoisePipeline(dev *wgpu.Device, format wgpu.TextureFormat) (*wgpu.RenderPipeline, error) {
	shader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "noise",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: noise.ShaderSource},
	})
	if err != nil {
		return nil, fmt.Errorf("compile noise shader: %w", err)
	}

	defer shader.Release()

	return dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "noise",
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: noise.VertexEntryPoint,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: noise.FragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					Blend:     nil,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
}
