package ghal

import (
	"github.com/gpuhal/ghal/hal"
	"github.com/gpuhal/ghal/resolve"
	"github.com/gpuhal/ghal/shaderdata"
)

// RenderPipeline represents a configured render pipeline.
type RenderPipeline struct {
	hal           hal.RenderPipeline
	device        *Device
	shaderLayout  shaderdata.Layout
	shaderMapping *resolve.ShaderDataMapping
	released      bool
}

// ShaderMapping returns the binding-resolution result computed from this
// pipeline's ShaderLayout, or nil if the pipeline was created without one.
// Pass it as BindGroupDescriptor.Mapping when building bind groups for
// this pipeline.
func (p *RenderPipeline) ShaderMapping() *resolve.ShaderDataMapping {
	return p.shaderMapping
}

// Release destroys the render pipeline.
func (p *RenderPipeline) Release() {
	if p.released {
		return
	}
	p.released = true
	if p.shaderMapping != nil {
		p.device.pipelineCacheFor().Forget(resolve.PipelineKey{Pipeline: p.hal, Layout: p.shaderLayout})
	}
	halDevice := p.device.halDevice()
	if halDevice != nil {
		halDevice.DestroyRenderPipeline(p.hal)
	}
}

// ComputePipeline represents a configured compute pipeline.
type ComputePipeline struct {
	hal           hal.ComputePipeline
	device        *Device
	shaderLayout  shaderdata.Layout
	shaderMapping *resolve.ShaderDataMapping
	released      bool
}

// ShaderMapping returns the binding-resolution result computed from this
// pipeline's ShaderLayout, or nil if the pipeline was created without one.
func (p *ComputePipeline) ShaderMapping() *resolve.ShaderDataMapping {
	return p.shaderMapping
}

// Release destroys the compute pipeline.
func (p *ComputePipeline) Release() {
	if p.released {
		return
	}
	p.released = true
	if p.shaderMapping != nil {
		p.device.pipelineCacheFor().Forget(resolve.PipelineKey{Pipeline: p.hal, Layout: p.shaderLayout})
	}
	halDevice := p.device.halDevice()
	if halDevice != nil {
		halDevice.DestroyComputePipeline(p.hal)
	}
}
