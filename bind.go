package ghal

import (
	"fmt"

	"github.com/gpuhal/ghal/hal"
	"github.com/gpuhal/ghal/shaderdata"
	"github.com/gpuhal/ghal/types"
)

// bindableToEntry converts one resolved shaderdata.Bindable into the
// wire-level types.BindGroupEntry at the given binding index, following
// the same HAL-handle convention as BindGroupEntry.toHAL.
//
// types.BindingResource only models single buffer/sampler/texture-view
// bindings today; KindPlain, KindBufferArray, KindTextureArray, and
// KindAccelStructure bindings have no wire encoding yet and are rejected.
func bindableToEntry(binding uint32, b shaderdata.Bindable) (types.BindGroupEntry, error) {
	switch v := b.(type) {
	case shaderdata.BufferPiece:
		if v.Buffer == nil {
			return types.BindGroupEntry{}, fmt.Errorf("ghal: binding %d: buffer piece has no HAL backing", binding)
		}
		return types.BindGroupEntry{
			Binding: binding,
			Resource: types.BufferBinding{
				Buffer: v.Buffer.NativeHandle(),
				Offset: v.Offset,
				Size:   v.Size,
			},
		}, nil
	case shaderdata.SamplerBinding:
		if v.Sampler == nil {
			return types.BindGroupEntry{}, fmt.Errorf("ghal: binding %d: sampler binding has no HAL backing", binding)
		}
		return types.BindGroupEntry{
			Binding:  binding,
			Resource: types.SamplerBinding{Sampler: v.Sampler.NativeHandle()},
		}, nil
	case shaderdata.TextureViewBinding:
		if v.View == nil {
			return types.BindGroupEntry{}, fmt.Errorf("ghal: binding %d: texture view binding has no HAL backing", binding)
		}
		return types.BindGroupEntry{
			Binding:  binding,
			Resource: types.TextureViewBinding{TextureView: v.View.NativeHandle()},
		}, nil
	default:
		return types.BindGroupEntry{}, fmt.Errorf("ghal: binding %d: %T bindings have no wire encoding yet", binding, b)
	}
}

// BindGroupLayout defines the structure of resource bindings for shaders.
type BindGroupLayout struct {
	hal      hal.BindGroupLayout
	device   *Device
	released bool
}

// Release destroys the bind group layout.
func (l *BindGroupLayout) Release() {
	if l.released {
		return
	}
	l.released = true
	halDevice := l.device.halDevice()
	if halDevice != nil {
		halDevice.DestroyBindGroupLayout(l.hal)
	}
}

// PipelineLayout defines the resource layout for a pipeline.
type PipelineLayout struct {
	hal      hal.PipelineLayout
	device   *Device
	released bool
}

// Release destroys the pipeline layout.
func (l *PipelineLayout) Release() {
	if l.released {
		return
	}
	l.released = true
	halDevice := l.device.halDevice()
	if halDevice != nil {
		halDevice.DestroyPipelineLayout(l.hal)
	}
}

// BindGroup represents bound GPU resources for shader access.
type BindGroup struct {
	hal      hal.BindGroup
	device   *Device
	released bool
}

// Release destroys the bind group.
func (g *BindGroup) Release() {
	if g.released {
		return
	}
	g.released = true
	halDevice := g.device.halDevice()
	if halDevice != nil {
		halDevice.DestroyBindGroup(g.hal)
	}
}
