// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgpuhub

import "github.com/gpuhal/ghal/hal"

// resource is the shared shape of every hub-tracked object: a key into
// the owning hub, enough to remove itself on Destroy.
type resource struct {
	key hubKey
	h   *hub
}

// Destroy removes this object from its hub. Calling Destroy twice is a
// no-op the second time, since the hub key is already stale.
func (r *resource) Destroy() {
	if r.h == nil {
		return
	}
	r.h.remove(r.key)
}

// Buffer implements hal.Buffer. Host-visible buffers additionally
// carry a hostShadowBuffer; device-local buffers leave shadow nil.
type Buffer struct {
	resource
	handle nativeHandle
	shadow *hostShadowBuffer
}

// Texture implements hal.Texture.
type Texture struct {
	resource
	handle nativeHandle
}

// TextureView implements hal.TextureView.
type TextureView struct {
	resource
	handle  nativeHandle
	texture hubKey
}

// Sampler implements hal.Sampler.
type Sampler struct {
	resource
	handle nativeHandle
}

// ShaderModule implements hal.ShaderModule.
type ShaderModule struct {
	resource
	handle nativeHandle
}

// BindGroupLayout implements hal.BindGroupLayout.
type BindGroupLayout struct {
	resource
	handle  nativeHandle
	entries int
}

// BindGroup implements hal.BindGroup. It additionally records the
// cache key it was stored under; DestroyBindGroup does not use it and
// leaves the cache entry in place.
type BindGroup struct {
	resource
	handle   nativeHandle
	cacheKey bindGroupCacheKey
}

// PipelineLayout implements hal.PipelineLayout.
type PipelineLayout struct {
	resource
	handle nativeHandle
}

// RenderPipeline implements hal.RenderPipeline.
type RenderPipeline struct {
	resource
	handle nativeHandle
}

// ComputePipeline implements hal.ComputePipeline.
type ComputePipeline struct {
	resource
	handle nativeHandle
}

// CommandBuffer implements hal.CommandBuffer.
type CommandBuffer struct {
	resource
	handle nativeHandle
}

// Fence implements hal.Fence. Since the native implementation owns its
// own timeline, this wraps the value it last observed signaled.
type Fence struct {
	resource
	handle   nativeHandle
	signaled uint64
}

var (
	_ hal.Buffer          = (*Buffer)(nil)
	_ hal.Texture         = (*Texture)(nil)
	_ hal.TextureView     = (*TextureView)(nil)
	_ hal.Sampler         = (*Sampler)(nil)
	_ hal.ShaderModule    = (*ShaderModule)(nil)
	_ hal.BindGroupLayout = (*BindGroupLayout)(nil)
	_ hal.BindGroup       = (*BindGroup)(nil)
	_ hal.PipelineLayout  = (*PipelineLayout)(nil)
	_ hal.RenderPipeline  = (*RenderPipeline)(nil)
	_ hal.ComputePipeline = (*ComputePipeline)(nil)
	_ hal.CommandBuffer   = (*CommandBuffer)(nil)
	_ hal.Fence           = (*Fence)(nil)
)
