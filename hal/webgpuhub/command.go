// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgpuhub

import (
	"fmt"

	"github.com/gpuhal/ghal/hal"
	"github.com/gpuhal/ghal/types"
)

// CommandEncoder implements hal.CommandEncoder. Recording itself is a
// thin pass-through to the native command encoder; the interesting
// bookkeeping (cache invalidation, dirty tracking) happens at resource
// Create/Destroy time and at Queue.Submit, not here.
type CommandEncoder struct {
	device *Device
	label  string
	handle nativeHandle
	ended  bool
}

func (c *CommandEncoder) BeginEncoding(label string) error {
	if label != "" {
		c.label = label
	}
	return nil
}

func (c *CommandEncoder) EndEncoding() (hal.CommandBuffer, error) {
	if c.ended {
		return nil, fmt.Errorf("ghal: webgpuhub: EndEncoding: encoder already ended")
	}
	c.ended = true
	key := c.device.objects.insert(c.handle)
	return &CommandBuffer{resource: resource{key: key, h: c.device.objects}, handle: c.handle}, nil
}

func (c *CommandEncoder) DiscardEncoding() { c.ended = true }

func (c *CommandEncoder) ResetAll(_ []hal.CommandBuffer) {}

func (c *CommandEncoder) TransitionBuffers(_ []hal.BufferBarrier) {}

func (c *CommandEncoder) TransitionTextures(_ []hal.TextureBarrier) {}

func (c *CommandEncoder) ClearBuffer(_ hal.Buffer, _, _ uint64) {}

func (c *CommandEncoder) CopyBufferToBuffer(_, _ hal.Buffer, _ []hal.BufferCopy) {}

func (c *CommandEncoder) CopyBufferToTexture(_ hal.Buffer, _ hal.Texture, _ []hal.BufferTextureCopy) {
}

func (c *CommandEncoder) CopyTextureToBuffer(_ hal.Texture, _ hal.Buffer, _ []hal.BufferTextureCopy) {
}

func (c *CommandEncoder) CopyTextureToTexture(_, _ hal.Texture, _ []hal.TextureCopy) {}

func (c *CommandEncoder) BeginRenderPass(_ *hal.RenderPassDescriptor) hal.RenderPassEncoder {
	return &RenderPassEncoder{encoder: c}
}

func (c *CommandEncoder) BeginComputePass(_ *hal.ComputePassDescriptor) hal.ComputePassEncoder {
	return &ComputePassEncoder{encoder: c}
}

// BeginAccelPass is unsupported: this backend reports RayQueryMask 0.
func (c *CommandEncoder) BeginAccelPass(_ *hal.AccelPassDescriptor) (hal.AccelPassEncoder, error) {
	return nil, hal.ErrUnsupported
}

// RenderPassEncoder implements hal.RenderPassEncoder.
type RenderPassEncoder struct {
	encoder *CommandEncoder
}

func (r *RenderPassEncoder) End() {}

func (r *RenderPassEncoder) SetPipeline(_ hal.RenderPipeline) {}

func (r *RenderPassEncoder) SetBindGroup(_ uint32, _ hal.BindGroup, _ []uint32) {}

func (r *RenderPassEncoder) SetVertexBuffer(_ uint32, _ hal.Buffer, _ uint64) {}

func (r *RenderPassEncoder) SetIndexBuffer(_ hal.Buffer, _ types.IndexFormat, _ uint64) {}

func (r *RenderPassEncoder) SetViewport(_, _, _, _, _, _ float32) {}

func (r *RenderPassEncoder) SetScissorRect(_, _, _, _ uint32) {}

func (r *RenderPassEncoder) SetBlendConstant(_ *types.Color) {}

func (r *RenderPassEncoder) SetStencilReference(_ uint32) {}

func (r *RenderPassEncoder) Draw(_, _, _, _ uint32) {}

func (r *RenderPassEncoder) DrawIndexed(_, _, _ uint32, _ int32, _ uint32) {}

func (r *RenderPassEncoder) DrawIndirect(_ hal.Buffer, _ uint64) {}

func (r *RenderPassEncoder) DrawIndexedIndirect(_ hal.Buffer, _ uint64) {}

func (r *RenderPassEncoder) ExecuteBundle(_ hal.RenderBundle) {}

// ComputePassEncoder implements hal.ComputePassEncoder.
type ComputePassEncoder struct {
	encoder *CommandEncoder
}

func (c *ComputePassEncoder) End() {}

func (c *ComputePassEncoder) SetPipeline(_ hal.ComputePipeline) {}

func (c *ComputePassEncoder) SetBindGroup(_ uint32, _ hal.BindGroup, _ []uint32) {}

func (c *ComputePassEncoder) Dispatch(_, _, _ uint32) {}

func (c *ComputePassEncoder) DispatchIndirect(_ hal.Buffer, _ uint64) {}
