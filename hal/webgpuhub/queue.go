// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgpuhub

import (
	"github.com/gpuhal/ghal/hal"
)

// Queue implements hal.Queue. Submit flushes every dirty host-shadow
// buffer before handing command buffers to the native queue, so a
// submission always observes the writes that preceded it, and never
// partially observes a write racing in mid-flush.
type Queue struct {
	device *Device
}

func (q *Queue) Submit(commandBuffers []hal.CommandBuffer, fence hal.Fence, fenceValue uint64) error {
	q.device.dirty.flush(func(b *hostShadowBuffer) {
		// A real binding issues wgpuQueueWriteBuffer(b.handle, ...) here;
		// nothing to upload to without a live native instance yet.
		_ = b
	})

	for _, cb := range commandBuffers {
		_, ok := cb.(*CommandBuffer)
		if !ok {
			return hal.ErrDriverBug
		}
	}

	if f, ok := fence.(*Fence); ok {
		f.signaled = fenceValue
	}
	return nil
}

func (q *Queue) WriteBuffer(buffer hal.Buffer, offset uint64, data []byte) {
	b, ok := buffer.(*Buffer)
	if !ok || b.shadow == nil {
		return
	}
	b.shadow.write(offset, data)
}

func (q *Queue) WriteTexture(_ *hal.ImageCopyTexture, _ []byte, _ *hal.ImageDataLayout, _ *hal.Extent3D) {
}

func (q *Queue) Present(surface hal.Surface, texture hal.SurfaceTexture) error {
	s, ok := surface.(*Surface)
	if !ok {
		return hal.ErrDriverBug
	}
	s.DiscardTexture(texture)
	return nil
}

// GetTimestampPeriod reports 1 nanosecond per tick; the native
// implementation's actual calibration value is read from
// wgpuAdapterGetInfo once that call is wired through native.go.
func (q *Queue) GetTimestampPeriod() float32 { return 1.0 }
