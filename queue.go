package ghal

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gpuhal/ghal/hal"
)

// defaultSubmitTimeout is a 30-second timeout sized for heavy compute
// workloads. SyncPoint.Wait does not apply it; it blocks for the timeout
// its caller passes.
const defaultSubmitTimeout = 30 * time.Second

// Queue handles command submission and data transfers.
type Queue struct {
	hal        hal.Queue
	halDevice  hal.Device
	fence      hal.Fence
	fenceValue atomic.Uint64
	device     *Device

	pendingMu sync.Mutex
	pending   []pendingFree
}

// pendingFree is a command buffer awaiting GPU completion before its
// backend resources can be recycled. Since Submit no longer blocks for
// completion, frees happen opportunistically: each Submit call polls
// the fence for previously-submitted work that has since finished.
type pendingFree struct {
	value uint64
	raw   hal.CommandBuffer
}

// reclaim frees any pending command buffers whose submission value the
// fence has already reached. It never blocks.
func (q *Queue) reclaim() {
	q.pendingMu.Lock()
	defer q.pendingMu.Unlock()
	kept := q.pending[:0]
	for _, p := range q.pending {
		reached, err := q.halDevice.Wait(q.fence, p.value, 0)
		if err == nil && reached {
			q.halDevice.FreeCommandBuffer(p.raw)
			continue
		}
		kept = append(kept, p)
	}
	q.pending = kept
}

// Submit submits command buffers for execution and returns immediately
// with a SyncPoint identifying this submission's place in the queue's
// timeline; it does not block for GPU completion. Call SyncPoint.Wait
// to block for completion, or poll it with a zero timeout.
//
// Any Present calls recorded on the encoders that produced
// commandBuffers run after Submit hands the buffers to the GPU queue,
// so presentation is ordered after this submission without requiring a
// CPU-side wait.
func (q *Queue) Submit(commandBuffers ...*CommandBuffer) (SyncPoint, error) {
	if q.hal == nil {
		return SyncPoint{}, fmt.Errorf("ghal: queue not available")
	}

	halBuffers := make([]hal.CommandBuffer, len(commandBuffers))
	for i, cb := range commandBuffers {
		halBuffers[i] = cb.halBuffer()
	}

	nextValue := q.fenceValue.Add(1)
	if err := q.hal.Submit(halBuffers, q.fence, nextValue); err != nil {
		return SyncPoint{}, fmt.Errorf("ghal: submit failed: %w", err)
	}

	for _, cb := range commandBuffers {
		for _, p := range cb.presents {
			if err := p.surface.Present(p.texture); err != nil {
				return SyncPoint{}, fmt.Errorf("ghal: present failed: %w", err)
			}
		}
	}

	sp := SyncPoint{device: q.halDevice, fence: q.fence, value: nextValue}

	q.pendingMu.Lock()
	for _, cb := range commandBuffers {
		if raw := cb.halBuffer(); raw != nil {
			q.pending = append(q.pending, pendingFree{value: nextValue, raw: raw})
		}
	}
	q.pendingMu.Unlock()
	q.reclaim()

	return sp, nil
}

// WriteBuffer writes data to a buffer.
func (q *Queue) WriteBuffer(buffer *Buffer, offset uint64, data []byte) error {
	if q.hal == nil || buffer == nil {
		return fmt.Errorf("ghal: WriteBuffer: queue or buffer is nil")
	}

	halBuffer := buffer.halBuffer()
	if halBuffer == nil {
		return fmt.Errorf("ghal: WriteBuffer: no HAL buffer")
	}

	return q.hal.WriteBuffer(halBuffer, offset, data)
}

// ReadBuffer reads data from a GPU buffer.
func (q *Queue) ReadBuffer(buffer *Buffer, offset uint64, data []byte) error {
	if q.hal == nil {
		return fmt.Errorf("ghal: queue not available")
	}
	if buffer == nil {
		return fmt.Errorf("ghal: buffer is nil")
	}

	halBuffer := buffer.halBuffer()
	if halBuffer == nil {
		return ErrReleased
	}

	return q.hal.ReadBuffer(halBuffer, offset, data)
}

// release cleans up queue resources.
func (q *Queue) release() {
	if q.fence != nil && q.halDevice != nil {
		q.halDevice.DestroyFence(q.fence)
		q.fence = nil
	}
}
