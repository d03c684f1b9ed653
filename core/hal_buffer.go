package core

import (
	"github.com/gpuhal/ghal/core/track"
	"github.com/gpuhal/ghal/hal"
	"github.com/gpuhal/ghal/types"
)

// TrackerIndex, InvalidTrackerIndex and TrackingData are re-exported from
// the track package so resource types in this package can reference them
// without importing track directly.
type TrackerIndex = track.TrackerIndex

const InvalidTrackerIndex = track.InvalidTrackerIndex

type TrackingData = track.TrackingData

// BufferMapState describes a buffer's current mapping state.
type BufferMapState int32

const (
	// BufferMapStateIdle means the buffer is not mapped and not being mapped.
	BufferMapStateIdle BufferMapState = iota
	// BufferMapStatePending means a MapAsync request is in flight.
	BufferMapStatePending
	// BufferMapStateMapped means the buffer is currently mapped for host access.
	BufferMapStateMapped
)

// bufferInitChunkSize is the granularity at which NewBufferInitTracker
// tracks whether a region of a buffer holds meaningful data.
const bufferInitChunkSize = 4096

// BufferInitTracker tracks, at chunk granularity, which regions of a
// buffer have been written by the host or the GPU. Uninitialized regions
// must be cleared before they become visible to a shader, matching the
// zero-initialization guarantee required by the API.
//
// A nil *BufferInitTracker is treated as "no tracking needed" and reports
// everything as initialized; this lets zero-size and ID-based-API buffers
// use the type without a nil check at every call site.
type BufferInitTracker struct {
	chunks []bool
}

// NewBufferInitTracker creates a tracker for a buffer of the given size.
func NewBufferInitTracker(size uint64) *BufferInitTracker {
	numChunks := (size + bufferInitChunkSize - 1) / bufferInitChunkSize
	return &BufferInitTracker{chunks: make([]bool, numChunks)}
}

// IsInitialized reports whether every chunk touching [offset, offset+size)
// has been marked initialized.
func (t *BufferInitTracker) IsInitialized(offset, size uint64) bool {
	if t == nil || size == 0 {
		return true
	}
	first := offset / bufferInitChunkSize
	last := (offset + size - 1) / bufferInitChunkSize
	for i := first; i <= last && int(i) < len(t.chunks); i++ {
		if !t.chunks[i] {
			return false
		}
	}
	return true
}

// MarkInitialized marks every chunk touching [offset, offset+size) as
// initialized.
func (t *BufferInitTracker) MarkInitialized(offset, size uint64) {
	if t == nil || size == 0 {
		return
	}
	first := offset / bufferInitChunkSize
	last := (offset + size - 1) / bufferInitChunkSize
	for i := first; i <= last && int(i) < len(t.chunks); i++ {
		t.chunks[i] = true
	}
}

// NewBuffer wraps a HAL buffer as a core Buffer owned by device.
func NewBuffer(halBuffer hal.Buffer, device *Device, usage types.BufferUsage, size uint64, label string) *Buffer {
	return &Buffer{
		raw:          NewSnatchable(halBuffer),
		device:       device,
		usage:        usage,
		size:         size,
		label:        label,
		initTrck:     NewBufferInitTracker(size),
		trackingData: track.NewTrackingData(nil),
	}
}

// HasHAL reports whether this buffer is backed by a live HAL buffer.
func (b *Buffer) HasHAL() bool {
	return b.raw != nil
}

// Device returns the parent device, or nil for a buffer with no HAL backing.
func (b *Buffer) Device() *Device {
	return b.device
}

// Usage returns the usage flags the buffer was created with.
func (b *Buffer) Usage() types.BufferUsage {
	return b.usage
}

// Size returns the size, in bytes, the buffer was requested with.
func (b *Buffer) Size() uint64 {
	return b.size
}

// Label returns the buffer's debug label.
func (b *Buffer) Label() string {
	return b.label
}

// Raw returns the underlying HAL buffer, or nil once destroyed or for a
// buffer with no HAL backing. The caller must hold a SnatchGuard from the
// parent device's SnatchLock().Read().
func (b *Buffer) Raw(guard *SnatchGuard) hal.Buffer {
	if b.raw == nil {
		return nil
	}
	raw := b.raw.Get(guard)
	if raw == nil {
		return nil
	}
	return *raw
}

// IsDestroyed reports whether Destroy has been called, or whether the
// buffer never had a HAL backing to begin with.
func (b *Buffer) IsDestroyed() bool {
	if b.raw == nil {
		return true
	}
	return b.raw.IsSnatched()
}

// Destroy snatches and destroys the underlying HAL buffer. Safe to call
// more than once; only the first call has an effect.
func (b *Buffer) Destroy() {
	if b.raw == nil || b.device == nil {
		return
	}
	lock := b.device.SnatchLock()
	if lock == nil {
		return
	}
	guard := lock.Write()
	defer guard.Release()
	if raw := b.raw.Snatch(guard); raw != nil {
		(*raw).Destroy()
	}
	if b.trackingData != nil {
		b.trackingData.Release()
	}
}

// MapState returns the buffer's current mapping state.
func (b *Buffer) MapState() BufferMapState {
	return BufferMapState(b.mapState.Load())
}

// SetMapState updates the buffer's mapping state.
func (b *Buffer) SetMapState(state BufferMapState) {
	b.mapState.Store(int32(state))
}

// IsInitialized reports whether [offset, offset+size) has been written.
func (b *Buffer) IsInitialized(offset, size uint64) bool {
	b.initMu.Lock()
	defer b.initMu.Unlock()
	return b.initTrck.IsInitialized(offset, size)
}

// MarkInitialized records [offset, offset+size) as written.
func (b *Buffer) MarkInitialized(offset, size uint64) {
	b.initMu.Lock()
	defer b.initMu.Unlock()
	b.initTrck.MarkInitialized(offset, size)
}

// TrackingData returns the resource tracker bookkeeping for this buffer.
// The index is InvalidTrackerIndex until the usage tracker (CORE-006)
// assigns a real allocator.
func (b *Buffer) TrackingData() *TrackingData {
	return b.trackingData
}
