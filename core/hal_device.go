package core

import (
	"fmt"

	"github.com/gpuhal/ghal/hal"
	"github.com/gpuhal/ghal/types"
)

// NewDevice wraps a HAL device as a core Device, ready for HAL-backed
// resource creation (CreateBuffer, CreateCommandEncoder, ...).
//
// This is the constructor used by the HAL-based API. The ID-based API
// (CreateDevice in device.go) builds Device values without a raw HAL
// backing and registers them in the hub instead.
func NewDevice(halDevice hal.Device, adapter *Adapter, features types.Features, limits types.Limits, label string) *Device {
	d := &Device{
		Label:       label,
		Features:    features,
		Limits:      limits,
		adapterInfo: adapter,
		raw:         NewSnatchable(halDevice),
		snatchLock:  NewSnatchLock(),
	}
	return d
}

// HasHAL reports whether this device is backed by a live HAL device.
func (d *Device) HasHAL() bool {
	return d.raw != nil
}

// SnatchLock returns the lock coordinating access to this device's HAL
// resources. Returns nil for devices that were never HAL-backed (the
// zero-value, ID-based style).
func (d *Device) SnatchLock() *SnatchLock {
	if d.raw == nil {
		return nil
	}
	return d.snatchLock
}

// Raw returns the underlying HAL device, or nil once the device has been
// destroyed. The caller must hold a SnatchGuard from SnatchLock().Read().
func (d *Device) Raw(guard *SnatchGuard) hal.Device {
	if d.raw == nil {
		return nil
	}
	raw := d.raw.Get(guard)
	if raw == nil {
		return nil
	}
	return *raw
}

// IsValid reports whether the device has not yet been destroyed.
func (d *Device) IsValid() bool {
	if d.raw == nil {
		return false
	}
	return !d.destroyed.Load()
}

// checkValid returns ErrDeviceDestroyed if the device has been destroyed.
func (d *Device) checkValid() error {
	if !d.IsValid() {
		return fmt.Errorf("device %q: %w", d.Label, ErrDeviceDestroyed)
	}
	return nil
}

// HALCapabilities returns the capabilities of the adapter this device was
// opened from, or nil if the device has no HAL-backed adapter.
func (d *Device) HALCapabilities() *hal.Capabilities {
	if d.adapterInfo == nil {
		return nil
	}
	return d.adapterInfo.HALCapabilities()
}

// Backend returns the graphics backend of the adapter this device was
// opened from, or types.BackendEmpty if the device has no HAL-backed
// adapter.
func (d *Device) Backend() types.Backend {
	if d.adapterInfo == nil {
		return types.BackendEmpty
	}
	return d.adapterInfo.Backend
}

// AssociatedQueue returns the Queue previously set with SetAssociatedQueue,
// or nil if none has been set.
func (d *Device) AssociatedQueue() *Queue {
	return d.associatedQueue.Load()
}

// SetAssociatedQueue records the Queue this device hands out.
func (d *Device) SetAssociatedQueue(q *Queue) {
	d.associatedQueue.Store(q)
}

// Destroy snatches and destroys the underlying HAL device. Safe to call
// more than once; only the first call has an effect.
func (d *Device) Destroy() {
	if d.raw == nil {
		return
	}
	if !d.destroyed.CompareAndSwap(false, true) {
		return
	}
	guard := d.snatchLock.Write()
	defer guard.Release()
	if halDevice := d.raw.Snatch(guard); halDevice != nil {
		(*halDevice).Destroy()
	}
}

// validBufferUsageMask covers every BufferUsage bit this package knows
// about; any bit outside it is rejected by CreateBuffer.
const validBufferUsageMask = types.BufferUsageMapRead |
	types.BufferUsageMapWrite |
	types.BufferUsageCopySrc |
	types.BufferUsageCopyDst |
	types.BufferUsageIndex |
	types.BufferUsageVertex |
	types.BufferUsageUniform |
	types.BufferUsageStorage |
	types.BufferUsageIndirect |
	types.BufferUsageQueryResolve

// CreateBuffer validates desc and creates a buffer through the HAL device.
//
// Validation order matches wgpu-core: zero size, then max size, then usage
// emptiness, then usage validity, then the MAP_READ/MAP_WRITE exclusivity
// rule. A destroyed device fails fast with ErrDeviceDestroyed before any
// of those checks run.
func (d *Device) CreateBuffer(desc *types.BufferDescriptor) (*Buffer, error) {
	if err := d.checkValid(); err != nil {
		return nil, err
	}
	if desc == nil {
		return nil, fmt.Errorf("buffer descriptor is required")
	}

	if desc.Size == 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorZeroSize, Label: desc.Label}
	}
	if desc.Size > d.Limits.MaxBufferSize {
		return nil, &CreateBufferError{
			Kind:          CreateBufferErrorMaxBufferSize,
			Label:         desc.Label,
			RequestedSize: desc.Size,
			MaxSize:       d.Limits.MaxBufferSize,
		}
	}
	if desc.Usage == 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorEmptyUsage, Label: desc.Label}
	}
	if desc.Usage&^validBufferUsageMask != 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorInvalidUsage, Label: desc.Label}
	}
	if desc.Usage&types.BufferUsageMapRead != 0 && desc.Usage&types.BufferUsageMapWrite != 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorMapReadWriteExclusive, Label: desc.Label}
	}

	guard := d.snatchLock.Read()
	halDevice := d.raw.Get(guard)
	if halDevice == nil {
		guard.Release()
		return nil, ErrDeviceDestroyed
	}

	// The HAL receives a 4-byte aligned size; the buffer still reports the
	// size the caller requested.
	halDesc := &hal.BufferDescriptor{
		Label:            desc.Label,
		Size:             alignUp(desc.Size, 4),
		Usage:            desc.Usage,
		MemoryClass:      desc.MemoryClass,
		MappedAtCreation: desc.MappedAtCreation,
	}
	halBuffer, err := (*halDevice).CreateBuffer(halDesc)
	guard.Release()
	if err != nil {
		return nil, &CreateBufferError{Kind: CreateBufferErrorHAL, Label: desc.Label, HALError: err}
	}

	buffer := NewBuffer(halBuffer, d, desc.Usage, desc.Size, desc.Label)
	if desc.MappedAtCreation {
		buffer.SetMapState(BufferMapStateMapped)
		buffer.MarkInitialized(0, desc.Size)
	}
	return buffer, nil
}

func alignUp(size, align uint64) uint64 {
	return (size + align - 1) &^ (align - 1)
}
