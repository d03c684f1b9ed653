package ghal

import (
	"fmt"

	"github.com/gpuhal/ghal/hal"
	"github.com/gpuhal/ghal/shaderdata"
	"github.com/gpuhal/ghal/types"
)

// capabilities returns the HAL capabilities backing this device, or nil if
// the device has no HAL-backed adapter.
func (d *Device) capabilities() *hal.Capabilities {
	if d.core == nil {
		return nil
	}
	return d.core.HALCapabilities()
}

// ResourceArrayDescriptor describes a densely indexed array of buffers or
// textures bound to a shader as one array binding.
type ResourceArrayDescriptor = types.ResourceArrayDescriptor

// BufferArray is a densely indexed, fixed-capacity collection of buffers
// bound to a shader as a single KindBufferArray binding.
//
// Not safe for concurrent use without external synchronization, matching
// the rest of this package's resource types.
type BufferArray struct {
	device *Device
	label  string
	slots  []*Buffer
	free   []uint32
}

// CreateBufferArray creates an empty buffer array with the given capacity.
func (d *Device) CreateBufferArray(desc *ResourceArrayDescriptor) (*BufferArray, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("ghal: resource array descriptor is nil")
	}
	return &BufferArray{device: d, label: desc.Label, slots: make([]*Buffer, desc.Capacity)}, nil
}

// Allocate places buf into the first free slot, reusing the most recently
// freed slot first, and returns its index.
func (a *BufferArray) Allocate(buf *Buffer) (uint32, error) {
	if buf == nil {
		return 0, fmt.Errorf("ghal: buffer array %q: cannot allocate a nil buffer", a.label)
	}
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx] = buf
		return idx, nil
	}
	for i, s := range a.slots {
		if s == nil {
			a.slots[i] = buf
			return uint32(i), nil
		}
	}
	return 0, fmt.Errorf("ghal: buffer array %q is at capacity (%d)", a.label, len(a.slots))
}

// Free releases the slot at index, making it available for a future
// Allocate call. The buffer itself is not destroyed.
func (a *BufferArray) Free(index uint32) error {
	if int(index) >= len(a.slots) {
		return fmt.Errorf("ghal: buffer array %q: index %d out of range (capacity %d)", a.label, index, len(a.slots))
	}
	if a.slots[index] == nil {
		return fmt.Errorf("ghal: buffer array %q: index %d is already free", a.label, index)
	}
	a.slots[index] = nil
	a.free = append(a.free, index)
	return nil
}

// BindAll returns a shaderdata.Bindable covering every occupied slot, in
// index order, suitable for Filler.Fill to bind to a KindBufferArray
// declaration. Returns hal.ErrUnsupported if the device's backend has no
// bindless array support.
func (a *BufferArray) BindAll() (shaderdata.Bindable, error) {
	caps := a.device.capabilities()
	if caps == nil || caps.MaxBindlessArraySlots == 0 {
		return nil, fmt.Errorf("ghal: buffer array %q: bindless resource arrays: %w", a.label, hal.ErrUnsupported)
	}
	if uint32(len(a.slots)) > caps.MaxBindlessArraySlots {
		return nil, fmt.Errorf("ghal: buffer array %q: capacity %d exceeds backend limit %d", a.label, len(a.slots), caps.MaxBindlessArraySlots)
	}

	pieces := make([]shaderdata.BufferPiece, 0, len(a.slots))
	for _, buf := range a.slots {
		if buf == nil {
			continue
		}
		halBuf := buf.halBuffer()
		if halBuf == nil {
			return nil, fmt.Errorf("ghal: buffer array %q: a bound buffer has no live HAL backing", a.label)
		}
		pieces = append(pieces, shaderdata.BufferPiece{Buffer: halBuf, Offset: 0, Size: buf.Size()})
	}
	return shaderdata.BufferArray{Pieces: pieces}, nil
}

// TextureArray is a densely indexed, fixed-capacity collection of texture
// views bound to a shader as a single KindTextureArray binding.
type TextureArray struct {
	device *Device
	label  string
	slots  []*TextureView
	free   []uint32
}

// CreateTextureArray creates an empty texture array with the given capacity.
func (d *Device) CreateTextureArray(desc *ResourceArrayDescriptor) (*TextureArray, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("ghal: resource array descriptor is nil")
	}
	return &TextureArray{device: d, label: desc.Label, slots: make([]*TextureView, desc.Capacity)}, nil
}

// Allocate places view into the first free slot and returns its index.
func (a *TextureArray) Allocate(view *TextureView) (uint32, error) {
	if view == nil {
		return 0, fmt.Errorf("ghal: texture array %q: cannot allocate a nil texture view", a.label)
	}
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx] = view
		return idx, nil
	}
	for i, s := range a.slots {
		if s == nil {
			a.slots[i] = view
			return uint32(i), nil
		}
	}
	return 0, fmt.Errorf("ghal: texture array %q is at capacity (%d)", a.label, len(a.slots))
}

// Free releases the slot at index, making it available for a future
// Allocate call. The texture view itself is not destroyed.
func (a *TextureArray) Free(index uint32) error {
	if int(index) >= len(a.slots) {
		return fmt.Errorf("ghal: texture array %q: index %d out of range (capacity %d)", a.label, index, len(a.slots))
	}
	if a.slots[index] == nil {
		return fmt.Errorf("ghal: texture array %q: index %d is already free", a.label, index)
	}
	a.slots[index] = nil
	a.free = append(a.free, index)
	return nil
}

// BindAll returns a shaderdata.Bindable covering every occupied slot, in
// index order, suitable for Filler.Fill to bind to a KindTextureArray
// declaration. Returns hal.ErrUnsupported if the device's backend has no
// bindless array support.
func (a *TextureArray) BindAll() (shaderdata.Bindable, error) {
	caps := a.device.capabilities()
	if caps == nil || caps.MaxBindlessArraySlots == 0 {
		return nil, fmt.Errorf("ghal: texture array %q: bindless resource arrays: %w", a.label, hal.ErrUnsupported)
	}
	if uint32(len(a.slots)) > caps.MaxBindlessArraySlots {
		return nil, fmt.Errorf("ghal: texture array %q: capacity %d exceeds backend limit %d", a.label, len(a.slots), caps.MaxBindlessArraySlots)
	}

	views := make([]hal.TextureView, 0, len(a.slots))
	for _, v := range a.slots {
		if v == nil {
			continue
		}
		if v.hal == nil {
			return nil, fmt.Errorf("ghal: texture array %q: a bound view has no live HAL backing", a.label)
		}
		views = append(views, v.hal)
	}
	return shaderdata.TextureArrayBinding{Views: views}, nil
}
