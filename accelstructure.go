package ghal

import (
	"fmt"

	"github.com/gpuhal/ghal/hal"
	"github.com/gpuhal/ghal/types"
)

// AccelStructureDescriptor describes an acceleration structure build.
// VertexBuffers/IndexBuffers/TransformBuffers line up positionally with
// Geometries; unused entries are nil.
type AccelStructureDescriptor struct {
	Label            string
	Level            types.AccelStructureLevel
	Geometries       []types.AccelTriangleGeometryDescriptor
	MaxInstances     uint32
	VertexBuffers    []*Buffer
	IndexBuffers     []*Buffer
	TransformBuffers []*Buffer
}

// AccelStructure is a built bottom- or top-level acceleration structure.
// Creating one fails with hal.ErrUnsupported on backends whose
// Capabilities.RayQueryMask is zero.
type AccelStructure struct {
	hal    hal.AccelerationStructure
	device *Device
}

// Level reports whether this is a bottom-level or top-level structure.
func (a *AccelStructure) Level() types.AccelStructureLevel {
	return a.hal.Level()
}

// CreateAccelStructure builds an acceleration structure. It returns
// hal.ErrUnsupported on any backend without ray-query support instead
// of a usable handle.
func (d *Device) CreateAccelStructure(desc *AccelStructureDescriptor) (*AccelStructure, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("ghal: accel structure descriptor is nil")
	}
	halDevice := d.halDevice()
	if halDevice == nil {
		return nil, ErrReleased
	}

	halDesc := &hal.AccelStructureDescriptor{
		AccelStructureDescriptor: types.AccelStructureDescriptor{
			Label:        desc.Label,
			Level:        desc.Level,
			Geometries:   desc.Geometries,
			MaxInstances: desc.MaxInstances,
		},
		VertexBuffers:    unwrapBuffers(desc.VertexBuffers),
		IndexBuffers:     unwrapBuffers(desc.IndexBuffers),
		TransformBuffers: unwrapBuffers(desc.TransformBuffers),
	}

	halAccel, err := halDevice.CreateAccelStructure(halDesc)
	if err != nil {
		return nil, fmt.Errorf("ghal: failed to create acceleration structure: %w", err)
	}
	return &AccelStructure{hal: halAccel, device: d}, nil
}

// DestroyAccelStructure releases an acceleration structure.
func (d *Device) DestroyAccelStructure(accel *AccelStructure) {
	if d.released || accel == nil {
		return
	}
	halDevice := d.halDevice()
	if halDevice == nil {
		return
	}
	halDevice.DestroyAccelStructure(accel.hal)
}

func unwrapBuffers(buffers []*Buffer) []hal.Buffer {
	if buffers == nil {
		return nil
	}
	out := make([]hal.Buffer, len(buffers))
	for i, b := range buffers {
		if b != nil {
			out[i] = b.halBuffer()
		}
	}
	return out
}
