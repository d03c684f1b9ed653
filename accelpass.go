package ghal

import (
	"fmt"

	"github.com/gpuhal/ghal/hal"
)

// AccelPassEncoder records acceleration-structure build commands opened
// by CommandEncoder.BeginAccelPass. Call End when done.
type AccelPassEncoder struct {
	hal     hal.AccelPassEncoder
	encoder *CommandEncoder
	ended   bool
}

// BeginAccelPass begins an acceleration-structure build pass. It
// returns hal.ErrUnsupported on backends without ray-query support
// (hal.Capabilities.RayQueryMask == 0) instead of a usable encoder.
func (e *CommandEncoder) BeginAccelPass(desc *AccelPassDescriptor) (*AccelPassEncoder, error) {
	if e.released {
		return nil, ErrReleased
	}
	if err := e.countPass(); err != nil {
		return nil, err
	}
	raw := e.core.RawEncoder()
	if raw == nil {
		return nil, ErrReleased
	}
	halDesc := &hal.AccelPassDescriptor{}
	if desc != nil {
		halDesc.Label = desc.Label
	}
	halPass, err := raw.BeginAccelPass(halDesc)
	if err != nil {
		return nil, fmt.Errorf("ghal: BeginAccelPass: %w", err)
	}
	return &AccelPassEncoder{hal: halPass, encoder: e}, nil
}

// AccelPassDescriptor describes an acceleration-structure build pass.
type AccelPassDescriptor struct {
	Label string
}

// End finishes the accel pass.
func (p *AccelPassEncoder) End() {
	if p.ended {
		return
	}
	p.ended = true
	p.hal.End()
}

// BuildBottomLevel builds (or rebuilds) a bottom-level acceleration
// structure from the geometry referenced by desc.
func (p *AccelPassEncoder) BuildBottomLevel(target *AccelStructure, desc *AccelStructureDescriptor) error {
	if p.ended || target == nil || desc == nil {
		return fmt.Errorf("ghal: BuildBottomLevel called on an ended pass or with a nil argument")
	}
	halDesc := &hal.AccelStructureDescriptor{
		VertexBuffers:    unwrapBuffers(desc.VertexBuffers),
		IndexBuffers:     unwrapBuffers(desc.IndexBuffers),
		TransformBuffers: unwrapBuffers(desc.TransformBuffers),
	}
	halDesc.Label = desc.Label
	halDesc.Level = desc.Level
	halDesc.Geometries = desc.Geometries
	halDesc.MaxInstances = desc.MaxInstances
	return p.hal.BuildBottomLevel(target.hal, halDesc)
}

// BuildTopLevel builds (or rebuilds) a top-level acceleration structure
// from instance records packed into instanceBuffer.
func (p *AccelPassEncoder) BuildTopLevel(target *AccelStructure, instanceBuffer *Buffer, instanceCount uint32) error {
	if p.ended || target == nil || instanceBuffer == nil {
		return fmt.Errorf("ghal: BuildTopLevel called on an ended pass or with a nil argument")
	}
	return p.hal.BuildTopLevel(target.hal, instanceBuffer.halBuffer(), instanceCount)
}
