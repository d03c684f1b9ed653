package hal

import "github.com/gpuhal/ghal/types"

// AccelerationStructure is an opaque built acceleration structure.
// Backends without ray-query support never construct one; Device.CreateAccelStructure
// returns ErrUnsupported instead.
type AccelerationStructure interface {
	Resource

	// Level reports whether this is a bottom-level or top-level structure.
	Level() types.AccelStructureLevel
}

// AccelStructureDescriptor is the HAL-facing build descriptor, mirroring
// types.AccelStructureDescriptor plus the buffers feeding the build.
type AccelStructureDescriptor struct {
	types.AccelStructureDescriptor

	// VertexBuffers holds one entry per geometry in Geometries, in order.
	VertexBuffers []Buffer
	// IndexBuffers holds one entry per geometry in Geometries that is
	// indexed; nil entries correspond to non-indexed geometries.
	IndexBuffers []Buffer
	// TransformBuffers holds one entry per geometry that set
	// HasTransform; nil otherwise.
	TransformBuffers []Buffer
}

// AccelPassDescriptor describes an acceleration-structure build pass.
type AccelPassDescriptor struct {
	// Label is a debug label for the pass, used for markers/timing.
	Label string
}

// AccelPassEncoder records acceleration-structure build commands.
// A pass is opened with CommandEncoder.BeginAccelPass and must be closed
// with End before any other pass may begin; backends without ray-query
// support reject BeginAccelPass with ErrUnsupported rather than handing
// back a no-op encoder.
type AccelPassEncoder interface {
	// End finishes the accel pass.
	End()

	// BuildBottomLevel builds (or rebuilds) a bottom-level acceleration
	// structure from the geometry referenced by desc.
	BuildBottomLevel(target AccelerationStructure, desc *AccelStructureDescriptor) error

	// BuildTopLevel builds (or rebuilds) a top-level acceleration
	// structure from instance records. instanceBuffer holds a tightly
	// packed array of types.AccelInstance.
	BuildTopLevel(target AccelerationStructure, instanceBuffer Buffer, instanceCount uint32) error
}
