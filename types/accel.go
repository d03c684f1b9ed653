package types

// AccelStructureLevel distinguishes bottom-level (geometry) from
// top-level (instance) acceleration structures.
type AccelStructureLevel uint8

const (
	// AccelStructureLevelBottom holds triangle/AABB geometry.
	AccelStructureLevelBottom AccelStructureLevel = iota
	// AccelStructureLevelTop holds instances referencing bottom-level
	// structures.
	AccelStructureLevelTop
)

// AccelGeometryFlags modify how a single geometry entry participates in
// a bottom-level build.
type AccelGeometryFlags uint8

const (
	// AccelGeometryOpaque marks the geometry as opaque, allowing the
	// traversal hardware to skip any-hit shader invocation.
	AccelGeometryOpaque AccelGeometryFlags = 1 << iota
	// AccelGeometryNoDuplicateAnyHit suppresses duplicate any-hit
	// invocations per primitive.
	AccelGeometryNoDuplicateAnyHit
)

// AccelTriangleGeometryDescriptor describes one triangle mesh entry in a
// bottom-level acceleration structure build.
type AccelTriangleGeometryDescriptor struct {
	// VertexFormat is the position attribute format (e.g. Float32x3).
	VertexFormat VertexFormat
	// VertexStride is the byte stride between vertices.
	VertexStride uint64
	// VertexCount is the number of vertices.
	VertexCount uint32
	// IndexFormat is the index format, or IndexFormatUint32 with
	// IndexCount == 0 for non-indexed geometry.
	IndexFormat IndexFormat
	// IndexCount is the number of indices (0 for non-indexed).
	IndexCount uint32
	// TransformBuffer, if set, supplies a 3x4 row-major affine transform
	// applied to this geometry's vertices at build time.
	HasTransform bool
	Flags        AccelGeometryFlags
}

// AccelStructureDescriptor describes an acceleration structure build.
type AccelStructureDescriptor struct {
	// Label is a debug label.
	Label string
	// Level selects bottom-level (geometry) or top-level (instance).
	Level AccelStructureLevel
	// Geometries describes the triangle meshes for a bottom-level build.
	// Ignored for top-level builds.
	Geometries []AccelTriangleGeometryDescriptor
	// MaxInstances bounds the instance count for a top-level build.
	// Ignored for bottom-level builds.
	MaxInstances uint32
}

// AccelInstance is one per-instance record fed into a top-level build.
type AccelInstance struct {
	// BlasIndex identifies the bottom-level structure this instance
	// references, by build-local index.
	BlasIndex uint32
	// Transform is a row-major 3x4 affine transform.
	Transform [12]float32
	// Mask is the 8-bit visibility mask used by ray-query instance
	// masking.
	Mask uint8
	// CustomIndex is a 24-bit value surfaced to hit shaders, opaque to
	// the HAL itself.
	CustomIndex uint32
}

// AccelStructureScratchAlignment is the design-time alignment required
// for acceleration-structure build scratch buffers, surfaced so callers
// can size scratch allocations up-front.
const AccelStructureScratchAlignment = 256
