package types

// BufferUsage describes how a buffer can be used.
type BufferUsage uint32

const (
	// BufferUsageMapRead allows mapping the buffer for reading.
	BufferUsageMapRead BufferUsage = 1 << iota
	// BufferUsageMapWrite allows mapping the buffer for writing.
	BufferUsageMapWrite
	// BufferUsageCopySrc allows the buffer to be a copy source.
	BufferUsageCopySrc
	// BufferUsageCopyDst allows the buffer to be a copy destination.
	BufferUsageCopyDst
	// BufferUsageIndex allows use as an index buffer.
	BufferUsageIndex
	// BufferUsageVertex allows use as a vertex buffer.
	BufferUsageVertex
	// BufferUsageUniform allows use as a uniform buffer.
	BufferUsageUniform
	// BufferUsageStorage allows use as a storage buffer.
	BufferUsageStorage
	// BufferUsageIndirect allows use for indirect draw/dispatch.
	BufferUsageIndirect
	// BufferUsageQueryResolve allows use for query result resolution.
	BufferUsageQueryResolve
)

// MemoryClass describes where a buffer's storage lives and who can touch it.
type MemoryClass uint8

const (
	// MemoryClassDeviceLocal is GPU-only memory: fastest for GPU access,
	// not directly writable from the host.
	MemoryClassDeviceLocal MemoryClass = iota
	// MemoryClassHostVisibleWrite is host-write, GPU-read memory, typically
	// used for upload staging buffers.
	MemoryClassHostVisibleWrite
	// MemoryClassHostVisibleShared is bidirectional host/GPU memory. Host
	// read-back is best-effort and may be unsupported on some backends.
	MemoryClassHostVisibleShared
	// MemoryClassExternal is imported from an external process, file
	// descriptor or platform handle. May be unsupported per backend.
	MemoryClassExternal
)

// String returns a human-readable name for the memory class.
func (m MemoryClass) String() string {
	switch m {
	case MemoryClassDeviceLocal:
		return "device-local"
	case MemoryClassHostVisibleWrite:
		return "host-visible-write"
	case MemoryClassHostVisibleShared:
		return "host-visible-shared"
	case MemoryClassExternal:
		return "external"
	default:
		return "unknown"
	}
}

// MemoryClasses is a bitmask of supported MemoryClass values, reported by
// a backend's capabilities so callers can branch before allocating.
type MemoryClasses uint8

const (
	MemoryClassesDeviceLocal       MemoryClasses = 1 << MemoryClassDeviceLocal
	MemoryClassesHostVisibleWrite  MemoryClasses = 1 << MemoryClassHostVisibleWrite
	MemoryClassesHostVisibleShared MemoryClasses = 1 << MemoryClassHostVisibleShared
	MemoryClassesExternal          MemoryClasses = 1 << MemoryClassExternal
)

// Contains reports whether class is present in the mask.
func (m MemoryClasses) Contains(class MemoryClass) bool {
	return m&(1<<class) != 0
}

// BufferDescriptor describes a buffer.
type BufferDescriptor struct {
	// Label is a debug label.
	Label string
	// Size is the buffer size in bytes.
	Size uint64
	// Usage describes how the buffer will be used.
	Usage BufferUsage
	// MemoryClass selects where the buffer's storage lives.
	MemoryClass MemoryClass
	// MappedAtCreation indicates if the buffer is mapped at creation.
	MappedAtCreation bool
}

// RequiresHostShadow reports whether a buffer of this memory class needs a
// CPU shadow allocation on backends without persistent mapping (host-visible
// classes only; device-local and external buffers never shadow).
func (d *BufferDescriptor) RequiresHostShadow() bool {
	return d.MemoryClass == MemoryClassHostVisibleWrite || d.MemoryClass == MemoryClassHostVisibleShared
}

// BufferMapState describes the map state of a buffer.
type BufferMapState uint8

const (
	// BufferMapStateUnmapped means the buffer is not mapped.
	BufferMapStateUnmapped BufferMapState = iota
	// BufferMapStatePending means a map operation is pending.
	BufferMapStatePending
	// BufferMapStateMapped means the buffer is mapped.
	BufferMapStateMapped
)

// MapMode describes the access mode for buffer mapping.
type MapMode uint8

const (
	// MapModeRead maps the buffer for reading.
	MapModeRead MapMode = 1 << iota
	// MapModeWrite maps the buffer for writing.
	MapModeWrite
)

// BufferBindingType describes how a buffer is bound.
type BufferBindingType uint8

const (
	// BufferBindingTypeUndefined is an undefined binding type.
	BufferBindingTypeUndefined BufferBindingType = iota
	// BufferBindingTypeUniform binds as a uniform buffer.
	BufferBindingTypeUniform
	// BufferBindingTypeStorage binds as a storage buffer (read-write).
	BufferBindingTypeStorage
	// BufferBindingTypeReadOnlyStorage binds as a read-only storage buffer.
	BufferBindingTypeReadOnlyStorage
)

// IndexFormat describes the format of index buffer data.
type IndexFormat uint8

const (
	// IndexFormatUint16 uses 16-bit unsigned integers.
	IndexFormatUint16 IndexFormat = iota
	// IndexFormatUint32 uses 32-bit unsigned integers.
	IndexFormatUint32
)
