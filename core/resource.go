package core

import (
	"sync"
	"sync/atomic"

	"github.com/gpuhal/ghal/hal"
	"github.com/gpuhal/ghal/types"
)

// Resource placeholder types - will be properly defined later.
// These types represent the actual WebGPU resources managed by the hub.

// Adapter represents a physical GPU adapter.
type Adapter struct {
	// Info contains information about the adapter.
	Info types.AdapterInfo
	// Features contains the features supported by the adapter.
	Features types.Features
	// Limits contains the resource limits of the adapter.
	Limits types.Limits
	// Backend identifies which graphics backend this adapter uses.
	Backend types.Backend

	// halAdapter is the underlying HAL adapter, nil for mock adapters.
	halAdapter hal.Adapter
	// halCapabilities holds the adapter's full HAL capabilities, nil for
	// mock adapters.
	halCapabilities *hal.Capabilities
}

// Device represents a logical GPU device.
//
// A Device is used two ways in this package: as a plain value registered
// in the ID-based hub (Adapter/Queue fields, no HAL backing), or as a
// HAL-backed device constructed by NewDevice (raw/snatchLock populated).
// The two styles share the struct so that legacy ID-based code and the
// HAL-integrated code in command.go can both operate on *Device.
type Device struct {
	// Adapter is the adapter this device was created from.
	Adapter AdapterID
	// Label is a debug label for the device.
	Label string
	// Features contains the features enabled on this device.
	Features types.Features
	// Limits contains the resource limits of this device.
	Limits types.Limits
	// Queue is the device's default queue.
	Queue QueueID

	// adapterInfo is the HAL-backed adapter, set by NewDevice.
	adapterInfo *Adapter

	// raw holds the underlying HAL device. Snatched on Destroy.
	raw *Snatchable[hal.Device]

	// snatchLock coordinates access to raw and every HAL resource owned by
	// this device, so destruction never races a concurrent HAL call.
	snatchLock *SnatchLock

	// destroyed marks the device invalid once raw has been snatched.
	destroyed atomic.Bool

	// associatedQueue is the Queue this device hands out via GetQueue, set
	// lazily after device creation (the queue references the device back).
	associatedQueue atomic.Pointer[Queue]

	// errorScopeManager is created lazily by errorScopes.
	errorScopeManager *ErrorScopeManager
}

// Queue represents a command queue for a device.
type Queue struct {
	// Device is the device this queue belongs to.
	Device DeviceID
	// Label is a debug label for the queue.
	Label string
}

// Buffer represents a GPU buffer.
//
// Like Device, Buffer serves both the legacy ID-based placeholder style
// (zero value, no HAL) and the HAL-backed style constructed by NewBuffer.
type Buffer struct {
	// raw holds the underlying HAL buffer. Snatched on Destroy.
	raw *Snatchable[hal.Buffer]

	// device is the parent device.
	device *Device

	usage types.BufferUsage
	size  uint64
	label string

	mapState atomic.Int32

	initMu   sync.Mutex
	initTrck *BufferInitTracker

	trackingData *TrackingData
}

// Texture represents a GPU texture.
type Texture struct{}

// TextureView represents a view into a texture.
type TextureView struct{}

// Sampler represents a texture sampler.
type Sampler struct{}

// BindGroupLayout represents the layout of a bind group.
type BindGroupLayout struct{}

// PipelineLayout represents the layout of a pipeline.
type PipelineLayout struct{}

// BindGroup represents a collection of resources bound together.
type BindGroup struct{}

// ShaderModule represents a compiled shader module.
type ShaderModule struct{}

// RenderPipeline represents a render pipeline.
type RenderPipeline struct{}

// ComputePipeline represents a compute pipeline.
type ComputePipeline struct{}

// CommandEncoder represents a command encoder.
type CommandEncoder struct{}

// CommandBuffer represents a recorded command buffer.
type CommandBuffer struct{}

// QuerySet represents a set of queries.
type QuerySet struct{}

// Surface represents a rendering surface.
type Surface struct{}
