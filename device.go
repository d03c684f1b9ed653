package ghal

import (
	"fmt"

	"github.com/gpuhal/ghal/types"
	"github.com/gpuhal/ghal/core"
	"github.com/gpuhal/ghal/hal"
	"github.com/gpuhal/ghal/resolve"
	"github.com/gpuhal/ghal/shaderdata"
)

// shaderDataStrategy picks the binding-resolution strategy appropriate
// for the device's backend: GL/GLES's driver-assigned sampler units can
// only be confirmed after cross-compilation, everything else carries
// explicit layout(binding=N) qualifiers through.
func shaderDataStrategy(backend types.Backend) resolve.Strategy {
	if backend == types.BackendGL {
		return resolve.StrategyReflect
	}
	return resolve.StrategyExplicit
}

// Device represents a logical GPU device.
// It is the main interface for creating GPU resources.
//
// Thread-safe for concurrent use.
type Device struct {
	core     *core.Device
	queue    *Queue
	released bool

	// scratch packs KindPlain shader-data bindings into scratchBuffer,
	// the single growable uniform buffer backing every bind group's
	// inline values (see uploadScratch).
	scratch       *resolve.UniformScratch
	scratchBuffer *Buffer

	// pipelineCache memoizes each pipeline's resolved ShaderDataMapping,
	// keyed by its HAL handle, so SetPipeline-heavy render loops don't
	// pay binding resolution twice for the same pipeline.
	pipelineCache *resolve.PipelineCache
}

// pipelineCacheFor returns the device's pipeline shader-data cache,
// creating it on first use.
func (d *Device) pipelineCacheFor() *resolve.PipelineCache {
	if d.pipelineCache == nil {
		d.pipelineCache = resolve.NewPipelineCache()
	}
	return d.pipelineCache
}

// Queue returns the device's command queue.
func (d *Device) Queue() *Queue {
	return d.queue
}

// Features returns the device's enabled features.
func (d *Device) Features() Features {
	return d.core.Features
}

// Limits returns the device's resource limits.
func (d *Device) Limits() Limits {
	return d.core.Limits
}

// CreateBuffer creates a GPU buffer.
func (d *Device) CreateBuffer(desc *BufferDescriptor) (*Buffer, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("ghal: buffer descriptor is nil")
	}

	gpuDesc := &types.BufferDescriptor{
		Label:            desc.Label,
		Size:             desc.Size,
		Usage:            desc.Usage,
		MemoryClass:      desc.MemoryClass,
		MappedAtCreation: desc.MappedAtCreation,
	}

	coreBuffer, err := d.core.CreateBuffer(gpuDesc)
	if err != nil {
		return nil, err
	}

	return &Buffer{core: coreBuffer, device: d}, nil
}

// CreateTexture creates a GPU texture.
func (d *Device) CreateTexture(desc *TextureDescriptor) (*Texture, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("ghal: texture descriptor is nil")
	}

	halDevice := d.halDevice()
	if halDevice == nil {
		return nil, ErrReleased
	}

	halDesc := &hal.TextureDescriptor{
		Label:         desc.Label,
		Size:          hal.Extent3D{Width: desc.Size.Width, Height: desc.Size.Height, DepthOrArrayLayers: desc.Size.DepthOrArrayLayers},
		MipLevelCount: desc.MipLevelCount,
		SampleCount:   desc.SampleCount,
		Dimension:     desc.Dimension,
		Format:        desc.Format,
		Usage:         desc.Usage,
		ViewFormats:   desc.ViewFormats,
	}

	halTexture, err := halDevice.CreateTexture(halDesc)
	if err != nil {
		return nil, fmt.Errorf("ghal: failed to create texture: %w", err)
	}

	return &Texture{hal: halTexture, device: d, format: desc.Format}, nil
}

// CreateTextureView creates a view into a texture.
func (d *Device) CreateTextureView(texture *Texture, desc *TextureViewDescriptor) (*TextureView, error) {
	if d.released {
		return nil, ErrReleased
	}
	if texture == nil {
		return nil, fmt.Errorf("ghal: texture is nil")
	}

	halDevice := d.halDevice()
	if halDevice == nil {
		return nil, ErrReleased
	}

	halDesc := &hal.TextureViewDescriptor{}
	if desc != nil {
		halDesc.Label = desc.Label
		halDesc.Format = desc.Format
		halDesc.Dimension = desc.Dimension
		halDesc.Aspect = desc.Aspect
		halDesc.BaseMipLevel = desc.BaseMipLevel
		halDesc.MipLevelCount = desc.MipLevelCount
		halDesc.BaseArrayLayer = desc.BaseArrayLayer
		halDesc.ArrayLayerCount = desc.ArrayLayerCount
	}

	halView, err := halDevice.CreateTextureView(texture.hal, halDesc)
	if err != nil {
		return nil, fmt.Errorf("ghal: failed to create texture view: %w", err)
	}

	return &TextureView{hal: halView, device: d, texture: texture}, nil
}

// CreateSampler creates a texture sampler.
func (d *Device) CreateSampler(desc *SamplerDescriptor) (*Sampler, error) {
	if d.released {
		return nil, ErrReleased
	}

	halDevice := d.halDevice()
	if halDevice == nil {
		return nil, ErrReleased
	}

	halDesc := &hal.SamplerDescriptor{}
	if desc != nil {
		halDesc.Label = desc.Label
		halDesc.AddressModeU = desc.AddressModeU
		halDesc.AddressModeV = desc.AddressModeV
		halDesc.AddressModeW = desc.AddressModeW
		halDesc.MagFilter = desc.MagFilter
		halDesc.MinFilter = desc.MinFilter
		halDesc.MipmapFilter = desc.MipmapFilter
		halDesc.LodMinClamp = desc.LodMinClamp
		halDesc.LodMaxClamp = desc.LodMaxClamp
		halDesc.Compare = desc.Compare
		halDesc.Anisotropy = desc.Anisotropy
	}

	halSampler, err := halDevice.CreateSampler(halDesc)
	if err != nil {
		return nil, fmt.Errorf("ghal: failed to create sampler: %w", err)
	}

	return &Sampler{hal: halSampler, device: d}, nil
}

// CreateShaderModule creates a shader module.
func (d *Device) CreateShaderModule(desc *ShaderModuleDescriptor) (*ShaderModule, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("ghal: shader module descriptor is nil")
	}

	halDevice := d.halDevice()
	if halDevice == nil {
		return nil, ErrReleased
	}

	halDesc := &hal.ShaderModuleDescriptor{
		Label: desc.Label,
		Source: hal.ShaderSource{
			WGSL:  desc.WGSL,
			SPIRV: desc.SPIRV,
		},
	}

	halModule, err := halDevice.CreateShaderModule(halDesc)
	if err != nil {
		return nil, fmt.Errorf("ghal: failed to create shader module: %w", err)
	}

	return &ShaderModule{hal: halModule, device: d}, nil
}

// CreateBindGroupLayout creates a bind group layout.
func (d *Device) CreateBindGroupLayout(desc *BindGroupLayoutDescriptor) (*BindGroupLayout, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("ghal: bind group layout descriptor is nil")
	}

	halDevice := d.halDevice()
	if halDevice == nil {
		return nil, ErrReleased
	}

	halDesc := &hal.BindGroupLayoutDescriptor{
		Label:   desc.Label,
		Entries: desc.Entries,
	}

	halLayout, err := halDevice.CreateBindGroupLayout(halDesc)
	if err != nil {
		return nil, fmt.Errorf("ghal: failed to create bind group layout: %w", err)
	}

	return &BindGroupLayout{hal: halLayout, device: d}, nil
}

// CreatePipelineLayout creates a pipeline layout.
func (d *Device) CreatePipelineLayout(desc *PipelineLayoutDescriptor) (*PipelineLayout, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("ghal: pipeline layout descriptor is nil")
	}

	halDevice := d.halDevice()
	if halDevice == nil {
		return nil, ErrReleased
	}

	halLayouts := make([]hal.BindGroupLayout, len(desc.BindGroupLayouts))
	for i, layout := range desc.BindGroupLayouts {
		halLayouts[i] = layout.hal
	}

	halDesc := &hal.PipelineLayoutDescriptor{
		Label:            desc.Label,
		BindGroupLayouts: halLayouts,
	}

	halLayout, err := halDevice.CreatePipelineLayout(halDesc)
	if err != nil {
		return nil, fmt.Errorf("ghal: failed to create pipeline layout: %w", err)
	}

	return &PipelineLayout{hal: halLayout, device: d}, nil
}

// CreateBindGroup creates a bind group.
func (d *Device) CreateBindGroup(desc *BindGroupDescriptor) (*BindGroup, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("ghal: bind group descriptor is nil")
	}

	halDevice := d.halDevice()
	if halDevice == nil {
		return nil, ErrReleased
	}

	halEntries := make([]types.BindGroupEntry, len(desc.Entries))
	for i, entry := range desc.Entries {
		halEntries[i] = entry.toHAL()
	}

	if desc.ShaderData != nil {
		if desc.Mapping == nil {
			return nil, fmt.Errorf("ghal: bind group descriptor has ShaderData but no Mapping")
		}
		ctx := shaderdata.NewPipelineContext()
		if err := desc.ShaderData.Fill(ctx); err != nil {
			return nil, fmt.Errorf("ghal: shader data fill failed: %w", err)
		}
		resolved, err := ctx.Resolve(desc.Mapping.Decls())
		if err != nil {
			return nil, fmt.Errorf("ghal: shader data binding resolution failed: %w", err)
		}

		type plainRegion struct {
			binding uint32
			offset  uint64
			size    uint64
		}
		var plains []plainRegion

		for i, b := range resolved {
			binding := desc.Mapping.Slots[i].Index
			if pv, ok := b.(shaderdata.PlainValue); ok {
				offset := d.scratchFor().Pack(pv)
				plains = append(plains, plainRegion{binding: binding, offset: offset, size: uint64(len(pv.Bytes))})
				continue
			}
			entry, err := bindableToEntry(binding, b)
			if err != nil {
				return nil, err
			}
			halEntries = append(halEntries, entry)
		}

		if len(plains) > 0 {
			scratchBuf, err := d.uploadScratch()
			if err != nil {
				return nil, fmt.Errorf("ghal: failed to upload shader-data scratch buffer: %w", err)
			}
			halScratch := scratchBuf.halBuffer()
			if halScratch == nil {
				return nil, fmt.Errorf("ghal: shader-data scratch buffer has no live HAL backing")
			}
			for _, pr := range plains {
				halEntries = append(halEntries, types.BindGroupEntry{
					Binding: pr.binding,
					Resource: types.BufferBinding{
						Buffer: halScratch.NativeHandle(),
						Offset: pr.offset,
						Size:   pr.size,
					},
				})
			}
		}
	}

	halDesc := &hal.BindGroupDescriptor{
		Label:   desc.Label,
		Layout:  desc.Layout.hal,
		Entries: halEntries,
	}

	halGroup, err := halDevice.CreateBindGroup(halDesc)
	if err != nil {
		return nil, fmt.Errorf("ghal: failed to create bind group: %w", err)
	}

	return &BindGroup{hal: halGroup, device: d}, nil
}

// CreateRenderPipeline creates a render pipeline.
func (d *Device) CreateRenderPipeline(desc *RenderPipelineDescriptor) (*RenderPipeline, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("ghal: render pipeline descriptor is nil")
	}

	halDevice := d.halDevice()
	if halDevice == nil {
		return nil, ErrReleased
	}

	halDesc := desc.toHAL()

	halPipeline, err := halDevice.CreateRenderPipeline(halDesc)
	if err != nil {
		return nil, fmt.Errorf("ghal: failed to create render pipeline: %w", err)
	}

	var mapping *resolve.ShaderDataMapping
	if desc.ShaderLayout != nil {
		mapping, err = resolve.NewResolver(shaderDataStrategy(d.core.Backend())).Resolve(desc.ShaderLayout.Declare())
		if err != nil {
			halDevice.DestroyRenderPipeline(halPipeline)
			return nil, fmt.Errorf("ghal: failed to resolve render pipeline shader layout: %w", err)
		}
		d.pipelineCacheFor().Store(resolve.PipelineKey{Pipeline: halPipeline, Layout: desc.ShaderLayout}, mapping)
	}

	return &RenderPipeline{hal: halPipeline, device: d, shaderLayout: desc.ShaderLayout, shaderMapping: mapping}, nil
}

// CreateComputePipeline creates a compute pipeline.
func (d *Device) CreateComputePipeline(desc *ComputePipelineDescriptor) (*ComputePipeline, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("ghal: compute pipeline descriptor is nil")
	}

	halDevice := d.halDevice()
	if halDevice == nil {
		return nil, ErrReleased
	}

	halDesc := desc.toHAL()

	halPipeline, err := halDevice.CreateComputePipeline(halDesc)
	if err != nil {
		return nil, fmt.Errorf("ghal: failed to create compute pipeline: %w", err)
	}

	var mapping *resolve.ShaderDataMapping
	if desc.ShaderLayout != nil {
		mapping, err = resolve.NewResolver(shaderDataStrategy(d.core.Backend())).Resolve(desc.ShaderLayout.Declare())
		if err != nil {
			halDevice.DestroyComputePipeline(halPipeline)
			return nil, fmt.Errorf("ghal: failed to resolve compute pipeline shader layout: %w", err)
		}
		d.pipelineCacheFor().Store(resolve.PipelineKey{Pipeline: halPipeline, Layout: desc.ShaderLayout}, mapping)
	}

	return &ComputePipeline{hal: halPipeline, device: d, shaderLayout: desc.ShaderLayout, shaderMapping: mapping}, nil
}

// CreateCommandEncoder creates a command encoder for recording GPU commands.
func (d *Device) CreateCommandEncoder(desc *CommandEncoderDescriptor) (*CommandEncoder, error) {
	if d.released {
		return nil, ErrReleased
	}

	label := ""
	if desc != nil {
		label = desc.Label
	}

	coreEncoder, err := d.core.CreateCommandEncoder(label)
	if err != nil {
		return nil, err
	}

	return &CommandEncoder{core: coreEncoder, device: d}, nil
}

// PushErrorScope pushes a new error scope onto the device's error scope stack.
func (d *Device) PushErrorScope(filter ErrorFilter) {
	d.core.PushErrorScope(filter)
}

// PopErrorScope pops the most recently pushed error scope.
// Returns the captured error, or nil if no error occurred.
func (d *Device) PopErrorScope() *GPUError {
	return d.core.PopErrorScope()
}

// WaitIdle waits for all GPU work to complete.
func (d *Device) WaitIdle() error {
	if d.released {
		return ErrReleased
	}
	halDevice := d.halDevice()
	if halDevice == nil {
		return ErrReleased
	}
	return halDevice.WaitIdle()
}

// Release releases the device and all associated resources.
func (d *Device) Release() {
	if d.released {
		return
	}
	d.released = true

	if d.queue != nil {
		d.queue.release()
	}
	if d.scratchBuffer != nil {
		d.scratchBuffer.Release()
	}

	d.core.Destroy()
}

// scratchFor returns the device's shader-data scratch packer, creating it
// on first use with the device's uniform-buffer offset alignment.
func (d *Device) scratchFor() *resolve.UniformScratch {
	if d.scratch == nil {
		d.scratch = resolve.NewUniformScratch(d.Limits().MinUniformBufferOffsetAlignment)
	}
	return d.scratch
}

// uploadScratch uploads the scratch packer's accumulated bytes to
// scratchBuffer, growing (recreating) the buffer if it packed more bytes
// than the buffer currently holds. Returns the buffer now backing every
// KindPlain binding built so far.
func (d *Device) uploadScratch() (*Buffer, error) {
	packed := d.scratch.Bytes()
	if d.scratchBuffer == nil || d.scratchBuffer.Size() < uint64(len(packed)) {
		if d.scratchBuffer != nil {
			d.scratchBuffer.Release()
		}
		capacity := uint64(len(packed))
		if capacity < 4096 {
			capacity = 4096
		}
		buf, err := d.CreateBuffer(&BufferDescriptor{
			Label:       "shader-data-scratch",
			Size:        capacity,
			Usage:       BufferUsageUniform | BufferUsageCopyDst,
			MemoryClass: types.MemoryClassHostVisibleWrite,
		})
		if err != nil {
			return nil, err
		}
		d.scratchBuffer = buf
	}
	if d.queue == nil {
		return nil, fmt.Errorf("ghal: device has no queue to upload shader-data scratch with")
	}
	if err := d.queue.WriteBuffer(d.scratchBuffer, 0, packed); err != nil {
		return nil, err
	}
	return d.scratchBuffer, nil
}

// halDevice returns the underlying HAL device for direct resource creation.
func (d *Device) halDevice() hal.Device {
	if d.core == nil || !d.core.HasHAL() {
		return nil
	}
	guard := d.core.SnatchLock().Read()
	defer guard.Release()
	return d.core.Raw(guard)
}
