package ghal_test

import (
	"testing"

	"github.com/gpuhal/ghal"
	"github.com/gpuhal/ghal/shaderdata"
)

// constantsLayout is a minimal shaderdata.Layout/Filler pair used to
// exercise pipeline shader-layout resolution and bind-group filling.
type constantsLayout struct{}

func (constantsLayout) Declare() []shaderdata.BindingDecl {
	return []shaderdata.BindingDecl{
		{Name: "constants", Kind: shaderdata.KindPlain, Size: 16},
	}
}

type constantsFiller struct {
	value [16]byte
}

func (f constantsFiller) Fill(ctx *shaderdata.PipelineContext) error {
	ctx.Bind("constants", shaderdata.PlainValue{Bytes: f.value[:]})
	return nil
}

func TestComputePipelineShaderLayoutResolvesMapping(t *testing.T) {
	_, _, device := newDevice(t)
	defer device.Release()
	requireHAL(t, device)

	shader, err := device.CreateShaderModule(&ghal.ShaderModuleDescriptor{
		Label: "compute-shader",
		WGSL:  "@compute @workgroup_size(1) fn main() {}",
	})
	if err != nil {
		t.Fatalf("CreateShaderModule: %v", err)
	}
	defer shader.Release()

	pipeline, err := device.CreateComputePipeline(&ghal.ComputePipelineDescriptor{
		Label:        "test-compute-pipeline-with-layout",
		Module:       shader,
		EntryPoint:   "main",
		ShaderLayout: constantsLayout{},
	})
	if err != nil {
		t.Skipf("CreateComputePipeline not supported by this backend: %v", err)
	}
	defer pipeline.Release()

	mapping := pipeline.ShaderMapping()
	if mapping == nil {
		t.Fatal("ShaderMapping() is nil after creating a pipeline with a ShaderLayout")
	}
	if _, ok := mapping.SlotFor("constants"); !ok {
		t.Error("mapping has no slot for the declared \"constants\" binding")
	}
}

func TestComputePipelineWithoutShaderLayoutHasNilMapping(t *testing.T) {
	_, _, device := newDevice(t)
	defer device.Release()
	requireHAL(t, device)

	shader, err := device.CreateShaderModule(&ghal.ShaderModuleDescriptor{
		Label: "compute-shader",
		WGSL:  "@compute @workgroup_size(1) fn main() {}",
	})
	if err != nil {
		t.Fatalf("CreateShaderModule: %v", err)
	}
	defer shader.Release()

	pipeline, err := device.CreateComputePipeline(&ghal.ComputePipelineDescriptor{
		Label:      "test-compute-pipeline-no-layout",
		Module:     shader,
		EntryPoint: "main",
	})
	if err != nil {
		t.Skipf("CreateComputePipeline not supported by this backend: %v", err)
	}
	defer pipeline.Release()

	if mapping := pipeline.ShaderMapping(); mapping != nil {
		t.Error("ShaderMapping() should be nil when the pipeline was created without a ShaderLayout")
	}
}

func TestCreateBindGroupWithShaderDataButNoMapping(t *testing.T) {
	_, _, device := newDevice(t)
	defer device.Release()
	requireHAL(t, device)

	layout, err := device.CreateBindGroupLayout(&ghal.BindGroupLayoutDescriptor{Label: "layout"})
	if err != nil {
		t.Fatalf("CreateBindGroupLayout: %v", err)
	}
	defer layout.Release()

	_, err = device.CreateBindGroup(&ghal.BindGroupDescriptor{
		Label:      "bad-bind-group",
		Layout:     layout,
		ShaderData: constantsFiller{},
	})
	if err == nil {
		t.Fatal("CreateBindGroup with ShaderData but nil Mapping should return an error")
	}
}

func TestCreateBindGroupFromShaderDataMapping(t *testing.T) {
	_, _, device := newDevice(t)
	defer device.Release()
	requireHAL(t, device)

	shader, err := device.CreateShaderModule(&ghal.ShaderModuleDescriptor{
		Label: "compute-shader",
		WGSL:  "@compute @workgroup_size(1) fn main() {}",
	})
	if err != nil {
		t.Fatalf("CreateShaderModule: %v", err)
	}
	defer shader.Release()

	pipeline, err := device.CreateComputePipeline(&ghal.ComputePipelineDescriptor{
		Label:        "test-compute-pipeline-bindgroup",
		Module:       shader,
		EntryPoint:   "main",
		ShaderLayout: constantsLayout{},
	})
	if err != nil {
		t.Skipf("CreateComputePipeline not supported by this backend: %v", err)
	}
	defer pipeline.Release()

	layout, err := device.CreateBindGroupLayout(&ghal.BindGroupLayoutDescriptor{Label: "layout"})
	if err != nil {
		t.Fatalf("CreateBindGroupLayout: %v", err)
	}
	defer layout.Release()

	group, err := device.CreateBindGroup(&ghal.BindGroupDescriptor{
		Label:      "shader-data-bind-group",
		Layout:     layout,
		ShaderData: constantsFiller{},
		Mapping:    pipeline.ShaderMapping(),
	})
	if err != nil {
		t.Fatalf("CreateBindGroup with ShaderData/Mapping: %v", err)
	}
	if group == nil {
		t.Fatal("CreateBindGroup returned a nil group with no error")
	}
	group.Release()
}
