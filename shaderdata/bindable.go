package shaderdata

import (
	"fmt"

	"github.com/gpuhal/ghal/hal"
)

// Bindable is the closed set of kind-specific values a Filler may bind
// to a declared binding name. It is implemented only by the types in
// this file; external packages cannot add new Bindable kinds, keeping
// resolve.Resolver's type switch exhaustive.
type Bindable interface {
	bindable()
	kind() Kind
}

// PlainValue is an inline POD payload bound to a KindPlain binding.
// Bytes must not exceed MaxPlainBindingBytes.
type PlainValue struct {
	Bytes []byte
}

func (PlainValue) bindable()   {}
func (PlainValue) kind() Kind  { return KindPlain }

// BufferPiece is a buffer plus a byte range, bound to a KindBuffer
// binding.
type BufferPiece struct {
	Buffer hal.Buffer
	Offset uint64
	Size   uint64
}

func (BufferPiece) bindable()  {}
func (BufferPiece) kind() Kind { return KindBuffer }

// BufferArray is a densely indexed collection of buffer pieces bound to
// a KindBufferArray binding.
type BufferArray struct {
	Pieces []BufferPiece
}

func (BufferArray) bindable()  {}
func (BufferArray) kind() Kind { return KindBufferArray }

// TextureViewBinding binds a single texture view to a KindTexture
// binding.
type TextureViewBinding struct {
	View hal.TextureView
}

func (TextureViewBinding) bindable()  {}
func (TextureViewBinding) kind() Kind { return KindTexture }

// TextureArrayBinding is a densely indexed collection of texture views
// bound to a KindTextureArray binding.
type TextureArrayBinding struct {
	Views []hal.TextureView
}

func (TextureArrayBinding) bindable()  {}
func (TextureArrayBinding) kind() Kind { return KindTextureArray }

// SamplerBinding binds a single sampler to a KindSampler binding.
type SamplerBinding struct {
	Sampler hal.Sampler
}

func (SamplerBinding) bindable()  {}
func (SamplerBinding) kind() Kind { return KindSampler }

// AccelStructureBinding binds an acceleration structure to a
// KindAccelStructure binding.
type AccelStructureBinding struct {
	Accel hal.AccelerationStructure
}

func (AccelStructureBinding) bindable()  {}
func (AccelStructureBinding) kind() Kind { return KindAccelStructure }

// PipelineContext accrues one Bindable per declared binding name during
// a Filler.Fill call. Bind order need not match declaration order; the
// binding-resolution engine (package resolve) matches by name.
type PipelineContext struct {
	values map[string]Bindable
	order  []string
}

// NewPipelineContext creates an empty context ready to accept bindings.
func NewPipelineContext() *PipelineContext {
	return &PipelineContext{values: make(map[string]Bindable)}
}

// Bind records a bindable value for the named binding. Calling Bind
// twice for the same name overwrites the earlier value.
func (c *PipelineContext) Bind(name string, value Bindable) {
	if _, exists := c.values[name]; !exists {
		c.order = append(c.order, name)
	}
	c.values[name] = value
}

// Lookup returns the bindable value for name, or ok=false if Fill never
// bound it.
func (c *PipelineContext) Lookup(name string) (Bindable, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Resolve matches ctx's bound values against decls in declared order,
// returning an error naming the first binding that was declared but
// never filled, or filled with a value of the wrong kind.
func (c *PipelineContext) Resolve(decls []BindingDecl) ([]Bindable, error) {
	out := make([]Bindable, len(decls))
	for i, d := range decls {
		v, ok := c.values[d.Name]
		if !ok {
			return nil, fmt.Errorf("shaderdata: binding %q was declared but never bound", d.Name)
		}
		if v.kind() != d.Kind {
			return nil, fmt.Errorf("shaderdata: binding %q declared as %s but bound as %s", d.Name, d.Kind, v.kind())
		}
		if pv, ok := v.(PlainValue); ok && len(pv.Bytes) > d.Size {
			return nil, fmt.Errorf("shaderdata: binding %q bound %d bytes, declared size %d", d.Name, len(pv.Bytes), d.Size)
		}
		out[i] = v
	}
	return out, nil
}
