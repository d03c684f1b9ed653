// Package shaderdata implements the shader-data binding protocol: the
// backend-agnostic, ordered, named, kind-tagged list of bindings that
// forms one bind-group contract (spec §4.1).
//
// A user type satisfies the contract by implementing Layout and Filler;
// the (out-of-scope) derive-macro layer is expected to generate both
// methods from a struct whose field names match shader binding names.
package shaderdata

import "fmt"

// Kind tags a single binding with the shape of data it carries.
type Kind uint8

const (
	// KindPlain is an inline POD value, packed into the per-submission
	// scratch uniform buffer.
	KindPlain Kind = iota
	// KindBuffer references a single buffer piece (buffer + byte offset).
	KindBuffer
	// KindBufferArray references a densely indexed collection of buffers.
	KindBufferArray
	// KindTexture references a single texture view.
	KindTexture
	// KindTextureArray references a densely indexed collection of
	// texture views.
	KindTextureArray
	// KindSampler references a single sampler.
	KindSampler
	// KindAccelStructure references a built acceleration structure.
	KindAccelStructure
)

// String returns a human-readable name for the binding kind.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindBuffer:
		return "buffer"
	case KindBufferArray:
		return "buffer-array"
	case KindTexture:
		return "texture"
	case KindTextureArray:
		return "texture-array"
	case KindSampler:
		return "sampler"
	case KindAccelStructure:
		return "acceleration-structure"
	default:
		return "unknown"
	}
}

// BindingDecl describes one named, ordered binding in a shader-data
// layout.
type BindingDecl struct {
	// Name identifies the binding; it matches the shader's binding name
	// and the user struct's field name (derive-macro contract).
	Name string
	// Kind tags the shape of the bound data.
	Kind Kind
	// Size is the byte size of a KindPlain binding. Ignored otherwise.
	Size int
	// Count is the element count of a KindBufferArray/KindTextureArray
	// binding. Ignored otherwise.
	Count int
}

// MaxPlainBindingBytes is the largest inline POD payload a single
// KindPlain binding may carry (spec §3 invariant).
const MaxPlainBindingBytes = 256

// MaxBindingsPerGroup is the nominal cap on bindings within one layout
// (spec §3 invariant).
const MaxBindingsPerGroup = 8

// Layout declares the static shape of one shader-data contract: an
// ordered list of binding kinds, independent of any particular
// instance's bound values.
type Layout interface {
	// Declare returns the ordered binding declarations for this layout.
	Declare() []BindingDecl
}

// Validate checks decls against the spec's design-time caps. It does
// not touch any backend; callers run it at pipeline-build time before
// handing layouts to the binding-resolution engine.
func Validate(decls []BindingDecl) error {
	if len(decls) > MaxBindingsPerGroup {
		return fmt.Errorf("shaderdata: %d bindings exceeds the %d binding-per-group cap", len(decls), MaxBindingsPerGroup)
	}
	seen := make(map[string]struct{}, len(decls))
	for _, d := range decls {
		if d.Name == "" {
			return fmt.Errorf("shaderdata: binding has empty name")
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("shaderdata: duplicate binding name %q", d.Name)
		}
		seen[d.Name] = struct{}{}
		if d.Kind == KindPlain && d.Size > MaxPlainBindingBytes {
			return fmt.Errorf("shaderdata: plain binding %q size %d exceeds the %d byte cap", d.Name, d.Size, MaxPlainBindingBytes)
		}
		if (d.Kind == KindBufferArray || d.Kind == KindTextureArray) && d.Count <= 0 {
			return fmt.Errorf("shaderdata: array binding %q has non-positive count %d", d.Name, d.Count)
		}
	}
	return nil
}

// Filler fills a PipelineContext with concrete bindable values, one per
// declared binding, using the kind-specific Bindable types below. It is
// the "fill a pipeline context" operation from spec §4.1 step 2.
type Filler interface {
	Fill(ctx *PipelineContext) error
}
