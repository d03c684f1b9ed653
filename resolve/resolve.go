// Package resolve implements the binding-resolution and pipeline engine:
// it turns a shaderdata.Layout plus a compiled shader module into the
// concrete, backend-ready slot assignments a bind group needs (spec
// §4.5), and caches the result per pipeline so repeat submissions skip
// re-resolution.
package resolve

import (
	"fmt"

	"github.com/gpuhal/ghal/shaderdata"
)

// Strategy picks how WGSL binding slots are assigned relative to
// cross-compilation. Backends that can carry explicit layout(binding=N)
// qualifiers through their target shading language (Vulkan SPIR-V,
// Metal argument buffers, desktop GL 4.3+) use StrategyExplicit.
// Backends whose target language only sees slots after the fact
// (WebGL2/GLES3's compiler-assigned sampler units) use StrategyReflect.
type Strategy uint8

const (
	// StrategyExplicit assigns slots before cross-compilation, then
	// emits the shader with those slots baked into layout qualifiers.
	StrategyExplicit Strategy = iota
	// StrategyReflect cross-compiles first with declaration-order
	// slots, then reflects the compiled module to confirm the
	// resulting slot assignment.
	StrategyReflect
)

// Slot is the resolved backend location for one binding: for
// StrategyExplicit this is the slot resolve assigned; for
// StrategyReflect it is the slot the compiler actually chose.
type Slot struct {
	Decl  shaderdata.BindingDecl
	Index uint32
}

// ShaderDataMapping is the resolved, ordered slot assignment for one
// shaderdata.Layout against one compiled shader module.
type ShaderDataMapping struct {
	Strategy Strategy
	Slots    []Slot
}

// SlotFor returns the resolved slot for a binding name, or false if the
// layout has no such binding.
func (m *ShaderDataMapping) SlotFor(name string) (Slot, bool) {
	for _, s := range m.Slots {
		if s.Decl.Name == name {
			return s, true
		}
	}
	return Slot{}, false
}

// Decls returns the binding declarations in resolved slot order, ready
// to pass to shaderdata.PipelineContext.Resolve.
func (m *ShaderDataMapping) Decls() []shaderdata.BindingDecl {
	decls := make([]shaderdata.BindingDecl, len(m.Slots))
	for i, s := range m.Slots {
		decls[i] = s.Decl
	}
	return decls
}

// Resolver assigns backend slots to a shaderdata.Layout according to
// strategy. It holds no per-pipeline state; callers cache its output in
// a PipelineCache keyed by pipeline identity.
type Resolver struct {
	strategy Strategy
}

// NewResolver creates a Resolver using the given strategy.
func NewResolver(strategy Strategy) *Resolver {
	return &Resolver{strategy: strategy}
}

// Resolve assigns slots to decls. Under StrategyExplicit, slots are
// assigned densely in declaration order, matching the layout(binding=N)
// qualifiers the caller is expected to emit into the cross-compiled
// source. Under StrategyReflect, resolve still assigns declaration
// order as its candidate mapping; the caller overwrites Slots[i].Index
// with ReflectSlot once the real compiled module reports the slot the
// compiler chose.
func (r *Resolver) Resolve(decls []shaderdata.BindingDecl) (*ShaderDataMapping, error) {
	if err := shaderdata.Validate(decls); err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	slots := make([]Slot, len(decls))
	for i, d := range decls {
		slots[i] = Slot{Decl: d, Index: uint32(i)}
	}
	return &ShaderDataMapping{Strategy: r.strategy, Slots: slots}, nil
}

// ReflectSlot overwrites the resolved index for name once the compiled
// module's real binding location is known (StrategyReflect only). It
// errors if name was never resolved by Resolve.
func (m *ShaderDataMapping) ReflectSlot(name string, index uint32) error {
	for i := range m.Slots {
		if m.Slots[i].Decl.Name == name {
			m.Slots[i].Index = index
			return nil
		}
	}
	return fmt.Errorf("resolve: no binding named %q in mapping", name)
}
