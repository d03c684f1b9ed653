package resolve_test

import (
	"testing"

	"github.com/gpuhal/ghal/resolve"
	"github.com/gpuhal/ghal/shaderdata"
)

func testDecls() []shaderdata.BindingDecl {
	return []shaderdata.BindingDecl{
		{Name: "camera", Kind: shaderdata.KindPlain, Size: 64},
		{Name: "albedo", Kind: shaderdata.KindTexture},
		{Name: "albedoSampler", Kind: shaderdata.KindSampler},
	}
}

func TestResolver_ExplicitAssignsDeclarationOrder(t *testing.T) {
	r := resolve.NewResolver(resolve.StrategyExplicit)
	m, err := r.Resolve(testDecls())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for i, want := range []string{"camera", "albedo", "albedoSampler"} {
		slot, ok := m.SlotFor(want)
		if !ok {
			t.Fatalf("missing slot for %q", want)
		}
		if slot.Index != uint32(i) {
			t.Fatalf("slot %q: got index %d, want %d", want, slot.Index, i)
		}
	}
}

func TestResolver_RejectsInvalidLayout(t *testing.T) {
	r := resolve.NewResolver(resolve.StrategyExplicit)
	bad := []shaderdata.BindingDecl{{Name: "x", Kind: shaderdata.KindPlain, Size: shaderdata.MaxPlainBindingBytes + 1}}
	if _, err := r.Resolve(bad); err == nil {
		t.Fatal("expected error for oversized plain binding")
	}
}

func TestShaderDataMapping_ReflectSlot(t *testing.T) {
	r := resolve.NewResolver(resolve.StrategyReflect)
	m, err := r.Resolve(testDecls())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if err := m.ReflectSlot("albedo", 7); err != nil {
		t.Fatalf("ReflectSlot: %v", err)
	}
	slot, _ := m.SlotFor("albedo")
	if slot.Index != 7 {
		t.Fatalf("got index %d, want 7", slot.Index)
	}
	if err := m.ReflectSlot("nonexistent", 0); err == nil {
		t.Fatal("expected error reflecting unknown binding")
	}
}

func TestPipelineCache_StoreGetForget(t *testing.T) {
	c := resolve.NewPipelineCache()
	key := resolve.PipelineKey{Pipeline: "pipeline-a", Layout: "layout-a"}
	if _, ok := c.Get(key); ok {
		t.Fatal("expected empty cache miss")
	}
	m := &resolve.ShaderDataMapping{}
	c.Store(key, m)
	if got, ok := c.Get(key); !ok || got != m {
		t.Fatal("expected cache hit with stored mapping")
	}
	if c.Len() != 1 {
		t.Fatalf("got Len %d, want 1", c.Len())
	}
	c.Forget(key)
	if _, ok := c.Get(key); ok {
		t.Fatal("expected cache miss after Forget")
	}
}

func TestUniformScratch_PacksAligned(t *testing.T) {
	s := resolve.NewUniformScratch(16)
	off1 := s.Pack(shaderdata.PlainValue{Bytes: make([]byte, 4)})
	off2 := s.Pack(shaderdata.PlainValue{Bytes: make([]byte, 4)})
	if off1 != 0 {
		t.Fatalf("got first offset %d, want 0", off1)
	}
	if off2%16 != 0 {
		t.Fatalf("got second offset %d, not 16-byte aligned", off2)
	}
	if off2 == off1 {
		t.Fatal("expected distinct offsets")
	}
}

func TestUniformScratch_ResetClears(t *testing.T) {
	s := resolve.NewUniformScratch(0)
	s.Pack(shaderdata.PlainValue{Bytes: []byte{1, 2, 3}})
	s.Reset()
	if len(s.Bytes()) != 0 {
		t.Fatalf("expected empty after Reset, got %d bytes", len(s.Bytes()))
	}
}
