package resolve

import "github.com/gpuhal/ghal/shaderdata"

// UniformScratch packs the KindPlain bindings filled into one or more
// shaderdata.PipelineContext instances into a single flat byte buffer,
// one aligned region per binding. The caller uploads the packed bytes
// to a per-submission scratch uniform buffer and binds each region at
// its reported offset (spec §4.1: plain bindings never get their own
// GPU buffer).
type UniformScratch struct {
	alignment uint32
	data      []byte
}

// NewUniformScratch creates scratch storage that aligns each packed
// region to alignment bytes, typically
// types.Limits.MinUniformBufferOffsetAlignment for the opened device.
func NewUniformScratch(alignment uint32) *UniformScratch {
	if alignment == 0 {
		alignment = 256
	}
	return &UniformScratch{alignment: alignment}
}

// Reset empties the scratch buffer, ready to pack the next submission.
func (s *UniformScratch) Reset() {
	s.data = s.data[:0]
}

// Bytes returns the packed scratch contents accumulated so far.
func (s *UniformScratch) Bytes() []byte {
	return s.data
}

func (s *UniformScratch) alignUp(n int) int {
	a := int(s.alignment)
	return (n + a - 1) / a * a
}

// Pack appends value's bytes at the next aligned offset and returns
// that offset. Panics if value.Bytes exceeds
// shaderdata.MaxPlainBindingBytes; callers validate with
// shaderdata.Validate before reaching this point.
func (s *UniformScratch) Pack(value shaderdata.PlainValue) (offset uint64) {
	if len(value.Bytes) > shaderdata.MaxPlainBindingBytes {
		panic("resolve: plain value exceeds MaxPlainBindingBytes")
	}
	padded := s.alignUp(len(s.data))
	if padded > len(s.data) {
		s.data = append(s.data, make([]byte, padded-len(s.data))...)
	}
	offset = uint64(len(s.data))
	s.data = append(s.data, value.Bytes...)
	return offset
}
