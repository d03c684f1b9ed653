// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgpuhub

import (
	"sync"
	"sync/atomic"
)

// hostShadowBuffer pairs a native buffer handle with a CPU-side copy
// for host-visible buffers (types.MemoryClassHostVisibleWrite/Shared).
// Writes land in shadow and are not visible to the GPU until flush
// uploads them; a write that arrives after a submission but before
// that submission completes is still buffered here and only reaches
// the GPU on the next flush, never mid-flight.
type hostShadowBuffer struct {
	handle nativeHandle
	shadow []byte
	dirty  atomic.Bool
}

// write copies data into the shadow at offset and marks the buffer
// dirty. Safe for concurrent callers; the dirty flag coalesces any
// number of writes between flushes into a single upload.
func (b *hostShadowBuffer) write(offset uint64, data []byte) {
	copy(b.shadow[offset:], data)
	b.dirty.Store(true)
}

// takeDirty reports whether the buffer has unflushed writes and, if
// so, clears the flag atomically so a second concurrent flush cannot
// also observe it dirty and upload twice.
func (b *hostShadowBuffer) takeDirty() bool {
	return b.dirty.CompareAndSwap(true, false)
}

// dirtyFlushSet tracks every host-shadow buffer created by a device so
// Queue.Submit can flush exactly the ones with pending writes, exactly
// once, immediately before submission.
type dirtyFlushSet struct {
	mu      sync.Mutex
	buffers map[*hostShadowBuffer]struct{}
}

func newDirtyFlushSet() *dirtyFlushSet {
	return &dirtyFlushSet{buffers: make(map[*hostShadowBuffer]struct{})}
}

func (s *dirtyFlushSet) track(b *hostShadowBuffer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffers[b] = struct{}{}
}

func (s *dirtyFlushSet) untrack(b *hostShadowBuffer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buffers, b)
}

// flush uploads every dirty tracked buffer via upload, clearing each
// buffer's dirty flag before its upload so a write racing in during
// the upload is preserved for the next flush rather than lost.
func (s *dirtyFlushSet) flush(upload func(b *hostShadowBuffer)) {
	s.mu.Lock()
	pending := make([]*hostShadowBuffer, 0, len(s.buffers))
	for b := range s.buffers {
		if b.takeDirty() {
			pending = append(pending, b)
		}
	}
	s.mu.Unlock()

	for _, b := range pending {
		upload(b)
	}
}
