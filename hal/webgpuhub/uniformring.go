// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgpuhub

import "sync"

// uniformRingFrames is the number of scratch uniform buffers kept in
// rotation, enough for the GPU to still be reading frame N-1's scratch
// contents while the host packs frame N's.
const uniformRingFrames = 3

// uniformRing is a rotating pool of native scratch uniform buffers
// backing resolve.UniformScratch's packed plain bindings. Each acquire
// call advances to the next buffer in the ring, so a slot is handed out
// again only after uniformRingFrames further acquires; Queue.Submit does
// not advance the ring and nothing checks that a slot's last GPU use has
// completed.
type uniformRing struct {
	mu      sync.Mutex
	buffers []nativeHandle
	sizes   []uint64
	next    int
}

func newUniformRing() *uniformRing {
	return &uniformRing{
		buffers: make([]nativeHandle, uniformRingFrames),
		sizes:   make([]uint64, uniformRingFrames),
	}
}

// acquire returns the next scratch buffer in the ring along with its
// current capacity, advancing the ring position.
func (r *uniformRing) acquire() (slot int, handle nativeHandle, size uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot = r.next
	r.next = (r.next + 1) % uniformRingFrames
	return slot, r.buffers[slot], r.sizes[slot]
}

// grow records that slot was reallocated to a new handle of the given
// size, rounded up to the next power of two by the caller before the
// native allocation. Called when a submission's packed scratch bytes
// exceed the ring slot's current capacity.
func (r *uniformRing) grow(slot int, handle nativeHandle, size uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buffers[slot] = handle
	r.sizes[slot] = size
}

// nextPowerOfTwo rounds n up to the next power of two, with a floor of
// 256 bytes (the minimum uniform buffer offset alignment every ported
// backend reports).
func nextPowerOfTwo(n uint64) uint64 {
	if n <= 256 {
		return 256
	}
	p := uint64(256)
	for p < n {
		p <<= 1
	}
	return p
}
