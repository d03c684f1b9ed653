// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgpuhub

import "testing"

func TestBindGroupCache_GetMiss(t *testing.T) {
	c := newBindGroupCache()
	if _, ok := c.get(bindGroupCacheKey{bindings: "x"}); ok {
		t.Fatal("get() on empty cache: want false")
	}
}

func TestBindGroupCache_PutThenGet(t *testing.T) {
	c := newBindGroupCache()
	key := bindGroupCacheKey{groupIndex: 0, bindings: "buf0"}
	c.put(key, 42, nil)

	handle, ok := c.get(key)
	if !ok || handle != 42 {
		t.Fatalf("get() = %v, %v; want 42, true", handle, ok)
	}
}

func TestBindGroupCache_InvalidateDependentsRemovesEntry(t *testing.T) {
	c := newBindGroupCache()
	dep := hubKey{index: 3, epoch: 1}
	key := bindGroupCacheKey{bindings: "depends-on-3"}
	c.put(key, 7, []hubKey{dep})

	handles := c.invalidateDependents(dep)
	if len(handles) != 1 || handles[0] != 7 {
		t.Fatalf("invalidateDependents() = %v; want [7]", handles)
	}
	if _, ok := c.get(key); ok {
		t.Fatal("entry should be gone after its dependency is invalidated")
	}
}

func TestBindGroupCache_InvalidateDependentsNoneIsNoop(t *testing.T) {
	c := newBindGroupCache()
	if handles := c.invalidateDependents(hubKey{index: 99}); handles != nil {
		t.Fatalf("invalidateDependents() on untracked dep = %v; want nil", handles)
	}
}

func TestBindGroupCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newBindGroupCache()
	for i := 0; i < maxBindGroupCacheEntries; i++ {
		c.put(bindGroupCacheKey{groupIndex: uint32(i)}, nativeHandle(i), nil)
	}
	if c.len() != maxBindGroupCacheEntries {
		t.Fatalf("len() = %d; want %d", c.len(), maxBindGroupCacheEntries)
	}

	// Touch entry 0 so it is no longer the least recently used.
	if _, ok := c.get(bindGroupCacheKey{groupIndex: 0}); !ok {
		t.Fatal("expected entry 0 to be cached")
	}

	_, didEvict := c.put(bindGroupCacheKey{groupIndex: uint32(maxBindGroupCacheEntries)}, 999, nil)
	if !didEvict {
		t.Fatal("expected eviction once over capacity")
	}
	if c.len() != maxBindGroupCacheEntries {
		t.Fatalf("len() after eviction = %d; want %d", c.len(), maxBindGroupCacheEntries)
	}
	if _, ok := c.get(bindGroupCacheKey{groupIndex: 0}); !ok {
		t.Fatal("recently touched entry 0 should have survived eviction")
	}
	if _, ok := c.get(bindGroupCacheKey{groupIndex: 1}); ok {
		t.Fatal("entry 1, never re-touched, should have been evicted as least recently used")
	}
}
