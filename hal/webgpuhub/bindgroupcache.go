// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgpuhub

import (
	"container/list"
	"sync"
)

// maxBindGroupCacheEntries bounds the cache so a program that churns
// through many distinct binding combinations cannot grow it without
// limit; eviction favors the least recently used entry.
const maxBindGroupCacheEntries = 1024

// bindGroupCacheKey identifies a bind group by its resolved contents:
// which pipeline layout it was built against, which group index it
// fills, and the sorted resource bindings within it. Two draws that
// bind the same resources to the same slots share one entry.
type bindGroupCacheKey struct {
	layout     hubKey
	groupIndex uint32
	bindings   string // canonicalized resource-binding fingerprint
}

// bindGroupCacheEntry is one cached native bind group.
type bindGroupCacheEntry struct {
	key    bindGroupCacheKey
	handle nativeHandle
}

// bindGroupCache is an LRU cache of native bind groups keyed by their
// resolved contents, so a pipeline re-binding the same resources every
// frame does not reallocate a bind group each time. It also tracks,
// per dependency (a hub entry a cached bind group references — a
// buffer, texture view, or sampler), every cache entry that depends on
// it, so destroying that resource can invalidate exactly the entries
// that reference it.
//
// Destroy-ordering invariant: callers MUST invalidate a resource's
// cache dependents (invalidateDependents) before removing the resource
// from the hub. Reversing the order leaves a cache entry holding a
// native bind group that references a native handle the hub has
// already recycled for something else — the dangling-reference
// landmine this backend exists to avoid.
type bindGroupCache struct {
	mu           sync.Mutex
	order        *list.List
	byKey        map[bindGroupCacheKey]*list.Element
	dependencies map[hubKey]map[bindGroupCacheKey]struct{}
}

func newBindGroupCache() *bindGroupCache {
	return &bindGroupCache{
		order:        list.New(),
		byKey:        make(map[bindGroupCacheKey]*list.Element),
		dependencies: make(map[hubKey]map[bindGroupCacheKey]struct{}),
	}
}

// get returns the cached handle for key and marks it most-recently-used.
func (c *bindGroupCache) get(key bindGroupCacheKey) (nativeHandle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.byKey[key]
	if !ok {
		return 0, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*bindGroupCacheEntry).handle, true
}

// put inserts a cache entry for key, recording its dependency on every
// hub entry in deps. Evicts the least-recently-used entry if the cache
// is at capacity. Returns the evicted handle, if any, so the caller
// can destroy the corresponding native bind group.
func (c *bindGroupCache) put(key bindGroupCacheKey, handle nativeHandle, deps []hubKey) (evicted nativeHandle, didEvict bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.byKey[key]; ok {
		el.Value.(*bindGroupCacheEntry).handle = handle
		c.order.MoveToFront(el)
		return 0, false
	}

	entry := &bindGroupCacheEntry{key: key, handle: handle}
	el := c.order.PushFront(entry)
	c.byKey[key] = el
	for _, dep := range deps {
		set, ok := c.dependencies[dep]
		if !ok {
			set = make(map[bindGroupCacheKey]struct{})
			c.dependencies[dep] = set
		}
		set[key] = struct{}{}
	}

	if c.order.Len() > maxBindGroupCacheEntries {
		back := c.order.Back()
		evictedEntry := back.Value.(*bindGroupCacheEntry)
		c.removeLocked(evictedEntry.key)
		return evictedEntry.handle, true
	}
	return 0, false
}

// invalidateDependents removes every cache entry that depends on dep
// and returns their native handles for the caller to destroy. Call
// this BEFORE removing dep from its hub — see the destroy-ordering
// invariant on bindGroupCache.
func (c *bindGroupCache) invalidateDependents(dep hubKey) []nativeHandle {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := c.dependencies[dep]
	if len(keys) == 0 {
		return nil
	}
	handles := make([]nativeHandle, 0, len(keys))
	for key := range keys {
		if el, ok := c.byKey[key]; ok {
			handles = append(handles, el.Value.(*bindGroupCacheEntry).handle)
		}
		c.removeLocked(key)
	}
	return handles
}

// removeLocked drops key from the cache and every dependency set that
// references it. Callers must hold c.mu.
func (c *bindGroupCache) removeLocked(key bindGroupCacheKey) {
	el, ok := c.byKey[key]
	if !ok {
		return
	}
	c.order.Remove(el)
	delete(c.byKey, key)
	for dep, set := range c.dependencies {
		delete(set, key)
		if len(set) == 0 {
			delete(c.dependencies, dep)
		}
	}
}

// len reports the number of cached entries.
func (c *bindGroupCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
