package resolve

import "sync"

// PipelineKey identifies one (pipeline, layout) pair in the cache. A
// pipeline is any comparable backend pipeline handle; callers typically
// pass the hal.RenderPipeline/hal.ComputePipeline value itself.
type PipelineKey struct {
	Pipeline any
	Layout   any
}

// PipelineCache memoizes a ShaderDataMapping per (pipeline, layout)
// pair so repeated draws/dispatches against the same pipeline skip
// re-resolution. It mirrors core.Registry's single-mutex, map-backed
// storage, scaled down to the no-eviction case: pipelines are
// long-lived and few, unlike the per-submission bind groups tracked by
// hal/webgpuhub's LRU cache.
type PipelineCache struct {
	mu      sync.RWMutex
	entries map[PipelineKey]*ShaderDataMapping
}

// NewPipelineCache creates an empty cache.
func NewPipelineCache() *PipelineCache {
	return &PipelineCache{entries: make(map[PipelineKey]*ShaderDataMapping)}
}

// Get returns the cached mapping for key, if present.
func (c *PipelineCache) Get(key PipelineKey) (*ShaderDataMapping, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.entries[key]
	return m, ok
}

// Store records mapping for key, overwriting any prior entry.
func (c *PipelineCache) Store(key PipelineKey, mapping *ShaderDataMapping) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = mapping
}

// Forget removes key's entry, if any. Callers invoke this when a
// pipeline or layout is destroyed so the cache cannot outlive it.
func (c *PipelineCache) Forget(key PipelineKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len reports the number of cached mappings.
func (c *PipelineCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
