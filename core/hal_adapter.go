package core

import "github.com/gpuhal/ghal/hal"

// HasHAL reports whether this adapter is backed by a real HAL adapter
// rather than the mock fallback used when no GPU backend is available.
func (a *Adapter) HasHAL() bool {
	return a.halAdapter != nil
}

// HALAdapter returns the underlying HAL adapter, or nil for mock adapters.
func (a *Adapter) HALAdapter() hal.Adapter {
	return a.halAdapter
}

// HALCapabilities returns the adapter's full HAL capabilities, or nil for
// mock adapters.
func (a *Adapter) HALCapabilities() *hal.Capabilities {
	return a.halCapabilities
}
