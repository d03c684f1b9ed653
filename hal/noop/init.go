package noop

import "github.com/gpuhal/ghal/hal"

// init registers the noop backend with the HAL registry.
func init() {
	hal.RegisterBackend(API{})
}
