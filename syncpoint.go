package ghal

import (
	"fmt"
	"time"

	"github.com/gpuhal/ghal/hal"
)

// SyncPoint is a handle to a specific point in a queue's submission
// timeline, returned by Queue.Submit. Waiting on it blocks until the
// GPU has completed every command buffer submitted up to and including
// the one that produced it.
//
// A SyncPoint with timeout 0 never flushes the underlying fence wait;
// it only reports whether the timeline has already reached that point
// (spec open question: wait_for(sp, 0) polls, it does not force
// completion).
type SyncPoint struct {
	device hal.Device
	fence  hal.Fence
	value  uint64
}

// Wait blocks for up to timeout for the GPU timeline to reach sp. It
// returns true if the timeline reached sp, false on timeout. A zero
// timeout performs a non-blocking poll: it reports the current state
// without side-effecting a flush of outstanding work, so a caller
// spinning on wait_for(sp, 0) cannot itself induce forward progress.
func (sp SyncPoint) Wait(timeout time.Duration) (bool, error) {
	if sp.device == nil || sp.fence == nil {
		return false, fmt.Errorf("ghal: SyncPoint is zero-valued")
	}
	reached, err := sp.device.Wait(sp.fence, sp.value, timeout)
	if err != nil {
		return false, fmt.Errorf("ghal: SyncPoint.Wait: %w", err)
	}
	return reached, nil
}

// Value returns the opaque timeline value this sync point represents.
// Two SyncPoints from the same Queue compare in submission order.
func (sp SyncPoint) Value() uint64 {
	return sp.value
}
