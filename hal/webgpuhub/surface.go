// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgpuhub

import (
	"sync"

	"github.com/gpuhal/ghal/hal"
)

// Surface implements hal.Surface. Swapchain textures are handed out
// from a small hub-tracked pool rather than the device's main object
// hub, since they have presentation-specific lifetime rules (acquire,
// then present-or-discard, never both).
type Surface struct {
	resource
	mu          sync.Mutex
	configured  bool
	config      hal.SurfaceConfiguration
	acquireNext nativeHandle
}

func (s *Surface) Configure(_ hal.Device, config *hal.SurfaceConfiguration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configured = true
	s.config = *config
	return nil
}

func (s *Surface) Unconfigure(_ hal.Device) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configured = false
}

func (s *Surface) AcquireTexture(_ hal.Fence) (*hal.AcquiredSurfaceTexture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.configured {
		return nil, hal.ErrSurfaceLost
	}
	s.acquireNext++
	key := s.h.insert(s.acquireNext)
	tex := &SurfaceTexture{Texture: Texture{resource: resource{key: key, h: s.h}, handle: s.acquireNext}}
	return &hal.AcquiredSurfaceTexture{Texture: tex, Suboptimal: false}, nil
}

func (s *Surface) DiscardTexture(texture hal.SurfaceTexture) {
	if t, ok := texture.(*SurfaceTexture); ok {
		t.Destroy()
	}
}

// SurfaceTexture implements hal.SurfaceTexture.
type SurfaceTexture struct {
	Texture
}
