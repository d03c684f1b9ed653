// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package webgpuhub implements the handle/hub backend: a HAL backend
// targeting a browser-class, reference-counted native WebGPU
// implementation (wgpu-native/Dawn-shaped) instead of a GPU API this
// module drives directly.
//
// Unlike the other backends, the native side already owns object
// lifetime and identity; this package's job is the glue a host
// embedding such an implementation needs: a generational arena mapping
// this module's handles onto native object handles (hub.go), an LRU
// cache of bind groups keyed by their resolved contents so identical
// bindings are not re-created every draw (bindgroupcache.go), and the
// destroy-ordering discipline that keeps the cache from outliving the
// resources it references (the single landmine this backend exists to
// avoid).
package webgpuhub
