// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgpuhub

import "github.com/gpuhal/ghal/hal"

func init() {
	hal.RegisterBackend(API{})
}
