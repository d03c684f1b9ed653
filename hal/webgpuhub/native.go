// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgpuhub

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// nativeHandle is an opaque handle into the native WebGPU
// implementation's own object table (a WGPUDevice, WGPUBuffer, etc.).
// This backend never dereferences it directly; every use crosses the
// FFI boundary through a prepared CallInterface.
type nativeHandle uint64

var (
	nativeLib         unsafe.Pointer
	symCreateInstance unsafe.Pointer
	cifCreateInstance types.CallInterface

	loadOnce sync.Once
	loadErr  error
)

// nativeLibraryName returns the platform-specific shared library name
// for the native WebGPU implementation this backend binds to.
func nativeLibraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "wgpu_native.dll"
	case "darwin":
		return "libwgpu_native.dylib"
	default:
		return "libwgpu_native.so"
	}
}

// loadNative loads the native WebGPU library and prepares the handful
// of call interfaces this backend issues directly. Safe to call
// multiple times; only the first call does work.
func loadNative() error {
	loadOnce.Do(func() {
		loadErr = doLoadNative()
	})
	return loadErr
}

func doLoadNative() error {
	lib, err := ffi.LoadLibrary(nativeLibraryName())
	if err != nil {
		return fmt.Errorf("webgpuhub: failed to load %s: %w", nativeLibraryName(), err)
	}
	nativeLib = lib

	symCreateInstance, err = ffi.GetSymbol(nativeLib, "wgpuCreateInstance")
	if err != nil {
		return fmt.Errorf("webgpuhub: wgpuCreateInstance not found: %w", err)
	}

	// WGPUInstance wgpuCreateInstance(const WGPUInstanceDescriptor*)
	if err := ffi.PrepareCallInterface(&cifCreateInstance, types.DefaultCall,
		types.UInt64TypeDescriptor,
		[]*types.TypeDescriptor{
			types.PointerTypeDescriptor,
		}); err != nil {
		return fmt.Errorf("webgpuhub: failed to prepare CreateInstance interface: %w", err)
	}

	return nil
}
