// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package webgpuhub

import (
	"github.com/gpuhal/ghal/hal"
	"github.com/gpuhal/ghal/types"
)

// API implements hal.Backend, wiring a browser-class native WebGPU
// implementation loaded via native.go.
type API struct{}

func (API) Variant() types.Backend { return types.BackendBrowserWebGPU }

func (API) CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, error) {
	if err := loadNative(); err != nil {
		return nil, err
	}
	return &Instance{flags: desc.Flags}, nil
}

// Instance implements hal.Instance.
type Instance struct {
	flags types.InstanceFlags
}

func (i *Instance) CreateSurface(_, _ uintptr) (hal.Surface, error) {
	h := newHub()
	key := h.insert(nativeHandle(0))
	return &Surface{resource: resource{key: key, h: h}}, nil
}

func (i *Instance) EnumerateAdapters(_ hal.Surface) []hal.ExposedAdapter {
	return []hal.ExposedAdapter{
		{
			Adapter: &Adapter{},
			Info: types.AdapterInfo{
				Name:       "WebGPU Native Adapter",
				Vendor:     "GoGPU",
				DeviceType: types.DeviceTypeOther,
				Driver:     "wgpu-native",
				DriverInfo: "browser-class handle/hub backend",
				Backend:    types.BackendBrowserWebGPU,
			},
			Features: 0,
			Capabilities: hal.Capabilities{
				Limits: types.DefaultLimits(),
				AlignmentsMask: hal.Alignments{
					BufferCopyOffset: 4,
					BufferCopyPitch:  256,
				},
				// RayQueryMask stays zero: the native implementation this
				// backend wraps has no ray-query extension.
				RayQueryMask: 0,
				MemoryClasses: types.MemoryClassesDeviceLocal |
					types.MemoryClassesHostVisibleWrite |
					types.MemoryClassesHostVisibleShared,
			},
		},
	}
}

func (i *Instance) Destroy() {}

// Adapter implements hal.Adapter.
type Adapter struct{}

func (a *Adapter) Open(_ types.Features, _ types.Limits) (hal.OpenDevice, error) {
	device := newDevice()
	return hal.OpenDevice{
		Device: device,
		Queue:  &Queue{device: device},
	}, nil
}

func (a *Adapter) TextureFormatCapabilities(_ types.TextureFormat) hal.TextureFormatCapabilities {
	return hal.TextureFormatCapabilities{}
}

func (a *Adapter) SurfaceCapabilities(surface hal.Surface) *hal.SurfaceCapabilities {
	if _, ok := surface.(*Surface); !ok {
		return nil
	}
	return &hal.SurfaceCapabilities{
		Formats:      []types.TextureFormat{types.TextureFormatBGRA8UnormSrgb, types.TextureFormatBGRA8Unorm},
		PresentModes: []types.PresentMode{types.PresentModeFifo},
		AlphaModes:   []types.CompositeAlphaMode{types.CompositeAlphaModeOpaque},
	}
}

func (a *Adapter) Destroy() {}
