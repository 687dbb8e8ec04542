/*
Copyright 2025 The goARRG Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"

	"golang.org/x/sys/windows"

	"goarrg.com/debug"
	"goarrg.com/rhi/dxr/d2d1"
	"goarrg.com/rhi/dxr/d3d12"
	"goarrg.com/rhi/dxr/dxgi"
)

var reportFormats = []dxgi.FORMAT{
	dxgi.FORMAT_R8G8B8A8_UNORM,
	dxgi.FORMAT_R8G8B8A8_UNORM_SRGB,
	dxgi.FORMAT_B8G8R8A8_UNORM,
	dxgi.FORMAT_R16G16B16A16_FLOAT,
	dxgi.FORMAT_R32G32B32A32_FLOAT,
	dxgi.FORMAT_R10G10B10A2_UNORM,
	dxgi.FORMAT_D24_UNORM_S8_UINT,
	dxgi.FORMAT_D32_FLOAT,
	dxgi.FORMAT_BC1_UNORM,
	dxgi.FORMAT_BC7_UNORM,
}

// waitIdle signals a fence on queue and blocks until the GPU reaches it.
func waitIdle(device *d3d12.Device, queue *d3d12.CommandQueue) error {
	fence, err := device.CreateFence(0, d3d12.FENCE_FLAG_NONE)
	if err != nil {
		return err
	}
	defer fence.Release()

	event, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		return debug.ErrorWrapf(err, "Failed to create fence event")
	}
	defer windows.CloseHandle(event)

	if err := queue.Signal(fence, 1); err != nil {
		return err
	}
	if fence.GetCompletedValue() < 1 {
		if err := fence.SetEventOnCompletion(1, event); err != nil {
			return err
		}
		if _, err := windows.WaitForSingleObject(event, windows.INFINITE); err != nil {
			return debug.ErrorWrapf(err, "Failed to wait for fence")
		}
	}
	return nil
}

func runD3D12(cfg d3d12.Config) error {
	device, logger, err := d3d12.NewDevice(nil, cfg)
	if err != nil {
		return err
	}
	defer device.Release()
	if logger != nil {
		defer logger.Close()
	}

	formats := append([]dxgi.FORMAT{}, reportFormats...)
	for f := range cfg.RequiredFormatSupport {
		formats = append(formats, f)
	}
	p, err := d3d12.QueryProperties(device, formats)
	if err != nil {
		return err
	}
	fmt.Println(p.String())

	queue, err := device.CreateCommandQueue(&d3d12.COMMAND_QUEUE_DESC{Type: d3d12.COMMAND_LIST_TYPE_DIRECT})
	if err != nil {
		return err
	}
	defer queue.Release()

	freq, err := queue.GetTimestampFrequency()
	if err != nil {
		return err
	}
	debug.IPrintf("Direct queue timestamp frequency: %d Hz", freq)

	if err := waitIdle(device, queue); err != nil {
		return err
	}
	if logger != nil {
		logger.DrainMessages()
	}
	return device.GetDeviceRemovedReason()
}

func runD2D1(cfg d2d1.FactoryConfig) error {
	factory, err := d2d1.CreateFactory(cfg)
	if err != nil {
		return err
	}
	defer factory.Release()

	if err := factory.ReloadSystemMetrics(); err != nil {
		return err
	}
	dpiX, dpiY := factory.GetDesktopDpi()
	fmt.Printf("{\"DesktopDpi\": [%g, %g]}\n", dpiX, dpiY)
	return nil
}

func run(cfg config) error {
	if err := runD3D12(cfg.D3D12); err != nil {
		return debug.ErrorWrapf(err, "D3D12")
	}
	if err := runD2D1(cfg.D2D1); err != nil {
		return debug.ErrorWrapf(err, "D2D1")
	}
	return nil
}
