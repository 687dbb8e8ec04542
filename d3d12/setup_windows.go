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

package d3d12

import (
	"goarrg.com/debug"
	"goarrg.com/rhi/dxr/com"
	"goarrg.com/rhi/dxr/dxgi"
)

func enableDebugLayer(config Config) error {
	if config.EnableGPUBasedValidation || config.EnableSynchronizedCommandQueueValidation {
		debug1, err := GetDebugInterface[Debug1](&IID_ID3D12Debug1)
		if err != nil {
			return debug.ErrorWrapf(err, "GPU based validation requires ID3D12Debug1")
		}
		defer debug1.Release()

		debug1.EnableDebugLayer()
		debug1.SetEnableGPUBasedValidation(config.EnableGPUBasedValidation)
		debug1.SetEnableSynchronizedCommandQueueValidation(config.EnableSynchronizedCommandQueueValidation)
		return nil
	}

	d, err := GetDebugInterface[Debug](&IID_ID3D12Debug)
	if err != nil {
		return err
	}
	defer d.Release()

	d.EnableDebugLayer()
	return nil
}

// NewDevice creates a device on adapter, or the default adapter when nil, as
// described by config. The returned InfoQueueLogger is nil unless the debug
// layer is enabled and must be closed before the device is released.
func NewDevice(adapter *com.IUnknown, config Config) (*Device, *InfoQueueLogger, error) {
	if err := config.validate(); err != nil {
		return nil, nil, err
	}
	instance.logger.VPrintf("Config: %s", prettyString(&config))

	if config.EnableDebugLayer {
		if err := enableDebugLayer(config); err != nil {
			return nil, nil, debug.ErrorWrapf(err, "Failed to enable debug layer")
		}
		instance.logger.IPrintf("Debug layer enabled")
	}

	device, err := CreateDevice(adapter, config.MinimumFeatureLevel)
	if err != nil {
		return nil, nil, debug.ErrorWrapf(err, "Failed to create device with feature level %s", config.MinimumFeatureLevel)
	}

	if len(config.RequiredFormatSupport) > 0 {
		formats := make([]dxgi.FORMAT, 0, len(config.RequiredFormatSupport))
		for f := range config.RequiredFormatSupport {
			formats = append(formats, f)
		}
		p, err := QueryProperties(device, formats)
		if err != nil {
			device.Release()
			return nil, nil, err
		}
		if missing := p.CheckFormatSupport(config.RequiredFormatSupport); len(missing) > 0 {
			device.Release()
			return nil, nil, debug.Errorf("Device is missing required format support: %v", missing)
		}
	}

	var logger *InfoQueueLogger
	if config.EnableDebugLayer {
		logger, err = newInfoQueueLogger(device, config)
		if err != nil {
			device.Release()
			return nil, nil, debug.ErrorWrapf(err, "Failed to setup info queue")
		}
	}

	instance.logger.IPrintf("Created device [%s] nodes: %d", device.GetAdapterLuid(), device.GetNodeCount())
	return device, logger, nil
}
