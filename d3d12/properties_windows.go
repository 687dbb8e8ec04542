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
	"unsafe"

	"goarrg.com/debug"
	"goarrg.com/rhi/dxr/dxgi"
)

var shaderModels = []SHADER_MODEL{
	SHADER_MODEL_6_7, SHADER_MODEL_6_6, SHADER_MODEL_6_5, SHADER_MODEL_6_4,
	SHADER_MODEL_6_3, SHADER_MODEL_6_2, SHADER_MODEL_6_1, SHADER_MODEL_6_0,
	SHADER_MODEL_5_1,
}

// QueryProperties fills Properties from CheckFeatureSupport, formats lists the
// formats to record in Properties.FormatSupport.
func QueryProperties(device *Device, formats []dxgi.FORMAT) (*Properties, error) {
	p := &Properties{
		AdapterLUID:   device.GetAdapterLuid(),
		NodeCount:     device.GetNodeCount(),
		FormatSupport: make(map[dxgi.FORMAT]FORMAT_SUPPORT1, len(formats)),
	}

	{
		levels := FEATURE_DATA_FEATURE_LEVELS{
			NumFeatureLevels:        uint32(len(featureLevels)),
			PFeatureLevelsRequested: unsafe.SliceData(featureLevels),
		}
		if err := CheckFeature(device, FEATURE_FEATURE_LEVELS, &levels); err != nil {
			return nil, debug.ErrorWrapf(err, "Failed to query feature levels")
		}
		p.FeatureLevel = levels.MaxSupportedFeatureLevel
	}

	// the runtime rejects shader models it does not know about
	for _, model := range shaderModels {
		data := FEATURE_DATA_SHADER_MODEL{HighestShaderModel: model}
		if err := CheckFeature(device, FEATURE_SHADER_MODEL, &data); err == nil {
			p.ShaderModel = data.HighestShaderModel
			break
		}
	}

	{
		data := FEATURE_DATA_ROOT_SIGNATURE{HighestVersion: ROOT_SIGNATURE_VERSION_1_1}
		if err := CheckFeature(device, FEATURE_ROOT_SIGNATURE, &data); err != nil {
			data.HighestVersion = ROOT_SIGNATURE_VERSION_1_0
		}
		p.RootSignatureVersion = data.HighestVersion
	}

	{
		var data FEATURE_DATA_D3D12_OPTIONS
		if err := CheckFeature(device, FEATURE_D3D12_OPTIONS, &data); err != nil {
			return nil, debug.ErrorWrapf(err, "Failed to query options")
		}
		p.Options = Options{
			DoublePrecisionFloatShaderOps:       data.DoublePrecisionFloatShaderOps.Go(),
			OutputMergerLogicOp:                 data.OutputMergerLogicOp.Go(),
			MinPrecisionSupport:                 data.MinPrecisionSupport,
			TiledResourcesTier:                  data.TiledResourcesTier,
			ResourceBindingTier:                 data.ResourceBindingTier,
			ResourceHeapTier:                    data.ResourceHeapTier,
			ConservativeRasterizationTier:       data.ConservativeRasterizationTier,
			PSSpecifiedStencilRefSupported:      data.PSSpecifiedStencilRefSupported.Go(),
			TypedUAVLoadAdditionalFormats:       data.TypedUAVLoadAdditionalFormats.Go(),
			ROVsSupported:                       data.ROVsSupported.Go(),
			StandardSwizzle64KBSupported:        data.StandardSwizzle64KBSupported.Go(),
			MaxGPUVirtualAddressBitsPerResource: data.MaxGPUVirtualAddressBitsPerResource,
		}
	}

	{
		var data FEATURE_DATA_GPU_VIRTUAL_ADDRESS_SUPPORT
		if err := CheckFeature(device, FEATURE_GPU_VIRTUAL_ADDRESS_SUPPORT, &data); err == nil {
			p.Options.MaxGPUVirtualAddressBitsPerProcess = data.MaxGPUVirtualAddressBitsPerProcess
		}
	}

	{
		var data FEATURE_DATA_D3D12_OPTIONS1
		if err := CheckFeature(device, FEATURE_D3D12_OPTIONS1, &data); err == nil {
			p.Wave = Wave{
				Supported:      data.WaveOps.Go(),
				LaneCountMin:   data.WaveLaneCountMin,
				LaneCountMax:   data.WaveLaneCountMax,
				TotalLaneCount: data.TotalLaneCount,
				Int64Ops:       data.Int64ShaderOps.Go(),
			}
		} else {
			instance.logger.VPrintf("FEATURE_D3D12_OPTIONS1 unsupported: %s", err)
		}
	}

	{
		var data FEATURE_DATA_ARCHITECTURE1
		if err := CheckFeature(device, FEATURE_ARCHITECTURE1, &data); err == nil {
			p.Architecture = Architecture{
				TileBasedRenderer: data.TileBasedRenderer.Go(),
				UMA:               data.UMA.Go(),
				CacheCoherentUMA:  data.CacheCoherentUMA.Go(),
				IsolatedMMU:       data.IsolatedMMU.Go(),
			}
		} else {
			var data FEATURE_DATA_ARCHITECTURE
			if err := CheckFeature(device, FEATURE_ARCHITECTURE, &data); err != nil {
				return nil, debug.ErrorWrapf(err, "Failed to query architecture")
			}
			p.Architecture = Architecture{
				TileBasedRenderer: data.TileBasedRenderer.Go(),
				UMA:               data.UMA.Go(),
				CacheCoherentUMA:  data.CacheCoherentUMA.Go(),
			}
		}
	}

	for _, f := range formats {
		data := FEATURE_DATA_FORMAT_SUPPORT{Format: f}
		if err := CheckFeature(device, FEATURE_FORMAT_SUPPORT, &data); err != nil {
			instance.logger.VPrintf("Format [%s] unsupported: %s", f.String(), err)
			p.FormatSupport[f] = 0
			continue
		}
		p.FormatSupport[f] = data.Support1
		instance.logger.VPrintf("Format [%s] has support: %s", f.String(), data.Support1.String())
	}

	return p, nil
}
