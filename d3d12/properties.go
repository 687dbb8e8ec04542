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
	"bytes"
	"fmt"
	"strings"

	"goarrg.com/rhi/dxr/dxgi"
)

type (
	Options struct {
		DoublePrecisionFloatShaderOps       bool
		OutputMergerLogicOp                 bool
		MinPrecisionSupport                 SHADER_MIN_PRECISION_SUPPORT
		TiledResourcesTier                  TILED_RESOURCES_TIER
		ResourceBindingTier                 RESOURCE_BINDING_TIER
		ResourceHeapTier                    RESOURCE_HEAP_TIER
		ConservativeRasterizationTier       CONSERVATIVE_RASTERIZATION_TIER
		PSSpecifiedStencilRefSupported      bool
		TypedUAVLoadAdditionalFormats       bool
		ROVsSupported                       bool
		StandardSwizzle64KBSupported        bool
		MaxGPUVirtualAddressBitsPerResource uint32
		MaxGPUVirtualAddressBitsPerProcess  uint32
	}
	Wave struct {
		Supported      bool
		LaneCountMin   uint32
		LaneCountMax   uint32
		TotalLaneCount uint32
		Int64Ops       bool
	}
	Architecture struct {
		TileBasedRenderer bool
		UMA               bool
		CacheCoherentUMA  bool
		IsolatedMMU       bool
	}
	Properties struct {
		AdapterLUID          dxgi.LUID
		NodeCount            uint32
		FeatureLevel         FEATURE_LEVEL
		ShaderModel          SHADER_MODEL
		RootSignatureVersion ROOT_SIGNATURE_VERSION
		Options              Options
		Wave                 Wave
		Architecture         Architecture
		FormatSupport        map[dxgi.FORMAT]FORMAT_SUPPORT1
	}
)

func (p *Properties) MarshalJSON() ([]byte, error) {
	buff := bytes.Buffer{}
	buff.WriteString("{")

	buff.WriteString(fmt.Sprintf("\"AdapterLUID\": %q,", p.AdapterLUID.String()))
	buff.WriteString(fmt.Sprintf("\"NodeCount\": %d,", p.NodeCount))
	buff.WriteString(fmt.Sprintf("\"FeatureLevel\": %q,", p.FeatureLevel.String()))
	buff.WriteString(fmt.Sprintf("\"ShaderModel\": %q,", p.ShaderModel.String()))
	buff.WriteString(fmt.Sprintf("\"RootSignatureVersion\": %q,", p.RootSignatureVersion.String()))

	{
		o := p.Options
		buff.WriteString("\"Options\": {")
		buff.WriteString(fmt.Sprintf("\"DoublePrecisionFloatShaderOps\": %t,", o.DoublePrecisionFloatShaderOps))
		buff.WriteString(fmt.Sprintf("\"OutputMergerLogicOp\": %t,", o.OutputMergerLogicOp))
		buff.WriteString(fmt.Sprintf("\"MinPrecisionSupport\": %q,", toHex(uint32(o.MinPrecisionSupport))))
		buff.WriteString(fmt.Sprintf("\"TiledResourcesTier\": %q,", o.TiledResourcesTier.String()))
		buff.WriteString(fmt.Sprintf("\"ResourceBindingTier\": %q,", o.ResourceBindingTier.String()))
		buff.WriteString(fmt.Sprintf("\"ResourceHeapTier\": %q,", o.ResourceHeapTier.String()))
		buff.WriteString(fmt.Sprintf("\"ConservativeRasterizationTier\": %q,", o.ConservativeRasterizationTier.String()))
		buff.WriteString(fmt.Sprintf("\"PSSpecifiedStencilRefSupported\": %t,", o.PSSpecifiedStencilRefSupported))
		buff.WriteString(fmt.Sprintf("\"TypedUAVLoadAdditionalFormats\": %t,", o.TypedUAVLoadAdditionalFormats))
		buff.WriteString(fmt.Sprintf("\"ROVsSupported\": %t,", o.ROVsSupported))
		buff.WriteString(fmt.Sprintf("\"StandardSwizzle64KBSupported\": %t,", o.StandardSwizzle64KBSupported))
		buff.WriteString(fmt.Sprintf("\"MaxGPUVirtualAddressBitsPerResource\": %d,", o.MaxGPUVirtualAddressBitsPerResource))
		buff.WriteString(fmt.Sprintf("\"MaxGPUVirtualAddressBitsPerProcess\": %d", o.MaxGPUVirtualAddressBitsPerProcess))
		buff.WriteString("},")
	}

	buff.WriteString(fmt.Sprintf("\"Wave\": %s,", jsonString(p.Wave)))
	buff.WriteString(fmt.Sprintf("\"Architecture\": %s,", jsonString(p.Architecture)))

	{
		buff.WriteString("\"FormatSupport\": {")
		err := mapRunFuncStringSorted(p.FormatSupport, func(k dxgi.FORMAT, v FORMAT_SUPPORT1) error {
			buff.WriteString(fmt.Sprintf("%q: [", k.String()))
			if v != 0 {
				for _, f := range strings.Split(v.String(), "|") {
					buff.WriteString(fmt.Sprintf("%q,", f))
				}
				buff.Truncate(buff.Len() - 1)
			}
			buff.WriteString("],")
			return nil
		})
		if err == nil {
			buff.Truncate(buff.Len() - 1)
		}
		buff.WriteString("},")
	}

	buff.Truncate(buff.Len() - 1)
	buff.WriteString("}")
	return buff.Bytes(), nil
}

func (p *Properties) String() string {
	return prettyString(p)
}

// CheckFormatSupport reports the formats in required whose support in p lacks
// any of the required bits.
func (p *Properties) CheckFormatSupport(required map[dxgi.FORMAT]FORMAT_SUPPORT1) []dxgi.FORMAT {
	var missing []dxgi.FORMAT
	_ = mapRunFuncStringSorted(required, func(k dxgi.FORMAT, want FORMAT_SUPPORT1) error {
		if !p.FormatSupport[k].HasBits(want) {
			missing = append(missing, k)
		}
		return nil
	})
	return missing
}
