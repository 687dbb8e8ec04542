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
	"encoding/json"
	"slices"
	"testing"

	"goarrg.com/rhi/dxr/dxgi"
)

func testProperties() *Properties {
	return &Properties{
		AdapterLUID:          dxgi.LUID{LowPart: 0xABCD, HighPart: 1},
		NodeCount:            1,
		FeatureLevel:         FEATURE_LEVEL_12_1,
		ShaderModel:          SHADER_MODEL_6_6,
		RootSignatureVersion: ROOT_SIGNATURE_VERSION_1_1,
		Options: Options{
			ResourceBindingTier: RESOURCE_BINDING_TIER_3,
			TiledResourcesTier:  TILED_RESOURCES_TIER_NOT_SUPPORTED,
		},
		Wave: Wave{Supported: true, LaneCountMin: 32, LaneCountMax: 64},
		FormatSupport: map[dxgi.FORMAT]FORMAT_SUPPORT1{
			dxgi.FORMAT_R8G8B8A8_UNORM: FORMAT_SUPPORT1_TEXTURE2D | FORMAT_SUPPORT1_RENDER_TARGET | FORMAT_SUPPORT1_BLENDABLE,
			dxgi.FORMAT_D32_FLOAT:      FORMAT_SUPPORT1_TEXTURE2D | FORMAT_SUPPORT1_DEPTH_STENCIL,
			dxgi.FORMAT_R1_UNORM:       0,
		},
	}
}

func TestPropertiesJSON(t *testing.T) {
	data, err := testProperties().MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		AdapterLUID   string
		FeatureLevel  string
		ShaderModel   string
		Options       map[string]any
		Wave          Wave
		FormatSupport map[string][]string
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON %s: %v", data, err)
	}
	if decoded.AdapterLUID != "00000001-0000ABCD" {
		t.Errorf("AdapterLUID = %q", decoded.AdapterLUID)
	}
	if decoded.FeatureLevel != "12_1" || decoded.ShaderModel != "6.6" {
		t.Errorf("FeatureLevel = %q ShaderModel = %q", decoded.FeatureLevel, decoded.ShaderModel)
	}
	if decoded.Options["ResourceBindingTier"] != "Tier3" || decoded.Options["TiledResourcesTier"] != "NotSupported" {
		t.Errorf("Options = %v", decoded.Options)
	}
	if !decoded.Wave.Supported || decoded.Wave.LaneCountMax != 64 {
		t.Errorf("Wave = %+v", decoded.Wave)
	}
	if got := decoded.FormatSupport[dxgi.FORMAT_D32_FLOAT.String()]; !slices.Equal(got, []string{"Texture2D", "DepthStencil"}) {
		t.Errorf("FormatSupport[D32_FLOAT] = %v", got)
	}
	if got := decoded.FormatSupport[dxgi.FORMAT_R1_UNORM.String()]; len(got) != 0 {
		t.Errorf("FormatSupport[R1_UNORM] = %v", got)
	}

	empty, err := (&Properties{}).MarshalJSON()
	if err != nil || !json.Valid(empty) {
		t.Errorf("empty properties JSON %s: %v", empty, err)
	}
	if s := testProperties().String(); !json.Valid([]byte(s)) {
		t.Errorf("String() is not valid JSON: %s", s)
	}
}

func TestCheckFormatSupport(t *testing.T) {
	p := testProperties()

	missing := p.CheckFormatSupport(map[dxgi.FORMAT]FORMAT_SUPPORT1{
		dxgi.FORMAT_R8G8B8A8_UNORM: FORMAT_SUPPORT1_RENDER_TARGET | FORMAT_SUPPORT1_BLENDABLE,
		dxgi.FORMAT_D32_FLOAT:      FORMAT_SUPPORT1_RENDER_TARGET,
		dxgi.FORMAT_BC7_UNORM:      FORMAT_SUPPORT1_TEXTURE2D,
	})
	slices.Sort(missing)
	want := []dxgi.FORMAT{dxgi.FORMAT_D32_FLOAT, dxgi.FORMAT_BC7_UNORM}
	slices.Sort(want)
	if !slices.Equal(missing, want) {
		t.Errorf("missing = %v, want %v", missing, want)
	}

	if missing := p.CheckFormatSupport(nil); len(missing) != 0 {
		t.Errorf("missing = %v for empty requirement", missing)
	}
}
