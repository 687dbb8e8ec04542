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
	"strings"
	"testing"

	"goarrg.com/rhi/dxr/dxgi"
)

func TestConfigValidate(t *testing.T) {
	c := Config{}
	if err := c.validate(); err != nil {
		t.Fatalf("zero config: %v", err)
	}
	if c.MinimumFeatureLevel != FEATURE_LEVEL_11_0 {
		t.Errorf("MinimumFeatureLevel defaulted to %s", c.MinimumFeatureLevel)
	}

	invalid := []Config{
		{MinimumFeatureLevel: FEATURE_LEVEL_10_1},
		{MinimumFeatureLevel: FEATURE_LEVEL(0xd000)},
		{EnableGPUBasedValidation: true},
		{EnableSynchronizedCommandQueueValidation: true},
		{EnableDebugLayer: true, BreakOnSeverity: []MESSAGE_SEVERITY{MESSAGE_SEVERITY(7)}},
	}
	for i, c := range invalid {
		if err := c.validate(); err == nil {
			t.Errorf("config %d accepted: %+v", i, c)
		}
	}

	valid := Config{
		MinimumFeatureLevel:      FEATURE_LEVEL_12_0,
		EnableDebugLayer:         true,
		EnableGPUBasedValidation: true,
		BreakOnSeverity:          []MESSAGE_SEVERITY{MESSAGE_SEVERITY_CORRUPTION},
	}
	if err := valid.validate(); err != nil {
		t.Errorf("valid config: %v", err)
	}
}

func TestConfigJSON(t *testing.T) {
	c := Config{
		MinimumFeatureLevel: FEATURE_LEVEL_12_1,
		EnableDebugLayer:    true,
		BreakOnSeverity:     []MESSAGE_SEVERITY{MESSAGE_SEVERITY_ERROR, MESSAGE_SEVERITY_CORRUPTION},
		DenyMessageIDs:      []MESSAGE_ID{MESSAGE_ID_CLEARRENDERTARGETVIEW_MISMATCHINGCLEARVALUE},
		RequiredFormatSupport: map[dxgi.FORMAT]FORMAT_SUPPORT1{
			dxgi.FORMAT_R8G8B8A8_UNORM: FORMAT_SUPPORT1_TEXTURE2D | FORMAT_SUPPORT1_RENDER_TARGET,
			dxgi.FORMAT_D32_FLOAT:      FORMAT_SUPPORT1_DEPTH_STENCIL,
		},
	}

	data, err := c.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		MinimumFeatureLevel   string
		EnableDebugLayer      bool
		BreakOnSeverity       []string
		DenyMessageIDs        []uint32
		RequiredFormatSupport map[string]string
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON %s: %v", data, err)
	}
	if decoded.MinimumFeatureLevel != "12_1" || !decoded.EnableDebugLayer {
		t.Errorf("decoded = %+v", decoded)
	}
	if strings.Join(decoded.BreakOnSeverity, ",") != "ERROR,CORRUPTION" {
		t.Errorf("BreakOnSeverity = %v", decoded.BreakOnSeverity)
	}
	if len(decoded.DenyMessageIDs) != 1 || decoded.DenyMessageIDs[0] != 820 {
		t.Errorf("DenyMessageIDs = %v", decoded.DenyMessageIDs)
	}
	if len(decoded.RequiredFormatSupport) != 2 {
		t.Errorf("RequiredFormatSupport = %v", decoded.RequiredFormatSupport)
	}

	empty, err := (&Config{}).MarshalJSON()
	if err != nil || !json.Valid(empty) {
		t.Errorf("empty config JSON %s: %v", empty, err)
	}
}
