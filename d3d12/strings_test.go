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

import "testing"

func TestFeatureLevelText(t *testing.T) {
	for _, tc := range []struct {
		text string
		want FEATURE_LEVEL
	}{
		{"11_0", FEATURE_LEVEL_11_0},
		{"12.1", FEATURE_LEVEL_12_1},
		{"FEATURE_LEVEL_12_2", FEATURE_LEVEL_12_2},
		{"feature_level_9_3", FEATURE_LEVEL_9_3},
		{"1_0", FEATURE_LEVEL_1_0_CORE},
	} {
		var l FEATURE_LEVEL
		if err := l.UnmarshalText([]byte(tc.text)); err != nil {
			t.Errorf("UnmarshalText(%q): %v", tc.text, err)
			continue
		}
		if l != tc.want {
			t.Errorf("UnmarshalText(%q) = 0x%X, want 0x%X", tc.text, uint32(l), uint32(tc.want))
		}
	}

	var l FEATURE_LEVEL
	if err := l.UnmarshalText([]byte("13_0")); err == nil {
		t.Error("13_0 accepted")
	}
	if FEATURE_LEVEL_12_1.String() != "12_1" || FEATURE_LEVEL_10_0.String() != "10_0" {
		t.Errorf("String() = %q, %q", FEATURE_LEVEL_12_1, FEATURE_LEVEL_10_0)
	}
}

func TestMessageSeverityText(t *testing.T) {
	var s MESSAGE_SEVERITY
	if err := s.UnmarshalText([]byte("warning")); err != nil || s != MESSAGE_SEVERITY_WARNING {
		t.Errorf("UnmarshalText(warning) = %d, %v", s, err)
	}
	if err := s.UnmarshalText([]byte("MESSAGE_SEVERITY_CORRUPTION")); err != nil || s != MESSAGE_SEVERITY_CORRUPTION {
		t.Errorf("UnmarshalText(MESSAGE_SEVERITY_CORRUPTION) = %d, %v", s, err)
	}
	if err := s.UnmarshalText([]byte("fatal")); err == nil {
		t.Error("fatal accepted")
	}
	if text, _ := MESSAGE_SEVERITY_INFO.MarshalText(); string(text) != "INFO" {
		t.Errorf("MarshalText() = %q", text)
	}
	if MESSAGE_SEVERITY(9).String() != "SEVERITY_9" {
		t.Errorf("unknown severity String() = %q", MESSAGE_SEVERITY(9))
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{SHADER_MODEL_6_5.String(), "6.5"},
		{SHADER_MODEL_5_1.String(), "5.1"},
		{ROOT_SIGNATURE_VERSION_1_1.String(), "1.1"},
		{COMMAND_LIST_TYPE_COMPUTE.String(), "Compute"},
		{HEAP_TYPE_READBACK.String(), "Readback"},
		{RESOURCE_BINDING_TIER_3.String(), "Tier3"},
		{TILED_RESOURCES_TIER_NOT_SUPPORTED.String(), "NotSupported"},
		{MESSAGE_CATEGORY_STATE_CREATION.String(), "STATE_CREATION"},
		{MESSAGE_ID_CLEARRENDERTARGETVIEW_MISMATCHINGCLEARVALUE.String(), "CLEARRENDERTARGETVIEW_MISMATCHINGCLEARVALUE"},
		{MESSAGE_ID(1234).String(), "1234"},
		{RESOURCE_STATE_COMMON.String(), "Common"},
		{RESOURCE_STATE_GENERIC_READ.String(), "GenericRead"},
		{(RESOURCE_STATE_COPY_DEST | RESOURCE_STATE_RENDER_TARGET).String(), "RenderTarget|CopyDest"},
		{(FORMAT_SUPPORT1_TEXTURE2D | FORMAT_SUPPORT1_RENDER_TARGET).String(), "Texture2D|RenderTarget"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}

func TestHasBits(t *testing.T) {
	s := RESOURCE_STATE_GENERIC_READ
	if !s.HasBits(RESOURCE_STATE_COPY_SOURCE | RESOURCE_STATE_INDEX_BUFFER) {
		t.Error("GENERIC_READ lacks COPY_SOURCE|INDEX_BUFFER")
	}
	if s.HasBits(RESOURCE_STATE_COPY_DEST) {
		t.Error("GENERIC_READ has COPY_DEST")
	}
	if !RESOURCE_FLAG_NONE.HasBits(RESOURCE_FLAG_NONE) {
		t.Error("empty mask not satisfied")
	}
}
