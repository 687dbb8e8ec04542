//go:build amd64 || arm64
// +build amd64 arm64

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
	"reflect"
	"testing"

	"goarrg.com/rhi/dxr/internal/layout"
)

func TestStructSizes(t *testing.T) {
	tests := []struct {
		t    reflect.Type
		size uintptr
	}{
		{reflect.TypeFor[COMMAND_QUEUE_DESC](), 16},
		{reflect.TypeFor[INPUT_ELEMENT_DESC](), 32},
		{reflect.TypeFor[STREAM_OUTPUT_DESC](), 32},
		{reflect.TypeFor[VIEWPORT](), 24},
		{reflect.TypeFor[BOX](), 24},
		{reflect.TypeFor[DEPTH_STENCIL_DESC](), 52},
		{reflect.TypeFor[RENDER_TARGET_BLEND_DESC](), 40},
		{reflect.TypeFor[BLEND_DESC](), 328},
		{reflect.TypeFor[RASTERIZER_DESC](), 44},
		{reflect.TypeFor[GRAPHICS_PIPELINE_STATE_DESC](), 656},
		{reflect.TypeFor[COMPUTE_PIPELINE_STATE_DESC](), 56},
		{reflect.TypeFor[HEAP_PROPERTIES](), 20},
		{reflect.TypeFor[HEAP_DESC](), 48},
		{reflect.TypeFor[RESOURCE_DESC](), 56},
		{reflect.TypeFor[CLEAR_VALUE](), 20},
		{reflect.TypeFor[RESOURCE_BARRIER](), 32},
		{reflect.TypeFor[SUBRESOURCE_FOOTPRINT](), 20},
		{reflect.TypeFor[PLACED_SUBRESOURCE_FOOTPRINT](), 32},
		{reflect.TypeFor[TEXTURE_COPY_LOCATION](), 48},
		{reflect.TypeFor[SHADER_RESOURCE_VIEW_DESC](), 40},
		{reflect.TypeFor[UNORDERED_ACCESS_VIEW_DESC](), 40},
		{reflect.TypeFor[RENDER_TARGET_VIEW_DESC](), 24},
		{reflect.TypeFor[DEPTH_STENCIL_VIEW_DESC](), 24},
		{reflect.TypeFor[SAMPLER_DESC](), 52},
		{reflect.TypeFor[DESCRIPTOR_RANGE](), 20},
		{reflect.TypeFor[DESCRIPTOR_RANGE1](), 24},
		{reflect.TypeFor[ROOT_PARAMETER](), 32},
		{reflect.TypeFor[ROOT_PARAMETER1](), 32},
		{reflect.TypeFor[STATIC_SAMPLER_DESC](), 52},
		{reflect.TypeFor[ROOT_SIGNATURE_DESC](), 40},
		{reflect.TypeFor[VERSIONED_ROOT_SIGNATURE_DESC](), 48},
		{reflect.TypeFor[INDIRECT_ARGUMENT_DESC](), 16},
		{reflect.TypeFor[COMMAND_SIGNATURE_DESC](), 24},
		{reflect.TypeFor[SUBRESOURCE_DATA](), 24},
		{reflect.TypeFor[MEMCPY_DEST](), 24},
		{reflect.TypeFor[MESSAGE](), 32},
		{reflect.TypeFor[INFO_QUEUE_FILTER](), 96},
	}

	for _, test := range tests {
		if got := test.t.Size(); got != test.size {
			t.Errorf("%s is %d bytes, want %d", test.t.Name(), got, test.size)
		}
	}
}

func TestFieldOffsets(t *testing.T) {
	tests := []struct {
		s      layout.Struct
		path   string
		offset uintptr
	}{
		{layout.Of[RESOURCE_DESC](), "Alignment", 8},
		{layout.Of[RESOURCE_DESC](), "Format", 32},
		{layout.Of[RESOURCE_DESC](), "Flags", 48},
		{layout.Of[TEXTURE_COPY_LOCATION](), "union", 16},
		{layout.Of[ROOT_PARAMETER](), "ShaderVisibility", 24},
		{layout.Of[GRAPHICS_PIPELINE_STATE_DESC](), "StreamOutput.PSODeclaration", 88},
		{layout.Of[GRAPHICS_PIPELINE_STATE_DESC](), "BlendState.RenderTarget[7].RenderTargetWriteMask", 120 + 8 + 7*40 + 36},
		{layout.Of[GRAPHICS_PIPELINE_STATE_DESC](), "RasterizerState.FillMode", 452},
		{layout.Of[GRAPHICS_PIPELINE_STATE_DESC](), "InputLayout.PInputElementDescs", 552},
		{layout.Of[GRAPHICS_PIPELINE_STATE_DESC](), "RTVFormats", 580},
		{layout.Of[GRAPHICS_PIPELINE_STATE_DESC](), "CachedPSO.PCachedBlob", 632},
		{layout.Of[GRAPHICS_PIPELINE_STATE_DESC](), "Flags", 648},
		{layout.Of[MESSAGE](), "PDescription", 16},
	}

	for _, test := range tests {
		f, ok := test.s.Field(test.path)
		if !ok {
			t.Errorf("%s has no field %s", test.s.Name, test.path)
			continue
		}
		if f.Offset != test.offset {
			t.Errorf("%s.%s is at offset %d, want %d", test.s.Name, test.path, f.Offset, test.offset)
		}
	}
}
