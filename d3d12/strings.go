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
	"fmt"
	"strings"

	"goarrg.com/debug"
)

func (c MESSAGE_CATEGORY) String() string {
	switch c {
	case MESSAGE_CATEGORY_APPLICATION_DEFINED:
		return "APPLICATION_DEFINED"
	case MESSAGE_CATEGORY_MISCELLANEOUS:
		return "MISCELLANEOUS"
	case MESSAGE_CATEGORY_INITIALIZATION:
		return "INITIALIZATION"
	case MESSAGE_CATEGORY_CLEANUP:
		return "CLEANUP"
	case MESSAGE_CATEGORY_COMPILATION:
		return "COMPILATION"
	case MESSAGE_CATEGORY_STATE_CREATION:
		return "STATE_CREATION"
	case MESSAGE_CATEGORY_STATE_SETTING:
		return "STATE_SETTING"
	case MESSAGE_CATEGORY_STATE_GETTING:
		return "STATE_GETTING"
	case MESSAGE_CATEGORY_RESOURCE_MANIPULATION:
		return "RESOURCE_MANIPULATION"
	case MESSAGE_CATEGORY_EXECUTION:
		return "EXECUTION"
	case MESSAGE_CATEGORY_SHADER:
		return "SHADER"
	}
	return fmt.Sprintf("CATEGORY_%d", uint32(c))
}

var messageSeverityNames = [...]string{
	MESSAGE_SEVERITY_CORRUPTION: "CORRUPTION",
	MESSAGE_SEVERITY_ERROR:      "ERROR",
	MESSAGE_SEVERITY_WARNING:    "WARNING",
	MESSAGE_SEVERITY_INFO:       "INFO",
	MESSAGE_SEVERITY_MESSAGE:    "MESSAGE",
}

func (s MESSAGE_SEVERITY) String() string {
	if int(s) < len(messageSeverityNames) {
		return messageSeverityNames[s]
	}
	return fmt.Sprintf("SEVERITY_%d", uint32(s))
}

func (s MESSAGE_SEVERITY) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *MESSAGE_SEVERITY) UnmarshalText(data []byte) error {
	text := strings.ToUpper(strings.TrimPrefix(string(data), "MESSAGE_SEVERITY_"))
	for i, name := range messageSeverityNames {
		if name == text {
			*s = MESSAGE_SEVERITY(i)
			return nil
		}
	}
	return debug.Errorf("Unknown message severity: %q", string(data))
}

func (id MESSAGE_ID) String() string {
	switch id {
	case MESSAGE_ID_UNKNOWN:
		return "UNKNOWN"
	case MESSAGE_ID_CLEARRENDERTARGETVIEW_MISMATCHINGCLEARVALUE:
		return "CLEARRENDERTARGETVIEW_MISMATCHINGCLEARVALUE"
	case MESSAGE_ID_CLEARDEPTHSTENCILVIEW_MISMATCHINGCLEARVALUE:
		return "CLEARDEPTHSTENCILVIEW_MISMATCHINGCLEARVALUE"
	}
	return fmt.Sprintf("%d", uint32(id))
}

var featureLevels = []FEATURE_LEVEL{
	FEATURE_LEVEL_1_0_CORE,
	FEATURE_LEVEL_9_1, FEATURE_LEVEL_9_2, FEATURE_LEVEL_9_3,
	FEATURE_LEVEL_10_0, FEATURE_LEVEL_10_1,
	FEATURE_LEVEL_11_0, FEATURE_LEVEL_11_1,
	FEATURE_LEVEL_12_0, FEATURE_LEVEL_12_1, FEATURE_LEVEL_12_2,
}

// String renders the level as "major_minor", e.g. "12_1".
func (l FEATURE_LEVEL) String() string {
	return fmt.Sprintf("%d_%d", uint32(l)>>12, (uint32(l)>>8)&0xF)
}

func (l FEATURE_LEVEL) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText accepts "12_1", "12.1" or "FEATURE_LEVEL_12_1".
func (l *FEATURE_LEVEL) UnmarshalText(data []byte) error {
	text := strings.TrimPrefix(strings.ToUpper(string(data)), "FEATURE_LEVEL_")
	text = strings.ReplaceAll(text, ".", "_")
	for _, level := range featureLevels {
		if level.String() == text {
			*l = level
			return nil
		}
	}
	return debug.Errorf("Unknown feature level: %q", string(data))
}

func (m SHADER_MODEL) String() string {
	return fmt.Sprintf("%d.%d", uint32(m)>>4, uint32(m)&0xF)
}

func (v ROOT_SIGNATURE_VERSION) String() string {
	switch v {
	case ROOT_SIGNATURE_VERSION_1_0:
		return "1.0"
	case ROOT_SIGNATURE_VERSION_1_1:
		return "1.1"
	}
	return fmt.Sprintf("Unknown: 0x%X", uint32(v))
}

func (t COMMAND_LIST_TYPE) String() string {
	switch t {
	case COMMAND_LIST_TYPE_DIRECT:
		return "Direct"
	case COMMAND_LIST_TYPE_BUNDLE:
		return "Bundle"
	case COMMAND_LIST_TYPE_COMPUTE:
		return "Compute"
	case COMMAND_LIST_TYPE_COPY:
		return "Copy"
	case COMMAND_LIST_TYPE_VIDEO_DECODE:
		return "VideoDecode"
	case COMMAND_LIST_TYPE_VIDEO_PROCESS:
		return "VideoProcess"
	case COMMAND_LIST_TYPE_VIDEO_ENCODE:
		return "VideoEncode"
	}
	return fmt.Sprintf("Unknown: %d", uint32(t))
}

func (t HEAP_TYPE) String() string {
	switch t {
	case HEAP_TYPE_DEFAULT:
		return "Default"
	case HEAP_TYPE_UPLOAD:
		return "Upload"
	case HEAP_TYPE_READBACK:
		return "Readback"
	case HEAP_TYPE_CUSTOM:
		return "Custom"
	}
	return fmt.Sprintf("Unknown: %d", uint32(t))
}

func (t RESOURCE_BINDING_TIER) String() string {
	return fmt.Sprintf("Tier%d", uint32(t))
}

func (t RESOURCE_HEAP_TIER) String() string {
	return fmt.Sprintf("Tier%d", uint32(t))
}

func (t TILED_RESOURCES_TIER) String() string {
	if t == TILED_RESOURCES_TIER_NOT_SUPPORTED {
		return "NotSupported"
	}
	return fmt.Sprintf("Tier%d", uint32(t))
}

func (t CONSERVATIVE_RASTERIZATION_TIER) String() string {
	if t == CONSERVATIVE_RASTERIZATION_TIER_NOT_SUPPORTED {
		return "NotSupported"
	}
	return fmt.Sprintf("Tier%d", uint32(t))
}

func (s RESOURCE_STATES) HasBits(want RESOURCE_STATES) bool {
	return hasBits(s, want)
}

func (s RESOURCE_STATES) String() string {
	if s == RESOURCE_STATE_COMMON {
		return "Common"
	}
	if s == RESOURCE_STATE_GENERIC_READ {
		return "GenericRead"
	}
	str := ""
	if s.HasBits(RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER) {
		str += "VertexAndConstantBuffer|"
	}
	if s.HasBits(RESOURCE_STATE_INDEX_BUFFER) {
		str += "IndexBuffer|"
	}
	if s.HasBits(RESOURCE_STATE_RENDER_TARGET) {
		str += "RenderTarget|"
	}
	if s.HasBits(RESOURCE_STATE_UNORDERED_ACCESS) {
		str += "UnorderedAccess|"
	}
	if s.HasBits(RESOURCE_STATE_DEPTH_WRITE) {
		str += "DepthWrite|"
	}
	if s.HasBits(RESOURCE_STATE_DEPTH_READ) {
		str += "DepthRead|"
	}
	if s.HasBits(RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE) {
		str += "NonPixelShaderResource|"
	}
	if s.HasBits(RESOURCE_STATE_PIXEL_SHADER_RESOURCE) {
		str += "PixelShaderResource|"
	}
	if s.HasBits(RESOURCE_STATE_STREAM_OUT) {
		str += "StreamOut|"
	}
	if s.HasBits(RESOURCE_STATE_INDIRECT_ARGUMENT) {
		str += "IndirectArgument|"
	}
	if s.HasBits(RESOURCE_STATE_COPY_DEST) {
		str += "CopyDest|"
	}
	if s.HasBits(RESOURCE_STATE_COPY_SOURCE) {
		str += "CopySource|"
	}
	if s.HasBits(RESOURCE_STATE_RESOLVE_DEST) {
		str += "ResolveDest|"
	}
	if s.HasBits(RESOURCE_STATE_RESOLVE_SOURCE) {
		str += "ResolveSource|"
	}
	if s.HasBits(RESOURCE_STATE_RAYTRACING_ACCELERATION_STRUCTURE) {
		str += "RaytracingAccelerationStructure|"
	}
	if s.HasBits(RESOURCE_STATE_SHADING_RATE_SOURCE) {
		str += "ShadingRateSource|"
	}
	return strings.TrimSuffix(str, "|")
}

func (f RESOURCE_FLAGS) HasBits(want RESOURCE_FLAGS) bool {
	return hasBits(f, want)
}

func (f HEAP_FLAGS) HasBits(want HEAP_FLAGS) bool {
	return hasBits(f, want)
}

func (f FORMAT_SUPPORT1) HasBits(want FORMAT_SUPPORT1) bool {
	return hasBits(f, want)
}

func (f FORMAT_SUPPORT1) String() string {
	str := ""
	if f.HasBits(FORMAT_SUPPORT1_BUFFER) {
		str += "Buffer|"
	}
	if f.HasBits(FORMAT_SUPPORT1_IA_VERTEX_BUFFER) {
		str += "VertexBuffer|"
	}
	if f.HasBits(FORMAT_SUPPORT1_IA_INDEX_BUFFER) {
		str += "IndexBuffer|"
	}
	if f.HasBits(FORMAT_SUPPORT1_TEXTURE1D) {
		str += "Texture1D|"
	}
	if f.HasBits(FORMAT_SUPPORT1_TEXTURE2D) {
		str += "Texture2D|"
	}
	if f.HasBits(FORMAT_SUPPORT1_TEXTURE3D) {
		str += "Texture3D|"
	}
	if f.HasBits(FORMAT_SUPPORT1_TEXTURECUBE) {
		str += "TextureCube|"
	}
	if f.HasBits(FORMAT_SUPPORT1_SHADER_LOAD) {
		str += "ShaderLoad|"
	}
	if f.HasBits(FORMAT_SUPPORT1_SHADER_SAMPLE) {
		str += "ShaderSample|"
	}
	if f.HasBits(FORMAT_SUPPORT1_MIP) {
		str += "Mip|"
	}
	if f.HasBits(FORMAT_SUPPORT1_RENDER_TARGET) {
		str += "RenderTarget|"
	}
	if f.HasBits(FORMAT_SUPPORT1_BLENDABLE) {
		str += "Blendable|"
	}
	if f.HasBits(FORMAT_SUPPORT1_DEPTH_STENCIL) {
		str += "DepthStencil|"
	}
	if f.HasBits(FORMAT_SUPPORT1_MULTISAMPLE_RESOLVE) {
		str += "MultisampleResolve|"
	}
	if f.HasBits(FORMAT_SUPPORT1_DISPLAY) {
		str += "Display|"
	}
	if f.HasBits(FORMAT_SUPPORT1_MULTISAMPLE_RENDERTARGET) {
		str += "MultisampleRenderTarget|"
	}
	if f.HasBits(FORMAT_SUPPORT1_TYPED_UNORDERED_ACCESS_VIEW) {
		str += "TypedUnorderedAccessView|"
	}
	return strings.TrimSuffix(str, "|")
}

func (f FORMAT_SUPPORT2) HasBits(want FORMAT_SUPPORT2) bool {
	return hasBits(f, want)
}

func (f ROOT_SIGNATURE_FLAGS) HasBits(want ROOT_SIGNATURE_FLAGS) bool {
	return hasBits(f, want)
}

func (f DESCRIPTOR_HEAP_FLAGS) HasBits(want DESCRIPTOR_HEAP_FLAGS) bool {
	return hasBits(f, want)
}

func (f COLOR_WRITE_ENABLE) HasBits(want COLOR_WRITE_ENABLE) bool {
	return hasBits(f, want)
}
