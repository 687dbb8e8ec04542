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

import "math"

const SDK_VERSION = 4

const (
	APPEND_ALIGNED_ELEMENT                    = 0xffffffff
	DEFAULT_BLEND_FACTOR_ALPHA                = 1.0
	DEFAULT_DEPTH_BIAS                        = 0
	DEFAULT_DEPTH_BIAS_CLAMP                  = 0.0
	DEFAULT_SLOPE_SCALED_DEPTH_BIAS           = 0.0
	DEFAULT_MAX_ANISOTROPY                    = 16
	DEFAULT_SAMPLE_MASK                       = 0xffffffff
	DEFAULT_STENCIL_READ_MASK                 = 0xff
	DEFAULT_STENCIL_WRITE_MASK                = 0xff
	DEFAULT_STENCIL_REFERENCE                 = 0
	DEFAULT_VIEWPORT_AND_SCISSORRECT_INDEX    = 0
	DEFAULT_RESOURCE_PLACEMENT_ALIGNMENT      = 65536
	DEFAULT_MSAA_RESOURCE_PLACEMENT_ALIGNMENT = 4194304
	SMALL_RESOURCE_PLACEMENT_ALIGNMENT        = 4096
	SMALL_MSAA_RESOURCE_PLACEMENT_ALIGNMENT   = 65536

	TEXTURE_DATA_PITCH_ALIGNMENT             = 256
	TEXTURE_DATA_PLACEMENT_ALIGNMENT         = 512
	CONSTANT_BUFFER_DATA_PLACEMENT_ALIGNMENT = 256
	RAW_UAV_SRV_BYTE_ALIGNMENT               = 16
	UAV_COUNTER_PLACEMENT_ALIGNMENT          = 4096

	REQ_MIP_LEVELS                                   = 15
	REQ_TEXTURE1D_U_DIMENSION                        = 16384
	REQ_TEXTURE1D_ARRAY_AXIS_DIMENSION               = 2048
	REQ_TEXTURE2D_U_OR_V_DIMENSION                   = 16384
	REQ_TEXTURE2D_ARRAY_AXIS_DIMENSION               = 2048
	REQ_TEXTURE3D_U_V_OR_W_DIMENSION                 = 2048
	REQ_TEXTURECUBE_DIMENSION                        = 16384
	REQ_SUBRESOURCES                                 = 30720
	REQ_CONSTANT_BUFFER_ELEMENT_COUNT                = 4096
	REQ_MAXANISOTROPY                                = 16
	REQ_RESOURCE_SIZE_IN_MEGABYTES_EXPRESSION_A_TERM = 128
	REQ_IMMEDIATE_CONSTANT_BUFFER_ELEMENT_COUNT      = 4096

	SIMULTANEOUS_RENDER_TARGET_COUNT                   = 8
	VIEWPORT_AND_SCISSORRECT_OBJECT_COUNT_PER_PIPELINE = 16
	IA_VERTEX_INPUT_RESOURCE_SLOT_COUNT                = 32
	SO_BUFFER_SLOT_COUNT                               = 4
	SO_NO_RASTERIZED_STREAM                            = 0xffffffff
	MAX_ROOT_COST                                      = 64
	MAX_SHADER_VISIBLE_DESCRIPTOR_HEAP_SIZE_TIER_1     = 1000000
	MAX_SHADER_VISIBLE_DESCRIPTOR_HEAP_SIZE_TIER_2     = 1000000
	MAX_SHADER_VISIBLE_SAMPLER_HEAP_SIZE               = 2048
	DESCRIPTOR_RANGE_OFFSET_APPEND                     = 0xffffffff
	FLOAT32_MAX                                        = math.MaxFloat32
	MIP_LOD_BIAS_MAX                                   = 15.99
	MIP_LOD_BIAS_MIN                                   = -16.0
	MINOR_VERSION                                      = 0
	MAJOR_VERSION                                      = 12
	RESOURCE_BARRIER_ALL_SUBRESOURCES                  = 0xffffffff
	SHADER_IDENTIFIER_SIZE_IN_BYTES                    = 32
	STANDARD_MAXIMUM_ELEMENT_ALIGNMENT_BYTE_MULTIPLE   = 0xffffffff
)

const (
	SHADER_COMPONENT_MAPPING_MASK                                     = 0x7
	SHADER_COMPONENT_MAPPING_SHIFT                                    = 3
	SHADER_COMPONENT_MAPPING_ALWAYS_SET_BIT_AVOIDING_ZEROMEM_MISTAKES = 1 << (SHADER_COMPONENT_MAPPING_SHIFT * 4)
	DEFAULT_SHADER_4_COMPONENT_MAPPING                                = 0x1688
)

const (
	FILTER_REDUCTION_TYPE_MASK  = 0x3
	FILTER_REDUCTION_TYPE_SHIFT = 7
	FILTER_TYPE_MASK            = 0x3
	MIN_FILTER_SHIFT            = 4
	MAG_FILTER_SHIFT            = 2
	MIP_FILTER_SHIFT            = 0
	ANISOTROPIC_FILTERING_BIT   = 0x40
)
