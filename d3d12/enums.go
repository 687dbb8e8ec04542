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

type COMMAND_LIST_TYPE uint32

const (
	COMMAND_LIST_TYPE_DIRECT        COMMAND_LIST_TYPE = 0
	COMMAND_LIST_TYPE_BUNDLE        COMMAND_LIST_TYPE = 1
	COMMAND_LIST_TYPE_COMPUTE       COMMAND_LIST_TYPE = 2
	COMMAND_LIST_TYPE_COPY          COMMAND_LIST_TYPE = 3
	COMMAND_LIST_TYPE_VIDEO_DECODE  COMMAND_LIST_TYPE = 4
	COMMAND_LIST_TYPE_VIDEO_PROCESS COMMAND_LIST_TYPE = 5
	COMMAND_LIST_TYPE_VIDEO_ENCODE  COMMAND_LIST_TYPE = 6
)

type COMMAND_QUEUE_FLAGS uint32

const (
	COMMAND_QUEUE_FLAG_NONE                COMMAND_QUEUE_FLAGS = 0
	COMMAND_QUEUE_FLAG_DISABLE_GPU_TIMEOUT COMMAND_QUEUE_FLAGS = 0x1
)

type COMMAND_QUEUE_PRIORITY int32

const (
	COMMAND_QUEUE_PRIORITY_NORMAL          COMMAND_QUEUE_PRIORITY = 0
	COMMAND_QUEUE_PRIORITY_HIGH            COMMAND_QUEUE_PRIORITY = 100
	COMMAND_QUEUE_PRIORITY_GLOBAL_REALTIME COMMAND_QUEUE_PRIORITY = 10000
)

type COMMAND_LIST_FLAGS uint32

const (
	COMMAND_LIST_FLAG_NONE COMMAND_LIST_FLAGS = 0
)

type COMMAND_POOL_FLAGS uint32

const (
	COMMAND_POOL_FLAG_NONE COMMAND_POOL_FLAGS = 0
)

type PRIMITIVE_TOPOLOGY_TYPE uint32

const (
	PRIMITIVE_TOPOLOGY_TYPE_UNDEFINED PRIMITIVE_TOPOLOGY_TYPE = 0
	PRIMITIVE_TOPOLOGY_TYPE_POINT     PRIMITIVE_TOPOLOGY_TYPE = 1
	PRIMITIVE_TOPOLOGY_TYPE_LINE      PRIMITIVE_TOPOLOGY_TYPE = 2
	PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE  PRIMITIVE_TOPOLOGY_TYPE = 3
	PRIMITIVE_TOPOLOGY_TYPE_PATCH     PRIMITIVE_TOPOLOGY_TYPE = 4
)

// PRIMITIVE_TOPOLOGY mirrors D3D_PRIMITIVE_TOPOLOGY, shared with D3D11.
type PRIMITIVE_TOPOLOGY uint32

const (
	PRIMITIVE_TOPOLOGY_UNDEFINED                  PRIMITIVE_TOPOLOGY = 0
	PRIMITIVE_TOPOLOGY_POINTLIST                  PRIMITIVE_TOPOLOGY = 1
	PRIMITIVE_TOPOLOGY_LINELIST                   PRIMITIVE_TOPOLOGY = 2
	PRIMITIVE_TOPOLOGY_LINESTRIP                  PRIMITIVE_TOPOLOGY = 3
	PRIMITIVE_TOPOLOGY_TRIANGLELIST               PRIMITIVE_TOPOLOGY = 4
	PRIMITIVE_TOPOLOGY_TRIANGLESTRIP              PRIMITIVE_TOPOLOGY = 5
	PRIMITIVE_TOPOLOGY_LINELIST_ADJ               PRIMITIVE_TOPOLOGY = 10
	PRIMITIVE_TOPOLOGY_LINESTRIP_ADJ              PRIMITIVE_TOPOLOGY = 11
	PRIMITIVE_TOPOLOGY_TRIANGLELIST_ADJ           PRIMITIVE_TOPOLOGY = 12
	PRIMITIVE_TOPOLOGY_TRIANGLESTRIP_ADJ          PRIMITIVE_TOPOLOGY = 13
	PRIMITIVE_TOPOLOGY_1_CONTROL_POINT_PATCHLIST  PRIMITIVE_TOPOLOGY = 33
	PRIMITIVE_TOPOLOGY_2_CONTROL_POINT_PATCHLIST  PRIMITIVE_TOPOLOGY = 34
	PRIMITIVE_TOPOLOGY_3_CONTROL_POINT_PATCHLIST  PRIMITIVE_TOPOLOGY = 35
	PRIMITIVE_TOPOLOGY_4_CONTROL_POINT_PATCHLIST  PRIMITIVE_TOPOLOGY = 36
	PRIMITIVE_TOPOLOGY_32_CONTROL_POINT_PATCHLIST PRIMITIVE_TOPOLOGY = 64
)

type INPUT_CLASSIFICATION uint32

const (
	INPUT_CLASSIFICATION_PER_VERTEX_DATA   INPUT_CLASSIFICATION = 0
	INPUT_CLASSIFICATION_PER_INSTANCE_DATA INPUT_CLASSIFICATION = 1
)

type FILL_MODE uint32

const (
	FILL_MODE_WIREFRAME FILL_MODE = 2
	FILL_MODE_SOLID     FILL_MODE = 3
)

type CULL_MODE uint32

const (
	CULL_MODE_NONE  CULL_MODE = 1
	CULL_MODE_FRONT CULL_MODE = 2
	CULL_MODE_BACK  CULL_MODE = 3
)

type COMPARISON_FUNC uint32

const (
	COMPARISON_FUNC_NONE          COMPARISON_FUNC = 0
	COMPARISON_FUNC_NEVER         COMPARISON_FUNC = 1
	COMPARISON_FUNC_LESS          COMPARISON_FUNC = 2
	COMPARISON_FUNC_EQUAL         COMPARISON_FUNC = 3
	COMPARISON_FUNC_LESS_EQUAL    COMPARISON_FUNC = 4
	COMPARISON_FUNC_GREATER       COMPARISON_FUNC = 5
	COMPARISON_FUNC_NOT_EQUAL     COMPARISON_FUNC = 6
	COMPARISON_FUNC_GREATER_EQUAL COMPARISON_FUNC = 7
	COMPARISON_FUNC_ALWAYS        COMPARISON_FUNC = 8
)

type DEPTH_WRITE_MASK uint32

const (
	DEPTH_WRITE_MASK_ZERO DEPTH_WRITE_MASK = 0
	DEPTH_WRITE_MASK_ALL  DEPTH_WRITE_MASK = 1
)

type STENCIL_OP uint32

const (
	STENCIL_OP_KEEP     STENCIL_OP = 1
	STENCIL_OP_ZERO     STENCIL_OP = 2
	STENCIL_OP_REPLACE  STENCIL_OP = 3
	STENCIL_OP_INCR_SAT STENCIL_OP = 4
	STENCIL_OP_DECR_SAT STENCIL_OP = 5
	STENCIL_OP_INVERT   STENCIL_OP = 6
	STENCIL_OP_INCR     STENCIL_OP = 7
	STENCIL_OP_DECR     STENCIL_OP = 8
)

type BLEND uint32

const (
	BLEND_ZERO             BLEND = 1
	BLEND_ONE              BLEND = 2
	BLEND_SRC_COLOR        BLEND = 3
	BLEND_INV_SRC_COLOR    BLEND = 4
	BLEND_SRC_ALPHA        BLEND = 5
	BLEND_INV_SRC_ALPHA    BLEND = 6
	BLEND_DEST_ALPHA       BLEND = 7
	BLEND_INV_DEST_ALPHA   BLEND = 8
	BLEND_DEST_COLOR       BLEND = 9
	BLEND_INV_DEST_COLOR   BLEND = 10
	BLEND_SRC_ALPHA_SAT    BLEND = 11
	BLEND_BLEND_FACTOR     BLEND = 14
	BLEND_INV_BLEND_FACTOR BLEND = 15
	BLEND_SRC1_COLOR       BLEND = 16
	BLEND_INV_SRC1_COLOR   BLEND = 17
	BLEND_SRC1_ALPHA       BLEND = 18
	BLEND_INV_SRC1_ALPHA   BLEND = 19
	BLEND_ALPHA_FACTOR     BLEND = 20
	BLEND_INV_ALPHA_FACTOR BLEND = 21
)

type BLEND_OP uint32

const (
	BLEND_OP_ADD          BLEND_OP = 1
	BLEND_OP_SUBTRACT     BLEND_OP = 2
	BLEND_OP_REV_SUBTRACT BLEND_OP = 3
	BLEND_OP_MIN          BLEND_OP = 4
	BLEND_OP_MAX          BLEND_OP = 5
)

type COLOR_WRITE_ENABLE uint32

const (
	COLOR_WRITE_ENABLE_RED   COLOR_WRITE_ENABLE = 1
	COLOR_WRITE_ENABLE_GREEN COLOR_WRITE_ENABLE = 2
	COLOR_WRITE_ENABLE_BLUE  COLOR_WRITE_ENABLE = 4
	COLOR_WRITE_ENABLE_ALPHA COLOR_WRITE_ENABLE = 8
	COLOR_WRITE_ENABLE_ALL   COLOR_WRITE_ENABLE = COLOR_WRITE_ENABLE_RED | COLOR_WRITE_ENABLE_GREEN | COLOR_WRITE_ENABLE_BLUE | COLOR_WRITE_ENABLE_ALPHA
)

type LOGIC_OP uint32

const (
	LOGIC_OP_CLEAR         LOGIC_OP = 0
	LOGIC_OP_SET           LOGIC_OP = 1
	LOGIC_OP_COPY          LOGIC_OP = 2
	LOGIC_OP_COPY_INVERTED LOGIC_OP = 3
	LOGIC_OP_NOOP          LOGIC_OP = 4
	LOGIC_OP_INVERT        LOGIC_OP = 5
	LOGIC_OP_AND           LOGIC_OP = 6
	LOGIC_OP_NAND          LOGIC_OP = 7
	LOGIC_OP_OR            LOGIC_OP = 8
	LOGIC_OP_NOR           LOGIC_OP = 9
	LOGIC_OP_XOR           LOGIC_OP = 10
	LOGIC_OP_EQUIV         LOGIC_OP = 11
	LOGIC_OP_AND_REVERSE   LOGIC_OP = 12
	LOGIC_OP_AND_INVERTED  LOGIC_OP = 13
	LOGIC_OP_OR_REVERSE    LOGIC_OP = 14
	LOGIC_OP_OR_INVERTED   LOGIC_OP = 15
)

type CONSERVATIVE_RASTERIZATION_MODE uint32

const (
	CONSERVATIVE_RASTERIZATION_MODE_OFF CONSERVATIVE_RASTERIZATION_MODE = 0
	CONSERVATIVE_RASTERIZATION_MODE_ON  CONSERVATIVE_RASTERIZATION_MODE = 1
)

type INDEX_BUFFER_STRIP_CUT_VALUE uint32

const (
	INDEX_BUFFER_STRIP_CUT_VALUE_DISABLED   INDEX_BUFFER_STRIP_CUT_VALUE = 0
	INDEX_BUFFER_STRIP_CUT_VALUE_0xFFFF     INDEX_BUFFER_STRIP_CUT_VALUE = 1
	INDEX_BUFFER_STRIP_CUT_VALUE_0xFFFFFFFF INDEX_BUFFER_STRIP_CUT_VALUE = 2
)

type PIPELINE_STATE_FLAGS uint32

const (
	PIPELINE_STATE_FLAG_NONE                           PIPELINE_STATE_FLAGS = 0
	PIPELINE_STATE_FLAG_TOOL_DEBUG                     PIPELINE_STATE_FLAGS = 0x1
	PIPELINE_STATE_FLAG_DYNAMIC_DEPTH_BIAS             PIPELINE_STATE_FLAGS = 0x4
	PIPELINE_STATE_FLAG_DYNAMIC_INDEX_BUFFER_STRIP_CUT PIPELINE_STATE_FLAGS = 0x8
)

type FEATURE uint32

const (
	FEATURE_D3D12_OPTIONS                      FEATURE = 0
	FEATURE_ARCHITECTURE                       FEATURE = 1
	FEATURE_FEATURE_LEVELS                     FEATURE = 2
	FEATURE_FORMAT_SUPPORT                     FEATURE = 3
	FEATURE_MULTISAMPLE_QUALITY_LEVELS         FEATURE = 4
	FEATURE_FORMAT_INFO                        FEATURE = 5
	FEATURE_GPU_VIRTUAL_ADDRESS_SUPPORT        FEATURE = 6
	FEATURE_SHADER_MODEL                       FEATURE = 7
	FEATURE_D3D12_OPTIONS1                     FEATURE = 8
	FEATURE_PROTECTED_RESOURCE_SESSION_SUPPORT FEATURE = 10
	FEATURE_ROOT_SIGNATURE                     FEATURE = 12
	FEATURE_ARCHITECTURE1                      FEATURE = 16
	FEATURE_D3D12_OPTIONS2                     FEATURE = 18
	FEATURE_SHADER_CACHE                       FEATURE = 19
	FEATURE_COMMAND_QUEUE_PRIORITY             FEATURE = 20
	FEATURE_D3D12_OPTIONS3                     FEATURE = 21
	FEATURE_EXISTING_HEAPS                     FEATURE = 22
	FEATURE_D3D12_OPTIONS4                     FEATURE = 23
	FEATURE_SERIALIZATION                      FEATURE = 24
	FEATURE_CROSS_NODE                         FEATURE = 25
	FEATURE_D3D12_OPTIONS5                     FEATURE = 27
	FEATURE_DISPLAYABLE                        FEATURE = 28
	FEATURE_D3D12_OPTIONS6                     FEATURE = 30
	FEATURE_QUERY_META_COMMAND                 FEATURE = 31
	FEATURE_D3D12_OPTIONS7                     FEATURE = 32
)

type SHADER_MIN_PRECISION_SUPPORT uint32

const (
	SHADER_MIN_PRECISION_SUPPORT_NONE   SHADER_MIN_PRECISION_SUPPORT = 0
	SHADER_MIN_PRECISION_SUPPORT_10_BIT SHADER_MIN_PRECISION_SUPPORT = 0x1
	SHADER_MIN_PRECISION_SUPPORT_16_BIT SHADER_MIN_PRECISION_SUPPORT = 0x2
)

type TILED_RESOURCES_TIER uint32

const (
	TILED_RESOURCES_TIER_NOT_SUPPORTED TILED_RESOURCES_TIER = 0
	TILED_RESOURCES_TIER_1             TILED_RESOURCES_TIER = 1
	TILED_RESOURCES_TIER_2             TILED_RESOURCES_TIER = 2
	TILED_RESOURCES_TIER_3             TILED_RESOURCES_TIER = 3
	TILED_RESOURCES_TIER_4             TILED_RESOURCES_TIER = 4
)

type RESOURCE_BINDING_TIER uint32

const (
	RESOURCE_BINDING_TIER_1 RESOURCE_BINDING_TIER = 1
	RESOURCE_BINDING_TIER_2 RESOURCE_BINDING_TIER = 2
	RESOURCE_BINDING_TIER_3 RESOURCE_BINDING_TIER = 3
)

type CONSERVATIVE_RASTERIZATION_TIER uint32

const (
	CONSERVATIVE_RASTERIZATION_TIER_NOT_SUPPORTED CONSERVATIVE_RASTERIZATION_TIER = 0
	CONSERVATIVE_RASTERIZATION_TIER_1             CONSERVATIVE_RASTERIZATION_TIER = 1
	CONSERVATIVE_RASTERIZATION_TIER_2             CONSERVATIVE_RASTERIZATION_TIER = 2
	CONSERVATIVE_RASTERIZATION_TIER_3             CONSERVATIVE_RASTERIZATION_TIER = 3
)

type FORMAT_SUPPORT1 uint32

const (
	FORMAT_SUPPORT1_NONE                        FORMAT_SUPPORT1 = 0
	FORMAT_SUPPORT1_BUFFER                      FORMAT_SUPPORT1 = 0x1
	FORMAT_SUPPORT1_IA_VERTEX_BUFFER            FORMAT_SUPPORT1 = 0x2
	FORMAT_SUPPORT1_IA_INDEX_BUFFER             FORMAT_SUPPORT1 = 0x4
	FORMAT_SUPPORT1_SO_BUFFER                   FORMAT_SUPPORT1 = 0x8
	FORMAT_SUPPORT1_TEXTURE1D                   FORMAT_SUPPORT1 = 0x10
	FORMAT_SUPPORT1_TEXTURE2D                   FORMAT_SUPPORT1 = 0x20
	FORMAT_SUPPORT1_TEXTURE3D                   FORMAT_SUPPORT1 = 0x40
	FORMAT_SUPPORT1_TEXTURECUBE                 FORMAT_SUPPORT1 = 0x80
	FORMAT_SUPPORT1_SHADER_LOAD                 FORMAT_SUPPORT1 = 0x100
	FORMAT_SUPPORT1_SHADER_SAMPLE               FORMAT_SUPPORT1 = 0x200
	FORMAT_SUPPORT1_SHADER_SAMPLE_COMPARISON    FORMAT_SUPPORT1 = 0x400
	FORMAT_SUPPORT1_SHADER_SAMPLE_MONO_TEXT     FORMAT_SUPPORT1 = 0x800
	FORMAT_SUPPORT1_MIP                         FORMAT_SUPPORT1 = 0x1000
	FORMAT_SUPPORT1_RENDER_TARGET               FORMAT_SUPPORT1 = 0x4000
	FORMAT_SUPPORT1_BLENDABLE                   FORMAT_SUPPORT1 = 0x8000
	FORMAT_SUPPORT1_DEPTH_STENCIL               FORMAT_SUPPORT1 = 0x10000
	FORMAT_SUPPORT1_MULTISAMPLE_RESOLVE         FORMAT_SUPPORT1 = 0x40000
	FORMAT_SUPPORT1_DISPLAY                     FORMAT_SUPPORT1 = 0x80000
	FORMAT_SUPPORT1_CAST_WITHIN_BIT_LAYOUT      FORMAT_SUPPORT1 = 0x100000
	FORMAT_SUPPORT1_MULTISAMPLE_RENDERTARGET    FORMAT_SUPPORT1 = 0x200000
	FORMAT_SUPPORT1_MULTISAMPLE_LOAD            FORMAT_SUPPORT1 = 0x400000
	FORMAT_SUPPORT1_SHADER_GATHER               FORMAT_SUPPORT1 = 0x800000
	FORMAT_SUPPORT1_BACK_BUFFER_CAST            FORMAT_SUPPORT1 = 0x1000000
	FORMAT_SUPPORT1_TYPED_UNORDERED_ACCESS_VIEW FORMAT_SUPPORT1 = 0x2000000
	FORMAT_SUPPORT1_SHADER_GATHER_COMPARISON    FORMAT_SUPPORT1 = 0x4000000
	FORMAT_SUPPORT1_DECODER_OUTPUT              FORMAT_SUPPORT1 = 0x8000000
	FORMAT_SUPPORT1_VIDEO_PROCESSOR_OUTPUT      FORMAT_SUPPORT1 = 0x10000000
	FORMAT_SUPPORT1_VIDEO_PROCESSOR_INPUT       FORMAT_SUPPORT1 = 0x20000000
	FORMAT_SUPPORT1_VIDEO_ENCODER               FORMAT_SUPPORT1 = 0x40000000
)

type FORMAT_SUPPORT2 uint32

const (
	FORMAT_SUPPORT2_NONE                                         FORMAT_SUPPORT2 = 0
	FORMAT_SUPPORT2_UAV_ATOMIC_ADD                               FORMAT_SUPPORT2 = 0x1
	FORMAT_SUPPORT2_UAV_ATOMIC_BITWISE_OPS                       FORMAT_SUPPORT2 = 0x2
	FORMAT_SUPPORT2_UAV_ATOMIC_COMPARE_STORE_OR_COMPARE_EXCHANGE FORMAT_SUPPORT2 = 0x4
	FORMAT_SUPPORT2_UAV_ATOMIC_EXCHANGE                          FORMAT_SUPPORT2 = 0x8
	FORMAT_SUPPORT2_UAV_ATOMIC_SIGNED_MIN_OR_MAX                 FORMAT_SUPPORT2 = 0x10
	FORMAT_SUPPORT2_UAV_ATOMIC_UNSIGNED_MIN_OR_MAX               FORMAT_SUPPORT2 = 0x20
	FORMAT_SUPPORT2_UAV_TYPED_LOAD                               FORMAT_SUPPORT2 = 0x40
	FORMAT_SUPPORT2_UAV_TYPED_STORE                              FORMAT_SUPPORT2 = 0x80
	FORMAT_SUPPORT2_OUTPUT_MERGER_LOGIC_OP                       FORMAT_SUPPORT2 = 0x100
	FORMAT_SUPPORT2_TILED                                        FORMAT_SUPPORT2 = 0x200
	FORMAT_SUPPORT2_MULTIPLANE_OVERLAY                           FORMAT_SUPPORT2 = 0x4000
	FORMAT_SUPPORT2_SAMPLER_FEEDBACK                             FORMAT_SUPPORT2 = 0x8000
)

type MULTISAMPLE_QUALITY_LEVEL_FLAGS uint32

const (
	MULTISAMPLE_QUALITY_LEVELS_FLAG_NONE           MULTISAMPLE_QUALITY_LEVEL_FLAGS = 0
	MULTISAMPLE_QUALITY_LEVELS_FLAG_TILED_RESOURCE MULTISAMPLE_QUALITY_LEVEL_FLAGS = 0x1
)

type CROSS_NODE_SHARING_TIER uint32

const (
	CROSS_NODE_SHARING_TIER_NOT_SUPPORTED CROSS_NODE_SHARING_TIER = 0
	CROSS_NODE_SHARING_TIER_1_EMULATED    CROSS_NODE_SHARING_TIER = 1
	CROSS_NODE_SHARING_TIER_1             CROSS_NODE_SHARING_TIER = 2
	CROSS_NODE_SHARING_TIER_2             CROSS_NODE_SHARING_TIER = 3
	CROSS_NODE_SHARING_TIER_3             CROSS_NODE_SHARING_TIER = 4
)

type RESOURCE_HEAP_TIER uint32

const (
	RESOURCE_HEAP_TIER_1 RESOURCE_HEAP_TIER = 1
	RESOURCE_HEAP_TIER_2 RESOURCE_HEAP_TIER = 2
)

type ROOT_SIGNATURE_VERSION uint32

const (
	ROOT_SIGNATURE_VERSION_1   ROOT_SIGNATURE_VERSION = 0x1
	ROOT_SIGNATURE_VERSION_1_0 ROOT_SIGNATURE_VERSION = 0x1
	ROOT_SIGNATURE_VERSION_1_1 ROOT_SIGNATURE_VERSION = 0x2
)

type SHADER_MODEL uint32

const (
	SHADER_MODEL_5_1 SHADER_MODEL = 0x51
	SHADER_MODEL_6_0 SHADER_MODEL = 0x60
	SHADER_MODEL_6_1 SHADER_MODEL = 0x61
	SHADER_MODEL_6_2 SHADER_MODEL = 0x62
	SHADER_MODEL_6_3 SHADER_MODEL = 0x63
	SHADER_MODEL_6_4 SHADER_MODEL = 0x64
	SHADER_MODEL_6_5 SHADER_MODEL = 0x65
	SHADER_MODEL_6_6 SHADER_MODEL = 0x66
	SHADER_MODEL_6_7 SHADER_MODEL = 0x67
)

// FEATURE_LEVEL mirrors D3D_FEATURE_LEVEL from d3dcommon.h.
type FEATURE_LEVEL uint32

const (
	FEATURE_LEVEL_1_0_CORE FEATURE_LEVEL = 0x1000
	FEATURE_LEVEL_9_1      FEATURE_LEVEL = 0x9100
	FEATURE_LEVEL_9_2      FEATURE_LEVEL = 0x9200
	FEATURE_LEVEL_9_3      FEATURE_LEVEL = 0x9300
	FEATURE_LEVEL_10_0     FEATURE_LEVEL = 0xa000
	FEATURE_LEVEL_10_1     FEATURE_LEVEL = 0xa100
	FEATURE_LEVEL_11_0     FEATURE_LEVEL = 0xb000
	FEATURE_LEVEL_11_1     FEATURE_LEVEL = 0xb100
	FEATURE_LEVEL_12_0     FEATURE_LEVEL = 0xc000
	FEATURE_LEVEL_12_1     FEATURE_LEVEL = 0xc100
	FEATURE_LEVEL_12_2     FEATURE_LEVEL = 0xc200
)

type HEAP_TYPE uint32

const (
	HEAP_TYPE_DEFAULT  HEAP_TYPE = 1
	HEAP_TYPE_UPLOAD   HEAP_TYPE = 2
	HEAP_TYPE_READBACK HEAP_TYPE = 3
	HEAP_TYPE_CUSTOM   HEAP_TYPE = 4
)

type CPU_PAGE_PROPERTY uint32

const (
	CPU_PAGE_PROPERTY_UNKNOWN       CPU_PAGE_PROPERTY = 0
	CPU_PAGE_PROPERTY_NOT_AVAILABLE CPU_PAGE_PROPERTY = 1
	CPU_PAGE_PROPERTY_WRITE_COMBINE CPU_PAGE_PROPERTY = 2
	CPU_PAGE_PROPERTY_WRITE_BACK    CPU_PAGE_PROPERTY = 3
)

type MEMORY_POOL uint32

const (
	MEMORY_POOL_UNKNOWN MEMORY_POOL = 0
	MEMORY_POOL_L0      MEMORY_POOL = 1
	MEMORY_POOL_L1      MEMORY_POOL = 2
)

type HEAP_FLAGS uint32

const (
	HEAP_FLAG_NONE                           HEAP_FLAGS = 0
	HEAP_FLAG_SHARED                         HEAP_FLAGS = 0x1
	HEAP_FLAG_DENY_BUFFERS                   HEAP_FLAGS = 0x4
	HEAP_FLAG_ALLOW_DISPLAY                  HEAP_FLAGS = 0x8
	HEAP_FLAG_SHARED_CROSS_ADAPTER           HEAP_FLAGS = 0x20
	HEAP_FLAG_DENY_RT_DS_TEXTURES            HEAP_FLAGS = 0x40
	HEAP_FLAG_DENY_NON_RT_DS_TEXTURES        HEAP_FLAGS = 0x80
	HEAP_FLAG_HARDWARE_PROTECTED             HEAP_FLAGS = 0x100
	HEAP_FLAG_ALLOW_WRITE_WATCH              HEAP_FLAGS = 0x200
	HEAP_FLAG_ALLOW_SHADER_ATOMICS           HEAP_FLAGS = 0x400
	HEAP_FLAG_CREATE_NOT_RESIDENT            HEAP_FLAGS = 0x800
	HEAP_FLAG_CREATE_NOT_ZEROED              HEAP_FLAGS = 0x1000
	HEAP_FLAG_ALLOW_ALL_BUFFERS_AND_TEXTURES HEAP_FLAGS = 0
	HEAP_FLAG_ALLOW_ONLY_BUFFERS             HEAP_FLAGS = 0xc0
	HEAP_FLAG_ALLOW_ONLY_NON_RT_DS_TEXTURES  HEAP_FLAGS = 0x44
	HEAP_FLAG_ALLOW_ONLY_RT_DS_TEXTURES      HEAP_FLAGS = 0x84
)

type RESOURCE_DIMENSION uint32

const (
	RESOURCE_DIMENSION_UNKNOWN   RESOURCE_DIMENSION = 0
	RESOURCE_DIMENSION_BUFFER    RESOURCE_DIMENSION = 1
	RESOURCE_DIMENSION_TEXTURE1D RESOURCE_DIMENSION = 2
	RESOURCE_DIMENSION_TEXTURE2D RESOURCE_DIMENSION = 3
	RESOURCE_DIMENSION_TEXTURE3D RESOURCE_DIMENSION = 4
)

type TEXTURE_LAYOUT uint32

const (
	TEXTURE_LAYOUT_UNKNOWN                TEXTURE_LAYOUT = 0
	TEXTURE_LAYOUT_ROW_MAJOR              TEXTURE_LAYOUT = 1
	TEXTURE_LAYOUT_64KB_UNDEFINED_SWIZZLE TEXTURE_LAYOUT = 2
	TEXTURE_LAYOUT_64KB_STANDARD_SWIZZLE  TEXTURE_LAYOUT = 3
)

type RESOURCE_FLAGS uint32

const (
	RESOURCE_FLAG_NONE                              RESOURCE_FLAGS = 0
	RESOURCE_FLAG_ALLOW_RENDER_TARGET               RESOURCE_FLAGS = 0x1
	RESOURCE_FLAG_ALLOW_DEPTH_STENCIL               RESOURCE_FLAGS = 0x2
	RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS            RESOURCE_FLAGS = 0x4
	RESOURCE_FLAG_DENY_SHADER_RESOURCE              RESOURCE_FLAGS = 0x8
	RESOURCE_FLAG_ALLOW_CROSS_ADAPTER               RESOURCE_FLAGS = 0x10
	RESOURCE_FLAG_ALLOW_SIMULTANEOUS_ACCESS         RESOURCE_FLAGS = 0x20
	RESOURCE_FLAG_VIDEO_DECODE_REFERENCE_ONLY       RESOURCE_FLAGS = 0x40
	RESOURCE_FLAG_VIDEO_ENCODE_REFERENCE_ONLY       RESOURCE_FLAGS = 0x80
	RESOURCE_FLAG_RAYTRACING_ACCELERATION_STRUCTURE RESOURCE_FLAGS = 0x100
)

type TILE_RANGE_FLAGS uint32

const (
	TILE_RANGE_FLAG_NONE              TILE_RANGE_FLAGS = 0
	TILE_RANGE_FLAG_NULL              TILE_RANGE_FLAGS = 1
	TILE_RANGE_FLAG_SKIP              TILE_RANGE_FLAGS = 2
	TILE_RANGE_FLAG_REUSE_SINGLE_TILE TILE_RANGE_FLAGS = 4
)

type TILE_MAPPING_FLAGS uint32

const (
	TILE_MAPPING_FLAG_NONE      TILE_MAPPING_FLAGS = 0
	TILE_MAPPING_FLAG_NO_HAZARD TILE_MAPPING_FLAGS = 0x1
)

type TILE_COPY_FLAGS uint32

const (
	TILE_COPY_FLAG_NONE                                     TILE_COPY_FLAGS = 0
	TILE_COPY_FLAG_NO_HAZARD                                TILE_COPY_FLAGS = 0x1
	TILE_COPY_FLAG_LINEAR_BUFFER_TO_SWIZZLED_TILED_RESOURCE TILE_COPY_FLAGS = 0x2
	TILE_COPY_FLAG_SWIZZLED_TILED_RESOURCE_TO_LINEAR_BUFFER TILE_COPY_FLAGS = 0x4
)

type RESOURCE_STATES uint32

const (
	RESOURCE_STATE_COMMON                            RESOURCE_STATES = 0
	RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER        RESOURCE_STATES = 0x1
	RESOURCE_STATE_INDEX_BUFFER                      RESOURCE_STATES = 0x2
	RESOURCE_STATE_RENDER_TARGET                     RESOURCE_STATES = 0x4
	RESOURCE_STATE_UNORDERED_ACCESS                  RESOURCE_STATES = 0x8
	RESOURCE_STATE_DEPTH_WRITE                       RESOURCE_STATES = 0x10
	RESOURCE_STATE_DEPTH_READ                        RESOURCE_STATES = 0x20
	RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE         RESOURCE_STATES = 0x40
	RESOURCE_STATE_PIXEL_SHADER_RESOURCE             RESOURCE_STATES = 0x80
	RESOURCE_STATE_STREAM_OUT                        RESOURCE_STATES = 0x100
	RESOURCE_STATE_INDIRECT_ARGUMENT                 RESOURCE_STATES = 0x200
	RESOURCE_STATE_COPY_DEST                         RESOURCE_STATES = 0x400
	RESOURCE_STATE_COPY_SOURCE                       RESOURCE_STATES = 0x800
	RESOURCE_STATE_RESOLVE_DEST                      RESOURCE_STATES = 0x1000
	RESOURCE_STATE_RESOLVE_SOURCE                    RESOURCE_STATES = 0x2000
	RESOURCE_STATE_RAYTRACING_ACCELERATION_STRUCTURE RESOURCE_STATES = 0x400000
	RESOURCE_STATE_SHADING_RATE_SOURCE               RESOURCE_STATES = 0x1000000
	RESOURCE_STATE_GENERIC_READ                      RESOURCE_STATES = 0x1 | 0x2 | 0x40 | 0x80 | 0x200 | 0x800
	RESOURCE_STATE_ALL_SHADER_RESOURCE               RESOURCE_STATES = 0x40 | 0x80
	RESOURCE_STATE_PRESENT                           RESOURCE_STATES = 0
	RESOURCE_STATE_PREDICATION                       RESOURCE_STATES = 0x200
	RESOURCE_STATE_VIDEO_DECODE_READ                 RESOURCE_STATES = 0x10000
	RESOURCE_STATE_VIDEO_DECODE_WRITE                RESOURCE_STATES = 0x20000
	RESOURCE_STATE_VIDEO_PROCESS_READ                RESOURCE_STATES = 0x40000
	RESOURCE_STATE_VIDEO_PROCESS_WRITE               RESOURCE_STATES = 0x80000
	RESOURCE_STATE_VIDEO_ENCODE_READ                 RESOURCE_STATES = 0x200000
	RESOURCE_STATE_VIDEO_ENCODE_WRITE                RESOURCE_STATES = 0x800000
)

type RESOURCE_BARRIER_TYPE uint32

const (
	RESOURCE_BARRIER_TYPE_TRANSITION RESOURCE_BARRIER_TYPE = 0
	RESOURCE_BARRIER_TYPE_ALIASING   RESOURCE_BARRIER_TYPE = 1
	RESOURCE_BARRIER_TYPE_UAV        RESOURCE_BARRIER_TYPE = 2
)

type RESOURCE_BARRIER_FLAGS uint32

const (
	RESOURCE_BARRIER_FLAG_NONE       RESOURCE_BARRIER_FLAGS = 0
	RESOURCE_BARRIER_FLAG_BEGIN_ONLY RESOURCE_BARRIER_FLAGS = 0x1
	RESOURCE_BARRIER_FLAG_END_ONLY   RESOURCE_BARRIER_FLAGS = 0x2
)

type TEXTURE_COPY_TYPE uint32

const (
	TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX TEXTURE_COPY_TYPE = 0
	TEXTURE_COPY_TYPE_PLACED_FOOTPRINT  TEXTURE_COPY_TYPE = 1
)

type RESOLVE_MODE uint32

const (
	RESOLVE_MODE_DECOMPRESS              RESOLVE_MODE = 0
	RESOLVE_MODE_MIN                     RESOLVE_MODE = 1
	RESOLVE_MODE_MAX                     RESOLVE_MODE = 2
	RESOLVE_MODE_AVERAGE                 RESOLVE_MODE = 3
	RESOLVE_MODE_ENCODE_SAMPLER_FEEDBACK RESOLVE_MODE = 4
	RESOLVE_MODE_DECODE_SAMPLER_FEEDBACK RESOLVE_MODE = 5
)

type SHADER_COMPONENT_MAPPING uint32

const (
	SHADER_COMPONENT_MAPPING_FROM_MEMORY_COMPONENT_0 SHADER_COMPONENT_MAPPING = 0
	SHADER_COMPONENT_MAPPING_FROM_MEMORY_COMPONENT_1 SHADER_COMPONENT_MAPPING = 1
	SHADER_COMPONENT_MAPPING_FROM_MEMORY_COMPONENT_2 SHADER_COMPONENT_MAPPING = 2
	SHADER_COMPONENT_MAPPING_FROM_MEMORY_COMPONENT_3 SHADER_COMPONENT_MAPPING = 3
	SHADER_COMPONENT_MAPPING_FORCE_VALUE_0           SHADER_COMPONENT_MAPPING = 4
	SHADER_COMPONENT_MAPPING_FORCE_VALUE_1           SHADER_COMPONENT_MAPPING = 5
)

type BUFFER_SRV_FLAGS uint32

const (
	BUFFER_SRV_FLAG_NONE BUFFER_SRV_FLAGS = 0
	BUFFER_SRV_FLAG_RAW  BUFFER_SRV_FLAGS = 0x1
)

type SRV_DIMENSION uint32

const (
	SRV_DIMENSION_UNKNOWN                           SRV_DIMENSION = 0
	SRV_DIMENSION_BUFFER                            SRV_DIMENSION = 1
	SRV_DIMENSION_TEXTURE1D                         SRV_DIMENSION = 2
	SRV_DIMENSION_TEXTURE1DARRAY                    SRV_DIMENSION = 3
	SRV_DIMENSION_TEXTURE2D                         SRV_DIMENSION = 4
	SRV_DIMENSION_TEXTURE2DARRAY                    SRV_DIMENSION = 5
	SRV_DIMENSION_TEXTURE2DMS                       SRV_DIMENSION = 6
	SRV_DIMENSION_TEXTURE2DMSARRAY                  SRV_DIMENSION = 7
	SRV_DIMENSION_TEXTURE3D                         SRV_DIMENSION = 8
	SRV_DIMENSION_TEXTURECUBE                       SRV_DIMENSION = 9
	SRV_DIMENSION_TEXTURECUBEARRAY                  SRV_DIMENSION = 10
	SRV_DIMENSION_RAYTRACING_ACCELERATION_STRUCTURE SRV_DIMENSION = 11
)

type FILTER uint32

const (
	FILTER_MIN_MAG_MIP_POINT                          FILTER = 0
	FILTER_MIN_MAG_POINT_MIP_LINEAR                   FILTER = 0x1
	FILTER_MIN_POINT_MAG_LINEAR_MIP_POINT             FILTER = 0x4
	FILTER_MIN_POINT_MAG_MIP_LINEAR                   FILTER = 0x5
	FILTER_MIN_LINEAR_MAG_MIP_POINT                   FILTER = 0x10
	FILTER_MIN_LINEAR_MAG_POINT_MIP_LINEAR            FILTER = 0x11
	FILTER_MIN_MAG_LINEAR_MIP_POINT                   FILTER = 0x14
	FILTER_MIN_MAG_MIP_LINEAR                         FILTER = 0x15
	FILTER_MIN_MAG_ANISOTROPIC_MIP_POINT              FILTER = 0x54
	FILTER_ANISOTROPIC                                FILTER = 0x55
	FILTER_COMPARISON_MIN_MAG_MIP_POINT               FILTER = 0x80
	FILTER_COMPARISON_MIN_MAG_POINT_MIP_LINEAR        FILTER = 0x81
	FILTER_COMPARISON_MIN_POINT_MAG_LINEAR_MIP_POINT  FILTER = 0x84
	FILTER_COMPARISON_MIN_POINT_MAG_MIP_LINEAR        FILTER = 0x85
	FILTER_COMPARISON_MIN_LINEAR_MAG_MIP_POINT        FILTER = 0x90
	FILTER_COMPARISON_MIN_LINEAR_MAG_POINT_MIP_LINEAR FILTER = 0x91
	FILTER_COMPARISON_MIN_MAG_LINEAR_MIP_POINT        FILTER = 0x94
	FILTER_COMPARISON_MIN_MAG_MIP_LINEAR              FILTER = 0x95
	FILTER_COMPARISON_MIN_MAG_ANISOTROPIC_MIP_POINT   FILTER = 0xd4
	FILTER_COMPARISON_ANISOTROPIC                     FILTER = 0xd5
	FILTER_MINIMUM_MIN_MAG_MIP_POINT                  FILTER = 0x100
	FILTER_MINIMUM_MIN_MAG_POINT_MIP_LINEAR           FILTER = 0x101
	FILTER_MINIMUM_MIN_POINT_MAG_LINEAR_MIP_POINT     FILTER = 0x104
	FILTER_MINIMUM_MIN_POINT_MAG_MIP_LINEAR           FILTER = 0x105
	FILTER_MINIMUM_MIN_LINEAR_MAG_MIP_POINT           FILTER = 0x110
	FILTER_MINIMUM_MIN_LINEAR_MAG_POINT_MIP_LINEAR    FILTER = 0x111
	FILTER_MINIMUM_MIN_MAG_LINEAR_MIP_POINT           FILTER = 0x114
	FILTER_MINIMUM_MIN_MAG_MIP_LINEAR                 FILTER = 0x115
	FILTER_MINIMUM_MIN_MAG_ANISOTROPIC_MIP_POINT      FILTER = 0x154
	FILTER_MINIMUM_ANISOTROPIC                        FILTER = 0x155
	FILTER_MAXIMUM_MIN_MAG_MIP_POINT                  FILTER = 0x180
	FILTER_MAXIMUM_MIN_MAG_POINT_MIP_LINEAR           FILTER = 0x181
	FILTER_MAXIMUM_MIN_POINT_MAG_LINEAR_MIP_POINT     FILTER = 0x184
	FILTER_MAXIMUM_MIN_POINT_MAG_MIP_LINEAR           FILTER = 0x185
	FILTER_MAXIMUM_MIN_LINEAR_MAG_MIP_POINT           FILTER = 0x190
	FILTER_MAXIMUM_MIN_LINEAR_MAG_POINT_MIP_LINEAR    FILTER = 0x191
	FILTER_MAXIMUM_MIN_MAG_LINEAR_MIP_POINT           FILTER = 0x194
	FILTER_MAXIMUM_MIN_MAG_MIP_LINEAR                 FILTER = 0x195
	FILTER_MAXIMUM_MIN_MAG_ANISOTROPIC_MIP_POINT      FILTER = 0x1d4
	FILTER_MAXIMUM_ANISOTROPIC                        FILTER = 0x1d5
)

type FILTER_TYPE uint32

const (
	FILTER_TYPE_POINT  FILTER_TYPE = 0
	FILTER_TYPE_LINEAR FILTER_TYPE = 1
)

type FILTER_REDUCTION_TYPE uint32

const (
	FILTER_REDUCTION_TYPE_STANDARD   FILTER_REDUCTION_TYPE = 0
	FILTER_REDUCTION_TYPE_COMPARISON FILTER_REDUCTION_TYPE = 1
	FILTER_REDUCTION_TYPE_MINIMUM    FILTER_REDUCTION_TYPE = 2
	FILTER_REDUCTION_TYPE_MAXIMUM    FILTER_REDUCTION_TYPE = 3
)

type TEXTURE_ADDRESS_MODE uint32

const (
	TEXTURE_ADDRESS_MODE_WRAP        TEXTURE_ADDRESS_MODE = 1
	TEXTURE_ADDRESS_MODE_MIRROR      TEXTURE_ADDRESS_MODE = 2
	TEXTURE_ADDRESS_MODE_CLAMP       TEXTURE_ADDRESS_MODE = 3
	TEXTURE_ADDRESS_MODE_BORDER      TEXTURE_ADDRESS_MODE = 4
	TEXTURE_ADDRESS_MODE_MIRROR_ONCE TEXTURE_ADDRESS_MODE = 5
)

type BUFFER_UAV_FLAGS uint32

const (
	BUFFER_UAV_FLAG_NONE BUFFER_UAV_FLAGS = 0
	BUFFER_UAV_FLAG_RAW  BUFFER_UAV_FLAGS = 0x1
)

type UAV_DIMENSION uint32

const (
	UAV_DIMENSION_UNKNOWN          UAV_DIMENSION = 0
	UAV_DIMENSION_BUFFER           UAV_DIMENSION = 1
	UAV_DIMENSION_TEXTURE1D        UAV_DIMENSION = 2
	UAV_DIMENSION_TEXTURE1DARRAY   UAV_DIMENSION = 3
	UAV_DIMENSION_TEXTURE2D        UAV_DIMENSION = 4
	UAV_DIMENSION_TEXTURE2DARRAY   UAV_DIMENSION = 5
	UAV_DIMENSION_TEXTURE2DMS      UAV_DIMENSION = 6
	UAV_DIMENSION_TEXTURE2DMSARRAY UAV_DIMENSION = 7
	UAV_DIMENSION_TEXTURE3D        UAV_DIMENSION = 8
)

type RTV_DIMENSION uint32

const (
	RTV_DIMENSION_UNKNOWN          RTV_DIMENSION = 0
	RTV_DIMENSION_BUFFER           RTV_DIMENSION = 1
	RTV_DIMENSION_TEXTURE1D        RTV_DIMENSION = 2
	RTV_DIMENSION_TEXTURE1DARRAY   RTV_DIMENSION = 3
	RTV_DIMENSION_TEXTURE2D        RTV_DIMENSION = 4
	RTV_DIMENSION_TEXTURE2DARRAY   RTV_DIMENSION = 5
	RTV_DIMENSION_TEXTURE2DMS      RTV_DIMENSION = 6
	RTV_DIMENSION_TEXTURE2DMSARRAY RTV_DIMENSION = 7
	RTV_DIMENSION_TEXTURE3D        RTV_DIMENSION = 8
)

type DSV_FLAGS uint32

const (
	DSV_FLAG_NONE              DSV_FLAGS = 0
	DSV_FLAG_READ_ONLY_DEPTH   DSV_FLAGS = 0x1
	DSV_FLAG_READ_ONLY_STENCIL DSV_FLAGS = 0x2
)

type DSV_DIMENSION uint32

const (
	DSV_DIMENSION_UNKNOWN          DSV_DIMENSION = 0
	DSV_DIMENSION_TEXTURE1D        DSV_DIMENSION = 1
	DSV_DIMENSION_TEXTURE1DARRAY   DSV_DIMENSION = 2
	DSV_DIMENSION_TEXTURE2D        DSV_DIMENSION = 3
	DSV_DIMENSION_TEXTURE2DARRAY   DSV_DIMENSION = 4
	DSV_DIMENSION_TEXTURE2DMS      DSV_DIMENSION = 5
	DSV_DIMENSION_TEXTURE2DMSARRAY DSV_DIMENSION = 6
)

type CLEAR_FLAGS uint32

const (
	CLEAR_FLAG_DEPTH   CLEAR_FLAGS = 0x1
	CLEAR_FLAG_STENCIL CLEAR_FLAGS = 0x2
)

type FENCE_FLAGS uint32

const (
	FENCE_FLAG_NONE                 FENCE_FLAGS = 0
	FENCE_FLAG_SHARED               FENCE_FLAGS = 0x1
	FENCE_FLAG_SHARED_CROSS_ADAPTER FENCE_FLAGS = 0x2
	FENCE_FLAG_NON_MONITORED        FENCE_FLAGS = 0x4
)

type DESCRIPTOR_HEAP_TYPE uint32

const (
	DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV DESCRIPTOR_HEAP_TYPE = 0
	DESCRIPTOR_HEAP_TYPE_SAMPLER     DESCRIPTOR_HEAP_TYPE = 1
	DESCRIPTOR_HEAP_TYPE_RTV         DESCRIPTOR_HEAP_TYPE = 2
	DESCRIPTOR_HEAP_TYPE_DSV         DESCRIPTOR_HEAP_TYPE = 3
	DESCRIPTOR_HEAP_TYPE_NUM_TYPES   DESCRIPTOR_HEAP_TYPE = 4
)

type DESCRIPTOR_HEAP_FLAGS uint32

const (
	DESCRIPTOR_HEAP_FLAG_NONE           DESCRIPTOR_HEAP_FLAGS = 0
	DESCRIPTOR_HEAP_FLAG_SHADER_VISIBLE DESCRIPTOR_HEAP_FLAGS = 0x1
)

type DESCRIPTOR_RANGE_TYPE uint32

const (
	DESCRIPTOR_RANGE_TYPE_SRV     DESCRIPTOR_RANGE_TYPE = 0
	DESCRIPTOR_RANGE_TYPE_UAV     DESCRIPTOR_RANGE_TYPE = 1
	DESCRIPTOR_RANGE_TYPE_CBV     DESCRIPTOR_RANGE_TYPE = 2
	DESCRIPTOR_RANGE_TYPE_SAMPLER DESCRIPTOR_RANGE_TYPE = 3
)

type SHADER_VISIBILITY uint32

const (
	SHADER_VISIBILITY_ALL           SHADER_VISIBILITY = 0
	SHADER_VISIBILITY_VERTEX        SHADER_VISIBILITY = 1
	SHADER_VISIBILITY_HULL          SHADER_VISIBILITY = 2
	SHADER_VISIBILITY_DOMAIN        SHADER_VISIBILITY = 3
	SHADER_VISIBILITY_GEOMETRY      SHADER_VISIBILITY = 4
	SHADER_VISIBILITY_PIXEL         SHADER_VISIBILITY = 5
	SHADER_VISIBILITY_AMPLIFICATION SHADER_VISIBILITY = 6
	SHADER_VISIBILITY_MESH          SHADER_VISIBILITY = 7
)

type ROOT_PARAMETER_TYPE uint32

const (
	ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE ROOT_PARAMETER_TYPE = 0
	ROOT_PARAMETER_TYPE_32BIT_CONSTANTS  ROOT_PARAMETER_TYPE = 1
	ROOT_PARAMETER_TYPE_CBV              ROOT_PARAMETER_TYPE = 2
	ROOT_PARAMETER_TYPE_SRV              ROOT_PARAMETER_TYPE = 3
	ROOT_PARAMETER_TYPE_UAV              ROOT_PARAMETER_TYPE = 4
)

type ROOT_SIGNATURE_FLAGS uint32

const (
	ROOT_SIGNATURE_FLAG_NONE                                  ROOT_SIGNATURE_FLAGS = 0
	ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT    ROOT_SIGNATURE_FLAGS = 0x1
	ROOT_SIGNATURE_FLAG_DENY_VERTEX_SHADER_ROOT_ACCESS        ROOT_SIGNATURE_FLAGS = 0x2
	ROOT_SIGNATURE_FLAG_DENY_HULL_SHADER_ROOT_ACCESS          ROOT_SIGNATURE_FLAGS = 0x4
	ROOT_SIGNATURE_FLAG_DENY_DOMAIN_SHADER_ROOT_ACCESS        ROOT_SIGNATURE_FLAGS = 0x8
	ROOT_SIGNATURE_FLAG_DENY_GEOMETRY_SHADER_ROOT_ACCESS      ROOT_SIGNATURE_FLAGS = 0x10
	ROOT_SIGNATURE_FLAG_DENY_PIXEL_SHADER_ROOT_ACCESS         ROOT_SIGNATURE_FLAGS = 0x20
	ROOT_SIGNATURE_FLAG_ALLOW_STREAM_OUTPUT                   ROOT_SIGNATURE_FLAGS = 0x40
	ROOT_SIGNATURE_FLAG_LOCAL_ROOT_SIGNATURE                  ROOT_SIGNATURE_FLAGS = 0x80
	ROOT_SIGNATURE_FLAG_DENY_AMPLIFICATION_SHADER_ROOT_ACCESS ROOT_SIGNATURE_FLAGS = 0x100
	ROOT_SIGNATURE_FLAG_DENY_MESH_SHADER_ROOT_ACCESS          ROOT_SIGNATURE_FLAGS = 0x200
	ROOT_SIGNATURE_FLAG_CBV_SRV_UAV_HEAP_DIRECTLY_INDEXED     ROOT_SIGNATURE_FLAGS = 0x400
	ROOT_SIGNATURE_FLAG_SAMPLER_HEAP_DIRECTLY_INDEXED         ROOT_SIGNATURE_FLAGS = 0x800
)

type STATIC_BORDER_COLOR uint32

const (
	STATIC_BORDER_COLOR_TRANSPARENT_BLACK STATIC_BORDER_COLOR = 0
	STATIC_BORDER_COLOR_OPAQUE_BLACK      STATIC_BORDER_COLOR = 1
	STATIC_BORDER_COLOR_OPAQUE_WHITE      STATIC_BORDER_COLOR = 2
	STATIC_BORDER_COLOR_OPAQUE_BLACK_UINT STATIC_BORDER_COLOR = 3
	STATIC_BORDER_COLOR_OPAQUE_WHITE_UINT STATIC_BORDER_COLOR = 4
)

type DESCRIPTOR_RANGE_FLAGS uint32

const (
	DESCRIPTOR_RANGE_FLAG_NONE                                            DESCRIPTOR_RANGE_FLAGS = 0
	DESCRIPTOR_RANGE_FLAG_DESCRIPTORS_VOLATILE                            DESCRIPTOR_RANGE_FLAGS = 0x1
	DESCRIPTOR_RANGE_FLAG_DATA_VOLATILE                                   DESCRIPTOR_RANGE_FLAGS = 0x2
	DESCRIPTOR_RANGE_FLAG_DATA_STATIC_WHILE_SET_AT_EXECUTE                DESCRIPTOR_RANGE_FLAGS = 0x4
	DESCRIPTOR_RANGE_FLAG_DATA_STATIC                                     DESCRIPTOR_RANGE_FLAGS = 0x8
	DESCRIPTOR_RANGE_FLAG_DESCRIPTORS_STATIC_KEEPING_BUFFER_BOUNDS_CHECKS DESCRIPTOR_RANGE_FLAGS = 0x10000
)

type ROOT_DESCRIPTOR_FLAGS uint32

const (
	ROOT_DESCRIPTOR_FLAG_NONE                             ROOT_DESCRIPTOR_FLAGS = 0
	ROOT_DESCRIPTOR_FLAG_DATA_VOLATILE                    ROOT_DESCRIPTOR_FLAGS = 0x2
	ROOT_DESCRIPTOR_FLAG_DATA_STATIC_WHILE_SET_AT_EXECUTE ROOT_DESCRIPTOR_FLAGS = 0x4
	ROOT_DESCRIPTOR_FLAG_DATA_STATIC                      ROOT_DESCRIPTOR_FLAGS = 0x8
)

type QUERY_HEAP_TYPE uint32

const (
	QUERY_HEAP_TYPE_OCCLUSION               QUERY_HEAP_TYPE = 0
	QUERY_HEAP_TYPE_TIMESTAMP               QUERY_HEAP_TYPE = 1
	QUERY_HEAP_TYPE_PIPELINE_STATISTICS     QUERY_HEAP_TYPE = 2
	QUERY_HEAP_TYPE_SO_STATISTICS           QUERY_HEAP_TYPE = 3
	QUERY_HEAP_TYPE_VIDEO_DECODE_STATISTICS QUERY_HEAP_TYPE = 4
	QUERY_HEAP_TYPE_COPY_QUEUE_TIMESTAMP    QUERY_HEAP_TYPE = 5
)

type QUERY_TYPE uint32

const (
	QUERY_TYPE_OCCLUSION               QUERY_TYPE = 0
	QUERY_TYPE_BINARY_OCCLUSION        QUERY_TYPE = 1
	QUERY_TYPE_TIMESTAMP               QUERY_TYPE = 2
	QUERY_TYPE_PIPELINE_STATISTICS     QUERY_TYPE = 3
	QUERY_TYPE_SO_STATISTICS_STREAM0   QUERY_TYPE = 4
	QUERY_TYPE_SO_STATISTICS_STREAM1   QUERY_TYPE = 5
	QUERY_TYPE_SO_STATISTICS_STREAM2   QUERY_TYPE = 6
	QUERY_TYPE_SO_STATISTICS_STREAM3   QUERY_TYPE = 7
	QUERY_TYPE_VIDEO_DECODE_STATISTICS QUERY_TYPE = 8
)

type PREDICATION_OP uint32

const (
	PREDICATION_OP_EQUAL_ZERO     PREDICATION_OP = 0
	PREDICATION_OP_NOT_EQUAL_ZERO PREDICATION_OP = 1
)

type INDIRECT_ARGUMENT_TYPE uint32

const (
	INDIRECT_ARGUMENT_TYPE_DRAW                  INDIRECT_ARGUMENT_TYPE = 0
	INDIRECT_ARGUMENT_TYPE_DRAW_INDEXED          INDIRECT_ARGUMENT_TYPE = 1
	INDIRECT_ARGUMENT_TYPE_DISPATCH              INDIRECT_ARGUMENT_TYPE = 2
	INDIRECT_ARGUMENT_TYPE_VERTEX_BUFFER_VIEW    INDIRECT_ARGUMENT_TYPE = 3
	INDIRECT_ARGUMENT_TYPE_INDEX_BUFFER_VIEW     INDIRECT_ARGUMENT_TYPE = 4
	INDIRECT_ARGUMENT_TYPE_CONSTANT              INDIRECT_ARGUMENT_TYPE = 5
	INDIRECT_ARGUMENT_TYPE_CONSTANT_BUFFER_VIEW  INDIRECT_ARGUMENT_TYPE = 6
	INDIRECT_ARGUMENT_TYPE_SHADER_RESOURCE_VIEW  INDIRECT_ARGUMENT_TYPE = 7
	INDIRECT_ARGUMENT_TYPE_UNORDERED_ACCESS_VIEW INDIRECT_ARGUMENT_TYPE = 8
	INDIRECT_ARGUMENT_TYPE_DISPATCH_RAYS         INDIRECT_ARGUMENT_TYPE = 9
	INDIRECT_ARGUMENT_TYPE_DISPATCH_MESH         INDIRECT_ARGUMENT_TYPE = 10
)

// MESSAGE_CATEGORY and the enums after it come from d3d12sdklayers.h.
type MESSAGE_CATEGORY uint32

const (
	MESSAGE_CATEGORY_APPLICATION_DEFINED   MESSAGE_CATEGORY = 0
	MESSAGE_CATEGORY_MISCELLANEOUS         MESSAGE_CATEGORY = 1
	MESSAGE_CATEGORY_INITIALIZATION        MESSAGE_CATEGORY = 2
	MESSAGE_CATEGORY_CLEANUP               MESSAGE_CATEGORY = 3
	MESSAGE_CATEGORY_COMPILATION           MESSAGE_CATEGORY = 4
	MESSAGE_CATEGORY_STATE_CREATION        MESSAGE_CATEGORY = 5
	MESSAGE_CATEGORY_STATE_SETTING         MESSAGE_CATEGORY = 6
	MESSAGE_CATEGORY_STATE_GETTING         MESSAGE_CATEGORY = 7
	MESSAGE_CATEGORY_RESOURCE_MANIPULATION MESSAGE_CATEGORY = 8
	MESSAGE_CATEGORY_EXECUTION             MESSAGE_CATEGORY = 9
	MESSAGE_CATEGORY_SHADER                MESSAGE_CATEGORY = 10
)

type MESSAGE_SEVERITY uint32

const (
	MESSAGE_SEVERITY_CORRUPTION MESSAGE_SEVERITY = 0
	MESSAGE_SEVERITY_ERROR      MESSAGE_SEVERITY = 1
	MESSAGE_SEVERITY_WARNING    MESSAGE_SEVERITY = 2
	MESSAGE_SEVERITY_INFO       MESSAGE_SEVERITY = 3
	MESSAGE_SEVERITY_MESSAGE    MESSAGE_SEVERITY = 4
)

// MESSAGE_ID only names the IDs this module refers to.
type MESSAGE_ID uint32

const (
	MESSAGE_ID_UNKNOWN                                     MESSAGE_ID = 0
	MESSAGE_ID_CLEARRENDERTARGETVIEW_MISMATCHINGCLEARVALUE MESSAGE_ID = 820
	MESSAGE_ID_CLEARDEPTHSTENCILVIEW_MISMATCHINGCLEARVALUE MESSAGE_ID = 821
)

type MESSAGE_CALLBACK_FLAGS uint32

const (
	MESSAGE_CALLBACK_FLAG_NONE      MESSAGE_CALLBACK_FLAGS = 0
	MESSAGE_CALLBACK_IGNORE_FILTERS MESSAGE_CALLBACK_FLAGS = 0x1
)

type GPU_BASED_VALIDATION_FLAGS uint32

const (
	GPU_BASED_VALIDATION_FLAGS_NONE                   GPU_BASED_VALIDATION_FLAGS = 0
	GPU_BASED_VALIDATION_FLAGS_DISABLE_STATE_TRACKING GPU_BASED_VALIDATION_FLAGS = 0x1
)

type RLDO_FLAGS uint32

const (
	RLDO_NONE            RLDO_FLAGS = 0
	RLDO_SUMMARY         RLDO_FLAGS = 0x1
	RLDO_DETAIL          RLDO_FLAGS = 0x2
	RLDO_IGNORE_INTERNAL RLDO_FLAGS = 0x4
)

type WRITEBUFFERIMMEDIATE_MODE uint32

const (
	WRITEBUFFERIMMEDIATE_MODE_DEFAULT    WRITEBUFFERIMMEDIATE_MODE = 0
	WRITEBUFFERIMMEDIATE_MODE_MARKER_IN  WRITEBUFFERIMMEDIATE_MODE = 1
	WRITEBUFFERIMMEDIATE_MODE_MARKER_OUT WRITEBUFFERIMMEDIATE_MODE = 2
)

type DEBUG_DEVICE_PARAMETER_TYPE uint32

const (
	DEBUG_DEVICE_PARAMETER_FEATURE_FLAGS                   DEBUG_DEVICE_PARAMETER_TYPE = 0
	DEBUG_DEVICE_PARAMETER_GPU_BASED_VALIDATION_SETTINGS   DEBUG_DEVICE_PARAMETER_TYPE = 1
	DEBUG_DEVICE_PARAMETER_GPU_SLOWDOWN_PERFORMANCE_FACTOR DEBUG_DEVICE_PARAMETER_TYPE = 2
)

type DEBUG_FEATURE uint32

const (
	DEBUG_FEATURE_NONE                                   DEBUG_FEATURE = 0
	DEBUG_FEATURE_ALLOW_BEHAVIOR_CHANGING_DEBUG_AIDS     DEBUG_FEATURE = 0x1
	DEBUG_FEATURE_CONSERVATIVE_RESOURCE_STATE_TRACKING   DEBUG_FEATURE = 0x2
	DEBUG_FEATURE_DISABLE_VIRTUALIZED_BUNDLES_VALIDATION DEBUG_FEATURE = 0x4
	DEBUG_FEATURE_EMULATE_WINDOWS7                       DEBUG_FEATURE = 0x8
)
