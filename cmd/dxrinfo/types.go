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

package main

import (
	"reflect"

	"goarrg.com/rhi/dxr/d2d1"
	"goarrg.com/rhi/dxr/d3d12"
	"goarrg.com/rhi/dxr/dxgi"
)

// layoutTypes is every ABI struct -layout describes, in header order.
var layoutTypes = []reflect.Type{
	reflect.TypeFor[dxgi.SAMPLE_DESC](),
	reflect.TypeFor[dxgi.RATIONAL](),
	reflect.TypeFor[dxgi.LUID](),
	reflect.TypeFor[d3d12.COMMAND_QUEUE_DESC](),
	reflect.TypeFor[d3d12.INPUT_ELEMENT_DESC](),
	reflect.TypeFor[d3d12.INPUT_LAYOUT_DESC](),
	reflect.TypeFor[d3d12.SO_DECLARATION_ENTRY](),
	reflect.TypeFor[d3d12.STREAM_OUTPUT_DESC](),
	reflect.TypeFor[d3d12.VIEWPORT](),
	reflect.TypeFor[d3d12.RECT](),
	reflect.TypeFor[d3d12.BOX](),
	reflect.TypeFor[d3d12.DEPTH_STENCILOP_DESC](),
	reflect.TypeFor[d3d12.DEPTH_STENCIL_DESC](),
	reflect.TypeFor[d3d12.RENDER_TARGET_BLEND_DESC](),
	reflect.TypeFor[d3d12.BLEND_DESC](),
	reflect.TypeFor[d3d12.RASTERIZER_DESC](),
	reflect.TypeFor[d3d12.SHADER_BYTECODE](),
	reflect.TypeFor[d3d12.CACHED_PIPELINE_STATE](),
	reflect.TypeFor[d3d12.GRAPHICS_PIPELINE_STATE_DESC](),
	reflect.TypeFor[d3d12.COMPUTE_PIPELINE_STATE_DESC](),
	reflect.TypeFor[d3d12.FEATURE_DATA_D3D12_OPTIONS](),
	reflect.TypeFor[d3d12.FEATURE_DATA_D3D12_OPTIONS1](),
	reflect.TypeFor[d3d12.FEATURE_DATA_ARCHITECTURE](),
	reflect.TypeFor[d3d12.FEATURE_DATA_ARCHITECTURE1](),
	reflect.TypeFor[d3d12.FEATURE_DATA_FEATURE_LEVELS](),
	reflect.TypeFor[d3d12.FEATURE_DATA_SHADER_MODEL](),
	reflect.TypeFor[d3d12.FEATURE_DATA_ROOT_SIGNATURE](),
	reflect.TypeFor[d3d12.FEATURE_DATA_FORMAT_SUPPORT](),
	reflect.TypeFor[d3d12.FEATURE_DATA_FORMAT_INFO](),
	reflect.TypeFor[d3d12.FEATURE_DATA_MULTISAMPLE_QUALITY_LEVELS](),
	reflect.TypeFor[d3d12.FEATURE_DATA_GPU_VIRTUAL_ADDRESS_SUPPORT](),
	reflect.TypeFor[d3d12.RESOURCE_ALLOCATION_INFO](),
	reflect.TypeFor[d3d12.HEAP_PROPERTIES](),
	reflect.TypeFor[d3d12.HEAP_DESC](),
	reflect.TypeFor[d3d12.RESOURCE_DESC](),
	reflect.TypeFor[d3d12.DEPTH_STENCIL_VALUE](),
	reflect.TypeFor[d3d12.CLEAR_VALUE](),
	reflect.TypeFor[d3d12.RANGE](),
	reflect.TypeFor[d3d12.RANGE_UINT64](),
	reflect.TypeFor[d3d12.SUBRESOURCE_RANGE_UINT64](),
	reflect.TypeFor[d3d12.SUBRESOURCE_INFO](),
	reflect.TypeFor[d3d12.TILED_RESOURCE_COORDINATE](),
	reflect.TypeFor[d3d12.TILE_REGION_SIZE](),
	reflect.TypeFor[d3d12.SUBRESOURCE_TILING](),
	reflect.TypeFor[d3d12.TILE_SHAPE](),
	reflect.TypeFor[d3d12.PACKED_MIP_INFO](),
	reflect.TypeFor[d3d12.RESOURCE_TRANSITION_BARRIER](),
	reflect.TypeFor[d3d12.RESOURCE_ALIASING_BARRIER](),
	reflect.TypeFor[d3d12.RESOURCE_UAV_BARRIER](),
	reflect.TypeFor[d3d12.RESOURCE_BARRIER](),
	reflect.TypeFor[d3d12.SUBRESOURCE_FOOTPRINT](),
	reflect.TypeFor[d3d12.PLACED_SUBRESOURCE_FOOTPRINT](),
	reflect.TypeFor[d3d12.TEXTURE_COPY_LOCATION](),
	reflect.TypeFor[d3d12.SAMPLE_POSITION](),
	reflect.TypeFor[d3d12.BUFFER_SRV](),
	reflect.TypeFor[d3d12.TEX1D_SRV](),
	reflect.TypeFor[d3d12.TEX1D_ARRAY_SRV](),
	reflect.TypeFor[d3d12.TEX2D_SRV](),
	reflect.TypeFor[d3d12.TEX2D_ARRAY_SRV](),
	reflect.TypeFor[d3d12.TEX3D_SRV](),
	reflect.TypeFor[d3d12.TEXCUBE_SRV](),
	reflect.TypeFor[d3d12.TEXCUBE_ARRAY_SRV](),
	reflect.TypeFor[d3d12.TEX2DMS_SRV](),
	reflect.TypeFor[d3d12.TEX2DMS_ARRAY_SRV](),
	reflect.TypeFor[d3d12.RAYTRACING_ACCELERATION_STRUCTURE_SRV](),
	reflect.TypeFor[d3d12.SHADER_RESOURCE_VIEW_DESC](),
	reflect.TypeFor[d3d12.CONSTANT_BUFFER_VIEW_DESC](),
	reflect.TypeFor[d3d12.SAMPLER_DESC](),
	reflect.TypeFor[d3d12.BUFFER_UAV](),
	reflect.TypeFor[d3d12.TEX1D_UAV](),
	reflect.TypeFor[d3d12.TEX1D_ARRAY_UAV](),
	reflect.TypeFor[d3d12.TEX2D_UAV](),
	reflect.TypeFor[d3d12.TEX2D_ARRAY_UAV](),
	reflect.TypeFor[d3d12.TEX3D_UAV](),
	reflect.TypeFor[d3d12.UNORDERED_ACCESS_VIEW_DESC](),
	reflect.TypeFor[d3d12.BUFFER_RTV](),
	reflect.TypeFor[d3d12.TEX1D_RTV](),
	reflect.TypeFor[d3d12.TEX1D_ARRAY_RTV](),
	reflect.TypeFor[d3d12.TEX2D_RTV](),
	reflect.TypeFor[d3d12.TEX2DMS_RTV](),
	reflect.TypeFor[d3d12.TEX2D_ARRAY_RTV](),
	reflect.TypeFor[d3d12.TEX2DMS_ARRAY_RTV](),
	reflect.TypeFor[d3d12.TEX3D_RTV](),
	reflect.TypeFor[d3d12.RENDER_TARGET_VIEW_DESC](),
	reflect.TypeFor[d3d12.TEX1D_DSV](),
	reflect.TypeFor[d3d12.TEX1D_ARRAY_DSV](),
	reflect.TypeFor[d3d12.TEX2D_DSV](),
	reflect.TypeFor[d3d12.TEX2D_ARRAY_DSV](),
	reflect.TypeFor[d3d12.TEX2DMS_DSV](),
	reflect.TypeFor[d3d12.TEX2DMS_ARRAY_DSV](),
	reflect.TypeFor[d3d12.DEPTH_STENCIL_VIEW_DESC](),
	reflect.TypeFor[d3d12.DESCRIPTOR_HEAP_DESC](),
	reflect.TypeFor[d3d12.DESCRIPTOR_RANGE](),
	reflect.TypeFor[d3d12.ROOT_DESCRIPTOR_TABLE](),
	reflect.TypeFor[d3d12.ROOT_CONSTANTS](),
	reflect.TypeFor[d3d12.ROOT_DESCRIPTOR](),
	reflect.TypeFor[d3d12.ROOT_PARAMETER](),
	reflect.TypeFor[d3d12.STATIC_SAMPLER_DESC](),
	reflect.TypeFor[d3d12.ROOT_SIGNATURE_DESC](),
	reflect.TypeFor[d3d12.DESCRIPTOR_RANGE1](),
	reflect.TypeFor[d3d12.ROOT_DESCRIPTOR_TABLE1](),
	reflect.TypeFor[d3d12.ROOT_DESCRIPTOR1](),
	reflect.TypeFor[d3d12.ROOT_PARAMETER1](),
	reflect.TypeFor[d3d12.ROOT_SIGNATURE_DESC1](),
	reflect.TypeFor[d3d12.VERSIONED_ROOT_SIGNATURE_DESC](),
	reflect.TypeFor[d3d12.CPU_DESCRIPTOR_HANDLE](),
	reflect.TypeFor[d3d12.GPU_DESCRIPTOR_HANDLE](),
	reflect.TypeFor[d3d12.DISCARD_REGION](),
	reflect.TypeFor[d3d12.QUERY_HEAP_DESC](),
	reflect.TypeFor[d3d12.QUERY_DATA_PIPELINE_STATISTICS](),
	reflect.TypeFor[d3d12.QUERY_DATA_SO_STATISTICS](),
	reflect.TypeFor[d3d12.STREAM_OUTPUT_BUFFER_VIEW](),
	reflect.TypeFor[d3d12.DRAW_ARGUMENTS](),
	reflect.TypeFor[d3d12.DRAW_INDEXED_ARGUMENTS](),
	reflect.TypeFor[d3d12.DISPATCH_ARGUMENTS](),
	reflect.TypeFor[d3d12.VERTEX_BUFFER_VIEW](),
	reflect.TypeFor[d3d12.INDEX_BUFFER_VIEW](),
	reflect.TypeFor[d3d12.INDIRECT_ARGUMENT_VERTEX_BUFFER](),
	reflect.TypeFor[d3d12.INDIRECT_ARGUMENT_CONSTANT](),
	reflect.TypeFor[d3d12.INDIRECT_ARGUMENT_ROOT_PARAMETER](),
	reflect.TypeFor[d3d12.INDIRECT_ARGUMENT_DESC](),
	reflect.TypeFor[d3d12.COMMAND_SIGNATURE_DESC](),
	reflect.TypeFor[d3d12.WRITEBUFFERIMMEDIATE_PARAMETER](),
	reflect.TypeFor[d3d12.SUBRESOURCE_DATA](),
	reflect.TypeFor[d3d12.MEMCPY_DEST](),
	reflect.TypeFor[d3d12.MESSAGE](),
	reflect.TypeFor[d3d12.INFO_QUEUE_FILTER_DESC](),
	reflect.TypeFor[d3d12.INFO_QUEUE_FILTER](),
	reflect.TypeFor[d2d1.PIXEL_FORMAT](),
	reflect.TypeFor[d2d1.POINT_2U](),
	reflect.TypeFor[d2d1.POINT_2F](),
	reflect.TypeFor[d2d1.RECT_F](),
	reflect.TypeFor[d2d1.RECT_U](),
	reflect.TypeFor[d2d1.SIZE_F](),
	reflect.TypeFor[d2d1.SIZE_U](),
	reflect.TypeFor[d2d1.COLOR_F](),
	reflect.TypeFor[d2d1.MATRIX_3X2_F](),
	reflect.TypeFor[d2d1.BITMAP_PROPERTIES](),
	reflect.TypeFor[d2d1.GRADIENT_STOP](),
	reflect.TypeFor[d2d1.BRUSH_PROPERTIES](),
	reflect.TypeFor[d2d1.BITMAP_BRUSH_PROPERTIES](),
	reflect.TypeFor[d2d1.LINEAR_GRADIENT_BRUSH_PROPERTIES](),
	reflect.TypeFor[d2d1.RADIAL_GRADIENT_BRUSH_PROPERTIES](),
	reflect.TypeFor[d2d1.BEZIER_SEGMENT](),
	reflect.TypeFor[d2d1.TRIANGLE](),
	reflect.TypeFor[d2d1.ARC_SEGMENT](),
	reflect.TypeFor[d2d1.QUADRATIC_BEZIER_SEGMENT](),
	reflect.TypeFor[d2d1.ELLIPSE](),
	reflect.TypeFor[d2d1.ROUNDED_RECT](),
	reflect.TypeFor[d2d1.STROKE_STYLE_PROPERTIES](),
	reflect.TypeFor[d2d1.LAYER_PARAMETERS](),
	reflect.TypeFor[d2d1.RENDER_TARGET_PROPERTIES](),
	reflect.TypeFor[d2d1.HWND_RENDER_TARGET_PROPERTIES](),
	reflect.TypeFor[d2d1.DRAWING_STATE_DESCRIPTION](),
	reflect.TypeFor[d2d1.FACTORY_OPTIONS](),
}
