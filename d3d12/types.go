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

	"goarrg.com/rhi/dxr/com"
	"goarrg.com/rhi/dxr/dxgi"
)

type COMMAND_QUEUE_DESC struct {
	Type     COMMAND_LIST_TYPE
	Priority int32
	Flags    COMMAND_QUEUE_FLAGS
	NodeMask uint32
}

type INPUT_ELEMENT_DESC struct {
	SemanticName         *byte
	SemanticIndex        uint32
	Format               dxgi.FORMAT
	InputSlot            uint32
	AlignedByteOffset    uint32
	InputSlotClass       INPUT_CLASSIFICATION
	InstanceDataStepRate uint32
}

type INPUT_LAYOUT_DESC struct {
	PInputElementDescs *INPUT_ELEMENT_DESC
	NumElements        uint32
}

type SO_DECLARATION_ENTRY struct {
	Stream         uint32
	SemanticName   *byte
	SemanticIndex  uint32
	StartComponent uint8
	ComponentCount uint8
	OutputSlot     uint8
}

type STREAM_OUTPUT_DESC struct {
	PSODeclaration   *SO_DECLARATION_ENTRY
	NumEntries       uint32
	PBufferStrides   *uint32
	NumStrides       uint32
	RasterizedStream uint32
}

type VIEWPORT struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

// RECT is D3D12_RECT, the Win32 RECT.
type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type BOX struct {
	Left   uint32
	Top    uint32
	Front  uint32
	Right  uint32
	Bottom uint32
	Back   uint32
}

type DEPTH_STENCILOP_DESC struct {
	StencilFailOp      STENCIL_OP
	StencilDepthFailOp STENCIL_OP
	StencilPassOp      STENCIL_OP
	StencilFunc        COMPARISON_FUNC
}

type DEPTH_STENCIL_DESC struct {
	DepthEnable      com.Bool
	DepthWriteMask   DEPTH_WRITE_MASK
	DepthFunc        COMPARISON_FUNC
	StencilEnable    com.Bool
	StencilReadMask  uint8
	StencilWriteMask uint8
	FrontFace        DEPTH_STENCILOP_DESC
	BackFace         DEPTH_STENCILOP_DESC
}

type RENDER_TARGET_BLEND_DESC struct {
	BlendEnable           com.Bool
	LogicOpEnable         com.Bool
	SrcBlend              BLEND
	DestBlend             BLEND
	BlendOp               BLEND_OP
	SrcBlendAlpha         BLEND
	DestBlendAlpha        BLEND
	BlendOpAlpha          BLEND_OP
	LogicOp               LOGIC_OP
	RenderTargetWriteMask uint8
}

type BLEND_DESC struct {
	AlphaToCoverageEnable  com.Bool
	IndependentBlendEnable com.Bool
	RenderTarget           [SIMULTANEOUS_RENDER_TARGET_COUNT]RENDER_TARGET_BLEND_DESC
}

type RASTERIZER_DESC struct {
	FillMode              FILL_MODE
	CullMode              CULL_MODE
	FrontCounterClockwise com.Bool
	DepthBias             int32
	DepthBiasClamp        float32
	SlopeScaledDepthBias  float32
	DepthClipEnable       com.Bool
	MultisampleEnable     com.Bool
	AntialiasedLineEnable com.Bool
	ForcedSampleCount     uint32
	ConservativeRaster    CONSERVATIVE_RASTERIZATION_MODE
}

type SHADER_BYTECODE struct {
	PShaderBytecode unsafe.Pointer
	BytecodeLength  uintptr
}

type CACHED_PIPELINE_STATE struct {
	PCachedBlob           unsafe.Pointer
	CachedBlobSizeInBytes uintptr
}

type GRAPHICS_PIPELINE_STATE_DESC struct {
	PRootSignature        *RootSignature
	VS                    SHADER_BYTECODE
	PS                    SHADER_BYTECODE
	DS                    SHADER_BYTECODE
	HS                    SHADER_BYTECODE
	GS                    SHADER_BYTECODE
	StreamOutput          STREAM_OUTPUT_DESC
	BlendState            BLEND_DESC
	SampleMask            uint32
	RasterizerState       RASTERIZER_DESC
	DepthStencilState     DEPTH_STENCIL_DESC
	InputLayout           INPUT_LAYOUT_DESC
	IBStripCutValue       INDEX_BUFFER_STRIP_CUT_VALUE
	PrimitiveTopologyType PRIMITIVE_TOPOLOGY_TYPE
	NumRenderTargets      uint32
	RTVFormats            [SIMULTANEOUS_RENDER_TARGET_COUNT]dxgi.FORMAT
	DSVFormat             dxgi.FORMAT
	SampleDesc            dxgi.SAMPLE_DESC
	NodeMask              uint32
	CachedPSO             CACHED_PIPELINE_STATE
	Flags                 PIPELINE_STATE_FLAGS
}

type COMPUTE_PIPELINE_STATE_DESC struct {
	PRootSignature *RootSignature
	CS             SHADER_BYTECODE
	NodeMask       uint32
	CachedPSO      CACHED_PIPELINE_STATE
	Flags          PIPELINE_STATE_FLAGS
}

type FEATURE_DATA_D3D12_OPTIONS struct {
	DoublePrecisionFloatShaderOps                                              com.Bool
	OutputMergerLogicOp                                                        com.Bool
	MinPrecisionSupport                                                        SHADER_MIN_PRECISION_SUPPORT
	TiledResourcesTier                                                         TILED_RESOURCES_TIER
	ResourceBindingTier                                                        RESOURCE_BINDING_TIER
	PSSpecifiedStencilRefSupported                                             com.Bool
	TypedUAVLoadAdditionalFormats                                              com.Bool
	ROVsSupported                                                              com.Bool
	ConservativeRasterizationTier                                              CONSERVATIVE_RASTERIZATION_TIER
	MaxGPUVirtualAddressBitsPerResource                                        uint32
	StandardSwizzle64KBSupported                                               com.Bool
	CrossNodeSharingTier                                                       CROSS_NODE_SHARING_TIER
	CrossAdapterRowMajorTextureSupported                                       com.Bool
	VPAndRTArrayIndexFromAnyShaderFeedingRasterizerSupportedWithoutGSEmulation com.Bool
	ResourceHeapTier                                                           RESOURCE_HEAP_TIER
}

type FEATURE_DATA_D3D12_OPTIONS1 struct {
	WaveOps                       com.Bool
	WaveLaneCountMin              uint32
	WaveLaneCountMax              uint32
	TotalLaneCount                uint32
	ExpandedComputeResourceStates com.Bool
	Int64ShaderOps                com.Bool
}

type FEATURE_DATA_ARCHITECTURE struct {
	NodeIndex         uint32
	TileBasedRenderer com.Bool
	UMA               com.Bool
	CacheCoherentUMA  com.Bool
}

type FEATURE_DATA_ARCHITECTURE1 struct {
	NodeIndex         uint32
	TileBasedRenderer com.Bool
	UMA               com.Bool
	CacheCoherentUMA  com.Bool
	IsolatedMMU       com.Bool
}

type FEATURE_DATA_FEATURE_LEVELS struct {
	NumFeatureLevels         uint32
	PFeatureLevelsRequested  *FEATURE_LEVEL
	MaxSupportedFeatureLevel FEATURE_LEVEL
}

type FEATURE_DATA_SHADER_MODEL struct {
	HighestShaderModel SHADER_MODEL
}

type FEATURE_DATA_ROOT_SIGNATURE struct {
	HighestVersion ROOT_SIGNATURE_VERSION
}

type FEATURE_DATA_FORMAT_SUPPORT struct {
	Format   dxgi.FORMAT
	Support1 FORMAT_SUPPORT1
	Support2 FORMAT_SUPPORT2
}

type FEATURE_DATA_FORMAT_INFO struct {
	Format     dxgi.FORMAT
	PlaneCount uint8
}

type FEATURE_DATA_MULTISAMPLE_QUALITY_LEVELS struct {
	Format           dxgi.FORMAT
	SampleCount      uint32
	Flags            MULTISAMPLE_QUALITY_LEVEL_FLAGS
	NumQualityLevels uint32
}

type FEATURE_DATA_GPU_VIRTUAL_ADDRESS_SUPPORT struct {
	MaxGPUVirtualAddressBitsPerResource uint32
	MaxGPUVirtualAddressBitsPerProcess  uint32
}

type RESOURCE_ALLOCATION_INFO struct {
	SizeInBytes uint64
	Alignment   uint64
}

type HEAP_PROPERTIES struct {
	Type                 HEAP_TYPE
	CPUPageProperty      CPU_PAGE_PROPERTY
	MemoryPoolPreference MEMORY_POOL
	CreationNodeMask     uint32
	VisibleNodeMask      uint32
}

type HEAP_DESC struct {
	SizeInBytes uint64
	Properties  HEAP_PROPERTIES
	Alignment   uint64
	Flags       HEAP_FLAGS
}

type RESOURCE_DESC struct {
	Dimension        RESOURCE_DIMENSION
	Alignment        uint64
	Width            uint64
	Height           uint32
	DepthOrArraySize uint16
	MipLevels        uint16
	Format           dxgi.FORMAT
	SampleDesc       dxgi.SAMPLE_DESC
	Layout           TEXTURE_LAYOUT
	Flags            RESOURCE_FLAGS
}

type DEPTH_STENCIL_VALUE struct {
	Depth   float32
	Stencil uint8
}

type CLEAR_VALUE struct {
	Format dxgi.FORMAT
	union  [4]float32
}

func (v *CLEAR_VALUE) Color() *[4]float32 {
	return &v.union
}

func (v *CLEAR_VALUE) DepthStencil() *DEPTH_STENCIL_VALUE {
	return (*DEPTH_STENCIL_VALUE)(unsafe.Pointer(&v.union))
}

type RANGE struct {
	Begin uintptr
	End   uintptr
}

type RANGE_UINT64 struct {
	Begin uint64
	End   uint64
}

type SUBRESOURCE_RANGE_UINT64 struct {
	Subresource uint32
	Range       RANGE_UINT64
}

type SUBRESOURCE_INFO struct {
	Offset     uint64
	RowPitch   uint32
	DepthPitch uint32
}

type TILED_RESOURCE_COORDINATE struct {
	X           uint32
	Y           uint32
	Z           uint32
	Subresource uint32
}

type TILE_REGION_SIZE struct {
	NumTiles uint32
	UseBox   com.Bool
	Width    uint32
	Height   uint16
	Depth    uint16
}

type SUBRESOURCE_TILING struct {
	WidthInTiles                    uint32
	HeightInTiles                   uint16
	DepthInTiles                    uint16
	StartTileIndexInOverallResource uint32
}

type TILE_SHAPE struct {
	WidthInTexels  uint32
	HeightInTexels uint32
	DepthInTexels  uint32
}

type PACKED_MIP_INFO struct {
	NumStandardMips                 uint8
	NumPackedMips                   uint8
	NumTilesForPackedMips           uint32
	StartTileIndexInOverallResource uint32
}

type RESOURCE_TRANSITION_BARRIER struct {
	PResource   *Resource
	Subresource uint32
	StateBefore RESOURCE_STATES
	StateAfter  RESOURCE_STATES
}

type RESOURCE_ALIASING_BARRIER struct {
	PResourceBefore *Resource
	PResourceAfter  *Resource
}

type RESOURCE_UAV_BARRIER struct {
	PResource *Resource
}

type RESOURCE_BARRIER struct {
	Type  RESOURCE_BARRIER_TYPE
	Flags RESOURCE_BARRIER_FLAGS
	union [3]uint64
}

func (b *RESOURCE_BARRIER) Transition() *RESOURCE_TRANSITION_BARRIER {
	return (*RESOURCE_TRANSITION_BARRIER)(unsafe.Pointer(&b.union))
}

func (b *RESOURCE_BARRIER) Aliasing() *RESOURCE_ALIASING_BARRIER {
	return (*RESOURCE_ALIASING_BARRIER)(unsafe.Pointer(&b.union))
}

func (b *RESOURCE_BARRIER) UAV() *RESOURCE_UAV_BARRIER {
	return (*RESOURCE_UAV_BARRIER)(unsafe.Pointer(&b.union))
}

type SUBRESOURCE_FOOTPRINT struct {
	Format   dxgi.FORMAT
	Width    uint32
	Height   uint32
	Depth    uint32
	RowPitch uint32
}

type PLACED_SUBRESOURCE_FOOTPRINT struct {
	Offset    uint64
	Footprint SUBRESOURCE_FOOTPRINT
}

type TEXTURE_COPY_LOCATION struct {
	PResource *Resource
	Type      TEXTURE_COPY_TYPE
	union     [4]uint64
}

func (l *TEXTURE_COPY_LOCATION) PlacedFootprint() *PLACED_SUBRESOURCE_FOOTPRINT {
	return (*PLACED_SUBRESOURCE_FOOTPRINT)(unsafe.Pointer(&l.union))
}

func (l *TEXTURE_COPY_LOCATION) SubresourceIndex() *uint32 {
	return (*uint32)(unsafe.Pointer(&l.union))
}

type SAMPLE_POSITION struct {
	X int8
	Y int8
}

type BUFFER_SRV struct {
	FirstElement        uint64
	NumElements         uint32
	StructureByteStride uint32
	Flags               BUFFER_SRV_FLAGS
}

type TEX1D_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	ResourceMinLODClamp float32
}

type TEX1D_ARRAY_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	FirstArraySlice     uint32
	ArraySize           uint32
	ResourceMinLODClamp float32
}

type TEX2D_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	PlaneSlice          uint32
	ResourceMinLODClamp float32
}

type TEX2D_ARRAY_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	FirstArraySlice     uint32
	ArraySize           uint32
	PlaneSlice          uint32
	ResourceMinLODClamp float32
}

type TEX3D_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	ResourceMinLODClamp float32
}

type TEXCUBE_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	ResourceMinLODClamp float32
}

type TEXCUBE_ARRAY_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	First2DArrayFace    uint32
	NumCubes            uint32
	ResourceMinLODClamp float32
}

type TEX2DMS_SRV struct {
	UnusedField_NothingToDefine uint32
}

type TEX2DMS_ARRAY_SRV struct {
	FirstArraySlice uint32
	ArraySize       uint32
}

type RAYTRACING_ACCELERATION_STRUCTURE_SRV struct {
	Location uint64
}

type SHADER_RESOURCE_VIEW_DESC struct {
	Format                  dxgi.FORMAT
	ViewDimension           SRV_DIMENSION
	Shader4ComponentMapping uint32
	union                   [3]uint64
}

func (d *SHADER_RESOURCE_VIEW_DESC) Buffer() *BUFFER_SRV {
	return (*BUFFER_SRV)(unsafe.Pointer(&d.union))
}

func (d *SHADER_RESOURCE_VIEW_DESC) Texture1D() *TEX1D_SRV {
	return (*TEX1D_SRV)(unsafe.Pointer(&d.union))
}

func (d *SHADER_RESOURCE_VIEW_DESC) Texture1DArray() *TEX1D_ARRAY_SRV {
	return (*TEX1D_ARRAY_SRV)(unsafe.Pointer(&d.union))
}

func (d *SHADER_RESOURCE_VIEW_DESC) Texture2D() *TEX2D_SRV {
	return (*TEX2D_SRV)(unsafe.Pointer(&d.union))
}

func (d *SHADER_RESOURCE_VIEW_DESC) Texture2DArray() *TEX2D_ARRAY_SRV {
	return (*TEX2D_ARRAY_SRV)(unsafe.Pointer(&d.union))
}

func (d *SHADER_RESOURCE_VIEW_DESC) Texture2DMS() *TEX2DMS_SRV {
	return (*TEX2DMS_SRV)(unsafe.Pointer(&d.union))
}

func (d *SHADER_RESOURCE_VIEW_DESC) Texture2DMSArray() *TEX2DMS_ARRAY_SRV {
	return (*TEX2DMS_ARRAY_SRV)(unsafe.Pointer(&d.union))
}

func (d *SHADER_RESOURCE_VIEW_DESC) Texture3D() *TEX3D_SRV {
	return (*TEX3D_SRV)(unsafe.Pointer(&d.union))
}

func (d *SHADER_RESOURCE_VIEW_DESC) TextureCube() *TEXCUBE_SRV {
	return (*TEXCUBE_SRV)(unsafe.Pointer(&d.union))
}

func (d *SHADER_RESOURCE_VIEW_DESC) TextureCubeArray() *TEXCUBE_ARRAY_SRV {
	return (*TEXCUBE_ARRAY_SRV)(unsafe.Pointer(&d.union))
}

func (d *SHADER_RESOURCE_VIEW_DESC) RaytracingAccelerationStructure() *RAYTRACING_ACCELERATION_STRUCTURE_SRV {
	return (*RAYTRACING_ACCELERATION_STRUCTURE_SRV)(unsafe.Pointer(&d.union))
}

type CONSTANT_BUFFER_VIEW_DESC struct {
	BufferLocation uint64
	SizeInBytes    uint32
}

type SAMPLER_DESC struct {
	Filter         FILTER
	AddressU       TEXTURE_ADDRESS_MODE
	AddressV       TEXTURE_ADDRESS_MODE
	AddressW       TEXTURE_ADDRESS_MODE
	MipLODBias     float32
	MaxAnisotropy  uint32
	ComparisonFunc COMPARISON_FUNC
	BorderColor    [4]float32
	MinLOD         float32
	MaxLOD         float32
}

type BUFFER_UAV struct {
	FirstElement         uint64
	NumElements          uint32
	StructureByteStride  uint32
	CounterOffsetInBytes uint64
	Flags                BUFFER_UAV_FLAGS
}

type TEX1D_UAV struct {
	MipSlice uint32
}

type TEX1D_ARRAY_UAV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
}

type TEX2D_UAV struct {
	MipSlice   uint32
	PlaneSlice uint32
}

type TEX2D_ARRAY_UAV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
	PlaneSlice      uint32
}

type TEX3D_UAV struct {
	MipSlice    uint32
	FirstWSlice uint32
	WSize       uint32
}

type UNORDERED_ACCESS_VIEW_DESC struct {
	Format        dxgi.FORMAT
	ViewDimension UAV_DIMENSION
	union         [4]uint64
}

func (d *UNORDERED_ACCESS_VIEW_DESC) Buffer() *BUFFER_UAV {
	return (*BUFFER_UAV)(unsafe.Pointer(&d.union))
}

func (d *UNORDERED_ACCESS_VIEW_DESC) Texture1D() *TEX1D_UAV {
	return (*TEX1D_UAV)(unsafe.Pointer(&d.union))
}

func (d *UNORDERED_ACCESS_VIEW_DESC) Texture1DArray() *TEX1D_ARRAY_UAV {
	return (*TEX1D_ARRAY_UAV)(unsafe.Pointer(&d.union))
}

func (d *UNORDERED_ACCESS_VIEW_DESC) Texture2D() *TEX2D_UAV {
	return (*TEX2D_UAV)(unsafe.Pointer(&d.union))
}

func (d *UNORDERED_ACCESS_VIEW_DESC) Texture2DArray() *TEX2D_ARRAY_UAV {
	return (*TEX2D_ARRAY_UAV)(unsafe.Pointer(&d.union))
}

func (d *UNORDERED_ACCESS_VIEW_DESC) Texture3D() *TEX3D_UAV {
	return (*TEX3D_UAV)(unsafe.Pointer(&d.union))
}

type BUFFER_RTV struct {
	FirstElement uint64
	NumElements  uint32
}

type TEX1D_RTV struct {
	MipSlice uint32
}

type TEX1D_ARRAY_RTV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
}

type TEX2D_RTV struct {
	MipSlice   uint32
	PlaneSlice uint32
}

type TEX2DMS_RTV struct {
	UnusedField_NothingToDefine uint32
}

type TEX2D_ARRAY_RTV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
	PlaneSlice      uint32
}

type TEX2DMS_ARRAY_RTV struct {
	FirstArraySlice uint32
	ArraySize       uint32
}

type TEX3D_RTV struct {
	MipSlice    uint32
	FirstWSlice uint32
	WSize       uint32
}

type RENDER_TARGET_VIEW_DESC struct {
	Format        dxgi.FORMAT
	ViewDimension RTV_DIMENSION
	union         [2]uint64
}

func (d *RENDER_TARGET_VIEW_DESC) Buffer() *BUFFER_RTV {
	return (*BUFFER_RTV)(unsafe.Pointer(&d.union))
}

func (d *RENDER_TARGET_VIEW_DESC) Texture1D() *TEX1D_RTV {
	return (*TEX1D_RTV)(unsafe.Pointer(&d.union))
}

func (d *RENDER_TARGET_VIEW_DESC) Texture1DArray() *TEX1D_ARRAY_RTV {
	return (*TEX1D_ARRAY_RTV)(unsafe.Pointer(&d.union))
}

func (d *RENDER_TARGET_VIEW_DESC) Texture2D() *TEX2D_RTV {
	return (*TEX2D_RTV)(unsafe.Pointer(&d.union))
}

func (d *RENDER_TARGET_VIEW_DESC) Texture2DArray() *TEX2D_ARRAY_RTV {
	return (*TEX2D_ARRAY_RTV)(unsafe.Pointer(&d.union))
}

func (d *RENDER_TARGET_VIEW_DESC) Texture2DMS() *TEX2DMS_RTV {
	return (*TEX2DMS_RTV)(unsafe.Pointer(&d.union))
}

func (d *RENDER_TARGET_VIEW_DESC) Texture2DMSArray() *TEX2DMS_ARRAY_RTV {
	return (*TEX2DMS_ARRAY_RTV)(unsafe.Pointer(&d.union))
}

func (d *RENDER_TARGET_VIEW_DESC) Texture3D() *TEX3D_RTV {
	return (*TEX3D_RTV)(unsafe.Pointer(&d.union))
}

type TEX1D_DSV struct {
	MipSlice uint32
}

type TEX1D_ARRAY_DSV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
}

type TEX2D_DSV struct {
	MipSlice uint32
}

type TEX2D_ARRAY_DSV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
}

type TEX2DMS_DSV struct {
	UnusedField_NothingToDefine uint32
}

type TEX2DMS_ARRAY_DSV struct {
	FirstArraySlice uint32
	ArraySize       uint32
}

type DEPTH_STENCIL_VIEW_DESC struct {
	Format        dxgi.FORMAT
	ViewDimension DSV_DIMENSION
	Flags         DSV_FLAGS
	union         [3]uint32
}

func (d *DEPTH_STENCIL_VIEW_DESC) Texture1D() *TEX1D_DSV {
	return (*TEX1D_DSV)(unsafe.Pointer(&d.union))
}

func (d *DEPTH_STENCIL_VIEW_DESC) Texture1DArray() *TEX1D_ARRAY_DSV {
	return (*TEX1D_ARRAY_DSV)(unsafe.Pointer(&d.union))
}

func (d *DEPTH_STENCIL_VIEW_DESC) Texture2D() *TEX2D_DSV {
	return (*TEX2D_DSV)(unsafe.Pointer(&d.union))
}

func (d *DEPTH_STENCIL_VIEW_DESC) Texture2DArray() *TEX2D_ARRAY_DSV {
	return (*TEX2D_ARRAY_DSV)(unsafe.Pointer(&d.union))
}

func (d *DEPTH_STENCIL_VIEW_DESC) Texture2DMS() *TEX2DMS_DSV {
	return (*TEX2DMS_DSV)(unsafe.Pointer(&d.union))
}

func (d *DEPTH_STENCIL_VIEW_DESC) Texture2DMSArray() *TEX2DMS_ARRAY_DSV {
	return (*TEX2DMS_ARRAY_DSV)(unsafe.Pointer(&d.union))
}

type DESCRIPTOR_HEAP_DESC struct {
	Type           DESCRIPTOR_HEAP_TYPE
	NumDescriptors uint32
	Flags          DESCRIPTOR_HEAP_FLAGS
	NodeMask       uint32
}

type DESCRIPTOR_RANGE struct {
	RangeType                         DESCRIPTOR_RANGE_TYPE
	NumDescriptors                    uint32
	BaseShaderRegister                uint32
	RegisterSpace                     uint32
	OffsetInDescriptorsFromTableStart uint32
}

type ROOT_DESCRIPTOR_TABLE struct {
	NumDescriptorRanges uint32
	PDescriptorRanges   *DESCRIPTOR_RANGE
}

type ROOT_CONSTANTS struct {
	ShaderRegister uint32
	RegisterSpace  uint32
	Num32BitValues uint32
}

type ROOT_DESCRIPTOR struct {
	ShaderRegister uint32
	RegisterSpace  uint32
}

// ROOT_PARAMETER stores its union members as plain words. Memory referenced
// by a descriptor table must be kept alive by the caller until the root
// signature has been serialized.
type ROOT_PARAMETER struct {
	ParameterType    ROOT_PARAMETER_TYPE
	union            [2]uint64
	ShaderVisibility SHADER_VISIBILITY
}

func (p *ROOT_PARAMETER) DescriptorTable() *ROOT_DESCRIPTOR_TABLE {
	return (*ROOT_DESCRIPTOR_TABLE)(unsafe.Pointer(&p.union))
}

func (p *ROOT_PARAMETER) Constants() *ROOT_CONSTANTS {
	return (*ROOT_CONSTANTS)(unsafe.Pointer(&p.union))
}

func (p *ROOT_PARAMETER) Descriptor() *ROOT_DESCRIPTOR {
	return (*ROOT_DESCRIPTOR)(unsafe.Pointer(&p.union))
}

type STATIC_SAMPLER_DESC struct {
	Filter           FILTER
	AddressU         TEXTURE_ADDRESS_MODE
	AddressV         TEXTURE_ADDRESS_MODE
	AddressW         TEXTURE_ADDRESS_MODE
	MipLODBias       float32
	MaxAnisotropy    uint32
	ComparisonFunc   COMPARISON_FUNC
	BorderColor      STATIC_BORDER_COLOR
	MinLOD           float32
	MaxLOD           float32
	ShaderRegister   uint32
	RegisterSpace    uint32
	ShaderVisibility SHADER_VISIBILITY
}

type ROOT_SIGNATURE_DESC struct {
	NumParameters     uint32
	PParameters       *ROOT_PARAMETER
	NumStaticSamplers uint32
	PStaticSamplers   *STATIC_SAMPLER_DESC
	Flags             ROOT_SIGNATURE_FLAGS
}

type DESCRIPTOR_RANGE1 struct {
	RangeType                         DESCRIPTOR_RANGE_TYPE
	NumDescriptors                    uint32
	BaseShaderRegister                uint32
	RegisterSpace                     uint32
	Flags                             DESCRIPTOR_RANGE_FLAGS
	OffsetInDescriptorsFromTableStart uint32
}

type ROOT_DESCRIPTOR_TABLE1 struct {
	NumDescriptorRanges uint32
	PDescriptorRanges   *DESCRIPTOR_RANGE1
}

type ROOT_DESCRIPTOR1 struct {
	ShaderRegister uint32
	RegisterSpace  uint32
	Flags          ROOT_DESCRIPTOR_FLAGS
}

type ROOT_PARAMETER1 struct {
	ParameterType    ROOT_PARAMETER_TYPE
	union            [2]uint64
	ShaderVisibility SHADER_VISIBILITY
}

func (p *ROOT_PARAMETER1) DescriptorTable() *ROOT_DESCRIPTOR_TABLE1 {
	return (*ROOT_DESCRIPTOR_TABLE1)(unsafe.Pointer(&p.union))
}

func (p *ROOT_PARAMETER1) Constants() *ROOT_CONSTANTS {
	return (*ROOT_CONSTANTS)(unsafe.Pointer(&p.union))
}

func (p *ROOT_PARAMETER1) Descriptor() *ROOT_DESCRIPTOR1 {
	return (*ROOT_DESCRIPTOR1)(unsafe.Pointer(&p.union))
}

type ROOT_SIGNATURE_DESC1 struct {
	NumParameters     uint32
	PParameters       *ROOT_PARAMETER1
	NumStaticSamplers uint32
	PStaticSamplers   *STATIC_SAMPLER_DESC
	Flags             ROOT_SIGNATURE_FLAGS
}

type VERSIONED_ROOT_SIGNATURE_DESC struct {
	Version ROOT_SIGNATURE_VERSION
	union   [5]uint64
}

func (d *VERSIONED_ROOT_SIGNATURE_DESC) Desc_1_0() *ROOT_SIGNATURE_DESC {
	return (*ROOT_SIGNATURE_DESC)(unsafe.Pointer(&d.union))
}

func (d *VERSIONED_ROOT_SIGNATURE_DESC) Desc_1_1() *ROOT_SIGNATURE_DESC1 {
	return (*ROOT_SIGNATURE_DESC1)(unsafe.Pointer(&d.union))
}

type CPU_DESCRIPTOR_HANDLE struct {
	Ptr uintptr
}

type GPU_DESCRIPTOR_HANDLE struct {
	Ptr uint64
}

type DISCARD_REGION struct {
	NumRects         uint32
	PRects           *RECT
	FirstSubresource uint32
	NumSubresources  uint32
}

type QUERY_HEAP_DESC struct {
	Type     QUERY_HEAP_TYPE
	Count    uint32
	NodeMask uint32
}

type QUERY_DATA_PIPELINE_STATISTICS struct {
	IAVertices    uint64
	IAPrimitives  uint64
	VSInvocations uint64
	GSInvocations uint64
	GSPrimitives  uint64
	CInvocations  uint64
	CPrimitives   uint64
	PSInvocations uint64
	HSInvocations uint64
	DSInvocations uint64
	CSInvocations uint64
}

type QUERY_DATA_SO_STATISTICS struct {
	NumPrimitivesWritten    uint64
	PrimitivesStorageNeeded uint64
}

type STREAM_OUTPUT_BUFFER_VIEW struct {
	BufferLocation           uint64
	SizeInBytes              uint64
	BufferFilledSizeLocation uint64
}

type DRAW_ARGUMENTS struct {
	VertexCountPerInstance uint32
	InstanceCount          uint32
	StartVertexLocation    uint32
	StartInstanceLocation  uint32
}

type DRAW_INDEXED_ARGUMENTS struct {
	IndexCountPerInstance uint32
	InstanceCount         uint32
	StartIndexLocation    uint32
	BaseVertexLocation    int32
	StartInstanceLocation uint32
}

type DISPATCH_ARGUMENTS struct {
	ThreadGroupCountX uint32
	ThreadGroupCountY uint32
	ThreadGroupCountZ uint32
}

type VERTEX_BUFFER_VIEW struct {
	BufferLocation uint64
	SizeInBytes    uint32
	StrideInBytes  uint32
}

type INDEX_BUFFER_VIEW struct {
	BufferLocation uint64
	SizeInBytes    uint32
	Format         dxgi.FORMAT
}

type INDIRECT_ARGUMENT_VERTEX_BUFFER struct {
	Slot uint32
}

type INDIRECT_ARGUMENT_CONSTANT struct {
	RootParameterIndex      uint32
	DestOffsetIn32BitValues uint32
	Num32BitValuesToSet     uint32
}

type INDIRECT_ARGUMENT_ROOT_PARAMETER struct {
	RootParameterIndex uint32
}

type INDIRECT_ARGUMENT_DESC struct {
	Type  INDIRECT_ARGUMENT_TYPE
	union [3]uint32
}

func (d *INDIRECT_ARGUMENT_DESC) VertexBuffer() *INDIRECT_ARGUMENT_VERTEX_BUFFER {
	return (*INDIRECT_ARGUMENT_VERTEX_BUFFER)(unsafe.Pointer(&d.union))
}

func (d *INDIRECT_ARGUMENT_DESC) Constant() *INDIRECT_ARGUMENT_CONSTANT {
	return (*INDIRECT_ARGUMENT_CONSTANT)(unsafe.Pointer(&d.union))
}

func (d *INDIRECT_ARGUMENT_DESC) ConstantBufferView() *INDIRECT_ARGUMENT_ROOT_PARAMETER {
	return (*INDIRECT_ARGUMENT_ROOT_PARAMETER)(unsafe.Pointer(&d.union))
}

func (d *INDIRECT_ARGUMENT_DESC) ShaderResourceView() *INDIRECT_ARGUMENT_ROOT_PARAMETER {
	return (*INDIRECT_ARGUMENT_ROOT_PARAMETER)(unsafe.Pointer(&d.union))
}

func (d *INDIRECT_ARGUMENT_DESC) UnorderedAccessView() *INDIRECT_ARGUMENT_ROOT_PARAMETER {
	return (*INDIRECT_ARGUMENT_ROOT_PARAMETER)(unsafe.Pointer(&d.union))
}

type COMMAND_SIGNATURE_DESC struct {
	ByteStride       uint32
	NumArgumentDescs uint32
	PArgumentDescs   *INDIRECT_ARGUMENT_DESC
	NodeMask         uint32
}

type WRITEBUFFERIMMEDIATE_PARAMETER struct {
	Dest  uint64
	Value uint32
}

// SUBRESOURCE_DATA describes CPU side texel data, pitches are signed.
type SUBRESOURCE_DATA struct {
	PData      unsafe.Pointer
	RowPitch   int
	SlicePitch int
}

type MEMCPY_DEST struct {
	PData      unsafe.Pointer
	RowPitch   uintptr
	SlicePitch uintptr
}

type MESSAGE struct {
	Category              MESSAGE_CATEGORY
	Severity              MESSAGE_SEVERITY
	ID                    MESSAGE_ID
	PDescription          *byte
	DescriptionByteLength uintptr
}

type INFO_QUEUE_FILTER_DESC struct {
	NumCategories uint32
	PCategoryList *MESSAGE_CATEGORY
	NumSeverities uint32
	PSeverityList *MESSAGE_SEVERITY
	NumIDs        uint32
	PIDList       *MESSAGE_ID
}

type INFO_QUEUE_FILTER struct {
	AllowList INFO_QUEUE_FILTER_DESC
	DenyList  INFO_QUEUE_FILTER_DESC
}
