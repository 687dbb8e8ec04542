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

	"goarrg.com/gmath"
	"goarrg.com/rhi/dxr/com"
	"goarrg.com/rhi/dxr/dxgi"
)

func HeapPropertiesOf(t HEAP_TYPE) HEAP_PROPERTIES {
	return HEAP_PROPERTIES{
		Type:             t,
		CreationNodeMask: 1,
		VisibleNodeMask:  1,
	}
}

func CustomHeapProperties(cpuPageProperty CPU_PAGE_PROPERTY, memoryPool MEMORY_POOL) HEAP_PROPERTIES {
	return HEAP_PROPERTIES{
		Type:                 HEAP_TYPE_CUSTOM,
		CPUPageProperty:      cpuPageProperty,
		MemoryPoolPreference: memoryPool,
		CreationNodeMask:     1,
		VisibleNodeMask:      1,
	}
}

func (p HEAP_PROPERTIES) IsCPUAccessible() bool {
	return p.Type == HEAP_TYPE_UPLOAD || p.Type == HEAP_TYPE_READBACK ||
		(p.Type == HEAP_TYPE_CUSTOM &&
			(p.CPUPageProperty == CPU_PAGE_PROPERTY_WRITE_COMBINE || p.CPUPageProperty == CPU_PAGE_PROPERTY_WRITE_BACK))
}

func ResourceDescBuffer(width uint64, flags RESOURCE_FLAGS) RESOURCE_DESC {
	return RESOURCE_DESC{
		Dimension:        RESOURCE_DIMENSION_BUFFER,
		Width:            width,
		Height:           1,
		DepthOrArraySize: 1,
		MipLevels:        1,
		Format:           dxgi.FORMAT_UNKNOWN,
		SampleDesc:       dxgi.SAMPLE_DESC{Count: 1},
		Layout:           TEXTURE_LAYOUT_ROW_MAJOR,
		Flags:            flags,
	}
}

// ResourceDescTex1D with mipLevels 0 lets the runtime compute the full chain.
func ResourceDescTex1D(format dxgi.FORMAT, width uint64, arraySize, mipLevels uint16, flags RESOURCE_FLAGS) RESOURCE_DESC {
	return RESOURCE_DESC{
		Dimension:        RESOURCE_DIMENSION_TEXTURE1D,
		Width:            width,
		Height:           1,
		DepthOrArraySize: arraySize,
		MipLevels:        mipLevels,
		Format:           format,
		SampleDesc:       dxgi.SAMPLE_DESC{Count: 1},
		Layout:           TEXTURE_LAYOUT_UNKNOWN,
		Flags:            flags,
	}
}

func ResourceDescTex2D(format dxgi.FORMAT, width uint64, height uint32, arraySize, mipLevels uint16, sample dxgi.SAMPLE_DESC, flags RESOURCE_FLAGS) RESOURCE_DESC {
	if sample.Count == 0 {
		sample.Count = 1
	}
	return RESOURCE_DESC{
		Dimension:        RESOURCE_DIMENSION_TEXTURE2D,
		Width:            width,
		Height:           height,
		DepthOrArraySize: arraySize,
		MipLevels:        mipLevels,
		Format:           format,
		SampleDesc:       sample,
		Layout:           TEXTURE_LAYOUT_UNKNOWN,
		Flags:            flags,
	}
}

func ResourceDescTex3D(format dxgi.FORMAT, width uint64, height uint32, depth, mipLevels uint16, flags RESOURCE_FLAGS) RESOURCE_DESC {
	return RESOURCE_DESC{
		Dimension:        RESOURCE_DIMENSION_TEXTURE3D,
		Width:            width,
		Height:           height,
		DepthOrArraySize: depth,
		MipLevels:        mipLevels,
		Format:           format,
		SampleDesc:       dxgi.SAMPLE_DESC{Count: 1},
		Layout:           TEXTURE_LAYOUT_UNKNOWN,
		Flags:            flags,
	}
}

func (d *RESOURCE_DESC) Depth() uint16 {
	if d.Dimension == RESOURCE_DIMENSION_TEXTURE3D {
		return d.DepthOrArraySize
	}
	return 1
}

func (d *RESOURCE_DESC) ArraySize() uint16 {
	if d.Dimension != RESOURCE_DIMENSION_TEXTURE3D {
		return d.DepthOrArraySize
	}
	return 1
}

// Subresources returns the subresource count for a format with planeCount
// planes, see GetFormatPlaneCount.
func (d *RESOURCE_DESC) Subresources(planeCount uint8) uint32 {
	return uint32(d.MipLevels) * uint32(d.ArraySize()) * uint32(planeCount)
}

func (d *RESOURCE_DESC) CalcSubresource(mipSlice, arraySlice, planeSlice uint32) uint32 {
	return CalcSubresource(mipSlice, arraySlice, planeSlice, uint32(d.MipLevels), uint32(d.ArraySize()))
}

func TransitionBarrier(resource *Resource, before, after RESOURCE_STATES, subresource uint32, flags RESOURCE_BARRIER_FLAGS) RESOURCE_BARRIER {
	b := RESOURCE_BARRIER{Type: RESOURCE_BARRIER_TYPE_TRANSITION, Flags: flags}
	*b.Transition() = RESOURCE_TRANSITION_BARRIER{
		PResource:   resource,
		Subresource: subresource,
		StateBefore: before,
		StateAfter:  after,
	}
	return b
}

// AliasingBarrier accepts nil for either resource.
func AliasingBarrier(before, after *Resource) RESOURCE_BARRIER {
	b := RESOURCE_BARRIER{Type: RESOURCE_BARRIER_TYPE_ALIASING}
	*b.Aliasing() = RESOURCE_ALIASING_BARRIER{
		PResourceBefore: before,
		PResourceAfter:  after,
	}
	return b
}

func UAVBarrier(resource *Resource) RESOURCE_BARRIER {
	b := RESOURCE_BARRIER{Type: RESOURCE_BARRIER_TYPE_UAV}
	b.UAV().PResource = resource
	return b
}

func TextureCopyLocationSubresource(resource *Resource, subresource uint32) TEXTURE_COPY_LOCATION {
	l := TEXTURE_COPY_LOCATION{PResource: resource, Type: TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX}
	*l.SubresourceIndex() = subresource
	return l
}

func TextureCopyLocationFootprint(resource *Resource, footprint PLACED_SUBRESOURCE_FOOTPRINT) TEXTURE_COPY_LOCATION {
	l := TEXTURE_COPY_LOCATION{PResource: resource, Type: TEXTURE_COPY_TYPE_PLACED_FOOTPRINT}
	*l.PlacedFootprint() = footprint
	return l
}

func (h CPU_DESCRIPTOR_HANDLE) Offset(index int32, incrementSize uint32) CPU_DESCRIPTOR_HANDLE {
	return CPU_DESCRIPTOR_HANDLE{Ptr: uintptr(int64(h.Ptr) + int64(index)*int64(incrementSize))}
}

func (h GPU_DESCRIPTOR_HANDLE) Offset(index int32, incrementSize uint32) GPU_DESCRIPTOR_HANDLE {
	return GPU_DESCRIPTOR_HANDLE{Ptr: uint64(int64(h.Ptr) + int64(index)*int64(incrementSize))}
}

func DefaultRasterizerDesc() RASTERIZER_DESC {
	return RASTERIZER_DESC{
		FillMode:             FILL_MODE_SOLID,
		CullMode:             CULL_MODE_BACK,
		DepthBias:            DEFAULT_DEPTH_BIAS,
		DepthBiasClamp:       DEFAULT_DEPTH_BIAS_CLAMP,
		SlopeScaledDepthBias: DEFAULT_SLOPE_SCALED_DEPTH_BIAS,
		DepthClipEnable:      com.TRUE,
		ConservativeRaster:   CONSERVATIVE_RASTERIZATION_MODE_OFF,
	}
}

func DefaultBlendDesc() BLEND_DESC {
	desc := BLEND_DESC{}
	for i := range desc.RenderTarget {
		desc.RenderTarget[i] = RENDER_TARGET_BLEND_DESC{
			SrcBlend:              BLEND_ONE,
			DestBlend:             BLEND_ZERO,
			BlendOp:               BLEND_OP_ADD,
			SrcBlendAlpha:         BLEND_ONE,
			DestBlendAlpha:        BLEND_ZERO,
			BlendOpAlpha:          BLEND_OP_ADD,
			LogicOp:               LOGIC_OP_NOOP,
			RenderTargetWriteMask: uint8(COLOR_WRITE_ENABLE_ALL),
		}
	}
	return desc
}

func DefaultDepthStencilDesc() DEPTH_STENCIL_DESC {
	op := DEPTH_STENCILOP_DESC{
		StencilFailOp:      STENCIL_OP_KEEP,
		StencilDepthFailOp: STENCIL_OP_KEEP,
		StencilPassOp:      STENCIL_OP_KEEP,
		StencilFunc:        COMPARISON_FUNC_ALWAYS,
	}
	return DEPTH_STENCIL_DESC{
		DepthEnable:      com.TRUE,
		DepthWriteMask:   DEPTH_WRITE_MASK_ALL,
		DepthFunc:        COMPARISON_FUNC_LESS,
		StencilReadMask:  DEFAULT_STENCIL_READ_MASK,
		StencilWriteMask: DEFAULT_STENCIL_WRITE_MASK,
		FrontFace:        op,
		BackFace:         op,
	}
}

func DescriptorRange(rangeType DESCRIPTOR_RANGE_TYPE, numDescriptors, baseShaderRegister, registerSpace, offsetInDescriptorsFromTableStart uint32) DESCRIPTOR_RANGE {
	return DESCRIPTOR_RANGE{
		RangeType:                         rangeType,
		NumDescriptors:                    numDescriptors,
		BaseShaderRegister:                baseShaderRegister,
		RegisterSpace:                     registerSpace,
		OffsetInDescriptorsFromTableStart: offsetInDescriptorsFromTableStart,
	}
}

func DescriptorRange1(rangeType DESCRIPTOR_RANGE_TYPE, numDescriptors, baseShaderRegister, registerSpace uint32, flags DESCRIPTOR_RANGE_FLAGS, offsetInDescriptorsFromTableStart uint32) DESCRIPTOR_RANGE1 {
	return DESCRIPTOR_RANGE1{
		RangeType:                         rangeType,
		NumDescriptors:                    numDescriptors,
		BaseShaderRegister:                baseShaderRegister,
		RegisterSpace:                     registerSpace,
		Flags:                             flags,
		OffsetInDescriptorsFromTableStart: offsetInDescriptorsFromTableStart,
	}
}

// RootParameterDescriptorTable points into ranges, which must stay alive
// until the root signature is serialized.
func RootParameterDescriptorTable(ranges []DESCRIPTOR_RANGE, visibility SHADER_VISIBILITY) ROOT_PARAMETER {
	p := ROOT_PARAMETER{ParameterType: ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE, ShaderVisibility: visibility}
	*p.DescriptorTable() = ROOT_DESCRIPTOR_TABLE{
		NumDescriptorRanges: uint32(len(ranges)),
		PDescriptorRanges:   unsafe.SliceData(ranges),
	}
	return p
}

func RootParameterConstants(num32BitValues, shaderRegister, registerSpace uint32, visibility SHADER_VISIBILITY) ROOT_PARAMETER {
	p := ROOT_PARAMETER{ParameterType: ROOT_PARAMETER_TYPE_32BIT_CONSTANTS, ShaderVisibility: visibility}
	*p.Constants() = ROOT_CONSTANTS{
		ShaderRegister: shaderRegister,
		RegisterSpace:  registerSpace,
		Num32BitValues: num32BitValues,
	}
	return p
}

func rootParameterDescriptor(t ROOT_PARAMETER_TYPE, shaderRegister, registerSpace uint32, visibility SHADER_VISIBILITY) ROOT_PARAMETER {
	p := ROOT_PARAMETER{ParameterType: t, ShaderVisibility: visibility}
	*p.Descriptor() = ROOT_DESCRIPTOR{
		ShaderRegister: shaderRegister,
		RegisterSpace:  registerSpace,
	}
	return p
}

func RootParameterCBV(shaderRegister, registerSpace uint32, visibility SHADER_VISIBILITY) ROOT_PARAMETER {
	return rootParameterDescriptor(ROOT_PARAMETER_TYPE_CBV, shaderRegister, registerSpace, visibility)
}

func RootParameterSRV(shaderRegister, registerSpace uint32, visibility SHADER_VISIBILITY) ROOT_PARAMETER {
	return rootParameterDescriptor(ROOT_PARAMETER_TYPE_SRV, shaderRegister, registerSpace, visibility)
}

func RootParameterUAV(shaderRegister, registerSpace uint32, visibility SHADER_VISIBILITY) ROOT_PARAMETER {
	return rootParameterDescriptor(ROOT_PARAMETER_TYPE_UAV, shaderRegister, registerSpace, visibility)
}

func RootParameter1DescriptorTable(ranges []DESCRIPTOR_RANGE1, visibility SHADER_VISIBILITY) ROOT_PARAMETER1 {
	p := ROOT_PARAMETER1{ParameterType: ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE, ShaderVisibility: visibility}
	*p.DescriptorTable() = ROOT_DESCRIPTOR_TABLE1{
		NumDescriptorRanges: uint32(len(ranges)),
		PDescriptorRanges:   unsafe.SliceData(ranges),
	}
	return p
}

func RootParameter1Constants(num32BitValues, shaderRegister, registerSpace uint32, visibility SHADER_VISIBILITY) ROOT_PARAMETER1 {
	p := ROOT_PARAMETER1{ParameterType: ROOT_PARAMETER_TYPE_32BIT_CONSTANTS, ShaderVisibility: visibility}
	*p.Constants() = ROOT_CONSTANTS{
		ShaderRegister: shaderRegister,
		RegisterSpace:  registerSpace,
		Num32BitValues: num32BitValues,
	}
	return p
}

// RootParameter1Descriptor builds a CBV, SRV or UAV root descriptor.
func RootParameter1Descriptor(t ROOT_PARAMETER_TYPE, shaderRegister, registerSpace uint32, flags ROOT_DESCRIPTOR_FLAGS, visibility SHADER_VISIBILITY) ROOT_PARAMETER1 {
	p := ROOT_PARAMETER1{ParameterType: t, ShaderVisibility: visibility}
	*p.Descriptor() = ROOT_DESCRIPTOR1{
		ShaderRegister: shaderRegister,
		RegisterSpace:  registerSpace,
		Flags:          flags,
	}
	return p
}

// StaticSamplerDesc fills the remaining fields with the d3dx12 defaults.
func StaticSamplerDesc(shaderRegister uint32, filter FILTER, address TEXTURE_ADDRESS_MODE) STATIC_SAMPLER_DESC {
	return STATIC_SAMPLER_DESC{
		Filter:           filter,
		AddressU:         address,
		AddressV:         address,
		AddressW:         address,
		MaxAnisotropy:    DEFAULT_MAX_ANISOTROPY,
		ComparisonFunc:   COMPARISON_FUNC_LESS_EQUAL,
		BorderColor:      STATIC_BORDER_COLOR_OPAQUE_WHITE,
		MaxLOD:           FLOAT32_MAX,
		ShaderRegister:   shaderRegister,
		ShaderVisibility: SHADER_VISIBILITY_ALL,
	}
}

func RootSignatureDesc(parameters []ROOT_PARAMETER, staticSamplers []STATIC_SAMPLER_DESC, flags ROOT_SIGNATURE_FLAGS) ROOT_SIGNATURE_DESC {
	return ROOT_SIGNATURE_DESC{
		NumParameters:     uint32(len(parameters)),
		PParameters:       unsafe.SliceData(parameters),
		NumStaticSamplers: uint32(len(staticSamplers)),
		PStaticSamplers:   unsafe.SliceData(staticSamplers),
		Flags:             flags,
	}
}

func VersionedRootSignatureDesc(desc ROOT_SIGNATURE_DESC) VERSIONED_ROOT_SIGNATURE_DESC {
	v := VERSIONED_ROOT_SIGNATURE_DESC{Version: ROOT_SIGNATURE_VERSION_1_0}
	*v.Desc_1_0() = desc
	return v
}

func VersionedRootSignatureDesc1(parameters []ROOT_PARAMETER1, staticSamplers []STATIC_SAMPLER_DESC, flags ROOT_SIGNATURE_FLAGS) VERSIONED_ROOT_SIGNATURE_DESC {
	v := VERSIONED_ROOT_SIGNATURE_DESC{Version: ROOT_SIGNATURE_VERSION_1_1}
	*v.Desc_1_1() = ROOT_SIGNATURE_DESC1{
		NumParameters:     uint32(len(parameters)),
		PParameters:       unsafe.SliceData(parameters),
		NumStaticSamplers: uint32(len(staticSamplers)),
		PStaticSamplers:   unsafe.SliceData(staticSamplers),
		Flags:             flags,
	}
	return v
}

func BoxOf(left, top, front, right, bottom, back uint32) BOX {
	return BOX{Left: left, Top: top, Front: front, Right: right, Bottom: bottom, Back: back}
}

func RangeOf(begin, end uintptr) RANGE {
	return RANGE{Begin: begin, End: end}
}

// ViewportOf covers r with the full [0, 1] depth range.
func ViewportOf(r gmath.Recti32) VIEWPORT {
	return VIEWPORT{
		TopLeftX: float32(r.X),
		TopLeftY: float32(r.Y),
		Width:    float32(r.W),
		Height:   float32(r.H),
		MinDepth: 0,
		MaxDepth: 1,
	}
}

func RectOf(r gmath.Recti32) RECT {
	return RECT{Left: r.X, Top: r.Y, Right: r.X + r.W, Bottom: r.Y + r.H}
}
