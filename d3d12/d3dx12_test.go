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
	"testing"
	"unsafe"

	"goarrg.com/gmath"
	"goarrg.com/rhi/dxr/com"
	"goarrg.com/rhi/dxr/dxgi"
)

func TestHeapProperties(t *testing.T) {
	for _, tc := range []struct {
		t          HEAP_TYPE
		accessible bool
	}{
		{HEAP_TYPE_DEFAULT, false},
		{HEAP_TYPE_UPLOAD, true},
		{HEAP_TYPE_READBACK, true},
	} {
		p := HeapPropertiesOf(tc.t)
		if p.Type != tc.t || p.CreationNodeMask != 1 || p.VisibleNodeMask != 1 {
			t.Errorf("HeapPropertiesOf(%s) = %+v", tc.t, p)
		}
		if p.IsCPUAccessible() != tc.accessible {
			t.Errorf("%s IsCPUAccessible() = %v", tc.t, p.IsCPUAccessible())
		}
	}

	custom := CustomHeapProperties(CPU_PAGE_PROPERTY_WRITE_BACK, MEMORY_POOL_L0)
	if custom.Type != HEAP_TYPE_CUSTOM || !custom.IsCPUAccessible() {
		t.Errorf("custom write back heap = %+v", custom)
	}
	if CustomHeapProperties(CPU_PAGE_PROPERTY_NOT_AVAILABLE, MEMORY_POOL_L1).IsCPUAccessible() {
		t.Error("NOT_AVAILABLE heap is CPU accessible")
	}
}

func TestResourceDesc(t *testing.T) {
	buffer := ResourceDescBuffer(1024, RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS)
	if buffer.Dimension != RESOURCE_DIMENSION_BUFFER || buffer.Width != 1024 || buffer.Height != 1 ||
		buffer.Layout != TEXTURE_LAYOUT_ROW_MAJOR || buffer.SampleDesc.Count != 1 || buffer.Format != dxgi.FORMAT_UNKNOWN {
		t.Errorf("buffer desc = %+v", buffer)
	}
	if buffer.Subresources(1) != 1 {
		t.Errorf("buffer has %d subresources", buffer.Subresources(1))
	}

	tex2D := ResourceDescTex2D(dxgi.FORMAT_R8G8B8A8_UNORM, 256, 128, 6, 9, dxgi.SAMPLE_DESC{}, RESOURCE_FLAG_NONE)
	if tex2D.SampleDesc.Count != 1 {
		t.Errorf("zero sample count not defaulted: %+v", tex2D.SampleDesc)
	}
	if tex2D.ArraySize() != 6 || tex2D.Depth() != 1 {
		t.Errorf("tex2D ArraySize() = %d, Depth() = %d", tex2D.ArraySize(), tex2D.Depth())
	}
	if tex2D.Subresources(1) != 54 {
		t.Errorf("tex2D Subresources(1) = %d", tex2D.Subresources(1))
	}
	if got := tex2D.CalcSubresource(2, 3, 0); got != CalcSubresource(2, 3, 0, 9, 6) {
		t.Errorf("CalcSubresource = %d", got)
	}

	depth := ResourceDescTex2D(dxgi.FORMAT_D24_UNORM_S8_UINT, 64, 64, 1, 1, dxgi.SAMPLE_DESC{Count: 4}, RESOURCE_FLAG_ALLOW_DEPTH_STENCIL)
	if depth.Subresources(2) != 2 || depth.SampleDesc.Count != 4 {
		t.Errorf("depth Subresources(2) = %d, samples %d", depth.Subresources(2), depth.SampleDesc.Count)
	}

	tex3D := ResourceDescTex3D(dxgi.FORMAT_R16_FLOAT, 32, 32, 16, 1, RESOURCE_FLAG_NONE)
	if tex3D.ArraySize() != 1 || tex3D.Depth() != 16 || tex3D.Subresources(1) != 1 {
		t.Errorf("tex3D ArraySize() = %d, Depth() = %d", tex3D.ArraySize(), tex3D.Depth())
	}

	tex1D := ResourceDescTex1D(dxgi.FORMAT_R32_FLOAT, 512, 4, 0, RESOURCE_FLAG_NONE)
	if tex1D.Dimension != RESOURCE_DIMENSION_TEXTURE1D || tex1D.Height != 1 || tex1D.ArraySize() != 4 {
		t.Errorf("tex1D desc = %+v", tex1D)
	}
}

func TestBarriers(t *testing.T) {
	var a, b Resource

	transition := TransitionBarrier(&a, RESOURCE_STATE_COPY_DEST, RESOURCE_STATE_PIXEL_SHADER_RESOURCE, 3, RESOURCE_BARRIER_FLAG_NONE)
	if transition.Type != RESOURCE_BARRIER_TYPE_TRANSITION {
		t.Errorf("Type = %d", transition.Type)
	}
	if tr := transition.Transition(); tr.PResource != &a || tr.Subresource != 3 ||
		tr.StateBefore != RESOURCE_STATE_COPY_DEST || tr.StateAfter != RESOURCE_STATE_PIXEL_SHADER_RESOURCE {
		t.Errorf("Transition() = %+v", tr)
	}

	aliasing := AliasingBarrier(nil, &b)
	if al := aliasing.Aliasing(); aliasing.Type != RESOURCE_BARRIER_TYPE_ALIASING || al.PResourceBefore != nil || al.PResourceAfter != &b {
		t.Errorf("Aliasing() = %+v", al)
	}

	uav := UAVBarrier(&a)
	if uav.Type != RESOURCE_BARRIER_TYPE_UAV || uav.UAV().PResource != &a {
		t.Errorf("UAV() = %+v", uav.UAV())
	}
}

func TestTextureCopyLocation(t *testing.T) {
	var r Resource

	sub := TextureCopyLocationSubresource(&r, 7)
	if sub.Type != TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX || *sub.SubresourceIndex() != 7 || sub.PResource != &r {
		t.Errorf("subresource location = %+v", sub)
	}

	footprint := PLACED_SUBRESOURCE_FOOTPRINT{
		Offset: 512,
		Footprint: SUBRESOURCE_FOOTPRINT{
			Format: dxgi.FORMAT_R8G8B8A8_UNORM, Width: 16, Height: 16, Depth: 1, RowPitch: 256,
		},
	}
	placed := TextureCopyLocationFootprint(&r, footprint)
	if placed.Type != TEXTURE_COPY_TYPE_PLACED_FOOTPRINT || *placed.PlacedFootprint() != footprint {
		t.Errorf("placed location = %+v", placed.PlacedFootprint())
	}
}

func TestDescriptorHandleOffset(t *testing.T) {
	cpu := CPU_DESCRIPTOR_HANDLE{Ptr: 0x1000}
	if got := cpu.Offset(3, 32); got.Ptr != 0x1060 {
		t.Errorf("CPU Offset(3, 32) = 0x%X", got.Ptr)
	}
	if got := cpu.Offset(-2, 32); got.Ptr != 0xFC0 {
		t.Errorf("CPU Offset(-2, 32) = 0x%X", got.Ptr)
	}
	gpu := GPU_DESCRIPTOR_HANDLE{Ptr: 0x10_0000_0000}
	if got := gpu.Offset(4, 64); got.Ptr != 0x10_0000_0100 {
		t.Errorf("GPU Offset(4, 64) = 0x%X", got.Ptr)
	}
}

func TestDefaultStates(t *testing.T) {
	r := DefaultRasterizerDesc()
	if r.FillMode != FILL_MODE_SOLID || r.CullMode != CULL_MODE_BACK || r.DepthClipEnable != com.TRUE ||
		r.FrontCounterClockwise != com.FALSE || r.ConservativeRaster != CONSERVATIVE_RASTERIZATION_MODE_OFF {
		t.Errorf("rasterizer = %+v", r)
	}

	b := DefaultBlendDesc()
	for i, rt := range b.RenderTarget {
		if rt.BlendEnable != com.FALSE || rt.SrcBlend != BLEND_ONE || rt.DestBlend != BLEND_ZERO ||
			rt.BlendOp != BLEND_OP_ADD || rt.LogicOp != LOGIC_OP_NOOP || rt.RenderTargetWriteMask != 0xF {
			t.Errorf("render target %d = %+v", i, rt)
		}
	}

	d := DefaultDepthStencilDesc()
	if d.DepthEnable != com.TRUE || d.DepthWriteMask != DEPTH_WRITE_MASK_ALL || d.DepthFunc != COMPARISON_FUNC_LESS ||
		d.StencilEnable != com.FALSE || d.StencilReadMask != 0xFF || d.StencilWriteMask != 0xFF {
		t.Errorf("depth stencil = %+v", d)
	}
	if d.FrontFace != d.BackFace || d.FrontFace.StencilFunc != COMPARISON_FUNC_ALWAYS || d.FrontFace.StencilPassOp != STENCIL_OP_KEEP {
		t.Errorf("stencil faces = %+v, %+v", d.FrontFace, d.BackFace)
	}
}

func TestRootSignatureHelpers(t *testing.T) {
	ranges := []DESCRIPTOR_RANGE{
		DescriptorRange(DESCRIPTOR_RANGE_TYPE_SRV, 4, 0, 0, 0),
		DescriptorRange(DESCRIPTOR_RANGE_TYPE_UAV, 1, 0, 0, DESCRIPTOR_RANGE_OFFSET_APPEND),
	}
	params := []ROOT_PARAMETER{
		RootParameterDescriptorTable(ranges, SHADER_VISIBILITY_PIXEL),
		RootParameterConstants(4, 1, 0, SHADER_VISIBILITY_ALL),
		RootParameterCBV(2, 1, SHADER_VISIBILITY_VERTEX),
		RootParameterSRV(3, 0, SHADER_VISIBILITY_ALL),
		RootParameterUAV(4, 0, SHADER_VISIBILITY_ALL),
	}

	table := params[0].DescriptorTable()
	if params[0].ParameterType != ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE || table.NumDescriptorRanges != 2 ||
		table.PDescriptorRanges != &ranges[0] || params[0].ShaderVisibility != SHADER_VISIBILITY_PIXEL {
		t.Errorf("table parameter = %+v", table)
	}
	if c := params[1].Constants(); params[1].ParameterType != ROOT_PARAMETER_TYPE_32BIT_CONSTANTS ||
		c.Num32BitValues != 4 || c.ShaderRegister != 1 {
		t.Errorf("constants parameter = %+v", c)
	}
	for i, want := range []ROOT_PARAMETER_TYPE{ROOT_PARAMETER_TYPE_CBV, ROOT_PARAMETER_TYPE_SRV, ROOT_PARAMETER_TYPE_UAV} {
		p := params[2+i]
		if p.ParameterType != want || p.Descriptor().ShaderRegister != uint32(2+i) {
			t.Errorf("descriptor parameter %d = %d %+v", i, p.ParameterType, p.Descriptor())
		}
	}
	if params[2].Descriptor().RegisterSpace != 1 {
		t.Errorf("CBV register space = %d", params[2].Descriptor().RegisterSpace)
	}

	sampler := StaticSamplerDesc(0, FILTER_ANISOTROPIC, TEXTURE_ADDRESS_MODE_CLAMP)
	if sampler.MaxAnisotropy != 16 || sampler.MaxLOD != FLOAT32_MAX || sampler.AddressW != TEXTURE_ADDRESS_MODE_CLAMP ||
		sampler.ComparisonFunc != COMPARISON_FUNC_LESS_EQUAL || sampler.BorderColor != STATIC_BORDER_COLOR_OPAQUE_WHITE {
		t.Errorf("static sampler = %+v", sampler)
	}

	samplers := []STATIC_SAMPLER_DESC{sampler}
	desc := RootSignatureDesc(params, samplers, ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT)
	if desc.NumParameters != 5 || desc.PParameters != &params[0] || desc.NumStaticSamplers != 1 || desc.PStaticSamplers != &samplers[0] {
		t.Errorf("root signature desc = %+v", desc)
	}
	if empty := RootSignatureDesc(nil, nil, 0); empty.PParameters != nil || empty.NumParameters != 0 {
		t.Errorf("empty root signature desc = %+v", empty)
	}

	v0 := VersionedRootSignatureDesc(desc)
	if v0.Version != ROOT_SIGNATURE_VERSION_1_0 || *v0.Desc_1_0() != desc {
		t.Errorf("versioned 1.0 desc = %+v", v0.Desc_1_0())
	}

	ranges1 := []DESCRIPTOR_RANGE1{DescriptorRange1(DESCRIPTOR_RANGE_TYPE_CBV, 1, 0, 0, DESCRIPTOR_RANGE_FLAG_DATA_STATIC, 0)}
	params1 := []ROOT_PARAMETER1{
		RootParameter1DescriptorTable(ranges1, SHADER_VISIBILITY_ALL),
		RootParameter1Constants(2, 0, 1, SHADER_VISIBILITY_ALL),
		RootParameter1Descriptor(ROOT_PARAMETER_TYPE_SRV, 5, 0, ROOT_DESCRIPTOR_FLAG_DATA_VOLATILE, SHADER_VISIBILITY_ALL),
	}
	v1 := VersionedRootSignatureDesc1(params1, nil, ROOT_SIGNATURE_FLAG_NONE)
	if v1.Version != ROOT_SIGNATURE_VERSION_1_1 || v1.Desc_1_1().NumParameters != 3 || v1.Desc_1_1().PParameters != &params1[0] {
		t.Errorf("versioned 1.1 desc = %+v", v1.Desc_1_1())
	}
	if d := params1[2].Descriptor(); d.Flags != ROOT_DESCRIPTOR_FLAG_DATA_VOLATILE || d.ShaderRegister != 5 {
		t.Errorf("root descriptor1 = %+v", d)
	}
	if params1[0].DescriptorTable().PDescriptorRanges.Flags != DESCRIPTOR_RANGE_FLAG_DATA_STATIC {
		t.Errorf("range1 flags = %d", params1[0].DescriptorTable().PDescriptorRanges.Flags)
	}
}

func TestRectHelpers(t *testing.T) {
	r := gmath.Recti32{X: 10, Y: 20, W: 300, H: 200}

	v := ViewportOf(r)
	if v != (VIEWPORT{TopLeftX: 10, TopLeftY: 20, Width: 300, Height: 200, MinDepth: 0, MaxDepth: 1}) {
		t.Errorf("ViewportOf = %+v", v)
	}
	if rect := RectOf(r); rect != (RECT{Left: 10, Top: 20, Right: 310, Bottom: 220}) {
		t.Errorf("RectOf = %+v", rect)
	}
	if box := BoxOf(1, 2, 0, 5, 6, 1); box.Right != 5 || box.Back != 1 {
		t.Errorf("BoxOf = %+v", box)
	}
	if rng := RangeOf(16, 64); rng.Begin != 16 || rng.End != 64 {
		t.Errorf("RangeOf = %+v", rng)
	}
}

func TestMappedMemory(t *testing.T) {
	backing := make([]byte, 32)
	m := NewMappedMemory(unsafe.Pointer(&backing[0]), uintptr(len(backing)))
	if m.Size() != 32 {
		t.Fatalf("Size() = %d", m.Size())
	}

	offset := Write(m, 0, uint32(0xAABBCCDD))
	offset = WriteSlice(m, offset, []uint16{1, 2, 3})
	if offset != 10 {
		t.Errorf("offset = %d", offset)
	}
	if backing[0] != 0xDD || backing[4] != 1 || backing[8] != 3 {
		t.Errorf("backing = %v", backing[:10])
	}

	defer func() {
		if recover() == nil {
			t.Error("write past the end did not abort")
		}
	}()
	WriteSlice(m, 30, []uint32{1})
}

func TestSubresourceDataOf(t *testing.T) {
	pixels := make([]uint32, 16*8)
	d := SubresourceDataOf(pixels, 16, 8)
	if d.PData != unsafe.Pointer(&pixels[0]) || d.RowPitch != 64 || d.SlicePitch != 512 {
		t.Errorf("SubresourceDataOf = %+v", d)
	}
}
