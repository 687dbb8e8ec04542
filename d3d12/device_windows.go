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
	"golang.org/x/sys/windows"
)

func (i *Device) GetNodeCount() uint32 {
	return uint32(com.CallRaw(i.vtbl().GetNodeCount, uintptr(unsafe.Pointer(i))))
}

func (i *Device) CreateCommandQueue(desc *COMMAND_QUEUE_DESC) (*CommandQueue, error) {
	var queue *CommandQueue
	err := com.Check("ID3D12Device::CreateCommandQueue", com.Call(i.vtbl().CreateCommandQueue,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12CommandQueue)),
		uintptr(unsafe.Pointer(&queue)),
	))
	return queue, err
}

func (i *Device) CreateCommandAllocator(listType COMMAND_LIST_TYPE) (*CommandAllocator, error) {
	var allocator *CommandAllocator
	err := com.Check("ID3D12Device::CreateCommandAllocator", com.Call(i.vtbl().CreateCommandAllocator,
		uintptr(unsafe.Pointer(i)),
		uintptr(listType),
		uintptr(unsafe.Pointer(&IID_ID3D12CommandAllocator)),
		uintptr(unsafe.Pointer(&allocator)),
	))
	return allocator, err
}

func (i *Device) CreateGraphicsPipelineState(desc *GRAPHICS_PIPELINE_STATE_DESC) (*PipelineState, error) {
	var state *PipelineState
	err := com.Check("ID3D12Device::CreateGraphicsPipelineState", com.Call(i.vtbl().CreateGraphicsPipelineState,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12PipelineState)),
		uintptr(unsafe.Pointer(&state)),
	))
	return state, err
}

func (i *Device) CreateComputePipelineState(desc *COMPUTE_PIPELINE_STATE_DESC) (*PipelineState, error) {
	var state *PipelineState
	err := com.Check("ID3D12Device::CreateComputePipelineState", com.Call(i.vtbl().CreateComputePipelineState,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12PipelineState)),
		uintptr(unsafe.Pointer(&state)),
	))
	return state, err
}

func (i *Device) CreateCommandList(nodeMask uint32, listType COMMAND_LIST_TYPE, allocator *CommandAllocator, initialState *PipelineState) (*GraphicsCommandList, error) {
	var list *GraphicsCommandList
	err := com.Check("ID3D12Device::CreateCommandList", com.Call(i.vtbl().CreateCommandList,
		uintptr(unsafe.Pointer(i)),
		uintptr(nodeMask),
		uintptr(listType),
		uintptr(unsafe.Pointer(allocator)),
		uintptr(unsafe.Pointer(initialState)),
		uintptr(unsafe.Pointer(&IID_ID3D12GraphicsCommandList)),
		uintptr(unsafe.Pointer(&list)),
	))
	return list, err
}

func (i *Device) CheckFeatureSupport(feature FEATURE, data unsafe.Pointer, dataSize uint32) error {
	return com.Check("ID3D12Device::CheckFeatureSupport", com.Call(i.vtbl().CheckFeatureSupport,
		uintptr(unsafe.Pointer(i)),
		uintptr(feature),
		uintptr(data),
		uintptr(dataSize),
	))
}

// CheckFeature fills data, which must be the FEATURE_DATA struct matching feature.
func CheckFeature[T any](device *Device, feature FEATURE, data *T) error {
	return device.CheckFeatureSupport(feature, unsafe.Pointer(data), uint32(unsafe.Sizeof(*data)))
}

func (i *Device) CreateDescriptorHeap(desc *DESCRIPTOR_HEAP_DESC) (*DescriptorHeap, error) {
	var heap *DescriptorHeap
	err := com.Check("ID3D12Device::CreateDescriptorHeap", com.Call(i.vtbl().CreateDescriptorHeap,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12DescriptorHeap)),
		uintptr(unsafe.Pointer(&heap)),
	))
	return heap, err
}

func (i *Device) GetDescriptorHandleIncrementSize(heapType DESCRIPTOR_HEAP_TYPE) uint32 {
	return uint32(com.CallRaw(i.vtbl().GetDescriptorHandleIncrementSize, uintptr(unsafe.Pointer(i)), uintptr(heapType)))
}

func (i *Device) CreateRootSignature(nodeMask uint32, blob []byte) (*RootSignature, error) {
	var signature *RootSignature
	err := com.Check("ID3D12Device::CreateRootSignature", com.Call(i.vtbl().CreateRootSignature,
		uintptr(unsafe.Pointer(i)),
		uintptr(nodeMask),
		uintptr(unsafe.Pointer(unsafe.SliceData(blob))),
		uintptr(len(blob)),
		uintptr(unsafe.Pointer(&IID_ID3D12RootSignature)),
		uintptr(unsafe.Pointer(&signature)),
	))
	return signature, err
}

func (i *Device) CreateConstantBufferView(desc *CONSTANT_BUFFER_VIEW_DESC, destDescriptor CPU_DESCRIPTOR_HANDLE) {
	com.CallRaw(i.vtbl().CreateConstantBufferView,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)),
		destDescriptor.Ptr,
	)
}

func (i *Device) CreateShaderResourceView(resource *Resource, desc *SHADER_RESOURCE_VIEW_DESC, destDescriptor CPU_DESCRIPTOR_HANDLE) {
	com.CallRaw(i.vtbl().CreateShaderResourceView,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(resource)),
		uintptr(unsafe.Pointer(desc)),
		destDescriptor.Ptr,
	)
}

func (i *Device) CreateUnorderedAccessView(resource, counterResource *Resource, desc *UNORDERED_ACCESS_VIEW_DESC, destDescriptor CPU_DESCRIPTOR_HANDLE) {
	com.CallRaw(i.vtbl().CreateUnorderedAccessView,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(resource)),
		uintptr(unsafe.Pointer(counterResource)),
		uintptr(unsafe.Pointer(desc)),
		destDescriptor.Ptr,
	)
}

func (i *Device) CreateRenderTargetView(resource *Resource, desc *RENDER_TARGET_VIEW_DESC, destDescriptor CPU_DESCRIPTOR_HANDLE) {
	com.CallRaw(i.vtbl().CreateRenderTargetView,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(resource)),
		uintptr(unsafe.Pointer(desc)),
		destDescriptor.Ptr,
	)
}

func (i *Device) CreateDepthStencilView(resource *Resource, desc *DEPTH_STENCIL_VIEW_DESC, destDescriptor CPU_DESCRIPTOR_HANDLE) {
	com.CallRaw(i.vtbl().CreateDepthStencilView,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(resource)),
		uintptr(unsafe.Pointer(desc)),
		destDescriptor.Ptr,
	)
}

func (i *Device) CreateSampler(desc *SAMPLER_DESC, destDescriptor CPU_DESCRIPTOR_HANDLE) {
	com.CallRaw(i.vtbl().CreateSampler,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)),
		destDescriptor.Ptr,
	)
}

// CopyDescriptors takes nil range sizes to mean ranges of one descriptor.
func (i *Device) CopyDescriptors(destRangeStarts []CPU_DESCRIPTOR_HANDLE, destRangeSizes []uint32, srcRangeStarts []CPU_DESCRIPTOR_HANDLE, srcRangeSizes []uint32, heapType DESCRIPTOR_HEAP_TYPE) {
	com.CallRaw(i.vtbl().CopyDescriptors,
		uintptr(unsafe.Pointer(i)),
		uintptr(len(destRangeStarts)),
		uintptr(unsafe.Pointer(unsafe.SliceData(destRangeStarts))),
		uintptr(unsafe.Pointer(unsafe.SliceData(destRangeSizes))),
		uintptr(len(srcRangeStarts)),
		uintptr(unsafe.Pointer(unsafe.SliceData(srcRangeStarts))),
		uintptr(unsafe.Pointer(unsafe.SliceData(srcRangeSizes))),
		uintptr(heapType),
	)
}

func (i *Device) CopyDescriptorsSimple(numDescriptors uint32, destStart, srcStart CPU_DESCRIPTOR_HANDLE, heapType DESCRIPTOR_HEAP_TYPE) {
	com.CallRaw(i.vtbl().CopyDescriptorsSimple,
		uintptr(unsafe.Pointer(i)),
		uintptr(numDescriptors),
		destStart.Ptr,
		srcStart.Ptr,
		uintptr(heapType),
	)
}

func (i *Device) GetResourceAllocationInfo(visibleMask uint32, descs []RESOURCE_DESC) RESOURCE_ALLOCATION_INFO {
	var info RESOURCE_ALLOCATION_INFO
	com.CallRaw(i.vtbl().GetResourceAllocationInfo,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&info)),
		uintptr(visibleMask),
		uintptr(len(descs)),
		uintptr(unsafe.Pointer(unsafe.SliceData(descs))),
	)
	return info
}

func (i *Device) GetCustomHeapProperties(nodeMask uint32, heapType HEAP_TYPE) HEAP_PROPERTIES {
	var props HEAP_PROPERTIES
	com.CallRaw(i.vtbl().GetCustomHeapProperties,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&props)),
		uintptr(nodeMask),
		uintptr(heapType),
	)
	return props
}

func (i *Device) CreateCommittedResource(heapProperties *HEAP_PROPERTIES, heapFlags HEAP_FLAGS, desc *RESOURCE_DESC, initialState RESOURCE_STATES, optimizedClearValue *CLEAR_VALUE) (*Resource, error) {
	var resource *Resource
	err := com.Check("ID3D12Device::CreateCommittedResource", com.Call(i.vtbl().CreateCommittedResource,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(heapProperties)),
		uintptr(heapFlags),
		uintptr(unsafe.Pointer(desc)),
		uintptr(initialState),
		uintptr(unsafe.Pointer(optimizedClearValue)),
		uintptr(unsafe.Pointer(&IID_ID3D12Resource)),
		uintptr(unsafe.Pointer(&resource)),
	))
	return resource, err
}

func (i *Device) CreateHeap(desc *HEAP_DESC) (*Heap, error) {
	var heap *Heap
	err := com.Check("ID3D12Device::CreateHeap", com.Call(i.vtbl().CreateHeap,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12Heap)),
		uintptr(unsafe.Pointer(&heap)),
	))
	return heap, err
}

func (i *Device) CreatePlacedResource(heap *Heap, heapOffset uint64, desc *RESOURCE_DESC, initialState RESOURCE_STATES, optimizedClearValue *CLEAR_VALUE) (*Resource, error) {
	var resource *Resource
	err := com.Check("ID3D12Device::CreatePlacedResource", com.Call(i.vtbl().CreatePlacedResource,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(heap)),
		uintptr(heapOffset),
		uintptr(unsafe.Pointer(desc)),
		uintptr(initialState),
		uintptr(unsafe.Pointer(optimizedClearValue)),
		uintptr(unsafe.Pointer(&IID_ID3D12Resource)),
		uintptr(unsafe.Pointer(&resource)),
	))
	return resource, err
}

func (i *Device) CreateReservedResource(desc *RESOURCE_DESC, initialState RESOURCE_STATES, optimizedClearValue *CLEAR_VALUE) (*Resource, error) {
	var resource *Resource
	err := com.Check("ID3D12Device::CreateReservedResource", com.Call(i.vtbl().CreateReservedResource,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(initialState),
		uintptr(unsafe.Pointer(optimizedClearValue)),
		uintptr(unsafe.Pointer(&IID_ID3D12Resource)),
		uintptr(unsafe.Pointer(&resource)),
	))
	return resource, err
}

func utf16OrNil(s string) (*uint16, error) {
	if s == "" {
		return nil, nil
	}
	return windows.UTF16PtrFromString(s)
}

// CreateSharedHandle takes an empty name for an unnamed handle.
func (i *Device) CreateSharedHandle(object *DeviceChild, attributes *windows.SecurityAttributes, access uint32, name string) (windows.Handle, error) {
	name16, err := utf16OrNil(name)
	if err != nil {
		return 0, err
	}
	var handle windows.Handle
	err = com.Check("ID3D12Device::CreateSharedHandle", com.Call(i.vtbl().CreateSharedHandle,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(object)),
		uintptr(unsafe.Pointer(attributes)),
		uintptr(access),
		uintptr(unsafe.Pointer(name16)),
		uintptr(unsafe.Pointer(&handle)),
	))
	return handle, err
}

// OpenSharedHandle stores the opened object, queried as riid, in out.
func (i *Device) OpenSharedHandle(handle windows.Handle, riid *com.GUID, out unsafe.Pointer) error {
	return com.Check("ID3D12Device::OpenSharedHandle", com.Call(i.vtbl().OpenSharedHandle,
		uintptr(unsafe.Pointer(i)),
		uintptr(handle),
		uintptr(unsafe.Pointer(riid)),
		uintptr(out),
	))
}

func (i *Device) OpenSharedHandleByName(name string, access uint32) (windows.Handle, error) {
	name16, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, err
	}
	var handle windows.Handle
	err = com.Check("ID3D12Device::OpenSharedHandleByName", com.Call(i.vtbl().OpenSharedHandleByName,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(name16)),
		uintptr(access),
		uintptr(unsafe.Pointer(&handle)),
	))
	return handle, err
}

func (i *Device) MakeResident(objects []*Pageable) error {
	return com.Check("ID3D12Device::MakeResident", com.Call(i.vtbl().MakeResident,
		uintptr(unsafe.Pointer(i)),
		uintptr(len(objects)),
		uintptr(unsafe.Pointer(unsafe.SliceData(objects))),
	))
}

func (i *Device) Evict(objects []*Pageable) error {
	return com.Check("ID3D12Device::Evict", com.Call(i.vtbl().Evict,
		uintptr(unsafe.Pointer(i)),
		uintptr(len(objects)),
		uintptr(unsafe.Pointer(unsafe.SliceData(objects))),
	))
}

func (i *Device) CreateFence(initialValue uint64, flags FENCE_FLAGS) (*Fence, error) {
	var fence *Fence
	err := com.Check("ID3D12Device::CreateFence", com.Call(i.vtbl().CreateFence,
		uintptr(unsafe.Pointer(i)),
		uintptr(initialValue),
		uintptr(flags),
		uintptr(unsafe.Pointer(&IID_ID3D12Fence)),
		uintptr(unsafe.Pointer(&fence)),
	))
	return fence, err
}

// GetDeviceRemovedReason returns nil while the device is alive.
func (i *Device) GetDeviceRemovedReason() error {
	return com.Check("ID3D12Device::GetDeviceRemovedReason", com.Call(i.vtbl().GetDeviceRemovedReason, uintptr(unsafe.Pointer(i))))
}

// GetCopyableFootprints writes numSubresources entries into every non nil
// output slice and returns the total size in bytes.
func (i *Device) GetCopyableFootprints(desc *RESOURCE_DESC, firstSubresource, numSubresources uint32, baseOffset uint64, layouts []PLACED_SUBRESOURCE_FOOTPRINT, numRows []uint32, rowSizeInBytes []uint64) uint64 {
	checkFootprintOutputs(numSubresources, layouts, numRows, rowSizeInBytes)
	var total uint64
	com.CallRaw(i.vtbl().GetCopyableFootprints,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(firstSubresource),
		uintptr(numSubresources),
		uintptr(baseOffset),
		uintptr(unsafe.Pointer(unsafe.SliceData(layouts))),
		uintptr(unsafe.Pointer(unsafe.SliceData(numRows))),
		uintptr(unsafe.Pointer(unsafe.SliceData(rowSizeInBytes))),
		uintptr(unsafe.Pointer(&total)),
	)
	return total
}

func (i *Device) CreateQueryHeap(desc *QUERY_HEAP_DESC) (*QueryHeap, error) {
	var heap *QueryHeap
	err := com.Check("ID3D12Device::CreateQueryHeap", com.Call(i.vtbl().CreateQueryHeap,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12QueryHeap)),
		uintptr(unsafe.Pointer(&heap)),
	))
	return heap, err
}

func (i *Device) SetStablePowerState(enable bool) error {
	return com.Check("ID3D12Device::SetStablePowerState", com.Call(i.vtbl().SetStablePowerState,
		uintptr(unsafe.Pointer(i)),
		uintptr(com.BoolOf(enable)),
	))
}

func (i *Device) CreateCommandSignature(desc *COMMAND_SIGNATURE_DESC, rootSignature *RootSignature) (*CommandSignature, error) {
	var signature *CommandSignature
	err := com.Check("ID3D12Device::CreateCommandSignature", com.Call(i.vtbl().CreateCommandSignature,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(rootSignature)),
		uintptr(unsafe.Pointer(&IID_ID3D12CommandSignature)),
		uintptr(unsafe.Pointer(&signature)),
	))
	return signature, err
}

func (i *Device) GetResourceTiling(tiledResource *Resource, numTilesForEntireResource *uint32, packedMipDesc *PACKED_MIP_INFO, standardTileShapeForNonPackedMips *TILE_SHAPE, numSubresourceTilings *uint32, firstSubresourceTilingToGet uint32, subresourceTilingsForNonPackedMips *SUBRESOURCE_TILING) {
	com.CallRaw(i.vtbl().GetResourceTiling,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(tiledResource)),
		uintptr(unsafe.Pointer(numTilesForEntireResource)),
		uintptr(unsafe.Pointer(packedMipDesc)),
		uintptr(unsafe.Pointer(standardTileShapeForNonPackedMips)),
		uintptr(unsafe.Pointer(numSubresourceTilings)),
		uintptr(firstSubresourceTilingToGet),
		uintptr(unsafe.Pointer(subresourceTilingsForNonPackedMips)),
	)
}

func (i *Device) GetAdapterLuid() dxgi.LUID {
	var luid dxgi.LUID
	com.CallRaw(i.vtbl().GetAdapterLuid, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&luid)))
	return luid
}
