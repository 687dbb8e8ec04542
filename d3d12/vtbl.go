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
)

type ObjectVtbl struct {
	com.IUnknownVtbl
	GetPrivateData          uintptr
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	SetName                 uintptr
}

// Object is ID3D12Object.
type Object struct {
	com.IUnknown
}

func (i *Object) vtbl() *ObjectVtbl {
	return (*ObjectVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type DeviceChildVtbl struct {
	ObjectVtbl
	GetDevice uintptr
}

// DeviceChild is ID3D12DeviceChild.
type DeviceChild struct {
	Object
}

func (i *DeviceChild) vtbl() *DeviceChildVtbl {
	return (*DeviceChildVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type RootSignatureVtbl struct {
	DeviceChildVtbl
}

// RootSignature is ID3D12RootSignature.
type RootSignature struct {
	DeviceChild
}

type RootSignatureDeserializerVtbl struct {
	com.IUnknownVtbl
	GetRootSignatureDesc uintptr
}

// RootSignatureDeserializer is ID3D12RootSignatureDeserializer.
type RootSignatureDeserializer struct {
	com.IUnknown
}

func (i *RootSignatureDeserializer) vtbl() *RootSignatureDeserializerVtbl {
	return (*RootSignatureDeserializerVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type VersionedRootSignatureDeserializerVtbl struct {
	com.IUnknownVtbl
	GetRootSignatureDescAtVersion   uintptr
	GetUnconvertedRootSignatureDesc uintptr
}

// VersionedRootSignatureDeserializer is ID3D12VersionedRootSignatureDeserializer.
type VersionedRootSignatureDeserializer struct {
	com.IUnknown
}

func (i *VersionedRootSignatureDeserializer) vtbl() *VersionedRootSignatureDeserializerVtbl {
	return (*VersionedRootSignatureDeserializerVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type PageableVtbl struct {
	DeviceChildVtbl
}

// Pageable is ID3D12Pageable.
type Pageable struct {
	DeviceChild
}

type HeapVtbl struct {
	PageableVtbl
	GetDesc uintptr
}

// Heap is ID3D12Heap.
type Heap struct {
	Pageable
}

func (i *Heap) vtbl() *HeapVtbl {
	return (*HeapVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type ResourceVtbl struct {
	PageableVtbl
	Map                  uintptr
	Unmap                uintptr
	GetDesc              uintptr
	GetGPUVirtualAddress uintptr
	WriteToSubresource   uintptr
	ReadFromSubresource  uintptr
	GetHeapProperties    uintptr
}

// Resource is ID3D12Resource.
type Resource struct {
	Pageable
}

func (i *Resource) vtbl() *ResourceVtbl {
	return (*ResourceVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type CommandAllocatorVtbl struct {
	PageableVtbl
	Reset uintptr
}

// CommandAllocator is ID3D12CommandAllocator.
type CommandAllocator struct {
	Pageable
}

func (i *CommandAllocator) vtbl() *CommandAllocatorVtbl {
	return (*CommandAllocatorVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type FenceVtbl struct {
	PageableVtbl
	GetCompletedValue    uintptr
	SetEventOnCompletion uintptr
	Signal               uintptr
}

// Fence is ID3D12Fence.
type Fence struct {
	Pageable
}

func (i *Fence) vtbl() *FenceVtbl {
	return (*FenceVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type Fence1Vtbl struct {
	FenceVtbl
	GetCreationFlags uintptr
}

// Fence1 is ID3D12Fence1.
type Fence1 struct {
	Fence
}

func (i *Fence1) vtbl() *Fence1Vtbl {
	return (*Fence1Vtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type PipelineStateVtbl struct {
	PageableVtbl
	GetCachedBlob uintptr
}

// PipelineState is ID3D12PipelineState.
type PipelineState struct {
	Pageable
}

func (i *PipelineState) vtbl() *PipelineStateVtbl {
	return (*PipelineStateVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type DescriptorHeapVtbl struct {
	PageableVtbl
	GetDesc                            uintptr
	GetCPUDescriptorHandleForHeapStart uintptr
	GetGPUDescriptorHandleForHeapStart uintptr
}

// DescriptorHeap is ID3D12DescriptorHeap.
type DescriptorHeap struct {
	Pageable
}

func (i *DescriptorHeap) vtbl() *DescriptorHeapVtbl {
	return (*DescriptorHeapVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type QueryHeapVtbl struct {
	PageableVtbl
}

// QueryHeap is ID3D12QueryHeap.
type QueryHeap struct {
	Pageable
}

type CommandSignatureVtbl struct {
	PageableVtbl
}

// CommandSignature is ID3D12CommandSignature.
type CommandSignature struct {
	Pageable
}

type CommandListVtbl struct {
	DeviceChildVtbl
	GetType uintptr
}

// CommandList is ID3D12CommandList.
type CommandList struct {
	DeviceChild
}

func (i *CommandList) vtbl() *CommandListVtbl {
	return (*CommandListVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type GraphicsCommandListVtbl struct {
	CommandListVtbl
	Close                              uintptr
	Reset                              uintptr
	ClearState                         uintptr
	DrawInstanced                      uintptr
	DrawIndexedInstanced               uintptr
	Dispatch                           uintptr
	CopyBufferRegion                   uintptr
	CopyTextureRegion                  uintptr
	CopyResource                       uintptr
	CopyTiles                          uintptr
	ResolveSubresource                 uintptr
	IASetPrimitiveTopology             uintptr
	RSSetViewports                     uintptr
	RSSetScissorRects                  uintptr
	OMSetBlendFactor                   uintptr
	OMSetStencilRef                    uintptr
	SetPipelineState                   uintptr
	ResourceBarrier                    uintptr
	ExecuteBundle                      uintptr
	SetDescriptorHeaps                 uintptr
	SetComputeRootSignature            uintptr
	SetGraphicsRootSignature           uintptr
	SetComputeRootDescriptorTable      uintptr
	SetGraphicsRootDescriptorTable     uintptr
	SetComputeRoot32BitConstant        uintptr
	SetGraphicsRoot32BitConstant       uintptr
	SetComputeRoot32BitConstants       uintptr
	SetGraphicsRoot32BitConstants      uintptr
	SetComputeRootConstantBufferView   uintptr
	SetGraphicsRootConstantBufferView  uintptr
	SetComputeRootShaderResourceView   uintptr
	SetGraphicsRootShaderResourceView  uintptr
	SetComputeRootUnorderedAccessView  uintptr
	SetGraphicsRootUnorderedAccessView uintptr
	IASetIndexBuffer                   uintptr
	IASetVertexBuffers                 uintptr
	SOSetTargets                       uintptr
	OMSetRenderTargets                 uintptr
	ClearDepthStencilView              uintptr
	ClearRenderTargetView              uintptr
	ClearUnorderedAccessViewUint       uintptr
	ClearUnorderedAccessViewFloat      uintptr
	DiscardResource                    uintptr
	BeginQuery                         uintptr
	EndQuery                           uintptr
	ResolveQueryData                   uintptr
	SetPredication                     uintptr
	SetMarker                          uintptr
	BeginEvent                         uintptr
	EndEvent                           uintptr
	ExecuteIndirect                    uintptr
}

// GraphicsCommandList is ID3D12GraphicsCommandList.
type GraphicsCommandList struct {
	CommandList
}

func (i *GraphicsCommandList) vtbl() *GraphicsCommandListVtbl {
	return (*GraphicsCommandListVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type GraphicsCommandList1Vtbl struct {
	GraphicsCommandListVtbl
	AtomicCopyBufferUINT     uintptr
	AtomicCopyBufferUINT64   uintptr
	OMSetDepthBounds         uintptr
	SetSamplePositions       uintptr
	ResolveSubresourceRegion uintptr
	SetViewInstanceMask      uintptr
}

// GraphicsCommandList1 is ID3D12GraphicsCommandList1.
type GraphicsCommandList1 struct {
	GraphicsCommandList
}

func (i *GraphicsCommandList1) vtbl() *GraphicsCommandList1Vtbl {
	return (*GraphicsCommandList1Vtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type GraphicsCommandList2Vtbl struct {
	GraphicsCommandList1Vtbl
	WriteBufferImmediate uintptr
}

// GraphicsCommandList2 is ID3D12GraphicsCommandList2.
type GraphicsCommandList2 struct {
	GraphicsCommandList1
}

func (i *GraphicsCommandList2) vtbl() *GraphicsCommandList2Vtbl {
	return (*GraphicsCommandList2Vtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type CommandQueueVtbl struct {
	PageableVtbl
	UpdateTileMappings    uintptr
	CopyTileMappings      uintptr
	ExecuteCommandLists   uintptr
	SetMarker             uintptr
	BeginEvent            uintptr
	EndEvent              uintptr
	Signal                uintptr
	Wait                  uintptr
	GetTimestampFrequency uintptr
	GetClockCalibration   uintptr
	GetDesc               uintptr
}

// CommandQueue is ID3D12CommandQueue.
type CommandQueue struct {
	Pageable
}

func (i *CommandQueue) vtbl() *CommandQueueVtbl {
	return (*CommandQueueVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type DeviceVtbl struct {
	ObjectVtbl
	GetNodeCount                     uintptr
	CreateCommandQueue               uintptr
	CreateCommandAllocator           uintptr
	CreateGraphicsPipelineState      uintptr
	CreateComputePipelineState       uintptr
	CreateCommandList                uintptr
	CheckFeatureSupport              uintptr
	CreateDescriptorHeap             uintptr
	GetDescriptorHandleIncrementSize uintptr
	CreateRootSignature              uintptr
	CreateConstantBufferView         uintptr
	CreateShaderResourceView         uintptr
	CreateUnorderedAccessView        uintptr
	CreateRenderTargetView           uintptr
	CreateDepthStencilView           uintptr
	CreateSampler                    uintptr
	CopyDescriptors                  uintptr
	CopyDescriptorsSimple            uintptr
	GetResourceAllocationInfo        uintptr
	GetCustomHeapProperties          uintptr
	CreateCommittedResource          uintptr
	CreateHeap                       uintptr
	CreatePlacedResource             uintptr
	CreateReservedResource           uintptr
	CreateSharedHandle               uintptr
	OpenSharedHandle                 uintptr
	OpenSharedHandleByName           uintptr
	MakeResident                     uintptr
	Evict                            uintptr
	CreateFence                      uintptr
	GetDeviceRemovedReason           uintptr
	GetCopyableFootprints            uintptr
	CreateQueryHeap                  uintptr
	SetStablePowerState              uintptr
	CreateCommandSignature           uintptr
	GetResourceTiling                uintptr
	GetAdapterLuid                   uintptr
}

// Device is ID3D12Device.
type Device struct {
	Object
}

func (i *Device) vtbl() *DeviceVtbl {
	return (*DeviceVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type DebugVtbl struct {
	com.IUnknownVtbl
	EnableDebugLayer uintptr
}

// Debug is ID3D12Debug.
type Debug struct {
	com.IUnknown
}

func (i *Debug) vtbl() *DebugVtbl {
	return (*DebugVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type Debug1Vtbl struct {
	com.IUnknownVtbl
	EnableDebugLayer                            uintptr
	SetEnableGPUBasedValidation                 uintptr
	SetEnableSynchronizedCommandQueueValidation uintptr
}

// Debug1 is ID3D12Debug1.
type Debug1 struct {
	com.IUnknown
}

func (i *Debug1) vtbl() *Debug1Vtbl {
	return (*Debug1Vtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type Debug3Vtbl struct {
	DebugVtbl
	SetEnableGPUBasedValidation                 uintptr
	SetEnableSynchronizedCommandQueueValidation uintptr
	SetGPUBasedValidationFlags                  uintptr
}

// Debug3 is ID3D12Debug3.
type Debug3 struct {
	Debug
}

func (i *Debug3) vtbl() *Debug3Vtbl {
	return (*Debug3Vtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type DebugDeviceVtbl struct {
	com.IUnknownVtbl
	SetFeatureMask          uintptr
	GetFeatureMask          uintptr
	ReportLiveDeviceObjects uintptr
}

// DebugDevice is ID3D12DebugDevice.
type DebugDevice struct {
	com.IUnknown
}

func (i *DebugDevice) vtbl() *DebugDeviceVtbl {
	return (*DebugDeviceVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type InfoQueueVtbl struct {
	com.IUnknownVtbl
	SetMessageCountLimit                         uintptr
	ClearStoredMessages                          uintptr
	GetMessage                                   uintptr
	GetNumMessagesAllowedByStorageFilter         uintptr
	GetNumMessagesDeniedByStorageFilter          uintptr
	GetNumStoredMessages                         uintptr
	GetNumStoredMessagesAllowedByRetrievalFilter uintptr
	GetNumMessagesDiscardedByMessageCountLimit   uintptr
	GetMessageCountLimit                         uintptr
	AddStorageFilterEntries                      uintptr
	GetStorageFilter                             uintptr
	ClearStorageFilter                           uintptr
	PushEmptyStorageFilter                       uintptr
	PushCopyOfStorageFilter                      uintptr
	PushStorageFilter                            uintptr
	PopStorageFilter                             uintptr
	GetStorageFilterStackSize                    uintptr
	AddRetrievalFilterEntries                    uintptr
	GetRetrievalFilter                           uintptr
	ClearRetrievalFilter                         uintptr
	PushEmptyRetrievalFilter                     uintptr
	PushCopyOfRetrievalFilter                    uintptr
	PushRetrievalFilter                          uintptr
	PopRetrievalFilter                           uintptr
	GetRetrievalFilterStackSize                  uintptr
	AddMessage                                   uintptr
	AddApplicationMessage                        uintptr
	SetBreakOnCategory                           uintptr
	SetBreakOnSeverity                           uintptr
	SetBreakOnID                                 uintptr
	GetBreakOnCategory                           uintptr
	GetBreakOnSeverity                           uintptr
	GetBreakOnID                                 uintptr
	SetMuteDebugOutput                           uintptr
	GetMuteDebugOutput                           uintptr
}

// InfoQueue is ID3D12InfoQueue.
type InfoQueue struct {
	com.IUnknown
}

func (i *InfoQueue) vtbl() *InfoQueueVtbl {
	return (*InfoQueueVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type InfoQueue1Vtbl struct {
	InfoQueueVtbl
	RegisterMessageCallback   uintptr
	UnregisterMessageCallback uintptr
}

// InfoQueue1 is ID3D12InfoQueue1.
type InfoQueue1 struct {
	InfoQueue
}

func (i *InfoQueue1) vtbl() *InfoQueue1Vtbl {
	return (*InfoQueue1Vtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type BlobVtbl struct {
	com.IUnknownVtbl
	GetBufferPointer uintptr
	GetBufferSize    uintptr
}

// Blob is ID3DBlob.
type Blob struct {
	com.IUnknown
}

func (i *Blob) vtbl() *BlobVtbl {
	return (*BlobVtbl)(com.VtblOf(unsafe.Pointer(i)))
}
