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
	"golang.org/x/sys/windows"
)

func (i *Object) GetPrivateData(guid *com.GUID, dataSize *uint32, data unsafe.Pointer) error {
	return com.Check("ID3D12Object::GetPrivateData", com.Call(i.vtbl().GetPrivateData,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(guid)),
		uintptr(unsafe.Pointer(dataSize)),
		uintptr(data),
	))
}

func (i *Object) SetPrivateData(guid *com.GUID, dataSize uint32, data unsafe.Pointer) error {
	return com.Check("ID3D12Object::SetPrivateData", com.Call(i.vtbl().SetPrivateData,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(guid)),
		uintptr(dataSize),
		uintptr(data),
	))
}

func (i *Object) SetPrivateDataInterface(guid *com.GUID, data *com.IUnknown) error {
	return com.Check("ID3D12Object::SetPrivateDataInterface", com.Call(i.vtbl().SetPrivateDataInterface,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(guid)),
		uintptr(unsafe.Pointer(data)),
	))
}

func (i *Object) SetName(name string) error {
	name16, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	return com.Check("ID3D12Object::SetName", com.Call(i.vtbl().SetName,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(name16)),
	))
}

func (i *DeviceChild) GetDevice() (*Device, error) {
	var device *Device
	err := com.Check("ID3D12DeviceChild::GetDevice", com.Call(i.vtbl().GetDevice,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&IID_ID3D12Device)),
		uintptr(unsafe.Pointer(&device)),
	))
	return device, err
}

func (i *RootSignatureDeserializer) GetRootSignatureDesc() *ROOT_SIGNATURE_DESC {
	r := com.CallRaw(i.vtbl().GetRootSignatureDesc, uintptr(unsafe.Pointer(i)))
	return (*ROOT_SIGNATURE_DESC)(com.Ptr(r))
}

func (i *VersionedRootSignatureDeserializer) GetRootSignatureDescAtVersion(version ROOT_SIGNATURE_VERSION) (*VERSIONED_ROOT_SIGNATURE_DESC, error) {
	var desc *VERSIONED_ROOT_SIGNATURE_DESC
	err := com.Check("ID3D12VersionedRootSignatureDeserializer::GetRootSignatureDescAtVersion", com.Call(i.vtbl().GetRootSignatureDescAtVersion,
		uintptr(unsafe.Pointer(i)),
		uintptr(version),
		uintptr(unsafe.Pointer(&desc)),
	))
	return desc, err
}

func (i *VersionedRootSignatureDeserializer) GetUnconvertedRootSignatureDesc() *VERSIONED_ROOT_SIGNATURE_DESC {
	r := com.CallRaw(i.vtbl().GetUnconvertedRootSignatureDesc, uintptr(unsafe.Pointer(i)))
	return (*VERSIONED_ROOT_SIGNATURE_DESC)(com.Ptr(r))
}

func (i *Heap) GetDesc() HEAP_DESC {
	var desc HEAP_DESC
	com.CallRaw(i.vtbl().GetDesc, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&desc)))
	return desc
}

// Map returns a CPU pointer to the subresource. readRange may be nil to
// signal the whole subresource may be read.
func (i *Resource) Map(subresource uint32, readRange *RANGE) (unsafe.Pointer, error) {
	var data unsafe.Pointer
	err := com.Check("ID3D12Resource::Map", com.Call(i.vtbl().Map,
		uintptr(unsafe.Pointer(i)),
		uintptr(subresource),
		uintptr(unsafe.Pointer(readRange)),
		uintptr(unsafe.Pointer(&data)),
	))
	return data, err
}

// MapMemory maps size bytes of a buffer subresource, nothing is read back.
func (i *Resource) MapMemory(subresource uint32, size uintptr) (MappedMemory, error) {
	p, err := i.Map(subresource, &RANGE{})
	if err != nil {
		return MappedMemory{}, err
	}
	return NewMappedMemory(p, size), nil
}

func (i *Resource) Unmap(subresource uint32, writtenRange *RANGE) {
	com.CallRaw(i.vtbl().Unmap,
		uintptr(unsafe.Pointer(i)),
		uintptr(subresource),
		uintptr(unsafe.Pointer(writtenRange)),
	)
}

func (i *Resource) GetDesc() RESOURCE_DESC {
	var desc RESOURCE_DESC
	com.CallRaw(i.vtbl().GetDesc, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&desc)))
	return desc
}

func (i *Resource) GetGPUVirtualAddress() uint64 {
	return uint64(com.CallRaw(i.vtbl().GetGPUVirtualAddress, uintptr(unsafe.Pointer(i))))
}

func (i *Resource) WriteToSubresource(dstSubresource uint32, dstBox *BOX, srcData unsafe.Pointer, srcRowPitch, srcDepthPitch uint32) error {
	return com.Check("ID3D12Resource::WriteToSubresource", com.Call(i.vtbl().WriteToSubresource,
		uintptr(unsafe.Pointer(i)),
		uintptr(dstSubresource),
		uintptr(unsafe.Pointer(dstBox)),
		uintptr(srcData),
		uintptr(srcRowPitch),
		uintptr(srcDepthPitch),
	))
}

func (i *Resource) ReadFromSubresource(dstData unsafe.Pointer, dstRowPitch, dstDepthPitch, srcSubresource uint32, srcBox *BOX) error {
	return com.Check("ID3D12Resource::ReadFromSubresource", com.Call(i.vtbl().ReadFromSubresource,
		uintptr(unsafe.Pointer(i)),
		uintptr(dstData),
		uintptr(dstRowPitch),
		uintptr(dstDepthPitch),
		uintptr(srcSubresource),
		uintptr(unsafe.Pointer(srcBox)),
	))
}

func (i *Resource) GetHeapProperties() (HEAP_PROPERTIES, HEAP_FLAGS, error) {
	var props HEAP_PROPERTIES
	var flags HEAP_FLAGS
	err := com.Check("ID3D12Resource::GetHeapProperties", com.Call(i.vtbl().GetHeapProperties,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&props)),
		uintptr(unsafe.Pointer(&flags)),
	))
	return props, flags, err
}

func (i *CommandAllocator) Reset() error {
	return com.Check("ID3D12CommandAllocator::Reset", com.Call(i.vtbl().Reset, uintptr(unsafe.Pointer(i))))
}

func (i *Fence) GetCompletedValue() uint64 {
	return uint64(com.CallRaw(i.vtbl().GetCompletedValue, uintptr(unsafe.Pointer(i))))
}

func (i *Fence) SetEventOnCompletion(value uint64, event windows.Handle) error {
	return com.Check("ID3D12Fence::SetEventOnCompletion", com.Call(i.vtbl().SetEventOnCompletion,
		uintptr(unsafe.Pointer(i)),
		uintptr(value),
		uintptr(event),
	))
}

func (i *Fence) Signal(value uint64) error {
	return com.Check("ID3D12Fence::Signal", com.Call(i.vtbl().Signal, uintptr(unsafe.Pointer(i)), uintptr(value)))
}

func (i *Fence1) GetCreationFlags() FENCE_FLAGS {
	return FENCE_FLAGS(com.CallRaw(i.vtbl().GetCreationFlags, uintptr(unsafe.Pointer(i))))
}

func (i *PipelineState) GetCachedBlob() (*Blob, error) {
	var blob *Blob
	err := com.Check("ID3D12PipelineState::GetCachedBlob", com.Call(i.vtbl().GetCachedBlob,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&blob)),
	))
	return blob, err
}

func (i *DescriptorHeap) GetDesc() DESCRIPTOR_HEAP_DESC {
	var desc DESCRIPTOR_HEAP_DESC
	com.CallRaw(i.vtbl().GetDesc, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&desc)))
	return desc
}

func (i *DescriptorHeap) GetCPUDescriptorHandleForHeapStart() CPU_DESCRIPTOR_HANDLE {
	var h CPU_DESCRIPTOR_HANDLE
	com.CallRaw(i.vtbl().GetCPUDescriptorHandleForHeapStart, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&h)))
	return h
}

func (i *DescriptorHeap) GetGPUDescriptorHandleForHeapStart() GPU_DESCRIPTOR_HANDLE {
	var h GPU_DESCRIPTOR_HANDLE
	com.CallRaw(i.vtbl().GetGPUDescriptorHandleForHeapStart, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&h)))
	return h
}

func (i *CommandList) GetType() COMMAND_LIST_TYPE {
	return COMMAND_LIST_TYPE(com.CallRaw(i.vtbl().GetType, uintptr(unsafe.Pointer(i))))
}

func (i *Blob) GetBufferPointer() unsafe.Pointer {
	return com.Ptr(com.CallRaw(i.vtbl().GetBufferPointer, uintptr(unsafe.Pointer(i))))
}

func (i *Blob) GetBufferSize() uintptr {
	return com.CallRaw(i.vtbl().GetBufferSize, uintptr(unsafe.Pointer(i)))
}

// Bytes returns a view of the blob's buffer, valid until the blob is released.
func (i *Blob) Bytes() []byte {
	return unsafe.Slice((*byte)(i.GetBufferPointer()), i.GetBufferSize())
}
