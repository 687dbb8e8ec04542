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

func (i *CommandQueue) UpdateTileMappings(resource *Resource, numResourceRegions uint32, resourceRegionStartCoordinates *TILED_RESOURCE_COORDINATE, resourceRegionSizes *TILE_REGION_SIZE, heap *Heap, numRanges uint32, rangeFlags *TILE_RANGE_FLAGS, heapRangeStartOffsets, rangeTileCounts *uint32, flags TILE_MAPPING_FLAGS) {
	com.CallRaw(i.vtbl().UpdateTileMappings,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(resource)),
		uintptr(numResourceRegions),
		uintptr(unsafe.Pointer(resourceRegionStartCoordinates)),
		uintptr(unsafe.Pointer(resourceRegionSizes)),
		uintptr(unsafe.Pointer(heap)),
		uintptr(numRanges),
		uintptr(unsafe.Pointer(rangeFlags)),
		uintptr(unsafe.Pointer(heapRangeStartOffsets)),
		uintptr(unsafe.Pointer(rangeTileCounts)),
		uintptr(flags),
	)
}

func (i *CommandQueue) CopyTileMappings(dstResource *Resource, dstRegionStart *TILED_RESOURCE_COORDINATE, srcResource *Resource, srcRegionStart *TILED_RESOURCE_COORDINATE, regionSize *TILE_REGION_SIZE, flags TILE_MAPPING_FLAGS) {
	com.CallRaw(i.vtbl().CopyTileMappings,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(dstResource)),
		uintptr(unsafe.Pointer(dstRegionStart)),
		uintptr(unsafe.Pointer(srcResource)),
		uintptr(unsafe.Pointer(srcRegionStart)),
		uintptr(unsafe.Pointer(regionSize)),
		uintptr(flags),
	)
}

func (i *CommandQueue) ExecuteCommandLists(lists []*CommandList) {
	com.CallRaw(i.vtbl().ExecuteCommandLists,
		uintptr(unsafe.Pointer(i)),
		uintptr(len(lists)),
		uintptr(unsafe.Pointer(unsafe.SliceData(lists))),
	)
}

func (i *CommandQueue) SetMarker(metadata uint32, data unsafe.Pointer, size uint32) {
	com.CallRaw(i.vtbl().SetMarker, uintptr(unsafe.Pointer(i)), uintptr(metadata), uintptr(data), uintptr(size))
}

func (i *CommandQueue) BeginEvent(metadata uint32, data unsafe.Pointer, size uint32) {
	com.CallRaw(i.vtbl().BeginEvent, uintptr(unsafe.Pointer(i)), uintptr(metadata), uintptr(data), uintptr(size))
}

func (i *CommandQueue) EndEvent() {
	com.CallRaw(i.vtbl().EndEvent, uintptr(unsafe.Pointer(i)))
}

func (i *CommandQueue) Signal(fence *Fence, value uint64) error {
	return com.Check("ID3D12CommandQueue::Signal", com.Call(i.vtbl().Signal,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(fence)),
		uintptr(value),
	))
}

func (i *CommandQueue) Wait(fence *Fence, value uint64) error {
	return com.Check("ID3D12CommandQueue::Wait", com.Call(i.vtbl().Wait,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(fence)),
		uintptr(value),
	))
}

func (i *CommandQueue) GetTimestampFrequency() (uint64, error) {
	var frequency uint64
	err := com.Check("ID3D12CommandQueue::GetTimestampFrequency", com.Call(i.vtbl().GetTimestampFrequency,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&frequency)),
	))
	return frequency, err
}

func (i *CommandQueue) GetClockCalibration() (gpuTimestamp, cpuTimestamp uint64, err error) {
	err = com.Check("ID3D12CommandQueue::GetClockCalibration", com.Call(i.vtbl().GetClockCalibration,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&gpuTimestamp)),
		uintptr(unsafe.Pointer(&cpuTimestamp)),
	))
	return gpuTimestamp, cpuTimestamp, err
}

func (i *CommandQueue) GetDesc() COMMAND_QUEUE_DESC {
	var desc COMMAND_QUEUE_DESC
	com.CallRaw(i.vtbl().GetDesc, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&desc)))
	return desc
}
