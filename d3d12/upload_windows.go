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

	"goarrg.com/debug"
	"goarrg.com/rhi/dxr/dxgi"
)

// GetFormatPlaneCount returns 0 for formats the device does not support.
func GetFormatPlaneCount(device *Device, format dxgi.FORMAT) uint8 {
	info := FEATURE_DATA_FORMAT_INFO{Format: format}
	if err := CheckFeature(device, FEATURE_FORMAT_INFO, &info); err != nil {
		return 0
	}
	return info.PlaneCount
}

// GetRequiredIntermediateSize returns the upload buffer size needed to update
// numSubresources subresources of dest starting at firstSubresource.
func GetRequiredIntermediateSize(dest *Resource, firstSubresource, numSubresources uint32) (uint64, error) {
	device, err := dest.GetDevice()
	if err != nil {
		return 0, err
	}
	defer device.Release()

	desc := dest.GetDesc()
	return device.GetCopyableFootprints(&desc, firstSubresource, numSubresources, 0, nil, nil, nil), nil
}

// UpdateSubresources copies data into intermediate at intermediateOffset and
// records the copies into dest on list. intermediate must be a mappable
// buffer of at least GetRequiredIntermediateSize bytes past the offset.
func UpdateSubresources(list *GraphicsCommandList, dest, intermediate *Resource, intermediateOffset uint64, firstSubresource uint32, data []SUBRESOURCE_DATA) (uint64, error) {
	if firstSubresource >= REQ_SUBRESOURCES || uint32(len(data)) > REQ_SUBRESOURCES-firstSubresource {
		return 0, debug.Errorf("Subresource range [%d, %d) is outside of [0, %d)",
			firstSubresource, uint64(firstSubresource)+uint64(len(data)), REQ_SUBRESOURCES)
	}
	if len(data) == 0 {
		return 0, nil
	}

	device, err := dest.GetDevice()
	if err != nil {
		return 0, err
	}
	defer device.Release()

	numSubresources := uint32(len(data))
	layouts := make([]PLACED_SUBRESOURCE_FOOTPRINT, numSubresources)
	numRows := make([]uint32, numSubresources)
	rowSizes := make([]uint64, numSubresources)

	desc := dest.GetDesc()
	requiredSize := device.GetCopyableFootprints(&desc, firstSubresource, numSubresources, intermediateOffset, layouts, numRows, rowSizes)

	intermediateDesc := intermediate.GetDesc()
	if intermediateDesc.Dimension != RESOURCE_DIMENSION_BUFFER {
		return 0, debug.Errorf("Intermediate resource is not a buffer")
	}
	if intermediateDesc.Width < requiredSize+layouts[0].Offset {
		return 0, debug.Errorf("Intermediate buffer of %d bytes is smaller than the required %d bytes",
			intermediateDesc.Width, requiredSize+layouts[0].Offset)
	}
	if desc.Dimension == RESOURCE_DIMENSION_BUFFER && (firstSubresource != 0 || numSubresources != 1) {
		return 0, debug.Errorf("Buffers have exactly one subresource")
	}

	mapped, err := intermediate.Map(0, nil)
	if err != nil {
		return 0, debug.ErrorWrapf(err, "Failed to map intermediate buffer")
	}
	for i := range data {
		rowPitch := uintptr(layouts[i].Footprint.RowPitch)
		dst := MEMCPY_DEST{
			PData:      unsafe.Add(mapped, layouts[i].Offset),
			RowPitch:   rowPitch,
			SlicePitch: rowPitch * uintptr(numRows[i]),
		}
		MemcpySubresource(&dst, &data[i], uintptr(rowSizes[i]), numRows[i], layouts[i].Footprint.Depth)
	}
	intermediate.Unmap(0, nil)

	if desc.Dimension == RESOURCE_DIMENSION_BUFFER {
		list.CopyBufferRegion(dest, 0, intermediate, layouts[0].Offset, uint64(layouts[0].Footprint.Width))
		return requiredSize, nil
	}

	for i := range layouts {
		dst := TextureCopyLocationSubresource(dest, firstSubresource+uint32(i))
		src := TextureCopyLocationFootprint(intermediate, layouts[i])
		list.CopyTextureRegion(&dst, 0, 0, 0, &src, nil)
	}
	return requiredSize, nil
}
