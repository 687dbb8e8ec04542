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

	"golang.org/x/exp/constraints"
)

// CalcSubresource returns the flat index of a mip/array/plane slice.
func CalcSubresource(mipSlice, arraySlice, planeSlice, mipLevels, arraySize uint32) uint32 {
	return mipSlice + arraySlice*mipLevels + planeSlice*mipLevels*arraySize
}

// DecomposeSubresource aborts when mipLevels or arraySize is 0.
func DecomposeSubresource(subresource, mipLevels, arraySize uint32) (mipSlice, arraySlice, planeSlice uint32) {
	if mipLevels == 0 || arraySize == 0 {
		abort("DecomposeSubresource with mipLevels [%d] arraySize [%d]", mipLevels, arraySize)
	}
	mipSlice = subresource % mipLevels
	arraySlice = (subresource / mipLevels) % arraySize
	planeSlice = subresource / (mipLevels * arraySize)
	return
}

func EncodeShader4ComponentMapping(src0, src1, src2, src3 SHADER_COMPONENT_MAPPING) uint32 {
	return (uint32(src0) & SHADER_COMPONENT_MAPPING_MASK) |
		((uint32(src1) & SHADER_COMPONENT_MAPPING_MASK) << SHADER_COMPONENT_MAPPING_SHIFT) |
		((uint32(src2) & SHADER_COMPONENT_MAPPING_MASK) << (SHADER_COMPONENT_MAPPING_SHIFT * 2)) |
		((uint32(src3) & SHADER_COMPONENT_MAPPING_MASK) << (SHADER_COMPONENT_MAPPING_SHIFT * 3)) |
		SHADER_COMPONENT_MAPPING_ALWAYS_SET_BIT_AVOIDING_ZEROMEM_MISTAKES
}

// DecodeShader4ComponentMapping returns the source of component (0-3) in mapping.
func DecodeShader4ComponentMapping(component, mapping uint32) SHADER_COMPONENT_MAPPING {
	return SHADER_COMPONENT_MAPPING((mapping >> (SHADER_COMPONENT_MAPPING_SHIFT * component)) & SHADER_COMPONENT_MAPPING_MASK)
}

func EncodeBasicFilter(minFilter, magFilter, mipFilter FILTER_TYPE, reduction FILTER_REDUCTION_TYPE) FILTER {
	return FILTER(((uint32(minFilter) & FILTER_TYPE_MASK) << MIN_FILTER_SHIFT) |
		((uint32(magFilter) & FILTER_TYPE_MASK) << MAG_FILTER_SHIFT) |
		((uint32(mipFilter) & FILTER_TYPE_MASK) << MIP_FILTER_SHIFT) |
		((uint32(reduction) & FILTER_REDUCTION_TYPE_MASK) << FILTER_REDUCTION_TYPE_SHIFT))
}

func EncodeAnisotropicFilter(reduction FILTER_REDUCTION_TYPE) FILTER {
	return ANISOTROPIC_FILTERING_BIT | EncodeBasicFilter(FILTER_TYPE_LINEAR, FILTER_TYPE_LINEAR, FILTER_TYPE_LINEAR, reduction)
}

func EncodeMinMagAnisotropicMipPointFilter(reduction FILTER_REDUCTION_TYPE) FILTER {
	return ANISOTROPIC_FILTERING_BIT | EncodeBasicFilter(FILTER_TYPE_LINEAR, FILTER_TYPE_LINEAR, FILTER_TYPE_POINT, reduction)
}

func DecodeMinFilter(f FILTER) FILTER_TYPE {
	return FILTER_TYPE((uint32(f) >> MIN_FILTER_SHIFT) & FILTER_TYPE_MASK)
}

func DecodeMagFilter(f FILTER) FILTER_TYPE {
	return FILTER_TYPE((uint32(f) >> MAG_FILTER_SHIFT) & FILTER_TYPE_MASK)
}

func DecodeMipFilter(f FILTER) FILTER_TYPE {
	return FILTER_TYPE((uint32(f) >> MIP_FILTER_SHIFT) & FILTER_TYPE_MASK)
}

func DecodeFilterReduction(f FILTER) FILTER_REDUCTION_TYPE {
	return FILTER_REDUCTION_TYPE((uint32(f) >> FILTER_REDUCTION_TYPE_SHIFT) & FILTER_REDUCTION_TYPE_MASK)
}

func DecodeIsComparisonFilter(f FILTER) bool {
	return DecodeFilterReduction(f) == FILTER_REDUCTION_TYPE_COMPARISON
}

// DecodeIsAnisotropicFilter is false for the MIN_MAG_ANISOTROPIC_MIP_POINT filters.
func DecodeIsAnisotropicFilter(f FILTER) bool {
	return (f&ANISOTROPIC_FILTERING_BIT) != 0 &&
		DecodeMinFilter(f) == FILTER_TYPE_LINEAR &&
		DecodeMagFilter(f) == FILTER_TYPE_LINEAR &&
		DecodeMipFilter(f) == FILTER_TYPE_LINEAR
}

// MemcpySubresource copies numSlices slices of numRows rows, each
// rowSizeInBytes long, honouring the pitches of both sides.
func MemcpySubresource(dest *MEMCPY_DEST, src *SUBRESOURCE_DATA, rowSizeInBytes uintptr, numRows, numSlices uint32) {
	if numRows > 1 && rowSizeInBytes > dest.RowPitch {
		abort("Row size [%d] is larger than destination row pitch [%d]", rowSizeInBytes, dest.RowPitch)
	}
	if numSlices > 1 && dest.RowPitch*uintptr(numRows) > dest.SlicePitch {
		abort("Slice size [%d] is larger than destination slice pitch [%d]", dest.RowPitch*uintptr(numRows), dest.SlicePitch)
	}

	for z := uint32(0); z < numSlices; z++ {
		destSlice := unsafe.Add(dest.PData, dest.SlicePitch*uintptr(z))
		srcSlice := unsafe.Add(src.PData, src.SlicePitch*int(z))
		for y := uint32(0); y < numRows; y++ {
			copy(
				unsafe.Slice((*byte)(unsafe.Add(destSlice, dest.RowPitch*uintptr(y))), rowSizeInBytes),
				unsafe.Slice((*byte)(unsafe.Add(srcSlice, src.RowPitch*int(y))), rowSizeInBytes),
			)
		}
	}
}

// checkFootprintOutputs aborts when a non nil output of GetCopyableFootprints
// is shorter than numSubresources.
func checkFootprintOutputs(numSubresources uint32, layouts []PLACED_SUBRESOURCE_FOOTPRINT, numRows []uint32, rowSizeInBytes []uint64) {
	n := int(numSubresources)
	if layouts != nil && len(layouts) < n {
		abort("layouts has %d entries, need %d", len(layouts), n)
	}
	if numRows != nil && len(numRows) < n {
		abort("numRows has %d entries, need %d", len(numRows), n)
	}
	if rowSizeInBytes != nil && len(rowSizeInBytes) < n {
		abort("rowSizeInBytes has %d entries, need %d", len(rowSizeInBytes), n)
	}
}

// AlignUp rounds v up to alignment, which must be a power of two.
func AlignUp[N constraints.Unsigned](v, alignment N) N {
	return (v + alignment - 1) &^ (alignment - 1)
}
