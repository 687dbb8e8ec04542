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
	"bytes"
	"testing"
	"unsafe"
)

func TestSubresourceRoundTrip(t *testing.T) {
	for _, dims := range [][2]uint32{{1, 1}, {1, 6}, {REQ_MIP_LEVELS, 1}, {REQ_MIP_LEVELS, 3}, {5, REQ_TEXTURE2D_ARRAY_AXIS_DIMENSION}} {
		mipLevels, arraySize := dims[0], dims[1]
		for plane := uint32(0); plane < 2; plane++ {
			for array := uint32(0); array < arraySize; array++ {
				for mip := uint32(0); mip < mipLevels; mip++ {
					sub := CalcSubresource(mip, array, plane, mipLevels, arraySize)
					m, a, p := DecomposeSubresource(sub, mipLevels, arraySize)
					if m != mip || a != array || p != plane {
						t.Fatalf("[%d,%d,%d] levels %d size %d: got [%d,%d,%d] from %d",
							mip, array, plane, mipLevels, arraySize, m, a, p, sub)
					}
				}
			}
		}
	}

	if got := CalcSubresource(2, 3, 1, 4, 6); got != 2+3*4+1*4*6 {
		t.Errorf("CalcSubresource(2, 3, 1, 4, 6) = %d", got)
	}
}

func TestDecomposeSubresourceZeroCounts(t *testing.T) {
	tests := []struct {
		mipLevels, arraySize uint32
	}{
		{0, 1},
		{1, 0},
		{0, 0},
	}
	for _, tc := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("DecomposeSubresource(0, %d, %d) did not abort", tc.mipLevels, tc.arraySize)
				}
			}()
			DecomposeSubresource(0, tc.mipLevels, tc.arraySize)
		}()
	}
}

func TestShaderComponentMapping(t *testing.T) {
	if got := EncodeShader4ComponentMapping(0, 1, 2, 3); got != DEFAULT_SHADER_4_COMPONENT_MAPPING {
		t.Errorf("identity mapping = 0x%X, want 0x%X", got, DEFAULT_SHADER_4_COMPONENT_MAPPING)
	}

	for s0 := SHADER_COMPONENT_MAPPING(0); s0 <= SHADER_COMPONENT_MAPPING_FORCE_VALUE_1; s0++ {
		for s1 := SHADER_COMPONENT_MAPPING(0); s1 <= SHADER_COMPONENT_MAPPING_FORCE_VALUE_1; s1++ {
			for s2 := SHADER_COMPONENT_MAPPING(0); s2 <= SHADER_COMPONENT_MAPPING_FORCE_VALUE_1; s2++ {
				for s3 := SHADER_COMPONENT_MAPPING(0); s3 <= SHADER_COMPONENT_MAPPING_FORCE_VALUE_1; s3++ {
					m := EncodeShader4ComponentMapping(s0, s1, s2, s3)
					if m&SHADER_COMPONENT_MAPPING_ALWAYS_SET_BIT_AVOIDING_ZEROMEM_MISTAKES == 0 {
						t.Fatalf("0x%X is missing the always set bit", m)
					}
					got := [4]SHADER_COMPONENT_MAPPING{
						DecodeShader4ComponentMapping(0, m),
						DecodeShader4ComponentMapping(1, m),
						DecodeShader4ComponentMapping(2, m),
						DecodeShader4ComponentMapping(3, m),
					}
					if got != [4]SHADER_COMPONENT_MAPPING{s0, s1, s2, s3} {
						t.Fatalf("0x%X decoded to %v, want %v", m, got, [4]SHADER_COMPONENT_MAPPING{s0, s1, s2, s3})
					}
				}
			}
		}
	}
}

func TestFilterEncoding(t *testing.T) {
	const (
		P = FILTER_TYPE_POINT
		L = FILTER_TYPE_LINEAR
	)
	basic := []struct {
		filter        FILTER
		min, mag, mip FILTER_TYPE
	}{
		{FILTER_MIN_MAG_MIP_POINT, P, P, P},
		{FILTER_MIN_MAG_POINT_MIP_LINEAR, P, P, L},
		{FILTER_MIN_POINT_MAG_LINEAR_MIP_POINT, P, L, P},
		{FILTER_MIN_POINT_MAG_MIP_LINEAR, P, L, L},
		{FILTER_MIN_LINEAR_MAG_MIP_POINT, L, P, P},
		{FILTER_MIN_LINEAR_MAG_POINT_MIP_LINEAR, L, P, L},
		{FILTER_MIN_MAG_LINEAR_MIP_POINT, L, L, P},
		{FILTER_MIN_MAG_MIP_LINEAR, L, L, L},
	}
	reductions := []FILTER_REDUCTION_TYPE{
		FILTER_REDUCTION_TYPE_STANDARD,
		FILTER_REDUCTION_TYPE_COMPARISON,
		FILTER_REDUCTION_TYPE_MINIMUM,
		FILTER_REDUCTION_TYPE_MAXIMUM,
	}

	for _, r := range reductions {
		for _, tc := range basic {
			f := tc.filter | FILTER(uint32(r)<<FILTER_REDUCTION_TYPE_SHIFT)
			if got := EncodeBasicFilter(tc.min, tc.mag, tc.mip, r); got != f {
				t.Errorf("EncodeBasicFilter(%d, %d, %d, %d) = 0x%X, want 0x%X", tc.min, tc.mag, tc.mip, r, got, f)
			}
			if DecodeMinFilter(f) != tc.min || DecodeMagFilter(f) != tc.mag || DecodeMipFilter(f) != tc.mip {
				t.Errorf("0x%X decoded to %d, %d, %d", f, DecodeMinFilter(f), DecodeMagFilter(f), DecodeMipFilter(f))
			}
			if DecodeFilterReduction(f) != r {
				t.Errorf("0x%X reduction = %d, want %d", f, DecodeFilterReduction(f), r)
			}
			if DecodeIsComparisonFilter(f) != (r == FILTER_REDUCTION_TYPE_COMPARISON) {
				t.Errorf("0x%X DecodeIsComparisonFilter = %v", f, DecodeIsComparisonFilter(f))
			}
			if DecodeIsAnisotropicFilter(f) {
				t.Errorf("0x%X is not anisotropic", f)
			}
		}
	}

	anisotropic := []struct {
		filter    FILTER
		reduction FILTER_REDUCTION_TYPE
		mipPoint  bool
	}{
		{FILTER_ANISOTROPIC, FILTER_REDUCTION_TYPE_STANDARD, false},
		{FILTER_COMPARISON_ANISOTROPIC, FILTER_REDUCTION_TYPE_COMPARISON, false},
		{FILTER_MINIMUM_ANISOTROPIC, FILTER_REDUCTION_TYPE_MINIMUM, false},
		{FILTER_MAXIMUM_ANISOTROPIC, FILTER_REDUCTION_TYPE_MAXIMUM, false},
		{FILTER_MIN_MAG_ANISOTROPIC_MIP_POINT, FILTER_REDUCTION_TYPE_STANDARD, true},
		{FILTER_COMPARISON_MIN_MAG_ANISOTROPIC_MIP_POINT, FILTER_REDUCTION_TYPE_COMPARISON, true},
		{FILTER_MINIMUM_MIN_MAG_ANISOTROPIC_MIP_POINT, FILTER_REDUCTION_TYPE_MINIMUM, true},
		{FILTER_MAXIMUM_MIN_MAG_ANISOTROPIC_MIP_POINT, FILTER_REDUCTION_TYPE_MAXIMUM, true},
	}
	for _, tc := range anisotropic {
		var got FILTER
		if tc.mipPoint {
			got = EncodeMinMagAnisotropicMipPointFilter(tc.reduction)
		} else {
			got = EncodeAnisotropicFilter(tc.reduction)
		}
		if got != tc.filter {
			t.Errorf("reduction %d mipPoint %v encoded 0x%X, want 0x%X", tc.reduction, tc.mipPoint, got, tc.filter)
		}
		if DecodeIsAnisotropicFilter(tc.filter) == tc.mipPoint {
			t.Errorf("0x%X DecodeIsAnisotropicFilter = %v", tc.filter, DecodeIsAnisotropicFilter(tc.filter))
		}
		if DecodeFilterReduction(tc.filter) != tc.reduction {
			t.Errorf("0x%X reduction = %d", tc.filter, DecodeFilterReduction(tc.filter))
		}
	}
}

func TestMemcpySubresource(t *testing.T) {
	const (
		rowSize   = 5
		numRows   = 3
		numSlices = 2
		srcPitch  = 7
		dstPitch  = 8
	)

	src := make([]byte, srcPitch*numRows*numSlices)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, dstPitch*numRows*numSlices)

	srcData := SUBRESOURCE_DATA{
		PData:      unsafe.Pointer(unsafe.SliceData(src)),
		RowPitch:   srcPitch,
		SlicePitch: srcPitch * numRows,
	}
	dstData := MEMCPY_DEST{
		PData:      unsafe.Pointer(unsafe.SliceData(dst)),
		RowPitch:   dstPitch,
		SlicePitch: dstPitch * numRows,
	}
	MemcpySubresource(&dstData, &srcData, rowSize, numRows, numSlices)

	for z := 0; z < numSlices; z++ {
		for y := 0; y < numRows; y++ {
			s := src[z*srcPitch*numRows+y*srcPitch:][:rowSize]
			d := dst[z*dstPitch*numRows+y*dstPitch:][:dstPitch]
			if !bytes.Equal(d[:rowSize], s) {
				t.Errorf("slice %d row %d = %v, want %v", z, y, d[:rowSize], s)
			}
			if !bytes.Equal(d[rowSize:], make([]byte, dstPitch-rowSize)) {
				t.Errorf("slice %d row %d padding written: %v", z, y, d[rowSize:])
			}
		}
	}
}

func TestMemcpySubresourceOverflow(t *testing.T) {
	src := make([]byte, 16)
	dst := make([]byte, 16)
	srcData := SUBRESOURCE_DATA{PData: unsafe.Pointer(&src[0]), RowPitch: 8, SlicePitch: 16}
	dstData := MEMCPY_DEST{PData: unsafe.Pointer(&dst[0]), RowPitch: 4, SlicePitch: 16}

	defer func() {
		if recover() == nil {
			t.Error("row larger than destination pitch did not abort")
		}
	}()
	MemcpySubresource(&dstData, &srcData, 8, 2, 1)
}

func TestCheckFootprintOutputs(t *testing.T) {
	tests := []struct {
		name      string
		layouts   []PLACED_SUBRESOURCE_FOOTPRINT
		numRows   []uint32
		rowSizes  []uint64
		wantAbort bool
	}{
		{"all nil", nil, nil, nil, false},
		{"exact", make([]PLACED_SUBRESOURCE_FOOTPRINT, 3), make([]uint32, 3), make([]uint64, 3), false},
		{"longer", make([]PLACED_SUBRESOURCE_FOOTPRINT, 4), nil, nil, false},
		{"short layouts", make([]PLACED_SUBRESOURCE_FOOTPRINT, 2), nil, nil, true},
		{"short numRows", nil, make([]uint32, 1), nil, true},
		{"empty non nil rowSizes", nil, nil, []uint64{}, true},
	}
	for _, tc := range tests {
		func() {
			defer func() {
				if aborted := recover() != nil; aborted != tc.wantAbort {
					t.Errorf("%s: aborted = %v, want %v", tc.name, aborted, tc.wantAbort)
				}
			}()
			checkFootprintOutputs(3, tc.layouts, tc.numRows, tc.rowSizes)
		}()
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		v, alignment, want uint64
	}{
		{0, 256, 0},
		{1, 256, 256},
		{256, 256, 256},
		{257, 256, 512},
		{65535, DEFAULT_RESOURCE_PLACEMENT_ALIGNMENT, 65536},
	}
	for _, tc := range tests {
		if got := AlignUp(tc.v, tc.alignment); got != tc.want {
			t.Errorf("AlignUp(%d, %d) = %d, want %d", tc.v, tc.alignment, got, tc.want)
		}
	}
	if got := AlignUp(uint32(300), TEXTURE_DATA_PITCH_ALIGNMENT); got != 512 {
		t.Errorf("AlignUp(uint32(300), 256) = %d", got)
	}
}
