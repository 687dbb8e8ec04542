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

package dxgi

import "testing"

func TestFormatValues(t *testing.T) {
	tests := []struct {
		f    FORMAT
		want uint32
	}{
		{FORMAT_R32G32B32A32_FLOAT, 2},
		{FORMAT_R8G8B8A8_UNORM, 28},
		{FORMAT_D32_FLOAT, 40},
		{FORMAT_D24_UNORM_S8_UINT, 45},
		{FORMAT_BC1_UNORM, 71},
		{FORMAT_B8G8R8A8_UNORM, 87},
		{FORMAT_BC7_UNORM_SRGB, 99},
		{FORMAT_NV12, 103},
		{FORMAT_B4G4R4A4_UNORM, 115},
		{FORMAT_P208, 130},
		{FORMAT_V408, 132},
		{FORMAT_A4B4G4R4_UNORM, 191},
	}
	for _, tc := range tests {
		if uint32(tc.f) != tc.want {
			t.Errorf("%s = %d, want %d", tc.f, uint32(tc.f), tc.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	if s := FORMAT_R16G16B16A16_FLOAT.String(); s != "R16G16B16A16_FLOAT" {
		t.Errorf("String() = %q", s)
	}
	if s := FORMAT(500).String(); s != "FORMAT(500)" {
		t.Errorf("String() = %q", s)
	}
}

func TestBitsPerPixel(t *testing.T) {
	tests := []struct {
		f    FORMAT
		bits uint32
		bc   bool
	}{
		{FORMAT_UNKNOWN, 0, false},
		{FORMAT_R32G32B32A32_UINT, 128, false},
		{FORMAT_R32G32B32_FLOAT, 96, false},
		{FORMAT_R16G16B16A16_FLOAT, 64, false},
		{FORMAT_R8G8B8A8_UNORM_SRGB, 32, false},
		{FORMAT_B8G8R8A8_UNORM, 32, false},
		{FORMAT_R16_FLOAT, 16, false},
		{FORMAT_B5G6R5_UNORM, 16, false},
		{FORMAT_A8_UNORM, 8, false},
		{FORMAT_R1_UNORM, 1, false},
		{FORMAT_NV12, 12, false},
		{FORMAT_BC1_UNORM, 4, true},
		{FORMAT_BC4_SNORM, 4, true},
		{FORMAT_BC3_UNORM, 8, true},
		{FORMAT_BC6H_UF16, 8, true},
		{FORMAT_BC7_UNORM, 8, true},
	}
	for _, tc := range tests {
		if got := BitsPerPixel(tc.f); got != tc.bits {
			t.Errorf("BitsPerPixel(%s) = %d, want %d", tc.f, got, tc.bits)
		}
		if got := IsBlockCompressed(tc.f); got != tc.bc {
			t.Errorf("IsBlockCompressed(%s) = %v, want %v", tc.f, got, tc.bc)
		}
	}

	if BlockSize(FORMAT_BC1_UNORM) != 8 || BlockSize(FORMAT_BC7_UNORM) != 16 || BlockSize(FORMAT_R8_UNORM) != 0 {
		t.Errorf("BlockSize mismatch")
	}
}
