//go:build amd64 || arm64
// +build amd64 arm64

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

package d2d1

import (
	"math"
	"reflect"
	"testing"

	"goarrg.com/rhi/dxr/internal/layout"
)

func TestStructSizes(t *testing.T) {
	tests := []struct {
		t    reflect.Type
		size uintptr
	}{
		{reflect.TypeFor[PIXEL_FORMAT](), 8},
		{reflect.TypeFor[COLOR_F](), 16},
		{reflect.TypeFor[MATRIX_3X2_F](), 24},
		{reflect.TypeFor[BITMAP_PROPERTIES](), 16},
		{reflect.TypeFor[GRADIENT_STOP](), 20},
		{reflect.TypeFor[BRUSH_PROPERTIES](), 28},
		{reflect.TypeFor[BITMAP_BRUSH_PROPERTIES](), 12},
		{reflect.TypeFor[LINEAR_GRADIENT_BRUSH_PROPERTIES](), 16},
		{reflect.TypeFor[RADIAL_GRADIENT_BRUSH_PROPERTIES](), 24},
		{reflect.TypeFor[BEZIER_SEGMENT](), 24},
		{reflect.TypeFor[TRIANGLE](), 24},
		{reflect.TypeFor[ARC_SEGMENT](), 28},
		{reflect.TypeFor[QUADRATIC_BEZIER_SEGMENT](), 16},
		{reflect.TypeFor[ELLIPSE](), 16},
		{reflect.TypeFor[ROUNDED_RECT](), 24},
		{reflect.TypeFor[STROKE_STYLE_PROPERTIES](), 28},
		{reflect.TypeFor[LAYER_PARAMETERS](), 72},
		{reflect.TypeFor[RENDER_TARGET_PROPERTIES](), 28},
		{reflect.TypeFor[HWND_RENDER_TARGET_PROPERTIES](), 24},
		{reflect.TypeFor[DRAWING_STATE_DESCRIPTION](), 48},
		{reflect.TypeFor[FACTORY_OPTIONS](), 4},
	}

	for _, tc := range tests {
		if tc.t.Size() != tc.size {
			t.Errorf("%s is %d bytes, want %d", tc.t.Name(), tc.t.Size(), tc.size)
		}
	}
}

func TestFieldOffsets(t *testing.T) {
	tests := []struct {
		s      layout.Struct
		path   string
		offset uintptr
	}{
		{layout.Of[LAYER_PARAMETERS](), "GeometricMask", 16},
		{layout.Of[LAYER_PARAMETERS](), "MaskTransform.M11", 28},
		{layout.Of[LAYER_PARAMETERS](), "OpacityBrush", 56},
		{layout.Of[LAYER_PARAMETERS](), "LayerOptions", 64},
		{layout.Of[RENDER_TARGET_PROPERTIES](), "DpiX", 12},
		{layout.Of[RENDER_TARGET_PROPERTIES](), "MinLevel", 24},
		{layout.Of[HWND_RENDER_TARGET_PROPERTIES](), "PixelSize.Width", 8},
		{layout.Of[HWND_RENDER_TARGET_PROPERTIES](), "PresentOptions", 16},
		{layout.Of[DRAWING_STATE_DESCRIPTION](), "Tag1", 8},
		{layout.Of[DRAWING_STATE_DESCRIPTION](), "Transform.M31", 40},
		{layout.Of[ARC_SEGMENT](), "ArcSize", 24},
	}

	for _, tc := range tests {
		f, ok := tc.s.Field(tc.path)
		if !ok {
			t.Errorf("%s has no field %s", tc.s.Name, tc.path)
			continue
		}
		if f.Offset != tc.offset {
			t.Errorf("%s.%s is at %d, want %d", tc.s.Name, tc.path, f.Offset, tc.offset)
		}
	}
}

func TestPackedWords(t *testing.T) {
	if got := Point2F(1, 2).word(); got != uintptr(math.Float32bits(1))|uintptr(math.Float32bits(2))<<32 {
		t.Errorf("POINT_2F.word() = 0x%X", got)
	}
	if got := SizeU(3, 4).word(); got != 3|4<<32 {
		t.Errorf("SIZE_U.word() = 0x%X", got)
	}
}
