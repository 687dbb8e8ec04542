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
	"reflect"
	"slices"
	"testing"

	"goarrg.com/rhi/dxr/internal/layout"
)

func TestVtblSlotCounts(t *testing.T) {
	tests := []struct {
		vtbl  reflect.Type
		slots int
	}{
		{reflect.TypeFor[ResourceVtbl](), 4},
		{reflect.TypeFor[ImageVtbl](), 4},
		{reflect.TypeFor[BitmapVtbl](), 11},
		{reflect.TypeFor[GradientStopCollectionVtbl](), 8},
		{reflect.TypeFor[BrushVtbl](), 8},
		{reflect.TypeFor[BitmapBrushVtbl](), 16},
		{reflect.TypeFor[SolidColorBrushVtbl](), 10},
		{reflect.TypeFor[LinearGradientBrushVtbl](), 13},
		{reflect.TypeFor[RadialGradientBrushVtbl](), 17},
		{reflect.TypeFor[StrokeStyleVtbl](), 13},
		{reflect.TypeFor[GeometryVtbl](), 17},
		{reflect.TypeFor[RectangleGeometryVtbl](), 18},
		{reflect.TypeFor[GeometryGroupVtbl](), 20},
		{reflect.TypeFor[TransformedGeometryVtbl](), 19},
		{reflect.TypeFor[SimplifiedGeometrySinkVtbl](), 10},
		{reflect.TypeFor[GeometrySinkVtbl](), 15},
		{reflect.TypeFor[TessellationSinkVtbl](), 5},
		{reflect.TypeFor[PathGeometryVtbl](), 21},
		{reflect.TypeFor[MeshVtbl](), 5},
		{reflect.TypeFor[LayerVtbl](), 5},
		{reflect.TypeFor[DrawingStateBlockVtbl](), 8},
		{reflect.TypeFor[RenderTargetVtbl](), 57},
		{reflect.TypeFor[BitmapRenderTargetVtbl](), 58},
		{reflect.TypeFor[HwndRenderTargetVtbl](), 60},
		{reflect.TypeFor[GdiInteropRenderTargetVtbl](), 5},
		{reflect.TypeFor[DCRenderTargetVtbl](), 58},
		{reflect.TypeFor[FactoryVtbl](), 17},
	}

	for _, tc := range tests {
		slots, err := layout.Slots(tc.vtbl)
		if err != nil {
			t.Errorf("%s: %v", tc.vtbl.Name(), err)
			continue
		}
		if len(slots) != tc.slots {
			t.Errorf("%s has %d slots, want %d", tc.vtbl.Name(), len(slots), tc.slots)
		}
		if !slices.Equal(slots[:3], []string{"QueryInterface", "AddRef", "Release"}) {
			t.Errorf("%s does not start with IUnknown: %v", tc.vtbl.Name(), slots[:3])
		}
	}
}

func TestVtblSlotIndices(t *testing.T) {
	tests := []struct {
		vtbl   reflect.Type
		method string
		index  int
	}{
		{reflect.TypeFor[ResourceVtbl](), "GetFactory", 3},
		{reflect.TypeFor[BitmapVtbl](), "GetSize", 4},
		{reflect.TypeFor[BitmapVtbl](), "CopyFromMemory", 10},
		{reflect.TypeFor[BrushVtbl](), "SetTransform", 5},
		{reflect.TypeFor[SolidColorBrushVtbl](), "SetColor", 8},
		{reflect.TypeFor[GeometryVtbl](), "GetBounds", 4},
		{reflect.TypeFor[GeometryVtbl](), "FillContainsPoint", 7},
		{reflect.TypeFor[GeometryVtbl](), "Widen", 16},
		{reflect.TypeFor[SimplifiedGeometrySinkVtbl](), "BeginFigure", 5},
		{reflect.TypeFor[SimplifiedGeometrySinkVtbl](), "Close", 9},
		{reflect.TypeFor[GeometrySinkVtbl](), "AddLine", 10},
		{reflect.TypeFor[GeometrySinkVtbl](), "AddArc", 14},
		{reflect.TypeFor[PathGeometryVtbl](), "Open", 17},
		{reflect.TypeFor[PathGeometryVtbl](), "GetFigureCount", 20},
		{reflect.TypeFor[RenderTargetVtbl](), "CreateBitmap", 4},
		{reflect.TypeFor[RenderTargetVtbl](), "CreateSolidColorBrush", 8},
		{reflect.TypeFor[RenderTargetVtbl](), "DrawLine", 15},
		{reflect.TypeFor[RenderTargetVtbl](), "DrawText", 27},
		{reflect.TypeFor[RenderTargetVtbl](), "SetTransform", 30},
		{reflect.TypeFor[RenderTargetVtbl](), "Clear", 47},
		{reflect.TypeFor[RenderTargetVtbl](), "BeginDraw", 48},
		{reflect.TypeFor[RenderTargetVtbl](), "EndDraw", 49},
		{reflect.TypeFor[RenderTargetVtbl](), "IsSupported", 56},
		{reflect.TypeFor[HwndRenderTargetVtbl](), "CheckWindowState", 57},
		{reflect.TypeFor[HwndRenderTargetVtbl](), "GetHwnd", 59},
		{reflect.TypeFor[GdiInteropRenderTargetVtbl](), "GetDC", 3},
		{reflect.TypeFor[FactoryVtbl](), "ReloadSystemMetrics", 3},
		{reflect.TypeFor[FactoryVtbl](), "CreatePathGeometry", 10},
		{reflect.TypeFor[FactoryVtbl](), "CreateHwndRenderTarget", 14},
		{reflect.TypeFor[FactoryVtbl](), "CreateDCRenderTarget", 16},
	}

	for _, tc := range tests {
		slots, err := layout.Slots(tc.vtbl)
		if err != nil {
			t.Errorf("%s: %v", tc.vtbl.Name(), err)
			continue
		}
		if got := slices.Index(slots, tc.method); got != tc.index {
			t.Errorf("%s.%s is slot %d, want %d", tc.vtbl.Name(), tc.method, got, tc.index)
		}
	}
}
