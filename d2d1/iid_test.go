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
	"testing"

	"goarrg.com/rhi/dxr/com"
)

func TestIIDs(t *testing.T) {
	tests := []struct {
		name string
		got  com.GUID
		want string
	}{
		{"ID2D1Resource", IID_ID2D1Resource, "2cd90691-12e2-11dc-9fed-001143a055f9"},
		{"ID2D1Image", IID_ID2D1Image, "65019f75-8da2-497c-b32c-dfa34e48ede6"},
		{"ID2D1Bitmap", IID_ID2D1Bitmap, "a2296057-ea42-4099-983b-539fb6505426"},
		{"ID2D1SolidColorBrush", IID_ID2D1SolidColorBrush, "2cd906a9-12e2-11dc-9fed-001143a055f9"},
		{"ID2D1Geometry", IID_ID2D1Geometry, "2cd906a1-12e2-11dc-9fed-001143a055f9"},
		{"ID2D1PathGeometry", IID_ID2D1PathGeometry, "2cd906a5-12e2-11dc-9fed-001143a055f9"},
		{"ID2D1GeometrySink", IID_ID2D1GeometrySink, "2cd9069f-12e2-11dc-9fed-001143a055f9"},
		{"ID2D1DrawingStateBlock", IID_ID2D1DrawingStateBlock, "28506e39-ebf6-46a1-bb47-fd85565ab957"},
		{"ID2D1RenderTarget", IID_ID2D1RenderTarget, "2cd90694-12e2-11dc-9fed-001143a055f9"},
		{"ID2D1HwndRenderTarget", IID_ID2D1HwndRenderTarget, "2cd90698-12e2-11dc-9fed-001143a055f9"},
		{"ID2D1GdiInteropRenderTarget", IID_ID2D1GdiInteropRenderTarget, "e0db51c3-6f77-4bae-b3d5-e47509b35838"},
		{"ID2D1DCRenderTarget", IID_ID2D1DCRenderTarget, "1c51bc64-de61-46fd-9899-63a5d8f03950"},
		{"ID2D1Factory", IID_ID2D1Factory, "06152247-6f50-465a-9245-118bfd3b6007"},
	}

	for _, tc := range tests {
		if want := com.MustParseGUID(tc.want); tc.got != want {
			t.Errorf("IID_%s = %s, want %s", tc.name, tc.got, want)
		}
	}
}

func TestIIDsUnique(t *testing.T) {
	all := []com.GUID{
		IID_ID2D1Resource, IID_ID2D1Image, IID_ID2D1Bitmap, IID_ID2D1GradientStopCollection,
		IID_ID2D1Brush, IID_ID2D1BitmapBrush, IID_ID2D1SolidColorBrush, IID_ID2D1LinearGradientBrush,
		IID_ID2D1RadialGradientBrush, IID_ID2D1StrokeStyle, IID_ID2D1Geometry, IID_ID2D1RectangleGeometry,
		IID_ID2D1RoundedRectangleGeometry, IID_ID2D1EllipseGeometry, IID_ID2D1GeometryGroup,
		IID_ID2D1TransformedGeometry, IID_ID2D1SimplifiedGeometrySink, IID_ID2D1GeometrySink,
		IID_ID2D1TessellationSink, IID_ID2D1PathGeometry, IID_ID2D1Mesh, IID_ID2D1Layer,
		IID_ID2D1DrawingStateBlock, IID_ID2D1RenderTarget, IID_ID2D1BitmapRenderTarget,
		IID_ID2D1HwndRenderTarget, IID_ID2D1GdiInteropRenderTarget, IID_ID2D1DCRenderTarget,
		IID_ID2D1Factory,
	}
	seen := make(map[com.GUID]int, len(all))
	for i, g := range all {
		if j, ok := seen[g]; ok {
			t.Errorf("IID %d and %d are both %s", j, i, g)
		}
		seen[g] = i
	}
}
