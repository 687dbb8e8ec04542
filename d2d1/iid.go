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

import "goarrg.com/rhi/dxr/com"

var (
	IID_ID2D1Resource                 = com.GUID{0x2CD90691, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1Image                    = com.GUID{0x65019F75, 0x8DA2, 0x497C, [8]byte{0xB3, 0x2C, 0xDF, 0xA3, 0x4E, 0x48, 0xED, 0xE6}}
	IID_ID2D1Bitmap                   = com.GUID{0xA2296057, 0xEA42, 0x4099, [8]byte{0x98, 0x3B, 0x53, 0x9F, 0xB6, 0x50, 0x54, 0x26}}
	IID_ID2D1GradientStopCollection   = com.GUID{0x2CD906A7, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1Brush                    = com.GUID{0x2CD906A8, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1BitmapBrush              = com.GUID{0x2CD906AA, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1SolidColorBrush          = com.GUID{0x2CD906A9, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1LinearGradientBrush      = com.GUID{0x2CD906AB, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1RadialGradientBrush      = com.GUID{0x2CD906AC, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1StrokeStyle              = com.GUID{0x2CD9069D, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1Geometry                 = com.GUID{0x2CD906A1, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1RectangleGeometry        = com.GUID{0x2CD906A2, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1RoundedRectangleGeometry = com.GUID{0x2CD906A3, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1EllipseGeometry          = com.GUID{0x2CD906A4, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1GeometryGroup            = com.GUID{0x2CD906A6, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1TransformedGeometry      = com.GUID{0x2CD906BB, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1SimplifiedGeometrySink   = com.GUID{0x2CD9069E, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1GeometrySink             = com.GUID{0x2CD9069F, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1TessellationSink         = com.GUID{0x2CD906C1, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1PathGeometry             = com.GUID{0x2CD906A5, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1Mesh                     = com.GUID{0x2CD906C2, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1Layer                    = com.GUID{0x2CD9069B, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1DrawingStateBlock        = com.GUID{0x28506E39, 0xEBF6, 0x46A1, [8]byte{0xBB, 0x47, 0xFD, 0x85, 0x56, 0x5A, 0xB9, 0x57}}
	IID_ID2D1RenderTarget             = com.GUID{0x2CD90694, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1BitmapRenderTarget       = com.GUID{0x2CD90695, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1HwndRenderTarget         = com.GUID{0x2CD90698, 0x12E2, 0x11DC, [8]byte{0x9F, 0xED, 0x00, 0x11, 0x43, 0xA0, 0x55, 0xF9}}
	IID_ID2D1GdiInteropRenderTarget   = com.GUID{0xE0DB51C3, 0x6F77, 0x4BAE, [8]byte{0xB3, 0xD5, 0xE4, 0x75, 0x09, 0xB3, 0x58, 0x38}}
	IID_ID2D1DCRenderTarget           = com.GUID{0x1C51BC64, 0xDE61, 0x46FD, [8]byte{0x98, 0x99, 0x63, 0xA5, 0xD8, 0xF0, 0x39, 0x50}}
	IID_ID2D1Factory                  = com.GUID{0x06152247, 0x6F50, 0x465A, [8]byte{0x92, 0x45, 0x11, 0x8B, 0xFD, 0x3B, 0x60, 0x07}}
)
