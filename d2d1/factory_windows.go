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
	"unsafe"

	"goarrg.com/rhi/dxr/com"
)

// ReloadSystemMetrics refreshes the desktop dpi reported by GetDesktopDpi.
func (i *Factory) ReloadSystemMetrics() error {
	return com.Check("ID2D1Factory::ReloadSystemMetrics", com.Call(i.vtbl().ReloadSystemMetrics, uintptr(unsafe.Pointer(i))))
}

func (i *Factory) GetDesktopDpi() (dpiX, dpiY float32) {
	com.CallRaw(i.vtbl().GetDesktopDpi,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&dpiX)),
		uintptr(unsafe.Pointer(&dpiY)),
	)
	return dpiX, dpiY
}

func (i *Factory) CreateRectangleGeometry(rectangle *RECT_F) (*RectangleGeometry, error) {
	var geometry *RectangleGeometry
	err := com.Check("ID2D1Factory::CreateRectangleGeometry", com.Call(i.vtbl().CreateRectangleGeometry,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(rectangle)),
		uintptr(unsafe.Pointer(&geometry)),
	))
	return geometry, err
}

func (i *Factory) CreateRoundedRectangleGeometry(roundedRectangle *ROUNDED_RECT) (*RoundedRectangleGeometry, error) {
	var geometry *RoundedRectangleGeometry
	err := com.Check("ID2D1Factory::CreateRoundedRectangleGeometry", com.Call(i.vtbl().CreateRoundedRectangleGeometry,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(roundedRectangle)),
		uintptr(unsafe.Pointer(&geometry)),
	))
	return geometry, err
}

func (i *Factory) CreateEllipseGeometry(ellipse *ELLIPSE) (*EllipseGeometry, error) {
	var geometry *EllipseGeometry
	err := com.Check("ID2D1Factory::CreateEllipseGeometry", com.Call(i.vtbl().CreateEllipseGeometry,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(ellipse)),
		uintptr(unsafe.Pointer(&geometry)),
	))
	return geometry, err
}

func (i *Factory) CreateGeometryGroup(fillMode FILL_MODE, geometries []*Geometry) (*GeometryGroup, error) {
	var group *GeometryGroup
	err := com.Check("ID2D1Factory::CreateGeometryGroup", com.Call(i.vtbl().CreateGeometryGroup,
		uintptr(unsafe.Pointer(i)),
		uintptr(fillMode),
		uintptr(unsafe.Pointer(unsafe.SliceData(geometries))),
		uintptr(len(geometries)),
		uintptr(unsafe.Pointer(&group)),
	))
	return group, err
}

func (i *Factory) CreateTransformedGeometry(sourceGeometry *Geometry, transform *MATRIX_3X2_F) (*TransformedGeometry, error) {
	var geometry *TransformedGeometry
	err := com.Check("ID2D1Factory::CreateTransformedGeometry", com.Call(i.vtbl().CreateTransformedGeometry,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(sourceGeometry)),
		uintptr(unsafe.Pointer(transform)),
		uintptr(unsafe.Pointer(&geometry)),
	))
	return geometry, err
}

func (i *Factory) CreatePathGeometry() (*PathGeometry, error) {
	var geometry *PathGeometry
	err := com.Check("ID2D1Factory::CreatePathGeometry", com.Call(i.vtbl().CreatePathGeometry,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&geometry)),
	))
	return geometry, err
}

// CreateStrokeStyle takes dashes only with DASH_STYLE_CUSTOM.
func (i *Factory) CreateStrokeStyle(properties *STROKE_STYLE_PROPERTIES, dashes []float32) (*StrokeStyle, error) {
	var style *StrokeStyle
	err := com.Check("ID2D1Factory::CreateStrokeStyle", com.Call(i.vtbl().CreateStrokeStyle,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(properties)),
		uintptr(unsafe.Pointer(unsafe.SliceData(dashes))),
		uintptr(len(dashes)),
		uintptr(unsafe.Pointer(&style)),
	))
	return style, err
}

// CreateDrawingStateBlock takes an optional IDWriteRenderingParams.
func (i *Factory) CreateDrawingStateBlock(desc *DRAWING_STATE_DESCRIPTION, textRenderingParams *com.IUnknown) (*DrawingStateBlock, error) {
	var block *DrawingStateBlock
	err := com.Check("ID2D1Factory::CreateDrawingStateBlock", com.Call(i.vtbl().CreateDrawingStateBlock,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(textRenderingParams)),
		uintptr(unsafe.Pointer(&block)),
	))
	return block, err
}

// CreateWicBitmapRenderTarget draws into an IWICBitmap.
func (i *Factory) CreateWicBitmapRenderTarget(target *com.IUnknown, properties *RENDER_TARGET_PROPERTIES) (*RenderTarget, error) {
	var rt *RenderTarget
	err := com.Check("ID2D1Factory::CreateWicBitmapRenderTarget", com.Call(i.vtbl().CreateWicBitmapRenderTarget,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(target)),
		uintptr(unsafe.Pointer(properties)),
		uintptr(unsafe.Pointer(&rt)),
	))
	return rt, err
}

func (i *Factory) CreateHwndRenderTarget(properties *RENDER_TARGET_PROPERTIES, hwndProperties *HWND_RENDER_TARGET_PROPERTIES) (*HwndRenderTarget, error) {
	var rt *HwndRenderTarget
	err := com.Check("ID2D1Factory::CreateHwndRenderTarget", com.Call(i.vtbl().CreateHwndRenderTarget,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(properties)),
		uintptr(unsafe.Pointer(hwndProperties)),
		uintptr(unsafe.Pointer(&rt)),
	))
	return rt, err
}

// CreateDxgiSurfaceRenderTarget draws into an IDXGISurface.
func (i *Factory) CreateDxgiSurfaceRenderTarget(surface *com.IUnknown, properties *RENDER_TARGET_PROPERTIES) (*RenderTarget, error) {
	var rt *RenderTarget
	err := com.Check("ID2D1Factory::CreateDxgiSurfaceRenderTarget", com.Call(i.vtbl().CreateDxgiSurfaceRenderTarget,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(surface)),
		uintptr(unsafe.Pointer(properties)),
		uintptr(unsafe.Pointer(&rt)),
	))
	return rt, err
}

func (i *Factory) CreateDCRenderTarget(properties *RENDER_TARGET_PROPERTIES) (*DCRenderTarget, error) {
	var rt *DCRenderTarget
	err := com.Check("ID2D1Factory::CreateDCRenderTarget", com.Call(i.vtbl().CreateDCRenderTarget,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(properties)),
		uintptr(unsafe.Pointer(&rt)),
	))
	return rt, err
}
