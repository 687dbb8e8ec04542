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
	"unsafe"

	"goarrg.com/rhi/dxr/com"
	"golang.org/x/sys/windows"
)

// CreateBitmap creates a bitmap of size, initialised from src when it is not
// empty.
func (i *RenderTarget) CreateBitmap(size SIZE_U, src []byte, pitch uint32, properties *BITMAP_PROPERTIES) (*Bitmap, error) {
	var bitmap *Bitmap
	err := com.Check("ID2D1RenderTarget::CreateBitmap", com.Call(i.vtbl().CreateBitmap,
		uintptr(unsafe.Pointer(i)),
		size.word(),
		uintptr(unsafe.Pointer(unsafe.SliceData(src))),
		uintptr(pitch),
		uintptr(unsafe.Pointer(properties)),
		uintptr(unsafe.Pointer(&bitmap)),
	))
	return bitmap, err
}

// CreateBitmapFromWicBitmap takes an IWICBitmapSource.
func (i *RenderTarget) CreateBitmapFromWicBitmap(wicBitmapSource *com.IUnknown, properties *BITMAP_PROPERTIES) (*Bitmap, error) {
	var bitmap *Bitmap
	err := com.Check("ID2D1RenderTarget::CreateBitmapFromWicBitmap", com.Call(i.vtbl().CreateBitmapFromWicBitmap,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(wicBitmapSource)),
		uintptr(unsafe.Pointer(properties)),
		uintptr(unsafe.Pointer(&bitmap)),
	))
	return bitmap, err
}

// CreateSharedBitmap shares data, an ID2D1Bitmap, IDXGISurface or
// IWICBitmapLock identified by riid, with this render target.
func (i *RenderTarget) CreateSharedBitmap(riid *com.GUID, data unsafe.Pointer, properties *BITMAP_PROPERTIES) (*Bitmap, error) {
	var bitmap *Bitmap
	err := com.Check("ID2D1RenderTarget::CreateSharedBitmap", com.Call(i.vtbl().CreateSharedBitmap,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(riid)),
		uintptr(data),
		uintptr(unsafe.Pointer(properties)),
		uintptr(unsafe.Pointer(&bitmap)),
	))
	return bitmap, err
}

func (i *RenderTarget) CreateBitmapBrush(bitmap *Bitmap, bitmapBrushProperties *BITMAP_BRUSH_PROPERTIES, brushProperties *BRUSH_PROPERTIES) (*BitmapBrush, error) {
	var brush *BitmapBrush
	err := com.Check("ID2D1RenderTarget::CreateBitmapBrush", com.Call(i.vtbl().CreateBitmapBrush,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(bitmap)),
		uintptr(unsafe.Pointer(bitmapBrushProperties)),
		uintptr(unsafe.Pointer(brushProperties)),
		uintptr(unsafe.Pointer(&brush)),
	))
	return brush, err
}

func (i *RenderTarget) CreateSolidColorBrush(color *COLOR_F, brushProperties *BRUSH_PROPERTIES) (*SolidColorBrush, error) {
	var brush *SolidColorBrush
	err := com.Check("ID2D1RenderTarget::CreateSolidColorBrush", com.Call(i.vtbl().CreateSolidColorBrush,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(color)),
		uintptr(unsafe.Pointer(brushProperties)),
		uintptr(unsafe.Pointer(&brush)),
	))
	return brush, err
}

func (i *RenderTarget) CreateGradientStopCollection(stops []GRADIENT_STOP, colorInterpolationGamma GAMMA, extendMode EXTEND_MODE) (*GradientStopCollection, error) {
	var collection *GradientStopCollection
	err := com.Check("ID2D1RenderTarget::CreateGradientStopCollection", com.Call(i.vtbl().CreateGradientStopCollection,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(unsafe.SliceData(stops))),
		uintptr(len(stops)),
		uintptr(colorInterpolationGamma),
		uintptr(extendMode),
		uintptr(unsafe.Pointer(&collection)),
	))
	return collection, err
}

func (i *RenderTarget) CreateLinearGradientBrush(linearGradientBrushProperties *LINEAR_GRADIENT_BRUSH_PROPERTIES, brushProperties *BRUSH_PROPERTIES, stops *GradientStopCollection) (*LinearGradientBrush, error) {
	var brush *LinearGradientBrush
	err := com.Check("ID2D1RenderTarget::CreateLinearGradientBrush", com.Call(i.vtbl().CreateLinearGradientBrush,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(linearGradientBrushProperties)),
		uintptr(unsafe.Pointer(brushProperties)),
		uintptr(unsafe.Pointer(stops)),
		uintptr(unsafe.Pointer(&brush)),
	))
	return brush, err
}

func (i *RenderTarget) CreateRadialGradientBrush(radialGradientBrushProperties *RADIAL_GRADIENT_BRUSH_PROPERTIES, brushProperties *BRUSH_PROPERTIES, stops *GradientStopCollection) (*RadialGradientBrush, error) {
	var brush *RadialGradientBrush
	err := com.Check("ID2D1RenderTarget::CreateRadialGradientBrush", com.Call(i.vtbl().CreateRadialGradientBrush,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(radialGradientBrushProperties)),
		uintptr(unsafe.Pointer(brushProperties)),
		uintptr(unsafe.Pointer(stops)),
		uintptr(unsafe.Pointer(&brush)),
	))
	return brush, err
}

// CreateCompatibleRenderTarget creates an offscreen target, nil size, pixel
// size and format inherit from this target.
func (i *RenderTarget) CreateCompatibleRenderTarget(desiredSize *SIZE_F, desiredPixelSize *SIZE_U, desiredFormat *PIXEL_FORMAT, options COMPATIBLE_RENDER_TARGET_OPTIONS) (*BitmapRenderTarget, error) {
	var target *BitmapRenderTarget
	err := com.Check("ID2D1RenderTarget::CreateCompatibleRenderTarget", com.Call(i.vtbl().CreateCompatibleRenderTarget,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(desiredSize)),
		uintptr(unsafe.Pointer(desiredPixelSize)),
		uintptr(unsafe.Pointer(desiredFormat)),
		uintptr(options),
		uintptr(unsafe.Pointer(&target)),
	))
	return target, err
}

func (i *RenderTarget) CreateLayer(size *SIZE_F) (*Layer, error) {
	var layer *Layer
	err := com.Check("ID2D1RenderTarget::CreateLayer", com.Call(i.vtbl().CreateLayer,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(size)),
		uintptr(unsafe.Pointer(&layer)),
	))
	return layer, err
}

func (i *RenderTarget) CreateMesh() (*Mesh, error) {
	var mesh *Mesh
	err := com.Check("ID2D1RenderTarget::CreateMesh", com.Call(i.vtbl().CreateMesh,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&mesh)),
	))
	return mesh, err
}

func (i *RenderTarget) DrawLine(point0, point1 POINT_2F, brush *Brush, strokeWidth float32, strokeStyle *StrokeStyle) {
	com.CallRaw(i.vtbl().DrawLine,
		uintptr(unsafe.Pointer(i)),
		point0.word(),
		point1.word(),
		uintptr(unsafe.Pointer(brush)),
		uintptr(math.Float32bits(strokeWidth)),
		uintptr(unsafe.Pointer(strokeStyle)),
	)
}

func (i *RenderTarget) DrawRectangle(rect *RECT_F, brush *Brush, strokeWidth float32, strokeStyle *StrokeStyle) {
	com.CallRaw(i.vtbl().DrawRectangle,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(rect)),
		uintptr(unsafe.Pointer(brush)),
		uintptr(math.Float32bits(strokeWidth)),
		uintptr(unsafe.Pointer(strokeStyle)),
	)
}

func (i *RenderTarget) FillRectangle(rect *RECT_F, brush *Brush) {
	com.CallRaw(i.vtbl().FillRectangle,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(rect)),
		uintptr(unsafe.Pointer(brush)),
	)
}

func (i *RenderTarget) DrawRoundedRectangle(roundedRect *ROUNDED_RECT, brush *Brush, strokeWidth float32, strokeStyle *StrokeStyle) {
	com.CallRaw(i.vtbl().DrawRoundedRectangle,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(roundedRect)),
		uintptr(unsafe.Pointer(brush)),
		uintptr(math.Float32bits(strokeWidth)),
		uintptr(unsafe.Pointer(strokeStyle)),
	)
}

func (i *RenderTarget) FillRoundedRectangle(roundedRect *ROUNDED_RECT, brush *Brush) {
	com.CallRaw(i.vtbl().FillRoundedRectangle,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(roundedRect)),
		uintptr(unsafe.Pointer(brush)),
	)
}

func (i *RenderTarget) DrawEllipse(ellipse *ELLIPSE, brush *Brush, strokeWidth float32, strokeStyle *StrokeStyle) {
	com.CallRaw(i.vtbl().DrawEllipse,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(ellipse)),
		uintptr(unsafe.Pointer(brush)),
		uintptr(math.Float32bits(strokeWidth)),
		uintptr(unsafe.Pointer(strokeStyle)),
	)
}

func (i *RenderTarget) FillEllipse(ellipse *ELLIPSE, brush *Brush) {
	com.CallRaw(i.vtbl().FillEllipse,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(ellipse)),
		uintptr(unsafe.Pointer(brush)),
	)
}

func (i *RenderTarget) DrawGeometry(geometry *Geometry, brush *Brush, strokeWidth float32, strokeStyle *StrokeStyle) {
	com.CallRaw(i.vtbl().DrawGeometry,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(geometry)),
		uintptr(unsafe.Pointer(brush)),
		uintptr(math.Float32bits(strokeWidth)),
		uintptr(unsafe.Pointer(strokeStyle)),
	)
}

func (i *RenderTarget) FillGeometry(geometry *Geometry, brush *Brush, opacityBrush *Brush) {
	com.CallRaw(i.vtbl().FillGeometry,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(geometry)),
		uintptr(unsafe.Pointer(brush)),
		uintptr(unsafe.Pointer(opacityBrush)),
	)
}

func (i *RenderTarget) FillMesh(mesh *Mesh, brush *Brush) {
	com.CallRaw(i.vtbl().FillMesh,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(mesh)),
		uintptr(unsafe.Pointer(brush)),
	)
}

func (i *RenderTarget) FillOpacityMask(opacityMask *Bitmap, brush *Brush, content OPACITY_MASK_CONTENT, destinationRectangle, sourceRectangle *RECT_F) {
	com.CallRaw(i.vtbl().FillOpacityMask,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(opacityMask)),
		uintptr(unsafe.Pointer(brush)),
		uintptr(content),
		uintptr(unsafe.Pointer(destinationRectangle)),
		uintptr(unsafe.Pointer(sourceRectangle)),
	)
}

func (i *RenderTarget) DrawBitmap(bitmap *Bitmap, destinationRectangle *RECT_F, opacity float32, interpolationMode BITMAP_INTERPOLATION_MODE, sourceRectangle *RECT_F) {
	com.CallRaw(i.vtbl().DrawBitmap,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(bitmap)),
		uintptr(unsafe.Pointer(destinationRectangle)),
		uintptr(math.Float32bits(opacity)),
		uintptr(interpolationMode),
		uintptr(unsafe.Pointer(sourceRectangle)),
	)
}

// DrawText lays out text with textFormat, an IDWriteTextFormat, inside
// layoutRect.
func (i *RenderTarget) DrawText(text string, textFormat *com.IUnknown, layoutRect *RECT_F, brush *Brush, options DRAW_TEXT_OPTIONS, measuringMode MEASURING_MODE) error {
	text16, err := windows.UTF16FromString(text)
	if err != nil {
		return err
	}
	com.CallRaw(i.vtbl().DrawText,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(unsafe.SliceData(text16))),
		uintptr(len(text16)-1),
		uintptr(unsafe.Pointer(textFormat)),
		uintptr(unsafe.Pointer(layoutRect)),
		uintptr(unsafe.Pointer(brush)),
		uintptr(options),
		uintptr(measuringMode),
	)
	return nil
}

// DrawTextLayout draws an IDWriteTextLayout at origin.
func (i *RenderTarget) DrawTextLayout(origin POINT_2F, textLayout *com.IUnknown, brush *Brush, options DRAW_TEXT_OPTIONS) {
	com.CallRaw(i.vtbl().DrawTextLayout,
		uintptr(unsafe.Pointer(i)),
		origin.word(),
		uintptr(unsafe.Pointer(textLayout)),
		uintptr(unsafe.Pointer(brush)),
		uintptr(options),
	)
}

// DrawGlyphRun takes a DWRITE_GLYPH_RUN, which is passed through untouched.
func (i *RenderTarget) DrawGlyphRun(baselineOrigin POINT_2F, glyphRun unsafe.Pointer, foregroundBrush *Brush, measuringMode MEASURING_MODE) {
	com.CallRaw(i.vtbl().DrawGlyphRun,
		uintptr(unsafe.Pointer(i)),
		baselineOrigin.word(),
		uintptr(glyphRun),
		uintptr(unsafe.Pointer(foregroundBrush)),
		uintptr(measuringMode),
	)
}

func (i *RenderTarget) SetTransform(transform *MATRIX_3X2_F) {
	com.CallRaw(i.vtbl().SetTransform, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(transform)))
}

func (i *RenderTarget) GetTransform() MATRIX_3X2_F {
	var m MATRIX_3X2_F
	com.CallRaw(i.vtbl().GetTransform, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&m)))
	return m
}

func (i *RenderTarget) SetAntialiasMode(antialiasMode ANTIALIAS_MODE) {
	com.CallRaw(i.vtbl().SetAntialiasMode, uintptr(unsafe.Pointer(i)), uintptr(antialiasMode))
}

func (i *RenderTarget) GetAntialiasMode() ANTIALIAS_MODE {
	return ANTIALIAS_MODE(com.CallRaw(i.vtbl().GetAntialiasMode, uintptr(unsafe.Pointer(i))))
}

func (i *RenderTarget) SetTextAntialiasMode(textAntialiasMode TEXT_ANTIALIAS_MODE) {
	com.CallRaw(i.vtbl().SetTextAntialiasMode, uintptr(unsafe.Pointer(i)), uintptr(textAntialiasMode))
}

func (i *RenderTarget) GetTextAntialiasMode() TEXT_ANTIALIAS_MODE {
	return TEXT_ANTIALIAS_MODE(com.CallRaw(i.vtbl().GetTextAntialiasMode, uintptr(unsafe.Pointer(i))))
}

func (i *RenderTarget) SetTextRenderingParams(params *com.IUnknown) {
	com.CallRaw(i.vtbl().SetTextRenderingParams, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(params)))
}

func (i *RenderTarget) GetTextRenderingParams() *com.IUnknown {
	var params *com.IUnknown
	com.CallRaw(i.vtbl().GetTextRenderingParams, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&params)))
	return params
}

func (i *RenderTarget) SetTags(tag1, tag2 TAG) {
	com.CallRaw(i.vtbl().SetTags, uintptr(unsafe.Pointer(i)), uintptr(tag1), uintptr(tag2))
}

func (i *RenderTarget) GetTags() (tag1, tag2 TAG) {
	com.CallRaw(i.vtbl().GetTags,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&tag1)),
		uintptr(unsafe.Pointer(&tag2)),
	)
	return tag1, tag2
}

func (i *RenderTarget) PushLayer(layerParameters *LAYER_PARAMETERS, layer *Layer) {
	com.CallRaw(i.vtbl().PushLayer,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(layerParameters)),
		uintptr(unsafe.Pointer(layer)),
	)
}

func (i *RenderTarget) PopLayer() {
	com.CallRaw(i.vtbl().PopLayer, uintptr(unsafe.Pointer(i)))
}

// Flush executes pending drawing, on failure the tags identify the failing
// call.
func (i *RenderTarget) Flush() (tag1, tag2 TAG, err error) {
	err = com.Check("ID2D1RenderTarget::Flush", com.Call(i.vtbl().Flush,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&tag1)),
		uintptr(unsafe.Pointer(&tag2)),
	))
	return tag1, tag2, err
}

func (i *RenderTarget) SaveDrawingState(drawingStateBlock *DrawingStateBlock) {
	com.CallRaw(i.vtbl().SaveDrawingState, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(drawingStateBlock)))
}

func (i *RenderTarget) RestoreDrawingState(drawingStateBlock *DrawingStateBlock) {
	com.CallRaw(i.vtbl().RestoreDrawingState, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(drawingStateBlock)))
}

func (i *RenderTarget) PushAxisAlignedClip(clipRect *RECT_F, antialiasMode ANTIALIAS_MODE) {
	com.CallRaw(i.vtbl().PushAxisAlignedClip,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(clipRect)),
		uintptr(antialiasMode),
	)
}

func (i *RenderTarget) PopAxisAlignedClip() {
	com.CallRaw(i.vtbl().PopAxisAlignedClip, uintptr(unsafe.Pointer(i)))
}

// Clear fills the target with clearColor, nil clears to transparent black.
func (i *RenderTarget) Clear(clearColor *COLOR_F) {
	com.CallRaw(i.vtbl().Clear, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(clearColor)))
}

func (i *RenderTarget) BeginDraw() {
	com.CallRaw(i.vtbl().BeginDraw, uintptr(unsafe.Pointer(i)))
}

// EndDraw finishes drawing. com.D2DERR_RECREATE_TARGET means every device
// dependent resource has to be recreated.
func (i *RenderTarget) EndDraw() (tag1, tag2 TAG, err error) {
	err = com.Check("ID2D1RenderTarget::EndDraw", com.Call(i.vtbl().EndDraw,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&tag1)),
		uintptr(unsafe.Pointer(&tag2)),
	))
	return tag1, tag2, err
}

func (i *RenderTarget) GetPixelFormat() PIXEL_FORMAT {
	var format PIXEL_FORMAT
	com.CallRaw(i.vtbl().GetPixelFormat, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&format)))
	return format
}

func (i *RenderTarget) SetDpi(dpiX, dpiY float32) {
	com.CallRaw(i.vtbl().SetDpi,
		uintptr(unsafe.Pointer(i)),
		uintptr(math.Float32bits(dpiX)),
		uintptr(math.Float32bits(dpiY)),
	)
}

func (i *RenderTarget) GetDpi() (dpiX, dpiY float32) {
	com.CallRaw(i.vtbl().GetDpi,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&dpiX)),
		uintptr(unsafe.Pointer(&dpiY)),
	)
	return dpiX, dpiY
}

func (i *RenderTarget) GetSize() SIZE_F {
	var size SIZE_F
	com.CallRaw(i.vtbl().GetSize, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&size)))
	return size
}

func (i *RenderTarget) GetPixelSize() SIZE_U {
	var size SIZE_U
	com.CallRaw(i.vtbl().GetPixelSize, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&size)))
	return size
}

func (i *RenderTarget) GetMaximumBitmapSize() uint32 {
	return uint32(com.CallRaw(i.vtbl().GetMaximumBitmapSize, uintptr(unsafe.Pointer(i))))
}

func (i *RenderTarget) IsSupported(renderTargetProperties *RENDER_TARGET_PROPERTIES) bool {
	return com.Bool(com.CallRaw(i.vtbl().IsSupported,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(renderTargetProperties)),
	)).Go()
}

// GetBitmap returns the bitmap backing the target with an added reference.
func (i *BitmapRenderTarget) GetBitmap() (*Bitmap, error) {
	var bitmap *Bitmap
	err := com.Check("ID2D1BitmapRenderTarget::GetBitmap", com.Call(i.vtbl().GetBitmap,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&bitmap)),
	))
	return bitmap, err
}

func (i *HwndRenderTarget) CheckWindowState() WINDOW_STATE {
	return WINDOW_STATE(com.CallRaw(i.vtbl().CheckWindowState, uintptr(unsafe.Pointer(i))))
}

func (i *HwndRenderTarget) Resize(pixelSize *SIZE_U) error {
	return com.Check("ID2D1HwndRenderTarget::Resize", com.Call(i.vtbl().Resize,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(pixelSize)),
	))
}

func (i *HwndRenderTarget) GetHwnd() windows.HWND {
	return windows.HWND(com.CallRaw(i.vtbl().GetHwnd, uintptr(unsafe.Pointer(i))))
}

func (i *GdiInteropRenderTarget) GetDC(mode DC_INITIALIZE_MODE) (windows.Handle, error) {
	var hdc windows.Handle
	err := com.Check("ID2D1GdiInteropRenderTarget::GetDC", com.Call(i.vtbl().GetDC,
		uintptr(unsafe.Pointer(i)),
		uintptr(mode),
		uintptr(unsafe.Pointer(&hdc)),
	))
	return hdc, err
}

// ReleaseDC hands the DC back, update is the modified region or nil for all
// of it.
func (i *GdiInteropRenderTarget) ReleaseDC(update *windows.Rect) error {
	return com.Check("ID2D1GdiInteropRenderTarget::ReleaseDC", com.Call(i.vtbl().ReleaseDC,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(update)),
	))
}

func (i *DCRenderTarget) BindDC(hdc windows.Handle, subRect *windows.Rect) error {
	return com.Check("ID2D1DCRenderTarget::BindDC", com.Call(i.vtbl().BindDC,
		uintptr(unsafe.Pointer(i)),
		uintptr(hdc),
		uintptr(unsafe.Pointer(subRect)),
	))
}
