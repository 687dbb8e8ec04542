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
)

// GetFactory returns the factory with an added reference.
func (i *Resource) GetFactory() *Factory {
	var factory *Factory
	com.CallRaw(i.vtbl().GetFactory, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&factory)))
	return factory
}

func (i *Bitmap) GetSize() SIZE_F {
	var size SIZE_F
	com.CallRaw(i.vtbl().GetSize, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&size)))
	return size
}

func (i *Bitmap) GetPixelSize() SIZE_U {
	var size SIZE_U
	com.CallRaw(i.vtbl().GetPixelSize, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&size)))
	return size
}

func (i *Bitmap) GetPixelFormat() PIXEL_FORMAT {
	var format PIXEL_FORMAT
	com.CallRaw(i.vtbl().GetPixelFormat, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&format)))
	return format
}

func (i *Bitmap) GetDpi() (dpiX, dpiY float32) {
	com.CallRaw(i.vtbl().GetDpi,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&dpiX)),
		uintptr(unsafe.Pointer(&dpiY)),
	)
	return dpiX, dpiY
}

func (i *Bitmap) CopyFromBitmap(destPoint *POINT_2U, bitmap *Bitmap, srcRect *RECT_U) error {
	return com.Check("ID2D1Bitmap::CopyFromBitmap", com.Call(i.vtbl().CopyFromBitmap,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(destPoint)),
		uintptr(unsafe.Pointer(bitmap)),
		uintptr(unsafe.Pointer(srcRect)),
	))
}

func (i *Bitmap) CopyFromRenderTarget(destPoint *POINT_2U, renderTarget *RenderTarget, srcRect *RECT_U) error {
	return com.Check("ID2D1Bitmap::CopyFromRenderTarget", com.Call(i.vtbl().CopyFromRenderTarget,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(destPoint)),
		uintptr(unsafe.Pointer(renderTarget)),
		uintptr(unsafe.Pointer(srcRect)),
	))
}

// CopyFromMemory copies rows of pitch bytes from src into dstRect, or the
// whole bitmap when dstRect is nil.
func (i *Bitmap) CopyFromMemory(dstRect *RECT_U, src []byte, pitch uint32) error {
	return com.Check("ID2D1Bitmap::CopyFromMemory", com.Call(i.vtbl().CopyFromMemory,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(dstRect)),
		uintptr(unsafe.Pointer(unsafe.SliceData(src))),
		uintptr(pitch),
	))
}

func (i *GradientStopCollection) GetGradientStopCount() uint32 {
	return uint32(com.CallRaw(i.vtbl().GetGradientStopCount, uintptr(unsafe.Pointer(i))))
}

func (i *GradientStopCollection) GetGradientStops() []GRADIENT_STOP {
	stops := make([]GRADIENT_STOP, i.GetGradientStopCount())
	if len(stops) == 0 {
		return stops
	}
	com.CallRaw(i.vtbl().GetGradientStops,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(unsafe.SliceData(stops))),
		uintptr(len(stops)),
	)
	return stops
}

func (i *GradientStopCollection) GetColorInterpolationGamma() GAMMA {
	return GAMMA(com.CallRaw(i.vtbl().GetColorInterpolationGamma, uintptr(unsafe.Pointer(i))))
}

func (i *GradientStopCollection) GetExtendMode() EXTEND_MODE {
	return EXTEND_MODE(com.CallRaw(i.vtbl().GetExtendMode, uintptr(unsafe.Pointer(i))))
}

func (i *Brush) SetOpacity(opacity float32) {
	com.CallRaw(i.vtbl().SetOpacity, uintptr(unsafe.Pointer(i)), uintptr(math.Float32bits(opacity)))
}

func (i *Brush) SetTransform(transform *MATRIX_3X2_F) {
	com.CallRaw(i.vtbl().SetTransform, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(transform)))
}

func (i *Brush) GetTransform() MATRIX_3X2_F {
	var m MATRIX_3X2_F
	com.CallRaw(i.vtbl().GetTransform, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&m)))
	return m
}

func (i *BitmapBrush) SetExtendModeX(extendModeX EXTEND_MODE) {
	com.CallRaw(i.vtbl().SetExtendModeX, uintptr(unsafe.Pointer(i)), uintptr(extendModeX))
}

func (i *BitmapBrush) SetExtendModeY(extendModeY EXTEND_MODE) {
	com.CallRaw(i.vtbl().SetExtendModeY, uintptr(unsafe.Pointer(i)), uintptr(extendModeY))
}

func (i *BitmapBrush) SetInterpolationMode(interpolationMode BITMAP_INTERPOLATION_MODE) {
	com.CallRaw(i.vtbl().SetInterpolationMode, uintptr(unsafe.Pointer(i)), uintptr(interpolationMode))
}

func (i *BitmapBrush) SetBitmap(bitmap *Bitmap) {
	com.CallRaw(i.vtbl().SetBitmap, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(bitmap)))
}

func (i *BitmapBrush) GetExtendModeX() EXTEND_MODE {
	return EXTEND_MODE(com.CallRaw(i.vtbl().GetExtendModeX, uintptr(unsafe.Pointer(i))))
}

func (i *BitmapBrush) GetExtendModeY() EXTEND_MODE {
	return EXTEND_MODE(com.CallRaw(i.vtbl().GetExtendModeY, uintptr(unsafe.Pointer(i))))
}

func (i *BitmapBrush) GetInterpolationMode() BITMAP_INTERPOLATION_MODE {
	return BITMAP_INTERPOLATION_MODE(com.CallRaw(i.vtbl().GetInterpolationMode, uintptr(unsafe.Pointer(i))))
}

// GetBitmap returns the bitmap with an added reference, or nil.
func (i *BitmapBrush) GetBitmap() *Bitmap {
	var bitmap *Bitmap
	com.CallRaw(i.vtbl().GetBitmap, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&bitmap)))
	return bitmap
}

func (i *SolidColorBrush) SetColor(color *COLOR_F) {
	com.CallRaw(i.vtbl().SetColor, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(color)))
}

func (i *SolidColorBrush) GetColor() COLOR_F {
	var color COLOR_F
	com.CallRaw(i.vtbl().GetColor, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&color)))
	return color
}

func (i *LinearGradientBrush) SetStartPoint(startPoint POINT_2F) {
	com.CallRaw(i.vtbl().SetStartPoint, uintptr(unsafe.Pointer(i)), startPoint.word())
}

func (i *LinearGradientBrush) SetEndPoint(endPoint POINT_2F) {
	com.CallRaw(i.vtbl().SetEndPoint, uintptr(unsafe.Pointer(i)), endPoint.word())
}

func (i *LinearGradientBrush) GetStartPoint() POINT_2F {
	var p POINT_2F
	com.CallRaw(i.vtbl().GetStartPoint, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&p)))
	return p
}

func (i *LinearGradientBrush) GetEndPoint() POINT_2F {
	var p POINT_2F
	com.CallRaw(i.vtbl().GetEndPoint, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&p)))
	return p
}

func (i *LinearGradientBrush) GetGradientStopCollection() *GradientStopCollection {
	var stops *GradientStopCollection
	com.CallRaw(i.vtbl().GetGradientStopCollection, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&stops)))
	return stops
}

func (i *RadialGradientBrush) SetCenter(center POINT_2F) {
	com.CallRaw(i.vtbl().SetCenter, uintptr(unsafe.Pointer(i)), center.word())
}

func (i *RadialGradientBrush) SetGradientOriginOffset(gradientOriginOffset POINT_2F) {
	com.CallRaw(i.vtbl().SetGradientOriginOffset, uintptr(unsafe.Pointer(i)), gradientOriginOffset.word())
}

func (i *RadialGradientBrush) SetRadiusX(radiusX float32) {
	com.CallRaw(i.vtbl().SetRadiusX, uintptr(unsafe.Pointer(i)), uintptr(math.Float32bits(radiusX)))
}

func (i *RadialGradientBrush) SetRadiusY(radiusY float32) {
	com.CallRaw(i.vtbl().SetRadiusY, uintptr(unsafe.Pointer(i)), uintptr(math.Float32bits(radiusY)))
}

func (i *RadialGradientBrush) GetCenter() POINT_2F {
	var p POINT_2F
	com.CallRaw(i.vtbl().GetCenter, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&p)))
	return p
}

func (i *RadialGradientBrush) GetGradientOriginOffset() POINT_2F {
	var p POINT_2F
	com.CallRaw(i.vtbl().GetGradientOriginOffset, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&p)))
	return p
}

func (i *RadialGradientBrush) GetGradientStopCollection() *GradientStopCollection {
	var stops *GradientStopCollection
	com.CallRaw(i.vtbl().GetGradientStopCollection, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&stops)))
	return stops
}

func (i *StrokeStyle) GetStartCap() CAP_STYLE {
	return CAP_STYLE(com.CallRaw(i.vtbl().GetStartCap, uintptr(unsafe.Pointer(i))))
}

func (i *StrokeStyle) GetEndCap() CAP_STYLE {
	return CAP_STYLE(com.CallRaw(i.vtbl().GetEndCap, uintptr(unsafe.Pointer(i))))
}

func (i *StrokeStyle) GetDashCap() CAP_STYLE {
	return CAP_STYLE(com.CallRaw(i.vtbl().GetDashCap, uintptr(unsafe.Pointer(i))))
}

func (i *StrokeStyle) GetLineJoin() LINE_JOIN {
	return LINE_JOIN(com.CallRaw(i.vtbl().GetLineJoin, uintptr(unsafe.Pointer(i))))
}

func (i *StrokeStyle) GetDashStyle() DASH_STYLE {
	return DASH_STYLE(com.CallRaw(i.vtbl().GetDashStyle, uintptr(unsafe.Pointer(i))))
}

func (i *StrokeStyle) GetDashesCount() uint32 {
	return uint32(com.CallRaw(i.vtbl().GetDashesCount, uintptr(unsafe.Pointer(i))))
}

func (i *StrokeStyle) GetDashes() []float32 {
	dashes := make([]float32, i.GetDashesCount())
	if len(dashes) == 0 {
		return dashes
	}
	com.CallRaw(i.vtbl().GetDashes,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(unsafe.SliceData(dashes))),
		uintptr(len(dashes)),
	)
	return dashes
}

func (i *Mesh) Open() (*TessellationSink, error) {
	var sink *TessellationSink
	err := com.Check("ID2D1Mesh::Open", com.Call(i.vtbl().Open,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&sink)),
	))
	return sink, err
}

func (i *TessellationSink) AddTriangles(triangles []TRIANGLE) {
	com.CallRaw(i.vtbl().AddTriangles,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(unsafe.SliceData(triangles))),
		uintptr(len(triangles)),
	)
}

func (i *TessellationSink) Close() error {
	return com.Check("ID2D1TessellationSink::Close", com.Call(i.vtbl().Close, uintptr(unsafe.Pointer(i))))
}

func (i *Layer) GetSize() SIZE_F {
	var size SIZE_F
	com.CallRaw(i.vtbl().GetSize, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&size)))
	return size
}

func (i *DrawingStateBlock) GetDescription() DRAWING_STATE_DESCRIPTION {
	var desc DRAWING_STATE_DESCRIPTION
	com.CallRaw(i.vtbl().GetDescription, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&desc)))
	return desc
}

func (i *DrawingStateBlock) SetDescription(desc *DRAWING_STATE_DESCRIPTION) {
	com.CallRaw(i.vtbl().SetDescription, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(desc)))
}

// SetTextRenderingParams takes an IDWriteRenderingParams, nil clears it.
func (i *DrawingStateBlock) SetTextRenderingParams(params *com.IUnknown) {
	com.CallRaw(i.vtbl().SetTextRenderingParams, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(params)))
}

func (i *DrawingStateBlock) GetTextRenderingParams() *com.IUnknown {
	var params *com.IUnknown
	com.CallRaw(i.vtbl().GetTextRenderingParams, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&params)))
	return params
}
