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

type ResourceVtbl struct {
	com.IUnknownVtbl
	GetFactory uintptr
}

// Resource is ID2D1Resource.
type Resource struct {
	com.IUnknown
}

func (i *Resource) vtbl() *ResourceVtbl {
	return (*ResourceVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type ImageVtbl struct {
	ResourceVtbl
}

// Image is ID2D1Image.
type Image struct {
	Resource
}

type BitmapVtbl struct {
	ImageVtbl
	GetSize              uintptr
	GetPixelSize         uintptr
	GetPixelFormat       uintptr
	GetDpi               uintptr
	CopyFromBitmap       uintptr
	CopyFromRenderTarget uintptr
	CopyFromMemory       uintptr
}

// Bitmap is ID2D1Bitmap.
type Bitmap struct {
	Image
}

func (i *Bitmap) vtbl() *BitmapVtbl {
	return (*BitmapVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type GradientStopCollectionVtbl struct {
	ResourceVtbl
	GetGradientStopCount       uintptr
	GetGradientStops           uintptr
	GetColorInterpolationGamma uintptr
	GetExtendMode              uintptr
}

// GradientStopCollection is ID2D1GradientStopCollection.
type GradientStopCollection struct {
	Resource
}

func (i *GradientStopCollection) vtbl() *GradientStopCollectionVtbl {
	return (*GradientStopCollectionVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type BrushVtbl struct {
	ResourceVtbl
	SetOpacity   uintptr
	SetTransform uintptr
	GetOpacity   uintptr
	GetTransform uintptr
}

// Brush is ID2D1Brush.
type Brush struct {
	Resource
}

func (i *Brush) vtbl() *BrushVtbl {
	return (*BrushVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type BitmapBrushVtbl struct {
	BrushVtbl
	SetExtendModeX       uintptr
	SetExtendModeY       uintptr
	SetInterpolationMode uintptr
	SetBitmap            uintptr
	GetExtendModeX       uintptr
	GetExtendModeY       uintptr
	GetInterpolationMode uintptr
	GetBitmap            uintptr
}

// BitmapBrush is ID2D1BitmapBrush.
type BitmapBrush struct {
	Brush
}

func (i *BitmapBrush) vtbl() *BitmapBrushVtbl {
	return (*BitmapBrushVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type SolidColorBrushVtbl struct {
	BrushVtbl
	SetColor uintptr
	GetColor uintptr
}

// SolidColorBrush is ID2D1SolidColorBrush.
type SolidColorBrush struct {
	Brush
}

func (i *SolidColorBrush) vtbl() *SolidColorBrushVtbl {
	return (*SolidColorBrushVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type LinearGradientBrushVtbl struct {
	BrushVtbl
	SetStartPoint             uintptr
	SetEndPoint               uintptr
	GetStartPoint             uintptr
	GetEndPoint               uintptr
	GetGradientStopCollection uintptr
}

// LinearGradientBrush is ID2D1LinearGradientBrush.
type LinearGradientBrush struct {
	Brush
}

func (i *LinearGradientBrush) vtbl() *LinearGradientBrushVtbl {
	return (*LinearGradientBrushVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type RadialGradientBrushVtbl struct {
	BrushVtbl
	SetCenter                 uintptr
	SetGradientOriginOffset   uintptr
	SetRadiusX                uintptr
	SetRadiusY                uintptr
	GetCenter                 uintptr
	GetGradientOriginOffset   uintptr
	GetRadiusX                uintptr
	GetRadiusY                uintptr
	GetGradientStopCollection uintptr
}

// RadialGradientBrush is ID2D1RadialGradientBrush.
type RadialGradientBrush struct {
	Brush
}

func (i *RadialGradientBrush) vtbl() *RadialGradientBrushVtbl {
	return (*RadialGradientBrushVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type StrokeStyleVtbl struct {
	ResourceVtbl
	GetStartCap    uintptr
	GetEndCap      uintptr
	GetDashCap     uintptr
	GetMiterLimit  uintptr
	GetLineJoin    uintptr
	GetDashOffset  uintptr
	GetDashStyle   uintptr
	GetDashesCount uintptr
	GetDashes      uintptr
}

// StrokeStyle is ID2D1StrokeStyle.
type StrokeStyle struct {
	Resource
}

func (i *StrokeStyle) vtbl() *StrokeStyleVtbl {
	return (*StrokeStyleVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type GeometryVtbl struct {
	ResourceVtbl
	GetBounds            uintptr
	GetWidenedBounds     uintptr
	StrokeContainsPoint  uintptr
	FillContainsPoint    uintptr
	CompareWithGeometry  uintptr
	Simplify             uintptr
	Tessellate           uintptr
	CombineWithGeometry  uintptr
	Outline              uintptr
	ComputeArea          uintptr
	ComputeLength        uintptr
	ComputePointAtLength uintptr
	Widen                uintptr
}

// Geometry is ID2D1Geometry.
type Geometry struct {
	Resource
}

func (i *Geometry) vtbl() *GeometryVtbl {
	return (*GeometryVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type RectangleGeometryVtbl struct {
	GeometryVtbl
	GetRect uintptr
}

// RectangleGeometry is ID2D1RectangleGeometry.
type RectangleGeometry struct {
	Geometry
}

func (i *RectangleGeometry) vtbl() *RectangleGeometryVtbl {
	return (*RectangleGeometryVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type RoundedRectangleGeometryVtbl struct {
	GeometryVtbl
	GetRoundedRect uintptr
}

// RoundedRectangleGeometry is ID2D1RoundedRectangleGeometry.
type RoundedRectangleGeometry struct {
	Geometry
}

func (i *RoundedRectangleGeometry) vtbl() *RoundedRectangleGeometryVtbl {
	return (*RoundedRectangleGeometryVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type EllipseGeometryVtbl struct {
	GeometryVtbl
	GetEllipse uintptr
}

// EllipseGeometry is ID2D1EllipseGeometry.
type EllipseGeometry struct {
	Geometry
}

func (i *EllipseGeometry) vtbl() *EllipseGeometryVtbl {
	return (*EllipseGeometryVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type GeometryGroupVtbl struct {
	GeometryVtbl
	GetFillMode            uintptr
	GetSourceGeometryCount uintptr
	GetSourceGeometries    uintptr
}

// GeometryGroup is ID2D1GeometryGroup.
type GeometryGroup struct {
	Geometry
}

func (i *GeometryGroup) vtbl() *GeometryGroupVtbl {
	return (*GeometryGroupVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type TransformedGeometryVtbl struct {
	GeometryVtbl
	GetSourceGeometry uintptr
	GetTransform      uintptr
}

// TransformedGeometry is ID2D1TransformedGeometry.
type TransformedGeometry struct {
	Geometry
}

func (i *TransformedGeometry) vtbl() *TransformedGeometryVtbl {
	return (*TransformedGeometryVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type SimplifiedGeometrySinkVtbl struct {
	com.IUnknownVtbl
	SetFillMode     uintptr
	SetSegmentFlags uintptr
	BeginFigure     uintptr
	AddLines        uintptr
	AddBeziers      uintptr
	EndFigure       uintptr
	Close           uintptr
}

// SimplifiedGeometrySink is ID2D1SimplifiedGeometrySink.
type SimplifiedGeometrySink struct {
	com.IUnknown
}

func (i *SimplifiedGeometrySink) vtbl() *SimplifiedGeometrySinkVtbl {
	return (*SimplifiedGeometrySinkVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type GeometrySinkVtbl struct {
	SimplifiedGeometrySinkVtbl
	AddLine             uintptr
	AddBezier           uintptr
	AddQuadraticBezier  uintptr
	AddQuadraticBeziers uintptr
	AddArc              uintptr
}

// GeometrySink is ID2D1GeometrySink.
type GeometrySink struct {
	SimplifiedGeometrySink
}

func (i *GeometrySink) vtbl() *GeometrySinkVtbl {
	return (*GeometrySinkVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type TessellationSinkVtbl struct {
	com.IUnknownVtbl
	AddTriangles uintptr
	Close        uintptr
}

// TessellationSink is ID2D1TessellationSink.
type TessellationSink struct {
	com.IUnknown
}

func (i *TessellationSink) vtbl() *TessellationSinkVtbl {
	return (*TessellationSinkVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type PathGeometryVtbl struct {
	GeometryVtbl
	Open            uintptr
	Stream          uintptr
	GetSegmentCount uintptr
	GetFigureCount  uintptr
}

// PathGeometry is ID2D1PathGeometry.
type PathGeometry struct {
	Geometry
}

func (i *PathGeometry) vtbl() *PathGeometryVtbl {
	return (*PathGeometryVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type MeshVtbl struct {
	ResourceVtbl
	Open uintptr
}

// Mesh is ID2D1Mesh.
type Mesh struct {
	Resource
}

func (i *Mesh) vtbl() *MeshVtbl {
	return (*MeshVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type LayerVtbl struct {
	ResourceVtbl
	GetSize uintptr
}

// Layer is ID2D1Layer.
type Layer struct {
	Resource
}

func (i *Layer) vtbl() *LayerVtbl {
	return (*LayerVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type DrawingStateBlockVtbl struct {
	ResourceVtbl
	GetDescription         uintptr
	SetDescription         uintptr
	SetTextRenderingParams uintptr
	GetTextRenderingParams uintptr
}

// DrawingStateBlock is ID2D1DrawingStateBlock.
type DrawingStateBlock struct {
	Resource
}

func (i *DrawingStateBlock) vtbl() *DrawingStateBlockVtbl {
	return (*DrawingStateBlockVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type RenderTargetVtbl struct {
	ResourceVtbl
	CreateBitmap                 uintptr
	CreateBitmapFromWicBitmap    uintptr
	CreateSharedBitmap           uintptr
	CreateBitmapBrush            uintptr
	CreateSolidColorBrush        uintptr
	CreateGradientStopCollection uintptr
	CreateLinearGradientBrush    uintptr
	CreateRadialGradientBrush    uintptr
	CreateCompatibleRenderTarget uintptr
	CreateLayer                  uintptr
	CreateMesh                   uintptr
	DrawLine                     uintptr
	DrawRectangle                uintptr
	FillRectangle                uintptr
	DrawRoundedRectangle         uintptr
	FillRoundedRectangle         uintptr
	DrawEllipse                  uintptr
	FillEllipse                  uintptr
	DrawGeometry                 uintptr
	FillGeometry                 uintptr
	FillMesh                     uintptr
	FillOpacityMask              uintptr
	DrawBitmap                   uintptr
	DrawText                     uintptr
	DrawTextLayout               uintptr
	DrawGlyphRun                 uintptr
	SetTransform                 uintptr
	GetTransform                 uintptr
	SetAntialiasMode             uintptr
	GetAntialiasMode             uintptr
	SetTextAntialiasMode         uintptr
	GetTextAntialiasMode         uintptr
	SetTextRenderingParams       uintptr
	GetTextRenderingParams       uintptr
	SetTags                      uintptr
	GetTags                      uintptr
	PushLayer                    uintptr
	PopLayer                     uintptr
	Flush                        uintptr
	SaveDrawingState             uintptr
	RestoreDrawingState          uintptr
	PushAxisAlignedClip          uintptr
	PopAxisAlignedClip           uintptr
	Clear                        uintptr
	BeginDraw                    uintptr
	EndDraw                      uintptr
	GetPixelFormat               uintptr
	SetDpi                       uintptr
	GetDpi                       uintptr
	GetSize                      uintptr
	GetPixelSize                 uintptr
	GetMaximumBitmapSize         uintptr
	IsSupported                  uintptr
}

// RenderTarget is ID2D1RenderTarget.
type RenderTarget struct {
	Resource
}

func (i *RenderTarget) vtbl() *RenderTargetVtbl {
	return (*RenderTargetVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type BitmapRenderTargetVtbl struct {
	RenderTargetVtbl
	GetBitmap uintptr
}

// BitmapRenderTarget is ID2D1BitmapRenderTarget.
type BitmapRenderTarget struct {
	RenderTarget
}

func (i *BitmapRenderTarget) vtbl() *BitmapRenderTargetVtbl {
	return (*BitmapRenderTargetVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type HwndRenderTargetVtbl struct {
	RenderTargetVtbl
	CheckWindowState uintptr
	Resize           uintptr
	GetHwnd          uintptr
}

// HwndRenderTarget is ID2D1HwndRenderTarget.
type HwndRenderTarget struct {
	RenderTarget
}

func (i *HwndRenderTarget) vtbl() *HwndRenderTargetVtbl {
	return (*HwndRenderTargetVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type GdiInteropRenderTargetVtbl struct {
	com.IUnknownVtbl
	GetDC     uintptr
	ReleaseDC uintptr
}

// GdiInteropRenderTarget is ID2D1GdiInteropRenderTarget.
type GdiInteropRenderTarget struct {
	com.IUnknown
}

func (i *GdiInteropRenderTarget) vtbl() *GdiInteropRenderTargetVtbl {
	return (*GdiInteropRenderTargetVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type DCRenderTargetVtbl struct {
	RenderTargetVtbl
	BindDC uintptr
}

// DCRenderTarget is ID2D1DCRenderTarget.
type DCRenderTarget struct {
	RenderTarget
}

func (i *DCRenderTarget) vtbl() *DCRenderTargetVtbl {
	return (*DCRenderTargetVtbl)(com.VtblOf(unsafe.Pointer(i)))
}

type FactoryVtbl struct {
	com.IUnknownVtbl
	ReloadSystemMetrics            uintptr
	GetDesktopDpi                  uintptr
	CreateRectangleGeometry        uintptr
	CreateRoundedRectangleGeometry uintptr
	CreateEllipseGeometry          uintptr
	CreateGeometryGroup            uintptr
	CreateTransformedGeometry      uintptr
	CreatePathGeometry             uintptr
	CreateStrokeStyle              uintptr
	CreateDrawingStateBlock        uintptr
	CreateWicBitmapRenderTarget    uintptr
	CreateHwndRenderTarget         uintptr
	CreateDxgiSurfaceRenderTarget  uintptr
	CreateDCRenderTarget           uintptr
}

// Factory is ID2D1Factory.
type Factory struct {
	com.IUnknown
}

func (i *Factory) vtbl() *FactoryVtbl {
	return (*FactoryVtbl)(com.VtblOf(unsafe.Pointer(i)))
}
