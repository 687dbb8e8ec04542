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

	"goarrg.com/rhi/dxr/dxgi"
)

const DEFAULT_FLATTENING_TOLERANCE = 0.25

// TAG is D2D1_TAG, an application defined label reported by Flush and EndDraw.
type TAG uint64

type PIXEL_FORMAT struct {
	Format    dxgi.FORMAT
	AlphaMode ALPHA_MODE
}

type POINT_2U struct {
	X uint32
	Y uint32
}

type POINT_2F struct {
	X float32
	Y float32
}

// word packs the point the way it is passed by value in a register.
func (p POINT_2F) word() uintptr {
	return uintptr(math.Float32bits(p.X)) | uintptr(math.Float32bits(p.Y))<<32
}

type RECT_F struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

type RECT_U struct {
	Left   uint32
	Top    uint32
	Right  uint32
	Bottom uint32
}

type SIZE_F struct {
	Width  float32
	Height float32
}

type SIZE_U struct {
	Width  uint32
	Height uint32
}

func (s SIZE_U) word() uintptr {
	return uintptr(s.Width) | uintptr(s.Height)<<32
}

// COLOR_F is D2D1_COLOR_F, the D3DCOLORVALUE layout.
type COLOR_F struct {
	R float32
	G float32
	B float32
	A float32
}

// MATRIX_3X2_F is a row vector transform, points are transformed as
// [x y 1] * M.
type MATRIX_3X2_F struct {
	M11, M12 float32
	M21, M22 float32
	M31, M32 float32
}

type BITMAP_PROPERTIES struct {
	PixelFormat PIXEL_FORMAT
	DpiX        float32
	DpiY        float32
}

type GRADIENT_STOP struct {
	Position float32
	Color    COLOR_F
}

type BRUSH_PROPERTIES struct {
	Opacity   float32
	Transform MATRIX_3X2_F
}

type BITMAP_BRUSH_PROPERTIES struct {
	ExtendModeX       EXTEND_MODE
	ExtendModeY       EXTEND_MODE
	InterpolationMode BITMAP_INTERPOLATION_MODE
}

type LINEAR_GRADIENT_BRUSH_PROPERTIES struct {
	StartPoint POINT_2F
	EndPoint   POINT_2F
}

type RADIAL_GRADIENT_BRUSH_PROPERTIES struct {
	Center               POINT_2F
	GradientOriginOffset POINT_2F
	RadiusX              float32
	RadiusY              float32
}

type BEZIER_SEGMENT struct {
	Point1 POINT_2F
	Point2 POINT_2F
	Point3 POINT_2F
}

type TRIANGLE struct {
	Point1 POINT_2F
	Point2 POINT_2F
	Point3 POINT_2F
}

type ARC_SEGMENT struct {
	Point          POINT_2F
	Size           SIZE_F
	RotationAngle  float32
	SweepDirection SWEEP_DIRECTION
	ArcSize        ARC_SIZE
}

type QUADRATIC_BEZIER_SEGMENT struct {
	Point1 POINT_2F
	Point2 POINT_2F
}

type ELLIPSE struct {
	Point   POINT_2F
	RadiusX float32
	RadiusY float32
}

type ROUNDED_RECT struct {
	Rect    RECT_F
	RadiusX float32
	RadiusY float32
}

type STROKE_STYLE_PROPERTIES struct {
	StartCap   CAP_STYLE
	EndCap     CAP_STYLE
	DashCap    CAP_STYLE
	LineJoin   LINE_JOIN
	MiterLimit float32
	DashStyle  DASH_STYLE
	DashOffset float32
}

type LAYER_PARAMETERS struct {
	ContentBounds     RECT_F
	GeometricMask     *Geometry
	MaskAntialiasMode ANTIALIAS_MODE
	MaskTransform     MATRIX_3X2_F
	Opacity           float32
	OpacityBrush      *Brush
	LayerOptions      LAYER_OPTIONS
}

type RENDER_TARGET_PROPERTIES struct {
	Type        RENDER_TARGET_TYPE
	PixelFormat PIXEL_FORMAT
	DpiX        float32
	DpiY        float32
	Usage       RENDER_TARGET_USAGE
	MinLevel    FEATURE_LEVEL
}

// HWND_RENDER_TARGET_PROPERTIES holds the window handle as a plain word so
// the layout builds on every platform.
type HWND_RENDER_TARGET_PROPERTIES struct {
	Hwnd           uintptr
	PixelSize      SIZE_U
	PresentOptions PRESENT_OPTIONS
}

type DRAWING_STATE_DESCRIPTION struct {
	AntialiasMode     ANTIALIAS_MODE
	TextAntialiasMode TEXT_ANTIALIAS_MODE
	Tag1              TAG
	Tag2              TAG
	Transform         MATRIX_3X2_F
}

type FACTORY_OPTIONS struct {
	DebugLevel DEBUG_LEVEL
}
