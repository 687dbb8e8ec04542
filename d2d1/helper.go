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

// DefaultDpi is the dpi BitmapProperties assumes when none is given.
const DefaultDpi = 96.0

func Point2F(x, y float32) POINT_2F {
	return POINT_2F{X: x, Y: y}
}

func Point2U(x, y uint32) POINT_2U {
	return POINT_2U{X: x, Y: y}
}

func SizeF(width, height float32) SIZE_F {
	return SIZE_F{Width: width, Height: height}
}

func SizeU(width, height uint32) SIZE_U {
	return SIZE_U{Width: width, Height: height}
}

func RectF(left, top, right, bottom float32) RECT_F {
	return RECT_F{Left: left, Top: top, Right: right, Bottom: bottom}
}

func RectU(left, top, right, bottom uint32) RECT_U {
	return RECT_U{Left: left, Top: top, Right: right, Bottom: bottom}
}

// InfiniteRect covers the whole float range, used as unbounded layer content.
func InfiniteRect() RECT_F {
	return RECT_F{Left: -math.MaxFloat32, Top: -math.MaxFloat32, Right: math.MaxFloat32, Bottom: math.MaxFloat32}
}

func ArcSegment(point POINT_2F, size SIZE_F, rotationAngle float32, sweepDirection SWEEP_DIRECTION, arcSize ARC_SIZE) ARC_SEGMENT {
	return ARC_SEGMENT{
		Point:          point,
		Size:           size,
		RotationAngle:  rotationAngle,
		SweepDirection: sweepDirection,
		ArcSize:        arcSize,
	}
}

func BezierSegment(point1, point2, point3 POINT_2F) BEZIER_SEGMENT {
	return BEZIER_SEGMENT{Point1: point1, Point2: point2, Point3: point3}
}

func QuadraticBezierSegment(point1, point2 POINT_2F) QUADRATIC_BEZIER_SEGMENT {
	return QUADRATIC_BEZIER_SEGMENT{Point1: point1, Point2: point2}
}

func Ellipse(center POINT_2F, radiusX, radiusY float32) ELLIPSE {
	return ELLIPSE{Point: center, RadiusX: radiusX, RadiusY: radiusY}
}

func RoundedRect(rect RECT_F, radiusX, radiusY float32) ROUNDED_RECT {
	return ROUNDED_RECT{Rect: rect, RadiusX: radiusX, RadiusY: radiusY}
}

func BrushProperties(opacity float32, transform MATRIX_3X2_F) BRUSH_PROPERTIES {
	return BRUSH_PROPERTIES{Opacity: opacity, Transform: transform}
}

// DefaultBrushProperties is fully opaque with an identity transform.
func DefaultBrushProperties() BRUSH_PROPERTIES {
	return BrushProperties(1, IdentityMatrix())
}

func GradientStop(position float32, color COLOR_F) GRADIENT_STOP {
	return GRADIENT_STOP{Position: position, Color: color}
}

func StrokeStyleProperties(startCap, endCap, dashCap CAP_STYLE, lineJoin LINE_JOIN, miterLimit float32, dashStyle DASH_STYLE, dashOffset float32) STROKE_STYLE_PROPERTIES {
	return STROKE_STYLE_PROPERTIES{
		StartCap:   startCap,
		EndCap:     endCap,
		DashCap:    dashCap,
		LineJoin:   lineJoin,
		MiterLimit: miterLimit,
		DashStyle:  dashStyle,
		DashOffset: dashOffset,
	}
}

// DefaultStrokeStyleProperties is a solid line with flat caps and mitered
// joins limited to 10.
func DefaultStrokeStyleProperties() STROKE_STYLE_PROPERTIES {
	return StrokeStyleProperties(CAP_STYLE_FLAT, CAP_STYLE_FLAT, CAP_STYLE_FLAT, LINE_JOIN_MITER, 10, DASH_STYLE_SOLID, 0)
}

func BitmapBrushProperties(extendModeX, extendModeY EXTEND_MODE, interpolationMode BITMAP_INTERPOLATION_MODE) BITMAP_BRUSH_PROPERTIES {
	return BITMAP_BRUSH_PROPERTIES{ExtendModeX: extendModeX, ExtendModeY: extendModeY, InterpolationMode: interpolationMode}
}

func DefaultBitmapBrushProperties() BITMAP_BRUSH_PROPERTIES {
	return BitmapBrushProperties(EXTEND_MODE_CLAMP, EXTEND_MODE_CLAMP, BITMAP_INTERPOLATION_MODE_LINEAR)
}

func LinearGradientBrushProperties(startPoint, endPoint POINT_2F) LINEAR_GRADIENT_BRUSH_PROPERTIES {
	return LINEAR_GRADIENT_BRUSH_PROPERTIES{StartPoint: startPoint, EndPoint: endPoint}
}

func RadialGradientBrushProperties(center, gradientOriginOffset POINT_2F, radiusX, radiusY float32) RADIAL_GRADIENT_BRUSH_PROPERTIES {
	return RADIAL_GRADIENT_BRUSH_PROPERTIES{
		Center:               center,
		GradientOriginOffset: gradientOriginOffset,
		RadiusX:              radiusX,
		RadiusY:              radiusY,
	}
}

func PixelFormat(format dxgi.FORMAT, alphaMode ALPHA_MODE) PIXEL_FORMAT {
	return PIXEL_FORMAT{Format: format, AlphaMode: alphaMode}
}

// BitmapProperties uses DefaultDpi when dpiX or dpiY is zero.
func BitmapProperties(pixelFormat PIXEL_FORMAT, dpiX, dpiY float32) BITMAP_PROPERTIES {
	if dpiX == 0 {
		dpiX = DefaultDpi
	}
	if dpiY == 0 {
		dpiY = DefaultDpi
	}
	return BITMAP_PROPERTIES{PixelFormat: pixelFormat, DpiX: dpiX, DpiY: dpiY}
}

func RenderTargetProperties(typ RENDER_TARGET_TYPE, pixelFormat PIXEL_FORMAT, dpiX, dpiY float32, usage RENDER_TARGET_USAGE, minLevel FEATURE_LEVEL) RENDER_TARGET_PROPERTIES {
	return RENDER_TARGET_PROPERTIES{
		Type:        typ,
		PixelFormat: pixelFormat,
		DpiX:        dpiX,
		DpiY:        dpiY,
		Usage:       usage,
		MinLevel:    minLevel,
	}
}

// DefaultRenderTargetProperties lets the runtime pick the target type,
// format and dpi.
func DefaultRenderTargetProperties() RENDER_TARGET_PROPERTIES {
	return RENDER_TARGET_PROPERTIES{}
}

func HwndRenderTargetProperties(hwnd uintptr, pixelSize SIZE_U, presentOptions PRESENT_OPTIONS) HWND_RENDER_TARGET_PROPERTIES {
	return HWND_RENDER_TARGET_PROPERTIES{Hwnd: hwnd, PixelSize: pixelSize, PresentOptions: presentOptions}
}

// DefaultLayerParameters is an unbounded, unmasked, fully opaque layer.
func DefaultLayerParameters() LAYER_PARAMETERS {
	return LAYER_PARAMETERS{
		ContentBounds:     InfiniteRect(),
		MaskAntialiasMode: ANTIALIAS_MODE_PER_PRIMITIVE,
		MaskTransform:     IdentityMatrix(),
		Opacity:           1,
		LayerOptions:      LAYER_OPTIONS_NONE,
	}
}

func DefaultDrawingStateDescription() DRAWING_STATE_DESCRIPTION {
	return DRAWING_STATE_DESCRIPTION{
		AntialiasMode:     ANTIALIAS_MODE_PER_PRIMITIVE,
		TextAntialiasMode: TEXT_ANTIALIAS_MODE_DEFAULT,
		Transform:         IdentityMatrix(),
	}
}
