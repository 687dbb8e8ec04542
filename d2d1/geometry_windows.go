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

// GetBounds returns the bounds of the geometry after worldTransform, which
// may be nil.
func (i *Geometry) GetBounds(worldTransform *MATRIX_3X2_F) (RECT_F, error) {
	var bounds RECT_F
	err := com.Check("ID2D1Geometry::GetBounds", com.Call(i.vtbl().GetBounds,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(worldTransform)),
		uintptr(unsafe.Pointer(&bounds)),
	))
	return bounds, err
}

func (i *Geometry) GetWidenedBounds(strokeWidth float32, strokeStyle *StrokeStyle, worldTransform *MATRIX_3X2_F, flatteningTolerance float32) (RECT_F, error) {
	var bounds RECT_F
	err := com.Check("ID2D1Geometry::GetWidenedBounds", com.Call(i.vtbl().GetWidenedBounds,
		uintptr(unsafe.Pointer(i)),
		uintptr(math.Float32bits(strokeWidth)),
		uintptr(unsafe.Pointer(strokeStyle)),
		uintptr(unsafe.Pointer(worldTransform)),
		uintptr(math.Float32bits(flatteningTolerance)),
		uintptr(unsafe.Pointer(&bounds)),
	))
	return bounds, err
}

func (i *Geometry) StrokeContainsPoint(point POINT_2F, strokeWidth float32, strokeStyle *StrokeStyle, worldTransform *MATRIX_3X2_F, flatteningTolerance float32) (bool, error) {
	var contains com.Bool
	err := com.Check("ID2D1Geometry::StrokeContainsPoint", com.Call(i.vtbl().StrokeContainsPoint,
		uintptr(unsafe.Pointer(i)),
		point.word(),
		uintptr(math.Float32bits(strokeWidth)),
		uintptr(unsafe.Pointer(strokeStyle)),
		uintptr(unsafe.Pointer(worldTransform)),
		uintptr(math.Float32bits(flatteningTolerance)),
		uintptr(unsafe.Pointer(&contains)),
	))
	return contains.Go(), err
}

func (i *Geometry) FillContainsPoint(point POINT_2F, worldTransform *MATRIX_3X2_F, flatteningTolerance float32) (bool, error) {
	var contains com.Bool
	err := com.Check("ID2D1Geometry::FillContainsPoint", com.Call(i.vtbl().FillContainsPoint,
		uintptr(unsafe.Pointer(i)),
		point.word(),
		uintptr(unsafe.Pointer(worldTransform)),
		uintptr(math.Float32bits(flatteningTolerance)),
		uintptr(unsafe.Pointer(&contains)),
	))
	return contains.Go(), err
}

func (i *Geometry) CompareWithGeometry(input *Geometry, inputGeometryTransform *MATRIX_3X2_F, flatteningTolerance float32) (GEOMETRY_RELATION, error) {
	var relation GEOMETRY_RELATION
	err := com.Check("ID2D1Geometry::CompareWithGeometry", com.Call(i.vtbl().CompareWithGeometry,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(input)),
		uintptr(unsafe.Pointer(inputGeometryTransform)),
		uintptr(math.Float32bits(flatteningTolerance)),
		uintptr(unsafe.Pointer(&relation)),
	))
	return relation, err
}

func (i *Geometry) Simplify(option GEOMETRY_SIMPLIFICATION_OPTION, worldTransform *MATRIX_3X2_F, flatteningTolerance float32, sink *SimplifiedGeometrySink) error {
	return com.Check("ID2D1Geometry::Simplify", com.Call(i.vtbl().Simplify,
		uintptr(unsafe.Pointer(i)),
		uintptr(option),
		uintptr(unsafe.Pointer(worldTransform)),
		uintptr(math.Float32bits(flatteningTolerance)),
		uintptr(unsafe.Pointer(sink)),
	))
}

func (i *Geometry) Tessellate(worldTransform *MATRIX_3X2_F, flatteningTolerance float32, sink *TessellationSink) error {
	return com.Check("ID2D1Geometry::Tessellate", com.Call(i.vtbl().Tessellate,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(worldTransform)),
		uintptr(math.Float32bits(flatteningTolerance)),
		uintptr(unsafe.Pointer(sink)),
	))
}

func (i *Geometry) CombineWithGeometry(input *Geometry, mode COMBINE_MODE, inputGeometryTransform *MATRIX_3X2_F, flatteningTolerance float32, sink *SimplifiedGeometrySink) error {
	return com.Check("ID2D1Geometry::CombineWithGeometry", com.Call(i.vtbl().CombineWithGeometry,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(input)),
		uintptr(mode),
		uintptr(unsafe.Pointer(inputGeometryTransform)),
		uintptr(math.Float32bits(flatteningTolerance)),
		uintptr(unsafe.Pointer(sink)),
	))
}

func (i *Geometry) Outline(worldTransform *MATRIX_3X2_F, flatteningTolerance float32, sink *SimplifiedGeometrySink) error {
	return com.Check("ID2D1Geometry::Outline", com.Call(i.vtbl().Outline,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(worldTransform)),
		uintptr(math.Float32bits(flatteningTolerance)),
		uintptr(unsafe.Pointer(sink)),
	))
}

func (i *Geometry) ComputeArea(worldTransform *MATRIX_3X2_F, flatteningTolerance float32) (float32, error) {
	var area float32
	err := com.Check("ID2D1Geometry::ComputeArea", com.Call(i.vtbl().ComputeArea,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(worldTransform)),
		uintptr(math.Float32bits(flatteningTolerance)),
		uintptr(unsafe.Pointer(&area)),
	))
	return area, err
}

func (i *Geometry) ComputeLength(worldTransform *MATRIX_3X2_F, flatteningTolerance float32) (float32, error) {
	var length float32
	err := com.Check("ID2D1Geometry::ComputeLength", com.Call(i.vtbl().ComputeLength,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(worldTransform)),
		uintptr(math.Float32bits(flatteningTolerance)),
		uintptr(unsafe.Pointer(&length)),
	))
	return length, err
}

// ComputePointAtLength returns the point at length along the geometry and
// the unit tangent there.
func (i *Geometry) ComputePointAtLength(length float32, worldTransform *MATRIX_3X2_F, flatteningTolerance float32) (point, unitTangentVector POINT_2F, err error) {
	err = com.Check("ID2D1Geometry::ComputePointAtLength", com.Call(i.vtbl().ComputePointAtLength,
		uintptr(unsafe.Pointer(i)),
		uintptr(math.Float32bits(length)),
		uintptr(unsafe.Pointer(worldTransform)),
		uintptr(math.Float32bits(flatteningTolerance)),
		uintptr(unsafe.Pointer(&point)),
		uintptr(unsafe.Pointer(&unitTangentVector)),
	))
	return point, unitTangentVector, err
}

func (i *Geometry) Widen(strokeWidth float32, strokeStyle *StrokeStyle, worldTransform *MATRIX_3X2_F, flatteningTolerance float32, sink *SimplifiedGeometrySink) error {
	return com.Check("ID2D1Geometry::Widen", com.Call(i.vtbl().Widen,
		uintptr(unsafe.Pointer(i)),
		uintptr(math.Float32bits(strokeWidth)),
		uintptr(unsafe.Pointer(strokeStyle)),
		uintptr(unsafe.Pointer(worldTransform)),
		uintptr(math.Float32bits(flatteningTolerance)),
		uintptr(unsafe.Pointer(sink)),
	))
}

func (i *RectangleGeometry) GetRect() RECT_F {
	var rect RECT_F
	com.CallRaw(i.vtbl().GetRect, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&rect)))
	return rect
}

func (i *RoundedRectangleGeometry) GetRoundedRect() ROUNDED_RECT {
	var rect ROUNDED_RECT
	com.CallRaw(i.vtbl().GetRoundedRect, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&rect)))
	return rect
}

func (i *EllipseGeometry) GetEllipse() ELLIPSE {
	var ellipse ELLIPSE
	com.CallRaw(i.vtbl().GetEllipse, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&ellipse)))
	return ellipse
}

func (i *GeometryGroup) GetFillMode() FILL_MODE {
	return FILL_MODE(com.CallRaw(i.vtbl().GetFillMode, uintptr(unsafe.Pointer(i))))
}

func (i *GeometryGroup) GetSourceGeometryCount() uint32 {
	return uint32(com.CallRaw(i.vtbl().GetSourceGeometryCount, uintptr(unsafe.Pointer(i))))
}

// GetSourceGeometries returns the source geometries, each with an added
// reference.
func (i *GeometryGroup) GetSourceGeometries() []*Geometry {
	geometries := make([]*Geometry, i.GetSourceGeometryCount())
	if len(geometries) == 0 {
		return geometries
	}
	com.CallRaw(i.vtbl().GetSourceGeometries,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(unsafe.SliceData(geometries))),
		uintptr(len(geometries)),
	)
	return geometries
}

func (i *TransformedGeometry) GetSourceGeometry() *Geometry {
	var geometry *Geometry
	com.CallRaw(i.vtbl().GetSourceGeometry, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&geometry)))
	return geometry
}

func (i *TransformedGeometry) GetTransform() MATRIX_3X2_F {
	var m MATRIX_3X2_F
	com.CallRaw(i.vtbl().GetTransform, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(&m)))
	return m
}

func (i *SimplifiedGeometrySink) SetFillMode(fillMode FILL_MODE) {
	com.CallRaw(i.vtbl().SetFillMode, uintptr(unsafe.Pointer(i)), uintptr(fillMode))
}

func (i *SimplifiedGeometrySink) SetSegmentFlags(vertexFlags PATH_SEGMENT) {
	com.CallRaw(i.vtbl().SetSegmentFlags, uintptr(unsafe.Pointer(i)), uintptr(vertexFlags))
}

func (i *SimplifiedGeometrySink) BeginFigure(startPoint POINT_2F, figureBegin FIGURE_BEGIN) {
	com.CallRaw(i.vtbl().BeginFigure, uintptr(unsafe.Pointer(i)), startPoint.word(), uintptr(figureBegin))
}

func (i *SimplifiedGeometrySink) AddLines(points []POINT_2F) {
	com.CallRaw(i.vtbl().AddLines,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(unsafe.SliceData(points))),
		uintptr(len(points)),
	)
}

func (i *SimplifiedGeometrySink) AddBeziers(beziers []BEZIER_SEGMENT) {
	com.CallRaw(i.vtbl().AddBeziers,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(unsafe.SliceData(beziers))),
		uintptr(len(beziers)),
	)
}

func (i *SimplifiedGeometrySink) EndFigure(figureEnd FIGURE_END) {
	com.CallRaw(i.vtbl().EndFigure, uintptr(unsafe.Pointer(i)), uintptr(figureEnd))
}

func (i *SimplifiedGeometrySink) Close() error {
	return com.Check("ID2D1SimplifiedGeometrySink::Close", com.Call(i.vtbl().Close, uintptr(unsafe.Pointer(i))))
}

func (i *GeometrySink) AddLine(point POINT_2F) {
	com.CallRaw(i.vtbl().AddLine, uintptr(unsafe.Pointer(i)), point.word())
}

func (i *GeometrySink) AddBezier(bezier *BEZIER_SEGMENT) {
	com.CallRaw(i.vtbl().AddBezier, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(bezier)))
}

func (i *GeometrySink) AddQuadraticBezier(bezier *QUADRATIC_BEZIER_SEGMENT) {
	com.CallRaw(i.vtbl().AddQuadraticBezier, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(bezier)))
}

func (i *GeometrySink) AddQuadraticBeziers(beziers []QUADRATIC_BEZIER_SEGMENT) {
	com.CallRaw(i.vtbl().AddQuadraticBeziers,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(unsafe.SliceData(beziers))),
		uintptr(len(beziers)),
	)
}

func (i *GeometrySink) AddArc(arc *ARC_SEGMENT) {
	com.CallRaw(i.vtbl().AddArc, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(arc)))
}

// Open returns the sink that defines the path, it must be closed before the
// geometry is used.
func (i *PathGeometry) Open() (*GeometrySink, error) {
	var sink *GeometrySink
	err := com.Check("ID2D1PathGeometry::Open", com.Call(i.vtbl().Open,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&sink)),
	))
	return sink, err
}

func (i *PathGeometry) Stream(sink *GeometrySink) error {
	return com.Check("ID2D1PathGeometry::Stream", com.Call(i.vtbl().Stream,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(sink)),
	))
}

func (i *PathGeometry) GetSegmentCount() (uint32, error) {
	var count uint32
	err := com.Check("ID2D1PathGeometry::GetSegmentCount", com.Call(i.vtbl().GetSegmentCount,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&count)),
	))
	return count, err
}

func (i *PathGeometry) GetFigureCount() (uint32, error) {
	var count uint32
	err := com.Check("ID2D1PathGeometry::GetFigureCount", com.Call(i.vtbl().GetFigureCount,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(&count)),
	))
	return count, err
}
