//go:build windows && amd64
// +build windows,amd64

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

import "testing"

func newTestFactory(t *testing.T) *Factory {
	t.Helper()
	f, err := CreateFactory(FactoryConfig{})
	if err != nil {
		t.Skipf("d2d1 unavailable: %v", err)
	}
	t.Cleanup(func() { f.Release() })
	return f
}

func TestRuntimeMatrices(t *testing.T) {
	center := Point2F(3, -2)

	got, err := MakeRotateMatrix(30, center)
	if err != nil {
		t.Skipf("d2d1 unavailable: %v", err)
	}
	if want := RotationMatrix(30, center); !matrixNear(got, want) {
		t.Errorf("MakeRotateMatrix = %+v, RotationMatrix = %+v", got, want)
	}

	got, err = MakeSkewMatrix(15, 40, center)
	if err != nil {
		t.Fatal(err)
	}
	if want := SkewMatrix(15, 40, center); !matrixNear(got, want) {
		t.Errorf("MakeSkewMatrix = %+v, SkewMatrix = %+v", got, want)
	}

	m := TranslationMatrix(1, 2).Multiply(RotationMatrix(45, center))
	want, _ := m.Invert()
	if ok, err := InvertMatrix(&m); err != nil || !ok {
		t.Fatalf("InvertMatrix = %v, %v", ok, err)
	}
	if !matrixNear(m, want) {
		t.Errorf("InvertMatrix = %+v, Invert = %+v", m, want)
	}

	singular := MATRIX_3X2_F{M11: 1, M12: 2, M21: 2, M22: 4}
	if ok, err := IsMatrixInvertible(&singular); err != nil || ok {
		t.Errorf("IsMatrixInvertible(singular) = %v, %v", ok, err)
	}
}

func TestFactoryGeometry(t *testing.T) {
	f := newTestFactory(t)

	if x, y := f.GetDesktopDpi(); x <= 0 || y <= 0 {
		t.Errorf("GetDesktopDpi = (%f, %f)", x, y)
	}

	rect := RectF(0, 0, 10, 20)
	g, err := f.CreateRectangleGeometry(&rect)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Release()

	if got := g.GetRect(); got != rect {
		t.Errorf("GetRect = %+v", got)
	}
	if in, err := g.FillContainsPoint(Point2F(5, 5), nil, DEFAULT_FLATTENING_TOLERANCE); err != nil || !in {
		t.Errorf("FillContainsPoint(5,5) = %v, %v", in, err)
	}
	if in, err := g.FillContainsPoint(Point2F(15, 5), nil, DEFAULT_FLATTENING_TOLERANCE); err != nil || in {
		t.Errorf("FillContainsPoint(15,5) = %v, %v", in, err)
	}
	if area, err := g.ComputeArea(nil, DEFAULT_FLATTENING_TOLERANCE); err != nil || !nearlyEqual(area, 200) {
		t.Errorf("ComputeArea = %f, %v", area, err)
	}
	scale := ScaleMatrix(SizeF(2, 2), Point2F(0, 0))
	if bounds, err := g.GetBounds(&scale); err != nil || bounds != RectF(0, 0, 20, 40) {
		t.Errorf("GetBounds = %+v, %v", bounds, err)
	}
}

func TestPathGeometry(t *testing.T) {
	f := newTestFactory(t)

	path, err := f.CreatePathGeometry()
	if err != nil {
		t.Fatal(err)
	}
	defer path.Release()

	sink, err := path.Open()
	if err != nil {
		t.Fatal(err)
	}
	sink.BeginFigure(Point2F(0, 0), FIGURE_BEGIN_FILLED)
	sink.AddLines([]POINT_2F{Point2F(10, 0), Point2F(0, 10)})
	sink.EndFigure(FIGURE_END_CLOSED)
	err = sink.Close()
	sink.Release()
	if err != nil {
		t.Fatal(err)
	}

	if n, err := path.GetFigureCount(); err != nil || n != 1 {
		t.Errorf("GetFigureCount = %d, %v", n, err)
	}
	if n, err := path.GetSegmentCount(); err != nil || n < 2 {
		t.Errorf("GetSegmentCount = %d, %v", n, err)
	}
	if area, err := path.ComputeArea(nil, DEFAULT_FLATTENING_TOLERANCE); err != nil || !nearlyEqual(area, 50) {
		t.Errorf("ComputeArea = %f, %v", area, err)
	}
}
