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
	"testing"
)

func nearlyEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func pointNear(a, b POINT_2F) bool {
	return nearlyEqual(a.X, b.X) && nearlyEqual(a.Y, b.Y)
}

func matrixNear(a, b MATRIX_3X2_F) bool {
	return nearlyEqual(a.M11, b.M11) && nearlyEqual(a.M12, b.M12) &&
		nearlyEqual(a.M21, b.M21) && nearlyEqual(a.M22, b.M22) &&
		nearlyEqual(a.M31, b.M31) && nearlyEqual(a.M32, b.M32)
}

func TestIdentityAndTranslation(t *testing.T) {
	if !IdentityMatrix().IsIdentity() {
		t.Error("IdentityMatrix is not identity")
	}
	m := TranslationMatrix(3, -4)
	if m.IsIdentity() {
		t.Error("translation reported as identity")
	}
	if got := m.TransformPoint(Point2F(1, 1)); got != Point2F(4, -3) {
		t.Errorf("TransformPoint = %+v", got)
	}
}

func TestScaleMatrix(t *testing.T) {
	m := ScaleMatrix(SizeF(2, 3), Point2F(10, 10))
	if got := m.TransformPoint(Point2F(10, 10)); got != Point2F(10, 10) {
		t.Errorf("center moved to %+v", got)
	}
	if got := m.TransformPoint(Point2F(11, 11)); got != Point2F(12, 13) {
		t.Errorf("TransformPoint = %+v", got)
	}
}

func TestRotationMatrix(t *testing.T) {
	m := RotationMatrix(90, Point2F(0, 0))
	if got := m.TransformPoint(Point2F(1, 0)); !pointNear(got, Point2F(0, 1)) {
		t.Errorf("(1,0) rotated to %+v, want (0,1)", got)
	}

	center := Point2F(5, 7)
	m = RotationMatrix(33, center)
	if got := m.TransformPoint(center); !pointNear(got, center) {
		t.Errorf("center moved to %+v", got)
	}
	if !nearlyEqual(m.Determinant(), 1) {
		t.Errorf("rotation determinant = %f", m.Determinant())
	}
}

func TestSkewMatrix(t *testing.T) {
	m := SkewMatrix(45, 0, Point2F(0, 0))
	if got := m.TransformPoint(Point2F(0, 1)); !pointNear(got, Point2F(1, 1)) {
		t.Errorf("(0,1) skewed to %+v, want (1,1)", got)
	}

	center := Point2F(2, 3)
	m = SkewMatrix(20, 10, center)
	if got := m.TransformPoint(center); !pointNear(got, center) {
		t.Errorf("center moved to %+v", got)
	}
}

func TestInvert(t *testing.T) {
	m := TranslationMatrix(5, 6).Multiply(RotationMatrix(30, Point2F(1, 2))).Multiply(ScaleMatrix(SizeF(2, 4), Point2F(0, 0)))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("invertible matrix reported singular")
	}
	if got := m.Multiply(inv); !matrixNear(got, IdentityMatrix()) {
		t.Errorf("m * inv = %+v", got)
	}
	p := Point2F(-3, 8)
	if got := inv.TransformPoint(m.TransformPoint(p)); !pointNear(got, p) {
		t.Errorf("round trip = %+v, want %+v", got, p)
	}

	singular := ScaleMatrix(SizeF(0, 1), Point2F(0, 0))
	if singular.IsInvertible() {
		t.Error("singular matrix reported invertible")
	}
	if got, ok := singular.Invert(); ok || got != singular {
		t.Errorf("Invert(singular) = %+v, %v", got, ok)
	}
}

func TestMultiplyOrder(t *testing.T) {
	// translate then scale about the origin
	m := TranslationMatrix(1, 0).Multiply(ScaleMatrix(SizeF(2, 2), Point2F(0, 0)))
	if got := m.TransformPoint(Point2F(0, 0)); got != Point2F(2, 0) {
		t.Errorf("TransformPoint = %+v, want (2,0)", got)
	}
	m = ScaleMatrix(SizeF(2, 2), Point2F(0, 0)).Multiply(TranslationMatrix(1, 0))
	if got := m.TransformPoint(Point2F(0, 0)); got != Point2F(1, 0) {
		t.Errorf("TransformPoint = %+v, want (1,0)", got)
	}
}
