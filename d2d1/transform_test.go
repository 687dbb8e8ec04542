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

	"goarrg.com/gmath"
)

func TestTransform2DPivot(t *testing.T) {
	corners := map[Pivot]POINT_2F{
		PivotTopLeft:     Point2F(-0.5, -0.5),
		PivotTopRight:    Point2F(0.5, -0.5),
		PivotBottomRight: Point2F(0.5, 0.5),
		PivotBottomLeft:  Point2F(-0.5, 0.5),
		PivotCenter:      Point2F(0, 0),
	}
	for pivot, corner := range corners {
		tr := Transform2D{
			Pos:              gmath.Point2f32{X: 100, Y: 100},
			Size:             gmath.Vector2f32{X: 10, Y: 20},
			TranslationPivot: pivot,
		}
		m := tr.Matrix()
		if got := m.TransformPoint(corner); !pointNear(got, Point2F(100, 100)) {
			t.Errorf("pivot %d: corner mapped to %+v, want (100,100)", pivot, got)
		}
	}

	tr := Transform2D{
		Pos:  gmath.Point2f32{X: 100, Y: 100},
		Size: gmath.Vector2f32{X: 10, Y: 20},
	}
	if m := tr.Matrix(); m.M31 != 105 || m.M32 != 110 {
		t.Errorf("translation = (%f, %f), want (105, 110)", m.M31, m.M32)
	}
}

func TestTransform2DRotation(t *testing.T) {
	tr := Transform2D{
		Rot:              math.Pi / 2,
		Size:             gmath.Vector2f32{X: 10, Y: 10},
		TranslationPivot: PivotCenter,
	}
	m := tr.Matrix()
	if got := m.TransformPoint(Point2F(0.5, 0)); !pointNear(got, Point2F(0, 5)) {
		t.Errorf("(0.5,0) mapped to %+v, want (0,5)", got)
	}

	tr.TranslationPivot = PivotTopLeft
	m = tr.Matrix()
	lo := Point2F(math.MaxFloat32, math.MaxFloat32)
	for _, v := range unitSquare {
		p := m.TransformPoint(Point2F(v.X, v.Y))
		lo.X = float32(math.Min(float64(lo.X), float64(p.X)))
		lo.Y = float32(math.Min(float64(lo.Y), float64(p.Y)))
	}
	if !pointNear(lo, Point2F(0, 0)) {
		t.Errorf("rotated bounds start at %+v, want (0,0)", lo)
	}
}

func TestTransform2DOrder(t *testing.T) {
	tests := []struct {
		order TransformOrder
		want  POINT_2F
	}{
		// sized along x first, then turned onto the y axis
		{TransformTRS, Point2F(0, 5)},
		// turned onto the y axis first, then sized by the target's y
		{TransformTSR, Point2F(0, 10)},
	}
	for _, tc := range tests {
		tr := Transform2D{
			Rot:              math.Pi / 2,
			Size:             gmath.Vector2f32{X: 10, Y: 20},
			TransformOrder:   tc.order,
			TranslationPivot: PivotCenter,
		}
		m := tr.Matrix()
		if got := m.TransformPoint(Point2F(0.5, 0)); !pointNear(got, tc.want) {
			t.Errorf("order %d: (0.5,0) mapped to %+v, want %+v", tc.order, got, tc.want)
		}
	}
}
