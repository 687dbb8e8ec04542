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

	"goarrg.com/gmath"
)

// Pivot names the corner of a placed geometry's screen space bounds that
// Transform2D.Pos refers to.
type Pivot uint32

const (
	PivotTopLeft Pivot = iota
	PivotTopRight
	PivotBottomRight
	PivotBottomLeft
	PivotCenter
)

func (p Pivot) vector() gmath.Vector2f32 {
	switch p {
	case PivotTopLeft:
		return gmath.Vector2f32{X: -1, Y: -1}
	case PivotTopRight:
		return gmath.Vector2f32{X: 1, Y: -1}
	case PivotBottomRight:
		return gmath.Vector2f32{X: 1, Y: 1}
	case PivotBottomLeft:
		return gmath.Vector2f32{X: -1, Y: 1}
	case PivotCenter:
		return gmath.Vector2f32{}
	default:
		abort("Unknown Pivot: %d", p)
		return gmath.Vector2f32{}
	}
}

var unitSquare = []gmath.Vector2f32{
	{X: -0.5, Y: -0.5},
	{X: 0.5, Y: -0.5},
	{X: 0.5, Y: 0.5},
	{X: -0.5, Y: 0.5},
}

// offset maps the pivot corner of the placed unit square's axis aligned
// bounds back to the unit square's center, in render target pixels.
func (p Pivot) offset(m0, m1 gmath.Vector2f32) gmath.Vector2f32 {
	pM := gmath.Vector2f32{X: m0.Dot(unitSquare[0]), Y: m1.Dot(unitSquare[0])}
	switch p {
	case PivotTopLeft:
		for _, v := range unitSquare[1:] {
			pM = pM.Min(gmath.Vector2f32{X: m0.Dot(v), Y: m1.Dot(v)})
		}
	case PivotTopRight:
		for _, v := range unitSquare[1:] {
			pM = gmath.Vector2f32{X: max(pM.X, m0.Dot(v)), Y: min(pM.Y, m1.Dot(v))}
		}
	case PivotBottomRight:
		for _, v := range unitSquare[1:] {
			pM = pM.Max(gmath.Vector2f32{X: m0.Dot(v), Y: m1.Dot(v)})
		}
	case PivotBottomLeft:
		for _, v := range unitSquare[1:] {
			pM = gmath.Vector2f32{X: min(pM.X, m0.Dot(v)), Y: max(pM.Y, m1.Dot(v))}
		}
	case PivotCenter:
		return gmath.Vector2f32{}
	default:
		abort("Unknown Pivot: %d", p)
	}
	return pM.Abs().Scale(p.vector())
}

// TransformOrder selects whether a geometry is sized before or after it is
// rotated on the render target.
type TransformOrder uint32

const (
	// TransformTRS sizes geometry along its own axes, then rotates it.
	TransformTRS TransformOrder = iota
	// TransformTSR rotates geometry, then sizes it along the render target axes.
	TransformTSR
)

// Transform2D places the unit square centered at the origin on a render
// target. Rot is in radians, clockwise on screen.
type Transform2D struct {
	Pos            gmath.Point2f32
	Rot            float32
	Size           gmath.Vector2f32
	TransformOrder TransformOrder
	// TranslationPivot picks the corner of the placed geometry's bounds
	// that lands on Pos. Bounds are taken in render target space, so
	// PivotTopLeft is the top left in pixels regardless of Rot.
	TranslationPivot Pivot
}

// Matrix returns the transform for SetTransform, geometry drawn in the unit
// square ends up where t places it.
func (t *Transform2D) Matrix() MATRIX_3X2_F {
	var m0, m1 gmath.Vector2f32
	sin, cos := float32(math.Sin(float64(t.Rot))), float32(math.Cos(float64(t.Rot)))

	switch t.TransformOrder {
	case TransformTRS:
		m0 = gmath.Vector2f32{X: cos, Y: -sin}.Scale(t.Size)
		m1 = gmath.Vector2f32{X: sin, Y: cos}.Scale(t.Size)
	case TransformTSR:
		m0 = gmath.Vector2f32{X: cos, Y: -sin}.Scale(gmath.Vector2f32{X: t.Size.X, Y: t.Size.X})
		m1 = gmath.Vector2f32{X: sin, Y: cos}.Scale(gmath.Vector2f32{X: t.Size.Y, Y: t.Size.Y})
	default:
		abort("invalid TransformOrder: %d", t.TransformOrder)
	}

	o := t.TranslationPivot.offset(m0, m1)
	return MATRIX_3X2_F{
		M11: m0.X, M12: m1.X,
		M21: m0.Y, M22: m1.Y,
		M31: t.Pos.X - o.X,
		M32: t.Pos.Y - o.Y,
	}
}
