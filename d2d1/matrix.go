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

import "math"

func IdentityMatrix() MATRIX_3X2_F {
	return MATRIX_3X2_F{M11: 1, M22: 1}
}

func TranslationMatrix(x, y float32) MATRIX_3X2_F {
	return MATRIX_3X2_F{M11: 1, M22: 1, M31: x, M32: y}
}

// ScaleMatrix scales about center.
func ScaleMatrix(size SIZE_F, center POINT_2F) MATRIX_3X2_F {
	return MATRIX_3X2_F{
		M11: size.Width,
		M22: size.Height,
		M31: center.X - size.Width*center.X,
		M32: center.Y - size.Height*center.Y,
	}
}

// RotationMatrix rotates clockwise by angle degrees about center, matching
// D2D1MakeRotateMatrix.
func RotationMatrix(angle float32, center POINT_2F) MATRIX_3X2_F {
	s, c := math.Sincos(float64(angle) * math.Pi / 180)
	sin, cos := float32(s), float32(c)
	return MATRIX_3X2_F{
		M11: cos, M12: sin,
		M21: -sin, M22: cos,
		M31: center.X - center.X*cos + center.Y*sin,
		M32: center.Y - center.X*sin - center.Y*cos,
	}
}

// SkewMatrix skews by angleX and angleY degrees about center, matching
// D2D1MakeSkewMatrix.
func SkewMatrix(angleX, angleY float32, center POINT_2F) MATRIX_3X2_F {
	tanX := float32(math.Tan(float64(angleX) * math.Pi / 180))
	tanY := float32(math.Tan(float64(angleY) * math.Pi / 180))
	return MATRIX_3X2_F{
		M11: 1, M12: tanY,
		M21: tanX, M22: 1,
		M31: -center.Y * tanX,
		M32: -center.X * tanY,
	}
}

func (m MATRIX_3X2_F) Determinant() float32 {
	return m.M11*m.M22 - m.M12*m.M21
}

func (m MATRIX_3X2_F) IsInvertible() bool {
	return m.Determinant() != 0
}

func (m MATRIX_3X2_F) IsIdentity() bool {
	return m == IdentityMatrix()
}

// Invert returns false and leaves m unchanged when m is singular.
func (m MATRIX_3X2_F) Invert() (MATRIX_3X2_F, bool) {
	det := m.Determinant()
	if det == 0 {
		return m, false
	}
	inv := 1 / det
	return MATRIX_3X2_F{
		M11: m.M22 * inv,
		M12: -m.M12 * inv,
		M21: -m.M21 * inv,
		M22: m.M11 * inv,
		M31: (m.M21*m.M32 - m.M22*m.M31) * inv,
		M32: (m.M12*m.M31 - m.M11*m.M32) * inv,
	}, true
}

// Multiply returns m * n, applying m first.
func (m MATRIX_3X2_F) Multiply(n MATRIX_3X2_F) MATRIX_3X2_F {
	return MATRIX_3X2_F{
		M11: m.M11*n.M11 + m.M12*n.M21,
		M12: m.M11*n.M12 + m.M12*n.M22,
		M21: m.M21*n.M11 + m.M22*n.M21,
		M22: m.M21*n.M12 + m.M22*n.M22,
		M31: m.M31*n.M11 + m.M32*n.M21 + n.M31,
		M32: m.M31*n.M12 + m.M32*n.M22 + n.M32,
	}
}

func (m MATRIX_3X2_F) TransformPoint(p POINT_2F) POINT_2F {
	return POINT_2F{
		X: p.X*m.M11 + p.Y*m.M21 + m.M31,
		Y: p.X*m.M12 + p.Y*m.M22 + m.M32,
	}
}
