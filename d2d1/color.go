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

// ColorName is a 0xRRGGBB value from the named color set of d2d1helper.h.
type ColorName uint32

const (
	ColorAliceBlue      ColorName = 0xF0F8FF
	ColorBlack          ColorName = 0x000000
	ColorBlue           ColorName = 0x0000FF
	ColorCornflowerBlue ColorName = 0x6495ED
	ColorCrimson        ColorName = 0xDC143C
	ColorCyan           ColorName = 0x00FFFF
	ColorDarkBlue       ColorName = 0x00008B
	ColorDarkGray       ColorName = 0xA9A9A9
	ColorDarkGreen      ColorName = 0x006400
	ColorDarkRed        ColorName = 0x8B0000
	ColorDimGray        ColorName = 0x696969
	ColorGold           ColorName = 0xFFD700
	ColorGray           ColorName = 0x808080
	ColorGreen          ColorName = 0x008000
	ColorHotPink        ColorName = 0xFF69B4
	ColorIndigo         ColorName = 0x4B0082
	ColorLightGray      ColorName = 0xD3D3D3
	ColorLime           ColorName = 0x00FF00
	ColorMagenta        ColorName = 0xFF00FF
	ColorMaroon         ColorName = 0x800000
	ColorNavy           ColorName = 0x000080
	ColorOlive          ColorName = 0x808000
	ColorOrange         ColorName = 0xFFA500
	ColorPurple         ColorName = 0x800080
	ColorRed            ColorName = 0xFF0000
	ColorSilver         ColorName = 0xC0C0C0
	ColorSkyBlue        ColorName = 0x87CEEB
	ColorTeal           ColorName = 0x008080
	ColorWhite          ColorName = 0xFFFFFF
	ColorYellow         ColorName = 0xFFFF00
)

func (n ColorName) ColorF(alpha float32) COLOR_F {
	return ColorRGB(uint32(n), alpha)
}

func ColorF(r, g, b, a float32) COLOR_F {
	return COLOR_F{R: r, G: g, B: b, A: a}
}

// ColorRGB expands a 0xRRGGBB value, bits above the low 24 are ignored.
func ColorRGB(rgb uint32, alpha float32) COLOR_F {
	return COLOR_F{
		R: float32((rgb>>16)&0xFF) / 255,
		G: float32((rgb>>8)&0xFF) / 255,
		B: float32(rgb&0xFF) / 255,
		A: alpha,
	}
}

// RGB packs the color back into 0xRRGGBB, rounding and clamping each channel.
func (c COLOR_F) RGB() uint32 {
	return uint32(channel(c.R))<<16 | uint32(channel(c.G))<<8 | uint32(channel(c.B))
}

func channel(v float32) uint8 {
	v = v*255 + 0.5
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
