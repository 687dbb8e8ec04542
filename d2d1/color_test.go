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

func TestColorRGB(t *testing.T) {
	c := ColorCornflowerBlue.ColorF(0.5)
	if c.A != 0.5 {
		t.Errorf("alpha = %f", c.A)
	}
	if c.R != float32(0x64)/255 || c.G != float32(0x95)/255 || c.B != float32(0xED)/255 {
		t.Errorf("ColorF = %+v", c)
	}

	for _, rgb := range []uint32{0x000000, 0xFFFFFF, 0x6495ED, 0x010203, 0xFF8000} {
		if got := ColorRGB(rgb, 1).RGB(); got != rgb {
			t.Errorf("ColorRGB(0x%06X).RGB() = 0x%06X", rgb, got)
		}
	}
	if got := ColorRGB(0xAB123456, 1).RGB(); got != 0x123456 {
		t.Errorf("high bits kept: 0x%06X", got)
	}
}

func TestColorClamp(t *testing.T) {
	if got := ColorF(2, -1, 0.5, 1).RGB(); got != 0xFF0080 {
		t.Errorf("RGB() = 0x%06X, want 0xFF0080", got)
	}
}
