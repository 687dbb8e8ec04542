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

	"goarrg.com/rhi/dxr/dxgi"
)

func TestBitmapPropertiesDefaultDpi(t *testing.T) {
	p := BitmapProperties(PixelFormat(dxgi.FORMAT_B8G8R8A8_UNORM, ALPHA_MODE_PREMULTIPLIED), 0, 144)
	if p.DpiX != DefaultDpi || p.DpiY != 144 {
		t.Errorf("dpi = (%f, %f)", p.DpiX, p.DpiY)
	}
	if p.PixelFormat.Format != dxgi.FORMAT_B8G8R8A8_UNORM || p.PixelFormat.AlphaMode != ALPHA_MODE_PREMULTIPLIED {
		t.Errorf("PixelFormat = %+v", p.PixelFormat)
	}
}

func TestDefaults(t *testing.T) {
	if b := DefaultBrushProperties(); b.Opacity != 1 || !b.Transform.IsIdentity() {
		t.Errorf("DefaultBrushProperties() = %+v", b)
	}

	s := DefaultStrokeStyleProperties()
	if s.LineJoin != LINE_JOIN_MITER || s.MiterLimit != 10 || s.DashStyle != DASH_STYLE_SOLID {
		t.Errorf("DefaultStrokeStyleProperties() = %+v", s)
	}

	l := DefaultLayerParameters()
	if l.ContentBounds.Left != -math.MaxFloat32 || l.ContentBounds.Bottom != math.MaxFloat32 {
		t.Errorf("ContentBounds = %+v", l.ContentBounds)
	}
	if l.Opacity != 1 || l.GeometricMask != nil || l.OpacityBrush != nil || !l.MaskTransform.IsIdentity() {
		t.Errorf("DefaultLayerParameters() = %+v", l)
	}

	if r := DefaultRenderTargetProperties(); r != (RENDER_TARGET_PROPERTIES{}) {
		t.Errorf("DefaultRenderTargetProperties() = %+v", r)
	}
}
