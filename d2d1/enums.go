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

type ALPHA_MODE uint32

const (
	ALPHA_MODE_UNKNOWN       ALPHA_MODE = 0
	ALPHA_MODE_PREMULTIPLIED ALPHA_MODE = 1
	ALPHA_MODE_STRAIGHT      ALPHA_MODE = 2
	ALPHA_MODE_IGNORE        ALPHA_MODE = 3
)

type GAMMA uint32

const (
	GAMMA_2_2 GAMMA = 0
	GAMMA_1_0 GAMMA = 1
)

type OPACITY_MASK_CONTENT uint32

const (
	OPACITY_MASK_CONTENT_GRAPHICS            OPACITY_MASK_CONTENT = 0
	OPACITY_MASK_CONTENT_TEXT_NATURAL        OPACITY_MASK_CONTENT = 1
	OPACITY_MASK_CONTENT_TEXT_GDI_COMPATIBLE OPACITY_MASK_CONTENT = 2
)

type EXTEND_MODE uint32

const (
	EXTEND_MODE_CLAMP  EXTEND_MODE = 0
	EXTEND_MODE_WRAP   EXTEND_MODE = 1
	EXTEND_MODE_MIRROR EXTEND_MODE = 2
)

type ANTIALIAS_MODE uint32

const (
	ANTIALIAS_MODE_PER_PRIMITIVE ANTIALIAS_MODE = 0
	ANTIALIAS_MODE_ALIASED       ANTIALIAS_MODE = 1
)

type TEXT_ANTIALIAS_MODE uint32

const (
	TEXT_ANTIALIAS_MODE_DEFAULT   TEXT_ANTIALIAS_MODE = 0
	TEXT_ANTIALIAS_MODE_CLEARTYPE TEXT_ANTIALIAS_MODE = 1
	TEXT_ANTIALIAS_MODE_GRAYSCALE TEXT_ANTIALIAS_MODE = 2
	TEXT_ANTIALIAS_MODE_ALIASED   TEXT_ANTIALIAS_MODE = 3
)

type BITMAP_INTERPOLATION_MODE uint32

const (
	BITMAP_INTERPOLATION_MODE_NEAREST_NEIGHBOR BITMAP_INTERPOLATION_MODE = 0
	BITMAP_INTERPOLATION_MODE_LINEAR           BITMAP_INTERPOLATION_MODE = 1
)

type DRAW_TEXT_OPTIONS uint32

const (
	DRAW_TEXT_OPTIONS_NONE                          DRAW_TEXT_OPTIONS = 0x0
	DRAW_TEXT_OPTIONS_NO_SNAP                       DRAW_TEXT_OPTIONS = 0x1
	DRAW_TEXT_OPTIONS_CLIP                          DRAW_TEXT_OPTIONS = 0x2
	DRAW_TEXT_OPTIONS_ENABLE_COLOR_FONT             DRAW_TEXT_OPTIONS = 0x4
	DRAW_TEXT_OPTIONS_DISABLE_COLOR_BITMAP_SNAPPING DRAW_TEXT_OPTIONS = 0x8
)

// MEASURING_MODE is DWRITE_MEASURING_MODE from dcommon.h.
type MEASURING_MODE uint32

const (
	MEASURING_MODE_NATURAL     MEASURING_MODE = 0
	MEASURING_MODE_GDI_CLASSIC MEASURING_MODE = 1
	MEASURING_MODE_GDI_NATURAL MEASURING_MODE = 2
)

type ARC_SIZE uint32

const (
	ARC_SIZE_SMALL ARC_SIZE = 0
	ARC_SIZE_LARGE ARC_SIZE = 1
)

type CAP_STYLE uint32

const (
	CAP_STYLE_FLAT     CAP_STYLE = 0
	CAP_STYLE_SQUARE   CAP_STYLE = 1
	CAP_STYLE_ROUND    CAP_STYLE = 2
	CAP_STYLE_TRIANGLE CAP_STYLE = 3
)

type DASH_STYLE uint32

const (
	DASH_STYLE_SOLID        DASH_STYLE = 0
	DASH_STYLE_DASH         DASH_STYLE = 1
	DASH_STYLE_DOT          DASH_STYLE = 2
	DASH_STYLE_DASH_DOT     DASH_STYLE = 3
	DASH_STYLE_DASH_DOT_DOT DASH_STYLE = 4
	DASH_STYLE_CUSTOM       DASH_STYLE = 5
)

type LINE_JOIN uint32

const (
	LINE_JOIN_MITER          LINE_JOIN = 0
	LINE_JOIN_BEVEL          LINE_JOIN = 1
	LINE_JOIN_ROUND          LINE_JOIN = 2
	LINE_JOIN_MITER_OR_BEVEL LINE_JOIN = 3
)

type COMBINE_MODE uint32

const (
	COMBINE_MODE_UNION     COMBINE_MODE = 0
	COMBINE_MODE_INTERSECT COMBINE_MODE = 1
	COMBINE_MODE_XOR       COMBINE_MODE = 2
	COMBINE_MODE_EXCLUDE   COMBINE_MODE = 3
)

type GEOMETRY_RELATION uint32

const (
	GEOMETRY_RELATION_UNKNOWN      GEOMETRY_RELATION = 0
	GEOMETRY_RELATION_DISJOINT     GEOMETRY_RELATION = 1
	GEOMETRY_RELATION_IS_CONTAINED GEOMETRY_RELATION = 2
	GEOMETRY_RELATION_CONTAINS     GEOMETRY_RELATION = 3
	GEOMETRY_RELATION_OVERLAP      GEOMETRY_RELATION = 4
)

type GEOMETRY_SIMPLIFICATION_OPTION uint32

const (
	GEOMETRY_SIMPLIFICATION_OPTION_CUBICS_AND_LINES GEOMETRY_SIMPLIFICATION_OPTION = 0
	GEOMETRY_SIMPLIFICATION_OPTION_LINES            GEOMETRY_SIMPLIFICATION_OPTION = 1
)

type FIGURE_BEGIN uint32

const (
	FIGURE_BEGIN_FILLED FIGURE_BEGIN = 0
	FIGURE_BEGIN_HOLLOW FIGURE_BEGIN = 1
)

type FIGURE_END uint32

const (
	FIGURE_END_OPEN   FIGURE_END = 0
	FIGURE_END_CLOSED FIGURE_END = 1
)

type PATH_SEGMENT uint32

const (
	PATH_SEGMENT_NONE                  PATH_SEGMENT = 0x0
	PATH_SEGMENT_FORCE_UNSTROKED       PATH_SEGMENT = 0x1
	PATH_SEGMENT_FORCE_ROUND_LINE_JOIN PATH_SEGMENT = 0x2
)

type SWEEP_DIRECTION uint32

const (
	SWEEP_DIRECTION_COUNTER_CLOCKWISE SWEEP_DIRECTION = 0
	SWEEP_DIRECTION_CLOCKWISE         SWEEP_DIRECTION = 1
)

type FILL_MODE uint32

const (
	FILL_MODE_ALTERNATE FILL_MODE = 0
	FILL_MODE_WINDING   FILL_MODE = 1
)

type LAYER_OPTIONS uint32

const (
	LAYER_OPTIONS_NONE                     LAYER_OPTIONS = 0x0
	LAYER_OPTIONS_INITIALIZE_FOR_CLEARTYPE LAYER_OPTIONS = 0x1
)

type WINDOW_STATE uint32

const (
	WINDOW_STATE_NONE     WINDOW_STATE = 0x0
	WINDOW_STATE_OCCLUDED WINDOW_STATE = 0x1
)

type RENDER_TARGET_TYPE uint32

const (
	RENDER_TARGET_TYPE_DEFAULT  RENDER_TARGET_TYPE = 0
	RENDER_TARGET_TYPE_SOFTWARE RENDER_TARGET_TYPE = 1
	RENDER_TARGET_TYPE_HARDWARE RENDER_TARGET_TYPE = 2
)

// FEATURE_LEVEL values are the matching D3D feature levels.
type FEATURE_LEVEL uint32

const (
	FEATURE_LEVEL_DEFAULT FEATURE_LEVEL = 0
	FEATURE_LEVEL_9       FEATURE_LEVEL = 0x9100
	FEATURE_LEVEL_10      FEATURE_LEVEL = 0xa000
)

type RENDER_TARGET_USAGE uint32

const (
	RENDER_TARGET_USAGE_NONE                  RENDER_TARGET_USAGE = 0x0
	RENDER_TARGET_USAGE_FORCE_BITMAP_REMOTING RENDER_TARGET_USAGE = 0x1
	RENDER_TARGET_USAGE_GDI_COMPATIBLE        RENDER_TARGET_USAGE = 0x2
)

type PRESENT_OPTIONS uint32

const (
	PRESENT_OPTIONS_NONE            PRESENT_OPTIONS = 0x0
	PRESENT_OPTIONS_RETAIN_CONTENTS PRESENT_OPTIONS = 0x1
	PRESENT_OPTIONS_IMMEDIATELY     PRESENT_OPTIONS = 0x2
)

type COMPATIBLE_RENDER_TARGET_OPTIONS uint32

const (
	COMPATIBLE_RENDER_TARGET_OPTIONS_NONE           COMPATIBLE_RENDER_TARGET_OPTIONS = 0x0
	COMPATIBLE_RENDER_TARGET_OPTIONS_GDI_COMPATIBLE COMPATIBLE_RENDER_TARGET_OPTIONS = 0x1
)

type DC_INITIALIZE_MODE uint32

const (
	DC_INITIALIZE_MODE_COPY  DC_INITIALIZE_MODE = 0
	DC_INITIALIZE_MODE_CLEAR DC_INITIALIZE_MODE = 1
)

type DEBUG_LEVEL uint32

const (
	DEBUG_LEVEL_NONE        DEBUG_LEVEL = 0
	DEBUG_LEVEL_ERROR       DEBUG_LEVEL = 1
	DEBUG_LEVEL_WARNING     DEBUG_LEVEL = 2
	DEBUG_LEVEL_INFORMATION DEBUG_LEVEL = 3
)

type FACTORY_TYPE uint32

const (
	FACTORY_TYPE_SINGLE_THREADED FACTORY_TYPE = 0
	FACTORY_TYPE_MULTI_THREADED  FACTORY_TYPE = 1
)
