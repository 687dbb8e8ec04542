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

package dxgi

import "fmt"

type FORMAT uint32

const (
	FORMAT_UNKNOWN                                 FORMAT = 0
	FORMAT_R32G32B32A32_TYPELESS                   FORMAT = 1
	FORMAT_R32G32B32A32_FLOAT                      FORMAT = 2
	FORMAT_R32G32B32A32_UINT                       FORMAT = 3
	FORMAT_R32G32B32A32_SINT                       FORMAT = 4
	FORMAT_R32G32B32_TYPELESS                      FORMAT = 5
	FORMAT_R32G32B32_FLOAT                         FORMAT = 6
	FORMAT_R32G32B32_UINT                          FORMAT = 7
	FORMAT_R32G32B32_SINT                          FORMAT = 8
	FORMAT_R16G16B16A16_TYPELESS                   FORMAT = 9
	FORMAT_R16G16B16A16_FLOAT                      FORMAT = 10
	FORMAT_R16G16B16A16_UNORM                      FORMAT = 11
	FORMAT_R16G16B16A16_UINT                       FORMAT = 12
	FORMAT_R16G16B16A16_SNORM                      FORMAT = 13
	FORMAT_R16G16B16A16_SINT                       FORMAT = 14
	FORMAT_R32G32_TYPELESS                         FORMAT = 15
	FORMAT_R32G32_FLOAT                            FORMAT = 16
	FORMAT_R32G32_UINT                             FORMAT = 17
	FORMAT_R32G32_SINT                             FORMAT = 18
	FORMAT_R32G8X24_TYPELESS                       FORMAT = 19
	FORMAT_D32_FLOAT_S8X24_UINT                    FORMAT = 20
	FORMAT_R32_FLOAT_X8X24_TYPELESS                FORMAT = 21
	FORMAT_X32_TYPELESS_G8X24_UINT                 FORMAT = 22
	FORMAT_R10G10B10A2_TYPELESS                    FORMAT = 23
	FORMAT_R10G10B10A2_UNORM                       FORMAT = 24
	FORMAT_R10G10B10A2_UINT                        FORMAT = 25
	FORMAT_R11G11B10_FLOAT                         FORMAT = 26
	FORMAT_R8G8B8A8_TYPELESS                       FORMAT = 27
	FORMAT_R8G8B8A8_UNORM                          FORMAT = 28
	FORMAT_R8G8B8A8_UNORM_SRGB                     FORMAT = 29
	FORMAT_R8G8B8A8_UINT                           FORMAT = 30
	FORMAT_R8G8B8A8_SNORM                          FORMAT = 31
	FORMAT_R8G8B8A8_SINT                           FORMAT = 32
	FORMAT_R16G16_TYPELESS                         FORMAT = 33
	FORMAT_R16G16_FLOAT                            FORMAT = 34
	FORMAT_R16G16_UNORM                            FORMAT = 35
	FORMAT_R16G16_UINT                             FORMAT = 36
	FORMAT_R16G16_SNORM                            FORMAT = 37
	FORMAT_R16G16_SINT                             FORMAT = 38
	FORMAT_R32_TYPELESS                            FORMAT = 39
	FORMAT_D32_FLOAT                               FORMAT = 40
	FORMAT_R32_FLOAT                               FORMAT = 41
	FORMAT_R32_UINT                                FORMAT = 42
	FORMAT_R32_SINT                                FORMAT = 43
	FORMAT_R24G8_TYPELESS                          FORMAT = 44
	FORMAT_D24_UNORM_S8_UINT                       FORMAT = 45
	FORMAT_R24_UNORM_X8_TYPELESS                   FORMAT = 46
	FORMAT_X24_TYPELESS_G8_UINT                    FORMAT = 47
	FORMAT_R8G8_TYPELESS                           FORMAT = 48
	FORMAT_R8G8_UNORM                              FORMAT = 49
	FORMAT_R8G8_UINT                               FORMAT = 50
	FORMAT_R8G8_SNORM                              FORMAT = 51
	FORMAT_R8G8_SINT                               FORMAT = 52
	FORMAT_R16_TYPELESS                            FORMAT = 53
	FORMAT_R16_FLOAT                               FORMAT = 54
	FORMAT_D16_UNORM                               FORMAT = 55
	FORMAT_R16_UNORM                               FORMAT = 56
	FORMAT_R16_UINT                                FORMAT = 57
	FORMAT_R16_SNORM                               FORMAT = 58
	FORMAT_R16_SINT                                FORMAT = 59
	FORMAT_R8_TYPELESS                             FORMAT = 60
	FORMAT_R8_UNORM                                FORMAT = 61
	FORMAT_R8_UINT                                 FORMAT = 62
	FORMAT_R8_SNORM                                FORMAT = 63
	FORMAT_R8_SINT                                 FORMAT = 64
	FORMAT_A8_UNORM                                FORMAT = 65
	FORMAT_R1_UNORM                                FORMAT = 66
	FORMAT_R9G9B9E5_SHAREDEXP                      FORMAT = 67
	FORMAT_R8G8_B8G8_UNORM                         FORMAT = 68
	FORMAT_G8R8_G8B8_UNORM                         FORMAT = 69
	FORMAT_BC1_TYPELESS                            FORMAT = 70
	FORMAT_BC1_UNORM                               FORMAT = 71
	FORMAT_BC1_UNORM_SRGB                          FORMAT = 72
	FORMAT_BC2_TYPELESS                            FORMAT = 73
	FORMAT_BC2_UNORM                               FORMAT = 74
	FORMAT_BC2_UNORM_SRGB                          FORMAT = 75
	FORMAT_BC3_TYPELESS                            FORMAT = 76
	FORMAT_BC3_UNORM                               FORMAT = 77
	FORMAT_BC3_UNORM_SRGB                          FORMAT = 78
	FORMAT_BC4_TYPELESS                            FORMAT = 79
	FORMAT_BC4_UNORM                               FORMAT = 80
	FORMAT_BC4_SNORM                               FORMAT = 81
	FORMAT_BC5_TYPELESS                            FORMAT = 82
	FORMAT_BC5_UNORM                               FORMAT = 83
	FORMAT_BC5_SNORM                               FORMAT = 84
	FORMAT_B5G6R5_UNORM                            FORMAT = 85
	FORMAT_B5G5R5A1_UNORM                          FORMAT = 86
	FORMAT_B8G8R8A8_UNORM                          FORMAT = 87
	FORMAT_B8G8R8X8_UNORM                          FORMAT = 88
	FORMAT_R10G10B10_XR_BIAS_A2_UNORM              FORMAT = 89
	FORMAT_B8G8R8A8_TYPELESS                       FORMAT = 90
	FORMAT_B8G8R8A8_UNORM_SRGB                     FORMAT = 91
	FORMAT_B8G8R8X8_TYPELESS                       FORMAT = 92
	FORMAT_B8G8R8X8_UNORM_SRGB                     FORMAT = 93
	FORMAT_BC6H_TYPELESS                           FORMAT = 94
	FORMAT_BC6H_UF16                               FORMAT = 95
	FORMAT_BC6H_SF16                               FORMAT = 96
	FORMAT_BC7_TYPELESS                            FORMAT = 97
	FORMAT_BC7_UNORM                               FORMAT = 98
	FORMAT_BC7_UNORM_SRGB                          FORMAT = 99
	FORMAT_AYUV                                    FORMAT = 100
	FORMAT_Y410                                    FORMAT = 101
	FORMAT_Y416                                    FORMAT = 102
	FORMAT_NV12                                    FORMAT = 103
	FORMAT_P010                                    FORMAT = 104
	FORMAT_P016                                    FORMAT = 105
	FORMAT_420_OPAQUE                              FORMAT = 106
	FORMAT_YUY2                                    FORMAT = 107
	FORMAT_Y210                                    FORMAT = 108
	FORMAT_Y216                                    FORMAT = 109
	FORMAT_NV11                                    FORMAT = 110
	FORMAT_AI44                                    FORMAT = 111
	FORMAT_IA44                                    FORMAT = 112
	FORMAT_P8                                      FORMAT = 113
	FORMAT_A8P8                                    FORMAT = 114
	FORMAT_B4G4R4A4_UNORM                          FORMAT = 115
	FORMAT_P208                                    FORMAT = 130
	FORMAT_V208                                    FORMAT = 131
	FORMAT_V408                                    FORMAT = 132
	FORMAT_SAMPLER_FEEDBACK_MIN_MIP_OPAQUE         FORMAT = 189
	FORMAT_SAMPLER_FEEDBACK_MIP_REGION_USED_OPAQUE FORMAT = 190
	FORMAT_A4B4G4R4_UNORM                          FORMAT = 191
	FORMAT_FORCE_UINT                              FORMAT = 0xffffffff
)

var formatNames = map[FORMAT]string{
	FORMAT_UNKNOWN:                         "UNKNOWN",
	FORMAT_R32G32B32A32_TYPELESS:           "R32G32B32A32_TYPELESS",
	FORMAT_R32G32B32A32_FLOAT:              "R32G32B32A32_FLOAT",
	FORMAT_R32G32B32A32_UINT:               "R32G32B32A32_UINT",
	FORMAT_R32G32B32A32_SINT:               "R32G32B32A32_SINT",
	FORMAT_R32G32B32_TYPELESS:              "R32G32B32_TYPELESS",
	FORMAT_R32G32B32_FLOAT:                 "R32G32B32_FLOAT",
	FORMAT_R32G32B32_UINT:                  "R32G32B32_UINT",
	FORMAT_R32G32B32_SINT:                  "R32G32B32_SINT",
	FORMAT_R16G16B16A16_TYPELESS:           "R16G16B16A16_TYPELESS",
	FORMAT_R16G16B16A16_FLOAT:              "R16G16B16A16_FLOAT",
	FORMAT_R16G16B16A16_UNORM:              "R16G16B16A16_UNORM",
	FORMAT_R16G16B16A16_UINT:               "R16G16B16A16_UINT",
	FORMAT_R16G16B16A16_SNORM:              "R16G16B16A16_SNORM",
	FORMAT_R16G16B16A16_SINT:               "R16G16B16A16_SINT",
	FORMAT_R32G32_TYPELESS:                 "R32G32_TYPELESS",
	FORMAT_R32G32_FLOAT:                    "R32G32_FLOAT",
	FORMAT_R32G32_UINT:                     "R32G32_UINT",
	FORMAT_R32G32_SINT:                     "R32G32_SINT",
	FORMAT_R32G8X24_TYPELESS:               "R32G8X24_TYPELESS",
	FORMAT_D32_FLOAT_S8X24_UINT:            "D32_FLOAT_S8X24_UINT",
	FORMAT_R32_FLOAT_X8X24_TYPELESS:        "R32_FLOAT_X8X24_TYPELESS",
	FORMAT_X32_TYPELESS_G8X24_UINT:         "X32_TYPELESS_G8X24_UINT",
	FORMAT_R10G10B10A2_TYPELESS:            "R10G10B10A2_TYPELESS",
	FORMAT_R10G10B10A2_UNORM:               "R10G10B10A2_UNORM",
	FORMAT_R10G10B10A2_UINT:                "R10G10B10A2_UINT",
	FORMAT_R11G11B10_FLOAT:                 "R11G11B10_FLOAT",
	FORMAT_R8G8B8A8_TYPELESS:               "R8G8B8A8_TYPELESS",
	FORMAT_R8G8B8A8_UNORM:                  "R8G8B8A8_UNORM",
	FORMAT_R8G8B8A8_UNORM_SRGB:             "R8G8B8A8_UNORM_SRGB",
	FORMAT_R8G8B8A8_UINT:                   "R8G8B8A8_UINT",
	FORMAT_R8G8B8A8_SNORM:                  "R8G8B8A8_SNORM",
	FORMAT_R8G8B8A8_SINT:                   "R8G8B8A8_SINT",
	FORMAT_R16G16_TYPELESS:                 "R16G16_TYPELESS",
	FORMAT_R16G16_FLOAT:                    "R16G16_FLOAT",
	FORMAT_R16G16_UNORM:                    "R16G16_UNORM",
	FORMAT_R16G16_UINT:                     "R16G16_UINT",
	FORMAT_R16G16_SNORM:                    "R16G16_SNORM",
	FORMAT_R16G16_SINT:                     "R16G16_SINT",
	FORMAT_R32_TYPELESS:                    "R32_TYPELESS",
	FORMAT_D32_FLOAT:                       "D32_FLOAT",
	FORMAT_R32_FLOAT:                       "R32_FLOAT",
	FORMAT_R32_UINT:                        "R32_UINT",
	FORMAT_R32_SINT:                        "R32_SINT",
	FORMAT_R24G8_TYPELESS:                  "R24G8_TYPELESS",
	FORMAT_D24_UNORM_S8_UINT:               "D24_UNORM_S8_UINT",
	FORMAT_R24_UNORM_X8_TYPELESS:           "R24_UNORM_X8_TYPELESS",
	FORMAT_X24_TYPELESS_G8_UINT:            "X24_TYPELESS_G8_UINT",
	FORMAT_R8G8_TYPELESS:                   "R8G8_TYPELESS",
	FORMAT_R8G8_UNORM:                      "R8G8_UNORM",
	FORMAT_R8G8_UINT:                       "R8G8_UINT",
	FORMAT_R8G8_SNORM:                      "R8G8_SNORM",
	FORMAT_R8G8_SINT:                       "R8G8_SINT",
	FORMAT_R16_TYPELESS:                    "R16_TYPELESS",
	FORMAT_R16_FLOAT:                       "R16_FLOAT",
	FORMAT_D16_UNORM:                       "D16_UNORM",
	FORMAT_R16_UNORM:                       "R16_UNORM",
	FORMAT_R16_UINT:                        "R16_UINT",
	FORMAT_R16_SNORM:                       "R16_SNORM",
	FORMAT_R16_SINT:                        "R16_SINT",
	FORMAT_R8_TYPELESS:                     "R8_TYPELESS",
	FORMAT_R8_UNORM:                        "R8_UNORM",
	FORMAT_R8_UINT:                         "R8_UINT",
	FORMAT_R8_SNORM:                        "R8_SNORM",
	FORMAT_R8_SINT:                         "R8_SINT",
	FORMAT_A8_UNORM:                        "A8_UNORM",
	FORMAT_R1_UNORM:                        "R1_UNORM",
	FORMAT_R9G9B9E5_SHAREDEXP:              "R9G9B9E5_SHAREDEXP",
	FORMAT_R8G8_B8G8_UNORM:                 "R8G8_B8G8_UNORM",
	FORMAT_G8R8_G8B8_UNORM:                 "G8R8_G8B8_UNORM",
	FORMAT_BC1_TYPELESS:                    "BC1_TYPELESS",
	FORMAT_BC1_UNORM:                       "BC1_UNORM",
	FORMAT_BC1_UNORM_SRGB:                  "BC1_UNORM_SRGB",
	FORMAT_BC2_TYPELESS:                    "BC2_TYPELESS",
	FORMAT_BC2_UNORM:                       "BC2_UNORM",
	FORMAT_BC2_UNORM_SRGB:                  "BC2_UNORM_SRGB",
	FORMAT_BC3_TYPELESS:                    "BC3_TYPELESS",
	FORMAT_BC3_UNORM:                       "BC3_UNORM",
	FORMAT_BC3_UNORM_SRGB:                  "BC3_UNORM_SRGB",
	FORMAT_BC4_TYPELESS:                    "BC4_TYPELESS",
	FORMAT_BC4_UNORM:                       "BC4_UNORM",
	FORMAT_BC4_SNORM:                       "BC4_SNORM",
	FORMAT_BC5_TYPELESS:                    "BC5_TYPELESS",
	FORMAT_BC5_UNORM:                       "BC5_UNORM",
	FORMAT_BC5_SNORM:                       "BC5_SNORM",
	FORMAT_B5G6R5_UNORM:                    "B5G6R5_UNORM",
	FORMAT_B5G5R5A1_UNORM:                  "B5G5R5A1_UNORM",
	FORMAT_B8G8R8A8_UNORM:                  "B8G8R8A8_UNORM",
	FORMAT_B8G8R8X8_UNORM:                  "B8G8R8X8_UNORM",
	FORMAT_R10G10B10_XR_BIAS_A2_UNORM:      "R10G10B10_XR_BIAS_A2_UNORM",
	FORMAT_B8G8R8A8_TYPELESS:               "B8G8R8A8_TYPELESS",
	FORMAT_B8G8R8A8_UNORM_SRGB:             "B8G8R8A8_UNORM_SRGB",
	FORMAT_B8G8R8X8_TYPELESS:               "B8G8R8X8_TYPELESS",
	FORMAT_B8G8R8X8_UNORM_SRGB:             "B8G8R8X8_UNORM_SRGB",
	FORMAT_BC6H_TYPELESS:                   "BC6H_TYPELESS",
	FORMAT_BC6H_UF16:                       "BC6H_UF16",
	FORMAT_BC6H_SF16:                       "BC6H_SF16",
	FORMAT_BC7_TYPELESS:                    "BC7_TYPELESS",
	FORMAT_BC7_UNORM:                       "BC7_UNORM",
	FORMAT_BC7_UNORM_SRGB:                  "BC7_UNORM_SRGB",
	FORMAT_AYUV:                            "AYUV",
	FORMAT_Y410:                            "Y410",
	FORMAT_Y416:                            "Y416",
	FORMAT_NV12:                            "NV12",
	FORMAT_P010:                            "P010",
	FORMAT_P016:                            "P016",
	FORMAT_420_OPAQUE:                      "420_OPAQUE",
	FORMAT_YUY2:                            "YUY2",
	FORMAT_Y210:                            "Y210",
	FORMAT_Y216:                            "Y216",
	FORMAT_NV11:                            "NV11",
	FORMAT_AI44:                            "AI44",
	FORMAT_IA44:                            "IA44",
	FORMAT_P8:                              "P8",
	FORMAT_A8P8:                            "A8P8",
	FORMAT_B4G4R4A4_UNORM:                  "B4G4R4A4_UNORM",
	FORMAT_P208:                            "P208",
	FORMAT_V208:                            "V208",
	FORMAT_V408:                            "V408",
	FORMAT_SAMPLER_FEEDBACK_MIN_MIP_OPAQUE: "SAMPLER_FEEDBACK_MIN_MIP_OPAQUE",
	FORMAT_SAMPLER_FEEDBACK_MIP_REGION_USED_OPAQUE: "SAMPLER_FEEDBACK_MIP_REGION_USED_OPAQUE",
	FORMAT_A4B4G4R4_UNORM:                          "A4B4G4R4_UNORM",
}

func (f FORMAT) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FORMAT(%d)", uint32(f))
}

var formatBitsPerPixel = map[FORMAT]uint32{
	FORMAT_R32G32B32A32_TYPELESS:      128,
	FORMAT_R32G32B32A32_FLOAT:         128,
	FORMAT_R32G32B32A32_UINT:          128,
	FORMAT_R32G32B32A32_SINT:          128,
	FORMAT_R32G32B32_TYPELESS:         96,
	FORMAT_R32G32B32_FLOAT:            96,
	FORMAT_R32G32B32_UINT:             96,
	FORMAT_R32G32B32_SINT:             96,
	FORMAT_R16G16B16A16_TYPELESS:      64,
	FORMAT_R16G16B16A16_FLOAT:         64,
	FORMAT_R16G16B16A16_UNORM:         64,
	FORMAT_R16G16B16A16_UINT:          64,
	FORMAT_R16G16B16A16_SNORM:         64,
	FORMAT_R16G16B16A16_SINT:          64,
	FORMAT_R32G32_TYPELESS:            64,
	FORMAT_R32G32_FLOAT:               64,
	FORMAT_R32G32_UINT:                64,
	FORMAT_R32G32_SINT:                64,
	FORMAT_R32G8X24_TYPELESS:          64,
	FORMAT_D32_FLOAT_S8X24_UINT:       64,
	FORMAT_R32_FLOAT_X8X24_TYPELESS:   64,
	FORMAT_X32_TYPELESS_G8X24_UINT:    64,
	FORMAT_R10G10B10A2_TYPELESS:       32,
	FORMAT_R10G10B10A2_UNORM:          32,
	FORMAT_R10G10B10A2_UINT:           32,
	FORMAT_R11G11B10_FLOAT:            32,
	FORMAT_R8G8B8A8_TYPELESS:          32,
	FORMAT_R8G8B8A8_UNORM:             32,
	FORMAT_R8G8B8A8_UNORM_SRGB:        32,
	FORMAT_R8G8B8A8_UINT:              32,
	FORMAT_R8G8B8A8_SNORM:             32,
	FORMAT_R8G8B8A8_SINT:              32,
	FORMAT_R16G16_TYPELESS:            32,
	FORMAT_R16G16_FLOAT:               32,
	FORMAT_R16G16_UNORM:               32,
	FORMAT_R16G16_UINT:                32,
	FORMAT_R16G16_SNORM:               32,
	FORMAT_R16G16_SINT:                32,
	FORMAT_R32_TYPELESS:               32,
	FORMAT_D32_FLOAT:                  32,
	FORMAT_R32_FLOAT:                  32,
	FORMAT_R32_UINT:                   32,
	FORMAT_R32_SINT:                   32,
	FORMAT_R24G8_TYPELESS:             32,
	FORMAT_D24_UNORM_S8_UINT:          32,
	FORMAT_R24_UNORM_X8_TYPELESS:      32,
	FORMAT_X24_TYPELESS_G8_UINT:       32,
	FORMAT_R8G8_TYPELESS:              16,
	FORMAT_R8G8_UNORM:                 16,
	FORMAT_R8G8_UINT:                  16,
	FORMAT_R8G8_SNORM:                 16,
	FORMAT_R8G8_SINT:                  16,
	FORMAT_R16_TYPELESS:               16,
	FORMAT_R16_FLOAT:                  16,
	FORMAT_D16_UNORM:                  16,
	FORMAT_R16_UNORM:                  16,
	FORMAT_R16_UINT:                   16,
	FORMAT_R16_SNORM:                  16,
	FORMAT_R16_SINT:                   16,
	FORMAT_R8_TYPELESS:                8,
	FORMAT_R8_UNORM:                   8,
	FORMAT_R8_UINT:                    8,
	FORMAT_R8_SNORM:                   8,
	FORMAT_R8_SINT:                    8,
	FORMAT_A8_UNORM:                   8,
	FORMAT_R1_UNORM:                   1,
	FORMAT_R9G9B9E5_SHAREDEXP:         32,
	FORMAT_R8G8_B8G8_UNORM:            32,
	FORMAT_G8R8_G8B8_UNORM:            32,
	FORMAT_BC1_TYPELESS:               4,
	FORMAT_BC1_UNORM:                  4,
	FORMAT_BC1_UNORM_SRGB:             4,
	FORMAT_BC2_TYPELESS:               8,
	FORMAT_BC2_UNORM:                  8,
	FORMAT_BC2_UNORM_SRGB:             8,
	FORMAT_BC3_TYPELESS:               8,
	FORMAT_BC3_UNORM:                  8,
	FORMAT_BC3_UNORM_SRGB:             8,
	FORMAT_BC4_TYPELESS:               4,
	FORMAT_BC4_UNORM:                  4,
	FORMAT_BC4_SNORM:                  4,
	FORMAT_BC5_TYPELESS:               8,
	FORMAT_BC5_UNORM:                  8,
	FORMAT_BC5_SNORM:                  8,
	FORMAT_B5G6R5_UNORM:               16,
	FORMAT_B5G5R5A1_UNORM:             16,
	FORMAT_B8G8R8A8_UNORM:             32,
	FORMAT_B8G8R8X8_UNORM:             32,
	FORMAT_R10G10B10_XR_BIAS_A2_UNORM: 32,
	FORMAT_B8G8R8A8_TYPELESS:          32,
	FORMAT_B8G8R8A8_UNORM_SRGB:        32,
	FORMAT_B8G8R8X8_TYPELESS:          32,
	FORMAT_B8G8R8X8_UNORM_SRGB:        32,
	FORMAT_BC6H_TYPELESS:              8,
	FORMAT_BC6H_UF16:                  8,
	FORMAT_BC6H_SF16:                  8,
	FORMAT_BC7_TYPELESS:               8,
	FORMAT_BC7_UNORM:                  8,
	FORMAT_BC7_UNORM_SRGB:             8,
	FORMAT_AYUV:                       32,
	FORMAT_Y410:                       32,
	FORMAT_Y416:                       64,
	FORMAT_NV12:                       12,
	FORMAT_P010:                       24,
	FORMAT_P016:                       24,
	FORMAT_420_OPAQUE:                 12,
	FORMAT_YUY2:                       32,
	FORMAT_Y210:                       64,
	FORMAT_Y216:                       64,
	FORMAT_NV11:                       12,
	FORMAT_AI44:                       8,
	FORMAT_IA44:                       8,
	FORMAT_P8:                         8,
	FORMAT_A8P8:                       16,
	FORMAT_B4G4R4A4_UNORM:             16,
	FORMAT_P208:                       16,
	FORMAT_V208:                       16,
	FORMAT_V408:                       24,
	FORMAT_A4B4G4R4_UNORM:             16,
}

// BitsPerPixel returns the storage size of one texel, for block compressed
// formats the size per texel of a 4x4 block. Opaque formats report 0.
func BitsPerPixel(f FORMAT) uint32 {
	return formatBitsPerPixel[f]
}

func IsBlockCompressed(f FORMAT) bool {
	switch {
	case f >= FORMAT_BC1_TYPELESS && f <= FORMAT_BC5_SNORM:
		return true
	case f >= FORMAT_BC6H_TYPELESS && f <= FORMAT_BC7_UNORM_SRGB:
		return true
	}
	return false
}

// BlockSize returns the byte size of one 4x4 block for block compressed
// formats and 0 otherwise.
func BlockSize(f FORMAT) uint32 {
	if !IsBlockCompressed(f) {
		return 0
	}
	return BitsPerPixel(f) * 16 / 8
}

// IsDepthStencil reports formats usable as depth stencil views.
func IsDepthStencil(f FORMAT) bool {
	switch f {
	case FORMAT_D32_FLOAT_S8X24_UINT, FORMAT_D32_FLOAT, FORMAT_D24_UNORM_S8_UINT, FORMAT_D16_UNORM:
		return true
	}
	return false
}
