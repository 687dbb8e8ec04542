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

package com

import "fmt"

// HRESULT is the native 32 bit result code. The severity bit marks failure.
type HRESULT uint32

const (
	S_OK    HRESULT = 0
	S_FALSE HRESULT = 1

	E_NOTIMPL      HRESULT = 0x80004001
	E_NOINTERFACE  HRESULT = 0x80004002
	E_POINTER      HRESULT = 0x80004003
	E_ABORT        HRESULT = 0x80004004
	E_FAIL         HRESULT = 0x80004005
	E_UNEXPECTED   HRESULT = 0x8000FFFF
	E_ACCESSDENIED HRESULT = 0x80070005
	E_HANDLE       HRESULT = 0x80070006
	E_OUTOFMEMORY  HRESULT = 0x8007000E
	E_INVALIDARG   HRESULT = 0x80070057

	DXGI_STATUS_OCCLUDED             HRESULT = 0x087A0001
	DXGI_ERROR_INVALID_CALL          HRESULT = 0x887A0001
	DXGI_ERROR_NOT_FOUND             HRESULT = 0x887A0002
	DXGI_ERROR_MORE_DATA             HRESULT = 0x887A0003
	DXGI_ERROR_UNSUPPORTED           HRESULT = 0x887A0004
	DXGI_ERROR_DEVICE_REMOVED        HRESULT = 0x887A0005
	DXGI_ERROR_DEVICE_HUNG           HRESULT = 0x887A0006
	DXGI_ERROR_DEVICE_RESET          HRESULT = 0x887A0007
	DXGI_ERROR_WAS_STILL_DRAWING     HRESULT = 0x887A000A
	DXGI_ERROR_DRIVER_INTERNAL_ERROR HRESULT = 0x887A0020

	D3D12_ERROR_ADAPTER_NOT_FOUND       HRESULT = 0x887E0001
	D3D12_ERROR_DRIVER_VERSION_MISMATCH HRESULT = 0x887E0002

	D2DERR_WRONG_STATE                         HRESULT = 0x88990001
	D2DERR_NOT_INITIALIZED                     HRESULT = 0x88990002
	D2DERR_UNSUPPORTED_OPERATION               HRESULT = 0x88990003
	D2DERR_SCANNER_FAILED                      HRESULT = 0x88990004
	D2DERR_SCREEN_ACCESS_DENIED                HRESULT = 0x88990005
	D2DERR_DISPLAY_STATE_INVALID               HRESULT = 0x88990006
	D2DERR_ZERO_VECTOR                         HRESULT = 0x88990007
	D2DERR_INTERNAL_ERROR                      HRESULT = 0x88990008
	D2DERR_DISPLAY_FORMAT_NOT_SUPPORTED        HRESULT = 0x88990009
	D2DERR_INVALID_CALL                        HRESULT = 0x8899000A
	D2DERR_NO_HARDWARE_DEVICE                  HRESULT = 0x8899000B
	D2DERR_RECREATE_TARGET                     HRESULT = 0x8899000C
	D2DERR_TOO_MANY_SHADER_ELEMENTS            HRESULT = 0x8899000D
	D2DERR_SHADER_COMPILE_FAILED               HRESULT = 0x8899000E
	D2DERR_MAX_TEXTURE_SIZE_EXCEEDED           HRESULT = 0x8899000F
	D2DERR_UNSUPPORTED_VERSION                 HRESULT = 0x88990010
	D2DERR_BAD_NUMBER                          HRESULT = 0x88990011
	D2DERR_WRONG_FACTORY                       HRESULT = 0x88990012
	D2DERR_LAYER_ALREADY_IN_USE                HRESULT = 0x88990013
	D2DERR_POP_CALL_DID_NOT_MATCH_PUSH         HRESULT = 0x88990014
	D2DERR_WRONG_RESOURCE_DOMAIN               HRESULT = 0x88990015
	D2DERR_PUSH_POP_UNBALANCED                 HRESULT = 0x88990016
	D2DERR_RENDER_TARGET_HAS_LAYER_OR_CLIPRECT HRESULT = 0x88990017
	D2DERR_INCOMPATIBLE_BRUSH_TYPES            HRESULT = 0x88990018
	D2DERR_WIN32_ERROR                         HRESULT = 0x88990019
	D2DERR_TARGET_NOT_GDI_COMPATIBLE           HRESULT = 0x8899001A
	D2DERR_TEXT_EFFECT_IS_WRONG_TYPE           HRESULT = 0x8899001B
	D2DERR_TEXT_RENDERER_NOT_RELEASED          HRESULT = 0x8899001C
	D2DERR_EXCEEDS_MAX_BITMAP_SIZE             HRESULT = 0x8899001D
)

var hresultNames = map[HRESULT]string{
	S_OK:    "S_OK",
	S_FALSE: "S_FALSE",

	E_NOTIMPL:      "E_NOTIMPL",
	E_NOINTERFACE:  "E_NOINTERFACE",
	E_POINTER:      "E_POINTER",
	E_ABORT:        "E_ABORT",
	E_FAIL:         "E_FAIL",
	E_UNEXPECTED:   "E_UNEXPECTED",
	E_ACCESSDENIED: "E_ACCESSDENIED",
	E_HANDLE:       "E_HANDLE",
	E_OUTOFMEMORY:  "E_OUTOFMEMORY",
	E_INVALIDARG:   "E_INVALIDARG",

	DXGI_STATUS_OCCLUDED:             "DXGI_STATUS_OCCLUDED",
	DXGI_ERROR_INVALID_CALL:          "DXGI_ERROR_INVALID_CALL",
	DXGI_ERROR_NOT_FOUND:             "DXGI_ERROR_NOT_FOUND",
	DXGI_ERROR_MORE_DATA:             "DXGI_ERROR_MORE_DATA",
	DXGI_ERROR_UNSUPPORTED:           "DXGI_ERROR_UNSUPPORTED",
	DXGI_ERROR_DEVICE_REMOVED:        "DXGI_ERROR_DEVICE_REMOVED",
	DXGI_ERROR_DEVICE_HUNG:           "DXGI_ERROR_DEVICE_HUNG",
	DXGI_ERROR_DEVICE_RESET:          "DXGI_ERROR_DEVICE_RESET",
	DXGI_ERROR_WAS_STILL_DRAWING:     "DXGI_ERROR_WAS_STILL_DRAWING",
	DXGI_ERROR_DRIVER_INTERNAL_ERROR: "DXGI_ERROR_DRIVER_INTERNAL_ERROR",

	D3D12_ERROR_ADAPTER_NOT_FOUND:       "D3D12_ERROR_ADAPTER_NOT_FOUND",
	D3D12_ERROR_DRIVER_VERSION_MISMATCH: "D3D12_ERROR_DRIVER_VERSION_MISMATCH",

	D2DERR_WRONG_STATE:                         "D2DERR_WRONG_STATE",
	D2DERR_NOT_INITIALIZED:                     "D2DERR_NOT_INITIALIZED",
	D2DERR_UNSUPPORTED_OPERATION:               "D2DERR_UNSUPPORTED_OPERATION",
	D2DERR_SCANNER_FAILED:                      "D2DERR_SCANNER_FAILED",
	D2DERR_SCREEN_ACCESS_DENIED:                "D2DERR_SCREEN_ACCESS_DENIED",
	D2DERR_DISPLAY_STATE_INVALID:               "D2DERR_DISPLAY_STATE_INVALID",
	D2DERR_ZERO_VECTOR:                         "D2DERR_ZERO_VECTOR",
	D2DERR_INTERNAL_ERROR:                      "D2DERR_INTERNAL_ERROR",
	D2DERR_DISPLAY_FORMAT_NOT_SUPPORTED:        "D2DERR_DISPLAY_FORMAT_NOT_SUPPORTED",
	D2DERR_INVALID_CALL:                        "D2DERR_INVALID_CALL",
	D2DERR_NO_HARDWARE_DEVICE:                  "D2DERR_NO_HARDWARE_DEVICE",
	D2DERR_RECREATE_TARGET:                     "D2DERR_RECREATE_TARGET",
	D2DERR_TOO_MANY_SHADER_ELEMENTS:            "D2DERR_TOO_MANY_SHADER_ELEMENTS",
	D2DERR_SHADER_COMPILE_FAILED:               "D2DERR_SHADER_COMPILE_FAILED",
	D2DERR_MAX_TEXTURE_SIZE_EXCEEDED:           "D2DERR_MAX_TEXTURE_SIZE_EXCEEDED",
	D2DERR_UNSUPPORTED_VERSION:                 "D2DERR_UNSUPPORTED_VERSION",
	D2DERR_BAD_NUMBER:                          "D2DERR_BAD_NUMBER",
	D2DERR_WRONG_FACTORY:                       "D2DERR_WRONG_FACTORY",
	D2DERR_LAYER_ALREADY_IN_USE:                "D2DERR_LAYER_ALREADY_IN_USE",
	D2DERR_POP_CALL_DID_NOT_MATCH_PUSH:         "D2DERR_POP_CALL_DID_NOT_MATCH_PUSH",
	D2DERR_WRONG_RESOURCE_DOMAIN:               "D2DERR_WRONG_RESOURCE_DOMAIN",
	D2DERR_PUSH_POP_UNBALANCED:                 "D2DERR_PUSH_POP_UNBALANCED",
	D2DERR_RENDER_TARGET_HAS_LAYER_OR_CLIPRECT: "D2DERR_RENDER_TARGET_HAS_LAYER_OR_CLIPRECT",
	D2DERR_INCOMPATIBLE_BRUSH_TYPES:            "D2DERR_INCOMPATIBLE_BRUSH_TYPES",
	D2DERR_WIN32_ERROR:                         "D2DERR_WIN32_ERROR",
	D2DERR_TARGET_NOT_GDI_COMPATIBLE:           "D2DERR_TARGET_NOT_GDI_COMPATIBLE",
	D2DERR_TEXT_EFFECT_IS_WRONG_TYPE:           "D2DERR_TEXT_EFFECT_IS_WRONG_TYPE",
	D2DERR_TEXT_RENDERER_NOT_RELEASED:          "D2DERR_TEXT_RENDERER_NOT_RELEASED",
	D2DERR_EXCEEDS_MAX_BITMAP_SIZE:             "D2DERR_EXCEEDS_MAX_BITMAP_SIZE",
}

func (hr HRESULT) Failed() bool {
	return hr&0x80000000 != 0
}

func (hr HRESULT) Succeeded() bool {
	return !hr.Failed()
}

func (hr HRESULT) String() string {
	if name, ok := hresultNames[hr]; ok {
		return fmt.Sprintf("%s (0x%08X)", name, uint32(hr))
	}
	return fmt.Sprintf("HRESULT 0x%08X", uint32(hr))
}

func (hr HRESULT) Error() string {
	return hr.String()
}

// Error is returned by bindings whose native call failed.
type Error struct {
	Method string
	Code   HRESULT
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Method, e.Code)
}

func (e *Error) Unwrap() error {
	return e.Code
}

// Check wraps a failed HRESULT, successful codes (including S_FALSE) yield nil.
func Check(method string, hr HRESULT) error {
	if hr.Failed() {
		return &Error{Method: method, Code: hr}
	}
	return nil
}
