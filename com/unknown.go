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

import "unsafe"

// Is64bit gates every native call. On 32 bit targets 64 bit arguments do not
// fit a single syscall slot and several struct layouts differ.
const Is64bit = uint64(^uintptr(0)) == ^uint64(0)

type IUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

type IUnknown struct {
	vtbl *IUnknownVtbl
}

var IID_IUnknown = GUID{0x00000000, 0x0000, 0x0000, [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}

// VtblOf returns the vtable of an interface pointer. Interface types that
// embed IUnknown cast the result to their own vtable layout.
func VtblOf(obj unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer((*IUnknown)(obj).vtbl)
}

// Ptr converts a pointer returned in a register by a native call. The
// memory it points to is owned by the native side.
func Ptr(r uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&r))
}
