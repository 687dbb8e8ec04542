//go:build windows

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

import (
	"syscall"
	"unsafe"
)

// Call invokes a vtable slot whose native return type is HRESULT.
//
//go:uintptrescapes
func Call(fn uintptr, args ...uintptr) HRESULT {
	r, _, _ := syscall.SyscallN(fn, args...)
	return HRESULT(r)
}

// CallRaw invokes a vtable slot and returns the integer return register as is.
//
//go:uintptrescapes
func CallRaw(fn uintptr, args ...uintptr) uintptr {
	r, _, _ := syscall.SyscallN(fn, args...)
	return r
}

// QueryInterface calls IUnknown::QueryInterface on any interface pointer and
// stores the result in out, which must point to an interface pointer.
func QueryInterface(obj unsafe.Pointer, iid *GUID, out unsafe.Pointer) error {
	return Check("IUnknown::QueryInterface", Call((*IUnknown)(obj).vtbl.QueryInterface,
		uintptr(obj),
		uintptr(unsafe.Pointer(iid)),
		uintptr(out),
	))
}

func AddRef(obj unsafe.Pointer) uint32 {
	return uint32(CallRaw((*IUnknown)(obj).vtbl.AddRef, uintptr(obj)))
}

func Release(obj unsafe.Pointer) uint32 {
	if obj == nil {
		return 0
	}
	return uint32(CallRaw((*IUnknown)(obj).vtbl.Release, uintptr(obj)))
}

// As queries obj for the interface identified by iid.
func As[T any](obj unsafe.Pointer, iid *GUID) (*T, error) {
	var out *T
	if err := QueryInterface(obj, iid, unsafe.Pointer(&out)); err != nil {
		return nil, err
	}
	return out, nil
}

func (u *IUnknown) QueryInterface(iid *GUID) (*IUnknown, error) {
	return As[IUnknown](unsafe.Pointer(u), iid)
}

func (u *IUnknown) AddRef() uint32 {
	return AddRef(unsafe.Pointer(u))
}

func (u *IUnknown) Release() uint32 {
	return Release(unsafe.Pointer(u))
}
