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

package util

import (
	"unsafe"

	"goarrg.com"
	"goarrg.com/debug"
)

type platform struct{}

func (platform) Abort()                           { panic("Fatal Error") }
func (platform) AbortPopup(f string, args ...any) { panic("Fatal Error") }

var instance = struct {
	platform goarrg.PlatformInterface
	logger   *debug.Logger
}{
	platform: platform{},
	logger:   debug.NewLogger("dxr", "internal", "util"),
}

func abort(fmt string, args ...any) {
	instance.logger.EPrintf(fmt, args...)
	instance.platform.Abort()
}

func Init(platform goarrg.PlatformInterface) {
	instance.platform = platform
}

// HostWriter is CPU visible memory, such as a mapped upload buffer.
type HostWriter interface {
	HostWrite(offset uintptr, data []byte)
}

// Bytes views the memory of v, which must not contain Go pointers when the
// result is handed to the GPU.
func Bytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

func SliceBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), uintptr(len(s))*unsafe.Sizeof(s[0]))
}

// HostWrite writes data at offset and returns the number of bytes written.
func HostWrite[T comparable](target HostWriter, offset uintptr, data T) uintptr {
	b := Bytes(&data)
	target.HostWrite(offset, b)
	return uintptr(len(b))
}

func HostWriteSlice[T comparable](target HostWriter, offset uintptr, data []T) uintptr {
	b := SliceBytes(data)
	target.HostWrite(offset, b)
	return uintptr(len(b))
}

// CheckRange aborts when [offset, offset+n) does not fit in size bytes.
func CheckRange(offset, n, size uintptr) {
	if offset > size || n > size-offset {
		abort("Write of %d bytes at offset %d overflows %d bytes", n, offset, size)
	}
}
