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

package d3d12

import (
	"unsafe"

	"goarrg.com/rhi/dxr/internal/util"
)

// MappedMemory is a CPU view of a mapped resource, writes past its end abort.
type MappedMemory struct {
	data []byte
}

func NewMappedMemory(p unsafe.Pointer, size uintptr) MappedMemory {
	return MappedMemory{data: unsafe.Slice((*byte)(p), size)}
}

func (m MappedMemory) Size() uintptr {
	return uintptr(len(m.data))
}

func (m MappedMemory) Bytes() []byte {
	return m.data
}

func (m MappedMemory) HostWrite(offset uintptr, data []byte) {
	util.CheckRange(offset, uintptr(len(data)), uintptr(len(m.data)))
	copy(m.data[offset:], data)
}

// Write copies data to offset and returns the offset past it.
func Write[T comparable](m MappedMemory, offset uintptr, data T) uintptr {
	return offset + util.HostWrite(m, offset, data)
}

func WriteSlice[T comparable](m MappedMemory, offset uintptr, data []T) uintptr {
	return offset + util.HostWriteSlice(m, offset, data)
}

// SubresourceDataOf describes tightly packed rows of rowLength elements for
// MemcpySubresource or UpdateSubresources. data must stay alive until used.
func SubresourceDataOf[T any](data []T, rowLength, numRows int) SUBRESOURCE_DATA {
	rowPitch := rowLength * int(unsafe.Sizeof(*new(T)))
	return SUBRESOURCE_DATA{
		PData:      unsafe.Pointer(unsafe.SliceData(data)),
		RowPitch:   rowPitch,
		SlicePitch: rowPitch * numRows,
	}
}
