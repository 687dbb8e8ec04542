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
	"reflect"
	"slices"
	"testing"

	"goarrg.com/rhi/dxr/internal/layout"
)

func TestVtblSlotCounts(t *testing.T) {
	tests := []struct {
		vtbl  reflect.Type
		slots int
	}{
		{reflect.TypeFor[ObjectVtbl](), 7},
		{reflect.TypeFor[DeviceChildVtbl](), 8},
		{reflect.TypeFor[ResourceVtbl](), 15},
		{reflect.TypeFor[FenceVtbl](), 11},
		{reflect.TypeFor[Fence1Vtbl](), 12},
		{reflect.TypeFor[DescriptorHeapVtbl](), 11},
		{reflect.TypeFor[CommandQueueVtbl](), 19},
		{reflect.TypeFor[DeviceVtbl](), 44},
		{reflect.TypeFor[GraphicsCommandListVtbl](), 60},
		{reflect.TypeFor[GraphicsCommandList1Vtbl](), 66},
		{reflect.TypeFor[GraphicsCommandList2Vtbl](), 67},
		{reflect.TypeFor[DebugVtbl](), 4},
		{reflect.TypeFor[Debug1Vtbl](), 6},
		{reflect.TypeFor[Debug3Vtbl](), 7},
		{reflect.TypeFor[DebugDeviceVtbl](), 6},
		{reflect.TypeFor[InfoQueueVtbl](), 38},
		{reflect.TypeFor[InfoQueue1Vtbl](), 40},
		{reflect.TypeFor[BlobVtbl](), 5},
	}

	for _, tc := range tests {
		slots, err := layout.Slots(tc.vtbl)
		if err != nil {
			t.Errorf("%s: %v", tc.vtbl.Name(), err)
			continue
		}
		if len(slots) != tc.slots {
			t.Errorf("%s has %d slots, want %d", tc.vtbl.Name(), len(slots), tc.slots)
		}
		if !slices.Equal(slots[:3], []string{"QueryInterface", "AddRef", "Release"}) {
			t.Errorf("%s does not start with IUnknown: %v", tc.vtbl.Name(), slots[:3])
		}
	}
}

func TestVtblSlotIndices(t *testing.T) {
	tests := []struct {
		vtbl   reflect.Type
		method string
		index  int
	}{
		{reflect.TypeFor[ObjectVtbl](), "SetName", 6},
		{reflect.TypeFor[DeviceChildVtbl](), "GetDevice", 7},
		{reflect.TypeFor[ResourceVtbl](), "Map", 8},
		{reflect.TypeFor[ResourceVtbl](), "GetHeapProperties", 14},
		{reflect.TypeFor[DeviceVtbl](), "GetNodeCount", 7},
		{reflect.TypeFor[DeviceVtbl](), "CheckFeatureSupport", 13},
		{reflect.TypeFor[DeviceVtbl](), "CreateCommittedResource", 27},
		{reflect.TypeFor[DeviceVtbl](), "GetCopyableFootprints", 38},
		{reflect.TypeFor[DeviceVtbl](), "GetAdapterLuid", 43},
		{reflect.TypeFor[CommandQueueVtbl](), "ExecuteCommandLists", 10},
		{reflect.TypeFor[CommandQueueVtbl](), "GetDesc", 18},
		{reflect.TypeFor[GraphicsCommandListVtbl](), "GetType", 8},
		{reflect.TypeFor[GraphicsCommandListVtbl](), "Close", 9},
		{reflect.TypeFor[GraphicsCommandListVtbl](), "DrawInstanced", 12},
		{reflect.TypeFor[GraphicsCommandListVtbl](), "ResourceBarrier", 26},
		{reflect.TypeFor[GraphicsCommandListVtbl](), "OMSetRenderTargets", 46},
		{reflect.TypeFor[GraphicsCommandListVtbl](), "ExecuteIndirect", 59},
		{reflect.TypeFor[GraphicsCommandList1Vtbl](), "AtomicCopyBufferUINT", 60},
		{reflect.TypeFor[GraphicsCommandList2Vtbl](), "WriteBufferImmediate", 66},
		{reflect.TypeFor[InfoQueueVtbl](), "GetMessage", 5},
		{reflect.TypeFor[InfoQueueVtbl](), "GetMuteDebugOutput", 37},
		{reflect.TypeFor[InfoQueue1Vtbl](), "RegisterMessageCallback", 38},
	}

	for _, tc := range tests {
		slots, err := layout.Slots(tc.vtbl)
		if err != nil {
			t.Errorf("%s: %v", tc.vtbl.Name(), err)
			continue
		}
		if got := slices.Index(slots, tc.method); got != tc.index {
			t.Errorf("%s.%s is slot %d, want %d", tc.vtbl.Name(), tc.method, got, tc.index)
		}
	}
}
