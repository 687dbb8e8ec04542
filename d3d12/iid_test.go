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
	"testing"

	"goarrg.com/rhi/dxr/com"
)

func TestIIDs(t *testing.T) {
	tests := []struct {
		name string
		got  com.GUID
		want string
	}{
		{"ID3D12Object", IID_ID3D12Object, "c4fec28f-7966-4e95-9f94-f431cb56c3b8"},
		{"ID3D12DeviceChild", IID_ID3D12DeviceChild, "905db94b-a00c-4140-9df5-2b64ca9ea357"},
		{"ID3D12RootSignature", IID_ID3D12RootSignature, "c54a6b66-72df-4ee8-8be5-a946a1429214"},
		{"ID3D12RootSignatureDeserializer", IID_ID3D12RootSignatureDeserializer, "34ab647b-3cc8-46ac-841b-c0965645c046"},
		{"ID3D12VersionedRootSignatureDeserializer", IID_ID3D12VersionedRootSignatureDeserializer, "7f91ce67-090c-4bb7-b78e-ed8ff2e31da0"},
		{"ID3D12Heap", IID_ID3D12Heap, "6b3b2502-6e51-45b3-90ee-9884265e8df3"},
		{"ID3D12Resource", IID_ID3D12Resource, "696442be-a72e-4059-bc79-5b5c98040fad"},
		{"ID3D12CommandAllocator", IID_ID3D12CommandAllocator, "6102dee4-af59-4b09-b999-b44d73f09b24"},
		{"ID3D12Fence", IID_ID3D12Fence, "0a753dcf-c4d8-4b91-adf6-be5a60d95a76"},
		{"ID3D12Fence1", IID_ID3D12Fence1, "433685fe-e22b-4ca0-a8db-b5b4f4dd0e4a"},
		{"ID3D12PipelineState", IID_ID3D12PipelineState, "765a30f3-f624-4c6f-a828-ace948622445"},
		{"ID3D12DescriptorHeap", IID_ID3D12DescriptorHeap, "8efb471d-616c-4f49-90f7-127bb763fa51"},
		{"ID3D12QueryHeap", IID_ID3D12QueryHeap, "0d9658ae-ed45-469e-a61d-970ec583cab4"},
		{"ID3D12CommandSignature", IID_ID3D12CommandSignature, "c36a797c-ec80-4f0a-8985-a7b2475082d1"},
		{"ID3D12CommandList", IID_ID3D12CommandList, "7116d91c-e7e4-47ce-b8c6-ec8168f437e5"},
		{"ID3D12GraphicsCommandList", IID_ID3D12GraphicsCommandList, "5b160d0f-ac1b-4185-8ba8-b3ae42a5a455"},
		{"ID3D12GraphicsCommandList1", IID_ID3D12GraphicsCommandList1, "553103fb-1fe7-4557-bb38-946d7d0e7ca7"},
		{"ID3D12GraphicsCommandList2", IID_ID3D12GraphicsCommandList2, "38c3e585-ff17-412c-9150-4fc6f9d72a28"},
		{"ID3D12CommandQueue", IID_ID3D12CommandQueue, "0ec870a6-5d7e-4c22-8cfc-5baae07616ed"},
		{"ID3D12Device", IID_ID3D12Device, "189819f1-1db6-4b57-be54-1821339b85f7"},
		{"ID3D12Debug", IID_ID3D12Debug, "344488b7-6846-474b-b989-f027448245e0"},
		{"ID3D12Debug1", IID_ID3D12Debug1, "affaa4ca-63fe-4d8e-b8ad-159000af4304"},
		{"ID3D12Debug3", IID_ID3D12Debug3, "5cf4e58f-f671-4ff1-a542-3686e3d153d1"},
		{"ID3D12DebugDevice", IID_ID3D12DebugDevice, "3febd6dd-4973-4787-8194-e45f9e28923e"},
		{"ID3D12InfoQueue", IID_ID3D12InfoQueue, "0742a90b-c387-483f-b946-30a7e4e61458"},
		{"ID3D12InfoQueue1", IID_ID3D12InfoQueue1, "2852dd88-b484-4c0c-b6b1-67168500e600"},
		{"ID3DBlob", IID_ID3DBlob, "8ba5fb08-5195-40e2-ac58-0d989c3a0102"},
	}

	for _, tc := range tests {
		if want := com.MustParseGUID(tc.want); tc.got != want {
			t.Errorf("IID_%s = %s, want %s", tc.name, tc.got, want)
		}
	}
}

func TestIIDsUnique(t *testing.T) {
	all := []com.GUID{
		IID_ID3D12Object, IID_ID3D12DeviceChild, IID_ID3D12RootSignature,
		IID_ID3D12RootSignatureDeserializer, IID_ID3D12VersionedRootSignatureDeserializer,
		IID_ID3D12Heap, IID_ID3D12Resource, IID_ID3D12CommandAllocator, IID_ID3D12Fence,
		IID_ID3D12Fence1, IID_ID3D12PipelineState, IID_ID3D12DescriptorHeap, IID_ID3D12QueryHeap,
		IID_ID3D12CommandSignature, IID_ID3D12CommandList, IID_ID3D12GraphicsCommandList,
		IID_ID3D12GraphicsCommandList1, IID_ID3D12GraphicsCommandList2, IID_ID3D12CommandQueue,
		IID_ID3D12Device, IID_ID3D12Debug, IID_ID3D12Debug1, IID_ID3D12Debug3,
		IID_ID3D12DebugDevice, IID_ID3D12InfoQueue, IID_ID3D12InfoQueue1, IID_ID3DBlob,
	}
	seen := make(map[com.GUID]int, len(all))
	for i, g := range all {
		if j, ok := seen[g]; ok {
			t.Errorf("IID %d and %d are both %s", j, i, g)
		}
		seen[g] = i
	}
}
