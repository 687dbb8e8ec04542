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

import "goarrg.com/rhi/dxr/com"

var (
	IID_ID3D12Object                             = com.GUID{0xC4FEC28F, 0x7966, 0x4E95, [8]byte{0x9F, 0x94, 0xF4, 0x31, 0xCB, 0x56, 0xC3, 0xB8}}
	IID_ID3D12DeviceChild                        = com.GUID{0x905DB94B, 0xA00C, 0x4140, [8]byte{0x9D, 0xF5, 0x2B, 0x64, 0xCA, 0x9E, 0xA3, 0x57}}
	IID_ID3D12RootSignature                      = com.GUID{0xC54A6B66, 0x72DF, 0x4EE8, [8]byte{0x8B, 0xE5, 0xA9, 0x46, 0xA1, 0x42, 0x92, 0x14}}
	IID_ID3D12RootSignatureDeserializer          = com.GUID{0x34AB647B, 0x3CC8, 0x46AC, [8]byte{0x84, 0x1B, 0xC0, 0x96, 0x56, 0x45, 0xC0, 0x46}}
	IID_ID3D12VersionedRootSignatureDeserializer = com.GUID{0x7F91CE67, 0x090C, 0x4BB7, [8]byte{0xB7, 0x8E, 0xED, 0x8F, 0xF2, 0xE3, 0x1D, 0xA0}}
	IID_ID3D12Heap                               = com.GUID{0x6B3B2502, 0x6E51, 0x45B3, [8]byte{0x90, 0xEE, 0x98, 0x84, 0x26, 0x5E, 0x8D, 0xF3}}
	IID_ID3D12Resource                           = com.GUID{0x696442BE, 0xA72E, 0x4059, [8]byte{0xBC, 0x79, 0x5B, 0x5C, 0x98, 0x04, 0x0F, 0xAD}}
	IID_ID3D12CommandAllocator                   = com.GUID{0x6102DEE4, 0xAF59, 0x4B09, [8]byte{0xB9, 0x99, 0xB4, 0x4D, 0x73, 0xF0, 0x9B, 0x24}}
	IID_ID3D12Fence                              = com.GUID{0x0A753DCF, 0xC4D8, 0x4B91, [8]byte{0xAD, 0xF6, 0xBE, 0x5A, 0x60, 0xD9, 0x5A, 0x76}}
	IID_ID3D12Fence1                             = com.GUID{0x433685FE, 0xE22B, 0x4CA0, [8]byte{0xA8, 0xDB, 0xB5, 0xB4, 0xF4, 0xDD, 0x0E, 0x4A}}
	IID_ID3D12PipelineState                      = com.GUID{0x765A30F3, 0xF624, 0x4C6F, [8]byte{0xA8, 0x28, 0xAC, 0xE9, 0x48, 0x62, 0x24, 0x45}}
	IID_ID3D12DescriptorHeap                     = com.GUID{0x8EFB471D, 0x616C, 0x4F49, [8]byte{0x90, 0xF7, 0x12, 0x7B, 0xB7, 0x63, 0xFA, 0x51}}
	IID_ID3D12QueryHeap                          = com.GUID{0x0D9658AE, 0xED45, 0x469E, [8]byte{0xA6, 0x1D, 0x97, 0x0E, 0xC5, 0x83, 0xCA, 0xB4}}
	IID_ID3D12CommandSignature                   = com.GUID{0xC36A797C, 0xEC80, 0x4F0A, [8]byte{0x89, 0x85, 0xA7, 0xB2, 0x47, 0x50, 0x82, 0xD1}}
	IID_ID3D12CommandList                        = com.GUID{0x7116D91C, 0xE7E4, 0x47CE, [8]byte{0xB8, 0xC6, 0xEC, 0x81, 0x68, 0xF4, 0x37, 0xE5}}
	IID_ID3D12GraphicsCommandList                = com.GUID{0x5B160D0F, 0xAC1B, 0x4185, [8]byte{0x8B, 0xA8, 0xB3, 0xAE, 0x42, 0xA5, 0xA4, 0x55}}
	IID_ID3D12GraphicsCommandList1               = com.GUID{0x553103FB, 0x1FE7, 0x4557, [8]byte{0xBB, 0x38, 0x94, 0x6D, 0x7D, 0x0E, 0x7C, 0xA7}}
	IID_ID3D12GraphicsCommandList2               = com.GUID{0x38C3E585, 0xFF17, 0x412C, [8]byte{0x91, 0x50, 0x4F, 0xC6, 0xF9, 0xD7, 0x2A, 0x28}}
	IID_ID3D12CommandQueue                       = com.GUID{0x0EC870A6, 0x5D7E, 0x4C22, [8]byte{0x8C, 0xFC, 0x5B, 0xAA, 0xE0, 0x76, 0x16, 0xED}}
	IID_ID3D12Device                             = com.GUID{0x189819F1, 0x1DB6, 0x4B57, [8]byte{0xBE, 0x54, 0x18, 0x21, 0x33, 0x9B, 0x85, 0xF7}}
	IID_ID3D12Debug                              = com.GUID{0x344488B7, 0x6846, 0x474B, [8]byte{0xB9, 0x89, 0xF0, 0x27, 0x44, 0x82, 0x45, 0xE0}}
	IID_ID3D12Debug1                             = com.GUID{0xAFFAA4CA, 0x63FE, 0x4D8E, [8]byte{0xB8, 0xAD, 0x15, 0x90, 0x00, 0xAF, 0x43, 0x04}}
	IID_ID3D12Debug3                             = com.GUID{0x5CF4E58F, 0xF671, 0x4FF1, [8]byte{0xA5, 0x42, 0x36, 0x86, 0xE3, 0xD1, 0x53, 0xD1}}
	IID_ID3D12DebugDevice                        = com.GUID{0x3FEBD6DD, 0x4973, 0x4787, [8]byte{0x81, 0x94, 0xE4, 0x5F, 0x9E, 0x28, 0x92, 0x3E}}
	IID_ID3D12InfoQueue                          = com.GUID{0x0742A90B, 0xC387, 0x483F, [8]byte{0xB9, 0x46, 0x30, 0xA7, 0xE4, 0xE6, 0x14, 0x58}}
	IID_ID3D12InfoQueue1                         = com.GUID{0x2852DD88, 0xB484, 0x4C0C, [8]byte{0xB6, 0xB1, 0x67, 0x16, 0x85, 0x00, 0xE6, 0x00}}
	IID_ID3DBlob                                 = com.GUID{0x8BA5FB08, 0x5195, 0x40E2, [8]byte{0xAC, 0x58, 0x0D, 0x98, 0x9C, 0x3A, 0x01, 0x02}}
)
