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
	"strings"
	"unsafe"

	"goarrg.com/debug"
	"goarrg.com/rhi/dxr/com"
)

var (
	dll = com.NewDLL("d3d12.dll")

	procCreateDevice                             = dll.Proc("D3D12CreateDevice")
	procGetDebugInterface                        = dll.Proc("D3D12GetDebugInterface")
	procSerializeRootSignature                   = dll.Proc("D3D12SerializeRootSignature")
	procSerializeVersionedRootSignature          = dll.Proc("D3D12SerializeVersionedRootSignature")
	procCreateRootSignatureDeserializer          = dll.Proc("D3D12CreateRootSignatureDeserializer")
	procCreateVersionedRootSignatureDeserializer = dll.Proc("D3D12CreateVersionedRootSignatureDeserializer")
	procEnableExperimentalFeatures               = dll.Proc("D3D12EnableExperimentalFeatures")
)

// EXPERIMENTAL_SHADER_MODELS enables shader models not yet signed off by the runtime.
var EXPERIMENTAL_SHADER_MODELS = com.MustParseGUID("76f5573e-f13a-40f5-b297-81ce9e18933f")

// CreateDevice creates a device on adapter, or on the default adapter when
// adapter is nil.
func CreateDevice(adapter *com.IUnknown, minimumFeatureLevel FEATURE_LEVEL) (*Device, error) {
	var device *Device
	hr, err := dll.CallProc(procCreateDevice,
		uintptr(unsafe.Pointer(adapter)),
		uintptr(minimumFeatureLevel),
		uintptr(unsafe.Pointer(&IID_ID3D12Device)),
		uintptr(unsafe.Pointer(&device)),
	)
	if err != nil {
		return nil, err
	}
	if err := com.Check("D3D12CreateDevice", hr); err != nil {
		return nil, err
	}
	return device, nil
}

// GetDebugInterface returns the debug interface identified by iid, T must be
// the matching Go type (Debug, Debug1, Debug3).
func GetDebugInterface[T any](iid *com.GUID) (*T, error) {
	var out *T
	hr, err := dll.CallProc(procGetDebugInterface,
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)),
	)
	if err != nil {
		return nil, err
	}
	if err := com.Check("D3D12GetDebugInterface", hr); err != nil {
		return nil, err
	}
	return out, nil
}

func serializeResult(method string, hr com.HRESULT, blob, errorBlob *Blob) (*Blob, error) {
	if errorBlob != nil {
		defer errorBlob.Release()
	}
	if err := com.Check(method, hr); err != nil {
		if errorBlob != nil {
			msg := strings.TrimRight(string(errorBlob.Bytes()), "\x00\r\n")
			return nil, debug.ErrorWrapf(err, "%s", msg)
		}
		return nil, err
	}
	return blob, nil
}

func SerializeRootSignature(desc *ROOT_SIGNATURE_DESC, version ROOT_SIGNATURE_VERSION) (*Blob, error) {
	var blob, errorBlob *Blob
	hr, err := dll.CallProc(procSerializeRootSignature,
		uintptr(unsafe.Pointer(desc)),
		uintptr(version),
		uintptr(unsafe.Pointer(&blob)),
		uintptr(unsafe.Pointer(&errorBlob)),
	)
	if err != nil {
		return nil, err
	}
	return serializeResult("D3D12SerializeRootSignature", hr, blob, errorBlob)
}

func SerializeVersionedRootSignature(desc *VERSIONED_ROOT_SIGNATURE_DESC) (*Blob, error) {
	var blob, errorBlob *Blob
	hr, err := dll.CallProc(procSerializeVersionedRootSignature,
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&blob)),
		uintptr(unsafe.Pointer(&errorBlob)),
	)
	if err != nil {
		return nil, err
	}
	return serializeResult("D3D12SerializeVersionedRootSignature", hr, blob, errorBlob)
}

func CreateRootSignatureDeserializer(data []byte) (*RootSignatureDeserializer, error) {
	var out *RootSignatureDeserializer
	hr, err := dll.CallProc(procCreateRootSignatureDeserializer,
		uintptr(unsafe.Pointer(unsafe.SliceData(data))),
		uintptr(len(data)),
		uintptr(unsafe.Pointer(&IID_ID3D12RootSignatureDeserializer)),
		uintptr(unsafe.Pointer(&out)),
	)
	if err != nil {
		return nil, err
	}
	if err := com.Check("D3D12CreateRootSignatureDeserializer", hr); err != nil {
		return nil, err
	}
	return out, nil
}

func CreateVersionedRootSignatureDeserializer(data []byte) (*VersionedRootSignatureDeserializer, error) {
	var out *VersionedRootSignatureDeserializer
	hr, err := dll.CallProc(procCreateVersionedRootSignatureDeserializer,
		uintptr(unsafe.Pointer(unsafe.SliceData(data))),
		uintptr(len(data)),
		uintptr(unsafe.Pointer(&IID_ID3D12VersionedRootSignatureDeserializer)),
		uintptr(unsafe.Pointer(&out)),
	)
	if err != nil {
		return nil, err
	}
	if err := com.Check("D3D12CreateVersionedRootSignatureDeserializer", hr); err != nil {
		return nil, err
	}
	return out, nil
}

// EnableExperimentalFeatures must be called before any device is created.
// configs points at the configuration structs laid out back to back with
// their sizes in configSizes, both are nil for features taking none.
func EnableExperimentalFeatures(features []com.GUID, configs unsafe.Pointer, configSizes []uint32) error {
	if configSizes != nil && len(configSizes) != len(features) {
		return debug.Errorf("Expected %d configuration sizes, got %d", len(features), len(configSizes))
	}
	hr, err := dll.CallProc(procEnableExperimentalFeatures,
		uintptr(len(features)),
		uintptr(unsafe.Pointer(unsafe.SliceData(features))),
		uintptr(configs),
		uintptr(unsafe.Pointer(unsafe.SliceData(configSizes))),
	)
	if err != nil {
		return err
	}
	return com.Check("D3D12EnableExperimentalFeatures", hr)
}
