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
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestHRESULT(t *testing.T) {
	tests := []struct {
		hr     HRESULT
		failed bool
		name   string
	}{
		{S_OK, false, "S_OK"},
		{S_FALSE, false, "S_FALSE"},
		{DXGI_STATUS_OCCLUDED, false, "DXGI_STATUS_OCCLUDED"},
		{E_INVALIDARG, true, "E_INVALIDARG"},
		{E_OUTOFMEMORY, true, "E_OUTOFMEMORY"},
		{DXGI_ERROR_DEVICE_REMOVED, true, "DXGI_ERROR_DEVICE_REMOVED"},
		{D2DERR_RECREATE_TARGET, true, "D2DERR_RECREATE_TARGET"},
		{HRESULT(0x80AB0001), true, "HRESULT 0x80AB0001"},
	}

	for _, tc := range tests {
		if tc.hr.Failed() != tc.failed {
			t.Errorf("%08X Failed() = %v, want %v", uint32(tc.hr), tc.hr.Failed(), tc.failed)
		}
		if tc.hr.Succeeded() == tc.failed {
			t.Errorf("%08X Succeeded() = %v", uint32(tc.hr), tc.hr.Succeeded())
		}
		if !strings.HasPrefix(tc.hr.String(), tc.name) {
			t.Errorf("%08X String() = %q, want prefix %q", uint32(tc.hr), tc.hr.String(), tc.name)
		}
	}
}

func TestCheck(t *testing.T) {
	if err := Check("ID3D12Fence::Signal", S_OK); err != nil {
		t.Errorf("S_OK: %v", err)
	}
	if err := Check("ID3D12Fence::Signal", S_FALSE); err != nil {
		t.Errorf("S_FALSE: %v", err)
	}

	err := Check("ID3D12Device::CreateFence", E_INVALIDARG)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, E_INVALIDARG) {
		t.Errorf("errors.Is(%v, E_INVALIDARG) = false", err)
	}

	wrapped := fmt.Errorf("init: %w", err)
	var comErr *Error
	if !errors.As(wrapped, &comErr) {
		t.Fatalf("errors.As failed on %v", wrapped)
	}
	if comErr.Method != "ID3D12Device::CreateFence" || comErr.Code != E_INVALIDARG {
		t.Errorf("unexpected error contents: %+v", comErr)
	}
	if !strings.Contains(err.Error(), "CreateFence") || !strings.Contains(err.Error(), "0x80070057") {
		t.Errorf("Error() = %q", err.Error())
	}
}
