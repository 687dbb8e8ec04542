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
	"testing"
	"unsafe"
)

func TestGUIDLayout(t *testing.T) {
	if sz := unsafe.Sizeof(GUID{}); sz != 16 {
		t.Fatalf("sizeof(GUID) = %d, want 16", sz)
	}

	g := MustParseGUID("189819f1-1db6-4b57-be54-1821339b85f7")
	got := *(*[16]byte)(unsafe.Pointer(&g))
	want := [16]byte{
		0xf1, 0x19, 0x98, 0x18, // Data1, little endian
		0xb6, 0x1d,
		0x57, 0x4b,
		0xbe, 0x54, 0x18, 0x21, 0x33, 0x9b, 0x85, 0xf7,
	}
	if got != want {
		t.Errorf("bytes = % x, want % x", got, want)
	}
}

func TestParseGUID(t *testing.T) {
	tests := []struct {
		in   string
		want GUID
		ok   bool
	}{
		{"00000000-0000-0000-C000-000000000046", IID_IUnknown, true},
		{"{00000000-0000-0000-C000-000000000046}", IID_IUnknown, true},
		{"2cd90691-12e2-11dc-9fed-001143a055f9", GUID{0x2cd90691, 0x12e2, 0x11dc, [8]byte{0x9f, 0xed, 0x00, 0x11, 0x43, 0xa0, 0x55, 0xf9}}, true},
		{"2cd90691-12e2-11dc-9fed-001143a055f", GUID{}, false},
		{"2cd90691x12e2-11dc-9fed-001143a055f9", GUID{}, false},
		{"zzd90691-12e2-11dc-9fed-001143a055f9", GUID{}, false},
	}

	for _, tc := range tests {
		got, err := ParseGUID(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("ParseGUID(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseGUID(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGUIDString(t *testing.T) {
	g := GUID{0x2cd90691, 0x12e2, 0x11dc, [8]byte{0x9f, 0xed, 0x00, 0x11, 0x43, 0xa0, 0x55, 0xf9}}
	if s := g.String(); s != "{2CD90691-12E2-11DC-9FED-001143A055F9}" {
		t.Errorf("String() = %s", s)
	}

	var back GUID
	if err := back.UnmarshalText([]byte(g.String())); err != nil {
		t.Fatal(err)
	}
	if back != g {
		t.Errorf("UnmarshalText(String()) = %v, want %v", back, g)
	}
}

func TestBool(t *testing.T) {
	if unsafe.Sizeof(Bool(0)) != 4 {
		t.Errorf("BOOL must be 32 bits")
	}
	if !BoolOf(true).Go() || BoolOf(false).Go() {
		t.Errorf("BoolOf/Go mismatch")
	}
	if !Bool(-1).Go() {
		t.Errorf("any non zero BOOL is true")
	}
}
