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

package d2d1

import "testing"

func TestFactoryTypeText(t *testing.T) {
	for _, tc := range []struct {
		text string
		want FACTORY_TYPE
	}{
		{"SingleThreaded", FACTORY_TYPE_SINGLE_THREADED},
		{"multi_threaded", FACTORY_TYPE_MULTI_THREADED},
		{"FACTORY_TYPE_MULTI_THREADED", FACTORY_TYPE_MULTI_THREADED},
	} {
		var f FACTORY_TYPE
		if err := f.UnmarshalText([]byte(tc.text)); err != nil || f != tc.want {
			t.Errorf("UnmarshalText(%q) = %s, %v", tc.text, f, err)
		}
	}

	var f FACTORY_TYPE
	if err := f.UnmarshalText([]byte("shared")); err == nil {
		t.Error("shared accepted")
	}
	if text, _ := FACTORY_TYPE_MULTI_THREADED.MarshalText(); string(text) != "MultiThreaded" {
		t.Errorf("MarshalText() = %q", text)
	}
	if FACTORY_TYPE(5).String() != "FACTORY_TYPE_5" {
		t.Errorf("unknown type String() = %q", FACTORY_TYPE(5))
	}
}

func TestDebugLevelText(t *testing.T) {
	var l DEBUG_LEVEL
	if err := l.UnmarshalText([]byte("information")); err != nil || l != DEBUG_LEVEL_INFORMATION {
		t.Errorf("UnmarshalText(information) = %s, %v", l, err)
	}
	if err := l.UnmarshalText([]byte("DEBUG_LEVEL_NONE")); err != nil || l != DEBUG_LEVEL_NONE {
		t.Errorf("UnmarshalText(DEBUG_LEVEL_NONE) = %s, %v", l, err)
	}
	if DEBUG_LEVEL_ERROR.String() != "Error" {
		t.Errorf("String() = %q", DEBUG_LEVEL_ERROR)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{WINDOW_STATE_OCCLUDED.String(), "Occluded"},
		{WINDOW_STATE_NONE.String(), "None"},
		{GEOMETRY_RELATION_IS_CONTAINED.String(), "IsContained"},
		{GEOMETRY_RELATION_OVERLAP.String(), "Overlap"},
		{GEOMETRY_RELATION(9).String(), "GEOMETRY_RELATION_9"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}
