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

package layout

import (
	"reflect"
	"slices"
	"testing"
)

type inner struct {
	A uint8
	B uint32
}

type outer struct {
	X     uint16
	In    inner
	Pairs [2]inner
	Raw   [3]uint16
	P     *int
}

type baseVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

type childVtbl struct {
	baseVtbl
	Foo uintptr
	Bar uintptr
}

type badVtbl struct {
	baseVtbl
	Small uint32
}

func TestDescribe(t *testing.T) {
	s := Of[outer]()
	if s.Name != "outer" {
		t.Errorf("Name = %q", s.Name)
	}

	want := []struct {
		path   string
		offset uintptr
		size   uintptr
	}{
		{"X", 0, 2},
		{"In.A", 4, 1},
		{"In.B", 8, 4},
		{"Pairs[0].A", 12, 1},
		{"Pairs[0].B", 16, 4},
		{"Pairs[1].A", 20, 1},
		{"Pairs[1].B", 24, 4},
		{"Raw", 28, 6},
	}
	if len(s.Fields) != len(want)+1 {
		t.Fatalf("got %d fields: %+v", len(s.Fields), s.Fields)
	}
	for i, w := range want {
		f := s.Fields[i]
		if f.Path != w.path || f.Offset != w.offset || f.Size != w.size {
			t.Errorf("field %d = %+v, want %+v", i, f, w)
		}
	}
	if f, ok := s.Field("P"); !ok || f.Offset != reflect.TypeFor[outer]().Field(4).Offset {
		t.Errorf("Field(P) = %+v, %v", f, ok)
	}
	if _, ok := s.Field("Missing"); ok {
		t.Error("Field(Missing) found")
	}
}

func TestDescribeNonStruct(t *testing.T) {
	if _, err := Describe(reflect.TypeFor[int]()); err == nil {
		t.Error("expected error for int")
	}
}

func TestSlots(t *testing.T) {
	slots, err := Slots(reflect.TypeFor[childVtbl]())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"QueryInterface", "AddRef", "Release", "Foo", "Bar"}
	if !slices.Equal(slots, want) {
		t.Errorf("Slots() = %v, want %v", slots, want)
	}

	if _, err := Slots(reflect.TypeFor[badVtbl]()); err == nil {
		t.Error("expected error for non pointer sized slot")
	}
}
