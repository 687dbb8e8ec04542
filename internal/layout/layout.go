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

// Package layout flattens Go struct types into their leaf fields with byte
// offsets, used to check native ABI layouts and vtable slot order.
package layout

import (
	"reflect"
	"strconv"

	"goarrg.com/debug"
	"goarrg.com/rhi/dxr/internal/container"
)

type Field struct {
	Path   string
	Type   string
	Offset uintptr
	Size   uintptr
}

type Struct struct {
	Name   string
	Size   uintptr
	Align  uintptr
	Fields []Field
}

type pending struct {
	t      reflect.Type
	path   string
	offset uintptr
}

// Describe flattens t, embedded fields contribute their leaves without adding
// their own name to the path. Arrays of structs are expanded per element,
// other arrays are a single leaf.
func Describe(t reflect.Type) (Struct, error) {
	if t.Kind() != reflect.Struct {
		return Struct{}, debug.Errorf("%s is not a struct", t)
	}

	s := Struct{Name: t.Name(), Size: t.Size(), Align: uintptr(t.Align())}
	stack := container.Stack[pending]{}
	stack.Push(pending{t: t})

	for !stack.Empty() {
		p := stack.Pop()

		switch {
		case p.t.Kind() == reflect.Struct && p.path != "" && p.t.NumField() == 0:
			s.Fields = append(s.Fields, Field{Path: p.path, Type: p.t.String(), Offset: p.offset})

		case p.t.Kind() == reflect.Struct:
			// pushed in reverse so fields pop in declaration order
			for i := p.t.NumField() - 1; i >= 0; i-- {
				f := p.t.Field(i)
				path := p.path
				if !f.Anonymous {
					path = join(p.path, f.Name)
				}
				stack.Push(pending{t: f.Type, path: path, offset: p.offset + f.Offset})
			}

		case p.t.Kind() == reflect.Array && p.t.Elem().Kind() == reflect.Struct:
			for i := p.t.Len() - 1; i >= 0; i-- {
				stack.Push(pending{
					t:      p.t.Elem(),
					path:   p.path + "[" + strconv.Itoa(i) + "]",
					offset: p.offset + uintptr(i)*p.t.Elem().Size(),
				})
			}

		default:
			s.Fields = append(s.Fields, Field{Path: p.path, Type: p.t.String(), Offset: p.offset, Size: p.t.Size()})
		}
	}

	return s, nil
}

func Of[T any]() Struct {
	s, err := Describe(reflect.TypeFor[T]())
	if err != nil {
		panic(err)
	}
	return s
}

// Slots returns the leaf paths of a vtable struct in slot order, failing when
// a leaf is not pointer sized or leaves a gap.
func Slots(vtbl reflect.Type) ([]string, error) {
	s, err := Describe(vtbl)
	if err != nil {
		return nil, err
	}

	ptrSize := reflect.TypeFor[uintptr]().Size()
	slots := make([]string, 0, len(s.Fields))
	for i, f := range s.Fields {
		if f.Size != ptrSize {
			return nil, debug.Errorf("%s.%s is %d bytes", s.Name, f.Path, f.Size)
		}
		if f.Offset != uintptr(i)*ptrSize {
			return nil, debug.Errorf("%s.%s is at offset %d, expected %d", s.Name, f.Path, f.Offset, uintptr(i)*ptrSize)
		}
		slots = append(slots, f.Path)
	}
	return slots, nil
}

func (s Struct) Field(path string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Path == path {
			return f, true
		}
	}
	return Field{}, false
}

func join(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
