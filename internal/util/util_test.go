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

package util

import (
	"bytes"
	"testing"
)

type byteWriter struct {
	data []byte
}

func (w *byteWriter) HostWrite(offset uintptr, data []byte) {
	CheckRange(offset, uintptr(len(data)), uintptr(len(w.data)))
	copy(w.data[offset:], data)
}

func expectAbort(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not abort", name)
		}
	}()
	f()
}

func TestHostWrite(t *testing.T) {
	w := &byteWriter{data: make([]byte, 16)}

	n := HostWrite(w, 2, uint16(0x0201))
	if n != 2 {
		t.Errorf("HostWrite returned %d", n)
	}
	n = HostWriteSlice(w, 8, []uint32{0x06050403, 0x0a090807})
	if n != 8 {
		t.Errorf("HostWriteSlice returned %d", n)
	}

	want := []byte{0, 0, 1, 2, 0, 0, 0, 0, 3, 4, 5, 6, 7, 8, 9, 10}
	if !bytes.Equal(w.data, want) {
		t.Errorf("data = %v, want %v", w.data, want)
	}

	if HostWriteSlice[uint32](w, 0, nil) != 0 {
		t.Error("empty slice wrote bytes")
	}

	expectAbort(t, "overflowing write", func() {
		HostWriteSlice(w, 12, []uint32{1, 2})
	})
	expectAbort(t, "offset past end", func() {
		HostWrite(w, 17, uint8(1))
	})
}

func TestNoCopy(t *testing.T) {
	type owner struct {
		noCopy NoCopy
	}

	o := &owner{}
	o.noCopy.Init()
	o.noCopy.Check()

	expectAbort(t, "double Init", func() {
		o.noCopy.Init()
	})

	moved := new(owner)
	moved.noCopy.addr = o.noCopy.addr
	expectAbort(t, "Check on copy", func() {
		moved.noCopy.Check()
	})

	o.noCopy.Close()
	expectAbort(t, "Check after Close", func() {
		o.noCopy.Check()
	})
}
