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

package container

import "testing"

func TestStack(t *testing.T) {
	s := Stack[int]{}
	if !s.Empty() {
		t.Fatal("zero value not empty")
	}
	for i := 0; i < 4; i++ {
		s.Push(i)
	}
	if s.Len() != 4 || s.Peek() != 3 {
		t.Fatalf("Len() = %d, Peek() = %d", s.Len(), s.Peek())
	}
	for want := 3; want >= 0; want-- {
		if got := s.Pop(); got != want {
			t.Errorf("Pop() = %d, want %d", got, want)
		}
	}
	if !s.Empty() {
		t.Errorf("Len() = %d after popping everything", s.Len())
	}
}
