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

package dxgi

import "fmt"

type SAMPLE_DESC struct {
	Count   uint32
	Quality uint32
}

type RATIONAL struct {
	Numerator   uint32
	Denominator uint32
}

// LUID identifies an adapter for the lifetime of the system.
type LUID struct {
	LowPart  uint32
	HighPart int32
}

func (l LUID) String() string {
	return fmt.Sprintf("%08X-%08X", uint32(l.HighPart), l.LowPart)
}

type ALPHA_MODE uint32

const (
	ALPHA_MODE_UNSPECIFIED   ALPHA_MODE = 0
	ALPHA_MODE_PREMULTIPLIED ALPHA_MODE = 1
	ALPHA_MODE_STRAIGHT      ALPHA_MODE = 2
	ALPHA_MODE_IGNORE        ALPHA_MODE = 3
)
