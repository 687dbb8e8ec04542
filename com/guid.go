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
	"encoding/hex"
	"fmt"
	"strings"

	"goarrg.com/debug"
)

// GUID has the same memory layout as the native GUID/IID.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

func (g GUID) String() string {
	return fmt.Sprintf("{%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1],
		g.Data4[2], g.Data4[3], g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7],
	)
}

func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *GUID) UnmarshalText(data []byte) error {
	parsed, err := ParseGUID(string(data))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// ParseGUID accepts "XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX" with or without
// surrounding braces.
func ParseGUID(s string) (GUID, error) {
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		s = s[1 : len(s)-1]
	}
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return GUID{}, debug.Errorf("Invalid GUID format: %q", s)
	}

	var b [16]byte
	if _, err := hex.Decode(b[:], []byte(s[0:8]+s[9:13]+s[14:18]+s[19:23]+s[24:])); err != nil {
		return GUID{}, debug.ErrorWrapf(err, "Invalid GUID: %q", s)
	}

	g := GUID{
		Data1: uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]),
		Data2: uint16(b[4])<<8 | uint16(b[5]),
		Data3: uint16(b[6])<<8 | uint16(b[7]),
	}
	copy(g.Data4[:], b[8:])
	return g, nil
}

func MustParseGUID(s string) GUID {
	g, err := ParseGUID(s)
	if err != nil {
		panic(err)
	}
	return g
}

// Bool is the native 32 bit BOOL.
type Bool int32

const (
	FALSE Bool = 0
	TRUE  Bool = 1
)

func BoolOf(b bool) Bool {
	if b {
		return TRUE
	}
	return FALSE
}

func (b Bool) Go() bool {
	return b != FALSE
}
