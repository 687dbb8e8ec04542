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

import (
	"bytes"
	"fmt"

	"goarrg.com/debug"
	"goarrg.com/gmath"
)

// FactoryConfig controls CreateFactory. The zero value creates a single
// threaded factory without the debug layer.
type FactoryConfig struct {
	Type       FACTORY_TYPE `toml:"type"`
	DebugLevel DEBUG_LEVEL  `toml:"debug_level"`
}

func (c *FactoryConfig) MarshalJSON() ([]byte, error) {
	buff := bytes.Buffer{}
	buff.WriteString("{")
	buff.WriteString(fmt.Sprintf("\"Type\": %q,", c.Type.String()))
	buff.WriteString(fmt.Sprintf("\"DebugLevel\": %q", c.DebugLevel.String()))
	buff.WriteString("}")
	return buff.Bytes(), nil
}

func (c *FactoryConfig) validate() error {
	if !gmath.InRange(uint32(c.Type), uint32(FACTORY_TYPE_SINGLE_THREADED), uint32(FACTORY_TYPE_MULTI_THREADED)) {
		return debug.Errorf("FactoryConfig.Type has invalid value: %d", uint32(c.Type))
	}
	if !gmath.InRange(uint32(c.DebugLevel), uint32(DEBUG_LEVEL_NONE), uint32(DEBUG_LEVEL_INFORMATION)) {
		return debug.Errorf("FactoryConfig.DebugLevel has invalid value: %d", uint32(c.DebugLevel))
	}
	return nil
}
