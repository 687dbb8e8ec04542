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
	"fmt"
	"strings"

	"goarrg.com/debug"
)

var factoryTypeNames = [...]string{
	FACTORY_TYPE_SINGLE_THREADED: "SingleThreaded",
	FACTORY_TYPE_MULTI_THREADED:  "MultiThreaded",
}

func (t FACTORY_TYPE) String() string {
	if int(t) < len(factoryTypeNames) {
		return factoryTypeNames[t]
	}
	return fmt.Sprintf("FACTORY_TYPE_%d", uint32(t))
}

func (t FACTORY_TYPE) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts "MultiThreaded", "multi_threaded" or
// "FACTORY_TYPE_MULTI_THREADED".
func (t *FACTORY_TYPE) UnmarshalText(data []byte) error {
	text := normalizeName(string(data), "FACTORY_TYPE_")
	for i, name := range factoryTypeNames {
		if normalizeName(name, "") == text {
			*t = FACTORY_TYPE(i)
			return nil
		}
	}
	return debug.Errorf("Unknown factory type: %q", string(data))
}

var debugLevelNames = [...]string{
	DEBUG_LEVEL_NONE:        "None",
	DEBUG_LEVEL_ERROR:       "Error",
	DEBUG_LEVEL_WARNING:     "Warning",
	DEBUG_LEVEL_INFORMATION: "Information",
}

func (l DEBUG_LEVEL) String() string {
	if int(l) < len(debugLevelNames) {
		return debugLevelNames[l]
	}
	return fmt.Sprintf("DEBUG_LEVEL_%d", uint32(l))
}

func (l DEBUG_LEVEL) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *DEBUG_LEVEL) UnmarshalText(data []byte) error {
	text := normalizeName(string(data), "DEBUG_LEVEL_")
	for i, name := range debugLevelNames {
		if normalizeName(name, "") == text {
			*l = DEBUG_LEVEL(i)
			return nil
		}
	}
	return debug.Errorf("Unknown debug level: %q", string(data))
}

func normalizeName(s, prefix string) string {
	s = strings.ToUpper(s)
	s = strings.TrimPrefix(s, prefix)
	return strings.ReplaceAll(s, "_", "")
}

func (w WINDOW_STATE) String() string {
	if w&WINDOW_STATE_OCCLUDED != 0 {
		return "Occluded"
	}
	return "None"
}

func (r GEOMETRY_RELATION) String() string {
	switch r {
	case GEOMETRY_RELATION_UNKNOWN:
		return "Unknown"
	case GEOMETRY_RELATION_DISJOINT:
		return "Disjoint"
	case GEOMETRY_RELATION_IS_CONTAINED:
		return "IsContained"
	case GEOMETRY_RELATION_CONTAINS:
		return "Contains"
	case GEOMETRY_RELATION_OVERLAP:
		return "Overlap"
	}
	return fmt.Sprintf("GEOMETRY_RELATION_%d", uint32(r))
}
