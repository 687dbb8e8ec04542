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

package d3d12

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"goarrg.com/debug"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

func toHex(v any) string {
	switch t := v.(type) {
	case uint32, FORMAT_SUPPORT1, FORMAT_SUPPORT2, RESOURCE_STATES, HEAP_FLAGS, RESOURCE_FLAGS:
		return fmt.Sprintf("0x%02X", t)
	case uint64, uintptr:
		return fmt.Sprintf("0x%016X", t)
	}
	abort("Unknown/Unhandled type: %T", v)
	return ""
}

func jsonString(target any) string {
	bytes, err := json.Marshal(target)
	if err != nil {
		abort("%s", err)
	}
	return strings.TrimSpace(string(bytes))
}

func prettyString(target json.Marshaler) string {
	bytes, err := json.MarshalIndent(target, "", "    ")
	if err != nil {
		abort("%s", err)
	}
	return strings.TrimSpace(string(bytes))
}

func hasBits[N constraints.Unsigned](t, want N) bool {
	return (t & want) == want
}

func mapRunFuncStringSorted[M ~map[K]V, K interface {
	comparable
	fmt.Stringer
}, V any](m M, f func(K, V) error) error {
	var sKeys []string
	skMap := map[string]K{}

	{
		keys := maps.Keys(m)

		if len(keys) == 0 {
			return debug.Errorf("Empty map")
		}

		sKeys = make([]string, len(keys))
		for i, k := range keys {
			sKeys[i] = k.String()
			skMap[sKeys[i]] = k
		}
		slices.Sort(sKeys)
	}

	for _, sk := range sKeys {
		k := skMap[sk]
		err := f(k, m[k])
		if err != nil {
			return err
		}
	}

	return nil
}

func growSlice[S ~[]E, E any](s S, n int) S {
	if n -= cap(s); n > 0 {
		s = append(s[:cap(s)], make([]E, n)...)
	}

	return s
}
