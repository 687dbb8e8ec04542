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
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestFactoryConfigValidate(t *testing.T) {
	c := FactoryConfig{}
	if err := c.validate(); err != nil {
		t.Errorf("zero config: %v", err)
	}

	invalid := []FactoryConfig{
		{Type: FACTORY_TYPE(2)},
		{DebugLevel: DEBUG_LEVEL(4)},
	}
	for i, c := range invalid {
		if err := c.validate(); err == nil {
			t.Errorf("config %d accepted: %+v", i, c)
		}
	}
}

func TestFactoryConfigTOML(t *testing.T) {
	var c FactoryConfig
	if _, err := toml.Decode("type = \"multi_threaded\"\ndebug_level = \"DEBUG_LEVEL_WARNING\"\n", &c); err != nil {
		t.Fatal(err)
	}
	if c.Type != FACTORY_TYPE_MULTI_THREADED || c.DebugLevel != DEBUG_LEVEL_WARNING {
		t.Errorf("decoded %+v", c)
	}

	if _, err := toml.Decode("debug_level = \"verbose\"\n", &c); err == nil {
		t.Error("unknown debug level accepted")
	}
}

func TestFactoryConfigJSON(t *testing.T) {
	c := FactoryConfig{Type: FACTORY_TYPE_MULTI_THREADED, DebugLevel: DEBUG_LEVEL_INFORMATION}
	data, err := c.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("%s: %v", data, err)
	}
	if got["Type"] != "MultiThreaded" || got["DebugLevel"] != "Information" {
		t.Errorf("MarshalJSON() = %s", data)
	}
}
