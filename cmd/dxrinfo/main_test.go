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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"goarrg.com/rhi/dxr/d2d1"
	"goarrg.com/rhi/dxr/d3d12"
)

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dxr.toml")
	err := os.WriteFile(file, []byte(`
[d3d12]
minimum_feature_level = "12_0"
debug_layer = true
break_on_severity = ["ERROR", "corruption"]
deny_message_ids = [820]

[d2d1]
type = "MultiThreaded"
debug_level = "warning"
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.D3D12.MinimumFeatureLevel != d3d12.FEATURE_LEVEL_12_0 || !cfg.D3D12.EnableDebugLayer {
		t.Errorf("d3d12 = %+v", cfg.D3D12)
	}
	if len(cfg.D3D12.BreakOnSeverity) != 2 || cfg.D3D12.BreakOnSeverity[1] != d3d12.MESSAGE_SEVERITY_CORRUPTION {
		t.Errorf("BreakOnSeverity = %v", cfg.D3D12.BreakOnSeverity)
	}
	if len(cfg.D3D12.DenyMessageIDs) != 1 || cfg.D3D12.DenyMessageIDs[0] != 820 {
		t.Errorf("DenyMessageIDs = %v", cfg.D3D12.DenyMessageIDs)
	}
	if cfg.D2D1.Type != d2d1.FACTORY_TYPE_MULTI_THREADED || cfg.D2D1.DebugLevel != d2d1.DEBUG_LEVEL_WARNING {
		t.Errorf("d2d1 = %+v", cfg.D2D1)
	}

	if cfg, err := loadConfig(""); err != nil || cfg.D3D12.EnableDebugLayer {
		t.Errorf("loadConfig(\"\") = %+v, %v", cfg, err)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dxr.toml")
	if err := os.WriteFile(file, []byte("[d3d12]\nwarp = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(file); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestWriteLayouts(t *testing.T) {
	buf := bytes.Buffer{}
	if err := writeLayouts(&buf); err != nil {
		t.Fatal(err)
	}

	var entries []struct {
		Package string
		Name    string
		Size    uintptr
		Fields  []struct {
			Path   string
			Offset uintptr
		}
	}
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(layoutTypes) {
		t.Fatalf("%d entries, want %d", len(entries), len(layoutTypes))
	}

	found := map[string]bool{}
	for _, e := range entries {
		found[e.Package+"."+e.Name] = true
		if e.Size == 0 || len(e.Fields) == 0 {
			t.Errorf("%s.%s is empty", e.Package, e.Name)
		}
	}
	for _, name := range []string{"d3d12.RESOURCE_DESC", "d3d12.GRAPHICS_PIPELINE_STATE_DESC", "d2d1.LAYER_PARAMETERS", "dxgi.LUID"} {
		if !found[name] {
			t.Errorf("%s missing", name)
		}
	}
}
