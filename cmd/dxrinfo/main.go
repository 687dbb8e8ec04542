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
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"goarrg.com/debug"
	"goarrg.com/rhi/dxr/d2d1"
	"goarrg.com/rhi/dxr/d3d12"
	"goarrg.com/rhi/dxr/internal/layout"
)

var flags flag.FlagSet

type config struct {
	D3D12 d3d12.Config       `toml:"d3d12"`
	D2D1  d2d1.FactoryConfig `toml:"d2d1"`
}

func loadConfig(file string) (config, error) {
	cfg := config{}
	if file == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(file, &cfg)
	if err != nil {
		return cfg, debug.ErrorWrapf(err, "Failed to decode %q", file)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, debug.Errorf("Unknown keys in %q: %v", file, undecoded)
	}
	return cfg, nil
}

func writeLayouts(w io.Writer) error {
	type entry struct {
		Package string
		layout.Struct
	}

	entries := make([]entry, 0, len(layoutTypes))
	for _, t := range layoutTypes {
		s, err := layout.Describe(t)
		if err != nil {
			return err
		}
		entries = append(entries, entry{Package: filepath.Base(t.PkgPath()), Struct: s})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(entries)
}

func main() {
	debug.SetLevel(debug.LogLevelWarn)

	flags.Usage = help
	flags.Init("", flag.ExitOnError)

	v := flags.Bool("v", false, "Verbose - Print high level tasks")
	vv := flags.Bool("vv", false, "Very Verbose - Print everything")

	dumpLayout := flags.Bool("layout", false, "Print the size, alignment and field offsets of every ABI struct as JSON and exit.")
	configFile := flags.String("config", "", "Reads device and factory configuration from a TOML file.\n"+
		"Flags given on the command line override the file.")

	featureLevel := d3d12.FEATURE_LEVEL(0)
	flags.TextVar(&featureLevel, "feature-level", d3d12.FEATURE_LEVEL_11_0, "Sets the minimum feature level in the format \"X_Y\".")
	debugLayer := flags.Bool("debug-layer", false, "Enables the D3D12 debug layer and logs its messages.")
	gpuValidation := flags.Bool("gpu-validation", false, "Enables GPU based validation, requires -debug-layer.")

	d2d1Debug := d2d1.DEBUG_LEVEL(0)
	flags.TextVar(&d2d1Debug, "d2d1-debug", d2d1.DEBUG_LEVEL_NONE, "Sets the Direct2D debug level.\n"+
		"Valid values are \"none\", \"error\", \"warning\" and \"information\".")

	err := flags.Parse(os.Args[1:])
	if err != nil {
		panic(err)
	}

	if *v {
		debug.SetLevel(debug.LogLevelInfo)
	} else if *vv {
		debug.SetLevel(debug.LogLevelVerbose)
	}

	if len(flags.Args()) > 0 {
		debug.EPrintf("dxrinfo does not take positional arguments.")
		help()
		os.Exit(2)
	}

	if *dumpLayout {
		if err := writeLayouts(os.Stdout); err != nil {
			panic(err)
		}
		return
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		debug.EPrintf("%v", err)
		os.Exit(1)
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "feature-level":
			cfg.D3D12.MinimumFeatureLevel = featureLevel
		case "debug-layer":
			cfg.D3D12.EnableDebugLayer = *debugLayer
			cfg.D3D12.LogMessages = *debugLayer
		case "gpu-validation":
			cfg.D3D12.EnableGPUBasedValidation = *gpuValidation
		case "d2d1-debug":
			cfg.D2D1.DebugLevel = d2d1Debug
		}
	})

	if err := run(cfg); err != nil {
		debug.EPrintf("%v", err)
		os.Exit(1)
	}
}

func help() {
	fmt.Fprintf(os.Stderr, "dxrinfo creates a D3D12 device and a Direct2D factory and prints what they report.\n"+
		"\nWith -layout it instead prints the memory layout of every struct the bindings pass to the runtime,\n"+
		"for diffing against offsets dumped from the Windows SDK headers. -layout works on any platform.\n"+
		"\n")
	args := ""
	flags.VisitAll(func(f *flag.Flag) {
		n, u := flag.UnquoteUsage(f)
		if f.DefValue != "" {
			u += "\n\nDefaults to \"" + f.DefValue + "\"."
		}
		args += "\t-" + f.Name + " " + n + "\n\t\t" + strings.ReplaceAll(strings.TrimSpace(u), "\n", "\n\t\t") + "\n"
	})
	fmt.Fprintf(os.Stderr, "Usage:\n\t%s [arguments]\n\nArguments:\n%s", filepath.Base(os.Args[0]), args)
}
