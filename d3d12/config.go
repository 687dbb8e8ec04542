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
	"bytes"
	"fmt"

	"goarrg.com/debug"
	"goarrg.com/gmath"
	"goarrg.com/rhi/dxr/dxgi"
)

const (
	minFeatureLevel = FEATURE_LEVEL_11_0
	maxFeatureLevel = FEATURE_LEVEL_12_2
)

// Config controls device creation in NewDevice. The zero value creates a
// FEATURE_LEVEL_11_0 device without the debug layer.
type Config struct {
	MinimumFeatureLevel FEATURE_LEVEL `toml:"minimum_feature_level"`

	EnableDebugLayer                         bool `toml:"debug_layer"`
	EnableGPUBasedValidation                 bool `toml:"gpu_based_validation"`
	EnableSynchronizedCommandQueueValidation bool `toml:"synchronized_queue_validation"`

	// BreakOnSeverity and DenyMessageIDs only apply with the debug layer.
	BreakOnSeverity []MESSAGE_SEVERITY `toml:"break_on_severity"`
	DenyMessageIDs  []MESSAGE_ID       `toml:"deny_message_ids"`
	LogMessages     bool               `toml:"log_messages"`

	RequiredFormatSupport map[dxgi.FORMAT]FORMAT_SUPPORT1 `toml:"-"`
}

func (c *Config) MarshalJSON() ([]byte, error) {
	buff := bytes.Buffer{}
	buff.WriteString("{")

	buff.WriteString(fmt.Sprintf("\"MinimumFeatureLevel\": %q,", c.MinimumFeatureLevel.String()))
	buff.WriteString(fmt.Sprintf("\"EnableDebugLayer\": %t,", c.EnableDebugLayer))
	buff.WriteString(fmt.Sprintf("\"EnableGPUBasedValidation\": %t,", c.EnableGPUBasedValidation))
	buff.WriteString(fmt.Sprintf("\"EnableSynchronizedCommandQueueValidation\": %t,", c.EnableSynchronizedCommandQueueValidation))

	buff.WriteString(fmt.Sprintf("\"BreakOnSeverity\": %s,", jsonString(c.BreakOnSeverity)))
	buff.WriteString(fmt.Sprintf("\"DenyMessageIDs\": %s,", jsonString(c.DenyMessageIDs)))
	buff.WriteString(fmt.Sprintf("\"LogMessages\": %t,", c.LogMessages))

	{
		buff.WriteString("\"RequiredFormatSupport\": {")
		err := mapRunFuncStringSorted(c.RequiredFormatSupport, func(k dxgi.FORMAT, v FORMAT_SUPPORT1) error {
			buff.WriteString(fmt.Sprintf("%q: %q,", k.String(), v.String()))
			return nil
		})
		if err == nil {
			buff.Truncate(buff.Len() - 1)
		}
		buff.WriteString("},")
	}

	buff.Truncate(buff.Len() - 1)
	buff.WriteString("}")
	return buff.Bytes(), nil
}

func (c *Config) validate() error {
	if c.MinimumFeatureLevel == 0 {
		c.MinimumFeatureLevel = minFeatureLevel
	} else if !gmath.InRange(uint32(c.MinimumFeatureLevel), uint32(minFeatureLevel), uint32(maxFeatureLevel)) {
		return debug.Errorf("Config.MinimumFeatureLevel %q is outside of valid range [%q, %q]",
			c.MinimumFeatureLevel, minFeatureLevel, maxFeatureLevel)
	}
	if c.EnableGPUBasedValidation && !c.EnableDebugLayer {
		return debug.Errorf("Config.EnableGPUBasedValidation requires Config.EnableDebugLayer")
	}
	if c.EnableSynchronizedCommandQueueValidation && !c.EnableDebugLayer {
		return debug.Errorf("Config.EnableSynchronizedCommandQueueValidation requires Config.EnableDebugLayer")
	}
	for _, s := range c.BreakOnSeverity {
		if s > MESSAGE_SEVERITY_MESSAGE {
			return debug.Errorf("Config.BreakOnSeverity has invalid severity: %d", uint32(s))
		}
	}
	if !c.EnableDebugLayer && (len(c.BreakOnSeverity) > 0 || len(c.DenyMessageIDs) > 0 || c.LogMessages) {
		instance.logger.WPrintf("Config has message settings but the debug layer is disabled")
	}
	return nil
}
