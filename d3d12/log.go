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
	"fmt"
	"strings"

	"goarrg.com"
	"goarrg.com/debug"
)

type platform struct{}

func (platform) Abort()                           { panic("Fatal Error") }
func (platform) AbortPopup(f string, args ...any) { panic("Fatal Error") }

var instance = struct {
	platform goarrg.PlatformInterface
	logger   *debug.Logger
}{
	platform: platform{},
	logger:   debug.NewLogger("dxr", "d3d12"),
}

func abort(fmt string, args ...any) {
	instance.logger.EPrintf(fmt, args...)
	instance.platform.Abort()
}

// Init replaces the default platform, which panics on fatal errors.
func Init(platform goarrg.PlatformInterface) {
	instance.platform = platform
}

func SetLogLevel(l uint32) {
	instance.logger.SetLevel(l)
}

// formatMessage renders a debug layer message the way it is logged.
func formatMessage(category MESSAGE_CATEGORY, id MESSAGE_ID, description string) string {
	return fmt.Sprintf("[D3D12 %s] [%s] %s", category.String(), id.String(), strings.TrimSpace(description))
}

// logMessage routes a message to the logger level matching its severity.
func logMessage(logger *debug.Logger, severity MESSAGE_SEVERITY, msg string) {
	switch severity {
	case MESSAGE_SEVERITY_CORRUPTION, MESSAGE_SEVERITY_ERROR:
		logger.EPrintf("%s", msg)
	case MESSAGE_SEVERITY_WARNING:
		logger.WPrintf("%s", msg)
	case MESSAGE_SEVERITY_INFO:
		logger.IPrintf("%s", msg)
	default:
		logger.VPrintf("%s", msg)
	}
}

// messageSink forwards debug layer messages to a logger, skipping denied IDs.
type messageSink struct {
	logger *debug.Logger
	deny   map[MESSAGE_ID]struct{}
}

func newMessageSink(logger *debug.Logger, deny []MESSAGE_ID) *messageSink {
	s := &messageSink{logger: logger, deny: make(map[MESSAGE_ID]struct{}, len(deny))}
	for _, id := range deny {
		s.deny[id] = struct{}{}
	}
	return s
}

// log reports whether the message reached the logger.
func (s *messageSink) log(category MESSAGE_CATEGORY, severity MESSAGE_SEVERITY, id MESSAGE_ID, description string) bool {
	if _, denied := s.deny[id]; denied {
		return false
	}
	logMessage(s.logger, severity, formatMessage(category, id, description))
	return true
}
