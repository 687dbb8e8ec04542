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
	"testing"

	"goarrg.com/debug"
)

func TestFormatMessage(t *testing.T) {
	got := formatMessage(MESSAGE_CATEGORY_STATE_CREATION, MESSAGE_ID_CLEARRENDERTARGETVIEW_MISMATCHINGCLEARVALUE, "  bad clear value\n")
	want := "[D3D12 STATE_CREATION] [CLEARRENDERTARGETVIEW_MISMATCHINGCLEARVALUE] bad clear value"
	if got != want {
		t.Errorf("formatMessage = %q, want %q", got, want)
	}

	got = formatMessage(MESSAGE_CATEGORY(99), MESSAGE_ID(1234), "x")
	want = "[D3D12 CATEGORY_99] [1234] x"
	if got != want {
		t.Errorf("formatMessage = %q, want %q", got, want)
	}
}

func TestMessageSink(t *testing.T) {
	sink := newMessageSink(debug.NewLogger("dxr", "d3d12", "test"), []MESSAGE_ID{MESSAGE_ID_CLEARDEPTHSTENCILVIEW_MISMATCHINGCLEARVALUE})

	if sink.log(MESSAGE_CATEGORY_EXECUTION, MESSAGE_SEVERITY_WARNING, MESSAGE_ID_CLEARDEPTHSTENCILVIEW_MISMATCHINGCLEARVALUE, "denied") {
		t.Error("denied message reached the logger")
	}
	for s := MESSAGE_SEVERITY_CORRUPTION; s <= MESSAGE_SEVERITY_MESSAGE; s++ {
		if !sink.log(MESSAGE_CATEGORY_EXECUTION, s, MESSAGE_ID_UNKNOWN, "allowed") {
			t.Errorf("severity %s message dropped", s)
		}
	}
}
