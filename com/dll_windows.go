//go:build windows

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
	"sync"

	"goarrg.com/debug"
	"golang.org/x/sys/windows"
)

// DLL is a system DLL loaded on first use.
type DLL struct {
	dll  *windows.LazyDLL
	once sync.Once
	err  error
}

func NewDLL(name string) *DLL {
	return &DLL{dll: windows.NewLazySystemDLL(name)}
}

func (d *DLL) Load() error {
	d.once.Do(func() {
		if !Is64bit {
			d.err = debug.Errorf("%s: native calls require a 64 bit target", d.dll.Name)
			return
		}
		if err := d.dll.Load(); err != nil {
			d.err = debug.ErrorWrapf(err, "Failed to load %s", d.dll.Name)
			return
		}
		instance.logger.VPrintf("Loaded %s", d.dll.Name)
	})
	return d.err
}

func (d *DLL) Proc(name string) *windows.LazyProc {
	return d.dll.NewProc(name)
}

// CallProc loads the DLL and calls one of its exports returning HRESULT.
//
//go:uintptrescapes
func (d *DLL) CallProc(proc *windows.LazyProc, args ...uintptr) (HRESULT, error) {
	if err := d.Load(); err != nil {
		return E_FAIL, err
	}
	if err := proc.Find(); err != nil {
		return E_NOTIMPL, debug.ErrorWrapf(err, "%s missing export", d.dll.Name)
	}
	r, _, _ := proc.Call(args...)
	return HRESULT(r), nil
}
