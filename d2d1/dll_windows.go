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
	"math"
	"unsafe"

	"goarrg.com/rhi/dxr/com"
)

var (
	dll = com.NewDLL("d2d1.dll")

	procCreateFactory      = dll.Proc("D2D1CreateFactory")
	procMakeRotateMatrix   = dll.Proc("D2D1MakeRotateMatrix")
	procMakeSkewMatrix     = dll.Proc("D2D1MakeSkewMatrix")
	procIsMatrixInvertible = dll.Proc("D2D1IsMatrixInvertible")
	procInvertMatrix       = dll.Proc("D2D1InvertMatrix")
)

func CreateFactory(config FactoryConfig) (*Factory, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	if b, err := config.MarshalJSON(); err == nil {
		instance.logger.VPrintf("Config: %s", b)
	}

	var factory *Factory
	options := FACTORY_OPTIONS{DebugLevel: config.DebugLevel}
	hr, err := dll.CallProc(procCreateFactory,
		uintptr(config.Type),
		uintptr(unsafe.Pointer(&IID_ID2D1Factory)),
		uintptr(unsafe.Pointer(&options)),
		uintptr(unsafe.Pointer(&factory)),
	)
	if err != nil {
		return nil, err
	}
	if err := com.Check("D2D1CreateFactory", hr); err != nil {
		return nil, err
	}

	instance.logger.IPrintf("Created %s factory", config.Type)
	return factory, nil
}

// MakeRotateMatrix is the runtime's RotationMatrix.
func MakeRotateMatrix(angle float32, center POINT_2F) (MATRIX_3X2_F, error) {
	var m MATRIX_3X2_F
	_, err := dll.CallProc(procMakeRotateMatrix,
		uintptr(math.Float32bits(angle)),
		center.word(),
		uintptr(unsafe.Pointer(&m)),
	)
	return m, err
}

// MakeSkewMatrix is the runtime's SkewMatrix.
func MakeSkewMatrix(angleX, angleY float32, center POINT_2F) (MATRIX_3X2_F, error) {
	var m MATRIX_3X2_F
	_, err := dll.CallProc(procMakeSkewMatrix,
		uintptr(math.Float32bits(angleX)),
		uintptr(math.Float32bits(angleY)),
		center.word(),
		uintptr(unsafe.Pointer(&m)),
	)
	return m, err
}

func IsMatrixInvertible(m *MATRIX_3X2_F) (bool, error) {
	r, err := dll.CallProc(procIsMatrixInvertible, uintptr(unsafe.Pointer(m)))
	return com.Bool(r).Go(), err
}

// InvertMatrix inverts m in place, returning false when it is singular.
func InvertMatrix(m *MATRIX_3X2_F) (bool, error) {
	r, err := dll.CallProc(procInvertMatrix, uintptr(unsafe.Pointer(m)))
	return com.Bool(r).Go(), err
}
