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
	"unsafe"

	"goarrg.com/rhi/dxr/com"
	"golang.org/x/sys/windows"
)

func (i *Debug) EnableDebugLayer() {
	com.CallRaw(i.vtbl().EnableDebugLayer, uintptr(unsafe.Pointer(i)))
}

func (i *Debug1) EnableDebugLayer() {
	com.CallRaw(i.vtbl().EnableDebugLayer, uintptr(unsafe.Pointer(i)))
}

func (i *Debug1) SetEnableGPUBasedValidation(enable bool) {
	com.CallRaw(i.vtbl().SetEnableGPUBasedValidation, uintptr(unsafe.Pointer(i)), uintptr(com.BoolOf(enable)))
}

func (i *Debug1) SetEnableSynchronizedCommandQueueValidation(enable bool) {
	com.CallRaw(i.vtbl().SetEnableSynchronizedCommandQueueValidation, uintptr(unsafe.Pointer(i)), uintptr(com.BoolOf(enable)))
}

func (i *Debug3) SetEnableGPUBasedValidation(enable bool) {
	com.CallRaw(i.vtbl().SetEnableGPUBasedValidation, uintptr(unsafe.Pointer(i)), uintptr(com.BoolOf(enable)))
}

func (i *Debug3) SetEnableSynchronizedCommandQueueValidation(enable bool) {
	com.CallRaw(i.vtbl().SetEnableSynchronizedCommandQueueValidation, uintptr(unsafe.Pointer(i)), uintptr(com.BoolOf(enable)))
}

func (i *Debug3) SetGPUBasedValidationFlags(flags GPU_BASED_VALIDATION_FLAGS) {
	com.CallRaw(i.vtbl().SetGPUBasedValidationFlags, uintptr(unsafe.Pointer(i)), uintptr(flags))
}

func (i *DebugDevice) SetFeatureMask(mask DEBUG_FEATURE) error {
	return com.Check("ID3D12DebugDevice::SetFeatureMask", com.Call(i.vtbl().SetFeatureMask, uintptr(unsafe.Pointer(i)), uintptr(mask)))
}

func (i *DebugDevice) GetFeatureMask() DEBUG_FEATURE {
	return DEBUG_FEATURE(com.CallRaw(i.vtbl().GetFeatureMask, uintptr(unsafe.Pointer(i))))
}

func (i *DebugDevice) ReportLiveDeviceObjects(flags RLDO_FLAGS) error {
	return com.Check("ID3D12DebugDevice::ReportLiveDeviceObjects", com.Call(i.vtbl().ReportLiveDeviceObjects, uintptr(unsafe.Pointer(i)), uintptr(flags)))
}

func (i *InfoQueue) SetMessageCountLimit(limit uint64) error {
	return com.Check("ID3D12InfoQueue::SetMessageCountLimit", com.Call(i.vtbl().SetMessageCountLimit, uintptr(unsafe.Pointer(i)), uintptr(limit)))
}

func (i *InfoQueue) ClearStoredMessages() {
	com.CallRaw(i.vtbl().ClearStoredMessages, uintptr(unsafe.Pointer(i)))
}

// GetMessage follows the native two call protocol: with a nil message only
// messageByteLength is written.
func (i *InfoQueue) GetMessage(messageIndex uint64, message *MESSAGE, messageByteLength *uintptr) error {
	return com.Check("ID3D12InfoQueue::GetMessage", com.Call(i.vtbl().GetMessage,
		uintptr(unsafe.Pointer(i)),
		uintptr(messageIndex),
		uintptr(unsafe.Pointer(message)),
		uintptr(unsafe.Pointer(messageByteLength)),
	))
}

func (i *InfoQueue) GetNumMessagesAllowedByStorageFilter() uint64 {
	return uint64(com.CallRaw(i.vtbl().GetNumMessagesAllowedByStorageFilter, uintptr(unsafe.Pointer(i))))
}

func (i *InfoQueue) GetNumMessagesDeniedByStorageFilter() uint64 {
	return uint64(com.CallRaw(i.vtbl().GetNumMessagesDeniedByStorageFilter, uintptr(unsafe.Pointer(i))))
}

func (i *InfoQueue) GetNumStoredMessages() uint64 {
	return uint64(com.CallRaw(i.vtbl().GetNumStoredMessages, uintptr(unsafe.Pointer(i))))
}

func (i *InfoQueue) GetNumStoredMessagesAllowedByRetrievalFilter() uint64 {
	return uint64(com.CallRaw(i.vtbl().GetNumStoredMessagesAllowedByRetrievalFilter, uintptr(unsafe.Pointer(i))))
}

func (i *InfoQueue) GetNumMessagesDiscardedByMessageCountLimit() uint64 {
	return uint64(com.CallRaw(i.vtbl().GetNumMessagesDiscardedByMessageCountLimit, uintptr(unsafe.Pointer(i))))
}

func (i *InfoQueue) GetMessageCountLimit() uint64 {
	return uint64(com.CallRaw(i.vtbl().GetMessageCountLimit, uintptr(unsafe.Pointer(i))))
}

func (i *InfoQueue) AddStorageFilterEntries(filter *INFO_QUEUE_FILTER) error {
	return com.Check("ID3D12InfoQueue::AddStorageFilterEntries", com.Call(i.vtbl().AddStorageFilterEntries, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(filter))))
}

func (i *InfoQueue) GetStorageFilter(filter *INFO_QUEUE_FILTER, filterByteLength *uintptr) error {
	return com.Check("ID3D12InfoQueue::GetStorageFilter", com.Call(i.vtbl().GetStorageFilter,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(filter)),
		uintptr(unsafe.Pointer(filterByteLength)),
	))
}

func (i *InfoQueue) ClearStorageFilter() {
	com.CallRaw(i.vtbl().ClearStorageFilter, uintptr(unsafe.Pointer(i)))
}

func (i *InfoQueue) PushEmptyStorageFilter() error {
	return com.Check("ID3D12InfoQueue::PushEmptyStorageFilter", com.Call(i.vtbl().PushEmptyStorageFilter, uintptr(unsafe.Pointer(i))))
}

func (i *InfoQueue) PushCopyOfStorageFilter() error {
	return com.Check("ID3D12InfoQueue::PushCopyOfStorageFilter", com.Call(i.vtbl().PushCopyOfStorageFilter, uintptr(unsafe.Pointer(i))))
}

func (i *InfoQueue) PushStorageFilter(filter *INFO_QUEUE_FILTER) error {
	return com.Check("ID3D12InfoQueue::PushStorageFilter", com.Call(i.vtbl().PushStorageFilter, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(filter))))
}

func (i *InfoQueue) PopStorageFilter() {
	com.CallRaw(i.vtbl().PopStorageFilter, uintptr(unsafe.Pointer(i)))
}

func (i *InfoQueue) GetStorageFilterStackSize() uint32 {
	return uint32(com.CallRaw(i.vtbl().GetStorageFilterStackSize, uintptr(unsafe.Pointer(i))))
}

func (i *InfoQueue) AddRetrievalFilterEntries(filter *INFO_QUEUE_FILTER) error {
	return com.Check("ID3D12InfoQueue::AddRetrievalFilterEntries", com.Call(i.vtbl().AddRetrievalFilterEntries, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(filter))))
}

func (i *InfoQueue) GetRetrievalFilter(filter *INFO_QUEUE_FILTER, filterByteLength *uintptr) error {
	return com.Check("ID3D12InfoQueue::GetRetrievalFilter", com.Call(i.vtbl().GetRetrievalFilter,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(filter)),
		uintptr(unsafe.Pointer(filterByteLength)),
	))
}

func (i *InfoQueue) ClearRetrievalFilter() {
	com.CallRaw(i.vtbl().ClearRetrievalFilter, uintptr(unsafe.Pointer(i)))
}

func (i *InfoQueue) PushEmptyRetrievalFilter() error {
	return com.Check("ID3D12InfoQueue::PushEmptyRetrievalFilter", com.Call(i.vtbl().PushEmptyRetrievalFilter, uintptr(unsafe.Pointer(i))))
}

func (i *InfoQueue) PushCopyOfRetrievalFilter() error {
	return com.Check("ID3D12InfoQueue::PushCopyOfRetrievalFilter", com.Call(i.vtbl().PushCopyOfRetrievalFilter, uintptr(unsafe.Pointer(i))))
}

func (i *InfoQueue) PushRetrievalFilter(filter *INFO_QUEUE_FILTER) error {
	return com.Check("ID3D12InfoQueue::PushRetrievalFilter", com.Call(i.vtbl().PushRetrievalFilter, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(filter))))
}

func (i *InfoQueue) PopRetrievalFilter() {
	com.CallRaw(i.vtbl().PopRetrievalFilter, uintptr(unsafe.Pointer(i)))
}

func (i *InfoQueue) GetRetrievalFilterStackSize() uint32 {
	return uint32(com.CallRaw(i.vtbl().GetRetrievalFilterStackSize, uintptr(unsafe.Pointer(i))))
}

func (i *InfoQueue) AddMessage(category MESSAGE_CATEGORY, severity MESSAGE_SEVERITY, id MESSAGE_ID, description string) error {
	description8, err := windows.BytePtrFromString(description)
	if err != nil {
		return err
	}
	return com.Check("ID3D12InfoQueue::AddMessage", com.Call(i.vtbl().AddMessage,
		uintptr(unsafe.Pointer(i)),
		uintptr(category),
		uintptr(severity),
		uintptr(id),
		uintptr(unsafe.Pointer(description8)),
	))
}

func (i *InfoQueue) AddApplicationMessage(severity MESSAGE_SEVERITY, description string) error {
	description8, err := windows.BytePtrFromString(description)
	if err != nil {
		return err
	}
	return com.Check("ID3D12InfoQueue::AddApplicationMessage", com.Call(i.vtbl().AddApplicationMessage,
		uintptr(unsafe.Pointer(i)),
		uintptr(severity),
		uintptr(unsafe.Pointer(description8)),
	))
}

func (i *InfoQueue) SetBreakOnCategory(category MESSAGE_CATEGORY, enable bool) error {
	return com.Check("ID3D12InfoQueue::SetBreakOnCategory", com.Call(i.vtbl().SetBreakOnCategory,
		uintptr(unsafe.Pointer(i)),
		uintptr(category),
		uintptr(com.BoolOf(enable)),
	))
}

func (i *InfoQueue) SetBreakOnSeverity(severity MESSAGE_SEVERITY, enable bool) error {
	return com.Check("ID3D12InfoQueue::SetBreakOnSeverity", com.Call(i.vtbl().SetBreakOnSeverity,
		uintptr(unsafe.Pointer(i)),
		uintptr(severity),
		uintptr(com.BoolOf(enable)),
	))
}

func (i *InfoQueue) SetBreakOnID(id MESSAGE_ID, enable bool) error {
	return com.Check("ID3D12InfoQueue::SetBreakOnID", com.Call(i.vtbl().SetBreakOnID,
		uintptr(unsafe.Pointer(i)),
		uintptr(id),
		uintptr(com.BoolOf(enable)),
	))
}

func (i *InfoQueue) GetBreakOnCategory(category MESSAGE_CATEGORY) bool {
	return com.Bool(com.CallRaw(i.vtbl().GetBreakOnCategory, uintptr(unsafe.Pointer(i)), uintptr(category))).Go()
}

func (i *InfoQueue) GetBreakOnSeverity(severity MESSAGE_SEVERITY) bool {
	return com.Bool(com.CallRaw(i.vtbl().GetBreakOnSeverity, uintptr(unsafe.Pointer(i)), uintptr(severity))).Go()
}

func (i *InfoQueue) GetBreakOnID(id MESSAGE_ID) bool {
	return com.Bool(com.CallRaw(i.vtbl().GetBreakOnID, uintptr(unsafe.Pointer(i)), uintptr(id))).Go()
}

func (i *InfoQueue) SetMuteDebugOutput(mute bool) {
	com.CallRaw(i.vtbl().SetMuteDebugOutput, uintptr(unsafe.Pointer(i)), uintptr(com.BoolOf(mute)))
}

func (i *InfoQueue) GetMuteDebugOutput() bool {
	return com.Bool(com.CallRaw(i.vtbl().GetMuteDebugOutput, uintptr(unsafe.Pointer(i)))).Go()
}

// RegisterMessageCallback takes a callback created with windows.NewCallback,
// context is handed back to it untouched.
func (i *InfoQueue1) RegisterMessageCallback(callback uintptr, flags MESSAGE_CALLBACK_FLAGS, context uintptr) (uint32, error) {
	var cookie uint32
	err := com.Check("ID3D12InfoQueue1::RegisterMessageCallback", com.Call(i.vtbl().RegisterMessageCallback,
		uintptr(unsafe.Pointer(i)),
		callback,
		uintptr(flags),
		context,
		uintptr(unsafe.Pointer(&cookie)),
	))
	return cookie, err
}

func (i *InfoQueue1) UnregisterMessageCallback(cookie uint32) error {
	return com.Check("ID3D12InfoQueue1::UnregisterMessageCallback", com.Call(i.vtbl().UnregisterMessageCallback,
		uintptr(unsafe.Pointer(i)),
		uintptr(cookie),
	))
}
