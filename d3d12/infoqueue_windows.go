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
	"sync"
	"unsafe"

	"goarrg.com/rhi/dxr/com"
	"goarrg.com/rhi/dxr/internal/util"
	"golang.org/x/sys/windows"
)

var messageCallback = struct {
	once  sync.Once
	fn    uintptr
	mtx   sync.Mutex
	next  uintptr
	sinks map[uintptr]*messageSink
}{
	sinks: map[uintptr]*messageSink{},
}

func goMessageCallback(category, severity, id uintptr, description *byte, context uintptr) uintptr {
	messageCallback.mtx.Lock()
	sink := messageCallback.sinks[context]
	messageCallback.mtx.Unlock()

	if sink != nil {
		sink.log(MESSAGE_CATEGORY(category), MESSAGE_SEVERITY(severity), MESSAGE_ID(id), windows.BytePtrToString(description))
	}
	return 0
}

// InfoQueueLogger forwards a device's debug layer messages to the package
// logger. Runtimes with ID3D12InfoQueue1 deliver messages through a callback,
// older ones store them until DrainMessages is called.
type InfoQueueLogger struct {
	noCopy util.NoCopy
	queue  *InfoQueue
	queue1 *InfoQueue1
	cookie uint32
	key    uintptr
	sink   *messageSink
	buf    []uint64
}

// newInfoQueueLogger returns nil without error when the debug layer is not
// enabled on device.
func newInfoQueueLogger(device *Device, config Config) (*InfoQueueLogger, error) {
	queue, err := com.As[InfoQueue](unsafe.Pointer(device), &IID_ID3D12InfoQueue)
	if err != nil {
		instance.logger.VPrintf("No info queue: %s", err)
		return nil, nil
	}

	l := &InfoQueueLogger{
		queue: queue,
		sink:  newMessageSink(instance.logger, config.DenyMessageIDs),
	}
	l.noCopy.Init()

	for _, severity := range config.BreakOnSeverity {
		if err := queue.SetBreakOnSeverity(severity, true); err != nil {
			l.Close()
			return nil, err
		}
	}

	if len(config.DenyMessageIDs) > 0 {
		filter := INFO_QUEUE_FILTER{
			DenyList: INFO_QUEUE_FILTER_DESC{
				NumIDs:  uint32(len(config.DenyMessageIDs)),
				PIDList: unsafe.SliceData(config.DenyMessageIDs),
			},
		}
		if err := queue.PushStorageFilter(&filter); err != nil {
			l.Close()
			return nil, err
		}
	}

	if !config.LogMessages {
		return l, nil
	}

	queue1, err := com.As[InfoQueue1](unsafe.Pointer(device), &IID_ID3D12InfoQueue1)
	if err != nil {
		instance.logger.VPrintf("No message callback support, call DrainMessages to log: %s", err)
		return l, nil
	}

	messageCallback.once.Do(func() {
		messageCallback.fn = windows.NewCallback(goMessageCallback)
	})

	messageCallback.mtx.Lock()
	messageCallback.next++
	l.key = messageCallback.next
	messageCallback.sinks[l.key] = l.sink
	messageCallback.mtx.Unlock()

	cookie, err := queue1.RegisterMessageCallback(messageCallback.fn, MESSAGE_CALLBACK_FLAG_NONE, l.key)
	if err != nil {
		queue1.Release()
		l.Close()
		return nil, err
	}
	l.queue1 = queue1
	l.cookie = cookie

	return l, nil
}

func (l *InfoQueueLogger) InfoQueue() *InfoQueue {
	l.noCopy.Check()
	return l.queue
}

// DrainMessages logs and clears the stored messages, returning how many were
// logged. With a registered callback the store is normally empty.
func (l *InfoQueueLogger) DrainMessages() int {
	l.noCopy.Check()
	logged := 0
	count := l.queue.GetNumStoredMessagesAllowedByRetrievalFilter()

	for i := uint64(0); i < count; i++ {
		var length uintptr
		if err := l.queue.GetMessage(i, nil, &length); err != nil || length == 0 {
			instance.logger.WPrintf("Failed to get message %d size: %v", i, err)
			continue
		}

		l.buf = growSlice(l.buf[:0], int((length+7)/8))
		msg := (*MESSAGE)(unsafe.Pointer(unsafe.SliceData(l.buf)))
		if err := l.queue.GetMessage(i, msg, &length); err != nil {
			instance.logger.WPrintf("Failed to get message %d: %s", i, err)
			continue
		}

		description := ""
		if msg.PDescription != nil && msg.DescriptionByteLength > 0 {
			description = string(unsafe.Slice(msg.PDescription, msg.DescriptionByteLength-1))
		}
		if l.sink.log(msg.Category, msg.Severity, msg.ID, description) {
			logged++
		}
	}

	l.queue.ClearStoredMessages()
	return logged
}

func (l *InfoQueueLogger) Close() {
	if l.queue == nil {
		return
	}
	l.noCopy.Check()
	if l.queue1 != nil {
		if err := l.queue1.UnregisterMessageCallback(l.cookie); err != nil {
			instance.logger.WPrintf("%s", err)
		}
		l.queue1.Release()
		l.queue1 = nil
	}
	if l.key != 0 {
		messageCallback.mtx.Lock()
		delete(messageCallback.sinks, l.key)
		messageCallback.mtx.Unlock()
		l.key = 0
	}
	l.queue.Release()
	l.queue = nil
	l.noCopy.Close()
}
