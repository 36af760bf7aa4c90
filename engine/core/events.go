package core

import (
	"sync"

	"github.com/spaghettifunk/oglc/engine/containers"
)

// System internal event codes. Application should use codes beyond 255.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01
	// Keyboard key pressed. Data is *KeyEvent.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02
	// Keyboard key released. Data is *KeyEvent.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03
	// Mouse button pressed. Data is *MouseEvent.
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04
	// Mouse button released. Data is *MouseEvent.
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05
	// Mouse moved. Data is *MouseEvent.
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06
	// Mouse wheel. Data is *MouseEvent.
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07
	// Framebuffer resized. Data is *SystemEvent.
	EVENT_CODE_RESIZED EventCode = 0x08
	// A watched asset changed on disk. Data is *AssetEvent.
	EVENT_CODE_ASSET_CHANGED EventCode = 0x09

	MAX_EVENT_CODE EventCode = 0xFF
)

// Capacity of the deferred event queue.
const EVENT_QUEUE_SIZE = 1024

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

type MouseEvent struct {
	Button Button
	PosX   uint16
	PosY   uint16
	Scroll int8
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type AssetEvent struct {
	Path string
}

// FnOnEvent handles one event. Returning true marks it handled and stops
// delivery to later listeners.
type FnOnEvent func(context EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

type eventSystemState struct {
	mu         sync.Mutex
	registered map[EventCode][]registeredEvent
	queue      *containers.RingQueue[EventContext]
}

var eventState *eventSystemState = nil

func EventSystemInitialize() bool {
	if eventState != nil {
		return false
	}
	eventState = &eventSystemState{
		registered: make(map[EventCode][]registeredEvent),
		queue:      containers.NewRingQueue[EventContext](EVENT_QUEUE_SIZE),
	}
	return true
}

func EventSystemShutdown() error {
	eventState = nil
	return nil
}

// EventRegister adds a callback for code. A listener may only register once
// per code; duplicates return false.
func EventRegister(code EventCode, listener interface{}, onEvent FnOnEvent) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()

	for _, e := range eventState.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	eventState.registered[code] = append(eventState.registered[code], registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

// EventUnregister removes the registration of listener for code.
func EventUnregister(code EventCode, listener interface{}) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()

	events := eventState.registered[code]
	for i, e := range events {
		if e.listener == listener {
			eventState.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	return false
}

// EventFire delivers context to the listeners of its code immediately.
// It returns true if a listener handled it.
func EventFire(context EventContext) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.Lock()
	events := make([]registeredEvent, len(eventState.registered[context.Type]))
	copy(events, eventState.registered[context.Type])
	eventState.mu.Unlock()

	for _, e := range events {
		if e.callback(context) {
			return true
		}
	}
	return false
}

// EventPost queues context until the next EventProcess. Platform callbacks
// use it so listeners run at a fixed point of the frame.
func EventPost(context EventContext) error {
	if eventState == nil {
		return nil
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	return eventState.queue.Enqueue(context)
}

// EventProcess fires every queued event in posting order and returns how
// many were delivered.
func EventProcess() int {
	if eventState == nil {
		return 0
	}
	n := 0
	for {
		eventState.mu.Lock()
		context, err := eventState.queue.Dequeue()
		eventState.mu.Unlock()
		if err != nil {
			return n
		}
		EventFire(context)
		n++
	}
}
