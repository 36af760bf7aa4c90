package core

import "sync"

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// Key codes follow the virtual-key numbering, so letters and digits match
// their ASCII values.
type KeyCode uint16

const (
	KEY_UNKNOWN   KeyCode = 0x00
	KEY_BACKSPACE KeyCode = 0x08
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_0         KeyCode = 0x30
	KEY_9         KeyCode = 0x39
	KEY_A         KeyCode = 0x41
	KEY_R         KeyCode = 0x52
	KEY_W         KeyCode = 0x57
	KEY_Z         KeyCode = 0x5A
	KEY_F1        KeyCode = 0x70
	KEY_F12       KeyCode = 0x7B
	KEY_LSHIFT    KeyCode = 0xA0
	KEY_RSHIFT    KeyCode = 0xA1
	KEY_LCONTROL  KeyCode = 0xA2
	KEY_RCONTROL  KeyCode = 0xA3
	KEYS_MAX_KEYS KeyCode = 0x100
)

type MouseState struct {
	X       uint16
	Y       uint16
	Buttons [BUTTON_MAX_BUTTONS]bool
}

type KeyboardState struct {
	Keys [KEYS_MAX_KEYS]bool
}

// InputState holds the current and previous frame's keyboard and mouse state.
type InputState struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
	MouseCurrent     MouseState
	MousePrevious    MouseState
}

var inputMu sync.RWMutex
var inputState *InputState = nil

func InputInitialize() error {
	inputMu.Lock()
	inputState = &InputState{}
	inputMu.Unlock()
	LogDebug("Input subsystem initialized.")
	return nil
}

func InputShutdown() error {
	inputMu.Lock()
	inputState = nil
	inputMu.Unlock()
	return nil
}

// InputUpdate copies the current state into the previous one. It runs as
// the last step of a frame.
func InputUpdate(deltaTime float64) error {
	inputMu.Lock()
	defer inputMu.Unlock()
	if inputState == nil {
		return nil
	}
	inputState.KeyboardPrevious = inputState.KeyboardCurrent
	inputState.MousePrevious = inputState.MouseCurrent
	return nil
}

func InputIsKeyDown(key KeyCode) bool {
	inputMu.RLock()
	defer inputMu.RUnlock()
	if inputState == nil || key >= KEYS_MAX_KEYS {
		return false
	}
	return inputState.KeyboardCurrent.Keys[key]
}

func InputIsKeyUp(key KeyCode) bool {
	return !InputIsKeyDown(key)
}

func InputWasKeyDown(key KeyCode) bool {
	inputMu.RLock()
	defer inputMu.RUnlock()
	if inputState == nil || key >= KEYS_MAX_KEYS {
		return false
	}
	return inputState.KeyboardPrevious.Keys[key]
}

func InputWasKeyUp(key KeyCode) bool {
	return !InputWasKeyDown(key)
}

// InputProcessKey records a key transition and posts a key event when the
// state actually changed.
func InputProcessKey(key KeyCode, pressed bool) error {
	inputMu.Lock()
	if inputState == nil || key >= KEYS_MAX_KEYS || inputState.KeyboardCurrent.Keys[key] == pressed {
		inputMu.Unlock()
		return nil
	}
	inputState.KeyboardCurrent.Keys[key] = pressed
	inputMu.Unlock()

	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}
	return EventPost(EventContext{
		Type: code,
		Data: &KeyEvent{KeyCode: key},
	})
}

func InputIsButtonDown(button Button) bool {
	inputMu.RLock()
	defer inputMu.RUnlock()
	if inputState == nil || button >= BUTTON_MAX_BUTTONS {
		return false
	}
	return inputState.MouseCurrent.Buttons[button]
}

func InputGetMousePosition() (int32, int32) {
	inputMu.RLock()
	defer inputMu.RUnlock()
	if inputState == nil {
		return 0, 0
	}
	return int32(inputState.MouseCurrent.X), int32(inputState.MouseCurrent.Y)
}

func InputProcessButton(button Button, pressed bool) error {
	inputMu.Lock()
	if inputState == nil || button >= BUTTON_MAX_BUTTONS || inputState.MouseCurrent.Buttons[button] == pressed {
		inputMu.Unlock()
		return nil
	}
	inputState.MouseCurrent.Buttons[button] = pressed
	inputMu.Unlock()

	code := EVENT_CODE_BUTTON_RELEASED
	if pressed {
		code = EVENT_CODE_BUTTON_PRESSED
	}
	return EventPost(EventContext{
		Type: code,
		Data: &MouseEvent{Button: button},
	})
}

func InputProcessMouseMove(x uint16, y uint16) error {
	inputMu.Lock()
	if inputState == nil || (inputState.MouseCurrent.X == x && inputState.MouseCurrent.Y == y) {
		inputMu.Unlock()
		return nil
	}
	inputState.MouseCurrent.X = x
	inputState.MouseCurrent.Y = y
	inputMu.Unlock()

	return EventPost(EventContext{
		Type: EVENT_CODE_MOUSE_MOVED,
		Data: &MouseEvent{PosX: x, PosY: y},
	})
}
