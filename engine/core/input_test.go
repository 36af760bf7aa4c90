package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputKeyTransitions(t *testing.T) {
	withEventSystem(t)
	require.NoError(t, InputInitialize())
	t.Cleanup(func() { _ = InputShutdown() })

	var pressed []KeyCode
	EventRegister(EVENT_CODE_KEY_PRESSED, t, func(ctx EventContext) bool {
		pressed = append(pressed, ctx.Data.(*KeyEvent).KeyCode)
		return true
	})

	require.NoError(t, InputProcessKey(KEY_ESCAPE, true))
	// repeated state does not post a second event
	require.NoError(t, InputProcessKey(KEY_ESCAPE, true))
	assert.True(t, InputIsKeyDown(KEY_ESCAPE))
	assert.False(t, InputWasKeyDown(KEY_ESCAPE))

	EventProcess()
	assert.Equal(t, []KeyCode{KEY_ESCAPE}, pressed)

	require.NoError(t, InputUpdate(0))
	assert.True(t, InputWasKeyDown(KEY_ESCAPE))

	require.NoError(t, InputProcessKey(KEY_ESCAPE, false))
	assert.True(t, InputIsKeyUp(KEY_ESCAPE))
	assert.False(t, InputIsKeyDown(KEYS_MAX_KEYS))
}

func TestInputMouse(t *testing.T) {
	withEventSystem(t)
	require.NoError(t, InputInitialize())
	t.Cleanup(func() { _ = InputShutdown() })

	require.NoError(t, InputProcessButton(BUTTON_LEFT, true))
	require.NoError(t, InputProcessMouseMove(10, 20))
	assert.True(t, InputIsButtonDown(BUTTON_LEFT))
	x, y := InputGetMousePosition()
	assert.Equal(t, int32(10), x)
	assert.Equal(t, int32(20), y)
	assert.Equal(t, 2, EventProcess())
}
