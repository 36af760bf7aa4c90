package engine

import "github.com/spaghettifunk/oglc/engine/core"

type Game struct {
	Config *core.Config
	// Systems is filled in by the engine before FnInitialize runs.
	Systems *Systems
	State   interface{}

	FnInitialize     Initialize
	FnUpdate         Update
	FnRender         Render
	FnOnResize       OnResize
	FnOnAssetChanged OnAssetChanged
	FnShutdown       Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error

// Render runs after the frame is cleared and before buffers are swapped.
type Render func(deltaTime float64) error
type OnResize func(width uint32, height uint32) error

// OnAssetChanged receives the path of a watched file that was written.
type OnAssetChanged func(path string) error
type Shutdown func() error
