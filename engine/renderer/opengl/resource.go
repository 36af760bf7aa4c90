package opengl

import "github.com/spaghettifunk/oglc/engine/core"

// noCopy makes go vet's copylocks check report wrappers copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// resource owns one native object name. Zero is the sentinel: nothing is
// owned and nothing gets released.
type resource struct {
	_       noCopy
	handle  uint32
	release func(uint32)
}

func (r *resource) own(handle uint32, release func(uint32)) {
	r.handle = handle
	r.release = release
}

// Ready reports whether a native object is owned.
func (r *resource) Ready() bool {
	return r.handle != 0
}

// Handle returns the native object name.
func (r *resource) Handle() (uint32, error) {
	if !r.Ready() {
		return 0, core.ErrHandleNotAssigned
	}
	return r.handle, nil
}

// Close releases the native object. Calling it again, or on a moved-from
// value, does nothing.
func (r *resource) Close() error {
	if !r.Ready() {
		return nil
	}
	if r.release != nil {
		r.release(r.handle)
	}
	r.handle = 0
	r.release = nil
	return nil
}

func (r *resource) moveTo(dst *resource) {
	dst.handle, dst.release = r.handle, r.release
	r.handle, r.release = 0, nil
}
