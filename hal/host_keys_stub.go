//go:build !tinygo && !cgo

package hal

import "errors"

// hostKeys without cgo delivers no events; ebiten needs a native windowing
// backend that cgo provides.
type hostKeys struct {
	ch chan KeyEvent
}

func newHostKeys() *hostKeys {
	return &hostKeys{ch: make(chan KeyEvent)}
}

func (k *hostKeys) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeys) poll() {}

// RunWindow is unavailable in a cgo-free build.
func RunWindow(build func(HAL) (onTick func(), onKey func(KeyEvent))) error {
	_ = build
	return errors.New("hal: window mode requires cgo (build with CGO_ENABLED=1)")
}
