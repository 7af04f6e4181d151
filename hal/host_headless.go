//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// RunHeadless drives a tick source without opening a window, for CI and for
// the non-interactive demo path. build receives the HAL so the caller can
// wire a kernel to it, and returns the tick callback the loop should drive.
// Ticks are consumed from h.Clock().Ticks() rather than a private timer, so
// the Clock collaborator is genuinely exercised through its own interface.
// It ticks at hz and stops after ctx is cancelled or, if ticks > 0, after
// that many ticks.
func RunHeadless(ctx context.Context, build func(HAL) (onTick func()), hz int, ticks uint64) error {
	if hz <= 0 {
		hz = 1000
	}
	d := time.Second / time.Duration(hz)
	if d <= 0 {
		return fmt.Errorf("hal: invalid tick rate %dHz", hz)
	}

	h := New(d)
	onTick := build(h)
	clockTicks := h.Clock().Ticks()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clockTicks:
			if onTick != nil {
				onTick()
			}
			n++
			if ticks > 0 && n >= ticks {
				return nil
			}
		}
	}
}
