//go:build !tinygo

package hal

import "time"

// hostClock derives ticks from the wall clock. It self-drives on its own
// goroutine, the same shape as tinyGoClock, so both Clock implementations
// are genuinely consumed through Ticks() rather than a host-only side
// channel.
type hostClock struct {
	ch  chan uint64
	seq uint64
}

func newHostClock(tickDur time.Duration) *hostClock {
	c := &hostClock{ch: make(chan uint64, 1024)}
	t := time.NewTicker(tickDur)
	go func() {
		for range t.C {
			c.seq++
			select {
			case c.ch <- c.seq:
			default:
			}
		}
	}()
	return c
}

func (c *hostClock) Ticks() <-chan uint64 { return c.ch }
