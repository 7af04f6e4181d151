//go:build tinygo

package hal

import "time"

// tinyGoClock emits ticks on a fixed period using the target's monotonic
// clock. TinyGo's goroutine scheduler cooperates with real interrupts
// (UART, GPIO) the way the teacher's tinygo.go already assumes, so a
// sleeping goroutine is a faithful enough stand-in for a hardware timer
// IRQ without committing to one board's timer peripheral API.
type tinyGoClock struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoClock(period time.Duration) *tinyGoClock {
	c := &tinyGoClock{ch: make(chan uint64, 64)}
	go func() {
		for {
			time.Sleep(period)
			c.seq++
			select {
			case c.ch <- c.seq:
			default:
			}
		}
	}()
	return c
}

func (c *tinyGoClock) Ticks() <-chan uint64 { return c.ch }
