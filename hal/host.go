//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

type hostHAL struct {
	logger *hostLogger
	clock  *hostClock
	ic     *hostInterruptController
	keys   *hostKeys
}

// New returns a host HAL implementation: a stdout logger, a wall-clock tick
// source firing every tickPeriod, and (when built with cgo) a real keyboard.
func New(tickPeriod time.Duration) HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		clock:  newHostClock(tickPeriod),
		ic:     &hostInterruptController{},
		keys:   newHostKeys(),
	}
}

func (h *hostHAL) Logger() Logger                           { return h.logger }
func (h *hostHAL) Clock() Clock                             { return h.clock }
func (h *hostHAL) InterruptController() InterruptController { return h.ic }
func (h *hostHAL) KeyInput() KeyInput                       { return h.keys }

// hostInterruptController stands in for a real register-mapped controller:
// there is no physical IRQ line to acknowledge on a simulated host, so
// SignalEOI only counts acknowledgements, but it is a real collaborator
// TickISR/KeyISR genuinely call rather than a step they silently skip.
type hostInterruptController struct {
	mu   sync.Mutex
	eois uint64
}

func (c *hostInterruptController) SignalEOI() {
	c.mu.Lock()
	c.eois++
	c.mu.Unlock()
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
