//go:build tinygo

package hal

import (
	"machine"
	"time"
)

type tinyGoHAL struct {
	logger *uartLogger
	clock  *tinyGoClock
	ic     *tinyGoInterruptController
	keys   *tinyGoKeys
}

// New returns a bare-metal HAL implementation: UART0 for diagnostics, a
// software tick firing every tickPeriod, and a single GPIO pin as the
// key-interrupt source. UART wiring matches the teacher's hal/tinygo.go
// exactly (UART0 on GP0/GP1, 115200 8N1).
func New(tickPeriod time.Duration) HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		clock:  newTinyGoClock(tickPeriod),
		ic:     &tinyGoInterruptController{},
		keys:   newTinyGoKeys(machine.GP2),
	}
}

func (h *tinyGoHAL) Logger() Logger                           { return h.logger }
func (h *tinyGoHAL) Clock() Clock                             { return h.clock }
func (h *tinyGoHAL) InterruptController() InterruptController { return h.ic }
func (h *tinyGoHAL) KeyInput() KeyInput                       { return h.keys }

// tinyGoInterruptController stands in for the target's NVIC-equivalent
// and does not touch any pending-interrupt flag: it is an increment-only
// counter rather
// than a board-specific register poke, since this module targets TinyGo's
// portable machine package rather than one chip's interrupt controller.
type tinyGoInterruptController struct {
	eois uint64
}

func (c *tinyGoInterruptController) SignalEOI() {
	c.eois++
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	l.uart.Write([]byte(s))
	l.uart.Write([]byte("\r\n"))
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.uart.Write(b)
	l.uart.Write([]byte("\r\n"))
}
