// Package hal defines the external collaborators a yak kernel instance
// needs from its target: a diagnostic sink, a tick source, an interrupt
// controller to acknowledge, and a source of asynchronous key-press events
// to drive a demo ISR. Register save/restore and stack switching stay
// inside the Dispatcher the kernel package is handed at construction time;
// HAL only supplies the inputs a kernel simulation needs to look alive.
package hal

// Logger is the kernel's one diagnostic channel (spec §7): every
// programmer-error report the core surfaces goes through it rather than a
// bare println, so a caller can redirect it to a console, a ring buffer, or
// /dev/null.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Clock is a tick source. Ticks are platform-defined in duration; the
// kernel only cares that they arrive in order, one at a time.
type Clock interface {
	Ticks() <-chan uint64
}

// KeyCode identifies a key independent of platform scancode.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is a single key transition.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// KeyInput is a source of asynchronous key events, standing in for the
// keyboard-interrupt source spec §1 assumes is present on the target.
type KeyInput interface {
	Events() <-chan KeyEvent
}

// InterruptController is the peripheral a tick or key ISR must acknowledge
// before it returns control to the interrupted task — the end-of-interrupt
// step spec §4.8 requires and the original's dispatch_to never models,
// since on real hardware it lives in a separate register, not the
// dispatcher. Grounded on the register-mapped interrupt controller pattern
// (IRQRegisterMap.EnableIRQs1 and friends).
type InterruptController interface {
	SignalEOI()
}

// HAL bundles the collaborators a yak demo needs. A target need not
// implement all of it faithfully: KeyInput may deliver nothing.
type HAL interface {
	Logger() Logger
	Clock() Clock
	InterruptController() InterruptController
	KeyInput() KeyInput
}
