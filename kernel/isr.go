package kernel

import "yak/hal"

// EnterISR increments the interrupt-nesting depth. Call near the start
// of every ISR, after whatever architecture-level context save already
// happened.
func (k *Kernel) EnterISR() {
	k.enterMutex()
	k.nesting++
	k.exitMutex()
}

// ExitISR decrements the interrupt-nesting depth and, only once it has
// returned to zero, calls Schedule — the only point at which an ISR may
// cause a preemption. Nested ISRs (spec.md §8 scenario 6) each call
// EnterISR/ExitISR; only the outermost exit reschedules.
func (k *Kernel) ExitISR() {
	k.enterMutex()
	k.nesting--
	n := k.nesting
	k.exitMutex()

	if n < 0 {
		k.reportInvariantBreach("ExitISR: nesting went negative")
		return
	}
	if n == 0 {
		k.scheduleFrom(true)
	}
}

// InterruptNesting reports the current interrupt-nesting depth. Task
// context code uses it to assert it is not being called from an ISR
// (SemPend requires exactly this).
func (k *Kernel) InterruptNesting() int32 {
	k.enterMutex()
	defer k.exitMutex()
	return k.nesting
}

// TickISR is the thin wrapper a clock interrupt calls: enter, process
// the tick (counter, delayed-list expiry), run the tick hook if any,
// signal end-of-interrupt to the controller, exit. Grounded in the
// original source's YKResetHandler shape — a tiny ISR body bracketed by
// enter/exit — generalized so the periodic-work step is a caller-supplied
// hook rather than hard-coded kernel behavior. spec.md §4.8 requires the
// end-of-interrupt signal to reach the controller before exit_isr runs,
// so it happens here, not inside ExitISR, which has no HAL reference.
func TickISR(k *Kernel, ic hal.InterruptController) {
	k.EnterISR()
	k.HandleTick()
	if hook := k.TickHook(); hook != nil {
		hook(k.TickCount())
	}
	if ic != nil {
		ic.SignalEOI()
	}
	k.ExitISR()
}

// KeyISR is the thin wrapper a key-press interrupt calls: enter, run the
// caller-supplied handler, signal end-of-interrupt, exit. Grounded in the
// original source's YKKeyHandler shape, generalized the same way TickISR
// generalizes YKTickHandler.
func KeyISR(k *Kernel, ic hal.InterruptController, handler func()) {
	k.EnterISR()
	if handler != nil {
		handler()
	}
	if ic != nil {
		ic.SignalEOI()
	}
	k.ExitISR()
}
