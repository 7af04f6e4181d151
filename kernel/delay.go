package kernel

// DelayTask removes the caller from the ready list, stores its absolute
// delay (insertDelayed converts it to delta form), inserts it into the
// delayed list, and reschedules. Tasks may only delay themselves; ticks
// must be at least 1.
func (k *Kernel) DelayTask(ticks uint32) {
	if ticks == 0 {
		k.reportInvalidArgument("DelayTask: ticks must be >= 1")
		return
	}

	k.enterMutex()
	t := k.current
	if t == k.idle {
		k.reportInvariantBreach("DelayTask: idle task must never be delayed")
		k.exitMutex()
		return
	}
	k.removeReady(t)
	k.insertDelayed(t, ticks)
	k.exitMutex()

	k.Schedule()
}

// HandleTick decrements the delayed list's head and promotes every entry
// that has now expired. It does not itself reschedule or run the tick
// hook — TickISR in isr.go sequences those around it exactly the way
// enter_isr/exit_isr bracket the rest of an ISR body.
func (k *Kernel) HandleTick() {
	k.enterMutex()
	k.tickNum++
	k.tickDelayed()
	k.exitMutex()
}

// SetTickHook installs fn to run once per tick, after expiry processing
// and before exit_isr — the Go-native replacement for the original
// YKTickHandler's hard-coded periodic message post (see DESIGN.md).
// Pass nil to remove a previously installed hook.
func (k *Kernel) SetTickHook(fn func(tick uint64)) {
	k.enterMutex()
	k.tickHook = fn
	k.exitMutex()
}

// TickHook returns the currently installed tick hook, or nil.
func (k *Kernel) TickHook() func(tick uint64) {
	k.enterMutex()
	defer k.exitMutex()
	return k.tickHook
}

// TickCount reports the number of ticks processed so far.
func (k *Kernel) TickCount() uint64 {
	k.enterMutex()
	defer k.exitMutex()
	return k.tickNum
}
