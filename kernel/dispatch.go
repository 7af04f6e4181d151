package kernel

// Dispatcher is the one place the kernel touches the architecture: the
// opaque dispatch_to(current, next) primitive spec.md §1 leaves to the
// target. fromISR tells the implementation whether the call originated
// from task context (the caller's own stack must be preserved so it can
// resume later) or from the outermost exit_isr (the caller is already on
// the interrupt stack and is not a task that needs to be parked).
type Dispatcher interface {
	DispatchTo(old, new *TCB, fromISR bool)
}

// DispatchRecord is one entry in a RecordingDispatcher's log.
type DispatchRecord struct {
	From, To TaskID
	FromISR  bool
}

// RecordingDispatcher drives no real concurrency: it just records which
// switch happened, in what order, and whether it was ISR-attributed.
// Tests use it to exercise the kernel through direct, sequential method
// calls and assert on exactly the handoffs spec.md's scenarios describe,
// without needing a live goroutine per task.
type RecordingDispatcher struct {
	Switches []DispatchRecord
}

func (d *RecordingDispatcher) DispatchTo(old, new *TCB, fromISR bool) {
	d.Switches = append(d.Switches, DispatchRecord{From: old.id, To: new.id, FromISR: fromISR})
}

// Last returns the most recent recorded switch, or the zero value if
// none has happened yet.
func (d *RecordingDispatcher) Last() DispatchRecord {
	if len(d.Switches) == 0 {
		return DispatchRecord{}
	}
	return d.Switches[len(d.Switches)-1]
}
