package kernel

import "fmt"

// NewTask allocates a TCB, wires its entry point, and inserts it into
// the ready list. If the kernel has already started, it reschedules —
// the new task may preempt the caller if it outranks it. priority must
// not be LowestPriority, which is reserved for the idle task.
func (k *Kernel) NewTask(entry func(), priority Priority, name string) (*TCB, error) {
	if priority == k.lowestPriority {
		return nil, fmt.Errorf("kernel: NewTask: priority %d is reserved for the idle task", priority)
	}

	k.enterMutex()
	t, err := k.newTaskLocked(entry, priority, name)
	k.exitMutex()
	if err != nil {
		return nil, err
	}

	if k.started {
		k.Schedule()
	}
	return t, nil
}

// newTaskLocked is NewTask's body, callable while the critical section
// is already held (Initialize uses it to create the idle task before
// the kernel has started).
func (k *Kernel) newTaskLocked(entry func(), priority Priority, name string) (*TCB, error) {
	t, err := k.tasks.alloc()
	if err != nil {
		return nil, err
	}

	k.nextID++
	t.id = k.nextID
	t.priority = priority
	t.entry = entry
	t.name = name
	t.resume = make(chan struct{})

	k.insertReady(t)

	if gd, ok := k.dispatcher.(*GoroutineDispatcher); ok {
		gd.spawn(t)
	}

	return t, nil
}

// Run starts the kernel: marks it started and calls Schedule. With a
// GoroutineDispatcher it never returns — the first dispatch hands control
// to the highest-priority ready task, and this call parks forever on the
// dummy TCB's nil resume channel (a nil channel receive blocks forever).
// With a RecordingDispatcher the first dispatch is only recorded and Run
// returns.
func (k *Kernel) Run() {
	k.enterMutex()
	k.started = true
	k.exitMutex()
	k.Schedule()
}

// IdleLoop is the idle task body: disable interrupts, increment the
// idle counter, re-enable, forever. Disabling around the increment keeps
// a tick ISR that samples idleCount for CPU utilization from observing a
// torn value.
func (k *Kernel) IdleLoop() {
	for {
		k.enterMutex()
		k.idleCount++
		k.exitMutex()
	}
}
