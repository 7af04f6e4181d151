package kernel

import "yak/hal"

const (
	DefaultMaxTasks       = 32
	DefaultMaxSemaphores  = 16
	DefaultMaxQueues      = 16
	DefaultLowestPriority = Priority(255)
)

type config struct {
	maxTasks       int
	maxSemaphores  int
	maxQueues      int
	lowestPriority Priority
	strict         bool
	dispatcher     Dispatcher
}

// Option configures a Kernel at construction time.
type Option func(*config)

func WithDispatcher(d Dispatcher) Option   { return func(c *config) { c.dispatcher = d } }
func WithMaxTasks(n int) Option            { return func(c *config) { c.maxTasks = n } }
func WithMaxSemaphores(n int) Option       { return func(c *config) { c.maxSemaphores = n } }
func WithMaxQueues(n int) Option           { return func(c *config) { c.maxQueues = n } }
func WithLowestPriority(p Priority) Option { return func(c *config) { c.lowestPriority = p } }

// WithStrict makes invariant breaches panic instead of only being logged,
// matching spec.md §7's suggestion that a modern rewrite turn invariant
// breaches into assertions / debug traps.
func WithStrict(strict bool) Option { return func(c *config) { c.strict = strict } }

// Kernel is the single owning structure for all process-wide state
// spec.md §3 describes: pools, lists, the current-task pointer, and the
// counters. Packaging it this way (per spec.md §9's design note) makes
// every kernel operation a method on one value instead of a scatter of
// globals.
type Kernel struct {
	critSection

	logger hal.Logger
	strict bool

	tasks  pool[TCB]
	sems   pool[Semaphore]
	queues pool[Queue]

	readyHead, readyTail     *TCB
	delayedHead, delayedTail *TCB

	current *TCB
	dummy   TCB
	idle    *TCB

	dispatcher Dispatcher

	ctxSwitches uint64
	idleCount   uint64
	tickNum     uint64
	nesting     int32
	started     bool

	tickHook func(tick uint64)

	nextID         TaskID
	lowestPriority Priority
}

// NewKernel constructs a Kernel with the given diagnostic sink and
// options. logger may be nil to discard diagnostics.
func NewKernel(logger hal.Logger, opts ...Option) *Kernel {
	cfg := config{
		maxTasks:       DefaultMaxTasks,
		maxSemaphores:  DefaultMaxSemaphores,
		maxQueues:      DefaultMaxQueues,
		lowestPriority: DefaultLowestPriority,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.dispatcher == nil {
		cfg.dispatcher = &RecordingDispatcher{}
	}

	return &Kernel{
		logger:         logger,
		strict:         cfg.strict,
		dispatcher:     cfg.dispatcher,
		lowestPriority: cfg.lowestPriority,
		tasks:          newPool[TCB](cfg.maxTasks, "task"),
		sems:           newPool[Semaphore](cfg.maxSemaphores, "semaphore"),
		queues:         newPool[Queue](cfg.maxQueues, "queue"),
	}
}

// LowestPriority reports the priority value reserved for the idle task.
func (k *Kernel) LowestPriority() Priority { return k.lowestPriority }

// Initialize must be called exactly once, before any task runs. It
// creates the idle task at LowestPriority and points current at a dummy
// TCB, fully allocated with a sentinel id distinct from any real task
// (spec.md §9 open question 1: the original dereferences an unallocated
// pointer here; this port always has a real, zero-valued TCB to point
// at) so the first Schedule call unconditionally dispatches.
func (k *Kernel) Initialize(idleEntry func()) error {
	k.enterMutex()

	k.dummy = TCB{id: -1, priority: k.lowestPriority}
	k.current = &k.dummy

	idle, err := k.newTaskLocked(idleEntry, k.lowestPriority, "idle")
	if err != nil {
		k.exitMutex()
		return err
	}
	k.idle = idle

	k.exitMutex()
	return nil
}

// Schedule is the only place that decides to context-switch: compare the
// ready head to current and, on mismatch, invoke the dispatcher. Callers
// must not hold the critical section: Schedule takes it itself for the
// comparison and releases it before the (possibly blocking) dispatcher
// call, matching the original's note
// that the dispatcher itself is what restores interrupts for the task it
// is about to run.
func (k *Kernel) Schedule() {
	k.scheduleFrom(false)
}

// scheduleFrom is Schedule's body. fromISR is threaded through explicitly
// rather than inferred from the current nesting depth: by the time
// ExitISR calls this (the one call site where fromISR is true), nesting
// has already been decremented back to zero, so the depth itself can no
// longer distinguish the two cases.
func (k *Kernel) scheduleFrom(fromISR bool) {
	k.enterMutex()

	if k.readyHead == nil {
		k.reportInvariantBreach("Schedule: ready list must never be empty")
		k.exitMutex()
		return
	}

	old := k.current
	next := k.readyHead
	if next.id == old.id {
		k.exitMutex()
		return
	}

	k.ctxSwitches++
	k.current = next
	k.exitMutex()

	k.dispatcher.DispatchTo(old, next, fromISR)
}

// CurrentTask reports the task the scheduler last dispatched to.
func (k *Kernel) CurrentTask() *TCB {
	k.enterMutex()
	defer k.exitMutex()
	return k.current
}

// ReadyHead reports the head of the ready list, for diagnostics and
// tests asserting current_task == ready_head.
func (k *Kernel) ReadyHead() *TCB {
	k.enterMutex()
	defer k.exitMutex()
	return k.readyHead
}

// ContextSwitches reports the running count of dispatcher invocations.
func (k *Kernel) ContextSwitches() uint64 {
	k.enterMutex()
	defer k.exitMutex()
	return k.ctxSwitches
}

// IdleCount reports the idle task's utilization counter.
func (k *Kernel) IdleCount() uint64 {
	k.enterMutex()
	defer k.exitMutex()
	return k.idleCount
}
