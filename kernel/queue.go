package kernel

import "fmt"

// Queue is a bounded circular message queue (spec.md §3). buffer is
// allocated once at creation time and never resized; msg values are
// caller-defined, carried as opaque any payloads the way the original
// carries opaque message pointers.
type Queue struct {
	buffer  []any
	head    int
	tail    int
	count   int
	pending *TCB
}

// QueueCreate allocates a queue of the given capacity, which must be at
// least 1.
func (k *Kernel) QueueCreate(capacity int) (*Queue, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("kernel: QueueCreate: capacity must be >= 1, got %d", capacity)
	}

	k.enterMutex()
	defer k.exitMutex()

	q, err := k.queues.alloc()
	if err != nil {
		return nil, err
	}
	q.buffer = make([]any, capacity)
	q.head, q.tail, q.count = 0, 0, 0
	q.pending = nil
	return q, nil
}

// QueuePost stores msg if the queue has room, returning false without
// side effect if it is full. Callable from task, handler, or ISR
// context; it reschedules only when it wakes a waiter and is running in
// task context, matching spec.md §4.7 exactly.
func (k *Kernel) QueuePost(q *Queue, msg any) bool {
	k.enterMutex()

	if q.count == len(q.buffer) {
		k.exitMutex()
		return false
	}

	q.buffer[q.tail] = msg
	q.tail = (q.tail + 1) % len(q.buffer)
	q.count++

	woke := false
	if q.pending != nil {
		t := removePendingHead(&q.pending)
		k.insertReady(t)
		woke = true
	}

	nested := k.nesting != 0
	k.exitMutex()

	if woke && !nested {
		k.Schedule()
	}
	return true
}

// QueuePend blocks the calling task until a message is available, then
// returns it. Task context only. Open question 4 in spec.md §9: the
// cursor read after a possible block is only safe because every wakeup
// path leaves count > 0 — here that's enforced by re-acquiring the
// critical section after a wakeup and checking count again, blocking
// once more if another task drained the message first.
func (k *Kernel) QueuePend(q *Queue) any {
	k.enterMutex()
	for q.count == 0 {
		t := k.current
		k.removeReady(t)
		insertPending(&q.pending, t)
		k.exitMutex()

		k.Schedule()

		k.enterMutex()
	}

	msg := q.buffer[q.head]
	q.head = (q.head + 1) % len(q.buffer)
	q.count--
	k.exitMutex()
	return msg
}

// QueueLen reports the number of unread messages currently queued.
func (k *Kernel) QueueLen(q *Queue) int {
	k.enterMutex()
	defer k.exitMutex()
	return q.count
}

// QueueCap reports the queue's fixed capacity.
func (k *Kernel) QueueCap(q *Queue) int {
	k.enterMutex()
	defer k.exitMutex()
	return len(q.buffer)
}
