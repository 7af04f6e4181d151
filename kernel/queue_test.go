package kernel

import "testing"

func TestQueueCreateRejectsNonPositiveCapacity(t *testing.T) {
	k := newTestKernel(t)
	mustInit(t, k)

	if _, err := k.QueueCreate(0); err == nil {
		t.Fatalf("QueueCreate(0) should fail")
	}
}

// Scenario 3 (spec §8): queue capacity 2. Post m1, m2, m3 -> true, true,
// false. Consumer pends: receives m1, m2 in order.
func TestScenarioQueueFullDrop(t *testing.T) {
	k := newTestKernel(t)
	mustInit(t, k)

	q, err := k.QueueCreate(2)
	if err != nil {
		t.Fatalf("QueueCreate: %v", err)
	}

	if ok := k.QueuePost(q, "m1"); !ok {
		t.Fatalf("post m1 should succeed")
	}
	if ok := k.QueuePost(q, "m2"); !ok {
		t.Fatalf("post m2 should succeed")
	}
	if ok := k.QueuePost(q, "m3"); ok {
		t.Fatalf("post m3 should fail: queue is full")
	}
	if got := k.QueueLen(q); got != 2 {
		t.Fatalf("len = %d, want 2 (m3 must not have mutated state)", got)
	}

	if msg := k.QueuePend(q); msg != "m1" {
		t.Fatalf("first pend = %v, want m1", msg)
	}
	if msg := k.QueuePend(q); msg != "m2" {
		t.Fatalf("second pend = %v, want m2", msg)
	}
	if got := k.QueueLen(q); got != 0 {
		t.Fatalf("len after draining = %d, want 0", got)
	}
}

// Round-trip law (spec §8): for capacity C, post until full then pend
// until empty delivers messages in original order.
func TestQueueFIFORoundTrip(t *testing.T) {
	k := newTestKernel(t)
	mustInit(t, k)

	const capacity = 5
	q, err := k.QueueCreate(capacity)
	if err != nil {
		t.Fatalf("QueueCreate: %v", err)
	}

	for i := 0; i < capacity; i++ {
		if !k.QueuePost(q, i) {
			t.Fatalf("post %d should succeed", i)
		}
	}
	for i := 0; i < capacity; i++ {
		got := k.QueuePend(q)
		if got != i {
			t.Fatalf("pend %d = %v, want %d", i, got, i)
		}
	}
}

// Invariant (spec §8): queue.count == 0 whenever queue.pending is
// non-empty — exercised around the blocking path. QueuePend itself is
// not called here: with a RecordingDispatcher nothing ever wakes a
// parked call, so the test drives the same list transition QueuePend
// performs under the critical section directly and then exercises the
// wakeup through a real QueuePost.
func TestQueuePendBlocksOnEmptyAndWakesOnPost(t *testing.T) {
	k := newTestKernel(t)
	mustInit(t, k)

	q, _ := k.QueueCreate(1)
	consumer, _ := k.NewTask(noop, 1, "consumer")
	producer, _ := k.NewTask(noop, 2, "producer")

	k.Run()
	if k.CurrentTask() != consumer {
		t.Fatalf("current = %v, want consumer", k.CurrentTask())
	}

	k.enterMutex()
	if q.count != 0 {
		t.Fatalf("queue should start empty")
	}
	k.removeReady(consumer)
	insertPending(&q.pending, consumer)
	k.exitMutex()

	if q.pending == nil {
		t.Fatalf("pending list should contain the blocked consumer")
	}

	k.current = producer
	if !k.QueuePost(q, "hello") {
		t.Fatalf("post into a queue with a waiter should succeed")
	}
	if q.pending != nil {
		t.Fatalf("pending list should be empty after the waiter is woken")
	}
	if q.count == 0 {
		t.Fatalf("count should be > 0 immediately after a successful post")
	}
}
