package kernel

import "testing"

func TestDelayTaskRejectsZeroTicks(t *testing.T) {
	k := newTestKernel(t)
	mustInit(t, k)
	k.NewTask(noop, 1, "a")
	k.Run()

	before := k.CurrentTask()
	k.DelayTask(0)
	if k.CurrentTask() != before {
		t.Fatalf("DelayTask(0) should be rejected without switching tasks")
	}
}

// Boundary case (spec §8): delay by 1 tick — the task must run on the
// very next scheduler entry following the tick handler.
func TestDelayByOneTickRunsOnNextTick(t *testing.T) {
	k := newTestKernel(t)
	mustInit(t, k)

	a, _ := k.NewTask(noop, 1, "a")
	k.Run()
	if k.CurrentTask() != a {
		t.Fatalf("current = %v, want a", k.CurrentTask())
	}

	k.DelayTask(1)
	if k.CurrentTask() != k.idle {
		t.Fatalf("current = %v, want idle while a sleeps", k.CurrentTask())
	}

	TickISR(k, nil)
	if k.CurrentTask() != a {
		t.Fatalf("current = %v, want a immediately after the single tick", k.CurrentTask())
	}
}

// Scenario 4 (spec §8): three tasks delayed 3, 3, 7 ticks. After exactly
// 3 ticks, the first two become ready simultaneously and reorder into
// ready by priority; the third still has absolute delay 4 remaining
// (head of the delayed list stores 4).
func TestScenarioTickStorm(t *testing.T) {
	k := newTestKernel(t)
	mustInit(t, k)

	// Priorities chosen so the reordering on wakeup is observable: x is
	// lower priority than y even though x was delayed first.
	x, _ := k.NewTask(noop, 5, "x")
	y, _ := k.NewTask(noop, 2, "y")
	z, _ := k.NewTask(noop, 9, "z")

	k.Run() // dispatches to y, the highest-priority ready task
	if k.CurrentTask() != y {
		t.Fatalf("current = %v, want y", k.CurrentTask())
	}

	k.current = x
	k.DelayTask(3)
	k.current = y
	k.DelayTask(3)
	k.current = z
	k.DelayTask(7)

	for i := 0; i < 3; i++ {
		TickISR(k, nil)
	}

	ids := readyOrder(k)
	if len(ids) < 2 || ids[0] != y.id || ids[1] != x.id {
		t.Fatalf("ready order = %v, want y, x first (priority order, not insertion order)", ids)
	}
	if k.delayedHead == nil || k.delayedHead.id != z.id || k.delayedHead.delayTicks != 4 {
		t.Fatalf("delayed head = %v delta %d, want z with delta 4", k.delayedHead, k.delayedHead.delayTicks)
	}
}

// Several tasks with identical remaining delay ticks expire together on
// a single tick (spec §8 boundary case).
func TestTasksWithIdenticalDelayExpireTogether(t *testing.T) {
	k := newTestKernel(t)
	mustInit(t, k)

	a, _ := k.NewTask(noop, 1, "a")
	b, _ := k.NewTask(noop, 2, "b")

	k.Run()
	k.current = a
	k.DelayTask(4)
	k.current = b
	k.DelayTask(4)

	for i := 0; i < 3; i++ {
		TickISR(k, nil)
	}
	if k.delayedHead == nil {
		t.Fatalf("both tasks should still be delayed after 3 of 4 ticks")
	}

	TickISR(k, nil)
	if k.delayedHead != nil {
		t.Fatalf("delayed list should be empty after the 4th tick")
	}
	ids := readyOrder(k)
	if len(ids) < 2 || ids[0] != a.id || ids[1] != b.id {
		t.Fatalf("ready order = %v, want a, b (priority order)", ids)
	}
}
