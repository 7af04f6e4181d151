package kernel

import "testing"

func TestInitializeInstallsDummyCurrentAndIdle(t *testing.T) {
	k := newTestKernel(t)
	mustInit(t, k)

	if k.current.id != -1 {
		t.Fatalf("current.id = %d, want -1 (dummy)", k.current.id)
	}
	if k.idle == nil || k.idle.priority != k.lowestPriority {
		t.Fatalf("idle = %v, want priority %d", k.idle, k.lowestPriority)
	}
}

func TestNewTaskRejectsLowestPriority(t *testing.T) {
	k := newTestKernel(t)
	mustInit(t, k)

	if _, err := k.NewTask(noop, k.lowestPriority, "imposter"); err == nil {
		t.Fatalf("NewTask at LowestPriority should fail")
	}
}

func TestPoolExhaustionReturnsTypedError(t *testing.T) {
	k := NewKernel(nil, WithDispatcher(&RecordingDispatcher{}), WithMaxTasks(1))
	if err := k.Initialize(noop); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	_, err := k.NewTask(noop, 1, "overflow")
	if err == nil {
		t.Fatalf("expected pool exhaustion error")
	}
	perr, ok := err.(*PoolExhaustedError)
	if !ok {
		t.Fatalf("err = %T, want *PoolExhaustedError", err)
	}
	if perr.Pool != "task" || perr.Capacity != 1 {
		t.Fatalf("perr = %+v, want {task 1}", perr)
	}
}

// Scenario 1 (spec §8): three tasks, strict priority. A(1), B(2), idle.
// After run: A runs; A delays 5; B runs; B delays 5; idle runs; after 5
// ticks A is ready again and runs.
func TestScenarioThreeTaskStrictPriority(t *testing.T) {
	k := newTestKernel(t)
	mustInit(t, k)
	rec := recorder(k)

	a, err := k.NewTask(noop, 1, "a")
	if err != nil {
		t.Fatalf("NewTask(a): %v", err)
	}
	b, err := k.NewTask(noop, 2, "b")
	if err != nil {
		t.Fatalf("NewTask(b): %v", err)
	}

	k.Run()
	if k.CurrentTask() != a {
		t.Fatalf("after Run, current = %v, want a", k.CurrentTask())
	}

	k.DelayTask(5)
	if k.CurrentTask() != b {
		t.Fatalf("after A delays, current = %v, want b", k.CurrentTask())
	}

	k.DelayTask(5)
	if k.CurrentTask() != k.idle {
		t.Fatalf("after B delays, current = %v, want idle", k.CurrentTask())
	}

	for i := 0; i < 4; i++ {
		TickISR(k, nil)
		if k.CurrentTask() != k.idle {
			t.Fatalf("tick %d: current = %v, want idle (not yet expired)", i+1, k.CurrentTask())
		}
	}
	TickISR(k, nil)
	if k.CurrentTask() != a {
		t.Fatalf("after 5th tick, current = %v, want a", k.CurrentTask())
	}

	last := rec.Last()
	if last.To != a.id || !last.FromISR {
		t.Fatalf("last dispatch = %+v, want To=a FromISR=true", last)
	}
}

func TestCurrentEqualsReadyHeadAfterEverySchedule(t *testing.T) {
	k := newTestKernel(t)
	mustInit(t, k)

	a, _ := k.NewTask(noop, 1, "a")
	_ = a
	k.Run()

	if k.CurrentTask() != k.ReadyHead() {
		t.Fatalf("current = %v, ready head = %v", k.CurrentTask(), k.ReadyHead())
	}
}
