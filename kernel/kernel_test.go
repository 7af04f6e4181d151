package kernel

import "testing"

func noop() {}

// newTestKernel builds a Kernel wired to a RecordingDispatcher, so tests
// can drive it through direct, sequential method calls that stand in for
// "task X is now running and does Y" without any real goroutine.
func newTestKernel(t *testing.T) *Kernel {
	t.Helper()
	return NewKernel(nil, WithDispatcher(&RecordingDispatcher{}), WithMaxTasks(8), WithMaxSemaphores(8), WithMaxQueues(8))
}

func mustInit(t *testing.T, k *Kernel) {
	t.Helper()
	if err := k.Initialize(noop); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
}

func recorder(k *Kernel) *RecordingDispatcher {
	return k.dispatcher.(*RecordingDispatcher)
}
