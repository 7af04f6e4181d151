package kernel

import "fmt"

// PoolExhaustedError is returned from a creation call when its backing
// arena has no free slot left. Pools never grow and never free a slot
// back, so this is the one error condition spec.md treats as a genuine
// configuration error rather than a programmer bug. It is the typed error
// creation calls return; they also return plain errors for invalid
// arguments (a non-positive queue capacity, a negative semaphore initial
// value, a task at the reserved idle priority).
type PoolExhaustedError struct {
	Pool     string
	Capacity int
}

func (e *PoolExhaustedError) Error() string {
	return fmt.Sprintf("kernel: %s pool exhausted (capacity %d)", e.Pool, e.Capacity)
}
