// Command yaksim drives a yak kernel instance against a real tick source
// and (in window mode) a real keyboard, demonstrating strict-priority
// preemption, delay expiry, and ISR-driven wakeups end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"yak/hal"
	"yak/internal/buildinfo"
	"yak/kernel"
)

func main() {
	headless := flag.Bool("headless", false, "run without opening a window")
	hz := flag.Int("hz", 1000, "tick rate in Hz")
	ticks := flag.Uint64("ticks", 0, "stop after this many ticks in headless mode (0 = run until interrupted)")
	tasks := flag.Int("tasks", 3, "number of demo worker tasks beyond idle, at priorities 1..tasks")
	priorities := flag.String("priorities", "", "comma-separated explicit priorities for the worker tasks, overriding -tasks' default 1..tasks sequence (e.g. \"5,2,9\" to reproduce spec §8's tick-storm scenario)")
	strict := flag.Bool("strict", false, "panic on invariant breach instead of only logging")
	flag.Parse()

	prios, err := workerPriorities(*tasks, *priorities)
	if err != nil {
		fmt.Fprintln(os.Stderr, "yaksim:", err)
		os.Exit(2)
	}

	fmt.Printf("yaksim %s: %d worker task(s) %v, %dHz tick\n", buildinfo.Short(), len(prios), prios, *hz)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if *headless {
		err = runHeadless(ctx, *hz, *ticks, prios, *strict)
	} else {
		err = runWindow(ctx, prios, *strict)
	}
	if err != nil && ctx.Err() == nil {
		fmt.Fprintln(os.Stderr, "yaksim:", err)
		os.Exit(1)
	}
}

// workerPriorities resolves -tasks/-priorities into the concrete priority
// list newDemo assigns to worker tasks, one per task, in order.
func workerPriorities(tasks int, spec string) ([]kernel.Priority, error) {
	if spec == "" {
		if tasks < 1 {
			return nil, fmt.Errorf("-tasks must be >= 1")
		}
		prios := make([]kernel.Priority, tasks)
		for i := range prios {
			prios[i] = kernel.Priority(i + 1)
		}
		return prios, nil
	}

	fields := strings.Split(spec, ",")
	prios := make([]kernel.Priority, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 || n > 254 {
			return nil, fmt.Errorf("-priorities: %q is not a priority in [0,254]", f)
		}
		prios = append(prios, kernel.Priority(n))
	}
	return prios, nil
}

// demo bundles the kernel and the primitives its worker tasks share.
type demo struct {
	k     *kernel.Kernel
	queue *kernel.Queue
	sem   *kernel.Semaphore
}

// newDemo builds a kernel wired to a live GoroutineDispatcher, one worker
// task per entry in priorities, and a tick hook that feeds a bounded
// queue — the generalized replacement for the original YKTickHandler's
// hard-coded periodic message post (spec §6 / DESIGN.md).
func newDemo(logger hal.Logger, priorities []kernel.Priority, strict bool) (*demo, error) {
	k := kernel.NewKernel(logger, kernel.WithDispatcher(&kernel.GoroutineDispatcher{}), kernel.WithStrict(strict))

	if err := k.Initialize(k.IdleLoop); err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}

	q, err := k.QueueCreate(8)
	if err != nil {
		return nil, fmt.Errorf("queue create: %w", err)
	}
	s, err := k.SemCreate(0)
	if err != nil {
		return nil, fmt.Errorf("sem create: %w", err)
	}

	for i, priority := range priorities {
		name := fmt.Sprintf("worker-%d-p%d", i, priority)
		if _, err := k.NewTask(func() { workerLoop(k, q, s, logger, name) }, priority, name); err != nil {
			return nil, fmt.Errorf("new task %s: %w", name, err)
		}
	}

	k.SetTickHook(func(tick uint64) {
		k.QueuePost(q, tick)
		if tick%4 == 0 {
			k.SemPost(s)
		}
	})

	return &demo{k: k, queue: q, sem: s}, nil
}

// workerLoop is a task body written the way GoroutineDispatcher requires:
// a bounded step of work followed immediately by a suspension point, so
// the kernel always gets a chance to reschedule.
func workerLoop(k *kernel.Kernel, q *kernel.Queue, s *kernel.Semaphore, logger hal.Logger, name string) {
	for {
		msg := k.QueuePend(q)
		if logger != nil {
			logger.WriteLineString(fmt.Sprintf("%s: tick %v, idle=%d", name, msg, k.IdleCount()))
		}
		k.SemPend(s)
		k.DelayTask(5)
	}
}

// runHeadless wires a demo kernel to a headless tick source. The kernel's
// Run call never returns by design (spec §4.4), so it is started as a
// detached goroutine rather than one an errgroup waits on; the errgroup
// instead supervises the tick-delivery loop itself, which does respect
// ctx and returns promptly on SIGINT or tick-count exhaustion.
func runHeadless(ctx context.Context, hz int, ticks uint64, priorities []kernel.Priority, strict bool) error {
	var setupErr error

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hal.RunHeadless(ctx, func(h hal.HAL) func() {
			d, derr := newDemo(h.Logger(), priorities, strict)
			if derr != nil {
				setupErr = derr
				return func() {}
			}
			go d.k.Run()
			ic := h.InterruptController()
			return func() { kernel.TickISR(d.k, ic) }
		}, hz, ticks)
	})

	err := g.Wait()
	if setupErr != nil {
		return setupErr
	}
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

// runWindow wires a demo kernel to a real window with keyboard input. As
// in runHeadless, the kernel's Run call is detached; the errgroup
// supervises ebiten's blocking event loop instead.
func runWindow(ctx context.Context, priorities []kernel.Priority, strict bool) error {
	var setupErr error

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hal.RunWindow(func(h hal.HAL) (func(), func(hal.KeyEvent)) {
			d, derr := newDemo(h.Logger(), priorities, strict)
			if derr != nil {
				setupErr = derr
				return func() {}, func(hal.KeyEvent) {}
			}
			go d.k.Run()

			ic := h.InterruptController()
			onTick := func() { kernel.TickISR(d.k, ic) }
			onKey := func(ev hal.KeyEvent) {
				if !ev.Press {
					return
				}
				kernel.KeyISR(d.k, ic, func() {
					d.k.SemPost(d.sem)
				})
			}
			return onTick, onKey
		})
	})

	err := g.Wait()
	if setupErr != nil {
		return setupErr
	}
	return err
}
