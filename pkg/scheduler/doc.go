// Package scheduler implements a fixed-size worker pool executing opaque tasks.
//
// Tasks are submitted with Submit and handed back as a Future whose channel
// receives exactly one Result when the task body returns, whether it
// succeeded, failed or panicked.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                           Scheduler                                 │
//	│                                                                     │
//	│  slots: [0 idle] [1 running] [2 idle] ... [N-1 running]             │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │ idle ids     │      │ active map   │      │ pending FIFO │       │
//	│  │ {0, 2, ...}  │      │ {1: t, ...}  │      │ [t5][t6]...  │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         └──────────── guarded by one mutex ───────────┘             │
//	│                               │                                     │
//	│                        ┌──────┴──────┐                              │
//	│                        │  dispatch() │ ◄── wake (submit, finish)    │
//	│                        └─────────────┘                              │
//	└─────────────────────────────────────────────────────────────────────┘
//
// Worker identity is an index into a fixed slot array. A slot is tagged
// idle or running; finishing a task clears the slot and returns its index
// to the idle set. At all times |idle| + |active| equals the worker count.
//
// # Lifecycle
//
//	NewScheduler(n) ──► Start() ──► Stop() ──► Start() ... ──► Close()
//
//   - Submit is valid at any time before Close, including before Start.
//     Tasks submitted before Start wait in the queue.
//   - Stop halts dispatch only. Running tasks finish naturally and pending
//     tasks stay queued until the next Start.
//   - Close stops, waits for running tasks and fails pending ones with
//     ErrClosed.
//
// # Dispatch
//
// The dispatch loop blocks on a wake channel signalled by Submit and by
// task completion. On each wake it pairs the oldest pending task with any
// idle slot until one side is empty:
//
//	for running && idle > 0 && pending > 0 {
//	    t := pending.Pop()     // FIFO
//	    id := idle.Pop()       // any idle slot
//	    active[id] = t
//	    go slot[id].Work(t)
//	}
//
// Tasks start in submission order. Completion order is not defined.
//
// # Draining
//
// WaitAll blocks until both the pending queue and the active map are
// empty. Every state change closes and replaces a broadcast channel, so
// waiters never poll. A scheduler that was stopped with pending work never
// drains; pass a context with a deadline in that case.
//
// # Saturation
//
// WithMaxPending caps the queue. A Submit against a full queue returns
// ErrPoolSaturated synchronously and the task is never enqueued.
//
// # Panic Recovery
//
// Workers recover from panics in task bodies:
//
//	defer func() {
//	    if rec := recover(); rec != nil {
//	        r = Result[any]{Err: fmt.Errorf("task panicked: %v", rec)}
//	    }
//	    t.c <- r
//	}()
//
// Task failures are counted in Stats but never stop the scheduler.
//
// # Usage Example
//
//	sched := scheduler.NewScheduler(4)
//	sched.Start()
//	defer sched.Close()
//
//	future, err := sched.Submit(func(ctx context.Context) (any, error) {
//	    return decode(path)
//	})
//	if err != nil {
//	    return err // ErrPoolSaturated or ErrClosed
//	}
//
//	result := <-future.C()
package scheduler
