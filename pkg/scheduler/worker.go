package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type task struct {
	id   uuid.UUID
	name string
	fn   Work[any]
	c    chan Result[any]
}

type slotState int

const (
	slotIdle slotState = iota
	slotRunning
)

// worker is a fixed slot in the scheduler arena. The slot outlives any task it runs;
// state and task are only touched under the scheduler lock.
type worker struct {
	id    int
	state slotState
	task  *task
}

func (w *worker) assign(t *task) {
	w.state = slotRunning
	w.task = t
}

func (w *worker) release() {
	w.state = slotIdle
	w.task = nil
}

type finishFn func(id int, t *task, elapsed time.Duration, err error)

// Work runs the task body on the calling goroutine. The result is delivered before the
// slot is handed back, so a drained scheduler implies every future has its value.
func (w *worker) Work(ctx context.Context, t *task, done finishFn) {
	start := time.Now()
	var r Result[any]
	defer func() {
		if rec := recover(); rec != nil {
			r = Result[any]{Err: fmt.Errorf("task panicked: %v", rec)}
		}
		t.c <- r
		done(w.id, t, time.Since(start), r.Err)
	}()

	v, err := t.fn(withTaskID(ctx, t.id))
	r = Result[any]{Data: v, Err: err}
}

type taskIDKey struct{}

func withTaskID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, taskIDKey{}, id)
}

// TaskID returns the id of the task running with ctx.
func TaskID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(taskIDKey{}).(uuid.UUID)
	return id, ok
}
