package scheduler

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrPoolSaturated is returned by Submit when the pending queue is capped and full.
	ErrPoolSaturated = errors.New("scheduler: pool saturated")
	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("scheduler: closed")
)

type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

// Future is a single-producer, single-consumer completion slot.
// The producer sends exactly one value.
type Future[T any] struct {
	input chan T
}

func NewFuture[T any](input chan T) *Future[T] {
	return &Future[T]{input: input}
}

func (f *Future[T]) C() <-chan T {
	return f.input
}

// Wait blocks until the value is delivered or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case v := <-f.input:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Stats is a point-in-time view of the scheduler.
type Stats struct {
	Workers   int
	Idle      int
	Active    int
	Pending   int
	Running   bool
	Submitted uint64
	Completed uint64
	Failed    uint64
	Rejected  uint64
}

// Metrics receives scheduler events. Implementations must be safe for concurrent use.
type Metrics interface {
	TaskSubmitted(name string)
	TaskRejected(name, reason string)
	TaskStarted(name string)
	TaskFinished(name string, d time.Duration, err error)
	Workers(idle, active int)
	QueueDepth(n int)
}

type NopMetrics struct{}

func (NopMetrics) TaskSubmitted(string) {}
func (NopMetrics) TaskRejected(string, string) {}
func (NopMetrics) TaskStarted(string) {}
func (NopMetrics) TaskFinished(string, time.Duration, error) {}
func (NopMetrics) Workers(int, int) {}
func (NopMetrics) QueueDepth(int) {}
