package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type queue[T any] []T

func (wq *queue[T]) Len() int { return len(*wq) }

func (wq *queue[T]) Pop() T {
	old := *wq
	x := old[0]
	var zero T
	old[0] = zero
	*wq = old[1:]
	return x
}

func (wq *queue[T]) Push(t T) {
	*wq = append(*wq, t)
}

type Option func(*Scheduler)

// WithMaxPending caps the pending queue. Zero means unbounded.
func WithMaxPending(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.maxPending = n
		}
	}
}

func WithMetrics(m Metrics) Option {
	return func(s *Scheduler) {
		if m != nil {
			s.metrics = m
		}
	}
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// Scheduler matches pending tasks to a fixed set of worker slots.
// The pending queue, idle set and active map are guarded together by mu.
type Scheduler struct {
	mu         sync.Mutex
	slots      []worker
	idle       []int
	active     map[int]*task
	pending    *queue[*task]
	maxPending int
	running    bool
	closed     bool

	stop     chan struct{}
	loopDone chan struct{}
	wake     chan struct{}
	// changed is closed and replaced on every state transition.
	changed chan struct{}

	submitted uint64
	completed uint64
	failed    uint64
	rejected  uint64

	ctx       context.Context
	metrics   Metrics
	log       *zap.SugaredLogger
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewScheduler(nbWorkers int, opts ...Option) *Scheduler {
	s := &Scheduler{
		pending: &queue[*task]{},
		active:  make(map[int]*task),
		wake:    make(chan struct{}, 1),
		changed: make(chan struct{}),
		ctx:     context.Background(),
		metrics: NopMetrics{},
		log:     zap.S().Named("scheduler"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if nbWorkers < 1 {
		s.log.Warnw("invalid worker count, using 1", "workers", nbWorkers)
		nbWorkers = 1
	}

	s.slots = make([]worker, nbWorkers)
	s.idle = make([]int, 0, nbWorkers)
	for i := range nbWorkers {
		s.slots[i] = worker{id: i, state: slotIdle}
		s.idle = append(s.idle, i)
	}
	s.metrics.Workers(len(s.idle), 0)

	return s
}

// Start begins dispatching. Tasks submitted before Start run once it is called.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || s.closed {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.loopDone = make(chan struct{})
	go s.run(s.stop, s.loopDone)

	s.log.Debugw("scheduler started", "workers", len(s.slots), "pending", s.pending.Len())
	s.signal()
	s.broadcast()
}

// Stop halts dispatching. In-flight tasks run to completion; pending tasks stay queued.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	stop, done := s.stop, s.loopDone
	s.broadcast()
	s.mu.Unlock()

	close(stop)
	<-done
	s.log.Debug("scheduler stopped")
}

// Close stops the scheduler, waits for in-flight tasks and fails every pending task
// with ErrClosed. Close is idempotent.
func (s *Scheduler) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		s.Stop()
		s.wg.Wait()

		s.mu.Lock()
		defer s.mu.Unlock()
		for s.pending.Len() > 0 {
			t := s.pending.Pop()
			t.c <- Result[any]{Err: ErrClosed}
			s.rejected++
			s.metrics.TaskRejected(t.name, "closed")
		}
		s.metrics.QueueDepth(0)
		s.broadcast()
	})
}

func (s *Scheduler) Submit(w Work[any]) (*Future[Result[any]], error) {
	return s.SubmitNamed("task", w)
}

// SubmitNamed appends w to the pending queue. It never blocks. A capped queue that is
// full returns ErrPoolSaturated.
func (s *Scheduler) SubmitNamed(name string, w Work[any]) (*Future[Result[any]], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.rejected++
		s.metrics.TaskRejected(name, "closed")
		return nil, ErrClosed
	}
	if s.maxPending > 0 && s.pending.Len() >= s.maxPending {
		s.rejected++
		s.metrics.TaskRejected(name, "saturated")
		return nil, fmt.Errorf("%w: %d tasks pending", ErrPoolSaturated, s.pending.Len())
	}

	t := &task{
		id:   uuid.New(),
		name: name,
		fn:   w,
		c:    make(chan Result[any], 1),
	}
	s.pending.Push(t)
	s.submitted++
	s.metrics.TaskSubmitted(name)
	s.metrics.QueueDepth(s.pending.Len())

	s.signal()
	s.broadcast()

	return NewFuture(t.c), nil
}

// WaitAll blocks until the pending queue and the active set are both empty.
// After Stop with tasks still pending it only returns when ctx is done.
func (s *Scheduler) WaitAll(ctx context.Context) error {
	for {
		s.mu.Lock()
		if s.pending.Len() == 0 && len(s.active) == 0 {
			s.mu.Unlock()
			return nil
		}
		changed := s.changed
		s.mu.Unlock()

		select {
		case <-changed:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Workers:   len(s.slots),
		Idle:      len(s.idle),
		Active:    len(s.active),
		Pending:   s.pending.Len(),
		Running:   s.running,
		Submitted: s.submitted,
		Completed: s.completed,
		Failed:    s.failed,
		Rejected:  s.rejected,
	}
}

func (s *Scheduler) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-s.wake:
			s.dispatch()
		case <-stop:
			return
		}
	}
}

// dispatch drains the pending queue as much as possible
// based on idle workers
func (s *Scheduler) dispatch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for s.running && len(s.idle) > 0 && s.pending.Len() > 0 {
		t := s.pending.Pop()
		id := s.idle[len(s.idle)-1]
		s.idle = s.idle[:len(s.idle)-1]

		s.active[id] = t
		w := &s.slots[id]
		w.assign(t)

		s.wg.Add(1)
		s.metrics.TaskStarted(t.name)
		go w.Work(s.ctx, t, s.onFinishedTask)
		n++
	}
	if n == 0 {
		return
	}

	s.metrics.QueueDepth(s.pending.Len())
	s.metrics.Workers(len(s.idle), len(s.active))
	s.broadcast()
}

func (s *Scheduler) onFinishedTask(id int, t *task, elapsed time.Duration, err error) {
	defer s.wg.Done()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.active[id]; !ok {
		s.log.Errorw("finished task on inactive worker", "worker", id, "task", t.id)
		return
	}
	delete(s.active, id)
	s.slots[id].release()
	s.idle = append(s.idle, id)

	s.completed++
	if err != nil {
		s.failed++
		s.log.Debugw("task failed", "task", t.name, "id", t.id, "worker", id, "error", err)
	}
	s.metrics.TaskFinished(t.name, elapsed, err)
	s.metrics.Workers(len(s.idle), len(s.active))

	s.signal()
	s.broadcast()
}

func (s *Scheduler) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) broadcast() {
	close(s.changed)
	s.changed = make(chan struct{})
}
