package loader

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tupyy/parcm/pkg/scheduler"
)

// Loader runs at most one bundle load at a time and hands the result to a single
// consumer goroutine through Finalize.
type Loader struct {
	sub       Submitter
	artifacts []Artifact
	timeout   time.Duration
	retries   uint
	log       *zap.SugaredLogger

	state atomic.Int32
	gen   atomic.Uint64
	key   atomic.Int64

	// mu guards buffer, future and timer. Never held across artifact I/O.
	mu     sync.Mutex
	buffer map[string]buffered
	future *scheduler.Future[scheduler.Result[any]]
	timer  *time.Timer

	liveMu sync.RWMutex
	live   Snapshot

	request atomic.Pointer[Request]
}

func New(sub Submitter, artifacts []Artifact, opts ...Option) *Loader {
	l := &Loader{
		sub:       sub,
		artifacts: artifacts,
		retries:   3,
		log:       zap.S().Named("loader"),
		live: Snapshot{
			Key:    -1,
			Values: map[string]any{},
			Failed: map[string]error{},
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	l.key.Store(-1)
	return l
}

// BeginLoad starts loading key in the background. It returns false without error when
// a load is in flight or a loaded result is still waiting for Finalize.
func (l *Loader) BeginLoad(key int) (bool, error) {
	if !l.acquire() {
		l.log.Debugw("load rejected", "key", key, "state", l.State())
		return false, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	gen := l.gen.Add(1)
	l.key.Store(int64(key))
	l.buffer = make(map[string]buffered, len(l.artifacts))

	future, err := l.sub.SubmitNamed(fmt.Sprintf("load-%d", key), func(ctx context.Context) (any, error) {
		return nil, l.load(ctx, gen, key)
	})
	if err != nil {
		l.buffer = nil
		l.state.CompareAndSwap(int32(StateLoading), int32(StateIdle))
		return false, fmt.Errorf("failed to submit load of %d: %w", key, err)
	}
	l.future = future

	if l.timeout > 0 {
		l.timer = time.AfterFunc(l.timeout, func() { l.abandon(gen, key) })
	}

	l.log.Debugw("load started", "key", key, "generation", gen)
	return true, nil
}

func (l *Loader) acquire() bool {
	return l.state.CompareAndSwap(int32(StateIdle), int32(StateLoading)) ||
		l.state.CompareAndSwap(int32(StateFinalized), int32(StateLoading))
}

// IsReadyToFinalize reports whether a finished load waits for Finalize. It never blocks.
func (l *Loader) IsReadyToFinalize() bool {
	return l.State() == StateLoaded
}

// Finalize moves the buffered artifacts into the live snapshot. It must be called from
// the consumer goroutine and is a no-op unless IsReadyToFinalize.
// Failed artifacts get their Fallback or keep the previous live value.
func (l *Loader) Finalize(ctx context.Context) bool {
	if !l.IsReadyToFinalize() {
		return false
	}

	l.mu.Lock()
	if l.State() != StateLoaded || l.buffer == nil {
		l.mu.Unlock()
		return false
	}
	buf := l.buffer
	l.buffer = nil
	future := l.future
	l.future = nil
	key := int(l.key.Load())
	l.mu.Unlock()

	next := l.Live()
	next.Key = key
	next.Valid = true
	next.Fallback = nil
	next.Kept = nil
	next.Failed = map[string]error{}

	for _, a := range l.artifacts {
		r, ok := buf[a.Name]
		if !ok {
			r = buffered{err: errNotProduced}
		}
		if r.err == nil {
			next.Values[a.Name] = r.value
			continue
		}

		next.Failed[a.Name] = r.err
		v, err := l.fallback(ctx, a)
		if err == nil {
			next.Values[a.Name] = v
			next.Fallback = append(next.Fallback, a.Name)
			continue
		}
		if a.Fallback != nil {
			l.log.Errorw("fallback failed", "artifact", a.Name, "key", key, "error", err)
		}
		next.Kept = append(next.Kept, a.Name)
	}

	l.liveMu.Lock()
	l.live = next
	l.liveMu.Unlock()

	if !l.state.CompareAndSwap(int32(StateLoaded), int32(StateFinalized)) {
		l.log.Warnw("slot changed during finalize", "key", key, "state", l.State())
	}

	if future != nil {
		if r, err := future.Wait(ctx); err != nil {
			l.log.Warnw("load task not joined", "key", key, "error", err)
		} else if r.Err != nil {
			l.log.Debugw("load task reported error", "key", key, "error", r.Err)
		}
	}

	l.log.Infow("load finalized", "key", key, "fallback", next.Fallback, "kept", next.Kept)
	return true
}

func (l *Loader) fallback(ctx context.Context, a Artifact) (any, error) {
	if a.Fallback == nil {
		return nil, errNotProduced
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxInterval = 250 * time.Millisecond

	return backoff.Retry(ctx, func() (any, error) {
		return a.Fallback(ctx)
	}, backoff.WithBackOff(b), backoff.WithMaxTries(l.retries))
}

// Discard drops a loaded result that will never be finalized and frees the slot.
func (l *Loader) Discard() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.state.CompareAndSwap(int32(StateLoaded), int32(StateIdle)) {
		return false
	}
	l.buffer = nil
	l.future = nil
	l.log.Debugw("loaded result discarded", "key", l.key.Load())
	return true
}

func (l *Loader) Live() Snapshot {
	l.liveMu.RLock()
	defer l.liveMu.RUnlock()
	return l.live.clone()
}

func (l *Loader) State() State {
	return State(l.state.Load())
}

func (l *Loader) Slot() Slot {
	st := l.State()
	return Slot{
		State:      st,
		Key:        int(l.key.Load()),
		Generation: l.gen.Load(),
		InProgress: st == StateLoading,
		Finished:   st == StateLoaded || st == StateFinalized,
		Finalized:  st == StateFinalized,
	}
}

// RequestNext records key as the next album to load. Last writer wins.
func (l *Loader) RequestNext(key int) {
	l.request.Store(&Request{Key: key, Direction: DirectionNext})
}

// RequestPrev records key as the previous album to load. Last writer wins.
func (l *Loader) RequestPrev(key int) {
	l.request.Store(&Request{Key: key, Direction: DirectionPrev})
}

// TakeRequest returns and clears the outstanding request.
func (l *Loader) TakeRequest() (Request, bool) {
	r := l.request.Swap(nil)
	if r == nil {
		return Request{}, false
	}
	return *r, true
}

// PutBackRequest restores r unless a newer request was recorded meanwhile.
func (l *Loader) PutBackRequest(r Request) {
	l.request.CompareAndSwap(nil, &r)
}

func (l *Loader) load(ctx context.Context, gen uint64, key int) error {
	var g errgroup.Group
	for _, a := range l.artifacts {
		g.Go(func() error {
			v, err := l.loadArtifact(ctx, a, key)
			if err != nil {
				l.log.Warnw("artifact load failed", "artifact", a.Name, "key", key, "error", err)
			}
			l.store(gen, a.Name, buffered{value: v, err: err})
			return nil
		})
	}
	_ = g.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.gen.Load() != gen {
		l.log.Debugw("abandoned load finished", "key", key, "generation", gen)
		return nil
	}
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.state.CompareAndSwap(int32(StateLoading), int32(StateLoaded))
	return nil
}

func (l *Loader) loadArtifact(ctx context.Context, a Artifact, key int) (v any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("artifact %s panicked: %v", a.Name, rec)
		}
	}()
	return a.Load(ctx, key)
}

func (l *Loader) store(gen uint64, name string, b buffered) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.gen.Load() != gen || l.buffer == nil {
		return
	}
	l.buffer[name] = b
}

func (l *Loader) abandon(gen uint64, key int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.gen.Load() != gen {
		return
	}
	if !l.state.CompareAndSwap(int32(StateLoading), int32(StateIdle)) {
		return
	}
	l.gen.Add(1)
	l.buffer = nil
	l.future = nil
	l.timer = nil
	l.log.Warnw("load abandoned after timeout", "key", key, "timeout", l.timeout)
}
