package loader

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tupyy/parcm/pkg/scheduler"
)

var errNotProduced = errors.New("artifact not produced")

// State of the load slot.
type State int32

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Slot is a snapshot of the load slot. The flags are derived from State, so
// InProgress and Finished are never both set and Finalized implies Finished.
type Slot struct {
	State      State
	Key        int
	Generation uint64
	InProgress bool
	Finished   bool
	Finalized  bool
}

// Artifact describes one independently loaded resource of a bundle.
type Artifact struct {
	Name string
	Load func(ctx context.Context, key int) (any, error)
	// Fallback produces a known-good default when Load fails.
	// A nil Fallback keeps the previous live value.
	Fallback func(ctx context.Context) (any, error)
}

type Direction int

const (
	DirectionNext Direction = iota + 1
	DirectionPrev
)

func (d Direction) String() string {
	switch d {
	case DirectionNext:
		return "next"
	case DirectionPrev:
		return "prev"
	default:
		return "unknown"
	}
}

// Request is a key the consumer wants loaded next.
type Request struct {
	Key       int
	Direction Direction
}

// Snapshot is the live state produced by the last Finalize.
type Snapshot struct {
	Key    int
	Valid  bool
	Values map[string]any
	// Fallback lists artifacts served from their Fallback by the last Finalize.
	Fallback []string
	// Kept lists artifacts whose previous live value was left in place.
	Kept   []string
	Failed map[string]error
}

func (s Snapshot) clone() Snapshot {
	c := Snapshot{
		Key:    s.Key,
		Valid:  s.Valid,
		Values: make(map[string]any, len(s.Values)),
		Failed: make(map[string]error, len(s.Failed)),
	}
	for k, v := range s.Values {
		c.Values[k] = v
	}
	for k, v := range s.Failed {
		c.Failed[k] = v
	}
	c.Fallback = append(c.Fallback, s.Fallback...)
	c.Kept = append(c.Kept, s.Kept...)
	return c
}

// Submitter runs a load task. *scheduler.Scheduler satisfies it.
type Submitter interface {
	SubmitNamed(name string, w scheduler.Work[any]) (*scheduler.Future[scheduler.Result[any]], error)
}

type Option func(*Loader)

// WithTimeout abandons a load still in progress after d. The abandoned task keeps
// running but its results are ignored.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// WithFallbackRetries sets how many times Finalize tries an artifact Fallback.
func WithFallbackRetries(n uint) Option {
	return func(l *Loader) {
		if n > 0 {
			l.retries = n
		}
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

type buffered struct {
	value any
	err   error
}
