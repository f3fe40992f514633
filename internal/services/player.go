package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tupyy/parcm/internal/assets"
	"github.com/tupyy/parcm/internal/models"
	srvErrors "github.com/tupyy/parcm/pkg/errors"
	"github.com/tupyy/parcm/pkg/loader"
	"github.com/tupyy/parcm/pkg/scheduler"
)

// AlbumCatalog is the part of the album store the player navigates.
type AlbumCatalog interface {
	Get(ctx context.Context, index int) (*models.Album, error)
	Indexes(ctx context.Context) ([]int, error)
}

// Player is the single consumer of the loader. Its tick loop starts requested loads
// and activates finished ones.
type Player struct {
	loader  *loader.Loader
	sched   *scheduler.Scheduler
	catalog AlbumCatalog
	tick    time.Duration
	log     *zap.SugaredLogger

	mu         sync.Mutex
	state      models.PlayerState
	requested  *int
	loading    *int
	nowPlaying *models.NowPlaying
	lastErr    error

	runMu sync.Mutex
	stop  chan struct{}
	done  chan struct{}
}

func NewPlayer(sched *scheduler.Scheduler, l *loader.Loader, catalog AlbumCatalog, tick time.Duration) *Player {
	if tick <= 0 {
		tick = 16 * time.Millisecond
	}
	return &Player{
		loader:  l,
		sched:   sched,
		catalog: catalog,
		tick:    tick,
		state:   models.PlayerStateIdle,
		log:     zap.S().Named("player"),
	}
}

// Start launches the tick loop. It is a no-op when the loop is already running.
func (p *Player) Start(ctx context.Context) {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	if p.stop != nil {
		return
	}
	p.stop = make(chan struct{})
	p.done = make(chan struct{})

	go p.run(ctx, p.stop, p.done)
	p.log.Infow("player started", "tick", p.tick)
}

// Stop ends the tick loop and waits for it to return. An in-flight load is not cancelled.
func (p *Player) Stop() {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	if p.stop == nil {
		return
	}
	close(p.stop)
	<-p.done
	p.stop = nil
	p.done = nil
	p.log.Info("player stopped")
}

// Next requests the album after the current one, wrapping around the catalog.
func (p *Player) Next(ctx context.Context) (int, error) {
	return p.step(ctx, loader.DirectionNext)
}

// Prev requests the album before the current one, wrapping around the catalog.
func (p *Player) Prev(ctx context.Context) (int, error) {
	return p.step(ctx, loader.DirectionPrev)
}

// Play requests the album at index.
func (p *Player) Play(ctx context.Context, index int) error {
	if _, err := p.catalog.Get(ctx, index); err != nil {
		return err
	}

	if cur := p.current(); cur >= 0 && index < cur {
		p.loader.RequestPrev(index)
	} else {
		p.loader.RequestNext(index)
	}
	p.setRequested(index)
	return nil
}

func (p *Player) Status() models.PlayerStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := models.PlayerStatus{
		State:     p.state,
		Requested: copyInt(p.requested),
		Loading:   copyInt(p.loading),
		Error:     p.lastErr,
	}
	if p.nowPlaying != nil {
		np := *p.nowPlaying
		np.Degraded = slices.Clone(p.nowPlaying.Degraded)
		s.NowPlaying = &np
	}
	return s
}

func (p *Player) Slot() loader.Slot {
	return p.loader.Slot()
}

func (p *Player) PoolStats() scheduler.Stats {
	return p.sched.Stats()
}

func (p *Player) step(ctx context.Context, dir loader.Direction) (int, error) {
	indexes, err := p.catalog.Indexes(ctx)
	if err != nil {
		return -1, fmt.Errorf("failed to read catalog: %w", err)
	}
	if len(indexes) == 0 {
		return -1, srvErrors.NewEmptyCatalogError()
	}

	next := neighbour(indexes, p.current(), dir)
	switch dir {
	case loader.DirectionPrev:
		p.loader.RequestPrev(next)
	default:
		p.loader.RequestNext(next)
	}
	p.setRequested(next)
	return next, nil
}

// neighbour returns the index next to cur in dir. An unknown cur starts at either end.
func neighbour(indexes []int, cur int, dir loader.Direction) int {
	n := len(indexes)
	pos, found := slices.BinarySearch(indexes, cur)

	if dir == loader.DirectionPrev {
		return indexes[(pos-1+n)%n]
	}
	if found {
		return indexes[(pos+1)%n]
	}
	return indexes[pos%n]
}

// current is the album navigation starts from: the pending request, else the
// loading album, else the live one.
func (p *Player) current() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.requested != nil:
		return *p.requested
	case p.loading != nil:
		return *p.loading
	case p.nowPlaying != nil:
		return p.nowPlaying.Album.Index
	default:
		return -1
	}
}

func (p *Player) setRequested(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requested = &index
}

func (p *Player) run(ctx context.Context, stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			p.onTick(ctx)
		}
	}
}

// onTick runs one tick: start the outstanding request, then activate a finished load.
func (p *Player) onTick(ctx context.Context) {
	if req, ok := p.loader.TakeRequest(); ok {
		p.begin(req)
	}

	if p.loader.IsReadyToFinalize() && p.loader.Finalize(ctx) {
		p.activate(p.loader.Live())
		return
	}

	p.checkAbandoned()
}

func (p *Player) begin(req loader.Request) {
	started, err := p.loader.BeginLoad(req.Key)
	if err != nil {
		p.log.Errorw("failed to start load", "key", req.Key, "error", err)
		p.mu.Lock()
		p.lastErr = err
		if p.requested != nil && *p.requested == req.Key {
			p.requested = nil
		}
		p.mu.Unlock()
		return
	}
	if !started {
		p.loader.PutBackRequest(req)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := req.Key
	p.loading = &key
	p.state = models.PlayerStateLoading
	if p.requested != nil && *p.requested == key {
		p.requested = nil
	}
	p.log.Debugw("loading album", "key", key, "direction", req.Direction)
}

func (p *Player) activate(snap loader.Snapshot) {
	np := &models.NowPlaying{
		Degraded:  append(slices.Clone(snap.Fallback), snap.Kept...),
		UpdatedAt: time.Now(),
	}
	if a, ok := snap.Values[assets.ArtifactAlbum].(models.Album); ok {
		np.Album = a
	}
	np.Album.Index = snap.Key
	if c, ok := snap.Values[assets.ArtifactCover].(*models.Cover); ok {
		np.Cover = c
	}
	if t, ok := snap.Values[assets.ArtifactTrack].(*models.Track); ok {
		np.Track = t
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.nowPlaying = np
	p.loading = nil
	p.state = models.PlayerStatePlaying
	p.lastErr = nil
	if len(snap.Failed) > 0 {
		p.lastErr = fmt.Errorf("album %d loaded with %d failed artifacts", snap.Key, len(snap.Failed))
	}
	p.log.Infow("now playing", "album", np.Album.String(), "degraded", np.Degraded)
}

func (p *Player) checkAbandoned() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loading == nil || p.loader.State() != loader.StateIdle {
		return
	}

	p.lastErr = fmt.Errorf("load of album %d timed out", *p.loading)
	p.log.Warnw("album load abandoned", "key", *p.loading)
	p.loading = nil
	p.state = models.PlayerStateIdle
	if p.nowPlaying != nil {
		p.state = models.PlayerStatePlaying
	}
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
