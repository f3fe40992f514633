package assets

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/tupyy/parcm/internal/models"
)

// Library caches decoded covers and tracks by path. It is safe for concurrent use;
// decoding happens outside the lock, so two goroutines may decode the same path once each.
type Library struct {
	mu     sync.RWMutex
	covers map[string]*models.Cover
	tracks map[string]*models.Track
	log    *zap.SugaredLogger
}

func NewLibrary() *Library {
	return &Library{
		covers: make(map[string]*models.Cover),
		tracks: make(map[string]*models.Track),
		log:    zap.S().Named("library"),
	}
}

func (l *Library) Cover(ctx context.Context, path string) (*models.Cover, error) {
	l.mu.RLock()
	c, ok := l.covers[path]
	l.mu.RUnlock()
	if ok {
		return c, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := DecodeCover(path)
	if err != nil {
		return nil, err
	}
	l.log.Debugw("cover decoded", "path", path, "width", c.Width, "height", c.Height)

	l.mu.Lock()
	l.covers[path] = c
	l.mu.Unlock()
	return c, nil
}

func (l *Library) Track(ctx context.Context, path string) (*models.Track, error) {
	l.mu.RLock()
	t, ok := l.tracks[path]
	l.mu.RUnlock()
	if ok {
		return t, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := DecodeTrack(path)
	if err != nil {
		return nil, err
	}
	l.log.Debugw("track decoded", "path", path, "duration", t.Duration, "sample_rate", t.SampleRate)

	l.mu.Lock()
	l.tracks[path] = t
	l.mu.Unlock()
	return t, nil
}

// Len returns the number of cached covers and tracks.
func (l *Library) Len() (covers, tracks int) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.covers), len(l.tracks)
}

func (l *Library) Purge() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.covers = make(map[string]*models.Cover)
	l.tracks = make(map[string]*models.Track)
}
