package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/parcm/internal/assets"
	"github.com/tupyy/parcm/internal/models"
	srvErrors "github.com/tupyy/parcm/pkg/errors"
	"github.com/tupyy/parcm/pkg/loader"
	"github.com/tupyy/parcm/pkg/scheduler"
)

type memCatalog struct {
	mu     sync.Mutex
	albums map[int]models.Album
}

func newMemCatalog(indexes ...int) *memCatalog {
	c := &memCatalog{albums: map[int]models.Album{}}
	for _, i := range indexes {
		c.albums[i] = models.Album{Index: i, Title: fmt.Sprintf("album %d", i)}
	}
	return c
}

func (c *memCatalog) Get(ctx context.Context, index int) (*models.Album, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.albums[index]
	if !ok {
		return nil, srvErrors.NewAlbumNotFoundError(index)
	}
	return &a, nil
}

func (c *memCatalog) Indexes(ctx context.Context) ([]int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := make([]int, 0, len(c.albums))
	for i := range c.albums {
		idx = append(idx, i)
	}
	slices.Sort(idx)
	return idx, nil
}

func albumArtifact(c *memCatalog) loader.Artifact {
	return loader.Artifact{
		Name: assets.ArtifactAlbum,
		Load: func(ctx context.Context, key int) (any, error) {
			a, err := c.Get(ctx, key)
			if err != nil {
				return nil, err
			}
			return *a, nil
		},
		Fallback: func(ctx context.Context) (any, error) {
			return models.UntitledAlbum(-1), nil
		},
	}
}

var _ = Describe("Player", func() {
	var (
		ctx     context.Context
		cancel  context.CancelFunc
		sched   *scheduler.Scheduler
		catalog *memCatalog
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		sched = scheduler.NewScheduler(2)
		sched.Start()
		catalog = newMemCatalog(0, 1, 2)
	})

	AfterEach(func() {
		cancel()
		sched.Close()
	})

	newPlayer := func(artifacts []loader.Artifact, opts ...loader.Option) *Player {
		l := loader.New(sched, artifacts, opts...)
		p := NewPlayer(sched, l, catalog, 5*time.Millisecond)
		p.Start(ctx)
		DeferCleanup(p.Stop)
		return p
	}

	playing := func(p *Player) func() int {
		return func() int {
			s := p.Status()
			if s.State != models.PlayerStatePlaying || s.NowPlaying == nil {
				return -1
			}
			return s.NowPlaying.Album.Index
		}
	}

	It("should start idle", func() {
		p := newPlayer([]loader.Artifact{albumArtifact(catalog)})

		s := p.Status()
		Expect(s.State).To(Equal(models.PlayerStateIdle))
		Expect(s.NowPlaying).To(BeNil())
		Expect(s.Requested).To(BeNil())
		Expect(p.PoolStats().Workers).To(Equal(2))
	})

	// Given a three album catalog
	// When next is requested repeatedly
	// Then albums play in catalog order and wrap around
	It("should walk the catalog forward and wrap", func() {
		p := newPlayer([]loader.Artifact{albumArtifact(catalog)})

		for _, want := range []int{0, 1, 2, 0} {
			got, err := p.Next(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
			Eventually(playing(p), time.Second).Should(Equal(want))
		}

		s := p.Status()
		Expect(s.NowPlaying.Album.Title).To(Equal("album 0"))
		Expect(s.Requested).To(BeNil())
		Expect(s.Loading).To(BeNil())
		Expect(p.Slot().Finalized).To(BeTrue())
	})

	It("should walk the catalog backward and wrap", func() {
		p := newPlayer([]loader.Artifact{albumArtifact(catalog)})

		for _, want := range []int{2, 1, 0, 2} {
			got, err := p.Prev(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
			Eventually(playing(p), time.Second).Should(Equal(want))
		}
	})

	It("should play a specific album", func() {
		p := newPlayer([]loader.Artifact{albumArtifact(catalog)})

		Expect(p.Play(ctx, 2)).To(Succeed())
		Eventually(playing(p), time.Second).Should(Equal(2))
	})

	It("should refuse an unknown album", func() {
		p := newPlayer([]loader.Artifact{albumArtifact(catalog)})

		err := p.Play(ctx, 42)
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		Expect(p.Status().Requested).To(BeNil())
	})

	It("should fail navigation on an empty catalog", func() {
		catalog = newMemCatalog()
		p := newPlayer([]loader.Artifact{albumArtifact(catalog)})

		_, err := p.Next(ctx)
		Expect(srvErrors.IsEmptyCatalogError(err)).To(BeTrue())
	})

	// Given a load blocked in an artifact
	// When several requests arrive meanwhile
	// Then only the last one is loaded after the blocked load finishes
	It("should coalesce requests made during a load", func() {
		gate := make(chan struct{})
		var loads sync.Map

		p := newPlayer([]loader.Artifact{
			albumArtifact(catalog),
			{
				Name: assets.ArtifactTrack,
				Load: func(ctx context.Context, key int) (any, error) {
					loads.Store(key, true)
					if key == 0 {
						<-gate
					}
					return &models.Track{Path: fmt.Sprintf("%d.wav", key)}, nil
				},
			},
		})

		Expect(p.Play(ctx, 0)).To(Succeed())
		Eventually(func() models.PlayerState { return p.Status().State }, time.Second).Should(Equal(models.PlayerStateLoading))

		Expect(p.Play(ctx, 1)).To(Succeed())
		Expect(p.Play(ctx, 2)).To(Succeed())
		Expect(*p.Status().Requested).To(Equal(2))

		close(gate)
		Eventually(playing(p), time.Second).Should(Equal(2))

		_, loaded := loads.Load(1)
		Expect(loaded).To(BeFalse())
		Expect(p.Status().NowPlaying.Track.Path).To(Equal("2.wav"))
	})

	It("should report degraded artifacts", func() {
		p := newPlayer([]loader.Artifact{
			albumArtifact(catalog),
			{
				Name: assets.ArtifactCover,
				Load: func(ctx context.Context, key int) (any, error) {
					return nil, errors.New("corrupt png")
				},
				Fallback: func(ctx context.Context) (any, error) {
					return assets.Placeholder(4, 4), nil
				},
			},
		})

		Expect(p.Play(ctx, 1)).To(Succeed())
		Eventually(playing(p), time.Second).Should(Equal(1))

		s := p.Status()
		Expect(s.NowPlaying.Cover.Placeholder).To(BeTrue())
		Expect(s.NowPlaying.Degraded).To(ConsistOf(assets.ArtifactCover))
		Expect(s.Error).To(HaveOccurred())
	})

	It("should record a timed out load", func() {
		gate := make(chan struct{})
		defer close(gate)

		p := newPlayer([]loader.Artifact{{
			Name: assets.ArtifactTrack,
			Load: func(ctx context.Context, key int) (any, error) {
				<-gate
				return nil, nil
			},
		}}, loader.WithTimeout(30*time.Millisecond))

		Expect(p.Play(ctx, 1)).To(Succeed())

		Eventually(func() error { return p.Status().Error }, time.Second).Should(MatchError(ContainSubstring("timed out")))
		s := p.Status()
		Expect(s.State).To(Equal(models.PlayerStateIdle))
		Expect(s.Loading).To(BeNil())
	})

	It("should stop the tick loop", func() {
		l := loader.New(sched, []loader.Artifact{albumArtifact(catalog)})
		p := NewPlayer(sched, l, catalog, 5*time.Millisecond)
		p.Start(ctx)
		p.Start(ctx)
		p.Stop()

		Expect(p.Play(ctx, 0)).To(Succeed())
		Consistently(func() models.PlayerState { return p.Status().State }, 100*time.Millisecond).Should(Equal(models.PlayerStateIdle))
		p.Stop()
	})

	DescribeTable("neighbour",
		func(indexes []int, cur int, dir loader.Direction, expected int) {
			Expect(neighbour(indexes, cur, dir)).To(Equal(expected))
		},
		Entry("next from nothing", []int{3, 5, 9}, -1, loader.DirectionNext, 3),
		Entry("prev from nothing", []int{3, 5, 9}, -1, loader.DirectionPrev, 9),
		Entry("next in the middle", []int{3, 5, 9}, 5, loader.DirectionNext, 9),
		Entry("next wraps", []int{3, 5, 9}, 9, loader.DirectionNext, 3),
		Entry("prev wraps", []int{3, 5, 9}, 3, loader.DirectionPrev, 9),
		Entry("next from a removed album", []int{3, 5, 9}, 4, loader.DirectionNext, 5),
		Entry("prev from a removed album", []int{3, 5, 9}, 4, loader.DirectionPrev, 3),
		Entry("next past the end", []int{3, 5, 9}, 12, loader.DirectionNext, 3),
		Entry("single album", []int{7}, 7, loader.DirectionNext, 7),
	)
})
