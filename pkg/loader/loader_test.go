package loader_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/parcm/pkg/loader"
	"github.com/tupyy/parcm/pkg/scheduler"
)

func named(prefix string) func(ctx context.Context, key int) (any, error) {
	return func(ctx context.Context, key int) (any, error) {
		return fmt.Sprintf("%s-%d", prefix, key), nil
	}
}

var _ = Describe("Loader", func() {
	var (
		ctx   context.Context
		sched *scheduler.Scheduler
	)

	BeforeEach(func() {
		ctx = context.Background()
		sched = scheduler.NewScheduler(2)
		sched.Start()
	})

	AfterEach(func() {
		sched.Close()
	})

	finalizeWhenReady := func(l *loader.Loader) {
		Eventually(l.IsReadyToFinalize, 2*time.Second, 5*time.Millisecond).Should(BeTrue())
		Expect(l.Finalize(ctx)).To(BeTrue())
	}

	Describe("BeginLoad and Finalize", func() {
		// Given a loader with two artifacts
		// When keys 0, 2 and 1 are loaded and finalized in sequence
		// Then the live state always reflects the last finalized key
		It("should reflect the most recently finalized key", func() {
			l := loader.New(sched, []loader.Artifact{
				{Name: "cover", Load: named("cover")},
				{Name: "track", Load: named("track")},
			})

			for _, key := range []int{0, 2, 1} {
				started, err := l.BeginLoad(key)
				Expect(err).NotTo(HaveOccurred())
				Expect(started).To(BeTrue())

				finalizeWhenReady(l)

				live := l.Live()
				Expect(live.Valid).To(BeTrue())
				Expect(live.Key).To(Equal(key))
				Expect(live.Values).To(HaveKeyWithValue("cover", fmt.Sprintf("cover-%d", key)))
				Expect(live.Values).To(HaveKeyWithValue("track", fmt.Sprintf("track-%d", key)))
				Expect(live.Failed).To(BeEmpty())

				slot := l.Slot()
				Expect(slot.Finalized).To(BeTrue())
				Expect(slot.Finished).To(BeTrue())
				Expect(slot.InProgress).To(BeFalse())
			}
		})

		It("should be a no-op when nothing is ready", func() {
			l := loader.New(sched, []loader.Artifact{{Name: "cover", Load: named("cover")}})

			before := l.Live()
			Expect(l.IsReadyToFinalize()).To(BeFalse())
			Expect(l.Finalize(ctx)).To(BeFalse())
			Expect(l.Live()).To(Equal(before))
			Expect(l.State()).To(Equal(loader.StateIdle))
		})

		It("should not finalize the same result twice", func() {
			l := loader.New(sched, []loader.Artifact{{Name: "cover", Load: named("cover")}})

			_, err := l.BeginLoad(3)
			Expect(err).NotTo(HaveOccurred())
			finalizeWhenReady(l)

			Expect(l.Finalize(ctx)).To(BeFalse())
			Expect(l.Live().Key).To(Equal(3))
		})

		It("should release the slot when the scheduler refuses the task", func() {
			l := loader.New(sched, []loader.Artifact{{Name: "cover", Load: named("cover")}})
			sched.Close()

			started, err := l.BeginLoad(1)
			Expect(started).To(BeFalse())
			Expect(errors.Is(err, scheduler.ErrClosed)).To(BeTrue())
			Expect(l.State()).To(Equal(loader.StateIdle))
		})
	})

	Describe("Single flight", func() {
		// Given a load blocked inside an artifact
		// When BeginLoad is called concurrently many times
		// Then exactly one load starts and the artifact body never runs twice at once
		It("should never run two loads concurrently", func() {
			var inside, peak, entries atomic.Int32
			unblock := make(chan struct{})

			l := loader.New(sched, []loader.Artifact{{
				Name: "cover",
				Load: func(ctx context.Context, key int) (any, error) {
					entries.Add(1)
					n := inside.Add(1)
					if n > peak.Load() {
						peak.Store(n)
					}
					<-unblock
					inside.Add(-1)
					return key, nil
				},
			}})

			var wg sync.WaitGroup
			var accepted atomic.Int32
			for i := range 10 {
				wg.Add(1)
				go func(key int) {
					defer GinkgoRecover()
					defer wg.Done()
					started, err := l.BeginLoad(key)
					Expect(err).NotTo(HaveOccurred())
					if started {
						accepted.Add(1)
					}
				}(i)
			}
			wg.Wait()

			Expect(accepted.Load()).To(BeEquivalentTo(1))
			Eventually(entries.Load, time.Second).Should(BeEquivalentTo(1))
			Expect(l.Slot().InProgress).To(BeTrue())

			close(unblock)
			finalizeWhenReady(l)
			Expect(peak.Load()).To(BeEquivalentTo(1))
			Expect(entries.Load()).To(BeEquivalentTo(1))
		})

		// Given a finished load that has not been finalized
		// When another load is requested
		// Then it is rejected until the result is finalized or discarded
		It("should reject a new load while a result waits for Finalize", func() {
			l := loader.New(sched, []loader.Artifact{{Name: "cover", Load: named("cover")}})

			_, err := l.BeginLoad(0)
			Expect(err).NotTo(HaveOccurred())
			Eventually(l.IsReadyToFinalize, time.Second).Should(BeTrue())

			started, err := l.BeginLoad(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(started).To(BeFalse())

			Expect(l.Discard()).To(BeTrue())
			Expect(l.State()).To(Equal(loader.StateIdle))
			Expect(l.Live().Valid).To(BeFalse())

			started, err = l.BeginLoad(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(started).To(BeTrue())
			finalizeWhenReady(l)
			Expect(l.Live().Key).To(Equal(1))
		})

		It("should not discard when nothing is loaded", func() {
			l := loader.New(sched, []loader.Artifact{{Name: "cover", Load: named("cover")}})
			Expect(l.Discard()).To(BeFalse())
		})
	})

	Describe("Artifact failures", func() {
		// Given an artifact whose decode fails and which has a fallback
		// When the load is finalized
		// Then the live value is the fallback and the other artifact is untouched
		It("should apply the fallback of a failed artifact", func() {
			l := loader.New(sched, []loader.Artifact{
				{Name: "cover", Load: named("cover")},
				{
					Name: "track",
					Load: func(ctx context.Context, key int) (any, error) {
						return nil, errors.New("bad wav header")
					},
					Fallback: func(ctx context.Context) (any, error) {
						return "silence", nil
					},
				},
			})

			_, err := l.BeginLoad(4)
			Expect(err).NotTo(HaveOccurred())
			finalizeWhenReady(l)

			live := l.Live()
			Expect(live.Values).To(HaveKeyWithValue("cover", "cover-4"))
			Expect(live.Values).To(HaveKeyWithValue("track", "silence"))
			Expect(live.Fallback).To(ConsistOf("track"))
			Expect(live.Failed).To(HaveKey("track"))
			Expect(l.Slot().Finalized).To(BeTrue())
		})

		It("should keep the previous live value when there is no fallback", func() {
			var fail atomic.Bool
			l := loader.New(sched, []loader.Artifact{
				{Name: "cover", Load: named("cover")},
				{
					Name: "track",
					Load: func(ctx context.Context, key int) (any, error) {
						if fail.Load() {
							return nil, errors.New("missing file")
						}
						return fmt.Sprintf("track-%d", key), nil
					},
				},
			})

			_, err := l.BeginLoad(0)
			Expect(err).NotTo(HaveOccurred())
			finalizeWhenReady(l)

			fail.Store(true)
			_, err = l.BeginLoad(1)
			Expect(err).NotTo(HaveOccurred())
			finalizeWhenReady(l)

			live := l.Live()
			Expect(live.Key).To(Equal(1))
			Expect(live.Values).To(HaveKeyWithValue("cover", "cover-1"))
			Expect(live.Values).To(HaveKeyWithValue("track", "track-0"))
			Expect(live.Kept).To(ConsistOf("track"))
		})

		It("should retry a failing fallback and then keep the previous value", func() {
			var attempts atomic.Int32
			l := loader.New(sched, []loader.Artifact{{
				Name: "cover",
				Load: func(ctx context.Context, key int) (any, error) {
					return nil, errors.New("decode failed")
				},
				Fallback: func(ctx context.Context) (any, error) {
					attempts.Add(1)
					return nil, errors.New("default missing too")
				},
			}}, loader.WithFallbackRetries(3))

			_, err := l.BeginLoad(0)
			Expect(err).NotTo(HaveOccurred())
			finalizeWhenReady(l)

			Expect(attempts.Load()).To(BeEquivalentTo(3))
			live := l.Live()
			Expect(live.Values).NotTo(HaveKey("cover"))
			Expect(live.Kept).To(ConsistOf("cover"))
			Expect(l.Slot().Finalized).To(BeTrue())
		})

		It("should treat a panicking artifact as failed", func() {
			l := loader.New(sched, []loader.Artifact{
				{Name: "cover", Load: func(ctx context.Context, key int) (any, error) { panic("corrupt") }},
				{Name: "track", Load: named("track")},
			})

			_, err := l.BeginLoad(2)
			Expect(err).NotTo(HaveOccurred())
			finalizeWhenReady(l)

			live := l.Live()
			Expect(live.Failed).To(HaveKey("cover"))
			Expect(live.Values).To(HaveKeyWithValue("track", "track-2"))
		})
	})

	Describe("Timeout", func() {
		// Given a load that never returns on its own
		// When the timeout expires
		// Then the slot is freed and the late completion of the stuck task is ignored
		It("should abandon a stuck load", func() {
			unblock := make(chan struct{})
			var stuck atomic.Bool
			stuck.Store(true)

			l := loader.New(sched, []loader.Artifact{{
				Name: "cover",
				Load: func(ctx context.Context, key int) (any, error) {
					if stuck.Load() {
						<-unblock
						return "stale", nil
					}
					return fmt.Sprintf("cover-%d", key), nil
				},
			}}, loader.WithTimeout(50*time.Millisecond))

			started, err := l.BeginLoad(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(started).To(BeTrue())
			gen := l.Slot().Generation

			Eventually(l.State, time.Second).Should(Equal(loader.StateIdle))
			Expect(l.Slot().Generation).To(BeNumerically(">", gen))

			stuck.Store(false)
			started, err = l.BeginLoad(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(started).To(BeTrue())
			finalizeWhenReady(l)

			close(unblock)
			Consistently(l.IsReadyToFinalize, 200*time.Millisecond).Should(BeFalse())
			Expect(l.Live().Values).To(HaveKeyWithValue("cover", "cover-1"))
		})
	})

	Describe("Requests", func() {
		It("should keep only the last request", func() {
			l := loader.New(sched, nil)

			_, ok := l.TakeRequest()
			Expect(ok).To(BeFalse())

			l.RequestNext(1)
			l.RequestPrev(5)

			r, ok := l.TakeRequest()
			Expect(ok).To(BeTrue())
			Expect(r).To(Equal(loader.Request{Key: 5, Direction: loader.DirectionPrev}))

			_, ok = l.TakeRequest()
			Expect(ok).To(BeFalse())
		})

		It("should not overwrite a newer request when putting one back", func() {
			l := loader.New(sched, nil)

			l.RequestNext(1)
			r, _ := l.TakeRequest()
			l.RequestNext(2)
			l.PutBackRequest(r)

			got, ok := l.TakeRequest()
			Expect(ok).To(BeTrue())
			Expect(got.Key).To(Equal(2))
		})
	})
})
