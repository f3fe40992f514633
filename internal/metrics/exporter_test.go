package metrics

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tupyy/parcm/pkg/scheduler"
)

var _ = Describe("Exporter", func() {
	var (
		reg *prom.Registry
		e   *Exporter
	)

	BeforeEach(func() {
		reg = prom.NewRegistry()

		var err error
		e, err = NewExporter(reg)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should count tasks by kind and outcome", func() {
		e.TaskSubmitted("load-1")
		e.TaskSubmitted("load-2")
		e.TaskFinished("load-1", 10*time.Millisecond, nil)
		e.TaskFinished("load-2", 10*time.Millisecond, errors.New("boom"))

		Expect(testutil.ToFloat64(e.submitted.WithLabelValues("load"))).To(Equal(2.0))
		Expect(testutil.ToFloat64(e.finished.WithLabelValues("load", "success"))).To(Equal(1.0))
		Expect(testutil.ToFloat64(e.finished.WithLabelValues("load", "error"))).To(Equal(1.0))
	})

	It("should track gauges", func() {
		e.Workers(3, 1)
		e.QueueDepth(7)

		Expect(testutil.ToFloat64(e.idle)).To(Equal(3.0))
		Expect(testutil.ToFloat64(e.running)).To(Equal(1.0))
		Expect(testutil.ToFloat64(e.queue)).To(Equal(7.0))
	})

	It("should reuse collectors already registered", func() {
		again, err := NewExporter(reg)
		Expect(err).NotTo(HaveOccurred())

		again.TaskRejected("load-3", "saturated")
		Expect(testutil.ToFloat64(e.rejected.WithLabelValues("load", "saturated"))).To(Equal(1.0))
	})

	// Given a scheduler wired to the exporter
	// When tasks run to completion
	// Then the finished counter matches the submitted counter
	It("should record scheduler events", func() {
		s := scheduler.NewScheduler(2, scheduler.WithMetrics(e))
		s.Start()
		defer s.Close()

		for range 5 {
			_, err := s.SubmitNamed("probe", func(ctx context.Context) (any, error) { return nil, nil })
			Expect(err).NotTo(HaveOccurred())
		}

		Eventually(func() float64 {
			return testutil.ToFloat64(e.finished.WithLabelValues("probe", "success"))
		}, time.Second).Should(Equal(5.0))
		Expect(testutil.ToFloat64(e.submitted.WithLabelValues("probe"))).To(Equal(5.0))
	})

	DescribeTable("kind",
		func(name, expected string) {
			Expect(kind(name)).To(Equal(expected))
		},
		Entry("numeric suffix", "load-12", "load"),
		Entry("no suffix", "probe", "probe"),
		Entry("non numeric suffix", "load-next", "load-next"),
		Entry("empty", "", "unknown"),
	)
})
