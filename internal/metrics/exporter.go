package metrics

import (
	"errors"
	"fmt"
	"strings"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/tupyy/parcm/pkg/scheduler"
)

const namespace = "parcm"

// Exporter adapts scheduler.Metrics to Prometheus collectors.
type Exporter struct {
	submitted *prom.CounterVec
	rejected  *prom.CounterVec
	finished  *prom.CounterVec
	duration  *prom.HistogramVec
	running   prom.Gauge
	idle      prom.Gauge
	queue     prom.Gauge
}

var _ scheduler.Metrics = (*Exporter)(nil)

// NewExporter creates the collectors and registers them on reg. A nil reg uses the default registerer.
func NewExporter(reg prom.Registerer) (*Exporter, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}

	e := &Exporter{
		submitted: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "tasks_submitted_total",
			Help:      "Total number of tasks accepted by the scheduler.",
		}, []string{"kind"}),
		rejected: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "tasks_rejected_total",
			Help:      "Total number of tasks refused by the scheduler.",
		}, []string{"kind", "reason"}),
		finished: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "tasks_finished_total",
			Help:      "Total number of finished tasks by outcome.",
		}, []string{"kind", "outcome"}),
		duration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "task_duration_seconds",
			Help:      "Task execution duration in seconds.",
			Buckets:   prom.DefBuckets,
		}, []string{"kind"}),
		running: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "workers_active",
			Help:      "Workers currently running a task.",
		}),
		idle: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "workers_idle",
			Help:      "Workers waiting for a task.",
		}),
		queue: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "queue_depth",
			Help:      "Tasks waiting for a worker.",
		}),
	}

	var err error
	if e.submitted, err = register(reg, e.submitted); err != nil {
		return nil, err
	}
	if e.rejected, err = register(reg, e.rejected); err != nil {
		return nil, err
	}
	if e.finished, err = register(reg, e.finished); err != nil {
		return nil, err
	}
	if e.duration, err = register(reg, e.duration); err != nil {
		return nil, err
	}
	if e.running, err = register(reg, e.running); err != nil {
		return nil, err
	}
	if e.idle, err = register(reg, e.idle); err != nil {
		return nil, err
	}
	if e.queue, err = register(reg, e.queue); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Exporter) TaskSubmitted(name string) {
	e.submitted.WithLabelValues(kind(name)).Inc()
}

func (e *Exporter) TaskRejected(name, reason string) {
	e.rejected.WithLabelValues(kind(name), reason).Inc()
}

func (e *Exporter) TaskStarted(string) {}

func (e *Exporter) TaskFinished(name string, d time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	e.finished.WithLabelValues(kind(name), outcome).Inc()
	e.duration.WithLabelValues(kind(name)).Observe(d.Seconds())
}

func (e *Exporter) Workers(idle, active int) {
	e.idle.Set(float64(idle))
	e.running.Set(float64(active))
}

func (e *Exporter) QueueDepth(n int) {
	e.queue.Set(float64(n))
}

// kind strips the numeric suffix of a task name so "load-12" is counted as "load".
func kind(name string) string {
	if name == "" {
		return "unknown"
	}
	if i := strings.LastIndexByte(name, '-'); i > 0 {
		if strings.Trim(name[i+1:], "0123456789") == "" {
			return name[:i]
		}
	}
	return name
}

func register[T prom.Collector](reg prom.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var already prom.AlreadyRegisteredError
	if errors.As(err, &already) {
		existing, ok := already.ExistingCollector.(T)
		if !ok {
			return c, fmt.Errorf("collector type mismatch for %T", c)
		}
		return existing, nil
	}
	return c, err
}
