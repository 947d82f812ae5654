// SPDX-License-Identifier: MIT

// Package metrics wraps a *rowset.Set with Prometheus instrumentation,
// in the decorator style used throughout the indexing services this
// package's stack is drawn from: wrap the thing being measured, forward
// every call, record around the forward.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vdbgo/rowset"
)

const namespace = "rowset"

// Recorder wraps a *rowset.Set and records its cardinality and insert
// latency as Prometheus metrics. Its own method set mirrors the subset
// of *rowset.Set that mutates or inspects state; callers needing the
// full Set API reach through Recorder.Set.
type Recorder struct {
	set *rowset.Set

	cardinality   prometheus.GaugeFunc
	insertTotal   prometheus.Counter
	insertFailed  *prometheus.CounterVec
	insertLatency prometheus.Histogram
}

// NewRecorder wraps set and registers its metrics collectors against
// reg. set must already hold a reference the caller intends to pass
// ownership of; Recorder.Release drops it.
func NewRecorder(reg prometheus.Registerer, set *rowset.Set) *Recorder {
	r := &Recorder{set: set}

	r.cardinality = promauto.With(reg).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cardinality",
		Help:      "number of distinct row ids currently held",
	}, func() float64 {
		n, err := r.set.Cardinality()
		if err != nil {
			return 0
		}
		return float64(n)
	})

	r.insertTotal = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inserts_total",
		Help:      "number of rows successfully inserted",
	})

	r.insertFailed = promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "insert_errors_total",
		Help:      "number of insert calls that returned an error, by kind",
	}, []string{"kind"})

	r.insertLatency = promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "insert_duration_seconds",
		Help:      "latency of InsertRow/InsertRange calls",
		Buckets:   prometheus.DefBuckets,
	})

	return r
}

// InsertRow wraps (*rowset.Set).InsertRow, recording its latency and
// outcome.
func (r *Recorder) InsertRow(id int64) error {
	before, _ := r.set.Cardinality()
	err := r.observe(func() error { return r.set.InsertRow(id) })
	after, _ := r.set.Cardinality()
	r.insertTotal.Add(float64(after - before))
	return err
}

// InsertRange wraps (*rowset.Set).InsertRange, recording its latency
// and outcome. The rows counter is incremented by the set's cardinality
// delta, not by count, since a partial failure may insert fewer rows
// than requested.
func (r *Recorder) InsertRange(start int64, count uint64) error {
	before, _ := r.set.Cardinality()
	err := r.observe(func() error { return r.set.InsertRange(start, count) })
	after, _ := r.set.Cardinality()
	r.insertTotal.Add(float64(after - before))
	return err
}

func (r *Recorder) observe(fn func() error) error {
	start := time.Now()
	err := fn()
	r.insertLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		kind, ok := rowset.KindOf(err)
		label := "unknown"
		if ok {
			label = kind.String()
		}
		r.insertFailed.WithLabelValues(label).Inc()
	}
	return err
}

// Cardinality reports the number of rows currently held.
func (r *Recorder) Cardinality() (uint64, error) { return r.set.Cardinality() }

// Walk delegates to the wrapped Set.
func (r *Recorder) Walk(reverse bool, fn func(id int64)) error { return r.set.Walk(reverse, fn) }

// Set returns the wrapped *rowset.Set for callers that need the full
// API surface (iterators, AddRef).
func (r *Recorder) Set() *rowset.Set { return r.set }

// Release releases the wrapped set's reference.
func (r *Recorder) Release() error { return r.set.Release() }
