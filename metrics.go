package vecstore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    searchHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSearch(k, results int, duration time.Duration, err error) {
//	    p.searchHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordAdd is called after each add operation.
	RecordAdd(duration time.Duration)

	// RecordSearch is called after each search operation.
	// k is the number of neighbors requested, results the number returned.
	RecordSearch(k, results int, duration time.Duration, err error)

	// RecordSave is called after each save with the number of items written.
	RecordSave(items int, duration time.Duration, err error)

	// RecordLoad is called after each load with the number of items read.
	RecordLoad(items int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(time.Duration)                     {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSave(int, time.Duration, error)        {}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount         atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	SearchResults    atomic.Int64
	SaveCount        atomic.Int64
	SaveErrors       atomic.Int64
	SaveItems        atomic.Int64
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
	LoadItems        atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(time.Duration) {
	b.AddCount.Add(1)
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(_, results int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	b.SearchResults.Add(int64(results))
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(items int, _ time.Duration, err error) {
	b.SaveCount.Add(1)
	if err != nil {
		b.SaveErrors.Add(1)
		return
	}
	b.SaveItems.Add(int64(items))
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(items int, _ time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadItems.Add(int64(items))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:       b.AddCount.Load(),
		SearchCount:    b.SearchCount.Load(),
		SearchErrors:   b.SearchErrors.Load(),
		SearchAvgNanos: b.getAvgSearchNanos(),
		SearchResults:  b.SearchResults.Load(),
		SaveCount:      b.SaveCount.Load(),
		SaveErrors:     b.SaveErrors.Load(),
		SaveItems:      b.SaveItems.Load(),
		LoadCount:      b.LoadCount.Load(),
		LoadErrors:     b.LoadErrors.Load(),
		LoadItems:      b.LoadItems.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount       int64
	SearchCount    int64
	SearchErrors   int64
	SearchAvgNanos int64
	SearchResults  int64
	SaveCount      int64
	SaveErrors     int64
	SaveItems      int64
	LoadCount      int64
	LoadErrors     int64
	LoadItems      int64
}
