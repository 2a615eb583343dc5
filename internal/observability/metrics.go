// Package observability provides metrics and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialpod_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// StoreOperationLatency records store latency by backend, operation and collection.
	StoreOperationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "socialpod_store_operation_latency_seconds",
		Help:    "Store operation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend", "operation", "collection"})

	// CacheLookups counts cache reads by key family and outcome.
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialpod_cache_lookups_total",
		Help: "Total cache lookups by key family and result",
	}, []string{"family", "result"})

	// VotesTotal counts recorded votes by kind.
	VotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialpod_votes_total",
		Help: "Total number of post votes by kind",
	}, []string{"kind"})

	// PaymentIntentsTotal counts payment intent attempts by outcome.
	PaymentIntentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialpod_payment_intents_total",
		Help: "Total payment intent attempts by outcome",
	}, []string{"outcome"})
)

// StoreMetrics records latency for one store backend.
type StoreMetrics struct {
	backend string
}

// NewStoreMetrics returns a StoreMetrics labelled with backend.
func NewStoreMetrics(backend string) *StoreMetrics {
	return &StoreMetrics{backend: backend}
}

// ObserveQuery records the latency of a store operation.
func (m *StoreMetrics) ObserveQuery(operation, collection string, start time.Time) {
	if m == nil {
		return
	}
	StoreOperationLatency.WithLabelValues(m.backend, operation, collection).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *StoreMetrics) TrackQuery(operation, collection string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, collection, start)
	}
}
