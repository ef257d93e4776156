// Package metrics holds the Prometheus collectors of the ledger. They register
// on the default registry and are served on /metrics.
package metrics

import (
	"errors"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EntriesPosted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ledger",
	Subsystem: "journal",
	Name:      "entries_posted_total",
	Help:      "Journal entries persisted, by source.",
}, []string{"source"})

var DuplicatePostings = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ledger",
	Subsystem: "journal",
	Name:      "duplicate_postings_total",
	Help:      "Postings answered with an existing entry, by source.",
}, []string{"source"})

var PostingRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ledger",
	Subsystem: "journal",
	Name:      "rejections_total",
	Help:      "Postings rejected, by source and error category.",
}, []string{"source", "category"})

var PeriodTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ledger",
	Subsystem: "period",
	Name:      "transitions_total",
	Help:      "Fiscal period status transitions, by target status.",
}, []string{"status"})

var ConsistencyFaults = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ledger",
	Subsystem: "reports",
	Name:      "consistency_faults_total",
	Help:      "Ledger invariant violations detected on read, by check.",
}, []string{"check"})

var StatementCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ledger",
	Subsystem: "reports",
	Name:      "cache_lookups_total",
	Help:      "Statement cache lookups, by result (hit, miss, error).",
}, []string{"result"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "ledger",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency, by route and status class.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method", "status"})

var RateLimited = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ledger",
	Subsystem: "http",
	Name:      "rate_limited_total",
	Help:      "Requests rejected by the rate limiter.",
})

// Category names the error category used as a metric label.
func Category(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return "validation"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrConflict):
		return "conflict"
	case errors.Is(err, apperrors.ErrState):
		return "state"
	case errors.Is(err, apperrors.ErrConsistency):
		return "consistency"
	}
	return "internal"
}
