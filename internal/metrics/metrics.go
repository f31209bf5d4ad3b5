// Package metrics registers the Prometheus collectors updated from the
// pipeline. HTTP-level metrics are left to the echo middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FilesProcessed counts terminal pipeline outcomes by status.
	FilesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "middleware_files_processed_total",
			Help: "Terminal pipeline outcomes by status",
		},
		[]string{"status"},
	)

	// DuplicatesSuppressed counts events rejected by the dedup claim.
	DuplicatesSuppressed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "middleware_duplicates_suppressed_total",
			Help: "Events suppressed because their fingerprint was already claimed",
		},
	)
)
