package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Repository method calls by outcome
	RepositoryCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repository_calls_total",
			Help: "Total number of repository method calls",
		},
		[]string{"method", "status"},
	)

	RepositoryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "repository_duration_seconds",
			Help:    "Duration of repository method calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Runner-wrapped admin actions by result (success/failed)
	ActionRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_action_runs_total",
			Help: "Total number of admin actions executed by the action runner",
		},
		[]string{"transactional", "result"},
	)

	GalleryUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travel_gallery_uploads_total",
			Help: "Total number of travel gallery uploads by result",
		},
		[]string{"result"},
	)

	// Files that could not be removed during cleanup
	OrphanedFiles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_orphaned_files_total",
			Help: "Total number of stored files left behind or cleaned up later",
		},
		[]string{"stage"},
	)
)

func InitMetrics() {
	prometheus.MustRegister(RepositoryCalls, RepositoryDuration, ActionRuns, GalleryUploads, OrphanedFiles)
}
