package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ApplicationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "partnerup_applications_created_total", Help: "Total applications submitted"},
	)
	ApplicationsDuplicate = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "partnerup_applications_duplicate_total", Help: "Total applications rejected as duplicates"},
	)
	ApplicationTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "partnerup_application_transitions_total", Help: "Total application status transitions"},
		[]string{"status"},
	)
	NotificationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "partnerup_notification_failures_total", Help: "Total status-change notifications that could not be created"},
	)
	FeedCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "partnerup_feed_cache_hits_total", Help: "Open project listings served from cache"},
	)
	FeedCacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "partnerup_feed_cache_misses_total", Help: "Open project listings loaded from the database"},
	)
	CascadeDeleteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "partnerup_cascade_delete_failures_total", Help: "Project deletes that stopped after purging applications"},
	)
)

func Register() {
	prometheus.MustRegister(
		ApplicationsCreated,
		ApplicationsDuplicate,
		ApplicationTransitions,
		NotificationFailures,
		FeedCacheHits,
		FeedCacheMisses,
		CascadeDeleteFailures,
	)
}
