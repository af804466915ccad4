// Package metrics provides Prometheus metrics for the feed engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "feedengine"

var (
	// FeedPagesTotal counts feed page requests by sort and outcome.
	FeedPagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_pages_total",
			Help:      "Total number of feed pages served",
		},
		[]string{"sort_by", "status"},
	)

	// FeedPageDuration measures feed page assembly time.
	FeedPageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_page_duration_seconds",
			Help:      "Duration of feed page assembly in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"sort_by"},
	)

	// SearchRequestsTotal counts search and suggestion requests.
	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Total number of search requests",
		},
		[]string{"kind", "status"},
	)

	// SearchDuration measures the full search round trip including hydration.
	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Duration of search requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// SearchHitsDropped counts external hits that did not survive hydration.
	SearchHitsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_hits_dropped_total",
			Help:      "Search hits dropped because the post is missing or filtered out",
		},
	)

	// HiddenPostsTotal counts hide and report actions by result.
	HiddenPostsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hidden_posts_total",
			Help:      "Total number of hide and report actions",
		},
		[]string{"action", "result"},
	)

	// ReportEventsTotal counts report notifications by publish status.
	ReportEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_events_total",
			Help:      "Total number of post reported notifications",
		},
		[]string{"status"},
	)
)

// Status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

func statusOf(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}

// RecordFeedPage records one feed page request.
func RecordFeedPage(sortBy string, started time.Time, err error) {
	FeedPagesTotal.WithLabelValues(sortBy, statusOf(err)).Inc()
	FeedPageDuration.WithLabelValues(sortBy).Observe(time.Since(started).Seconds())
}

// RecordSearch records one search or suggestion request.
func RecordSearch(kind string, started time.Time, err error) {
	SearchRequestsTotal.WithLabelValues(kind, statusOf(err)).Inc()
	SearchDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}

// RecordDroppedHits adds n to the dropped hits counter.
func RecordDroppedHits(n int) {
	if n > 0 {
		SearchHitsDropped.Add(float64(n))
	}
}

// RecordHide records a hide or report outcome: "created", "existing" or "error".
func RecordHide(action, result string) {
	HiddenPostsTotal.WithLabelValues(action, result).Inc()
}

// RecordReportEvent records whether a report notification was published.
func RecordReportEvent(err error) {
	ReportEventsTotal.WithLabelValues(statusOf(err)).Inc()
}
