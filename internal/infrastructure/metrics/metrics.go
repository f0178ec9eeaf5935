package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clubsite",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "clubsite",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clubsite",
		Name:      "news_cache_lookups_total",
		Help:      "News cache lookups by kind (detail, list) and result (hit, miss, error).",
	}, []string{"kind", "result"})

	cacheDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "clubsite",
		Name:      "news_cache_lookup_duration_seconds",
		Help:      "News cache lookup latency by result.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
	}, []string{"result"})

	contactMessages = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "clubsite",
		Name:      "contact_messages_received_total",
		Help:      "Contact form messages accepted.",
	})

	registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clubsite",
		Name:      "registrations_created_total",
		Help:      "Registrations created by class level.",
	}, []string{"level"})
)

// ObserveRequest records one served HTTP request.
func ObserveRequest(method, route, status string, seconds float64) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(seconds)
}

func IncListHit()    { cacheLookups.WithLabelValues("list", "hit").Inc() }
func IncListMiss()   { cacheLookups.WithLabelValues("list", "miss").Inc() }
func IncDetailHit()  { cacheLookups.WithLabelValues("detail", "hit").Inc() }
func IncDetailMiss() { cacheLookups.WithLabelValues("detail", "miss").Inc() }

func IncCacheError(kind string) { cacheLookups.WithLabelValues(kind, "error").Inc() }

func AddHitDuration(seconds float64)  { cacheDuration.WithLabelValues("hit").Observe(seconds) }
func AddMissDuration(seconds float64) { cacheDuration.WithLabelValues("miss").Observe(seconds) }

func IncContactMessage() { contactMessages.Inc() }

func IncRegistration(level string) { registrations.WithLabelValues(level).Inc() }
