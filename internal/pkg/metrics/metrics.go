package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rental"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ReservationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "reservations_created_total", Help: "Confirmed reservations."},
	)
	ReservationsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "reservations_rejected_total", Help: "Booking attempts refused by a rule."},
		[]string{"reason"}, // validation|date_order|capacity|unavailable
	)
	CommissionsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "commissions_generated_total", Help: "Commission rows written."},
		[]string{"type"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "cache_events_total", Help: "Cache hits/misses/sets/invalidations."},
		[]string{"cache", "event"}, // event: hit|miss|set|invalidate|error
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		HTTPRequests,
		HTTPLatency,
		ReservationsCreated,
		ReservationsRejected,
		CommissionsGenerated,
		CacheEvents,
	)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveReservationCreated() {
	ReservationsCreated.Inc()
}

func ObserveReservationRejected(reason string) {
	ReservationsRejected.WithLabelValues(reason).Inc()
}

func ObserveCommission(commissionType string) {
	CommissionsGenerated.WithLabelValues(commissionType).Inc()
}

func ObserveCache(cache, event string) {
	CacheEvents.WithLabelValues(cache, event).Inc()
}
