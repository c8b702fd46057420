package server

import (
	"time"

	"github.com/osuushi/closestpair/closest"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	solves        *prometheus.CounterVec
	solveDuration *prometheus.HistogramVec
	pointCount    prometheus.Histogram
	requests      *prometheus.CounterVec
	rateLimited   prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "closestpair_solves_total",
			Help: "Solves completed, by algorithm and whether a pair was found",
		}, []string{"algorithm", "found"}),
		solveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "closestpair_solve_duration_seconds",
			Help:    "Time spent in the solver",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm"}),
		pointCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "closestpair_points",
			Help:    "Number of points per solve",
			Buckets: prometheus.ExponentialBuckets(2, 4, 9),
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "closestpair_http_requests_total",
			Help: "HTTP requests, by path and status code",
		}, []string{"path", "code"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "closestpair_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		}),
	}

	reg.MustRegister(m.solves)
	reg.MustRegister(m.solveDuration)
	reg.MustRegister(m.pointCount)
	reg.MustRegister(m.requests)
	reg.MustRegister(m.rateLimited)
	return m
}

func (m *metrics) observeSolve(algorithm closest.Algorithm, n int, pair closest.Pair, d time.Duration) {
	found := "false"
	if pair.Found() {
		found = "true"
	}
	m.solves.WithLabelValues(string(algorithm), found).Inc()
	m.solveDuration.WithLabelValues(string(algorithm)).Observe(d.Seconds())
	m.pointCount.Observe(float64(n))
}
