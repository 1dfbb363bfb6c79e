// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"
	"strconv"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts and times API requests by route name, method, and
// response status.
type Metrics struct {
	// Clock times requests.
	Clock clock.Clock

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the request metrics and registers them.  A nil
// clock means the real clock.
func NewMetrics(reg prometheus.Registerer, clk clock.Clock) (*Metrics, error) {
	if clk == nil {
		clk = clock.New()
	}
	m := &Metrics{
		Clock: clk,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "diffeo",
				Subsystem: "workoutlog",
				Name:      "requests_total",
				Help:      "Number of API requests handled",
			},
			[]string{"route", "method", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "diffeo",
				Subsystem: "workoutlog",
				Name:      "request_duration_seconds",
				Help:      "Time taken to handle API requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
	}
	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// statusRecorder remembers the status code a handler wrote.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Instrument wraps a handler so every request it serves is counted
// and timed under the name of the route that matched.
func (m *Metrics) Instrument(h http.Handler) http.Handler {
	return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		start := m.Clock.Now()
		rec := &statusRecorder{ResponseWriter: resp, status: http.StatusOK}
		h.ServeHTTP(rec, req)

		route := ""
		if r := mux.CurrentRoute(req); r != nil {
			route = r.GetName()
		}
		labels := prometheus.Labels{
			"route":  route,
			"method": req.Method,
			"status": strconv.Itoa(rec.status),
		}
		m.requests.With(labels).Inc()
		m.duration.With(labels).Observe(m.Clock.Now().Sub(start).Seconds())
	})
}
