// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-workoutlog/restserver"
	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

const requestIDHeader = "X-Request-Id"

// HTTP serves the REST API.
type HTTP struct {
	Store    workoutlog.Store
	Config   Config
	Log      *logrus.Logger
	Registry prometheus.Registerer
	Gatherer prometheus.Gatherer
	Clock    clock.Clock
}

// Handler builds the full middleware chain around the API router.
func (h *HTTP) Handler() (http.Handler, error) {
	if h.Clock == nil {
		h.Clock = clock.New()
	}
	metrics, err := restserver.NewMetrics(h.Registry, h.Clock)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()
	restserver.PopulateRouter(r, h.Store, restserver.Options{
		DocsURL: h.Config.DocsURL,
		Log:     h.Log,
		Metrics: metrics,
	})
	r.Handle("/metrics", promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{}))

	recovery := negroni.NewRecovery()
	recovery.Logger = h.Log
	recovery.PrintStack = false

	n := negroni.New(recovery, negroni.HandlerFunc(requestID))
	if h.Config.Log.Requests {
		n.Use(requestLogger(h.Log, h.Clock))
	}
	n.UseHandler(r)
	return n, nil
}

// Serve runs an HTTP server on the configured address until it fails.
func (h *HTTP) Serve() error {
	handler, err := h.Handler()
	if err != nil {
		return err
	}
	h.Log.WithField("bind", h.Config.HTTP.Bind).Info("serving workout log")
	return http.ListenAndServe(h.Config.HTTP.Bind, handler)
}

// requestID tags every request and response with an identifier,
// keeping one the client supplied.
func requestID(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	id := r.Header.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewV4().String()
		r.Header.Set(requestIDHeader, id)
	}
	w.Header().Set(requestIDHeader, id)
	next(w, r)
}

func requestLogger(log logrus.FieldLogger, clk clock.Clock) negroni.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		start := clk.Now()
		next(w, r)
		fields := logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": r.Header.Get(requestIDHeader),
			"duration":   clk.Now().Sub(start),
		}
		if res, ok := w.(negroni.ResponseWriter); ok {
			fields["status"] = res.Status()
		}
		log.WithFields(fields).Info("request")
	}
}
