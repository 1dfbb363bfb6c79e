// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-workoutlog/memory"
	"github.com/diffeo/go-workoutlog/restserver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, logRequests bool) (http.Handler, *test.Hook) {
	logger, hook := test.NewNullLogger()
	registry := prometheus.NewRegistry()
	h := HTTP{
		Store: memory.New(),
		Config: Config{
			DocsURL: restserver.DefaultDocsURL,
			Log:     LogConfig{Requests: logRequests},
		},
		Log:      logger,
		Registry: registry,
		Gatherer: registry,
		Clock:    clock.NewMock(),
	}
	handler, err := h.Handler()
	require.NoError(t, err)
	return handler, hook
}

func TestRequestID(t *testing.T) {
	handler, _ := newTestHandler(t, false)

	req := httptest.NewRequest("GET", "/api/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, resp.Header().Get(requestIDHeader), 36)

	req = httptest.NewRequest("GET", "/api/", nil)
	req.Header.Set(requestIDHeader, "abc123")
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	assert.Equal(t, "abc123", resp.Header().Get(requestIDHeader))
}

func TestRequestLogging(t *testing.T) {
	handler, hook := newTestHandler(t, true)

	req := httptest.NewRequest("GET", "/api/workouts/1/", nil)
	req.Header.Set(requestIDHeader, "abc123")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, "request", entry.Message)
		assert.Equal(t, "/api/workouts/1/", entry.Data["path"])
		assert.Equal(t, http.StatusNotFound, entry.Data["status"])
		assert.Equal(t, "abc123", entry.Data["request_id"])
	}
}

func TestNoRequestLogging(t *testing.T) {
	handler, hook := newTestHandler(t, false)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/", nil))
	assert.Empty(t, hook.AllEntries())
}

func TestMetricsEndpoint(t *testing.T) {
	handler, _ := newTestHandler(t, false)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/", nil))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "diffeo_workoutlog_requests_total")
}

func TestCommands(t *testing.T) {
	for _, command := range []string{"init-db", "testgen", "delete-db"} {
		t.Run(command, func(t *testing.T) {
			err := newApp().Run([]string{"workoutlogd", "--backend", "memory", command})
			assert.NoError(t, err)
		})
	}
}
