// Regression tests for rest.go.
//
// Main tests are really by running the end-to-end path, using the
// workoutlogtest tests driven from restclient.  This only contains
// special-case bug tests.
//
// Copyright 2016-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/diffeo/go-workoutlog/memory"
	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type failResponseWriter struct {
	Headers    http.Header
	StatusCode int
}

func (rw *failResponseWriter) Header() http.Header {
	if rw.Headers == nil {
		rw.Headers = make(http.Header)
	}
	return rw.Headers
}

func (rw *failResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("foo")
}

func (rw *failResponseWriter) WriteHeader(code int) {
	rw.StatusCode = code
}

// TestDoubleFault checks that, if there is an error serializing a JSON
// response, it doesn't actually panic the process.
func TestDoubleFault(t *testing.T) {
	backend := memory.New()
	_, err := backend.AddWorkout(workoutlog.Workout{
		DateTime: time.Date(2021, 8, 12, 14, 15, 0, 0, time.UTC),
	})
	if !assert.NoError(t, err) {
		return
	}

	router := NewRouter(backend)
	req := &http.Request{
		Method: http.MethodGet,
		URL: &url.URL{
			Path: "/api/workouts/1/",
		},
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{},
		Close:      true,
		Host:       "localhost",
	}
	resp := &failResponseWriter{}
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestPanic checks that a panicking handler produces a 500 error
// document and a log entry.
func TestPanic(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	h := &resourceHandler{
		Context: func(*http.Request) (*context, error) {
			return &context{}, nil
		},
		Log: log,
		Get: func(*context) (interface{}, error) {
			panic("boom")
		},
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/boom/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, restdata.MasonMediaType, rec.Header().Get("Content-Type"))

	doc, err := restdata.Decode(rec.Header().Get("Content-Type"), rec.Body, nil)
	if assert.NoError(t, err) {
		assert.Equal(t, "/api/boom/", doc["resource_url"])
	}
	if assert.NotNil(t, hook.LastEntry()) {
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
		assert.Equal(t, "boom", hook.LastEntry().Data["panic"])
	}
}

func TestNegotiateResponse(t *testing.T) {
	tests := []struct {
		Accept string
		Type   string
		Status int
	}{
		{"", restdata.MasonMediaType, 0},
		{"*/*", restdata.MasonMediaType, 0},
		{"application/json", restdata.JSONMediaType, 0},
		{"text/*", "text/json", 0},
		{"text/html, application/json;q=0.5", restdata.JSONMediaType, 0},
		{"application/json;q=0.5, application/vnd.mason+json", restdata.MasonMediaType, 0},
		{"image/png", "", http.StatusNotAcceptable},
	}
	for _, test := range tests {
		req := httptest.NewRequest("GET", "/api/", nil)
		if test.Accept != "" {
			req.Header.Set("Accept", test.Accept)
		}
		mediaType, err := negotiateResponse(req)
		if test.Status == 0 {
			if assert.NoError(t, err, test.Accept) {
				assert.Equal(t, test.Type, mediaType, test.Accept)
			}
		} else if assert.Error(t, err, test.Accept) {
			status, _, _ := restdata.Status(err)
			assert.Equal(t, test.Status, status, test.Accept)
		}
	}
}
