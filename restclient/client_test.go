// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diffeo/go-workoutlog/memory"
	"github.com/diffeo/go-workoutlog/restclient"
	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/diffeo/go-workoutlog/restserver"
	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/diffeo/go-workoutlog/workoutlog/workoutlogtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite sets up an object stack where the REST client code talks to
// the REST server code, which points at an in-memory backend.
type Suite struct {
	workoutlogtest.Suite
	server *httptest.Server
}

// SetupTest starts a server over an empty store before each test.
func (s *Suite) SetupTest() {
	s.server = httptest.NewServer(restserver.NewRouter(memory.New()))
	store, err := restclient.New(s.server.URL + "/api/")
	s.Require().NoError(err)
	s.Store = store
}

// TearDownTest stops the server.
func (s *Suite) TearDownTest() {
	s.server.Close()
}

// TestWorkoutLog runs the generic workout log tests over HTTP.
func TestWorkoutLog(t *testing.T) {
	suite.Run(t, &Suite{})
}

func TestEmptyURL(t *testing.T) {
	_, err := restclient.New("")
	assert.Error(t, err)
}

// TestNotAnAPI checks that a server that does not speak the
// protocol produces a plain remote error.
func TestNotAnAPI(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := restclient.New(server.URL + "/api/")
	if assert.IsType(t, restdata.ErrRemote{}, err) {
		assert.Equal(t, http.StatusNotFound, err.(restdata.ErrRemote).Status)
	}
}

// TestTypedErrors checks that server errors come back as the
// original Go types.
func TestTypedErrors(t *testing.T) {
	server := httptest.NewServer(restserver.NewRouter(memory.New()))
	defer server.Close()
	store, err := restclient.New(server.URL + "/api/")
	if !assert.NoError(t, err) {
		return
	}

	_, err = store.Workout(42)
	assert.Equal(t, workoutlog.ErrNoSuchWorkout{ID: 42}, err)

	_, err = store.Exercise("Push/Pull")
	assert.Equal(t, workoutlog.ErrNoSuchExercise{Name: "Push/Pull"}, err)

	_, err = store.WeeklyProgrammingItem("Main lift", 3)
	assert.Equal(t, workoutlog.ErrNoSuchWeeklyProgramming{ExerciseType: "Main lift", WeekNumber: 3}, err)
}
