// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		Err      error
		Status   int
		Title    string
		Messages []string
	}{
		{
			Err:      workoutlog.ErrNoSuchWorkout{ID: 4},
			Status:   http.StatusNotFound,
			Title:    "Not found",
			Messages: []string{"No workout was found with the id '4'"},
		},
		{
			Err:      workoutlog.ErrExerciseExists{Name: "Squat"},
			Status:   http.StatusConflict,
			Title:    "Already exists",
			Messages: []string{"Exercise with name 'Squat' already exists."},
		},
		{
			Err:      workoutlog.ErrInvalid{Message: "Note too long."},
			Status:   http.StatusBadRequest,
			Title:    "Note too long.",
			Messages: []string{"Note too long."},
		},
		{
			Err:      ErrUnsupportedMediaType{Type: "text/plain"},
			Status:   http.StatusUnsupportedMediaType,
			Title:    "Unsupported media type",
			Messages: []string{"Requests must be JSON"},
		},
		{
			Err:      ErrNotFound{Err: errors.New("illegal base64 data")},
			Status:   http.StatusNotFound,
			Title:    "Not found",
			Messages: []string{"illegal base64 data"},
		},
		{
			Err:      errors.New("disk on fire"),
			Status:   http.StatusInternalServerError,
			Title:    "Internal Server Error",
			Messages: []string{"disk on fire"},
		},
	}
	for _, test := range tests {
		status, title, messages := Status(test.Err)
		assert.Equal(t, test.Status, status, "%v", test.Err)
		assert.Equal(t, test.Title, title, "%v", test.Err)
		assert.Equal(t, test.Messages, messages, "%v", test.Err)
	}
}

// TestErrorRoundTrip checks that typed errors survive being sent as
// an error document.
func TestErrorRoundTrip(t *testing.T) {
	errs := []error{
		workoutlog.ErrNoSuchWorkout{ID: 4},
		workoutlog.ErrNoSuchExercise{Name: "Squat"},
		workoutlog.ErrExerciseNotInWorkout{WorkoutID: 2, Name: "Squat"},
		workoutlog.ErrNoSuchSet{WorkoutID: 1, ExerciseName: "Squat", Order: 3},
		workoutlog.ErrWorkoutExists{DateTime: "2021-08-12 14:15"},
		workoutlog.ErrWeeklyProgrammingExists{ExerciseType: "Main lift", WeekNumber: 2},
		workoutlog.ErrInvalid{Message: "Invalid date.", Detail: "parsing time"},
		ErrBadRequest{Title: invalidDocumentTitle, Detail: "(root): date is required"},
	}
	for _, err := range errs {
		status, _, _ := Status(err)
		doc := ErrorDocument(err, "/api/workouts/")
		assert.Equal(t, "/api/workouts/", doc["resource_url"])
		control, ok := doc.Control("profile")
		if assert.True(t, ok) {
			assert.Equal(t, "/profiles/error/", control.Href)
		}

		var buf bytes.Buffer
		if !assert.NoError(t, Encode(&buf, doc)) {
			continue
		}
		back, decodeErr := Decode(MasonMediaType, &buf, nil)
		if assert.NoError(t, decodeErr) {
			assert.Equal(t, err, back.ToError(status))
		}
	}
}

func TestErrorRemote(t *testing.T) {
	doc := PanicDocument("boom", "/api/")
	var buf bytes.Buffer
	if !assert.NoError(t, Encode(&buf, doc)) {
		return
	}
	back, err := Decode(MasonMediaType, &buf, nil)
	if assert.NoError(t, err) {
		assert.Equal(t, ErrRemote{
			Status:   http.StatusInternalServerError,
			Message:  "Internal server error",
			Messages: []string{"boom"},
		}, back.ToError(http.StatusInternalServerError))
	}

	assert.Equal(t, ErrRemote{Status: http.StatusBadGateway, Message: "Bad Gateway"},
		NewDocument().ToError(http.StatusBadGateway))
}
