// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"testing"
	"time"

	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/stretchr/testify/assert"
)

func TestWorkoutWire(t *testing.T) {
	weight := 72.5
	d := 105 * time.Minute
	w := workoutlog.Workout{
		ID:         3,
		DateTime:   time.Date(2020, 12, 24, 12, 15, 0, 0, time.UTC),
		Duration:   &d,
		BodyWeight: &weight,
	}
	doc := FromWorkout(w).Document()
	assert.Equal(t, Document{
		"workout_id":  3,
		"date_time":   "2020-12-24 12:15",
		"duration":    "1:45",
		"body_weight": 72.5,
	}, doc)

	var in Workout
	if assert.NoError(t, doc.Into(&in)) {
		back, err := in.Workout()
		if assert.NoError(t, err) {
			assert.Equal(t, w, back)
		}
	}
}

func TestWorkoutUpdateWire(t *testing.T) {
	notes := "heavy"
	in := Workout{Notes: &notes}
	u, err := in.Update()
	if assert.NoError(t, err) {
		assert.Equal(t, workoutlog.WorkoutUpdate{Notes: &notes}, u)
	}
	_, err = in.Workout()
	assert.IsType(t, ErrBadRequest{}, err)

	bad := "1h 20min"
	in = Workout{Duration: &bad}
	_, err = in.Update()
	if assert.IsType(t, workoutlog.ErrInvalid{}, err) {
		assert.Equal(t, "Invalid duration. Duration must match format HH:MM, for example 1:20",
			err.(workoutlog.ErrInvalid).Message)
	}

	dt := time.Date(2021, 8, 12, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, Document{"date_time": "2021-08-12 14:05"},
		FromWorkoutUpdate(workoutlog.WorkoutUpdate{DateTime: &dt}).Document())
}

func TestSetWire(t *testing.T) {
	reps := 5
	doc := Document{"number_of_reps": uint64(5), "weight": int64(100)}
	var in Set
	if assert.NoError(t, doc.Into(&in)) {
		set, err := in.Set(2, "Squat")
		if assert.NoError(t, err) {
			weight := 100.0
			assert.Equal(t, workoutlog.Set{
				WorkoutID:    2,
				ExerciseName: "Squat",
				NumberOfReps: &reps,
				Weight:       &weight,
			}, set)
		}
	}
}

func TestMaxDataWire(t *testing.T) {
	date := "2021-8-1"
	m, err := MaxData{Date: &date}.MaxData("Squat")
	if assert.NoError(t, err) {
		assert.Equal(t, time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC), m.Date)
		assert.Equal(t, Document{"order_for_exercise": 0, "date": "2021-08-01"},
			FromMaxData(m).Document())
	}

	_, err = MaxData{}.MaxData("Squat")
	assert.IsType(t, ErrBadRequest{}, err)

	date = "August 1st"
	_, err = MaxData{Date: &date}.MaxData("Squat")
	assert.IsType(t, workoutlog.ErrInvalid{}, err)
}

func TestWeeklyProgrammingWire(t *testing.T) {
	week := 2
	exerciseType := "Main lift"
	p, err := WeeklyProgramming{WeekNumber: &week, ExerciseType: &exerciseType}.WeeklyProgramming()
	if assert.NoError(t, err) {
		assert.Equal(t, workoutlog.WeeklyProgramming{WeekNumber: 2, ExerciseType: "Main lift"}, p)
	}
	_, err = WeeklyProgramming{WeekNumber: &week}.WeeklyProgramming()
	assert.IsType(t, ErrBadRequest{}, err)
}

func TestExerciseWire(t *testing.T) {
	e, err := Exercise{}.Exercise()
	assert.IsType(t, ErrBadRequest{}, err)

	name := "Squat"
	e, err = Exercise{ExerciseName: &name}.Exercise()
	if assert.NoError(t, err) {
		assert.Equal(t, workoutlog.Exercise{Name: "Squat"}, e)
		assert.Equal(t, Document{"exercise_name": "Squat"}, FromExercise(e).Document())
	}
}

func TestIntoRejectsInexactIntegers(t *testing.T) {
	tests := []struct {
		Name  string
		Value interface{}
	}{
		{"huge", 1e30},
		{"fraction", 72.5},
		{"unsigned", uint64(1) << 63},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			var in Workout
			err := Document{
				"date_time":          "2020-12-27 10:00",
				"average_heart_rate": test.Value,
			}.Into(&in)
			if assert.IsType(t, ErrBadRequest{}, err) {
				assert.Equal(t, invalidDocumentTitle, err.(ErrBadRequest).Title)
			}
		})
	}
}

func TestIntoAcceptsWholeFloats(t *testing.T) {
	var in Workout
	err := Document{
		"date_time":          "2020-12-27 10:00",
		"average_heart_rate": 120.0,
		"max_heart_rate":     int64(-5),
	}.Into(&in)
	if assert.NoError(t, err) {
		if assert.NotNil(t, in.AverageHeartRate) {
			assert.Equal(t, 120, *in.AverageHeartRate)
		}
		if assert.NotNil(t, in.MaxHeartRate) {
			assert.Equal(t, -5, *in.MaxHeartRate)
		}
	}
}
