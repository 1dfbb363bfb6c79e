// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package workoutlog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateTime(t *testing.T) {
	expected := time.Date(2021, 8, 12, 14, 15, 0, 0, time.UTC)
	for _, s := range []string{"2021-8-12 14:15", "2021-08-12 14:15"} {
		actual, err := ParseDateTime(s)
		if assert.NoError(t, err, s) {
			assert.Equal(t, expected, actual, s)
		}
	}

	for _, s := range []string{"", "2021-08-12", "14:15", "2021-13-01 12:00", "2021-08-12T14:15:00Z"} {
		_, err := ParseDateTime(s)
		if assert.Error(t, err, s) {
			assert.IsType(t, ErrInvalid{}, err)
			assert.True(t, strings.HasPrefix(err.Error(), "Invalid datetime."))
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	tm := time.Date(2021, 8, 2, 4, 5, 33, 0, time.UTC)
	assert.Equal(t, "2021-08-02 04:05", FormatDateTime(tm))
}

func TestParseDate(t *testing.T) {
	actual, err := ParseDate("2021-8-1")
	if assert.NoError(t, err) {
		assert.Equal(t, time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC), actual)
		assert.Equal(t, "2021-08-01", FormatDate(actual))
	}

	_, err = ParseDate("yesterday")
	assert.IsType(t, ErrInvalid{}, err)
}

type durationCase struct {
	Input    string
	Duration time.Duration
	Output   string
}

var durationCases = []durationCase{
	{"0:00", 0, "0:00"},
	{"0:5", 5 * time.Minute, "0:05"},
	{"1:20", 80 * time.Minute, "1:20"},
	{"01:45", 105 * time.Minute, "1:45"},
	{"23:59", 23*time.Hour + 59*time.Minute, "23:59"},
}

func TestDuration(t *testing.T) {
	for _, c := range durationCases {
		actual, err := ParseDuration(c.Input)
		if assert.NoError(t, err, c.Input) {
			assert.Equal(t, c.Duration, actual, c.Input)
		}
		assert.Equal(t, c.Output, FormatDuration(c.Duration), c.Input)
	}
}

func TestBadDuration(t *testing.T) {
	for _, s := range []string{"", "90", "24:00", "1:60", "1h 20min"} {
		_, err := ParseDuration(s)
		if assert.Error(t, err, s) {
			assert.IsType(t, ErrInvalid{}, err, s)
		}
	}
}

func TestNormalize(t *testing.T) {
	tm := time.Date(2021, 8, 12, 14, 15, 42, 17, time.FixedZone("EEST", 3*60*60))
	assert.Equal(t, time.Date(2021, 8, 12, 11, 15, 0, 0, time.UTC), NormalizeDateTime(tm))
	assert.Equal(t, time.Date(2021, 8, 12, 0, 0, 0, 0, time.UTC), NormalizeDate(tm))

	d := 90*time.Second + 5*time.Millisecond
	assert.Equal(t, time.Minute, *NormalizeDuration(&d))
	assert.Nil(t, NormalizeDuration(nil))
}

func TestNextOrdinal(t *testing.T) {
	assert.Equal(t, 1, NextOrdinal(nil))
	assert.Equal(t, 3, NextOrdinal([]int{1, 2, 4}))
	assert.Equal(t, 1, NextOrdinal([]int{2, 3}))
	assert.Equal(t, 4, NextOrdinal([]int{3, 1, 2}))
}

func TestValidateExercise(t *testing.T) {
	long := strings.Repeat("x", MaxNameLength+1)
	typ := "Main lift"
	assert.NoError(t, ValidateExercise(Exercise{Name: "Squat", Type: &typ}))
	assert.NoError(t, ValidateExercise(Exercise{Name: strings.Repeat("ä", MaxNameLength)}))
	assert.Equal(t, ErrInvalid{Message: "Exercise name is missing."},
		ValidateExercise(Exercise{}))
	assert.Equal(t, ErrInvalid{Message: "Exercise name too long."},
		ValidateExercise(Exercise{Name: long}))
	assert.Equal(t, ErrInvalid{Message: "Exercise type too long."},
		ValidateExercise(Exercise{Name: "Squat", Type: &long}))
}

func TestValidateNotes(t *testing.T) {
	notes := strings.Repeat("n", MaxNoteLength)
	assert.NoError(t, ValidateWorkout(Workout{Notes: &notes}))
	notes += "!"
	assert.Equal(t, ErrInvalid{Message: "Note too long."}, ValidateWorkout(Workout{Notes: &notes}))
	assert.Equal(t, ErrInvalid{Message: "Note too long."},
		ValidateWeeklyProgramming(WeeklyProgramming{WeekNumber: 1, ExerciseType: "Cardio", Notes: &notes}))
}

func TestApplySetUpdate(t *testing.T) {
	weight := 100.0
	reps := 5
	set := Set{WorkoutID: 1, ExerciseName: "Squat", OrderInWorkout: 1, Weight: &weight}

	newReps := 8
	SetUpdate{NumberOfReps: &newReps}.Apply(&set)
	assert.Equal(t, 1, set.OrderInWorkout)
	assert.Equal(t, &weight, set.Weight)
	if assert.NotNil(t, set.NumberOfReps) {
		assert.Equal(t, 8, *set.NumberOfReps)
	}
	assert.NotEqual(t, reps, *set.NumberOfReps)
}
