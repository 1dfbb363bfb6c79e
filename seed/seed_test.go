// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package seed_test

import (
	"testing"

	"github.com/diffeo/go-workoutlog/memory"
	"github.com/diffeo/go-workoutlog/seed"
	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	data, err := seed.Load()
	require.NoError(t, err)
	assert.Len(t, data.WeeklyProgramming, 18)
	assert.Len(t, data.Workouts, 3)
	assert.Len(t, data.MaxData, 10)
}

func TestPopulate(t *testing.T) {
	store := memory.New()
	require.NoError(t, seed.Populate(store))

	workouts, err := store.Workouts()
	require.NoError(t, err)
	if assert.Len(t, workouts, 3) {
		assert.Equal(t, "2021-08-10 12:00", workoutlog.FormatDateTime(workouts[0].DateTime))
		if assert.NotNil(t, workouts[0].Duration) {
			assert.Equal(t, "1:15", workoutlog.FormatDuration(*workouts[0].Duration))
		}
		if assert.NotNil(t, workouts[1].Notes) {
			assert.Equal(t, "Hard session", *workouts[1].Notes)
		}
		assert.Nil(t, workouts[2].Notes)
	}

	exercises, err := store.Exercises()
	require.NoError(t, err)
	assert.Len(t, exercises, 5)

	squat, err := store.WorkoutsByExercise("Squat")
	require.NoError(t, err)
	assert.Len(t, squat, 2)

	sets, err := store.Sets(workouts[0].ID, "Squat")
	require.NoError(t, err)
	if assert.Len(t, sets, 4) {
		for i, set := range sets {
			assert.Equal(t, i+1, set.OrderInWorkout)
			if assert.NotNil(t, set.RepsInReserve) {
				assert.Equal(t, 4-i, *set.RepsInReserve)
			}
		}
	}

	programming, err := store.WeeklyProgramming()
	require.NoError(t, err)
	assert.Len(t, programming, 18)

	forSquat, err := store.WeeklyProgrammingForExercise("Squat")
	require.NoError(t, err)
	assert.Len(t, forSquat, 6)

	maxData, err := store.MaxData("Squat")
	require.NoError(t, err)
	if assert.Len(t, maxData, 6) {
		if assert.NotNil(t, maxData[5].EstimatedMax) {
			assert.Equal(t, 145.0, *maxData[5].EstimatedMax)
		}
	}
	deadlift, err := store.MaxDataItem("Deadlift", 1)
	require.NoError(t, err)
	if assert.NotNil(t, deadlift.TrainingMax) {
		assert.Equal(t, 180.0, *deadlift.TrainingMax)
	}
}

func TestPopulateTwice(t *testing.T) {
	store := memory.New()
	require.NoError(t, seed.Populate(store))
	err := seed.Populate(store)
	assert.IsType(t, workoutlog.ErrWeeklyProgrammingExists{}, err)
}
