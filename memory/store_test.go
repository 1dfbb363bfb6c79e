// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory_test

import (
	"sync"
	"testing"

	"github.com/diffeo/go-workoutlog/memory"
	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/diffeo/go-workoutlog/workoutlog/workoutlogtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic tests against the memory store.
type Suite struct {
	workoutlogtest.Suite
}

// SetupTest creates a fresh store before each test.
func (s *Suite) SetupTest() {
	s.Store = memory.New()
}

// TestWorkoutLog runs the generic workout log tests.
func TestWorkoutLog(t *testing.T) {
	suite.Run(t, &Suite{})
}

// TestReturnedValuesAreCopies checks that changing a returned value
// does not change the store.
func TestReturnedValuesAreCopies(t *testing.T) {
	store := memory.New()
	weight := 70.0
	in := workoutlog.Set{ExerciseName: "Squat", Weight: &weight}

	w, err := store.AddWorkout(workoutlog.Workout{})
	if !assert.NoError(t, err) {
		return
	}
	in.WorkoutID = w.ID
	assert.NoError(t, store.AddExercise(workoutlog.Exercise{Name: "Squat"}))
	out, err := store.AddSet(in)
	if !assert.NoError(t, err) {
		return
	}

	weight = 80
	*out.Weight = 90

	got, err := store.Set(w.ID, "Squat", 1)
	if assert.NoError(t, err) && assert.NotNil(t, got.Weight) {
		assert.Equal(t, 70.0, *got.Weight)
	}
}

// TestConcurrentAdds checks that concurrent writers each get their own
// set order.
func TestConcurrentAdds(t *testing.T) {
	store := memory.New()
	w, err := store.AddWorkout(workoutlog.Workout{})
	if !assert.NoError(t, err) {
		return
	}
	assert.NoError(t, store.AddWorkoutExercise(w.ID, workoutlog.Exercise{Name: "Squat"}))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.AddSet(workoutlog.Set{WorkoutID: w.ID, ExerciseName: "Squat"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	sets, err := store.Sets(w.ID, "Squat")
	if assert.NoError(t, err) && assert.Len(t, sets, 20) {
		for i, set := range sets {
			assert.Equal(t, i+1, set.OrderInWorkout)
		}
	}
}
