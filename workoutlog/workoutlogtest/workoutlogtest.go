// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package workoutlogtest provides generic functional tests for the
// workoutlog.Store interface.  A typical backend test module needs to
// wrap Suite to create a fresh store for every test:
//
//     package mybackend
//
//     import (
//             "testing"
//             "github.com/diffeo/go-workoutlog/workoutlog/workoutlogtest"
//             "github.com/stretchr/testify/suite"
//     )
//
//     // Suite is the per-backend generic test suite.
//     type Suite struct{
//             workoutlogtest.Suite
//     }
//
//     // SetupTest creates an empty store before each test.
//     func (s *Suite) SetupTest() {
//             s.Store = New()
//     }
//
//     // TestWorkoutLog runs the generic tests.
//     func TestWorkoutLog(t *testing.T) {
//             suite.Run(t, &Suite{})
//     }
package workoutlogtest

import (
	"time"

	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/stretchr/testify/suite"
)

// Suite is the generic workoutlog.Store test suite.
type Suite struct {
	suite.Suite

	// Store contains the interface to the backend under test.  It
	// is set by importing packages, and must be empty at the start
	// of every test.
	Store workoutlog.Store
}

// at parses a workout date and time, failing the test if it is
// malformed.
func (s *Suite) at(dateTime string) time.Time {
	t, err := workoutlog.ParseDateTime(dateTime)
	s.Require().NoError(err)
	return t
}

// day parses a max data date.
func (s *Suite) day(date string) time.Time {
	t, err := workoutlog.ParseDate(date)
	s.Require().NoError(err)
	return t
}

// addWorkout creates a workout with only a date and time and returns
// it.
func (s *Suite) addWorkout(dateTime string) workoutlog.Workout {
	w, err := s.Store.AddWorkout(workoutlog.Workout{DateTime: s.at(dateTime)})
	s.Require().NoError(err)
	return w
}

// addExercise creates an exercise in a workout, creating the exercise
// too if it does not exist yet.
func (s *Suite) addExercise(workoutID int, name, typ string) {
	e := workoutlog.Exercise{Name: name}
	if typ != "" {
		e.Type = &typ
	}
	s.Require().NoError(s.Store.AddWorkoutExercise(workoutID, e))
}

// addSet creates a set with a given order (zero for automatic) and
// weight.
func (s *Suite) addSet(workoutID int, name string, order int, weight float64) workoutlog.Set {
	set, err := s.Store.AddSet(workoutlog.Set{
		WorkoutID:      workoutID,
		ExerciseName:   name,
		OrderInWorkout: order,
		Weight:         &weight,
	})
	s.Require().NoError(err)
	return set
}

// setOrders returns the orders of the sets of an exercise in a
// workout.
func (s *Suite) setOrders(workoutID int, name string) []int {
	sets, err := s.Store.Sets(workoutID, name)
	s.Require().NoError(err)
	orders := make([]int, len(sets))
	for i, set := range sets {
		orders[i] = set.OrderInWorkout
	}
	return orders
}

// exerciseNames returns the names of a list of exercises.
func exerciseNames(exercises []workoutlog.Exercise) []string {
	names := make([]string, len(exercises))
	for i, e := range exercises {
		names[i] = e.Name
	}
	return names
}

func intp(i int) *int { return &i }
func floatp(f float64) *float64 { return &f }
func strp(s string) *string { return &s }
func durp(d time.Duration) *time.Duration { return &d }
func timep(t time.Time) *time.Time { return &t }
