// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory implementation of
// workoutlog.Store.  There is no persistence, nor is there any
// automatic sharing.  The entire store is behind a single global
// mutex to protect against concurrent updates.
//
// This is mostly intended as a simple reference implementation of
// the workout log that can be used for testing, including in-process
// testing of the REST layer.  It is tuned for correctness, not
// performance.
package memory

import (
	"sort"
	"sync"

	"github.com/diffeo/go-workoutlog/workoutlog"
)

// This is the only external entry point to this package:

// New creates a new, empty workout log that lives purely in memory.
func New() workoutlog.Store {
	return &memStore{
		workoutsByID:    make(map[int]*workout),
		exercisesByName: make(map[string]*exercise),
	}
}

type memStore struct {
	sem sync.Mutex

	lastWorkoutID  int
	lastExerciseID int

	// workouts and exercises are in creation order; the maps
	// index the same objects.
	workouts        []*workout
	workoutsByID    map[int]*workout
	exercises       []*exercise
	exercisesByName map[string]*exercise

	sets        []*set
	programming []*workoutlog.WeeklyProgramming
}

// workout is the stored form of a workout.  exercises holds the
// workout's exercises in the order they were attached.
type workout struct {
	workoutlog.Workout
	exercises []*exercise
}

// exercise is the stored form of an exercise.  id never changes,
// even when the exercise is renamed.
type exercise struct {
	id   int
	name string
	typ  *string

	// maxData is kept sorted by OrderForExercise.  The
	// ExerciseName fields are not kept current.
	maxData []workoutlog.MaxData
}

// set is the stored form of a set.  The WorkoutID and ExerciseName
// fields of the embedded object are not kept current; use the
// pointers.
type set struct {
	workout  *workout
	exercise *exercise
	workoutlog.Set
}

// globalLock locks the store.  Pair this with globalUnlock, as
//
//     globalLock(s)
//     defer globalUnlock(s)
func globalLock(s *memStore) {
	s.sem.Lock()
}

// globalUnlock unlocks the store.
func globalUnlock(s *memStore) {
	s.sem.Unlock()
}

func (s *memStore) getWorkout(id int) (*workout, error) {
	w := s.workoutsByID[id]
	if w == nil {
		return nil, workoutlog.ErrNoSuchWorkout{ID: id}
	}
	return w, nil
}

func (s *memStore) getExercise(name string) (*exercise, error) {
	e := s.exercisesByName[name]
	if e == nil {
		return nil, workoutlog.ErrNoSuchExercise{Name: name}
	}
	return e, nil
}

// getBoth resolves a workout and then an exercise, which is the order
// errors are reported in.
func (s *memStore) getBoth(workoutID int, name string) (*workout, *exercise, error) {
	w, err := s.getWorkout(workoutID)
	if err != nil {
		return nil, nil, err
	}
	e, err := s.getExercise(name)
	if err != nil {
		return nil, nil, err
	}
	return w, e, nil
}

// setsOf returns the stored sets of an exercise in a workout, sorted
// by order.
func (s *memStore) setsOf(w *workout, e *exercise) []*set {
	var result []*set
	for _, st := range s.sets {
		if st.workout == w && st.exercise == e {
			result = append(result, st)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OrderInWorkout < result[j].OrderInWorkout
	})
	return result
}

// dropSets removes every set for which drop returns true.
func (s *memStore) dropSets(drop func(*set) bool) {
	kept := s.sets[:0]
	for _, st := range s.sets {
		if !drop(st) {
			kept = append(kept, st)
		}
	}
	for i := len(kept); i < len(s.sets); i++ {
		s.sets[i] = nil
	}
	s.sets = kept
}

func (e *exercise) public() workoutlog.Exercise {
	return workoutlog.Exercise{Name: e.name, Type: clone(e.typ)}
}

func (w *workout) public() workoutlog.Workout {
	return cloneWorkout(w.Workout)
}

func (st *set) public() workoutlog.Set {
	result := cloneSet(st.Set)
	result.WorkoutID = st.workout.ID
	result.ExerciseName = st.exercise.name
	return result
}

func (w *workout) hasExercise(e *exercise) bool {
	for _, we := range w.exercises {
		if we == e {
			return true
		}
	}
	return false
}

// clone returns a pointer to a copy of *p, so that values handed to
// and from callers never share storage with the store.
func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneWorkout(w workoutlog.Workout) workoutlog.Workout {
	w.Duration = clone(w.Duration)
	w.BodyWeight = clone(w.BodyWeight)
	w.AverageHeartRate = clone(w.AverageHeartRate)
	w.MaxHeartRate = clone(w.MaxHeartRate)
	w.Notes = clone(w.Notes)
	return w
}

func cloneSet(st workoutlog.Set) workoutlog.Set {
	st.Weight = clone(st.Weight)
	st.NumberOfReps = clone(st.NumberOfReps)
	st.RepsInReserve = clone(st.RepsInReserve)
	st.RateOfPerceivedExertion = clone(st.RateOfPerceivedExertion)
	st.Duration = clone(st.Duration)
	st.Distance = clone(st.Distance)
	return st
}

func cloneMaxData(m workoutlog.MaxData) workoutlog.MaxData {
	m.TrainingMax = clone(m.TrainingMax)
	m.EstimatedMax = clone(m.EstimatedMax)
	m.TestedMax = clone(m.TestedMax)
	return m
}

func cloneProgramming(p workoutlog.WeeklyProgramming) workoutlog.WeeklyProgramming {
	p.Intensity = clone(p.Intensity)
	p.NumberOfSets = clone(p.NumberOfSets)
	p.NumberOfReps = clone(p.NumberOfReps)
	p.RepsInReserve = clone(p.RepsInReserve)
	p.RateOfPerceivedExertion = clone(p.RateOfPerceivedExertion)
	p.Duration = clone(p.Duration)
	p.Distance = clone(p.Distance)
	p.AverageHeartRate = clone(p.AverageHeartRate)
	p.Notes = clone(p.Notes)
	return p
}
