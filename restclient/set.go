// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/diffeo/go-workoutlog/workoutlog"
)

func setVars(workoutID int, exerciseName string, order int) map[string]interface{} {
	vars := workoutExerciseVars(workoutID, exerciseName)
	vars["order"] = order
	return vars
}

func toSet(doc restdata.Document, workoutID int, exerciseName string) (workoutlog.Set, error) {
	var wire restdata.Set
	if err := doc.Into(&wire); err != nil {
		return workoutlog.Set{}, err
	}
	return wire.Set(workoutID, exerciseName)
}

func (s *restStore) Sets(workoutID int, exerciseName string) ([]workoutlog.Set, error) {
	items, err := s.getItems("sets-within-workout", workoutExerciseVars(workoutID, exerciseName))
	if err != nil {
		return nil, err
	}
	sets := make([]workoutlog.Set, len(items))
	for i, item := range items {
		if sets[i], err = toSet(item, workoutID, exerciseName); err != nil {
			return nil, err
		}
	}
	return sets, nil
}

func (s *restStore) Set(workoutID int, exerciseName string, order int) (workoutlog.Set, error) {
	doc, err := s.get("set", setVars(workoutID, exerciseName, order))
	if err != nil {
		return workoutlog.Set{}, err
	}
	return toSet(doc, workoutID, exerciseName)
}

// AddSet leaves out a zero order so the server assigns one.
func (s *restStore) AddSet(set workoutlog.Set) (workoutlog.Set, error) {
	wire := restdata.FromSet(set)
	if set.OrderInWorkout == 0 {
		wire.OrderInWorkout = nil
	}
	doc, err := s.post("sets-within-workout",
		workoutExerciseVars(set.WorkoutID, set.ExerciseName), wire.Document())
	if err != nil {
		return workoutlog.Set{}, err
	}
	return toSet(doc, set.WorkoutID, set.ExerciseName)
}

func (s *restStore) UpdateSet(workoutID int, exerciseName string, order int, update workoutlog.SetUpdate) error {
	return s.edit("set", setVars(workoutID, exerciseName, order),
		restdata.FromSetUpdate(update).Document())
}

func (s *restStore) DeleteSet(workoutID int, exerciseName string, order int) error {
	return s.delete("set", setVars(workoutID, exerciseName, order))
}
