// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/diffeo/go-workoutlog/workoutlog"
)

func exerciseVars(name string) map[string]interface{} {
	return map[string]interface{}{"exercise_name": name}
}

func workoutExerciseVars(workoutID int, name string) map[string]interface{} {
	return map[string]interface{}{"workout_id": workoutID, "exercise_name": name}
}

func toExercise(doc restdata.Document) (workoutlog.Exercise, error) {
	var wire restdata.Exercise
	if err := doc.Into(&wire); err != nil {
		return workoutlog.Exercise{}, err
	}
	return wire.Exercise()
}

func toExercises(items []restdata.Document) ([]workoutlog.Exercise, error) {
	var err error
	exercises := make([]workoutlog.Exercise, len(items))
	for i, item := range items {
		if exercises[i], err = toExercise(item); err != nil {
			return nil, err
		}
	}
	return exercises, nil
}

func (s *restStore) Exercises() ([]workoutlog.Exercise, error) {
	items, err := s.getItems("exercises-all", nil)
	if err != nil {
		return nil, err
	}
	return toExercises(items)
}

func (s *restStore) Exercise(name string) (workoutlog.Exercise, error) {
	doc, err := s.get("exercise", exerciseVars(name))
	if err != nil {
		return workoutlog.Exercise{}, err
	}
	return toExercise(doc)
}

func (s *restStore) AddExercise(exercise workoutlog.Exercise) error {
	_, err := s.add("exercises-all", nil, restdata.FromExercise(exercise).Document())
	return err
}

func (s *restStore) UpdateExercise(name string, update workoutlog.ExerciseUpdate) error {
	return s.edit("exercise", exerciseVars(name), restdata.FromExerciseUpdate(update).Document())
}

func (s *restStore) DeleteExercise(name string) error {
	return s.delete("exercise", exerciseVars(name))
}

func (s *restStore) WorkoutExercises(workoutID int) ([]workoutlog.Exercise, error) {
	items, err := s.getItems("exercises-within-workout", workoutVars(workoutID))
	if err != nil {
		return nil, err
	}
	return toExercises(items)
}

func (s *restStore) WorkoutExercise(workoutID int, name string) (workoutlog.Exercise, error) {
	doc, err := s.get("exercise-within-workout", workoutExerciseVars(workoutID, name))
	if err != nil {
		return workoutlog.Exercise{}, err
	}
	return toExercise(doc)
}

func (s *restStore) AddWorkoutExercise(workoutID int, exercise workoutlog.Exercise) error {
	_, err := s.add("exercises-within-workout", workoutVars(workoutID),
		restdata.FromExercise(exercise).Document())
	return err
}

// RemoveWorkoutExercise deletes the exercise through the workout,
// which detaches it rather than deleting it.
func (s *restStore) RemoveWorkoutExercise(workoutID int, name string) error {
	return s.delete("exercise-within-workout", workoutExerciseVars(workoutID, name))
}
