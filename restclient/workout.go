// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"net/http"

	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/diffeo/go-workoutlog/workoutlog"
)

func workoutVars(id int) map[string]interface{} {
	return map[string]interface{}{"workout_id": id}
}

func toWorkout(doc restdata.Document) (workoutlog.Workout, error) {
	var wire restdata.Workout
	if err := doc.Into(&wire); err != nil {
		return workoutlog.Workout{}, err
	}
	return wire.Workout()
}

func (s *restStore) Workouts() ([]workoutlog.Workout, error) {
	items, err := s.getItems("workouts-all", nil)
	if err != nil {
		return nil, err
	}
	workouts := make([]workoutlog.Workout, len(items))
	for i, item := range items {
		if workouts[i], err = toWorkout(item); err != nil {
			return nil, err
		}
	}
	return workouts, nil
}

func (s *restStore) Workout(id int) (workoutlog.Workout, error) {
	doc, err := s.get("workout", workoutVars(id))
	if err != nil {
		return workoutlog.Workout{}, err
	}
	return toWorkout(doc)
}

// WorkoutsByExercise follows each listed workout to its canonical
// document, since the listing does not carry identifiers.
func (s *restStore) WorkoutsByExercise(exerciseName string) ([]workoutlog.Workout, error) {
	items, err := s.getItems("workouts-by-exercise", map[string]interface{}{
		"exercise_name": exerciseName,
	})
	if err != nil {
		return nil, err
	}
	workouts := make([]workoutlog.Workout, len(items))
	for i, item := range items {
		edit, ok := item.Control("edit")
		if !ok {
			return nil, restdata.ErrRemote{
				Status:  http.StatusNotFound,
				Message: "Workout has no edit control",
			}
		}
		doc, err := s.GetFrom(edit.Href, nil)
		if err != nil {
			return nil, err
		}
		if workouts[i], err = toWorkout(doc); err != nil {
			return nil, err
		}
	}
	return workouts, nil
}

func (s *restStore) AddWorkout(workout workoutlog.Workout) (workoutlog.Workout, error) {
	wire := restdata.FromWorkout(workout)
	wire.WorkoutID = nil
	doc, err := s.post("workouts-all", nil, wire.Document())
	if err != nil {
		return workoutlog.Workout{}, err
	}
	return toWorkout(doc)
}

func (s *restStore) UpdateWorkout(id int, update workoutlog.WorkoutUpdate) error {
	return s.edit("workout", workoutVars(id), restdata.FromWorkoutUpdate(update).Document())
}

func (s *restStore) DeleteWorkout(id int) error {
	return s.delete("workout", workoutVars(id))
}
