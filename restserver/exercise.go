// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/gorilla/mux"
)

func exerciseFields(e workoutlog.Exercise) restdata.Document {
	return restdata.FromExercise(e).Document()
}

// addExerciseData adds the controls to the per-exercise max data and
// programming lists.
func addExerciseData(doc restdata.Document, u *urlBuilder) *urlBuilder {
	return u.
		Control(doc, relMaxDataForExercise, "maxData",
			getControl("Get all max data for this exercise")).
		Control(doc, relWeeklyProgrammingForExercise, "exerciseWeeklyProgramming",
			getControl("Get all weekly programming data for this exercise"))
}

func (api *restAPI) decodeExercise(in restdata.Document) (workoutlog.Exercise, error) {
	var wire restdata.Exercise
	if err := in.Into(&wire); err != nil {
		return workoutlog.Exercise{}, err
	}
	return wire.Exercise()
}

// ExerciseList lists every exercise.
func (api *restAPI) ExerciseList(ctx *context) (interface{}, error) {
	exercises, err := api.Store.Exercises()
	if err != nil {
		return nil, err
	}
	doc := newCollection(restdata.ExerciseProfile)
	u := buildURLs(api.Router).
		Control(doc, "self", "exercises", restdata.Control{}).
		Control(doc, relAddExercise, "exercises", addControl("Add a new exercise", restdata.ExerciseSchema))
	for _, e := range exercises {
		it := item(exerciseFields(e), restdata.ExerciseProfile)
		eu := u.With("exercise_name", e.Name).
			Control(it, "self", "exercise", restdata.Control{}).
			Control(it, relWorkoutsByExercise, "exerciseWorkouts",
				getControl("Get all workouts in which this exercise has been done"))
		if err = addExerciseData(it, eu).Error; err != nil {
			return nil, err
		}
		doc.AddItem(it)
	}
	return doc, u.Error
}

// ExercisePost creates a new exercise.
func (api *restAPI) ExercisePost(ctx *context, in restdata.Document) (interface{}, error) {
	e, err := api.decodeExercise(in)
	if err != nil {
		return nil, err
	}
	if err = api.Store.AddExercise(e); err != nil {
		return nil, err
	}
	var created responseCreated
	err = buildURLs(api.Router, "exercise_name", e.Name).
		URL(&created.Location, "exercise").
		Error
	return created, err
}

// WorkoutExerciseList lists the exercises done in a workout.
func (api *restAPI) WorkoutExerciseList(ctx *context) (interface{}, error) {
	exercises, err := api.Store.WorkoutExercises(ctx.Workout.ID)
	if err != nil {
		return nil, err
	}
	doc := newCollection(restdata.ExerciseProfile)
	u := buildURLs(api.Router, "workout_id", itoa(ctx.Workout.ID)).
		Control(doc, "self", "workoutExercises", restdata.Control{}).
		Control(doc, "up", "workout", restdata.Control{}).
		Control(doc, relAddExerciseToWorkout, "workoutExercises",
			addControl("Add a new exercise to this workout", restdata.ExerciseSchema))
	for _, e := range exercises {
		it := item(exerciseFields(e), restdata.ExerciseProfile)
		eu := u.With("exercise_name", e.Name).
			Control(it, "self", "workoutExercise", restdata.Control{}).
			Control(it, relSetsWithinWorkout, "workoutSets", restdata.Control{}).
			Control(it, relDeleteFromWorkout, "workoutExercise",
				deleteControl("Remove this exercise from this workout"))
		if err = addExerciseData(it, eu).Error; err != nil {
			return nil, err
		}
		doc.AddItem(it)
	}
	return doc, u.Error
}

// WorkoutExercisePost attaches an exercise to a workout, creating the
// exercise if it is new.
func (api *restAPI) WorkoutExercisePost(ctx *context, in restdata.Document) (interface{}, error) {
	e, err := api.decodeExercise(in)
	if err != nil {
		return nil, err
	}
	if err = api.Store.AddWorkoutExercise(ctx.Workout.ID, e); err != nil {
		return nil, err
	}
	var created responseCreated
	err = buildURLs(api.Router, "workout_id", itoa(ctx.Workout.ID), "exercise_name", e.Name).
		URL(&created.Location, "workoutExercise").
		Error
	return created, err
}

// ExerciseGet returns a single exercise.  Through a workout the
// document navigates to the sets in that workout.
func (api *restAPI) ExerciseGet(ctx *context) (interface{}, error) {
	e := *ctx.Exercise
	doc := newDocument(restdata.ExerciseProfile)
	withFields(doc, exerciseFields(e))
	u := buildURLs(api.Router, "exercise_name", e.Name)
	if ctx.Route == "workoutExercise" {
		u = u.With("workout_id", itoa(ctx.Workout.ID)).
			Control(doc, "self", "workoutExercise", restdata.Control{}).
			Control(doc, "collection", "workoutExercises", restdata.Control{}).
			Control(doc, relSetsWithinWorkout, "workoutSets", restdata.Control{}).
			Control(doc, relDeleteFromWorkout, "workoutExercise",
				deleteControl("Remove this exercise from this workout"))
	} else {
		u = u.
			Control(doc, "self", "exercise", restdata.Control{}).
			Control(doc, "collection", "exercises", restdata.Control{}).
			Control(doc, relWorkoutsByExercise, "exerciseWorkouts",
				getControl("Get all workouts in which this exercise has been done"))
	}
	err := addExerciseData(doc, u).
		Control(doc, "edit", "exercise", editControl("Edit this exercise", restdata.ExerciseSchema)).
		Control(doc, relDelete, "exercise", deleteControl("Delete this exercise")).
		Error
	return doc, err
}

// ExercisePut changes an exercise, possibly renaming it.
func (api *restAPI) ExercisePut(ctx *context, in restdata.Document) (interface{}, error) {
	var wire restdata.Exercise
	if err := in.Into(&wire); err != nil {
		return nil, err
	}
	return nil, api.Store.UpdateExercise(ctx.Exercise.Name, wire.Update())
}

// ExerciseDelete deletes an exercise, or through a workout, removes
// it from that workout.
func (api *restAPI) ExerciseDelete(ctx *context) (interface{}, error) {
	if ctx.Route == "workoutExercise" {
		return nil, api.Store.RemoveWorkoutExercise(ctx.Workout.ID, ctx.Exercise.Name)
	}
	return nil, api.Store.DeleteExercise(ctx.Exercise.Name)
}

// PopulateExercise adds the exercise routes to a router rooted at
// the API root.
func (api *restAPI) PopulateExercise(r *mux.Router) {
	r.Path("/exercises/").Name("exercises").Handler(api.handler(&resourceHandler{
		Schema: restdata.ExerciseSchema,
		Get:    api.ExerciseList,
		Post:   api.ExercisePost,
	}))
	r.Path("/workouts/{workout_id}/exercises/").Name("workoutExercises").Handler(api.handler(&resourceHandler{
		Schema: restdata.ExerciseSchema,
		Get:    api.WorkoutExerciseList,
		Post:   api.WorkoutExercisePost,
	}))
	item := &resourceHandler{
		Schema: restdata.ExerciseSchema,
		Get:    api.ExerciseGet,
		Put:    api.ExercisePut,
		Delete: api.ExerciseDelete,
	}
	r.Path("/exercises/{exercise_name}/").Name("exercise").Handler(api.handler(item))
	r.Path("/workouts/{workout_id}/exercises/{exercise_name}/").Name("workoutExercise").Handler(api.handler(item))
}
