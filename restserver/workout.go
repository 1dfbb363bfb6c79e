// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/gorilla/mux"
)

// workoutFields renders a workout.  Workouts reached through an
// exercise do not show their identifier.
func workoutFields(w workoutlog.Workout, withID bool) restdata.Document {
	wire := restdata.FromWorkout(w)
	if !withID {
		wire.WorkoutID = nil
	}
	return wire.Document()
}

// addWorkoutEditing adds the controls that change a workout, which
// always point at its canonical URL.
func (api *restAPI) addWorkoutEditing(doc restdata.Document, u *urlBuilder) *urlBuilder {
	return u.
		Control(doc, "edit", "workout", editControl("Edit this workout", restdata.WorkoutSchema)).
		Control(doc, relDelete, "workout", deleteControl("Delete this workout"))
}

// WorkoutList lists every workout.
func (api *restAPI) WorkoutList(ctx *context) (interface{}, error) {
	workouts, err := api.Store.Workouts()
	if err != nil {
		return nil, err
	}
	doc := newCollection(restdata.WorkoutProfile)
	u := buildURLs(api.Router).
		Control(doc, "self", "workouts", restdata.Control{}).
		Control(doc, relAddWorkout, "workouts", addControl("Add a new workout", restdata.WorkoutSchema))
	for _, w := range workouts {
		it := item(workoutFields(w, true), restdata.WorkoutProfile)
		wu := u.With("workout_id", itoa(w.ID)).
			Control(it, "self", "workout", restdata.Control{}).
			Control(it, relExercisesWithinWorkout, "workoutExercises",
				getControl("Get all exercises done within this workout"))
		if err = api.addWorkoutEditing(it, wu).Error; err != nil {
			return nil, err
		}
		doc.AddItem(it)
	}
	return doc, u.Error
}

// WorkoutPost creates a new workout.
func (api *restAPI) WorkoutPost(ctx *context, in restdata.Document) (interface{}, error) {
	var wire restdata.Workout
	err := in.Into(&wire)
	if err != nil {
		return nil, err
	}
	w, err := wire.Workout()
	if err != nil {
		return nil, err
	}
	w, err = api.Store.AddWorkout(w)
	if err != nil {
		return nil, err
	}
	var created responseCreated
	err = buildURLs(api.Router, "workout_id", itoa(w.ID)).
		URL(&created.Location, "workout").
		Error
	return created, err
}

// ExerciseWorkoutList lists the workouts an exercise was done in.
func (api *restAPI) ExerciseWorkoutList(ctx *context) (interface{}, error) {
	workouts, err := api.Store.WorkoutsByExercise(ctx.Exercise.Name)
	if err != nil {
		return nil, err
	}
	doc := newCollection(restdata.WorkoutProfile)
	u := buildURLs(api.Router, "exercise_name", ctx.Exercise.Name).
		Control(doc, "self", "exerciseWorkouts", restdata.Control{}).
		Control(doc, "up", "exercise", restdata.Control{})
	for _, w := range workouts {
		it := item(workoutFields(w, false), restdata.WorkoutProfile)
		wu := u.With("workout_id", itoa(w.ID)).
			Control(it, "self", "exerciseWorkout", restdata.Control{}).
			Control(it, relSetsWithinWorkout, "exerciseSets", restdata.Control{})
		if err = api.addWorkoutEditing(it, wu).Error; err != nil {
			return nil, err
		}
		doc.AddItem(it)
	}
	return doc, u.Error
}

// WorkoutGet returns a single workout.  Through the exercise alias
// the document navigates to that exercise's sets.
func (api *restAPI) WorkoutGet(ctx *context) (interface{}, error) {
	w := *ctx.Workout
	doc := newDocument(restdata.WorkoutProfile)
	var u *urlBuilder
	if ctx.Route == "exerciseWorkout" {
		withFields(doc, workoutFields(w, false))
		u = buildURLs(api.Router, "workout_id", itoa(w.ID), "exercise_name", ctx.Exercise.Name).
			Control(doc, "self", "exerciseWorkout", restdata.Control{}).
			Control(doc, "collection", "exerciseWorkouts", restdata.Control{}).
			Control(doc, relSetsWithinWorkout, "exerciseSets", restdata.Control{})
	} else {
		withFields(doc, workoutFields(w, true))
		u = buildURLs(api.Router, "workout_id", itoa(w.ID)).
			Control(doc, "self", "workout", restdata.Control{}).
			Control(doc, "collection", "workouts", restdata.Control{}).
			Control(doc, relExercisesWithinWorkout, "workoutExercises",
				getControl("Get all exercises done within this workout"))
	}
	return doc, api.addWorkoutEditing(doc, u).Error
}

// WorkoutPut changes the fields of a workout present in the request.
func (api *restAPI) WorkoutPut(ctx *context, in restdata.Document) (interface{}, error) {
	var wire restdata.Workout
	err := in.Into(&wire)
	if err != nil {
		return nil, err
	}
	update, err := wire.Update()
	if err != nil {
		return nil, err
	}
	return nil, api.Store.UpdateWorkout(ctx.Workout.ID, update)
}

// WorkoutDelete deletes a workout and its sets.
func (api *restAPI) WorkoutDelete(ctx *context) (interface{}, error) {
	return nil, api.Store.DeleteWorkout(ctx.Workout.ID)
}

// PopulateWorkout adds the workout routes to a router rooted at the
// API root.
func (api *restAPI) PopulateWorkout(r *mux.Router) {
	r.Path("/workouts/").Name("workouts").Handler(api.handler(&resourceHandler{
		Schema: restdata.WorkoutSchema,
		Get:    api.WorkoutList,
		Post:   api.WorkoutPost,
	}))
	r.Path("/exercises/{exercise_name}/workouts/").Name("exerciseWorkouts").Handler(api.handler(&resourceHandler{
		Get: api.ExerciseWorkoutList,
	}))
	item := &resourceHandler{
		Schema: restdata.WorkoutSchema,
		Get:    api.WorkoutGet,
		Put:    api.WorkoutPut,
		Delete: api.WorkoutDelete,
	}
	r.Path("/workouts/{workout_id}/").Name("workout").Handler(api.handler(item))
	r.Path("/exercises/{exercise_name}/workouts/{workout_id}/").Name("exerciseWorkout").Handler(api.handler(item))
}
