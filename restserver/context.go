// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/gorilla/mux"
)

// context holds all of the information and objects that can be extracted
// from URL parameters.
type context struct {
	// Route is the name of the route that matched.  Aliases of
	// the same resource share a handler and differ only here.
	Route string

	// Path is the request URL path.
	Path string

	Workout     *workoutlog.Workout
	Exercise    *workoutlog.Exercise
	Set         *workoutlog.Set
	MaxData     *workoutlog.MaxData
	Programming *workoutlog.WeeklyProgramming
}

// intVar parses a numeric route variable.  A value that is not a
// number cannot name anything, so it is a 404 naming what was asked
// for, such as "No workout with id \"abc\"".
func intVar(value, what, field string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, restdata.ErrNotFound{
			Err: fmt.Errorf("No %s with %s %q", what, field, value),
		}
	}
	return n, nil
}

// nameVar decodes a name route variable.
func nameVar(value, what, field string) (string, error) {
	name, err := restdata.MaybeDecodeName(value)
	if err != nil {
		return "", restdata.ErrNotFound{
			Err: fmt.Errorf("No %s with %s %q", what, field, value),
		}
	}
	return name, nil
}

// Context looks up everything the URL names, in the order workout,
// exercise, leaf object.  The first one missing is the error.
func (api *restAPI) Context(req *http.Request) (ctx *context, err error) {
	ctx = &context{Path: req.URL.Path}
	if route := mux.CurrentRoute(req); route != nil {
		ctx.Route = route.GetName()
	}
	vars := mux.Vars(req)

	var present bool
	var value string

	if value, present = vars["workout_id"]; present && err == nil {
		var id int
		id, err = intVar(value, "workout", "id")
		if err == nil {
			var w workoutlog.Workout
			w, err = api.Store.Workout(id)
			ctx.Workout = &w
		}
	}

	if value, present = vars["exercise_name"]; present && err == nil {
		var name string
		name, err = nameVar(value, "exercise", "name")
		if err == nil {
			var e workoutlog.Exercise
			if ctx.Route == "workoutExercise" {
				e, err = api.Store.WorkoutExercise(ctx.Workout.ID, name)
			} else {
				e, err = api.Store.Exercise(name)
			}
			ctx.Exercise = &e
		}
	}

	if value, present = vars["order"]; present && err == nil {
		var order int
		what := "max data entry"
		if ctx.Workout != nil {
			what = "set"
		}
		order, err = intVar(value, what, "order")
		if err == nil && ctx.Workout != nil {
			var s workoutlog.Set
			s, err = api.Store.Set(ctx.Workout.ID, ctx.Exercise.Name, order)
			ctx.Set = &s
		} else if err == nil {
			var m workoutlog.MaxData
			m, err = api.Store.MaxDataItem(ctx.Exercise.Name, order)
			ctx.MaxData = &m
		}
	}

	if value, present = vars["week_number"]; present && err == nil {
		var week int
		var exerciseType string
		week, err = intVar(value, "weekly programming", "week number")
		if err == nil {
			exerciseType, err = nameVar(vars["exercise_type"], "weekly programming", "exercise type")
		}
		if err == nil {
			var p workoutlog.WeeklyProgramming
			p, err = api.Store.WeeklyProgrammingItem(exerciseType, week)
			ctx.Programming = &p
		}
	}

	return
}
