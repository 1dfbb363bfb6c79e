// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/gorilla/mux"
)

// setRoutes names the routes along one of the two orderings of a
// set's URL.
type setRoutes struct {
	Sets, Set, Up string
}

var (
	workoutSetRoutes  = setRoutes{Sets: "workoutSets", Set: "workoutSet", Up: "workoutExercise"}
	exerciseSetRoutes = setRoutes{Sets: "exerciseSets", Set: "exerciseSet", Up: "exerciseWorkout"}
)

// setRoutesFor picks the routes matching the ordering the request
// used.
func setRoutesFor(ctx *context) setRoutes {
	switch ctx.Route {
	case "exerciseSets", "exerciseSet":
		return exerciseSetRoutes
	}
	return workoutSetRoutes
}

func (api *restAPI) setURLs(ctx *context) *urlBuilder {
	return buildURLs(api.Router,
		"workout_id", itoa(ctx.Workout.ID),
		"exercise_name", ctx.Exercise.Name)
}

func (api *restAPI) decodeSet(in restdata.Document) (restdata.Set, error) {
	var wire restdata.Set
	err := in.Into(&wire)
	return wire, err
}

// SetList lists the sets of an exercise in a workout.
func (api *restAPI) SetList(ctx *context) (interface{}, error) {
	sets, err := api.Store.Sets(ctx.Workout.ID, ctx.Exercise.Name)
	if err != nil {
		return nil, err
	}
	routes := setRoutesFor(ctx)
	doc := newCollection(restdata.SetProfile)
	u := api.setURLs(ctx).
		Control(doc, "self", routes.Sets, restdata.Control{}).
		Control(doc, "up", routes.Up, restdata.Control{}).
		Control(doc, relAddSet, "workoutSets", addControl("Add a new set", restdata.SetSchema))
	for _, s := range sets {
		it := item(restdata.FromSet(s).Document(), restdata.SetProfile)
		err = u.With("order", itoa(s.OrderInWorkout)).
			Control(it, "self", routes.Set, restdata.Control{}).
			Control(it, relDelete, routes.Set, deleteControl("Delete this set")).
			Error
		if err != nil {
			return nil, err
		}
		doc.AddItem(it)
	}
	return doc, u.Error
}

// SetPost adds a set to an exercise in a workout.
func (api *restAPI) SetPost(ctx *context, in restdata.Document) (interface{}, error) {
	wire, err := api.decodeSet(in)
	if err != nil {
		return nil, err
	}
	set, err := wire.Set(ctx.Workout.ID, ctx.Exercise.Name)
	if err != nil {
		return nil, err
	}
	set, err = api.Store.AddSet(set)
	if err != nil {
		return nil, err
	}
	var created responseCreated
	err = api.setURLs(ctx).With("order", itoa(set.OrderInWorkout)).
		URL(&created.Location, "workoutSet").
		Error
	return created, err
}

// SetGet returns a single set.
func (api *restAPI) SetGet(ctx *context) (interface{}, error) {
	routes := setRoutesFor(ctx)
	doc := newDocument(restdata.SetProfile)
	withFields(doc, restdata.FromSet(*ctx.Set).Document())
	err := api.setURLs(ctx).With("order", itoa(ctx.Set.OrderInWorkout)).
		Control(doc, "self", routes.Set, restdata.Control{}).
		Control(doc, "collection", routes.Sets, restdata.Control{}).
		Control(doc, "edit", routes.Set, editControl("Edit this set", restdata.SetSchema)).
		Control(doc, relDelete, routes.Set, deleteControl("Delete this set")).
		Error
	return doc, err
}

// SetPut changes the fields of a set present in the request.  Only
// the set itself changes, never its workout.
func (api *restAPI) SetPut(ctx *context, in restdata.Document) (interface{}, error) {
	wire, err := api.decodeSet(in)
	if err != nil {
		return nil, err
	}
	update, err := wire.Update()
	if err != nil {
		return nil, err
	}
	return nil, api.Store.UpdateSet(ctx.Workout.ID, ctx.Exercise.Name, ctx.Set.OrderInWorkout, update)
}

// SetDelete deletes a single set.
func (api *restAPI) SetDelete(ctx *context) (interface{}, error) {
	return nil, api.Store.DeleteSet(ctx.Workout.ID, ctx.Exercise.Name, ctx.Set.OrderInWorkout)
}

// PopulateSet adds the set routes to a router rooted at the API
// root.  Sets are reachable through the workout and through the
// exercise, in either order.
func (api *restAPI) PopulateSet(r *mux.Router) {
	list := &resourceHandler{
		Schema: restdata.SetSchema,
		Get:    api.SetList,
		Post:   api.SetPost,
	}
	item := &resourceHandler{
		Schema: restdata.SetSchema,
		Get:    api.SetGet,
		Put:    api.SetPut,
		Delete: api.SetDelete,
	}
	r.Path("/workouts/{workout_id}/exercises/{exercise_name}/sets/").Name("workoutSets").Handler(api.handler(list))
	r.Path("/exercises/{exercise_name}/workouts/{workout_id}/sets/").Name("exerciseSets").Handler(api.handler(list))
	r.Path("/workouts/{workout_id}/exercises/{exercise_name}/sets/{order}/").Name("workoutSet").Handler(api.handler(item))
	r.Path("/exercises/{exercise_name}/workouts/{workout_id}/sets/{order}/").Name("exerciseSet").Handler(api.handler(item))
}
