// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/gorilla/mux"
)

func programmingURLs(api *restAPI, p workoutlog.WeeklyProgramming) *urlBuilder {
	return buildURLs(api.Router,
		"exercise_type", p.ExerciseType,
		"week_number", itoa(p.WeekNumber))
}

// addProgrammingEditing adds the controls that change a programming
// entry, which always point at its canonical URL.
func addProgrammingEditing(doc restdata.Document, u *urlBuilder) *urlBuilder {
	return u.
		Control(doc, "edit", "weeklyProgrammingItem",
			editControl("Edit this weekly programming entry", restdata.WeeklyProgrammingSchema)).
		Control(doc, relDelete, "weeklyProgrammingItem",
			deleteControl("Delete this weekly programming data"))
}

// WeeklyProgrammingList lists the whole program.
func (api *restAPI) WeeklyProgrammingList(ctx *context) (interface{}, error) {
	all, err := api.Store.WeeklyProgramming()
	if err != nil {
		return nil, err
	}
	doc := newCollection(restdata.WeeklyProgrammingProfile)
	u := buildURLs(api.Router).
		Control(doc, "self", "weeklyProgramming", restdata.Control{}).
		Control(doc, relAddWeeklyProgramming, "weeklyProgramming",
			addControl("Add a new weekly programming data entry", restdata.WeeklyProgrammingSchema))
	for _, p := range all {
		it := item(restdata.FromWeeklyProgramming(p).Document(), restdata.WeeklyProgrammingProfile)
		pu := programmingURLs(api, p).
			Control(it, "self", "weeklyProgrammingItem", restdata.Control{})
		if err = addProgrammingEditing(it, pu).Error; err != nil {
			return nil, err
		}
		doc.AddItem(it)
	}
	return doc, u.Error
}

// WeeklyProgrammingPost adds an entry to the program.
func (api *restAPI) WeeklyProgrammingPost(ctx *context, in restdata.Document) (interface{}, error) {
	var wire restdata.WeeklyProgramming
	err := in.Into(&wire)
	if err != nil {
		return nil, err
	}
	p, err := wire.WeeklyProgramming()
	if err != nil {
		return nil, err
	}
	if err = api.Store.AddWeeklyProgramming(p); err != nil {
		return nil, err
	}
	var created responseCreated
	err = programmingURLs(api, p).
		URL(&created.Location, "weeklyProgrammingItem").
		Error
	return created, err
}

// ExerciseWeeklyProgrammingList lists the program entries matching an
// exercise's type.
func (api *restAPI) ExerciseWeeklyProgrammingList(ctx *context) (interface{}, error) {
	all, err := api.Store.WeeklyProgrammingForExercise(ctx.Exercise.Name)
	if err != nil {
		return nil, err
	}
	doc := newCollection(restdata.WeeklyProgrammingProfile)
	u := buildURLs(api.Router, "exercise_name", ctx.Exercise.Name).
		Control(doc, "self", "exerciseWeeklyProgramming", restdata.Control{}).
		Control(doc, "up", "exercise", restdata.Control{})
	for _, p := range all {
		it := item(restdata.FromWeeklyProgramming(p).Document(), restdata.WeeklyProgrammingProfile)
		err = u.With("exercise_type", p.ExerciseType, "week_number", itoa(p.WeekNumber)).
			Control(it, "self", "exerciseWeeklyProgrammingItem", restdata.Control{}).
			Error
		if err != nil {
			return nil, err
		}
		doc.AddItem(it)
	}
	return doc, u.Error
}

// WeeklyProgrammingGet returns a single entry.  Through the exercise
// alias it points up to that exercise's program.
func (api *restAPI) WeeklyProgrammingGet(ctx *context) (interface{}, error) {
	p := *ctx.Programming
	doc := newDocument(restdata.WeeklyProgrammingProfile)
	withFields(doc, restdata.FromWeeklyProgramming(p).Document())
	u := programmingURLs(api, p)
	if ctx.Route == "exerciseWeeklyProgrammingItem" {
		u = u.With("exercise_name", ctx.Exercise.Name).
			Control(doc, "self", "exerciseWeeklyProgrammingItem", restdata.Control{}).
			Control(doc, "up", "exerciseWeeklyProgramming", restdata.Control{})
	} else {
		u = u.
			Control(doc, "self", "weeklyProgrammingItem", restdata.Control{}).
			Control(doc, "collection", "weeklyProgramming", restdata.Control{})
	}
	return doc, addProgrammingEditing(doc, u).Error
}

// WeeklyProgrammingPut changes the fields of an entry present in the
// request.
func (api *restAPI) WeeklyProgrammingPut(ctx *context, in restdata.Document) (interface{}, error) {
	var wire restdata.WeeklyProgramming
	err := in.Into(&wire)
	if err != nil {
		return nil, err
	}
	update, err := wire.Update()
	if err != nil {
		return nil, err
	}
	p := ctx.Programming
	return nil, api.Store.UpdateWeeklyProgramming(p.ExerciseType, p.WeekNumber, update)
}

// WeeklyProgrammingDelete deletes a single entry.
func (api *restAPI) WeeklyProgrammingDelete(ctx *context) (interface{}, error) {
	p := ctx.Programming
	return nil, api.Store.DeleteWeeklyProgramming(p.ExerciseType, p.WeekNumber)
}

// PopulateWeeklyProgramming adds the weekly programming routes to a
// router rooted at the API root.
func (api *restAPI) PopulateWeeklyProgramming(r *mux.Router) {
	r.Path("/weekly-programming/").Name("weeklyProgramming").Handler(api.handler(&resourceHandler{
		Schema: restdata.WeeklyProgrammingSchema,
		Get:    api.WeeklyProgrammingList,
		Post:   api.WeeklyProgrammingPost,
	}))
	r.Path("/exercises/{exercise_name}/weekly-programming/").Name("exerciseWeeklyProgramming").Handler(api.handler(&resourceHandler{
		Get: api.ExerciseWeeklyProgrammingList,
	}))
	item := &resourceHandler{
		Schema: restdata.WeeklyProgrammingSchema,
		Get:    api.WeeklyProgrammingGet,
		Put:    api.WeeklyProgrammingPut,
		Delete: api.WeeklyProgrammingDelete,
	}
	r.Path("/weekly-programming/{exercise_type}/{week_number}/").Name("weeklyProgrammingItem").Handler(api.handler(item))
	r.Path("/exercises/{exercise_name}/weekly-programming/{exercise_type}/{week_number}/").
		Name("exerciseWeeklyProgrammingItem").Handler(api.handler(item))
}
