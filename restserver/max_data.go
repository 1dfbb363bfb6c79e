// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/gorilla/mux"
)

// MaxDataList lists the max data history of an exercise.
func (api *restAPI) MaxDataList(ctx *context) (interface{}, error) {
	all, err := api.Store.MaxData(ctx.Exercise.Name)
	if err != nil {
		return nil, err
	}
	doc := newCollection(restdata.MaxDataProfile)
	u := buildURLs(api.Router, "exercise_name", ctx.Exercise.Name).
		Control(doc, "self", "maxData", restdata.Control{}).
		Control(doc, "up", "exercise", restdata.Control{}).
		Control(doc, relAddMaxData, "maxData", addControl("Add a new max data entry", restdata.MaxDataSchema))
	for _, m := range all {
		it := item(restdata.FromMaxData(m).Document(), restdata.MaxDataProfile)
		err = u.With("order", itoa(m.OrderForExercise)).
			Control(it, "self", "maxDataItem", restdata.Control{}).
			Error
		if err != nil {
			return nil, err
		}
		doc.AddItem(it)
	}
	return doc, u.Error
}

// MaxDataPost adds a max data entry to an exercise.
func (api *restAPI) MaxDataPost(ctx *context, in restdata.Document) (interface{}, error) {
	var wire restdata.MaxData
	err := in.Into(&wire)
	if err != nil {
		return nil, err
	}
	m, err := wire.MaxData(ctx.Exercise.Name)
	if err != nil {
		return nil, err
	}
	m, err = api.Store.AddMaxData(m)
	if err != nil {
		return nil, err
	}
	var created responseCreated
	err = buildURLs(api.Router, "exercise_name", m.ExerciseName, "order", itoa(m.OrderForExercise)).
		URL(&created.Location, "maxDataItem").
		Error
	return created, err
}

// MaxDataGet returns a single max data entry.
func (api *restAPI) MaxDataGet(ctx *context) (interface{}, error) {
	doc := newDocument(restdata.MaxDataProfile)
	withFields(doc, restdata.FromMaxData(*ctx.MaxData).Document())
	err := buildURLs(api.Router, "exercise_name", ctx.Exercise.Name, "order", itoa(ctx.MaxData.OrderForExercise)).
		Control(doc, "self", "maxDataItem", restdata.Control{}).
		Control(doc, "collection", "maxData", restdata.Control{}).
		Control(doc, "up", "exercise", restdata.Control{}).
		Control(doc, "edit", "maxDataItem", editControl("Edit this max data entry", restdata.MaxDataSchema)).
		Control(doc, relDelete, "maxDataItem", deleteControl("Delete this max data entry")).
		Error
	return doc, err
}

// MaxDataPut changes the fields of a max data entry present in the
// request.
func (api *restAPI) MaxDataPut(ctx *context, in restdata.Document) (interface{}, error) {
	var wire restdata.MaxData
	err := in.Into(&wire)
	if err != nil {
		return nil, err
	}
	update, err := wire.Update()
	if err != nil {
		return nil, err
	}
	return nil, api.Store.UpdateMaxData(ctx.Exercise.Name, ctx.MaxData.OrderForExercise, update)
}

// MaxDataDelete deletes a single max data entry.
func (api *restAPI) MaxDataDelete(ctx *context) (interface{}, error) {
	return nil, api.Store.DeleteMaxData(ctx.Exercise.Name, ctx.MaxData.OrderForExercise)
}

// PopulateMaxData adds the max data routes to a router rooted at the
// API root.
func (api *restAPI) PopulateMaxData(r *mux.Router) {
	r.Path("/exercises/{exercise_name}/max-data/").Name("maxData").Handler(api.handler(&resourceHandler{
		Schema: restdata.MaxDataSchema,
		Get:    api.MaxDataList,
		Post:   api.MaxDataPost,
	}))
	r.Path("/exercises/{exercise_name}/max-data/{order}/").Name("maxDataItem").Handler(api.handler(&resourceHandler{
		Schema: restdata.MaxDataSchema,
		Get:    api.MaxDataGet,
		Put:    api.MaxDataPut,
		Delete: api.MaxDataDelete,
	}))
}
