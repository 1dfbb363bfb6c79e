// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import "github.com/diffeo/go-workoutlog/restdata"

// Control names used in more than one document.
var (
	relDelete                       = restdata.Relation("delete")
	relDeleteFromWorkout            = restdata.Relation("delete-from-workout")
	relWorkoutsAll                  = restdata.Relation("workouts-all")
	relExercisesAll                 = restdata.Relation("exercises-all")
	relWeeklyProgrammingAll         = restdata.Relation("weekly-programming-all")
	relExercisesWithinWorkout       = restdata.Relation("exercises-within-workout")
	relWorkoutsByExercise           = restdata.Relation("workouts-by-exercise")
	relSetsWithinWorkout            = restdata.Relation("sets-within-workout")
	relMaxDataForExercise           = restdata.Relation("max-data-for-exercise")
	relWeeklyProgrammingForExercise = restdata.Relation("weekly-programming-for-exercise")
	relAddWorkout                   = restdata.Relation("add-workout")
	relAddExercise                  = restdata.Relation("add-exercise")
	relAddExerciseToWorkout         = restdata.Relation("add-exercise-to-workout")
	relAddSet                       = restdata.Relation("add-set")
	relAddMaxData                   = restdata.Relation("add-max-data")
	relAddWeeklyProgramming         = restdata.Relation("add-weekly-programming")
)

func getControl(title string) restdata.Control {
	return restdata.Control{Method: "GET", Title: title}
}

func addControl(title string, schema *restdata.Schema) restdata.Control {
	return restdata.Control{
		Method:   "POST",
		Encoding: "json",
		Title:    title,
		Schema:   schema.Document(),
	}
}

func editControl(title string, schema *restdata.Schema) restdata.Control {
	return restdata.Control{
		Method:   "PUT",
		Encoding: "json",
		Title:    title,
		Schema:   schema.Document(),
	}
}

func deleteControl(title string) restdata.Control {
	return restdata.Control{Method: "DELETE", Title: title}
}

// newDocument starts a top-level document with the link relation
// namespace and a profile.
func newDocument(profile string) restdata.Document {
	doc := restdata.NewDocument()
	doc.AddNamespace(restdata.Namespace, restdata.LinkRelationsPath)
	addProfile(doc, profile)
	return doc
}

// newCollection starts a collection document, which has an items
// list even if it is empty.
func newCollection(profile string) restdata.Document {
	doc := newDocument(profile)
	doc["items"] = []interface{}{}
	return doc
}

func addProfile(doc restdata.Document, profile string) {
	doc.AddControl("profile", restdata.Control{Href: restdata.ProfileURL(profile)})
}

// item merges the fields of an object into a new item document with
// a profile.
func item(fields restdata.Document, profile string) restdata.Document {
	addProfile(fields, profile)
	return fields
}

// withFields copies the fields of an object into a document.
func withFields(doc, fields restdata.Document) restdata.Document {
	for k, v := range fields {
		doc[k] = v
	}
	return doc
}
