// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// DefaultDocsURL is where profile and link relation documentation
// lives if Options does not say otherwise.
const DefaultDocsURL = "https://workoutlog.docs.apiary.io/"

// Options controls optional parts of the REST API.
type Options struct {
	// DocsURL is the base URL of the API documentation.  Profile
	// and link relation URLs redirect into it.
	DocsURL string

	// Log receives handler panics.  If nil the standard logrus
	// logger is used.
	Log logrus.FieldLogger

	// Metrics, if non-nil, records per-route request counts and
	// latencies.
	Metrics *Metrics
}

// NewRouter creates a new HTTP handler that processes all workout log
// requests, with the API under /api.  For more control over this
// setup, create a mux.Router and call PopulateRouter instead.
func NewRouter(store workoutlog.Store) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, store, Options{})
	return r
}

// PopulateRouter adds workout log routes to an existing
// github.com/gorilla/mux router object.  The API resources live under
// /api; the documentation redirects live under /profiles and
// /workoutlog.
//
//     r := mux.NewRouter()
//     restserver.PopulateRouter(r, memory.New(), restserver.Options{})
//     r.Handle("/metrics", promhttp.Handler())
func PopulateRouter(r *mux.Router, store workoutlog.Store, opts Options) {
	api := &restAPI{
		Store:   store,
		DocsURL: opts.DocsURL,
		Log:     opts.Log,
		Metrics: opts.Metrics,
	}
	if api.DocsURL == "" {
		api.DocsURL = DefaultDocsURL
	}
	if api.Log == nil {
		api.Log = logrus.StandardLogger()
	}
	api.Router = r.PathPrefix("/api").Subrouter()
	api.PopulateRouter(api.Router)
	api.PopulateDocs(r)
}

// restAPI holds the persistent state for the workout log REST API.
type restAPI struct {
	Store   workoutlog.Store
	Router  *mux.Router
	DocsURL string
	Log     logrus.FieldLogger
	Metrics *Metrics
}

// handler finishes setting up a resource handler and wraps it in
// instrumentation.
func (api *restAPI) handler(h *resourceHandler) http.Handler {
	h.Context = api.Context
	h.Log = api.Log
	if api.Metrics == nil {
		return h
	}
	return api.Metrics.Instrument(h)
}

// PopulateRouter adds all API URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	api.PopulateWorkout(r)
	api.PopulateExercise(r)
	api.PopulateSet(r)
	api.PopulateMaxData(r)
	api.PopulateWeeklyProgramming(r)
	r.Path("/").Name("root").Handler(api.handler(&resourceHandler{
		Get: api.RootDocument,
	}))
}

// rootTemplates lists the templated controls of the root document
// and the route each expands.
var rootTemplates = []struct{ Name, Route string }{
	{"workout", "workout"},
	{"exercise", "exercise"},
	{"exercises-within-workout", "workoutExercises"},
	{"workouts-by-exercise", "exerciseWorkouts"},
	{"exercise-within-workout", "workoutExercise"},
	{"sets-within-workout", "workoutSets"},
	{"set", "workoutSet"},
	{"max-data-for-exercise", "maxData"},
	{"max-data", "maxDataItem"},
	{"weekly-programming-for-exercise", "exerciseWeeklyProgramming"},
	{"weekly-programming", "weeklyProgrammingItem"},
}

// RootDocument is the entry point of the API.
func (api *restAPI) RootDocument(ctx *context) (interface{}, error) {
	doc := restdata.NewDocument()
	doc.AddNamespace(restdata.Namespace, restdata.LinkRelationsPath)
	u := buildURLs(api.Router).
		Control(doc, relWorkoutsAll, "workouts", getControl("Get all workouts in the database")).
		Control(doc, relExercisesAll, "exercises", getControl("Get all exercises in the database")).
		Control(doc, relWeeklyProgrammingAll, "weeklyProgramming",
			getControl("Get all weekly programming data in the database"))
	for _, t := range rootTemplates {
		u = u.Template(doc, restdata.Relation(t.Name), t.Route, restdata.Control{})
	}
	return doc, u.Error
}

// PopulateDocs adds the documentation redirects to a router at the
// server root.
func (api *restAPI) PopulateDocs(r *mux.Router) {
	r.Path("/profiles/{profile}/").Name("profile").HandlerFunc(api.ProfileRedirect)
	r.Path(restdata.LinkRelationsPath).Name("linkRelations").HandlerFunc(api.LinkRelationsRedirect)
}

// ProfileRedirect sends a profile URL to its documentation.
func (api *restAPI) ProfileRedirect(resp http.ResponseWriter, req *http.Request) {
	profile := mux.Vars(req)["profile"]
	http.Redirect(resp, req, api.DocsURL+profile+"/", http.StatusFound)
}

// LinkRelationsRedirect sends the link relation namespace to its
// documentation.
func (api *restAPI) LinkRelationsRedirect(resp http.ResponseWriter, req *http.Request) {
	http.Redirect(resp, req, api.DocsURL+"link-relations", http.StatusFound)
}
