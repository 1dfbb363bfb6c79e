// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-workoutlog/memory"
	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ResourceSuite drives the HTTP surface directly against a memory
// store.
type ResourceSuite struct {
	suite.Suite
	Store   workoutlog.Store
	Router  *mux.Router
	Metrics *Metrics
	Clock   *clock.Mock
}

func (s *ResourceSuite) SetupTest() {
	var err error
	s.Store = memory.New()
	s.Clock = clock.NewMock()
	s.Metrics, err = NewMetrics(prometheus.NewRegistry(), s.Clock)
	s.Require().NoError(err)
	s.Router = mux.NewRouter()
	PopulateRouter(s.Router, s.Store, Options{
		DocsURL: "https://docs.example.com/",
		Metrics: s.Metrics,
	})
}

func (s *ResourceSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		var buf bytes.Buffer
		s.Require().NoError(restdata.Encode(&buf, body))
		reader = &buf
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", restdata.JSONMediaType)
	}
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func (s *ResourceSuite) document(rec *httptest.ResponseRecorder) restdata.Document {
	doc, err := restdata.Decode(rec.Header().Get("Content-Type"), rec.Body, nil)
	s.Require().NoError(err)
	return doc
}

// errorOf decodes an error response back into a Go error.
func (s *ResourceSuite) errorOf(rec *httptest.ResponseRecorder) error {
	return s.document(rec).ToError(rec.Code)
}

func (s *ResourceSuite) addWorkout(day int) workoutlog.Workout {
	w, err := s.Store.AddWorkout(workoutlog.Workout{
		DateTime: time.Date(2021, 8, day, 14, 15, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	return w
}

func (s *ResourceSuite) href(doc restdata.Document, name string) string {
	control, ok := doc.Control(name)
	s.Require().True(ok, "no control %q", name)
	return control.Href
}

func (s *ResourceSuite) TestRoot() {
	rec := s.do("GET", "/api/", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(restdata.MasonMediaType, rec.Header().Get("Content-Type"))
	doc := s.document(rec)

	s.Equal("/api/workouts/", s.href(doc, "workoutlog:workouts-all"))
	s.Equal("/api/exercises/", s.href(doc, "workoutlog:exercises-all"))
	s.Equal("/api/weekly-programming/", s.href(doc, "workoutlog:weekly-programming-all"))

	control, ok := doc.Control("workoutlog:set")
	s.Require().True(ok)
	s.True(control.IsHrefTemplate)
	s.Equal("/api/workouts/{workout_id}/exercises/{exercise_name}/sets/{order}/", control.Href)

	control, ok = doc.Control("workoutlog:weekly-programming")
	s.Require().True(ok)
	s.Equal("/api/weekly-programming/{exercise_type}/{week_number}/", control.Href)
}

func (s *ResourceSuite) TestRedirects() {
	rec := s.do("GET", "/profiles/workout/", nil)
	s.Equal(http.StatusFound, rec.Code)
	s.Equal("https://docs.example.com/workout/", rec.Header().Get("Location"))

	rec = s.do("GET", "/workoutlog/link-relations/", nil)
	s.Equal(http.StatusFound, rec.Code)
	s.Equal("https://docs.example.com/link-relations", rec.Header().Get("Location"))
}

func (s *ResourceSuite) TestWorkoutPost() {
	s.addWorkout(10)
	s.addWorkout(11)

	rec := s.do("POST", "/api/workouts/", map[string]interface{}{
		"date_time":   "2021-8-12 9:05",
		"body_weight": 72,
	})
	s.Equal(http.StatusCreated, rec.Code)
	s.Equal(0, rec.Body.Len())
	location := rec.Header().Get("Location")
	s.True(strings.HasSuffix(location, "/workouts/3/"), location)

	rec = s.do("GET", location, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	doc := s.document(rec)
	var wire restdata.Workout
	s.Require().NoError(doc.Into(&wire))
	if s.NotNil(wire.BodyWeight) {
		s.Equal(72.0, *wire.BodyWeight)
	}
	if s.NotNil(wire.DateTime) {
		s.Equal("2021-08-12 09:05", *wire.DateTime)
	}
	if s.NotNil(wire.WorkoutID) {
		s.Equal(3, *wire.WorkoutID)
	}
	s.Equal(location, s.href(doc, "self"))
	s.Equal("/api/workouts/", s.href(doc, "collection"))
	s.Equal("/api/workouts/3/exercises/", s.href(doc, "workoutlog:exercises-within-workout"))

	edit, ok := doc.Control("edit")
	s.Require().True(ok)
	s.Equal("PUT", edit.Method)
	s.NotNil(edit.Schema)
}

func (s *ResourceSuite) TestWorkoutPostErrors() {
	s.addWorkout(12)

	rec := s.do("POST", "/api/workouts/", map[string]interface{}{
		"date_time": "2021-08-12 14:15",
	})
	s.Equal(http.StatusConflict, rec.Code)
	s.IsType(workoutlog.ErrWorkoutExists{}, s.errorOf(rec))

	rec = s.do("POST", "/api/workouts/", map[string]interface{}{
		"body_weight": 72,
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	if err, ok := s.errorOf(rec).(restdata.ErrBadRequest); s.True(ok) {
		s.Equal("Invalid JSON document. Missing field or incorrect type.", err.Title)
	}

	rec = s.do("POST", "/api/workouts/", map[string]interface{}{
		"date_time": "2021-08-13 14:15",
		"notes":     strings.Repeat("x", workoutlog.MaxNoteLength+1),
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do("POST", "/api/workouts/", map[string]interface{}{
		"date_time": "yesterday",
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest("POST", "/api/workouts/", strings.NewReader("date_time=now"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
	s.Equal("Unsupported media type", s.document(rec)["@error"].(map[string]interface{})["@message"])
}

func (s *ResourceSuite) TestWorkoutPut() {
	first := s.addWorkout(12)
	second := s.addWorkout(13)
	path := "/api/workouts/" + itoa(second.ID) + "/"

	rec := s.do("PUT", path, map[string]interface{}{
		"date_time": workoutlog.FormatDateTime(first.DateTime),
	})
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do("PUT", path, map[string]interface{}{
		"date_time": workoutlog.FormatDateTime(second.DateTime),
		"notes":     "heavy",
	})
	s.Equal(http.StatusNoContent, rec.Code)

	w, err := s.Store.Workout(second.ID)
	s.Require().NoError(err)
	if s.NotNil(w.Notes) {
		s.Equal("heavy", *w.Notes)
	}

	rec = s.do("PUT", "/api/workouts/99/", map[string]interface{}{
		"date_time": "2021-08-20 10:00",
	})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ResourceSuite) TestWorkoutDelete() {
	w := s.addWorkout(12)
	s.Require().NoError(s.Store.AddWorkoutExercise(w.ID, workoutlog.Exercise{Name: "Squat"}))
	_, err := s.Store.AddSet(workoutlog.Set{WorkoutID: w.ID, ExerciseName: "Squat"})
	s.Require().NoError(err)

	rec := s.do("DELETE", "/api/workouts/99/", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.IsType(workoutlog.ErrNoSuchWorkout{}, s.errorOf(rec))

	rec = s.do("DELETE", "/api/workouts/"+itoa(w.ID)+"/", nil)
	s.Equal(http.StatusNoContent, rec.Code)
	rec = s.do("DELETE", "/api/workouts/"+itoa(w.ID)+"/", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	// The exercise survives, and has no workouts.
	rec = s.do("GET", "/api/exercises/Squat/workouts/", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(s.document(rec).Items())
}

func (s *ResourceSuite) TestMethodNotAllowed() {
	rec := s.do("PATCH", "/api/workouts/", nil)
	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	rec = s.do("POST", "/api/exercises/Squat/workouts/", nil)
	s.Equal(http.StatusMethodNotAllowed, rec.Code)
}

func (s *ResourceSuite) TestNotAcceptable() {
	req := httptest.NewRequest("GET", "/api/workouts/", nil)
	req.Header.Set("Accept", "image/png")
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	s.Equal(http.StatusNotAcceptable, rec.Code)
}

func (s *ResourceSuite) TestBadIdentifier() {
	rec := s.do("GET", "/api/workouts/abc/", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	if err, ok := s.errorOf(rec).(restdata.ErrRemote); s.True(ok) {
		s.Equal("Not found", err.Message)
		s.Equal([]string{`No workout with id "abc"`}, err.Messages)
	}

	rec = s.do("GET", "/api/workouts/-1/", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.IsType(workoutlog.ErrNoSuchWorkout{}, s.errorOf(rec))

	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Squat"}))
	rec = s.do("GET", "/api/exercises/Squat/max-data/first/", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	if err, ok := s.errorOf(rec).(restdata.ErrRemote); s.True(ok) {
		s.Equal([]string{`No max data entry with order "first"`}, err.Messages)
	}

	rec = s.do("GET", "/api/weekly-programming/Cardio/one/", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	if err, ok := s.errorOf(rec).(restdata.ErrRemote); s.True(ok) {
		s.Equal([]string{`No weekly programming with week number "one"`}, err.Messages)
	}
}

func (s *ResourceSuite) TestNegativeOrder() {
	w := s.addWorkout(12)
	s.Require().NoError(s.Store.AddWorkoutExercise(w.ID, workoutlog.Exercise{Name: "Squat"}))

	sets := "/api/workouts/" + itoa(w.ID) + "/exercises/Squat/sets/"
	rec := s.do("POST", sets, map[string]interface{}{"order_in_workout": -3, "weight": 60})
	s.Require().Equal(http.StatusCreated, rec.Code)
	location := rec.Header().Get("Location")
	s.Equal(sets+"-3/", location)

	rec = s.do("GET", location, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	doc := s.document(rec)
	s.Equal(location, s.href(doc, "self"))
	var set restdata.Set
	s.Require().NoError(doc.Into(&set))
	if s.NotNil(set.OrderInWorkout) {
		s.Equal(-3, *set.OrderInWorkout)
	}

	maxData := "/api/exercises/Squat/max-data/"
	rec = s.do("POST", maxData, map[string]interface{}{
		"order_for_exercise": -1,
		"date":               "2021-8-1",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	location = rec.Header().Get("Location")
	s.Equal(maxData+"-1/", location)
	rec = s.do("GET", location, nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ResourceSuite) TestZeroOrderIsAssigned() {
	w := s.addWorkout(12)
	s.Require().NoError(s.Store.AddWorkoutExercise(w.ID, workoutlog.Exercise{Name: "Squat"}))

	sets := "/api/workouts/" + itoa(w.ID) + "/exercises/Squat/sets/"
	rec := s.do("POST", sets, map[string]interface{}{"order_in_workout": 2})
	s.Require().Equal(http.StatusCreated, rec.Code)
	rec = s.do("POST", sets, map[string]interface{}{"order_in_workout": 0})
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Equal(sets+"1/", rec.Header().Get("Location"))
}

func (s *ResourceSuite) TestOutOfRangeInteger() {
	rec := s.do("POST", "/api/workouts/", map[string]interface{}{
		"date_time":          "2020-12-27 10:00",
		"average_heart_rate": 1e30,
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.IsType(restdata.ErrBadRequest{}, s.errorOf(rec))

	workouts, err := s.Store.Workouts()
	s.Require().NoError(err)
	s.Empty(workouts)
}

func (s *ResourceSuite) TestExercise() {
	rec := s.do("POST", "/api/exercises/", map[string]interface{}{
		"exercise_name": "Bench/Dip",
		"exercise_type": "main lift",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	location := rec.Header().Get("Location")
	s.Equal("/api/exercises/-QmVuY2gvRGlw/", location)

	rec = s.do("GET", location, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	doc := s.document(rec)
	s.Equal("Bench/Dip", doc["exercise_name"])
	s.Equal("/api/exercises/-QmVuY2gvRGlw/max-data/", s.href(doc, "workoutlog:max-data-for-exercise"))

	rec = s.do("POST", "/api/exercises/", map[string]interface{}{
		"exercise_name": "Bench/Dip",
	})
	s.Equal(http.StatusConflict, rec.Code)
	s.IsType(workoutlog.ErrExerciseExists{}, s.errorOf(rec))

	rec = s.do("GET", "/api/exercises/Deadlift/", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.IsType(workoutlog.ErrNoSuchExercise{}, s.errorOf(rec))
}

func (s *ResourceSuite) TestWorkoutExercise() {
	w := s.addWorkout(12)
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Squat"}))
	base := "/api/workouts/" + itoa(w.ID) + "/exercises/"

	rec := s.do("GET", base+"Squat/", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.IsType(workoutlog.ErrExerciseNotInWorkout{}, s.errorOf(rec))

	rec = s.do("POST", base, map[string]interface{}{"exercise_name": "Squat"})
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Equal(base+"Squat/", rec.Header().Get("Location"))

	rec = s.do("POST", base, map[string]interface{}{"exercise_name": "Squat"})
	s.Equal(http.StatusConflict, rec.Code)
	s.IsType(workoutlog.ErrExerciseInWorkout{}, s.errorOf(rec))

	rec = s.do("GET", base+"Squat/", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	doc := s.document(rec)
	s.Equal(base, s.href(doc, "collection"))
	s.Equal(base+"Squat/sets/", s.href(doc, "workoutlog:sets-within-workout"))
	s.Equal("/api/exercises/Squat/", s.href(doc, "edit"))

	rec = s.do("DELETE", base+"Squat/", nil)
	s.Equal(http.StatusNoContent, rec.Code)
	_, err := s.Store.Exercise("Squat")
	s.NoError(err)
	exercises, err := s.Store.WorkoutExercises(w.ID)
	s.NoError(err)
	s.Empty(exercises)
}

func (s *ResourceSuite) TestSetPutKeepsWorkout() {
	w, err := s.Store.AddWorkout(workoutlog.Workout{
		DateTime:   time.Date(2021, 8, 12, 14, 15, 0, 0, time.UTC),
		BodyWeight: floatPtr(80),
	})
	s.Require().NoError(err)
	s.Require().NoError(s.Store.AddWorkoutExercise(w.ID, workoutlog.Exercise{Name: "Squat"}))

	sets := "/api/workouts/" + itoa(w.ID) + "/exercises/Squat/sets/"
	rec := s.do("POST", sets, map[string]interface{}{"weight": 100, "number_of_reps": 5})
	s.Require().Equal(http.StatusCreated, rec.Code)
	location := rec.Header().Get("Location")
	s.Equal(sets+"1/", location)

	rec = s.do("PUT", location, map[string]interface{}{
		"weight":   110,
		"duration": "0:30",
	})
	s.Require().Equal(http.StatusNoContent, rec.Code)

	set, err := s.Store.Set(w.ID, "Squat", 1)
	s.Require().NoError(err)
	if s.NotNil(set.Weight) {
		s.Equal(110.0, *set.Weight)
	}
	if s.NotNil(set.Duration) {
		s.Equal(30*time.Minute, *set.Duration)
	}
	if s.NotNil(set.NumberOfReps) {
		s.Equal(5, *set.NumberOfReps)
	}

	after, err := s.Store.Workout(w.ID)
	s.Require().NoError(err)
	s.Equal(w, after)

	// The other ordering reaches the same set.
	rec = s.do("GET", "/api/exercises/Squat/workouts/"+itoa(w.ID)+"/sets/1/", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	doc := s.document(rec)
	s.Equal("/api/exercises/Squat/workouts/"+itoa(w.ID)+"/sets/", s.href(doc, "collection"))
}

func (s *ResourceSuite) TestMaxData() {
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Squat"}))

	rec := s.do("POST", "/api/exercises/Squat/max-data/", map[string]interface{}{
		"date":         "2021-8-1",
		"tested_max":   140.5,
		"training_max": 125,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Equal("/api/exercises/Squat/max-data/1/", rec.Header().Get("Location"))

	rec = s.do("POST", "/api/exercises/Squat/max-data/", map[string]interface{}{
		"tested_max": 140.5,
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do("GET", "/api/exercises/Squat/max-data/1/", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	doc := s.document(rec)
	s.Equal("2021-08-01", doc["date"])
	s.Equal("/api/exercises/Squat/", s.href(doc, "up"))

	rec = s.do("GET", "/api/exercises/Squat/max-data/2/", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.IsType(workoutlog.ErrNoSuchMaxData{}, s.errorOf(rec))

	rec = s.do("DELETE", "/api/exercises/Squat/", nil)
	s.Equal(http.StatusNoContent, rec.Code)
	rec = s.do("GET", "/api/exercises/Squat/max-data/1/", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ResourceSuite) TestWeeklyProgramming() {
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{
		Name: "Squat",
		Type: stringPtr("main"),
	}))

	rec := s.do("POST", "/api/weekly-programming/", map[string]interface{}{
		"week_number":   1,
		"exercise_type": "main",
		"intensity":     0.75,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Equal("/api/weekly-programming/main/1/", rec.Header().Get("Location"))

	rec = s.do("POST", "/api/weekly-programming/", map[string]interface{}{
		"week_number":   1,
		"exercise_type": "main",
	})
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do("GET", "/api/exercises/Squat/weekly-programming/", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	items := s.document(rec).Items()
	if s.Len(items, 1) {
		s.Equal("/api/exercises/Squat/weekly-programming/main/1/", s.href(items[0], "self"))
	}

	rec = s.do("GET", "/api/exercises/Squat/weekly-programming/main/1/", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	doc := s.document(rec)
	s.Equal("/api/exercises/Squat/weekly-programming/", s.href(doc, "up"))
	s.Equal("/api/weekly-programming/main/1/", s.href(doc, "edit"))

	rec = s.do("PUT", "/api/exercises/Squat/weekly-programming/main/1/", map[string]interface{}{
		"week_number":   1,
		"exercise_type": "main",
		"intensity":     0.8,
	})
	s.Equal(http.StatusNoContent, rec.Code)
	p, err := s.Store.WeeklyProgrammingItem("main", 1)
	s.Require().NoError(err)
	if s.NotNil(p.Intensity) {
		s.Equal(0.8, *p.Intensity)
	}

	rec = s.do("DELETE", "/api/weekly-programming/main/1/", nil)
	s.Equal(http.StatusNoContent, rec.Code)
	rec = s.do("DELETE", "/api/weekly-programming/main/1/", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ResourceSuite) TestMetrics() {
	s.do("GET", "/api/workouts/", nil)
	s.do("GET", "/api/workouts/99/", nil)

	ok := s.Metrics.requests.With(prometheus.Labels{
		"route": "workouts", "method": "GET", "status": "200",
	})
	missing := s.Metrics.requests.With(prometheus.Labels{
		"route": "workout", "method": "GET", "status": "404",
	})
	s.Equal(1.0, testutil.ToFloat64(ok))
	s.Equal(1.0, testutil.ToFloat64(missing))
}

func TestResources(t *testing.T) {
	suite.Run(t, new(ResourceSuite))
}

func TestDuplicateMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg, nil)
	require.NoError(t, err)
	_, err = NewMetrics(reg, nil)
	assert.Error(t, err)
}

func floatPtr(f float64) *float64 { return &f }

func stringPtr(s string) *string { return &s }
