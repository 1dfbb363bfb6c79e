// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const invalidDocumentTitle = "Invalid JSON document. Missing field or incorrect type."

// Schema is a JSON schema describing a request body.  The same
// schema is published in "edit" and "add" controls and used to
// validate incoming documents.
type Schema struct {
	doc      map[string]interface{}
	compiled *gojsonschema.Schema
}

type property struct {
	name, kind, description string
}

func newSchema(required []string, properties ...property) *Schema {
	props := map[string]interface{}{}
	for _, p := range properties {
		props[p.name] = map[string]interface{}{
			"description": p.description,
			"type":        p.kind,
		}
	}
	doc := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		req := make([]interface{}, len(required))
		for i, r := range required {
			req[i] = r
		}
		doc["required"] = req
	}
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		panic(err)
	}
	return &Schema{doc: doc, compiled: compiled}
}

// Document returns the schema as a JSON-compatible object.
func (s *Schema) Document() map[string]interface{} {
	return s.doc
}

// Validate checks a JSON document against the schema.  It returns an
// ErrBadRequest describing every violation.
func (s *Schema) Validate(body []byte) error {
	result, err := s.compiled.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return ErrBadRequest{Title: invalidDocumentTitle, Detail: err.Error()}
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, e := range result.Errors() {
		details = append(details, e.String())
	}
	return ErrBadRequest{Title: invalidDocumentTitle, Detail: strings.Join(details, "; ")}
}

// WorkoutSchema describes a workout.
var WorkoutSchema = newSchema([]string{"date_time"},
	property{"workout_id", "integer", "Identifier of the workout"},
	property{"date_time", "string", "Date and time of the workout (YYYY-MM-DD HH:MM)"},
	property{"duration", "string", "Duration of the workout (HH:MM)"},
	property{"body_weight", "number", "Trainee's body weight during the day of the workout"},
	property{"average_heart_rate", "integer", "Average heart rate during the workout"},
	property{"max_heart_rate", "integer", "Max heart rate during the workout"},
	property{"notes", "string", "Any additional notes about the workout"},
)

// ExerciseSchema describes an exercise.
var ExerciseSchema = newSchema([]string{"exercise_name"},
	property{"exercise_name", "string", "Name of the exercise"},
	property{"exercise_type", "string", "Type of the exercise, for example main lift / variation lift / cardio"},
)

// SetSchema describes a set.  No field is required.
var SetSchema = newSchema(nil,
	property{"order_in_workout", "integer", "The set's order number in a workout. Automatic."},
	property{"weight", "number", "Weight used for the set"},
	property{"number_of_reps", "integer", "Amount of repetitions achieved during the set"},
	property{"reps_in_reserve", "integer", "Amount of reps left in reserve during the set"},
	property{"rate_of_perceived_exertion", "number", "Rate of perceived exertion (RPE) during the set"},
	property{"duration", "string", "Duration of the set (HH:MM)"},
	property{"distance", "number", "Distance travelled during the set"},
)

// MaxDataSchema describes a max data entry.
var MaxDataSchema = newSchema([]string{"date"},
	property{"order_for_exercise", "integer", "Order number of the max data for the exercise. Automatic."},
	property{"date", "string", "Date of the max data"},
	property{"training_max", "number", "Training max of the exercise"},
	property{"estimated_max", "number", "Estimated max of the exercise"},
	property{"tested_max", "number", "Tested max of the exercise"},
)

// WeeklyProgrammingSchema describes a weekly programming entry.
var WeeklyProgrammingSchema = newSchema([]string{"week_number", "exercise_type"},
	property{"week_number", "integer", "The week number for which week this programming data is for"},
	property{"exercise_type", "string", "Type of the exercise for which this programming is meant for"},
	property{"intensity", "number", "Prescribed intensity of the exercise"},
	property{"number_of_sets", "integer", "Prescribed number of sets"},
	property{"number_of_reps", "integer", "Prescribed number of reps per set"},
	property{"reps_in_reserve", "integer", "Prescribed amount of reps that should be left in reserve during a set"},
	property{"rate_of_perceived_exertion", "number", "Prescribed rate of perceived exertion (RPE) for the sets"},
	property{"duration", "string", "Prescribed duration of a set or the whole session, mainly for cardio"},
	property{"distance", "number", "Prescribed distance traveled during a set or the whole session, mainly for cardio"},
	property{"average_heart_rate", "integer", "Prescribed average heart rate during a set or the whole session, mainly for cardio"},
	property{"notes", "string", "Any additional notes for this programming data"},
)
