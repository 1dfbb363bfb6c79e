// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes a workout log Store as a hypermedia
// REST service.  The restclient package is a matching client.
//
// Documents are Mason (https://github.com/JornWildt/Mason): plain
// JSON objects carrying the object's fields, plus "@controls" that
// link to related resources and describe the requests that change
// them, including a JSON schema for request bodies.  Clients should
// follow controls rather than build URLs; the root document at /api/
// has URI templates for every resource.
//
// HTTP Considerations
//
// Responses are application/vnd.mason+json unless the Accept: header
// asks for application/json or text/json, which get the same body.
// Request bodies may use any JSON media type.  POST returns 201
// Created with a Location: header and no body; PUT and DELETE return
// 204 No Content.  PUT bodies must satisfy the same schema as POST,
// but only fields present in the body change.
//
// Errors are Mason documents with an "@error" object.  Its "@code" is
// the name of the Go error type, which restclient uses to rebuild the
// original error.
//
// URL Scheme
//
// Exercises are addressed by name.  A name that is empty, begins with
// -, or contains / is base64 encoded using the URL-safe alphabet (RFC
// 4648 section 5), with no padding, and with an additional - at the
// front: /api/exercises/-QmVuY2gvRGlw/ is the exercise "Bench/Dip".
//
// The following URLs are defined:
//
//     /api/
//     /api/workouts/
//     /api/workouts/{workout_id}/
//     /api/workouts/{workout_id}/exercises/
//     /api/workouts/{workout_id}/exercises/{exercise_name}/
//     /api/workouts/{workout_id}/exercises/{exercise_name}/sets/
//     /api/workouts/{workout_id}/exercises/{exercise_name}/sets/{order}/
//     /api/exercises/
//     /api/exercises/{exercise_name}/
//     /api/exercises/{exercise_name}/workouts/
//     /api/exercises/{exercise_name}/workouts/{workout_id}/
//     /api/exercises/{exercise_name}/workouts/{workout_id}/sets/
//     /api/exercises/{exercise_name}/workouts/{workout_id}/sets/{order}/
//     /api/exercises/{exercise_name}/max-data/
//     /api/exercises/{exercise_name}/max-data/{order}/
//     /api/exercises/{exercise_name}/weekly-programming/
//     /api/exercises/{exercise_name}/weekly-programming/{exercise_type}/{week_number}/
//     /api/weekly-programming/
//     /api/weekly-programming/{exercise_type}/{week_number}/
//     /profiles/{profile}/
//     /workoutlog/link-relations/
//
// The last two redirect into the API documentation.
package restserver
