// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/diffeo/go-workoutlog/workoutlog"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is not JSON.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return "Requests must be JSON"
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrNotFound is a wrapper error that indicates that, due to the
// embedded error, a REST service should return a 404 Not Found error.
type ErrNotFound struct {
	Err error
}

func (e ErrNotFound) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 404 Not Found error code.
func (e ErrNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrBadRequest is returned as an error when there is an error decoding
// HTTP headers or the request body.
type ErrBadRequest struct {
	Title  string
	Detail string
}

func (e ErrBadRequest) Error() string {
	return e.Detail
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// ErrRemote is an error reported by a server that has no more
// specific Go type.
type ErrRemote struct {
	Status   int
	Message  string
	Messages []string
}

func (e ErrRemote) Error() string {
	if len(e.Messages) > 0 {
		return e.Messages[0]
	}
	return e.Message
}

// HTTPStatus returns the status the server reported.
func (e ErrRemote) HTTPStatus() int {
	return e.Status
}

// errorTypes maps the "@code" of an error document back to a Go type.
var errorTypes = map[string]reflect.Type{}

func registerErrors(errs ...error) {
	for _, err := range errs {
		t := reflect.TypeOf(err)
		errorTypes[t.Name()] = t
	}
}

func init() {
	registerErrors(
		workoutlog.ErrNoSuchWorkout{},
		workoutlog.ErrNoSuchExercise{},
		workoutlog.ErrExerciseNotInWorkout{},
		workoutlog.ErrNoSuchSet{},
		workoutlog.ErrNoSuchMaxData{},
		workoutlog.ErrNoSuchWeeklyProgramming{},
		workoutlog.ErrWorkoutExists{},
		workoutlog.ErrExerciseExists{},
		workoutlog.ErrExerciseInWorkout{},
		workoutlog.ErrSetExists{},
		workoutlog.ErrMaxDataExists{},
		workoutlog.ErrWeeklyProgrammingExists{},
		workoutlog.ErrInvalid{},
		ErrUnsupportedMediaType{},
		ErrBadRequest{},
	)
}

// Status finds the HTTP status of an error, along with the title and
// detail messages of its error document.
func Status(err error) (status int, title string, messages []string) {
	if wrapped, ok := err.(ErrNotFound); ok {
		err = wrapped.Err
		status = http.StatusNotFound
	}
	switch e := err.(type) {
	case workoutlog.ErrNoSuchWorkout, workoutlog.ErrNoSuchExercise,
		workoutlog.ErrExerciseNotInWorkout, workoutlog.ErrNoSuchSet,
		workoutlog.ErrNoSuchMaxData, workoutlog.ErrNoSuchWeeklyProgramming:
		return http.StatusNotFound, "Not found", []string{err.Error()}
	case workoutlog.ErrWorkoutExists, workoutlog.ErrExerciseExists,
		workoutlog.ErrExerciseInWorkout, workoutlog.ErrSetExists,
		workoutlog.ErrMaxDataExists, workoutlog.ErrWeeklyProgrammingExists:
		return http.StatusConflict, "Already exists", []string{err.Error()}
	case workoutlog.ErrInvalid:
		detail := e.Detail
		if detail == "" {
			detail = e.Message
		}
		return http.StatusBadRequest, e.Message, []string{detail}
	case ErrBadRequest:
		return http.StatusBadRequest, e.Title, []string{e.Detail}
	case ErrUnsupportedMediaType:
		return http.StatusUnsupportedMediaType, "Unsupported media type", []string{e.Error()}
	case ErrRemote:
		return e.Status, e.Message, e.Messages
	}
	if status == http.StatusNotFound {
		return status, "Not found", []string{err.Error()}
	}
	if status == 0 {
		status = http.StatusInternalServerError
		if errS, hasStatus := err.(ErrorStatus); hasStatus {
			status = errS.HTTPStatus()
		}
	}
	return status, http.StatusText(status), []string{err.Error()}
}

// ErrorDocument builds the Mason error document for err.  resourceURL
// is the path of the request that failed.
func ErrorDocument(err error, resourceURL string) Document {
	_, title, messages := Status(err)
	if wrapped, ok := err.(ErrNotFound); ok {
		err = wrapped.Err
	}
	e := map[string]interface{}{
		"@message":  title,
		"@messages": messages,
	}
	if _, known := errorTypes[reflect.TypeOf(err).Name()]; known {
		e["@code"] = reflect.TypeOf(err).Name()
		e["@params"] = err
	}
	doc := NewDocument()
	doc["resource_url"] = resourceURL
	doc["@error"] = e
	doc.AddControl("profile", Control{Href: ProfileURL(ErrorProfile)})
	return doc
}

// PanicDocument builds the error document for a recovered panic.
func PanicDocument(obj interface{}, resourceURL string) Document {
	var message string
	if recoveredError, isError := obj.(error); isError {
		message = recoveredError.Error()
	} else {
		message = fmt.Sprintf("%+v", obj)
	}
	return ErrorDocument(ErrRemote{
		Status:   http.StatusInternalServerError,
		Message:  "Internal server error",
		Messages: []string{message},
	}, resourceURL)
}

// ToError converts an error document received with an HTTP status
// back to a Go error.  Errors of known types come back as that type;
// anything else is an ErrRemote.
func (d Document) ToError(status int) error {
	remote := ErrRemote{Status: status}
	e, ok := d["@error"].(map[string]interface{})
	if !ok {
		remote.Message = http.StatusText(status)
		return remote
	}
	remote.Message, _ = e["@message"].(string)
	if messages, ok := e["@messages"].([]interface{}); ok {
		for _, m := range messages {
			if s, ok := m.(string); ok {
				remote.Messages = append(remote.Messages, s)
			}
		}
	}
	code, _ := e["@code"].(string)
	t, known := errorTypes[code]
	if !known {
		return remote
	}
	params, _ := e["@params"].(map[string]interface{})
	out := reflect.New(t)
	if err := decodeMap(params, out.Interface()); err != nil {
		return remote
	}
	if err, ok := out.Elem().Interface().(error); ok {
		return err
	}
	return remote
}
