// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains a REST skeleton framework.
//
// The bulk of this is dealing with HTTP content type negotiation, and
// providing a standard way to deal with input and output values.
// This could probably be made more generic: the major variables are
// the type canonicalization map, the context builder, and specific
// codecs.  Every JSON variant we accept produces the same Mason
// document; only the Content-Type: header differs.
//
// Another more generic solution out there is
// https://github.com/jchannon/negotiator.  This only deals with
// output type negotiation, forces all JSON-ish output to report
// itself as "application/json", and doesn't deal well with other HTTP
// status codes.

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"runtime"
	"strconv"
	"strings"

	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/sirupsen/logrus"
)

var typeMap = map[string]string{
	"text/json":             "text/json",
	restdata.JSONMediaType:  restdata.JSONMediaType,
	restdata.MasonMediaType: restdata.MasonMediaType,
}

// errBadAccept is returned from negotiateResponse() if the Accept:
// header is malformed (and no more specific error applies).
var errBadAccept = errors.New("Invalid Accept: header")

// errNotAcceptable is returned from negotiateResponse() if the Accept:
// header does not mention any media types we can actually return.
type errNotAcceptable struct{}

func (e errNotAcceptable) Error() string {
	return "No acceptable representation for response"
}

func (e errNotAcceptable) HTTPStatus() int {
	return http.StatusNotAcceptable
}

// errMethodNotAllowed is used within the resourceHandler implementation
// to flag an error if a particular HTTP method is not allowed.  This
// corresponds exactly to the 405 Method Not Allowed HTTP status code.
type errMethodNotAllowed struct {
	Method string
}

func (e errMethodNotAllowed) Error() string {
	return fmt.Sprintf("Method %v not allowed", e.Method)
}

func (e errMethodNotAllowed) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

// responseCreated is returned as a value response from handler
// functions that want to indicate that a new resource was created.
// The response has no body.
type responseCreated struct {
	// Location holds the canonical URL to the newly created resource.
	Location string
}

type resourceHandler struct {
	// Schema, if non-nil, validates the bodies of PUT and POST
	// requests.
	Schema *restdata.Schema

	// Context reads an HTTP request and produces a context object.
	Context func(req *http.Request) (*context, error)

	// Log receives recovered panics.
	Log logrus.FieldLogger

	// Get, if non-nil, returns a representation of the object.
	Get func(*context) (interface{}, error)

	// Put, if non-nil, updates the object from the decoded
	// request body.  A nil return value produces 204 No Content.
	Put func(*context, restdata.Document) (interface{}, error)

	// Post, if non-nil, takes some arbitrary action, usually
	// creating a new object and returning responseCreated.
	Post func(*context, restdata.Document) (interface{}, error)

	// Delete, if non-nil, deletes the object.  The return can be
	// any useful return value.
	Delete func(*context) (interface{}, error)
}

// method returns the handler functions for an HTTP method.  Exactly
// one of the results is non-nil if the method is allowed.
func (h *resourceHandler) method(m string) (
	get func(*context) (interface{}, error),
	body func(*context, restdata.Document) (interface{}, error),
) {
	switch m {
	case "GET", "HEAD":
		get = h.Get
	case "PUT":
		body = h.Put
	case "POST":
		body = h.Post
	case "DELETE":
		get = h.Delete
	}
	return
}

func (h *resourceHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	var (
		ctx          *context
		in           restdata.Document
		out          interface{}
		err          error
		status       int
		responseType string
	)

	// Recover from panics by sending an HTTP error.
	defer func() {
		if recovered := recover(); recovered != nil {
			var stack [4096]byte
			n := runtime.Stack(stack[:], false)
			if h.Log != nil {
				h.Log.WithFields(logrus.Fields{
					"panic": recovered,
					"path":  req.URL.Path,
					"stack": string(stack[:n]),
				}).Error("panic in request handler")
			}
			resp.Header().Set("Content-Type", restdata.MasonMediaType)
			resp.WriteHeader(http.StatusInternalServerError)
			_ = restdata.Encode(resp, restdata.PanicDocument(recovered, req.URL.Path))
		}
	}()

	// Start by trying to come up with a response type, even before
	// trying to parse the input.  This determines what format an
	// error message could be sent back as.
	responseType, err = negotiateResponse(req)
	if err != nil {
		// Gotta pick something
		responseType = restdata.MasonMediaType
		if _, hasStatus := err.(restdata.ErrorStatus); !hasStatus {
			err = restdata.ErrBadRequest{Title: "Bad request", Detail: err.Error()}
		}
	}

	get, body := h.method(req.Method)
	if err == nil && get == nil && body == nil {
		err = errMethodNotAllowed{Method: req.Method}
	}

	// Get bits from URL parameters
	if err == nil {
		ctx, err = h.Context(req)
	}

	// Read the JSON body, if it's there
	if err == nil && body != nil {
		in, err = restdata.Decode(req.Header.Get("Content-Type"), req.Body, h.Schema)
	}

	// Actually call the handler method
	if err == nil {
		if get != nil {
			out, err = get(ctx)
		} else {
			out, err = body(ctx, in)
		}
	}

	// Fix up the final result based on what we know.
	if err != nil {
		status, _, _ = restdata.Status(err)
		out = restdata.ErrorDocument(err, req.URL.Path)
	} else if out == nil {
		status = http.StatusNoContent
	} else if created, isCreated := out.(responseCreated); isCreated {
		status = http.StatusCreated
		resp.Header().Set("Location", created.Location)
		out = nil
	} else {
		status = http.StatusOK
		if req.Method == "HEAD" {
			out = nil
		}
	}

	// Actually send the response.  If the write fails we have
	// already sent a status line, so there is nothing better to
	// do than drop it.
	if out != nil {
		resp.Header().Set("Content-Type", responseType)
	}
	resp.WriteHeader(status)
	if out != nil {
		_ = restdata.Encode(resp, out)
	}
}

// negotiateResponse returns a supported MIME type for the response
// body, following the path laid out in RFC 7231 section 5.3.
func negotiateResponse(req *http.Request) (string, error) {
	accept := req.Header.Get("Accept")
	if accept == "" {
		accept = "*/*"
	}
	bestType := ""
	bestQ := 0.0
	mediaRanges := strings.Split(accept, ",")
	for _, mediaRange := range mediaRanges {
		mediaRange = strings.TrimSpace(mediaRange)
		mediaType, params, err := mime.ParseMediaType(mediaRange)
		if err != nil {
			return "", err
		}

		// What is the "q" ("quality") parameter for this type?
		// If it is less than the best known so far, skip it
		q := 1.0
		if qStr, haveQ := params["q"]; haveQ {
			q, err = strconv.ParseFloat(qStr, 64)
			if err != nil {
				return "", err
			}
			if q < 0.0 || q > 1.0 {
				return "", errBadAccept
			}
		}
		if q < bestQ {
			continue
		}

		// This is acceptable if it's listed in the type
		// map; or it's one of a couple of specific wildcards.
		// Also need to handle wildcard precedence.  So:
		if mediaType == "*/*" {
			// Doesn't override anything.
			if q > bestQ {
				bestType = mediaType
				bestQ = q
			}
		} else if mediaType == "text/*" || mediaType == "application/*" {
			// Only overrides "*/*".
			if q > bestQ || bestType == "*/*" {
				bestType = mediaType
				bestQ = q
			}
		} else if _, knownType := typeMap[mediaType]; knownType {
			// Overrides any wildcard.  We want the first one
			// at a given q to win.
			if q > bestQ || bestType == "*/*" || bestType == "text/*" || bestType == "application/*" {
				bestType = mediaType
				bestQ = q
			}
		}
		// Otherwise we don't recognize this type at all, so
		// just drop it.
		//
		// The RFC endorses honoring type parameters as being
		// "more specific" but we don't really deal with that.
	}
	// If this failed to win, return an error
	if bestQ == 0.0 {
		return "", errNotAcceptable{}
	}
	switch bestType {
	case "*/*":
		return restdata.MasonMediaType, nil
	case "application/*":
		return restdata.MasonMediaType, nil
	case "text/*":
		return "text/json", nil
	default:
		return bestType, nil
	}
}
