// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides generic REST client code.

import (
	"bytes"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/jtacoma/uritemplates"
)

// resource is any object that has a URL, against which other URLs
// are resolved.
type resource struct {
	URL    *url.URL
	Client *http.Client
}

// Template expands a URI template and resolves the result relative to
// the resource.  String values are names and are encoded as path
// segments; int values are identifiers.
func (r *resource) Template(template string, vars map[string]interface{}) (*url.URL, error) {
	// Build the template object
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return nil, err
	}

	// Encode all of the values if required
	values := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		switch vv := v.(type) {
		case string:
			values[k] = restdata.MaybeEncodeName(vv)
		case int:
			values[k] = strconv.Itoa(vv)
		default:
			values[k] = v
		}
	}

	// Expand the template to produce a string
	expanded, err := tmpl.Expand(values)
	if err != nil {
		return nil, err
	}

	// Return the parsed URL of the result, relative to ourselves
	return r.URL.Parse(expanded)
}

// Do performs some HTTP action.  If in is non-nil, it is serialized
// and sent as the body of, for instance, a POST request.  The
// response document, if any, is returned, along with the Location:
// of a newly created resource.
func (r *resource) Do(method string, u *url.URL, in restdata.Document) (out restdata.Document, location *url.URL, err error) {
	// Set up the body as serialized JSON, if there is one
	var body io.Reader
	if in != nil {
		reader, writer := io.Pipe()
		finished := make(chan error)
		go func() {
			err := restdata.Encode(writer, in)
			err = firstError(err, writer.Close())
			finished <- err
		}()
		defer func() {
			err = firstError(err, <-finished)
		}()
		body = reader
	}

	// Create the request and set headers
	req, err := http.NewRequest(method, u.String(), body)
	if err != nil {
		if in != nil {
			_ = body.(*io.PipeReader).Close()
		}
		return nil, nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", restdata.JSONMediaType)
	}
	req.Header.Set("Accept", restdata.MasonMediaType)

	// Actually do the request
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}

	// If the response included a body, clean up afterwards
	if resp.Body != nil {
		defer func() {
			err = firstError(err, resp.Body.Close())
		}()
	}

	// Check the response code
	if err = checkHTTPStatus(resp); err != nil {
		return nil, nil, err
	}

	if loc := resp.Header.Get("Location"); loc != "" {
		location, err = u.Parse(loc)
		if err != nil {
			return nil, nil, err
		}
	}

	// If there is a body, decode it
	if resp.StatusCode == http.StatusOK && resp.Body != nil {
		out, err = restdata.Decode(resp.Header.Get("Content-Type"), resp.Body, nil)
	}
	return out, location, err
}

// GetFrom retrieves a document from a templated URL.
func (r *resource) GetFrom(template string, vars map[string]interface{}) (restdata.Document, error) {
	u, err := r.Template(template, vars)
	if err != nil {
		return nil, err
	}
	out, _, err := r.Do("GET", u, nil)
	return out, err
}

// PostTo submits a document to a templated URL, and returns the
// location of the created resource.
func (r *resource) PostTo(template string, vars map[string]interface{}, in restdata.Document) (*url.URL, error) {
	u, err := r.Template(template, vars)
	if err != nil {
		return nil, err
	}
	_, location, err := r.Do("POST", u, in)
	if err == nil && location == nil {
		err = restdata.ErrRemote{
			Status:  http.StatusCreated,
			Message: "Created resource has no Location",
		}
	}
	return location, err
}

// DeleteAt deletes the resource at a templated URL.
func (r *resource) DeleteAt(template string, vars map[string]interface{}) error {
	u, err := r.Template(template, vars)
	if err != nil {
		return err
	}
	_, _, err = r.Do("DELETE", u, nil)
	return err
}

// EditAt changes some fields of the resource at a templated URL.  A
// PUT carries the whole object, so this retrieves the current fields,
// overlays the changed ones, and sends the result to the document's
// edit control.
func (r *resource) EditAt(template string, vars map[string]interface{}, changes restdata.Document) error {
	u, err := r.Template(template, vars)
	if err != nil {
		return err
	}
	doc, _, err := r.Do("GET", u, nil)
	if err != nil {
		return err
	}
	edit, ok := doc.Control("edit")
	if !ok {
		return restdata.ErrRemote{
			Status:  http.StatusMethodNotAllowed,
			Message: "Resource cannot be edited",
		}
	}
	target, err := u.Parse(edit.Href)
	if err != nil {
		return err
	}

	body := restdata.NewDocument()
	for k, v := range doc {
		if !strings.HasPrefix(k, "@") {
			body[k] = v
		}
	}
	for k, v := range changes {
		body[k] = v
	}
	_, _, err = r.Do("PUT", target, body)
	return err
}

// checkHTTPStatus examines an HTTP response and returns an error if
// it is not successful.
func checkHTTPStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Always collect the entire body; we will need it as a fallback
	// and can only parse it once.
	var body []byte
	var err error
	if resp.Body != nil {
		body, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return err
		}
	}

	// Take a shot at decoding it as a better error
	contentType := resp.Header.Get("Content-Type")
	doc, err := restdata.Decode(contentType, bytes.NewReader(body), nil)
	if err == nil {
		// Given that we decoded that successfully, return the
		// server-provided error
		return doc.ToError(resp.StatusCode)
	}

	remote := restdata.ErrRemote{
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		remote.Messages = []string{text}
	}
	return remote
}

func firstError(e1, e2 error) error {
	if e1 != nil {
		return e1
	}
	return e2
}
