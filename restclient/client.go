// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides a workoutlog.Store that talks to the
// matching HTTP REST server in the "restserver" package.
//
// The server in github.com/diffeo/go-workoutlog/cmd/workoutlogd can
// run a compatible REST server.  Call New() with the URL of the API
// root of that service; for instance,
//
//     store, err := restclient.New("http://localhost:5000/api/")
//
// The client only knows the API root.  Every other URL comes from
// the URI templates and controls in the documents the server
// returns.
package restclient

import (
	"net/http"
	"net/url"

	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/diffeo/go-workoutlog/workoutlog"
)

// New creates a new workoutlog.Store that speaks to an external REST
// server.
func New(apiURL string) (workoutlog.Store, error) {
	return NewWithClient(apiURL, nil)
}

// NewWithClient creates a new workoutlog.Store that speaks to an
// external REST server using a specific HTTP client.  If client is
// nil, http.DefaultClient is used.
func NewWithClient(apiURL string, client *http.Client) (workoutlog.Store, error) {
	var (
		err error
		u   *url.URL
		s   *restStore
	)
	u, err = url.Parse(apiURL)
	if err == nil {
		s = &restStore{
			resource: resource{URL: u, Client: client},
		}
		err = s.Refresh()
	}

	if err != nil {
		return nil, err
	}
	return s, nil
}

type restStore struct {
	resource
	Representation restdata.Document
}

// Refresh reloads the root document, which holds the URL templates
// for everything else.
func (s *restStore) Refresh() error {
	doc, _, err := s.Do("GET", s.URL, nil)
	if err == nil {
		s.Representation = doc
	}
	return err
}

// template finds the href of a root document control.
func (s *restStore) template(rel string) (string, error) {
	control, ok := s.Representation.Control(restdata.Relation(rel))
	if !ok {
		return "", restdata.ErrRemote{
			Status:  http.StatusNotFound,
			Message: "API root has no " + restdata.Relation(rel) + " control",
		}
	}
	return control.Href, nil
}

func (s *restStore) get(rel string, vars map[string]interface{}) (restdata.Document, error) {
	tmpl, err := s.template(rel)
	if err != nil {
		return nil, err
	}
	return s.GetFrom(tmpl, vars)
}

// getItems retrieves a collection and returns its items.
func (s *restStore) getItems(rel string, vars map[string]interface{}) ([]restdata.Document, error) {
	doc, err := s.get(rel, vars)
	if err != nil {
		return nil, err
	}
	return doc.Items(), nil
}

// post creates an object and returns its representation as stored.
func (s *restStore) post(rel string, vars map[string]interface{}, in restdata.Document) (restdata.Document, error) {
	location, err := s.add(rel, vars, in)
	if err != nil {
		return nil, err
	}
	out, _, err := s.Do("GET", location, nil)
	return out, err
}

// add creates an object and returns its location.
func (s *restStore) add(rel string, vars map[string]interface{}, in restdata.Document) (*url.URL, error) {
	tmpl, err := s.template(rel)
	if err != nil {
		return nil, err
	}
	return s.PostTo(tmpl, vars, in)
}

func (s *restStore) edit(rel string, vars map[string]interface{}, changes restdata.Document) error {
	tmpl, err := s.template(rel)
	if err != nil {
		return err
	}
	return s.EditAt(tmpl, vars, changes)
}

func (s *restStore) delete(rel string, vars map[string]interface{}) error {
	tmpl, err := s.template(rel)
	if err != nil {
		return err
	}
	return s.DeleteAt(tmpl, vars)
}
