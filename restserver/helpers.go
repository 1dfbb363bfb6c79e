// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains various HTTP-related helpers, mostly around
// turning route names back into URLs for hypermedia controls.

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/gorilla/mux"
)

type urlBuilder struct {
	Router *mux.Router
	Params []string
	Error  error
}

// nameVars are the route variables holding free-text names.  Only
// these are encoded; numeric variables such as a negative order go
// into the URL as plain digits.
var nameVars = map[string]bool{
	"exercise_name": true,
	"exercise_type": true,
}

// buildURLs starts building URLs from a set of name/value route
// variable pairs.  Name values are encoded as path segments.
func buildURLs(router *mux.Router, params ...string) *urlBuilder {
	for i := 1; i < len(params); i += 2 {
		if nameVars[params[i-1]] {
			params[i] = restdata.MaybeEncodeName(params[i])
		}
	}
	return &urlBuilder{Router: router, Params: params}
}

// With returns a new builder with additional route variables.
func (u *urlBuilder) With(params ...string) *urlBuilder {
	all := append(append([]string{}, u.Params...), buildURLs(u.Router, params...).Params...)
	return &urlBuilder{Router: u.Router, Params: all, Error: u.Error}
}

func (u *urlBuilder) Route(route string) *mux.Route {
	if u.Error != nil {
		return nil
	}
	r := u.Router.Get(route)
	if r == nil {
		u.Error = fmt.Errorf("No such route %q", route)
	}
	return r
}

// Href returns the URL of a route, or an empty string if building it
// fails; check u.Error afterwards.
func (u *urlBuilder) Href(route string) string {
	r := u.Route(route)
	if u.Error != nil {
		return ""
	}
	url, err := r.URL(u.Params...)
	if err != nil {
		u.Error = err
		return ""
	}
	return url.String()
}

func (u *urlBuilder) URL(out *string, route string) *urlBuilder {
	href := u.Href(route)
	if u.Error == nil {
		*out = href
	}
	return u
}

// Control adds a control pointing at a route to a document.
func (u *urlBuilder) Control(doc restdata.Document, name, route string, control restdata.Control) *urlBuilder {
	control.Href = u.Href(route)
	if u.Error == nil {
		doc.AddControl(name, control)
	}
	return u
}

// routeVariable matches a route variable with an optional pattern,
// "{name}" or "{name:pattern}".
var routeVariable = regexp.MustCompile(`\{([A-Za-z_]+)(:[^}]*)?\}`)

// Template adds a control whose href is the RFC 6570 URI template of
// a route.
func (u *urlBuilder) Template(doc restdata.Document, name, route string, control restdata.Control) *urlBuilder {
	r := u.Route(route)
	if u.Error != nil {
		return u
	}
	tpl, err := r.GetPathTemplate()
	if err != nil {
		u.Error = err
		return u
	}
	control.Href = routeVariable.ReplaceAllString(tpl, "{$1}")
	control.IsHrefTemplate = true
	doc.AddControl(name, control)
	return u
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
