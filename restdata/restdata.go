// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines common data structures shared between the
// restserver and restclient packages.  Documents are passed across
// the wire as the application/vnd.mason+json MIME type.
//
// API Usage
//
// HTTP GET the root document at /api/.  This is a Mason document
// whose "@controls" link to the other resources; follow these
// links, possibly filling in template values, to get to other
// resources.  Collection documents carry an "items" list, each item
// with its own "@controls".
//
// Some controls are RFC 6570 URI templates, flagged with
// "isHrefTemplate": true.  For instance, the root document contains
//
//	{
//	    "@controls": {
//	        "workoutlog:workout": {
//	            "href": "/api/workouts/{workout_id}/",
//	            "isHrefTemplate": true
//	        }
//	    }
//	}
//
// While the URL structure is predictable and formulaic, it is not
// actually part of the API contract.
//
// Encoding Considerations
//
// A name that appears in a URL path segment is used as-is, except
// that names that are empty, begin with a hyphen, or contain a slash
// are escaped by encoding their byte representations using the
// base64 URL-safe encoding with no padding, and prepending a hyphen
// to the name.  The URL path
//
//	/api/exercises/-QmVuY2gvRGlw/max-data/
//
// refers to the max data of the exercise named "Bench/Dip".
//
// Dates and times are strings "2021-08-12 14:15", dates alone are
// "2021-08-12", and durations are "H:MM" strings like "1:20".
//
// HTTP Considerations
//
// Collections support GET and usually POST.  A successful POST
// returns 201 Created with a Location: header naming the new
// resource and no body.  Items support GET, PUT, and DELETE.  When a
// representation is PUT, any field present is updated; absent fields
// remain unchanged.  PUT and DELETE return 204 No Content.
//
// Errors are returned as Mason documents with an "@error" member,
// whose "@code" names the error type and "@params" carries its
// fields, so that restclient can rebuild the original error.
package restdata

// MasonMediaType is the MIME type of all documents this API returns.
const MasonMediaType = "application/vnd.mason+json"

// JSONMediaType is the generic JSON MIME type.
const JSONMediaType = "application/json"

// Namespace is the prefix of the custom link relations.
const Namespace = "workoutlog"

// LinkRelationsPath is the URL path the link relation namespace
// points at.
const LinkRelationsPath = "/workoutlog/link-relations/"

// Profile names.  The profile URL of each is "/profiles/{name}/".
const (
	WorkoutProfile           = "workout"
	ExerciseProfile          = "exercise"
	SetProfile               = "set"
	MaxDataProfile           = "max-data"
	WeeklyProgrammingProfile = "weekly-programming"
	ErrorProfile             = "error"
)

// ProfileURL returns the URL path of a named profile.
func ProfileURL(profile string) string {
	return "/profiles/" + profile + "/"
}

// Relation returns the namespaced form of a link relation, for
// instance "workoutlog:add-set".
func Relation(name string) string {
	return Namespace + ":" + name
}

// Control is a single Mason hypermedia control.
type Control struct {
	Href           string                 `json:"href" mapstructure:"href"`
	Method         string                 `json:"method,omitempty" mapstructure:"method"`
	Encoding       string                 `json:"encoding,omitempty" mapstructure:"encoding"`
	Title          string                 `json:"title,omitempty" mapstructure:"title"`
	Schema         map[string]interface{} `json:"schema,omitempty" mapstructure:"schema"`
	IsHrefTemplate bool                   `json:"isHrefTemplate,omitempty" mapstructure:"isHrefTemplate"`
}

// Document is a Mason document, or one item of a collection.
type Document map[string]interface{}

// NewDocument creates an empty document.
func NewDocument() Document {
	return Document{}
}

// AddNamespace declares a link relation namespace.
func (d Document) AddNamespace(prefix, uri string) {
	namespaces, ok := d["@namespaces"].(map[string]interface{})
	if !ok {
		namespaces = map[string]interface{}{}
		d["@namespaces"] = namespaces
	}
	namespaces[prefix] = map[string]interface{}{"name": uri}
}

// AddControl adds a control to the document.
func (d Document) AddControl(name string, control Control) {
	controls, ok := d["@controls"].(map[string]interface{})
	if !ok {
		controls = map[string]interface{}{}
		d["@controls"] = controls
	}
	controls[name] = control
}

// AddItem appends a document to the "items" list.  A collection
// document with no items still has an empty list.
func (d Document) AddItem(item Document) {
	items, _ := d["items"].([]interface{})
	d["items"] = append(items, item)
}

// Control finds a control in a document, including one decoded off
// the wire.
func (d Document) Control(name string) (Control, bool) {
	var control Control
	controls, ok := d["@controls"].(map[string]interface{})
	if !ok {
		return control, false
	}
	switch c := controls[name].(type) {
	case Control:
		return c, true
	case map[string]interface{}:
		if err := decodeMap(c, &control); err != nil {
			return control, false
		}
		return control, true
	}
	return control, false
}

// Items returns the items of a collection document.
func (d Document) Items() []Document {
	raw, _ := d["items"].([]interface{})
	items := make([]Document, 0, len(raw))
	for _, item := range raw {
		switch i := item.(type) {
		case Document:
			items = append(items, i)
		case map[string]interface{}:
			items = append(items, Document(i))
		}
	}
	return items
}

// SetField sets a field if value is a non-nil pointer, storing what
// it points at.
func (d Document) SetField(name string, value interface{}) {
	switch v := value.(type) {
	case *int:
		if v != nil {
			d[name] = *v
		}
	case *float64:
		if v != nil {
			d[name] = *v
		}
	case *string:
		if v != nil {
			d[name] = *v
		}
	default:
		if v != nil {
			d[name] = v
		}
	}
}
