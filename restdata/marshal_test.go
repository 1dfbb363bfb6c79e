// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsJSONMediaType(t *testing.T) {
	for _, mt := range []string{"application/json", "text/json", MasonMediaType, "application/hal+json"} {
		assert.True(t, IsJSONMediaType(mt), mt)
	}
	for _, mt := range []string{"text/plain", "application/xml", "application/octet-stream", "text/html+json"} {
		assert.False(t, IsJSONMediaType(mt), mt)
	}
}

func TestDecode(t *testing.T) {
	doc, err := Decode("application/json; charset=utf-8",
		strings.NewReader(`{"date_time": "2021-8-12 14:15", "body_weight": 72, "nested": {"a": [1, "b"]}}`),
		WorkoutSchema)
	if assert.NoError(t, err) {
		assert.Equal(t, "2021-8-12 14:15", doc["date_time"])
		assert.IsType(t, map[string]interface{}{}, doc["nested"])
		var w Workout
		if assert.NoError(t, doc.Into(&w)) {
			if assert.NotNil(t, w.BodyWeight) {
				assert.Equal(t, 72.0, *w.BodyWeight)
			}
			assert.Nil(t, w.Duration)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("", strings.NewReader(`{}`), nil)
	assert.Equal(t, ErrUnsupportedMediaType{Type: "application/octet-stream"}, err)

	_, err = Decode("text/plain", strings.NewReader(`{}`), nil)
	assert.IsType(t, ErrUnsupportedMediaType{}, err)

	_, err = Decode("application/json", strings.NewReader(`{"date_time":`), nil)
	if assert.IsType(t, ErrBadRequest{}, err) {
		assert.Equal(t, invalidDocumentTitle, err.(ErrBadRequest).Title)
	}

	_, err = Decode("application/json", strings.NewReader(`null`), nil)
	assert.IsType(t, ErrBadRequest{}, err)

	// Missing required field
	_, err = Decode("application/json", strings.NewReader(`{"notes": "x"}`), WorkoutSchema)
	if assert.IsType(t, ErrBadRequest{}, err) {
		assert.Contains(t, err.Error(), "date_time")
	}

	// Wrong type
	_, err = Decode("application/json", strings.NewReader(`{"date_time": 17}`), WorkoutSchema)
	assert.IsType(t, ErrBadRequest{}, err)
}

func TestEncode(t *testing.T) {
	doc := NewDocument()
	doc["b"] = "two"
	doc["a"] = 1
	doc.AddControl("self", Control{Href: "/api/"})

	var buf bytes.Buffer
	if assert.NoError(t, Encode(&buf, doc)) {
		assert.Equal(t, "{\n"+
			"    \"@controls\": {\n"+
			"        \"self\": {\n"+
			"            \"href\": \"/api/\"\n"+
			"        }\n"+
			"    },\n"+
			"    \"a\": 1,\n"+
			"    \"b\": \"two\"\n"+
			"}\n", buf.String())
	}

	back, err := Decode(MasonMediaType, &buf, nil)
	if assert.NoError(t, err) {
		control, ok := back.Control("self")
		assert.True(t, ok)
		assert.Equal(t, Control{Href: "/api/"}, control)
		_, ok = back.Control("edit")
		assert.False(t, ok)
	}
}
