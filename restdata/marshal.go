// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/ioutil"
	"math"
	"mime"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/ugorji/go/codec"
)

// jsonHandle returns the codec settings shared by everything that
// reads or writes documents.  Nested objects decode as string-keyed
// maps, and maps encode with sorted keys so output is stable.
func jsonHandle() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.MapType = reflect.TypeOf(map[string]interface{}(nil))
	h.Canonical = true
	return h
}

// IsJSONMediaType decides whether a media type, without parameters,
// is some flavor of JSON.
func IsJSONMediaType(mediaType string) bool {
	switch mediaType {
	case "text/json", JSONMediaType, MasonMediaType:
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}

// Decode reads a JSON object from a reader, such as an HTTP request
// or response.  If schema is not nil the object is validated
// against it.
func Decode(contentType string, r io.Reader, schema *Schema) (Document, error) {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5
		contentType = "application/octet-stream"
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !IsJSONMediaType(mediaType) {
		return nil, ErrUnsupportedMediaType{Type: contentType}
	}

	body, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]interface{}
	decoder := codec.NewDecoderBytes(body, jsonHandle())
	if err = decoder.Decode(&doc); err != nil {
		return nil, ErrBadRequest{Title: invalidDocumentTitle, Detail: err.Error()}
	}
	if doc == nil {
		return nil, ErrBadRequest{Title: invalidDocumentTitle, Detail: "Request body must be a JSON object"}
	}

	if schema != nil {
		if err = schema.Validate(body); err != nil {
			return nil, err
		}
	}
	return Document(doc), nil
}

// Encode writes a document as indented JSON.
func Encode(w io.Writer, v interface{}) error {
	var out []byte
	encoder := codec.NewEncoderBytes(&out, jsonHandle())
	if err := encoder.Encode(v); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, out, "", "    "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// exactInt refuses to put a number into an int field unless it is a
// whole number the int can hold.  JSON "1e30" is an integer to the
// schema validator but would otherwise wrap around.
func exactInt(from, to reflect.Kind, data interface{}) (interface{}, error) {
	if to != reflect.Int {
		return data, nil
	}
	switch n := data.(type) {
	case float64:
		if n != math.Trunc(n) || n < math.MinInt || n >= math.MaxInt {
			return nil, errors.New(strconv.FormatFloat(n, 'g', -1, 64) + " is not a valid integer")
		}
		return int(n), nil
	case float32:
		return exactInt(from, to, float64(n))
	case uint64:
		if n > math.MaxInt {
			return nil, errors.New(strconv.FormatUint(n, 10) + " is not a valid integer")
		}
	}
	return data, nil
}

// decodeMap fills a tagged structure from a decoded JSON object.
// Numbers may arrive as any Go numeric type.
func decodeMap(in map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncKind(exactInt),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(in)
}
