// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"encoding/base64"
	"strings"
)

// nameMarker starts every encoded exercise name.  Plain names may
// not start with it.
const nameMarker = "-"

// MaybeEncodeName turns an exercise name into a URL path segment.
// Names that are empty, start with "-", or contain "/" become "-"
// followed by their unpadded URL-safe base64 form; anything else is
// used as is and percent-escaped by the router.
func MaybeEncodeName(name string) string {
	if name == "" || strings.HasPrefix(name, nameMarker) || strings.Contains(name, "/") {
		return nameMarker + base64.RawURLEncoding.EncodeToString([]byte(name))
	}
	return name
}

// MaybeDecodeName reverses MaybeEncodeName.  A segment starting with
// "-" must carry valid base64 after it.
func MaybeDecodeName(segment string) (string, error) {
	if !strings.HasPrefix(segment, nameMarker) {
		return segment, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(segment[len(nameMarker):])
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
