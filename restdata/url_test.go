// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameEncoding(t *testing.T) {
	tests := []struct {
		Name    string
		Segment string
	}{
		{"Squat", "Squat"},
		{"Back Squat", "Back Squat"},
		{"Überkopf 50%", "Überkopf 50%"},
		{"", "-"},
		{"-", "-LQ"},
		{"-Dip", "-LURpcA"},
		{"Bench/Dip", "-QmVuY2gvRGlw"},
	}
	for _, test := range tests {
		t.Run(test.Segment, func(t *testing.T) {
			assert.Equal(t, test.Segment, MaybeEncodeName(test.Name))
			name, err := MaybeDecodeName(test.Segment)
			if assert.NoError(t, err) {
				assert.Equal(t, test.Name, name)
			}
		})
	}
}

func TestNameDecodingBadBase64(t *testing.T) {
	_, err := MaybeDecodeName("-!!")
	assert.Error(t, err)
}
