// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package backend_test

import (
	"flag"
	"testing"

	"github.com/diffeo/go-workoutlog/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ flag.Value = &backend.Backend{}

func TestSet(t *testing.T) {
	tests := []struct {
		Param          string
		Implementation string
		Address        string
		String         string
	}{
		{"memory", "memory", "", "memory"},
		{"sqlite:/tmp/log.db", "sqlite", "/tmp/log.db", "sqlite:/tmp/log.db"},
		{"postgres://user@localhost/log", "postgres", "//user@localhost/log", "postgres://user@localhost/log"},
		{"http://localhost:5000/api/", "http", "//localhost:5000/api/", "http://localhost:5000/api/"},
	}
	for _, test := range tests {
		t.Run(test.Param, func(t *testing.T) {
			var b backend.Backend
			require.NoError(t, b.Set(test.Param))
			assert.Equal(t, test.Implementation, b.Implementation)
			assert.Equal(t, test.Address, b.Address)
			assert.Equal(t, test.String, b.String())
		})
	}
}

func TestSetErrors(t *testing.T) {
	var b backend.Backend
	assert.Error(t, b.Set(""))
	assert.Error(t, b.Set("mongodb:localhost"))
}

func TestMemory(t *testing.T) {
	b := backend.Backend{Implementation: "memory"}
	store, err := b.Store()
	require.NoError(t, err)
	assert.NoError(t, backend.Upgrade(store))
	workouts, err := store.Workouts()
	assert.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestSQLite(t *testing.T) {
	b := backend.Backend{Implementation: "sqlite", Address: ":memory:"}
	store, err := b.Store()
	require.NoError(t, err)
	require.NoError(t, backend.Upgrade(store))
	exercises, err := store.Exercises()
	assert.NoError(t, err)
	assert.Empty(t, exercises)
	assert.NoError(t, backend.Drop(store))
}
