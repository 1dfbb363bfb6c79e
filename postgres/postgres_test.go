// Copyright 2016-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres_test

import (
	"os"
	"testing"

	"github.com/diffeo/go-workoutlog/postgres"
	"github.com/diffeo/go-workoutlog/sqlstore"
	"github.com/diffeo/go-workoutlog/workoutlog/workoutlogtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic tests against a PostgreSQL store, starting
// every test from an empty schema.
type Suite struct {
	workoutlogtest.Suite
	sql *sqlstore.Store
}

func (s *Suite) SetupSuite() {
	store, err := postgres.New("")
	s.Require().NoError(err)
	s.sql = store
	s.Store = store
}

func (s *Suite) SetupTest() {
	// A previous failed run may have left tables behind
	_ = s.sql.Drop()
	s.Require().NoError(s.sql.Upgrade())
}

func (s *Suite) TearDownTest() {
	s.NoError(s.sql.Drop())
}

func (s *Suite) TearDownSuite() {
	s.NoError(s.sql.Close())
}

// TestWorkoutLog is the top-level entry point to run the store tests.
//
// This creates a PostgreSQL backend using an empty string as the
// connection string.  This means that, when you run "go test", you
// must set environment variables as described in
// http://www.postgresql.org/docs/current/static/libpq-envars.html;
// the test is skipped if PGHOST is unset.
func TestWorkoutLog(t *testing.T) {
	if os.Getenv("PGHOST") == "" {
		t.Skip("PGHOST not set")
	}
	suite.Run(t, &Suite{})
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		In, Out string
	}{
		{"", "default_transaction_isolation='repeatable read'"},
		{
			"host=localhost dbname=workoutlog",
			"host=localhost dbname=workoutlog default_transaction_isolation='repeatable read'",
		},
		{
			"postgres://localhost/workoutlog",
			"postgres://localhost/workoutlog?default_transaction_isolation=repeatable%20read",
		},
		{
			"//localhost/workoutlog",
			"postgres://localhost/workoutlog?default_transaction_isolation=repeatable%20read",
		},
		{
			"postgres://localhost/workoutlog?sslmode=disable",
			"postgres://localhost/workoutlog?sslmode=disable&default_transaction_isolation=repeatable%20read",
		},
	}
	for _, test := range tests {
		assert.Equal(t, test.Out, postgres.Normalize(test.In), test.In)
	}
}
