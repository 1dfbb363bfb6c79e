// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqlite_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/diffeo/go-workoutlog/sqlite"
	"github.com/diffeo/go-workoutlog/sqlstore"
	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/diffeo/go-workoutlog/workoutlog/workoutlogtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic tests against a fresh in-memory database.
type Suite struct {
	workoutlogtest.Suite
	sql *sqlstore.Store
}

func (s *Suite) SetupTest() {
	store, err := sqlite.New(":memory:")
	s.Require().NoError(err)
	s.Require().NoError(store.Upgrade())
	s.sql = store
	s.Store = store
}

func (s *Suite) TearDownTest() {
	s.NoError(s.sql.Close())
}

func TestWorkoutLog(t *testing.T) {
	suite.Run(t, &Suite{})
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "log.db?_pragma=foreign_keys(1)&_time_format=sqlite", sqlite.DSN("log.db"))
	assert.Equal(t, "log.db?mode=rwc&_pragma=foreign_keys(1)&_time_format=sqlite", sqlite.DSN("log.db?mode=rwc"))
}

// TestPersistence checks that data survives reopening a database
// file, and that the schema can be dropped.
func TestPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workoutlog.db")

	store, err := sqlite.New(path)
	require.NoError(t, err)
	require.NoError(t, store.Upgrade())
	require.NoError(t, store.AddExercise(workoutlog.Exercise{Name: "Squat"}))
	require.NoError(t, store.Close())

	store, err = sqlite.New(path)
	require.NoError(t, err)
	// Upgrading an up-to-date database does nothing
	require.NoError(t, store.Upgrade())
	exercises, err := store.Exercises()
	if assert.NoError(t, err) {
		assert.Equal(t, []workoutlog.Exercise{{Name: "Squat"}}, exercises)
	}

	require.NoError(t, store.Drop())
	_, err = store.Exercises()
	assert.Error(t, err)
	assert.NoError(t, store.Close())
}

// TestConcurrentSets checks that concurrent writers each get their own
// set order.
func TestConcurrentSets(t *testing.T) {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Upgrade())

	w, err := store.AddWorkout(workoutlog.Workout{})
	require.NoError(t, err)
	require.NoError(t, store.AddWorkoutExercise(w.ID, workoutlog.Exercise{Name: "Squat"}))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.AddSet(workoutlog.Set{WorkoutID: w.ID, ExerciseName: "Squat"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	sets, err := store.Sets(w.ID, "Squat")
	if assert.NoError(t, err) && assert.Len(t, sets, 10) {
		for i, set := range sets {
			assert.Equal(t, i+1, set.OrderInWorkout)
		}
	}
}
