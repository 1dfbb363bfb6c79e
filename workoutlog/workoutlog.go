// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package workoutlog defines an abstract API to a workout log.
//
// A workout log records workouts, the exercises done in them, the
// individual sets of each exercise, a history of maximum lifts per
// exercise, and a week-by-week training program keyed by exercise
// type.  Applications get a Store from a specific implementation
// (memory, postgres, sqlite, restclient) and work entirely through
// this interface.
//
// Objects here are plain values.  Changing a value returned from a
// Store has no effect until it is passed back through one of the
// Store's Add or Update methods.
package workoutlog

// Store is the principal interface to a workout log.  Implementations
// of this interface provide a specific database backend, RPC system,
// or other way to reach the data.
type Store interface {
	WorkoutStore
	ExerciseStore
	SetStore
	MaxDataStore
	WeeklyProgrammingStore
}

// WorkoutStore holds the workout sessions.
type WorkoutStore interface {
	// Workouts returns every workout, in the order they were
	// created.
	Workouts() ([]Workout, error)

	// Workout retrieves a single workout by its identifier.  If
	// there is no such workout, returns ErrNoSuchWorkout.
	Workout(id int) (Workout, error)

	// WorkoutsByExercise returns every workout that includes the
	// named exercise.  Returns ErrNoSuchExercise if the exercise
	// does not exist.
	WorkoutsByExercise(exerciseName string) ([]Workout, error)

	// AddWorkout creates a new workout.  The ID field of the
	// parameter is ignored; the returned workout carries the
	// identifier the store assigned.  Returns ErrWorkoutExists if
	// another workout has the same DateTime.
	AddWorkout(workout Workout) (Workout, error)

	// UpdateWorkout changes the fields of a workout named in
	// update, leaving the others alone.
	UpdateWorkout(id int, update WorkoutUpdate) error

	// DeleteWorkout removes a workout and all of the sets done in
	// it.  Exercises are not deleted.
	DeleteWorkout(id int) error
}

// ExerciseStore holds exercises and their membership in workouts.
type ExerciseStore interface {
	// Exercises returns every exercise, in the order they were
	// created.
	Exercises() ([]Exercise, error)

	// Exercise retrieves a single exercise by name, or returns
	// ErrNoSuchExercise.
	Exercise(name string) (Exercise, error)

	// AddExercise creates a new exercise.  Returns
	// ErrExerciseExists if the name is already taken.
	AddExercise(exercise Exercise) error

	// UpdateExercise changes an exercise.  Renaming an exercise
	// keeps its sets, max data, and workout membership.
	UpdateExercise(name string, update ExerciseUpdate) error

	// DeleteExercise removes an exercise along with its sets and
	// max data.
	DeleteExercise(name string) error

	// WorkoutExercises returns the exercises attached to a
	// workout.
	WorkoutExercises(workoutID int) ([]Exercise, error)

	// WorkoutExercise retrieves an exercise through a workout.
	// Returns ErrExerciseNotInWorkout if the exercise exists but
	// is not part of the workout.
	WorkoutExercise(workoutID int, name string) (Exercise, error)

	// AddWorkoutExercise attaches an exercise to a workout.  If
	// no exercise with this name exists it is created first;
	// otherwise the existing exercise is attached and the
	// remaining fields of the parameter are ignored.  Returns
	// ErrExerciseInWorkout if it is already attached.
	AddWorkoutExercise(workoutID int, exercise Exercise) error

	// RemoveWorkoutExercise detaches an exercise from a workout,
	// deleting the sets of that exercise in that workout.  The
	// exercise itself remains.
	RemoveWorkoutExercise(workoutID int, name string) error
}

// SetStore holds the sets done for an exercise in a workout.
type SetStore interface {
	// Sets returns the sets of one exercise in one workout,
	// ordered by OrderInWorkout.
	Sets(workoutID int, exerciseName string) ([]Set, error)

	// Set retrieves a single set.
	Set(workoutID int, exerciseName string, order int) (Set, error)

	// AddSet creates a new set.  If set.OrderInWorkout is zero,
	// the smallest unused positive order is assigned.  Returns
	// the set as stored.
	AddSet(set Set) (Set, error)

	// UpdateSet changes the fields of a set named in update.
	UpdateSet(workoutID int, exerciseName string, order int, update SetUpdate) error

	// DeleteSet removes a single set.
	DeleteSet(workoutID int, exerciseName string, order int) error
}

// MaxDataStore holds the history of maximum lifts per exercise.
type MaxDataStore interface {
	// MaxData returns the max data entries of an exercise,
	// ordered by OrderForExercise.
	MaxData(exerciseName string) ([]MaxData, error)

	// MaxDataItem retrieves a single max data entry.
	MaxDataItem(exerciseName string, order int) (MaxData, error)

	// AddMaxData creates a new entry.  If OrderForExercise is
	// zero, the smallest unused positive order is assigned.
	AddMaxData(maxData MaxData) (MaxData, error)

	// UpdateMaxData changes the fields of an entry named in
	// update.
	UpdateMaxData(exerciseName string, order int, update MaxDataUpdate) error

	// DeleteMaxData removes a single entry.
	DeleteMaxData(exerciseName string, order int) error
}

// WeeklyProgrammingStore holds the training program.
type WeeklyProgrammingStore interface {
	// WeeklyProgramming returns every programming entry, in the
	// order they were created.
	WeeklyProgramming() ([]WeeklyProgramming, error)

	// WeeklyProgrammingForExercise returns the programming
	// entries whose exercise type matches the named exercise's
	// type.  An exercise without a type matches nothing.
	WeeklyProgrammingForExercise(exerciseName string) ([]WeeklyProgramming, error)

	// WeeklyProgrammingItem retrieves a single entry by its
	// exercise type and week number.
	WeeklyProgrammingItem(exerciseType string, weekNumber int) (WeeklyProgramming, error)

	// AddWeeklyProgramming creates a new entry.  Returns
	// ErrWeeklyProgrammingExists on a duplicate key.
	AddWeeklyProgramming(programming WeeklyProgramming) error

	// UpdateWeeklyProgramming changes the fields of an entry
	// named in update.
	UpdateWeeklyProgramming(exerciseType string, weekNumber int, update WeeklyProgrammingUpdate) error

	// DeleteWeeklyProgramming removes a single entry.
	DeleteWeeklyProgramming(exerciseType string, weekNumber int) error
}
