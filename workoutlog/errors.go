// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package workoutlog

import "fmt"

// ErrNoSuchWorkout is returned when looking up a workout by an
// identifier that does not exist.
type ErrNoSuchWorkout struct {
	ID int
}

func (err ErrNoSuchWorkout) Error() string {
	return fmt.Sprintf("No workout was found with the id '%d'", err.ID)
}

// ErrNoSuchExercise is returned when looking up an exercise by a name
// that does not exist.
type ErrNoSuchExercise struct {
	Name string
}

func (err ErrNoSuchExercise) Error() string {
	return fmt.Sprintf("No exercise found with the name '%s'", err.Name)
}

// ErrExerciseNotInWorkout is returned when an exercise is reached
// through a workout it is not a part of.
type ErrExerciseNotInWorkout struct {
	WorkoutID int
	Name      string
}

func (err ErrExerciseNotInWorkout) Error() string {
	return fmt.Sprintf("No exercise with the name '%s' was found in workout '%d'", err.Name, err.WorkoutID)
}

// ErrNoSuchSet is returned when a set does not exist.
type ErrNoSuchSet struct {
	WorkoutID    int
	ExerciseName string
	Order        int
}

func (err ErrNoSuchSet) Error() string {
	return fmt.Sprintf("No set was found in workout '%d' for exercise '%s' for the order number '%d'",
		err.WorkoutID, err.ExerciseName, err.Order)
}

// ErrNoSuchMaxData is returned when a max data entry does not exist.
type ErrNoSuchMaxData struct {
	ExerciseName string
	Order        int
}

func (err ErrNoSuchMaxData) Error() string {
	return fmt.Sprintf("No max data was found for exercise '%s' for order number '%d'",
		err.ExerciseName, err.Order)
}

// ErrNoSuchWeeklyProgramming is returned when a weekly programming
// entry does not exist.
type ErrNoSuchWeeklyProgramming struct {
	ExerciseType string
	WeekNumber   int
}

func (err ErrNoSuchWeeklyProgramming) Error() string {
	return fmt.Sprintf("No weekly programming data was found for exercise type '%s' and week number '%d'",
		err.ExerciseType, err.WeekNumber)
}

// ErrWorkoutExists is returned when adding or changing a workout
// would give it the same date and time as another workout.  DateTime
// is in the wire format, e.g. "2021-08-12 14:15".
type ErrWorkoutExists struct {
	DateTime string
}

func (err ErrWorkoutExists) Error() string {
	return fmt.Sprintf("Workout session with datetime '%s' already exists", err.DateTime)
}

// ErrExerciseExists is returned when an exercise name is already
// taken.
type ErrExerciseExists struct {
	Name string
}

func (err ErrExerciseExists) Error() string {
	return fmt.Sprintf("Exercise with name '%s' already exists.", err.Name)
}

// ErrExerciseInWorkout is returned when attaching an exercise to a
// workout it is already attached to.
type ErrExerciseInWorkout struct {
	WorkoutID int
	Name      string
}

func (err ErrExerciseInWorkout) Error() string {
	return fmt.Sprintf("Exercise with name '%s' already exists in workout '%d'", err.Name, err.WorkoutID)
}

// ErrSetExists is returned when a set order is already used for an
// exercise in a workout.
type ErrSetExists struct {
	WorkoutID    int
	ExerciseName string
	Order        int
}

func (err ErrSetExists) Error() string {
	return fmt.Sprintf("Set with order '%d' in workout '%d' for exercise '%s' already exists.",
		err.Order, err.WorkoutID, err.ExerciseName)
}

// ErrMaxDataExists is returned when a max data order is already used
// for an exercise.
type ErrMaxDataExists struct {
	ExerciseName string
	Order        int
}

func (err ErrMaxDataExists) Error() string {
	return fmt.Sprintf("Max data for exercise '%s' with order number '%d' already exists.",
		err.ExerciseName, err.Order)
}

// ErrWeeklyProgrammingExists is returned when a week number and
// exercise type pair is already used.
type ErrWeeklyProgrammingExists struct {
	ExerciseType string
	WeekNumber   int
}

func (err ErrWeeklyProgrammingExists) Error() string {
	return fmt.Sprintf("Weekly programming for exercise type '%s' for week '%d' already exists.",
		err.ExerciseType, err.WeekNumber)
}

// ErrInvalid is returned when a field value breaks one of the length
// or format rules.  Message is a short title; Detail, if not empty,
// explains the specific failure.
type ErrInvalid struct {
	Message string
	Detail  string
}

func (err ErrInvalid) Error() string {
	if err.Detail == "" {
		return err.Message
	}
	return err.Message + ": " + err.Detail
}
