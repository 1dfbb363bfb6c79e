// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package workoutlogtest

import (
	"strings"

	"github.com/diffeo/go-workoutlog/workoutlog"
)

// TestExerciseRoundTrip creates exercises and reads them back.
func (s *Suite) TestExerciseRoundTrip() {
	exercises, err := s.Store.Exercises()
	if s.NoError(err) {
		s.Empty(exercises)
	}

	squat := workoutlog.Exercise{Name: "Squat", Type: strp("Main lift")}
	plank := workoutlog.Exercise{Name: "Plank"}
	s.Require().NoError(s.Store.AddExercise(squat))
	s.Require().NoError(s.Store.AddExercise(plank))

	got, err := s.Store.Exercise("Squat")
	if s.NoError(err) {
		s.Equal(squat, got)
	}
	got, err = s.Store.Exercise("Plank")
	if s.NoError(err) {
		s.Equal(plank, got)
	}

	exercises, err = s.Store.Exercises()
	if s.NoError(err) {
		s.Equal([]workoutlog.Exercise{squat, plank}, exercises)
	}

	_, err = s.Store.Exercise("Deadlift")
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Deadlift"}, err)
}

// TestExerciseAwkwardNames checks that names that are hard to put in
// a URL still work.
func (s *Suite) TestExerciseAwkwardNames() {
	for _, name := range []string{"Bench Press", "-minus", "Push/Pull", "Squat?", "100%"} {
		s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: name}), name)
		got, err := s.Store.Exercise(name)
		if s.NoError(err, name) {
			s.Equal(name, got.Name)
		}
	}
}

// TestExerciseDuplicate checks the name uniqueness rule.
func (s *Suite) TestExerciseDuplicate() {
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Squat"}))
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Deadlift"}))

	err := s.Store.AddExercise(workoutlog.Exercise{Name: "Squat", Type: strp("Main lift")})
	s.Equal(workoutlog.ErrExerciseExists{Name: "Squat"}, err)

	err = s.Store.UpdateExercise("Deadlift", workoutlog.ExerciseUpdate{Name: strp("Squat")})
	s.Equal(workoutlog.ErrExerciseExists{Name: "Squat"}, err)

	// Renaming to your own name is fine
	err = s.Store.UpdateExercise("Squat", workoutlog.ExerciseUpdate{Name: strp("Squat")})
	s.NoError(err)
}

// TestExerciseValidation checks the name and type length rules.
func (s *Suite) TestExerciseValidation() {
	long := strings.Repeat("x", workoutlog.MaxNameLength+1)

	err := s.Store.AddExercise(workoutlog.Exercise{Name: long})
	s.Equal(workoutlog.ErrInvalid{Message: "Exercise name too long."}, err)

	err = s.Store.AddExercise(workoutlog.Exercise{Name: "Squat", Type: &long})
	s.Equal(workoutlog.ErrInvalid{Message: "Exercise type too long."}, err)

	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Squat"}))
	err = s.Store.UpdateExercise("Squat", workoutlog.ExerciseUpdate{Name: &long})
	s.Equal(workoutlog.ErrInvalid{Message: "Exercise name too long."}, err)

	exercises, err := s.Store.Exercises()
	if s.NoError(err) {
		s.Equal([]string{"Squat"}, exerciseNames(exercises))
	}
}

// TestRenameExercise checks that renaming an exercise keeps everything
// attached to it.
func (s *Suite) TestRenameExercise() {
	w := s.addWorkout("2021-08-10 12:00")
	s.addExercise(w.ID, "Squat", "Main lift")
	s.addSet(w.ID, "Squat", 0, 100)
	_, err := s.Store.AddMaxData(workoutlog.MaxData{
		ExerciseName: "Squat",
		Date:         s.day("2021-08-10"),
		EstimatedMax: floatp(110),
	})
	s.Require().NoError(err)

	err = s.Store.UpdateExercise("Squat", workoutlog.ExerciseUpdate{Name: strp("Back Squat")})
	s.Require().NoError(err)

	_, err = s.Store.Exercise("Squat")
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Squat"}, err)

	e, err := s.Store.Exercise("Back Squat")
	if s.NoError(err) {
		s.Equal(strp("Main lift"), e.Type)
	}

	exercises, err := s.Store.WorkoutExercises(w.ID)
	if s.NoError(err) {
		s.Equal([]string{"Back Squat"}, exerciseNames(exercises))
	}

	sets, err := s.Store.Sets(w.ID, "Back Squat")
	if s.NoError(err) && s.Len(sets, 1) {
		s.Equal("Back Squat", sets[0].ExerciseName)
	}

	maxData, err := s.Store.MaxData("Back Squat")
	if s.NoError(err) && s.Len(maxData, 1) {
		s.Equal("Back Squat", maxData[0].ExerciseName)
	}
}

// TestUpdateExerciseType checks a type-only update.
func (s *Suite) TestUpdateExerciseType() {
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Squat"}))
	err := s.Store.UpdateExercise("Squat", workoutlog.ExerciseUpdate{Type: strp("Variation lift")})
	s.Require().NoError(err)

	e, err := s.Store.Exercise("Squat")
	if s.NoError(err) {
		s.Equal(workoutlog.Exercise{Name: "Squat", Type: strp("Variation lift")}, e)
	}

	err = s.Store.UpdateExercise("Deadlift", workoutlog.ExerciseUpdate{Type: strp("Main lift")})
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Deadlift"}, err)
}

// TestDeleteExerciseCascades checks that deleting an exercise takes its
// sets and max data with it.
func (s *Suite) TestDeleteExerciseCascades() {
	w := s.addWorkout("2021-08-10 12:00")
	s.addExercise(w.ID, "Squat", "Main lift")
	s.addExercise(w.ID, "Bench Press", "Main lift")
	s.addSet(w.ID, "Squat", 0, 100)
	s.addSet(w.ID, "Bench Press", 0, 65)
	_, err := s.Store.AddMaxData(workoutlog.MaxData{ExerciseName: "Squat", Date: s.day("2021-08-10")})
	s.Require().NoError(err)

	s.Require().NoError(s.Store.DeleteExercise("Squat"))

	_, err = s.Store.Exercise("Squat")
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Squat"}, err)
	_, err = s.Store.MaxData("Squat")
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Squat"}, err)
	_, err = s.Store.Sets(w.ID, "Squat")
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Squat"}, err)

	// Re-creating the exercise does not bring anything back
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Squat"}))
	s.Empty(s.setOrders(w.ID, "Squat"))
	maxData, err := s.Store.MaxData("Squat")
	if s.NoError(err) {
		s.Empty(maxData)
	}

	exercises, err := s.Store.WorkoutExercises(w.ID)
	if s.NoError(err) {
		s.Equal([]string{"Bench Press"}, exerciseNames(exercises))
	}
	s.Equal([]int{1}, s.setOrders(w.ID, "Bench Press"))

	err = s.Store.DeleteExercise("Deadlift")
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Deadlift"}, err)
}

// TestWorkoutExercises checks attaching exercises to workouts.
func (s *Suite) TestWorkoutExercises() {
	w1 := s.addWorkout("2021-08-10 12:00")
	w2 := s.addWorkout("2021-08-12 14:00")

	exercises, err := s.Store.WorkoutExercises(w1.ID)
	if s.NoError(err) {
		s.Empty(exercises)
	}

	// This creates the exercise
	s.addExercise(w1.ID, "Squat", "Main lift")
	e, err := s.Store.Exercise("Squat")
	if s.NoError(err) {
		s.Equal(strp("Main lift"), e.Type)
	}

	// This attaches the existing exercise, leaving it unchanged
	s.addExercise(w2.ID, "Squat", "Cardio")
	e, err = s.Store.WorkoutExercise(w2.ID, "Squat")
	if s.NoError(err) {
		s.Equal(strp("Main lift"), e.Type)
	}

	err = s.Store.AddWorkoutExercise(w1.ID, workoutlog.Exercise{Name: "Squat"})
	s.Equal(workoutlog.ErrExerciseInWorkout{WorkoutID: w1.ID, Name: "Squat"}, err)

	s.addExercise(w1.ID, "Bench Press", "")
	exercises, err = s.Store.WorkoutExercises(w1.ID)
	if s.NoError(err) {
		s.Equal([]string{"Squat", "Bench Press"}, exerciseNames(exercises))
	}

	_, err = s.Store.WorkoutExercise(w2.ID, "Bench Press")
	s.Equal(workoutlog.ErrExerciseNotInWorkout{WorkoutID: w2.ID, Name: "Bench Press"}, err)
	_, err = s.Store.WorkoutExercise(w2.ID, "Deadlift")
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Deadlift"}, err)

	workouts, err := s.Store.WorkoutsByExercise("Squat")
	if s.NoError(err) && s.Len(workouts, 2) {
		s.Equal(w1.ID, workouts[0].ID)
		s.Equal(w2.ID, workouts[1].ID)
		s.Equal(w2.DateTime, workouts[1].DateTime)
	}
	workouts, err = s.Store.WorkoutsByExercise("Bench Press")
	if s.NoError(err) && s.Len(workouts, 1) {
		s.Equal(w1.ID, workouts[0].ID)
	}
	_, err = s.Store.WorkoutsByExercise("Deadlift")
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Deadlift"}, err)

	err = s.Store.AddWorkoutExercise(w1.ID+1000, workoutlog.Exercise{Name: "Squat"})
	s.Equal(workoutlog.ErrNoSuchWorkout{ID: w1.ID + 1000}, err)

	long := strings.Repeat("x", workoutlog.MaxNameLength+1)
	err = s.Store.AddWorkoutExercise(w1.ID, workoutlog.Exercise{Name: long})
	s.Equal(workoutlog.ErrInvalid{Message: "Exercise name too long."}, err)
}

// TestRemoveWorkoutExercise checks that detaching an exercise removes
// only the sets of that pairing.
func (s *Suite) TestRemoveWorkoutExercise() {
	w1 := s.addWorkout("2021-08-10 12:00")
	w2 := s.addWorkout("2021-08-12 14:00")
	s.addExercise(w1.ID, "Squat", "Main lift")
	s.addExercise(w1.ID, "Bench Press", "Main lift")
	s.addExercise(w2.ID, "Squat", "")
	s.addSet(w1.ID, "Squat", 0, 100)
	s.addSet(w1.ID, "Squat", 0, 100)
	s.addSet(w1.ID, "Bench Press", 0, 65)
	s.addSet(w2.ID, "Squat", 0, 105)

	s.Require().NoError(s.Store.RemoveWorkoutExercise(w1.ID, "Squat"))

	_, err := s.Store.Exercise("Squat")
	s.NoError(err)
	s.Empty(s.setOrders(w1.ID, "Squat"))
	s.Equal([]int{1}, s.setOrders(w1.ID, "Bench Press"))
	s.Equal([]int{1}, s.setOrders(w2.ID, "Squat"))

	exercises, err := s.Store.WorkoutExercises(w1.ID)
	if s.NoError(err) {
		s.Equal([]string{"Bench Press"}, exerciseNames(exercises))
	}

	err = s.Store.RemoveWorkoutExercise(w1.ID, "Squat")
	s.Equal(workoutlog.ErrExerciseNotInWorkout{WorkoutID: w1.ID, Name: "Squat"}, err)

	err = s.Store.RemoveWorkoutExercise(w1.ID, "Deadlift")
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Deadlift"}, err)
}
