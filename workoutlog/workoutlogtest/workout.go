// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package workoutlogtest

import (
	"time"

	"github.com/diffeo/go-workoutlog/workoutlog"
)

// TestWorkoutRoundTrip creates a workout with every field set and
// reads it back.
func (s *Suite) TestWorkoutRoundTrip() {
	w := workoutlog.Workout{
		DateTime:         s.at("2020-12-24 12:15"),
		Duration:         durp(105 * time.Minute),
		BodyWeight:       floatp(72),
		AverageHeartRate: intp(110),
		MaxHeartRate:     intp(150),
		Notes:            strp("Christmas eve"),
	}
	added, err := s.Store.AddWorkout(w)
	if !s.NoError(err) {
		return
	}
	s.NotZero(added.ID)
	w.ID = added.ID
	s.Equal(w, added)

	got, err := s.Store.Workout(added.ID)
	if s.NoError(err) {
		s.Equal(w, got)
	}
}

// TestWorkoutOptionalFields checks that unset fields stay nil.
func (s *Suite) TestWorkoutOptionalFields() {
	w := s.addWorkout("2021-8-10 12:00")
	got, err := s.Store.Workout(w.ID)
	if s.NoError(err) {
		s.Equal(s.at("2021-08-10 12:00"), got.DateTime)
		s.Nil(got.Duration)
		s.Nil(got.BodyWeight)
		s.Nil(got.AverageHeartRate)
		s.Nil(got.MaxHeartRate)
		s.Nil(got.Notes)
	}
}

// TestWorkoutsInOrder checks that listing returns workouts in creation
// order with distinct identifiers.
func (s *Suite) TestWorkoutsInOrder() {
	workouts, err := s.Store.Workouts()
	if s.NoError(err) {
		s.Empty(workouts)
	}

	w1 := s.addWorkout("2021-08-14 16:00")
	w2 := s.addWorkout("2021-08-10 12:00")
	w3 := s.addWorkout("2021-08-12 14:00")
	s.NotEqual(w1.ID, w2.ID)
	s.NotEqual(w2.ID, w3.ID)

	workouts, err = s.Store.Workouts()
	if s.NoError(err) && s.Len(workouts, 3) {
		s.Equal(w1.ID, workouts[0].ID)
		s.Equal(w2.ID, workouts[1].ID)
		s.Equal(w3.ID, workouts[2].ID)
	}
}

// TestWorkoutDuplicateDateTime checks the date-time uniqueness rule on
// both create and update.
func (s *Suite) TestWorkoutDuplicateDateTime() {
	w1 := s.addWorkout("2021-08-10 12:00")
	w2 := s.addWorkout("2021-08-12 14:00")

	_, err := s.Store.AddWorkout(workoutlog.Workout{DateTime: s.at("2021-8-10 12:00")})
	s.Equal(workoutlog.ErrWorkoutExists{DateTime: "2021-08-10 12:00"}, err)

	// Moving onto another workout's time is a conflict
	err = s.Store.UpdateWorkout(w2.ID, workoutlog.WorkoutUpdate{
		DateTime: timep(s.at("2021-08-10 12:00")),
	})
	s.Equal(workoutlog.ErrWorkoutExists{DateTime: "2021-08-10 12:00"}, err)

	// ...but keeping your own is fine
	err = s.Store.UpdateWorkout(w1.ID, workoutlog.WorkoutUpdate{
		DateTime: timep(s.at("2021-08-10 12:00")),
		Notes:    strp("same time"),
	})
	s.NoError(err)

	got, err := s.Store.Workout(w2.ID)
	if s.NoError(err) {
		s.Equal(s.at("2021-08-12 14:00"), got.DateTime)
	}
}

// TestUpdateWorkout checks that an update only changes the named
// fields.
func (s *Suite) TestUpdateWorkout() {
	w, err := s.Store.AddWorkout(workoutlog.Workout{
		DateTime:   s.at("2021-08-10 12:00"),
		BodyWeight: floatp(71.3),
		Notes:      strp("Easy session"),
	})
	if !s.NoError(err) {
		return
	}

	err = s.Store.UpdateWorkout(w.ID, workoutlog.WorkoutUpdate{
		Duration:     durp(75 * time.Minute),
		MaxHeartRate: intp(125),
	})
	if !s.NoError(err) {
		return
	}

	got, err := s.Store.Workout(w.ID)
	if s.NoError(err) {
		s.Equal(w.DateTime, got.DateTime)
		s.Equal(floatp(71.3), got.BodyWeight)
		s.Equal(strp("Easy session"), got.Notes)
		s.Equal(durp(75*time.Minute), got.Duration)
		s.Equal(intp(125), got.MaxHeartRate)
		s.Nil(got.AverageHeartRate)
	}

	err = s.Store.UpdateWorkout(w.ID+1000, workoutlog.WorkoutUpdate{Notes: strp("x")})
	s.Equal(workoutlog.ErrNoSuchWorkout{ID: w.ID + 1000}, err)
}

// TestWorkoutNotes checks the length limit on notes.
func (s *Suite) TestWorkoutNotes() {
	long := make([]byte, workoutlog.MaxNoteLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := s.Store.AddWorkout(workoutlog.Workout{
		DateTime: s.at("2021-08-10 12:00"),
		Notes:    strp(string(long)),
	})
	s.Equal(workoutlog.ErrInvalid{Message: "Note too long."}, err)

	workouts, err := s.Store.Workouts()
	if s.NoError(err) {
		s.Empty(workouts)
	}

	w := s.addWorkout("2021-08-10 12:00")
	err = s.Store.UpdateWorkout(w.ID, workoutlog.WorkoutUpdate{Notes: strp(string(long))})
	s.Equal(workoutlog.ErrInvalid{Message: "Note too long."}, err)
}

// TestDeleteWorkout checks that a workout can be deleted exactly once.
func (s *Suite) TestDeleteWorkout() {
	w1 := s.addWorkout("2021-08-10 12:00")
	w2 := s.addWorkout("2021-08-12 14:00")

	s.NoError(s.Store.DeleteWorkout(w1.ID))
	_, err := s.Store.Workout(w1.ID)
	s.Equal(workoutlog.ErrNoSuchWorkout{ID: w1.ID}, err)

	err = s.Store.DeleteWorkout(w1.ID)
	s.Equal(workoutlog.ErrNoSuchWorkout{ID: w1.ID}, err)

	workouts, err := s.Store.Workouts()
	if s.NoError(err) && s.Len(workouts, 1) {
		s.Equal(w2.ID, workouts[0].ID)
	}
}

// TestDeleteWorkoutCascades checks that deleting a workout deletes its
// sets but not its exercises.
func (s *Suite) TestDeleteWorkoutCascades() {
	w1 := s.addWorkout("2021-08-10 12:00")
	w2 := s.addWorkout("2021-08-12 14:00")
	s.addExercise(w1.ID, "Squat", "Main lift")
	s.addExercise(w2.ID, "Squat", "")
	s.addSet(w1.ID, "Squat", 0, 100)
	s.addSet(w1.ID, "Squat", 0, 100)
	s.addSet(w2.ID, "Squat", 0, 105)

	s.Require().NoError(s.Store.DeleteWorkout(w1.ID))

	_, err := s.Store.Sets(w1.ID, "Squat")
	s.Equal(workoutlog.ErrNoSuchWorkout{ID: w1.ID}, err)
	_, err = s.Store.Set(w1.ID, "Squat", 1)
	s.Equal(workoutlog.ErrNoSuchWorkout{ID: w1.ID}, err)

	s.Equal([]int{1}, s.setOrders(w2.ID, "Squat"))

	e, err := s.Store.Exercise("Squat")
	if s.NoError(err) {
		s.Equal(strp("Main lift"), e.Type)
	}

	workouts, err := s.Store.WorkoutsByExercise("Squat")
	if s.NoError(err) && s.Len(workouts, 1) {
		s.Equal(w2.ID, workouts[0].ID)
	}
}

// TestNoSuchWorkout checks the errors for a missing workout.
func (s *Suite) TestNoSuchWorkout() {
	_, err := s.Store.Workout(1)
	s.Equal(workoutlog.ErrNoSuchWorkout{ID: 1}, err)

	_, err = s.Store.WorkoutExercises(1)
	s.Equal(workoutlog.ErrNoSuchWorkout{ID: 1}, err)

	err = s.Store.DeleteWorkout(1)
	s.Equal(workoutlog.ErrNoSuchWorkout{ID: 1}, err)
}
