// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package workoutlogtest

import (
	"time"

	"github.com/diffeo/go-workoutlog/workoutlog"
)

// TestSetRoundTrip creates a set with every field and reads it back.
func (s *Suite) TestSetRoundTrip() {
	w := s.addWorkout("2021-08-10 12:00")
	s.addExercise(w.ID, "Rowing", "Cardio")

	set := workoutlog.Set{
		WorkoutID:               w.ID,
		ExerciseName:            "Rowing",
		OrderInWorkout:          2,
		Weight:                  floatp(0.5),
		NumberOfReps:            intp(1),
		RepsInReserve:           intp(0),
		RateOfPerceivedExertion: floatp(8.5),
		Duration:                durp(20 * time.Minute),
		Distance:                floatp(5000),
	}
	added, err := s.Store.AddSet(set)
	if s.NoError(err) {
		s.Equal(set, added)
	}

	got, err := s.Store.Set(w.ID, "Rowing", 2)
	if s.NoError(err) {
		s.Equal(set, got)
	}

	sets, err := s.Store.Sets(w.ID, "Rowing")
	if s.NoError(err) {
		s.Equal([]workoutlog.Set{set}, sets)
	}
}

// TestSetAutoOrder checks that a set without an order gets the lowest
// free one.
func (s *Suite) TestSetAutoOrder() {
	w := s.addWorkout("2021-08-10 12:00")
	s.addExercise(w.ID, "Squat", "Main lift")

	s.Equal(1, s.addSet(w.ID, "Squat", 0, 100).OrderInWorkout)
	s.Equal(2, s.addSet(w.ID, "Squat", 0, 100).OrderInWorkout)
	s.Equal(4, s.addSet(w.ID, "Squat", 4, 100).OrderInWorkout)
	s.Equal(3, s.addSet(w.ID, "Squat", 0, 100).OrderInWorkout)
	s.Equal(5, s.addSet(w.ID, "Squat", 0, 100).OrderInWorkout)
	s.Equal([]int{1, 2, 3, 4, 5}, s.setOrders(w.ID, "Squat"))

	// Orders are per exercise and per workout
	s.addExercise(w.ID, "Bench Press", "Main lift")
	s.Equal(1, s.addSet(w.ID, "Bench Press", 0, 65).OrderInWorkout)
	w2 := s.addWorkout("2021-08-12 14:00")
	s.Equal(1, s.addSet(w2.ID, "Squat", 0, 105).OrderInWorkout)
}

// TestSetDuplicate checks the order uniqueness rule.
func (s *Suite) TestSetDuplicate() {
	w := s.addWorkout("2021-08-10 12:00")
	s.addExercise(w.ID, "Squat", "Main lift")
	s.addSet(w.ID, "Squat", 1, 100)
	s.addSet(w.ID, "Squat", 2, 100)

	_, err := s.Store.AddSet(workoutlog.Set{WorkoutID: w.ID, ExerciseName: "Squat", OrderInWorkout: 1})
	s.Equal(workoutlog.ErrSetExists{WorkoutID: w.ID, ExerciseName: "Squat", Order: 1}, err)

	err = s.Store.UpdateSet(w.ID, "Squat", 2, workoutlog.SetUpdate{OrderInWorkout: intp(1)})
	s.Equal(workoutlog.ErrSetExists{WorkoutID: w.ID, ExerciseName: "Squat", Order: 1}, err)

	err = s.Store.UpdateSet(w.ID, "Squat", 2, workoutlog.SetUpdate{OrderInWorkout: intp(3)})
	s.NoError(err)
	s.Equal([]int{1, 3}, s.setOrders(w.ID, "Squat"))
}

// TestUpdateSet checks that a set update changes the set, and only
// the set.
func (s *Suite) TestUpdateSet() {
	w, err := s.Store.AddWorkout(workoutlog.Workout{
		DateTime:         s.at("2021-08-10 12:00"),
		AverageHeartRate: intp(100),
	})
	s.Require().NoError(err)
	s.addExercise(w.ID, "Squat", "Main lift")
	s.addSet(w.ID, "Squat", 1, 100)

	err = s.Store.UpdateSet(w.ID, "Squat", 1, workoutlog.SetUpdate{
		Weight:                  floatp(102.5),
		NumberOfReps:            intp(5),
		RepsInReserve:           intp(2),
		RateOfPerceivedExertion: floatp(8),
		Duration:                durp(2 * time.Minute),
		Distance:                floatp(0),
	})
	s.Require().NoError(err)

	set, err := s.Store.Set(w.ID, "Squat", 1)
	if s.NoError(err) {
		s.Equal(workoutlog.Set{
			WorkoutID:               w.ID,
			ExerciseName:            "Squat",
			OrderInWorkout:          1,
			Weight:                  floatp(102.5),
			NumberOfReps:            intp(5),
			RepsInReserve:           intp(2),
			RateOfPerceivedExertion: floatp(8),
			Duration:                durp(2 * time.Minute),
			Distance:                floatp(0),
		}, set)
	}

	got, err := s.Store.Workout(w.ID)
	if s.NoError(err) {
		s.Equal(w, got)
	}

	err = s.Store.UpdateSet(w.ID, "Squat", 7, workoutlog.SetUpdate{Weight: floatp(1)})
	s.Equal(workoutlog.ErrNoSuchSet{WorkoutID: w.ID, ExerciseName: "Squat", Order: 7}, err)
}

// TestDeleteSet checks that a set can be deleted exactly once.
func (s *Suite) TestDeleteSet() {
	w := s.addWorkout("2021-08-10 12:00")
	s.addExercise(w.ID, "Squat", "Main lift")
	s.addSet(w.ID, "Squat", 0, 100)
	s.addSet(w.ID, "Squat", 0, 100)

	s.NoError(s.Store.DeleteSet(w.ID, "Squat", 1))
	_, err := s.Store.Set(w.ID, "Squat", 1)
	s.Equal(workoutlog.ErrNoSuchSet{WorkoutID: w.ID, ExerciseName: "Squat", Order: 1}, err)
	err = s.Store.DeleteSet(w.ID, "Squat", 1)
	s.Equal(workoutlog.ErrNoSuchSet{WorkoutID: w.ID, ExerciseName: "Squat", Order: 1}, err)

	s.Equal([]int{2}, s.setOrders(w.ID, "Squat"))
	s.Equal(1, s.addSet(w.ID, "Squat", 0, 100).OrderInWorkout)
}

// TestSetMissingParents checks the errors for sets of missing workouts
// and exercises.
func (s *Suite) TestSetMissingParents() {
	w := s.addWorkout("2021-08-10 12:00")
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Squat"}))

	_, err := s.Store.Sets(w.ID+1000, "Squat")
	s.Equal(workoutlog.ErrNoSuchWorkout{ID: w.ID + 1000}, err)
	_, err = s.Store.Sets(w.ID, "Deadlift")
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Deadlift"}, err)

	_, err = s.Store.AddSet(workoutlog.Set{WorkoutID: w.ID + 1000, ExerciseName: "Squat"})
	s.Equal(workoutlog.ErrNoSuchWorkout{ID: w.ID + 1000}, err)
	_, err = s.Store.AddSet(workoutlog.Set{WorkoutID: w.ID, ExerciseName: "Deadlift"})
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Deadlift"}, err)

	err = s.Store.DeleteSet(w.ID, "Deadlift", 1)
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Deadlift"}, err)
}
