// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package workoutlogtest

import (
	"time"

	"github.com/diffeo/go-workoutlog/workoutlog"
)

func (s *Suite) addProgramming(week int, typ string, intensity float64) workoutlog.WeeklyProgramming {
	p := workoutlog.WeeklyProgramming{
		WeekNumber:   week,
		ExerciseType: typ,
		Intensity:    &intensity,
	}
	s.Require().NoError(s.Store.AddWeeklyProgramming(p))
	return p
}

// TestWeeklyProgrammingRoundTrip creates an entry with every field and
// reads it back.
func (s *Suite) TestWeeklyProgrammingRoundTrip() {
	all, err := s.Store.WeeklyProgramming()
	if s.NoError(err) {
		s.Empty(all)
	}

	p := workoutlog.WeeklyProgramming{
		WeekNumber:              1,
		ExerciseType:            "Cardio",
		Intensity:               floatp(60),
		NumberOfSets:            intp(1),
		NumberOfReps:            intp(1),
		RepsInReserve:           intp(0),
		RateOfPerceivedExertion: floatp(6),
		Duration:                durp(20 * time.Minute),
		Distance:                floatp(4000),
		AverageHeartRate:        intp(130),
		Notes:                   strp("Easy pace"),
	}
	s.Require().NoError(s.Store.AddWeeklyProgramming(p))

	got, err := s.Store.WeeklyProgrammingItem("Cardio", 1)
	if s.NoError(err) {
		s.Equal(p, got)
	}

	all, err = s.Store.WeeklyProgramming()
	if s.NoError(err) {
		s.Equal([]workoutlog.WeeklyProgramming{p}, all)
	}

	_, err = s.Store.WeeklyProgrammingItem("Cardio", 2)
	s.Equal(workoutlog.ErrNoSuchWeeklyProgramming{ExerciseType: "Cardio", WeekNumber: 2}, err)
}

// TestWeeklyProgrammingDuplicate checks the key uniqueness rule.
func (s *Suite) TestWeeklyProgrammingDuplicate() {
	s.addProgramming(1, "Main lift", 70)
	s.addProgramming(2, "Main lift", 75)

	err := s.Store.AddWeeklyProgramming(workoutlog.WeeklyProgramming{WeekNumber: 1, ExerciseType: "Main lift"})
	s.Equal(workoutlog.ErrWeeklyProgrammingExists{ExerciseType: "Main lift", WeekNumber: 1}, err)

	err = s.Store.UpdateWeeklyProgramming("Main lift", 2, workoutlog.WeeklyProgrammingUpdate{WeekNumber: intp(1)})
	s.Equal(workoutlog.ErrWeeklyProgrammingExists{ExerciseType: "Main lift", WeekNumber: 1}, err)

	// Same week, different type is fine
	s.addProgramming(1, "Variation lift", 60)
}

// TestUpdateWeeklyProgramming checks a partial update, including a
// change of key.
func (s *Suite) TestUpdateWeeklyProgramming() {
	s.addProgramming(1, "Main lift", 70)

	err := s.Store.UpdateWeeklyProgramming("Main lift", 1, workoutlog.WeeklyProgrammingUpdate{
		NumberOfSets: intp(5),
		NumberOfReps: intp(5),
	})
	s.Require().NoError(err)

	got, err := s.Store.WeeklyProgrammingItem("Main lift", 1)
	if s.NoError(err) {
		s.Equal(floatp(70), got.Intensity)
		s.Equal(intp(5), got.NumberOfSets)
		s.Equal(intp(5), got.NumberOfReps)
		s.Nil(got.RepsInReserve)
	}

	err = s.Store.UpdateWeeklyProgramming("Main lift", 1, workoutlog.WeeklyProgrammingUpdate{
		WeekNumber: intp(4),
		Intensity:  floatp(72.5),
	})
	s.Require().NoError(err)

	_, err = s.Store.WeeklyProgrammingItem("Main lift", 1)
	s.Equal(workoutlog.ErrNoSuchWeeklyProgramming{ExerciseType: "Main lift", WeekNumber: 1}, err)
	got, err = s.Store.WeeklyProgrammingItem("Main lift", 4)
	if s.NoError(err) {
		s.Equal(floatp(72.5), got.Intensity)
		s.Equal(intp(5), got.NumberOfSets)
	}

	err = s.Store.UpdateWeeklyProgramming("Cardio", 1, workoutlog.WeeklyProgrammingUpdate{Intensity: floatp(1)})
	s.Equal(workoutlog.ErrNoSuchWeeklyProgramming{ExerciseType: "Cardio", WeekNumber: 1}, err)
}

// TestWeeklyProgrammingForExercise checks filtering by the exercise's
// type.
func (s *Suite) TestWeeklyProgrammingForExercise() {
	s.addProgramming(1, "Main lift", 70)
	s.addProgramming(1, "Variation lift", 60)
	s.addProgramming(2, "Main lift", 75)
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Squat", Type: strp("Main lift")}))
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Plank"}))

	progs, err := s.Store.WeeklyProgrammingForExercise("Squat")
	if s.NoError(err) && s.Len(progs, 2) {
		s.Equal(1, progs[0].WeekNumber)
		s.Equal(2, progs[1].WeekNumber)
		for _, p := range progs {
			s.Equal("Main lift", p.ExerciseType)
		}
	}

	progs, err = s.Store.WeeklyProgrammingForExercise("Plank")
	if s.NoError(err) {
		s.Empty(progs)
	}

	_, err = s.Store.WeeklyProgrammingForExercise("Deadlift")
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Deadlift"}, err)
}

// TestDeleteWeeklyProgramming checks that an entry can be deleted
// exactly once.
func (s *Suite) TestDeleteWeeklyProgramming() {
	s.addProgramming(1, "Main lift", 70)
	s.addProgramming(2, "Main lift", 75)

	s.NoError(s.Store.DeleteWeeklyProgramming("Main lift", 1))
	err := s.Store.DeleteWeeklyProgramming("Main lift", 1)
	s.Equal(workoutlog.ErrNoSuchWeeklyProgramming{ExerciseType: "Main lift", WeekNumber: 1}, err)

	all, err := s.Store.WeeklyProgramming()
	if s.NoError(err) && s.Len(all, 1) {
		s.Equal(2, all[0].WeekNumber)
	}
}

// TestWeeklyProgrammingValidation checks the type and notes rules.
func (s *Suite) TestWeeklyProgrammingValidation() {
	long := make([]rune, workoutlog.MaxNameLength+1)
	for i := range long {
		long[i] = 'x'
	}
	err := s.Store.AddWeeklyProgramming(workoutlog.WeeklyProgramming{
		WeekNumber:   1,
		ExerciseType: string(long),
	})
	s.Equal(workoutlog.ErrInvalid{Message: "Exercise type too long."}, err)

	all, err := s.Store.WeeklyProgramming()
	if s.NoError(err) {
		s.Empty(all)
	}
}
