// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package workoutlogtest

import "github.com/diffeo/go-workoutlog/workoutlog"

// TestMaxDataRoundTrip creates a max data entry with every field and
// reads it back.
func (s *Suite) TestMaxDataRoundTrip() {
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Squat"}))

	m := workoutlog.MaxData{
		ExerciseName:     "Squat",
		OrderForExercise: 3,
		Date:             s.day("2021-8-14"),
		TrainingMax:      floatp(130),
		EstimatedMax:     floatp(145),
		TestedMax:        floatp(140),
	}
	added, err := s.Store.AddMaxData(m)
	if s.NoError(err) {
		s.Equal(m, added)
	}

	got, err := s.Store.MaxDataItem("Squat", 3)
	if s.NoError(err) {
		s.Equal(m, got)
	}

	all, err := s.Store.MaxData("Squat")
	if s.NoError(err) {
		s.Equal([]workoutlog.MaxData{m}, all)
	}
}

// TestMaxDataAutoOrder checks ordinal assignment per exercise.
func (s *Suite) TestMaxDataAutoOrder() {
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Squat"}))
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Bench Press"}))

	add := func(name string, order int) int {
		m, err := s.Store.AddMaxData(workoutlog.MaxData{
			ExerciseName:     name,
			OrderForExercise: order,
			Date:             s.day("2021-08-10"),
		})
		s.Require().NoError(err)
		return m.OrderForExercise
	}
	s.Equal(1, add("Squat", 0))
	s.Equal(2, add("Squat", 0))
	s.Equal(4, add("Squat", 4))
	s.Equal(3, add("Squat", 0))
	s.Equal(1, add("Bench Press", 0))

	all, err := s.Store.MaxData("Squat")
	if s.NoError(err) && s.Len(all, 4) {
		for i, m := range all {
			s.Equal(i+1, m.OrderForExercise)
		}
	}
}

// TestMaxDataDuplicate checks the order uniqueness rule.
func (s *Suite) TestMaxDataDuplicate() {
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Squat"}))
	for _, order := range []int{1, 2} {
		_, err := s.Store.AddMaxData(workoutlog.MaxData{
			ExerciseName:     "Squat",
			OrderForExercise: order,
			Date:             s.day("2021-08-10"),
		})
		s.Require().NoError(err)
	}

	_, err := s.Store.AddMaxData(workoutlog.MaxData{
		ExerciseName:     "Squat",
		OrderForExercise: 2,
		Date:             s.day("2021-08-12"),
	})
	s.Equal(workoutlog.ErrMaxDataExists{ExerciseName: "Squat", Order: 2}, err)

	err = s.Store.UpdateMaxData("Squat", 1, workoutlog.MaxDataUpdate{OrderForExercise: intp(2)})
	s.Equal(workoutlog.ErrMaxDataExists{ExerciseName: "Squat", Order: 2}, err)
}

// TestUpdateMaxData checks a partial update.
func (s *Suite) TestUpdateMaxData() {
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Deadlift"}))
	_, err := s.Store.AddMaxData(workoutlog.MaxData{
		ExerciseName: "Deadlift",
		Date:         s.day("2021-08-12"),
		TrainingMax:  floatp(180),
	})
	s.Require().NoError(err)

	err = s.Store.UpdateMaxData("Deadlift", 1, workoutlog.MaxDataUpdate{
		Date:      timep(s.day("2021-08-19")),
		TestedMax: floatp(185),
	})
	s.Require().NoError(err)

	got, err := s.Store.MaxDataItem("Deadlift", 1)
	if s.NoError(err) {
		s.Equal(workoutlog.MaxData{
			ExerciseName:     "Deadlift",
			OrderForExercise: 1,
			Date:             s.day("2021-08-19"),
			TrainingMax:      floatp(180),
			TestedMax:        floatp(185),
		}, got)
	}

	err = s.Store.UpdateMaxData("Deadlift", 2, workoutlog.MaxDataUpdate{TestedMax: floatp(1)})
	s.Equal(workoutlog.ErrNoSuchMaxData{ExerciseName: "Deadlift", Order: 2}, err)
}

// TestDeleteMaxData checks that an entry can be deleted exactly once.
func (s *Suite) TestDeleteMaxData() {
	s.Require().NoError(s.Store.AddExercise(workoutlog.Exercise{Name: "Squat"}))
	_, err := s.Store.AddMaxData(workoutlog.MaxData{ExerciseName: "Squat", Date: s.day("2021-08-10")})
	s.Require().NoError(err)

	s.NoError(s.Store.DeleteMaxData("Squat", 1))
	_, err = s.Store.MaxDataItem("Squat", 1)
	s.Equal(workoutlog.ErrNoSuchMaxData{ExerciseName: "Squat", Order: 1}, err)
	err = s.Store.DeleteMaxData("Squat", 1)
	s.Equal(workoutlog.ErrNoSuchMaxData{ExerciseName: "Squat", Order: 1}, err)

	_, err = s.Store.MaxData("Deadlift")
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Deadlift"}, err)
	_, err = s.Store.AddMaxData(workoutlog.MaxData{ExerciseName: "Deadlift", Date: s.day("2021-08-10")})
	s.Equal(workoutlog.ErrNoSuchExercise{Name: "Deadlift"}, err)
}
