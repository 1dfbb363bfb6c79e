// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import "github.com/diffeo/go-workoutlog/workoutlog"

func (s *memStore) findProgramming(typ string, week int) int {
	for i, p := range s.programming {
		if p.ExerciseType == typ && p.WeekNumber == week {
			return i
		}
	}
	return -1
}

func (s *memStore) WeeklyProgramming() ([]workoutlog.WeeklyProgramming, error) {
	globalLock(s)
	defer globalUnlock(s)

	result := make([]workoutlog.WeeklyProgramming, len(s.programming))
	for i, p := range s.programming {
		result[i] = cloneProgramming(*p)
	}
	return result, nil
}

func (s *memStore) WeeklyProgrammingForExercise(name string) ([]workoutlog.WeeklyProgramming, error) {
	globalLock(s)
	defer globalUnlock(s)

	e, err := s.getExercise(name)
	if err != nil {
		return nil, err
	}
	result := []workoutlog.WeeklyProgramming{}
	if e.typ == nil {
		return result, nil
	}
	for _, p := range s.programming {
		if p.ExerciseType == *e.typ {
			result = append(result, cloneProgramming(*p))
		}
	}
	return result, nil
}

func (s *memStore) WeeklyProgrammingItem(typ string, week int) (workoutlog.WeeklyProgramming, error) {
	globalLock(s)
	defer globalUnlock(s)

	i := s.findProgramming(typ, week)
	if i < 0 {
		return workoutlog.WeeklyProgramming{}, workoutlog.ErrNoSuchWeeklyProgramming{ExerciseType: typ, WeekNumber: week}
	}
	return cloneProgramming(*s.programming[i]), nil
}

func (s *memStore) AddWeeklyProgramming(p workoutlog.WeeklyProgramming) error {
	if err := workoutlog.ValidateWeeklyProgramming(p); err != nil {
		return err
	}

	globalLock(s)
	defer globalUnlock(s)

	if s.findProgramming(p.ExerciseType, p.WeekNumber) >= 0 {
		return workoutlog.ErrWeeklyProgrammingExists{ExerciseType: p.ExerciseType, WeekNumber: p.WeekNumber}
	}
	p = cloneProgramming(p)
	p.Duration = workoutlog.NormalizeDuration(p.Duration)
	s.programming = append(s.programming, &p)
	return nil
}

func (s *memStore) UpdateWeeklyProgramming(typ string, week int, update workoutlog.WeeklyProgrammingUpdate) error {
	globalLock(s)
	defer globalUnlock(s)

	i := s.findProgramming(typ, week)
	if i < 0 {
		return workoutlog.ErrNoSuchWeeklyProgramming{ExerciseType: typ, WeekNumber: week}
	}
	p := cloneProgramming(*s.programming[i])
	update.Apply(&p)
	if err := workoutlog.ValidateWeeklyProgramming(p); err != nil {
		return err
	}
	if j := s.findProgramming(p.ExerciseType, p.WeekNumber); j >= 0 && j != i {
		return workoutlog.ErrWeeklyProgrammingExists{ExerciseType: p.ExerciseType, WeekNumber: p.WeekNumber}
	}
	p.Duration = workoutlog.NormalizeDuration(p.Duration)
	s.programming[i] = &p
	return nil
}

func (s *memStore) DeleteWeeklyProgramming(typ string, week int) error {
	globalLock(s)
	defer globalUnlock(s)

	i := s.findProgramming(typ, week)
	if i < 0 {
		return workoutlog.ErrNoSuchWeeklyProgramming{ExerciseType: typ, WeekNumber: week}
	}
	s.programming = append(s.programming[:i], s.programming[i+1:]...)
	return nil
}
