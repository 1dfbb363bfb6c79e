// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import "github.com/diffeo/go-workoutlog/workoutlog"

func (s *memStore) Sets(workoutID int, name string) ([]workoutlog.Set, error) {
	globalLock(s)
	defer globalUnlock(s)

	w, e, err := s.getBoth(workoutID, name)
	if err != nil {
		return nil, err
	}
	stored := s.setsOf(w, e)
	result := make([]workoutlog.Set, len(stored))
	for i, st := range stored {
		result[i] = st.public()
	}
	return result, nil
}

// getSet finds a single stored set.
func (s *memStore) getSet(workoutID int, name string, order int) (*set, error) {
	w, e, err := s.getBoth(workoutID, name)
	if err != nil {
		return nil, err
	}
	for _, st := range s.setsOf(w, e) {
		if st.OrderInWorkout == order {
			return st, nil
		}
	}
	return nil, workoutlog.ErrNoSuchSet{WorkoutID: workoutID, ExerciseName: name, Order: order}
}

func (s *memStore) Set(workoutID int, name string, order int) (workoutlog.Set, error) {
	globalLock(s)
	defer globalUnlock(s)

	st, err := s.getSet(workoutID, name, order)
	if err != nil {
		return workoutlog.Set{}, err
	}
	return st.public(), nil
}

func (s *memStore) AddSet(in workoutlog.Set) (workoutlog.Set, error) {
	globalLock(s)
	defer globalUnlock(s)

	w, e, err := s.getBoth(in.WorkoutID, in.ExerciseName)
	if err != nil {
		return workoutlog.Set{}, err
	}
	existing := s.setsOf(w, e)
	orders := make([]int, len(existing))
	for i, st := range existing {
		orders[i] = st.OrderInWorkout
	}
	if in.OrderInWorkout == 0 {
		in.OrderInWorkout = workoutlog.NextOrdinal(orders)
	}
	for _, order := range orders {
		if order == in.OrderInWorkout {
			return workoutlog.Set{}, workoutlog.ErrSetExists{
				WorkoutID:    in.WorkoutID,
				ExerciseName: in.ExerciseName,
				Order:        in.OrderInWorkout,
			}
		}
	}
	in = cloneSet(in)
	in.Duration = workoutlog.NormalizeDuration(in.Duration)
	stored := &set{workout: w, exercise: e, Set: in}
	s.sets = append(s.sets, stored)
	return stored.public(), nil
}

func (s *memStore) UpdateSet(workoutID int, name string, order int, update workoutlog.SetUpdate) error {
	globalLock(s)
	defer globalUnlock(s)

	stored, err := s.getSet(workoutID, name, order)
	if err != nil {
		return err
	}
	st := stored.public()
	update.Apply(&st)
	if st.OrderInWorkout != order {
		for _, other := range s.setsOf(stored.workout, stored.exercise) {
			if other.OrderInWorkout == st.OrderInWorkout {
				return workoutlog.ErrSetExists{
					WorkoutID:    workoutID,
					ExerciseName: name,
					Order:        st.OrderInWorkout,
				}
			}
		}
	}
	st.Duration = workoutlog.NormalizeDuration(st.Duration)
	stored.Set = st
	return nil
}

func (s *memStore) DeleteSet(workoutID int, name string, order int) error {
	globalLock(s)
	defer globalUnlock(s)

	stored, err := s.getSet(workoutID, name, order)
	if err != nil {
		return err
	}
	s.dropSets(func(st *set) bool { return st == stored })
	return nil
}
