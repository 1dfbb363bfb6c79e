// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import "github.com/diffeo/go-workoutlog/workoutlog"

func (s *memStore) Workouts() ([]workoutlog.Workout, error) {
	globalLock(s)
	defer globalUnlock(s)

	result := make([]workoutlog.Workout, len(s.workouts))
	for i, w := range s.workouts {
		result[i] = w.public()
	}
	return result, nil
}

func (s *memStore) Workout(id int) (workoutlog.Workout, error) {
	globalLock(s)
	defer globalUnlock(s)

	w, err := s.getWorkout(id)
	if err != nil {
		return workoutlog.Workout{}, err
	}
	return w.public(), nil
}

func (s *memStore) WorkoutsByExercise(name string) ([]workoutlog.Workout, error) {
	globalLock(s)
	defer globalUnlock(s)

	e, err := s.getExercise(name)
	if err != nil {
		return nil, err
	}
	result := []workoutlog.Workout{}
	for _, w := range s.workouts {
		if w.hasExercise(e) {
			result = append(result, w.public())
		}
	}
	return result, nil
}

// checkDateTime returns an error if some workout other than self
// already has w's date and time.
func (s *memStore) checkDateTime(self *workout, w workoutlog.Workout) error {
	for _, other := range s.workouts {
		if other != self && other.DateTime.Equal(w.DateTime) {
			return workoutlog.ErrWorkoutExists{DateTime: workoutlog.FormatDateTime(w.DateTime)}
		}
	}
	return nil
}

func normalizeWorkout(w workoutlog.Workout) workoutlog.Workout {
	w = cloneWorkout(w)
	w.DateTime = workoutlog.NormalizeDateTime(w.DateTime)
	w.Duration = workoutlog.NormalizeDuration(w.Duration)
	return w
}

func (s *memStore) AddWorkout(w workoutlog.Workout) (workoutlog.Workout, error) {
	if err := workoutlog.ValidateWorkout(w); err != nil {
		return workoutlog.Workout{}, err
	}
	w = normalizeWorkout(w)

	globalLock(s)
	defer globalUnlock(s)

	if err := s.checkDateTime(nil, w); err != nil {
		return workoutlog.Workout{}, err
	}
	s.lastWorkoutID++
	w.ID = s.lastWorkoutID
	stored := &workout{Workout: w}
	s.workouts = append(s.workouts, stored)
	s.workoutsByID[w.ID] = stored
	return stored.public(), nil
}

func (s *memStore) UpdateWorkout(id int, update workoutlog.WorkoutUpdate) error {
	globalLock(s)
	defer globalUnlock(s)

	stored, err := s.getWorkout(id)
	if err != nil {
		return err
	}
	w := stored.public()
	update.Apply(&w)
	if err = workoutlog.ValidateWorkout(w); err != nil {
		return err
	}
	w = normalizeWorkout(w)
	if err = s.checkDateTime(stored, w); err != nil {
		return err
	}
	stored.Workout = w
	return nil
}

func (s *memStore) DeleteWorkout(id int) error {
	globalLock(s)
	defer globalUnlock(s)

	w, err := s.getWorkout(id)
	if err != nil {
		return err
	}
	s.dropSets(func(st *set) bool { return st.workout == w })
	delete(s.workoutsByID, id)
	for i, other := range s.workouts {
		if other == w {
			s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
			break
		}
	}
	return nil
}
