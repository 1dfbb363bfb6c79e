// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import "github.com/diffeo/go-workoutlog/workoutlog"

func (s *memStore) Exercises() ([]workoutlog.Exercise, error) {
	globalLock(s)
	defer globalUnlock(s)

	result := make([]workoutlog.Exercise, len(s.exercises))
	for i, e := range s.exercises {
		result[i] = e.public()
	}
	return result, nil
}

func (s *memStore) Exercise(name string) (workoutlog.Exercise, error) {
	globalLock(s)
	defer globalUnlock(s)

	e, err := s.getExercise(name)
	if err != nil {
		return workoutlog.Exercise{}, err
	}
	return e.public(), nil
}

// createExercise adds a new exercise to the store.  The caller must
// hold the global lock and have validated e.
func (s *memStore) createExercise(e workoutlog.Exercise) (*exercise, error) {
	if s.exercisesByName[e.Name] != nil {
		return nil, workoutlog.ErrExerciseExists{Name: e.Name}
	}
	s.lastExerciseID++
	stored := &exercise{
		id:   s.lastExerciseID,
		name: e.Name,
		typ:  clone(e.Type),
	}
	s.exercises = append(s.exercises, stored)
	s.exercisesByName[e.Name] = stored
	return stored, nil
}

func (s *memStore) AddExercise(e workoutlog.Exercise) error {
	if err := workoutlog.ValidateExercise(e); err != nil {
		return err
	}

	globalLock(s)
	defer globalUnlock(s)

	_, err := s.createExercise(e)
	return err
}

func (s *memStore) UpdateExercise(name string, update workoutlog.ExerciseUpdate) error {
	globalLock(s)
	defer globalUnlock(s)

	stored, err := s.getExercise(name)
	if err != nil {
		return err
	}
	e := stored.public()
	update.Apply(&e)
	if err = workoutlog.ValidateExercise(e); err != nil {
		return err
	}
	if e.Name != stored.name {
		if s.exercisesByName[e.Name] != nil {
			return workoutlog.ErrExerciseExists{Name: e.Name}
		}
		delete(s.exercisesByName, stored.name)
		s.exercisesByName[e.Name] = stored
		stored.name = e.Name
	}
	stored.typ = e.Type
	return nil
}

func (s *memStore) DeleteExercise(name string) error {
	globalLock(s)
	defer globalUnlock(s)

	e, err := s.getExercise(name)
	if err != nil {
		return err
	}
	s.dropSets(func(st *set) bool { return st.exercise == e })
	for _, w := range s.workouts {
		w.removeExercise(e)
	}
	delete(s.exercisesByName, name)
	for i, other := range s.exercises {
		if other == e {
			s.exercises = append(s.exercises[:i], s.exercises[i+1:]...)
			break
		}
	}
	return nil
}

func (w *workout) removeExercise(e *exercise) bool {
	for i, we := range w.exercises {
		if we == e {
			w.exercises = append(w.exercises[:i], w.exercises[i+1:]...)
			return true
		}
	}
	return false
}

func (s *memStore) WorkoutExercises(workoutID int) ([]workoutlog.Exercise, error) {
	globalLock(s)
	defer globalUnlock(s)

	w, err := s.getWorkout(workoutID)
	if err != nil {
		return nil, err
	}
	result := make([]workoutlog.Exercise, len(w.exercises))
	for i, e := range w.exercises {
		result[i] = e.public()
	}
	return result, nil
}

func (s *memStore) WorkoutExercise(workoutID int, name string) (workoutlog.Exercise, error) {
	globalLock(s)
	defer globalUnlock(s)

	w, e, err := s.getBoth(workoutID, name)
	if err != nil {
		return workoutlog.Exercise{}, err
	}
	if !w.hasExercise(e) {
		return workoutlog.Exercise{}, workoutlog.ErrExerciseNotInWorkout{WorkoutID: workoutID, Name: name}
	}
	return e.public(), nil
}

func (s *memStore) AddWorkoutExercise(workoutID int, e workoutlog.Exercise) error {
	if err := workoutlog.ValidateExercise(e); err != nil {
		return err
	}

	globalLock(s)
	defer globalUnlock(s)

	w, err := s.getWorkout(workoutID)
	if err != nil {
		return err
	}
	stored := s.exercisesByName[e.Name]
	if stored == nil {
		stored, err = s.createExercise(e)
		if err != nil {
			return err
		}
	} else if w.hasExercise(stored) {
		return workoutlog.ErrExerciseInWorkout{WorkoutID: workoutID, Name: e.Name}
	}
	w.exercises = append(w.exercises, stored)
	return nil
}

func (s *memStore) RemoveWorkoutExercise(workoutID int, name string) error {
	globalLock(s)
	defer globalUnlock(s)

	w, e, err := s.getBoth(workoutID, name)
	if err != nil {
		return err
	}
	if !w.removeExercise(e) {
		return workoutlog.ErrExerciseNotInWorkout{WorkoutID: workoutID, Name: name}
	}
	s.dropSets(func(st *set) bool { return st.workout == w && st.exercise == e })
	return nil
}
