// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqlstore

import (
	"database/sql"

	"github.com/diffeo/go-workoutlog/workoutlog"
)

var exerciseColumns = []string{"exercise.name", "exercise.type"}

func scanExercise(row rowScanner) (workoutlog.Exercise, error) {
	var (
		e   workoutlog.Exercise
		typ sql.NullString
	)
	err := row.Scan(&e.Name, &typ)
	e.Type = stringPtr(typ)
	return e, err
}

// exerciseID finds the internal ID of an exercise by name.
func (s *Store) exerciseID(tx *sql.Tx, name string) (int, error) {
	params := s.params()
	query := buildSelect([]string{"exercise.id"}, []string{"exercise"}, []string{
		"exercise.name=" + params.Param(name),
	})
	var id int
	err := tx.QueryRow(query, params.Values...).Scan(&id)
	if err == sql.ErrNoRows {
		err = workoutlog.ErrNoSuchExercise{Name: name}
	}
	return id, err
}

// workoutAndExercise checks that a workout exists and finds an
// exercise, in that order.
func (s *Store) workoutAndExercise(tx *sql.Tx, workoutID int, name string) (int, error) {
	if err := s.checkWorkout(tx, workoutID); err != nil {
		return 0, err
	}
	return s.exerciseID(tx, name)
}

// isMember says whether an exercise is attached to a workout.
func (s *Store) isMember(tx *sql.Tx, workoutID, exerciseID int) (bool, error) {
	params := s.params()
	query := buildSelect([]string{"workout_exercise.id"}, []string{"workout_exercise"}, []string{
		"workout_exercise.workout_id=" + params.Param(workoutID),
		"workout_exercise.exercise_id=" + params.Param(exerciseID),
	})
	var id int
	err := tx.QueryRow(query, params.Values...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

func (s *Store) Exercises() ([]workoutlog.Exercise, error) {
	query := buildSelect(exerciseColumns, []string{"exercise"}, nil) + " ORDER BY exercise.id"
	result := []workoutlog.Exercise{}
	err := s.queryAndScan(query, s.params(), func(rows *sql.Rows) error {
		e, err := scanExercise(rows)
		if err == nil {
			result = append(result, e)
		}
		return err
	})
	return result, err
}

func (s *Store) getExercise(tx *sql.Tx, name string) (workoutlog.Exercise, error) {
	params := s.params()
	query := buildSelect(exerciseColumns, []string{"exercise"}, []string{
		"exercise.name=" + params.Param(name),
	})
	e, err := scanExercise(tx.QueryRow(query, params.Values...))
	if err == sql.ErrNoRows {
		err = workoutlog.ErrNoSuchExercise{Name: name}
	}
	return e, err
}

func (s *Store) Exercise(name string) (e workoutlog.Exercise, err error) {
	err = s.withTx(true, func(tx *sql.Tx) error {
		e, err = s.getExercise(tx, name)
		return err
	})
	return
}

// insertExercise creates an exercise row and returns its ID.
func (s *Store) insertExercise(tx *sql.Tx, e workoutlog.Exercise) (int, error) {
	params := s.params()
	var fields fieldList
	fields.Add(params, "name", e.Name)
	fields.Add(params, "type", nullString(e.Type))
	query := fields.InsertStatement("exercise") + " RETURNING id"
	var id int
	err := tx.QueryRow(query, params.Values...).Scan(&id)
	return id, s.uniqueAs(err, workoutlog.ErrExerciseExists{Name: e.Name})
}

func (s *Store) AddExercise(e workoutlog.Exercise) error {
	if err := workoutlog.ValidateExercise(e); err != nil {
		return err
	}
	err := s.withTx(false, func(tx *sql.Tx) error {
		_, err := s.insertExercise(tx, e)
		return err
	})
	return s.uniqueAs(err, workoutlog.ErrExerciseExists{Name: e.Name})
}

func (s *Store) UpdateExercise(name string, update workoutlog.ExerciseUpdate) error {
	var e workoutlog.Exercise
	err := s.withTx(false, func(tx *sql.Tx) error {
		var err error
		e, err = s.getExercise(tx, name)
		if err != nil {
			return err
		}
		update.Apply(&e)
		if err = workoutlog.ValidateExercise(e); err != nil {
			return err
		}
		params := s.params()
		var fields fieldList
		fields.Add(params, "name", e.Name)
		fields.Add(params, "type", nullString(e.Type))
		query := buildUpdate("exercise", fields.UpdateChanges(), []string{
			"name=" + params.Param(name),
		})
		_, err = tx.Exec(query, params.Values...)
		return err
	})
	return s.uniqueAs(err, workoutlog.ErrExerciseExists{Name: e.Name})
}

func (s *Store) DeleteExercise(name string) error {
	return s.withTx(false, func(tx *sql.Tx) error {
		params := s.params()
		query := buildDelete("exercise", []string{"name=" + params.Param(name)})
		return execExpectingRow(tx, query, params, workoutlog.ErrNoSuchExercise{Name: name})
	})
}

func (s *Store) WorkoutExercises(workoutID int) ([]workoutlog.Exercise, error) {
	var result []workoutlog.Exercise
	err := s.withTx(true, func(tx *sql.Tx) error {
		result = []workoutlog.Exercise{}
		if err := s.checkWorkout(tx, workoutID); err != nil {
			return err
		}
		params := s.params()
		query := buildSelect(exerciseColumns,
			[]string{"exercise", "workout_exercise"},
			[]string{
				"workout_exercise.exercise_id=exercise.id",
				"workout_exercise.workout_id=" + params.Param(workoutID),
			}) + " ORDER BY workout_exercise.id"
		return queryInTx(tx, query, params, func(rows *sql.Rows) error {
			e, err := scanExercise(rows)
			if err == nil {
				result = append(result, e)
			}
			return err
		})
	})
	return result, err
}

func (s *Store) WorkoutExercise(workoutID int, name string) (e workoutlog.Exercise, err error) {
	err = s.withTx(true, func(tx *sql.Tx) error {
		if err := s.checkWorkout(tx, workoutID); err != nil {
			return err
		}
		e, err = s.getExercise(tx, name)
		if err != nil {
			return err
		}
		exerciseID, err := s.exerciseID(tx, name)
		if err != nil {
			return err
		}
		member, err := s.isMember(tx, workoutID, exerciseID)
		if err == nil && !member {
			err = workoutlog.ErrExerciseNotInWorkout{WorkoutID: workoutID, Name: name}
		}
		return err
	})
	return
}

func (s *Store) AddWorkoutExercise(workoutID int, e workoutlog.Exercise) error {
	if err := workoutlog.ValidateExercise(e); err != nil {
		return err
	}
	err := s.withTx(false, func(tx *sql.Tx) error {
		if err := s.checkWorkout(tx, workoutID); err != nil {
			return err
		}
		exerciseID, err := s.exerciseID(tx, e.Name)
		if _, missing := err.(workoutlog.ErrNoSuchExercise); missing {
			exerciseID, err = s.insertExercise(tx, e)
		}
		if err != nil {
			return err
		}
		params := s.params()
		var fields fieldList
		fields.Add(params, "workout_id", workoutID)
		fields.Add(params, "exercise_id", exerciseID)
		_, err = tx.Exec(fields.InsertStatement("workout_exercise"), params.Values...)
		return err
	})
	return s.uniqueAs(err, workoutlog.ErrExerciseInWorkout{WorkoutID: workoutID, Name: e.Name})
}

func (s *Store) RemoveWorkoutExercise(workoutID int, name string) error {
	return s.withTx(false, func(tx *sql.Tx) error {
		exerciseID, err := s.workoutAndExercise(tx, workoutID, name)
		if err != nil {
			return err
		}
		conditions := func(params *queryParams) []string {
			return []string{
				"workout_id=" + params.Param(workoutID),
				"exercise_id=" + params.Param(exerciseID),
			}
		}
		params := s.params()
		err = execExpectingRow(tx, buildDelete("workout_exercise", conditions(params)), params,
			workoutlog.ErrExerciseNotInWorkout{WorkoutID: workoutID, Name: name})
		if err != nil {
			return err
		}
		params = s.params()
		_, err = tx.Exec(buildDelete("workout_set", conditions(params)), params.Values...)
		return err
	})
}
