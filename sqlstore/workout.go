// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqlstore

import (
	"database/sql"

	"github.com/diffeo/go-workoutlog/workoutlog"
)

// rowScanner is the common part of *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

var workoutColumns = []string{
	"workout.id",
	"workout.date_time",
	"workout.duration",
	"workout.body_weight",
	"workout.average_heart_rate",
	"workout.max_heart_rate",
	"workout.notes",
}

func scanWorkout(row rowScanner) (workoutlog.Workout, error) {
	var (
		w            workoutlog.Workout
		dateTime     sqlTime
		duration     sql.NullInt64
		bodyWeight   sql.NullFloat64
		avgHR, maxHR sql.NullInt64
		notes        sql.NullString
	)
	err := row.Scan(&w.ID, &dateTime, &duration, &bodyWeight, &avgHR, &maxHR, &notes)
	if err != nil {
		return w, err
	}
	w.DateTime = dateTime.Time
	w.Duration = minutesPtr(duration)
	w.BodyWeight = floatPtr(bodyWeight)
	w.AverageHeartRate = intPtr(avgHR)
	w.MaxHeartRate = intPtr(maxHR)
	w.Notes = stringPtr(notes)
	return w, nil
}

// workoutFields lists every mutable workout column.
func workoutFields(qp *queryParams, w workoutlog.Workout) fieldList {
	var fields fieldList
	fields.Add(qp, "date_time", w.DateTime)
	fields.Add(qp, "duration", nullMinutes(w.Duration))
	fields.Add(qp, "body_weight", nullFloat(w.BodyWeight))
	fields.Add(qp, "average_heart_rate", nullInt(w.AverageHeartRate))
	fields.Add(qp, "max_heart_rate", nullInt(w.MaxHeartRate))
	fields.Add(qp, "notes", nullString(w.Notes))
	return fields
}

// getWorkout loads one workout inside a transaction.
func (s *Store) getWorkout(tx *sql.Tx, id int) (workoutlog.Workout, error) {
	params := s.params()
	query := buildSelect(workoutColumns, []string{"workout"}, []string{
		"workout.id=" + params.Param(id),
	})
	w, err := scanWorkout(tx.QueryRow(query, params.Values...))
	if err == sql.ErrNoRows {
		err = workoutlog.ErrNoSuchWorkout{ID: id}
	}
	return w, err
}

// checkWorkout returns ErrNoSuchWorkout if id does not exist.
func (s *Store) checkWorkout(tx *sql.Tx, id int) error {
	params := s.params()
	query := buildSelect([]string{"workout.id"}, []string{"workout"}, []string{
		"workout.id=" + params.Param(id),
	})
	var found int
	err := tx.QueryRow(query, params.Values...).Scan(&found)
	if err == sql.ErrNoRows {
		err = workoutlog.ErrNoSuchWorkout{ID: id}
	}
	return err
}

func (s *Store) Workouts() ([]workoutlog.Workout, error) {
	query := buildSelect(workoutColumns, []string{"workout"}, nil) + " ORDER BY workout.id"
	result := []workoutlog.Workout{}
	err := s.queryAndScan(query, s.params(), func(rows *sql.Rows) error {
		w, err := scanWorkout(rows)
		if err == nil {
			result = append(result, w)
		}
		return err
	})
	return result, err
}

func (s *Store) Workout(id int) (w workoutlog.Workout, err error) {
	err = s.withTx(true, func(tx *sql.Tx) error {
		w, err = s.getWorkout(tx, id)
		return err
	})
	return
}

func (s *Store) WorkoutsByExercise(name string) ([]workoutlog.Workout, error) {
	var result []workoutlog.Workout
	err := s.withTx(true, func(tx *sql.Tx) error {
		result = []workoutlog.Workout{}
		exerciseID, err := s.exerciseID(tx, name)
		if err != nil {
			return err
		}
		params := s.params()
		query := buildSelect(workoutColumns,
			[]string{"workout", "workout_exercise"},
			[]string{
				"workout_exercise.workout_id=workout.id",
				"workout_exercise.exercise_id=" + params.Param(exerciseID),
			}) + " ORDER BY workout.id"
		return queryInTx(tx, query, params, func(rows *sql.Rows) error {
			w, err := scanWorkout(rows)
			if err == nil {
				result = append(result, w)
			}
			return err
		})
	})
	return result, err
}

func normalizeWorkout(w workoutlog.Workout) workoutlog.Workout {
	w.DateTime = workoutlog.NormalizeDateTime(w.DateTime)
	w.Duration = workoutlog.NormalizeDuration(w.Duration)
	return w
}

func (s *Store) AddWorkout(w workoutlog.Workout) (workoutlog.Workout, error) {
	if err := workoutlog.ValidateWorkout(w); err != nil {
		return workoutlog.Workout{}, err
	}
	w = normalizeWorkout(w)
	err := s.withTx(false, func(tx *sql.Tx) error {
		params := s.params()
		fields := workoutFields(params, w)
		query := fields.InsertStatement("workout") + " RETURNING id"
		return tx.QueryRow(query, params.Values...).Scan(&w.ID)
	})
	if err != nil {
		err = s.uniqueAs(err, workoutlog.ErrWorkoutExists{
			DateTime: workoutlog.FormatDateTime(w.DateTime),
		})
		return workoutlog.Workout{}, err
	}
	return w, nil
}

func (s *Store) UpdateWorkout(id int, update workoutlog.WorkoutUpdate) error {
	var w workoutlog.Workout
	err := s.withTx(false, func(tx *sql.Tx) error {
		var err error
		w, err = s.getWorkout(tx, id)
		if err != nil {
			return err
		}
		update.Apply(&w)
		if err = workoutlog.ValidateWorkout(w); err != nil {
			return err
		}
		w = normalizeWorkout(w)
		params := s.params()
		fields := workoutFields(params, w)
		query := buildUpdate("workout", fields.UpdateChanges(), []string{
			"id=" + params.Param(id),
		})
		_, err = tx.Exec(query, params.Values...)
		return err
	})
	return s.uniqueAs(err, workoutlog.ErrWorkoutExists{
		DateTime: workoutlog.FormatDateTime(w.DateTime),
	})
}

func (s *Store) DeleteWorkout(id int) error {
	return s.withTx(false, func(tx *sql.Tx) error {
		params := s.params()
		query := buildDelete("workout", []string{"id=" + params.Param(id)})
		return execExpectingRow(tx, query, params, workoutlog.ErrNoSuchWorkout{ID: id})
	})
}
