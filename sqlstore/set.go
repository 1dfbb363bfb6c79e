// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqlstore

import (
	"database/sql"

	"github.com/diffeo/go-workoutlog/workoutlog"
)

// maxOrdinalAttempts bounds how many times an automatically numbered
// insert is retried after losing a race for its ordinal.
const maxOrdinalAttempts = 5

var setColumns = []string{
	"workout_set.id",
	"workout_set.order_in_workout",
	"workout_set.weight",
	"workout_set.number_of_reps",
	"workout_set.reps_in_reserve",
	"workout_set.rate_of_perceived_exertion",
	"workout_set.duration",
	"workout_set.distance",
}

// scanSet reads a set row, returning its internal ID.  The caller
// fills in the workout and exercise.
func scanSet(row rowScanner) (int, workoutlog.Set, error) {
	var (
		id        int
		set       workoutlog.Set
		weight    sql.NullFloat64
		reps, rir sql.NullInt64
		rpe       sql.NullFloat64
		duration  sql.NullInt64
		distance  sql.NullFloat64
	)
	err := row.Scan(&id, &set.OrderInWorkout, &weight, &reps, &rir, &rpe, &duration, &distance)
	set.Weight = floatPtr(weight)
	set.NumberOfReps = intPtr(reps)
	set.RepsInReserve = intPtr(rir)
	set.RateOfPerceivedExertion = floatPtr(rpe)
	set.Duration = minutesPtr(duration)
	set.Distance = floatPtr(distance)
	return id, set, err
}

func setFields(qp *queryParams, set workoutlog.Set) fieldList {
	var fields fieldList
	fields.Add(qp, "order_in_workout", set.OrderInWorkout)
	fields.Add(qp, "weight", nullFloat(set.Weight))
	fields.Add(qp, "number_of_reps", nullInt(set.NumberOfReps))
	fields.Add(qp, "reps_in_reserve", nullInt(set.RepsInReserve))
	fields.Add(qp, "rate_of_perceived_exertion", nullFloat(set.RateOfPerceivedExertion))
	fields.Add(qp, "duration", nullMinutes(set.Duration))
	fields.Add(qp, "distance", nullFloat(set.Distance))
	return fields
}

// listSets returns the sets of one exercise in one workout, by order.
func (s *Store) listSets(tx *sql.Tx, workoutID int, name string) ([]workoutlog.Set, error) {
	exerciseID, err := s.workoutAndExercise(tx, workoutID, name)
	if err != nil {
		return nil, err
	}
	params := s.params()
	query := buildSelect(setColumns, []string{"workout_set"}, []string{
		"workout_set.workout_id=" + params.Param(workoutID),
		"workout_set.exercise_id=" + params.Param(exerciseID),
	}) + " ORDER BY workout_set.order_in_workout"
	result := []workoutlog.Set{}
	err = queryInTx(tx, query, params, func(rows *sql.Rows) error {
		_, set, err := scanSet(rows)
		if err == nil {
			set.WorkoutID = workoutID
			set.ExerciseName = name
			result = append(result, set)
		}
		return err
	})
	return result, err
}

// getSet loads one set and its internal ID.
func (s *Store) getSet(tx *sql.Tx, workoutID int, name string, order int) (int, workoutlog.Set, error) {
	exerciseID, err := s.workoutAndExercise(tx, workoutID, name)
	if err != nil {
		return 0, workoutlog.Set{}, err
	}
	params := s.params()
	query := buildSelect(setColumns, []string{"workout_set"}, []string{
		"workout_set.workout_id=" + params.Param(workoutID),
		"workout_set.exercise_id=" + params.Param(exerciseID),
		"workout_set.order_in_workout=" + params.Param(order),
	})
	id, set, err := scanSet(tx.QueryRow(query, params.Values...))
	if err == sql.ErrNoRows {
		err = workoutlog.ErrNoSuchSet{WorkoutID: workoutID, ExerciseName: name, Order: order}
	}
	set.WorkoutID = workoutID
	set.ExerciseName = name
	return id, set, err
}

func (s *Store) Sets(workoutID int, name string) (result []workoutlog.Set, err error) {
	err = s.withTx(true, func(tx *sql.Tx) error {
		result, err = s.listSets(tx, workoutID, name)
		return err
	})
	return
}

func (s *Store) Set(workoutID int, name string, order int) (set workoutlog.Set, err error) {
	err = s.withTx(true, func(tx *sql.Tx) error {
		_, set, err = s.getSet(tx, workoutID, name, order)
		return err
	})
	return
}

func (s *Store) AddSet(in workoutlog.Set) (workoutlog.Set, error) {
	in.Duration = workoutlog.NormalizeDuration(in.Duration)
	auto := in.OrderInWorkout == 0
	for attempt := 1; ; attempt++ {
		set := in
		err := s.withTx(false, func(tx *sql.Tx) error {
			existing, err := s.listSets(tx, set.WorkoutID, set.ExerciseName)
			if err != nil {
				return err
			}
			if auto {
				orders := make([]int, len(existing))
				for i, other := range existing {
					orders[i] = other.OrderInWorkout
				}
				set.OrderInWorkout = workoutlog.NextOrdinal(orders)
			}
			exerciseID, err := s.exerciseID(tx, set.ExerciseName)
			if err != nil {
				return err
			}
			params := s.params()
			fields := fieldList{}
			fields.Add(params, "workout_id", set.WorkoutID)
			fields.Add(params, "exercise_id", exerciseID)
			fields.Fields = append(fields.Fields, setFields(params, set).Fields...)
			_, err = tx.Exec(fields.InsertStatement("workout_set"), params.Values...)
			return err
		})
		if auto && attempt < maxOrdinalAttempts && s.isUniqueViolation(err) {
			continue
		}
		if err != nil {
			return workoutlog.Set{}, s.uniqueAs(err, workoutlog.ErrSetExists{
				WorkoutID:    set.WorkoutID,
				ExerciseName: set.ExerciseName,
				Order:        set.OrderInWorkout,
			})
		}
		return set, nil
	}
}

func (s *Store) UpdateSet(workoutID int, name string, order int, update workoutlog.SetUpdate) error {
	var set workoutlog.Set
	err := s.withTx(false, func(tx *sql.Tx) error {
		var (
			id  int
			err error
		)
		id, set, err = s.getSet(tx, workoutID, name, order)
		if err != nil {
			return err
		}
		update.Apply(&set)
		set.Duration = workoutlog.NormalizeDuration(set.Duration)
		params := s.params()
		fields := setFields(params, set)
		query := buildUpdate("workout_set", fields.UpdateChanges(), []string{
			"id=" + params.Param(id),
		})
		_, err = tx.Exec(query, params.Values...)
		return err
	})
	return s.uniqueAs(err, workoutlog.ErrSetExists{
		WorkoutID:    workoutID,
		ExerciseName: name,
		Order:        set.OrderInWorkout,
	})
}

func (s *Store) DeleteSet(workoutID int, name string, order int) error {
	return s.withTx(false, func(tx *sql.Tx) error {
		exerciseID, err := s.workoutAndExercise(tx, workoutID, name)
		if err != nil {
			return err
		}
		params := s.params()
		query := buildDelete("workout_set", []string{
			"workout_id=" + params.Param(workoutID),
			"exercise_id=" + params.Param(exerciseID),
			"order_in_workout=" + params.Param(order),
		})
		return execExpectingRow(tx, query, params,
			workoutlog.ErrNoSuchSet{WorkoutID: workoutID, ExerciseName: name, Order: order})
	})
}
