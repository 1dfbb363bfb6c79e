// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqlstore

import (
	"database/sql"

	"github.com/diffeo/go-workoutlog/workoutlog"
)

var maxDataColumns = []string{
	"max_data.order_for_exercise",
	"max_data.date",
	"max_data.training_max",
	"max_data.estimated_max",
	"max_data.tested_max",
}

func scanMaxData(row rowScanner) (workoutlog.MaxData, error) {
	var (
		m                           workoutlog.MaxData
		date                        sqlTime
		training, estimated, tested sql.NullFloat64
	)
	err := row.Scan(&m.OrderForExercise, &date, &training, &estimated, &tested)
	m.Date = date.Time
	m.TrainingMax = floatPtr(training)
	m.EstimatedMax = floatPtr(estimated)
	m.TestedMax = floatPtr(tested)
	return m, err
}

func maxDataFields(qp *queryParams, m workoutlog.MaxData) fieldList {
	var fields fieldList
	fields.Add(qp, "order_for_exercise", m.OrderForExercise)
	fields.Add(qp, "date", m.Date)
	fields.Add(qp, "training_max", nullFloat(m.TrainingMax))
	fields.Add(qp, "estimated_max", nullFloat(m.EstimatedMax))
	fields.Add(qp, "tested_max", nullFloat(m.TestedMax))
	return fields
}

func (s *Store) listMaxData(tx *sql.Tx, exerciseID int, name string) ([]workoutlog.MaxData, error) {
	params := s.params()
	query := buildSelect(maxDataColumns, []string{"max_data"}, []string{
		"max_data.exercise_id=" + params.Param(exerciseID),
	}) + " ORDER BY max_data.order_for_exercise"
	result := []workoutlog.MaxData{}
	err := queryInTx(tx, query, params, func(rows *sql.Rows) error {
		m, err := scanMaxData(rows)
		if err == nil {
			m.ExerciseName = name
			result = append(result, m)
		}
		return err
	})
	return result, err
}

func (s *Store) getMaxData(tx *sql.Tx, name string, order int) (int, workoutlog.MaxData, error) {
	exerciseID, err := s.exerciseID(tx, name)
	if err != nil {
		return 0, workoutlog.MaxData{}, err
	}
	params := s.params()
	query := buildSelect(maxDataColumns, []string{"max_data"}, []string{
		"max_data.exercise_id=" + params.Param(exerciseID),
		"max_data.order_for_exercise=" + params.Param(order),
	})
	m, err := scanMaxData(tx.QueryRow(query, params.Values...))
	if err == sql.ErrNoRows {
		err = workoutlog.ErrNoSuchMaxData{ExerciseName: name, Order: order}
	}
	m.ExerciseName = name
	return exerciseID, m, err
}

func (s *Store) MaxData(name string) (result []workoutlog.MaxData, err error) {
	err = s.withTx(true, func(tx *sql.Tx) error {
		exerciseID, err := s.exerciseID(tx, name)
		if err != nil {
			return err
		}
		result, err = s.listMaxData(tx, exerciseID, name)
		return err
	})
	return
}

func (s *Store) MaxDataItem(name string, order int) (m workoutlog.MaxData, err error) {
	err = s.withTx(true, func(tx *sql.Tx) error {
		_, m, err = s.getMaxData(tx, name, order)
		return err
	})
	return
}

func (s *Store) AddMaxData(in workoutlog.MaxData) (workoutlog.MaxData, error) {
	in.Date = workoutlog.NormalizeDate(in.Date)
	auto := in.OrderForExercise == 0
	for attempt := 1; ; attempt++ {
		m := in
		err := s.withTx(false, func(tx *sql.Tx) error {
			exerciseID, err := s.exerciseID(tx, m.ExerciseName)
			if err != nil {
				return err
			}
			if auto {
				existing, err := s.listMaxData(tx, exerciseID, m.ExerciseName)
				if err != nil {
					return err
				}
				orders := make([]int, len(existing))
				for i, other := range existing {
					orders[i] = other.OrderForExercise
				}
				m.OrderForExercise = workoutlog.NextOrdinal(orders)
			}
			params := s.params()
			fields := fieldList{}
			fields.Add(params, "exercise_id", exerciseID)
			fields.Fields = append(fields.Fields, maxDataFields(params, m).Fields...)
			_, err = tx.Exec(fields.InsertStatement("max_data"), params.Values...)
			return err
		})
		if auto && attempt < maxOrdinalAttempts && s.isUniqueViolation(err) {
			continue
		}
		if err != nil {
			return workoutlog.MaxData{}, s.uniqueAs(err, workoutlog.ErrMaxDataExists{
				ExerciseName: m.ExerciseName,
				Order:        m.OrderForExercise,
			})
		}
		return m, nil
	}
}

func (s *Store) UpdateMaxData(name string, order int, update workoutlog.MaxDataUpdate) error {
	var m workoutlog.MaxData
	err := s.withTx(false, func(tx *sql.Tx) error {
		var (
			exerciseID int
			err        error
		)
		exerciseID, m, err = s.getMaxData(tx, name, order)
		if err != nil {
			return err
		}
		update.Apply(&m)
		m.Date = workoutlog.NormalizeDate(m.Date)
		params := s.params()
		fields := maxDataFields(params, m)
		query := buildUpdate("max_data", fields.UpdateChanges(), []string{
			"exercise_id=" + params.Param(exerciseID),
			"order_for_exercise=" + params.Param(order),
		})
		_, err = tx.Exec(query, params.Values...)
		return err
	})
	return s.uniqueAs(err, workoutlog.ErrMaxDataExists{ExerciseName: name, Order: m.OrderForExercise})
}

func (s *Store) DeleteMaxData(name string, order int) error {
	return s.withTx(false, func(tx *sql.Tx) error {
		exerciseID, err := s.exerciseID(tx, name)
		if err != nil {
			return err
		}
		params := s.params()
		query := buildDelete("max_data", []string{
			"exercise_id=" + params.Param(exerciseID),
			"order_for_exercise=" + params.Param(order),
		})
		return execExpectingRow(tx, query, params,
			workoutlog.ErrNoSuchMaxData{ExerciseName: name, Order: order})
	})
}
