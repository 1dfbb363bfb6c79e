// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqlstore

import (
	"database/sql"

	"github.com/diffeo/go-workoutlog/workoutlog"
)

var programmingColumns = []string{
	"weekly_programming.week_number",
	"weekly_programming.exercise_type",
	"weekly_programming.intensity",
	"weekly_programming.number_of_sets",
	"weekly_programming.number_of_reps",
	"weekly_programming.reps_in_reserve",
	"weekly_programming.rate_of_perceived_exertion",
	"weekly_programming.duration",
	"weekly_programming.distance",
	"weekly_programming.average_heart_rate",
	"weekly_programming.notes",
}

func scanProgramming(row rowScanner) (workoutlog.WeeklyProgramming, error) {
	var (
		p               workoutlog.WeeklyProgramming
		intensity, rpe  sql.NullFloat64
		sets, reps, rir sql.NullInt64
		duration, avgHR sql.NullInt64
		distance        sql.NullFloat64
		notes           sql.NullString
	)
	err := row.Scan(&p.WeekNumber, &p.ExerciseType, &intensity, &sets, &reps, &rir,
		&rpe, &duration, &distance, &avgHR, &notes)
	p.Intensity = floatPtr(intensity)
	p.NumberOfSets = intPtr(sets)
	p.NumberOfReps = intPtr(reps)
	p.RepsInReserve = intPtr(rir)
	p.RateOfPerceivedExertion = floatPtr(rpe)
	p.Duration = minutesPtr(duration)
	p.Distance = floatPtr(distance)
	p.AverageHeartRate = intPtr(avgHR)
	p.Notes = stringPtr(notes)
	return p, err
}

func programmingFields(qp *queryParams, p workoutlog.WeeklyProgramming) fieldList {
	var fields fieldList
	fields.Add(qp, "week_number", p.WeekNumber)
	fields.Add(qp, "exercise_type", p.ExerciseType)
	fields.Add(qp, "intensity", nullFloat(p.Intensity))
	fields.Add(qp, "number_of_sets", nullInt(p.NumberOfSets))
	fields.Add(qp, "number_of_reps", nullInt(p.NumberOfReps))
	fields.Add(qp, "reps_in_reserve", nullInt(p.RepsInReserve))
	fields.Add(qp, "rate_of_perceived_exertion", nullFloat(p.RateOfPerceivedExertion))
	fields.Add(qp, "duration", nullMinutes(p.Duration))
	fields.Add(qp, "distance", nullFloat(p.Distance))
	fields.Add(qp, "average_heart_rate", nullInt(p.AverageHeartRate))
	fields.Add(qp, "notes", nullString(p.Notes))
	return fields
}

func (s *Store) listProgramming(tx *sql.Tx, conditions []string, params *queryParams) ([]workoutlog.WeeklyProgramming, error) {
	query := buildSelect(programmingColumns, []string{"weekly_programming"}, conditions) +
		" ORDER BY weekly_programming.id"
	result := []workoutlog.WeeklyProgramming{}
	err := queryInTx(tx, query, params, func(rows *sql.Rows) error {
		p, err := scanProgramming(rows)
		if err == nil {
			result = append(result, p)
		}
		return err
	})
	return result, err
}

func (s *Store) getProgramming(tx *sql.Tx, typ string, week int) (workoutlog.WeeklyProgramming, error) {
	params := s.params()
	query := buildSelect(programmingColumns, []string{"weekly_programming"}, []string{
		"weekly_programming.week_number=" + params.Param(week),
		"weekly_programming.exercise_type=" + params.Param(typ),
	})
	p, err := scanProgramming(tx.QueryRow(query, params.Values...))
	if err == sql.ErrNoRows {
		err = workoutlog.ErrNoSuchWeeklyProgramming{ExerciseType: typ, WeekNumber: week}
	}
	return p, err
}

func (s *Store) WeeklyProgramming() (result []workoutlog.WeeklyProgramming, err error) {
	err = s.withTx(true, func(tx *sql.Tx) error {
		result, err = s.listProgramming(tx, nil, s.params())
		return err
	})
	return
}

func (s *Store) WeeklyProgrammingForExercise(name string) (result []workoutlog.WeeklyProgramming, err error) {
	err = s.withTx(true, func(tx *sql.Tx) error {
		e, err := s.getExercise(tx, name)
		if err != nil {
			return err
		}
		if e.Type == nil {
			result = []workoutlog.WeeklyProgramming{}
			return nil
		}
		params := s.params()
		result, err = s.listProgramming(tx, []string{
			"weekly_programming.exercise_type=" + params.Param(*e.Type),
		}, params)
		return err
	})
	return
}

func (s *Store) WeeklyProgrammingItem(typ string, week int) (p workoutlog.WeeklyProgramming, err error) {
	err = s.withTx(true, func(tx *sql.Tx) error {
		p, err = s.getProgramming(tx, typ, week)
		return err
	})
	return
}

func (s *Store) AddWeeklyProgramming(p workoutlog.WeeklyProgramming) error {
	if err := workoutlog.ValidateWeeklyProgramming(p); err != nil {
		return err
	}
	p.Duration = workoutlog.NormalizeDuration(p.Duration)
	err := s.withTx(false, func(tx *sql.Tx) error {
		params := s.params()
		fields := programmingFields(params, p)
		_, err := tx.Exec(fields.InsertStatement("weekly_programming"), params.Values...)
		return err
	})
	return s.uniqueAs(err, workoutlog.ErrWeeklyProgrammingExists{
		ExerciseType: p.ExerciseType,
		WeekNumber:   p.WeekNumber,
	})
}

func (s *Store) UpdateWeeklyProgramming(typ string, week int, update workoutlog.WeeklyProgrammingUpdate) error {
	var p workoutlog.WeeklyProgramming
	err := s.withTx(false, func(tx *sql.Tx) error {
		var err error
		p, err = s.getProgramming(tx, typ, week)
		if err != nil {
			return err
		}
		update.Apply(&p)
		if err = workoutlog.ValidateWeeklyProgramming(p); err != nil {
			return err
		}
		p.Duration = workoutlog.NormalizeDuration(p.Duration)
		params := s.params()
		fields := programmingFields(params, p)
		query := buildUpdate("weekly_programming", fields.UpdateChanges(), []string{
			"week_number=" + params.Param(week),
			"exercise_type=" + params.Param(typ),
		})
		_, err = tx.Exec(query, params.Values...)
		return err
	})
	return s.uniqueAs(err, workoutlog.ErrWeeklyProgrammingExists{
		ExerciseType: p.ExerciseType,
		WeekNumber:   p.WeekNumber,
	})
}

func (s *Store) DeleteWeeklyProgramming(typ string, week int) error {
	return s.withTx(false, func(tx *sql.Tx) error {
		params := s.params()
		query := buildDelete("weekly_programming", []string{
			"week_number=" + params.Param(week),
			"exercise_type=" + params.Param(typ),
		})
		return execExpectingRow(tx, query, params,
			workoutlog.ErrNoSuchWeeklyProgramming{ExerciseType: typ, WeekNumber: week})
	})
}
