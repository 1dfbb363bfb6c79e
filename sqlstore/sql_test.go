// Copyright 2016-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqlstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildSelect(t *testing.T) {
	qp := &queryParams{placeholder: DollarPlaceholder}
	query := buildSelect([]string{"workout.id", "workout.notes"},
		[]string{"workout", "workout_exercise"},
		[]string{
			"workout_exercise.workout_id=workout.id",
			"workout_exercise.exercise_id=" + qp.Param(7),
		})
	assert.Equal(t, "SELECT workout.id, workout.notes FROM workout, workout_exercise "+
		"WHERE workout_exercise.workout_id=workout.id AND workout_exercise.exercise_id=$1", query)
	assert.Equal(t, []interface{}{7}, qp.Values)

	assert.Equal(t, "SELECT name FROM exercise", buildSelect([]string{"name"}, []string{"exercise"}, nil))
}

func TestBuildUpdateAndDelete(t *testing.T) {
	qp := &queryParams{placeholder: QuestionPlaceholder}
	var fields fieldList
	fields.Add(qp, "name", "Back Squat")
	fields.Add(qp, "type", nil)
	query := buildUpdate("exercise", fields.UpdateChanges(), []string{"name=" + qp.Param("Squat")})
	assert.Equal(t, "UPDATE exercise SET name=?, type=? WHERE name=?", query)
	assert.Equal(t, []interface{}{"Back Squat", nil, "Squat"}, qp.Values)

	assert.Equal(t, "DELETE FROM exercise WHERE name=$1",
		buildDelete("exercise", []string{"name=" + DollarPlaceholder(1)}))
}

func TestInsertStatement(t *testing.T) {
	qp := &queryParams{placeholder: DollarPlaceholder}
	var fields fieldList
	fields.Add(qp, "workout_id", 1)
	fields.Add(qp, "exercise_id", 2)
	fields.AddDirect("order_in_workout", "1")
	assert.Equal(t, "INSERT INTO workout_set(workout_id, exercise_id, order_in_workout) VALUES($1, $2, 1)",
		fields.InsertStatement("workout_set"))
}

func TestNullables(t *testing.T) {
	d := 75 * time.Minute
	assert.Equal(t, int64(75), nullMinutes(&d))
	assert.Nil(t, nullMinutes(nil))
	assert.Nil(t, nullFloat(nil))
	assert.Nil(t, nullInt(nil))
	assert.Nil(t, nullString(nil))

	n := 3
	assert.Equal(t, int64(3), nullInt(&n))
}

func TestSQLTime(t *testing.T) {
	want := time.Date(2021, 8, 10, 12, 0, 0, 0, time.UTC)
	inputs := []interface{}{
		want,
		want.In(time.FixedZone("", 0)),
		"2021-08-10 12:00:00+00:00",
		"2021-08-10T12:00:00Z",
		"2021-08-10 12:00:00 +0000 UTC",
		[]byte("2021-08-10 12:00:00"),
		"2021-08-10 12:00",
	}
	for _, input := range inputs {
		var st sqlTime
		if assert.NoError(t, st.Scan(input), "%v", input) {
			assert.Equal(t, want, st.Time, "%v", input)
		}
	}

	var st sqlTime
	assert.NoError(t, st.Scan("2021-08-10"))
	assert.Equal(t, time.Date(2021, 8, 10, 0, 0, 0, 0, time.UTC), st.Time)

	assert.Error(t, st.Scan("yesterday"))
	assert.Error(t, st.Scan(17))
}
