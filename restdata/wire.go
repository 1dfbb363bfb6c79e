// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"time"

	"github.com/diffeo/go-workoutlog/workoutlog"
)

// These structures are the JSON fields of each kind of object.  A nil
// field is absent from the document.  Dates, times, and durations
// travel as strings in the formats of the workoutlog package.

// Workout is the wire form of a workout.
type Workout struct {
	WorkoutID        *int     `mapstructure:"workout_id"`
	DateTime         *string  `mapstructure:"date_time"`
	Duration         *string  `mapstructure:"duration"`
	BodyWeight       *float64 `mapstructure:"body_weight"`
	AverageHeartRate *int     `mapstructure:"average_heart_rate"`
	MaxHeartRate     *int     `mapstructure:"max_heart_rate"`
	Notes            *string  `mapstructure:"notes"`
}

// Exercise is the wire form of an exercise.
type Exercise struct {
	ExerciseName *string `mapstructure:"exercise_name"`
	ExerciseType *string `mapstructure:"exercise_type"`
}

// Set is the wire form of a set.  The workout and exercise come from
// the URL.
type Set struct {
	OrderInWorkout          *int     `mapstructure:"order_in_workout"`
	Weight                  *float64 `mapstructure:"weight"`
	NumberOfReps            *int     `mapstructure:"number_of_reps"`
	RepsInReserve           *int     `mapstructure:"reps_in_reserve"`
	RateOfPerceivedExertion *float64 `mapstructure:"rate_of_perceived_exertion"`
	Duration                *string  `mapstructure:"duration"`
	Distance                *float64 `mapstructure:"distance"`
}

// MaxData is the wire form of a max data entry.
type MaxData struct {
	OrderForExercise *int     `mapstructure:"order_for_exercise"`
	Date             *string  `mapstructure:"date"`
	TrainingMax      *float64 `mapstructure:"training_max"`
	EstimatedMax     *float64 `mapstructure:"estimated_max"`
	TestedMax        *float64 `mapstructure:"tested_max"`
}

// WeeklyProgramming is the wire form of a weekly programming entry.
type WeeklyProgramming struct {
	WeekNumber              *int     `mapstructure:"week_number"`
	ExerciseType            *string  `mapstructure:"exercise_type"`
	Intensity               *float64 `mapstructure:"intensity"`
	NumberOfSets            *int     `mapstructure:"number_of_sets"`
	NumberOfReps            *int     `mapstructure:"number_of_reps"`
	RepsInReserve           *int     `mapstructure:"reps_in_reserve"`
	RateOfPerceivedExertion *float64 `mapstructure:"rate_of_perceived_exertion"`
	Duration                *string  `mapstructure:"duration"`
	Distance                *float64 `mapstructure:"distance"`
	AverageHeartRate        *int     `mapstructure:"average_heart_rate"`
	Notes                   *string  `mapstructure:"notes"`
}

// Into fills one of the wire structures from a document.
func (d Document) Into(out interface{}) error {
	if err := decodeMap(d, out); err != nil {
		return ErrBadRequest{Title: invalidDocumentTitle, Detail: err.Error()}
	}
	return nil
}

func formatDuration(d *time.Duration) *string {
	if d == nil {
		return nil
	}
	s := workoutlog.FormatDuration(*d)
	return &s
}

func parseDuration(s *string) (*time.Duration, error) {
	if s == nil {
		return nil, nil
	}
	d, err := workoutlog.ParseDuration(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseDateTime(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := workoutlog.ParseDateTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := workoutlog.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func missing(field string) error {
	return ErrBadRequest{Title: invalidDocumentTitle, Detail: "(root): " + field + " is required"}
}

// FromWorkout converts a workout to its wire form.
func FromWorkout(w workoutlog.Workout) Workout {
	dt := workoutlog.FormatDateTime(w.DateTime)
	id := w.ID
	return Workout{
		WorkoutID:        &id,
		DateTime:         &dt,
		Duration:         formatDuration(w.Duration),
		BodyWeight:       w.BodyWeight,
		AverageHeartRate: w.AverageHeartRate,
		MaxHeartRate:     w.MaxHeartRate,
		Notes:            w.Notes,
	}
}

// Document returns the fields of a workout as a document.
func (w Workout) Document() Document {
	d := NewDocument()
	d.SetField("workout_id", w.WorkoutID)
	d.SetField("date_time", w.DateTime)
	d.SetField("duration", w.Duration)
	d.SetField("body_weight", w.BodyWeight)
	d.SetField("average_heart_rate", w.AverageHeartRate)
	d.SetField("max_heart_rate", w.MaxHeartRate)
	d.SetField("notes", w.Notes)
	return d
}

// Update converts the fields present to a workout update.
func (w Workout) Update() (u workoutlog.WorkoutUpdate, err error) {
	if u.DateTime, err = parseDateTime(w.DateTime); err != nil {
		return
	}
	if u.Duration, err = parseDuration(w.Duration); err != nil {
		return
	}
	u.BodyWeight = w.BodyWeight
	u.AverageHeartRate = w.AverageHeartRate
	u.MaxHeartRate = w.MaxHeartRate
	u.Notes = w.Notes
	return
}

// Workout converts a complete wire form to a workout.  date_time is
// required.
func (w Workout) Workout() (workoutlog.Workout, error) {
	var out workoutlog.Workout
	if w.DateTime == nil {
		return out, missing("date_time")
	}
	u, err := w.Update()
	if err != nil {
		return out, err
	}
	u.Apply(&out)
	if w.WorkoutID != nil {
		out.ID = *w.WorkoutID
	}
	return out, nil
}

// FromExercise converts an exercise to its wire form.
func FromExercise(e workoutlog.Exercise) Exercise {
	name := e.Name
	return Exercise{ExerciseName: &name, ExerciseType: e.Type}
}

// Document returns the fields of an exercise as a document.
func (e Exercise) Document() Document {
	d := NewDocument()
	d.SetField("exercise_name", e.ExerciseName)
	d.SetField("exercise_type", e.ExerciseType)
	return d
}

// Update converts the fields present to an exercise update.
func (e Exercise) Update() workoutlog.ExerciseUpdate {
	return workoutlog.ExerciseUpdate{Name: e.ExerciseName, Type: e.ExerciseType}
}

// Exercise converts a complete wire form to an exercise.
func (e Exercise) Exercise() (workoutlog.Exercise, error) {
	if e.ExerciseName == nil {
		return workoutlog.Exercise{}, missing("exercise_name")
	}
	return workoutlog.Exercise{Name: *e.ExerciseName, Type: e.ExerciseType}, nil
}

// FromSet converts a set to its wire form.
func FromSet(s workoutlog.Set) Set {
	order := s.OrderInWorkout
	return Set{
		OrderInWorkout:          &order,
		Weight:                  s.Weight,
		NumberOfReps:            s.NumberOfReps,
		RepsInReserve:           s.RepsInReserve,
		RateOfPerceivedExertion: s.RateOfPerceivedExertion,
		Duration:                formatDuration(s.Duration),
		Distance:                s.Distance,
	}
}

// Document returns the fields of a set as a document.
func (s Set) Document() Document {
	d := NewDocument()
	d.SetField("order_in_workout", s.OrderInWorkout)
	d.SetField("weight", s.Weight)
	d.SetField("number_of_reps", s.NumberOfReps)
	d.SetField("reps_in_reserve", s.RepsInReserve)
	d.SetField("rate_of_perceived_exertion", s.RateOfPerceivedExertion)
	d.SetField("duration", s.Duration)
	d.SetField("distance", s.Distance)
	return d
}

// Update converts the fields present to a set update.
func (s Set) Update() (u workoutlog.SetUpdate, err error) {
	if u.Duration, err = parseDuration(s.Duration); err != nil {
		return
	}
	u.OrderInWorkout = s.OrderInWorkout
	u.Weight = s.Weight
	u.NumberOfReps = s.NumberOfReps
	u.RepsInReserve = s.RepsInReserve
	u.RateOfPerceivedExertion = s.RateOfPerceivedExertion
	u.Distance = s.Distance
	return
}

// Set converts the wire form to a set of an exercise in a workout.
// A missing order is left zero.
func (s Set) Set(workoutID int, exerciseName string) (workoutlog.Set, error) {
	out := workoutlog.Set{WorkoutID: workoutID, ExerciseName: exerciseName}
	u, err := s.Update()
	if err != nil {
		return out, err
	}
	u.Apply(&out)
	return out, nil
}

// FromMaxData converts a max data entry to its wire form.
func FromMaxData(m workoutlog.MaxData) MaxData {
	order := m.OrderForExercise
	date := workoutlog.FormatDate(m.Date)
	return MaxData{
		OrderForExercise: &order,
		Date:             &date,
		TrainingMax:      m.TrainingMax,
		EstimatedMax:     m.EstimatedMax,
		TestedMax:        m.TestedMax,
	}
}

// Document returns the fields of a max data entry as a document.
func (m MaxData) Document() Document {
	d := NewDocument()
	d.SetField("order_for_exercise", m.OrderForExercise)
	d.SetField("date", m.Date)
	d.SetField("training_max", m.TrainingMax)
	d.SetField("estimated_max", m.EstimatedMax)
	d.SetField("tested_max", m.TestedMax)
	return d
}

// Update converts the fields present to a max data update.
func (m MaxData) Update() (u workoutlog.MaxDataUpdate, err error) {
	if u.Date, err = parseDate(m.Date); err != nil {
		return
	}
	u.OrderForExercise = m.OrderForExercise
	u.TrainingMax = m.TrainingMax
	u.EstimatedMax = m.EstimatedMax
	u.TestedMax = m.TestedMax
	return
}

// MaxData converts the wire form to a max data entry of an exercise.
// date is required.
func (m MaxData) MaxData(exerciseName string) (workoutlog.MaxData, error) {
	out := workoutlog.MaxData{ExerciseName: exerciseName}
	if m.Date == nil {
		return out, missing("date")
	}
	u, err := m.Update()
	if err != nil {
		return out, err
	}
	u.Apply(&out)
	return out, nil
}

// FromWeeklyProgramming converts a programming entry to its wire form.
func FromWeeklyProgramming(p workoutlog.WeeklyProgramming) WeeklyProgramming {
	week := p.WeekNumber
	exerciseType := p.ExerciseType
	return WeeklyProgramming{
		WeekNumber:              &week,
		ExerciseType:            &exerciseType,
		Intensity:               p.Intensity,
		NumberOfSets:            p.NumberOfSets,
		NumberOfReps:            p.NumberOfReps,
		RepsInReserve:           p.RepsInReserve,
		RateOfPerceivedExertion: p.RateOfPerceivedExertion,
		Duration:                formatDuration(p.Duration),
		Distance:                p.Distance,
		AverageHeartRate:        p.AverageHeartRate,
		Notes:                   p.Notes,
	}
}

// Document returns the fields of a programming entry as a document.
func (p WeeklyProgramming) Document() Document {
	d := NewDocument()
	d.SetField("week_number", p.WeekNumber)
	d.SetField("exercise_type", p.ExerciseType)
	d.SetField("intensity", p.Intensity)
	d.SetField("number_of_sets", p.NumberOfSets)
	d.SetField("number_of_reps", p.NumberOfReps)
	d.SetField("reps_in_reserve", p.RepsInReserve)
	d.SetField("rate_of_perceived_exertion", p.RateOfPerceivedExertion)
	d.SetField("duration", p.Duration)
	d.SetField("distance", p.Distance)
	d.SetField("average_heart_rate", p.AverageHeartRate)
	d.SetField("notes", p.Notes)
	return d
}

// Update converts the fields present to a programming update.
func (p WeeklyProgramming) Update() (u workoutlog.WeeklyProgrammingUpdate, err error) {
	if u.Duration, err = parseDuration(p.Duration); err != nil {
		return
	}
	u.WeekNumber = p.WeekNumber
	u.ExerciseType = p.ExerciseType
	u.Intensity = p.Intensity
	u.NumberOfSets = p.NumberOfSets
	u.NumberOfReps = p.NumberOfReps
	u.RepsInReserve = p.RepsInReserve
	u.RateOfPerceivedExertion = p.RateOfPerceivedExertion
	u.Distance = p.Distance
	u.AverageHeartRate = p.AverageHeartRate
	u.Notes = p.Notes
	return
}

// WeeklyProgramming converts a complete wire form to a programming
// entry.  week_number and exercise_type are required.
func (p WeeklyProgramming) WeeklyProgramming() (workoutlog.WeeklyProgramming, error) {
	var out workoutlog.WeeklyProgramming
	if p.WeekNumber == nil {
		return out, missing("week_number")
	}
	if p.ExerciseType == nil {
		return out, missing("exercise_type")
	}
	u, err := p.Update()
	if err != nil {
		return out, err
	}
	u.Apply(&out)
	return out, nil
}

// FromWorkoutUpdate converts a workout update to its wire form.
func FromWorkoutUpdate(u workoutlog.WorkoutUpdate) Workout {
	w := Workout{
		Duration:         formatDuration(u.Duration),
		BodyWeight:       u.BodyWeight,
		AverageHeartRate: u.AverageHeartRate,
		MaxHeartRate:     u.MaxHeartRate,
		Notes:            u.Notes,
	}
	if u.DateTime != nil {
		dt := workoutlog.FormatDateTime(*u.DateTime)
		w.DateTime = &dt
	}
	return w
}

// FromExerciseUpdate converts an exercise update to its wire form.
func FromExerciseUpdate(u workoutlog.ExerciseUpdate) Exercise {
	return Exercise{ExerciseName: u.Name, ExerciseType: u.Type}
}

// FromSetUpdate converts a set update to its wire form.
func FromSetUpdate(u workoutlog.SetUpdate) Set {
	return Set{
		OrderInWorkout:          u.OrderInWorkout,
		Weight:                  u.Weight,
		NumberOfReps:            u.NumberOfReps,
		RepsInReserve:           u.RepsInReserve,
		RateOfPerceivedExertion: u.RateOfPerceivedExertion,
		Duration:                formatDuration(u.Duration),
		Distance:                u.Distance,
	}
}

// FromMaxDataUpdate converts a max data update to its wire form.
func FromMaxDataUpdate(u workoutlog.MaxDataUpdate) MaxData {
	m := MaxData{
		OrderForExercise: u.OrderForExercise,
		TrainingMax:      u.TrainingMax,
		EstimatedMax:     u.EstimatedMax,
		TestedMax:        u.TestedMax,
	}
	if u.Date != nil {
		date := workoutlog.FormatDate(*u.Date)
		m.Date = &date
	}
	return m
}

// FromWeeklyProgrammingUpdate converts a programming update to its
// wire form.
func FromWeeklyProgrammingUpdate(u workoutlog.WeeklyProgrammingUpdate) WeeklyProgramming {
	return WeeklyProgramming{
		WeekNumber:              u.WeekNumber,
		ExerciseType:            u.ExerciseType,
		Intensity:               u.Intensity,
		NumberOfSets:            u.NumberOfSets,
		NumberOfReps:            u.NumberOfReps,
		RepsInReserve:           u.RepsInReserve,
		RateOfPerceivedExertion: u.RateOfPerceivedExertion,
		Duration:                formatDuration(u.Duration),
		Distance:                u.Distance,
		AverageHeartRate:        u.AverageHeartRate,
		Notes:                   u.Notes,
	}
}
