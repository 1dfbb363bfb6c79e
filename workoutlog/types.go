// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package workoutlog

import "time"

// Workout is a single training session.
type Workout struct {
	// ID is the store-assigned identifier.
	ID int

	// DateTime is when the workout happened, at minute
	// precision.  No two workouts share a DateTime.
	DateTime time.Time

	Duration         *time.Duration
	BodyWeight       *float64
	AverageHeartRate *int
	MaxHeartRate     *int
	Notes            *string
}

// Exercise is a named movement, such as "Squat".
type Exercise struct {
	Name string

	// Type is a free-form category such as "Main lift".  Weekly
	// programming is keyed on this value.
	Type *string
}

// Set is one set of an exercise within a workout.
type Set struct {
	WorkoutID    int
	ExerciseName string

	// OrderInWorkout numbers the sets of one exercise in one
	// workout, starting at 1.
	OrderInWorkout int

	Weight                  *float64
	NumberOfReps            *int
	RepsInReserve           *int
	RateOfPerceivedExertion *float64
	Duration                *time.Duration
	Distance                *float64
}

// MaxData is one entry in an exercise's history of maximum lifts.
type MaxData struct {
	ExerciseName     string
	OrderForExercise int

	// Date is the day of the entry; the time of day is always
	// zero.
	Date time.Time

	TrainingMax  *float64
	EstimatedMax *float64
	TestedMax    *float64
}

// WeeklyProgramming prescribes the training for one exercise type in
// one week of a program.
type WeeklyProgramming struct {
	WeekNumber   int
	ExerciseType string

	Intensity               *float64
	NumberOfSets            *int
	NumberOfReps            *int
	RepsInReserve           *int
	RateOfPerceivedExertion *float64
	Duration                *time.Duration
	Distance                *float64
	AverageHeartRate        *int
	Notes                   *string
}

// WorkoutUpdate names the fields of a Workout to change.  A nil field
// is left alone.
type WorkoutUpdate struct {
	DateTime         *time.Time
	Duration         *time.Duration
	BodyWeight       *float64
	AverageHeartRate *int
	MaxHeartRate     *int
	Notes            *string
}

// Apply copies the non-nil fields of u onto w.
func (u WorkoutUpdate) Apply(w *Workout) {
	if u.DateTime != nil {
		w.DateTime = *u.DateTime
	}
	if u.Duration != nil {
		w.Duration = u.Duration
	}
	if u.BodyWeight != nil {
		w.BodyWeight = u.BodyWeight
	}
	if u.AverageHeartRate != nil {
		w.AverageHeartRate = u.AverageHeartRate
	}
	if u.MaxHeartRate != nil {
		w.MaxHeartRate = u.MaxHeartRate
	}
	if u.Notes != nil {
		w.Notes = u.Notes
	}
}

// ExerciseUpdate names the fields of an Exercise to change.
type ExerciseUpdate struct {
	Name *string
	Type *string
}

// Apply copies the non-nil fields of u onto e.
func (u ExerciseUpdate) Apply(e *Exercise) {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Type != nil {
		e.Type = u.Type
	}
}

// SetUpdate names the fields of a Set to change.  The workout and
// exercise of a set cannot be changed.
type SetUpdate struct {
	OrderInWorkout          *int
	Weight                  *float64
	NumberOfReps            *int
	RepsInReserve           *int
	RateOfPerceivedExertion *float64
	Duration                *time.Duration
	Distance                *float64
}

// Apply copies the non-nil fields of u onto s.
func (u SetUpdate) Apply(s *Set) {
	if u.OrderInWorkout != nil {
		s.OrderInWorkout = *u.OrderInWorkout
	}
	if u.Weight != nil {
		s.Weight = u.Weight
	}
	if u.NumberOfReps != nil {
		s.NumberOfReps = u.NumberOfReps
	}
	if u.RepsInReserve != nil {
		s.RepsInReserve = u.RepsInReserve
	}
	if u.RateOfPerceivedExertion != nil {
		s.RateOfPerceivedExertion = u.RateOfPerceivedExertion
	}
	if u.Duration != nil {
		s.Duration = u.Duration
	}
	if u.Distance != nil {
		s.Distance = u.Distance
	}
}

// MaxDataUpdate names the fields of a MaxData entry to change.
type MaxDataUpdate struct {
	OrderForExercise *int
	Date             *time.Time
	TrainingMax      *float64
	EstimatedMax     *float64
	TestedMax        *float64
}

// Apply copies the non-nil fields of u onto m.
func (u MaxDataUpdate) Apply(m *MaxData) {
	if u.OrderForExercise != nil {
		m.OrderForExercise = *u.OrderForExercise
	}
	if u.Date != nil {
		m.Date = *u.Date
	}
	if u.TrainingMax != nil {
		m.TrainingMax = u.TrainingMax
	}
	if u.EstimatedMax != nil {
		m.EstimatedMax = u.EstimatedMax
	}
	if u.TestedMax != nil {
		m.TestedMax = u.TestedMax
	}
}

// WeeklyProgrammingUpdate names the fields of a WeeklyProgramming
// entry to change.
type WeeklyProgrammingUpdate struct {
	WeekNumber              *int
	ExerciseType            *string
	Intensity               *float64
	NumberOfSets            *int
	NumberOfReps            *int
	RepsInReserve           *int
	RateOfPerceivedExertion *float64
	Duration                *time.Duration
	Distance                *float64
	AverageHeartRate        *int
	Notes                   *string
}

// Apply copies the non-nil fields of u onto p.
func (u WeeklyProgrammingUpdate) Apply(p *WeeklyProgramming) {
	if u.WeekNumber != nil {
		p.WeekNumber = *u.WeekNumber
	}
	if u.ExerciseType != nil {
		p.ExerciseType = *u.ExerciseType
	}
	if u.Intensity != nil {
		p.Intensity = u.Intensity
	}
	if u.NumberOfSets != nil {
		p.NumberOfSets = u.NumberOfSets
	}
	if u.NumberOfReps != nil {
		p.NumberOfReps = u.NumberOfReps
	}
	if u.RepsInReserve != nil {
		p.RepsInReserve = u.RepsInReserve
	}
	if u.RateOfPerceivedExertion != nil {
		p.RateOfPerceivedExertion = u.RateOfPerceivedExertion
	}
	if u.Duration != nil {
		p.Duration = u.Duration
	}
	if u.Distance != nil {
		p.Distance = u.Distance
	}
	if u.AverageHeartRate != nil {
		p.AverageHeartRate = u.AverageHeartRate
	}
	if u.Notes != nil {
		p.Notes = u.Notes
	}
}
