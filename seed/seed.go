// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package seed loads a fixed set of sample data into a workout log.
// The data lives in testgen.yaml, embedded in the binary.
package seed

import (
	_ "embed"
	"time"

	"github.com/diffeo/go-workoutlog/workoutlog"
	"gopkg.in/yaml.v2"
)

//go:embed testgen.yaml
var testgen []byte

// Data is the parsed form of the sample data.
type Data struct {
	WeeklyProgramming []Programming `yaml:"weekly_programming"`
	Workouts          []Workout     `yaml:"workouts"`
	MaxData           []MaxData     `yaml:"max_data"`
}

// Programming is one weekly programming row.
type Programming struct {
	WeekNumber              int      `yaml:"week_number"`
	ExerciseType            string   `yaml:"exercise_type"`
	Intensity               *float64 `yaml:"intensity"`
	NumberOfSets            *int     `yaml:"number_of_sets"`
	NumberOfReps            *int     `yaml:"number_of_reps"`
	RepsInReserve           *int     `yaml:"reps_in_reserve"`
	RateOfPerceivedExertion *float64 `yaml:"rate_of_perceived_exertion"`
	Duration                string   `yaml:"duration"`
}

// Workout is one workout with the exercises done in it.
type Workout struct {
	DateTime         string     `yaml:"date_time"`
	Duration         string     `yaml:"duration"`
	BodyWeight       *float64   `yaml:"body_weight"`
	AverageHeartRate *int       `yaml:"average_heart_rate"`
	MaxHeartRate     *int       `yaml:"max_heart_rate"`
	Notes            *string    `yaml:"notes"`
	Exercises        []Exercise `yaml:"exercises"`
}

// Exercise attaches an exercise to a workout along with its sets.
type Exercise struct {
	Name string    `yaml:"exercise_name"`
	Type *string   `yaml:"exercise_type"`
	Sets SetSeries `yaml:"sets"`
}

// SetSeries describes Count sets of the same weight and reps.  Reps in
// reserve start at RepsInReserve and drop by one each set.
type SetSeries struct {
	Count         int     `yaml:"count"`
	Weight        float64 `yaml:"weight"`
	NumberOfReps  int     `yaml:"number_of_reps"`
	RepsInReserve int     `yaml:"reps_in_reserve"`
}

// MaxData is one max data entry.
type MaxData struct {
	ExerciseName     string   `yaml:"exercise_name"`
	OrderForExercise int      `yaml:"order_for_exercise"`
	Date             string   `yaml:"date"`
	TrainingMax      *float64 `yaml:"training_max"`
	EstimatedMax     *float64 `yaml:"estimated_max"`
	TestedMax        *float64 `yaml:"tested_max"`
}

// Load parses the embedded sample data.
func Load() (*Data, error) {
	var data Data
	if err := yaml.UnmarshalStrict(testgen, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func parseDuration(s string) (*time.Duration, error) {
	if s == "" {
		return nil, nil
	}
	d, err := workoutlog.ParseDuration(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Populate loads the embedded sample data into store.  The store
// should be empty; existing records with the same keys make this
// fail partway through.
func Populate(store workoutlog.Store) error {
	data, err := Load()
	if err != nil {
		return err
	}
	return data.Populate(store)
}

// Populate writes data into store: programming first, then each
// workout with its exercises and sets, then max data.
func (data *Data) Populate(store workoutlog.Store) error {
	for _, p := range data.WeeklyProgramming {
		duration, err := parseDuration(p.Duration)
		if err != nil {
			return err
		}
		err = store.AddWeeklyProgramming(workoutlog.WeeklyProgramming{
			WeekNumber:              p.WeekNumber,
			ExerciseType:            p.ExerciseType,
			Intensity:               p.Intensity,
			NumberOfSets:            p.NumberOfSets,
			NumberOfReps:            p.NumberOfReps,
			RepsInReserve:           p.RepsInReserve,
			RateOfPerceivedExertion: p.RateOfPerceivedExertion,
			Duration:                duration,
		})
		if err != nil {
			return err
		}
	}

	for _, w := range data.Workouts {
		if err := w.populate(store); err != nil {
			return err
		}
	}

	for _, m := range data.MaxData {
		date, err := workoutlog.ParseDate(m.Date)
		if err != nil {
			return err
		}
		_, err = store.AddMaxData(workoutlog.MaxData{
			ExerciseName:     m.ExerciseName,
			OrderForExercise: m.OrderForExercise,
			Date:             date,
			TrainingMax:      m.TrainingMax,
			EstimatedMax:     m.EstimatedMax,
			TestedMax:        m.TestedMax,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (w Workout) populate(store workoutlog.Store) error {
	dateTime, err := workoutlog.ParseDateTime(w.DateTime)
	if err != nil {
		return err
	}
	duration, err := parseDuration(w.Duration)
	if err != nil {
		return err
	}
	workout, err := store.AddWorkout(workoutlog.Workout{
		DateTime:         dateTime,
		Duration:         duration,
		BodyWeight:       w.BodyWeight,
		AverageHeartRate: w.AverageHeartRate,
		MaxHeartRate:     w.MaxHeartRate,
		Notes:            w.Notes,
	})
	if err != nil {
		return err
	}

	for _, e := range w.Exercises {
		err = store.AddWorkoutExercise(workout.ID, workoutlog.Exercise{
			Name: e.Name,
			Type: e.Type,
		})
		if err != nil {
			return err
		}
		for i := 0; i < e.Sets.Count; i++ {
			weight := e.Sets.Weight
			reps := e.Sets.NumberOfReps
			rir := e.Sets.RepsInReserve - i
			_, err = store.AddSet(workoutlog.Set{
				WorkoutID:      workout.ID,
				ExerciseName:   e.Name,
				OrderInWorkout: i + 1,
				Weight:         &weight,
				NumberOfReps:   &reps,
				RepsInReserve:  &rir,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}
