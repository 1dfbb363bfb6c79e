// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/diffeo/go-workoutlog/workoutlog"
)

func programmingVars(exerciseType string, weekNumber int) map[string]interface{} {
	return map[string]interface{}{
		"exercise_type": exerciseType,
		"week_number":   weekNumber,
	}
}

func toProgramming(items []restdata.Document) ([]workoutlog.WeeklyProgramming, error) {
	all := make([]workoutlog.WeeklyProgramming, len(items))
	for i, item := range items {
		var wire restdata.WeeklyProgramming
		err := item.Into(&wire)
		if err == nil {
			all[i], err = wire.WeeklyProgramming()
		}
		if err != nil {
			return nil, err
		}
	}
	return all, nil
}

func (s *restStore) WeeklyProgramming() ([]workoutlog.WeeklyProgramming, error) {
	items, err := s.getItems("weekly-programming-all", nil)
	if err != nil {
		return nil, err
	}
	return toProgramming(items)
}

func (s *restStore) WeeklyProgrammingForExercise(exerciseName string) ([]workoutlog.WeeklyProgramming, error) {
	items, err := s.getItems("weekly-programming-for-exercise", exerciseVars(exerciseName))
	if err != nil {
		return nil, err
	}
	return toProgramming(items)
}

func (s *restStore) WeeklyProgrammingItem(exerciseType string, weekNumber int) (workoutlog.WeeklyProgramming, error) {
	doc, err := s.get("weekly-programming", programmingVars(exerciseType, weekNumber))
	if err != nil {
		return workoutlog.WeeklyProgramming{}, err
	}
	all, err := toProgramming([]restdata.Document{doc})
	if err != nil {
		return workoutlog.WeeklyProgramming{}, err
	}
	return all[0], nil
}

func (s *restStore) AddWeeklyProgramming(programming workoutlog.WeeklyProgramming) error {
	_, err := s.add("weekly-programming-all", nil,
		restdata.FromWeeklyProgramming(programming).Document())
	return err
}

func (s *restStore) UpdateWeeklyProgramming(exerciseType string, weekNumber int, update workoutlog.WeeklyProgrammingUpdate) error {
	return s.edit("weekly-programming", programmingVars(exerciseType, weekNumber),
		restdata.FromWeeklyProgrammingUpdate(update).Document())
}

func (s *restStore) DeleteWeeklyProgramming(exerciseType string, weekNumber int) error {
	return s.delete("weekly-programming", programmingVars(exerciseType, weekNumber))
}
