// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"github.com/diffeo/go-workoutlog/restdata"
	"github.com/diffeo/go-workoutlog/workoutlog"
)

func maxDataVars(exerciseName string, order int) map[string]interface{} {
	vars := exerciseVars(exerciseName)
	vars["order"] = order
	return vars
}

func toMaxData(doc restdata.Document, exerciseName string) (workoutlog.MaxData, error) {
	var wire restdata.MaxData
	if err := doc.Into(&wire); err != nil {
		return workoutlog.MaxData{}, err
	}
	return wire.MaxData(exerciseName)
}

func (s *restStore) MaxData(exerciseName string) ([]workoutlog.MaxData, error) {
	items, err := s.getItems("max-data-for-exercise", exerciseVars(exerciseName))
	if err != nil {
		return nil, err
	}
	all := make([]workoutlog.MaxData, len(items))
	for i, item := range items {
		if all[i], err = toMaxData(item, exerciseName); err != nil {
			return nil, err
		}
	}
	return all, nil
}

func (s *restStore) MaxDataItem(exerciseName string, order int) (workoutlog.MaxData, error) {
	doc, err := s.get("max-data", maxDataVars(exerciseName, order))
	if err != nil {
		return workoutlog.MaxData{}, err
	}
	return toMaxData(doc, exerciseName)
}

// AddMaxData leaves out a zero order so the server assigns one.
func (s *restStore) AddMaxData(maxData workoutlog.MaxData) (workoutlog.MaxData, error) {
	wire := restdata.FromMaxData(maxData)
	if maxData.OrderForExercise == 0 {
		wire.OrderForExercise = nil
	}
	doc, err := s.post("max-data-for-exercise", exerciseVars(maxData.ExerciseName), wire.Document())
	if err != nil {
		return workoutlog.MaxData{}, err
	}
	return toMaxData(doc, maxData.ExerciseName)
}

func (s *restStore) UpdateMaxData(exerciseName string, order int, update workoutlog.MaxDataUpdate) error {
	return s.edit("max-data", maxDataVars(exerciseName, order),
		restdata.FromMaxDataUpdate(update).Document())
}

func (s *restStore) DeleteMaxData(exerciseName string, order int) error {
	return s.delete("max-data", maxDataVars(exerciseName, order))
}
