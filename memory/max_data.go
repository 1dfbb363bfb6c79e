// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"sort"

	"github.com/diffeo/go-workoutlog/workoutlog"
)

func (e *exercise) publicMaxData(i int) workoutlog.MaxData {
	m := cloneMaxData(e.maxData[i])
	m.ExerciseName = e.name
	return m
}

func (e *exercise) findMaxData(order int) int {
	for i, m := range e.maxData {
		if m.OrderForExercise == order {
			return i
		}
	}
	return -1
}

func (e *exercise) sortMaxData() {
	sort.Slice(e.maxData, func(i, j int) bool {
		return e.maxData[i].OrderForExercise < e.maxData[j].OrderForExercise
	})
}

func (s *memStore) MaxData(name string) ([]workoutlog.MaxData, error) {
	globalLock(s)
	defer globalUnlock(s)

	e, err := s.getExercise(name)
	if err != nil {
		return nil, err
	}
	result := make([]workoutlog.MaxData, len(e.maxData))
	for i := range e.maxData {
		result[i] = e.publicMaxData(i)
	}
	return result, nil
}

func (s *memStore) MaxDataItem(name string, order int) (workoutlog.MaxData, error) {
	globalLock(s)
	defer globalUnlock(s)

	e, err := s.getExercise(name)
	if err != nil {
		return workoutlog.MaxData{}, err
	}
	i := e.findMaxData(order)
	if i < 0 {
		return workoutlog.MaxData{}, workoutlog.ErrNoSuchMaxData{ExerciseName: name, Order: order}
	}
	return e.publicMaxData(i), nil
}

func (s *memStore) AddMaxData(m workoutlog.MaxData) (workoutlog.MaxData, error) {
	globalLock(s)
	defer globalUnlock(s)

	e, err := s.getExercise(m.ExerciseName)
	if err != nil {
		return workoutlog.MaxData{}, err
	}
	if m.OrderForExercise == 0 {
		orders := make([]int, len(e.maxData))
		for i, other := range e.maxData {
			orders[i] = other.OrderForExercise
		}
		m.OrderForExercise = workoutlog.NextOrdinal(orders)
	} else if e.findMaxData(m.OrderForExercise) >= 0 {
		return workoutlog.MaxData{}, workoutlog.ErrMaxDataExists{
			ExerciseName: m.ExerciseName,
			Order:        m.OrderForExercise,
		}
	}
	m = cloneMaxData(m)
	m.Date = workoutlog.NormalizeDate(m.Date)
	e.maxData = append(e.maxData, m)
	e.sortMaxData()
	return e.publicMaxData(e.findMaxData(m.OrderForExercise)), nil
}

func (s *memStore) UpdateMaxData(name string, order int, update workoutlog.MaxDataUpdate) error {
	globalLock(s)
	defer globalUnlock(s)

	e, err := s.getExercise(name)
	if err != nil {
		return err
	}
	i := e.findMaxData(order)
	if i < 0 {
		return workoutlog.ErrNoSuchMaxData{ExerciseName: name, Order: order}
	}
	m := e.publicMaxData(i)
	update.Apply(&m)
	if m.OrderForExercise != order && e.findMaxData(m.OrderForExercise) >= 0 {
		return workoutlog.ErrMaxDataExists{ExerciseName: name, Order: m.OrderForExercise}
	}
	m.Date = workoutlog.NormalizeDate(m.Date)
	e.maxData[i] = m
	e.sortMaxData()
	return nil
}

func (s *memStore) DeleteMaxData(name string, order int) error {
	globalLock(s)
	defer globalUnlock(s)

	e, err := s.getExercise(name)
	if err != nil {
		return err
	}
	i := e.findMaxData(order)
	if i < 0 {
		return workoutlog.ErrNoSuchMaxData{ExerciseName: name, Order: order}
	}
	e.maxData = append(e.maxData[:i], e.maxData[i+1:]...)
	return nil
}
