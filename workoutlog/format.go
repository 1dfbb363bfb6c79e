// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package workoutlog

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// These are the layouts of the string forms of dates, times, and
// durations.  Parsing is lenient about leading zeros; formatting
// always produces them, except for the hours of a duration.
const (
	DateTimeLayout = "2006-01-02 15:04"
	DateLayout     = "2006-01-02"

	dateTimeInput = "2006-1-2 15:4"
	dateInput     = "2006-1-2"
	durationInput = "15:4"
)

// Length limits on free-text fields, in characters.
const (
	MaxNameLength = 100
	MaxNoteLength = 1000
)

// ParseDateTime parses a string like "2021-8-12 14:15".  The result
// is in UTC.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(dateTimeInput, s)
	if err != nil {
		return time.Time{}, ErrInvalid{
			Message: "Invalid datetime. Datetime must match format YYYY-MM-DD HH:MM, for example 2021-8-12 14:15",
			Detail:  err.Error(),
		}
	}
	return t, nil
}

// FormatDateTime renders a date and time as "2021-08-12 14:15".
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// ParseDate parses a string like "2021-8-12".
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateInput, s)
	if err != nil {
		return time.Time{}, ErrInvalid{
			Message: "Invalid date. Date must match format YYYY-MM-DD, for example 2021-8-12",
			Detail:  err.Error(),
		}
	}
	return t, nil
}

// FormatDate renders a date as "2021-08-12".
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDuration parses an "HH:MM" string like "1:20".  Hours must be
// less than 24.
func ParseDuration(s string) (time.Duration, error) {
	t, err := time.Parse(durationInput, s)
	if err != nil {
		return 0, ErrInvalid{
			Message: "Invalid duration. Duration must match format HH:MM, for example 1:20",
			Detail:  err.Error(),
		}
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// FormatDuration renders a duration as "1:20".  Anything below a
// minute is dropped.
func FormatDuration(d time.Duration) string {
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// NormalizeDateTime returns t in UTC with seconds dropped, which is
// the precision a Workout keeps.
func NormalizeDateTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Minute)
}

// NormalizeDate returns midnight UTC of the calendar day of t.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeDuration drops anything below a minute.
func NormalizeDuration(d *time.Duration) *time.Duration {
	if d == nil {
		return nil
	}
	nd := d.Truncate(time.Minute)
	return &nd
}

// NextOrdinal returns the smallest positive integer not in existing.
// Sets and max data entries use this to number themselves when no
// order is given.
func NextOrdinal(existing []int) int {
	used := make(map[int]bool, len(existing))
	for _, n := range existing {
		used[n] = true
	}
	next := 1
	for used[next] {
		next++
	}
	return next
}

func checkNotes(notes *string) error {
	if notes != nil && utf8.RuneCountInString(*notes) > MaxNoteLength {
		return ErrInvalid{Message: "Note too long."}
	}
	return nil
}

// ValidateWorkout checks the free-text fields of a workout.
func ValidateWorkout(w Workout) error {
	return checkNotes(w.Notes)
}

// ValidateExercise checks an exercise's name and type.
func ValidateExercise(e Exercise) error {
	if e.Name == "" {
		return ErrInvalid{Message: "Exercise name is missing."}
	}
	if utf8.RuneCountInString(e.Name) > MaxNameLength {
		return ErrInvalid{Message: "Exercise name too long."}
	}
	if e.Type != nil && utf8.RuneCountInString(*e.Type) > MaxNameLength {
		return ErrInvalid{Message: "Exercise type too long."}
	}
	return nil
}

// ValidateWeeklyProgramming checks the exercise type and notes of a
// programming entry.
func ValidateWeeklyProgramming(p WeeklyProgramming) error {
	if p.ExerciseType == "" {
		return ErrInvalid{Message: "Exercise type is missing."}
	}
	if utf8.RuneCountInString(p.ExerciseType) > MaxNameLength {
		return ErrInvalid{Message: "Exercise type too long."}
	}
	return checkNotes(p.Notes)
}
