// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqlite

import migrate "github.com/rubenv/sql-migrate"

var migrations = []*migrate.Migration{
	{
		Id: "1-workoutlog",
		Up: []string{
			`CREATE TABLE workout(
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				date_time TIMESTAMP NOT NULL UNIQUE,
				duration INTEGER,
				body_weight REAL,
				average_heart_rate INTEGER,
				max_heart_rate INTEGER,
				notes TEXT
			)`,
			`CREATE TABLE exercise(
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL UNIQUE,
				type TEXT
			)`,
			`CREATE TABLE workout_exercise(
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				workout_id INTEGER NOT NULL REFERENCES workout(id) ON DELETE CASCADE,
				exercise_id INTEGER NOT NULL REFERENCES exercise(id) ON DELETE CASCADE,
				UNIQUE(workout_id, exercise_id)
			)`,
			`CREATE TABLE workout_set(
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				workout_id INTEGER NOT NULL REFERENCES workout(id) ON DELETE CASCADE,
				exercise_id INTEGER NOT NULL REFERENCES exercise(id) ON DELETE CASCADE,
				order_in_workout INTEGER NOT NULL,
				weight REAL,
				number_of_reps INTEGER,
				reps_in_reserve INTEGER,
				rate_of_perceived_exertion REAL,
				duration INTEGER,
				distance REAL,
				UNIQUE(workout_id, exercise_id, order_in_workout)
			)`,
			`CREATE TABLE max_data(
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				exercise_id INTEGER NOT NULL REFERENCES exercise(id) ON DELETE CASCADE,
				order_for_exercise INTEGER NOT NULL,
				date DATE NOT NULL,
				training_max REAL,
				estimated_max REAL,
				tested_max REAL,
				UNIQUE(exercise_id, order_for_exercise)
			)`,
			`CREATE TABLE weekly_programming(
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				week_number INTEGER NOT NULL,
				exercise_type TEXT NOT NULL,
				intensity REAL,
				number_of_sets INTEGER,
				number_of_reps INTEGER,
				reps_in_reserve INTEGER,
				rate_of_perceived_exertion REAL,
				duration INTEGER,
				distance REAL,
				average_heart_rate INTEGER,
				notes TEXT,
				UNIQUE(week_number, exercise_type)
			)`,
		},
		Down: []string{
			`DROP TABLE weekly_programming`,
			`DROP TABLE max_data`,
			`DROP TABLE workout_set`,
			`DROP TABLE workout_exercise`,
			`DROP TABLE exercise`,
			`DROP TABLE workout`,
		},
	},
}
