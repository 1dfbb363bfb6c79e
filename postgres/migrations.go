// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import migrate "github.com/rubenv/sql-migrate"

// This file maintains the database schema.  See
// https://github.com/rubenv/sql-migrate for details of what goes in
// here.  Migrations run "outside" the normal request flow, either at
// initial startup or from the init-db command.

var migrations = []*migrate.Migration{
	{
		Id: "1-workoutlog",
		Up: []string{
			`CREATE TABLE workout(
				id SERIAL PRIMARY KEY,
				date_time TIMESTAMP NOT NULL UNIQUE,
				duration INTEGER,
				body_weight DOUBLE PRECISION,
				average_heart_rate INTEGER,
				max_heart_rate INTEGER,
				notes VARCHAR(1000)
			)`,
			`CREATE TABLE exercise(
				id SERIAL PRIMARY KEY,
				name VARCHAR(100) NOT NULL UNIQUE,
				type VARCHAR(100)
			)`,
			`CREATE TABLE workout_exercise(
				id SERIAL PRIMARY KEY,
				workout_id INTEGER NOT NULL REFERENCES workout(id) ON DELETE CASCADE,
				exercise_id INTEGER NOT NULL REFERENCES exercise(id) ON DELETE CASCADE,
				UNIQUE(workout_id, exercise_id)
			)`,
			`CREATE TABLE workout_set(
				id SERIAL PRIMARY KEY,
				workout_id INTEGER NOT NULL REFERENCES workout(id) ON DELETE CASCADE,
				exercise_id INTEGER NOT NULL REFERENCES exercise(id) ON DELETE CASCADE,
				order_in_workout INTEGER NOT NULL,
				weight DOUBLE PRECISION,
				number_of_reps INTEGER,
				reps_in_reserve INTEGER,
				rate_of_perceived_exertion DOUBLE PRECISION,
				duration INTEGER,
				distance DOUBLE PRECISION,
				UNIQUE(workout_id, exercise_id, order_in_workout)
			)`,
			`CREATE TABLE max_data(
				id SERIAL PRIMARY KEY,
				exercise_id INTEGER NOT NULL REFERENCES exercise(id) ON DELETE CASCADE,
				order_for_exercise INTEGER NOT NULL,
				date DATE NOT NULL,
				training_max DOUBLE PRECISION,
				estimated_max DOUBLE PRECISION,
				tested_max DOUBLE PRECISION,
				UNIQUE(exercise_id, order_for_exercise)
			)`,
			`CREATE TABLE weekly_programming(
				id SERIAL PRIMARY KEY,
				week_number INTEGER NOT NULL,
				exercise_type VARCHAR(100) NOT NULL,
				intensity DOUBLE PRECISION,
				number_of_sets INTEGER,
				number_of_reps INTEGER,
				reps_in_reserve INTEGER,
				rate_of_perceived_exertion DOUBLE PRECISION,
				duration INTEGER,
				distance DOUBLE PRECISION,
				average_heart_rate INTEGER,
				notes VARCHAR(1000),
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
