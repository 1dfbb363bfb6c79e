// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package sqlite stores the workout log in an SQLite database file,
// using the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/diffeo/go-workoutlog/sqlstore"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Dialect describes SQLite to the SQL store.
var Dialect = &sqlstore.Dialect{
	Name:              "sqlite3",
	Placeholder:       sqlstore.QuestionPlaceholder,
	IsUniqueViolation: isUniqueViolation,
	Migrations:        migrations,
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// Without extended result codes only the message tells
		return strings.Contains(serr.Error(), "UNIQUE constraint failed")
	}
	return false
}

// DSN builds the driver connection string for a database file.
// Foreign keys are switched on for every connection so deletes
// cascade.
func DSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_time_format=sqlite"
}

// New opens (creating if needed) the SQLite database at path.  Use
// ":memory:" for a private in-memory database.  New does not create
// the schema; call Upgrade on the result.
func New(path string) (*sqlstore.Store, error) {
	db, err := sql.Open("sqlite", DSN(path))
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; an in-memory database also exists
	// only within its one connection
	db.SetMaxOpenConns(1)
	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return sqlstore.New(db, Dialect), nil
}
