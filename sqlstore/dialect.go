// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package sqlstore

import (
	"strconv"

	migrate "github.com/rubenv/sql-migrate"
)

// Dialect describes the differences between SQL databases that the
// store cares about.
type Dialect struct {
	// Name is the sql-migrate dialect name, "postgres" or
	// "sqlite3".
	Name string

	// Placeholder returns the marker for the nth (1-based) query
	// parameter.
	Placeholder func(n int) string

	// TxSetup, if not nil, returns a statement to run at the start
	// of every transaction.
	TxSetup func(readOnly bool) string

	// IsUniqueViolation says whether err came from a UNIQUE or
	// PRIMARY KEY constraint.
	IsUniqueViolation func(err error) bool

	// IsRetryable, if not nil, says whether a transaction that
	// failed with err should be run again.
	IsRetryable func(err error) bool

	// Migrations create the schema, in order.
	Migrations []*migrate.Migration
}

// DollarPlaceholder produces PostgreSQL-style $1, $2, ... markers.
func DollarPlaceholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// QuestionPlaceholder produces positional ? markers.
func QuestionPlaceholder(int) string {
	return "?"
}

func (s *Store) isUniqueViolation(err error) bool {
	return err != nil && s.dialect.IsUniqueViolation != nil && s.dialect.IsUniqueViolation(err)
}

// uniqueAs replaces a unique constraint violation with conflict,
// passing any other error through.
func (s *Store) uniqueAs(err, conflict error) error {
	if s.isUniqueViolation(err) {
		return conflict
	}
	return err
}
