// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package sqlstore implements the workout log on top of a relational
// database.  The dialect-specific parts live in the postgres and sqlite
// packages, which provide a Dialect and open the database.
//
// Uniqueness of workout times, exercise names, and ordinals is
// enforced by database constraints, so concurrent writers can never
// produce duplicates.  Deletes cascade through foreign keys.
package sqlstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diffeo/go-workoutlog/workoutlog"
	migrate "github.com/rubenv/sql-migrate"
)

// Store is a workout log backed by an SQL database.
type Store struct {
	db      *sql.DB
	dialect *Dialect
}

var _ workoutlog.Store = (*Store)(nil)

// New creates a store on an open database.  It does not create the
// schema; call Upgrade for that.
func New(db *sql.DB, dialect *Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// DB returns the underlying database handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) migrations() migrate.MigrationSource {
	return &migrate.MemoryMigrationSource{Migrations: s.dialect.Migrations}
}

// Upgrade applies all outstanding schema migrations.
func (s *Store) Upgrade() error {
	_, err := migrate.Exec(s.db, s.dialect.Name, s.migrations(), migrate.Up)
	return err
}

// Drop removes the schema and all of its data.
func (s *Store) Drop() error {
	_, err := migrate.Exec(s.db, s.dialect.Name, s.migrations(), migrate.Down)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Nullable column helpers.  Pointers are flattened explicitly rather
// than relying on each driver's parameter conversion.

func nullFloat(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func nullInt(p *int) interface{} {
	if p == nil {
		return nil
	}
	return int64(*p)
}

func nullString(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

// nullMinutes stores a duration as a whole number of minutes.
func nullMinutes(p *time.Duration) interface{} {
	if p == nil {
		return nil
	}
	return int64(*p / time.Minute)
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func stringPtr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}

func minutesPtr(n sql.NullInt64) *time.Duration {
	if !n.Valid {
		return nil
	}
	v := time.Duration(n.Int64) * time.Minute
	return &v
}

// timeLayouts are the textual forms drivers may hand back for a
// timestamp column.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// sqlTime scans a timestamp column into UTC.  Some drivers return
// time.Time, others the stored text.
type sqlTime struct {
	Time time.Time
}

// Scan implements sql.Scanner.
func (t *sqlTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	}
	return fmt.Errorf("cannot scan %T into a time", src)
}

func (t *sqlTime) parse(s string) error {
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized time %q", s)
}
