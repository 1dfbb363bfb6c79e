// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package backend provides a standard way to construct a workout log
// store based on command-line flags.
package backend

import (
	"errors"
	"strings"

	"github.com/diffeo/go-workoutlog/memory"
	"github.com/diffeo/go-workoutlog/postgres"
	"github.com/diffeo/go-workoutlog/restclient"
	"github.com/diffeo/go-workoutlog/sqlite"
	"github.com/diffeo/go-workoutlog/workoutlog"
)

// Backend describes user-visible parameters to store workout log data.
// This implements the flag.Value interface, and so a typical use is
//
//	func main() {
//		backend := backend.Backend{Implementation: "memory"}
//		flag.Var(&backend, "backend", "impl:address of workout log storage")
//		flag.Parse()
//		store, err := backend.Store()
//	}
type Backend struct {
	// Implementation holds the name of the implementation; for
	// instance, "memory".
	Implementation string

	// Address holds some backend-specific address, such as a
	// database connect string.
	Address string
}

// Implementations lists the names Set accepts.
var Implementations = []string{"memory", "postgres", "sqlite", "http", "https"}

// Store creates a new workout log store.  This generally should be
// only called once.  If the backend has in-process state, such as a
// database connection pool or an in-memory store, calling this
// multiple times will create multiple copies of that state.  In
// particular, if b.Implementation is "memory", multiple calls to this
// will create multiple independent workout logs.
//
// The SQL backends are opened but their schema is not created; see
// Upgrade.
func (b *Backend) Store() (workoutlog.Store, error) {
	switch b.Implementation {
	case "memory":
		return memory.New(), nil
	case "postgres":
		store, err := postgres.New(b.Address)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "sqlite":
		store, err := sqlite.New(b.Address)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "http", "https":
		return restclient.New(b.String())
	default:
		return nil, errors.New("unknown workout log backend " + b.Implementation)
	}
}

// Migrator is implemented by stores that carry a database schema.
type Migrator interface {
	Upgrade() error
	Drop() error
}

// Upgrade creates or updates the schema of store if it has one.
func Upgrade(store workoutlog.Store) error {
	if m, ok := store.(Migrator); ok {
		return m.Upgrade()
	}
	return nil
}

// Drop removes the schema of store, and all of its data, if it has
// one.
func Drop(store workoutlog.Store) error {
	if m, ok := store.(Migrator); ok {
		return m.Drop()
	}
	return nil
}

// String renders a backend description as a string.
func (b *Backend) String() string {
	if b.Address == "" {
		return b.Implementation
	}
	return b.Implementation + ":" + b.Address
}

// Set parses a string into an existing backend description.  The
// string should be of the form "implementation:address", where
// address can be any string.  Set checks to see if the provided
// implementation is any of the known implementations, and returns an
// appropriate error if not.
//
// This is part of the flag.Value interface.  Neither this nor Store
// validates the address or makes a connection.
func (b *Backend) Set(param string) error {
	if param == "" {
		return errors.New("must specify a backend type")
	}
	parts := strings.SplitN(param, ":", 2)
	impl := parts[0]
	known := false
	for _, name := range Implementations {
		if name == impl {
			known = true
			break
		}
	}
	if !known {
		return errors.New("unknown workout log backend " + impl)
	}
	b.Implementation = impl
	b.Address = ""
	if len(parts) == 2 {
		b.Address = parts[1]
	}
	return nil
}
