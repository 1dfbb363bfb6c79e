// Copyright 2015-2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Workoutlogd serves the workout log REST API.  It also carries the
// database maintenance commands:
//
//	workoutlogd --backend sqlite:workouts.db init-db
//	workoutlogd --backend sqlite:workouts.db testgen
//	workoutlogd --backend sqlite:workouts.db serve
//
// Settings not given on the command line come from workoutlogd.yaml
// and WORKOUTLOG_* environment variables; see Config.
package main

import (
	"os"

	"github.com/diffeo/go-workoutlog/backend"
	"github.com/diffeo/go-workoutlog/seed"
	"github.com/diffeo/go-workoutlog/workoutlog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type daemon struct {
	Backend backend.Backend
	Config  Config
	Store   workoutlog.Store
}

func (d *daemon) before(c *cli.Context) error {
	var err error
	d.Config, err = loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if err = d.Config.setupLogging(); err != nil {
		return err
	}
	if !c.IsSet("backend") {
		if err = d.Backend.Set(d.Config.Backend); err != nil {
			return err
		}
	}
	d.Store, err = d.Backend.Store()
	if err != nil {
		return err
	}
	logrus.WithField("backend", d.Backend.String()).Debug("opened store")
	return nil
}

func (d *daemon) serve(c *cli.Context) error {
	if err := backend.Upgrade(d.Store); err != nil {
		return err
	}
	if c.Bool("testgen") {
		if err := seed.Populate(d.Store); err != nil {
			return err
		}
	}
	if bind := c.String("http"); bind != "" {
		d.Config.HTTP.Bind = bind
	}
	h := HTTP{
		Store:    d.Store,
		Config:   d.Config,
		Log:      logrus.StandardLogger(),
		Registry: prometheus.DefaultRegisterer,
		Gatherer: prometheus.DefaultGatherer,
	}
	return h.Serve()
}

func (d *daemon) initDB(c *cli.Context) error {
	if err := backend.Upgrade(d.Store); err != nil {
		return err
	}
	logrus.WithField("backend", d.Backend.String()).Info("initialized the database")
	return nil
}

func (d *daemon) deleteDB(c *cli.Context) error {
	if err := backend.Drop(d.Store); err != nil {
		return err
	}
	logrus.WithField("backend", d.Backend.String()).Info("deleted the database")
	return nil
}

func (d *daemon) testgen(c *cli.Context) error {
	if err := backend.Upgrade(d.Store); err != nil {
		return err
	}
	if err := seed.Populate(d.Store); err != nil {
		return err
	}
	logrus.WithField("backend", d.Backend.String()).Info("added sample data")
	return nil
}

func newApp() *cli.App {
	d := &daemon{Backend: backend.Backend{Implementation: "memory"}}
	app := cli.NewApp()
	app.Name = "workoutlogd"
	app.Usage = "serve a hypermedia workout log"
	app.Flags = []cli.Flag{
		cli.GenericFlag{
			Name:  "backend",
			Value: &d.Backend,
			Usage: "impl[:address] of the storage backend",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "configuration YAML file",
		},
	}
	app.Before = d.before
	app.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "run the REST API server",
			Action: d.serve,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "http",
					Usage: "[ip]:port for the HTTP REST interface",
				},
				cli.BoolFlag{
					Name:  "testgen",
					Usage: "load sample data before serving",
				},
			},
		},
		{
			Name:   "init-db",
			Usage:  "create the database schema",
			Action: d.initDB,
		},
		{
			Name:   "delete-db",
			Usage:  "drop the database schema and all data",
			Action: d.deleteDB,
		},
		{
			Name:   "testgen",
			Usage:  "populate the database with sample data",
			Action: d.testgen,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("workoutlogd failed")
	}
}
