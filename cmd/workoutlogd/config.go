// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"strings"

	"github.com/diffeo/go-workoutlog/restserver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the daemon settings.  They come from workoutlogd.yaml
// (or the file named by --config), overridden by WORKOUTLOG_*
// environment variables, so http.bind is WORKOUTLOG_HTTP_BIND.
type Config struct {
	HTTP    HTTPConfig `mapstructure:"http"`
	Backend string     `mapstructure:"backend"`
	DocsURL string     `mapstructure:"docs_url"`
	Log     LogConfig  `mapstructure:"log"`
}

// HTTPConfig configures the REST listener.
type HTTPConfig struct {
	Bind string `mapstructure:"bind"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Requests bool   `mapstructure:"requests"`
}

func loadConfig(filename string) (Config, error) {
	var config Config
	v := viper.New()
	v.SetDefault("http.bind", ":5000")
	v.SetDefault("backend", "memory")
	v.SetDefault("docs_url", restserver.DefaultDocsURL)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.requests", false)

	v.SetEnvPrefix("workoutlog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filename != "" {
		v.SetConfigFile(filename)
	} else {
		v.SetConfigName("workoutlogd")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	err := v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	}
	if err != nil {
		return config, err
	}

	err = v.Unmarshal(&config)
	return config, err
}

// setupLogging applies the configured level to the standard logger.
func (config Config) setupLogging() error {
	level, err := logrus.ParseLevel(config.Log.Level)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}
