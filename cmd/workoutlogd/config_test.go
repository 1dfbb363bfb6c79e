// Copyright 2021 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diffeo/go-workoutlog/restserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	config, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":5000", config.HTTP.Bind)
	assert.Equal(t, "memory", config.Backend)
	assert.Equal(t, restserver.DefaultDocsURL, config.DocsURL)
	assert.Equal(t, "info", config.Log.Level)
	assert.False(t, config.Log.Requests)
}

func TestConfigFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "workoutlogd.yaml")
	err := os.WriteFile(filename, []byte(`
http:
  bind: localhost:8080
backend: sqlite:/var/lib/workoutlog.db
log:
  level: debug
  requests: true
`), 0644)
	require.NoError(t, err)
	t.Setenv("WORKOUTLOG_HTTP_BIND", ":6000")

	config, err := loadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, ":6000", config.HTTP.Bind)
	assert.Equal(t, "sqlite:/var/lib/workoutlog.db", config.Backend)
	assert.Equal(t, "debug", config.Log.Level)
	assert.True(t, config.Log.Requests)
	assert.NoError(t, config.setupLogging())
}

func TestConfigBadLevel(t *testing.T) {
	config := Config{Log: LogConfig{Level: "chatty"}}
	assert.Error(t, config.setupLogging())
}
