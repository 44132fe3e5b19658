package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-cells", "40", "-interval", "250ms", "-pattern", "glider.rle", "-watch"})
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Cells)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, "glider.rle", cfg.Pattern)
	assert.True(t, cfg.Watch)
	assert.Equal(t, 900, cfg.Size, "untouched flags keep defaults")
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	doc := "cells: 64\ninterval: 50ms\nmetrics_addr: \":9090\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, 64, cfg.Cells)
	assert.Equal(t, 50*time.Millisecond, cfg.Interval)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, "life", cfg.Sim)
	assert.Equal(t, map[string]string{"cells": "64", "size": "900"}, cfg.SimConfig())
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig()

	assert.Error(t, cfg.LoadFile(filepath.Join(dir, "missing.yaml")))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("cells: [1, 2"), 0o644))
	assert.Error(t, cfg.LoadFile(bad))

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("cells: 0\n"), 0o644))
	assert.ErrorContains(t, cfg.LoadFile(invalid), "cells must be positive")
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	cfg.Size = 20
	assert.ErrorContains(t, cfg.Validate(), "no room")

	cfg = NewConfig()
	cfg.Interval = 0
	assert.ErrorContains(t, cfg.Validate(), "interval")
}
