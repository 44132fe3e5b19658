package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"lifegrid/internal/life"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim         string        `yaml:"sim"`
	Cells       int           `yaml:"cells"`
	Size        int           `yaml:"size"`
	Interval    time.Duration `yaml:"interval"`
	Seed        int64         `yaml:"seed"`
	Pattern     string        `yaml:"pattern"`
	Watch       bool          `yaml:"watch"`
	MetricsAddr string        `yaml:"metrics_addr"`
	LogLevel    string        `yaml:"log_level"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Cells:    100,
		Size:     900,
		Interval: 100 * time.Millisecond,
		Seed:     42,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Cells, "cells", c.Cells, "rows and columns of the board")
	fs.IntVar(&c.Size, "size", c.Size, "pixel size of the board, border included")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern file to load (.cells or .rle)")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "reload the pattern file when it changes")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// LoadFile overlays the YAML document at path onto c. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config %q: %w", path, err)
	}
	return c.Validate()
}

// Validate reports the first setting that cannot build a board.
func (c *Config) Validate() error {
	switch {
	case c.Cells <= 0:
		return fmt.Errorf("cells must be positive, got %d", c.Cells)
	case float64(c.Size) <= 2*life.BorderWidth:
		return fmt.Errorf("size %d leaves no room inside the border", c.Size)
	case c.Interval <= 0:
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	return nil
}

// SimConfig returns the string map handed to a sim factory.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"cells": strconv.Itoa(c.Cells),
		"size":  strconv.Itoa(c.Size),
	}
}
