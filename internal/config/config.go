// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package config loads mjcfinfo configuration files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Log configures diagnostics output.
type Log struct {
	// One of "debug", "info", "warn" or "error".
	Level string `yaml:"level"`
	// Either "text" or "json".
	Format string `yaml:"format"`
}

// Cylinder configures how cylinders are built.
type Cylinder struct {
	// Either "hull" or "native".
	Strategy string `yaml:"strategy"`
	Segments int    `yaml:"segments,omitempty"`
}

// Config is the configuration of mjcfinfo.
type Config struct {
	Log       Log      `yaml:"log"`
	Precision int      `yaml:"precision"`
	Cylinder  Cylinder `yaml:"cylinder"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Log:       Log{Level: "warn", Format: "text"},
		Precision: 64,
		Cylinder:  Cylinder{Strategy: "hull", Segments: 32},
	}
}

func newErr(reason string) error {
	return errors.New("config: " + reason)
}

// Load reads the configuration file at path.
// Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Decode(bytes.NewReader(b))
}

// Decode is like Load but reads from r.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that c is a valid configuration.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return newErr("invalid log.format " + fmt.Sprintf("%q", c.Log.Format))
	}
	switch c.Precision {
	case 32, 64:
	default:
		return newErr(fmt.Sprintf("invalid precision %d", c.Precision))
	}
	switch c.Cylinder.Strategy {
	case "native":
	case "hull":
		if c.Cylinder.Segments < 3 {
			return newErr(fmt.Sprintf("invalid cylinder.segments %d", c.Cylinder.Segments))
		}
	default:
		return newErr("invalid cylinder.strategy " + fmt.Sprintf("%q", c.Cylinder.Strategy))
	}
	return nil
}

// Level returns the log level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, newErr("invalid log.level " + fmt.Sprintf("%q", c.Log.Level))
	}
	return l, nil
}
