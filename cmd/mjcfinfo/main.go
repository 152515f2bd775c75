// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Command mjcfinfo loads an MJCF model and prints its
// colliders.
//
// Usage:
//
//	mjcfinfo [-config file] [-precision 32|64] [-v] model.xml[.gz|.zst]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/gviegas/mjcf"
	"github.com/gviegas/mjcf/collider"
	"github.com/gviegas/mjcf/internal/config"
	"github.com/gviegas/mjcf/linear"
	"github.com/gviegas/mjcf/world"
)

func main() { os.Exit(run(os.Args[1:], os.Stdout, os.Stderr)) }

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mjcfinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "configuration `file` (YAML)")
	precision := fs.Int("precision", 0, "floating-point precision, 32 or 64")
	verbose := fs.Bool("v", false, "log debug messages")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: mjcfinfo [-config file] [-precision 32|64] [-v] model.xml[.gz|.zst]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintln(stderr, "mjcfinfo:", err)
			return 1
		}
	}
	if *precision != 0 {
		cfg.Precision = *precision
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "mjcfinfo:", err)
		return 1
	}

	log := newLogger(&cfg, stderr)
	mjcf.SetRootLogger(log)
	defer mjcf.DropRootLogger()

	path := fs.Arg(0)
	if err := load(&cfg, path, stdout); err != nil {
		log.Error("failed to load model", "path", path, "reason", err)
		return 1
	}
	return 0
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level, _ := cfg.Level()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// open opens the file at path, decompressing it according
// to its extension.
func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readCloser{zr, func() error { return errors.Join(zr.Close(), f.Close()) }}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readCloser{zr, func() error { zr.Close(); return f.Close() }}, nil
	}
	return f, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error { return r.close() }

func load(cfg *config.Config, path string, w io.Writer) error {
	r, err := open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	var st world.Strategy = world.Native{}
	if cfg.Cylinder.Strategy == "hull" {
		st = world.Hull{Segments: cfg.Cylinder.Segments}
	}
	if cfg.Precision == 32 {
		return report[float32](r, st, w)
	}
	return report[float64](r, st, w)
}

func report[T linear.Float](r io.Reader, st world.Strategy, w io.Writer) error {
	m, err := mjcf.Decode[T](r)
	if err != nil {
		return err
	}
	wd := world.New[T](world.WithCylinder(st))
	hs := m.Build(wd)
	descs := m.Colliders()

	fmt.Fprintf(w, "model %q: %d colliders (float%d)\n", m.Name, m.Len(), linear.Bits[T]())
	for i, h := range hs {
		c := wd.Get(h)
		name := descs[i].Name
		if name == "" {
			name = "-"
		}
		p, q := c.Position, c.Rotation
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\tpos=(%.4g %.4g %.4g) rot=(%.4g %.4g %.4g %.4g) density=%g margin=%g friction=%g\n",
			h, name, c.Shape.Kind(), dims(c.Shape),
			p[0], p[1], p[2], q.W, q.V[0], q.V[1], q.V[2],
			c.Density, c.Margin, c.Material.Friction)
	}
	return nil
}

func dims[T linear.Float](s collider.Shape[T]) string {
	switch s := s.(type) {
	case collider.Plane[T]:
		return fmt.Sprintf("normal=(%g %g %g)", s.Normal[0], s.Normal[1], s.Normal[2])
	case collider.Sphere[T]:
		return fmt.Sprintf("radius=%g", s.Radius)
	case collider.Capsule[T]:
		return fmt.Sprintf("radius=%g half_length=%g", s.Radius, s.HalfLength)
	case collider.Cylinder[T]:
		return fmt.Sprintf("radius=%g half_length=%g", s.Radius, s.HalfLength)
	case collider.Box[T]:
		return fmt.Sprintf("half_extents=(%g %g %g)", s.HalfExtents[0], s.HalfExtents[1], s.HalfExtents[2])
	case collider.ConvexHull[T]:
		return fmt.Sprintf("points=%d faces=%d", len(s.Points), len(s.Faces))
	}
	return "?"
}
