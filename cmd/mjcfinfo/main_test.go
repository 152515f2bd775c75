// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var o, e bytes.Buffer
	code = run(args, &o, &e)
	return code, o.String(), e.String()
}

func compress(t *testing.T, ext string) string {
	t.Helper()
	src, err := os.ReadFile("testdata/scene.xml")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "scene.xml"+ext)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var w io.WriteCloser
	switch ext {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".zst":
		if w, err = zstd.NewWriter(f); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := w.Write(src); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func checkScene(t *testing.T, out string, bits string) {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("run: output lines\nhave %d\nwant 6\n%s", len(lines), out)
	}
	if want := `model "scene": 5 colliders (` + bits + `)`; lines[0] != want {
		t.Fatalf("run: header\nhave %s\nwant %s", lines[0], want)
	}
	for i, x := range [...]struct{ name, kind string }{
		{"floor", "plane"},
		{"ball", "sphere"},
		{"rod", "capsule"},
		{"drum", "convexhull"},
		{"crate", "box"},
	} {
		f := strings.Split(lines[i+1], "\t")
		if f[1] != x.name || f[2] != x.kind {
			t.Fatalf("run: line %d\nhave %s\nwant %s %s", i+1, lines[i+1], x.name, x.kind)
		}
	}
}

func TestRun(t *testing.T) {
	code, out, errOut := runArgs(t, "testdata/scene.xml")
	if code != 0 {
		t.Fatalf("run: exit code\nhave %d\nwant 0\n%s", code, errOut)
	}
	checkScene(t, out, "float64")
	if !strings.Contains(out, "points=64 faces=124") {
		t.Fatalf("run: cylinder hull\nhave %s\nwant points=64 faces=124", out)
	}
	if !strings.Contains(out, "half_extents=(0.25 0.25 0.25)") {
		t.Fatalf("run: box\nhave %s", out)
	}
	// Default level is warn.
	if !strings.Contains(errOut, "level=WARN") || strings.Contains(errOut, "level=DEBUG") {
		t.Fatalf("run: log output\nhave %s", errOut)
	}
}

func TestRunCompressed(t *testing.T) {
	for _, ext := range [...]string{".gz", ".zst"} {
		code, out, errOut := runArgs(t, "-precision", "32", compress(t, ext))
		if code != 0 {
			t.Fatalf("run(%s): exit code\nhave %d\nwant 0\n%s", ext, code, errOut)
		}
		checkScene(t, out, "float32")
	}
}

func TestRunConfig(t *testing.T) {
	code, out, errOut := runArgs(t, "-config", "testdata/config.yaml", "testdata/scene.xml")
	if code != 0 {
		t.Fatalf("run: exit code\nhave %d\nwant 0\n%s", code, errOut)
	}
	if !strings.Contains(out, "(float32)") || !strings.Contains(out, "\tdrum\tcylinder\t") {
		t.Fatalf("run: output\nhave %s", out)
	}
	if !strings.Contains(errOut, `"level":"DEBUG"`) || !strings.Contains(errOut, `"mjcf/goversion"`) {
		t.Fatalf("run: log output\nhave %s", errOut)
	}
}

func TestRunErrors(t *testing.T) {
	for _, x := range [...]struct {
		args []string
		code int
		msg  string
	}{
		{nil, 2, "usage: mjcfinfo"},
		{[]string{"-nope", "testdata/scene.xml"}, 2, "flag provided but not defined"},
		{[]string{"-precision", "16", "testdata/scene.xml"}, 1, "config: invalid precision 16"},
		{[]string{"-config", "testdata/missing.yaml", "testdata/scene.xml"}, 1, "missing.yaml"},
		{[]string{"testdata/missing.xml"}, 1, "failed to load model"},
		{[]string{"testdata/bad.xml"}, 1, "attr: incorrect number of values"},
	} {
		code, _, errOut := runArgs(t, x.args...)
		if code != x.code {
			t.Fatalf("run(%v): exit code\nhave %d\nwant %d", x.args, code, x.code)
		}
		if !strings.Contains(errOut, x.msg) {
			t.Fatalf("run(%v): stderr\nhave %s\nwant %q", x.args, errOut, x.msg)
		}
	}
}
