// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package attr decodes MJCF attribute values.
package attr

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gviegas/mjcf/linear"
)

// Decode decodes text as n whitespace-separated real values.
// The number of values is checked before any of them is
// parsed. Values are parsed with the precision of T.
func Decode[T linear.Float](text string, n int) ([]T, error) {
	fields := strings.Fields(text)
	if len(fields) != n {
		return nil, &CountError{Expected: n, Actual: len(fields)}
	}
	bits := linear.Bits[T]()
	s := make([]T, n)
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, bits)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &NumError{Token: f, Err: err}
		}
		s[i] = T(x)
	}
	return s, nil
}

// Decode1 decodes text as a single real value.
func Decode1[T linear.Float](text string) (T, error) {
	s, err := Decode[T](text, 1)
	if err != nil {
		return 0, err
	}
	return s[0], nil
}

// Decode3 decodes text as a 3-component vector.
func Decode3[T linear.Float](text string) (v linear.V3[T], err error) {
	s, err := Decode[T](text, 3)
	if err == nil {
		copy(v[:], s)
	}
	return
}

// Decode4 decodes text as four real values.
func Decode4[T linear.Float](text string) (v [4]T, err error) {
	s, err := Decode[T](text, 4)
	if err == nil {
		copy(v[:], s)
	}
	return
}

// Decode6 decodes text as a pair of 3-component vectors.
func Decode6[T linear.Float](text string) (v, w linear.V3[T], err error) {
	s, err := Decode[T](text, 6)
	if err == nil {
		copy(v[:], s[:3])
		copy(w[:], s[3:])
	}
	return
}
