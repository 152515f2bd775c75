// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package geom

import (
	"errors"
	"strconv"
)

// InvalidTypeError is returned when the type attribute
// names no known shape.
type InvalidTypeError struct {
	Type string
}

func (e *InvalidTypeError) Error() string {
	return "geom: invalid shape type " + strconv.Quote(e.Type)
}

// UnsupportedTypeError is returned for known shape types
// that cannot be represented as colliders.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return "geom: shape type " + strconv.Quote(e.Type) + " is not supported"
}

// MissingAttrError is returned when a required attribute
// is absent.
type MissingAttrError struct {
	Name string
}

func (e *MissingAttrError) Error() string {
	return "geom: required attribute " + strconv.Quote(e.Name) + " missing"
}

// ErrMultiplePositions is returned when both pos and fromto
// are present in a geom that positions itself from fromto.
var ErrMultiplePositions = errors.New("geom: multiple positions specified")

// AttrError is returned when the value of an attribute is
// invalid.
// Err is either an attr error or one of attr's orientation
// errors.
type AttrError struct {
	Attr string
	Err  error
}

func (e *AttrError) Error() string {
	return "geom: bad attribute " + strconv.Quote(e.Attr) + ": " + e.Err.Error()
}

func (e *AttrError) Unwrap() error { return e.Err }
