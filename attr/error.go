// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package attr

import (
	"errors"
	"strconv"
)

// CountError is returned when an attribute does not hold
// the expected number of values.
type CountError struct {
	Expected int
	Actual   int
}

func (e *CountError) Error() string {
	return "attr: incorrect number of values: expected " + strconv.Itoa(e.Expected) + ", got " + strconv.Itoa(e.Actual)
}

// NumError is returned when a value of an attribute is not
// a valid real number.
type NumError struct {
	Token string
	Err   error
}

func (e *NumError) Error() string {
	return "attr: failed to parse " + strconv.Quote(e.Token) + " as a real value"
}

func (e *NumError) Unwrap() error { return e.Err }

// ErrMultipleOrientations is returned when more than one
// orientation attribute is present in the same element.
var ErrMultipleOrientations = errors.New("attr: multiple orientations specified")

// OrientationError is returned when an orientation
// attribute fails to decode.
type OrientationError struct {
	Attr string
	Err  error
}

func (e *OrientationError) Error() string {
	return "attr: bad orientation " + strconv.Quote(e.Attr) + ": " + e.Err.Error()
}

func (e *OrientationError) Unwrap() error { return e.Err }
