// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package attr

import (
	"log/slog"

	"github.com/gviegas/mjcf/linear"
)

// Element is the interface through which attributes of an
// element are looked up.
type Element interface {
	Attr(name string) (string, bool)
}

// Orientation attributes, in the order they are checked.
var orientAttrs = [...]string{
	"quat",
	"axisangle",
	"euler",
	"xyaxes",
	"zaxis",
	"fromto",
}

// Tolerance and iteration limit used to extract a rotation
// from xyaxes.
const (
	xyaxesEpsScale = 16
	xyaxesMaxIter  = 100
)

// YAxis returns the reference axis that zaxis and fromto
// orientations rotate from.
func YAxis[T linear.Float]() linear.V3[T] { return linear.V3[T]{0, 1, 0} }

// Orientation resolves the orientation of elem from at most
// one of its orientation attributes (quat, axisangle, euler,
// xyaxes, zaxis and, if allowFromTo is true, fromto).
// It returns the identity rotation if none is present, and
// ErrMultipleOrientations as soon as a second one is found.
// A fromto attribute that is not allowed is logged and
// ignored.
func Orientation[T linear.Float](log *slog.Logger, elem Element, allowFromTo bool) (linear.Q[T], error) {
	var q linear.Q[T]
	q.I()
	var found bool
	for _, name := range orientAttrs {
		text, ok := elem.Attr(name)
		if !ok {
			continue
		}
		if name == "fromto" && !allowFromTo {
			log.Warn("fromto orientation not allowed, ignoring", "element", elem)
			continue
		}
		if found {
			return linear.Q[T]{}, ErrMultipleOrientations
		}
		found = true
		var err error
		if q, err = decodeOrientation[T](name, text); err != nil {
			return linear.Q[T]{}, &OrientationError{Attr: name, Err: err}
		}
	}
	return q, nil
}

// decodeOrientation decodes the value of the named
// orientation attribute.
// Undefined rotations (zero-length axes, opposite vectors,
// non-convergent xyaxes) produce the identity.
func decodeOrientation[T linear.Float](name, text string) (q linear.Q[T], err error) {
	q.I()
	switch name {
	case "quat":
		// w x y z.
		var s [4]T
		if s, err = Decode4[T](text); err != nil {
			return
		}
		p := linear.Q[T]{V: linear.V3[T]{s[1], s[2], s[3]}, R: s[0]}
		if p.Len() > 0 {
			q.Norm(&p)
		}
	case "axisangle":
		var s [4]T
		if s, err = Decode4[T](text); err != nil {
			return
		}
		axis := linear.V3[T]{s[0], s[1], s[2]}
		if axis.Len() > 0 {
			axis.Norm(&axis)
			q.Rotate(s[3], &axis)
		}
	case "euler":
		var v linear.V3[T]
		if v, err = Decode3[T](text); err != nil {
			return
		}
		// TODO: Honor the compiler's eulerseq option once
		// <compiler> is parsed.
		q.Euler(v[0], v[1], v[2])
	case "xyaxes":
		var x, y, z linear.V3[T]
		if x, y, err = Decode6[T](text); err != nil {
			return
		}
		z.Cross(&x, &y)
		m := linear.M3[T]{x, y, z}
		q.FromM3(&m, xyaxesEpsScale*linear.Epsilon[T](), xyaxesMaxIter)
	case "zaxis":
		var z linear.V3[T]
		if z, err = Decode3[T](text); err != nil {
			return
		}
		y := YAxis[T]()
		q.Between(&y, &z)
	case "fromto":
		var p0, p1, d linear.V3[T]
		if p0, p1, err = Decode6[T](text); err != nil {
			return
		}
		d.Sub(&p1, &p0)
		y := YAxis[T]()
		q.Between(&y, &d)
	}
	return
}
