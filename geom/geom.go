// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package geom interprets MJCF geom elements as collider
// descriptors.
package geom

import (
	"log/slog"
	"math"

	"github.com/gviegas/mjcf/attr"
	"github.com/gviegas/mjcf/collider"
	"github.com/gviegas/mjcf/internal/bitvec"
	"github.com/gviegas/mjcf/linear"
	"github.com/gviegas/mjcf/xmldoc"
)

// Attributes that are recognized but have no effect on the
// resulting descriptor.
var unimplemented = [...]string{
	"class",
	"contype",
	"conaffinity",
	"condim",
	"group",
	"priority",
	"material",
	"mass",
	"solmix",
	"solref",
	"solimpl",
	"gap",
	"hfield",
	"mesh",
	"fitscale",
}

// element wraps an xmldoc.Element to record which of its
// attributes were looked up.
type element struct {
	*xmldoc.Element
	seen bitvec.V[uint32]
}

func newElement(e *xmldoc.Element) *element {
	x := &element{Element: e}
	x.seen.Fit(len(e.Attrs))
	return x
}

// Attr implements attr.Element.
func (e *element) Attr(name string) (string, bool) {
	for i, a := range e.Attrs {
		if a.Name.Local == name && a.Name.Space == "" {
			e.seen.Set(i)
			return a.Value, true
		}
	}
	return "", false
}

func (e *element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// unseen returns the names of attributes that were never
// looked up.
func (e *element) unseen() (names []string) {
	for i, set := range e.seen.All() {
		if i >= len(e.Attrs) {
			break
		}
		if !set {
			names = append(names, e.Attrs[i].Name.Local)
		}
	}
	return
}

// Parse interprets elem as a geom and returns the collider
// descriptor it describes.
// Diagnostics about ignored or unsupported input are
// written to log.
func Parse[T linear.Float](log *slog.Logger, elem *xmldoc.Element) (collider.Desc[T], error) {
	log.Debug("parsing geom", "line", elem.Line)
	e := newElement(elem)

	typ, ok := e.Attr("type")
	if !ok {
		typ = "sphere"
	}
	shape, err := parseShape[T](log, e, typ)
	if err != nil {
		return collider.Desc[T]{}, err
	}
	d := collider.NewDesc(shape)
	if name, ok := e.Attr("name"); ok {
		d.Name = name
	}

	if d.Pose.Translation, err = parsePosition[T](e, typ); err != nil {
		return collider.Desc[T]{}, err
	}
	if d.Pose.Rotation, err = parseRotation[T](log, e, typ); err != nil {
		return collider.Desc[T]{}, err
	}

	if err = parseOptional(log, e, &d); err != nil {
		return collider.Desc[T]{}, err
	}

	for _, name := range unimplemented {
		if e.HasAttr(name) {
			log.Warn("attribute not supported, ignoring", "attr", name, "element", elem)
		}
	}
	for _, name := range e.unseen() {
		log.Debug("unknown attribute", "attr", name, "element", elem)
	}
	return d, nil
}

// size decodes the size attribute as n values.
func size[T linear.Float](e *element, n int) ([]T, error) {
	text, ok := e.Attr("size")
	if !ok {
		return nil, &MissingAttrError{Name: "size"}
	}
	s, err := attr.Decode[T](text, n)
	if err != nil {
		return nil, &AttrError{Attr: "size", Err: err}
	}
	return s, nil
}

// fromTo decodes the fromto attribute, which must exist.
func fromTo[T linear.Float](e *element) (p0, p1 linear.V3[T], err error) {
	text, _ := e.Attr("fromto")
	if p0, p1, err = attr.Decode6[T](text); err != nil {
		err = &AttrError{Attr: "fromto", Err: err}
	}
	return
}

func parseShape[T linear.Float](log *slog.Logger, e *element, typ string) (collider.Shape[T], error) {
	switch typ {
	case "plane":
		if e.HasAttr("size") {
			log.Warn("size ignored", "type", typ)
		}
		return collider.Plane[T]{Normal: linear.V3[T]{0, 0, 1}}, nil
	case "hfield", "ellipsoid", "mesh":
		return nil, &UnsupportedTypeError{Type: typ}
	case "sphere":
		s, err := size[T](e, 1)
		if err != nil {
			return nil, err
		}
		return collider.Sphere[T]{Radius: s[0]}, nil
	case "capsule", "cylinder":
		var radius, half T
		if e.HasAttr("fromto") {
			s, err := size[T](e, 1)
			if err != nil {
				return nil, err
			}
			p0, p1, err := fromTo[T](e)
			if err != nil {
				return nil, err
			}
			radius, half = s[0], p0.Dist(&p1)/2
		} else {
			s, err := size[T](e, 2)
			if err != nil {
				return nil, err
			}
			radius, half = s[0], s[1]
		}
		if typ == "capsule" {
			log.Debug("capsule shape", "radius", radius, "half_length", half)
			return collider.Capsule[T]{HalfLength: half, Radius: radius}, nil
		}
		log.Debug("cylinder shape", "radius", radius, "half_length", half)
		return collider.Cylinder[T]{HalfLength: half, Radius: radius}, nil
	case "box":
		s, err := size[T](e, 3)
		if err != nil {
			return nil, err
		}
		return collider.Box[T]{HalfExtents: linear.V3[T]{s[0], s[1], s[2]}}, nil
	}
	return nil, &InvalidTypeError{Type: typ}
}

func parsePosition[T linear.Float](e *element, typ string) (linear.V3[T], error) {
	switch typ {
	case "capsule", "cylinder", "box":
		if e.HasAttr("fromto") {
			if e.HasAttr("pos") {
				return linear.V3[T]{}, ErrMultiplePositions
			}
			p0, p1, err := fromTo[T](e)
			if err != nil {
				return linear.V3[T]{}, err
			}
			var c linear.V3[T]
			c.Mid(&p0, &p1)
			return c, nil
		}
	}
	text, ok := e.Attr("pos")
	if !ok {
		return linear.V3[T]{}, nil
	}
	v, err := attr.Decode3[T](text)
	if err != nil {
		return linear.V3[T]{}, &AttrError{Attr: "pos", Err: err}
	}
	return v, nil
}

func parseRotation[T linear.Float](log *slog.Logger, e *element, typ string) (q linear.Q[T], err error) {
	allow := typ != "plane" && typ != "sphere"
	if q, err = attr.Orientation[T](log, e, allow); err != nil {
		return q, &AttrError{Attr: "orientation", Err: err}
	}
	switch typ {
	case "plane":
		if q != (linear.Q[T]{R: 1}) {
			log.Warn("orientation ignored", "type", typ)
		}
		q.I()
	case "capsule", "cylinder":
		// Quarter turn about the principal axis.
		var fix, r linear.Q[T]
		y := attr.YAxis[T]()
		fix.Rotate(math.Pi/2, &y)
		r.Mul(&q, &fix)
		q = r
	}
	return
}

func parseOptional[T linear.Float](log *slog.Logger, e *element, d *collider.Desc[T]) error {
	if text, ok := e.Attr("density"); ok {
		x, err := attr.Decode1[T](text)
		if err != nil {
			return &AttrError{Attr: "density", Err: err}
		}
		d.Density = x
	}
	if text, ok := e.Attr("margin"); ok {
		x, err := attr.Decode1[T](text)
		if err != nil {
			return &AttrError{Attr: "margin", Err: err}
		}
		d.Margin = x
	}
	if text, ok := e.Attr("friction"); ok {
		f, err := attr.Decode3[T](text)
		if err != nil {
			return &AttrError{Attr: "friction", Err: err}
		}
		log.Warn("torsional and rolling friction not supported, storing in user data",
			"torsional_friction", f[1], "rolling_friction", f[2])
		d.Material = collider.Material[T]{Restitution: 0, Friction: f[0]}
		d.UserData.TorsionalFriction = f[1]
		d.UserData.RollingFriction = f[2]
	}
	if text, ok := e.Attr("rgba"); ok {
		rgba, err := attr.Decode4[float32](text)
		if err != nil {
			return &AttrError{Attr: "rgba", Err: err}
		}
		log.Warn("alpha color values not supported", "rgba", rgba)
		d.UserData.RGBA = &rgba
	}
	return nil
}
