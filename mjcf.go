// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package mjcf parses MJCF (MuJoCo XML) documents into
// physics-backend agnostic collider descriptors.
//
// Only the geometry of the world body is interpreted.
// Parsed models are instantiated by replaying their
// descriptors through a collider.Builder.
package mjcf

import (
	"io"
	"log/slog"
	"slices"

	"github.com/gviegas/mjcf/collider"
	"github.com/gviegas/mjcf/geom"
	"github.com/gviegas/mjcf/linear"
	"github.com/gviegas/mjcf/xmldoc"
)

// DefaultName is the name of models whose root element
// has no model attribute.
const DefaultName = "MuJoCo Model"

// Model is a parsed MJCF document.
type Model[T linear.Float] struct {
	Name      string
	colliders []collider.Desc[T]
}

// Model32 is a single-precision Model.
type Model32 = Model[float32]

// Model64 is a double-precision Model.
type Model64 = Model[float64]

// Len returns the number of colliders in m.
func (m *Model[T]) Len() int { return len(m.colliders) }

// Colliders returns a copy of the collider descriptors of
// m, in document order.
func (m *Model[T]) Colliders() []collider.Desc[T] {
	s := slices.Clone(m.colliders)
	for i := range s {
		if c := s[i].UserData.RGBA; c != nil {
			rgba := *c
			s[i].UserData.RGBA = &rgba
		}
	}
	return s
}

// Build creates every collider of m using b, in document
// order, and returns their handles.
func (m *Model[T]) Build(b collider.Builder[T]) []collider.Handle {
	hs := make([]collider.Handle, len(m.colliders))
	for i := range m.colliders {
		hs[i] = m.colliders[i].Build(b)
	}
	return hs
}

// Parse parses the MJCF document in text.
func Parse[T linear.Float](text string) (*Model[T], error) {
	root, err := xmldoc.Parse(text)
	if err != nil {
		return nil, &Error{Kind: BadXML, Err: err}
	}
	return parse[T](RootLogger(), root)
}

// Decode is like Parse but reads the document from r.
func Decode[T linear.Float](r io.Reader) (*Model[T], error) {
	root, err := xmldoc.Decode(r)
	if err != nil {
		return nil, &Error{Kind: BadXML, Err: err}
	}
	return parse[T](RootLogger(), root)
}

// ParseFloat32 calls Parse[float32].
func ParseFloat32(text string) (*Model32, error) { return Parse[float32](text) }

// ParseFloat64 calls Parse[float64].
func ParseFloat64(text string) (*Model64, error) { return Parse[float64](text) }

func parse[T linear.Float](log *slog.Logger, root *xmldoc.Element) (*Model[T], error) {
	log.Debug("parsing model")
	if root.Name != "mujoco" {
		return nil, &Error{Kind: MissingRequiredTag, Tag: "mujoco"}
	}
	m := &Model[T]{Name: DefaultName}
	if name, ok := root.Attr("model"); ok {
		m.Name = name
		log.Debug("model name set", "model_name", name)
	}
	for _, child := range root.Children {
		if child.Name != "worldbody" {
			log.Debug("skipping element", "tag", child.Name, "line", child.Line)
			continue
		}
		// The last worldbody wins.
		colliders, err := parseWorldBody[T](log, child)
		if err != nil {
			return nil, err
		}
		m.colliders = colliders
	}
	return m, nil
}

func parseWorldBody[T linear.Float](log *slog.Logger, elem *xmldoc.Element) ([]collider.Desc[T], error) {
	log.Debug("parsing worldbody", "line", elem.Line)
	if len(elem.Attrs) != 0 {
		return nil, &Error{Kind: WorldBodyHasAttributes, Tag: elem.Name, Line: elem.Line}
	}
	var colliders []collider.Desc[T]
	for _, child := range elem.Children {
		switch child.Name {
		case "inertial", "joint", "freejoint":
			return nil, &Error{Kind: WorldBodyInvalidChildren, Tag: child.Name, Line: child.Line}
		case "geom":
			d, err := geom.Parse[T](log, child)
			if err != nil {
				return nil, &Error{Kind: Geom, Tag: child.Name, Line: child.Line, Err: err}
			}
			colliders = append(colliders, d)
		case "body", "site", "camera", "light":
			// XXX: Not interpreted yet.
			log.Debug("skipping element", "tag", child.Name, "line", child.Line)
		default:
			log.Warn("ignoring unsupported tag", "child", child.Name, "line", child.Line)
		}
	}
	return colliders, nil
}
