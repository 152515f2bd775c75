// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package world

import (
	"github.com/gviegas/mjcf/collider"
	"github.com/gviegas/mjcf/linear"
)

// Strategy defines how cylinders are represented.
// It is either Native or Hull.
type Strategy interface {
	strategy()
}

// Native keeps cylinders as collider.Cylinder.
type Native struct{}

// Hull replaces cylinders with the convex hull returned by
// collider.CylinderHull.
type Hull struct {
	Segments int
}

func (Native) strategy() {}
func (Hull) strategy()   {}

// DefaultStrategy is the cylinder strategy used when
// WithCylinder is not given.
var DefaultStrategy Strategy = Hull{Segments: collider.DefaultSubdiv}

// resolve returns the shape to be stored for s.
func resolve[T linear.Float](st Strategy, s collider.Shape[T]) collider.Shape[T] {
	c, ok := s.(collider.Cylinder[T])
	if !ok {
		return s
	}
	switch st := st.(type) {
	case Hull:
		return collider.CylinderHull(c, st.Segments)
	}
	return c
}

type options struct {
	cylinder Strategy
}

// Option configures a World.
type Option func(*options)

// WithCylinder sets the cylinder strategy.
// A nil s selects DefaultStrategy.
func WithCylinder(s Strategy) Option {
	return func(o *options) {
		if s == nil {
			s = DefaultStrategy
		}
		o.cylinder = s
	}
}
