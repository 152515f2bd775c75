// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package collider

import (
	"math"

	"github.com/gviegas/mjcf/linear"
)

// Kind identifies the concrete type of a Shape.
type Kind int

// Shape kinds.
const (
	KPlane Kind = iota
	KSphere
	KCapsule
	KCylinder
	KBox
	KConvexHull
)

func (k Kind) String() string {
	switch k {
	case KPlane:
		return "plane"
	case KSphere:
		return "sphere"
	case KCapsule:
		return "capsule"
	case KCylinder:
		return "cylinder"
	case KBox:
		return "box"
	case KConvexHull:
		return "convexhull"
	}
	return "Kind(?)"
}

// Shape is the geometry of a collider.
// Its dynamic type is one of Plane, Sphere, Capsule,
// Cylinder, Box or ConvexHull.
type Shape[T linear.Float] interface {
	Kind() Kind
	shape(T)
}

// Plane is a half-space whose boundary passes through the
// origin.
type Plane[T linear.Float] struct {
	Normal linear.V3[T] // Unit vector.
}

// Sphere is a ball centered at the origin.
type Sphere[T linear.Float] struct {
	Radius T
}

// Capsule is a swept sphere whose segment lies on the Y
// axis, centered at the origin.
type Capsule[T linear.Float] struct {
	HalfLength T
	Radius     T
}

// Cylinder is a cylinder whose axis is the Y axis, centered
// at the origin.
// Backends lacking a native cylinder can substitute the
// convex hull returned by CylinderHull.
type Cylinder[T linear.Float] struct {
	HalfLength T
	Radius     T
}

// Box is a cuboid centered at the origin.
type Box[T linear.Float] struct {
	HalfExtents linear.V3[T]
}

// ConvexHull is a convex polyhedron.
// Faces index into Points and are wound counter-clockwise
// when seen from outside.
type ConvexHull[T linear.Float] struct {
	Points []linear.V3[T]
	Faces  [][3]int
}

func (Plane[T]) Kind() Kind      { return KPlane }
func (Sphere[T]) Kind() Kind     { return KSphere }
func (Capsule[T]) Kind() Kind    { return KCapsule }
func (Cylinder[T]) Kind() Kind   { return KCylinder }
func (Box[T]) Kind() Kind        { return KBox }
func (ConvexHull[T]) Kind() Kind { return KConvexHull }

func (Plane[T]) shape(T)      {}
func (Sphere[T]) shape(T)     {}
func (Capsule[T]) shape(T)    {}
func (Cylinder[T]) shape(T)   {}
func (Box[T]) shape(T)        {}
func (ConvexHull[T]) shape(T) {}

// DefaultSubdiv is the number of subdivisions used to
// tessellate cylinders.
const DefaultSubdiv = 32

// CylinderHull tessellates c into a triangle mesh with
// nsubdiv vertices in each of its two rings, which is also
// the convex hull of those vertices.
// nsubdiv values less than 3 are treated as 3.
func CylinderHull[T linear.Float](c Cylinder[T], nsubdiv int) ConvexHull[T] {
	n := max(nsubdiv, 3)
	h := ConvexHull[T]{
		Points: make([]linear.V3[T], 2*n),
		Faces:  make([][3]int, 0, 4*n-4),
	}
	// Bottom ring in [0, n), top ring in [n, 2n).
	for i := range n {
		ang := 2 * math.Pi * float64(i) / float64(n)
		x := c.Radius * T(math.Cos(ang))
		z := c.Radius * T(math.Sin(ang))
		h.Points[i] = linear.V3[T]{x, -c.HalfLength, z}
		h.Points[n+i] = linear.V3[T]{x, c.HalfLength, z}
	}
	for i := range n {
		j := (i + 1) % n
		h.Faces = append(h.Faces, [3]int{i, n + i, j}, [3]int{j, n + i, n + j})
	}
	for i := 1; i < n-1; i++ {
		h.Faces = append(h.Faces, [3]int{0, i, i + 1}, [3]int{n, n + i + 1, n + i})
	}
	return h
}
