// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package world implements an in-memory collider.Builder.
//
// It keeps resolved collider records and is meant as a
// reference backend for tools and tests.
package world

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jinzhu/copier"

	"github.com/gviegas/mjcf/collider"
	"github.com/gviegas/mjcf/internal/bitvec"
	"github.com/gviegas/mjcf/linear"
)

// Material is the contact material of a Collider.
type Material struct {
	Restitution float64
	Friction    float64
}

// UserData is the extra data of a Collider.
type UserData struct {
	HasColor          bool
	Color             mgl32.Vec4
	TorsionalFriction float64
	RollingFriction   float64
}

// Collider is a collider stored in a World.
type Collider[T linear.Float] struct {
	Shape    collider.Shape[T]
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Density  float64
	Margin   float64
	Material Material
	UserData UserData
}

// Transform returns the local-to-world transform of c.
func (c *Collider[T]) Transform() mgl64.Mat4 {
	return mgl64.Translate3D(c.Position.Elem()).Mul4(c.Rotation.Mat4())
}

const slotNBit = 32

// World is a set of colliders.
// It is not safe for concurrent use.
type World[T linear.Float] struct {
	cylinder Strategy
	slots    []Collider[T]
	slotMap  bitvec.V[uint32]
	n        int
}

// New creates an empty World.
func New[T linear.Float](opts ...Option) *World[T] {
	o := options{cylinder: DefaultStrategy}
	for _, f := range opts {
		f(&o)
	}
	return &World[T]{cylinder: o.cylinder}
}

// CreateCollider implements collider.Builder.
func (w *World[T]) CreateCollider(shape collider.Shape[T], pose collider.Pose[T], density, margin T, material collider.Material[T], data collider.UserData[T]) collider.Handle {
	c := Collider[T]{
		Shape:    resolve(w.cylinder, shape),
		Position: toVec3(&pose.Translation),
		Rotation: toQuat(&pose.Rotation),
		Density:  float64(density),
		Margin:   float64(margin),
	}
	if err := copier.Copy(&c.Material, &material); err != nil {
		panic("world: unexpected copier failure: " + err.Error())
	}
	if err := copier.Copy(&c.UserData, &data); err != nil {
		panic("world: unexpected copier failure: " + err.Error())
	}
	if data.RGBA != nil {
		c.UserData.HasColor = true
		c.UserData.Color = mgl32.Vec4(*data.RGBA)
	}

	var i int
	if idx, ok := w.slotMap.Search(); !ok {
		var z [slotNBit]Collider[T]
		w.slots = append(w.slots, z[:]...)
		i = w.slotMap.Grow(1)
	} else {
		i = idx
	}
	w.slotMap.Set(i)
	w.slots[i] = c
	w.n++
	return collider.Handle(i + 1)
}

func (w *World[T]) index(h collider.Handle) (int, bool) {
	i := int(h) - 1
	if i < 0 || i >= w.slotMap.Len() || !w.slotMap.IsSet(i) {
		return 0, false
	}
	return i, true
}

// Get returns the collider identified by h.
// It returns nil if h is not valid. The returned
// pointer is invalidated by Remove(h).
func (w *World[T]) Get(h collider.Handle) *Collider[T] {
	i, ok := w.index(h)
	if !ok {
		return nil
	}
	return &w.slots[i]
}

// Remove removes the collider identified by h.
// Its handle may be reused by a later CreateCollider.
// It returns false if h is not valid.
func (w *World[T]) Remove(h collider.Handle) bool {
	i, ok := w.index(h)
	if !ok {
		return false
	}
	w.slotMap.Unset(i)
	w.slots[i] = Collider[T]{}
	w.n--
	return true
}

// Len returns the number of colliders in w.
func (w *World[T]) Len() int { return w.n }

// All returns an iterator over the colliders of w, in
// handle order.
func (w *World[T]) All() iter.Seq2[collider.Handle, *Collider[T]] {
	return func(yield func(collider.Handle, *Collider[T]) bool) {
		for i, set := range w.slotMap.All() {
			if set && !yield(collider.Handle(i+1), &w.slots[i]) {
				return
			}
		}
	}
}

func toVec3[T linear.Float](v *linear.V3[T]) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

func toQuat[T linear.Float](q *linear.Q[T]) mgl64.Quat {
	return mgl64.Quat{W: float64(q.R), V: toVec3(&q.V)}
}
