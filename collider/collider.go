// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package collider defines backend-agnostic collider
// descriptors and the interface through which physics
// backends instantiate them.
package collider

import (
	"github.com/gviegas/mjcf/linear"
)

// Handle identifies a collider created by a Builder.
type Handle int

// Nil is the invalid Handle.
const Nil Handle = 0

// Builder is implemented by physics backends.
type Builder[T linear.Float] interface {
	// CreateCollider instantiates a collider in the
	// backend and returns its handle.
	// Implementations must not retain references into
	// material or data past the call.
	CreateCollider(shape Shape[T], pose Pose[T], density, margin T, material Material[T], data UserData[T]) Handle
}

// Pose is a rigid transform.
type Pose[T linear.Float] struct {
	Translation linear.V3[T]
	Rotation    linear.Q[T] // Unit quaternion.
}

// I sets p to the identity transform.
func (p *Pose[T]) I() {
	p.Translation = linear.V3[T]{}
	p.Rotation.I()
}

// Material describes contact response.
type Material[T linear.Float] struct {
	Restitution T
	Friction    T
}

// DefaultMaterial returns the material used when no friction
// is specified.
func DefaultMaterial[T linear.Float]() Material[T] {
	return Material[T]{Restitution: 0, Friction: 1}
}

// UserData holds collider data that backends may ignore.
type UserData[T linear.Float] struct {
	// RGBA is nil when no color was specified.
	// Alpha is kept but not supported.
	RGBA              *[4]float32
	TorsionalFriction T
	RollingFriction   T
}

// DefaultUserData returns the user data used when no
// friction/color is specified.
func DefaultUserData[T linear.Float]() UserData[T] {
	return UserData[T]{
		TorsionalFriction: 0.005,
		RollingFriction:   0.0001,
	}
}

// RGB returns the color channels, if any.
func (u *UserData[T]) RGB() (rgb [3]float32, ok bool) {
	if u.RGBA == nil {
		return
	}
	return [3]float32(u.RGBA[:3]), true
}

// Default values of Desc fields.
const (
	DefaultMargin  = 0.01
	DefaultDensity = 0
)

// Desc describes a single collider.
type Desc[T linear.Float] struct {
	Name     string
	Shape    Shape[T]
	Pose     Pose[T]
	Margin   T
	Density  T
	Material Material[T]
	UserData UserData[T]
}

// NewDesc returns a Desc for shape with default values
// everywhere else.
func NewDesc[T linear.Float](shape Shape[T]) Desc[T] {
	d := Desc[T]{
		Shape:    shape,
		Margin:   DefaultMargin,
		Density:  DefaultDensity,
		Material: DefaultMaterial[T](),
		UserData: DefaultUserData[T](),
	}
	d.Pose.I()
	return d
}

// Build creates the collider described by d using b.
// The color is copied so b cannot alias d.
func (d *Desc[T]) Build(b Builder[T]) Handle {
	data := d.UserData
	if data.RGBA != nil {
		rgba := *data.RGBA
		data.RGBA = &rgba
	}
	return b.CreateCollider(d.Shape, d.Pose, d.Density, d.Margin, d.Material, data)
}
