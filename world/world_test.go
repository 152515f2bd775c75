// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package world

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gviegas/mjcf/collider"
	"github.com/gviegas/mjcf/linear"
)

func create[T linear.Float](w *World[T], s collider.Shape[T]) collider.Handle {
	d := collider.NewDesc(s)
	return d.Build(w)
}

func TestNew(t *testing.T) {
	w := New[float64]()
	if w.Len() != 0 {
		t.Fatalf("New().Len\nhave %d\nwant 0", w.Len())
	}
	if w.cylinder != DefaultStrategy {
		t.Fatalf("New().cylinder\nhave %v\nwant %v", w.cylinder, DefaultStrategy)
	}
	for range w.All() {
		t.Fatal("New().All: unexpected collider")
	}
	if w.Get(collider.Nil) != nil || w.Get(1) != nil {
		t.Fatal("New().Get: unexpected collider")
	}
	if w.Remove(1) {
		t.Fatal("New().Remove: unexpected success")
	}
	if w := New[float32](WithCylinder(nil)); w.cylinder != DefaultStrategy {
		t.Fatalf("New(WithCylinder(nil)).cylinder\nhave %v\nwant %v", w.cylinder, DefaultStrategy)
	}
}

func TestCreateCollider(t *testing.T) {
	w := New[float32]()
	d := collider.NewDesc[float32](collider.Sphere[float32]{0.5})
	d.Pose.Translation = linear.V3[float32]{1, 2, 3}
	d.Pose.Rotation = linear.Q[float32]{V: linear.V3[float32]{0, 0, 1}}
	d.Density = 1000
	d.Margin = 0.25
	d.Material.Friction = 0.5
	d.UserData.TorsionalFriction = 0.125
	d.UserData.RGBA = &[4]float32{1, 0.5, 0.25, 1}
	h := d.Build(w)
	if h == collider.Nil {
		t.Fatal("World.CreateCollider: unexpected Nil handle")
	}
	c := w.Get(h)
	if c == nil {
		t.Fatal("World.Get: unexpected nil")
	}
	if c.Shape != d.Shape {
		t.Fatalf("Collider.Shape\nhave %v\nwant %v", c.Shape, d.Shape)
	}
	if c.Position != (mgl64.Vec3{1, 2, 3}) {
		t.Fatalf("Collider.Position\nhave %v\nwant [1 2 3]", c.Position)
	}
	if want := (mgl64.Quat{W: 0, V: mgl64.Vec3{0, 0, 1}}); c.Rotation != want {
		t.Fatalf("Collider.Rotation\nhave %v\nwant %v", c.Rotation, want)
	}
	if c.Density != 1000 || c.Margin != 0.25 {
		t.Fatalf("Collider.Density/Margin\nhave %v/%v\nwant 1000/0.25", c.Density, c.Margin)
	}
	if c.Material != (Material{Restitution: 0, Friction: 0.5}) {
		t.Fatalf("Collider.Material\nhave %v\nwant {0 0.5}", c.Material)
	}
	want := UserData{
		HasColor:          true,
		Color:             mgl32.Vec4{1, 0.5, 0.25, 1},
		TorsionalFriction: 0.125,
		RollingFriction:   float64(float32(0.0001)),
	}
	if c.UserData != want {
		t.Fatalf("Collider.UserData\nhave %+v\nwant %+v", c.UserData, want)
	}

	h2 := create(w, collider.Shape[float32](collider.Box[float32]{}))
	if c := w.Get(h2); c.UserData.HasColor {
		t.Fatal("Collider.UserData.HasColor: unexpected true")
	}
}

func TestHandles(t *testing.T) {
	w := New[float64]()
	var hs []collider.Handle
	for i := range 3*slotNBit + 1 {
		h := create(w, collider.Shape[float64](collider.Sphere[float64]{float64(i + 1)}))
		if h != collider.Handle(i+1) {
			t.Fatalf("World.CreateCollider\nhave %v\nwant %v", h, i+1)
		}
		hs = append(hs, h)
	}
	if w.Len() != len(hs) {
		t.Fatalf("World.Len\nhave %d\nwant %d", w.Len(), len(hs))
	}

	for _, h := range [...]collider.Handle{2, 40, 97} {
		if !w.Remove(h) {
			t.Fatalf("World.Remove(%v): unexpected failure", h)
		}
		if w.Remove(h) {
			t.Fatalf("World.Remove(%v): unexpected success", h)
		}
		if w.Get(h) != nil {
			t.Fatalf("World.Get(%v): unexpected collider", h)
		}
	}
	if w.Len() != len(hs)-3 {
		t.Fatalf("World.Len\nhave %d\nwant %d", w.Len(), len(hs)-3)
	}

	// Handles are reused lowest first.
	for _, want := range [...]collider.Handle{2, 40, 97, 98} {
		if h := create(w, collider.Shape[float64](collider.Sphere[float64]{1})); h != want {
			t.Fatalf("World.CreateCollider\nhave %v\nwant %v", h, want)
		}
	}

	prev := collider.Nil
	n := 0
	for h, c := range w.All() {
		if h <= prev {
			t.Fatalf("World.All: handle %v after %v", h, prev)
		}
		if c != w.Get(h) {
			t.Fatalf("World.All: collider of %v differs from World.Get", h)
		}
		prev = h
		n++
	}
	if n != w.Len() {
		t.Fatalf("World.All: count\nhave %d\nwant %d", n, w.Len())
	}
}

func TestCylinder(t *testing.T) {
	cyl := collider.Cylinder[float64]{HalfLength: 1, Radius: 0.5}

	w := New[float64]()
	h := create(w, collider.Shape[float64](cyl))
	hull, ok := w.Get(h).Shape.(collider.ConvexHull[float64])
	if !ok {
		t.Fatalf("Collider.Shape\nhave %T\nwant ConvexHull", w.Get(h).Shape)
	}
	if n := len(hull.Points); n != 2*collider.DefaultSubdiv {
		t.Fatalf("len(ConvexHull.Points)\nhave %d\nwant %d", n, 2*collider.DefaultSubdiv)
	}

	w = New[float64](WithCylinder(Hull{Segments: 8}))
	h = create(w, collider.Shape[float64](cyl))
	if hull := w.Get(h).Shape.(collider.ConvexHull[float64]); len(hull.Points) != 16 {
		t.Fatalf("len(ConvexHull.Points)\nhave %d\nwant 16", len(hull.Points))
	}

	w = New[float64](WithCylinder(Native{}))
	h = create(w, collider.Shape[float64](cyl))
	if s := w.Get(h).Shape; s != collider.Shape[float64](cyl) {
		t.Fatalf("Collider.Shape\nhave %v\nwant %v", s, cyl)
	}

	// Other shapes are never replaced.
	w = New[float64](WithCylinder(Hull{Segments: 8}))
	capsule := collider.Capsule[float64]{HalfLength: 1, Radius: 0.5}
	h = create(w, collider.Shape[float64](capsule))
	if s := w.Get(h).Shape; s != collider.Shape[float64](capsule) {
		t.Fatalf("Collider.Shape\nhave %v\nwant %v", s, capsule)
	}
}

func TestTransform(t *testing.T) {
	w := New[float64]()
	d := collider.NewDesc[float64](collider.Sphere[float64]{1})
	axis := linear.V3[float64]{0, 0, 1}
	d.Pose.Rotation.Rotate(math.Pi/2, &axis)
	d.Pose.Translation = linear.V3[float64]{10, 0, 0}
	c := w.Get(d.Build(w))

	p := c.Transform().Mul4x1(mgl64.Vec4{1, 0, 0, 1})
	if want := (mgl64.Vec4{10, 1, 0, 1}); !p.ApproxEqualThreshold(want, 1e-12) {
		t.Fatalf("Collider.Transform\nhave %v\nwant %v", p, want)
	}
}
