// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements math for 3D geometry, generic
// over the floating-point precision.
package linear

// V3 is a 3-component vector.
type V3[T Float] [3]T

// Add sets v to contain l + r.
func (v *V3[T]) Add(l, r *V3[T]) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V3[T]) Sub(l, r *V3[T]) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V3[T]) Scale(s T, w *V3[T]) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V3[T]) Dot(w *V3[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V3[T]) Len() T { return Sqrt(v.Dot(v)) }

// Norm sets v to contain w normalized.
// A zero-length w produces a vector of NaNs.
func (v *V3[T]) Norm(w *V3[T]) { v.Scale(1/w.Len(), w) }

// Cross sets v to contain l × r.
func (v *V3[T]) Cross(l, r *V3[T]) {
	*v = V3[T]{
		l[1]*r[2] - l[2]*r[1],
		l[2]*r[0] - l[0]*r[2],
		l[0]*r[1] - l[1]*r[0],
	}
}

// Mul sets v to contain m ⋅ w.
func (v *V3[T]) Mul(m *M3[T], w *V3[T]) {
	var u V3[T]
	for i := range m {
		for j := range u {
			u[j] += m[i][j] * w[i]
		}
	}
	*v = u
}

// Dist returns the distance between points v and w.
func (v *V3[T]) Dist(w *V3[T]) T {
	var d V3[T]
	d.Sub(w, v)
	return d.Len()
}

// Mid sets v to contain the midpoint of l and r.
func (v *V3[T]) Mid(l, r *V3[T]) {
	for i := range v {
		v[i] = l[i] + (r[i]-l[i])*0.5
	}
}
