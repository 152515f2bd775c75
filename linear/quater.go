// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

// Q is a quaternion.
type Q[T Float] struct {
	V V3[T]
	R T
}

// I makes q an identity quaternion.
func (q *Q[T]) I() { *q = Q[T]{R: 1} }

// Mul sets q to contain l ⋅ r.
func (q *Q[T]) Mul(l, r *Q[T]) {
	var v, w V3[T]
	v.Scale(r.R, &l.V)
	w.Scale(l.R, &r.V)
	v.Add(&v, &w)
	w.Cross(&l.V, &r.V)
	d := l.V.Dot(&r.V)
	q.V.Add(&v, &w)
	q.R = l.R*r.R - d
}

// Len returns the norm of q.
func (q *Q[T]) Len() T { return Sqrt(q.V.Dot(&q.V) + q.R*q.R) }

// Norm sets q to contain p normalized.
func (q *Q[T]) Norm(p *Q[T]) {
	s := 1 / p.Len()
	q.V.Scale(s, &p.V)
	q.R = s * p.R
}

// Rotate sets q to contain a rotation of rad radians
// about axis.
// axis must be a unit vector.
func (q *Q[T]) Rotate(rad T, axis *V3[T]) {
	q.V.Scale(Sin(rad*0.5), axis)
	q.R = Cos(rad * 0.5)
}

// Euler sets q to contain the rotation described by the
// roll, pitch and yaw angles (in radians), applied about
// the X, Y and Z axes respectively.
// The resulting rotation is Rz(yaw) ⋅ Ry(pitch) ⋅ Rx(roll).
func (q *Q[T]) Euler(roll, pitch, yaw T) {
	sr, cr := Sin(roll*0.5), Cos(roll*0.5)
	sp, cp := Sin(pitch*0.5), Cos(pitch*0.5)
	sy, cy := Sin(yaw*0.5), Cos(yaw*0.5)
	q.V = V3[T]{
		sr*cp*cy - cr*sp*sy,
		cr*sp*cy + sr*cp*sy,
		cr*cp*sy - sr*sp*cy,
	}
	q.R = cr*cp*cy + sr*sp*sy
}

// Between sets q to contain the smallest rotation that
// aligns the direction of from with that of to.
// It returns false, leaving q unchanged, if either vector
// has zero length or if the vectors point in opposite
// directions (the rotation is not unique).
func (q *Q[T]) Between(from, to *V3[T]) bool {
	eps := Epsilon[T]()
	lf, lt := from.Len(), to.Len()
	if !(lf > eps) || !(lt > eps) {
		return false
	}
	var f, t, c V3[T]
	f.Scale(1/lf, from)
	t.Scale(1/lt, to)
	c.Cross(&f, &t)
	d := f.Dot(&t)
	if n := c.Len(); n > eps {
		c.Scale(1/n, &c)
		q.Rotate(Acos(d), &c)
		return true
	}
	if d < 0 {
		return false
	}
	q.I()
	return true
}

// FromM3 sets q to contain the rotation closest to m,
// extracted iteratively starting from the identity.
// Iteration stops once the correction angle is not
// greater than eps or after maxIter steps.
// It returns false, setting q to the identity, if it
// does not converge.
func (q *Q[T]) FromM3(m *M3[T], eps T, maxIter int) bool {
	var p Q[T]
	p.I()
	for range maxIter {
		var r M3[T]
		r.RotateQ(&p)
		var axis, c V3[T]
		var denom T
		for i := range r {
			c.Cross(&r[i], &m[i])
			axis.Add(&axis, &c)
			denom += r[i].Dot(&m[i])
		}
		axis.Scale(1/(Abs(denom)+Epsilon[T]()), &axis)
		ang := axis.Len()
		if !(ang > eps) {
			if ang != ang {
				break
			}
			*q = p
			return true
		}
		var s Q[T]
		axis.Scale(1/ang, &axis)
		s.Rotate(ang, &axis)
		p.Mul(&s, &p)
		p.Norm(&p)
	}
	q.I()
	return false
}
