// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

// M3 is a column-major 3x3 matrix.
type M3[T Float] [3]V3[T]

// I makes m an identity matrix.
func (m *M3[T]) I() { *m = M3[T]{{1}, {0, 1}, {0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M3[T]) Mul(l, r *M3[T]) {
	var n M3[T]
	for i := range n {
		for j := range n {
			for k := range n {
				n[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = n
}

// Transpose sets m to contain the transpose of n.
func (m *M3[T]) Transpose(n *M3[T]) {
	for i := range m {
		m[i][i] = n[i][i]
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = n[j][i], n[i][j]
		}
	}
}

// RotateQ sets m to contain the rotation described by
// the unit quaternion q.
func (m *M3[T]) RotateQ(q *Q[T]) {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.R
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	*m = M3[T]{
		{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy)},
		{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx)},
		{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy)},
	}
}
