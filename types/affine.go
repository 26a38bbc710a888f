package types

import "math"

// Affine is a 3D affine transform: a linear 3x3 part (stored column-major as
// three Vec3 columns) plus a translation. It covers rotation, scale and shear
// composed with a translation — the single-transform-per-shape model used by
// the scene BVH. Motion blur and non-affine (projective) transforms are out
// of scope.
type Affine struct {
	Col    [3]Vec3
	Offset Vec3
}

// Identity returns the identity affine transform.
func Identity() Affine {
	return Affine{
		Col: [3]Vec3{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
	}
}

// TransformPoint applies the affine transform to a point (translation included).
func (a Affine) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		a.Col[0][0]*p[0] + a.Col[1][0]*p[1] + a.Col[2][0]*p[2] + a.Offset[0],
		a.Col[0][1]*p[0] + a.Col[1][1]*p[1] + a.Col[2][1]*p[2] + a.Offset[1],
		a.Col[0][2]*p[0] + a.Col[1][2]*p[1] + a.Col[2][2]*p[2] + a.Offset[2],
	}
}

// TransformVector applies only the linear part of the transform (no
// translation); used for ray directions.
func (a Affine) TransformVector(v Vec3) Vec3 {
	return Vec3{
		a.Col[0][0]*v[0] + a.Col[1][0]*v[1] + a.Col[2][0]*v[2],
		a.Col[0][1]*v[0] + a.Col[1][1]*v[1] + a.Col[2][1]*v[2],
		a.Col[0][2]*v[0] + a.Col[1][2]*v[1] + a.Col[2][2]*v[2],
	}
}

// Inverse returns the inverse affine transform, assuming the linear part is
// invertible (non-degenerate scale/rotation/shear).
func (a Affine) Inverse() Affine {
	m00, m01, m02 := a.Col[0][0], a.Col[1][0], a.Col[2][0]
	m10, m11, m12 := a.Col[0][1], a.Col[1][1], a.Col[2][1]
	m20, m21, m22 := a.Col[0][2], a.Col[1][2], a.Col[2][2]

	det := m00*(m11*m22-m12*m21) - m01*(m10*m22-m12*m20) + m02*(m10*m21-m11*m20)
	invDet := 1.0 / det

	inv := Affine{}
	inv.Col[0] = Vec3{
		(m11*m22 - m12*m21) * invDet,
		(m12*m20 - m10*m22) * invDet,
		(m10*m21 - m11*m20) * invDet,
	}
	inv.Col[1] = Vec3{
		(m02*m21 - m01*m22) * invDet,
		(m00*m22 - m02*m20) * invDet,
		(m01*m20 - m00*m21) * invDet,
	}
	inv.Col[2] = Vec3{
		(m01*m12 - m02*m11) * invDet,
		(m02*m10 - m00*m12) * invDet,
		(m00*m11 - m01*m10) * invDet,
	}
	inv.Offset = Vec3{
		-(inv.Col[0][0]*a.Offset[0] + inv.Col[1][0]*a.Offset[1] + inv.Col[2][0]*a.Offset[2]),
		-(inv.Col[0][1]*a.Offset[0] + inv.Col[1][1]*a.Offset[1] + inv.Col[2][1]*a.Offset[2]),
		-(inv.Col[0][2]*a.Offset[0] + inv.Col[1][2]*a.Offset[1] + inv.Col[2][2]*a.Offset[2]),
	}
	return inv
}

// Translation builds a pure-translation affine transform.
func Translation(t Vec3) Affine {
	a := Identity()
	a.Offset = t
	return a
}

// Rotation builds a rotation-only affine transform of angle radians around
// axis (need not be unit length), via Rodrigues' rotation formula.
func Rotation(axis Vec3, angle float32) Affine {
	n := axis.Normalize()
	x, y, z := n[0], n[1], n[2]
	s := float32(math.Sin(float64(angle)))
	c := float32(math.Cos(float64(angle)))
	t := 1 - c

	return Affine{
		Col: [3]Vec3{
			{t*x*x + c, t*x*y + s*z, t*x*z - s*y},
			{t*x*y - s*z, t*y*y + c, t*y*z + s*x},
			{t*x*z + s*y, t*y*z - s*x, t*z*z + c},
		},
	}
}
