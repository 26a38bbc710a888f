package bvh

import "github.com/achilleasa/bvh/types"

// UV holds primitive-local parametric coordinates: barycentric (u,v) for a
// triangle hit, (arc-length fraction, 0) for a line hit, (0,0) for a point.
type UV struct {
	U, V float32
}

// IntersectPoint tests a ray against a fat point of radius r centered at p.
// On success it writes the hit parameter to rayT and returns true; outputs
// are left untouched on failure.
//
// The closest point on the ray line to p is found directly (no clamping to
// the ray window until after solving), then rejected if outside [tmin,tmax]
// or farther from p than r.
func IntersectPoint(ray Ray, p types.Vec3, r float32, rayT *float32, euv *UV) bool {
	w := p.Sub(ray.Origin)
	t := w.Dot(ray.Dir) / ray.Dir.Dot(ray.Dir)

	if t < ray.TMin || t > ray.TMax {
		return false
	}

	rp := ray.At(t)
	prp := p.Sub(rp)
	if prp.Dot(prp) > r*r {
		return false
	}

	*rayT = t
	*euv = UV{0, 0}
	return true
}

// IntersectLine tests a ray against a tapered capsule between v0 (radius r0)
// and v1 (radius r1). It solves the 2x2 linear system for the closest
// points on the infinite ray line and the infinite segment line, clamps the
// segment parameter to [0,1], and checks the resulting distance against the
// radius interpolated at that point.
func IntersectLine(ray Ray, v0, v1 types.Vec3, r0, r1 float32, rayT *float32, euv *UV) bool {
	u := ray.Dir
	v := v1.Sub(v0)
	w := ray.Origin.Sub(v0)

	a := u.Dot(u)
	b := u.Dot(v)
	c := v.Dot(v)
	d := u.Dot(w)
	e := v.Dot(w)
	det := a*c - b*b

	if det == 0 {
		return false
	}

	t := (b*e - c*d) / det
	s := (a*e - b*d) / det

	if t < ray.TMin || t > ray.TMax {
		return false
	}

	s = clamp(s, 0, 1)

	p0 := ray.At(t)
	p1 := v0.Add(v.Mul(s))
	p01 := p0.Sub(p1)

	r := r0*(1-s) + r1*s
	if p01.Dot(p01) > r*r {
		return false
	}

	*rayT = t
	*euv = UV{s, 0}
	return true
}

// IntersectTriangle tests a ray against triangle (v0,v1,v2) using the
// Möller–Trumbore algorithm. A zero determinant (ray parallel to the
// triangle plane) is rejected outright; no epsilon widening is applied.
func IntersectTriangle(ray Ray, v0, v1, v2 types.Vec3, rayT *float32, euv *UV) bool {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	pvec := ray.Dir.Cross(edge2)
	det := edge1.Dot(pvec)
	if det == 0 {
		return false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Sub(v0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return false
	}

	t := edge2.Dot(qvec) * invDet
	if t < ray.TMin || t > ray.TMax {
		return false
	}

	*rayT = t
	*euv = UV{u, v}
	return true
}

// IntersectQuad tests a ray against a planar quad (v0,v1,v2,v3) by splitting
// it into two triangles sharing the v1-v3 diagonal. The second triangle's uv
// is remapped to the [0,1]x[0,1] quad parameterization.
func IntersectQuad(ray Ray, v0, v1, v2, v3 types.Vec3, rayT *float32, euv *UV) bool {
	r := ray
	hit := false
	if IntersectTriangle(r, v0, v1, v3, rayT, euv) {
		hit = true
		r.TMax = *rayT
	}
	if IntersectTriangle(r, v2, v3, v1, rayT, euv) {
		hit = true
		*euv = UV{1 - euv.U, 1 - euv.V}
	}
	return hit
}

// IntersectBox performs the 3-axis slab test against an axis-aligned box,
// clipping the running [tmin,tmax] window per axis and swapping bounds when
// the reciprocal direction is negative. Tangential grazes (tmin==tmax) are
// admitted. The result is boolean only; the near hit distance is not
// reported since traversal order, not distance, is all callers need.
func IntersectBox(ray Ray, box Box) bool {
	tmin, tmax := ray.TMin, ray.TMax

	for i := 0; i < 3; i++ {
		invd := 1.0 / ray.Dir[i]
		t0 := (box.Min[i] - ray.Origin[i]) * invd
		t1 := (box.Max[i] - ray.Origin[i]) * invd
		if invd < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmin > tmax {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
