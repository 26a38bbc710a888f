package bvh

import (
	"math"

	"github.com/achilleasa/bvh/types"
)

// DistancePoint tests a query point pos against a fat point p of radius r.
// On success it writes the unsigned distance and (0,0) uv and returns true.
func DistancePoint(pos types.Vec3, distMax float32, p types.Vec3, r float32, dist *float32, euv *UV) bool {
	d2 := distSqr(pos, p)
	if d2 > (distMax+r)*(distMax+r) {
		return false
	}
	*dist = float32(math.Sqrt(float64(d2)))
	*euv = UV{0, 0}
	return true
}

// closestUVLine returns the clamped [0,1] line parameter of the point on
// segment v0-v1 closest to pos.
func closestUVLine(pos, v0, v1 types.Vec3) float32 {
	ab := v1.Sub(v0)
	d := ab.Dot(ab)
	u := pos.Sub(v0).Dot(ab) / d
	return clamp(u, 0, 1)
}

// DistanceLine tests a query point against the tapered capsule v0(r0)-v1(r1).
func DistanceLine(pos types.Vec3, distMax float32, v0, v1 types.Vec3, r0, r1 float32, dist *float32, euv *UV) bool {
	u := closestUVLine(pos, v0, v1)
	p := lerp(v0, v1, u)
	r := r0*(1-u) + r1*u
	d2 := distSqr(pos, p)
	if d2 > (distMax+r)*(distMax+r) {
		return false
	}
	*dist = float32(math.Sqrt(float64(d2)))
	*euv = UV{u, 0}
	return true
}

// closestUVTriangle returns the barycentric (u,v) of the point on triangle
// (v0,v1,v2) closest to pos, via the seven-region Voronoi test (Ericson,
// Real-Time Collision Detection, §5.1.5: three vertex regions, three edge
// regions, one face region).
func closestUVTriangle(pos, v0, v1, v2 types.Vec3) UV {
	ab := v1.Sub(v0)
	ac := v2.Sub(v0)
	ap := pos.Sub(v0)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return UV{0, 0} // vertex region v0
	}

	bp := pos.Sub(v1)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return UV{1, 0} // vertex region v1
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return UV{d1 / (d1 - d3), 0} // edge region v0-v1
	}

	cp := pos.Sub(v2)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return UV{0, 1} // vertex region v2
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return UV{0, d2 / (d2 - d6)} // edge region v0-v2
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return UV{1 - w, w} // edge region v1-v2
	}

	// face region: barycentric via the three sub-triangle areas
	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return UV{v, w}
}

// DistanceTriangle tests a query point against triangle (v0,v1,v2) with
// per-vertex radii r0,r1,r2 interpolated barycentrically.
func DistanceTriangle(pos types.Vec3, distMax float32, v0, v1, v2 types.Vec3, r0, r1, r2 float32, dist *float32, euv *UV) bool {
	uv := closestUVTriangle(pos, v0, v1, v2)
	p := blerp(v0, v1, v2, uv.U, uv.V)
	r := r0*(1-uv.U-uv.V) + r1*uv.U + r2*uv.V
	d2 := distSqr(p, pos)
	if d2 > (distMax+r)*(distMax+r) {
		return false
	}
	*dist = float32(math.Sqrt(float64(d2)))
	*euv = uv
	return true
}

// DistanceQuad tests a query point against a planar quad represented as two
// triangles sharing the v1-v3 diagonal, mirroring IntersectQuad.
func DistanceQuad(pos types.Vec3, distMax float32, v0, v1, v2, v3 types.Vec3, r0, r1, r2, r3 float32, dist *float32, euv *UV) bool {
	hit := false
	if DistanceTriangle(pos, distMax, v0, v1, v3, r0, r1, r3, dist, euv) {
		hit = true
		distMax = *dist
	}
	if DistanceTriangle(pos, distMax, v2, v3, v1, r2, r3, r1, dist, euv) {
		hit = true
		*euv = UV{1 - euv.U, 1 - euv.V}
	}
	return hit
}

func distSqr(a, b types.Vec3) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

func lerp(a, b types.Vec3, t float32) types.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func blerp(a, b, c types.Vec3, u, v float32) types.Vec3 {
	w := 1 - u - v
	return types.Vec3{
		w*a[0] + u*b[0] + v*c[0],
		w*a[1] + u*b[1] + v*c[1],
		w*a[2] + u*b[2] + v*c[2],
	}
}
