package bvh

import "github.com/achilleasa/bvh/types"

// Ray is a parametric ray: P(t) = Origin + t*Dir, valid for t in [TMin, TMax].
// Dir need not be unit length; any returned t is measured in units of
// ‖Dir‖ as a consequence.
type Ray struct {
	Origin types.Vec3
	Dir    types.Vec3
	TMin   float32
	TMax   float32
}

// At evaluates the ray at parameter t.
func (r Ray) At(t float32) types.Vec3 {
	return types.Vec3{
		r.Origin[0] + r.Dir[0]*t,
		r.Origin[1] + r.Dir[1]*t,
		r.Origin[2] + r.Dir[2]*t,
	}
}
