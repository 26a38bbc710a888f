package bvh

import (
	"math"

	"github.com/achilleasa/bvh/types"
)

// Box is an axis-aligned 3D bounding box.
type Box struct {
	Min types.Vec3
	Max types.Vec3
}

// EmptyBox returns the canonical empty box: min=+MaxFloat32, max=-MaxFloat32
// on every axis (finite stand-ins for +inf/-inf), so that expanding it with
// any point or box yields that point/box.
func EmptyBox() Box {
	return Box{
		Min: types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// ExpandPoint grows the box to contain p.
func (b Box) ExpandPoint(p types.Vec3) Box {
	return Box{
		Min: types.MinVec3(b.Min, p),
		Max: types.MaxVec3(b.Max, p),
	}
}

// Union returns the box that contains both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: types.MinVec3(b.Min, o.Min),
		Max: types.MaxVec3(b.Max, o.Max),
	}
}

// Center returns the box midpoint.
func (b Box) Center() types.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the per-axis extent (Max - Min).
func (b Box) Size() types.Vec3 {
	return b.Max.Sub(b.Min)
}

// HalfSurfaceArea returns xy+xz+yz of the box extents, used as the SAH cost
// term (the 2x factor common to every candidate cancels out of the
// comparison so it is omitted, matching the reference implementation).
func (b Box) HalfSurfaceArea() float32 {
	s := b.Size()
	return s[0]*s[1] + s[1]*s[2] + s[0]*s[2]
}

// Corners returns the 8 corner points of the box.
func (b Box) Corners() [8]types.Vec3 {
	return [8]types.Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
	}
}

// Transform returns the conservative AABB enclosing the transformed corners
// of b. This is the same over-estimating technique the scene BVH uses to
// bound a transformed shape root box.
func (b Box) Transform(a types.Affine) Box {
	out := EmptyBox()
	for _, c := range b.Corners() {
		out = out.ExpandPoint(a.TransformPoint(c))
	}
	return out
}

// OverlapsBox reports whether b and o intersect on every axis.
func (b Box) OverlapsBox(o Box) bool {
	if b.Max[0] < o.Min[0] || b.Min[0] > o.Max[0] {
		return false
	}
	if b.Max[1] < o.Min[1] || b.Min[1] > o.Max[1] {
		return false
	}
	if b.Max[2] < o.Min[2] || b.Min[2] > o.Max[2] {
		return false
	}
	return true
}

// DistanceSqr accumulates the per-axis clamp-delta squared from p to the box;
// zero if p is inside the box.
func (b Box) DistanceSqr(p types.Vec3) float32 {
	var dd float32
	for i := 0; i < 3; i++ {
		v := p[i]
		if v < b.Min[i] {
			d := b.Min[i] - v
			dd += d * d
		}
		if v > b.Max[i] {
			d := v - b.Max[i]
			dd += d * d
		}
	}
	return dd
}
