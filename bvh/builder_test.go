package bvh

import (
	"testing"

	"github.com/achilleasa/bvh/types"
)

func TestHeapsortBoundPrimsOrdersAscending(t *testing.T) {
	a := []boundPrim{
		{center: types.Vec3{5, 0, 0}, pid: 0},
		{center: types.Vec3{1, 0, 0}, pid: 1},
		{center: types.Vec3{3, 0, 0}, pid: 2},
		{center: types.Vec3{-2, 0, 0}, pid: 3},
	}
	heapsortBoundPrims(a, 0)

	for i := 1; i < len(a); i++ {
		if a[i-1].center[0] > a[i].center[0] {
			t.Fatalf("expected ascending order by center[0]; got %v", a)
		}
	}
}

func TestShellsortBoundPrimsMatchesHeapsort(t *testing.T) {
	mk := func() []boundPrim {
		return []boundPrim{
			{center: types.Vec3{5, 0, 0}, pid: 0},
			{center: types.Vec3{1, 0, 0}, pid: 1},
			{center: types.Vec3{3, 0, 0}, pid: 2},
			{center: types.Vec3{-2, 0, 0}, pid: 3},
			{center: types.Vec3{9, 0, 0}, pid: 4},
		}
	}
	byHeap := mk()
	byShell := mk()
	heapsortBoundPrims(byHeap, 0)
	shellsortBoundPrims(byShell, 0)

	for i := range byHeap {
		if byHeap[i].pid != byShell[i].pid {
			t.Fatalf("expected heapsort and shellsort to agree on ordering; heap=%v shell=%v", byHeap, byShell)
		}
	}
}

func TestBuildTreeHeuristicsAgreeOnHits(t *testing.T) {
	mesh := triangleGridMesh(50)

	shapeSAH := NewShape(mesh, SAH)
	shapeSAH.Build()
	shapeEC := NewShape(mesh, EqualCount)
	shapeEC.Build()

	ray := Ray{Origin: types.Vec3{0.5, 0.25, -5}, Dir: types.Vec3{0, 0, 1}, TMin: 0, TMax: 1e30}

	var eid1, eid2 int32
	var uv1, uv2 UV
	r1 := ray
	r2 := ray
	hit1 := shapeSAH.intersectShape(&r1, false, &eid1, &uv1)
	hit2 := shapeEC.intersectShape(&r2, false, &eid2, &uv2)

	if hit1 != hit2 {
		t.Fatalf("expected SAH and equal-count builds to agree on hit/miss; sah=%v equalcount=%v", hit1, hit2)
	}
	if hit1 && eid1 != eid2 {
		t.Fatalf("expected both heuristics to report the same element id for an unambiguous single-triangle hit; sah=%d equalcount=%d", eid1, eid2)
	}
}

func TestBuildTreeEmptyMesh(t *testing.T) {
	mesh := Mesh{Kind: Triangle}
	shape := NewShape(mesh, SAH)
	shape.Build()

	ray := Ray{Origin: types.Vec3{0, 0, -5}, Dir: types.Vec3{0, 0, 1}, TMin: 0, TMax: 1e30}
	var eid int32
	var uv UV
	if shape.intersectShape(&ray, false, &eid, &uv) {
		t.Fatalf("expected an empty mesh to report no hits")
	}
}
