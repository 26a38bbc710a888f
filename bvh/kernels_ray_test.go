package bvh

import (
	"testing"

	"github.com/achilleasa/bvh/types"
)

func TestIntersectTriangleHit(t *testing.T) {
	v0 := types.Vec3{-1, -1, 0}
	v1 := types.Vec3{1, -1, 0}
	v2 := types.Vec3{0, 1, 0}

	ray := Ray{Origin: types.Vec3{0, 0, -5}, Dir: types.Vec3{0, 0, 1}, TMin: 0, TMax: 1e30}

	var rayT float32
	var uv UV
	if !IntersectTriangle(ray, v0, v1, v2, &rayT, &uv) {
		t.Fatalf("expected ray through triangle interior to hit")
	}
	if rayT != 5 {
		t.Fatalf("expected hit at t=5; got %f", rayT)
	}
}

func TestIntersectTriangleMiss(t *testing.T) {
	v0 := types.Vec3{-1, -1, 0}
	v1 := types.Vec3{1, -1, 0}
	v2 := types.Vec3{0, 1, 0}

	ray := Ray{Origin: types.Vec3{10, 10, -5}, Dir: types.Vec3{0, 0, 1}, TMin: 0, TMax: 1e30}

	var rayT float32
	var uv UV
	if IntersectTriangle(ray, v0, v1, v2, &rayT, &uv) {
		t.Fatalf("expected ray outside triangle bounds to miss")
	}
}

func TestIntersectPointHit(t *testing.T) {
	ray := Ray{Origin: types.Vec3{0, 0, -5}, Dir: types.Vec3{0, 0, 1}, TMin: 0, TMax: 1e30}
	var rayT float32
	var uv UV
	if !IntersectPoint(ray, types.Vec3{0, 0, 0}, 0.1, &rayT, &uv) {
		t.Fatalf("expected ray through fat point center to hit")
	}
	if rayT != 5 {
		t.Fatalf("expected hit at t=5; got %f", rayT)
	}
}

func TestIntersectLineHit(t *testing.T) {
	v0 := types.Vec3{-1, 0, 0}
	v1 := types.Vec3{1, 0, 0}
	ray := Ray{Origin: types.Vec3{0, 0, -5}, Dir: types.Vec3{0, 0, 1}, TMin: 0, TMax: 1e30}

	var rayT float32
	var uv UV
	if !IntersectLine(ray, v0, v1, 0.1, 0.1, &rayT, &uv) {
		t.Fatalf("expected ray through line midpoint to hit")
	}
	if uv.U < 0.49 || uv.U > 0.51 {
		t.Fatalf("expected line parameter near 0.5; got %f", uv.U)
	}
}

func TestIntersectBoxSlab(t *testing.T) {
	box := Box{Min: types.Vec3{-1, -1, -1}, Max: types.Vec3{1, 1, 1}}

	hit := Ray{Origin: types.Vec3{0, 0, -5}, Dir: types.Vec3{0, 0, 1}, TMin: 0, TMax: 1e30}
	if !IntersectBox(hit, box) {
		t.Fatalf("expected ray through box to hit")
	}

	miss := Ray{Origin: types.Vec3{5, 5, -5}, Dir: types.Vec3{0, 0, 1}, TMin: 0, TMax: 1e30}
	if IntersectBox(miss, box) {
		t.Fatalf("expected ray outside box to miss")
	}
}
