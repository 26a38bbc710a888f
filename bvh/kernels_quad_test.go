package bvh

import (
	"testing"

	"github.com/achilleasa/bvh/types"
)

func TestIntersectQuadHit(t *testing.T) {
	v0 := types.Vec3{-1, -1, 0}
	v1 := types.Vec3{1, -1, 0}
	v2 := types.Vec3{1, 1, 0}
	v3 := types.Vec3{-1, 1, 0}

	ray := Ray{Origin: types.Vec3{0, 0, -5}, Dir: types.Vec3{0, 0, 1}, TMin: 0, TMax: 1e30}
	var rayT float32
	var uv UV
	if !IntersectQuad(ray, v0, v1, v2, v3, &rayT, &uv) {
		t.Fatalf("expected ray through quad center to hit")
	}
	if rayT != 5 {
		t.Fatalf("expected hit at t=5; got %f", rayT)
	}
	if uv.U < 0.4 || uv.U > 0.6 || uv.V < 0.4 || uv.V > 0.6 {
		t.Fatalf("expected centroid uv near (0.5,0.5); got %v", uv)
	}
}

func TestDistanceQuad(t *testing.T) {
	v0 := types.Vec3{-1, -1, 0}
	v1 := types.Vec3{1, -1, 0}
	v2 := types.Vec3{1, 1, 0}
	v3 := types.Vec3{-1, 1, 0}

	pos := types.Vec3{0, 0, 3}
	var dist float32
	var uv UV
	if !DistanceQuad(pos, 10, v0, v1, v2, v3, 0, 0, 0, 0, &dist, &uv) {
		t.Fatalf("expected a point above a quad's center to be within distMax")
	}
	if dist != 3 {
		t.Fatalf("expected distance 3 straight above the quad's plane; got %f", dist)
	}
}
