package bvh

import (
	"math/rand"
	"testing"

	"github.com/achilleasa/bvh/types"
)

func triangleGridMesh(n int) Mesh {
	positions := make([]types.Vec3, 0, 3*n)
	elements := make([]int32, 0, 3*n)
	for i := 0; i < n; i++ {
		x := float32(i) * 3
		positions = append(positions,
			types.Vec3{x, 0, 0},
			types.Vec3{x + 1, 0, 0},
			types.Vec3{x + 0.5, 1, 0},
		)
		elements = append(elements, int32(3*i), int32(3*i+1), int32(3*i+2))
	}
	return Mesh{Kind: Triangle, Elements: elements, Positions: positions}
}

func TestShapeBuildSingleTriangle(t *testing.T) {
	mesh := triangleGridMesh(1)
	shape := NewShape(mesh, SAH)
	shape.Build()

	box := shape.RootBox()
	if box.Min[0] != 0 || box.Max[0] != 1 {
		t.Fatalf("expected root box x in [0,1]; got min=%v max=%v", box.Min, box.Max)
	}
}

func TestShapeBuildContainsEveryPrimitive(t *testing.T) {
	mesh := triangleGridMesh(64)
	shape := NewShape(mesh, SAH)
	shape.Build()

	bprims := mesh.boundPrims()
	root := shape.RootBox()
	for _, bp := range bprims {
		if bp.bbox.Min[0] < root.Min[0]-1e-4 || bp.bbox.Max[0] > root.Max[0]+1e-4 {
			t.Fatalf("expected root box to contain every primitive bbox; prim %d escaped on x", bp.pid)
		}
	}
}

func TestShapeBuildIsPermutationOfInput(t *testing.T) {
	mesh := triangleGridMesh(32)
	shape := NewShape(mesh, SAH)
	shape.Build()

	seen := make(map[int32]bool)
	for _, id := range shape.sortedPrim {
		if seen[id] {
			t.Fatalf("element id %d appears more than once in sortedPrim", id)
		}
		seen[id] = true
	}
	if len(seen) != mesh.NumElements() {
		t.Fatalf("expected sortedPrim to be a permutation of all %d elements; got %d distinct ids", mesh.NumElements(), len(seen))
	}
}

func TestShapeBuildLeafMinimum(t *testing.T) {
	mesh := triangleGridMesh(200)
	shape := NewShape(mesh, SAH)
	shape.Build()

	for i, n := range shape.nodes {
		if n.IsLeaf && n.Count > minPrims {
			t.Fatalf("expected leaf %d to hold <= %d primitives on a well-separated grid; got %d", i, minPrims, n.Count)
		}
	}
}

func TestShapeBuildDepthBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 5000
	positions := make([]types.Vec3, 3*n)
	elements := make([]int32, 3*n)
	for i := 0; i < n; i++ {
		base := types.Vec3{rng.Float32() * 100, rng.Float32() * 100, rng.Float32() * 100}
		positions[3*i] = base
		positions[3*i+1] = base.Add(types.Vec3{1, 0, 0})
		positions[3*i+2] = base.Add(types.Vec3{0, 1, 0})
		elements[3*i], elements[3*i+1], elements[3*i+2] = int32(3*i), int32(3*i+1), int32(3*i+2)
	}
	mesh := Mesh{Kind: Triangle, Elements: elements, Positions: positions}
	shape := NewShape(mesh, SAH)
	shape.Build()

	st := shape.Stats()
	if st.MaxLeafDepth > rayStackDepth {
		t.Fatalf("expected max leaf depth <= %d; got %d", rayStackDepth, st.MaxLeafDepth)
	}
}

func TestShapeSinglePointMesh(t *testing.T) {
	mesh := Mesh{
		Kind:      Point,
		Elements:  []int32{0},
		Positions: []types.Vec3{{0, 0, 0}},
		Radii:     []float32{0.5},
	}
	shape := NewShape(mesh, SAH)
	shape.Build()

	ray := Ray{Origin: types.Vec3{0, 0, -5}, Dir: types.Vec3{0, 0, 1}, TMin: 0, TMax: 1e30}
	var eid int32
	var uv UV
	if !shape.intersectShape(&ray, false, &eid, &uv) {
		t.Fatalf("expected ray through single fat point to hit")
	}
}

func TestShapeSingleLineMesh(t *testing.T) {
	mesh := Mesh{
		Kind:      Line,
		Elements:  []int32{0, 1},
		Positions: []types.Vec3{{-1, 0, 0}, {1, 0, 0}},
		Radii:     []float32{0.1, 0.1},
	}
	shape := NewShape(mesh, SAH)
	shape.Build()

	ray := Ray{Origin: types.Vec3{0, 0, -5}, Dir: types.Vec3{0, 0, 1}, TMin: 0, TMax: 1e30}
	var eid int32
	var uv UV
	if !shape.intersectShape(&ray, false, &eid, &uv) {
		t.Fatalf("expected ray through single line's midpoint to hit")
	}
}
