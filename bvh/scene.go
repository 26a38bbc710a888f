package bvh

import (
	"time"

	"github.com/achilleasa/bvh/log"
	"github.com/achilleasa/bvh/types"
)

var sceneLogger = log.New("bvh/scene")

// Scene is a top-level BVH whose leaf primitives are shape handles paired
// with an affine transform and its cached inverse. It owns its constituent
// shape BVHs and transform arrays.
type Scene struct {
	Heuristic Heuristic

	shapes    []*Shape
	xforms    []types.Affine
	invXforms []types.Affine

	nodes      []Node
	sortedPrim []int32
	built      bool
}

// NewScene creates an empty scene sized for nShapes shape slots, each
// initialized to the identity transform. Populate slots with SetShape before
// calling Build.
func NewScene(nShapes int, heuristic Heuristic) *Scene {
	s := &Scene{
		Heuristic: heuristic,
		shapes:    make([]*Shape, nShapes),
		xforms:    make([]types.Affine, nShapes),
		invXforms: make([]types.Affine, nShapes),
	}
	for i := range s.xforms {
		s.xforms[i] = types.Identity()
		s.invXforms[i] = types.Identity()
	}
	return s
}

// NumShapes returns the number of shape slots in the scene.
func (s *Scene) NumShapes() int {
	return len(s.shapes)
}

// Shape returns the shape BVH currently occupying slot i.
func (s *Scene) Shape(i int) *Shape {
	return s.shapes[i]
}

// Transform returns the forward transform of shape i.
func (s *Scene) Transform(i int) types.Affine {
	return s.xforms[i]
}

// SetShape replaces slot i's shape with a freshly constructed (unbuilt)
// shape BVH over mesh, using xform as its forward transform.
func (s *Scene) SetShape(i int, xform types.Affine, mesh Mesh, shapeHeuristic Heuristic) {
	s.shapes[i] = NewShape(mesh, shapeHeuristic)
	s.xforms[i] = xform
	s.invXforms[i] = xform.Inverse()
}

// Build builds every shape BVH, then builds the scene tree over the
// per-shape world-space bounding boxes (the 8 corners of each shape's root
// box transformed by its forward transform, re-enclosed — a conservative,
// easy-to-refit envelope). Idempotent.
func (s *Scene) Build() {
	start := time.Now()
	for _, shape := range s.shapes {
		assertf(shape != nil, "bvh: scene has an empty shape slot")
		shape.Build()
	}

	n := len(s.shapes)
	bprims := make([]boundPrim, n)
	for i := 0; i < n; i++ {
		box := s.shapes[i].RootBox().Transform(s.xforms[i])
		bprims[i] = boundPrim{bbox: box, center: box.Center(), pid: int32(i)}
	}

	s.nodes, s.sortedPrim = buildTree(bprims, s.Heuristic)
	s.built = true

	st := collectStats(s.nodes, 0, 0)
	sceneLogger.Debugf(
		"scene bvh build time: %d ms, shapes: %d, nodes: %d, leaves: %d, maxDepth: %d",
		time.Since(start).Nanoseconds()/1e6, n, st.NumNodes, st.NumLeaves, st.MaxLeafDepth,
	)
}

// Refit overwrites the forward transforms, recomputes their inverses, and
// recomputes node bounding boxes bottom-up without touching tree topology or
// sortedPrim (I6). Every leaf's world box is rebuilt from its shape's own
// root box (the reference implementation's yb__recompute_scene_bounds
// mistakenly reuses shapes[0] for every leaf entry; that bug is not
// reproduced here — see DESIGN.md).
func (s *Scene) Refit(xforms []types.Affine) {
	assertf(s.built, "bvh: scene refit before Build")
	assertf(len(xforms) == len(s.shapes), "bvh: refit transform count %d does not match %d shapes", len(xforms), len(s.shapes))

	for i, x := range xforms {
		s.xforms[i] = x
		s.invXforms[i] = x.Inverse()
	}

	s.recomputeBounds(0)
}

func (s *Scene) recomputeBounds(nodeIdx uint32) Box {
	node := &s.nodes[nodeIdx]
	if node.IsLeaf {
		box := EmptyBox()
		for i := uint16(0); i < node.Count; i++ {
			idx := s.sortedPrim[node.Start+uint32(i)]
			box = box.Union(s.shapes[idx].RootBox().Transform(s.xforms[idx]))
		}
		node.Box = box
		return box
	}

	box := EmptyBox()
	for i := uint16(0); i < node.Count; i++ {
		box = box.Union(s.recomputeBounds(node.Start + uint32(i)))
	}
	node.Box = box
	return box
}

// Stats reports build statistics for the scene tree.
func (s *Scene) Stats() TreeStats {
	assertf(s.built, "bvh: scene queried before Build")
	return collectStats(s.nodes, 0, 0)
}
