package bvh

import (
	"time"

	"github.com/achilleasa/bvh/log"
)

var shapeLogger = log.New("bvh/shape")

// Shape is a single-primitive-kind BVH over one indexed mesh. It borrows its
// mesh buffers for its entire lifetime; Go's GC, not an explicit free,
// reclaims the tree once it becomes unreachable.
type Shape struct {
	Mesh      Mesh
	Heuristic Heuristic

	nodes      []Node
	sortedPrim []int32
	built      bool
}

// NewShape creates an unbuilt shape BVH over mesh. Call Build before running
// any query.
func NewShape(mesh Mesh, heuristic Heuristic) *Shape {
	return &Shape{Mesh: mesh, Heuristic: heuristic}
}

// Build (re)builds the shape BVH. Idempotent: a subsequent call discards and
// replaces the previous tree.
func (s *Shape) Build() {
	start := time.Now()
	bprims := s.Mesh.boundPrims()
	s.nodes, s.sortedPrim = buildTree(bprims, s.Heuristic)
	s.built = true

	st := collectStats(s.nodes, 0, 0)
	shapeLogger.Debugf(
		"shape bvh build time: %d ms, nodes: %d, leaves: %d, maxDepth: %d",
		time.Since(start).Nanoseconds()/1e6, st.NumNodes, st.NumLeaves, st.MaxLeafDepth,
	)
}

// RootBox returns the bounding box of the whole shape. Build must have run.
func (s *Shape) RootBox() Box {
	assertf(s.built, "bvh: shape queried before Build")
	return s.nodes[0].Box
}

// Stats reports build statistics for the shape tree, mirroring the
// print_bvh_stats/collect_bvh_stats helpers from the reference implementation.
func (s *Shape) Stats() TreeStats {
	assertf(s.built, "bvh: shape queried before Build")
	return collectStats(s.nodes, 0, 0)
}
