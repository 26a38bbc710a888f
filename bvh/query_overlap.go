package bvh

// ShapePair identifies an overlapping pair of shape slots reported by
// OverlapShapeBounds.
type ShapePair struct {
	A int32
	B int32
}

type nodePair struct {
	a, b uint32
}

// OverlapShapeBounds reports every pair of shapes whose world-space root
// boxes overlap, invoking cb once per ordered pair. Both (i,j) and (j,i) are
// reported for i != j. If excludeSelf is true, (i,i) pairs are skipped.
//
// Each side of a pair is bounded by that shape's own root box transformed by
// its own forward transform: the reference implementation's
// yb__overlap_shape_bounds mistakenly reuses shapes[idx1]'s box for both
// sides of the pair; that bug is not reproduced here — see DESIGN.md.
func (s *Scene) OverlapShapeBounds(excludeSelf bool, cb func(a, b int32)) {
	assertf(s.built, "bvh: scene queried before Build")

	var stack [pairStackDepth]nodePair
	top := 0
	stack[top] = nodePair{0, 0}
	top++

	for top > 0 {
		top--
		pair := stack[top]
		nodeA := &s.nodes[pair.a]
		nodeB := &s.nodes[pair.b]

		if !nodeA.Box.OverlapsBox(nodeB.Box) {
			continue
		}

		switch {
		case nodeA.IsLeaf && nodeB.IsLeaf:
			for i := uint16(0); i < nodeA.Count; i++ {
				idx1 := s.sortedPrim[nodeA.Start+uint32(i)]
				box1 := s.shapes[idx1].RootBox().Transform(s.xforms[idx1])
				for j := uint16(0); j < nodeB.Count; j++ {
					idx2 := s.sortedPrim[nodeB.Start+uint32(j)]
					if excludeSelf && idx1 == idx2 {
						continue
					}
					box2 := s.shapes[idx2].RootBox().Transform(s.xforms[idx2])
					if box1.OverlapsBox(box2) {
						cb(idx1, idx2)
					}
				}
			}

		case nodeA.IsLeaf:
			for i := 0; i < int(nodeB.Count); i++ {
				assertf(top < pairStackDepth, "bvh: overlap traversal stack overflow")
				stack[top] = nodePair{pair.a, nodeB.Start + uint32(i)}
				top++
			}

		case nodeB.IsLeaf:
			for i := 0; i < int(nodeA.Count); i++ {
				assertf(top < pairStackDepth, "bvh: overlap traversal stack overflow")
				stack[top] = nodePair{nodeA.Start + uint32(i), pair.b}
				top++
			}

		default:
			for i := 0; i < int(nodeA.Count); i++ {
				for j := 0; j < int(nodeB.Count); j++ {
					assertf(top < pairStackDepth, "bvh: overlap traversal stack overflow")
					stack[top] = nodePair{nodeA.Start + uint32(i), nodeB.Start + uint32(j)}
					top++
				}
			}
		}
	}
}

// OverlapShapeBoundsCollect is the collected-slice convenience form of
// OverlapShapeBounds, for callers that would rather have a materialized
// result than drive a callback.
func (s *Scene) OverlapShapeBoundsCollect(excludeSelf bool) []ShapePair {
	var out []ShapePair
	s.OverlapShapeBounds(excludeSelf, func(a, b int32) {
		out = append(out, ShapePair{A: a, B: b})
	})
	return out
}
