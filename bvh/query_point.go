package bvh

import "github.com/achilleasa/bvh/types"

// Neighbor finds the closest primitive to pt within maxDist. If
// requiredShapeID is >= 0, the scene walker is bypassed entirely and the
// query point is pre-transformed into that shape's local frame before
// invoking its own nearest-point query directly.
func (s *Scene) Neighbor(pt types.Vec3, maxDist float32, requiredShapeID int32) (hit bool, dist float32, res Hit) {
	assertf(s.built, "bvh: scene queried before Build")

	if requiredShapeID >= 0 {
		localPt := s.invXforms[requiredShapeID].TransformPoint(pt)
		distMax := maxDist
		var eid int32
		var euv UV
		if s.shapes[requiredShapeID].neighborShape(localPt, &distMax, &eid, &euv) {
			return true, distMax, Hit{Shape: requiredShapeID, Elem: eid, UV: euv}
		}
		return false, 0, Hit{}
	}

	distMax := maxDist
	hit = s.neighborScene(pt, &distMax, &res)
	if hit {
		dist = distMax
	}
	return hit, dist, res
}

// neighborShape walks this shape's tree looking for the closest primitive to
// pt within distMax, tightening distMax on every hit. Descent order is not
// optimized since no traversal-axis hint applies to point queries; all
// children are pushed unconditionally.
func (s *Shape) neighborShape(pt types.Vec3, distMax *float32, eid *int32, euv *UV) bool {
	var stack [rayStackDepth]uint32
	top := 0
	stack[top] = 0
	top++

	hit := false

	for top > 0 {
		top--
		nodeIdx := stack[top]
		node := &s.nodes[nodeIdx]

		if node.Box.DistanceSqr(pt) >= *distMax**distMax {
			continue
		}

		if !node.IsLeaf {
			for i := 0; i < int(node.Count); i++ {
				assertf(top < rayStackDepth, "bvh: nearest-point traversal stack overflow")
				stack[top] = node.Start + uint32(i)
				top++
			}
			continue
		}

		for i := uint16(0); i < node.Count; i++ {
			idx := s.sortedPrim[node.Start+uint32(i)]
			var ok bool
			switch s.Mesh.Kind {
			case Point:
				f := s.Mesh.elemIndices(int(idx))[0]
				ok = DistancePoint(pt, *distMax, s.Mesh.Positions[f], s.Mesh.radiusAt(f), distMax, euv)
			case Line:
				fi := s.Mesh.elemIndices(int(idx))
				f0, f1 := fi[0], fi[1]
				ok = DistanceLine(pt, *distMax, s.Mesh.Positions[f0], s.Mesh.Positions[f1], s.Mesh.radiusAt(f0), s.Mesh.radiusAt(f1), distMax, euv)
			case Triangle:
				fi := s.Mesh.elemIndices(int(idx))
				f0, f1, f2 := fi[0], fi[1], fi[2]
				ok = DistanceTriangle(pt, *distMax, s.Mesh.Positions[f0], s.Mesh.Positions[f1], s.Mesh.Positions[f2], 0, 0, 0, distMax, euv)
			default:
				assertf(false, "bvh: unknown element kind %d", s.Mesh.Kind)
			}
			if ok {
				hit = true
				*eid = idx
			}
		}
	}

	return hit
}

// neighborScene walks the scene tree, bypassing the shape subtree only when
// the node's world bbox is already further than distMax from pt.
func (s *Scene) neighborScene(pt types.Vec3, distMax *float32, res *Hit) bool {
	var stack [rayStackDepth]uint32
	top := 0
	stack[top] = 0
	top++

	hit := false

	for top > 0 {
		top--
		nodeIdx := stack[top]
		node := &s.nodes[nodeIdx]

		if node.Box.DistanceSqr(pt) >= *distMax**distMax {
			continue
		}

		if !node.IsLeaf {
			for i := 0; i < int(node.Count); i++ {
				assertf(top < rayStackDepth, "bvh: nearest-point traversal stack overflow")
				stack[top] = node.Start + uint32(i)
				top++
			}
			continue
		}

		for i := uint16(0); i < node.Count; i++ {
			idx := s.sortedPrim[node.Start+uint32(i)]
			localPt := s.invXforms[idx].TransformPoint(pt)
			if s.shapes[idx].neighborShape(localPt, distMax, &res.Elem, &res.UV) {
				hit = true
				res.Shape = idx
			}
		}
	}

	return hit
}
