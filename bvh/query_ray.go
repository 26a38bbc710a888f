package bvh

// Hit is the result of a closest-hit ray or nearest-point query.
type Hit struct {
	Shape int32
	Elem  int32
	UV    UV
}

// IntersectClosest finds the closest ray-scene intersection. t is measured in
// units of ‖ray.Dir‖. Outputs are populated only when hit is true.
func (s *Scene) IntersectClosest(ray Ray) (hit bool, t float32, res Hit) {
	assertf(s.built, "bvh: scene queried before Build")
	workRay := ray
	hit = s.intersectScene(&workRay, false, &res)
	if hit {
		t = workRay.TMax
	}
	return hit, t, res
}

// IntersectAny reports whether ray hits anything in the scene, exiting the
// traversal as soon as a hit is found; it does not report (u,v).
func (s *Scene) IntersectAny(ray Ray) bool {
	assertf(s.built, "bvh: scene queried before Build")
	workRay := ray
	var res Hit
	return s.intersectScene(&workRay, true, &res)
}

// intersectShape walks this shape's tree using an explicit 64-deep stack,
// tightening ray.TMax on every hit so that subsequent bbox tests prune
// farther subtrees. earlyExit stops once a leaf has produced a hit; the (u,v)
// of that hit is still written to euv.
func (s *Shape) intersectShape(ray *Ray, earlyExit bool, eid *int32, euv *UV) bool {
	var stack [rayStackDepth]uint32
	top := 0
	stack[top] = 0
	top++

	hit := false

	for top > 0 {
		if earlyExit && hit {
			return hit
		}
		top--
		nodeIdx := stack[top]
		node := &s.nodes[nodeIdx]

		if !IntersectBox(*ray, node.Box) {
			continue
		}

		if !node.IsLeaf {
			// push far child first so the near child (along the
			// ray direction's sign on the split axis) pops first.
			if ray.Dir[node.Axis] >= 0 {
				for i := int(node.Count) - 1; i >= 0; i-- {
					assertf(top < rayStackDepth, "bvh: ray traversal stack overflow")
					stack[top] = node.Start + uint32(i)
					top++
				}
			} else {
				for i := 0; i < int(node.Count); i++ {
					assertf(top < rayStackDepth, "bvh: ray traversal stack overflow")
					stack[top] = node.Start + uint32(i)
					top++
				}
			}
			continue
		}

		for i := uint16(0); i < node.Count; i++ {
			idx := s.sortedPrim[node.Start+uint32(i)]
			var ok bool
			switch s.Mesh.Kind {
			case Point:
				f := s.Mesh.elemIndices(int(idx))[0]
				ok = IntersectPoint(*ray, s.Mesh.Positions[f], s.Mesh.radiusAt(f), &ray.TMax, euv)
			case Line:
				fi := s.Mesh.elemIndices(int(idx))
				f0, f1 := fi[0], fi[1]
				ok = IntersectLine(*ray, s.Mesh.Positions[f0], s.Mesh.Positions[f1], s.Mesh.radiusAt(f0), s.Mesh.radiusAt(f1), &ray.TMax, euv)
			case Triangle:
				fi := s.Mesh.elemIndices(int(idx))
				ok = IntersectTriangle(*ray, s.Mesh.Positions[fi[0]], s.Mesh.Positions[fi[1]], s.Mesh.Positions[fi[2]], &ray.TMax, euv)
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

// intersectScene walks the scene tree; at each leaf it transforms the ray
// into the shape's local frame via the cached inverse transform and recurses
// into that shape's own traversal. t is shared across frames because the
// ray parameter is invariant under an affine reparameterization.
func (s *Scene) intersectScene(ray *Ray, earlyExit bool, res *Hit) bool {
	var stack [rayStackDepth]uint32
	top := 0
	stack[top] = 0
	top++

	hit := false

	for top > 0 {
		if earlyExit && hit {
			return hit
		}
		top--
		nodeIdx := stack[top]
		node := &s.nodes[nodeIdx]

		if !IntersectBox(*ray, node.Box) {
			continue
		}

		if !node.IsLeaf {
			if ray.Dir[node.Axis] >= 0 {
				for i := int(node.Count) - 1; i >= 0; i-- {
					assertf(top < rayStackDepth, "bvh: ray traversal stack overflow")
					stack[top] = node.Start + uint32(i)
					top++
				}
			} else {
				for i := 0; i < int(node.Count); i++ {
					assertf(top < rayStackDepth, "bvh: ray traversal stack overflow")
					stack[top] = node.Start + uint32(i)
					top++
				}
			}
			continue
		}

		for i := uint16(0); i < node.Count; i++ {
			idx := s.sortedPrim[node.Start+uint32(i)]
			shape := s.shapes[idx]

			localRay := Ray{
				Origin: s.invXforms[idx].TransformPoint(ray.Origin),
				Dir:    s.invXforms[idx].TransformVector(ray.Dir),
				TMin:   ray.TMin,
				TMax:   ray.TMax,
			}

			if shape.intersectShape(&localRay, earlyExit, &res.Elem, &res.UV) {
				hit = true
				res.Shape = idx
				ray.TMax = localRay.TMax
			}
		}
	}

	return hit
}
