package bvh

import "github.com/achilleasa/bvh/types"

// boundPrim packs a primitive's bounding box, center and id together with
// scratch SAH cost fields, for faster hierarchy build. center is duplicated
// from bbox purely so the sort/sweep hot loop touches one cache line.
type boundPrim struct {
	bbox   Box
	center types.Vec3
	pid    int32

	sahCostLeft  float32
	sahCostRight float32
}

// heapsortBoundPrims sorts a[0:n] by center[axis] in ascending order.
// Ported directly from the classic heapsort-by-max-heap shape (build a max
// heap, repeatedly swap the root to the end and shrink).
func heapsortBoundPrims(a []boundPrim, axis int) {
	n := len(a)
	if n == 0 {
		return
	}

	parent := n / 2
	end := n
	for {
		var t boundPrim
		if parent > 0 {
			parent--
			t = a[parent]
		} else {
			end--
			if end == 0 {
				return
			}
			t = a[end]
			a[end] = a[0]
		}

		index := parent
		child := index*2 + 1
		for child < end {
			if child+1 < end && a[child+1].center[axis] > a[child].center[axis] {
				child++
			}
			if a[child].center[axis] > t.center[axis] {
				a[index] = a[child]
				index = child
				child = index*2 + 1
			} else {
				break
			}
		}
		a[index] = t
	}
}

// shellsortBoundPrims is an allowed alternative sort to heapsortBoundPrims;
// the choice between the two is not observable by callers. Kept here for
// reference/benchmarking rather than wired into the default build path.
func shellsortBoundPrims(a []boundPrim, axis int) {
	n := len(a)
	for h := n / 2; h > 0; h /= 2 {
		for i := h; i < n; i++ {
			t := a[i]
			j := i
			for ; j >= h && t.center[axis] < a[j-h].center[axis]; j -= h {
				a[j] = a[j-h]
			}
			a[j] = t
		}
	}
}

// splitAxis chooses the split axis and pivot index for sorted_prim[start:end]
// according to the given heuristic. On return, sortedPrim[start:end] has
// already been sorted along the chosen axis by both heuristics, so the
// caller needs no further sort.
func splitAxis(sortedPrim []boundPrim, start, end int, h Heuristic) (axis int, mid int) {
	switch h {
	case EqualCount:
		bbox := EmptyBox()
		for i := start; i < end; i++ {
			bbox = bbox.ExpandPoint(sortedPrim[i].center)
		}
		size := bbox.Size()
		switch {
		case size[0] >= size[1] && size[0] >= size[2]:
			axis = 0
		case size[1] >= size[0] && size[1] >= size[2]:
			axis = 1
		default:
			axis = 2
		}
		mid = (start + end) / 2
		heapsortBoundPrims(sortedPrim[start:end], axis)
		return axis, mid

	case Default, SAH:
		axis = -1
		mid = -1
		minCost := float32(3.0e38)
		count := end - start

		for a := 0; a < 3; a++ {
			heapsortBoundPrims(sortedPrim[start:end], a)

			sbbox := EmptyBox()
			for i := 0; i < count; i++ {
				sbbox = sbbox.Union(sortedPrim[start+i].bbox)
				sortedPrim[start+i].sahCostLeft = sbbox.HalfSurfaceArea() * float32(i+1)
			}

			sbbox = EmptyBox()
			for i := 0; i < count; i++ {
				sbbox = sbbox.Union(sortedPrim[end-1-i].bbox)
				sortedPrim[end-1-i].sahCostRight = sbbox.HalfSurfaceArea() * float32(i+1)
			}

			for i := start + 2; i <= end-2; i++ {
				cost := sortedPrim[i-1].sahCostLeft + sortedPrim[i].sahCostRight
				if cost < minCost {
					minCost = cost
					axis = a
					mid = i
				}
			}
		}

		assertf(axis >= 0 && mid > 0, "bvh: SAH split could not find a candidate for %d primitives", count)
		// re-sort on the winning axis: the last sweep left sortedPrim
		// ordered by the third axis tried, not necessarily the winner.
		heapsortBoundPrims(sortedPrim[start:end], axis)
		return axis, mid

	default:
		assertf(false, "bvh: unknown heuristic %d", h)
		return 0, 0
	}
}
