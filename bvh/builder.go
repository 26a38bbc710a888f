package bvh

// buildTree runs the recursive top-down splitter over bprims (which is
// reordered in place by the split/sort steps) and returns the finished node
// array together with the primitive permutation implied by the final
// ordering of bprims.
//
// Node count is bounded by 2*len(bprims)-1 for a strictly binary tree; nodes
// is pre-allocated at 2*len(bprims) and trimmed once the actual count is known.
func buildTree(bprims []boundPrim, heuristic Heuristic) ([]Node, []int32) {
	n := len(bprims)
	if n == 0 {
		return []Node{{Box: EmptyBox(), IsLeaf: true}}, nil
	}

	nodes := make([]Node, 2*n)
	nnodes := 1
	makeNode(nodes, &nnodes, bprims, 0, n, heuristic, 0)
	nodes = nodes[:nnodes]

	sortedPrim := make([]int32, n)
	for i, p := range bprims {
		sortedPrim[i] = p.pid
	}
	return nodes, sortedPrim
}

// makeNode initializes nodes[nodeIdx] to cover bprims[start:end], either as a
// leaf or by choosing a split, sorting the range along the chosen axis, and
// recursing into two freshly-allocated children.
func makeNode(nodes []Node, nnodes *int, bprims []boundPrim, start, end int, heuristic Heuristic, nodeIdx int) {
	box := EmptyBox()
	for i := start; i < end; i++ {
		box = box.Union(bprims[i].bbox)
	}

	if end-start <= minPrims {
		nodes[nodeIdx] = Node{
			Box:    box,
			IsLeaf: true,
			Start:  uint32(start),
			Count:  uint16(end - start),
		}
		return
	}

	axis, mid := splitAxis(bprims, start, end, heuristic)

	childStart := *nnodes
	*nnodes += 2
	nodes[nodeIdx] = Node{
		Box:   box,
		Start: uint32(childStart),
		Count: 2,
		Axis:  uint8(axis),
	}

	makeNode(nodes, nnodes, bprims, start, mid, heuristic, childStart)
	makeNode(nodes, nnodes, bprims, mid, end, heuristic, childStart+1)
}
