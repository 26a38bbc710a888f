package bvh

import "fmt"

// TreeStats reports build statistics for a shape or scene tree, mirroring
// the reference implementation's print_bvh_stats/collect_bvh_stats helpers.
type TreeStats struct {
	NumNodes     int
	NumLeaves    int
	NumPrims     int
	MinLeafDepth int
	MaxLeafDepth int
	AvgLeafDepth float64
	AvgPrimCount float64
}

// collectStats walks the tree rooted at nodeIdx accumulating per-leaf depth
// and primitive-count statistics.
func collectStats(nodes []Node, nodeIdx int, depth int) TreeStats {
	var st TreeStats
	st.MinLeafDepth = -1
	collectStatsInto(&st, nodes, nodeIdx, depth)
	if st.NumLeaves > 0 {
		st.AvgLeafDepth /= float64(st.NumLeaves)
		st.AvgPrimCount = float64(st.NumPrims) / float64(st.NumLeaves)
	}
	return st
}

func collectStatsInto(st *TreeStats, nodes []Node, nodeIdx int, depth int) {
	node := &nodes[nodeIdx]
	st.NumNodes++

	if node.IsLeaf {
		st.NumLeaves++
		st.NumPrims += int(node.Count)
		st.AvgLeafDepth += float64(depth)
		if st.MinLeafDepth < 0 || depth < st.MinLeafDepth {
			st.MinLeafDepth = depth
		}
		if depth > st.MaxLeafDepth {
			st.MaxLeafDepth = depth
		}
		return
	}

	for i := 0; i < int(node.Count); i++ {
		collectStatsInto(st, nodes, int(node.Start)+i, depth+1)
	}
}

// String renders the stats as a short human-readable summary.
func (st TreeStats) String() string {
	return fmt.Sprintf(
		"nodes=%d leaves=%d prims=%d depth(min/max/avg)=%d/%d/%.2f avgPrimsPerLeaf=%.2f",
		st.NumNodes, st.NumLeaves, st.NumPrims, st.MinLeafDepth, st.MaxLeafDepth, st.AvgLeafDepth, st.AvgPrimCount,
	)
}
