package bvh

// Node is a BVH tree node. It is either internal, in which case its children
// occupy nodes[Start:Start+Count], or a leaf, in which case its primitives
// occupy sortedPrim[Start:Start+Count]. The layout is fixed at 32 bytes:
// Box (24 bytes) + Start (4) + Count (2) + IsLeaf (1) + Axis (1).
type Node struct {
	Box     Box
	Start   uint32
	Count   uint16
	IsLeaf  bool
	Axis    uint8
}
