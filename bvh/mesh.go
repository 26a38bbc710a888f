package bvh

import "github.com/achilleasa/bvh/types"

// Mesh is an indexed mesh of a single primitive Kind. It does not own its
// buffers: Elements, Positions and Radii are borrowed slices that must
// outlive any BVH built over them and must not be mutated while queries run.
//
// Elements is flattened: Kind.Arity() indices per element, e.g. for Triangle
// element i occupies Elements[3*i:3*i+3].
type Mesh struct {
	Kind      Kind
	Elements  []int32
	Positions []types.Vec3
	// Radii is required for Line, optional for Point (0 if nil), and
	// ignored for Triangle.
	Radii []float32
}

// NumElements returns the element count implied by Elements and Kind.Arity().
func (m Mesh) NumElements() int {
	arity := m.Kind.Arity()
	return len(m.Elements) / arity
}

// elemIndices returns the vertex indices for element i.
func (m Mesh) elemIndices(i int) []int32 {
	arity := m.Kind.Arity()
	return m.Elements[i*arity : i*arity+arity]
}

func (m Mesh) radiusAt(vertexIdx int32) float32 {
	if m.Radii == nil {
		return 0
	}
	return m.Radii[vertexIdx]
}

// boundPrims computes the per-element bound primitive (bbox + center + id)
// used by the builder. Point bboxes are the vertex expanded by its radius on
// every axis; line bboxes union both radius-expanded endpoints; triangle
// bboxes union the three vertices (radii are not defined for triangles).
func (m Mesh) boundPrims() []boundPrim {
	n := m.NumElements()
	out := make([]boundPrim, n)

	switch m.Kind {
	case Point:
		for i := 0; i < n; i++ {
			f := m.elemIndices(i)[0]
			r := m.radiusAt(f)
			rv := types.Vec3{r, r, r}
			box := EmptyBox().ExpandPoint(m.Positions[f].Sub(rv)).ExpandPoint(m.Positions[f].Add(rv))
			out[i] = boundPrim{bbox: box, center: box.Center(), pid: int32(i)}
		}
	case Line:
		assertf(m.Radii != nil, "bvh: line shape requires a radius buffer")
		for i := 0; i < n; i++ {
			idx := m.elemIndices(i)
			f0, f1 := idx[0], idx[1]
			r0v := types.Vec3{m.radiusAt(f0), m.radiusAt(f0), m.radiusAt(f0)}
			r1v := types.Vec3{m.radiusAt(f1), m.radiusAt(f1), m.radiusAt(f1)}
			box := EmptyBox().
				ExpandPoint(m.Positions[f0].Sub(r0v)).
				ExpandPoint(m.Positions[f0].Add(r0v)).
				ExpandPoint(m.Positions[f1].Sub(r1v)).
				ExpandPoint(m.Positions[f1].Add(r1v))
			out[i] = boundPrim{bbox: box, center: box.Center(), pid: int32(i)}
		}
	case Triangle:
		for i := 0; i < n; i++ {
			idx := m.elemIndices(i)
			box := EmptyBox().
				ExpandPoint(m.Positions[idx[0]]).
				ExpandPoint(m.Positions[idx[1]]).
				ExpandPoint(m.Positions[idx[2]])
			out[i] = boundPrim{bbox: box, center: box.Center(), pid: int32(i)}
		}
	default:
		assertf(false, "bvh: unknown element kind %d", m.Kind)
	}

	return out
}
