package bvh

// InterpolateVertex interpolates the per-vertex attribute buffer attrs (laid
// out densely with stride vsize floats per vertex) over element eid of kind,
// at barycentric/line parameter uv, writing vsize floats into out.
//
// Point elements copy their single vertex's attribute unchanged; line
// elements use weights (1-u, u); triangle elements use barycentric weights
// (1-u-v, u, v).
func InterpolateVertex(kind Kind, elements []int32, attrs []float32, vsize int, eid int32, uv UV, out []float32) {
	assertf(len(out) >= vsize, "bvh: interpolation output too small: have %d need %d", len(out), vsize)

	idx := elements[int(eid)*kind.Arity() : int(eid)*kind.Arity()+kind.Arity()]

	switch kind {
	case Point:
		copy(out[:vsize], attrs[int(idx[0])*vsize:int(idx[0])*vsize+vsize])

	case Line:
		w0, w1 := 1-uv.U, uv.U
		a := attrs[int(idx[0])*vsize : int(idx[0])*vsize+vsize]
		b := attrs[int(idx[1])*vsize : int(idx[1])*vsize+vsize]
		for i := 0; i < vsize; i++ {
			out[i] = w0*a[i] + w1*b[i]
		}

	case Triangle:
		w0, w1, w2 := 1-uv.U-uv.V, uv.U, uv.V
		a := attrs[int(idx[0])*vsize : int(idx[0])*vsize+vsize]
		b := attrs[int(idx[1])*vsize : int(idx[1])*vsize+vsize]
		c := attrs[int(idx[2])*vsize : int(idx[2])*vsize+vsize]
		for i := 0; i < vsize; i++ {
			out[i] = w0*a[i] + w1*b[i] + w2*c[i]
		}

	default:
		assertf(false, "bvh: unknown element kind %d", kind)
	}
}
