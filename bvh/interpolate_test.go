package bvh

import "testing"

func TestInterpolateVertexTriangle(t *testing.T) {
	elements := []int32{0, 1, 2}
	attrs := []float32{
		0, 0, // vertex 0
		1, 0, // vertex 1
		0, 1, // vertex 2
	}
	out := make([]float32, 2)

	InterpolateVertex(Triangle, elements, attrs, 2, 0, UV{0, 0}, out)
	if out[0] != 0 || out[1] != 0 {
		t.Fatalf("expected uv (0,0) to reproduce vertex 0's attribute; got %v", out)
	}

	InterpolateVertex(Triangle, elements, attrs, 2, 0, UV{1, 0}, out)
	if out[0] != 1 || out[1] != 0 {
		t.Fatalf("expected uv (1,0) to reproduce vertex 1's attribute; got %v", out)
	}

	InterpolateVertex(Triangle, elements, attrs, 2, 0, UV{0.5, 0.5}, out)
	want := []float32{0.5, 0.5}
	if out[0] != want[0] || out[1] != want[1] {
		t.Fatalf("expected barycentric midpoint %v; got %v", want, out)
	}
}

func TestInterpolateVertexLine(t *testing.T) {
	elements := []int32{0, 1}
	attrs := []float32{0, 10}
	out := make([]float32, 1)

	InterpolateVertex(Line, elements, attrs, 1, 0, UV{0.25, 0}, out)
	if out[0] != 2.5 {
		t.Fatalf("expected lerp(0,10,0.25)=2.5; got %f", out[0])
	}
}

func TestInterpolateVertexPoint(t *testing.T) {
	elements := []int32{3}
	attrs := []float32{0, 0, 0, 7, 8}
	out := make([]float32, 1)

	InterpolateVertex(Point, elements, attrs, 1, 0, UV{0, 0}, out)
	if out[0] != 7 {
		t.Fatalf("expected point interpolation to copy vertex 3's attribute unchanged; got %f", out[0])
	}
}
