package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempObj(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.obj")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write temp obj file: %v", err)
	}
	return path
}

func TestLoadTriangleMeshSingleFace(t *testing.T) {
	path := writeTempObj(t, `
v -1 -1 0
v 1 -1 0
v 0 1 0
f 1 2 3
`)

	mesh, err := loadTriangleMesh(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mesh.NumElements() != 1 {
		t.Fatalf("expected 1 triangle; got %d", mesh.NumElements())
	}
	if len(mesh.Positions) != 3 {
		t.Fatalf("expected 3 vertices; got %d", len(mesh.Positions))
	}
}

func TestLoadTriangleMeshFanTriangulatesQuad(t *testing.T) {
	path := writeTempObj(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)

	mesh, err := loadTriangleMesh(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mesh.NumElements() != 2 {
		t.Fatalf("expected a quad to fan-triangulate into 2 triangles; got %d", mesh.NumElements())
	}
}

func TestLoadTriangleMeshNegativeIndices(t *testing.T) {
	path := writeTempObj(t, `
v -1 -1 0
v 1 -1 0
v 0 1 0
f -3 -2 -1
`)

	mesh, err := loadTriangleMesh(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mesh.Elements[0] != 0 || mesh.Elements[1] != 1 || mesh.Elements[2] != 2 {
		t.Fatalf("expected relative indices -3,-2,-1 to resolve to 0,1,2; got %v", mesh.Elements)
	}
}
