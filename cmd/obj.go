package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/achilleasa/bvh/bvh"
	"github.com/achilleasa/bvh/types"
)

// loadTriangleMesh parses the vertex and face records out of a wavefront obj
// file into a triangle Mesh. Only "v" and "f" records are recognized; normals,
// uv coordinates, materials and groups are ignored. Faces with more than 3
// vertices are fan-triangulated around their first vertex.
func loadTriangleMesh(path string) (bvh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return bvh.Mesh{}, err
	}
	defer f.Close()

	var positions []types.Vec3
	var elements []int32

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 || tokens[0] == "#" {
			continue
		}

		switch tokens[0] {
		case "v":
			if len(tokens) < 4 {
				return bvh.Mesh{}, fmt.Errorf("%s:%d: malformed vertex record", path, lineNum)
			}
			x, err := strconv.ParseFloat(tokens[1], 32)
			if err != nil {
				return bvh.Mesh{}, fmt.Errorf("%s:%d: %v", path, lineNum, err)
			}
			y, err := strconv.ParseFloat(tokens[2], 32)
			if err != nil {
				return bvh.Mesh{}, fmt.Errorf("%s:%d: %v", path, lineNum, err)
			}
			z, err := strconv.ParseFloat(tokens[3], 32)
			if err != nil {
				return bvh.Mesh{}, fmt.Errorf("%s:%d: %v", path, lineNum, err)
			}
			positions = append(positions, types.Vec3{float32(x), float32(y), float32(z)})

		case "f":
			faceVerts := tokens[1:]
			if len(faceVerts) < 3 {
				return bvh.Mesh{}, fmt.Errorf("%s:%d: face record needs at least 3 vertices", path, lineNum)
			}
			idx := make([]int32, len(faceVerts))
			for i, v := range faceVerts {
				vi, err := parseFaceVertexIndex(v, len(positions))
				if err != nil {
					return bvh.Mesh{}, fmt.Errorf("%s:%d: %v", path, lineNum, err)
				}
				idx[i] = vi
			}
			for i := 1; i < len(idx)-1; i++ {
				elements = append(elements, idx[0], idx[i], idx[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return bvh.Mesh{}, err
	}

	return bvh.Mesh{Kind: bvh.Triangle, Elements: elements, Positions: positions}, nil
}

// parseFaceVertexIndex extracts the position index out of a face vertex
// record of the form "v", "v/vt" or "v/vt/vn", converting obj's 1-based
// (or negative, relative) indexing into a 0-based index.
func parseFaceVertexIndex(tok string, numVerts int) (int32, error) {
	parts := strings.SplitN(tok, "/", 2)
	v, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed face vertex index %q", tok)
	}
	if v < 0 {
		v = numVerts + v + 1
	}
	return int32(v - 1), nil
}
