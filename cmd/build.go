package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/achilleasa/bvh/bvh"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// BuildShape parses one or more wavefront obj files, builds a triangle shape
// BVH over each, and prints build statistics for every mesh.
func BuildShape(ctx *cli.Context) error {
	setupLogging(ctx)

	paths := ctx.Args()
	if len(paths) == 0 {
		return fmt.Errorf("usage: bvh build mesh1.obj mesh2.obj ...")
	}

	heuristic := bvh.SAH
	if ctx.GlobalBool("equal-count") {
		heuristic = bvh.EqualCount
	}

	for _, path := range paths {
		mesh, err := loadTriangleMesh(path)
		if err != nil {
			logger.Error(err)
			return err
		}

		logger.Noticef("building bvh for %q (%d triangles)", path, mesh.NumElements())

		shape := bvh.NewShape(mesh, heuristic)
		shape.Build()

		fmt.Println(statsTable(path, shape.Stats()))
	}

	return nil
}

// statsTable renders a TreeStats as a two-column tabular report, one row
// per statistic.
func statsTable(label string, st bvh.TreeStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"bvh", label})
	table.Append([]string{"nodes", strconv.Itoa(st.NumNodes)})
	table.Append([]string{"leaves", strconv.Itoa(st.NumLeaves)})
	table.Append([]string{"primitives", strconv.Itoa(st.NumPrims)})
	table.Append([]string{"min leaf depth", strconv.Itoa(st.MinLeafDepth)})
	table.Append([]string{"max leaf depth", strconv.Itoa(st.MaxLeafDepth)})
	table.Append([]string{"avg leaf depth", fmt.Sprintf("%.2f", st.AvgLeafDepth)})
	table.Append([]string{"avg prims/leaf", fmt.Sprintf("%.2f", st.AvgPrimCount)})
	table.Render()
	return buf.String()
}
