package main

import (
	"os"

	"github.com/achilleasa/bvh/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "bvh"
	app.Usage = "build and inspect bounding volume hierarchies over indexed meshes"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.BoolFlag{
			Name:  "equal-count",
			Usage: "use the equal-count split heuristic instead of SAH",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "build a triangle bvh from one or more wavefront obj files and report its stats",
			ArgsUsage: "mesh1.obj mesh2.obj ...",
			Action:    cmd.BuildShape,
		},
	}

	app.Run(os.Args)
}
