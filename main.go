package main

import (
	"os"

	"github.com/otmanesabir/OpenRT/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "openrt"
	app.Usage = "render constructive solid geometry scenes"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a CSG composite of two tessellated spheres",
			Description: `
Tessellate two sphere solids, combine them under a Boolean operator
(union, intersection or difference) and render the composite surface
to a PNG file using the CPU block tracer.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width",
					Value: 1024,
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height",
					Value: 1024,
				},
				cli.IntFlag{
					Name:  "sides",
					Usage: "sphere tessellation sides",
					Value: 32,
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of tracing workers (0 = all cores)",
					Value: 0,
				},
				cli.StringFlag{
					Name:  "op",
					Usage: "boolean operator: union, intersection or difference",
					Value: "union",
				},
				cli.StringFlag{
					Name:  "out",
					Usage: "output image",
					Value: "frame.png",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "bench",
			Usage: "measure composite intersection cost against tessellation density",
			Description: `
Render the same composite at increasing tessellation densities and
report primitive count and elapsed render time for each run. The
per-run rows can optionally be appended to a CSV file.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width",
					Value: 640,
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height",
					Value: 400,
				},
				cli.IntFlag{
					Name:  "min-sides",
					Usage: "initial sphere tessellation sides",
					Value: 6,
				},
				cli.IntFlag{
					Name:  "max-sides",
					Usage: "final sphere tessellation sides",
					Value: 48,
				},
				cli.StringFlag{
					Name:  "op",
					Usage: "boolean operator: union, intersection or difference",
					Value: "intersection",
				},
				cli.StringFlag{
					Name:  "csv",
					Usage: "append primitive count and elapsed ms rows to this file",
				},
			},
			Action: cmd.Bench,
		},
	}

	app.Run(os.Args)
}
