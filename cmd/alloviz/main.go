// Package main provides the alloviz CLI, which generates the egocentric and
// allocentric demonstration scenes and writes them out as an interactive HTML
// page and an optional bird's-eye-view PNG.
package main

import (
	"math/rand"
	"os"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/alloviz/alloviz/render"
	"github.com/alloviz/alloviz/scene"
	"github.com/alloviz/alloviz/spatialmath"
)

var logger = golog.NewDevelopmentLogger("alloviz")

var app = &cli.App{
	Name:            "alloviz",
	Usage:           "visualize egocentric vs allocentric object pose",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"v"},
			Usage:   "enable debug logging",
		},
	},
	Before: func(c *cli.Context) error {
		if c.Bool("debug") {
			logger = golog.NewDebugLogger("alloviz")
		}
		return nil
	},
	Commands: []*cli.Command{
		{
			Name:   "generate",
			Usage:  "generate both scenes and write the rendered artifacts",
			Action: GenerateAction,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "boxes",
					Value: 7,
					Usage: "number of boxes per scene",
				},
				&cli.Float64Flag{
					Name:  "extent",
					Value: 1,
					Usage: "edge length of each box",
				},
				&cli.Float64Flag{
					Name:  "spacing",
					Value: 2,
					Usage: "distance between adjacent box centers in the line scene",
				},
				&cli.Float64Flag{
					Name:  "distance",
					Value: 8,
					Usage: "depth of the line scene and radius of the arc scene",
				},
				&cli.Float64Flag{
					Name:  "arc-span",
					Value: 90,
					Usage: "total angular span of the arc scene in degrees",
				},
				&cli.BoolFlag{
					Name:  "random",
					Usage: "sample a random shared rotation instead of identity",
				},
				&cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for the random rotation",
				},
				&cli.StringFlag{
					Name:  "out",
					Value: "alloviz.html",
					Usage: "output path of the interactive HTML page",
				},
				&cli.StringFlag{
					Name:  "bev",
					Usage: "optional output path of a bird's-eye-view PNG of the arc scene",
				},
			},
		},
	},
}

// GenerateAction builds both scenes from the command flags and writes the
// rendered artifacts.
func GenerateAction(c *cli.Context) error {
	r := rand.New(rand.NewSource(c.Int64("seed")))
	rotation := spatialmath.NewZeroOrientation()
	if c.Bool("random") {
		rotation = spatialmath.RandomOrientation(r)
		logger.Debugw("sampled shared rotation", "seed", c.Int64("seed"), "axisAngles", rotation.AxisAngles())
	}

	extent := c.Float64("extent")
	cfg := scene.Config{
		NumBoxes:   c.Int("boxes"),
		BoxDims:    r3.Vector{X: extent, Y: extent, Z: extent},
		Spacing:    c.Float64("spacing"),
		Distance:   c.Float64("distance"),
		ArcSpanDeg: c.Float64("arc-span"),
		Rotation:   rotation,
		FaceRand:   r,
	}

	egoScene, err := scene.Line(cfg)
	if err != nil {
		return errors.Wrap(err, "cannot build egocentric scene")
	}
	alloScene, err := scene.Arc(cfg)
	if err != nil {
		return errors.Wrap(err, "cannot build allocentric scene")
	}

	outPath := c.String("out")
	htmlFile, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "cannot create %q", outPath)
	}
	defer htmlFile.Close()
	if err := render.HTML(htmlFile, egoScene, alloScene); err != nil {
		return errors.Wrap(err, "cannot render HTML page")
	}
	logger.Infow("wrote interactive page", "path", outPath, "boxes", cfg.NumBoxes)

	if bevPath := c.String("bev"); bevPath != "" {
		bevFile, err := os.Create(bevPath)
		if err != nil {
			return errors.Wrapf(err, "cannot create %q", bevPath)
		}
		defer bevFile.Close()
		if err := render.BEV(bevFile, alloScene); err != nil {
			return errors.Wrap(err, "cannot render bird's-eye view")
		}
		logger.Infow("wrote bird's-eye view", "path", bevPath)
	}
	return nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}
