// Package scene builds the two demonstration scenes: a line of boxes sharing
// one egocentric rotation, and an arc of boxes sharing one allocentric
// rotation.
package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/alloviz/alloviz/allocentric"
	"github.com/alloviz/alloviz/spatialmath"
	"github.com/alloviz/alloviz/utils"
)

// Config holds the explicit parameters of a generated scene. The shared
// rotation is always passed in; callers wanting a random one sample it
// themselves from a seeded source.
type Config struct {
	// NumBoxes is the number of boxes to place.
	NumBoxes int
	// BoxDims are the full extents of every box.
	BoxDims r3.Vector
	// Spacing is the distance between adjacent box centers in the line scene.
	Spacing float64
	// Distance is the depth of the line scene and the radius of the arc scene.
	Distance float64
	// ArcSpanDeg is the total angular span of the arc scene, centered on the
	// camera forward axis.
	ArcSpanDeg float64
	// Rotation is the rotation shared by all boxes: egocentric in the line
	// scene, allocentric in the arc scene.
	Rotation spatialmath.Orientation
	// FaceRand, when set, is the source used to derive per-face colors for
	// each box. Nil leaves FaceColors empty.
	FaceRand *rand.Rand
}

// PlacedBox is a box ready for rendering, with a box-level color and one
// color per mesh triangle.
type PlacedBox struct {
	Box        *spatialmath.Box
	Color      colorful.Color
	FaceColors []colorful.Color
}

// Scene is an ordered collection of placed boxes with a display label.
type Scene struct {
	Label string
	Boxes []PlacedBox
}

func (c Config) placedBox(box *spatialmath.Box, i int) PlacedBox {
	pb := PlacedBox{Box: box, Color: paletteColor(i, c.NumBoxes)}
	if c.FaceRand != nil {
		pb.FaceColors = FaceColors(len(box.Triangles()), c.FaceRand)
	}
	return pb
}

func (c Config) validate() error {
	if c.NumBoxes < 1 {
		return errors.Errorf("scene needs at least one box, got %d", c.NumBoxes)
	}
	if c.Rotation == nil {
		return errors.New("scene rotation cannot be nil")
	}
	if c.Distance <= 0 {
		return errors.Errorf("scene distance must be positive, got %f", c.Distance)
	}
	return nil
}

// Line places boxes along the camera X axis at a fixed depth, all with the
// identical camera-frame rotation. Only the translation varies from box to
// box; this is the egocentric illustration.
func Line(cfg Config) (*Scene, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	boxes := make([]PlacedBox, 0, cfg.NumBoxes)
	half := float64(cfg.NumBoxes-1) / 2.
	for i := 0; i < cfg.NumBoxes; i++ {
		pt := r3.Vector{X: (float64(i) - half) * cfg.Spacing, Y: 0, Z: cfg.Distance}
		box, err := spatialmath.NewBox(
			spatialmath.NewPose(pt, cfg.Rotation),
			cfg.BoxDims,
			fmt.Sprintf("ego-%d", i),
		)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, cfg.placedBox(box, i))
	}
	return &Scene{Label: "egocentric", Boxes: boxes}, nil
}

// Arc places boxes along an arc in the camera XZ plane, each with the
// identical allocentric rotation relative to its own viewing ray. Their
// camera-frame rotations all differ, but every box presents the same face to
// the camera; this is the allocentric illustration.
func Arc(cfg Config) (*Scene, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.ArcSpanDeg <= 0 {
		return nil, errors.Errorf("arc span must be positive, got %f", cfg.ArcSpanDeg)
	}
	boxes := make([]PlacedBox, 0, cfg.NumBoxes)
	for i := 0; i < cfg.NumBoxes; i++ {
		frac := 0.5
		if cfg.NumBoxes > 1 {
			frac = float64(i) / float64(cfg.NumBoxes-1)
		}
		angle := utils.DegToRad((frac - 0.5) * cfg.ArcSpanDeg)
		dir := r3.Vector{X: math.Sin(angle), Y: 0, Z: math.Cos(angle)}
		pose, err := allocentric.PlacePose(
			allocentric.ObjectPlacement{Direction: dir, Distance: cfg.Distance},
			allocentric.DefaultPrincipalAxis,
			cfg.Rotation,
		)
		if err != nil {
			return nil, err
		}
		box, err := spatialmath.NewBox(pose, cfg.BoxDims, fmt.Sprintf("allo-%d", i))
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, cfg.placedBox(box, i))
	}
	return &Scene{Label: "allocentric", Boxes: boxes}, nil
}
