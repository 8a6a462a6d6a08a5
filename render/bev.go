package render

import (
	"io"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alloviz/alloviz/scene"
)

// Indices of the bottom-face corners of a box, ordered around the quad, plus
// a repeat of the first to close the footprint.
var footprintWalk = [5]int{2, 3, 7, 6, 2}

// BEV writes a bird's-eye-view PNG of the scene: box footprints and heading
// segments on the camera XZ plane, camera at the origin looking up the page.
func BEV(w io.Writer, s *scene.Scene) error {
	if s == nil || len(s.Boxes) == 0 {
		return errors.New("cannot render an empty scene")
	}

	p := plot.New()
	p.Title.Text = s.Label + " (bird's-eye view)"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "z"
	p.Add(plotter.NewGrid())

	for _, pb := range s.Boxes {
		verts := pb.Box.Vertices()
		footprint := make(plotter.XYs, 0, len(footprintWalk))
		for _, idx := range footprintWalk {
			footprint = append(footprint, plotter.XY{X: verts[idx].X, Y: verts[idx].Z})
		}
		if len(pb.FaceColors) > 0 {
			fill, err := plotter.NewPolygon(footprint)
			if err != nil {
				return errors.Wrap(err, "cannot build footprint fill")
			}
			fill.Color = pb.FaceColors[0]
			p.Add(fill)
		}
		outline, err := plotter.NewLine(footprint)
		if err != nil {
			return errors.Wrap(err, "cannot build footprint outline")
		}
		outline.LineStyle.Color = pb.Color
		outline.LineStyle.Width = vg.Points(1.5)
		p.Add(outline)

		heading, err := headingSegment(pb)
		if err != nil {
			return err
		}
		heading.LineStyle.Color = pb.Color
		heading.LineStyle.Width = vg.Points(3)
		p.Add(heading)
	}

	wt, err := p.WriterTo(6*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return errors.Wrap(err, "cannot encode bird's-eye view")
	}
	_, err = wt.WriteTo(w)
	return err
}

// headingSegment draws the world-space direction of the box's local forward
// axis from its center.
func headingSegment(pb scene.PlacedBox) (*plotter.Line, error) {
	center := pb.Box.Pose().Point()
	fwd := pb.Box.Pose().Orientation().RotationMatrix().Mul(r3.Vector{Z: 1})
	tip := center.Add(fwd.Mul(pb.Box.Dims().Z))
	seg, err := plotter.NewLine(plotter.XYs{
		{X: center.X, Y: center.Z},
		{X: tip.X, Y: tip.Z},
	})
	if err != nil {
		return nil, errors.Wrap(err, "cannot build heading segment")
	}
	return seg, nil
}
