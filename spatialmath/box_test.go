package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestNewBox(t *testing.T) {
	b, err := NewBox(NewPoseFromPoint(r3.Vector{X: 1}), r3.Vector{X: 2, Y: 2, Z: 2}, "test")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b.Label(), test.ShouldEqual, "test")
	test.That(t, b.Dims(), test.ShouldResemble, r3.Vector{X: 2, Y: 2, Z: 2})

	_, err = NewBox(NewZeroPose(), r3.Vector{X: -1, Y: 1, Z: 1}, "bad")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestBoxNilPose(t *testing.T) {
	b, err := NewBox(nil, r3.Vector{X: 1, Y: 1, Z: 1}, "")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, PoseAlmostEqual(b.Pose(), NewZeroPose()), test.ShouldBeTrue)
}

func TestBoxVertices(t *testing.T) {
	b, err := NewBox(NewPoseFromPoint(r3.Vector{X: 1, Y: 2, Z: 3}), r3.Vector{X: 2, Y: 4, Z: 6}, "")
	test.That(t, err, test.ShouldBeNil)
	verts := b.Vertices()
	test.That(t, len(verts), test.ShouldEqual, 8)
	for _, v := range verts {
		test.That(t, math.Abs(v.X-1), test.ShouldAlmostEqual, 1)
		test.That(t, math.Abs(v.Y-2), test.ShouldAlmostEqual, 2)
		test.That(t, math.Abs(v.Z-3), test.ShouldAlmostEqual, 3)
	}
}

func TestBoxVerticesRotated(t *testing.T) {
	// 90 degrees about z maps the local +x corner offsets onto +y
	b, err := NewBox(NewPose(r3.Vector{}, &R4AA{math.Pi / 2, 0, 0, 1}), r3.Vector{X: 2, Y: 2, Z: 2}, "")
	test.That(t, err, test.ShouldBeNil)
	verts := b.Vertices()
	// canonical vertex 0 is local (1,1,1); rotated it lands at (-1,1,1)
	test.That(t, verts[0].X, test.ShouldAlmostEqual, -1, 1e-10)
	test.That(t, verts[0].Y, test.ShouldAlmostEqual, 1, 1e-10)
	test.That(t, verts[0].Z, test.ShouldAlmostEqual, 1, 1e-10)
}

func TestBoxEdges(t *testing.T) {
	b, err := NewBox(NewZeroPose(), r3.Vector{X: 2, Y: 2, Z: 2}, "")
	test.That(t, err, test.ShouldBeNil)
	edges := b.Edges()
	test.That(t, len(edges), test.ShouldEqual, 12)
	for _, e := range edges {
		// every edge of a 2x2x2 cube has length 2
		test.That(t, e[0].Sub(e[1]).Norm(), test.ShouldAlmostEqual, 2)
	}
}

func TestBoxWireframeCoversAllEdges(t *testing.T) {
	b, err := NewBox(NewZeroPose(), r3.Vector{X: 2, Y: 2, Z: 2}, "")
	test.That(t, err, test.ShouldBeNil)
	path := b.WireframePath()
	test.That(t, len(path), test.ShouldEqual, len(boxWireframeWalk))

	covered := map[[2]int]bool{}
	for i := 1; i < len(boxWireframeWalk); i++ {
		a, bIdx := boxWireframeWalk[i-1], boxWireframeWalk[i]
		if a > bIdx {
			a, bIdx = bIdx, a
		}
		covered[[2]int{a, bIdx}] = true
	}
	for _, e := range boxEdgeIndices {
		test.That(t, covered[[2]int{e[0], e[1]}], test.ShouldBeTrue)
	}
	// every step of the walk is a real edge
	for i := 1; i < len(path); i++ {
		test.That(t, path[i].Sub(path[i-1]).Norm(), test.ShouldAlmostEqual, 2)
	}
}

func TestBoxTriangles(t *testing.T) {
	b, err := NewBox(NewZeroPose(), r3.Vector{X: 2, Y: 2, Z: 2}, "")
	test.That(t, err, test.ShouldBeNil)
	tris := b.Triangles()
	test.That(t, len(tris), test.ShouldEqual, 12)
	for _, tri := range tris {
		test.That(t, len(tri.Points()), test.ShouldEqual, 3)
		test.That(t, tri.Normal().Norm(), test.ShouldAlmostEqual, 1)
	}
}

func TestBoxTransform(t *testing.T) {
	b, err := NewBox(NewPoseFromPoint(r3.Vector{X: 1}), r3.Vector{X: 2, Y: 2, Z: 2}, "moved")
	test.That(t, err, test.ShouldBeNil)
	moved := b.Transform(NewPoseFromPoint(r3.Vector{Y: 5}))
	test.That(t, moved.Pose().Point(), test.ShouldResemble, r3.Vector{X: 1, Y: 5, Z: 0})
	test.That(t, moved.Label(), test.ShouldEqual, "moved")
	// original unchanged
	test.That(t, b.Pose().Point(), test.ShouldResemble, r3.Vector{X: 1})
}
