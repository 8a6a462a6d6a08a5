package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Ordered list of box vertices.
var boxVertices = [8]r3.Vector{
	{X: 1, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: -1},
	{X: 1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: -1},
	{X: -1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1},
	{X: -1, Y: -1, Z: -1},
}

// The sets of indices of the box vertices that tile the box exterior.
var boxTriangles = [12][3]int{
	{0, 1, 3},
	{0, 2, 3},
	{0, 1, 5},
	{0, 4, 5},
	{0, 2, 6},
	{0, 4, 6},
	{7, 1, 3},
	{7, 2, 3},
	{7, 1, 5},
	{7, 4, 5},
	{7, 2, 6},
	{7, 4, 6},
}

// The 12 edges of a box, as pairs of vertex indices (vertices differing in exactly one coordinate).
var boxEdgeIndices = [12][2]int{
	{0, 1}, {0, 2}, {0, 4},
	{1, 3}, {1, 5},
	{2, 3}, {2, 6},
	{3, 7},
	{4, 5}, {4, 6},
	{5, 7},
	{6, 7},
}

// A single vertex-index walk that traverses every box edge at least once, so a
// wireframe can be drawn as one polyline. Some edges are retraced; a cube has
// eight odd-degree vertices so a non-repeating walk does not exist.
var boxWireframeWalk = [16]int{0, 1, 3, 2, 0, 4, 5, 7, 6, 4, 5, 1, 3, 7, 6, 2}

// Box is a rigid rectangular prism fully defined by a pose and its full
// extents along each local axis.
type Box struct {
	pose     Pose
	halfSize [3]float64
	label    string
}

// NewBox instantiates a new Box with the given pose and full dimensions.
// Negative dimensions are not allowed. Zero dimensions are allowed for bounding boxes, etc.
func NewBox(pose Pose, dims r3.Vector, label string) (*Box, error) {
	if dims.X < 0 || dims.Y < 0 || dims.Z < 0 {
		return nil, errors.Errorf("box dimensions can not be negative, got %v", dims)
	}
	if pose == nil {
		pose = NewZeroPose()
	}
	halfSize := dims.Mul(0.5)
	return &Box{
		pose:     pose,
		halfSize: [3]float64{halfSize.X, halfSize.Y, halfSize.Z},
		label:    label,
	}, nil
}

// Pose returns the pose of the box.
func (b *Box) Pose() Pose {
	return b.pose
}

// Label returns the label of this box.
func (b *Box) Label() string {
	return b.label
}

// Dims returns the full dimensions of the box along its local axes.
func (b *Box) Dims() r3.Vector {
	return r3.Vector{X: 2 * b.halfSize[0], Y: 2 * b.halfSize[1], Z: 2 * b.halfSize[2]}
}

// Transform premultiplies the box pose with a transform, allowing the box to be moved in space.
func (b *Box) Transform(toPremultiply Pose) *Box {
	return &Box{
		pose:     Compose(toPremultiply, b.pose),
		halfSize: b.halfSize,
		label:    b.label,
	}
}

// String returns a human readable string that represents the box.
func (b *Box) String() string {
	pt := b.pose.Point()
	return fmt.Sprintf("Type: Box | Position: X:%.1f, Y:%.1f, Z:%.1f | Dims: X:%.1f, Y:%.1f, Z:%.1f",
		pt.X, pt.Y, pt.Z, 2*b.halfSize[0], 2*b.halfSize[1], 2*b.halfSize[2])
}

// vertex returns the world-space position of the i'th canonical vertex.
func (b *Box) vertex(i int) r3.Vector {
	rm := b.pose.Orientation().RotationMatrix()
	v := boxVertices[i]
	local := r3.Vector{X: v.X * b.halfSize[0], Y: v.Y * b.halfSize[1], Z: v.Z * b.halfSize[2]}
	return rm.Mul(local).Add(b.pose.Point())
}

// Vertices returns the world-space positions of the eight corners of the box.
func (b *Box) Vertices() []r3.Vector {
	verts := make([]r3.Vector, 8)
	for i := range boxVertices {
		verts[i] = b.vertex(i)
	}
	return verts
}

// Triangles returns the world-space mesh triangles tiling the box exterior.
func (b *Box) Triangles() []*Triangle {
	verts := b.Vertices()
	triangles := make([]*Triangle, 0, len(boxTriangles))
	for _, tri := range boxTriangles {
		triangles = append(triangles, NewTriangle(verts[tri[0]], verts[tri[1]], verts[tri[2]]))
	}
	return triangles
}

// Edges returns the world-space endpoints of the twelve box edges.
func (b *Box) Edges() [][2]r3.Vector {
	verts := b.Vertices()
	edges := make([][2]r3.Vector, 0, len(boxEdgeIndices))
	for _, e := range boxEdgeIndices {
		edges = append(edges, [2]r3.Vector{verts[e[0]], verts[e[1]]})
	}
	return edges
}

// WireframePath returns a single world-space polyline that traces every edge
// of the box, suitable for line rendering.
func (b *Box) WireframePath() []r3.Vector {
	verts := b.Vertices()
	path := make([]r3.Vector, 0, len(boxWireframeWalk))
	for _, idx := range boxWireframeWalk {
		path = append(path, verts[idx])
	}
	return path
}
